package domain

import "errors"

var (
	ErrTabNotFound           = errors.New("tab not found")
	ErrInvalidTab            = errors.New("unknown or invalid tab")
	ErrCaptureFailed         = errors.New("page state capture failed")
	ErrNotSuspendable        = errors.New("url cannot be suspended")
	ErrNotSuspended          = errors.New("tab is not suspended")
	ErrUnknownAction         = errors.New("unknown action")
	ErrMissingField          = errors.New("missing required field")
	ErrUnknownField          = errors.New("unknown configuration field")
	ErrInvalidValue          = errors.New("invalid value")
	ErrInvalidInstallationID = errors.New("invalid installation id")
	ErrSessionNotFound       = errors.New("session not found")
	ErrDaemonRunning         = errors.New("daemon already running")
	ErrDaemonUnreachable     = errors.New("daemon is not running")
)
