package services

import (
	"context"
	"fmt"

	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// StartupService prepares state when the browser starts
type StartupService struct {
	sessions  *SessionService
	settings  *SettingsService
	store     ports.Store
	suspender *SuspenderService
}

// NewStartupService creates a new StartupService
func NewStartupService(
	store ports.Store,
	settings *SettingsService,
	sessions *SessionService,
	suspender *SuspenderService,
) *StartupService {
	return &StartupService{
		sessions:  sessions,
		settings:  settings,
		store:     store,
		suspender: suspender,
	}
}

// Start drops the state of the previous browser session, moves its layout
// backup into the recent sessions and refreshes placeholders left open
func (s *StartupService) Start(ctx context.Context) error {
	if err := s.store.ClearSessionState(ctx); err != nil {
		return fmt.Errorf("failed to clear session state: %w", err)
	}
	if err := s.settings.ClearPausedTabs(ctx); err != nil {
		return fmt.Errorf("failed to clear paused tabs: %w", err)
	}

	if _, err := s.sessions.UpdateRecent(ctx); err != nil {
		logging.Logger.Warn("Failed to update recent sessions", "error", err)
	}

	reloaded, err := s.suspender.ReloadTabs(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to reload suspended tabs", "error", err)
	}

	logging.Logger.Info("Startup finished", "reloaded_tabs", reloaded)
	return nil
}
