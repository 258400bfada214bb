package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
)

// SessionsOpenCmd opens every window of a session
type SessionsOpenCmd struct {
	ID        string `arg:"" help:"Session id"`
	Suspended bool   `help:"Open the tabs suspended"`
}

// Run executes the open command
func (s *SessionsOpenCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.Get(context.Background(), s.ID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	_, err = cli.Container.action(services.ActionEnvelope{
		Action:    string(domain.ActionOpenSession),
		URLs:      &session.Data,
		Suspended: &s.Suspended,
	})
	return err
}

// SessionsWindowCmd opens one window of a session
type SessionsWindowCmd struct {
	ID        string `arg:"" help:"Session id"`
	Index     int    `arg:"" help:"Window number as shown by 'sessions show', from 0"`
	Suspended bool   `help:"Open the tabs suspended"`
}

// Run executes the window command
func (s *SessionsWindowCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.Get(context.Background(), s.ID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	windows := session.LoadWindows()
	if s.Index < 0 || s.Index >= len(windows) {
		return fmt.Errorf("%w: session %s has %d windows", domain.ErrInvalidValue, s.ID, len(windows))
	}

	urls := windows[s.Index].String()
	_, err = cli.Container.action(services.ActionEnvelope{
		Action:    string(domain.ActionOpenWindow),
		URLs:      &urls,
		Suspended: &s.Suspended,
	})
	return err
}
