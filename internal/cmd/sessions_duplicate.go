package cmd

import (
	"context"
	"fmt"
)

// SessionsCopyCmd saves a copy of a session
type SessionsCopyCmd struct {
	ID   string `arg:"" help:"Session id"`
	Name string `arg:"" help:"Name of the copy"`
}

// Run executes the copy command
func (s *SessionsCopyCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.SaveCopy(context.Background(), s.ID, s.Name)
	if err != nil {
		return fmt.Errorf("failed to copy session: %w", err)
	}
	fmt.Printf("Saved session %s (%s)\n", session.Name, session.ID)
	return nil
}
