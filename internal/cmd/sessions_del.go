package cmd

import (
	"context"
	"fmt"
)

// SessionsDeleteCmd deletes a session
type SessionsDeleteCmd struct {
	ID string `arg:"" help:"Session id"`
}

// Run executes the delete command
func (s *SessionsDeleteCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.Delete(context.Background(), s.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	fmt.Printf("Deleted session %s\n", s.ID)
	return nil
}
