package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
)

// SessionsSaveCmd saves the windows of the running browser
type SessionsSaveCmd struct {
	Name string `arg:"" optional:"" help:"Session name (default: current date and time)"`
}

// Run executes the save command
func (s *SessionsSaveCmd) Run(cli *CLI) error {
	session, err := cli.Container.Client.SaveSession(context.Background(), s.Name)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	fmt.Printf("Saved session %s (%s): %d windows, %d tabs\n", session.Name, session.ID, session.Windows, session.Tabs)
	return nil
}

// SessionsImportCmd saves a session from a text file
type SessionsImportCmd struct {
	Name string `arg:"" help:"Session name"`
	File string `arg:"" optional:"" help:"File with one address per line and a blank line between windows ('-' for stdin)" default:"-"`
}

// Run executes the import command
func (s *SessionsImportCmd) Run(cli *CLI) error {
	var (
		data []byte
		err  error
	)
	if s.File == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(s.File)
	}
	if err != nil {
		return fmt.Errorf("failed to read addresses: %w", err)
	}

	session, err := cli.Container.SessionService.SaveURLs(context.Background(), s.Name, string(data))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	fmt.Printf("Saved session %s (%s): %d windows, %d tabs\n", session.Name, session.ID, session.Windows, session.Tabs)
	return nil
}
