package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/theme"
)

// SessionsShowCmd shows a session
type SessionsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Session id"`
}

// Run executes the show command
func (s *SessionsShowCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.Get(context.Background(), s.ID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if s.Format == "json" {
		return printJSON(session)
	}
	return s.printTable(session)
}

func (s *SessionsShowCmd) printTable(session domain.Session) error {
	fmt.Println(theme.TitleStyle.Render(session.Name))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Kind:"), session.Kind)
	fmt.Printf("%s %d windows, %d tabs\n", theme.LabelStyle.Render("Size:"), session.Windows, session.Tabs)

	for i, window := range session.LoadWindows() {
		fmt.Println()
		fmt.Println(theme.HeaderStyle.Render(fmt.Sprintf("Window %d", i)))
		for _, u := range window.Tabs {
			fmt.Printf("  %s\n", u)
		}
	}
	return nil
}
