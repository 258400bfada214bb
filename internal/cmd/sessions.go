package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/theme"
)

// SessionsCmd manages window layout snapshots
type SessionsCmd struct {
	Copy   SessionsCopyCmd   `cmd:"copy" help:"Save a copy of a session under a new name"`
	Delete SessionsDeleteCmd `cmd:"delete" aliases:"del" help:"Delete a session"`
	Import SessionsImportCmd `cmd:"import" help:"Save a session from a list of addresses"`
	List   SessionsListCmd   `cmd:"list" help:"List sessions" default:"1"`
	Open   SessionsOpenCmd   `cmd:"open" help:"Open every window of a session"`
	Save   SessionsSaveCmd   `cmd:"save" help:"Save the current windows as a session"`
	Show   SessionsShowCmd   `cmd:"show" help:"Show the addresses of a session"`
	Window SessionsWindowCmd `cmd:"window" help:"Open one window of a session"`
}

// SessionsListCmd lists sessions
type SessionsListCmd struct {
	Kind   string `help:"Session kind: saved, recent or backup" enum:"saved,recent,backup" default:"saved"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	sessions, err := cli.Container.SessionService.List(context.Background(), domain.SessionKind(s.Kind))
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return printJSON(sessions)
	}
	if len(sessions) == 0 {
		fmt.Println(theme.MutedStyle.Render(fmt.Sprintf("No %s sessions", s.Kind)))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tWindows\tTabs\tCreated")
	fmt.Fprintln(w, "──\t────\t───────\t────\t───────")
	for _, session := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			session.ID, session.Name, session.Windows, session.Tabs, session.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}
