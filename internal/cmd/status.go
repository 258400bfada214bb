package cmd

import (
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
	"github.com/renato0307/tabrest/internal/theme"
)

// StatusCmd explains whether a tab can be suspended
type StatusCmd struct {
	Tab int `arg:"" help:"Tab id (see 'tabrest tabs')"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	resp, err := cli.Container.action(services.ActionEnvelope{
		Action: string(domain.ActionTabStatus),
		TabID:  &s.Tab,
	})
	if err != nil {
		return err
	}

	raw, _ := resp.Data.(string)
	status := domain.TabStatus(raw)
	fmt.Printf("%s %s\n", theme.StatusStyle(status).Render(string(status)), theme.MutedStyle.Render(status.Description()))
	return nil
}
