package cmd

import (
	"strings"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
)

// OpenCmd opens addresses in a new window
type OpenCmd struct {
	URLs      []string `arg:"" help:"Addresses to open"`
	Suspended bool     `help:"Open the tabs suspended"`
}

// Run executes the open command
func (o *OpenCmd) Run(cli *CLI) error {
	urls := strings.Join(o.URLs, "\n")
	_, err := cli.Container.action(services.ActionEnvelope{
		Action:    string(domain.ActionOpenWindow),
		URLs:      &urls,
		Suspended: &o.Suspended,
	})
	return err
}

// OptionsCmd opens the options page
type OptionsCmd struct{}

// Run executes the options command
func (o *OptionsCmd) Run(cli *CLI) error {
	_, err := cli.Container.action(services.ActionEnvelope{Action: string(domain.ActionOpenSettings)})
	return err
}
