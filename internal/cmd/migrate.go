package cmd

import (
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
)

// MigrateCmd re-suspends placeholder tabs of another installation under this one
type MigrateCmd struct {
	InstallationID string `arg:"" help:"Installation id the placeholder tabs were created by"`
}

// Run executes the migrate command
func (m *MigrateCmd) Run(cli *CLI) error {
	resp, err := cli.Container.action(services.ActionEnvelope{
		Action:      string(domain.ActionMigrate),
		ExtensionID: &m.InstallationID,
	})
	if err != nil {
		return err
	}

	count, _ := resp.Data.(float64)
	fmt.Printf("Migrated %d tab(s)\n", int(count))
	return nil
}
