package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/theme"
)

// ConfigCmd shows and changes the suspension configuration
type ConfigCmd struct {
	Show   ConfigShowCmd   `cmd:"show" help:"Show every field and its value" default:"1"`
	Get    ConfigGetCmd    `cmd:"get" help:"Print one field"`
	Set    ConfigSetCmd    `cmd:"set" help:"Change one field"`
	Fields ConfigFieldsCmd `cmd:"fields" help:"Describe the available fields"`
	Reset  ConfigResetCmd  `cmd:"reset" help:"Restore the default configuration"`
}

// ConfigShowCmd prints the configuration
type ConfigShowCmd struct {
	All    bool   `help:"Include internal fields"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (c *ConfigShowCmd) Run(cli *CLI) error {
	cfg, err := cli.Container.SettingsService.Configuration(context.Background())
	if err != nil {
		return err
	}
	if c.Format == "json" {
		return printJSON(cfg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for _, f := range cli.Container.SettingsService.Fields(c.All) {
		fmt.Fprintf(w, "%s\t%s\n", f.Name, formatFieldValue(f.Get(cfg)))
	}
	return w.Flush()
}

// ConfigGetCmd prints one field
type ConfigGetCmd struct {
	Name string `arg:"" help:"Field name (see 'tabrest config fields')"`
}

// Run executes the get command
func (c *ConfigGetCmd) Run(cli *CLI) error {
	value, err := cli.Container.SettingsService.GetField(context.Background(), c.Name)
	if err != nil {
		return err
	}
	fmt.Println(formatFieldValue(value))
	return nil
}

// ConfigSetCmd changes one field
type ConfigSetCmd struct {
	Name  string `arg:"" help:"Field name (see 'tabrest config fields')"`
	Value string `arg:"" help:"New value. Lists take one entry per line."`
}

// Run executes the set command
func (c *ConfigSetCmd) Run(cli *CLI) error {
	cfg, err := cli.Container.SettingsService.SetField(context.Background(), c.Name, c.Value)
	if err != nil {
		return err
	}

	field, _ := domain.LookupConfigField(c.Name)
	fmt.Printf("%s = %s\n", c.Name, formatFieldValue(field.Get(cfg)))
	if field.Permission != domain.PermissionNone {
		fmt.Println(theme.MutedStyle.Render(fmt.Sprintf("Requires the %s permission", field.Permission)))
	}
	return nil
}

// ConfigFieldsCmd describes the fields
type ConfigFieldsCmd struct {
	All bool `help:"Include internal fields"`
}

// Run executes the fields command
func (c *ConfigFieldsCmd) Run(cli *CLI) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tType\tDescription")
	fmt.Fprintln(w, "────\t────\t───────────")
	for _, f := range cli.Container.SettingsService.Fields(c.All) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Kind, f.Description)
	}
	return w.Flush()
}

// ConfigResetCmd restores the defaults
type ConfigResetCmd struct{}

// Run executes the reset command
func (c *ConfigResetCmd) Run(cli *CLI) error {
	if _, err := cli.Container.SettingsService.Reset(context.Background()); err != nil {
		return err
	}
	fmt.Println("Configuration reset to defaults")
	return nil
}

func formatFieldValue(value any) string {
	if list, ok := value.([]string); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprintf("%v", value)
}
