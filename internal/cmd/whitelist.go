package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tabrest/internal/theme"
)

// WhitelistCmd manages addresses that are never suspended
type WhitelistCmd struct {
	List   WhitelistListCmd   `cmd:"list" help:"List whitelist entries" default:"1"`
	Add    WhitelistAddCmd    `cmd:"add" help:"Add a pattern (host, address prefix, wildcard or /regex/flags)"`
	Remove WhitelistRemoveCmd `cmd:"remove" help:"Remove a pattern"`
	Domain WhitelistDomainCmd `cmd:"domain" help:"Whitelist the host of an address"`
	URL    WhitelistURLCmd    `cmd:"url" help:"Whitelist an address without its fragment"`
	Forget WhitelistForgetCmd `cmd:"forget" help:"Remove every entry matching an address"`
}

// WhitelistListCmd lists whitelist entries
type WhitelistListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (w *WhitelistListCmd) Run(cli *CLI) error {
	cfg, err := cli.Container.SettingsService.Configuration(context.Background())
	if err != nil {
		return err
	}

	if w.Format == "json" {
		return printJSON(cfg.WhiteList)
	}
	if len(cfg.WhiteList) == 0 {
		fmt.Println(theme.MutedStyle.Render("Whitelist is empty"))
		return nil
	}
	for _, entry := range cfg.WhiteList {
		fmt.Println(entry)
	}
	return nil
}

// WhitelistAddCmd adds a raw pattern
type WhitelistAddCmd struct {
	Pattern string `arg:"" help:"Pattern to add"`
}

// Run executes the add command
func (w *WhitelistAddCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.AddWhiteListPattern(context.Background(), w.Pattern); err != nil {
		return err
	}
	fmt.Printf("Added %q to the whitelist\n", w.Pattern)
	return nil
}

// WhitelistRemoveCmd removes a raw pattern
type WhitelistRemoveCmd struct {
	Pattern string `arg:"" help:"Pattern to remove"`
}

// Run executes the remove command
func (w *WhitelistRemoveCmd) Run(cli *CLI) error {
	removed, err := cli.Container.SettingsService.RemoveWhiteListPattern(context.Background(), w.Pattern)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("pattern %q is not in the whitelist", w.Pattern)
	}
	fmt.Printf("Removed %q from the whitelist\n", w.Pattern)
	return nil
}

// WhitelistDomainCmd whitelists the host of an address
type WhitelistDomainCmd struct {
	Address string `arg:"" help:"Page address"`
}

// Run executes the domain command
func (w *WhitelistDomainCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.WhitelistDomain(context.Background(), w.Address)
}

// WhitelistURLCmd whitelists one address
type WhitelistURLCmd struct {
	Address string `arg:"" help:"Page address"`
}

// Run executes the url command
func (w *WhitelistURLCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.WhitelistURL(context.Background(), w.Address)
}

// WhitelistForgetCmd removes entries matching an address
type WhitelistForgetCmd struct {
	Address string `arg:"" help:"Page address"`
}

// Run executes the forget command
func (w *WhitelistForgetCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.WhitelistRemove(context.Background(), w.Address)
}
