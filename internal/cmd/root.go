package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tabrest/internal/config"
	"github.com/renato0307/tabrest/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	ListenAddr  string           `help:"Address of the daemon HTTP API" default:"127.0.0.1:7878" env:"TABREST_LISTEN_ADDR"`

	Run       RunCmd       `cmd:"" help:"Start the browser and the suspension daemon (default)" default:"1"`
	Tabs      TabsCmd      `cmd:"tabs" help:"List open tabs and whether they can be suspended"`
	Status    StatusCmd    `cmd:"status" help:"Explain whether a tab can be suspended"`
	Suspend   SuspendCmd   `cmd:"suspend" help:"Suspend a tab, its group, its window or every tab"`
	Unsuspend UnsuspendCmd `cmd:"unsuspend" help:"Unsuspend a tab, its group, its window or every tab"`
	Toggle    ToggleCmd    `cmd:"toggle" help:"Suspend or unsuspend a tab"`
	Pause     PauseCmd     `cmd:"pause" help:"Pause automatic suspension for a tab"`
	Unpause   UnpauseCmd   `cmd:"unpause" help:"Resume automatic suspension for a tab"`
	Whitelist WhitelistCmd `cmd:"whitelist" help:"Manage addresses that are never suspended"`
	Config    ConfigCmd    `cmd:"config" help:"Show and change the suspension configuration"`
	Migrate   MigrateCmd   `cmd:"migrate" help:"Adopt placeholder tabs created by another installation"`
	Open      OpenCmd      `cmd:"open" help:"Open addresses in a new window"`
	Options   OptionsCmd   `cmd:"options" help:"Open the options page in the browser"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Manage window layout snapshots"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage daemon settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag holds its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TABREST_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TABREST_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.ListenAddr == config.DefaultListenAddr {
			if _, hasEnv := os.LookupEnv("TABREST_LISTEN_ADDR"); !hasEnv {
				if c.settings.ListenAddr != "" {
					c.ListenAddr = c.settings.ListenAddr
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TABREST_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TABREST_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TABREST_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container is created after logging so GORM logs to the right place
	container, err := NewContainer(c.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
