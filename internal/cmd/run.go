package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adapterbrowser "github.com/renato0307/tabrest/internal/adapters/browser"
	adapterdevice "github.com/renato0307/tabrest/internal/adapters/device"
	adapterfavicon "github.com/renato0307/tabrest/internal/adapters/favicon"
	"github.com/renato0307/tabrest/internal/config"
	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/monitoring"
	"github.com/renato0307/tabrest/internal/server"
	"github.com/renato0307/tabrest/internal/services"
)

const faviconRetries = 2

// RunCmd starts the browser and the suspension daemon
type RunCmd struct {
	AllowFileScheme       bool     `help:"Allow suspending file:// pages"`
	APIBurst              int      `help:"Burst size of the action API rate limit" default:"40"`
	APIRateLimit          float64  `help:"Requests per second accepted by the action API (0 = unlimited)" default:"20"`
	BulkConcurrency       int      `help:"Tabs touched at once by bulk operations" default:"4"`
	FaviconTimeoutSeconds int      `help:"Seconds to wait for a favicon download" default:"5"`
	Headless              bool     `help:"Run the browser without a window"`
	InstallDriver         bool     `help:"Download the playwright driver and Chromium before starting"`
	StartURLs             []string `help:"Addresses opened when the browser starts" sep:","`
	UserDataDir           string   `help:"Browser profile directory (default: $TABREST_HOME/browser)"`
}

// applySettings fills flags still at their default from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if !r.AllowFileScheme && settings.AllowFileScheme != nil {
		r.AllowFileScheme = *settings.AllowFileScheme
	}
	if r.APIBurst == config.DefaultAPIBurst && settings.APIBurst != nil {
		r.APIBurst = *settings.APIBurst
	}
	if r.APIRateLimit == config.DefaultAPIRateLimit && settings.APIRateLimit != nil {
		r.APIRateLimit = *settings.APIRateLimit
	}
	if r.BulkConcurrency == config.DefaultBulkConcurrency && settings.BulkConcurrency != nil {
		r.BulkConcurrency = *settings.BulkConcurrency
	}
	if r.FaviconTimeoutSeconds == config.DefaultFaviconTimeoutSeconds && settings.FaviconTimeoutSeconds != nil {
		r.FaviconTimeoutSeconds = *settings.FaviconTimeoutSeconds
	}
	if !r.Headless && settings.Headless != nil {
		r.Headless = *settings.Headless
	}
	if len(r.StartURLs) == 0 && len(settings.StartURLs) > 0 {
		r.StartURLs = settings.StartURLs
	}
	if r.UserDataDir == "" {
		r.UserDataDir = settings.UserDataDir
	}
}

// Run executes the daemon until interrupted or the browser closes
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)
	if r.UserDataDir == "" {
		r.UserDataDir = config.GetUserDataDir()
	}

	unlock, err := acquireDaemonLock(config.GetLockPath())
	if err != nil {
		return err
	}
	defer unlock()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := cli.Container.Store
	installationID, err := store.GetInstallationID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read installation id: %w", err)
	}
	origin := domain.NewOrigin(cli.ListenAddr, installationID)
	logging.Logger.Info("Starting daemon", "origin", string(origin), "user_data_dir", r.UserDataDir)

	host, err := adapterbrowser.Launch(ctx, adapterbrowser.Options{
		AllowFileScheme: r.AllowFileScheme,
		Headless:        r.Headless,
		InstallDriver:   r.InstallDriver,
		StartURLs:       r.StartURLs,
		UserDataDir:     r.UserDataDir,
	}, store)
	if err != nil {
		return err
	}
	defer host.Close()

	metrics := monitoring.NewMetrics()
	favicons := adapterfavicon.NewFetcher(time.Duration(r.FaviconTimeoutSeconds)*time.Second, faviconRetries)

	suspender := services.NewSuspenderService(host, store, adapterdevice.NewProvider(), favicons, store, metrics,
		services.SuspenderOptions{BulkConcurrency: r.BulkConcurrency, Origin: origin})
	settings := cli.Container.SettingsService
	sessions := services.NewSessionService(store, host, suspender)
	actions := services.NewActionService(host, suspender, settings, metrics)
	alarm := services.NewAlarmService(suspender, sessions, store, store, metrics)
	events := services.NewEventService(host, store, suspender)
	startup := services.NewStartupService(store, settings, sessions, suspender)

	srv := server.NewServer(server.Options{
		Debug:      cli.Debug,
		ListenAddr: cli.ListenAddr,
		RateLimit:  r.APIRateLimit,
		Burst:      r.APIBurst,
	}, origin, server.Deps{
		Actions:  actions,
		Config:   settings,
		Metrics:  metrics,
		Sessions: sessions,
		Tabs:     suspender,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		// Placeholders reloaded at startup need the server
		if err := startup.Start(gctx); err != nil {
			return err
		}
		return alarm.Run(gctx)
	})
	g.Go(func() error {
		return events.Run(gctx, host.Events())
	})
	g.Go(func() error {
		select {
		case <-host.Done():
			logging.Logger.Info("Browser closed, stopping daemon")
			return errBrowserClosed
		case <-gctx.Done():
			return nil
		}
	})

	fmt.Printf("tabrest is running at %s (press Ctrl+C to stop)\n", origin)
	err = g.Wait()
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, errBrowserClosed) {
		logging.Logger.Info("Daemon stopped")
		return nil
	}
	return err
}

var errBrowserClosed = errors.New("browser closed")

// acquireDaemonLock makes sure only one daemon runs per home directory
func acquireDaemonLock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	locked, err := tryLockFile(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		file.Close()
		return nil, domain.ErrDaemonRunning
	}

	return func() {
		if err := unlockFile(file); err != nil {
			logging.Logger.Warn("Failed to release daemon lock", "error", err)
		}
		file.Close()
	}, nil
}
