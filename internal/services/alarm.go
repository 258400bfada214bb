package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/monitoring"
	"github.com/renato0307/tabrest/internal/ports"
)

const sweepKey = "sweep"

// AutoSuspender suspends idle tabs
type AutoSuspender interface {
	SuspendAuto(ctx context.Context) (int, error)
}

// BackupSaver stores the current layout as the crash recovery backup
type BackupSaver interface {
	SaveBackup(ctx context.Context) error
}

// SweepResult describes what one sweep did
type SweepResult struct {
	Ran       bool
	Suspended int
}

// AlarmService runs the periodic sweep: auto suspension followed by the
// session backup. Sweeps never overlap and are debounced by the configured
// sweep interval.
type AlarmService struct {
	backups   BackupSaver
	config    ports.ConfigurationRepository
	group     singleflight.Group
	metrics   *monitoring.Metrics
	now       func() time.Time
	state     ports.RuntimeStateRepository
	suspender AutoSuspender
}

// NewAlarmService creates a new AlarmService. metrics may be nil.
func NewAlarmService(
	suspender AutoSuspender,
	backups BackupSaver,
	config ports.ConfigurationRepository,
	state ports.RuntimeStateRepository,
	metrics *monitoring.Metrics,
) *AlarmService {
	return &AlarmService{
		backups:   backups,
		config:    config,
		metrics:   metrics,
		now:       time.Now,
		state:     state,
		suspender: suspender,
	}
}

// Sweep runs one sweep unless another is in flight, in which case it waits
// for that one and shares its result
func (s *AlarmService) Sweep(ctx context.Context) (SweepResult, error) {
	v, err, shared := s.group.Do(sweepKey, func() (any, error) {
		return s.sweep(ctx)
	})
	if shared {
		logging.Logger.Debug("Joined running sweep")
	}
	if err != nil {
		return SweepResult{}, err
	}
	return v.(SweepResult), nil
}

func (s *AlarmService) sweep(ctx context.Context) (result SweepResult, err error) {
	started := s.now()
	defer func() {
		switch {
		case err != nil:
			s.metrics.Sweep(monitoring.SweepFailed, time.Since(started))
		case result.Ran:
			s.metrics.Sweep(monitoring.SweepRan, time.Since(started))
		default:
			s.metrics.Sweep(monitoring.SweepSkipped, time.Since(started))
		}
	}()

	cfg, err := s.config.LoadConfiguration(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	last, err := s.state.LastSweep(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("failed to read last sweep: %w", err)
	}
	if !last.IsZero() && started.Sub(last) < cfg.SweepIntervalDuration() {
		logging.Logger.Debug("Sweep skipped", "last", last)
		return SweepResult{}, nil
	}

	if cfg.AutoSuspend() {
		n, err := s.suspender.SuspendAuto(ctx)
		if err != nil {
			return SweepResult{}, fmt.Errorf("failed to auto suspend: %w", err)
		}
		result.Suspended = n
	}

	if err := s.backups.SaveBackup(ctx); err != nil {
		logging.Logger.Warn("Failed to save session backup", "error", err)
	}

	if err := s.state.SetLastSweep(ctx, started); err != nil {
		return result, fmt.Errorf("failed to record sweep: %w", err)
	}

	result.Ran = true
	logging.Logger.Debug("Sweep finished", "suspended", result.Suspended, "elapsed", time.Since(started))
	return result, nil
}

// period reads the configured timer, falling back to the default
func (s *AlarmService) period(ctx context.Context) time.Duration {
	cfg, err := s.config.LoadConfiguration(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load configuration", "error", err)
		cfg = domain.DefaultConfiguration()
	}
	if d := cfg.TimerDuration(); d > 0 {
		return d
	}
	return domain.DefaultConfiguration().TimerDuration()
}

// Run fires a sweep every configured period until ctx is done. The ticker
// follows changes of the configured period.
func (s *AlarmService) Run(ctx context.Context) error {
	period := s.period(ctx)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	logging.Logger.Info("Sweep timer started", "period", period)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				logging.Logger.Warn("Sweep failed", "error", err)
			}

			if p := s.period(ctx); p != period {
				period = p
				ticker.Reset(period)
				logging.Logger.Info("Sweep timer changed", "period", period)
			}
		}
	}
}
