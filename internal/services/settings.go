package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// SettingsService reads and edits the suspension configuration and the per
// tab pause flags
type SettingsService struct {
	configRepo ports.ConfigurationRepository
	recordRepo ports.TabRecordRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(
	configRepo ports.ConfigurationRepository,
	recordRepo ports.TabRecordRepository,
) *SettingsService {
	return &SettingsService{
		configRepo: configRepo,
		recordRepo: recordRepo,
	}
}

// Configuration returns the stored configuration
func (s *SettingsService) Configuration(ctx context.Context) (*domain.Configuration, error) {
	cfg, err := s.configRepo.LoadConfiguration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// update is a read-modify-write of the whole configuration. The last writer
// wins.
func (s *SettingsService) update(ctx context.Context, fn func(cfg *domain.Configuration) error) (*domain.Configuration, error) {
	cfg, err := s.Configuration(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(cfg); err != nil {
		return nil, err
	}
	if err := s.configRepo.SaveConfiguration(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}
	return cfg, nil
}

// Fields returns the user facing fields, hidden ones included when asked
func (s *SettingsService) Fields(includeHidden bool) []domain.ConfigField {
	var fields []domain.ConfigField
	for _, f := range domain.ConfigFields {
		if f.Hidden && !includeHidden {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// GetField returns the value of one field
func (s *SettingsService) GetField(ctx context.Context, name string) (any, error) {
	field, err := domain.LookupConfigField(name)
	if err != nil {
		return nil, err
	}
	cfg, err := s.Configuration(ctx)
	if err != nil {
		return nil, err
	}
	return field.Get(cfg), nil
}

// SetField parses value into one field and saves the configuration
func (s *SettingsService) SetField(ctx context.Context, name, value string) (*domain.Configuration, error) {
	field, err := domain.LookupConfigField(name)
	if err != nil {
		return nil, err
	}

	cfg, err := s.update(ctx, func(cfg *domain.Configuration) error {
		return field.Set(cfg, value)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Configuration field updated", "field", name, "value", field.Get(cfg))
	return cfg, nil
}

// Reset restores the default configuration
func (s *SettingsService) Reset(ctx context.Context) (*domain.Configuration, error) {
	cfg := domain.DefaultConfiguration()
	if err := s.configRepo.SaveConfiguration(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}
	return cfg, nil
}

// WhitelistDomain whitelists the host of rawURL
func (s *SettingsService) WhitelistDomain(ctx context.Context, rawURL string) error {
	_, err := s.update(ctx, func(cfg *domain.Configuration) error {
		return cfg.WhitelistDomain(rawURL)
	})
	return err
}

// WhitelistURL whitelists the host and path of rawURL
func (s *SettingsService) WhitelistURL(ctx context.Context, rawURL string) error {
	_, err := s.update(ctx, func(cfg *domain.Configuration) error {
		return cfg.WhitelistURL(rawURL)
	})
	return err
}

// WhitelistRemove drops every entry matching the host and path of rawURL
func (s *SettingsService) WhitelistRemove(ctx context.Context, rawURL string) error {
	_, err := s.update(ctx, func(cfg *domain.Configuration) error {
		return cfg.WhiteListRemove(rawURL)
	})
	return err
}

// AddWhiteListPattern adds a raw pattern to the whitelist
func (s *SettingsService) AddWhiteListPattern(ctx context.Context, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return fmt.Errorf("%w: empty pattern", domain.ErrInvalidValue)
	}
	_, err := s.update(ctx, func(cfg *domain.Configuration) error {
		cfg.AddWhiteList(pattern)
		return nil
	})
	return err
}

// RemoveWhiteListPattern removes an exact pattern and reports whether it existed
func (s *SettingsService) RemoveWhiteListPattern(ctx context.Context, pattern string) (bool, error) {
	removed := false
	_, err := s.update(ctx, func(cfg *domain.Configuration) error {
		removed = cfg.RemoveWhiteListPattern(pattern)
		return nil
	})
	return removed, err
}

// PauseTab stops a tab from being suspended until it is unpaused
func (s *SettingsService) PauseTab(ctx context.Context, tabID int) error {
	return s.setPaused(ctx, tabID, func(bool) bool { return true })
}

// UnpauseTab allows a tab to be suspended again
func (s *SettingsService) UnpauseTab(ctx context.Context, tabID int) error {
	if err := s.setPaused(ctx, tabID, func(bool) bool { return false }); err != nil {
		return err
	}
	return s.clearConfigPause(ctx, tabID)
}

// clearConfigPause drops tabID from the paused ids kept in the configuration
func (s *SettingsService) clearConfigPause(ctx context.Context, tabID int) error {
	cfg, err := s.Configuration(ctx)
	if err != nil || !cfg.IsPausedTab(tabID) {
		return err
	}
	_, err = s.update(ctx, func(cfg *domain.Configuration) error {
		cfg.UnpauseTab(tabID)
		return nil
	})
	return err
}

// TogglePauseTab flips whether a tab is paused and returns the new value
func (s *SettingsService) TogglePauseTab(ctx context.Context, tabID int) (bool, error) {
	cfg, err := s.Configuration(ctx)
	if err != nil {
		return false, err
	}

	paused := false
	err = s.setPaused(ctx, tabID, func(current bool) bool {
		paused = !(current || cfg.IsPausedTab(tabID))
		return paused
	})
	if err != nil {
		return false, err
	}
	if !paused {
		if err := s.clearConfigPause(ctx, tabID); err != nil {
			return false, err
		}
	}
	return paused, nil
}

func (s *SettingsService) setPaused(ctx context.Context, tabID int, fn func(current bool) bool) error {
	record, err := s.recordRepo.GetTabRecord(ctx, tabID)
	if err != nil {
		return fmt.Errorf("failed to load tab record: %w", err)
	}
	record.IsPaused = fn(record.IsPaused)
	if err := s.recordRepo.SaveTabRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save tab record: %w", err)
	}
	logging.Logger.Info("Tab pause updated", "tab_id", tabID, "paused", record.IsPaused)
	return nil
}

// ClearPausedTabs drops the paused tab ids kept in the configuration
func (s *SettingsService) ClearPausedTabs(ctx context.Context) error {
	_, err := s.update(ctx, func(cfg *domain.Configuration) error {
		cfg.ClearPausedTabs()
		return nil
	})
	return err
}
