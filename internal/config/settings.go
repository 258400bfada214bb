package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultListenAddr            = "127.0.0.1:7878"
	DefaultBulkConcurrency       = 4
	DefaultAPIRateLimit          = 20.0
	DefaultAPIBurst              = 40
	DefaultFaviconTimeoutSeconds = 5
)

// Settings represents the structure of ~/.tabrest/settings.json
type Settings struct {
	AllowFileScheme       *bool       `json:"allow_file_scheme,omitempty"`
	APIBurst              *int        `json:"api_burst,omitempty"`
	APIRateLimit          *float64    `json:"api_rate_limit,omitempty"`
	BulkConcurrency       *int        `json:"bulk_concurrency,omitempty"`
	Debug                 *bool       `json:"debug,omitempty"`
	FaviconTimeoutSeconds *int        `json:"favicon_timeout_seconds,omitempty"`
	Headless              *bool       `json:"headless,omitempty"`
	ListenAddr            string      `json:"listen_addr,omitempty"`
	MaxLogFiles           *int        `json:"max_log_files,omitempty"`
	StartURLs             StringArray `json:"start_urls,omitempty"`
	UserDataDir           string      `json:"user_data_dir,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $TABREST_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.UserDataDir != "" {
		settings.UserDataDir = ExpandPath(settings.UserDataDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TABREST_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
