package config

import (
	"os"
	"path/filepath"
)

// GetTabrestHome returns TABREST_HOME or ~/.tabrest default
func GetTabrestHome() string {
	home := os.Getenv("TABREST_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tabrest"
		}
		return filepath.Join(homeDir, ".tabrest")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TABREST_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetTabrestHome(), "state.db")
}

// GetSettingsPath returns $TABREST_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTabrestHome(), "settings.json")
}

// GetUserDataDir returns $TABREST_HOME/browser, the default browser profile
func GetUserDataDir() string {
	return filepath.Join(GetTabrestHome(), "browser")
}

// GetLockPath returns $TABREST_HOME/daemon.lock
func GetLockPath() string {
	return filepath.Join(GetTabrestHome(), "daemon.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
