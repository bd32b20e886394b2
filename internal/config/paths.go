package config

import (
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the bundlestats home directory
const HomeEnvVar = "BUNDLESTATS_HOME"

// GetHome returns $BUNDLESTATS_HOME or ~/.bundlestats
func GetHome() string {
	home := os.Getenv(HomeEnvVar)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".bundlestats"
		}
		return filepath.Join(homeDir, ".bundlestats")
	}
	return ExpandPath(home)
}

// GetDBPath returns $BUNDLESTATS_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetStatsDir returns $BUNDLESTATS_HOME/stats
func GetStatsDir() string {
	return filepath.Join(GetHome(), "stats")
}

// GetSettingsPath returns $BUNDLESTATS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
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
