package config

import (
	"os"
	"path/filepath"
)

const appName = "tvfocus"

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644
)

// GetConfigDir returns $XDG_CONFIG_HOME/tvfocus (default ~/.config/tvfocus).
// With ENV=dev it returns .dev/tvfocus in the working directory.
func GetConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetStateDir returns $XDG_STATE_HOME/tvfocus (default ~/.local/state/tvfocus).
func GetStateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// GetConfigFile returns the path of the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetLogFile returns the default log file used by the demo.
func GetLogFile() (string, error) {
	dir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "tvfocus.log"), nil
}

func xdgDir(env, fallback string) (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}
