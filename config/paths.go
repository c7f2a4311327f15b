package config

import (
	"os"
	"path/filepath"
)

// getConfigDir returns the configuration directory for readfence.
func getConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "readfence")
}

// EnsureDirectories creates the config directory if it doesn't exist.
// The backups directory is created on demand when a backup is written.
func EnsureDirectories() error {
	return os.MkdirAll(ResolvePaths().ConfigDir, 0700)
}
