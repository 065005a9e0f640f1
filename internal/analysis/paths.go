// Package analysis provides a persistent, BadgerDB-backed cache of search
// results keyed by Zobrist hash, so repeated analysis of the same
// position (across engine restarts) can skip redundant searching.
package analysis

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "sirostrike"

// DefaultDBDir returns the platform-specific data directory for the
// analysis cache database.
//   - macOS: ~/Library/Application Support/sirostrike/analysis/
//   - Linux: ~/.local/share/sirostrike/analysis/
//   - Windows: %APPDATA%/sirostrike/analysis/
func DefaultDBDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dbDir := filepath.Join(baseDir, appName, "analysis")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
