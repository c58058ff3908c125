package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the default config file location based on the host OS.
// It prefers XDG on Linux and falls back to a dotfile in the user's home
// directory. An empty string means no config file is available.
func DefaultPath() string {
	if explicit := os.Getenv("ULID_CONFIG"); explicit != "" {
		return explicit
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return existing(filepath.Join(xdg, "ulid", "config.json"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return ""
	}

	if p := existing(filepath.Join(homeDir, ".config", "ulid", "config.json")); p != "" {
		return p
	}
	return existing(filepath.Join(homeDir, ".ulid.json"))
}

func existing(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
