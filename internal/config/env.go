package config

import (
	"os"
	"strconv"
)

// FromEnv overlays ULID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("ULID_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("ULID_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Count = n
		}
	}
	if v := os.Getenv("ULID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ULID_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
