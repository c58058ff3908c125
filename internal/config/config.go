package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output formats understood by the CLI.
const (
	FormatCanonical = "canonical"
	FormatHex       = "hex"
	FormatJSON      = "json"
)

// Config is the top-level CLI configuration loaded from file/env.
type Config struct {
	Format    string `json:"format"`
	Count     int    `json:"count"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Format:    FormatCanonical,
		Count:     1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that have a closed set of accepted forms.
func (c Config) Validate() error {
	switch c.Format {
	case FormatCanonical, FormatHex, FormatJSON:
	default:
		return fmt.Errorf("config: invalid format %q; use canonical|hex|json", c.Format)
	}
	if c.Count < 1 {
		return fmt.Errorf("config: count must be at least 1, got %d", c.Count)
	}
	return nil
}
