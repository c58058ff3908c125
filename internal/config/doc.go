// Package config provides loading and environment overlay for the ulid CLI
// configuration. It exposes a Default() baseline, a JSON file loader and a
// ULID_* environment overlay. Precedence, lowest to highest: defaults, file,
// environment, command-line flags.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load(config.DefaultPath()); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
