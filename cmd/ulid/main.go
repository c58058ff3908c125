package main

import (
	"os"

	"github.com/ultimicro/ulid/internal/cmd/cli"
	cfgpkg "github.com/ultimicro/ulid/internal/config"
	logpkg "github.com/ultimicro/ulid/pkg/log"
)

func main() {
	cfg := cfgpkg.Default()
	var loadErr error
	if path := cfgpkg.DefaultPath(); path != "" {
		if loaded, err := cfgpkg.Load(path); err == nil {
			cfg = loaded
		} else {
			loadErr = err
		}
	}
	cfgpkg.FromEnv(&cfg)

	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs (used by some dependencies) to our logger
	logpkg.RedirectStdLog(logger)

	if loadErr != nil {
		logger.Warn("config file ignored", logpkg.Err(loadErr))
	}

	rootCmd := cli.NewRoot(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
