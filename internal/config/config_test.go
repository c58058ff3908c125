package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != FormatCanonical {
		t.Fatalf("default format")
	}
	if cfg.Count != 1 {
		t.Fatalf("default count")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("default log settings")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	data := []byte(`{"format":"hex","count":5,"logLevel":"debug"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != FormatHex {
		t.Fatalf("expected hex")
	}
	if cfg.Count != 5 {
		t.Fatalf("expected 5")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug")
	}
	// untouched keys keep their defaults
	if cfg.LogFormat != "text" {
		t.Fatalf("expected text")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	if err := os.WriteFile(file, []byte(`{"format":"base64"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("empty path should yield defaults")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("ULID_FORMAT", "json")
	t.Setenv("ULID_COUNT", "3")
	t.Setenv("ULID_LOG_LEVEL", "warn")
	FromEnv(&cfg)
	if cfg.Format != FormatJSON {
		t.Fatalf("env override format")
	}
	if cfg.Count != 3 {
		t.Fatalf("env override count")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("env override log level")
	}
}

func TestDefaultPathExplicit(t *testing.T) {
	t.Setenv("ULID_CONFIG", "/tmp/explicit.json")
	if got := DefaultPath(); got != "/tmp/explicit.json" {
		t.Fatalf("explicit config path: %q", got)
	}
}
