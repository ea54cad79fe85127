package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultCapacity != 27 || cfg.TargetCapacity != 54 || cfg.Columns != 9 {
		t.Errorf("capacities = %d/%d cols %d; want 27/54 cols 9", cfg.DefaultCapacity, cfg.TargetCapacity, cfg.Columns)
	}
	if cfg.MaxRows != 6 {
		t.Errorf("MaxRows = %d; want 6", cfg.MaxRows)
	}
	if cfg.TitleKey != "container.enderchest" {
		t.Errorf("TitleKey = %q", cfg.TitleKey)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.JSON {
		t.Errorf("Logging = %+v; want info text", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORAGEBOX_TARGET_CAPACITY", "36")
	t.Setenv("STORAGEBOX_LOG_JSON", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetCapacity != 36 {
		t.Errorf("TargetCapacity = %d; want 36", cfg.TargetCapacity)
	}
	if !cfg.Logging.JSON {
		t.Error("Logging.JSON should be true")
	}
}

func TestLoadDotenvFile(t *testing.T) {
	const key = "STORAGEBOX_PLAYER"
	// Register a restore, then clear so the dotenv value is not shadowed.
	t.Setenv(key, "")
	os.Unsetenv(key)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=Alex\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PlayerName != "Alex" {
		t.Errorf("PlayerName = %q; want Alex", cfg.PlayerName)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("STORAGEBOX_COLUMNS", "nine")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := Config{DefaultCapacity: 27, TargetCapacity: 54, Columns: 9, MaxRows: 6}
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no row limit", func(c *Config) { c.MaxRows = 0; c.TargetCapacity = 90 }, true},
		{"zero columns", func(c *Config) { c.Columns = 0 }, false},
		{"zero target", func(c *Config) { c.TargetCapacity = 0 }, false},
		{"negative default", func(c *Config) { c.DefaultCapacity = -9 }, false},
		{"target not divisible", func(c *Config) { c.TargetCapacity = 50 }, false},
		{"default not divisible", func(c *Config) { c.DefaultCapacity = 20 }, false},
		{"too many rows", func(c *Config) { c.TargetCapacity = 63 }, false},
		{"negative max rows", func(c *Config) { c.MaxRows = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("error = %v; want ErrInvalid", err)
			}
		})
	}
}
