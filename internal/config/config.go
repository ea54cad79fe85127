// Package config loads storage box settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the host needs.
type Config struct {
	DefaultCapacity int    `env:"STORAGEBOX_DEFAULT_CAPACITY" envDefault:"27"`
	TargetCapacity  int    `env:"STORAGEBOX_TARGET_CAPACITY" envDefault:"54"`
	Columns         int    `env:"STORAGEBOX_COLUMNS" envDefault:"9"`
	MaxRows         int    `env:"STORAGEBOX_MAX_ROWS" envDefault:"6"`
	TitleKey        string `env:"STORAGEBOX_TITLE_KEY" envDefault:"container.enderchest"`
	PlayerName      string `env:"STORAGEBOX_PLAYER" envDefault:"Steve"`
	SessionLog      bool   `env:"STORAGEBOX_SESSION_LOG" envDefault:"true"`
	Logging         LoggingConfig
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level string `env:"STORAGEBOX_LOG_LEVEL" envDefault:"info"`
	JSON  bool   `env:"STORAGEBOX_LOG_JSON" envDefault:"false"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Load reads the optional dotenv files, then the process environment.
// A missing dotenv file is not an error.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that both capacities fit whole rows of the grid.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalid, c.Columns)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("%w: max rows must not be negative, got %d", ErrInvalid, c.MaxRows)
	}
	for _, f := range []struct {
		name string
		val  int
	}{
		{"default capacity", c.DefaultCapacity},
		{"target capacity", c.TargetCapacity},
	} {
		if f.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, f.name, f.val)
		}
		if f.val%c.Columns != 0 {
			return fmt.Errorf("%w: %s %d is not a multiple of %d columns", ErrInvalid, f.name, f.val, c.Columns)
		}
		if c.MaxRows > 0 && f.val/c.Columns > c.MaxRows {
			return fmt.Errorf("%w: %s %d needs more than %d rows", ErrInvalid, f.name, f.val, c.MaxRows)
		}
	}
	return nil
}
