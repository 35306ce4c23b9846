// Package config loads application settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config defines application settings.
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	DBPath          string        `envconfig:"DB_PATH" default:"./data/tasklist.db"`
	StorageBackend  string        `envconfig:"STORAGE_BACKEND" default:"sqlite"`
	StorageKey      string        `envconfig:"STORAGE_KEY" default:"tasks"`
	Latency         time.Duration `envconfig:"LATENCY" default:"500ms"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.StorageBackend != BackendSQLite && c.StorageBackend != BackendMemory {
		return fmt.Errorf("storage backend must be '%s' or '%s', got %q", BackendSQLite, BackendMemory, c.StorageBackend)
	}

	if c.StorageBackend == BackendSQLite && c.DBPath == "" {
		return fmt.Errorf("db path is required for the %s backend", BackendSQLite)
	}

	if c.StorageKey == "" {
		return fmt.Errorf("storage key is required")
	}

	if c.Latency < 0 {
		return fmt.Errorf("latency must not be negative, got %s", c.Latency)
	}

	return nil
}
