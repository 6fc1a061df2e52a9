// Package config loads the probe's configuration from the environment.
// Command-line flags, parsed in cmd/catalogprobe, override these values.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the probe needs for a run.
type Config struct {
	// BaseURL is the catalog service address, including the API prefix.
	BaseURL string `env:"CATALOG_BASE_URL" envDefault:"http://localhost:8080/api"`

	// Users and Products are the seed counts. Categories are fixed by the
	// fixture set.
	Users    int `env:"CATALOG_USERS" envDefault:"20"`
	Products int `env:"CATALOG_PRODUCTS" envDefault:"1000"`

	// Seed is an optional phrase making generation deterministic.
	Seed string `env:"CATALOG_SEED"`

	// SkipReset leaves existing remote data in place and seeds on top.
	SkipReset bool `env:"CATALOG_SKIP_RESET"`

	// Timeout bounds each individual remote call.
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"30s"`

	// Verbose echoes every check result instead of only failures.
	Verbose bool `env:"CATALOG_VERBOSE"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects values no run could work with.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base URL must not be empty")
	}
	if c.Users < 1 {
		return fmt.Errorf("config: user count must be at least 1, got %d", c.Users)
	}
	if c.Products < 0 {
		return fmt.Errorf("config: product count must not be negative, got %d", c.Products)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
