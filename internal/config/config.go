package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"ads-campaigns/internal/config/configs"
)

// Config is the service configuration read from the environment. Each
// section is parsed with its own variable prefix.
type Config struct {
	// Env names the deployment (prod, dev, ...) and is attached to every
	// log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Storage configs.Storage  `envPrefix:"STORAGE_"`
}

// Load parses the environment into a Config, applying defaults for unset
// variables, and validates the storage section.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Storage.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
