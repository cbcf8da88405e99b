package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the process-level defaults. Flags override whatever the
// environment provided.
type Config struct {
	Backend string `env:"NOESIS_BACKEND" envDefault:"memory"`
	DBPath  string `env:"NOESIS_DB" envDefault:"noesis.db"`
	Catalog string `env:"NOESIS_CATALOG"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
