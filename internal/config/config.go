// Package config loads daemon configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the daemon needs to run.
type Config struct {
	DBPath            string        `env:"EMBER_DB" envDefault:"data/ember.db"`
	APIPort           int           `env:"EMBER_PORT" envDefault:"8080"`
	AdminKey          string        `env:"EMBER_ADMIN_KEY"` // empty disables POST endpoints
	HeartbeatInterval time.Duration `env:"EMBER_HEARTBEAT_INTERVAL" envDefault:"5m"`
	WorkspaceDir      string        `env:"EMBER_WORKSPACE" envDefault:"workspace"`
	SnapshotKeep      int           `env:"EMBER_SNAPSHOT_KEEP" envDefault:"500"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
