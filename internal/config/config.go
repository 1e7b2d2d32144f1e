// Package config loads stocksync settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. STOCKSYNC_LISTEN_ADDR.
const Prefix = "stocksync"

// Config holds process settings. Command-line flags override these.
type Config struct {
	DBPath      string `envconfig:"DB_PATH" default:"stocksync.sqlite3"`
	Addr        string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogPath     string `envconfig:"LOG_FILE"`
	Username    string `envconfig:"OPERATOR_USERNAME" default:"demo"`
	Password    string `envconfig:"OPERATOR_PASSWORD" default:"password"`
	SnapshotKey string `envconfig:"SNAPSHOT_KEY" default:"inventory-products"`
}

// Load reads Config from STOCKSYNC_* environment variables.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}
