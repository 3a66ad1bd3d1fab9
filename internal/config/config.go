// Package config handles runtime configuration for the API server,
// including defaults and environment variable overlay.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings for the notely server.
//
// Fields:
//   - Port: TCP port the HTTP server binds to.
//   - DatabaseURL: PostgreSQL DSN (pgx). When empty the server runs
//     against an in-memory store, intended for offline development only.
//   - AppEnv: "development" or "production"; surfaced in logs.
type Config struct {
	Port        int
	DatabaseURL string
	AppEnv      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = 8080
	c.DatabaseURL = ""
	c.AppEnv = "development"
}

// Load builds a Config by applying defaults and overlaying values from
// environment variables.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.parseEnv()
	return cfg
}

func (c *Config) parseEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("NOTES_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.AppEnv = v
	}
}
