// Package config loads runtime settings for the RateMyStore CLI.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the path
//     prefix (e.g. http://localhost:5000/api).
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path of the local SQLite database holding durable
//     client-side state (the session token).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "ratemystore.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
