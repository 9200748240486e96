package config

import "time"

// Config holds runtime settings for the CareerBridge client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: ceiling for any single backend call; a request
//     exceeding it counts as a network failure.
//   - CacheFile: path to the local SQLite session cache shared by all client
//     contexts on this machine.
//   - SyncInterval: how often the cross-context watcher polls the cache.
//   - RequireVerified: route unverified users to the verify-email page
//     instead of their profile.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	CacheFile       string
	SyncInterval    time.Duration
	RequireVerified bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.CacheFile = "careerbridge.db"
	c.SyncInterval = 2 * time.Second
	c.RequireVerified = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON config
// file, and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
