// Package config loads runtime settings for the SupportPilot client.
//
// Sources are layered, later ones overriding earlier: built-in defaults,
// environment variables (with optional .env file), a JSON config file given
// via -c/-config, and finally command-line flags.
package config

import "time"

// Config holds runtime settings for the SupportPilot client.
//
// Fields:
//   - BaseURL: root of the backend API, e.g. "http://localhost:5001/api".
//   - RequestTimeout: per-request bound for API calls.
//   - DatabasePath: sqlite file for locally persisted session state.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5001/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "supportpilot.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
