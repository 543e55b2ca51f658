package config

import "time"

// Config holds runtime settings for the jobdeck CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the job-board REST API.
//   - DatabaseDSN: sqlite DSN for local client storage (token slot).
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	APIBaseURL     string
	DatabaseDSN    string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.DatabaseDSN = "jobdeck.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
