package config

import "time"

// Config holds runtime settings for the custdesk CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the REST backend, no trailing slash.
//   - RequestTimeout: per-request timeout for API calls.
//   - CredentialsPath: SQLite file keeping the session credentials.
//   - Ephemeral: when true, credentials live in memory only.
//   - DefaultPageSize: initial page size of the customer list.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	CredentialsPath string
	Ephemeral       bool
	DefaultPageSize int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.CredentialsPath = "custdesk.db"
	c.Ephemeral = false
	c.DefaultPageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
