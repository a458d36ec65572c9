package config

import "time"

// Config holds runtime settings for the intake client.
//
// Fields:
//   - BaseURL: base URL of the auth backend, no trailing slash required.
//   - RequestTimeout: deadline applied to each HTTP request.
//   - StorePath: SQLite path for the local store; ":memory:" keeps the
//     session in process memory only.
//   - EmailDomain: required suffix for account emails (the domain policy).
//   - VerifyLink: a pasted verification link or bare token, consumed once
//     at startup.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	StorePath      string
	EmailDomain    string
	VerifyLink     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8081"
	c.RequestTimeout = 15 * time.Second
	c.StorePath = "intake.db"
	c.EmailDomain = "@gmail.com"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
