// Package config assembles the client runtime settings from layered
// sources: defaults, an optional JSON file, the environment (with .env
// support) and command-line flags. Later sources win.
package config

import "time"

// Config holds the runtime settings of the ForCreators client.
//
// Fields:
//   - BaseURL: origin of the remote API, no trailing slash.
//   - RequestTimeout: per-request HTTP timeout; zero keeps the historical
//     wait-forever behavior.
//   - EagerMediaKit: fetch the media kit right after login/signup instead of
//     waiting for an explicit request.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	EagerMediaKit  bool
	LogLevel       string
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://forcreators.vip"
	c.RequestTimeout = 0
	c.EagerMediaKit = false
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment and command-line
// flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
