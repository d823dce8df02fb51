package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/forcreators/forcreators-cli/internal/flagx"
)

// jsonConfig is the DTO for the optional config file. The timeout is given
// in seconds to keep hand-written files simple.
type jsonConfig struct {
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds *int   `json:"request_timeout_seconds"`
	EagerMediaKit         *bool  `json:"eager_media_kit"`
	LogLevel              string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// Without the flag nothing happens; with it, read or parse errors panic,
// since running with half a config the user explicitly asked for is worse
// than not starting.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSeconds != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.EagerMediaKit != nil {
		cfg.EagerMediaKit = *jc.EagerMediaKit
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
