package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys recognized by parseEnv.
const (
	envBaseURL  = "FORCREATORS_BASE_URL"
	envTimeout  = "FORCREATORS_TIMEOUT_SECONDS"
	envEagerKit = "FORCREATORS_EAGER_MEDIA_KIT"
	envLogLevel = "FORCREATORS_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the process environment, loading a
// local .env file first when one exists. Malformed numeric or boolean values
// are ignored rather than fatal; the environment is a shared namespace.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envEagerKit); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EagerMediaKit = b
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
