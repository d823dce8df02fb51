package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("FORCREATORS_BASE_URL", "http://localhost:9000")
	t.Setenv("FORCREATORS_TIMEOUT_SECONDS", "5")
	t.Setenv("FORCREATORS_EAGER_MEDIA_KIT", "true")
	t.Setenv("FORCREATORS_LOG_LEVEL", "warn")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.EagerMediaKit)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnv_MalformedValuesIgnored(t *testing.T) {
	t.Setenv("FORCREATORS_TIMEOUT_SECONDS", "abc")
	t.Setenv("FORCREATORS_EAGER_MEDIA_KIT", "maybe")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.False(t, cfg.EagerMediaKit)
}
