package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"cmd"}, args...)
}

func TestParseJSON_Overlays(t *testing.T) {
	path := writeConfigFile(t, `{
		"base_url": "http://localhost:8000",
		"request_timeout_seconds": 30,
		"eager_media_kit": true,
		"log_level": "debug"
	}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.EagerMediaKit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"base_url": "http://localhost:8000"}`)
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EagerMediaKit)
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseJSON(cfg) })
	assert.Equal(t, "https://forcreators.vip", cfg.BaseURL)
}

func TestParseJSON_BadFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJSON(cfg) })
}

func TestParseJSON_MissingFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJSON(cfg) })
}
