package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ClaimScout/internal/domain/similarity"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(DefaultMaxBodySize), cfg.Server.MaxBodySize)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, similarity.DefaultTopK, cfg.Search.TopK)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.InDelta(t, 0.7, cfg.OpenAI.Temperature, 1e-9)
	assert.False(t, cfg.PDF.Enabled)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8443
  shutdown_timeout: 5s
log:
  level: debug
  format: console
search:
  top_k: 3
openai:
  api_key: sk-test
  model: gpt-4o-mini
  temperature: 0.2
  timeout: 30s
pdf:
  enabled: true
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8443, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Search.TopK)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout)
	assert.True(t, cfg.PDF.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CLAIMSCOUT_SERVER_PORT", "7070")
	t.Setenv("CLAIMSCOUT_LOG_LEVEL", "warn")
	t.Setenv("CLAIMSCOUT_OPENAI_API_KEY", "sk-env")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero top_k", func(c *Config) { c.Search.TopK = -1 }, "search.top_k"},
		{"temperature out of range", func(c *Config) { c.OpenAI.Temperature = 3.5 }, "openai.temperature"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			ApplyDefaults(cfg)
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8001
	cfg.Search.TopK = 25
	ApplyDefaults(cfg)

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Search.TopK)
	require.NoError(t, cfg.Validate())
}
