package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithFile(t *testing.T) {
	path := writeConfig(t, `
http:
  app_base_url: "https://food.example.com/"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.Logger.Level)
	assert.Equal(t, config.DefaultHTTPAddr, cfg.HTTP.Addr)
	assert.Equal(t, "https://food.example.com", cfg.AppBaseURL())
	assert.Equal(t, 10*time.Second, cfg.Telegram.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.Telegram.RequestTimeout)
	assert.Equal(t, 40, cfg.Telegram.MaxConnections)
	assert.Equal(t, 1, cfg.Publisher.MaxAttempts)
	assert.True(t, cfg.Scheduler.Tasks["sql_maintenance"].Enabled)
	assert.True(t, cfg.Scheduler.Tasks["webhook_audit"].Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
http:
  app_base_url: "https://food.example.com"
publisher:
  max_attempts: 2
`)
	t.Setenv("RESTOBOT_PUBLISHER_MAX_ATTEMPTS", "3")
	t.Setenv("RESTOBOT_TELEGRAM_REQUEST_TIMEOUT", "45s")
	t.Setenv("RESTOBOT_LOGGER_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Publisher.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Telegram.RequestTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing app base url",
			body: "logger:\n  level: info\n",
		},
		{
			name: "bad log level",
			body: "http:\n  app_base_url: https://a.example\nlogger:\n  level: loud\n",
		},
		{
			name: "bad encryption key",
			body: "http:\n  app_base_url: https://a.example\ndatabase:\n  encryption_key: nothex\n",
		},
		{
			name: "backoff inverted",
			body: "http:\n  app_base_url: https://a.example\npublisher:\n  initial_backoff: 5s\n  max_backoff: 1s\n",
		},
		{
			name: "enabled task without schedule",
			body: "http:\n  app_base_url: https://a.example\nscheduler:\n  tasks:\n    custom:\n      enabled: true\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrConfiguration), "error should wrap ErrConfiguration: %v", err)
		})
	}
}
