package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/config"
	"github.com/edgard/restobot/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Logger:   config.LoggerConfig{Level: "debug"},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "app.db")},
		HTTP: config.HTTPConfig{
			Addr:              "127.0.0.1:0",
			AppBaseURL:        "https://food.example.com/",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
		},
		Telegram: config.TelegramConfig{
			APIBaseURL:      "https://api.telegram.org",
			ConnectTimeout:  time.Second,
			RequestTimeout:  time.Second,
			MaxConnections:  40,
			DefaultLanguage: "en",
		},
		Publisher: config.PublisherConfig{
			Workers:        1,
			MaxAttempts:    1,
			InitialBackoff: 10 * time.Millisecond,
			MaxBackoff:     10 * time.Millisecond,
			RatePerSecond:  1,
			JobTimeout:     time.Second,
		},
		Scheduler: config.SchedulerConfig{Tasks: config.DefaultTasks},
	}
}

func TestNewWiresComponents(t *testing.T) {
	t.Parallel()

	a, err := New(testConfig(t), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Orchestrator)
	assert.NotNil(t, a.Publisher)
	assert.NotNil(t, a.Queue)
	assert.NotNil(t, a.Scheduler)
	assert.NotNil(t, a.Server)
	require.NoError(t, a.Store.Ping(context.Background()))
}

func TestNewRejectsBadEncryptionKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Database.EncryptionKey = "not-hex"
	_, err := New(cfg, logger.Discard())
	require.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	a, err := New(testConfig(t), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
