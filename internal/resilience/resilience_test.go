package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/logger"
	"github.com/edgard/restobot/internal/resilience"
)

var errBoom = errors.New("boom")

func fastConfig(attempts int) resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.MaxAttempts = attempts
	cfg.InitialInterval = time.Millisecond
	cfg.MaxInterval = 5 * time.Millisecond
	cfg.Logger = logger.Discard()
	return cfg
}

func TestWithRetry_SingleAttemptReturnsErrorUnchanged(t *testing.T) {
	t.Parallel()

	calls := 0
	err := resilience.WithRetry(context.Background(), func(context.Context) error {
		calls++
		return errBoom
	}, fastConfig(1))

	assert.Equal(t, errBoom, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := resilience.WithRetry(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	}, fastConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_Exhausted(t *testing.T) {
	t.Parallel()

	calls := 0
	err := resilience.WithRetry(context.Background(), func(context.Context) error {
		calls++
		return errBoom
	}, fastConfig(3))

	assert.ErrorIs(t, err, resilience.ErrExhaustedRetries)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_NonRetryableStops(t *testing.T) {
	t.Parallel()

	cfg := fastConfig(5)
	cfg.Retryable = func(err error) bool { return false }

	calls := 0
	err := resilience.WithRetry(context.Background(), func(context.Context) error {
		calls++
		return errBoom
	}, cfg)

	assert.Equal(t, errBoom, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_WaitOverride(t *testing.T) {
	t.Parallel()

	cfg := fastConfig(2)
	cfg.InitialInterval = time.Hour
	cfg.MaxInterval = time.Hour
	cfg.Wait = func(error) (time.Duration, bool) { return time.Millisecond, true }

	calls := 0
	err := resilience.WithRetry(context.Background(), func(context.Context) error {
		calls++
		if calls == 1 {
			return errBoom
		}
		return nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(5)
	cfg.InitialInterval = time.Hour
	cfg.MaxInterval = time.Hour

	err := resilience.WithRetry(ctx, func(context.Context) error {
		cancel()
		return errBoom
	}, cfg)

	assert.ErrorIs(t, err, context.Canceled)
}
