// Package resilience retries Bot API deliveries with exponential backoff and jitter.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// ErrExhaustedRetries indicates retry attempts were exhausted.
var ErrExhaustedRetries = errors.New("retry attempts exhausted")

// RetryConfig holds configuration for retry operations.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	RandomFactor    float64
	// Retryable decides whether an error is worth another attempt. Nil retries everything.
	Retryable func(error) bool
	// Wait overrides the backoff for errors that carry their own delay (e.g. retry_after).
	Wait func(error) (time.Duration, bool)
	Logger *slog.Logger
}

// DefaultRetryConfig returns a default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		RandomFactor:    0.1,
	}
}

// WithRetry executes an operation with exponential backoff retry.
// With a single attempt the operation's error is returned unchanged.
func WithRetry(ctx context.Context, operation func(context.Context) error, cfg RetryConfig) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	var lastErr error
	interval := cfg.InitialInterval
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := operation(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return fmt.Errorf("retry abandoned: %w", ctx.Err())
		}
		if cfg.MaxAttempts == 1 {
			return err
		}
		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		wait := interval
		if cfg.Wait != nil {
			if d, ok := cfg.Wait(err); ok {
				wait = d
			}
		}
		jitter := 1.0 + (cfg.RandomFactor * (2*rnd.Float64() - 1))
		wait = time.Duration(float64(wait) * jitter)
		if cfg.MaxInterval > 0 && wait > cfg.MaxInterval {
			wait = cfg.MaxInterval
		}

		log.DebugContext(ctx, "Operation failed, retrying",
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"next_interval", wait,
			"error", err,
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry abandoned: %w", ctx.Err())
		case <-timer.C:
		}
		interval = time.Duration(float64(interval) * cfg.Multiplier)
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhaustedRetries, cfg.MaxAttempts, lastErr)
}
