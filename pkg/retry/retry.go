package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// BaseDelayFor picks the base delay from the error of the failed attempt.
	BaseDelayFor func(err error) time.Duration
	// RetryIf stops retrying when it returns false.
	RetryIf func(err error) bool
	OnRetry func(attempt int, err error, delay time.Duration)
	Sleep   func(ctx context.Context, d time.Duration) error
}

type Option func(*Config)

func WithMaxAttempts(attempts int) Option {
	return func(c *Config) {
		c.MaxAttempts = attempts
	}
}

func WithBaseDelay(d time.Duration) Option {
	return func(c *Config) {
		c.BaseDelay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) {
		c.MaxDelay = d
	}
}

func WithBaseDelayFunc(fn func(err error) time.Duration) Option {
	return func(c *Config) {
		c.BaseDelayFor = fn
	}
}

func WithRetryIf(fn func(err error) bool) Option {
	return func(c *Config) {
		c.RetryIf = fn
	}
}

func WithOnRetry(fn func(attempt int, err error, delay time.Duration)) Option {
	return func(c *Config) {
		c.OnRetry = fn
	}
}

// WithSleep replaces the wait between attempts; tests use it to avoid real sleeps.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Config) {
		c.Sleep = fn
	}
}

// ErrExhausted wraps the last error once every attempt has failed.
var ErrExhausted = errors.New("max retries exceeded")

type exhaustedError struct {
	attempts int
	last     error
}

func (e *exhaustedError) Error() string {
	return fmt.Sprintf("max retries (%d) exceeded: %v", e.attempts, e.last)
}

func (e *exhaustedError) Unwrap() []error {
	return []error{ErrExhausted, e.last}
}

func Do(ctx context.Context, fn func() error, opts ...Option) error {
	cfg := &Config{
		MaxAttempts: 5,
		BaseDelay:   1 * time.Second,
		MaxDelay:    30 * time.Second,
		Sleep:       sleep,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return err
		}

		if attempt == cfg.MaxAttempts-1 {
			return &exhaustedError{attempts: cfg.MaxAttempts, last: lastErr}
		}

		base := cfg.BaseDelay
		if cfg.BaseDelayFor != nil {
			base = cfg.BaseDelayFor(err)
		}
		delay := Backoff(attempt, base, cfg.MaxDelay)

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, err, delay)
		}

		if err := cfg.Sleep(ctx, delay); err != nil {
			return err
		}
	}

	return lastErr
}

// Backoff returns baseDelay * 2^attempt capped at maxDelay (no cap when maxDelay <= 0).
// attempt is zero-based: 1s, 2s, 4s, 8s, ... for a 1s base.
func Backoff(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	delay := baseDelay * time.Duration(1<<uint(attempt))
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
