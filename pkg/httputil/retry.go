package httputil

import (
	"context"
	"errors"
	"time"
)

// Retry defaults used by [RetryWithBackoff]. PyPI hiccups are usually
// short-lived, so a handful of quick attempts is enough.
const (
	defaultAttempts = 3
	defaultDelay    = 500 * time.Millisecond
)

// RetryableError marks an error as transient. Wrap network timeouts and
// 5xx responses with it so [Retry] attempts the operation again; anything
// else fails fast.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay between tries.
// Non-retryable errors return immediately. A cancelled context wins over
// the remaining attempts.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)

	var lastErr error
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*RetryableError)) || attempt == attempts {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}

// RetryWithBackoff is [Retry] with the package defaults.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultDelay, fn)
}
