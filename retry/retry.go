package retry

import (
	"context"
	"errors"
	"time"
)

// retryableError is the classification surface plainai errors expose.
type retryableError interface {
	error
	Retryable() bool
}

// Retryable reports whether err, or any error it wraps, says a later
// identical call could succeed.
func Retryable(err error) bool {
	var re retryableError
	if errors.As(err, &re) {
		return re.Retryable()
	}
	return false
}

// Do runs fn until it succeeds, returns a non-retryable error, or exhausts
// cfg.MaxAttempts. Backoff waits respect context cancellation.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !Retryable(err) {
			return zero, err
		}

		if attempt < cfg.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(cfg.delay(attempt)):
			}
		}
	}

	return zero, lastErr
}
