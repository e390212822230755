// Package retry wraps plainai calls with exponential backoff for errors the
// client marks retryable. The client itself is strictly single-attempt; this
// package is the opt-in layer for callers who want resilience.
package retry

import (
	"math"
	"math/rand"
	"time"
)

// Config holds backoff parameters.
type Config struct {
	// MaxAttempts is the total number of attempts, the initial call
	// included.
	MaxAttempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the wait between retries.
	MaxDelay time.Duration

	// Multiplier grows the delay after each attempt.
	Multiplier float64

	// Jitter randomizes each delay by up to this fraction in either
	// direction, spreading out retries from concurrent callers.
	Jitter float64
}

// DefaultConfig returns a moderate policy: 5 attempts starting at 500ms,
// doubling up to 30s, with 10% jitter.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// delay computes the wait after the given zero-indexed attempt.
func (c Config) delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	d := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt))
	if d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	if c.Jitter > 0 {
		d *= 1 + (rand.Float64()*2-1)*c.Jitter
	}
	return time.Duration(d)
}
