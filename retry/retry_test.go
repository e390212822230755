package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/plainai"
)

// fastConfig keeps test backoff waits negligible.
func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoSuccess(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), DefaultConfig(), func() (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesRetryableErrors(t *testing.T) {
	calls := 0
	rateLimited := &plainai.Error{Kind: plainai.ErrorHTTP, Status: 429, Msg: "slow down"}

	result, err := Do(context.Background(), fastConfig(4), func() (string, error) {
		calls++
		if calls < 3 {
			return "", rateLimited
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	calls := 0
	badRequest := &plainai.Error{Kind: plainai.ErrorHTTP, Status: 400, Msg: "bad request"}

	_, err := Do(context.Background(), fastConfig(4), func() (string, error) {
		calls++
		return "", badRequest
	})

	assert.Equal(t, error(badRequest), err)
	assert.Equal(t, 1, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	transient := &plainai.Error{Kind: plainai.ErrorTransport, Msg: "connection reset"}

	_, err := Do(context.Background(), fastConfig(3), func() (string, error) {
		calls++
		return "", transient
	})

	assert.Equal(t, error(transient), err)
	assert.Equal(t, 3, calls)
}

func TestDoRespectsContextDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	transient := &plainai.Error{Kind: plainai.ErrorTransport, Msg: "connection reset"}

	cfg := Config{
		MaxAttempts:  3,
		InitialDelay: time.Minute, // would block without cancellation
		MaxDelay:     time.Minute,
		Multiplier:   1.0,
	}

	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, cfg, func() (string, error) {
		calls++
		return "", transient
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"transport", &plainai.Error{Kind: plainai.ErrorTransport}, true},
		{"rate limit", &plainai.Error{Kind: plainai.ErrorHTTP, Status: 429}, true},
		{"server error", &plainai.Error{Kind: plainai.ErrorHTTP, Status: 503}, true},
		{"not found", &plainai.Error{Kind: plainai.ErrorHTTP, Status: 404}, false},
		{"io", &plainai.Error{Kind: plainai.ErrorIO}, false},
		{"wrapped transient", errWrap{&plainai.Error{Kind: plainai.ErrorTransport}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Retryable(tt.err))
		})
	}
}

// errWrap wraps an error the way callers often annotate failures.
type errWrap struct {
	inner error
}

func (e errWrap) Error() string { return "call failed: " + e.inner.Error() }
func (e errWrap) Unwrap() error { return e.inner }
