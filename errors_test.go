package plainai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			"http error includes status",
			&Error{Kind: ErrorHTTP, Status: 404, Msg: "not found"},
			"http 404: not found",
		},
		{
			"transport error includes cause",
			&Error{Kind: ErrorTransport, Msg: "request failed", Cause: errors.New("connection refused")},
			"transport: request failed: connection refused",
		},
		{
			"decode error without cause",
			&Error{Kind: ErrorDecode, Msg: "response body is not valid JSON"},
			"decode: response body is not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := newIOError("reading training.jsonl", cause)

	assert.ErrorIs(t, err, cause)

	var apiErr *Error
	require.ErrorAs(t, error(err), &apiErr)
	assert.Equal(t, ErrorIO, apiErr.Kind)
}

func TestErrorRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		retryable bool
	}{
		{"transport", &Error{Kind: ErrorTransport}, true},
		{"rate limit", &Error{Kind: ErrorHTTP, Status: 429}, true},
		{"server error", &Error{Kind: ErrorHTTP, Status: 500}, true},
		{"bad gateway", &Error{Kind: ErrorHTTP, Status: 502}, true},
		{"bad request", &Error{Kind: ErrorHTTP, Status: 400}, false},
		{"unauthorized", &Error{Kind: ErrorHTTP, Status: 401}, false},
		{"not found", &Error{Kind: ErrorHTTP, Status: 404}, false},
		{"decode", &Error{Kind: ErrorDecode}, false},
		{"io", &Error{Kind: ErrorIO}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, tt.err.Retryable())
		})
	}
}

func TestNewHTTPError(t *testing.T) {
	t.Run("uses error.message from body", func(t *testing.T) {
		err := newHTTPError(404, []byte(`{"error": {"message": "not found"}}`))
		assert.Equal(t, ErrorHTTP, err.Kind)
		assert.Equal(t, 404, err.Status)
		assert.Equal(t, "not found", err.Msg)
	})

	t.Run("falls back to raw body", func(t *testing.T) {
		err := newHTTPError(502, []byte("upstream exploded"))
		assert.Equal(t, "upstream exploded", err.Msg)
	})

	t.Run("falls back to status text on empty body", func(t *testing.T) {
		err := newHTTPError(503, nil)
		assert.Equal(t, "Service Unavailable", err.Msg)
	})

	t.Run("ignores empty error.message", func(t *testing.T) {
		err := newHTTPError(500, []byte(`{"error": {"message": ""}}`))
		assert.Equal(t, `{"error": {"message": ""}}`, err.Msg)
	})
}
