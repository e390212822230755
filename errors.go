package plainai

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrorKind classifies where a failed call went wrong.
type ErrorKind string

const (
	// ErrorTransport indicates a network-level failure: DNS resolution,
	// TLS handshake, connection reset, or reading the response body.
	ErrorTransport ErrorKind = "transport"

	// ErrorHTTP indicates the server answered with a non-2xx status.
	ErrorHTTP ErrorKind = "http"

	// ErrorDecode indicates a 2xx response whose body was not valid JSON.
	ErrorDecode ErrorKind = "decode"

	// ErrorIO indicates a local file for an upload could not be read.
	// No network call is made when this is returned.
	ErrorIO ErrorKind = "io"
)

// Error is the single error type returned by every failed call.
// The library never retries, logs, or suppresses a failure; each error is
// terminal for its call and retry policy belongs to the caller.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status code; 0 unless Kind is ErrorHTTP
	Msg    string // best-effort human-readable description
	Cause  error  // underlying error, if any
}

// Error returns the error message.
func (e *Error) Error() string {
	switch {
	case e.Kind == ErrorHTTP:
		return fmt.Sprintf("%s %d: %s", e.Kind, e.Status, e.Msg)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Status
}

// Retryable reports whether a later identical call could plausibly succeed:
// transport failures, rate limits, and server errors. The library itself
// never consults this; it exists for callers and the retry package.
func (e *Error) Retryable() bool {
	if e.Kind == ErrorTransport {
		return true
	}
	if e.Kind != ErrorHTTP {
		return false
	}
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

func newTransportError(msg string, cause error) *Error {
	return &Error{Kind: ErrorTransport, Msg: msg, Cause: cause}
}

func newDecodeError(msg string, cause error) *Error {
	return &Error{Kind: ErrorDecode, Msg: msg, Cause: cause}
}

func newIOError(msg string, cause error) *Error {
	return &Error{Kind: ErrorIO, Msg: msg, Cause: cause}
}

// newHTTPError builds the error for a non-2xx response. The message is the
// body's error.message field when present, else the raw body text, else the
// status text.
func newHTTPError(status int, body []byte) *Error {
	msg := http.StatusText(status)
	if len(body) > 0 {
		msg = string(body)
		if m := gjson.GetBytes(body, "error.message"); m.Exists() && m.String() != "" {
			msg = m.String()
		}
	}
	return &Error{Kind: ErrorHTTP, Status: status, Msg: msg}
}
