package plainai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// transport is the single choke point for network I/O. It owns the
// credential and base URL, both fixed at client construction, and performs
// exactly one round trip per call: no retries, no backoff, no caching.
type transport struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// call issues a JSON request. A nil body sends no payload, which is how GET
// and DELETE calls go out.
func (t *transport) call(ctx context.Context, method, path string, body Payload) (Result, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Result{}, newDecodeError("encoding request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := t.newRequest(ctx, method, path, reader)
	if err != nil {
		return Result{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return t.roundTrip(req)
}

// callForm issues a multipart/form-data request. The form is encoded, and
// every file field read from disk, before the request is sent; an unreadable
// file fails the call without touching the network.
func (t *transport) callForm(ctx context.Context, method, path string, form *Form) (Result, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return Result{}, err
	}

	req, err := t.newRequest(ctx, method, path, body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", contentType)
	return t.roundTrip(req)
}

func (t *transport) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return nil, newTransportError("creating request", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// roundTrip sends the request and normalizes the outcome: 2xx with valid
// JSON is a success, 2xx with a malformed body is a decode failure, non-2xx
// is an HTTP failure carrying the server's error message, and anything
// below that is a transport failure.
func (t *transport) roundTrip(req *http.Request) (Result, error) {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return Result{}, newTransportError("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, newTransportError("reading response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, newHTTPError(resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return Result{}, newDecodeError("response body is not valid JSON", nil)
	}
	return Result{raw: body}, nil
}
