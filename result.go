package plainai

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Result is the raw JSON body of a successful response. The library does not
// force a schema on any endpoint; callers either walk the document with Get
// or decode it into their own types with Decode.
type Result struct {
	raw []byte
}

// Bytes returns the response body exactly as the server sent it.
func (r Result) Bytes() []byte {
	return r.raw
}

// String returns the response body as a string.
func (r Result) String() string {
	return string(r.raw)
}

// Get looks up a value by gjson path, e.g.
// "choices.0.message.content" or "data.#.id".
func (r Result) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// Decode unmarshals the body into v for callers who want typed responses.
func (r Result) Decode(v any) error {
	if err := json.Unmarshal(r.raw, v); err != nil {
		return newDecodeError("decoding response body", err)
	}
	return nil
}
