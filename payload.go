package plainai

// Payload accumulates the JSON object body for a single request. Required
// fields are set when a descriptor is constructed; optional fields are added
// by the descriptor's fluent setters. A key that was never set is never
// emitted when the payload is serialized.
type Payload map[string]any

// Set stores a field value and returns the payload for chaining.
// Values are not validated; the remote service is the authority on
// acceptable ranges and enums.
func (p Payload) Set(key string, value any) Payload {
	p[key] = value
	return p
}

// Clone returns a shallow copy of the payload. Descriptors use it so that
// reading a descriptor's fields never exposes the internal map to mutation.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
