package plainai

import (
	"context"
	"net/http"
)

// ChatService calls the chat completions endpoint.
type ChatService struct {
	t *transport
}

// Message is one entry in a chat conversation. Content is usually a string
// but may be a structured content-part list; it is passed to the wire
// untouched.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
	Name    string `json:"name,omitempty"`
}

// ChatRequest describes a chat completion call. The model and message
// history are fixed at construction; every other field is optional and only
// sent when its setter was called. Setters do no validation — out-of-range
// values go to the server uninspected.
type ChatRequest struct {
	fields Payload
}

// NewChatRequest creates a chat completion request for the given model and
// conversation history.
func NewChatRequest(model string, messages []Message) *ChatRequest {
	return &ChatRequest{fields: Payload{
		"model":    model,
		"messages": messages,
	}}
}

// MaxTokens caps the number of tokens generated.
func (r *ChatRequest) MaxTokens(n int) *ChatRequest {
	r.fields.Set("max_tokens", n)
	return r
}

// Temperature sets the sampling temperature.
func (r *ChatRequest) Temperature(t float64) *ChatRequest {
	r.fields.Set("temperature", t)
	return r
}

// TopP sets the nucleus sampling parameter.
func (r *ChatRequest) TopP(p float64) *ChatRequest {
	r.fields.Set("top_p", p)
	return r
}

// N sets how many completions to generate.
func (r *ChatRequest) N(n int) *ChatRequest {
	r.fields.Set("n", n)
	return r
}

// Stream requests server-sent partial progress instead of a single body.
func (r *ChatRequest) Stream(stream bool) *ChatRequest {
	r.fields.Set("stream", stream)
	return r
}

// Stop sets up to four sequences at which generation halts.
func (r *ChatRequest) Stop(sequences []string) *ChatRequest {
	r.fields.Set("stop", sequences)
	return r
}

// PresencePenalty penalizes tokens already present in the text so far.
func (r *ChatRequest) PresencePenalty(p float64) *ChatRequest {
	r.fields.Set("presence_penalty", p)
	return r
}

// FrequencyPenalty penalizes tokens by their frequency in the text so far.
func (r *ChatRequest) FrequencyPenalty(p float64) *ChatRequest {
	r.fields.Set("frequency_penalty", p)
	return r
}

// LogitBias adjusts the likelihood of specific tokens, keyed by token ID.
func (r *ChatRequest) LogitBias(bias map[string]float64) *ChatRequest {
	r.fields.Set("logit_bias", bias)
	return r
}

// User sets an end-user identifier for abuse monitoring.
func (r *ChatRequest) User(id string) *ChatRequest {
	r.fields.Set("user", id)
	return r
}

// Create sends the chat completion request.
func (s *ChatService) Create(ctx context.Context, req *ChatRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/chat/completions", req.fields)
}
