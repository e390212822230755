package plainai

import (
	"context"
	"net/http"
)

// CompletionService calls the legacy text completions endpoint.
type CompletionService struct {
	t *transport
}

// CompletionRequest describes a legacy text completion call.
type CompletionRequest struct {
	fields Payload
}

// NewCompletionRequest creates a text completion request for the given model
// and prompt.
func NewCompletionRequest(model, prompt string) *CompletionRequest {
	return &CompletionRequest{fields: Payload{
		"model":  model,
		"prompt": prompt,
	}}
}

// MaxTokens caps the number of tokens generated.
func (r *CompletionRequest) MaxTokens(n int) *CompletionRequest {
	r.fields.Set("max_tokens", n)
	return r
}

// Temperature sets the sampling temperature.
func (r *CompletionRequest) Temperature(t float64) *CompletionRequest {
	r.fields.Set("temperature", t)
	return r
}

// TopP sets the nucleus sampling parameter.
func (r *CompletionRequest) TopP(p float64) *CompletionRequest {
	r.fields.Set("top_p", p)
	return r
}

// N sets how many completions to generate.
func (r *CompletionRequest) N(n int) *CompletionRequest {
	r.fields.Set("n", n)
	return r
}

// Stream requests server-sent partial progress.
func (r *CompletionRequest) Stream(stream bool) *CompletionRequest {
	r.fields.Set("stream", stream)
	return r
}

// Logprobs includes log probabilities for the given number of likely tokens.
func (r *CompletionRequest) Logprobs(n int) *CompletionRequest {
	r.fields.Set("logprobs", n)
	return r
}

// Echo echoes the prompt back in addition to the completion.
func (r *CompletionRequest) Echo(echo bool) *CompletionRequest {
	r.fields.Set("echo", echo)
	return r
}

// Stop sets sequences at which generation halts.
func (r *CompletionRequest) Stop(sequences []string) *CompletionRequest {
	r.fields.Set("stop", sequences)
	return r
}

// PresencePenalty penalizes tokens already present in the text so far.
func (r *CompletionRequest) PresencePenalty(p float64) *CompletionRequest {
	r.fields.Set("presence_penalty", p)
	return r
}

// FrequencyPenalty penalizes tokens by their frequency in the text so far.
func (r *CompletionRequest) FrequencyPenalty(p float64) *CompletionRequest {
	r.fields.Set("frequency_penalty", p)
	return r
}

// BestOf generates this many completions server-side and returns the best.
func (r *CompletionRequest) BestOf(n int) *CompletionRequest {
	r.fields.Set("best_of", n)
	return r
}

// User sets an end-user identifier for abuse monitoring.
func (r *CompletionRequest) User(id string) *CompletionRequest {
	r.fields.Set("user", id)
	return r
}

// Create sends the text completion request.
func (s *CompletionService) Create(ctx context.Context, req *CompletionRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/completions", req.fields)
}
