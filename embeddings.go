package plainai

import (
	"context"
	"net/http"
)

// EmbeddingService calls the embeddings endpoint.
type EmbeddingService struct {
	t *transport
}

// EmbeddingRequest describes an embedding call. Input may be a single string
// or a list of strings.
type EmbeddingRequest struct {
	fields Payload
}

// NewEmbeddingRequest creates an embedding request for the given model and
// input.
func NewEmbeddingRequest(model string, input any) *EmbeddingRequest {
	return &EmbeddingRequest{fields: Payload{
		"model": model,
		"input": input,
	}}
}

// EncodingFormat selects "float" or "base64" output.
func (r *EmbeddingRequest) EncodingFormat(format string) *EmbeddingRequest {
	r.fields.Set("encoding_format", format)
	return r
}

// Dimensions sets the output vector length, for models that support it.
func (r *EmbeddingRequest) Dimensions(n int) *EmbeddingRequest {
	r.fields.Set("dimensions", n)
	return r
}

// User sets an end-user identifier for abuse monitoring.
func (r *EmbeddingRequest) User(id string) *EmbeddingRequest {
	r.fields.Set("user", id)
	return r
}

// Create sends the embedding request.
func (s *EmbeddingService) Create(ctx context.Context, req *EmbeddingRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/embeddings", req.fields)
}
