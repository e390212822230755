package plainai

import (
	"context"
	"net/http"
)

// ModelService calls the models endpoints.
type ModelService struct {
	t *transport
}

// List lists the models available to the credential.
func (s *ModelService) List(ctx context.Context) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/models", nil)
}

// Retrieve fetches one model's metadata.
func (s *ModelService) Retrieve(ctx context.Context, modelID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/models/"+modelID, nil)
}

// Delete removes a fine-tuned model owned by the organization.
func (s *ModelService) Delete(ctx context.Context, modelID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/models/"+modelID, nil)
}
