package plainai

import (
	"context"
	"net/http"
)

// ModerationService calls the moderations endpoint.
type ModerationService struct {
	t *transport
}

// ModerationRequest describes a moderation call.
type ModerationRequest struct {
	fields Payload
}

// NewModerationRequest creates a moderation request for the given input.
func NewModerationRequest(input string) *ModerationRequest {
	return &ModerationRequest{fields: Payload{
		"input": input,
	}}
}

// Model selects a specific moderation model instead of the server default.
func (r *ModerationRequest) Model(model string) *ModerationRequest {
	r.fields.Set("model", model)
	return r
}

// Create sends the moderation request.
func (s *ModerationService) Create(ctx context.Context, req *ModerationRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/moderations", req.fields)
}
