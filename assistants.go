package plainai

import (
	"context"
	"net/http"
)

// AssistantService calls the assistants endpoints.
type AssistantService struct {
	t *transport
}

// AssistantRequest describes an assistant create or modify call.
type AssistantRequest struct {
	fields Payload
}

// NewAssistantRequest creates an assistant request for the given model.
func NewAssistantRequest(model string) *AssistantRequest {
	return &AssistantRequest{fields: Payload{
		"model": model,
	}}
}

// Name sets the assistant's display name.
func (r *AssistantRequest) Name(name string) *AssistantRequest {
	r.fields.Set("name", name)
	return r
}

// Description sets the assistant's description.
func (r *AssistantRequest) Description(description string) *AssistantRequest {
	r.fields.Set("description", description)
	return r
}

// Instructions sets the assistant's system instructions.
func (r *AssistantRequest) Instructions(instructions string) *AssistantRequest {
	r.fields.Set("instructions", instructions)
	return r
}

// Tools sets the tools the assistant may call. Each entry is a tool
// definition object passed through to the wire untouched.
func (r *AssistantRequest) Tools(tools []any) *AssistantRequest {
	r.fields.Set("tools", tools)
	return r
}

// ToolResources attaches per-tool resources such as vector store IDs.
func (r *AssistantRequest) ToolResources(resources map[string]any) *AssistantRequest {
	r.fields.Set("tool_resources", resources)
	return r
}

// Metadata attaches up to 16 key-value pairs to the assistant.
func (r *AssistantRequest) Metadata(metadata map[string]any) *AssistantRequest {
	r.fields.Set("metadata", metadata)
	return r
}

// Temperature sets the sampling temperature.
func (r *AssistantRequest) Temperature(t float64) *AssistantRequest {
	r.fields.Set("temperature", t)
	return r
}

// TopP sets the nucleus sampling parameter.
func (r *AssistantRequest) TopP(p float64) *AssistantRequest {
	r.fields.Set("top_p", p)
	return r
}

// ResponseFormat constrains the assistant's output format.
func (r *AssistantRequest) ResponseFormat(format any) *AssistantRequest {
	r.fields.Set("response_format", format)
	return r
}

// Create creates an assistant.
func (s *AssistantService) Create(ctx context.Context, req *AssistantRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/assistants", req.fields)
}

// List lists assistants.
func (s *AssistantService) List(ctx context.Context, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/assistants"+query.encode(), nil)
}

// Retrieve fetches one assistant.
func (s *AssistantService) Retrieve(ctx context.Context, assistantID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/assistants/"+assistantID, nil)
}

// Modify updates an assistant with the fields set on the request.
func (s *AssistantService) Modify(ctx context.Context, assistantID string, req *AssistantRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/assistants/"+assistantID, req.fields)
}

// Delete removes an assistant.
func (s *AssistantService) Delete(ctx context.Context, assistantID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/assistants/"+assistantID, nil)
}
