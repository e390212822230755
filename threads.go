package plainai

import (
	"context"
	"net/http"
)

// ThreadService calls the threads endpoints, including the per-thread
// message and run resources.
type ThreadService struct {
	t *transport
}

// ThreadRequest describes a thread create or modify call. All fields are
// optional; an empty request creates an empty thread.
type ThreadRequest struct {
	fields Payload
}

// NewThreadRequest creates an empty thread request.
func NewThreadRequest() *ThreadRequest {
	return &ThreadRequest{fields: Payload{}}
}

// Messages seeds the thread with an initial message history. Only honored on
// create; modify drops it, since the API does not allow rewriting history.
func (r *ThreadRequest) Messages(messages []Message) *ThreadRequest {
	r.fields.Set("messages", messages)
	return r
}

// ToolResources attaches per-tool resources such as vector store IDs.
func (r *ThreadRequest) ToolResources(resources map[string]any) *ThreadRequest {
	r.fields.Set("tool_resources", resources)
	return r
}

// Metadata attaches up to 16 key-value pairs to the thread.
func (r *ThreadRequest) Metadata(metadata map[string]any) *ThreadRequest {
	r.fields.Set("metadata", metadata)
	return r
}

// Create creates a thread.
func (s *ThreadService) Create(ctx context.Context, req *ThreadRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/threads", req.fields)
}

// Retrieve fetches one thread.
func (s *ThreadService) Retrieve(ctx context.Context, threadID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID, nil)
}

// Modify updates a thread's tool resources and metadata.
func (s *ThreadService) Modify(ctx context.Context, threadID string, req *ThreadRequest) (Result, error) {
	body := req.fields.Clone()
	delete(body, "messages")
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID, body)
}

// Delete removes a thread.
func (s *ThreadService) Delete(ctx context.Context, threadID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/threads/"+threadID, nil)
}

// MessageRequest describes a message creation call within a thread.
type MessageRequest struct {
	fields Payload
}

// NewMessageRequest creates a message request with the given role and
// content. Content is usually a string but may be a content-part list.
func NewMessageRequest(role string, content any) *MessageRequest {
	return &MessageRequest{fields: Payload{
		"role":    role,
		"content": content,
	}}
}

// Attachments attaches files to the message for specific tools.
func (r *MessageRequest) Attachments(attachments []any) *MessageRequest {
	r.fields.Set("attachments", attachments)
	return r
}

// Metadata attaches up to 16 key-value pairs to the message.
func (r *MessageRequest) Metadata(metadata map[string]any) *MessageRequest {
	r.fields.Set("metadata", metadata)
	return r
}

// CreateMessage adds a message to a thread.
func (s *ThreadService) CreateMessage(ctx context.Context, threadID string, req *MessageRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID+"/messages", req.fields)
}

// ListMessages lists a thread's messages.
func (s *ThreadService) ListMessages(ctx context.Context, threadID string, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID+"/messages"+query.encode(), nil)
}

// RetrieveMessage fetches one message.
func (s *ThreadService) RetrieveMessage(ctx context.Context, threadID, messageID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID+"/messages/"+messageID, nil)
}

// ModifyMessage replaces a message's metadata.
func (s *ThreadService) ModifyMessage(ctx context.Context, threadID, messageID string, metadata map[string]any) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID+"/messages/"+messageID, Payload{
		"metadata": metadata,
	})
}

// DeleteMessage removes a message from a thread.
func (s *ThreadService) DeleteMessage(ctx context.Context, threadID, messageID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/threads/"+threadID+"/messages/"+messageID, nil)
}
