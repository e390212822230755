package plainai

import (
	"context"
	"net/http"
)

// VectorStoreService calls the vector stores endpoints.
type VectorStoreService struct {
	t *transport
}

// VectorStoreRequest describes a vector store create or modify call. All
// fields are optional.
type VectorStoreRequest struct {
	fields Payload
}

// NewVectorStoreRequest creates an empty vector store request.
func NewVectorStoreRequest() *VectorStoreRequest {
	return &VectorStoreRequest{fields: Payload{}}
}

// FileIDs sets the uploaded files the store should index.
func (r *VectorStoreRequest) FileIDs(fileIDs []string) *VectorStoreRequest {
	r.fields.Set("file_ids", fileIDs)
	return r
}

// Name sets the store's display name.
func (r *VectorStoreRequest) Name(name string) *VectorStoreRequest {
	r.fields.Set("name", name)
	return r
}

// ExpiresAfter sets the store's expiration policy.
func (r *VectorStoreRequest) ExpiresAfter(policy map[string]any) *VectorStoreRequest {
	r.fields.Set("expires_after", policy)
	return r
}

// ChunkingStrategy controls how files are split before embedding. Only
// honored on create; modify drops it along with file_ids.
func (r *VectorStoreRequest) ChunkingStrategy(strategy map[string]any) *VectorStoreRequest {
	r.fields.Set("chunking_strategy", strategy)
	return r
}

// Metadata attaches up to 16 key-value pairs to the store.
func (r *VectorStoreRequest) Metadata(metadata map[string]any) *VectorStoreRequest {
	r.fields.Set("metadata", metadata)
	return r
}

// Create creates a vector store.
func (s *VectorStoreService) Create(ctx context.Context, req *VectorStoreRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/vector_stores", req.fields)
}

// List lists vector stores.
func (s *VectorStoreService) List(ctx context.Context, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/vector_stores"+query.encode(), nil)
}

// Retrieve fetches one vector store.
func (s *VectorStoreService) Retrieve(ctx context.Context, vectorStoreID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/vector_stores/"+vectorStoreID, nil)
}

// Modify updates a vector store's name, expiration policy, and metadata.
func (s *VectorStoreService) Modify(ctx context.Context, vectorStoreID string, req *VectorStoreRequest) (Result, error) {
	body := req.fields.Clone()
	delete(body, "file_ids")
	delete(body, "chunking_strategy")
	return s.t.call(ctx, http.MethodPost, "/vector_stores/"+vectorStoreID, body)
}

// Delete removes a vector store.
func (s *VectorStoreService) Delete(ctx context.Context, vectorStoreID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/vector_stores/"+vectorStoreID, nil)
}
