package plainai

import (
	"context"
	"net/http"
)

// ProjectService calls the organization projects endpoints.
type ProjectService struct {
	t *transport
}

// ProjectRequest describes a project create or modify call.
type ProjectRequest struct {
	fields Payload
}

// NewProjectRequest creates a project request with the given friendly name.
func NewProjectRequest(name string) *ProjectRequest {
	return &ProjectRequest{fields: Payload{
		"name": name,
	}}
}

// AppUseCase describes the business, project, or use case.
func (r *ProjectRequest) AppUseCase(useCase string) *ProjectRequest {
	r.fields.Set("app_use_case", useCase)
	return r
}

// BusinessWebsite sets a business URL or social media link.
func (r *ProjectRequest) BusinessWebsite(url string) *ProjectRequest {
	r.fields.Set("business_website", url)
	return r
}

// Create creates a project in the organization.
func (s *ProjectService) Create(ctx context.Context, req *ProjectRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/organization/projects", req.fields)
}

// List lists the organization's projects.
func (s *ProjectService) List(ctx context.Context, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/organization/projects"+query.encode(), nil)
}

// Retrieve fetches one project.
func (s *ProjectService) Retrieve(ctx context.Context, projectID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/organization/projects/"+projectID, nil)
}

// Modify updates a project's name and description fields.
func (s *ProjectService) Modify(ctx context.Context, projectID string, req *ProjectRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/organization/projects/"+projectID, req.fields)
}

// Archive archives a project; archived projects cannot be used for API
// calls.
func (s *ProjectService) Archive(ctx context.Context, projectID string) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/organization/projects/"+projectID+"/archive", Payload{})
}

// ProjectUserRequest describes adding a user to a project. Role is either
// "owner" or "member".
type ProjectUserRequest struct {
	fields Payload
}

// NewProjectUserRequest creates a project membership request for the given
// user and role.
func NewProjectUserRequest(userID, role string) *ProjectUserRequest {
	return &ProjectUserRequest{fields: Payload{
		"user_id": userID,
		"role":    role,
	}}
}

// CreateUser adds a user to a project.
func (s *ProjectService) CreateUser(ctx context.Context, projectID string, req *ProjectUserRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/organization/projects/"+projectID+"/users", req.fields)
}

// ListUsers lists the users in a project.
func (s *ProjectService) ListUsers(ctx context.Context, projectID string, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/organization/projects/"+projectID+"/users"+query.encode(), nil)
}

// RetrieveUser fetches one user's membership in a project.
func (s *ProjectService) RetrieveUser(ctx context.Context, projectID, userID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/organization/projects/"+projectID+"/users/"+userID, nil)
}

// ModifyUser changes a user's role in a project.
func (s *ProjectService) ModifyUser(ctx context.Context, projectID, userID, role string) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/organization/projects/"+projectID+"/users/"+userID, Payload{"role": role})
}

// DeleteUser removes a user from a project.
func (s *ProjectService) DeleteUser(ctx context.Context, projectID, userID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/organization/projects/"+projectID+"/users/"+userID, nil)
}
