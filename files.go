package plainai

import (
	"context"
	"net/http"
	"net/url"
)

// FileService calls the files endpoints. Uploads are multipart forms reading
// the file from a local path.
type FileService struct {
	t *transport
}

// Upload uploads a local file under the given purpose, e.g. "fine-tune" or
// "assistants".
func (s *FileService) Upload(ctx context.Context, filePath, purpose string) (Result, error) {
	form := NewForm().
		Text("purpose", purpose).
		File("file", filePath)
	return s.t.callForm(ctx, http.MethodPost, "/files", form)
}

// List lists uploaded files. A non-empty purpose filters to that purpose.
func (s *FileService) List(ctx context.Context, purpose string) (Result, error) {
	path := "/files"
	if purpose != "" {
		path += "?purpose=" + url.QueryEscape(purpose)
	}
	return s.t.call(ctx, http.MethodGet, path, nil)
}

// Retrieve fetches a file's metadata.
func (s *FileService) Retrieve(ctx context.Context, fileID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/files/"+fileID, nil)
}

// Delete removes an uploaded file.
func (s *FileService) Delete(ctx context.Context, fileID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/files/"+fileID, nil)
}
