package plainai

import (
	"context"
	"net/http"
)

// ImageService calls the image generation, edit, and variation endpoints.
// Generation is a JSON call; edits and variations upload local image files
// as multipart forms.
type ImageService struct {
	t *transport
}

// ImageRequest describes an image generation call.
type ImageRequest struct {
	fields Payload
}

// NewImageRequest creates an image generation request for the given model
// and prompt.
func NewImageRequest(model, prompt string) *ImageRequest {
	return &ImageRequest{fields: Payload{
		"model":  model,
		"prompt": prompt,
	}}
}

// Size sets the output dimensions, e.g. "1024x1024".
func (r *ImageRequest) Size(size string) *ImageRequest {
	r.fields.Set("size", size)
	return r
}

// ResponseFormat selects "url" or "b64_json" output.
func (r *ImageRequest) ResponseFormat(format string) *ImageRequest {
	r.fields.Set("response_format", format)
	return r
}

// N sets how many images to generate.
func (r *ImageRequest) N(n int) *ImageRequest {
	r.fields.Set("n", n)
	return r
}

// User sets an end-user identifier for abuse monitoring.
func (r *ImageRequest) User(id string) *ImageRequest {
	r.fields.Set("user", id)
	return r
}

// Generate sends the image generation request.
func (s *ImageService) Generate(ctx context.Context, req *ImageRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/images/generations", req.fields)
}

// ImageEditRequest describes an image edit call. The image and mask are
// local file paths uploaded with the request; an unreadable path fails the
// call before any network I/O.
type ImageEditRequest struct {
	form *Form
}

// NewImageEditRequest creates an image edit request. The mask's transparent
// areas indicate where the image should be edited per the prompt.
func NewImageEditRequest(model, imagePath, maskPath, prompt string) *ImageEditRequest {
	form := NewForm().
		Text("model", model).
		File("image", imagePath).
		File("mask", maskPath).
		Text("prompt", prompt)
	return &ImageEditRequest{form: form}
}

// Size sets the output dimensions.
func (r *ImageEditRequest) Size(size string) *ImageEditRequest {
	r.form.Text("size", size)
	return r
}

// ResponseFormat selects "url" or "b64_json" output.
func (r *ImageEditRequest) ResponseFormat(format string) *ImageEditRequest {
	r.form.Text("response_format", format)
	return r
}

// N sets how many edited images to generate.
func (r *ImageEditRequest) N(n int) *ImageEditRequest {
	r.form.Text("n", n)
	return r
}

// User sets an end-user identifier for abuse monitoring.
func (r *ImageEditRequest) User(id string) *ImageEditRequest {
	r.form.Text("user", id)
	return r
}

// Edit uploads the image and mask and sends the edit request.
func (s *ImageService) Edit(ctx context.Context, req *ImageEditRequest) (Result, error) {
	return s.t.callForm(ctx, http.MethodPost, "/images/edits", req.form)
}

// ImageVariationRequest describes an image variation call.
type ImageVariationRequest struct {
	form *Form
}

// NewImageVariationRequest creates a variation request for a local image.
func NewImageVariationRequest(model, imagePath string) *ImageVariationRequest {
	form := NewForm().
		Text("model", model).
		File("image", imagePath)
	return &ImageVariationRequest{form: form}
}

// Size sets the output dimensions.
func (r *ImageVariationRequest) Size(size string) *ImageVariationRequest {
	r.form.Text("size", size)
	return r
}

// ResponseFormat selects "url" or "b64_json" output.
func (r *ImageVariationRequest) ResponseFormat(format string) *ImageVariationRequest {
	r.form.Text("response_format", format)
	return r
}

// N sets how many variations to generate.
func (r *ImageVariationRequest) N(n int) *ImageVariationRequest {
	r.form.Text("n", n)
	return r
}

// User sets an end-user identifier for abuse monitoring.
func (r *ImageVariationRequest) User(id string) *ImageVariationRequest {
	r.form.Text("user", id)
	return r
}

// Variation uploads the image and sends the variation request.
func (s *ImageService) Variation(ctx context.Context, req *ImageVariationRequest) (Result, error) {
	return s.t.callForm(ctx, http.MethodPost, "/images/variations", req.form)
}
