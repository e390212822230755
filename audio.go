package plainai

import (
	"context"
	"net/http"
)

// AudioService calls the audio transcription and translation endpoints.
// Both upload a local audio file as a multipart form.
type AudioService struct {
	t *transport
}

// TranscriptionRequest describes an audio transcription call.
type TranscriptionRequest struct {
	form *Form
}

// NewTranscriptionRequest creates a transcription request for a local audio
// file.
func NewTranscriptionRequest(model, filePath string) *TranscriptionRequest {
	form := NewForm().
		Text("model", model).
		File("file", filePath)
	return &TranscriptionRequest{form: form}
}

// Prompt guides the transcription style or supplies context.
func (r *TranscriptionRequest) Prompt(prompt string) *TranscriptionRequest {
	r.form.Text("prompt", prompt)
	return r
}

// ResponseFormat selects the output format, e.g. "json" or "text".
func (r *TranscriptionRequest) ResponseFormat(format string) *TranscriptionRequest {
	r.form.Text("response_format", format)
	return r
}

// Temperature sets the sampling temperature.
func (r *TranscriptionRequest) Temperature(t float64) *TranscriptionRequest {
	r.form.Text("temperature", t)
	return r
}

// Language hints the input language as an ISO-639-1 code.
func (r *TranscriptionRequest) Language(lang string) *TranscriptionRequest {
	r.form.Text("language", lang)
	return r
}

// Transcribe uploads the audio file and sends the transcription request.
func (s *AudioService) Transcribe(ctx context.Context, req *TranscriptionRequest) (Result, error) {
	return s.t.callForm(ctx, http.MethodPost, "/audio/transcriptions", req.form)
}

// TranslationRequest describes an audio-to-English translation call.
type TranslationRequest struct {
	form *Form
}

// NewTranslationRequest creates a translation request for a local audio
// file.
func NewTranslationRequest(model, filePath string) *TranslationRequest {
	form := NewForm().
		Text("model", model).
		File("file", filePath)
	return &TranslationRequest{form: form}
}

// Prompt guides the translation style or supplies context.
func (r *TranslationRequest) Prompt(prompt string) *TranslationRequest {
	r.form.Text("prompt", prompt)
	return r
}

// ResponseFormat selects the output format, e.g. "json" or "text".
func (r *TranslationRequest) ResponseFormat(format string) *TranslationRequest {
	r.form.Text("response_format", format)
	return r
}

// Temperature sets the sampling temperature.
func (r *TranslationRequest) Temperature(t float64) *TranslationRequest {
	r.form.Text("temperature", t)
	return r
}

// Translate uploads the audio file and sends the translation request.
func (s *AudioService) Translate(ctx context.Context, req *TranslationRequest) (Result, error) {
	return s.t.callForm(ctx, http.MethodPost, "/audio/translations", req.form)
}
