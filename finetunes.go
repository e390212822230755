package plainai

import (
	"context"
	"net/http"
)

// FineTuneService calls the legacy fine-tunes endpoints. The API exposes
// both this family and the newer fine_tuning/jobs family for overlapping
// functionality; both are reproduced here as distinct services rather than
// reconciled.
type FineTuneService struct {
	t *transport
}

// FineTuneRequest describes a legacy fine-tune creation call.
type FineTuneRequest struct {
	fields Payload
}

// NewFineTuneRequest creates a fine-tune request for an uploaded training
// file.
func NewFineTuneRequest(trainingFile string) *FineTuneRequest {
	return &FineTuneRequest{fields: Payload{
		"training_file": trainingFile,
	}}
}

// Model sets the base model to fine-tune.
func (r *FineTuneRequest) Model(model string) *FineTuneRequest {
	r.fields.Set("model", model)
	return r
}

// ValidationFile sets an uploaded file with validation data.
func (r *FineTuneRequest) ValidationFile(fileID string) *FineTuneRequest {
	r.fields.Set("validation_file", fileID)
	return r
}

// NEpochs sets the number of training epochs.
func (r *FineTuneRequest) NEpochs(n int) *FineTuneRequest {
	r.fields.Set("n_epochs", n)
	return r
}

// BatchSize sets the training batch size.
func (r *FineTuneRequest) BatchSize(n int) *FineTuneRequest {
	r.fields.Set("batch_size", n)
	return r
}

// LearningRateMultiplier scales the pretraining learning rate.
func (r *FineTuneRequest) LearningRateMultiplier(m float64) *FineTuneRequest {
	r.fields.Set("learning_rate_multiplier", m)
	return r
}

// PromptLossWeight weights the loss on prompt tokens.
func (r *FineTuneRequest) PromptLossWeight(w float64) *FineTuneRequest {
	r.fields.Set("prompt_loss_weight", w)
	return r
}

// Suffix appends an identifier to the fine-tuned model name.
func (r *FineTuneRequest) Suffix(suffix string) *FineTuneRequest {
	r.fields.Set("suffix", suffix)
	return r
}

// Create starts a legacy fine-tune.
func (s *FineTuneService) Create(ctx context.Context, req *FineTuneRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/fine-tunes", req.fields)
}

// List lists the organization's fine-tunes.
func (s *FineTuneService) List(ctx context.Context) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/fine-tunes", nil)
}

// Retrieve fetches one fine-tune.
func (s *FineTuneService) Retrieve(ctx context.Context, fineTuneID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/fine-tunes/"+fineTuneID, nil)
}

// Cancel stops a running fine-tune.
func (s *FineTuneService) Cancel(ctx context.Context, fineTuneID string) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/fine-tunes/"+fineTuneID+"/cancel", Payload{})
}

// ListEvents lists status updates for a fine-tune.
func (s *FineTuneService) ListEvents(ctx context.Context, fineTuneID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/fine-tunes/"+fineTuneID+"/events", nil)
}
