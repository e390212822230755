package plainai

import (
	"context"
	"net/http"
)

// FineTuningService calls the fine_tuning/jobs endpoints, the successor to
// the legacy fine-tunes family.
type FineTuningService struct {
	t *transport
}

// FineTuningJobRequest describes a fine-tuning job creation call.
type FineTuningJobRequest struct {
	fields Payload
}

// NewFineTuningJobRequest creates a fine-tuning job request for the given
// base model and uploaded training file.
func NewFineTuningJobRequest(model, trainingFile string) *FineTuningJobRequest {
	return &FineTuningJobRequest{fields: Payload{
		"model":         model,
		"training_file": trainingFile,
	}}
}

// ValidationFile sets an uploaded file with validation data.
func (r *FineTuningJobRequest) ValidationFile(fileID string) *FineTuningJobRequest {
	r.fields.Set("validation_file", fileID)
	return r
}

// NEpochs sets the number of training epochs.
func (r *FineTuningJobRequest) NEpochs(n int) *FineTuningJobRequest {
	r.fields.Set("n_epochs", n)
	return r
}

// BatchSize sets the training batch size.
func (r *FineTuningJobRequest) BatchSize(n int) *FineTuningJobRequest {
	r.fields.Set("batch_size", n)
	return r
}

// LearningRateMultiplier scales the pretraining learning rate.
func (r *FineTuningJobRequest) LearningRateMultiplier(m float64) *FineTuningJobRequest {
	r.fields.Set("learning_rate_multiplier", m)
	return r
}

// PromptLossWeight weights the loss on prompt tokens.
func (r *FineTuningJobRequest) PromptLossWeight(w float64) *FineTuningJobRequest {
	r.fields.Set("prompt_loss_weight", w)
	return r
}

// ComputeClassificationMetrics enables classification metrics on the
// validation set.
func (r *FineTuningJobRequest) ComputeClassificationMetrics(compute bool) *FineTuningJobRequest {
	r.fields.Set("compute_classification_metrics", compute)
	return r
}

// ClassificationNClasses sets the number of classes in a classification
// task.
func (r *FineTuningJobRequest) ClassificationNClasses(n int) *FineTuningJobRequest {
	r.fields.Set("classification_n_classes", n)
	return r
}

// ClassificationPositiveClass sets the positive class in binary
// classification.
func (r *FineTuningJobRequest) ClassificationPositiveClass(class string) *FineTuningJobRequest {
	r.fields.Set("classification_positive_class", class)
	return r
}

// ClassificationBetas computes F-beta scores at the given beta values.
func (r *FineTuningJobRequest) ClassificationBetas(betas []float64) *FineTuningJobRequest {
	r.fields.Set("classification_betas", betas)
	return r
}

// Suffix appends an identifier to the fine-tuned model name.
func (r *FineTuningJobRequest) Suffix(suffix string) *FineTuningJobRequest {
	r.fields.Set("suffix", suffix)
	return r
}

// Create starts a fine-tuning job.
func (s *FineTuningService) Create(ctx context.Context, req *FineTuningJobRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/fine_tuning/jobs", req.fields)
}

// List lists the organization's fine-tuning jobs.
func (s *FineTuningService) List(ctx context.Context, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/fine_tuning/jobs"+query.encode(), nil)
}

// Retrieve fetches one fine-tuning job.
func (s *FineTuningService) Retrieve(ctx context.Context, jobID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/fine_tuning/jobs/"+jobID, nil)
}

// Cancel stops a running fine-tuning job.
func (s *FineTuningService) Cancel(ctx context.Context, jobID string) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/fine_tuning/jobs/"+jobID+"/cancel", Payload{})
}

// ListEvents lists status updates for a fine-tuning job.
func (s *FineTuningService) ListEvents(ctx context.Context, jobID string, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/fine_tuning/jobs/"+jobID+"/events"+query.encode(), nil)
}
