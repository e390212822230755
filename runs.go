package plainai

import (
	"context"
	"net/http"
)

// RunRequest describes a run creation call within a thread.
type RunRequest struct {
	fields Payload
}

// NewRunRequest creates a run request for the given assistant.
func NewRunRequest(assistantID string) *RunRequest {
	return &RunRequest{fields: Payload{
		"assistant_id": assistantID,
	}}
}

// Model overrides the assistant's model for this run.
func (r *RunRequest) Model(model string) *RunRequest {
	r.fields.Set("model", model)
	return r
}

// Instructions overrides the assistant's instructions for this run.
func (r *RunRequest) Instructions(instructions string) *RunRequest {
	r.fields.Set("instructions", instructions)
	return r
}

// AdditionalInstructions appends to the assistant's instructions without
// replacing them.
func (r *RunRequest) AdditionalInstructions(instructions string) *RunRequest {
	r.fields.Set("additional_instructions", instructions)
	return r
}

// AdditionalMessages adds messages to the thread before the run starts.
func (r *RunRequest) AdditionalMessages(messages []Message) *RunRequest {
	r.fields.Set("additional_messages", messages)
	return r
}

// Tools overrides the tools available during this run.
func (r *RunRequest) Tools(tools []any) *RunRequest {
	r.fields.Set("tools", tools)
	return r
}

// Metadata attaches up to 16 key-value pairs to the run.
func (r *RunRequest) Metadata(metadata map[string]any) *RunRequest {
	r.fields.Set("metadata", metadata)
	return r
}

// Temperature sets the sampling temperature.
func (r *RunRequest) Temperature(t float64) *RunRequest {
	r.fields.Set("temperature", t)
	return r
}

// TopP sets the nucleus sampling parameter.
func (r *RunRequest) TopP(p float64) *RunRequest {
	r.fields.Set("top_p", p)
	return r
}

// Stream requests server-sent run events instead of a single body.
func (r *RunRequest) Stream(stream bool) *RunRequest {
	r.fields.Set("stream", stream)
	return r
}

// MaxPromptTokens caps the prompt tokens used across the run.
func (r *RunRequest) MaxPromptTokens(n int) *RunRequest {
	r.fields.Set("max_prompt_tokens", n)
	return r
}

// MaxCompletionTokens caps the completion tokens used across the run.
func (r *RunRequest) MaxCompletionTokens(n int) *RunRequest {
	r.fields.Set("max_completion_tokens", n)
	return r
}

// TruncationStrategy controls how the thread is truncated to fit the
// context window.
func (r *RunRequest) TruncationStrategy(strategy map[string]any) *RunRequest {
	r.fields.Set("truncation_strategy", strategy)
	return r
}

// ToolChoice controls which tool, if any, the model must call.
func (r *RunRequest) ToolChoice(choice any) *RunRequest {
	r.fields.Set("tool_choice", choice)
	return r
}

// ParallelToolCalls enables calling tools in parallel.
func (r *RunRequest) ParallelToolCalls(parallel bool) *RunRequest {
	r.fields.Set("parallel_tool_calls", parallel)
	return r
}

// ResponseFormat constrains the model's output format.
func (r *RunRequest) ResponseFormat(format any) *RunRequest {
	r.fields.Set("response_format", format)
	return r
}

// ToolOutput is one tool result submitted back to a run waiting on
// required_action.
type ToolOutput struct {
	ToolCallID string `json:"tool_call_id"`
	Output     string `json:"output"`
}

// CreateRun starts a run in a thread.
func (s *ThreadService) CreateRun(ctx context.Context, threadID string, req *RunRequest) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID+"/runs", req.fields)
}

// ListRuns lists a thread's runs.
func (s *ThreadService) ListRuns(ctx context.Context, threadID string, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID+"/runs"+query.encode(), nil)
}

// RetrieveRun fetches one run.
func (s *ThreadService) RetrieveRun(ctx context.Context, threadID, runID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID, nil)
}

// ModifyRun replaces a run's metadata.
func (s *ThreadService) ModifyRun(ctx context.Context, threadID, runID string, metadata map[string]any) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID+"/runs/"+runID, Payload{
		"metadata": metadata,
	})
}

// DeleteRun removes a run from a thread.
func (s *ThreadService) DeleteRun(ctx context.Context, threadID, runID string) (Result, error) {
	return s.t.call(ctx, http.MethodDelete, "/threads/"+threadID+"/runs/"+runID, nil)
}

// SubmitToolOutputs sends tool results to a run waiting on required_action.
// Stream true requests server-sent events for the continuation.
func (s *ThreadService) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput, stream bool) (Result, error) {
	body := Payload{"tool_outputs": outputs}
	if stream {
		body.Set("stream", true)
	}
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID+"/runs/"+runID+"/submit_tool_outputs", body)
}

// CancelRun cancels an in-progress run.
func (s *ThreadService) CancelRun(ctx context.Context, threadID, runID string) (Result, error) {
	return s.t.call(ctx, http.MethodPost, "/threads/"+threadID+"/runs/"+runID+"/cancel", Payload{})
}

// ListRunSteps lists the steps of a run.
func (s *ThreadService) ListRunSteps(ctx context.Context, threadID, runID string, query *ListQuery) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID+"/steps"+query.encode(), nil)
}

// RetrieveRunStep fetches one run step.
func (s *ThreadService) RetrieveRunStep(ctx context.Context, threadID, runID, stepID string) (Result, error) {
	return s.t.call(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID+"/steps/"+stepID, nil)
}
