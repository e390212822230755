package plainai

import "net/http"

// DefaultBaseURL is the OpenAI API endpoint used when no base URL is
// configured.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client is the entry point for the API. It holds the credential and base
// URL, both immutable after New, and exposes one service per endpoint
// family. A Client is safe for concurrent use; calls share no mutable state.
type Client struct {
	Models       *ModelService
	Chat         *ChatService
	Completions  *CompletionService
	Embeddings   *EmbeddingService
	Moderations  *ModerationService
	Images       *ImageService
	Audio        *AudioService
	Files        *FileService
	FineTunes    *FineTuneService
	FineTuning   *FineTuningService
	Assistants   *AssistantService
	Threads      *ThreadService
	VectorStores *VectorStoreService
	Projects     *ProjectService
}

// ClientOption configures a Client.
type ClientOption func(*transport)

// WithBaseURL points the client at a different endpoint, e.g. a proxy or an
// OpenAI-compatible server. The URL is not validated here; a malformed one
// surfaces as a transport error on the first call.
func WithBaseURL(baseURL string) ClientOption {
	return func(t *transport) {
		if baseURL != "" {
			t.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts are the HTTP client's
// responsibility; the library adds none of its own.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(t *transport) {
		t.httpClient = c
	}
}

// New creates a Client authenticating with the given API key. The key is
// passed through as-is; the server is the authority on its validity.
func New(apiKey string, opts ...ClientOption) *Client {
	t := &transport{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}

	return &Client{
		Models:       &ModelService{t: t},
		Chat:         &ChatService{t: t},
		Completions:  &CompletionService{t: t},
		Embeddings:   &EmbeddingService{t: t},
		Moderations:  &ModerationService{t: t},
		Images:       &ImageService{t: t},
		Audio:        &AudioService{t: t},
		Files:        &FileService{t: t},
		FineTunes:    &FineTuneService{t: t},
		FineTuning:   &FineTuningService{t: t},
		Assistants:   &AssistantService{t: t},
		Threads:      &ThreadService{t: t},
		VectorStores: &VectorStoreService{t: t},
		Projects:     &ProjectService{t: t},
	}
}
