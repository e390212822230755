package plainai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureBody runs a mock server that records the JSON body of one request.
func captureBody(t *testing.T, fn func(c *Client)) map[string]any {
	t.Helper()

	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	fn(newTestClient(server.URL))
	return body
}

func TestChatCreate(t *testing.T) {
	t.Run("sends method and path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			fmt.Fprint(w, `{"choices": [{"message": {"content": "hi"}}]}`)
		}))
		defer server.Close()

		req := NewChatRequest("gpt-4o", []Message{{Role: "user", Content: "hello"}})
		res, err := newTestClient(server.URL).Chat.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "hi", res.Get("choices.0.message.content").String())
	})

	t.Run("sends only required fields by default", func(t *testing.T) {
		body := captureBody(t, func(c *Client) {
			req := NewChatRequest("gpt-4o", []Message{{Role: "user", Content: "hello"}})
			_, err := c.Chat.Create(context.Background(), req)
			require.NoError(t, err)
		})

		assert.Len(t, body, 2)
		assert.Equal(t, "gpt-4o", body["model"])
		assert.NotContains(t, body, "temperature")
		assert.NotContains(t, body, "max_tokens")
		assert.NotContains(t, body, "stream")
	})

	t.Run("optional fields round-trip", func(t *testing.T) {
		body := captureBody(t, func(c *Client) {
			req := NewChatRequest("gpt-4o", []Message{{Role: "user", Content: "hello"}}).
				MaxTokens(256).
				Temperature(0.7).
				TopP(0.9).
				N(2).
				Stream(true).
				Stop([]string{"END"}).
				PresencePenalty(0.1).
				FrequencyPenalty(-0.1).
				LogitBias(map[string]float64{"50256": -100}).
				User("user-123")
			_, err := c.Chat.Create(context.Background(), req)
			require.NoError(t, err)
		})

		assert.Equal(t, float64(256), body["max_tokens"])
		assert.Equal(t, 0.7, body["temperature"])
		assert.Equal(t, 0.9, body["top_p"])
		assert.Equal(t, float64(2), body["n"])
		assert.Equal(t, true, body["stream"])
		assert.Equal(t, []any{"END"}, body["stop"])
		assert.Equal(t, 0.1, body["presence_penalty"])
		assert.Equal(t, -0.1, body["frequency_penalty"])
		assert.Equal(t, map[string]any{"50256": float64(-100)}, body["logit_bias"])
		assert.Equal(t, "user-123", body["user"])
	})

	t.Run("out-of-range values pass through unvalidated", func(t *testing.T) {
		body := captureBody(t, func(c *Client) {
			req := NewChatRequest("gpt-4o", nil).Temperature(99.5)
			_, err := c.Chat.Create(context.Background(), req)
			require.NoError(t, err)
		})

		assert.Equal(t, 99.5, body["temperature"])
	})

	t.Run("messages serialize with role and content", func(t *testing.T) {
		body := captureBody(t, func(c *Client) {
			req := NewChatRequest("gpt-4o", []Message{
				{Role: "system", Content: "be brief"},
				{Role: "user", Content: "hello"},
			})
			_, err := c.Chat.Create(context.Background(), req)
			require.NoError(t, err)
		})

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])
		assert.Equal(t, "be brief", first["content"])
		assert.NotContains(t, first, "name")
	})
}

func TestCompletionCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/completions", r.URL.Path)
		fmt.Fprint(w, `{"choices": [{"text": "world"}]}`)
	}))
	defer server.Close()

	req := NewCompletionRequest("gpt-3.5-turbo-instruct", "hello").
		MaxTokens(10).
		Echo(true).
		BestOf(3)
	res, err := newTestClient(server.URL).Completions.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "world", res.Get("choices.0.text").String())
}

func TestEmbeddingCreate(t *testing.T) {
	body := captureBody(t, func(c *Client) {
		req := NewEmbeddingRequest("text-embedding-3-small", []string{"a", "b"}).
			Dimensions(256).
			EncodingFormat("float")
		_, err := c.Embeddings.Create(context.Background(), req)
		require.NoError(t, err)
	})

	assert.Equal(t, "text-embedding-3-small", body["model"])
	assert.Equal(t, []any{"a", "b"}, body["input"])
	assert.Equal(t, float64(256), body["dimensions"])
	assert.Equal(t, "float", body["encoding_format"])
}

func TestModerationCreate(t *testing.T) {
	t.Run("sends method and path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/moderations", r.URL.Path)
			fmt.Fprint(w, `{"results": [{"flagged": false}]}`)
		}))
		defer server.Close()

		res, err := newTestClient(server.URL).Moderations.Create(context.Background(), NewModerationRequest("some text"))
		require.NoError(t, err)
		assert.False(t, res.Get("results.0.flagged").Bool())
	})

	t.Run("model omitted unless set", func(t *testing.T) {
		body := captureBody(t, func(c *Client) {
			_, err := c.Moderations.Create(context.Background(), NewModerationRequest("some text"))
			require.NoError(t, err)
		})

		assert.Equal(t, "some text", body["input"])
		assert.NotContains(t, body, "model")
	})

	t.Run("model sent when set", func(t *testing.T) {
		body := captureBody(t, func(c *Client) {
			req := NewModerationRequest("some text").Model("text-moderation-stable")
			_, err := c.Moderations.Create(context.Background(), req)
			require.NoError(t, err)
		})

		assert.Equal(t, "text-moderation-stable", body["model"])
	})
}
