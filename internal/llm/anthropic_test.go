package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *AnthropicClient {
	return NewAnthropicClient(Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
	})
}

func TestGenerateText_MissingAPIKeyFailsFast(t *testing.T) {
	called := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewAnthropicClient(Config{BaseURL: server.URL})

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "hello"}},
	})

	require.ErrorIs(t, err, ErrAPIKeyMissing)
	assert.False(t, called, "no network call should be made without a credential")
}

func TestGenerateText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		w.Header().Set("Content-Type", "application/json")
		body := `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"content": [{"type": "text", "text": "  Generated post text.  "}],
			"model": "claude-3-haiku-20240307",
			"usage": {"input_tokens": 120, "output_tokens": 48}
		}`
		w.Write([]byte(body)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GenerateText(context.Background(), TextGenerationRequest{
		SystemPrompt: "You are a test.",
		Messages:     []Message{{Role: "user", Content: "write a post"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Generated post text.", resp.Text, "response text should be trimmed")
	assert.Equal(t, 120, resp.Usage.InputTokens)
	assert.Equal(t, 48, resp.Usage.OutputTokens)
}

func TestGenerateText_RateLimitedSurfacesProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type": "error", "error": {"type": "rate_limit_error", "message": "Number of requests has exceeded your rate limit"}}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "write a post"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateText_ErrorWithoutPayloadUsesGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "write a post"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API request failed with status 502")
}

func TestGenerateText_MalformedBodyIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json at all")) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "write a post"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestGenerateText_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"content": [], "usage": {"input_tokens": 1, "output_tokens": 0}}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{{Role: "user", Content: "write a post"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content in response")
}

func TestNewAnthropicClient_Defaults(t *testing.T) {
	client := NewAnthropicClient(Config{APIKey: "k"})

	assert.Equal(t, defaultModel, client.Model())
	assert.Equal(t, defaultMaxTokens, client.config.MaxTokens)
	assert.Equal(t, anthropicMessagesURL, client.config.BaseURL)
}
