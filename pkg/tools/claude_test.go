package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClaudeClient(t *testing.T, handler http.HandlerFunc) *ClaudeClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClaudeClient(ClaudeConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	client.baseDelay = time.Millisecond
	return client
}

func claudeTextResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	})
	return string(body)
}

func TestClaudeComplete(t *testing.T) {
	var captured claudeRequest
	client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(claudeTextResponse("the answer")))
	})

	text, err := client.Complete(context.Background(), "what is the question?", "you are terse")
	require.NoError(t, err)
	assert.Equal(t, "the answer", text)

	assert.Equal(t, defaultClaudeModel, captured.Model)
	assert.Equal(t, defaultClaudeTokens, captured.MaxTokens)
	assert.Equal(t, "you are terse", captured.System)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "what is the question?", captured.Messages[0].Content)
}

func TestClaudeCompleteRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(claudeTextResponse("recovered")))
	})

	text, err := client.Complete(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClaudeCompleteRetriesRateLimits(t *testing.T) {
	var calls atomic.Int32
	client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
			return
		}
		w.Write([]byte(claudeTextResponse("ok")))
	})

	text, err := client.Complete(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClaudeCompleteExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Complete(context.Background(), "prompt", "")
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "claude", toolErr.Tool)
}

func TestClaudeCompleteDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad prompt"}}`))
	})

	_, err := client.Complete(context.Background(), "prompt", "")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, err.Error(), "bad prompt")
}

func TestClaudeCompleteWithImages(t *testing.T) {
	var captured map[string]any
	client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(claudeTextResponse("a cat on a mat")))
	})

	images := []ImageInput{
		{SourceType: "base64", MediaType: "image/png", Data: "aGVsbG8="},
		{SourceType: "url", Data: "https://example.com/cat.jpg"},
	}
	text, err := client.CompleteWithImages(context.Background(), "describe the image", images, "")
	require.NoError(t, err)
	assert.Equal(t, "a cat on a mat", text)

	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)
	blocks := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, blocks, 3)

	first := blocks[0].(map[string]any)
	assert.Equal(t, "image", first["type"])
	source := first["source"].(map[string]any)
	assert.Equal(t, "base64", source["type"])
	assert.Equal(t, "image/png", source["media_type"])
	assert.Equal(t, "aGVsbG8=", source["data"])

	second := blocks[1].(map[string]any)
	assert.Equal(t, "url", second["source"].(map[string]any)["type"])
	assert.Equal(t, "https://example.com/cat.jpg", second["source"].(map[string]any)["url"])

	last := blocks[2].(map[string]any)
	assert.Equal(t, "text", last["type"])
	assert.Equal(t, "describe the image", last["text"])
}

func TestClaudeHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(claudeTextResponse("pong")))
		})
		assert.NoError(t, client.HealthCheck(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		client := newTestClaudeClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		assert.Error(t, client.HealthCheck(context.Background()))
	})
}

func TestClaudeManifest(t *testing.T) {
	client := NewClaudeClient(ClaudeConfig{APIKey: "key"})
	manifest := client.Manifest()
	assert.Equal(t, "claude", manifest.Name)
	assert.Contains(t, manifest.Capabilities, CapabilityReasoning)
	assert.Contains(t, manifest.Capabilities, CapabilityVision)
	assert.Contains(t, manifest.ConfigKeys, "CLAUDE_API_KEY")
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		obj, ok := ExtractJSONObject(`{"summary": "fine", "has_contradictions": false}`)
		require.True(t, ok)
		assert.Equal(t, "fine", obj["summary"])
	})

	t.Run("fenced object", func(t *testing.T) {
		obj, ok := ExtractJSONObject("```json\n{\"severity\": \"minor\"}\n```")
		require.True(t, ok)
		assert.Equal(t, "minor", obj["severity"])
	})

	t.Run("fence without language tag", func(t *testing.T) {
		obj, ok := ExtractJSONObject("```\n{\"key\": 1}\n```")
		require.True(t, ok)
		assert.Equal(t, float64(1), obj["key"])
	})

	t.Run("surrounding prose with fence", func(t *testing.T) {
		obj, ok := ExtractJSONObject("Here you go:\n```json\n{\"key\": \"value\"}\n```\nDone.")
		require.True(t, ok)
		assert.Equal(t, "value", obj["key"])
	})

	t.Run("unparsable text", func(t *testing.T) {
		_, ok := ExtractJSONObject("this is not json at all")
		assert.False(t, ok)
	})
}
