package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTavilyClient(t *testing.T, handler http.HandlerFunc) *TavilyClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewTavilyClient(TavilyConfig{
		APIKey:  "tavily-key",
		BaseURL: server.URL,
	})
}

func TestTavilySearch(t *testing.T) {
	var captured tavilyRequest
	client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"answer": "Go is a programming language.",
			"results": []map[string]any{
				{"title": "Go", "url": "https://go.dev", "content": "The Go programming language", "score": 0.97},
				{"title": "Go wiki", "url": "https://en.wikipedia.org/wiki/Go", "content": "Go article", "score": 0.72},
			},
		})
	})

	resp, err := client.Search(context.Background(), "what is go", 5)
	require.NoError(t, err)

	assert.Equal(t, "tavily-key", captured.APIKey)
	assert.Equal(t, "what is go", captured.Query)
	assert.Equal(t, 5, captured.MaxResults)
	assert.Equal(t, "basic", captured.SearchDepth)
	assert.True(t, captured.IncludeAnswer)

	assert.Equal(t, "what is go", resp.Query)
	assert.Equal(t, "Go is a programming language.", resp.Answer)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "https://go.dev", resp.Results[0].URL)
	assert.InDelta(t, 0.97, resp.Results[0].Score, 0.001)
}

func TestTavilySearchDefaultsMaxResults(t *testing.T) {
	var captured tavilyRequest
	client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	_, err := client.Search(context.Background(), "query", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, captured.MaxResults)
}

func TestTavilySearchHTTPError(t *testing.T) {
	client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broke"))
	})

	_, err := client.Search(context.Background(), "query", 3)
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "tavily", toolErr.Tool)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestTavilySearchMany(t *testing.T) {
	client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": req.Query, "url": "https://example.com/" + req.Query, "content": "c", "score": 0.5},
			},
		})
	})

	responses, err := client.SearchMany(context.Background(), []string{"one", "two", "three"}, 3)
	require.NoError(t, err)
	require.Len(t, responses, 3)

	// Results come back in query order regardless of completion order.
	assert.Equal(t, "one", responses[0].Results[0].Title)
	assert.Equal(t, "two", responses[1].Results[0].Title)
	assert.Equal(t, "three", responses[2].Results[0].Title)
}

func TestTavilySearchManyFailsWhole(t *testing.T) {
	client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Query == "bad" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	_, err := client.SearchMany(context.Background(), []string{"good", "bad"}, 3)
	require.Error(t, err)
}

func TestTavilyHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
		})
		assert.NoError(t, client.HealthCheck(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		client := newTestTavilyClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		assert.Error(t, client.HealthCheck(context.Background()))
	})
}

func TestTavilyManifest(t *testing.T) {
	client := NewTavilyClient(TavilyConfig{APIKey: "key"})
	manifest := client.Manifest()
	assert.Equal(t, "tavily", manifest.Name)
	assert.Equal(t, []string{CapabilityWebSearch}, manifest.Capabilities)
}
