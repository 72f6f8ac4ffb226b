package rooms

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

	"github.com/loop-symphony/symphony/pkg/models"
)

func testRoom(url string) *models.Room {
	return &models.Room{
		ID:     "room-a",
		Name:   "Room A",
		Type:   models.RoomTypeLocal,
		URL:    url,
		Status: models.RoomOnline,
	}
}

func TestDelegate_SynchronousResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/task", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "what is nearby?", payload["query"])
		// Callback fields never serialize.
		if ctx, ok := payload["context"].(map[string]any); ok {
			assert.NotContains(t, ctx, "CheckpointFn")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"outcome":    "COMPLETE",
			"summary":    "two cafes nearby",
			"confidence": 0.85,
			"instrument": "local_note",
			"room_id":    "room-a",
			"findings": []any{
				map[string]any{"content": "cafe one", "confidence": 0.8},
				"cafe two",
			},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: 2 * time.Second})
	result, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{
		Query:   "what is nearby?",
		Context: &models.TaskContext{Location: "downtown"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "two cafes nearby", result.Summary)
	assert.Equal(t, "room:room-a/local_note", result.Metadata.InstrumentUsed)
	assert.Equal(t, "room-a", result.Metadata.RoomID)
	assert.Equal(t, []string{"room:room-a"}, result.Metadata.SourcesConsulted)
	require.Len(t, result.Findings, 2)
	assert.Equal(t, "cafe two", result.Findings[1].Content)
	assert.Equal(t, 0.5, result.Findings[1].Confidence)
}

func TestDelegate_AsyncAckThenPoll(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /task", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-1", "status": "pending"})
	})
	mux.HandleFunc("GET /task/remote-1", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < 3 {
			json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-1", "status": "running"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"outcome":    "complete",
			"summary":    "done remotely",
			"confidence": 0.9,
			"instrument": "note",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: 3 * time.Second, PollInterval: 10 * time.Millisecond})
	result, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{Query: "q"})
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "done remotely", result.Summary)
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestDelegate_NestedTerminalResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /task", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-2", "status": "pending"})
	})
	mux.HandleFunc("GET /task/remote-2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"task_id": "remote-2",
			"status":  "complete",
			"response": map[string]any{
				"outcome": "saturated",
				"summary": "nothing new",
			},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: 2 * time.Second, PollInterval: 10 * time.Millisecond})
	result, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSaturated, result.Outcome)
}

func TestDelegate_HTTPErrorIsDelegationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: time.Second})
	_, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{Query: "q"})

	var delegationErr *DelegationError
	require.ErrorAs(t, err, &delegationErr)
	assert.Equal(t, "room-a", delegationErr.RoomID)
	assert.Contains(t, delegationErr.Reason, "HTTP 500")
}

func TestDelegate_UnreachableRoom(t *testing.T) {
	client := NewClient(ClientConfig{Timeout: 200 * time.Millisecond})
	_, err := client.Delegate(context.Background(), testRoom("http://127.0.0.1:1"), &models.TaskRequest{Query: "q"})

	var delegationErr *DelegationError
	require.ErrorAs(t, err, &delegationErr)
	assert.Equal(t, "room unreachable", delegationErr.Reason)
}

func TestDelegate_RemoteFailureIsDelegationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /task", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-3", "status": "pending"})
	})
	mux.HandleFunc("GET /task/remote-3", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-3", "status": "failed", "error": "tool blew up"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: 2 * time.Second, PollInterval: 10 * time.Millisecond})
	_, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{Query: "q"})

	var delegationErr *DelegationError
	require.ErrorAs(t, err, &delegationErr)
	assert.Contains(t, delegationErr.Reason, "tool blew up")
}

func TestDelegate_TimeoutWaitingForResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /task", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-4", "status": "pending"})
	})
	mux.HandleFunc("GET /task/remote-4", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"task_id": "remote-4", "status": "running"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: 150 * time.Millisecond, PollInterval: 20 * time.Millisecond})
	_, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{Query: "q"})

	var delegationErr *DelegationError
	require.ErrorAs(t, err, &delegationErr)
	assert.Contains(t, delegationErr.Reason, "timed out")
}

func TestDelegate_UnknownOutcomeNormalizesToInconclusive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"outcome": "BIZARRE", "summary": "?"})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Timeout: time.Second})
	result, err := client.Delegate(context.Background(), testRoom(server.URL), &models.TaskRequest{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
}

func TestDelegate_RefusesSelf(t *testing.T) {
	client := NewClient(ClientConfig{})
	self := &models.Room{ID: "symphony-local", URL: models.LocalRoomURL}

	_, err := client.Delegate(context.Background(), self, &models.TaskRequest{Query: "q"})
	var delegationErr *DelegationError
	require.ErrorAs(t, err, &delegationErr)
}

func TestCancel_BestEffort(t *testing.T) {
	var cancelled atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /task/remote-5/cancel", func(w http.ResponseWriter, r *http.Request) {
		cancelled.Store(true)
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientConfig{})
	client.Cancel(context.Background(), testRoom(server.URL), "remote-5")
	assert.True(t, cancelled.Load())

	// Unreachable rooms never surface an error.
	client.Cancel(context.Background(), testRoom("http://127.0.0.1:1"), "remote-5")
}

func TestCheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{})
	assert.True(t, client.CheckHealth(context.Background(), testRoom(server.URL)))
	assert.False(t, client.CheckHealth(context.Background(), testRoom("http://127.0.0.1:1")))
}
