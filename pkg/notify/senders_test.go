package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSenderSend(t *testing.T) {
	type sendMessageCall struct {
		path    string
		payload map[string]interface{}
	}
	calls := make(chan sendMessageCall, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		calls <- sendMessageCall{path: r.URL.Path, payload: payload}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	sender := NewTelegramSenderWithAPIURL("123:abc", server.URL, time.Second)
	err := sender.Send(context.Background(), "chat-42", testNotice)
	require.NoError(t, err)

	call := <-calls
	assert.Equal(t, "/bot123:abc/sendMessage", call.path)
	assert.Equal(t, "chat-42", call.payload["chat_id"])
	assert.Equal(t, "HTML", call.payload["parse_mode"])

	text, _ := call.payload["text"].(string)
	assert.Contains(t, text, "<b>Task complete</b>")
	assert.Contains(t, text, "90% confidence")
	assert.Contains(t, text, "summarize overnight alerts")
	assert.Contains(t, text, "All quiet.")
}

func TestTelegramSenderEscapesHTML(t *testing.T) {
	var text string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		text, _ = payload["text"].(string)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	notice := testNotice
	notice.Summary = `result of <script>alert("x")</script>`
	sender := NewTelegramSenderWithAPIURL("123:abc", server.URL, time.Second)
	require.NoError(t, sender.Send(context.Background(), "chat-42", notice))

	assert.Contains(t, text, "&lt;script&gt;")
	assert.NotContains(t, text, "<script>")
}

func TestTelegramSenderAPIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
	}))
	defer server.Close()

	sender := NewTelegramSenderWithAPIURL("123:abc", server.URL, time.Second)
	err := sender.Send(context.Background(), "chat-42", testNotice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramSenderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	sender := NewTelegramSenderWithAPIURL("123:abc", server.URL, time.Second)
	err := sender.Send(context.Background(), "chat-42", testNotice)
	require.Error(t, err)
}

func TestWebhookSenderSend(t *testing.T) {
	payloads := make(chan map[string]interface{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payloads <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewWebhookSender(time.Second)
	err := sender.Send(context.Background(), server.URL, testNotice)
	require.NoError(t, err)

	payload := <-payloads
	assert.Equal(t, "task.completed", payload["event"])
	assert.Equal(t, "task-1", payload["task_id"])
	assert.Equal(t, "complete", payload["outcome"])
	assert.Equal(t, "All quiet.", payload["summary"])
	assert.Equal(t, "summarize overnight alerts", payload["query"])
	assert.InDelta(t, 0.9, payload["confidence"], 0.001)

	ts, _ := payload["timestamp"].(string)
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestWebhookSenderRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := NewWebhookSender(time.Second)
	err := sender.Send(context.Background(), server.URL, testNotice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSlackSenderSend(t *testing.T) {
	blocksJSON := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		blocksJSON <- r.FormValue("blocks")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "channel": "C123", "ts": "1234.5678"}`))
	}))
	defer server.Close()

	sender := NewSlackSenderWithAPIURL("xoxb-test", server.URL+"/")
	err := sender.Send(context.Background(), "C123", testNotice)
	require.NoError(t, err)

	blocks := <-blocksJSON
	assert.Contains(t, blocks, "Task Complete")
	assert.Contains(t, blocks, "All quiet.")
}

func TestSlackSenderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
	}))
	defer server.Close()

	sender := NewSlackSenderWithAPIURL("xoxb-test", server.URL+"/")
	err := sender.Send(context.Background(), "C-missing", testNotice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestBuildTaskBlocks(t *testing.T) {
	t.Run("complete with summary", func(t *testing.T) {
		blocks := buildTaskBlocks(testNotice)
		require.Len(t, blocks, 2)

		header, ok := blocks[0].(*goslack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, header.Text.Text, ":white_check_mark:")
		assert.Contains(t, header.Text.Text, "Task Complete")
		assert.Contains(t, header.Text.Text, "90% confidence")
		assert.Contains(t, header.Text.Text, "summarize overnight alerts")

		summary := blocks[1].(*goslack.SectionBlock)
		assert.Contains(t, summary.Text.Text, "All quiet.")
	})

	t.Run("no summary yields a single block", func(t *testing.T) {
		notice := testNotice
		notice.Summary = ""
		blocks := buildTaskBlocks(notice)
		require.Len(t, blocks, 1)
	})

	t.Run("failed", func(t *testing.T) {
		notice := testNotice
		notice.Outcome = "failed"
		blocks := buildTaskBlocks(notice)

		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, ":x:")
		assert.Contains(t, header.Text.Text, "Task Failed")
	})

	t.Run("bounded", func(t *testing.T) {
		notice := testNotice
		notice.Outcome = "bounded"
		blocks := buildTaskBlocks(notice)

		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, ":hourglass:")
		assert.Contains(t, header.Text.Text, "Task Hit Its Bounds")
	})

	t.Run("unknown outcome gets a fallback label", func(t *testing.T) {
		notice := testNotice
		notice.Outcome = "detoured"
		blocks := buildTaskBlocks(notice)

		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, ":bell:")
		assert.Contains(t, header.Text.Text, "Task detoured")
	})
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.Less(t, len(result), len(text))
		assert.Contains(t, result, "truncated")
	})
}
