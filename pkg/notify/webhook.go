package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WebhookSender posts notices as JSON to an arbitrary URL. The channel
// target is the URL itself, so no credentials are needed.
type WebhookSender struct {
	client *http.Client
}

// NewWebhookSender builds a sender with the given per-request timeout.
func NewWebhookSender(timeout time.Duration) *WebhookSender {
	return &WebhookSender{client: &http.Client{Timeout: timeout}}
}

type webhookNotice struct {
	Event      string  `json:"event"`
	TaskID     string  `json:"task_id"`
	Outcome    string  `json:"outcome"`
	Summary    string  `json:"summary,omitempty"`
	Confidence float64 `json:"confidence"`
	Query      string  `json:"query"`
	Timestamp  string  `json:"timestamp"`
}

// Send posts a task.completed event. Any 2xx response counts as
// delivered.
func (s *WebhookSender) Send(ctx context.Context, target string, notice TaskNotice) error {
	payload := webhookNotice{
		Event:      "task.completed",
		TaskID:     notice.TaskID,
		Outcome:    notice.Outcome,
		Summary:    notice.Summary,
		Confidence: notice.Confidence,
		Query:      notice.Query,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
