package autonomic

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
)

const webhookTimeout = 10 * time.Second

// webhookPayload is the completion notice POSTed to a heartbeat's
// webhook URL.
type webhookPayload struct {
	Event              string           `json:"event"`
	HeartbeatID        string           `json:"heartbeat_id"`
	HeartbeatName      string           `json:"heartbeat_name"`
	RunID              string           `json:"run_id"`
	TaskID             string           `json:"task_id"`
	Outcome            string           `json:"outcome"`
	Confidence         float64          `json:"confidence"`
	Summary            string           `json:"summary"`
	Findings           []models.Finding `json:"findings"`
	SuggestedFollowups []string         `json:"suggested_followups"`
	Timestamp          time.Time        `json:"timestamp"`
}

// webhookPoster delivers heartbeat completion notices. Delivery is best
// effort: a down receiver costs a log line, never the run.
type webhookPoster struct {
	client *http.Client
}

func newWebhookPoster() *webhookPoster {
	return &webhookPoster{client: &http.Client{Timeout: webhookTimeout}}
}

func (w *webhookPoster) post(hb *models.Heartbeat, runID string, resp *models.TaskResponse) {
	payload := webhookPayload{
		Event:              "heartbeat.completed",
		HeartbeatID:        hb.ID,
		HeartbeatName:      hb.Name,
		RunID:              runID,
		TaskID:             resp.RequestID,
		Outcome:            string(resp.Outcome),
		Confidence:         resp.Confidence,
		Summary:            resp.Summary,
		Findings:           resp.Findings,
		SuggestedFollowups: resp.SuggestedFollowups,
		Timestamp:          time.Now().UTC(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to encode heartbeat webhook payload",
			"heartbeat_id", hb.ID, "error", err)
		return
	}

	httpResp, err := w.client.Post(hb.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Warn("Heartbeat webhook delivery failed",
			"heartbeat_id", hb.ID, "url", hb.WebhookURL, "error", err)
		return
	}
	defer httpResp.Body.Close()
	io.Copy(io.Discard, httpResp.Body)

	if httpResp.StatusCode >= 300 {
		slog.Warn("Heartbeat webhook rejected",
			"heartbeat_id", hb.ID, "url", hb.WebhookURL, "status", httpResp.StatusCode)
		return
	}
	slog.Debug("Heartbeat webhook delivered", "heartbeat_id", hb.ID, "run_id", runID)
}
