package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
)

const (
	defaultDelegationTimeout = 60 * time.Second
	defaultPollInterval      = 500 * time.Millisecond
	healthCheckTimeout       = 5 * time.Second
)

// DelegationError reports a failed handoff to a remote room. The
// conductor converts it into a failover event and retries locally; it
// never reaches the caller as a task failure on its own.
type DelegationError struct {
	RoomID string
	Reason string
	Err    error
}

func (e *DelegationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delegation to room %s failed: %s: %v", e.RoomID, e.Reason, e.Err)
	}
	return fmt.Sprintf("delegation to room %s failed: %s", e.RoomID, e.Reason)
}

func (e *DelegationError) Unwrap() error { return e.Err }

// ClientConfig tunes the delegation client.
type ClientConfig struct {
	// Timeout bounds one whole delegation, submission and polling
	// included.
	Timeout time.Duration
	// PollInterval is the wait between result polls for rooms that
	// acknowledge asynchronously.
	PollInterval time.Duration
}

// Client delegates sub-tasks to remote rooms over their /task endpoint
// and normalizes the answers into instrument results. Rooms may answer
// synchronously (the result in the POST response) or asynchronously (a
// task id to poll).
type Client struct {
	httpClient   *http.Client
	timeout      time.Duration
	pollInterval time.Duration
}

// NewClient creates a delegation client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDelegationTimeout
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		timeout:      timeout,
		pollInterval: pollInterval,
	}
}

// delegatePayload is the sub-request sent to the room. Context callbacks
// never serialize; the room gets only the wire-safe fields.
type delegatePayload struct {
	ID      string              `json:"id,omitempty"`
	Query   string              `json:"query"`
	Context *models.TaskContext `json:"context,omitempty"`
	Intent  *models.Intent      `json:"intent,omitempty"`
}

// roomEnvelope covers both answer shapes a room may return: a flat
// synchronous result (outcome present) or a submission ack (task_id and
// a non-terminal status).
type roomEnvelope struct {
	TaskID     string          `json:"task_id,omitempty"`
	Status     string          `json:"status,omitempty"`
	Outcome    string          `json:"outcome,omitempty"`
	Findings   []roomFinding   `json:"findings,omitempty"`
	Summary    string          `json:"summary,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
	Instrument string          `json:"instrument,omitempty"`
	RoomID     string          `json:"room_id,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Error      string          `json:"error,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
}

// roomFinding tolerates findings sent as objects or bare strings.
type roomFinding struct {
	Content    string  `json:"content"`
	Source     string  `json:"source,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

func (f *roomFinding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Content = s
		f.Confidence = 0.5
		return nil
	}
	type plain roomFinding
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = roomFinding(p)
	if f.Confidence == 0 {
		f.Confidence = 0.5
	}
	return nil
}

// Delegate sends the sub-request to the room and waits for a terminal
// answer. Timeouts, connection failures, non-2xx responses, and remote
// task failures all surface as *DelegationError.
func (c *Client) Delegate(ctx context.Context, room *models.Room, req *models.TaskRequest) (*models.InstrumentResult, error) {
	if room.IsSelf() {
		return nil, &DelegationError{RoomID: room.ID, Reason: "room is this server; nothing to delegate to"}
	}

	started := time.Now()
	deadline := started.Add(c.timeout)
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	envelope, err := c.submit(ctx, room, req)
	if err != nil {
		return nil, err
	}

	// Synchronous rooms answer with the result inline.
	if envelope.Outcome != "" {
		return c.normalize(envelope, room, time.Since(started)), nil
	}
	if envelope.TaskID == "" {
		return nil, &DelegationError{RoomID: room.ID, Reason: "room response carried neither an outcome nor a task id"}
	}

	result, err := c.awaitResult(ctx, room, envelope.TaskID)
	if err != nil {
		return nil, err
	}
	return c.normalize(result, room, time.Since(started)), nil
}

func (c *Client) submit(ctx context.Context, room *models.Room, req *models.TaskRequest) (*roomEnvelope, error) {
	payload := delegatePayload{
		ID:      req.ID,
		Query:   req.Query,
		Context: req.Context,
		Intent:  req.Intent,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "encode sub-request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, roomURL(room, "/task"), bytes.NewReader(body))
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "room unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "read room response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DelegationError{
			RoomID: room.ID,
			Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, truncateBody(raw)),
		}
	}

	var envelope roomEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "decode room response", Err: err}
	}
	return &envelope, nil
}

// awaitResult polls the room's GET /task/{id} until the task reports a
// terminal status or the delegation budget runs out.
func (c *Client) awaitResult(ctx context.Context, room *models.Room, taskID string) (*roomEnvelope, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, &DelegationError{RoomID: room.ID, Reason: "timed out waiting for room result", Err: ctx.Err()}
		case <-ticker.C:
		}

		envelope, err := c.poll(ctx, room, taskID)
		if err != nil {
			return nil, err
		}
		if envelope.Outcome != "" {
			return envelope, nil
		}
		switch models.TaskStatus(envelope.Status) {
		case models.StatusFailed:
			return nil, &DelegationError{RoomID: room.ID, Reason: fmt.Sprintf("remote task failed: %s", envelope.Error)}
		case models.StatusCancelled:
			return nil, &DelegationError{RoomID: room.ID, Reason: "remote task was cancelled"}
		}
	}
}

func (c *Client) poll(ctx context.Context, room *models.Room, taskID string) (*roomEnvelope, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, roomURL(room, "/task/"+taskID), nil)
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "build poll request", Err: err}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "poll failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "read poll response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DelegationError{
			RoomID: room.ID,
			Reason: fmt.Sprintf("poll HTTP %d: %s", resp.StatusCode, truncateBody(raw)),
		}
	}

	var envelope roomEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DelegationError{RoomID: room.ID, Reason: "decode poll response", Err: err}
	}
	// Some rooms nest the terminal result under "response".
	if envelope.Outcome == "" && len(envelope.Response) > 0 {
		var nested roomEnvelope
		if err := json.Unmarshal(envelope.Response, &nested); err == nil && nested.Outcome != "" {
			nested.TaskID = envelope.TaskID
			return &nested, nil
		}
	}
	return &envelope, nil
}

// Cancel propagates a cancellation to the room. Best-effort: failures
// are logged, never returned, since the local task is already being
// cancelled regardless.
func (c *Client) Cancel(ctx context.Context, room *models.Room, taskID string) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, roomURL(room, "/task/"+taskID+"/cancel"), nil)
	if err != nil {
		return
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.Debug("Cancel propagation to room failed", "room_id", room.ID, "task_id", taskID, "error", err)
		return
	}
	resp.Body.Close()
}

// CheckHealth probes the room's /health endpoint.
func (c *Client) CheckHealth(ctx context.Context, room *models.Room) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, roomURL(room, "/health"), nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// normalize converts a room's answer into the server's result shape.
// Unknown outcomes collapse to inconclusive rather than failing the
// delegation over a vocabulary mismatch.
func (c *Client) normalize(envelope *roomEnvelope, room *models.Room, elapsed time.Duration) *models.InstrumentResult {
	outcome := models.Outcome(strings.ToLower(envelope.Outcome))
	switch outcome {
	case models.OutcomeComplete, models.OutcomeSaturated, models.OutcomeBounded, models.OutcomeInconclusive:
	default:
		outcome = models.OutcomeInconclusive
	}

	findings := make([]models.Finding, 0, len(envelope.Findings))
	for _, f := range envelope.Findings {
		if f.Content == "" {
			continue
		}
		findings = append(findings, models.NewFinding(f.Content, f.Source, f.Confidence))
	}

	instrument := envelope.Instrument
	if instrument == "" {
		instrument = "unknown"
	}
	roomID := envelope.RoomID
	if roomID == "" {
		roomID = room.ID
	}
	iterations := envelope.Iterations
	if iterations <= 0 {
		iterations = 1
	}

	return &models.InstrumentResult{
		Findings:   findings,
		Summary:    envelope.Summary,
		Confidence: envelope.Confidence,
		Outcome:    outcome,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   fmt.Sprintf("room:%s/%s", roomID, instrument),
			Iterations:       iterations,
			DurationMS:       elapsed.Milliseconds(),
			SourcesConsulted: []string{"room:" + roomID},
			ProcessType:      models.ProcessSemiAutonomic,
			RoomID:           roomID,
		},
	}
}

func roomURL(room *models.Room, path string) string {
	return strings.TrimRight(room.URL, "/") + path
}

func truncateBody(raw []byte) string {
	s := string(raw)
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
