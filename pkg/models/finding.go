package models

import "time"

// Source describes where a piece of information came from.
type Source struct {
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// Finding is a single piece of information accumulated by an instrument
// across iterations.
type Finding struct {
	Content    string    `json:"content"`
	Source     string    `json:"source,omitempty"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewFinding builds a Finding stamped with the current time.
func NewFinding(content, source string, confidence float64) Finding {
	return Finding{
		Content:    content,
		Source:     source,
		Confidence: confidence,
		Timestamp:  time.Now().UTC(),
	}
}

// FailoverEvent records a failed delegation attempt that was recovered by
// falling back to another executor.
type FailoverEvent struct {
	RoomID string    `json:"room_id"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// PrivacyConstraint records the privacy assessment that pinned a task to
// local execution, so callers can see why no delegation happened.
type PrivacyConstraint struct {
	Level       string   `json:"level"`
	Categories  []string `json:"categories,omitempty"`
	StayedLocal bool     `json:"stayed_local"`
	Reason      string   `json:"reason,omitempty"`
}

// ExecutionMetadata describes how an instrument run unfolded.
type ExecutionMetadata struct {
	InstrumentUsed   string             `json:"instrument_used"`
	Iterations       int                `json:"iterations"`
	DurationMS       int64              `json:"duration_ms"`
	SourcesConsulted []string           `json:"sources_consulted,omitempty"`
	ProcessType      ProcessType        `json:"process_type"`
	RoomID           string             `json:"room_id,omitempty"`
	FailoverEvents   []FailoverEvent    `json:"failover_events,omitempty"`
	Privacy          *PrivacyConstraint `json:"privacy,omitempty"`
}

// InstrumentResult is the terminal record of a single instrument run.
type InstrumentResult struct {
	Findings           []Finding         `json:"findings"`
	Summary            string            `json:"summary"`
	Confidence         float64           `json:"confidence"`
	Outcome            Outcome           `json:"outcome"`
	Discrepancy        string            `json:"discrepancy,omitempty"`
	Metadata           ExecutionMetadata `json:"metadata"`
	SuggestedFollowups []string          `json:"suggested_followups,omitempty"`
}

// TaskResponse is the user-visible wrap of an InstrumentResult.
type TaskResponse struct {
	RequestID          string            `json:"request_id"`
	Findings           []Finding         `json:"findings,omitempty"`
	Summary            string            `json:"summary"`
	Confidence         float64           `json:"confidence"`
	Outcome            Outcome           `json:"outcome"`
	Discrepancy        string            `json:"discrepancy,omitempty"`
	Metadata           ExecutionMetadata `json:"metadata"`
	SuggestedFollowups []string          `json:"suggested_followups,omitempty"`
}

// ResponseFromResult wraps an InstrumentResult into a TaskResponse.
func ResponseFromResult(requestID string, result *InstrumentResult) *TaskResponse {
	return &TaskResponse{
		RequestID:          requestID,
		Findings:           result.Findings,
		Summary:            result.Summary,
		Confidence:         result.Confidence,
		Outcome:            result.Outcome,
		Discrepancy:        result.Discrepancy,
		Metadata:           result.Metadata,
		SuggestedFollowups: result.SuggestedFollowups,
	}
}

// Minimal strips findings and metadata detail for trust-level-2 polling
// responses. Summary and outcome remain.
func (r *TaskResponse) Minimal() *TaskResponse {
	return &TaskResponse{
		RequestID:  r.RequestID,
		Summary:    r.Summary,
		Confidence: r.Confidence,
		Outcome:    r.Outcome,
		Metadata: ExecutionMetadata{
			InstrumentUsed: r.Metadata.InstrumentUsed,
			ProcessType:    r.Metadata.ProcessType,
		},
	}
}
