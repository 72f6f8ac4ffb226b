package models

import "time"

// EventType identifies a task lifecycle event on the progress stream.
type EventType string

const (
	EventStarted   EventType = "started"
	EventIteration EventType = "iteration"
	EventComplete  EventType = "complete"
	EventError     EventType = "error"
	EventCancelled EventType = "cancelled"
	// EventKeepalive is emitted on the wire only, never stored in history.
	EventKeepalive EventType = "keepalive"
)

// IsTerminal reports whether the event ends a task's stream. A topic
// carries at most one terminal event and it is always the last.
func (t EventType) IsTerminal() bool {
	return t == EventComplete || t == EventError || t == EventCancelled
}

// TaskEvent is one entry on a task's progress stream.
type TaskEvent struct {
	ID        string         `json:"id"`
	TaskID    string         `json:"task_id"`
	Type      EventType      `json:"type"`
	Iteration int            `json:"iteration,omitempty"`
	Phase     string         `json:"phase,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
