package models

import (
	"context"
	"fmt"
	"time"
)

// IntentType classifies why the user is asking.
type IntentType string

const (
	IntentDecision   IntentType = "decision"
	IntentResearch   IntentType = "research"
	IntentAction     IntentType = "action"
	IntentCuriosity  IntentType = "curiosity"
	IntentValidation IntentType = "validation"
)

// Urgency classifies how soon the user needs the answer.
type Urgency string

const (
	UrgencyImmediate   Urgency = "immediate"
	UrgencySoon        Urgency = "soon"
	UrgencyPlanning    Urgency = "planning"
	UrgencyExploratory Urgency = "exploratory"
)

// Intent is the inferred or declared purpose of a task.
type Intent struct {
	Type            IntentType `json:"type"`
	Urgency         Urgency    `json:"urgency,omitempty"`
	SuccessCriteria string     `json:"success_criteria,omitempty"`
	Confidence      float64    `json:"confidence,omitempty"`
	Inferred        bool       `json:"inferred,omitempty"`
}

// Thoroughness controls how much effort routing allots to a task.
type Thoroughness string

const (
	ThoroughnessQuick    Thoroughness = "quick"
	ThoroughnessBalanced Thoroughness = "balanced"
	ThoroughnessThorough Thoroughness = "thorough"
)

// TaskPreferences are caller-supplied execution preferences.
type TaskPreferences struct {
	Thoroughness     Thoroughness `json:"thoroughness,omitempty"`
	TrustLevel       int          `json:"trust_level"`
	NotifyOnComplete *bool        `json:"notify_on_complete,omitempty"`
	MaxSpawnDepth    *int         `json:"max_spawn_depth,omitempty"`
}

// NotifyRequested reports whether the caller asked for a terminal
// notification. Within a preferences block the default is on; absent
// preferences mean no notification.
func (p *TaskPreferences) NotifyRequested() bool {
	if p == nil {
		return false
	}
	return p.NotifyOnComplete == nil || *p.NotifyOnComplete
}

// TaskRequest is the unit of work submitted by a client.
type TaskRequest struct {
	ID            string           `json:"id,omitempty"`
	Query         string           `json:"query"`
	Context       *TaskContext     `json:"context,omitempty"`
	Intent        *Intent          `json:"intent,omitempty"`
	Preferences   *TaskPreferences `json:"preferences,omitempty"`
	Arrangement   *ArrangementSpec `json:"arrangement,omitempty"`
	ArrangementID string           `json:"arrangement_id,omitempty"`
}

// EffectiveIntent returns the request-level intent, falling back to the
// context-level one.
func (r *TaskRequest) EffectiveIntent() *Intent {
	if r.Intent != nil {
		return r.Intent
	}
	if r.Context != nil {
		return r.Context.Intent
	}
	return nil
}

// CheckpointFunc persists an iteration checkpoint and emits an iteration
// event. Injected by the conductor before instrument execution.
type CheckpointFunc func(ctx context.Context, iteration int, phase string, input, output map[string]any, durationMS int64) error

// SpawnFunc re-enters the conductor with a bounded sub-task. The returned
// result is embedded by the caller; it never becomes a full TaskResponse.
// Spawning past the depth ceiling fails fast with *DepthExceededError.
type SpawnFunc func(ctx context.Context, subQuery string, subContext *TaskContext) (*InstrumentResult, error)

// DepthExceededError reports a spawn attempt past the recursion ceiling.
// The iteration that attempted the spawn records the failure and its loop
// finishes bounded with a discrepancy naming the limit.
type DepthExceededError struct {
	CurrentDepth int
	MaxDepth     int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("spawn depth exceeded: attempted depth=%d, max=%d", e.CurrentDepth, e.MaxDepth)
}

// TaskContext is the runtime envelope passed into instruments. The
// serializable fields travel on the wire; the callback fields are injected
// by the conductor at execution time and are never serialized.
type TaskContext struct {
	AppID               string             `json:"app_id,omitempty"`
	UserID              string             `json:"user_id,omitempty"`
	ConversationSummary string             `json:"conversation_summary,omitempty"`
	Attachments         []string           `json:"attachments,omitempty"`
	Location            string             `json:"location,omitempty"`
	Goal                string             `json:"goal,omitempty"`
	Intent              *Intent            `json:"intent,omitempty"`
	InputResults        []InstrumentResult `json:"input_results,omitempty"`

	Depth    int `json:"depth,omitempty"`
	MaxDepth int `json:"max_depth,omitempty"`

	CheckpointFn CheckpointFunc `json:"-"`
	SpawnFn      SpawnFunc      `json:"-"`
}

// Clone returns a copy of the context with the given input results. The
// callbacks and recursion counters carry over; slices are shared.
func (c *TaskContext) Clone(inputResults []InstrumentResult) *TaskContext {
	if c == nil {
		return &TaskContext{InputResults: inputResults}
	}
	clone := *c
	clone.InputResults = inputResults
	return &clone
}

// TaskPlan describes what a trust-level-0 task will do, held until the user
// approves it.
type TaskPlan struct {
	TaskID              string      `json:"task_id"`
	Query               string      `json:"query"`
	Instrument          string      `json:"instrument"`
	ProcessType         ProcessType `json:"process_type"`
	EstimatedIterations int         `json:"estimated_iterations"`
	Description         string      `json:"description"`
	RequiresApproval    bool        `json:"requires_approval"`
}

// Task is the persisted task record.
type Task struct {
	ID          string        `json:"id"`
	AppID       string        `json:"app_id,omitempty"`
	UserID      string        `json:"user_id,omitempty"`
	Request     *TaskRequest  `json:"request"`
	Status      TaskStatus    `json:"status"`
	Outcome     Outcome       `json:"outcome,omitempty"`
	Response    *TaskResponse `json:"response,omitempty"`
	Error       string        `json:"error,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// IterationCheckpoint is a per-iteration observability record.
type IterationCheckpoint struct {
	TaskID       string         `json:"task_id"`
	IterationNum int            `json:"iteration_num"`
	Phase        string         `json:"phase"`
	Input        map[string]any `json:"input,omitempty"`
	Output       map[string]any `json:"output,omitempty"`
	DurationMS   int64          `json:"duration_ms"`
	CreatedAt    time.Time      `json:"created_at"`
}
