package api

import (
	"time"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/pkg/models"
)

// TaskSubmitResponse acknowledges a submission. Plan is present only
// for supervised (trust level 0) tasks held for approval.
type TaskSubmitResponse struct {
	TaskID  string           `json:"task_id"`
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Plan    *models.TaskPlan `json:"plan,omitempty"`
}

// TaskPendingResponse is the poll answer for a task that has not
// reached a terminal status yet. Request echoes the stored submission
// so a poller can recover what it asked for from the task id alone.
type TaskPendingResponse struct {
	TaskID    string              `json:"task_id"`
	Status    string              `json:"status"`
	Progress  string              `json:"progress"`
	Request   *models.TaskRequest `json:"request,omitempty"`
	StartedAt time.Time           `json:"started_at"`
}

// CancelTaskResponse reports how a cancel request was satisfied:
// "cancelling" when a live worker was signalled, "cancelled" when the
// row moved straight to terminal.
type CancelTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskSummary is one row in the active/recent task lists.
type TaskSummary struct {
	TaskID      string     `json:"task_id"`
	Query       string     `json:"query"`
	Status      string     `json:"status"`
	Outcome     string     `json:"outcome,omitempty"`
	Instrument  string     `json:"instrument,omitempty"`
	ProcessType string     `json:"process_type,omitempty"`
	RoomID      string     `json:"room_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func taskSummaryFromRow(t *ent.Task) TaskSummary {
	s := TaskSummary{
		TaskID:      t.ID,
		Query:       t.Query,
		Status:      string(t.Status),
		Instrument:  t.Instrument,
		ProcessType: t.ProcessType,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.Outcome != nil {
		s.Outcome = string(*t.Outcome)
	}
	if t.RoomID != nil {
		s.RoomID = *t.RoomID
	}
	if t.Error != nil {
		s.Error = *t.Error
	}
	return s
}

func taskSummariesFromRows(rows []*ent.Task) []TaskSummary {
	out := make([]TaskSummary, 0, len(rows))
	for _, t := range rows {
		out = append(out, taskSummaryFromRow(t))
	}
	return out
}

// TaskListResponse wraps the active/recent task lists.
type TaskListResponse struct {
	Tasks []TaskSummary `json:"tasks"`
	Count int           `json:"count"`
}

// HeartbeatListResponse wraps an app's heartbeats.
type HeartbeatListResponse struct {
	Heartbeats []*models.Heartbeat `json:"heartbeats"`
	Count      int                 `json:"count"`
}

// HeartbeatRunListResponse wraps a heartbeat's recent firings.
type HeartbeatRunListResponse struct {
	Runs  []*models.HeartbeatRun `json:"runs"`
	Count int                    `json:"count"`
}

// ArrangementView is a saved arrangement row on the wire.
type ArrangementView struct {
	ArrangementID string                   `json:"arrangement_id"`
	Name          string                   `json:"name"`
	Description   string                   `json:"description,omitempty"`
	Kind          string                   `json:"kind"`
	Steps         []models.ArrangementStep `json:"steps"`
	Merge         string                   `json:"merge,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func arrangementFromRow(row *ent.SavedArrangement) ArrangementView {
	return ArrangementView{
		ArrangementID: row.ID,
		Name:          row.Name,
		Description:   row.Description,
		Kind:          string(row.Kind),
		Steps:         row.Steps,
		Merge:         row.Merge,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// ArrangementListResponse wraps an app's saved arrangements.
type ArrangementListResponse struct {
	Arrangements []ArrangementView `json:"arrangements"`
	Count        int               `json:"count"`
}

// NotificationPreferenceView is the delivery-rule record on the wire.
// Unset preferences render as the defaults: enabled, no quiet hours,
// all outcomes.
type NotificationPreferenceView struct {
	Enabled         bool       `json:"enabled"`
	QuietHoursStart *int       `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd   *int       `json:"quiet_hours_end,omitempty"`
	Outcomes        []string   `json:"outcomes"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func preferenceFromRow(row *ent.NotificationPreference) NotificationPreferenceView {
	if row == nil {
		return NotificationPreferenceView{Enabled: true, Outcomes: []string{}}
	}
	view := NotificationPreferenceView{
		Enabled:         row.Enabled,
		QuietHoursStart: row.QuietHoursStart,
		QuietHoursEnd:   row.QuietHoursEnd,
		Outcomes:        row.Outcomes,
		UpdatedAt:       &row.UpdatedAt,
	}
	if view.Outcomes == nil {
		view.Outcomes = []string{}
	}
	return view
}

// NotificationChannelView is a delivery channel on the wire.
type NotificationChannelView struct {
	ChannelID string    `json:"channel_id"`
	Kind      string    `json:"kind"`
	Target    string    `json:"target"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func channelFromRow(row *ent.NotificationChannel) NotificationChannelView {
	return NotificationChannelView{
		ChannelID: row.ID,
		Kind:      string(row.Kind),
		Target:    row.Target,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

// NotificationChannelListResponse wraps a user's active channels.
type NotificationChannelListResponse struct {
	Channels []NotificationChannelView `json:"channels"`
	Count    int                       `json:"count"`
}

// NotificationHistoryView is one delivery attempt on the wire.
type NotificationHistoryView struct {
	TaskID      string    `json:"task_id,omitempty"`
	ChannelKind string    `json:"channel_kind"`
	Status      string    `json:"status"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func historyFromRow(row *ent.NotificationHistory) NotificationHistoryView {
	view := NotificationHistoryView{
		ChannelKind: row.ChannelKind,
		Status:      string(row.Status),
		CreatedAt:   row.CreatedAt,
	}
	if row.TaskID != nil {
		view.TaskID = *row.TaskID
	}
	if row.Detail != nil {
		view.Detail = *row.Detail
	}
	return view
}

// NotificationHistoryResponse wraps a user's delivery log.
type NotificationHistoryResponse struct {
	History []NotificationHistoryView `json:"history"`
	Count   int                       `json:"count"`
}

// KnowledgeEntryView is a knowledge delta entry piggybacked on the room
// heartbeat response.
type KnowledgeEntryView struct {
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

func knowledgeEntriesFromRows(rows []*ent.KnowledgeEntry) []KnowledgeEntryView {
	out := make([]KnowledgeEntryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, KnowledgeEntryView{
			Topic:     row.Topic,
			Content:   row.Content,
			Version:   row.Version,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out
}

// RoomHeartbeatResponse acknowledges a room heartbeat. The knowledge
// fields are present only when the heartbeat asked for a delta.
type RoomHeartbeatResponse struct {
	Room             *models.Room         `json:"room"`
	KnowledgeVersion *int                 `json:"knowledge_version,omitempty"`
	KnowledgeDelta   []KnowledgeEntryView `json:"knowledge_delta,omitempty"`
}

// RoomListResponse wraps the room registry.
type RoomListResponse struct {
	Rooms []models.Room `json:"rooms"`
	Count int           `json:"count"`
}

// HealthResponse is the basic liveness answer.
type HealthResponse struct {
	Status  string   `json:"status"`
	Version string   `json:"version"`
	Tools   []string `json:"tools"`
}
