package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/models"
)

// Statuses a task can still move out of. Everything else is terminal and
// the row is immutable from then on.
var nonTerminalStatuses = []task.Status{
	task.StatusPending,
	task.StatusAwaitingApproval,
	task.StatusRunning,
}

// TaskService owns the task lifecycle rows. Terminal transitions are
// guarded by conditional updates so a task reaches exactly one terminal
// status no matter how many goroutines race for it.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTaskParams carries everything needed to record a new task.
type CreateTaskParams struct {
	ID          string // generated when empty
	AppID       string
	UserID      string
	Query       string
	Request     *models.TaskRequest
	Status      task.Status // defaults to pending
	Instrument  string
	ProcessType string
	RoomID      *string
}

// CreateTask records a new task row.
func (s *TaskService) CreateTask(ctx context.Context, params CreateTaskParams) (*ent.Task, error) {
	if params.AppID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if params.Query == "" {
		return nil, NewValidationError("query", "required")
	}
	status := params.Status
	if status == "" {
		status = task.StatusPending
	}
	switch status {
	case task.StatusPending, task.StatusAwaitingApproval, task.StatusRunning:
	default:
		return nil, NewValidationError("status", fmt.Sprintf("new task cannot start as %s", status))
	}

	id := params.ID
	if id == "" {
		id = uuid.New().String()
	}

	var request map[string]interface{}
	if params.Request != nil {
		m, err := toMap(params.Request)
		if err != nil {
			return nil, fmt.Errorf("failed to encode task request: %w", err)
		}
		request = m
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Task.Create().
		SetID(id).
		SetAppID(params.AppID).
		SetQuery(params.Query).
		SetStatus(status)
	if params.UserID != "" {
		create = create.SetUserID(params.UserID)
	}
	if request != nil {
		create = create.SetRequest(request)
	}
	if params.Instrument != "" {
		create = create.SetInstrument(params.Instrument)
	}
	if params.ProcessType != "" {
		create = create.SetProcessType(params.ProcessType)
	}
	if params.RoomID != nil {
		create = create.SetNillableRoomID(params.RoomID)
	}

	created, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// GetTask retrieves a task scoped to its owning app.
func (s *TaskService) GetTask(ctx context.Context, appID, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.ID(taskID), appScoped[predicate.Task](appID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// MarkRunning moves a pending task to running. Returns ErrAlreadyTerminal
// when the task has already finished, ErrNotFound when it never existed
// or sits in a status that cannot start running.
func (s *TaskService) MarkRunning(ctx context.Context, taskID string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Task.Update().
		Where(task.ID(taskID), task.StatusEQ(task.StatusPending)).
		SetStatus(task.StatusRunning).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark task running: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(writeCtx, taskID)
	}

	return s.client.Task.Get(writeCtx, taskID)
}

// ApproveTask moves an awaiting_approval task to pending so the worker
// pool can pick it up. A task no longer awaiting approval is returned
// as-is with approved=false; the caller treats that as an idempotent
// no-op rather than an error.
func (s *TaskService) ApproveTask(ctx context.Context, appID, taskID string) (*ent.Task, bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Task.Update().
		Where(
			task.ID(taskID),
			appScoped[predicate.Task](appID),
			task.StatusEQ(task.StatusAwaitingApproval),
		).
		SetStatus(task.StatusPending).
		Save(writeCtx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to approve task: %w", err)
	}

	t, err := s.GetTask(ctx, appID, taskID)
	if err != nil {
		return nil, false, err
	}
	return t, n > 0, nil
}

// CompleteTask records the single successful terminal transition.
func (s *TaskService) CompleteTask(ctx context.Context, taskID string, outcome models.Outcome, response *models.TaskResponse) (*ent.Task, error) {
	respMap, err := toMap(response)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task response: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Task.Update().
		Where(task.ID(taskID), task.StatusIn(nonTerminalStatuses...)).
		SetStatus(task.StatusComplete).
		SetOutcome(task.Outcome(outcome)).
		SetResponse(respMap).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(writeCtx, taskID)
	}

	return s.client.Task.Get(writeCtx, taskID)
}

// FailTask records the single failed terminal transition.
func (s *TaskService) FailTask(ctx context.Context, taskID, errMsg string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Task.Update().
		Where(task.ID(taskID), task.StatusIn(nonTerminalStatuses...)).
		SetStatus(task.StatusFailed).
		SetError(errMsg).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail task: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(writeCtx, taskID)
	}

	return s.client.Task.Get(writeCtx, taskID)
}

// CancelTask records the cancelled terminal transition.
func (s *TaskService) CancelTask(ctx context.Context, taskID string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Task.Update().
		Where(task.ID(taskID), task.StatusIn(nonTerminalStatuses...)).
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(writeCtx, taskID)
	}

	return s.client.Task.Get(writeCtx, taskID)
}

// transitionConflict explains why a conditional update matched no row.
func (s *TaskService) transitionConflict(ctx context.Context, taskID string) error {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to inspect task %s: %w", taskID, err)
	}
	switch t.Status {
	case task.StatusComplete, task.StatusFailed, task.StatusCancelled:
		return ErrAlreadyTerminal
	default:
		return fmt.Errorf("task %s in status %s: %w", taskID, t.Status, ErrInvalidInput)
	}
}

// ListActive returns tasks still moving, newest first.
func (s *TaskService) ListActive(ctx context.Context, appID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(appScoped[predicate.Task](appID), task.StatusIn(nonTerminalStatuses...)).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	return tasks, nil
}

// ListRecent returns the newest tasks regardless of status.
func (s *TaskService) ListRecent(ctx context.Context, appID string, limit int) ([]*ent.Task, error) {
	if limit <= 0 {
		limit = 20
	}
	tasks, err := s.client.Task.Query().
		Where(appScoped[predicate.Task](appID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tasks: %w", err)
	}
	return tasks, nil
}

// TaskStats aggregates task counts for an app.
type TaskStats struct {
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	ByStatus  map[string]int `json:"by_status"`
	ByOutcome map[string]int `json:"by_outcome"`
}

// Stats counts an app's tasks grouped by status and outcome.
func (s *TaskService) Stats(ctx context.Context, appID string) (*TaskStats, error) {
	stats := &TaskStats{
		ByStatus:  make(map[string]int),
		ByOutcome: make(map[string]int),
	}

	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Task.Query().
		Where(appScoped[predicate.Task](appID)).
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &byStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task statuses: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
		switch task.Status(row.Status) {
		case task.StatusPending, task.StatusAwaitingApproval, task.StatusRunning:
			stats.Active += row.Count
		}
	}

	var byOutcome []struct {
		Outcome *string `json:"outcome"`
		Count   int     `json:"count"`
	}
	err = s.client.Task.Query().
		Where(appScoped[predicate.Task](appID), task.OutcomeNotNil()).
		GroupBy(task.FieldOutcome).
		Aggregate(ent.Count()).
		Scan(ctx, &byOutcome)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task outcomes: %w", err)
	}
	for _, row := range byOutcome {
		if row.Outcome != nil {
			stats.ByOutcome[*row.Outcome] = row.Count
		}
	}

	return stats, nil
}

// SweepInterrupted fails every task left in running across all apps.
// Called once at startup: in-flight work does not survive a restart, so
// the rows must not stay running forever.
func (s *TaskService) SweepInterrupted(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Task.Update().
		Where(task.StatusEQ(task.StatusRunning)).
		SetStatus(task.StatusFailed).
		SetError("interrupted by restart").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep interrupted tasks: %w", err)
	}
	return n, nil
}

// ResponseFromTask decodes the stored response column, when present.
func ResponseFromTask(t *ent.Task) (*models.TaskResponse, error) {
	if t.Response == nil {
		return nil, nil
	}
	var resp models.TaskResponse
	if err := fromMap(t.Response, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode task response: %w", err)
	}
	return &resp, nil
}

// RequestFromTask decodes the stored request column, when present.
func RequestFromTask(t *ent.Task) (*models.TaskRequest, error) {
	if t.Request == nil {
		return nil, nil
	}
	var req models.TaskRequest
	if err := fromMap(t.Request, &req); err != nil {
		return nil, fmt.Errorf("failed to decode task request: %w", err)
	}
	return &req, nil
}
