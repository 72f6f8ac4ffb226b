package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/pkg/models"
)

// Five-field cron without the seconds column.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// HeartbeatService manages heartbeat definitions and their run records.
// The unique (heartbeat_id, scheduled_for) index on runs is what makes a
// double fire within the same cron minute a no-op.
type HeartbeatService struct {
	client *ent.Client
}

// NewHeartbeatService creates a new HeartbeatService
func NewHeartbeatService(client *ent.Client) *HeartbeatService {
	return &HeartbeatService{client: client}
}

// HeartbeatParams carries the mutable fields of a heartbeat. Nil pointer
// fields are left untouched on update.
type HeartbeatParams struct {
	Name            string
	QueryTemplate   string
	CronExpression  string
	Timezone        string
	ContextTemplate map[string]interface{}
	WebhookURL      *string
	IsActive        *bool
}

func validateCron(expr string) error {
	if expr == "" {
		return NewValidationError("cron_expression", "required")
	}
	if _, err := cronParser.Parse(expr); err != nil {
		return NewValidationError("cron_expression", fmt.Sprintf("invalid cron expression: %v", err))
	}
	return nil
}

func validateTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", tz))
	}
	return nil
}

// CreateHeartbeat records a new heartbeat definition.
func (s *HeartbeatService) CreateHeartbeat(ctx context.Context, appID, userID string, params HeartbeatParams) (*ent.Heartbeat, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if params.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if params.QueryTemplate == "" {
		return nil, NewValidationError("query_template", "required")
	}
	if err := validateCron(params.CronExpression); err != nil {
		return nil, err
	}
	if err := validateTimezone(params.Timezone); err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Heartbeat.Create().
		SetID(uuid.New().String()).
		SetAppID(appID).
		SetName(params.Name).
		SetQueryTemplate(params.QueryTemplate).
		SetCronExpression(params.CronExpression)
	if userID != "" {
		create = create.SetUserID(userID)
	}
	if params.Timezone != "" {
		create = create.SetTimezone(params.Timezone)
	}
	if params.ContextTemplate != nil {
		create = create.SetContextTemplate(params.ContextTemplate)
	}
	if params.WebhookURL != nil {
		create = create.SetNillableWebhookURL(params.WebhookURL)
	}
	if params.IsActive != nil {
		create = create.SetIsActive(*params.IsActive)
	}

	created, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create heartbeat: %w", err)
	}

	return created, nil
}

// GetHeartbeat retrieves a heartbeat scoped to its owning app.
func (s *HeartbeatService) GetHeartbeat(ctx context.Context, appID, heartbeatID string) (*ent.Heartbeat, error) {
	hb, err := s.client.Heartbeat.Query().
		Where(heartbeat.ID(heartbeatID), appScoped[predicate.Heartbeat](appID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get heartbeat: %w", err)
	}
	return hb, nil
}

// ListHeartbeats returns an app's heartbeats, newest first.
func (s *HeartbeatService) ListHeartbeats(ctx context.Context, appID string) ([]*ent.Heartbeat, error) {
	hbs, err := s.client.Heartbeat.Query().
		Where(appScoped[predicate.Heartbeat](appID)).
		Order(ent.Desc(heartbeat.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heartbeats: %w", err)
	}
	return hbs, nil
}

// ListActiveHeartbeats returns every active heartbeat across all apps,
// for the scheduler tick.
func (s *HeartbeatService) ListActiveHeartbeats(ctx context.Context) ([]*ent.Heartbeat, error) {
	hbs, err := s.client.Heartbeat.Query().
		Where(heartbeat.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active heartbeats: %w", err)
	}
	return hbs, nil
}

// UpdateHeartbeat applies a partial update.
func (s *HeartbeatService) UpdateHeartbeat(ctx context.Context, appID, heartbeatID string, params HeartbeatParams) (*ent.Heartbeat, error) {
	if params.CronExpression != "" {
		if err := validateCron(params.CronExpression); err != nil {
			return nil, err
		}
	}
	if err := validateTimezone(params.Timezone); err != nil {
		return nil, err
	}

	hb, err := s.GetHeartbeat(ctx, appID, heartbeatID)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Heartbeat.UpdateOneID(hb.ID)
	if params.Name != "" {
		update = update.SetName(params.Name)
	}
	if params.QueryTemplate != "" {
		update = update.SetQueryTemplate(params.QueryTemplate)
	}
	if params.CronExpression != "" {
		update = update.SetCronExpression(params.CronExpression)
	}
	if params.Timezone != "" {
		update = update.SetTimezone(params.Timezone)
	}
	if params.ContextTemplate != nil {
		update = update.SetContextTemplate(params.ContextTemplate)
	}
	if params.WebhookURL != nil {
		update = update.SetNillableWebhookURL(params.WebhookURL)
	}
	if params.IsActive != nil {
		update = update.SetIsActive(*params.IsActive)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update heartbeat: %w", err)
	}

	return updated, nil
}

// DeleteHeartbeat removes a heartbeat and, via cascade, its runs.
func (s *HeartbeatService) DeleteHeartbeat(ctx context.Context, appID, heartbeatID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Heartbeat.Delete().
		Where(heartbeat.ID(heartbeatID), appScoped[predicate.Heartbeat](appID)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete heartbeat: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastRun stamps the heartbeat's last firing time.
func (s *HeartbeatService) TouchLastRun(ctx context.Context, heartbeatID string, at time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Heartbeat.UpdateOneID(heartbeatID).
		SetLastRunAt(at).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch heartbeat: %w", err)
	}
	return nil
}

// RecordRun creates the pending run row for one cron minute. A second
// fire for the same (heartbeat, minute) hits the unique index and comes
// back as ErrAlreadyExists, which the scheduler treats as "already
// handled".
func (s *HeartbeatService) RecordRun(ctx context.Context, heartbeatID string, scheduledFor time.Time) (*ent.HeartbeatRun, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run, err := s.client.HeartbeatRun.Create().
		SetID(uuid.New().String()).
		SetHeartbeatID(heartbeatID).
		SetScheduledFor(scheduledFor.Truncate(time.Minute)).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record heartbeat run: %w", err)
	}

	return run, nil
}

// AttachRunTask links the submitted task to its run.
func (s *HeartbeatService) AttachRunTask(ctx context.Context, runID, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.HeartbeatRun.UpdateOneID(runID).
		SetTaskID(taskID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach task to run: %w", err)
	}
	return nil
}

// CompleteRun records the run's terminal state.
func (s *HeartbeatService) CompleteRun(ctx context.Context, runID string, status heartbeatrun.Status, errMsg string) error {
	if status == heartbeatrun.StatusPending {
		return NewValidationError("status", "run cannot complete as pending")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.HeartbeatRun.UpdateOneID(runID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errMsg != "" {
		update = update.SetError(errMsg)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete heartbeat run: %w", err)
	}
	return nil
}

// ListRuns returns a heartbeat's runs, newest first.
func (s *HeartbeatService) ListRuns(ctx context.Context, appID, heartbeatID string, limit int) ([]*ent.HeartbeatRun, error) {
	if _, err := s.GetHeartbeat(ctx, appID, heartbeatID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.client.HeartbeatRun.Query().
		Where(heartbeatrun.HeartbeatID(heartbeatID)).
		Order(ent.Desc(heartbeatrun.FieldScheduledFor)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heartbeat runs: %w", err)
	}
	return runs, nil
}

// HeartbeatFromRow converts the Ent row into the wire model.
func HeartbeatFromRow(row *ent.Heartbeat) *models.Heartbeat {
	return &models.Heartbeat{
		ID:              row.ID,
		AppID:           row.AppID,
		UserID:          row.UserID,
		Name:            row.Name,
		QueryTemplate:   row.QueryTemplate,
		CronExpression:  row.CronExpression,
		Timezone:        row.Timezone,
		ContextTemplate: row.ContextTemplate,
		WebhookURL:      derefString(row.WebhookURL),
		IsActive:        row.IsActive,
		LastRunAt:       row.LastRunAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// HeartbeatRunFromRow converts the Ent row into the wire model.
func HeartbeatRunFromRow(row *ent.HeartbeatRun) *models.HeartbeatRun {
	return &models.HeartbeatRun{
		ID:           row.ID,
		HeartbeatID:  row.HeartbeatID,
		TaskID:       derefString(row.TaskID),
		ScheduledFor: row.ScheduledFor,
		Status:       string(row.Status),
		Error:        derefString(row.Error),
		CreatedAt:    row.CreatedAt,
		CompletedAt:  row.CompletedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
