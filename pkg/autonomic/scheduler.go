// Package autonomic runs the server's background loops: the cron-driven
// heartbeat scheduler that materializes recurring tasks, and the health
// monitor that keeps a cached system snapshot for the health endpoint.
package autonomic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
)

// Five-field cron, minute resolution.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Executor routes and runs materialized heartbeat tasks. The conductor
// is the production implementation.
type Executor interface {
	Route(req *models.TaskRequest) string
	Execute(ctx context.Context, req *models.TaskRequest) (*models.TaskResponse, error)
}

// SchedulerDeps are the scheduler's collaborators. Profiles is optional;
// without it {user_name} expands to the heartbeat's user id.
type SchedulerDeps struct {
	Heartbeats *services.HeartbeatService
	Tasks      *services.TaskService
	Profiles   *services.ProfileService
	Manager    *taskmanager.Manager
	Executor   Executor
}

// Scheduler fires active heartbeats whose cron expression matches the
// current minute in their timezone. Every firing creates a run row keyed
// by the cron minute; the unique (heartbeat_id, scheduled_for) index
// makes a second fire for the same minute a no-op, so a forced tick
// racing the timer loop can never double-submit.
type Scheduler struct {
	heartbeats *services.HeartbeatService
	tasks      *services.TaskService
	profiles   *services.ProfileService
	manager    *taskmanager.Manager
	executor   Executor
	webhooks   *webhookPoster
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates the heartbeat scheduler. An interval below one
// second falls back to one minute.
func NewScheduler(deps SchedulerDeps, interval time.Duration) *Scheduler {
	if interval < time.Second {
		interval = time.Minute
	}
	return &Scheduler{
		heartbeats: deps.Heartbeats,
		tasks:      deps.Tasks,
		profiles:   deps.Profiles,
		manager:    deps.Manager,
		executor:   deps.Executor,
		webhooks:   newWebhookPoster(),
		interval:   interval,
	}
}

// Start launches the tick loop. Safe to call once; subsequent calls are
// no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Heartbeat scheduler started", "interval", s.interval)
}

// Stop signals the tick loop to exit and waits for it to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Heartbeat scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := s.Tick(ctx, now); err != nil {
				slog.Error("Heartbeat tick failed", "error", err)
			}
		}
	}
}

// FiredRun identifies one heartbeat firing in a tick summary.
type FiredRun struct {
	HeartbeatID   string `json:"heartbeat_id"`
	HeartbeatName string `json:"heartbeat_name"`
	RunID         string `json:"run_id"`
	TaskID        string `json:"task_id"`
}

// TickSummary reports what one scheduler pass did.
type TickSummary struct {
	Fired      []FiredRun `json:"fired"`
	Skipped    int        `json:"skipped"`
	Duplicates int        `json:"duplicates"`
	Failures   int        `json:"failures"`
	Active     int        `json:"active"`
}

// Tick evaluates every active heartbeat against the given time and fires
// the due ones. Exposed so the tick endpoint can force a pass.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) (*TickSummary, error) {
	active, err := s.heartbeats.ListActiveHeartbeats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active heartbeats: %w", err)
	}

	summary := &TickSummary{Active: len(active)}
	for _, row := range active {
		hb := services.HeartbeatFromRow(row)
		due, err := dueThisMinute(hb, now)
		if err != nil {
			slog.Warn("Skipping heartbeat with bad schedule",
				"heartbeat_id", hb.ID, "cron", hb.CronExpression, "error", err)
			summary.Failures++
			continue
		}
		if !due {
			summary.Skipped++
			continue
		}

		fired, err := s.fire(ctx, hb, now)
		switch {
		case errors.Is(err, services.ErrAlreadyExists):
			summary.Duplicates++
		case err != nil:
			slog.Error("Heartbeat firing failed",
				"heartbeat_id", hb.ID, "heartbeat_name", hb.Name, "error", err)
			summary.Failures++
		default:
			summary.Fired = append(summary.Fired, *fired)
		}
	}

	if len(summary.Fired) > 0 || summary.Failures > 0 {
		slog.Info("Heartbeat tick complete",
			"fired", len(summary.Fired),
			"skipped", summary.Skipped,
			"duplicates", summary.Duplicates,
			"failures", summary.Failures)
	}
	return summary, nil
}

// dueThisMinute reports whether the heartbeat's cron expression matches
// now's minute, evaluated in the heartbeat's timezone.
func dueThisMinute(hb *models.Heartbeat, now time.Time) (bool, error) {
	schedule, err := cronParser.Parse(hb.CronExpression)
	if err != nil {
		return false, fmt.Errorf("parse cron %q: %w", hb.CronExpression, err)
	}

	local := now
	if hb.Timezone != "" {
		loc, err := time.LoadLocation(hb.Timezone)
		if err != nil {
			return false, fmt.Errorf("load timezone %q: %w", hb.Timezone, err)
		}
		local = now.In(loc)
	}

	minute := local.Truncate(time.Minute)
	return schedule.Next(minute.Add(-time.Minute)).Equal(minute), nil
}

// fire materializes one heartbeat into a task and hands it to the worker
// pool. The run row is created first: its unique minute key is the
// duplicate-fire gate.
func (s *Scheduler) fire(ctx context.Context, hb *models.Heartbeat, now time.Time) (*FiredRun, error) {
	run, err := s.heartbeats.RecordRun(ctx, hb.ID, now.UTC())
	if err != nil {
		return nil, err
	}
	runID := run.ID

	req, err := s.materialize(ctx, hb, now)
	if err != nil {
		s.completeRun(runID, heartbeatrun.StatusFailed, err.Error())
		return nil, err
	}

	_, err = s.tasks.CreateTask(ctx, services.CreateTaskParams{
		ID:          req.ID,
		AppID:       hb.AppID,
		UserID:      hb.UserID,
		Query:       req.Query,
		Request:     req,
		Instrument:  s.executor.Route(req),
		ProcessType: string(models.ProcessAutonomic),
	})
	if err != nil {
		s.completeRun(runID, heartbeatrun.StatusFailed, err.Error())
		return nil, fmt.Errorf("create task: %w", err)
	}

	if err := s.heartbeats.AttachRunTask(ctx, runID, req.ID); err != nil {
		slog.Warn("Failed to attach task to heartbeat run",
			"run_id", runID, "task_id", req.ID, "error", err)
	}

	if err := s.manager.Submit(req.ID, s.execFunc(hb, runID, req)); err != nil {
		if _, failErr := s.tasks.FailTask(context.Background(), req.ID, err.Error()); failErr != nil {
			slog.Error("Failed to fail unqueued heartbeat task",
				"task_id", req.ID, "error", failErr)
		}
		s.completeRun(runID, heartbeatrun.StatusFailed, err.Error())
		return nil, fmt.Errorf("submit task: %w", err)
	}

	slog.Info("Heartbeat fired",
		"heartbeat_id", hb.ID,
		"heartbeat_name", hb.Name,
		"run_id", runID,
		"task_id", req.ID)

	return &FiredRun{
		HeartbeatID:   hb.ID,
		HeartbeatName: hb.Name,
		RunID:         runID,
		TaskID:        req.ID,
	}, nil
}

// execFunc wraps the conductor call so the run row and webhook follow
// the task's fate. The manager still owns the task's own terminal write.
func (s *Scheduler) execFunc(hb *models.Heartbeat, runID string, req *models.TaskRequest) taskmanager.ExecFunc {
	return func(ctx context.Context) (*models.TaskResponse, error) {
		resp, err := s.executor.Execute(ctx, req)
		if err != nil {
			s.completeRun(runID, heartbeatrun.StatusFailed, err.Error())
			return nil, err
		}

		s.completeRun(runID, heartbeatrun.StatusComplete, "")
		if err := s.heartbeats.TouchLastRun(context.Background(), hb.ID, time.Now().UTC()); err != nil {
			slog.Warn("Failed to stamp heartbeat last run",
				"heartbeat_id", hb.ID, "error", err)
		}
		if hb.WebhookURL != "" {
			go s.webhooks.post(hb, runID, resp)
		}
		return resp, nil
	}
}

// completeRun records the run's terminal state on a background context:
// the worker's context may already be cancelled when this runs.
func (s *Scheduler) completeRun(runID string, status heartbeatrun.Status, errMsg string) {
	if err := s.heartbeats.CompleteRun(context.Background(), runID, status, errMsg); err != nil {
		slog.Error("Failed to complete heartbeat run",
			"run_id", runID, "status", string(status), "error", err)
	}
}

// materialize expands the heartbeat's templates into a submittable
// request with a fresh task id and trust level 1 (heartbeats run
// unattended but keep full responses).
func (s *Scheduler) materialize(ctx context.Context, hb *models.Heartbeat, now time.Time) (*models.TaskRequest, error) {
	taskCtx, err := contextFromTemplate(hb.ContextTemplate)
	if err != nil {
		return nil, fmt.Errorf("heartbeat context template: %w", err)
	}
	if taskCtx == nil {
		taskCtx = &models.TaskContext{}
	}
	taskCtx.AppID = hb.AppID
	taskCtx.UserID = hb.UserID

	return &models.TaskRequest{
		ID:      uuid.New().String(),
		Query:   s.expandTemplate(ctx, hb, now),
		Context: taskCtx,
		Preferences: &models.TaskPreferences{
			TrustLevel: 1,
		},
	}, nil
}

// expandTemplate substitutes the supported placeholders. Dates render in
// the heartbeat's timezone; unknown placeholders pass through untouched.
func (s *Scheduler) expandTemplate(ctx context.Context, hb *models.Heartbeat, now time.Time) string {
	local := now
	if hb.Timezone != "" {
		if loc, err := time.LoadLocation(hb.Timezone); err == nil {
			local = now.In(loc)
		}
	}

	replacer := strings.NewReplacer(
		"{date}", local.Format("2006-01-02"),
		"{datetime}", local.Format(time.RFC3339),
		"{time}", local.Format("15:04"),
		"{weekday}", local.Weekday().String(),
		"{heartbeat_name}", hb.Name,
		"{user_name}", s.userName(ctx, hb),
	)
	return replacer.Replace(hb.QueryTemplate)
}

// userName resolves {user_name} from the user's profile, falling back to
// the raw user id.
func (s *Scheduler) userName(ctx context.Context, hb *models.Heartbeat) string {
	if hb.UserID == "" {
		return ""
	}
	if s.profiles == nil || !strings.Contains(hb.QueryTemplate, "{user_name}") {
		return hb.UserID
	}
	profile, err := s.profiles.GetProfile(ctx, hb.AppID, hb.UserID)
	if err != nil || profile.DisplayName == nil || *profile.DisplayName == "" {
		return hb.UserID
	}
	return *profile.DisplayName
}

// contextFromTemplate decodes the stored context template into the task
// context instruments receive.
func contextFromTemplate(template map[string]any) (*models.TaskContext, error) {
	if len(template) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(template)
	if err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	var taskCtx models.TaskContext
	if err := json.Unmarshal(raw, &taskCtx); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}
	return &taskCtx, nil
}
