package autonomic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/database"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
	testdb "github.com/loop-symphony/symphony/test/database"
)

// stubExecutor plays the conductor: it records every request and answers
// with a scripted response.
type stubExecutor struct {
	mu         sync.Mutex
	requests   []*models.TaskRequest
	instrument string
	resp       *models.TaskResponse
	err        error
}

func (s *stubExecutor) Route(req *models.TaskRequest) string { return s.instrument }

func (s *stubExecutor) Execute(ctx context.Context, req *models.TaskRequest) (*models.TaskResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	resp := *s.resp
	resp.RequestID = req.ID
	return &resp, nil
}

func (s *stubExecutor) recorded() []*models.TaskRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.TaskRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func seedApp(t *testing.T, db *database.Client) *ent.App {
	t.Helper()
	app, err := db.App.Create().
		SetID(uuid.New().String()).
		SetName("test-app-" + uuid.New().String()[:8]).
		SetAPIKey("sk-test-" + uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return app
}

type schedulerFixture struct {
	db         *database.Client
	heartbeats *services.HeartbeatService
	tasks      *services.TaskService
	profiles   *services.ProfileService
	executor   *stubExecutor
	scheduler  *Scheduler
	app        *ent.App
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	bus := events.NewBus(events.BusConfig{})
	t.Cleanup(bus.Close)

	tasks := services.NewTaskService(db.Client)
	heartbeats := services.NewHeartbeatService(db.Client)
	profiles := services.NewProfileService(db.Client)

	manager := taskmanager.NewManager(tasks, bus, config.WorkerConfig{Count: 2, QueueSize: 16})
	manager.Start(context.Background())
	t.Cleanup(manager.Stop)

	executor := &stubExecutor{
		instrument: "note",
		resp: &models.TaskResponse{
			Outcome:    models.OutcomeComplete,
			Summary:    "overnight was quiet",
			Confidence: 0.9,
		},
	}

	f := &schedulerFixture{
		db:         db,
		heartbeats: heartbeats,
		tasks:      tasks,
		profiles:   profiles,
		executor:   executor,
		app:        seedApp(t, db),
	}
	f.scheduler = NewScheduler(SchedulerDeps{
		Heartbeats: heartbeats,
		Tasks:      tasks,
		Profiles:   profiles,
		Manager:    manager,
		Executor:   executor,
	}, time.Minute)
	return f
}

func (f *schedulerFixture) createHeartbeat(t *testing.T, userID string, params services.HeartbeatParams) *models.Heartbeat {
	t.Helper()
	row, err := f.heartbeats.CreateHeartbeat(context.Background(), f.app.ID, userID, params)
	require.NoError(t, err)
	return services.HeartbeatFromRow(row)
}

func (f *schedulerFixture) waitTaskStatus(t *testing.T, taskID string, want task.Status) *ent.Task {
	t.Helper()
	var row *ent.Task
	require.Eventually(t, func() bool {
		got, err := f.tasks.GetTask(context.Background(), f.app.ID, taskID)
		if err != nil {
			return false
		}
		row = got
		return row.Status == want
	}, 10*time.Second, 25*time.Millisecond)
	return row
}

func (f *schedulerFixture) waitRunStatus(t *testing.T, heartbeatID string, want heartbeatrun.Status) *ent.HeartbeatRun {
	t.Helper()
	var run *ent.HeartbeatRun
	require.Eventually(t, func() bool {
		runs, err := f.heartbeats.ListRuns(context.Background(), f.app.ID, heartbeatID, 5)
		if err != nil || len(runs) == 0 {
			return false
		}
		run = runs[0]
		return run.Status == want
	}, 10*time.Second, 25*time.Millisecond)
	return run
}

func TestSchedulerTickFiresDueHeartbeat(t *testing.T) {
	f := newSchedulerFixture(t)
	hb := f.createHeartbeat(t, "user-9", services.HeartbeatParams{
		Name:            "morning digest",
		QueryTemplate:   "overnight review for {date}",
		CronExpression:  "30 7 * * *",
		Timezone:        "UTC",
		ContextTemplate: map[string]any{"goal": "stay ahead of the news"},
	})

	now := time.Date(2026, 8, 25, 7, 30, 12, 0, time.UTC)
	summary, err := f.scheduler.Tick(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Active)
	require.Len(t, summary.Fired, 1)
	fired := summary.Fired[0]
	assert.Equal(t, hb.ID, fired.HeartbeatID)
	assert.Equal(t, "morning digest", fired.HeartbeatName)
	assert.NotEmpty(t, fired.RunID)
	assert.NotEmpty(t, fired.TaskID)

	row := f.waitTaskStatus(t, fired.TaskID, task.StatusComplete)
	assert.Equal(t, "overnight review for 2026-08-25", row.Query)
	assert.Equal(t, "note", row.Instrument)
	assert.Equal(t, "autonomic", row.ProcessType)
	assert.Equal(t, "user-9", row.UserID)

	run := f.waitRunStatus(t, hb.ID, heartbeatrun.StatusComplete)
	assert.Equal(t, fired.RunID, run.ID)
	require.NotNil(t, run.TaskID)
	assert.Equal(t, fired.TaskID, *run.TaskID)
	assert.True(t, run.ScheduledFor.UTC().Equal(now.Truncate(time.Minute)),
		"the run is keyed by the cron minute, not the tick instant")

	reqs := f.executor.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, fired.TaskID, reqs[0].ID)
	require.NotNil(t, reqs[0].Context)
	assert.Equal(t, f.app.ID, reqs[0].Context.AppID)
	assert.Equal(t, "user-9", reqs[0].Context.UserID)
	assert.Equal(t, "stay ahead of the news", reqs[0].Context.Goal)
	require.NotNil(t, reqs[0].Preferences)
	assert.Equal(t, 1, reqs[0].Preferences.TrustLevel)

	require.Eventually(t, func() bool {
		got, err := f.heartbeats.GetHeartbeat(context.Background(), f.app.ID, hb.ID)
		return err == nil && got.LastRunAt != nil
	}, 10*time.Second, 25*time.Millisecond, "last_run_at is stamped after completion")
}

func TestSchedulerTickDedupesWithinTheMinute(t *testing.T) {
	f := newSchedulerFixture(t)
	hb := f.createHeartbeat(t, "", services.HeartbeatParams{
		Name:           "every minute",
		QueryTemplate:  "anything new",
		CronExpression: "* * * * *",
	})

	now := time.Date(2026, 8, 25, 10, 0, 5, 0, time.UTC)
	first, err := f.scheduler.Tick(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, first.Fired, 1)

	// A forced tick racing the timer loop lands in the same minute.
	second, err := f.scheduler.Tick(context.Background(), now.Add(30*time.Second))
	require.NoError(t, err)
	assert.Empty(t, second.Fired)
	assert.Equal(t, 1, second.Duplicates)

	f.waitRunStatus(t, hb.ID, heartbeatrun.StatusComplete)
	count, err := f.db.HeartbeatRun.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one run row per cron minute")
}

func TestSchedulerTickSkipsOffSchedule(t *testing.T) {
	f := newSchedulerFixture(t)
	f.createHeartbeat(t, "", services.HeartbeatParams{
		Name:           "seven sharp",
		QueryTemplate:  "daily check",
		CronExpression: "0 7 * * *",
	})

	summary, err := f.scheduler.Tick(context.Background(), time.Date(2026, 8, 25, 8, 15, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Active)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, summary.Fired)

	count, err := f.db.HeartbeatRun.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, f.executor.recorded())
}

func TestSchedulerTickHonorsTimezone(t *testing.T) {
	f := newSchedulerFixture(t)
	f.createHeartbeat(t, "", services.HeartbeatParams{
		Name:           "new york morning",
		QueryTemplate:  "what changed overnight",
		CronExpression: "0 9 * * *",
		Timezone:       "America/New_York",
	})

	// 09:00 UTC is 05:00 in New York: not due yet.
	early, err := f.scheduler.Tick(context.Background(), time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, early.Fired)
	assert.Equal(t, 1, early.Skipped)

	// 13:00 UTC is 09:00 EDT: due.
	due, err := f.scheduler.Tick(context.Background(), time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, due.Fired, 1)
	f.waitTaskStatus(t, due.Fired[0].TaskID, task.StatusComplete)
}

func TestSchedulerTickRecordsFailure(t *testing.T) {
	f := newSchedulerFixture(t)
	f.executor.err = errors.New("instrument crashed")
	hb := f.createHeartbeat(t, "", services.HeartbeatParams{
		Name:           "doomed",
		QueryTemplate:  "poke the broken thing",
		CronExpression: "* * * * *",
	})

	summary, err := f.scheduler.Tick(context.Background(), time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, summary.Fired, 1)

	f.waitTaskStatus(t, summary.Fired[0].TaskID, task.StatusFailed)
	run := f.waitRunStatus(t, hb.ID, heartbeatrun.StatusFailed)
	require.NotNil(t, run.Error)
	assert.Equal(t, "instrument crashed", *run.Error)
	require.NotNil(t, run.TaskID)
	assert.Equal(t, summary.Fired[0].TaskID, *run.TaskID)
}

func TestSchedulerDeliversWebhook(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		select {
		case received <- body:
		default:
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	f := newSchedulerFixture(t)
	webhook := srv.URL
	hb := f.createHeartbeat(t, "", services.HeartbeatParams{
		Name:           "notify me",
		QueryTemplate:  "daily status",
		CronExpression: "* * * * *",
		WebhookURL:     &webhook,
	})

	summary, err := f.scheduler.Tick(context.Background(), time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, summary.Fired, 1)
	fired := summary.Fired[0]

	var body []byte
	select {
	case body = <-received:
	case <-time.After(10 * time.Second):
		t.Fatal("webhook was never delivered")
	}

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "heartbeat.completed", payload["event"])
	assert.Equal(t, hb.ID, payload["heartbeat_id"])
	assert.Equal(t, "notify me", payload["heartbeat_name"])
	assert.Equal(t, fired.RunID, payload["run_id"])
	assert.Equal(t, fired.TaskID, payload["task_id"])
	assert.Equal(t, "complete", payload["outcome"])
	assert.Equal(t, "overnight was quiet", payload["summary"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestSchedulerResolvesUserNameFromProfile(t *testing.T) {
	f := newSchedulerFixture(t)
	ctx := context.Background()

	profile, err := f.profiles.EnsureProfile(ctx, f.app.ID, "user-3")
	require.NoError(t, err)
	require.NoError(t, f.db.UserProfile.UpdateOneID(profile.ID).SetDisplayName("Ada").Exec(ctx))

	hb := f.createHeartbeat(t, "user-3", services.HeartbeatParams{
		Name:           "daily nudge",
		QueryTemplate:  "remind {user_name} about the standup",
		CronExpression: "* * * * *",
	})

	summary, err := f.scheduler.Tick(ctx, time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, summary.Fired, 1)
	assert.Equal(t, hb.ID, summary.Fired[0].HeartbeatID)

	f.waitTaskStatus(t, summary.Fired[0].TaskID, task.StatusComplete)
	reqs := f.executor.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "remind Ada about the standup", reqs[0].Query)
}

func TestSchedulerStartStop(t *testing.T) {
	f := newSchedulerFixture(t)
	f.scheduler.Start(context.Background())
	f.scheduler.Start(context.Background()) // duplicate Start is a no-op
	f.scheduler.Stop()
}
