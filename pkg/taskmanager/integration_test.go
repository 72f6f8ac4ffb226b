package taskmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func intTestWorkerConfig() config.WorkerConfig {
	return config.WorkerConfig{Count: 2, QueueSize: 16}
}

// newTestManager wires a manager against an isolated test database.
func newTestManager(t *testing.T) (*Manager, *services.TaskService, *events.Bus, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	taskSvc := services.NewTaskService(dbClient.Client)
	bus := events.NewBus(events.BusConfig{})
	t.Cleanup(bus.Close)
	return NewManager(taskSvc, bus, intTestWorkerConfig()), taskSvc, bus, dbClient.Client
}

func seedApp(t *testing.T, client *ent.Client) *ent.App {
	t.Helper()
	app, err := client.App.Create().
		SetID(uuid.New().String()).
		SetName("test-app-" + uuid.New().String()[:8]).
		SetAPIKey("sk-test-" + uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return app
}

func seedPendingTask(t *testing.T, svc *services.TaskService, appID string) *ent.Task {
	t.Helper()
	created, err := svc.CreateTask(context.Background(), services.CreateTaskParams{
		AppID: appID,
		Query: "how much disk headroom remains on the ingest tier",
		Request: &models.TaskRequest{
			Query: "how much disk headroom remains on the ingest tier",
		},
	})
	require.NoError(t, err)
	return created
}

// collectUntilClosed drains a subscription until the bus closes it after
// the terminal event.
func collectUntilClosed(t *testing.T, ch <-chan models.TaskEvent, timeout time.Duration) []models.TaskEvent {
	t.Helper()
	var collected []models.TaskEvent
	deadline := time.After(timeout)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return collected
			}
			collected = append(collected, evt)
		case <-deadline:
			t.Fatalf("timed out waiting for the event stream to close (got %d events)", len(collected))
		}
	}
}

func TestManagerRunsTaskToCompletion(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)
	created := seedPendingTask(t, svc, app.ID)

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	err := m.Submit(created.ID, func(ctx context.Context) (*models.TaskResponse, error) {
		return &models.TaskResponse{
			RequestID:  created.ID,
			Summary:    "roughly 40% headroom across the tier",
			Confidence: 0.82,
			Outcome:    models.OutcomeComplete,
		}, nil
	})
	require.NoError(t, err)

	collected := collectUntilClosed(t, ch, 10*time.Second)
	require.Len(t, collected, 2)
	assert.Equal(t, models.EventStarted, collected[0].Type)
	assert.Equal(t, models.EventComplete, collected[1].Type)
	assert.Equal(t, "complete", collected[1].Payload["outcome"])
	assert.Equal(t, 0.82, collected[1].Payload["confidence"])

	row, err := svc.GetTask(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusComplete, row.Status)
	require.NotNil(t, row.Outcome)
	assert.Equal(t, task.OutcomeComplete, *row.Outcome)
	require.NotNil(t, row.CompletedAt)

	resp, err := services.ResponseFromTask(row)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "roughly 40% headroom across the tier", resp.Summary)
}

func TestManagerFailsTaskOnError(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)
	created := seedPendingTask(t, svc, app.ID)

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	require.NoError(t, m.Submit(created.ID, func(ctx context.Context) (*models.TaskResponse, error) {
		return nil, errors.New("search backend unreachable")
	}))

	collected := collectUntilClosed(t, ch, 10*time.Second)
	require.Len(t, collected, 2)
	assert.Equal(t, models.EventStarted, collected[0].Type)
	assert.Equal(t, models.EventError, collected[1].Type)
	assert.Equal(t, "search backend unreachable", collected[1].Payload["error"])

	row, err := svc.GetTask(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, row.Status)
	require.NotNil(t, row.Error)
	assert.Equal(t, "search backend unreachable", *row.Error)
}

func TestManagerFailsTaskOnPanic(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)
	created := seedPendingTask(t, svc, app.ID)

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	require.NoError(t, m.Submit(created.ID, func(ctx context.Context) (*models.TaskResponse, error) {
		panic("nil finding dereference")
	}))

	collected := collectUntilClosed(t, ch, 10*time.Second)
	require.Len(t, collected, 2)
	assert.Equal(t, models.EventError, collected[1].Type)

	row, err := svc.GetTask(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, row.Status)
	require.NotNil(t, row.Error)
	assert.Contains(t, *row.Error, "nil finding dereference")
}

func TestManagerCancelRunningTask(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)
	created := seedPendingTask(t, svc, app.ID)

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	running := make(chan struct{})
	require.NoError(t, m.Submit(created.ID, func(ctx context.Context) (*models.TaskResponse, error) {
		close(running)
		<-ctx.Done()
		return nil, ctx.Err()
	}))

	select {
	case <-running:
	case <-time.After(10 * time.Second):
		t.Fatal("worker never picked the task up")
	}

	result, err := m.Cancel(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, CancelSignalled, result)

	collected := collectUntilClosed(t, ch, 10*time.Second)
	require.Len(t, collected, 2)
	assert.Equal(t, models.EventStarted, collected[0].Type)
	assert.Equal(t, models.EventCancelled, collected[1].Type)

	row, err := svc.GetTask(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, row.Status)
}

func TestManagerCancelQueuedTask(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)
	created := seedPendingTask(t, svc, app.ID)

	// Queue without starting workers, so nothing holds the task yet.
	executed := false
	require.NoError(t, m.Submit(created.ID, func(ctx context.Context) (*models.TaskResponse, error) {
		executed = true
		return &models.TaskResponse{Outcome: models.OutcomeComplete}, nil
	}))

	result, err := m.Cancel(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, CancelImmediate, result)

	row, err := svc.GetTask(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, row.Status)

	// A worker that later drains the queue must skip the terminal row.
	m.Start(context.Background())
	defer m.Stop()
	require.Eventually(t, func() bool { return len(m.queue) == 0 }, 5*time.Second, 20*time.Millisecond)

	history := bus.History(created.ID)
	require.Len(t, history, 1, "exactly one terminal event")
	assert.Equal(t, models.EventCancelled, history[0].Type)
	assert.False(t, executed, "cancelled task must never execute")
}

func TestManagerCancelTerminalTask(t *testing.T) {
	m, svc, _, client := newTestManager(t)
	app := seedApp(t, client)
	created := seedPendingTask(t, svc, app.ID)

	_, err := svc.MarkRunning(context.Background(), created.ID)
	require.NoError(t, err)
	_, err = svc.FailTask(context.Background(), created.ID, "boom")
	require.NoError(t, err)

	_, err = m.Cancel(context.Background(), app.ID, created.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyTerminal)
}

func TestManagerCancelUnknownTask(t *testing.T) {
	m, _, _, client := newTestManager(t)
	app := seedApp(t, client)

	_, err := m.Cancel(context.Background(), app.ID, "no-such-task")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestManagerCancelScopedToApp(t *testing.T) {
	m, svc, _, client := newTestManager(t)
	owner := seedApp(t, client)
	other := seedApp(t, client)
	created := seedPendingTask(t, svc, owner.ID)

	_, err := m.Cancel(context.Background(), other.ID, created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound, "tasks are invisible across apps")
}

func TestManagerApproveFlow(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)

	req := &models.TaskRequest{Query: "rotate the stale cache keys"}
	created, err := svc.CreateTask(context.Background(), services.CreateTaskParams{
		AppID:   app.ID,
		Query:   req.Query,
		Request: req,
		Status:  task.StatusAwaitingApproval,
	})
	require.NoError(t, err)
	m.Approvals().Put(created.ID, &models.TaskPlan{TaskID: created.ID, Query: req.Query}, req)

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	var gotQuery string
	approved, err := m.Approve(context.Background(), app.ID, created.ID, func(r *models.TaskRequest) ExecFunc {
		gotQuery = r.Query
		return func(ctx context.Context) (*models.TaskResponse, error) {
			return &models.TaskResponse{Outcome: models.OutcomeComplete, Summary: "rotated"}, nil
		}
	})
	require.NoError(t, err)
	assert.NotEqual(t, task.StatusAwaitingApproval, approved.Status)
	assert.Equal(t, req.Query, gotQuery, "the stored request is handed to the builder")
	assert.Equal(t, 0, m.Approvals().Len(), "the plan is deleted on approval")

	collected := collectUntilClosed(t, ch, 10*time.Second)
	require.Len(t, collected, 2)
	assert.Equal(t, models.EventStarted, collected[0].Type)
	assert.Equal(t, models.EventComplete, collected[1].Type)

	row, err := svc.GetTask(context.Background(), app.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusComplete, row.Status)
}

func TestManagerApproveTwiceIsNoOp(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)

	req := &models.TaskRequest{Query: "summarize the oncall handoff"}
	created, err := svc.CreateTask(context.Background(), services.CreateTaskParams{
		AppID:   app.ID,
		Query:   req.Query,
		Request: req,
		Status:  task.StatusAwaitingApproval,
	})
	require.NoError(t, err)
	m.Approvals().Put(created.ID, &models.TaskPlan{TaskID: created.ID, Query: req.Query}, req)

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	build := func(r *models.TaskRequest) ExecFunc {
		return func(ctx context.Context) (*models.TaskResponse, error) {
			return &models.TaskResponse{Outcome: models.OutcomeComplete, Summary: "done"}, nil
		}
	}

	_, err = m.Approve(context.Background(), app.ID, created.ID, build)
	require.NoError(t, err)

	collected := collectUntilClosed(t, ch, 10*time.Second)
	require.Len(t, collected, 2)

	// Second approve reports the current status and queues nothing new.
	again, err := m.Approve(context.Background(), app.ID, created.ID, build)
	require.NoError(t, err)
	assert.Equal(t, task.StatusComplete, again.Status)

	history := bus.History(created.ID)
	started := 0
	for _, evt := range history {
		if evt.Type == models.EventStarted {
			started++
		}
	}
	assert.Equal(t, 1, started, "a task starts exactly once")
}

func TestManagerApproveFallsBackToPersistedRequest(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)

	req := &models.TaskRequest{Query: "list open incidents by severity"}
	created, err := svc.CreateTask(context.Background(), services.CreateTaskParams{
		AppID:   app.ID,
		Query:   req.Query,
		Request: req,
		Status:  task.StatusAwaitingApproval,
	})
	require.NoError(t, err)
	// No approvals.Put: simulates a restart that lost the in-memory plan.

	ch, cancelSub := bus.Subscribe(created.ID, "")
	defer cancelSub()

	m.Start(context.Background())
	defer m.Stop()

	var gotQuery string
	_, err = m.Approve(context.Background(), app.ID, created.ID, func(r *models.TaskRequest) ExecFunc {
		gotQuery = r.Query
		return func(ctx context.Context) (*models.TaskResponse, error) {
			return &models.TaskResponse{Outcome: models.OutcomeComplete}, nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, req.Query, gotQuery, "request recovered from the task row")

	collected := collectUntilClosed(t, ch, 10*time.Second)
	assert.Equal(t, models.EventComplete, collected[len(collected)-1].Type)
}

func TestManagerConcurrentSubmissionsAllComplete(t *testing.T) {
	m, svc, bus, client := newTestManager(t)
	app := seedApp(t, client)

	m.Start(context.Background())
	defer m.Stop()

	const n = 8
	channels := make([]<-chan models.TaskEvent, 0, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		created := seedPendingTask(t, svc, app.ID)
		ch, cancelSub := bus.Subscribe(created.ID, "")
		defer cancelSub()
		channels = append(channels, ch)
		ids = append(ids, created.ID)

		require.NoError(t, m.Submit(created.ID, func(ctx context.Context) (*models.TaskResponse, error) {
			time.Sleep(10 * time.Millisecond)
			return &models.TaskResponse{Outcome: models.OutcomeComplete, Summary: "ok"}, nil
		}))
	}

	for i, ch := range channels {
		collected := collectUntilClosed(t, ch, 20*time.Second)
		require.NotEmpty(t, collected, "task %s produced no events", ids[i])
		assert.Equal(t, models.EventComplete, collected[len(collected)-1].Type)
	}

	stats, err := m.Stats(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, n, stats.ByStatus[string(task.StatusComplete)])
	assert.Equal(t, 0, stats.Active)
}
