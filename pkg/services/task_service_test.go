package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/models"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("defaults to pending", func(t *testing.T) {
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID: app.ID,
			Query: "summarize the incident review",
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Nil(t, created.Outcome)
		assert.Nil(t, created.CompletedAt)
	})

	t.Run("stores the request payload", func(t *testing.T) {
		req := &models.TaskRequest{
			Query: "compare caching strategies",
			Preferences: &models.TaskPreferences{
				Thoroughness: models.ThoroughnessThorough,
				TrustLevel:   1,
			},
		}
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:      app.ID,
			UserID:     "user-1",
			Query:      req.Query,
			Request:    req,
			Instrument: "research",
		})
		require.NoError(t, err)

		decoded, err := RequestFromTask(created)
		require.NoError(t, err)
		require.NotNil(t, decoded)
		assert.Equal(t, req.Query, decoded.Query)
		assert.Equal(t, models.ThoroughnessThorough, decoded.Preferences.Thoroughness)
	})

	t.Run("can start awaiting approval", func(t *testing.T) {
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:  app.ID,
			Query:  "draft the quarterly report",
			Status: task.StatusAwaitingApproval,
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusAwaitingApproval, created.Status)
	})

	t.Run("rejects terminal initial status", func(t *testing.T) {
		_, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:  app.ID,
			Query:  "q",
			Status: task.StatusComplete,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateTask(ctx, CreateTaskParams{Query: "q"})
		assert.True(t, IsValidationError(err))
		_, err = service.CreateTask(ctx, CreateTaskParams{AppID: app.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		params := CreateTaskParams{ID: "fixed-id", AppID: app.ID, Query: "q"}
		_, err := service.CreateTask(ctx, params)
		require.NoError(t, err)
		_, err = service.CreateTask(ctx, params)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestTaskService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("complete is reached exactly once", func(t *testing.T) {
		created := createTestTask(t, service, app.ID)

		resp := &models.TaskResponse{
			RequestID: created.ID,
			Outcome:   models.OutcomeComplete,
			Summary:   "done",
		}
		completed, err := service.CompleteTask(ctx, created.ID, models.OutcomeComplete, resp)
		require.NoError(t, err)
		assert.Equal(t, task.StatusComplete, completed.Status)
		require.NotNil(t, completed.Outcome)
		assert.Equal(t, task.OutcomeComplete, *completed.Outcome)
		assert.NotNil(t, completed.CompletedAt)

		_, err = service.CompleteTask(ctx, created.ID, models.OutcomeComplete, resp)
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
		_, err = service.FailTask(ctx, created.ID, "late failure")
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
		_, err = service.CancelTask(ctx, created.ID)
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})

	t.Run("failed records the error", func(t *testing.T) {
		created := createTestTask(t, service, app.ID)
		failed, err := service.FailTask(ctx, created.ID, "instrument crashed")
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, failed.Status)
		require.NotNil(t, failed.Error)
		assert.Equal(t, "instrument crashed", *failed.Error)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		created := createTestTask(t, service, app.ID)
		cancelled, err := service.CancelTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, cancelled.Status)

		_, err = service.CompleteTask(ctx, created.ID, models.OutcomeComplete, &models.TaskResponse{})
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		_, err := service.FailTask(ctx, "missing", "boom")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_MarkRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("moves pending to running", func(t *testing.T) {
		created := createTestTask(t, service, app.ID)
		running, err := service.MarkRunning(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, running.Status)
	})

	t.Run("refuses a task awaiting approval", func(t *testing.T) {
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:  app.ID,
			Query:  "q",
			Status: task.StatusAwaitingApproval,
		})
		require.NoError(t, err)

		_, err = service.MarkRunning(ctx, created.ID)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("refuses a finished task", func(t *testing.T) {
		created := createTestTask(t, service, app.ID)
		_, err := service.CancelTask(ctx, created.ID)
		require.NoError(t, err)

		_, err = service.MarkRunning(ctx, created.ID)
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})
}

func TestTaskService_ApproveTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("moves awaiting approval to pending", func(t *testing.T) {
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:  app.ID,
			Query:  "q",
			Status: task.StatusAwaitingApproval,
		})
		require.NoError(t, err)

		approved, wasApproved, err := service.ApproveTask(ctx, app.ID, created.ID)
		require.NoError(t, err)
		assert.True(t, wasApproved)
		assert.Equal(t, task.StatusPending, approved.Status)
	})

	t.Run("double approve is a no-op", func(t *testing.T) {
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:  app.ID,
			Query:  "q",
			Status: task.StatusAwaitingApproval,
		})
		require.NoError(t, err)

		_, _, err = service.ApproveTask(ctx, app.ID, created.ID)
		require.NoError(t, err)
		got, wasApproved, err := service.ApproveTask(ctx, app.ID, created.ID)
		require.NoError(t, err)
		assert.False(t, wasApproved)
		assert.Equal(t, task.StatusPending, got.Status)
	})

	t.Run("foreign app cannot approve", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		created, err := service.CreateTask(ctx, CreateTaskParams{
			AppID:  app.ID,
			Query:  "q",
			Status: task.StatusAwaitingApproval,
		})
		require.NoError(t, err)

		_, _, err = service.ApproveTask(ctx, other.ID, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_Listings(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)
	other := createTestApp(t, client.Client)

	seed := func(appID string, status task.Status) {
		created, err := service.CreateTask(ctx, CreateTaskParams{AppID: appID, Query: "q"})
		require.NoError(t, err)
		switch status {
		case task.StatusRunning:
			_, err = service.MarkRunning(ctx, created.ID)
		case task.StatusComplete:
			_, err = service.CompleteTask(ctx, created.ID, models.OutcomeComplete, &models.TaskResponse{})
		case task.StatusFailed:
			_, err = service.FailTask(ctx, created.ID, "boom")
		}
		require.NoError(t, err)
	}

	seed(app.ID, task.StatusPending)
	seed(app.ID, task.StatusRunning)
	seed(app.ID, task.StatusComplete)
	seed(app.ID, task.StatusFailed)
	seed(other.ID, task.StatusRunning)

	t.Run("active excludes finished tasks", func(t *testing.T) {
		active, err := service.ListActive(ctx, app.ID)
		require.NoError(t, err)
		assert.Len(t, active, 2)
		for _, tsk := range active {
			assert.Contains(t, []task.Status{task.StatusPending, task.StatusRunning}, tsk.Status)
		}
	})

	t.Run("recent honors the limit", func(t *testing.T) {
		recent, err := service.ListRecent(ctx, app.ID, 3)
		require.NoError(t, err)
		assert.Len(t, recent, 3)
	})

	t.Run("listings never cross apps", func(t *testing.T) {
		recent, err := service.ListRecent(ctx, other.ID, 50)
		require.NoError(t, err)
		assert.Len(t, recent, 1)
	})

	t.Run("stats count statuses and outcomes", func(t *testing.T) {
		stats, err := service.Stats(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 2, stats.Active)
		assert.Equal(t, 1, stats.ByStatus[string(task.StatusComplete)])
		assert.Equal(t, 1, stats.ByStatus[string(task.StatusFailed)])
		assert.Equal(t, 1, stats.ByOutcome[string(models.OutcomeComplete)])
	})
}

func TestTaskService_SweepInterrupted(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	running := createTestTask(t, service, app.ID)
	_, err := service.MarkRunning(ctx, running.ID)
	require.NoError(t, err)
	waiting, err := service.CreateTask(ctx, CreateTaskParams{
		AppID:  app.ID,
		Query:  "q",
		Status: task.StatusAwaitingApproval,
	})
	require.NoError(t, err)

	n, err := service.SweepInterrupted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	swept, err := service.GetTask(ctx, app.ID, running.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, swept.Status)
	require.NotNil(t, swept.Error)
	assert.Equal(t, "interrupted by restart", *swept.Error)

	untouched, err := service.GetTask(ctx, app.ID, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusAwaitingApproval, untouched.Status)
}
