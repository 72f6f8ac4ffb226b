package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestIterationService_RecordCheckpoint(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIterationService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("stores a checkpoint", func(t *testing.T) {
		tsk := createTestTask(t, tasks, app.ID)

		cp, err := service.RecordCheckpoint(ctx, tsk.ID, 1, "iteration",
			map[string]any{"search_queries": []string{"go scheduler internals"}},
			map[string]any{"new_findings": 3, "confidence": 0.42},
			1250,
		)
		require.NoError(t, err)
		assert.Equal(t, tsk.ID, cp.TaskID)
		assert.Equal(t, 1, cp.IterationNum)
		assert.Equal(t, "iteration", cp.Phase)
		assert.Equal(t, 1250, cp.DurationMs)
	})

	t.Run("rejects a reused iteration number", func(t *testing.T) {
		tsk := createTestTask(t, tasks, app.ID)

		_, err := service.RecordCheckpoint(ctx, tsk.ID, 1, "iteration", nil, nil, 10)
		require.NoError(t, err)
		_, err = service.RecordCheckpoint(ctx, tsk.ID, 1, "iteration", nil, nil, 20)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.RecordCheckpoint(ctx, "", 1, "iteration", nil, nil, 0)
		assert.True(t, IsValidationError(err))
		_, err = service.RecordCheckpoint(ctx, "task", -1, "iteration", nil, nil, 0)
		assert.True(t, IsValidationError(err))
		_, err = service.RecordCheckpoint(ctx, "task", 1, "", nil, nil, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestIterationService_ListCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIterationService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("returns checkpoints in iteration order", func(t *testing.T) {
		tsk := createTestTask(t, tasks, app.ID)
		for _, n := range []int{3, 1, 2} {
			_, err := service.RecordCheckpoint(ctx, tsk.ID, n, "iteration", nil,
				map[string]any{"confidence": float64(n) / 10}, int64(n*100))
			require.NoError(t, err)
		}

		checkpoints, err := service.ListCheckpoints(ctx, app.ID, tsk.ID)
		require.NoError(t, err)
		require.Len(t, checkpoints, 3)
		assert.Equal(t, 1, checkpoints[0].IterationNum)
		assert.Equal(t, 2, checkpoints[1].IterationNum)
		assert.Equal(t, 3, checkpoints[2].IterationNum)
		assert.Equal(t, int64(200), checkpoints[1].DurationMS)
	})

	t.Run("foreign app sees nothing", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		tsk := createTestTask(t, tasks, app.ID)

		_, err := service.ListCheckpoints(ctx, other.ID, tsk.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		_, err := service.ListCheckpoints(ctx, app.ID, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
