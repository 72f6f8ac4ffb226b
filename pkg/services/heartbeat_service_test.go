package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func createTestHeartbeat(t *testing.T, service *HeartbeatService, appID string) *ent.Heartbeat {
	t.Helper()
	hb, err := service.CreateHeartbeat(context.Background(), appID, "user-1", HeartbeatParams{
		Name:           "morning briefing",
		QueryTemplate:  "what happened overnight, today is {date}",
		CronExpression: "0 7 * * *",
		Timezone:       "Europe/Prague",
	})
	require.NoError(t, err)
	return hb
}

func TestHeartbeatService_CreateHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewHeartbeatService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("creates an active heartbeat", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)
		assert.True(t, hb.IsActive)
		assert.Equal(t, "Europe/Prague", hb.Timezone)
		assert.Equal(t, "0 7 * * *", hb.CronExpression)
		assert.Nil(t, hb.LastRunAt)
	})

	t.Run("timezone defaults to UTC", func(t *testing.T) {
		hb, err := service.CreateHeartbeat(ctx, app.ID, "", HeartbeatParams{
			Name:           "hourly check",
			QueryTemplate:  "any new alerts",
			CronExpression: "0 * * * *",
		})
		require.NoError(t, err)
		assert.Equal(t, "UTC", hb.Timezone)
	})

	t.Run("rejects malformed cron", func(t *testing.T) {
		_, err := service.CreateHeartbeat(ctx, app.ID, "", HeartbeatParams{
			Name:           "broken",
			QueryTemplate:  "q",
			CronExpression: "every five minutes",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects six field cron", func(t *testing.T) {
		_, err := service.CreateHeartbeat(ctx, app.ID, "", HeartbeatParams{
			Name:           "seconds",
			QueryTemplate:  "q",
			CronExpression: "0 0 7 * * *",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		_, err := service.CreateHeartbeat(ctx, app.ID, "", HeartbeatParams{
			Name:           "tz",
			QueryTemplate:  "q",
			CronExpression: "0 7 * * *",
			Timezone:       "Mars/Olympus",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateHeartbeat(ctx, app.ID, "", HeartbeatParams{
			QueryTemplate:  "q",
			CronExpression: "0 7 * * *",
		})
		assert.True(t, IsValidationError(err))
		_, err = service.CreateHeartbeat(ctx, app.ID, "", HeartbeatParams{
			Name:           "n",
			CronExpression: "0 7 * * *",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestHeartbeatService_UpdateHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewHeartbeatService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("applies a partial update", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)

		inactive := false
		updated, err := service.UpdateHeartbeat(ctx, app.ID, hb.ID, HeartbeatParams{
			CronExpression: "30 8 * * 1-5",
			IsActive:       &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "30 8 * * 1-5", updated.CronExpression)
		assert.False(t, updated.IsActive)
		assert.Equal(t, hb.Name, updated.Name)
		assert.Equal(t, hb.QueryTemplate, updated.QueryTemplate)
	})

	t.Run("rejects malformed cron on update", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)
		_, err := service.UpdateHeartbeat(ctx, app.ID, hb.ID, HeartbeatParams{
			CronExpression: "* * *",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("foreign app cannot update", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		hb := createTestHeartbeat(t, service, app.ID)
		_, err := service.UpdateHeartbeat(ctx, other.ID, hb.ID, HeartbeatParams{Name: "stolen"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHeartbeatService_DeleteHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewHeartbeatService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("deletes heartbeat and its runs", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)
		_, err := service.RecordRun(ctx, hb.ID, time.Now())
		require.NoError(t, err)

		require.NoError(t, service.DeleteHeartbeat(ctx, app.ID, hb.ID))

		_, err = service.GetHeartbeat(ctx, app.ID, hb.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		runs, err := client.HeartbeatRun.Query().All(ctx)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("unknown heartbeat is not found", func(t *testing.T) {
		err := service.DeleteHeartbeat(ctx, app.ID, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHeartbeatService_Runs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewHeartbeatService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("suppresses a double fire within the same minute", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)
		minute := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)

		run, err := service.RecordRun(ctx, hb.ID, minute)
		require.NoError(t, err)
		assert.Equal(t, heartbeatrun.StatusPending, run.Status)

		// Same minute, different seconds: still the same run.
		_, err = service.RecordRun(ctx, hb.ID, minute.Add(12*time.Second))
		assert.ErrorIs(t, err, ErrAlreadyExists)

		_, err = service.RecordRun(ctx, hb.ID, minute.Add(time.Minute))
		require.NoError(t, err)
	})

	t.Run("completes a run with its task", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)
		run, err := service.RecordRun(ctx, hb.ID, time.Now())
		require.NoError(t, err)

		require.NoError(t, service.AttachRunTask(ctx, run.ID, "task-123"))
		require.NoError(t, service.CompleteRun(ctx, run.ID, heartbeatrun.StatusComplete, ""))

		runs, err := service.ListRuns(ctx, app.ID, hb.ID, 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, heartbeatrun.StatusComplete, runs[0].Status)
		require.NotNil(t, runs[0].TaskID)
		assert.Equal(t, "task-123", *runs[0].TaskID)
		assert.NotNil(t, runs[0].CompletedAt)
	})

	t.Run("records a failed run", func(t *testing.T) {
		hb := createTestHeartbeat(t, service, app.ID)
		run, err := service.RecordRun(ctx, hb.ID, time.Now())
		require.NoError(t, err)

		require.NoError(t, service.CompleteRun(ctx, run.ID, heartbeatrun.StatusFailed, "webhook unreachable"))

		runs, err := service.ListRuns(ctx, app.ID, hb.ID, 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		require.NotNil(t, runs[0].Error)
		assert.Equal(t, "webhook unreachable", *runs[0].Error)
	})

	t.Run("run cannot complete as pending", func(t *testing.T) {
		err := service.CompleteRun(ctx, "any", heartbeatrun.StatusPending, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestHeartbeatService_ListActiveHeartbeats(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewHeartbeatService(client.Client)
	ctx := context.Background()
	appA := createTestApp(t, client.Client)
	appB := createTestApp(t, client.Client)

	createTestHeartbeat(t, service, appA.ID)
	createTestHeartbeat(t, service, appB.ID)
	paused := createTestHeartbeat(t, service, appB.ID)
	inactive := false
	_, err := service.UpdateHeartbeat(ctx, appB.ID, paused.ID, HeartbeatParams{IsActive: &inactive})
	require.NoError(t, err)

	// The scheduler tick spans apps; only active rows fire.
	active, err := service.ListActiveHeartbeats(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
