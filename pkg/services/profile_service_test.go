package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestProfileService_EnsureProfile(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProfileService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("creates profile on first sight", func(t *testing.T) {
		profile, err := service.EnsureProfile(ctx, app.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, app.ID, profile.AppID)
		assert.Equal(t, "user-1", profile.ExternalUserID)
		assert.Equal(t, 0, profile.TrustLevel)
	})

	t.Run("returns the same profile on repeat", func(t *testing.T) {
		first, err := service.EnsureProfile(ctx, app.ID, "user-2")
		require.NoError(t, err)
		second, err := service.EnsureProfile(ctx, app.ID, "user-2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("profiles are scoped per app", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		a, err := service.EnsureProfile(ctx, app.ID, "shared-id")
		require.NoError(t, err)
		b, err := service.EnsureProfile(ctx, other.ID, "shared-id")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.EnsureProfile(ctx, "", "user")
		assert.True(t, IsValidationError(err))
		_, err = service.EnsureProfile(ctx, app.ID, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestProfileService_RecordTaskTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProfileService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("success extends the streak", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := service.RecordTaskTerminal(ctx, app.ID, "streaker", true)
			require.NoError(t, err)
		}

		metrics, err := service.TrustMetrics(ctx, app.ID, "streaker")
		require.NoError(t, err)
		assert.Equal(t, 3, metrics.TotalTasks)
		assert.Equal(t, 3, metrics.SuccessfulTasks)
		assert.Equal(t, 0, metrics.FailedTasks)
		assert.Equal(t, 3, metrics.ConsecutiveSuccess)
		assert.NotNil(t, metrics.LastTaskAt)
	})

	t.Run("failure resets the streak but keeps totals", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := service.RecordTaskTerminal(ctx, app.ID, "faller", true)
			require.NoError(t, err)
		}
		metrics, err := service.RecordTaskTerminal(ctx, app.ID, "faller", false)
		require.NoError(t, err)

		assert.Equal(t, 3, metrics.TotalTasks)
		assert.Equal(t, 2, metrics.SuccessfulTasks)
		assert.Equal(t, 1, metrics.FailedTasks)
		assert.Equal(t, 0, metrics.ConsecutiveSuccess)
	})

	t.Run("streak rebuilds after a failure", func(t *testing.T) {
		_, err := service.RecordTaskTerminal(ctx, app.ID, "rebuilder", false)
		require.NoError(t, err)
		metrics, err := service.RecordTaskTerminal(ctx, app.ID, "rebuilder", true)
		require.NoError(t, err)
		assert.Equal(t, 1, metrics.ConsecutiveSuccess)
	})

	t.Run("fresh user starts at zero", func(t *testing.T) {
		metrics, err := service.TrustMetrics(ctx, app.ID, "newcomer")
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.TotalTasks)
		assert.Equal(t, models.TrustSupervised, metrics.Level)
		assert.Nil(t, metrics.LastTaskAt)
	})
}

func TestProfileService_SetTrustLevel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProfileService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("sets and persists the level", func(t *testing.T) {
		metrics, err := service.SetTrustLevel(ctx, app.ID, "trusted", models.TrustAutonomous)
		require.NoError(t, err)
		assert.Equal(t, models.TrustAutonomous, metrics.Level)

		got, err := service.TrustMetrics(ctx, app.ID, "trusted")
		require.NoError(t, err)
		assert.Equal(t, models.TrustAutonomous, got.Level)
	})

	t.Run("terminal bookkeeping never changes the level", func(t *testing.T) {
		_, err := service.SetTrustLevel(ctx, app.ID, "stable", models.TrustMinimal)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			_, err := service.RecordTaskTerminal(ctx, app.ID, "stable", true)
			require.NoError(t, err)
		}
		metrics, err := service.TrustMetrics(ctx, app.ID, "stable")
		require.NoError(t, err)
		assert.Equal(t, models.TrustMinimal, metrics.Level)
	})

	t.Run("rejects out of range levels", func(t *testing.T) {
		_, err := service.SetTrustLevel(ctx, app.ID, "user", -1)
		assert.True(t, IsValidationError(err))
		_, err = service.SetTrustLevel(ctx, app.ID, "user", 3)
		assert.True(t, IsValidationError(err))
	})
}
