package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestNotificationService_Preferences(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("unset preferences read as nil", func(t *testing.T) {
		pref, err := service.GetPreferences(ctx, app.ID, "user-1")
		require.NoError(t, err)
		assert.Nil(t, pref)
	})

	t.Run("upsert creates then updates", func(t *testing.T) {
		start, end := 22, 7
		created, err := service.UpsertPreferences(ctx, app.ID, "user-2", PreferenceParams{
			QuietHoursStart: &start,
			QuietHoursEnd:   &end,
			Outcomes:        []string{"complete", "saturated"},
		})
		require.NoError(t, err)
		assert.True(t, created.Enabled)
		require.NotNil(t, created.QuietHoursStart)
		assert.Equal(t, 22, *created.QuietHoursStart)

		disabled := false
		updated, err := service.UpsertPreferences(ctx, app.ID, "user-2", PreferenceParams{
			Enabled: &disabled,
		})
		require.NoError(t, err)
		assert.False(t, updated.Enabled)
		require.NotNil(t, updated.QuietHoursStart)
		assert.Equal(t, 22, *updated.QuietHoursStart)
		assert.Equal(t, []string{"complete", "saturated"}, updated.Outcomes)
	})

	t.Run("rejects hours outside the clock", func(t *testing.T) {
		bad := 24
		_, err := service.UpsertPreferences(ctx, app.ID, "user-3", PreferenceParams{
			QuietHoursStart: &bad,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates identifiers", func(t *testing.T) {
		_, err := service.UpsertPreferences(ctx, "", "user", PreferenceParams{})
		assert.True(t, IsValidationError(err))
		_, err = service.UpsertPreferences(ctx, app.ID, "", PreferenceParams{})
		assert.True(t, IsValidationError(err))
	})
}

func TestNotificationService_Channels(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("registers and lists channels", func(t *testing.T) {
		_, err := service.CreateChannel(ctx, app.ID, "user-1", notificationchannel.KindTelegram, "12345678")
		require.NoError(t, err)
		_, err = service.CreateChannel(ctx, app.ID, "user-1", notificationchannel.KindWebhook, "https://example.com/hook")
		require.NoError(t, err)

		channels, err := service.ListActiveChannels(ctx, app.ID, "user-1")
		require.NoError(t, err)
		assert.Len(t, channels, 2)
	})

	t.Run("deactivated channels drop out of the list", func(t *testing.T) {
		channel, err := service.CreateChannel(ctx, app.ID, "user-2", notificationchannel.KindSlack, "#alerts")
		require.NoError(t, err)

		require.NoError(t, service.DeactivateChannel(ctx, app.ID, channel.ID))
		channels, err := service.ListActiveChannels(ctx, app.ID, "user-2")
		require.NoError(t, err)
		assert.Empty(t, channels)
	})

	t.Run("foreign app cannot deactivate", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		channel, err := service.CreateChannel(ctx, app.ID, "user-3", notificationchannel.KindTelegram, "87654321")
		require.NoError(t, err)

		err = service.DeactivateChannel(ctx, other.ID, channel.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates the target", func(t *testing.T) {
		_, err := service.CreateChannel(ctx, app.ID, "user-4", notificationchannel.KindTelegram, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestNotificationService_History(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewNotificationService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	taskID := "task-1"
	require.NoError(t, service.RecordDelivery(ctx, app.ID, "user-1", &taskID, "telegram", notificationhistory.StatusSent, ""))
	require.NoError(t, service.RecordDelivery(ctx, app.ID, "user-1", &taskID, "slack", notificationhistory.StatusFailed, "channel_not_found"))
	require.NoError(t, service.RecordDelivery(ctx, app.ID, "user-1", nil, "telegram", notificationhistory.StatusSuppressed, "quiet hours"))
	require.NoError(t, service.RecordDelivery(ctx, app.ID, "user-2", nil, "telegram", notificationhistory.StatusSent, ""))

	t.Run("history is per user", func(t *testing.T) {
		rows, err := service.ListHistory(ctx, app.ID, "user-1", 50)
		require.NoError(t, err)
		assert.Len(t, rows, 3)

		rows, err = service.ListHistory(ctx, app.ID, "user-2", 50)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("suppressions carry their cause", func(t *testing.T) {
		rows, err := service.ListHistory(ctx, app.ID, "user-1", 50)
		require.NoError(t, err)

		var foundSuppressed bool
		for _, row := range rows {
			if row.Status == notificationhistory.StatusSuppressed {
				foundSuppressed = true
				require.NotNil(t, row.Detail)
				assert.Equal(t, "quiet hours", *row.Detail)
				assert.Nil(t, row.TaskID)
			}
		}
		assert.True(t, foundSuppressed)
	})
}
