package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/pkg/services"
)

func TestNotificationPreferences(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("nightowl")

	t.Run("requires authentication", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/notifications/preferences", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unset preferences read as the defaults", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/notifications/preferences", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var view NotificationPreferenceView
		decodeJSON(t, rec, &view)
		assert.True(t, view.Enabled)
		assert.Nil(t, view.QuietHoursStart)
		assert.Nil(t, view.QuietHoursEnd)
		assert.Empty(t, view.Outcomes)
		assert.Nil(t, view.UpdatedAt)
	})

	t.Run("stores delivery rules", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/notifications/preferences", map[string]any{
			"enabled":           true,
			"quiet_hours_start": 22,
			"quiet_hours_end":   7,
			"outcomes":          []string{"complete", "failed"},
		}, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var view NotificationPreferenceView
		decodeJSON(t, rec, &view)
		assert.True(t, view.Enabled)
		require.NotNil(t, view.QuietHoursStart)
		assert.Equal(t, 22, *view.QuietHoursStart)
		require.NotNil(t, view.QuietHoursEnd)
		assert.Equal(t, 7, *view.QuietHoursEnd)
		assert.Equal(t, []string{"complete", "failed"}, view.Outcomes)
		assert.NotNil(t, view.UpdatedAt)
	})

	t.Run("partial update keeps the stored values", func(t *testing.T) {
		enabled := false
		rec := env.do(t, http.MethodPut, "/notifications/preferences", map[string]any{
			"enabled": enabled,
		}, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var view NotificationPreferenceView
		decodeJSON(t, rec, &view)
		assert.False(t, view.Enabled)
		require.NotNil(t, view.QuietHoursStart)
		assert.Equal(t, 22, *view.QuietHoursStart)
	})

	t.Run("rejects out-of-range quiet hours", func(t *testing.T) {
		for _, body := range []map[string]any{
			{"quiet_hours_start": 24},
			{"quiet_hours_end": -1},
		} {
			rec := env.do(t, http.MethodPut, "/notifications/preferences", body, headers)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, detailOf(t, rec), "hours must be 0-23")
		}
	})
}

func TestNotificationChannels(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("nightowl")

	t.Run("registers a channel", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/notifications/channels", map[string]string{
			"kind":   "webhook",
			"target": "https://hooks.example.com/songbook",
		}, headers)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var view NotificationChannelView
		decodeJSON(t, rec, &view)
		assert.NotEmpty(t, view.ChannelID)
		assert.Equal(t, "webhook", view.Kind)
		assert.Equal(t, "https://hooks.example.com/songbook", view.Target)
		assert.True(t, view.IsActive)
	})

	t.Run("rejects bad registrations", func(t *testing.T) {
		tests := []struct {
			name   string
			body   map[string]string
			detail string
		}{
			{"unknown kind", map[string]string{"kind": "carrier-pigeon", "target": "coop"}, "kind must be telegram, slack, or webhook"},
			{"missing kind", map[string]string{"target": "coop"}, "kind must be telegram, slack, or webhook"},
			{"missing target", map[string]string{"kind": "slack"}, "target"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := env.do(t, http.MethodPost, "/notifications/channels", tt.body, headers)
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, detailOf(t, rec), tt.detail)
			})
		}
	})

	t.Run("deactivation hides the channel from the list", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/notifications/channels", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var list NotificationChannelListResponse
		decodeJSON(t, rec, &list)
		require.Equal(t, 1, list.Count)

		id := list.Channels[0].ChannelID
		rec = env.do(t, http.MethodDelete, "/notifications/channels/"+id, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		decodeJSON(t, rec, &resp)
		assert.True(t, resp["deactivated"])

		rec = env.do(t, http.MethodGet, "/notifications/channels", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeJSON(t, rec, &list)
		assert.Zero(t, list.Count)

		rec = env.do(t, http.MethodDelete, "/notifications/channels/"+id, nil, headers)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNotificationHistory(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("nightowl")

	t.Run("empty before any delivery", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/notifications/history", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp NotificationHistoryResponse
		decodeJSON(t, rec, &resp)
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.History)
	})

	t.Run("validates the limit", func(t *testing.T) {
		for _, limit := range []string{"0", "201", "abc"} {
			rec := env.do(t, http.MethodGet, "/notifications/history?limit="+limit, nil, headers)
			require.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
			assert.Equal(t, "limit must be between 1 and 200", detailOf(t, rec))
		}
	})

	t.Run("serves recorded deliveries", func(t *testing.T) {
		taskID := "task-under-test"
		svc := services.NewNotificationService(env.client)
		require.NoError(t, svc.RecordDelivery(context.Background(), env.app.ID, "nightowl",
			&taskID, "webhook", notificationhistory.StatusSent, ""))
		require.NoError(t, svc.RecordDelivery(context.Background(), env.app.ID, "nightowl",
			nil, "slack", notificationhistory.StatusFailed, "channel_not_found"))

		rec := env.do(t, http.MethodGet, "/notifications/history", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp NotificationHistoryResponse
		decodeJSON(t, rec, &resp)
		require.Equal(t, 2, resp.Count)

		byKind := map[string]NotificationHistoryView{}
		for _, h := range resp.History {
			byKind[h.ChannelKind] = h
		}
		assert.Equal(t, "failed", byKind["slack"].Status)
		assert.Equal(t, "channel_not_found", byKind["slack"].Detail)
		assert.Equal(t, "sent", byKind["webhook"].Status)
		assert.Equal(t, taskID, byKind["webhook"].TaskID)

		// Other users see nothing.
		rec = env.do(t, http.MethodGet, "/notifications/history", nil, env.authedAs("other"))
		require.Equal(t, http.StatusOK, rec.Code)
		decodeJSON(t, rec, &resp)
		assert.Zero(t, resp.Count)
	})
}
