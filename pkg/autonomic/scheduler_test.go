package autonomic

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestDueThisMinute(t *testing.T) {
	tests := []struct {
		name string
		cron string
		tz   string
		at   time.Time
		want bool
	}{
		{
			name: "daily schedule matches its minute",
			cron: "0 7 * * *",
			at:   time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "seconds within the minute still match",
			cron: "0 7 * * *",
			at:   time.Date(2026, 3, 9, 7, 0, 42, 0, time.UTC),
			want: true,
		},
		{
			name: "one minute late misses",
			cron: "0 7 * * *",
			at:   time.Date(2026, 3, 9, 7, 1, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "interval schedule on the mark",
			cron: "*/15 * * * *",
			at:   time.Date(2026, 3, 9, 7, 30, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "interval schedule between marks",
			cron: "*/15 * * * *",
			at:   time.Date(2026, 3, 9, 7, 20, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "every minute always fires",
			cron: "* * * * *",
			at:   time.Date(2026, 3, 9, 23, 59, 30, 0, time.UTC),
			want: true,
		},
		{
			name: "weekday filter matches Monday",
			cron: "0 9 * * 1-5",
			at:   time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "weekday filter skips Sunday",
			cron: "0 9 * * 1-5",
			at:   time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "timezone shifts the match",
			cron: "0 9 * * *",
			tz:   "America/New_York",
			at:   time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC), // 09:00 EDT
			want: true,
		},
		{
			name: "utc nine is not new york nine",
			cron: "0 9 * * *",
			tz:   "America/New_York",
			at:   time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), // 05:00 EDT
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hb := &models.Heartbeat{CronExpression: tt.cron, Timezone: tt.tz}
			got, err := dueThisMinute(hb, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects malformed cron", func(t *testing.T) {
		hb := &models.Heartbeat{CronExpression: "every morning"}
		_, err := dueThisMinute(hb, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects six field cron", func(t *testing.T) {
		hb := &models.Heartbeat{CronExpression: "0 0 7 * * *"}
		_, err := dueThisMinute(hb, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		hb := &models.Heartbeat{CronExpression: "0 7 * * *", Timezone: "Mars/Olympus"}
		_, err := dueThisMinute(hb, time.Now())
		assert.Error(t, err)
	})
}

func TestExpandTemplate(t *testing.T) {
	s := NewScheduler(SchedulerDeps{}, time.Minute)
	now := time.Date(2026, 3, 9, 7, 30, 0, 0, time.UTC) // a Monday

	t.Run("substitutes every placeholder", func(t *testing.T) {
		hb := &models.Heartbeat{
			AppID:         "app-1",
			UserID:        "user-7",
			Name:          "morning briefing",
			Timezone:      "UTC",
			QueryTemplate: "Good {weekday} {user_name}: plan {date}, compiled {time} by {heartbeat_name}",
		}
		got := s.expandTemplate(context.Background(), hb, now)
		assert.Equal(t, "Good Monday user-7: plan 2026-03-09, compiled 07:30 by morning briefing", got)
	})

	t.Run("datetime renders RFC 3339", func(t *testing.T) {
		hb := &models.Heartbeat{Timezone: "UTC", QueryTemplate: "as of {datetime}"}
		got := s.expandTemplate(context.Background(), hb, now)
		assert.Equal(t, "as of 2026-03-09T07:30:00Z", got)
	})

	t.Run("unknown placeholders pass through", func(t *testing.T) {
		hb := &models.Heartbeat{Timezone: "UTC", QueryTemplate: "check {server_name} status"}
		got := s.expandTemplate(context.Background(), hb, now)
		assert.Equal(t, "check {server_name} status", got)
	})

	t.Run("missing user id expands to empty", func(t *testing.T) {
		hb := &models.Heartbeat{Timezone: "UTC", QueryTemplate: "hi {user_name}"}
		got := s.expandTemplate(context.Background(), hb, now)
		assert.Equal(t, "hi ", got)
	})

	t.Run("dates render in the heartbeat timezone", func(t *testing.T) {
		hb := &models.Heartbeat{
			Timezone:      "Asia/Tokyo",
			QueryTemplate: "{weekday} {date} {time}",
		}
		// 23:30 UTC is already the next morning in Tokyo.
		late := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)
		got := s.expandTemplate(context.Background(), hb, late)
		assert.Equal(t, "Tuesday 2026-03-10 08:30", got)
	})
}

func TestContextFromTemplate(t *testing.T) {
	t.Run("empty template means no context", func(t *testing.T) {
		got, err := contextFromTemplate(nil)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = contextFromTemplate(map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("carries the stored fields", func(t *testing.T) {
		got, err := contextFromTemplate(map[string]any{
			"conversation_summary": "budget thread",
			"goal":                 "track spend",
			"location":             "home office",
			"max_depth":            2,
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "budget thread", got.ConversationSummary)
		assert.Equal(t, "track spend", got.Goal)
		assert.Equal(t, "home office", got.Location)
		assert.Equal(t, 2, got.MaxDepth)
	})

	t.Run("rejects a template with the wrong shape", func(t *testing.T) {
		_, err := contextFromTemplate(map[string]any{"attachments": "not-a-list"})
		assert.Error(t, err)
	})
}

func TestMaterializeBuildsUnattendedRequest(t *testing.T) {
	s := NewScheduler(SchedulerDeps{}, time.Minute)
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	hb := &models.Heartbeat{
		ID:              "hb-1",
		AppID:           "app-1",
		UserID:          "user-7",
		Name:            "weekly digest",
		Timezone:        "UTC",
		QueryTemplate:   "digest for {date}",
		ContextTemplate: map[string]any{"goal": "stay current"},
	}

	req, err := s.materialize(context.Background(), hb, now)
	require.NoError(t, err)

	_, err = uuid.Parse(req.ID)
	assert.NoError(t, err, "task id is a generated uuid")
	assert.Equal(t, "digest for 2026-03-09", req.Query)

	require.NotNil(t, req.Context)
	assert.Equal(t, "app-1", req.Context.AppID)
	assert.Equal(t, "user-7", req.Context.UserID)
	assert.Equal(t, "stay current", req.Context.Goal)

	require.NotNil(t, req.Preferences)
	assert.Equal(t, 1, req.Preferences.TrustLevel, "heartbeats run unattended, without approval gates")

	t.Run("broken context template fails the firing", func(t *testing.T) {
		bad := &models.Heartbeat{
			AppID:           "app-1",
			Name:            "broken",
			QueryTemplate:   "q",
			ContextTemplate: map[string]any{"attachments": 42},
		}
		_, err := s.materialize(context.Background(), bad, now)
		assert.Error(t, err)
	})
}
