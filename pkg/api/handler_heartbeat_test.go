package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/autonomic"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

func createHeartbeat(t *testing.T, env *testEnv, headers map[string]string, body map[string]any) *models.Heartbeat {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/heartbeats", body, headers)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var hb models.Heartbeat
	decodeJSON(t, rec, &hb)
	return &hb
}

func TestHeartbeatCRUD(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("ops")

	t.Run("requires authentication", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/heartbeats", map[string]string{"name": "x"}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creates a heartbeat with defaults", func(t *testing.T) {
		hb := createHeartbeat(t, env, headers, map[string]any{
			"name":            "standup-brief",
			"query_template":  "summarize open work for {user_name} on {date}",
			"cron_expression": "30 8 * * 1-5",
			"timezone":        "America/New_York",
		})

		assert.NotEmpty(t, hb.ID)
		assert.Equal(t, env.app.ID, hb.AppID)
		assert.Equal(t, "ops", hb.UserID)
		assert.Equal(t, "standup-brief", hb.Name)
		assert.Equal(t, "30 8 * * 1-5", hb.CronExpression)
		assert.Equal(t, "America/New_York", hb.Timezone)
		assert.True(t, hb.IsActive)
		assert.Nil(t, hb.LastRunAt)
	})

	t.Run("rejects invalid definitions", func(t *testing.T) {
		valid := map[string]any{
			"name":            "nightly",
			"query_template":  "check the nightly backups",
			"cron_expression": "0 2 * * *",
		}
		tests := []struct {
			name   string
			drop   string
			set    map[string]any
			detail string
		}{
			{"missing name", "name", nil, "name"},
			{"missing query template", "query_template", nil, "query_template"},
			{"missing cron", "cron_expression", nil, "cron_expression"},
			{"unparseable cron", "", map[string]any{"cron_expression": "every tuesday"}, "invalid cron expression"},
			{"six-field cron", "", map[string]any{"cron_expression": "0 0 2 * * *"}, "invalid cron expression"},
			{"unknown timezone", "", map[string]any{"timezone": "Mars/Olympus"}, "unknown timezone"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				body := map[string]any{}
				for k, v := range valid {
					if k != tt.drop {
						body[k] = v
					}
				}
				for k, v := range tt.set {
					body[k] = v
				}

				rec := env.do(t, http.MethodPost, "/heartbeats", body, headers)
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, detailOf(t, rec), tt.detail)
			})
		}
	})

	t.Run("lists and gets by id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/heartbeats", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var list HeartbeatListResponse
		decodeJSON(t, rec, &list)
		require.Equal(t, 1, list.Count)
		assert.Equal(t, "standup-brief", list.Heartbeats[0].Name)

		rec = env.do(t, http.MethodGet, "/heartbeats/"+list.Heartbeats[0].ID, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodGet, "/heartbeats/no-such-heartbeat", nil, headers)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "resource not found", detailOf(t, rec))
	})

	t.Run("updates only the provided fields", func(t *testing.T) {
		hb := createHeartbeat(t, env, headers, map[string]any{
			"name":            "weekly-digest",
			"query_template":  "compile the weekly digest",
			"cron_expression": "0 9 * * 1",
		})

		rec := env.do(t, http.MethodPut, "/heartbeats/"+hb.ID, map[string]any{
			"cron_expression": "0 7 * * 1",
			"is_active":       false,
		}, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated models.Heartbeat
		decodeJSON(t, rec, &updated)
		assert.Equal(t, "0 7 * * 1", updated.CronExpression)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "weekly-digest", updated.Name)
		assert.Equal(t, "compile the weekly digest", updated.QueryTemplate)

		rec = env.do(t, http.MethodPut, "/heartbeats/"+hb.ID, map[string]any{
			"cron_expression": "not a schedule",
		}, headers)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, detailOf(t, rec), "invalid cron expression")
	})

	t.Run("deletes a heartbeat", func(t *testing.T) {
		hb := createHeartbeat(t, env, headers, map[string]any{
			"name":            "doomed",
			"query_template":  "never fires",
			"cron_expression": "0 0 1 1 *",
		})

		rec := env.do(t, http.MethodDelete, "/heartbeats/"+hb.ID, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		decodeJSON(t, rec, &resp)
		assert.True(t, resp["deleted"])

		rec = env.do(t, http.MethodGet, "/heartbeats/"+hb.ID, nil, headers)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = env.do(t, http.MethodDelete, "/heartbeats/"+hb.ID, nil, headers)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHeartbeatRuns(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("ops")

	hb := createHeartbeat(t, env, headers, map[string]any{
		"name":            "quiet",
		"query_template":  "check the queue depth",
		"cron_expression": "0 0 1 1 *",
	})

	t.Run("empty before any firing", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/heartbeats/"+hb.ID+"/runs", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var list HeartbeatRunListResponse
		decodeJSON(t, rec, &list)
		assert.Zero(t, list.Count)
		assert.Empty(t, list.Runs)
	})

	t.Run("validates the limit", func(t *testing.T) {
		for _, limit := range []string{"0", "101", "abc"} {
			rec := env.do(t, http.MethodGet, "/heartbeats/"+hb.ID+"/runs?limit="+limit, nil, headers)
			require.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
			assert.Equal(t, "limit must be between 1 and 100", detailOf(t, rec))
		}
	})

	t.Run("unknown heartbeat", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/heartbeats/nope/runs", nil, headers)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTickHeartbeats(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("ops")

	// Due every minute, so any tick fires it.
	pulse := createHeartbeat(t, env, headers, map[string]any{
		"name":            "pulse",
		"query_template":  "note the {time} status for {heartbeat_name}",
		"cron_expression": "* * * * *",
	})
	// Due half an hour from now, so no tick during the test matches.
	createHeartbeat(t, env, headers, map[string]any{
		"name":            "offpeak",
		"query_template":  "later",
		"cron_expression": fmt.Sprintf("%d * * * *", (time.Now().UTC().Minute()+30)%60),
	})
	// Inactive, so it never even counts.
	createHeartbeat(t, env, headers, map[string]any{
		"name":            "paused",
		"query_template":  "nothing",
		"cron_expression": "* * * * *",
		"is_active":       false,
	})

	t.Run("fires due heartbeats", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/heartbeats/tick", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var summary autonomic.TickSummary
		decodeJSON(t, rec, &summary)
		assert.Equal(t, 2, summary.Active)
		assert.Equal(t, 1, summary.Skipped)
		require.Len(t, summary.Fired, 1)

		fired := summary.Fired[0]
		assert.Equal(t, pulse.ID, fired.HeartbeatID)
		assert.Equal(t, "pulse", fired.HeartbeatName)
		require.NotEmpty(t, fired.TaskID)

		row := env.waitForStatus(t, env.app.ID, fired.TaskID, task.StatusComplete)
		assert.Contains(t, row.Query, "status for pulse", "template placeholders expand")

		rec = env.do(t, http.MethodGet, "/heartbeats/"+pulse.ID+"/runs", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var runs HeartbeatRunListResponse
		decodeJSON(t, rec, &runs)
		require.Equal(t, 1, runs.Count)
		assert.Equal(t, "complete", runs.Runs[0].Status)
		assert.Equal(t, fired.TaskID, runs.Runs[0].TaskID)

		rec = env.do(t, http.MethodGet, "/heartbeats/"+pulse.ID, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var refreshed models.Heartbeat
		decodeJSON(t, rec, &refreshed)
		assert.NotNil(t, refreshed.LastRunAt)
	})

	t.Run("never double-fires within a minute", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/heartbeats/tick", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var summary autonomic.TickSummary
		decodeJSON(t, rec, &summary)
		// Same minute as the first tick dedupes on the run row; a tick
		// that lands in the next minute fires a fresh run instead.
		assert.Equal(t, 1, summary.Duplicates+len(summary.Fired))
	})

	t.Run("returns 503 without a scheduler", func(t *testing.T) {
		bare := NewServer(Deps{
			Apps:      services.NewAppService(env.client),
			Profiles:  services.NewProfileService(env.client),
			Anonymous: env.anonymous,
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/heartbeats/tick", nil)
		req.Header.Set("X-Api-Key", headers["X-Api-Key"])
		req.Header.Set("X-User-Id", "ops")
		bare.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "scheduler not configured", detailOf(t, rec))
	})
}
