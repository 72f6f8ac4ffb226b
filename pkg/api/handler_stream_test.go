package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

// seedStreamTask creates an anonymous task row and publishes a scripted
// event history for it, ending with a terminal event so the stream
// endpoint closes itself.
func seedStreamTask(t *testing.T, env *testEnv) *ent.Task {
	t.Helper()
	row, err := env.tasks.CreateTask(context.Background(), services.CreateTaskParams{
		AppID: services.AnonymousAppID,
		Query: "trace the slow request",
	})
	require.NoError(t, err)

	env.bus.Publish(models.TaskEvent{ID: "e1", TaskID: row.ID, Type: models.EventStarted})
	env.bus.Publish(models.TaskEvent{ID: "e2", TaskID: row.ID, Type: models.EventIteration, Iteration: 1, Phase: "observe"})
	env.bus.Publish(models.TaskEvent{ID: "e3", TaskID: row.ID, Type: models.EventComplete, Payload: map[string]any{"outcome": "complete"}})
	return row
}

func TestStreamTask(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown task", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/task/ghost/stream", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task ghost not found", detailOf(t, rec))
	})

	t.Run("replays history and closes after the terminal event", func(t *testing.T) {
		row := seedStreamTask(t, env)

		rec := env.do(t, http.MethodGet, "/task/"+row.ID+"/stream", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

		body := rec.Body.String()
		assert.Contains(t, body, "event:started")
		assert.Contains(t, body, "event:iteration")
		assert.Contains(t, body, "event:complete")
		assert.Contains(t, body, "id:e3")
		assert.Contains(t, body, row.ID)
	})

	t.Run("since query resumes after the given event", func(t *testing.T) {
		row := seedStreamTask(t, env)

		rec := env.do(t, http.MethodGet, "/task/"+row.ID+"/stream?since=e1", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.NotContains(t, body, "event:started")
		assert.Contains(t, body, "event:iteration")
		assert.Contains(t, body, "event:complete")
	})

	t.Run("Last-Event-ID header resumes after the given event", func(t *testing.T) {
		row := seedStreamTask(t, env)

		rec := env.do(t, http.MethodGet, "/task/"+row.ID+"/stream", nil, map[string]string{"Last-Event-ID": "e2"})
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.NotContains(t, body, "event:started")
		assert.NotContains(t, body, "event:iteration")
		assert.Contains(t, body, "event:complete")
	})

	t.Run("cross-app isolation", func(t *testing.T) {
		row := seedStreamTask(t, env)

		rec := env.do(t, http.MethodGet, "/task/"+row.ID+"/stream", nil, env.authed())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("live run streams through to the terminal event", func(t *testing.T) {
		sub := env.do(t, http.MethodPost, "/task", models.TaskRequest{
			Query:       "watch the deploy land",
			Preferences: autonomous(),
		}, nil)
		require.Equal(t, http.StatusOK, sub.Code)
		var submitted TaskSubmitResponse
		decodeJSON(t, sub, &submitted)

		// The handler only returns once the task's terminal event has
		// been written, so the whole lifecycle is in the body.
		rec := env.do(t, http.MethodGet, "/task/"+submitted.TaskID+"/stream", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "event:started")
		assert.Contains(t, body, "event:complete")
		assert.Contains(t, body, `"outcome":"complete"`)
	})
}
