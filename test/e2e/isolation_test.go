package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/api"
	"github.com/loop-symphony/symphony/pkg/models"
)

// TestAppIsolation registers two apps against one server and checks the
// boundary between them: tasks are invisible across app keys, in direct
// lookups, mutations, and listings alike.
func TestAppIsolation(t *testing.T) {
	alpha := StartApp(t)
	beta := alpha.Sibling()

	ack := alpha.Submit(models.TaskRequest{
		Query:       "What is the current on-call rotation?",
		Preferences: autonomous(),
	})
	alpha.WaitForResponse(ack.TaskID)

	wantDetail := fmt.Sprintf("Task %s not found", ack.TaskID)

	t.Run("lookup across apps is a 404", func(t *testing.T) {
		code, raw := beta.do(http.MethodGet, "/task/"+ack.TaskID, nil)
		require.Equal(t, http.StatusNotFound, code, "body: %s", raw)
		var body struct {
			Detail string `json:"detail"`
		}
		beta.decode(raw, &body)
		assert.Equal(t, wantDetail, body.Detail)
	})

	t.Run("mutations across apps are 404s", func(t *testing.T) {
		code, raw := beta.do(http.MethodPost, "/task/"+ack.TaskID+"/cancel", nil)
		assert.Equal(t, http.StatusNotFound, code, "body: %s", raw)

		code, raw = beta.do(http.MethodPost, "/task/"+ack.TaskID+"/approve", nil)
		assert.Equal(t, http.StatusNotFound, code, "body: %s", raw)
	})

	t.Run("listings stay scoped to the calling app", func(t *testing.T) {
		code, raw := beta.do(http.MethodGet, "/tasks/recent", nil)
		require.Equal(t, http.StatusOK, code, "body: %s", raw)
		var betaList api.TaskListResponse
		beta.decode(raw, &betaList)
		assert.Zero(t, betaList.Count)
		assert.Empty(t, betaList.Tasks)

		code, raw = alpha.do(http.MethodGet, "/tasks/recent", nil)
		require.Equal(t, http.StatusOK, code, "body: %s", raw)
		var alphaList api.TaskListResponse
		alpha.decode(raw, &alphaList)
		require.GreaterOrEqual(t, alphaList.Count, 1)
		found := false
		for _, row := range alphaList.Tasks {
			if row.TaskID == ack.TaskID {
				found = true
				assert.Equal(t, string(models.StatusComplete), row.Status)
			}
		}
		assert.True(t, found, "submitting app should see its own task")
	})
}
