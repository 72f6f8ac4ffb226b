package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/api"
	"github.com/loop-symphony/symphony/pkg/models"
)

// TestCancelRunningTask parks a task inside a reasoner call that only
// returns when its context ends, then cancels it mid-flight. The worker
// must classify the abort as a cancellation, not a failure.
func TestCancelRunningTask(t *testing.T) {
	app := StartApp(t, WithReasonerReplies(
		completionRule{marker: "stall-probe", hang: true},
	))

	ack := app.Submit(models.TaskRequest{
		Query:       "stall-probe: wait for the signal",
		Preferences: autonomous(),
	})
	app.WaitForStatus(ack.TaskID, string(models.StatusRunning))

	code, raw := app.do(http.MethodPost, "/task/"+ack.TaskID+"/cancel", nil)
	require.Equal(t, http.StatusOK, code, "body: %s", raw)
	var cancel api.CancelTaskResponse
	app.decode(raw, &cancel)
	assert.Equal(t, "cancelling", cancel.Status)

	types := eventTypes(app.StreamEvents(ack.TaskID, 5*time.Second))
	require.NotEmpty(t, types)
	assert.Equal(t, string(models.EventStarted), types[0])
	assert.Equal(t, string(models.EventCancelled), types[len(types)-1])

	app.WaitForStatus(ack.TaskID, string(models.StatusCancelled))
}
