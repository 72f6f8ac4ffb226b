package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/api"
	"github.com/loop-symphony/symphony/pkg/models"
)

// TestSupervisedApprovalGate holds a trust-0 submission until approval:
// nothing executes while the task waits, approval releases it to the
// worker pool, and approving again after completion is a no-op.
func TestSupervisedApprovalGate(t *testing.T) {
	app := StartApp(t)

	ack := app.Submit(models.TaskRequest{
		Query:       "Summarize the meeting notes",
		Preferences: &models.TaskPreferences{TrustLevel: models.TrustSupervised},
	})
	require.Equal(t, string(models.StatusAwaitingApproval), ack.Status)
	require.NotNil(t, ack.Plan)
	assert.Equal(t, "note", ack.Plan.Instrument)
	assert.True(t, ack.Plan.RequiresApproval)

	// Held tasks never reach the instruments.
	app.WaitForStatus(ack.TaskID, string(models.StatusAwaitingApproval))
	assert.Zero(t, app.Reasoner.promptCount())

	code, raw := app.do(http.MethodPost, "/task/"+ack.TaskID+"/approve", nil)
	require.Equal(t, http.StatusOK, code, "body: %s", raw)
	var approved api.TaskSubmitResponse
	app.decode(raw, &approved)
	assert.Equal(t, string(models.StatusPending), approved.Status)
	assert.Equal(t, "Task approved for execution", approved.Message)

	resp := app.WaitForResponse(ack.TaskID)
	assert.Equal(t, models.OutcomeComplete, resp.Outcome)
	assert.Equal(t, "note", resp.Metadata.InstrumentUsed)
	assert.Equal(t, "A direct and confident answer.", resp.Summary)
	assert.InDelta(t, 0.9, resp.Confidence, 1e-9)
	assert.Positive(t, app.Reasoner.promptCount())

	// Approving a finished task reports where it already landed.
	code, raw = app.do(http.MethodPost, "/task/"+ack.TaskID+"/approve", nil)
	require.Equal(t, http.StatusOK, code, "body: %s", raw)
	app.decode(raw, &approved)
	assert.Equal(t, string(models.StatusComplete), approved.Status)
	assert.Equal(t, "Task is complete", approved.Message)
}
