package e2e

import (
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

// TestResearchTaskLifecycle drives a research task end to end: submit
// over HTTP, watch the worker execute the loop against scripted tools,
// poll the stored response, replay the event stream, and list the
// persisted checkpoints.
func TestResearchTaskLifecycle(t *testing.T) {
	app := StartApp(t)

	ack := app.Submit(models.TaskRequest{
		Query:       "When did the release ship and what changed?",
		Intent:      &models.Intent{Type: models.IntentResearch},
		Preferences: autonomous(),
	})
	require.NotEmpty(t, ack.TaskID)
	require.Equal(t, string(models.StatusPending), ack.Status)

	resp := app.WaitForResponse(ack.TaskID)
	assert.Equal(t, ack.TaskID, resp.RequestID)
	assert.Equal(t, models.OutcomeComplete, resp.Outcome)
	assert.Equal(t, "The release shipped in August with three headline changes.", resp.Summary)
	assert.Equal(t, "research", resp.Metadata.InstrumentUsed)
	assert.Equal(t, 1, resp.Metadata.Iterations)
	assert.GreaterOrEqual(t, resp.Confidence, 0.8)

	// Six URLs plus the direct answer, one finding each.
	assert.Len(t, resp.Findings, 7)
	assert.Len(t, resp.Metadata.SourcesConsulted, 6)
	assert.True(t, sort.StringsAreSorted(resp.Metadata.SourcesConsulted))

	assert.Equal(t, []string{
		"What changed in the defaults?",
		"Who owns the migration?",
	}, resp.SuggestedFollowups)

	// The bus replays history, so a late subscriber still sees the full
	// lifecycle in order.
	types := eventTypes(app.StreamEvents(ack.TaskID, 5*time.Second))
	require.NotEmpty(t, types)
	assert.Equal(t, string(models.EventStarted), types[0])
	assert.Contains(t, types, string(models.EventIteration))
	assert.Equal(t, string(models.EventComplete), types[len(types)-1])

	code, raw := app.do(http.MethodGet, "/task/"+ack.TaskID+"/checkpoints", nil)
	require.Equal(t, http.StatusOK, code)
	var checkpoints []models.IterationCheckpoint
	app.decode(raw, &checkpoints)
	require.NotEmpty(t, checkpoints)
	assert.Equal(t, ack.TaskID, checkpoints[0].TaskID)
	assert.Equal(t, 1, checkpoints[0].IterationNum)

	// One reasoner-scripted search pass should have gone out.
	batches := app.Searcher.queryBatches()
	require.NotEmpty(t, batches)
	assert.Equal(t, []string{"release timeline", "headline changes"}, batches[0])
}
