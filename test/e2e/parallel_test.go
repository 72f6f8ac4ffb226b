package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/models"
)

// TestParallelBranchFailureDegrades runs a three-branch fan-out where
// the research branch stalls past the per-branch timeout. The merge must
// still produce a complete answer from the surviving branches, with the
// lost branch named in the discrepancy instead of failing the task.
func TestParallelBranchFailureDegrades(t *testing.T) {
	app := StartApp(t,
		WithConductorConfig(config.ConductorConfig{BranchTimeout: 200 * time.Millisecond}),
		WithReasonerReplies(completionRule{marker: "Define the research problem", hang: true}),
	)

	ack := app.Submit(models.TaskRequest{
		Query: "Compare the rollout options",
		Arrangement: &models.ArrangementSpec{
			Name: "fan-out",
			Kind: models.ArrangementParallel,
			Steps: []models.ArrangementStep{
				{Instrument: "research"},
				{Instrument: "note"},
				{Instrument: "note"},
			},
		},
		Preferences: autonomous(),
	})

	resp := app.WaitForResponse(ack.TaskID)
	assert.Equal(t, models.OutcomeComplete, resp.Outcome)
	assert.Equal(t, "The release shipped in August with three headline changes.", resp.Summary)
	assert.Equal(t, "parallel(research | note | note) -> synthesis", resp.Metadata.InstrumentUsed)
	assert.Equal(t,
		"Branch failures: research: define research problem: context deadline exceeded",
		resp.Discrepancy)

	// Two note branches survived; the merge carries their findings and
	// the agreement bonus.
	require.Len(t, resp.Findings, 2)
	assert.InDelta(t, 0.95, resp.Confidence, 1e-9)
	assert.Equal(t, []string{"claude"}, resp.Metadata.SourcesConsulted)

	// One checkpoint per branch (the failed one included) plus the merge.
	code, raw := app.do(http.MethodGet, "/task/"+ack.TaskID+"/checkpoints", nil)
	require.Equal(t, http.StatusOK, code)
	var checkpoints []models.IterationCheckpoint
	app.decode(raw, &checkpoints)
	require.Len(t, checkpoints, 4)
	phases := make([]string, len(checkpoints))
	for i, cp := range checkpoints {
		phases[i] = cp.Phase
	}
	assert.Equal(t, []string{"research", "note", "note", "synthesis"}, phases)
}
