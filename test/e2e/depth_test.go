package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

// verifierLoop declares a two-phase loop: examine the query, then spawn
// a sub-task to verify the examination. The spawn phase is what makes
// the depth ceiling observable from the outside.
func verifierLoop() instrument.LoopSpec {
	return instrument.LoopSpec{
		Name:        "verifier",
		Description: "Examine a claim and verify it with a sub-task",
		Phases: []instrument.LoopPhase{
			{Name: "examine", Action: instrument.PhaseActionPrompt, Prompt: "Examine {query}"},
			{Name: "verify", Action: instrument.PhaseActionSpawn, Description: "Verify the examination"},
		},
	}
}

// verifierArrangement reaches the declared loop through an inline
// single-step arrangement.
func verifierArrangement() *models.ArrangementSpec {
	return &models.ArrangementSpec{
		Name:  "verify-pass",
		Kind:  models.ArrangementSequential,
		Steps: []models.ArrangementStep{{Instrument: "verifier"}},
	}
}

// TestSpawnDepthCeiling submits the same loop twice: once with spawning
// forbidden, once with room to recurse. The forbidden run must come back
// bounded with the partial findings, not failed.
func TestSpawnDepthCeiling(t *testing.T) {
	app := StartApp(t, WithLoopSpecs(verifierLoop()))

	t.Run("spawn rejected at the ceiling", func(t *testing.T) {
		zero := 0
		ack := app.Submit(models.TaskRequest{
			Query:       "double-check the deploy",
			Arrangement: verifierArrangement(),
			Preferences: &models.TaskPreferences{TrustLevel: models.TrustAutonomous, MaxSpawnDepth: &zero},
		})

		resp := app.WaitForResponse(ack.TaskID)
		assert.Equal(t, models.OutcomeBounded, resp.Outcome)
		assert.Equal(t, "Loop stopped at phase 'verify': spawn depth limit reached", resp.Summary)
		assert.Equal(t, "Spawn depth limit reached (max 0)", resp.Discrepancy)
		assert.Equal(t, "verifier", resp.Metadata.InstrumentUsed)

		// The examine phase ran before the ceiling hit.
		require.Len(t, resp.Findings, 1)
		assert.Contains(t, resp.Findings[0].Content, "[examine]")

		require.Len(t, resp.SuggestedFollowups, 1)
		assert.Contains(t, resp.SuggestedFollowups[0], "[scoping]")
	})

	t.Run("spawn allowed below the ceiling", func(t *testing.T) {
		two := 2
		ack := app.Submit(models.TaskRequest{
			Query:       "double-check the deploy",
			Arrangement: verifierArrangement(),
			Preferences: &models.TaskPreferences{TrustLevel: models.TrustAutonomous, MaxSpawnDepth: &two},
		})

		resp := app.WaitForResponse(ack.TaskID)
		assert.Equal(t, models.OutcomeComplete, resp.Outcome)
		assert.Equal(t, "A direct and confident answer.", resp.Summary)
		assert.InDelta(t, 0.9, resp.Confidence, 1e-9)
		assert.Equal(t, "verifier", resp.Metadata.InstrumentUsed)
		assert.Equal(t, 2, resp.Metadata.Iterations)

		// One finding from the examine phase, one from the spawned note.
		require.Len(t, resp.Findings, 2)
		assert.Contains(t, resp.Findings[0].Content, "[examine]")
		assert.Equal(t, []string{"claude", "phase:examine"}, resp.Metadata.SourcesConsulted)
	})
}
