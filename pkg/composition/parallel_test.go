package composition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

func TestParallelRequiresBranches(t *testing.T) {
	_, err := NewParallel(newFakeProvider(), nil, "", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one branch")
}

func TestParallelRejectsUnknownBranch(t *testing.T) {
	provider := newFakeProvider(
		&fakeInstrument{name: "research"},
		&fakeInstrument{name: "synthesis"},
	)

	_, err := NewParallel(provider, steps("research", "nonexistent"), "synthesis", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, instrument.ErrUnknownInstrument)
	assert.Contains(t, err.Error(), `"nonexistent" in parallel composition`)
}

func TestParallelRejectsUnknownMerge(t *testing.T) {
	provider := newFakeProvider(&fakeInstrument{name: "research"})

	_, err := NewParallel(provider, steps("research"), "missing", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, instrument.ErrUnknownInstrument)
	assert.Contains(t, err.Error(), `"missing" as parallel merge instrument`)
}

func TestParallelNameDefaultsMergeToSynthesis(t *testing.T) {
	provider := newFakeProvider(
		&fakeInstrument{name: "research"},
		&fakeInstrument{name: "note"},
		&fakeInstrument{name: "synthesis"},
	)

	comp, err := NewParallel(provider, steps("research", "note"), "", 0)
	require.NoError(t, err)

	assert.Equal(t, "parallel(research | note) -> synthesis", comp.Name())
}

func TestParallelMergesBranchResults(t *testing.T) {
	research := &fakeInstrument{
		name:   "research",
		result: canned(models.OutcomeComplete, "Research findings", 0.8, 2, "tavily", "web"),
	}
	note := &fakeInstrument{
		name:   "note",
		result: canned(models.OutcomeComplete, "Quick note", 0.7, 1, "claude"),
	}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Merged view", 0.88, 1, "claude"),
	}
	comp, err := NewParallel(newFakeProvider(research, note, synthesis), steps("research", "note"), "synthesis", 0)
	require.NoError(t, err)

	base := &models.TaskContext{UserID: "user-1"}
	result, err := comp.Execute(context.Background(), "query", base)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "Merged view", result.Summary)
	assert.Equal(t, 0.88, result.Confidence)
	assert.Empty(t, result.Discrepancy)
	assert.Equal(t, "parallel(research | note) -> synthesis", result.Metadata.InstrumentUsed)
	assert.Equal(t, 4, result.Metadata.Iterations)
	assert.Equal(t, []string{"claude", "tavily", "web"}, result.Metadata.SourcesConsulted)
	assert.Equal(t, models.ProcessConscious, result.Metadata.ProcessType)

	// Branches start from a clean input slate; the merge sees the branch
	// results in declaration order.
	require.Len(t, research.contexts, 1)
	assert.Nil(t, research.contexts[0].InputResults)
	assert.Equal(t, "user-1", research.contexts[0].UserID)
	require.Len(t, synthesis.contexts, 1)
	mergeCtx := synthesis.contexts[0]
	require.Len(t, mergeCtx.InputResults, 2)
	assert.Equal(t, "Research findings", mergeCtx.InputResults[0].Summary)
	assert.Equal(t, "Quick note", mergeCtx.InputResults[1].Summary)
}

func TestParallelPartialFailureDegrades(t *testing.T) {
	research := &fakeInstrument{
		name:   "research",
		result: canned(models.OutcomeComplete, "Research findings", 0.8, 2, "web"),
	}
	note := &fakeInstrument{name: "note", err: errors.New("model offline")}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Merged what survived", 0.75, 1),
	}
	comp, err := NewParallel(newFakeProvider(research, note, synthesis), steps("research", "note"), "synthesis", 0)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "Merged what survived", result.Summary)
	assert.Equal(t, "Branch failures: note: model offline", result.Discrepancy)
	require.Len(t, synthesis.contexts, 1)
	assert.Len(t, synthesis.contexts[0].InputResults, 1)
}

func TestParallelMergeDiscrepancyAppended(t *testing.T) {
	mergeResult := canned(models.OutcomeInconclusive, "Merged", 0.6, 1)
	mergeResult.Discrepancy = "totals disagree"
	comp, err := NewParallel(newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "ok", 0.8, 1)},
		&fakeInstrument{name: "note", err: errors.New("model offline")},
		&fakeInstrument{name: "synthesis", result: mergeResult},
	), steps("research", "note"), "synthesis", 0)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, "Branch failures: note: model offline; totals disagree", result.Discrepancy)
}

func TestParallelAllFailInconclusive(t *testing.T) {
	research := &fakeInstrument{name: "research", err: errors.New("search down")}
	note := &fakeInstrument{name: "note", err: errors.New("model offline")}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "never runs", 0.9, 1),
	}
	comp, err := NewParallel(newFakeProvider(research, note, synthesis), steps("research", "note"), "synthesis", 0)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, "All 2 parallel branches failed", result.Summary)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Findings)
	assert.Equal(t, "research: search down; note: model offline", result.Discrepancy)
	assert.Equal(t, 0, result.Metadata.Iterations)
	assert.Equal(t, 0, synthesis.calls())
}

func TestParallelAllBranchesTimeOut(t *testing.T) {
	research := &fakeInstrument{
		name:   "research",
		result: canned(models.OutcomeComplete, "never finishes", 0.8, 2),
		delay:  2 * time.Second,
	}
	note := &fakeInstrument{
		name:   "note",
		result: canned(models.OutcomeComplete, "also stuck", 0.7, 1),
		delay:  2 * time.Second,
	}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "never runs", 0.9, 1),
	}
	comp, err := NewParallel(newFakeProvider(research, note, synthesis), steps("research", "note"), "synthesis", 50*time.Millisecond)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Contains(t, result.Discrepancy, "research: context deadline exceeded")
	assert.Contains(t, result.Discrepancy, "note: context deadline exceeded")
	assert.Equal(t, 0, synthesis.calls())
}

func TestParallelBranchTimeout(t *testing.T) {
	research := &fakeInstrument{
		name:   "research",
		result: canned(models.OutcomeComplete, "never finishes", 0.8, 2),
		delay:  2 * time.Second,
	}
	note := &fakeInstrument{
		name:   "note",
		result: canned(models.OutcomeComplete, "Quick note", 0.7, 1),
	}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Merged", 0.8, 1),
	}
	comp, err := NewParallel(newFakeProvider(research, note, synthesis), steps("research", "note"), "synthesis", 50*time.Millisecond)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Contains(t, result.Discrepancy, "research: context deadline exceeded")
	require.Len(t, synthesis.contexts, 1)
	assert.Len(t, synthesis.contexts[0].InputResults, 1)
}

func TestParallelBuildErrorFailsComposition(t *testing.T) {
	research := &fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "ok", 0.8, 1)}
	note := &fakeInstrument{name: "note", result: canned(models.OutcomeComplete, "ok", 0.7, 1)}
	synthesis := &fakeInstrument{name: "synthesis", result: canned(models.OutcomeComplete, "ok", 0.9, 1)}
	provider := newFakeProvider(research, note, synthesis)
	comp, err := NewParallel(provider, steps("research", "note"), "synthesis", 0)
	require.NoError(t, err)

	provider.buildErr["note"] = errors.New("no reasoning tool")
	_, err = comp.Execute(context.Background(), "query", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `build parallel branch "note"`)
	assert.Equal(t, 0, research.calls())
}

func TestParallelMergeErrorPropagates(t *testing.T) {
	comp, err := NewParallel(newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "ok", 0.8, 1)},
		&fakeInstrument{name: "synthesis", err: errors.New("merge exploded")},
	), steps("research"), "synthesis", 0)
	require.NoError(t, err)

	_, err = comp.Execute(context.Background(), "query", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `merge parallel branches via "synthesis"`)
	assert.Contains(t, err.Error(), "merge exploded")
}

func TestParallelOverridesPerBranch(t *testing.T) {
	three := 3
	provider := newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "ok", 0.8, 1)},
		&fakeInstrument{name: "synthesis", result: canned(models.OutcomeComplete, "merged", 0.9, 1)},
	)
	comp, err := NewParallel(provider, []models.ArrangementStep{
		{Instrument: "research", Config: &models.InstrumentOverrides{MaxIterations: &three}},
	}, "synthesis", 0)
	require.NoError(t, err)

	_, err = comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	require.Len(t, provider.overrides["research"], 1)
	require.NotNil(t, provider.overrides["research"][0])
	assert.Equal(t, 3, *provider.overrides["research"][0].MaxIterations)
	require.Len(t, provider.overrides["synthesis"], 1)
	assert.Nil(t, provider.overrides["synthesis"][0])
}

func TestParallelEmitsBranchCheckpoints(t *testing.T) {
	comp, err := NewParallel(newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "ok", 0.8, 2, "web")},
		&fakeInstrument{name: "note", err: errors.New("model offline")},
		&fakeInstrument{name: "synthesis", result: canned(models.OutcomeComplete, "merged", 0.9, 1)},
	), steps("research", "note"), "synthesis", 0)
	require.NoError(t, err)

	var records []checkpointRecord
	taskCtx := &models.TaskContext{CheckpointFn: captureCheckpoints(&records)}
	_, err = comp.Execute(context.Background(), "query", taskCtx)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].step)
	assert.Equal(t, "research", records[0].phase)
	assert.Equal(t, "complete", records[0].output["outcome"])
	assert.Equal(t, 2, records[1].step)
	assert.Equal(t, "note", records[1].phase)
	assert.Equal(t, "model offline", records[1].output["error"])
	assert.Equal(t, 3, records[2].step)
	assert.Equal(t, "synthesis", records[2].phase)
}

func TestParallelObservesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	comp, err := NewParallel(newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "ok", 0.8, 1), delay: time.Second},
		&fakeInstrument{name: "synthesis", result: canned(models.OutcomeComplete, "merged", 0.9, 1)},
	), steps("research"), "synthesis", 0)
	require.NoError(t, err)

	_, err = comp.Execute(ctx, "query", nil)

	assert.ErrorIs(t, err, context.Canceled)
}
