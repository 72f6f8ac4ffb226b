package composition

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

func steps(names ...string) []models.ArrangementStep {
	out := make([]models.ArrangementStep, len(names))
	for i, name := range names {
		out[i] = models.ArrangementStep{Instrument: name}
	}
	return out
}

func TestSequentialRequiresSteps(t *testing.T) {
	_, err := NewSequential(newFakeProvider(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one step")
}

func TestSequentialRejectsUnknownInstrument(t *testing.T) {
	provider := newFakeProvider(&fakeInstrument{name: "research"})

	_, err := NewSequential(provider, steps("research", "nonexistent"))

	require.Error(t, err)
	assert.ErrorIs(t, err, instrument.ErrUnknownInstrument)
	assert.Contains(t, err.Error(), `"nonexistent" in composition step 2`)
}

func TestSequentialName(t *testing.T) {
	provider := newFakeProvider(
		&fakeInstrument{name: "research"},
		&fakeInstrument{name: "synthesis"},
	)

	single, err := NewSequential(provider, steps("research"))
	require.NoError(t, err)
	assert.Equal(t, "research", single.Name())

	multi, err := NewSequential(provider, steps("research", "synthesis"))
	require.NoError(t, err)
	assert.Equal(t, "research -> synthesis", multi.Name())
}

func TestSequentialPipelineRunsAllSteps(t *testing.T) {
	research := &fakeInstrument{
		name:   "research",
		result: canned(models.OutcomeComplete, "Research done", 0.7, 3, "claude", "web", "tavily"),
	}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Final merged answer", 0.92, 1, "claude"),
	}
	comp, err := NewSequential(newFakeProvider(research, synthesis), steps("research", "synthesis"))
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "What changed in Go 1.25?", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, research.calls())
	assert.Equal(t, 1, synthesis.calls())
	assert.Equal(t, []string{"What changed in Go 1.25?"}, research.queries)
	assert.Equal(t, []string{"What changed in Go 1.25?"}, synthesis.queries)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "Final merged answer", result.Summary)
	assert.Equal(t, 0.92, result.Confidence)
}

func TestSequentialOutputPropagation(t *testing.T) {
	research := &fakeInstrument{
		name:   "research",
		result: canned(models.OutcomeComplete, "Research done", 0.7, 3, "web"),
	}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Merged", 0.9, 1),
	}
	comp, err := NewSequential(newFakeProvider(research, synthesis), steps("research", "synthesis"))
	require.NoError(t, err)

	base := &models.TaskContext{
		UserID:       "user-1",
		CheckpointFn: captureCheckpoints(&[]checkpointRecord{}),
	}
	_, err = comp.Execute(context.Background(), "query", base)
	require.NoError(t, err)

	// First step starts from a clean input slate.
	require.Len(t, research.contexts, 1)
	assert.Nil(t, research.contexts[0].InputResults)
	assert.Equal(t, "user-1", research.contexts[0].UserID)
	assert.Nil(t, research.contexts[0].CheckpointFn)

	// Second step sees the first step's result.
	require.Len(t, synthesis.contexts, 1)
	stepCtx := synthesis.contexts[0]
	require.Len(t, stepCtx.InputResults, 1)
	assert.Equal(t, "Research done", stepCtx.InputResults[0].Summary)
	require.Len(t, stepCtx.InputResults[0].Findings, 1)
	assert.Equal(t, "finding: Research done", stepCtx.InputResults[0].Findings[0].Content)
	assert.Equal(t, "user-1", stepCtx.UserID)
	assert.Nil(t, stepCtx.CheckpointFn)
}

func TestSequentialMetadataAggregated(t *testing.T) {
	researchResult := canned(models.OutcomeComplete, "Research done", 0.7, 3, "claude", "web", "tavily")
	researchResult.Metadata.DurationMS = 40
	synthesisResult := canned(models.OutcomeComplete, "Merged", 0.92, 1, "claude")
	synthesisResult.Metadata.DurationMS = 20

	comp, err := NewSequential(newFakeProvider(
		&fakeInstrument{name: "research", result: researchResult},
		&fakeInstrument{name: "synthesis", result: synthesisResult},
	), steps("research", "synthesis"))
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, "research -> synthesis", result.Metadata.InstrumentUsed)
	assert.Equal(t, 4, result.Metadata.Iterations)
	assert.Equal(t, int64(60), result.Metadata.DurationMS)
	assert.Equal(t, []string{"claude", "tavily", "web"}, result.Metadata.SourcesConsulted)
	assert.Equal(t, models.ProcessConscious, result.Metadata.ProcessType)
	assert.Equal(t, 0.92, result.Confidence)
}

func TestSequentialInconclusiveHaltsEarly(t *testing.T) {
	inconclusive := canned(models.OutcomeInconclusive, "Findings conflict", 0.4, 2, "web")
	inconclusive.Discrepancy = "sources disagree on the date"
	research := &fakeInstrument{name: "research", result: inconclusive}
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Merged", 0.9, 1),
	}
	comp, err := NewSequential(newFakeProvider(research, synthesis), steps("research", "synthesis"))
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, synthesis.calls())
	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, "sources disagree on the date", result.Discrepancy)
	assert.Equal(t, 2, result.Metadata.Iterations)
}

func TestSequentialContinuesPastNonInconclusiveOutcomes(t *testing.T) {
	for _, outcome := range []models.Outcome{models.OutcomeBounded, models.OutcomeSaturated} {
		t.Run(string(outcome), func(t *testing.T) {
			research := &fakeInstrument{
				name:   "research",
				result: canned(outcome, "Partial", 0.5, 5, "web"),
			}
			synthesis := &fakeInstrument{
				name:   "synthesis",
				result: canned(models.OutcomeComplete, "Merged", 0.9, 1),
			}
			comp, err := NewSequential(newFakeProvider(research, synthesis), steps("research", "synthesis"))
			require.NoError(t, err)

			result, err := comp.Execute(context.Background(), "query", nil)
			require.NoError(t, err)

			assert.Equal(t, 1, synthesis.calls())
			assert.Equal(t, models.OutcomeComplete, result.Outcome)
		})
	}
}

func TestSequentialStepErrorPropagates(t *testing.T) {
	research := &fakeInstrument{name: "research", err: errors.New("model down")}
	comp, err := NewSequential(newFakeProvider(research), steps("research"))
	require.NoError(t, err)

	_, err = comp.Execute(context.Background(), "query", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "composition step 1 (research)")
	assert.Contains(t, err.Error(), "model down")
}

func TestSequentialBuildErrorPropagates(t *testing.T) {
	provider := newFakeProvider(&fakeInstrument{name: "research"})
	comp, err := NewSequential(provider, steps("research"))
	require.NoError(t, err)

	provider.buildErr["research"] = errors.New("missing capability")
	_, err = comp.Execute(context.Background(), "query", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `build instrument "research" for composition step 1`)
}

func TestSequentialOverridesPerStep(t *testing.T) {
	two := 2
	provider := newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "done", 0.9, 1)},
		&fakeInstrument{name: "synthesis", result: canned(models.OutcomeComplete, "merged", 0.9, 1)},
	)
	comp, err := NewSequential(provider, []models.ArrangementStep{
		{Instrument: "research", Config: &models.InstrumentOverrides{MaxIterations: &two}},
		{Instrument: "synthesis"},
	})
	require.NoError(t, err)

	_, err = comp.Execute(context.Background(), "query", nil)
	require.NoError(t, err)

	require.Len(t, provider.overrides["research"], 1)
	require.NotNil(t, provider.overrides["research"][0])
	assert.Equal(t, 2, *provider.overrides["research"][0].MaxIterations)
	require.Len(t, provider.overrides["synthesis"], 1)
	assert.Nil(t, provider.overrides["synthesis"][0])
}

func TestSequentialEmitsStepCheckpoints(t *testing.T) {
	comp, err := NewSequential(newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "done", 0.7, 3, "web")},
		&fakeInstrument{name: "synthesis", result: canned(models.OutcomeComplete, "merged", 0.9, 1)},
	), steps("research", "synthesis"))
	require.NoError(t, err)

	var records []checkpointRecord
	taskCtx := &models.TaskContext{CheckpointFn: captureCheckpoints(&records)}
	_, err = comp.Execute(context.Background(), "query", taskCtx)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].step)
	assert.Equal(t, "research", records[0].phase)
	assert.Equal(t, "research", records[0].input["instrument"])
	assert.Equal(t, "complete", records[0].output["outcome"])
	assert.Equal(t, 3, records[0].output["iterations"])
	assert.Equal(t, 2, records[1].step)
	assert.Equal(t, "synthesis", records[1].phase)
}

func TestSequentialObservesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	comp, err := NewSequential(newFakeProvider(
		&fakeInstrument{name: "research", result: canned(models.OutcomeComplete, "done", 0.9, 1)},
	), steps("research"))
	require.NoError(t, err)

	_, err = comp.Execute(ctx, "query", nil)

	assert.ErrorIs(t, err, context.Canceled)
}
