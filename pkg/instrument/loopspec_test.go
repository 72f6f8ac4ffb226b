package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestLoopDefaults(t *testing.T) {
	loop := NewLoopInstrument(LoopSpec{Name: "triage"}, &scriptedReasoner{}, nil)
	assert.Equal(t, "triage", loop.Name())
	assert.Equal(t, 10, loop.MaxIterations())
	assert.Equal(t, []string{"reasoning"}, loop.RequiredCapabilities())
	assert.Equal(t, models.ProcessSemiAutonomic, loop.ProcessType())
}

func TestLoopPromptPhases(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"outline of the topic", "critique of the outline"}}
	loop := NewLoopInstrument(LoopSpec{
		Name: "outline-critique",
		Phases: []LoopPhase{
			{Name: "outline", Action: PhaseActionPrompt, Prompt: "Outline {query} during {phase_name}. Prior: {previous_findings}"},
			{Name: "critique", Action: PhaseActionPrompt, Prompt: "Critique based on: {previous_findings}"},
		},
	}, reasoner, nil)

	result, err := loop.Execute(context.Background(), "hexagonal architecture", nil)
	require.NoError(t, err)

	// Both phases yield 0.7 confidence, so the loop ends saturated.
	assert.Equal(t, models.OutcomeSaturated, result.Outcome)
	assert.Equal(t, 2, result.Metadata.Iterations)
	assert.Equal(t, "critique of the outline", result.Summary)
	assert.Equal(t, 0.7, result.Confidence)

	require.Len(t, result.Findings, 2)
	assert.Equal(t, "[outline] outline of the topic", result.Findings[0].Content)
	assert.Equal(t, "phase:outline", result.Findings[0].Source)
	assert.Equal(t, "[critique] critique of the outline", result.Findings[1].Content)

	assert.Equal(t, []string{"phase:critique", "phase:outline"}, result.Metadata.SourcesConsulted)

	require.Len(t, reasoner.prompts, 2)
	assert.Equal(t, "Outline hexagonal architecture during outline. Prior: No previous findings", reasoner.prompts[0])
	assert.Contains(t, reasoner.prompts[1], "- [outline] outline of the topic (confidence: 0.7)")
	assert.Equal(t, "You are executing the 'outline' phase. Be thorough and specific.", reasoner.systems[0])
}

func TestLoopDefaultActionIsPrompt(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"response"}}
	loop := NewLoopInstrument(LoopSpec{
		Name:   "single",
		Phases: []LoopPhase{{Name: "only", Prompt: "Do {query}"}},
	}, reasoner, nil)

	result, err := loop.Execute(context.Background(), "it", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metadata.Iterations)
	assert.Equal(t, "Do it", reasoner.prompts[0])
}

func TestLoopInstrumentPhase(t *testing.T) {
	fake := &fakeInstrument{
		name: "research",
		result: &models.InstrumentResult{
			Findings:   []models.Finding{{Content: "deep fact", Source: "https://a.com", Confidence: 0.9}},
			Summary:    "research done",
			Confidence: 0.9,
			Outcome:    models.OutcomeComplete,
			Metadata: models.ExecutionMetadata{
				Iterations:       2,
				SourcesConsulted: []string{"https://a.com"},
			},
		},
	}
	resolver := func(name string) (Instrument, error) {
		require.Equal(t, "research", name)
		return fake, nil
	}

	reasoner := &scriptedReasoner{script: []any{"initial framing"}}
	loop := NewLoopInstrument(LoopSpec{
		Name: "frame-then-research",
		Phases: []LoopPhase{
			{Name: "frame", Action: PhaseActionPrompt, Prompt: "Frame {query}"},
			{Name: "dig", Action: PhaseActionInstrument, Instrument: "research"},
		},
	}, reasoner, resolver)

	var checkpoints []checkpointRecord
	taskCtx := &models.TaskContext{
		UserID:       "u1",
		CheckpointFn: captureCheckpoints(&checkpoints),
	}

	result, err := loop.Execute(context.Background(), "storage engines", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, 3, result.Metadata.Iterations)
	assert.Equal(t, "research done", result.Summary)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Len(t, result.Findings, 2)
	assert.Equal(t, []string{"https://a.com", "phase:frame"}, result.Metadata.SourcesConsulted)

	// The nested instrument saw the prior findings as one input result
	// and ran without a checkpoint callback.
	require.NotNil(t, fake.taskCtx)
	assert.Equal(t, "u1", fake.taskCtx.UserID)
	require.Len(t, fake.taskCtx.InputResults, 1)
	assert.Len(t, fake.taskCtx.InputResults[0].Findings, 1)
	assert.Equal(t, 0.5, fake.taskCtx.InputResults[0].Confidence)
	assert.Nil(t, fake.taskCtx.CheckpointFn)

	require.Len(t, checkpoints, 2)
	assert.Equal(t, 1, checkpoints[0].iteration)
	assert.Equal(t, "frame", checkpoints[0].phase)
	assert.Equal(t, 2, checkpoints[1].iteration)
	assert.Equal(t, "dig", checkpoints[1].phase)
	assert.Equal(t, 3, checkpoints[1].output["total_iterations"])
}

func TestLoopSpawnPhase(t *testing.T) {
	var spawnedQuery string
	taskCtx := &models.TaskContext{
		SpawnFn: func(_ context.Context, subQuery string, _ *models.TaskContext) (*models.InstrumentResult, error) {
			spawnedQuery = subQuery
			return &models.InstrumentResult{
				Findings:   []models.Finding{{Content: "sub answer", Source: "sub", Confidence: 0.85}},
				Summary:    "sub task done",
				Confidence: 0.85,
				Outcome:    models.OutcomeComplete,
				Metadata:   models.ExecutionMetadata{Iterations: 1, SourcesConsulted: []string{"sub"}},
			}, nil
		},
	}

	loop := NewLoopInstrument(LoopSpec{
		Name: "delegate",
		Phases: []LoopPhase{
			{Name: "handoff", Description: "Investigate the edge cases", Action: PhaseActionSpawn},
		},
	}, &scriptedReasoner{}, nil)

	result, err := loop.Execute(context.Background(), "cache invalidation", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, "Investigate the edge cases: cache invalidation", spawnedQuery)
	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "sub task done", result.Summary)
	assert.Equal(t, 1, result.Metadata.Iterations)
}

func TestLoopSpawnWithoutCallbackFails(t *testing.T) {
	loop := NewLoopInstrument(LoopSpec{
		Name:   "delegate",
		Phases: []LoopPhase{{Name: "handoff", Description: "d", Action: PhaseActionSpawn}},
	}, &scriptedReasoner{}, nil)

	result, err := loop.Execute(context.Background(), "q", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Contains(t, result.Summary, "Loop failed at phase 'handoff'")
	assert.Contains(t, result.Discrepancy, "Phase 'handoff' error")
}

func TestLoopIterationBudgetSkipsPhases(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"one", "two", "three"}}
	loop := NewLoopInstrument(LoopSpec{
		Name:               "bounded-loop",
		MaxTotalIterations: 2,
		Phases: []LoopPhase{
			{Name: "a", Prompt: "p"},
			{Name: "b", Prompt: "p"},
			{Name: "c", Prompt: "p"},
		},
	}, reasoner, nil)

	result, err := loop.Execute(context.Background(), "q", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeBounded, result.Outcome)
	assert.Equal(t, 2, result.Metadata.Iterations)
	assert.Len(t, result.Findings, 2)
	assert.Len(t, reasoner.prompts, 2, "the third phase must be skipped")
}

func TestLoopInconclusivePhaseHaltsEarly(t *testing.T) {
	fake := &fakeInstrument{
		name: "check",
		result: &models.InstrumentResult{
			Findings:    []models.Finding{{Content: "conflicting data", Source: "x", Confidence: 0.4}},
			Summary:     "results conflict",
			Confidence:  0.4,
			Outcome:     models.OutcomeInconclusive,
			Discrepancy: "sources disagree",
			Metadata:    models.ExecutionMetadata{Iterations: 1, SourcesConsulted: []string{"x"}},
		},
	}
	resolver := func(string) (Instrument, error) { return fake, nil }

	reasoner := &scriptedReasoner{script: []any{"framing", "never reached"}}
	loop := NewLoopInstrument(LoopSpec{
		Name: "halting",
		Phases: []LoopPhase{
			{Name: "frame", Prompt: "p"},
			{Name: "verify", Action: PhaseActionInstrument, Instrument: "check"},
			{Name: "conclude", Prompt: "p"},
		},
	}, reasoner, resolver)

	result, err := loop.Execute(context.Background(), "q", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, "Loop terminated early at phase 'verify': results conflict", result.Summary)
	assert.Equal(t, "sources disagree", result.Discrepancy)
	assert.Equal(t, 2, result.Metadata.Iterations)
	assert.Len(t, result.Findings, 2)
	assert.Len(t, reasoner.prompts, 1, "the conclude phase must not run")
}

func TestLoopPhaseErrorBecomesInconclusive(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"fine", errors.New("model down")}}
	loop := NewLoopInstrument(LoopSpec{
		Name: "flaky",
		Phases: []LoopPhase{
			{Name: "ok", Prompt: "p"},
			{Name: "broken", Prompt: "p"},
		},
	}, reasoner, nil)

	result, err := loop.Execute(context.Background(), "q", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Contains(t, result.Summary, "Loop failed at phase 'broken': model down")
	assert.Contains(t, result.Discrepancy, "Phase 'broken' error: model down")
	assert.Len(t, result.Findings, 1, "findings from completed phases are kept")
	assert.Equal(t, 1, result.Metadata.Iterations)
}

func TestLoopUnknownInstrumentFailsPhase(t *testing.T) {
	resolver := func(name string) (Instrument, error) {
		return nil, errors.New("unknown instrument: " + name)
	}
	loop := NewLoopInstrument(LoopSpec{
		Name:   "missing",
		Phases: []LoopPhase{{Name: "dig", Action: PhaseActionInstrument, Instrument: "nope"}},
	}, &scriptedReasoner{}, resolver)

	result, err := loop.Execute(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Contains(t, result.Summary, "unknown instrument: nope")
}

func TestLoopObservesCancellation(t *testing.T) {
	loop := NewLoopInstrument(LoopSpec{
		Name:   "cancelled",
		Phases: []LoopPhase{{Name: "a", Prompt: "p"}},
	}, &scriptedReasoner{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loop.Execute(ctx, "q", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
