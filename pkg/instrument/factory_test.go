package instrument

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/tools"
)

func fullRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(&reasonerTool{caps: []string{
		tools.CapabilityReasoning,
		tools.CapabilitySynthesis,
		tools.CapabilityAnalysis,
		tools.CapabilityVision,
	}}))
	require.NoError(t, registry.Register(&searcherTool{}))
	return registry
}

func TestFactoryBuildsBuiltins(t *testing.T) {
	factory, err := NewFactory(fullRegistry(t), FactoryConfig{})
	require.NoError(t, err)

	for _, name := range []string{"note", "research", "vision", "synthesis"} {
		t.Run(name, func(t *testing.T) {
			inst, err := factory.New(name, nil)
			require.NoError(t, err)
			assert.Equal(t, name, inst.Name())
		})
	}
}

func TestFactoryReturnsFreshInstances(t *testing.T) {
	factory, err := NewFactory(fullRegistry(t), FactoryConfig{})
	require.NoError(t, err)

	first, err := factory.New("research", nil)
	require.NoError(t, err)
	second, err := factory.New("research", nil)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestFactoryUnknownInstrument(t *testing.T) {
	factory, err := NewFactory(fullRegistry(t), FactoryConfig{})
	require.NoError(t, err)

	_, err = factory.New("telepathy", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownInstrument)
}

func TestFactoryMissingCapability(t *testing.T) {
	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(&reasonerTool{caps: []string{tools.CapabilityReasoning}}))

	factory, err := NewFactory(registry, FactoryConfig{})
	require.NoError(t, err)

	_, err = factory.New("research", nil)
	require.Error(t, err)

	var capErr *tools.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Contains(t, capErr.Missing, tools.CapabilityWebSearch)
}

func TestFactoryRejectsIncapableTools(t *testing.T) {
	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(&bareTool{name: "husk", caps: []string{
		tools.CapabilityReasoning,
		tools.CapabilityVision,
	}}))

	factory, err := NewFactory(registry, FactoryConfig{})
	require.NoError(t, err)

	_, err = factory.New("note", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support text completion")

	_, err = factory.New("vision", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support image analysis")
}

func TestFactoryAppliesOverrides(t *testing.T) {
	factory, err := NewFactory(fullRegistry(t), FactoryConfig{
		Research: Tuning{MaxIterations: 4},
	})
	require.NoError(t, err)

	t.Run("config tuning applies", func(t *testing.T) {
		inst, err := factory.New("research", nil)
		require.NoError(t, err)
		assert.Equal(t, 4, inst.MaxIterations())
	})

	t.Run("per-task overrides win", func(t *testing.T) {
		seven := 7
		inst, err := factory.New("research", &models.InstrumentOverrides{MaxIterations: &seven})
		require.NoError(t, err)
		assert.Equal(t, 7, inst.MaxIterations())
	})

	t.Run("overrides do not leak", func(t *testing.T) {
		inst, err := factory.New("research", nil)
		require.NoError(t, err)
		assert.Equal(t, 4, inst.MaxIterations())
	})
}

func TestFactoryDeclaredLoops(t *testing.T) {
	spec := LoopSpec{
		Name:               "triage",
		MaxTotalIterations: 6,
		Phases:             []LoopPhase{{Name: "scan", Prompt: "Scan {query}"}},
	}
	factory, err := NewFactory(fullRegistry(t), FactoryConfig{Loops: []LoopSpec{spec}})
	require.NoError(t, err)

	assert.True(t, factory.Has("triage"))
	assert.Equal(t, []string{"note", "research", "vision", "synthesis", "triage"}, factory.Names())

	inst, err := factory.New("triage", nil)
	require.NoError(t, err)
	assert.Equal(t, "triage", inst.Name())
	assert.Equal(t, 6, inst.MaxIterations())

	three := 3
	bounded, err := factory.New("triage", &models.InstrumentOverrides{MaxIterations: &three})
	require.NoError(t, err)
	assert.Equal(t, 3, bounded.MaxIterations())
}

func TestFactoryRejectsCollidingLoops(t *testing.T) {
	t.Run("builtin collision", func(t *testing.T) {
		_, err := NewFactory(fullRegistry(t), FactoryConfig{Loops: []LoopSpec{{Name: "note"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "collides with a builtin")
	})

	t.Run("duplicate loops", func(t *testing.T) {
		_, err := NewFactory(fullRegistry(t), FactoryConfig{Loops: []LoopSpec{{Name: "x"}, {Name: "x"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate loop")
	})

	t.Run("unnamed loop", func(t *testing.T) {
		_, err := NewFactory(fullRegistry(t), FactoryConfig{Loops: []LoopSpec{{}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})
}

func TestFactoryConfigFromConfig(t *testing.T) {
	cfg := config.InstrumentsConfig{
		Research:  config.InstrumentTuning{MaxIterations: 9, ConfidenceThreshold: 0.75},
		Vision:    config.InstrumentTuning{MaxIterations: 2},
		Synthesis: config.InstrumentTuning{ConfidenceThreshold: 0.5},
		Loops: []config.LoopSpecConfig{{
			Name:          "review",
			Description:   "two-pass review",
			MaxIterations: 4,
			Phases: []config.PhaseConfig{
				{Name: "draft", Action: "prompt", Prompt: "Draft {query}"},
				{Name: "verify", Action: "instrument", Instrument: "research"},
			},
		}},
	}

	term := config.TerminationConfig{ConfidenceThreshold: 0.9, DeltaThreshold: 0.05, Window: 3}
	fc := FactoryConfigFromConfig(cfg, term)
	assert.Equal(t, Tuning{MaxIterations: 9, ConfidenceThreshold: 0.75, DeltaThreshold: 0.05, Window: 3}, fc.Research,
		"per-instrument confidence threshold wins over the global one")
	assert.Equal(t, Tuning{MaxIterations: 2, ConfidenceThreshold: 0.9, DeltaThreshold: 0.05, Window: 3}, fc.Vision)
	assert.Equal(t, Tuning{ConfidenceThreshold: 0.5, DeltaThreshold: 0.05, Window: 3}, fc.Synthesis)

	require.Len(t, fc.Loops, 1)
	assert.Equal(t, "review", fc.Loops[0].Name)
	assert.Equal(t, 4, fc.Loops[0].MaxTotalIterations)
	require.Len(t, fc.Loops[0].Phases, 2)
	assert.Equal(t, PhaseActionPrompt, fc.Loops[0].Phases[0].Action)
	assert.Equal(t, "research", fc.Loops[0].Phases[1].Instrument)

	factory, err := NewFactory(fullRegistry(t), fc)
	require.NoError(t, err)
	inst, err := factory.New("review", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.MaxIterations())
}

func TestFactoryLoopResolverReachesBuiltins(t *testing.T) {
	registry := fullRegistry(t)
	reasoner := registry.GetByName("claude").(*reasonerTool)
	reasoner.script = []any{
		"framing response",
		"problem statement",
		"q1",
		`{"summary": "done", "has_contradictions": false, "contradiction_hint": null}`,
		"followup?",
	}
	searcher := registry.GetByName("tavily").(*searcherTool)
	searcher.responses = richSearchResponses()

	factory, err := NewFactory(registry, FactoryConfig{Loops: []LoopSpec{{
		Name: "frame-research",
		Phases: []LoopPhase{
			{Name: "frame", Prompt: "Frame {query}"},
			{Name: "dig", Action: PhaseActionInstrument, Instrument: "research"},
		},
	}}})
	require.NoError(t, err)

	inst, err := factory.New("frame-research", nil)
	require.NoError(t, err)

	result, err := inst.Execute(context.Background(), "storage engines", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Findings)
	assert.Equal(t, "done", result.Summary)
}

func TestFactoryLoopResolverUnknownInstrument(t *testing.T) {
	factory, err := NewFactory(fullRegistry(t), FactoryConfig{Loops: []LoopSpec{{
		Name:   "broken",
		Phases: []LoopPhase{{Name: "dig", Action: PhaseActionInstrument, Instrument: "missing"}},
	}}})
	require.NoError(t, err)

	inst, err := factory.New("broken", nil)
	require.NoError(t, err)

	result, err := inst.Execute(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Contains(t, result.Summary, "unknown instrument")
}
