package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/termination"
)

func inputResult(confidence float64, sources []string, findingConfidences ...float64) models.InstrumentResult {
	findings := make([]models.Finding, len(findingConfidences))
	for i, c := range findingConfidences {
		findings[i] = models.Finding{Content: "finding", Confidence: c}
	}
	return models.InstrumentResult{
		Findings:   findings,
		Confidence: confidence,
		Outcome:    models.OutcomeComplete,
		Metadata:   models.ExecutionMetadata{SourcesConsulted: sources},
	}
}

func TestSynthesisExecuteWithoutInput(t *testing.T) {
	synthesis := NewSynthesisInstrument(&scriptedReasoner{}, Tuning{})

	for _, taskCtx := range []*models.TaskContext{nil, {}, {InputResults: []models.InstrumentResult{}}} {
		result, err := synthesis.Execute(context.Background(), "merge these", taskCtx)
		require.NoError(t, err)

		assert.Equal(t, models.OutcomeBounded, result.Outcome)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Equal(t, 0, result.Metadata.Iterations)
		assert.Contains(t, result.Summary, "No input results available to synthesize")
		assert.Contains(t, result.Summary, "merge these")
		assert.Equal(t, []string{"Try running research instruments first to gather findings"}, result.SuggestedFollowups)
	}
}

func TestSynthesisExecuteWithEmptyFindings(t *testing.T) {
	synthesis := NewSynthesisInstrument(&scriptedReasoner{}, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		{Confidence: 0.9, Metadata: models.ExecutionMetadata{SourcesConsulted: []string{"a.com"}}},
	}}
	result, err := synthesis.Execute(context.Background(), "merge", taskCtx)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeBounded, result.Outcome)
}

func TestSynthesisExecuteMerges(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"summary": "Both sources agree on the core claim.", "has_contradictions": false, "contradiction_hint": null}`,
	}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.8, []string{"b.com", "a.com"}, 0.9, 0.6),
		inputResult(0.75, []string{"a.com", "c.com"}, 0.4),
	}}

	result, err := synthesis.Execute(context.Background(), "what do the results say?", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "Both sources agree on the core claim.", result.Summary)
	assert.Len(t, result.Findings, 3)
	// weighted: (0.8*2 + 0.75*1)/3 = 0.7833, plus the agreement bonus
	assert.InDelta(t, 0.8333, result.Confidence, 0.001)
	assert.Equal(t, 1, result.Metadata.Iterations)
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, result.Metadata.SourcesConsulted)
	assert.Equal(t, "synthesis", result.Metadata.InstrumentUsed)

	require.Len(t, reasoner.prompts, 1)
	assert.Contains(t, reasoner.prompts[0], "[HIGH CONFIDENCE] finding")
	assert.Contains(t, reasoner.prompts[0], "[LOW CONFIDENCE] finding")
	assert.Contains(t, reasoner.prompts[0], "Finding 3:")
}

func TestSynthesisContradictionTurnsInconclusive(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"summary": "The totals differ.", "has_contradictions": true, "contradiction_hint": "totals disagree"}`,
		`{"description": "The two results report different totals.", "severity": "moderate", "conflicting_claims": ["10", "12"], "suggested_refinements": ["Recount from the primary source", "Check the reporting period"]}`,
	}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.7, nil, 0.7),
		inputResult(0.7, nil, 0.7),
	}}

	result, err := synthesis.Execute(context.Background(), "how many?", taskCtx)
	require.NoError(t, err)

	// merged 0.7 + bonus 0.05 is below the 0.9 moderate tolerance
	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, "The two results report different totals.", result.Discrepancy)
	assert.Equal(t, []string{"Recount from the primary source", "Check the reporting period"}, result.SuggestedFollowups)
}

func TestSynthesisSignificantContradictionAlwaysInconclusive(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"summary": "Sources clash.", "has_contradictions": true, "contradiction_hint": "direct conflict"}`,
		`{"description": "Direct factual conflict.", "severity": "significant", "conflicting_claims": [], "suggested_refinements": []}`,
	}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.95, nil, 0.9),
		inputResult(0.95, nil, 0.9),
	}}

	result, err := synthesis.Execute(context.Background(), "q", taskCtx)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Empty(t, result.SuggestedFollowups)
}

func TestSynthesisContradictionAnalysisFailureTolerated(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"summary": "Possible conflict.", "has_contradictions": true, "contradiction_hint": "maybe"}`,
		errors.New("analysis down"),
	}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.8, nil, 0.8),
		inputResult(0.8, nil, 0.8),
	}}

	result, err := synthesis.Execute(context.Background(), "q", taskCtx)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Empty(t, result.Discrepancy)
}

func TestSynthesisResynthesizesWhenConfidenceLow(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"summary": "First rough merge.", "has_contradictions": false, "contradiction_hint": null}`,
		`{"summary": "Refined merge.", "has_contradictions": false, "contradiction_hint": null}`,
	}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.4, []string{"a.com"}, 0.4),
	}}

	result, err := synthesis.Execute(context.Background(), "q", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Metadata.Iterations)
	assert.Equal(t, "Refined merge.", result.Summary)
	assert.InDelta(t, 0.45, result.Confidence, 0.001)

	require.Len(t, reasoner.prompts, 2)
	assert.Contains(t, reasoner.prompts[1], "[Previous synthesis attempt (confidence: 0.40)]: First rough merge.")
	assert.Contains(t, reasoner.prompts[1], "re-examine the findings more carefully")
}

func TestSynthesisSkipsResynthesisWhenCapped(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"summary": "Single pass.", "has_contradictions": false, "contradiction_hint": null}`,
	}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{MaxIterations: 1})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.4, nil, 0.4),
	}}

	result, err := synthesis.Execute(context.Background(), "q", taskCtx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metadata.Iterations)
	assert.Len(t, reasoner.prompts, 1)
}

func TestSynthesisErrorPropagates(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{errors.New("api down")}}
	synthesis := NewSynthesisInstrument(reasoner, Tuning{})

	taskCtx := &models.TaskContext{InputResults: []models.InstrumentResult{
		inputResult(0.8, nil, 0.8),
	}}

	_, err := synthesis.Execute(context.Background(), "q", taskCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesize input results")
}

func TestMergedConfidence(t *testing.T) {
	t.Run("empty input scores zero", func(t *testing.T) {
		assert.Zero(t, mergedConfidence(nil))
	})

	t.Run("weights by finding count", func(t *testing.T) {
		results := []models.InstrumentResult{
			inputResult(0.9, nil, 0.9, 0.9, 0.9),
			inputResult(0.3, nil, 0.3),
		}
		// (0.9*3 + 0.3*1) / 4, no bonus since one result is below 0.7
		assert.InDelta(t, 0.75, mergedConfidence(results), 0.001)
	})

	t.Run("findingless results still carry weight", func(t *testing.T) {
		results := []models.InstrumentResult{inputResult(0.6, nil)}
		assert.InDelta(t, 0.6, mergedConfidence(results), 0.001)
	})

	t.Run("agreement bonus is capped at one", func(t *testing.T) {
		results := []models.InstrumentResult{
			inputResult(1.0, nil, 0.9),
			inputResult(0.98, nil, 0.9),
		}
		assert.InDelta(t, 1.0, mergedConfidence(results), 0.001)
	})
}

func TestSynthesisOutcomeRules(t *testing.T) {
	assert.Equal(t, models.OutcomeInconclusive, synthesisOutcome(0.95, termination.SeveritySignificant))
	assert.Equal(t, models.OutcomeInconclusive, synthesisOutcome(0.85, termination.SeverityModerate))
	assert.Equal(t, models.OutcomeComplete, synthesisOutcome(0.92, termination.SeverityModerate))
	assert.Equal(t, models.OutcomeComplete, synthesisOutcome(0.2, termination.SeverityMinor))
}

func TestSynthesisDescribesItself(t *testing.T) {
	synthesis := NewSynthesisInstrument(&scriptedReasoner{}, Tuning{})
	assert.Equal(t, "synthesis", synthesis.Name())
	assert.Equal(t, models.ProcessSemiAutonomic, synthesis.ProcessType())
	assert.Equal(t, 2, synthesis.MaxIterations())
	assert.Equal(t, []string{"reasoning", "synthesis"}, synthesis.RequiredCapabilities())
}
