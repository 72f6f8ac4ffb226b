package termination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestEvaluateConfidenceThreshold(t *testing.T) {
	evaluator := NewEvaluator(Config{})

	t.Run("stops complete at threshold", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         2,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.5, 0.87},
			SourceCounts:      []int{3, 6},
		})
		assert.True(t, decision.Stop)
		assert.Equal(t, models.OutcomeComplete, decision.Outcome)
	})

	t.Run("continues below threshold", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         1,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.5},
			SourceCounts:      []int{3},
		})
		assert.False(t, decision.Stop)
	})

	t.Run("threshold win beats saturation on the same iteration", func(t *testing.T) {
		// Plateaued history with no new sources, but the last value is
		// over threshold: rule 1 applies.
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         3,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.85, 0.86, 0.86},
			SourceCounts:      []int{4, 4, 4},
		})
		assert.True(t, decision.Stop)
		assert.Equal(t, models.OutcomeComplete, decision.Outcome)
	})
}

func TestEvaluateSaturation(t *testing.T) {
	evaluator := NewEvaluator(Config{})

	t.Run("stops saturated when plateaued with no new sources", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         3,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.60, 0.61, 0.615},
			SourceCounts:      []int{5, 5, 5},
		})
		assert.True(t, decision.Stop)
		assert.Equal(t, models.OutcomeSaturated, decision.Outcome)
	})

	t.Run("continues when sources still arriving", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         3,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.60, 0.61, 0.615},
			SourceCounts:      []int{5, 6, 7},
		})
		assert.False(t, decision.Stop)
	})

	t.Run("continues when confidence still moving", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         3,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.40, 0.55, 0.70},
			SourceCounts:      []int{5, 5, 5},
		})
		assert.False(t, decision.Stop)
	})

	t.Run("needs a full window of history", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         2,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.60, 0.61},
			SourceCounts:      []int{5, 5},
		})
		assert.False(t, decision.Stop)
	})

	t.Run("saturation beats the iteration bound", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         5,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.60, 0.61, 0.615},
			SourceCounts:      []int{5, 5, 5},
		})
		assert.True(t, decision.Stop)
		assert.Equal(t, models.OutcomeSaturated, decision.Outcome)
	})
}

func TestEvaluateIterationBound(t *testing.T) {
	evaluator := NewEvaluator(Config{})

	decision := evaluator.Evaluate(Snapshot{
		Iteration:         5,
		MaxIterations:     5,
		ConfidenceHistory: []float64{0.3, 0.4, 0.5, 0.6, 0.7},
		SourceCounts:      []int{1, 2, 3, 4, 5},
	})
	assert.True(t, decision.Stop)
	assert.Equal(t, models.OutcomeBounded, decision.Outcome)
	assert.Contains(t, decision.Reason, "maximum iterations")
}

func TestEvaluateContradiction(t *testing.T) {
	evaluator := NewEvaluator(Config{})

	t.Run("significant contradiction stops inconclusive", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         2,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.4, 0.5},
			SourceCounts:      []int{2, 4},
			Contradiction: &Contradiction{
				Description: "sources disagree on the release date",
				Severity:    SeveritySignificant,
			},
		})
		assert.True(t, decision.Stop)
		assert.Equal(t, models.OutcomeInconclusive, decision.Outcome)
		assert.Contains(t, decision.Reason, "release date")
	})

	t.Run("minor contradiction does not stop", func(t *testing.T) {
		decision := evaluator.Evaluate(Snapshot{
			Iteration:         2,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.4, 0.5},
			SourceCounts:      []int{2, 4},
			Contradiction: &Contradiction{
				Description: "slight variation in figures",
				Severity:    SeverityMinor,
			},
		})
		assert.False(t, decision.Stop)
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		strict := NewEvaluator(Config{SeverityThreshold: SeverityModerate})
		decision := strict.Evaluate(Snapshot{
			Iteration:         2,
			MaxIterations:     5,
			ConfidenceHistory: []float64{0.4, 0.5},
			SourceCounts:      []int{2, 4},
			Contradiction: &Contradiction{
				Description: "figures conflict",
				Severity:    SeverityModerate,
			},
		})
		assert.True(t, decision.Stop)
		assert.Equal(t, models.OutcomeInconclusive, decision.Outcome)
	})
}

func TestCalculateConfidence(t *testing.T) {
	evaluator := NewEvaluator(Config{})

	t.Run("no findings scores zero", func(t *testing.T) {
		assert.Zero(t, evaluator.CalculateConfidence(nil, 0, false))
	})

	t.Run("single weak finding", func(t *testing.T) {
		findings := []models.Finding{{Content: "a", Confidence: 0.5}}
		// base 0.3 + findings 0.05 + sources 0.04 + avg 0.05
		assert.InDelta(t, 0.44, evaluator.CalculateConfidence(findings, 1, false), 0.001)
	})

	t.Run("direct answer boosts", func(t *testing.T) {
		findings := []models.Finding{{Content: "a", Confidence: 0.5}}
		assert.InDelta(t, 0.64, evaluator.CalculateConfidence(findings, 1, true), 0.001)
	})

	t.Run("finding and source boosts are capped", func(t *testing.T) {
		findings := make([]models.Finding, 20)
		for i := range findings {
			findings[i] = models.Finding{Content: "f", Confidence: 1.0}
		}
		// base 0.3 + findings cap 0.2 + sources cap 0.2 + answer 0.2 + avg 0.1
		assert.InDelta(t, 1.0, evaluator.CalculateConfidence(findings, 50, true), 0.001)
	})

	t.Run("never exceeds one", func(t *testing.T) {
		findings := make([]models.Finding, 100)
		for i := range findings {
			findings[i] = models.Finding{Content: "f", Confidence: 1.0}
		}
		assert.LessOrEqual(t, evaluator.CalculateConfidence(findings, 100, true), 1.0)
	})
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityMinor, ParseSeverity("minor"))
	assert.Equal(t, SeveritySignificant, ParseSeverity("significant"))
	assert.Equal(t, SeverityModerate, ParseSeverity("somewhat bad"))
	assert.Equal(t, SeverityModerate, ParseSeverity(""))
}

func TestSeverityOrdering(t *testing.T) {
	require.True(t, SeveritySignificant.AtLeast(SeverityModerate))
	require.True(t, SeverityModerate.AtLeast(SeverityModerate))
	require.False(t, SeverityMinor.AtLeast(SeverityModerate))
}
