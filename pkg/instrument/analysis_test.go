package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/termination"
)

func TestSynthesizeWithAnalysis(t *testing.T) {
	t.Run("parses the JSON contract", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{
			`{"summary": "Merged view.", "has_contradictions": true, "contradiction_hint": "dates differ"}`,
		}}
		analyzer := NewAnalyzer(reasoner)

		analysis, err := analyzer.SynthesizeWithAnalysis(context.Background(), []string{"fact a", "fact b"}, "query")
		require.NoError(t, err)
		assert.Equal(t, "Merged view.", analysis.Summary)
		assert.True(t, analysis.HasContradictions)
		assert.Equal(t, "dates differ", analysis.ContradictionHint)

		require.Len(t, reasoner.prompts, 1)
		assert.Contains(t, reasoner.prompts[0], "Original Query: query")
		assert.Contains(t, reasoner.prompts[0], "Finding 1:\nfact a")
		assert.Contains(t, reasoner.prompts[0], "Finding 2:\nfact b")
		assert.Contains(t, reasoner.systems[0], "research synthesizer")
	})

	t.Run("tolerates fenced JSON", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{
			"```json\n{\"summary\": \"Fenced.\", \"has_contradictions\": false, \"contradiction_hint\": null}\n```",
		}}
		analyzer := NewAnalyzer(reasoner)

		analysis, err := analyzer.SynthesizeWithAnalysis(context.Background(), []string{"f"}, "q")
		require.NoError(t, err)
		assert.Equal(t, "Fenced.", analysis.Summary)
		assert.False(t, analysis.HasContradictions)
	})

	t.Run("null hint reads as empty", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{
			`{"summary": "Clean.", "has_contradictions": false, "contradiction_hint": null}`,
		}}
		analysis, err := NewAnalyzer(reasoner).SynthesizeWithAnalysis(context.Background(), []string{"f"}, "q")
		require.NoError(t, err)
		assert.Empty(t, analysis.ContradictionHint)
	})

	t.Run("plain text falls back to a summary", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{"Just prose, no JSON."}}
		analysis, err := NewAnalyzer(reasoner).SynthesizeWithAnalysis(context.Background(), []string{"f"}, "q")
		require.NoError(t, err)
		assert.Equal(t, "Just prose, no JSON.", analysis.Summary)
		assert.False(t, analysis.HasContradictions)
	})

	t.Run("reasoner errors propagate", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{errors.New("down")}}
		_, err := NewAnalyzer(reasoner).SynthesizeWithAnalysis(context.Background(), []string{"f"}, "q")
		require.Error(t, err)
	})
}

func TestAnalyzeDiscrepancy(t *testing.T) {
	t.Run("parses the JSON contract", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{
			`{"description": "Totals conflict.", "severity": "significant", "conflicting_claims": ["10", "12"], "suggested_refinements": ["Recount", "Check dates"]}`,
		}}
		analyzer := NewAnalyzer(reasoner)

		analysis, err := analyzer.AnalyzeDiscrepancy(context.Background(), []string{"fact"}, "query", "totals disagree")
		require.NoError(t, err)
		assert.Equal(t, "Totals conflict.", analysis.Description)
		assert.Equal(t, termination.SeveritySignificant, analysis.Severity)
		assert.Equal(t, []string{"10", "12"}, analysis.ConflictingClaims)
		assert.Equal(t, []string{"Recount", "Check dates"}, analysis.SuggestedRefinements)

		assert.Contains(t, reasoner.prompts[0], "Contradiction detected: totals disagree")
		assert.Contains(t, reasoner.systems[0], "conflicting information")
	})

	t.Run("unknown severity defaults to moderate", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{
			`{"description": "d", "severity": "catastrophic", "conflicting_claims": [], "suggested_refinements": []}`,
		}}
		analysis, err := NewAnalyzer(reasoner).AnalyzeDiscrepancy(context.Background(), []string{"f"}, "q", "h")
		require.NoError(t, err)
		assert.Equal(t, termination.SeverityModerate, analysis.Severity)
	})

	t.Run("plain text falls back to the hint", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{"no json here"}}
		analysis, err := NewAnalyzer(reasoner).AnalyzeDiscrepancy(context.Background(), []string{"f"}, "q", "sources disagree")
		require.NoError(t, err)
		assert.Equal(t, "sources disagree", analysis.Description)
		assert.Equal(t, termination.SeverityModerate, analysis.Severity)
		assert.Empty(t, analysis.SuggestedRefinements)
	})

	t.Run("reasoner errors propagate", func(t *testing.T) {
		reasoner := &scriptedReasoner{script: []any{errors.New("down")}}
		_, err := NewAnalyzer(reasoner).AnalyzeDiscrepancy(context.Background(), []string{"f"}, "q", "h")
		require.Error(t, err)
	})
}
