package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/termination"
	"github.com/loop-symphony/symphony/pkg/tools"
)

// richSearchResponses returns a batch strong enough to clear the default
// confidence threshold in a single iteration.
func richSearchResponses() []*tools.SearchResponse {
	return []*tools.SearchResponse{
		{
			Query:  "go 1.25 release date",
			Answer: "Go 1.25 was released in August 2025.",
			Results: []tools.SearchResult{
				{Title: "Go blog", URL: "https://go.dev/blog/go1.25", Content: "Go 1.25 released", Score: 0.9},
				{Title: "Release notes", URL: "https://go.dev/doc/go1.25", Content: "What's new", Score: 0.8},
				{Title: "HN thread", URL: "https://news.ycombinator.com/item", Content: "Discussion", Score: 0.7},
			},
		},
		{
			Query: "go 1.25 features",
			Results: []tools.SearchResult{
				{Title: "Feature overview", URL: "https://example.com/features", Content: "New features", Score: 0.9},
				{Title: "Deep dive", URL: "https://example.com/deep-dive", Content: "Details", Score: 0.8},
				{Title: "Summary", URL: "https://example.com/summary", Content: "Recap", Score: 0.7},
			},
		},
	}
}

func TestResearchExecuteCompletes(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"Find the Go 1.25 release date and headline features.",
		"go 1.25 release date\ngo 1.25 features",
		`{"summary": "Go 1.25 shipped in August 2025.", "has_contradictions": false, "contradiction_hint": null}`,
		"What changed in the runtime?\nWhich packages were deprecated?",
	}}
	searcher := &scriptedSearcher{responses: richSearchResponses()}
	research := NewResearchInstrument(reasoner, searcher, Tuning{})

	var checkpoints []checkpointRecord
	taskCtx := &models.TaskContext{CheckpointFn: captureCheckpoints(&checkpoints)}

	result, err := research.Execute(context.Background(), "When was Go 1.25 released?", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "Go 1.25 shipped in August 2025.", result.Summary)
	assert.Len(t, result.Findings, 7)
	assert.InDelta(t, 0.98, result.Confidence, 0.01)
	assert.Empty(t, result.Discrepancy)
	assert.Equal(t, []string{
		"What changed in the runtime?",
		"Which packages were deprecated?",
	}, result.SuggestedFollowups)

	assert.Equal(t, "research", result.Metadata.InstrumentUsed)
	assert.Equal(t, 1, result.Metadata.Iterations)
	assert.Equal(t, models.ProcessSemiAutonomic, result.Metadata.ProcessType)
	assert.Len(t, result.Metadata.SourcesConsulted, 6)
	assert.IsIncreasing(t, result.Metadata.SourcesConsulted)

	require.Len(t, searcher.batches, 1)
	assert.Equal(t, []string{"go 1.25 release date", "go 1.25 features"}, searcher.batches[0])

	require.Len(t, checkpoints, 1)
	assert.Equal(t, 1, checkpoints[0].iteration)
	assert.Equal(t, "iteration", checkpoints[0].phase)
	assert.Equal(t, true, checkpoints[0].output["should_terminate"])
	assert.Equal(t, 7, checkpoints[0].output["total_findings"])
}

func TestResearchSearchFailureDegrades(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"problem statement",
		"query one",
		"query two",
		"query three",
		`{"summary": "Nothing solid found.", "has_contradictions": false, "contradiction_hint": null}`,
		"Retry later?\nNarrow the question?",
	}}
	searcher := &scriptedSearcher{err: errors.New("tavily unreachable")}
	research := NewResearchInstrument(reasoner, searcher, Tuning{MaxIterations: 3})

	result, err := research.Execute(context.Background(), "anything", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeBounded, result.Outcome)
	require.Len(t, result.Findings, 3)
	for _, f := range result.Findings {
		assert.Equal(t, "tool_error", f.Source)
		assert.Contains(t, f.Content, "Web search failed")
		assert.Equal(t, 0.1, f.Confidence)
	}
	assert.Equal(t, 3, result.Metadata.Iterations)
	assert.Empty(t, result.Metadata.SourcesConsulted)
	// base 0.3 + findings 0.15 + avg confidence 0.01
	assert.InDelta(t, 0.46, result.Confidence, 0.001)
}

func TestResearchHypothesisFailureDegrades(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"problem statement",
		errors.New("overloaded"),
		`{"summary": "No progress.", "has_contradictions": false, "contradiction_hint": null}`,
		"Try again?",
	}}
	searcher := &scriptedSearcher{responses: richSearchResponses()}
	research := NewResearchInstrument(reasoner, searcher, Tuning{MaxIterations: 1})

	result, err := research.Execute(context.Background(), "anything", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeBounded, result.Outcome)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "tool_error", result.Findings[0].Source)
	assert.Contains(t, result.Findings[0].Content, "Hypothesis generation failed")
	assert.Empty(t, searcher.batches, "search must not run without hypotheses")
}

func TestResearchContradictionTurnsInconclusive(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"problem statement",
		"release date query\nfeatures query",
		`{"summary": "Sources conflict.", "has_contradictions": true, "contradiction_hint": "dates disagree"}`,
		`{"description": "Sources disagree on the release date.", "severity": "significant", "conflicting_claims": ["August", "September"], "suggested_refinements": ["Check the official blog", "Compare publication timestamps"]}`,
	}}
	searcher := &scriptedSearcher{responses: richSearchResponses()}
	research := NewResearchInstrument(reasoner, searcher, Tuning{})

	result, err := research.Execute(context.Background(), "When was it released?", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, "Sources disagree on the release date.", result.Discrepancy)
	assert.Equal(t, []string{"Check the official blog", "Compare publication timestamps"}, result.SuggestedFollowups)
	// The refinements double as followups, so no extra suggestion call.
	assert.Len(t, reasoner.prompts, 4)
}

func TestResearchDiscrepancyAnalysisFailureTolerated(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"problem statement",
		"q1\nq2",
		`{"summary": "Sources conflict.", "has_contradictions": true, "contradiction_hint": "dates disagree"}`,
		errors.New("analysis down"),
		"Followup A\nFollowup B",
	}}
	searcher := &scriptedSearcher{responses: richSearchResponses()}
	research := NewResearchInstrument(reasoner, searcher, Tuning{})

	result, err := research.Execute(context.Background(), "q", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Empty(t, result.Discrepancy)
	assert.Equal(t, []string{"Followup A", "Followup B"}, result.SuggestedFollowups)
}

func TestResearchDefineProblemErrorPropagates(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{errors.New("api down")}}
	research := NewResearchInstrument(reasoner, &scriptedSearcher{}, Tuning{})

	_, err := research.Execute(context.Background(), "q", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "define research problem")
}

func TestResearchObservesCancellation(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"problem statement"}}
	research := NewResearchInstrument(reasoner, &scriptedSearcher{}, Tuning{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := research.Execute(ctx, "q", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResearchCheckpointFailureTolerated(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"problem statement",
		"q1\nq2",
		`{"summary": "Done.", "has_contradictions": false, "contradiction_hint": null}`,
		"Followup?",
	}}
	searcher := &scriptedSearcher{responses: richSearchResponses()}
	research := NewResearchInstrument(reasoner, searcher, Tuning{})

	taskCtx := &models.TaskContext{
		CheckpointFn: func(context.Context, int, string, map[string]any, map[string]any, int64) error {
			return errors.New("db gone")
		},
	}

	result, err := research.Execute(context.Background(), "q", taskCtx)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeComplete, result.Outcome)
}

func TestResearchTuningOverridesApply(t *testing.T) {
	research := NewResearchInstrument(&scriptedReasoner{}, &scriptedSearcher{}, Tuning{MaxIterations: 8})
	assert.Equal(t, 8, research.MaxIterations())

	defaulted := NewResearchInstrument(&scriptedReasoner{}, &scriptedSearcher{}, Tuning{})
	assert.Equal(t, 5, defaulted.MaxIterations())
}

func TestOutcomeWithDiscrepancy(t *testing.T) {
	tests := []struct {
		name       string
		outcome    models.Outcome
		confidence float64
		severity   termination.Severity
		want       models.Outcome
	}{
		{"minor keeps outcome", models.OutcomeComplete, 0.5, termination.SeverityMinor, models.OutcomeComplete},
		{"significant always inconclusive", models.OutcomeComplete, 0.95, termination.SeveritySignificant, models.OutcomeInconclusive},
		{"moderate tolerated at high confidence", models.OutcomeComplete, 0.92, termination.SeverityModerate, models.OutcomeComplete},
		{"moderate downgrades at lower confidence", models.OutcomeComplete, 0.85, termination.SeverityModerate, models.OutcomeInconclusive},
		{"moderate downgrades non-complete outcomes", models.OutcomeBounded, 0.95, termination.SeverityModerate, models.OutcomeInconclusive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeWithDiscrepancy(tt.outcome, tt.confidence, tt.severity))
		})
	}
}
