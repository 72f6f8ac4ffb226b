package instrument

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/termination"
	"github.com/loop-symphony/symphony/pkg/tools"
)

const (
	synthesisName              = NameSynthesis
	defaultSynthesisIterations = 2

	// defaultResynthesisThreshold is the confidence below which a second
	// synthesis pass is attempted.
	defaultResynthesisThreshold = 0.6
)

var synthesisRequiredCapabilities = []string{tools.CapabilityReasoning, tools.CapabilitySynthesis}

// SynthesisInstrument merges the findings of multiple instrument results
// into a single confidence-weighted answer, checking the merged set for
// contradictions. Compositions use it to combine step outputs; it is not
// normally routed to directly.
type SynthesisInstrument struct {
	analyzer             *Analyzer
	maxIterations        int
	resynthesisThreshold float64
}

// NewSynthesisInstrument creates a synthesis instrument. A positive
// tuning confidence threshold replaces the default resynthesis cutoff.
func NewSynthesisInstrument(reasoner Reasoner, tuning Tuning) *SynthesisInstrument {
	maxIterations := tuning.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultSynthesisIterations
	}
	threshold := tuning.ConfidenceThreshold
	if threshold <= 0 {
		threshold = defaultResynthesisThreshold
	}
	return &SynthesisInstrument{
		analyzer:             NewAnalyzer(reasoner),
		maxIterations:        maxIterations,
		resynthesisThreshold: threshold,
	}
}

func (s *SynthesisInstrument) Name() string                    { return synthesisName }
func (s *SynthesisInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }
func (s *SynthesisInstrument) MaxIterations() int              { return s.maxIterations }
func (s *SynthesisInstrument) RequiredCapabilities() []string  { return synthesisRequiredCapabilities }
func (s *SynthesisInstrument) OptionalCapabilities() []string  { return nil }

// Execute merges the input results carried on the task context. Without
// input results, or with input results that carry no findings, it exits
// with a bounded diagnostic result.
func (s *SynthesisInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Synthesis instrument executing", "query", truncate(query, 50))

	var inputResults []models.InstrumentResult
	if taskCtx != nil {
		inputResults = taskCtx.InputResults
	}
	if len(inputResults) == 0 {
		slog.Warn("Synthesis called with no input results")
		return s.emptyResult(query, start), nil
	}

	findings, sources := collectFindings(inputResults)
	if len(findings) == 0 {
		slog.Warn("No findings in input results")
		return s.emptyResult(query, start), nil
	}

	iteration := 1
	analysis, err := s.analyzer.SynthesizeWithAnalysis(ctx, weightedFindingsText(findings), query)
	if err != nil {
		return nil, fmt.Errorf("synthesize input results: %w", err)
	}
	summary := analysis.Summary

	confidence := mergedConfidence(inputResults)

	discrepancy := ""
	outcome := models.OutcomeComplete
	var followups []string

	if analysis.HasContradictions && analysis.ContradictionHint != "" {
		discrepancy, outcome, followups = s.handleContradictions(ctx, query, findings, analysis.ContradictionHint, confidence)
	}

	if confidence < s.resynthesisThreshold && iteration < s.maxIterations {
		iteration = 2
		analysis, err = s.resynthesize(ctx, query, findings, summary, confidence)
		if err != nil {
			return nil, fmt.Errorf("resynthesize input results: %w", err)
		}
		summary = analysis.Summary
		confidence = min(1.0, confidence+0.05)

		if analysis.HasContradictions && analysis.ContradictionHint != "" && discrepancy == "" {
			discrepancy, outcome, followups = s.handleContradictions(ctx, query, findings, analysis.ContradictionHint, confidence)
		}
	}

	return &models.InstrumentResult{
		Findings:    findings,
		Summary:     summary,
		Confidence:  confidence,
		Outcome:     outcome,
		Discrepancy: discrepancy,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   synthesisName,
			Iterations:       iteration,
			DurationMS:       time.Since(start).Milliseconds(),
			SourcesConsulted: sources,
			ProcessType:      models.ProcessSemiAutonomic,
		},
		SuggestedFollowups: followups,
	}, nil
}

// resynthesize reruns the synthesis with the previous attempt prepended
// as refinement context.
func (s *SynthesisInstrument) resynthesize(ctx context.Context, query string, findings []models.Finding, previousSummary string, previousConfidence float64) (*SynthesisAnalysis, error) {
	refinement := fmt.Sprintf(
		"[Previous synthesis attempt (confidence: %.2f)]: %s\n\n"+
			"Please re-examine the findings more carefully and produce "+
			"a more precise synthesis. Focus on areas of agreement and "+
			"clearly flag areas of uncertainty.",
		previousConfidence, previousSummary)

	enriched := append([]string{refinement}, weightedFindingsText(findings)...)
	return s.analyzer.SynthesizeWithAnalysis(ctx, enriched, query)
}

// handleContradictions analyzes the flagged contradiction and grades the
// outcome by severity. Analysis failures leave the result complete.
func (s *SynthesisInstrument) handleContradictions(ctx context.Context, query string, findings []models.Finding, hint string, confidence float64) (string, models.Outcome, []string) {
	analysis, err := s.analyzer.AnalyzeDiscrepancy(ctx, findingTexts(findings), query, hint)
	if err != nil {
		slog.Warn("Contradiction analysis failed", "error", err)
		return "", models.OutcomeComplete, nil
	}

	outcome := synthesisOutcome(confidence, analysis.Severity)
	var followups []string
	if outcome == models.OutcomeInconclusive {
		followups = analysis.SuggestedRefinements
	}
	return analysis.Description, outcome, followups
}

// synthesisOutcome grades severity the same way research does:
// significant is always inconclusive, moderate is inconclusive below
// 0.9 confidence, minor stays complete.
func synthesisOutcome(confidence float64, severity termination.Severity) models.Outcome {
	switch {
	case severity == termination.SeveritySignificant:
		return models.OutcomeInconclusive
	case severity == termination.SeverityModerate && confidence < 0.9:
		return models.OutcomeInconclusive
	default:
		return models.OutcomeComplete
	}
}

func (s *SynthesisInstrument) emptyResult(query string, start time.Time) *models.InstrumentResult {
	return &models.InstrumentResult{
		Findings:   []models.Finding{},
		Summary:    fmt.Sprintf("No input results available to synthesize for query: %s", query),
		Confidence: 0.0,
		Outcome:    models.OutcomeBounded,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed: synthesisName,
			Iterations:     0,
			DurationMS:     time.Since(start).Milliseconds(),
			ProcessType:    models.ProcessSemiAutonomic,
		},
		SuggestedFollowups: []string{"Try running research instruments first to gather findings"},
	}
}

// collectFindings flattens every input result's findings, preserving
// per-finding confidence, and unions their consulted sources.
func collectFindings(inputResults []models.InstrumentResult) ([]models.Finding, []string) {
	var findings []models.Finding
	seen := make(map[string]struct{})
	var sources []string

	for _, result := range inputResults {
		for _, src := range result.Metadata.SourcesConsulted {
			if _, ok := seen[src]; !ok {
				seen[src] = struct{}{}
				sources = append(sources, src)
			}
		}
		findings = append(findings, result.Findings...)
	}

	sort.Strings(sources)
	return findings, sources
}

// mergedConfidence averages the input result confidences weighted by
// finding count, with a small bonus when two or more results agree at
// high confidence.
func mergedConfidence(inputResults []models.InstrumentResult) float64 {
	if len(inputResults) == 0 {
		return 0.0
	}

	totalWeight := 0.0
	weightedSum := 0.0
	for _, result := range inputResults {
		weight := float64(max(1, len(result.Findings)))
		weightedSum += result.Confidence * weight
		totalWeight += weight
	}
	base := weightedSum / totalWeight

	bonus := 0.0
	if len(inputResults) >= 2 {
		allHigh := true
		for _, result := range inputResults {
			if result.Confidence < 0.7 {
				allHigh = false
				break
			}
		}
		if allHigh {
			bonus = 0.05
		}
	}

	return min(1.0, base+bonus)
}

// weightedFindingsText renders findings for the synthesis prompt,
// annotating outliers so the model weights them accordingly.
func weightedFindingsText(findings []models.Finding) []string {
	texts := make([]string, len(findings))
	for i, f := range findings {
		switch {
		case f.Confidence >= 0.8:
			texts[i] = "[HIGH CONFIDENCE] " + f.Content
		case f.Confidence >= 0.5:
			texts[i] = f.Content
		default:
			texts[i] = "[LOW CONFIDENCE] " + f.Content
		}
	}
	return texts
}
