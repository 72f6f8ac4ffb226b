package instrument

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/termination"
	"github.com/loop-symphony/symphony/pkg/tools"
)

const (
	researchName              = NameResearch
	defaultResearchIterations = 5
	searchResultsPerQuery     = 3
	maxSearchQueries          = 3
)

var (
	researchRequiredCapabilities = []string{tools.CapabilityReasoning, tools.CapabilityWebSearch}
	researchOptionalCapabilities = []string{tools.CapabilitySynthesis, tools.CapabilityAnalysis}
)

// ResearchInstrument runs the iterative research loop: define the
// problem, generate search hypotheses, test them on the web, score
// confidence, and let the termination evaluator decide when to stop.
type ResearchInstrument struct {
	reasoner      Reasoner
	searcher      Searcher
	analyzer      *Analyzer
	evaluator     *termination.Evaluator
	maxIterations int
}

// NewResearchInstrument creates a research instrument from the resolved
// tools and tuning.
func NewResearchInstrument(reasoner Reasoner, searcher Searcher, tuning Tuning) *ResearchInstrument {
	maxIterations := tuning.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultResearchIterations
	}
	return &ResearchInstrument{
		reasoner:      reasoner,
		searcher:      searcher,
		analyzer:      NewAnalyzer(reasoner),
		evaluator: termination.NewEvaluator(termination.Config{
			ConfidenceThreshold: tuning.ConfidenceThreshold,
			DeltaThreshold:      tuning.DeltaThreshold,
			Window:              tuning.Window,
		}),
		maxIterations: maxIterations,
	}
}

func (r *ResearchInstrument) Name() string                    { return researchName }
func (r *ResearchInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }
func (r *ResearchInstrument) MaxIterations() int              { return r.maxIterations }
func (r *ResearchInstrument) RequiredCapabilities() []string  { return researchRequiredCapabilities }
func (r *ResearchInstrument) OptionalCapabilities() []string  { return researchOptionalCapabilities }

// Execute runs the research loop to termination and synthesizes the
// accumulated findings.
func (r *ResearchInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Research instrument executing", "query", truncate(query, 50))

	var (
		findings     []models.Finding
		sources      []string
		history      []float64
		sourceCounts []int
		iteration    int
	)
	seenSources := make(map[string]struct{})
	outcome := models.OutcomeBounded

	problem, err := r.defineProblem(ctx, query, taskCtx)
	if err != nil {
		return nil, fmt.Errorf("define research problem: %w", err)
	}

	for iteration < r.maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iteration++
		iterStart := time.Now()
		slog.Info("Research iteration", "iteration", iteration, "max", r.maxIterations)

		var (
			newFindings []models.Finding
			newSources  []string
		)
		queries, err := r.generateHypotheses(ctx, problem, findings, iteration)
		if err != nil {
			slog.Warn("Hypothesis generation failed", "iteration", iteration, "error", err)
			newFindings = []models.Finding{models.NewFinding(
				fmt.Sprintf("Hypothesis generation failed: %v", err), syntheticSource, syntheticFindingConfidence)}
			queries = nil
		} else {
			newFindings, newSources = r.testHypotheses(ctx, queries)
		}

		findings = append(findings, newFindings...)
		sources = append(sources, newSources...)
		for _, s := range newSources {
			seenSources[s] = struct{}{}
		}

		confidence := r.evaluator.CalculateConfidence(findings, len(seenSources), hasDirectAnswer(newFindings))
		history = append(history, confidence)
		sourceCounts = append(sourceCounts, len(seenSources))

		decision := r.evaluator.Evaluate(termination.Snapshot{
			Iteration:         iteration,
			MaxIterations:     r.maxIterations,
			ConfidenceHistory: history,
			SourceCounts:      sourceCounts,
		})

		emitCheckpoint(ctx, taskCtx, iteration, "iteration",
			map[string]any{"search_queries": queries},
			map[string]any{
				"new_findings":     len(newFindings),
				"total_findings":   len(findings),
				"confidence":       confidence,
				"should_terminate": decision.Stop,
			},
			time.Since(iterStart).Milliseconds())

		if decision.Stop {
			outcome = decision.Outcome
			slog.Info("Research loop terminating", "reason", decision.Reason)
			break
		}
	}

	synthesis, err := r.synthesizeFindings(ctx, query, findings)
	if err != nil {
		return nil, fmt.Errorf("synthesize findings: %w", err)
	}

	confidence := 0.0
	if len(history) > 0 {
		confidence = history[len(history)-1]
	}

	var (
		discrepancy string
		followups   []string
	)
	if synthesis.HasContradictions && synthesis.ContradictionHint != "" {
		analysis := r.analyzeDiscrepancy(ctx, query, findings, synthesis.ContradictionHint)
		if analysis != nil {
			discrepancy = analysis.Description
			outcome = outcomeWithDiscrepancy(outcome, confidence, analysis.Severity)
			if outcome == models.OutcomeInconclusive && len(analysis.SuggestedRefinements) > 0 {
				followups = analysis.SuggestedRefinements
			}
		}
	}

	if len(followups) == 0 {
		followups = r.suggestFollowups(ctx, query, findings, outcome)
	}

	return &models.InstrumentResult{
		Findings:    findings,
		Summary:     synthesis.Summary,
		Confidence:  confidence,
		Outcome:     outcome,
		Discrepancy: discrepancy,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   researchName,
			Iterations:       iteration,
			DurationMS:       time.Since(start).Milliseconds(),
			SourcesConsulted: uniqueSorted(sources),
			ProcessType:      models.ProcessSemiAutonomic,
		},
		SuggestedFollowups: followups,
	}, nil
}

func (r *ResearchInstrument) defineProblem(ctx context.Context, query string, taskCtx *models.TaskContext) (string, error) {
	system := "You are a research planner. Your job is to clearly define the research " +
		"problem based on the user's query. Be specific about what information " +
		"is needed and what would constitute a complete answer."

	var contextStr strings.Builder
	if taskCtx != nil {
		if taskCtx.ConversationSummary != "" {
			fmt.Fprintf(&contextStr, "\nConversation context: %s", taskCtx.ConversationSummary)
		}
		if taskCtx.Location != "" {
			fmt.Fprintf(&contextStr, "\nUser location: %s", taskCtx.Location)
		}
	}

	prompt := fmt.Sprintf("Define the research problem for this query:\n\nQuery: %s\n%s\n\nProvide a clear, focused problem statement that will guide the research.",
		query, contextStr.String())

	return r.reasoner.Complete(ctx, prompt, system)
}

func (r *ResearchInstrument) generateHypotheses(ctx context.Context, problem string, existing []models.Finding, iteration int) ([]string, error) {
	system := "You are a search query generator. Generate 2-3 specific, targeted search " +
		"queries that will help find information to answer the research problem. " +
		"Each query should be different and cover different aspects."

	var existingText strings.Builder
	if len(existing) > 0 {
		recent := existing
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		existingText.WriteString("\n\nExisting findings (don't search for these again):\n")
		lines := make([]string, len(recent))
		for i, f := range recent {
			lines[i] = fmt.Sprintf("- %s...", truncate(f.Content, 100))
		}
		existingText.WriteString(strings.Join(lines, "\n"))
	}

	prompt := fmt.Sprintf("Research Problem: %s\n\nIteration: %d\n%s\n\nGenerate 2-3 search queries. Return ONLY the queries, one per line, no numbering or explanation.",
		problem, iteration, existingText.String())

	response, err := r.reasoner.Complete(ctx, prompt, system)
	if err != nil {
		return nil, err
	}
	return splitLines(response, maxSearchQueries), nil
}

// testHypotheses runs the search batch. A failed batch degrades to a
// synthetic low-confidence finding so the loop keeps moving.
func (r *ResearchInstrument) testHypotheses(ctx context.Context, queries []string) ([]models.Finding, []string) {
	if len(queries) == 0 {
		return nil, nil
	}

	responses, err := r.searcher.SearchMany(ctx, queries, searchResultsPerQuery)
	if err != nil {
		slog.Error("Search batch failed", "queries", len(queries), "error", err)
		return []models.Finding{models.NewFinding(
			fmt.Sprintf("Web search failed: %v", err), syntheticSource, syntheticFindingConfidence)}, nil
	}

	var (
		findings []models.Finding
		sources  []string
	)
	for _, resp := range responses {
		if resp.Answer != "" {
			findings = append(findings, models.NewFinding(resp.Answer, "tavily_answer", 0.85))
		}
		for _, result := range resp.Results {
			sources = append(sources, result.URL)
			findings = append(findings, models.NewFinding(
				fmt.Sprintf("%s: %s", result.Title, result.Content), result.URL, result.Score))
		}
	}
	return findings, sources
}

func (r *ResearchInstrument) synthesizeFindings(ctx context.Context, query string, findings []models.Finding) (*SynthesisAnalysis, error) {
	if len(findings) == 0 {
		return &SynthesisAnalysis{Summary: "No findings were discovered during research."}, nil
	}
	return r.analyzer.SynthesizeWithAnalysis(ctx, findingTexts(findings), query)
}

// analyzeDiscrepancy returns nil when the analysis call fails; the
// contradiction is then left unattributed rather than failing the task.
func (r *ResearchInstrument) analyzeDiscrepancy(ctx context.Context, query string, findings []models.Finding, hint string) *DiscrepancyAnalysis {
	analysis, err := r.analyzer.AnalyzeDiscrepancy(ctx, findingTexts(findings), query, hint)
	if err != nil {
		slog.Warn("Discrepancy analysis failed", "error", err)
		return nil
	}
	return analysis
}

// outcomeWithDiscrepancy downgrades the loop outcome when a
// contradiction survives: significant always forces inconclusive,
// moderate is tolerated only on a high-confidence complete.
func outcomeWithDiscrepancy(outcome models.Outcome, confidence float64, severity termination.Severity) models.Outcome {
	switch severity {
	case termination.SeveritySignificant:
		return models.OutcomeInconclusive
	case termination.SeverityModerate:
		if outcome == models.OutcomeComplete && confidence >= 0.9 {
			return outcome
		}
		return models.OutcomeInconclusive
	default:
		return outcome
	}
}

func (r *ResearchInstrument) suggestFollowups(ctx context.Context, query string, findings []models.Finding, outcome models.Outcome) []string {
	var system string
	if outcome == models.OutcomeComplete && len(findings) > 3 {
		system = "Based on the research completed, suggest 2-3 follow-up questions " +
			"the user might want to explore. Be specific and actionable."
	} else {
		system = "The research was incomplete. Suggest 2-3 follow-up questions " +
			"that could help get better results."
	}

	summaryFindings := findings
	if len(summaryFindings) > 5 {
		summaryFindings = summaryFindings[:5]
	}
	lines := make([]string, len(summaryFindings))
	for i, f := range summaryFindings {
		lines[i] = truncate(f.Content, 100)
	}

	prompt := fmt.Sprintf("Original query: %s\nResearch outcome: %s\n\nKey findings:\n%s\n\nSuggest 2-3 follow-up questions. Return ONLY the questions, one per line.",
		query, outcome, strings.Join(lines, "\n"))

	response, err := r.reasoner.Complete(ctx, prompt, system)
	if err != nil {
		slog.Warn("Followup suggestion failed", "error", err)
		return nil
	}
	return splitLines(response, 3)
}
