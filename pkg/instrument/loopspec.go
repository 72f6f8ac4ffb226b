package instrument

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
)

const defaultLoopIterations = 10

// PhaseAction selects how a loop phase runs.
type PhaseAction string

const (
	// PhaseActionPrompt sends the phase prompt to the reasoning tool.
	PhaseActionPrompt PhaseAction = "prompt"
	// PhaseActionInstrument runs a named instrument with the findings so
	// far as its input results.
	PhaseActionInstrument PhaseAction = "instrument"
	// PhaseActionSpawn submits a sub-task built from the phase
	// description.
	PhaseActionSpawn PhaseAction = "spawn"
)

// LoopPhase is one step of a declared loop.
type LoopPhase struct {
	Name        string
	Description string
	Action      PhaseAction
	Instrument  string
	Prompt      string
}

// LoopSpec declares a phase-based loop registered as an instrument
// under its own name.
type LoopSpec struct {
	Name                 string
	Description          string
	Phases               []LoopPhase
	MaxTotalIterations   int
	RequiredCapabilities []string
}

// InstrumentResolver builds the instrument a phase names. The factory
// provides it so loop specs can run builtins without the loop package
// depending on construction details.
type InstrumentResolver func(name string) (Instrument, error)

// LoopInstrument executes a declared loop spec: phases run once in
// order, each contributing findings and iterations, until the spec is
// exhausted or the shared iteration budget runs out.
type LoopInstrument struct {
	spec     LoopSpec
	reasoner Reasoner
	resolve  InstrumentResolver
}

// NewLoopInstrument creates an instrument from a loop spec, applying
// the iteration budget and capability defaults.
func NewLoopInstrument(spec LoopSpec, reasoner Reasoner, resolve InstrumentResolver) *LoopInstrument {
	if spec.MaxTotalIterations <= 0 {
		spec.MaxTotalIterations = defaultLoopIterations
	}
	if len(spec.RequiredCapabilities) == 0 {
		spec.RequiredCapabilities = []string{"reasoning"}
	}
	return &LoopInstrument{spec: spec, reasoner: reasoner, resolve: resolve}
}

func (l *LoopInstrument) Name() string                    { return l.spec.Name }
func (l *LoopInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }
func (l *LoopInstrument) MaxIterations() int              { return l.spec.MaxTotalIterations }
func (l *LoopInstrument) RequiredCapabilities() []string  { return l.spec.RequiredCapabilities }
func (l *LoopInstrument) OptionalCapabilities() []string  { return nil }

// Execute runs the phases in order. A phase error or an inconclusive
// phase result halts the loop with what was gathered so far; the final
// outcome grades how the loop ended.
func (l *LoopInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Executing loop", "loop", l.spec.Name, "phases", len(l.spec.Phases))

	var (
		findings        []models.Finding
		sources         []string
		totalIterations int
		lastSummary     string
		lastConfidence  float64
	)

	for i, phase := range l.spec.Phases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slog.Info("Loop phase", "loop", l.spec.Name, "phase", phase.Name, "position", i+1, "total", len(l.spec.Phases))

		if totalIterations >= l.spec.MaxTotalIterations {
			slog.Info("Loop iteration budget reached", "loop", l.spec.Name, "budget", l.spec.MaxTotalIterations, "skipped_from", phase.Name)
			break
		}

		phaseStart := time.Now()
		result, err := l.runPhase(ctx, phase, query, taskCtx, findings)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			var depthErr *models.DepthExceededError
			if errors.As(err, &depthErr) {
				slog.Warn("Loop spawn depth limit reached",
					"loop", l.spec.Name, "phase", phase.Name, "max_depth", depthErr.MaxDepth)
				return &models.InstrumentResult{
					Findings:    findings,
					Summary:     fmt.Sprintf("Loop stopped at phase '%s': spawn depth limit reached", phase.Name),
					Confidence:  lastConfidence,
					Outcome:     models.OutcomeBounded,
					Discrepancy: fmt.Sprintf("Spawn depth limit reached (max %d)", depthErr.MaxDepth),
					Metadata:    l.metadata(totalIterations, start, sources),
				}, nil
			}
			slog.Error("Loop phase failed", "loop", l.spec.Name, "phase", phase.Name, "error", err)
			return &models.InstrumentResult{
				Findings:    findings,
				Summary:     fmt.Sprintf("Loop failed at phase '%s': %v", phase.Name, err),
				Confidence:  0.3,
				Outcome:     models.OutcomeInconclusive,
				Discrepancy: fmt.Sprintf("Phase '%s' error: %v", phase.Name, err),
				Metadata:    l.metadata(totalIterations, start, sources),
			}, nil
		}

		findings = append(findings, result.Findings...)
		sources = append(sources, result.Metadata.SourcesConsulted...)
		totalIterations += result.Metadata.Iterations
		lastSummary = result.Summary
		lastConfidence = result.Confidence

		emitCheckpoint(ctx, taskCtx, i+1, phase.Name,
			map[string]any{"action": string(phaseAction(phase)), "query": query},
			map[string]any{
				"new_findings":     len(result.Findings),
				"total_iterations": totalIterations,
				"confidence":       result.Confidence,
				"outcome":          string(result.Outcome),
			},
			time.Since(phaseStart).Milliseconds())

		if result.Outcome == models.OutcomeInconclusive {
			slog.Info("Loop terminating early", "loop", l.spec.Name, "phase", phase.Name)
			return &models.InstrumentResult{
				Findings:    findings,
				Summary:     fmt.Sprintf("Loop terminated early at phase '%s': %s", phase.Name, result.Summary),
				Confidence:  lastConfidence,
				Outcome:     models.OutcomeInconclusive,
				Discrepancy: result.Discrepancy,
				Metadata:    l.metadata(totalIterations, start, sources),
			}, nil
		}
	}

	outcome := models.OutcomeSaturated
	switch {
	case totalIterations >= l.spec.MaxTotalIterations:
		outcome = models.OutcomeBounded
	case lastConfidence >= 0.8:
		outcome = models.OutcomeComplete
	}

	return &models.InstrumentResult{
		Findings:   findings,
		Summary:    lastSummary,
		Confidence: lastConfidence,
		Outcome:    outcome,
		Metadata:   l.metadata(totalIterations, start, sources),
	}, nil
}

func (l *LoopInstrument) metadata(iterations int, start time.Time, sources []string) models.ExecutionMetadata {
	return models.ExecutionMetadata{
		InstrumentUsed:   l.spec.Name,
		Iterations:       iterations,
		DurationMS:       time.Since(start).Milliseconds(),
		SourcesConsulted: uniqueSorted(sources),
		ProcessType:      models.ProcessSemiAutonomic,
	}
}

func (l *LoopInstrument) runPhase(ctx context.Context, phase LoopPhase, query string, taskCtx *models.TaskContext, previous []models.Finding) (*models.InstrumentResult, error) {
	switch phaseAction(phase) {
	case PhaseActionPrompt:
		return l.runPromptPhase(ctx, phase, query, previous)
	case PhaseActionInstrument:
		return l.runInstrumentPhase(ctx, phase, query, taskCtx, previous)
	case PhaseActionSpawn:
		return l.runSpawnPhase(ctx, phase, query, taskCtx)
	default:
		return nil, fmt.Errorf("unknown phase action %q", phase.Action)
	}
}

// runPromptPhase expands the phase prompt template and records the
// response as a single finding attributed to the phase.
func (l *LoopInstrument) runPromptPhase(ctx context.Context, phase LoopPhase, query string, previous []models.Finding) (*models.InstrumentResult, error) {
	if l.reasoner == nil {
		return nil, errors.New("no reasoning tool available")
	}

	findingsText := "No previous findings"
	if len(previous) > 0 {
		lines := make([]string, len(previous))
		for i, f := range previous {
			lines[i] = fmt.Sprintf("- %s (confidence: %v)", f.Content, f.Confidence)
		}
		findingsText = strings.Join(lines, "\n")
	}

	prompt := strings.NewReplacer(
		"{query}", query,
		"{previous_findings}", findingsText,
		"{phase_name}", phase.Name,
	).Replace(phase.Prompt)
	system := fmt.Sprintf("You are executing the '%s' phase. Be thorough and specific.", phase.Name)

	response, err := l.reasoner.Complete(ctx, prompt, system)
	if err != nil {
		return nil, err
	}

	source := "phase:" + phase.Name
	return &models.InstrumentResult{
		Findings:   []models.Finding{models.NewFinding(fmt.Sprintf("[%s] %s", phase.Name, response), source, 0.7)},
		Summary:    truncate(response, 500),
		Confidence: 0.7,
		Outcome:    models.OutcomeComplete,
		Metadata: models.ExecutionMetadata{
			Iterations:       1,
			SourcesConsulted: []string{source},
		},
	}, nil
}

// runInstrumentPhase hands the accumulated findings to the named
// instrument as a single input result. The nested instrument runs
// without a checkpoint callback so its iteration numbering cannot
// collide with the loop's phase checkpoints.
func (l *LoopInstrument) runInstrumentPhase(ctx context.Context, phase LoopPhase, query string, taskCtx *models.TaskContext, previous []models.Finding) (*models.InstrumentResult, error) {
	if l.resolve == nil {
		return nil, errors.New("no instrument resolver configured")
	}
	inst, err := l.resolve(phase.Instrument)
	if err != nil {
		return nil, err
	}

	var inputResults []models.InstrumentResult
	if len(previous) > 0 {
		inputResults = []models.InstrumentResult{{Findings: previous, Confidence: 0.5}}
	}
	phaseCtx := taskCtx.Clone(inputResults)
	phaseCtx.CheckpointFn = nil

	return inst.Execute(ctx, query, phaseCtx)
}

// runSpawnPhase submits a sub-task built from the phase description
// through the conductor's spawn callback.
func (l *LoopInstrument) runSpawnPhase(ctx context.Context, phase LoopPhase, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	if taskCtx == nil || taskCtx.SpawnFn == nil {
		return nil, errors.New("spawn function not available")
	}
	subQuery := fmt.Sprintf("%s: %s", phase.Description, query)
	return taskCtx.SpawnFn(ctx, subQuery, taskCtx)
}

func phaseAction(phase LoopPhase) PhaseAction {
	if phase.Action == "" {
		return PhaseActionPrompt
	}
	return phase.Action
}
