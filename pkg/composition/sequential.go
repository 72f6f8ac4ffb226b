package composition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

// SequentialComposition runs instruments as a pipeline. Each step sees
// the previous step's result through the task context, and an
// inconclusive step halts the pipeline early.
type SequentialComposition struct {
	provider InstrumentProvider
	steps    []models.ArrangementStep
}

// NewSequential validates the step list against the provider and
// returns the pipeline. Unknown instrument names are rejected here so
// a bad arrangement fails before any step runs.
func NewSequential(provider InstrumentProvider, steps []models.ArrangementStep) (*SequentialComposition, error) {
	if len(steps) == 0 {
		return nil, errors.New("sequential composition requires at least one step")
	}
	for i, step := range steps {
		if step.Instrument == "" {
			return nil, fmt.Errorf("composition step %d names no instrument", i+1)
		}
		if !provider.Has(step.Instrument) {
			return nil, fmt.Errorf("%w %q in composition step %d", instrument.ErrUnknownInstrument, step.Instrument, i+1)
		}
	}
	return &SequentialComposition{provider: provider, steps: steps}, nil
}

// Name joins the step instruments with arrows, e.g.
// "research -> synthesis".
func (s *SequentialComposition) Name() string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Instrument
	}
	return strings.Join(names, " -> ")
}

// Execute runs the pipeline. The final result carries the last step's
// findings and summary with iteration counts, durations, and sources
// aggregated across every step that ran.
func (s *SequentialComposition) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	slog.Info("Sequential composition starting", "name", s.Name(), "steps", len(s.steps))

	var (
		last            *models.InstrumentResult
		totalIterations int
		totalDurationMS int64
		sources         []string
	)
	for i, step := range s.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inst, err := s.provider.New(step.Instrument, step.Config)
		if err != nil {
			return nil, fmt.Errorf("build instrument %q for composition step %d: %w", step.Instrument, i+1, err)
		}

		stepCtx := childContext(taskCtx, pipelineInputs(last))

		stepStart := time.Now()
		result, err := inst.Execute(ctx, query, stepCtx)
		if err != nil {
			return nil, fmt.Errorf("composition step %d (%s): %w", i+1, step.Instrument, err)
		}

		totalIterations += result.Metadata.Iterations
		totalDurationMS += result.Metadata.DurationMS
		sources = append(sources, result.Metadata.SourcesConsulted...)
		last = result

		emitCheckpoint(ctx, taskCtx, i+1, step.Instrument,
			map[string]any{"instrument": step.Instrument, "query": query},
			stepOutput(result),
			time.Since(stepStart).Milliseconds())
		slog.Info("Composition step complete",
			"step", i+1,
			"instrument", step.Instrument,
			"outcome", result.Outcome,
			"confidence", result.Confidence)

		if result.Outcome == models.OutcomeInconclusive {
			slog.Info("Composition halting early on inconclusive step",
				"step", i+1, "instrument", step.Instrument)
			break
		}
	}

	return &models.InstrumentResult{
		Findings:           last.Findings,
		Summary:            last.Summary,
		Confidence:         last.Confidence,
		Outcome:            last.Outcome,
		Discrepancy:        last.Discrepancy,
		SuggestedFollowups: last.SuggestedFollowups,
		Metadata:           consciousMetadata(s.Name(), totalIterations, totalDurationMS, sources),
	}, nil
}

// pipelineInputs wraps the previous step's result as the next step's
// input. The first step receives none.
func pipelineInputs(last *models.InstrumentResult) []models.InstrumentResult {
	if last == nil {
		return nil
	}
	return []models.InstrumentResult{*last}
}
