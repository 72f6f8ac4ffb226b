// Package composition implements multi-instrument execution plans:
// sequential pipelines, parallel fan-out with a merge step, and
// cross-room fan-out that delegates branches to other rooms. All three
// variants run with process type conscious and aggregate iteration and
// source metadata across their steps.
package composition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

// defaultMergeInstrument fans branch results back in when the
// arrangement does not name a merge instrument.
const defaultMergeInstrument = "synthesis"

// defaultCrossRoomTimeout bounds each cross-room branch, delegation
// included.
const defaultCrossRoomTimeout = 120 * time.Second

// Composition is a multi-instrument execution plan. Name is the
// human-readable description recorded as the result's instrument_used.
type Composition interface {
	Name() string
	Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error)
}

// InstrumentProvider builds instruments by name with optional per-step
// overrides. Each call returns a fresh instance, so overrides applied
// for one step are never visible to sibling steps.
type InstrumentProvider interface {
	Has(name string) bool
	New(name string, overrides *models.InstrumentOverrides) (instrument.Instrument, error)
}

var _ InstrumentProvider = (*instrument.Factory)(nil)

// BranchRunner executes one cross-room branch on the named room. An
// empty roomID lets the runner pick the best room for the sub-query.
// The conductor provides the production implementation on top of the
// room registry and the delegation client.
type BranchRunner func(ctx context.Context, roomID, subQuery string, taskCtx *models.TaskContext) (*models.InstrumentResult, error)

// FromSpec builds the composition variant an arrangement describes. The
// runner is consulted only for cross-room arrangements; branchTimeout
// bounds parallel and cross-room branches (zero keeps the per-variant
// default).
func FromSpec(spec *models.ArrangementSpec, provider InstrumentProvider, runner BranchRunner, branchTimeout time.Duration) (Composition, error) {
	if spec == nil {
		return nil, errors.New("arrangement spec is nil")
	}
	switch spec.Kind {
	case models.ArrangementSequential:
		return NewSequential(provider, spec.Steps)
	case models.ArrangementParallel:
		return NewParallel(provider, spec.Steps, spec.Merge, branchTimeout)
	case models.ArrangementCrossRoom:
		return NewCrossRoom(provider, runner, spec.Steps, spec.Merge, branchTimeout)
	default:
		return nil, fmt.Errorf("unknown arrangement kind %q", spec.Kind)
	}
}

// indexedBranchResult pairs a branch outcome with its launch index so
// concurrent fan-out can be reported in declaration order.
type indexedBranchResult struct {
	index  int
	result *models.InstrumentResult
	err    error
}

// collectBranches drains the fan-out channel and returns the branch
// outcomes sorted by launch index.
func collectBranches(ch <-chan indexedBranchResult) []indexedBranchResult {
	var indexed []indexedBranchResult
	for ibr := range ch {
		indexed = append(indexed, ibr)
	}
	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].index < indexed[j].index
	})
	return indexed
}

// emitCheckpoint invokes the injected checkpoint callback when present.
// Compositions number checkpoints by 1-based step position and strip
// the callback from child contexts, so nested instrument iterations can
// never collide with step records. Failures are logged and swallowed.
func emitCheckpoint(ctx context.Context, taskCtx *models.TaskContext, step int, phase string, input, output map[string]any, durationMS int64) {
	if taskCtx == nil || taskCtx.CheckpointFn == nil {
		return
	}
	if err := taskCtx.CheckpointFn(ctx, step, phase, input, output, durationMS); err != nil {
		slog.Warn("Checkpoint emission failed", "step", step, "phase", phase, "error", err)
	}
}

// stepOutput summarizes one step result for its checkpoint record.
func stepOutput(result *models.InstrumentResult) map[string]any {
	return map[string]any{
		"outcome":    string(result.Outcome),
		"confidence": result.Confidence,
		"iterations": result.Metadata.Iterations,
		"findings":   len(result.Findings),
	}
}

// childContext clones the base context for a step or branch. The
// checkpoint callback never flows into children; the composition emits
// its own step-level checkpoints instead.
func childContext(taskCtx *models.TaskContext, inputResults []models.InstrumentResult) *models.TaskContext {
	child := taskCtx.Clone(inputResults)
	child.CheckpointFn = nil
	return child
}

// consciousMetadata stamps the aggregate execution metadata all
// composition results carry.
func consciousMetadata(name string, iterations int, durationMS int64, sources []string) models.ExecutionMetadata {
	return models.ExecutionMetadata{
		InstrumentUsed:   name,
		Iterations:       iterations,
		DurationMS:       durationMS,
		SourcesConsulted: uniqueSorted(sources),
		ProcessType:      models.ProcessConscious,
	}
}

// uniqueSorted deduplicates and sorts source lists so aggregated results
// are stable across runs.
func uniqueSorted(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
