package composition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

// ParallelComposition launches instrument branches concurrently and
// fans the successful results into a merge instrument. Branch failures
// degrade the run instead of aborting it: the merge sees whatever
// succeeded, and the failures surface in the discrepancy.
type ParallelComposition struct {
	provider InstrumentProvider
	branches []models.ArrangementStep
	merge    string
	timeout  time.Duration
}

// NewParallel validates every branch and the merge instrument against
// the provider. An empty merge name defaults to synthesis; a zero
// timeout leaves branches unbounded apart from the caller's context.
func NewParallel(provider InstrumentProvider, branches []models.ArrangementStep, merge string, timeout time.Duration) (*ParallelComposition, error) {
	if len(branches) == 0 {
		return nil, errors.New("parallel composition requires at least one branch")
	}
	if merge == "" {
		merge = defaultMergeInstrument
	}
	for i, branch := range branches {
		if branch.Instrument == "" {
			return nil, fmt.Errorf("parallel branch %d names no instrument", i+1)
		}
		if !provider.Has(branch.Instrument) {
			return nil, fmt.Errorf("%w %q in parallel composition", instrument.ErrUnknownInstrument, branch.Instrument)
		}
	}
	if !provider.Has(merge) {
		return nil, fmt.Errorf("%w %q as parallel merge instrument", instrument.ErrUnknownInstrument, merge)
	}
	return &ParallelComposition{
		provider: provider,
		branches: branches,
		merge:    merge,
		timeout:  timeout,
	}, nil
}

// Name describes the fan-out shape, e.g.
// "parallel(research | note) -> synthesis".
func (p *ParallelComposition) Name() string {
	names := make([]string, len(p.branches))
	for i, branch := range p.branches {
		names[i] = branch.Instrument
	}
	return fmt.Sprintf("parallel(%s) -> %s", strings.Join(names, " | "), p.merge)
}

// Execute fans the query out to every branch, waits for all of them,
// and merges the successes. All branches failing yields an inconclusive
// result rather than an error.
func (p *ParallelComposition) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Parallel composition starting", "name", p.Name(), "branches", len(p.branches))

	// Resolve every instrument before launching anything so capability
	// gaps fail the whole composition, not one branch mid-flight.
	instruments := make([]instrument.Instrument, len(p.branches))
	for i, branch := range p.branches {
		inst, err := p.provider.New(branch.Instrument, branch.Config)
		if err != nil {
			return nil, fmt.Errorf("build parallel branch %q: %w", branch.Instrument, err)
		}
		instruments[i] = inst
	}
	merger, err := p.provider.New(p.merge, nil)
	if err != nil {
		return nil, fmt.Errorf("build merge instrument %q: %w", p.merge, err)
	}

	branchCtx := childContext(taskCtx, nil)

	results := make(chan indexedBranchResult, len(p.branches))
	var wg sync.WaitGroup
	for i := range p.branches {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			result, err := p.runBranch(ctx, instruments[idx], query, branchCtx)
			results <- indexedBranchResult{index: idx, result: result, err: err}
		}(i)
	}
	wg.Wait()
	close(results)

	// Branch timeouts are per-branch failures, but cancellation of the
	// task itself ends the whole composition.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		successes       []models.InstrumentResult
		failures        []string
		totalIterations int
		sources         []string
	)
	for _, br := range collectBranches(results) {
		name := p.branches[br.index].Instrument
		if br.err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, br.err))
			slog.Warn("Parallel branch failed", "branch", name, "error", br.err)
			emitCheckpoint(ctx, taskCtx, br.index+1, name,
				map[string]any{"instrument": name, "query": query},
				map[string]any{"error": br.err.Error()}, 0)
			continue
		}
		successes = append(successes, *br.result)
		totalIterations += br.result.Metadata.Iterations
		sources = append(sources, br.result.Metadata.SourcesConsulted...)
		emitCheckpoint(ctx, taskCtx, br.index+1, name,
			map[string]any{"instrument": name, "query": query},
			stepOutput(br.result), br.result.Metadata.DurationMS)
	}
	failureNote := strings.Join(failures, "; ")

	if len(successes) == 0 {
		slog.Info("All parallel branches failed", "branches", len(p.branches))
		return &models.InstrumentResult{
			Findings:    []models.Finding{},
			Summary:     fmt.Sprintf("All %d parallel branches failed", len(p.branches)),
			Confidence:  0,
			Outcome:     models.OutcomeInconclusive,
			Discrepancy: failureNote,
			Metadata:    consciousMetadata(p.Name(), 0, time.Since(start).Milliseconds(), nil),
		}, nil
	}

	slog.Info("Merging parallel branches",
		"succeeded", len(successes),
		"branches", len(p.branches),
		"merge", p.merge)

	mergeStart := time.Now()
	mergeResult, err := merger.Execute(ctx, query, childContext(taskCtx, successes))
	if err != nil {
		return nil, fmt.Errorf("merge parallel branches via %q: %w", p.merge, err)
	}
	totalIterations += mergeResult.Metadata.Iterations
	sources = append(sources, mergeResult.Metadata.SourcesConsulted...)
	emitCheckpoint(ctx, taskCtx, len(p.branches)+1, p.merge,
		map[string]any{"instrument": p.merge, "query": query},
		stepOutput(mergeResult),
		time.Since(mergeStart).Milliseconds())

	return &models.InstrumentResult{
		Findings:           mergeResult.Findings,
		Summary:            mergeResult.Summary,
		Confidence:         mergeResult.Confidence,
		Outcome:            mergeResult.Outcome,
		Discrepancy:        combineDiscrepancy("Branch failures", failureNote, mergeResult.Discrepancy),
		SuggestedFollowups: mergeResult.SuggestedFollowups,
		Metadata:           consciousMetadata(p.Name(), totalIterations, time.Since(start).Milliseconds(), sources),
	}, nil
}

// runBranch executes one branch under the per-branch timeout.
func (p *ParallelComposition) runBranch(ctx context.Context, inst instrument.Instrument, query string, branchCtx *models.TaskContext) (*models.InstrumentResult, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return inst.Execute(ctx, query, branchCtx)
}

// combineDiscrepancy prefixes the merge result's discrepancy with the
// branch failure note when branches were lost.
func combineDiscrepancy(label, failureNote, mergeDiscrepancy string) string {
	if failureNote == "" {
		return mergeDiscrepancy
	}
	warning := label + ": " + failureNote
	if mergeDiscrepancy == "" {
		return warning
	}
	return warning + "; " + mergeDiscrepancy
}
