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

// CrossRoomComposition fans sub-queries out across rooms and merges
// the results. Each branch names a target room, or leaves it empty for
// the runner to pick one. Because the server registers itself as a
// room, local and remote branches are handled uniformly; room failures
// degrade the run the same way parallel branch failures do.
type CrossRoomComposition struct {
	provider InstrumentProvider
	run      BranchRunner
	branches []models.ArrangementStep
	merge    string
	timeout  time.Duration
}

// NewCrossRoom validates the branches and the merge instrument. Every
// branch needs a sub-query; a zero timeout takes the 120s default.
func NewCrossRoom(provider InstrumentProvider, run BranchRunner, branches []models.ArrangementStep, merge string, timeout time.Duration) (*CrossRoomComposition, error) {
	if len(branches) == 0 {
		return nil, errors.New("cross-room composition requires at least one branch")
	}
	if run == nil {
		return nil, errors.New("cross-room composition requires a branch runner")
	}
	for i, branch := range branches {
		if branch.SubQuery == "" {
			return nil, fmt.Errorf("cross-room branch %d has no sub-query", i+1)
		}
	}
	if merge == "" {
		merge = defaultMergeInstrument
	}
	if !provider.Has(merge) {
		return nil, fmt.Errorf("%w %q as cross-room merge instrument", instrument.ErrUnknownInstrument, merge)
	}
	if timeout <= 0 {
		timeout = defaultCrossRoomTimeout
	}
	return &CrossRoomComposition{
		provider: provider,
		run:      run,
		branches: branches,
		merge:    merge,
		timeout:  timeout,
	}, nil
}

// Name describes the branches by room and clipped sub-query, e.g.
// "cross_room(falcon:check the sensors | auto:price history) -> synthesis".
func (c *CrossRoomComposition) Name() string {
	descs := make([]string, len(c.branches))
	for i, branch := range c.branches {
		room := branch.RoomID
		if room == "" {
			room = "auto"
		}
		descs[i] = room + ":" + truncate(branch.SubQuery, 30)
	}
	return fmt.Sprintf("cross_room(%s) -> %s", strings.Join(descs, " | "), c.merge)
}

// Execute delegates every branch concurrently, then merges whatever
// came back. A single successful branch with no failures is returned
// directly; all branches failing yields an inconclusive result.
func (c *CrossRoomComposition) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Cross-room composition starting", "name", c.Name(), "branches", len(c.branches))

	branchCtx := childContext(taskCtx, nil)

	results := make(chan indexedBranchResult, len(c.branches))
	var wg sync.WaitGroup
	for i, branch := range c.branches {
		wg.Add(1)
		go func(idx int, branch models.ArrangementStep) {
			defer wg.Done()
			result, err := c.runBranch(ctx, branch, branchCtx)
			results <- indexedBranchResult{index: idx, result: result, err: err}
		}(i, branch)
	}
	wg.Wait()
	close(results)

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
		label := c.branchLabel(br.index)
		input := map[string]any{
			"room_id":   label,
			"sub_query": c.branches[br.index].SubQuery,
		}
		if br.err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", label, br.err))
			slog.Warn("Cross-room branch failed", "branch", label, "error", br.err)
			emitCheckpoint(ctx, taskCtx, br.index+1, label, input,
				map[string]any{"error": br.err.Error()}, 0)
			continue
		}
		successes = append(successes, *br.result)
		totalIterations += br.result.Metadata.Iterations
		sources = append(sources, br.result.Metadata.SourcesConsulted...)
		emitCheckpoint(ctx, taskCtx, br.index+1, label, input,
			stepOutput(br.result), br.result.Metadata.DurationMS)
	}
	failureNote := strings.Join(failures, "; ")

	if len(successes) == 0 {
		slog.Info("All cross-room branches failed", "branches", len(c.branches))
		return &models.InstrumentResult{
			Findings:    []models.Finding{},
			Summary:     fmt.Sprintf("All %d cross-room branches failed", len(c.branches)),
			Confidence:  0,
			Outcome:     models.OutcomeInconclusive,
			Discrepancy: failureNote,
			Metadata:    consciousMetadata(c.Name(), 0, time.Since(start).Milliseconds(), nil),
		}, nil
	}

	if len(successes) == 1 && failureNote == "" {
		only := successes[0]
		only.Metadata = consciousMetadata(c.Name(), totalIterations, time.Since(start).Milliseconds(), sources)
		return &only, nil
	}

	slog.Info("Merging cross-room branches",
		"succeeded", len(successes),
		"branches", len(c.branches),
		"merge", c.merge)

	merger, err := c.provider.New(c.merge, nil)
	if err != nil {
		return nil, fmt.Errorf("build merge instrument %q: %w", c.merge, err)
	}
	mergeStart := time.Now()
	mergeResult, err := merger.Execute(ctx, query, childContext(taskCtx, successes))
	if err != nil {
		return nil, fmt.Errorf("merge cross-room branches via %q: %w", c.merge, err)
	}
	totalIterations += mergeResult.Metadata.Iterations
	sources = append(sources, mergeResult.Metadata.SourcesConsulted...)
	emitCheckpoint(ctx, taskCtx, len(c.branches)+1, c.merge,
		map[string]any{"instrument": c.merge, "query": query},
		stepOutput(mergeResult),
		time.Since(mergeStart).Milliseconds())

	return &models.InstrumentResult{
		Findings:           mergeResult.Findings,
		Summary:            mergeResult.Summary,
		Confidence:         mergeResult.Confidence,
		Outcome:            mergeResult.Outcome,
		Discrepancy:        combineDiscrepancy("Room failures", failureNote, mergeResult.Discrepancy),
		SuggestedFollowups: mergeResult.SuggestedFollowups,
		Metadata:           consciousMetadata(c.Name(), totalIterations, time.Since(start).Milliseconds(), sources),
	}, nil
}

// runBranch hands one branch to the runner under the per-branch
// timeout. The runner owns room resolution, delegation, and local
// fallback.
func (c *CrossRoomComposition) runBranch(ctx context.Context, branch models.ArrangementStep, branchCtx *models.TaskContext) (*models.InstrumentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.run(ctx, branch.RoomID, branch.SubQuery, branchCtx)
}

// branchLabel identifies a branch in failure notes and checkpoints by
// its room, or by position when the room is auto-selected.
func (c *CrossRoomComposition) branchLabel(index int) string {
	if room := c.branches[index].RoomID; room != "" {
		return room
	}
	return fmt.Sprintf("branch-%d", index+1)
}
