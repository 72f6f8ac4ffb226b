// Package instrument implements the cognitive loops the conductor routes
// tasks to: note, research, vision, synthesis, and phase-based loop
// specs declared in configuration. Each instrument consumes tools
// resolved from the capability registry and runs its loop to a
// termination decision.
package instrument

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/tools"
)

// ErrUnknownInstrument reports a request for an instrument name the
// factory does not know.
var ErrUnknownInstrument = errors.New("unknown instrument")

// Built-in instrument names. Loop specs declared in configuration extend
// the set the factory knows at runtime.
const (
	NameNote      = "note"
	NameResearch  = "research"
	NameVision    = "vision"
	NameSynthesis = "synthesis"
)

// Instrument is a self-contained cognitive loop. Execute runs the loop
// to a termination decision and returns the terminal result; errors are
// reserved for failures that invalidate the whole run.
type Instrument interface {
	Name() string
	ProcessType() models.ProcessType
	MaxIterations() int
	RequiredCapabilities() []string
	OptionalCapabilities() []string
	Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error)
}

// Reasoner is the text-completion surface instruments need from the
// reasoning tool. *tools.ClaudeClient satisfies it.
type Reasoner interface {
	Name() string
	Complete(ctx context.Context, prompt, system string) (string, error)
}

// VisionReasoner extends Reasoner with multimodal completion.
type VisionReasoner interface {
	Reasoner
	CompleteWithImages(ctx context.Context, prompt string, images []tools.ImageInput, system string) (string, error)
}

// Searcher is the web-search surface instruments need. *tools.TavilyClient
// satisfies it.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) (*tools.SearchResponse, error)
	SearchMany(ctx context.Context, queries []string, maxResultsPerQuery int) ([]*tools.SearchResponse, error)
}

// Tuning bounds an instrument's loop. Zero fields keep the instrument's
// built-in defaults. DeltaThreshold and Window come from the server-wide
// termination block; the factory folds them in.
type Tuning struct {
	MaxIterations       int
	ConfidenceThreshold float64
	DeltaThreshold      float64
	Window              int
}

// syntheticFindingConfidence marks findings recorded in place of a
// failed tool call so the loop can continue.
const syntheticFindingConfidence = 0.1

// syntheticSource tags synthetic findings recorded for recovered tool
// errors.
const syntheticSource = "tool_error"

// emitCheckpoint invokes the injected checkpoint callback when present.
// Checkpoint failures are logged and swallowed; they never interrupt a
// loop.
func emitCheckpoint(ctx context.Context, taskCtx *models.TaskContext, iteration int, phase string, input, output map[string]any, durationMS int64) {
	if taskCtx == nil || taskCtx.CheckpointFn == nil {
		return
	}
	if err := taskCtx.CheckpointFn(ctx, iteration, phase, input, output, durationMS); err != nil {
		slog.Warn("Checkpoint emission failed", "iteration", iteration, "phase", phase, "error", err)
	}
}

// splitLines breaks a model response into trimmed non-empty lines,
// capped at max.
func splitLines(response string, max int) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > max {
		lines = lines[:max]
	}
	return lines
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// findingTexts extracts the content strings of findings.
func findingTexts(findings []models.Finding) []string {
	texts := make([]string, len(findings))
	for i, f := range findings {
		texts[i] = f.Content
	}
	return texts
}

// hasDirectAnswer reports whether any of the findings carries
// answer-grade confidence.
func hasDirectAnswer(findings []models.Finding) bool {
	for _, f := range findings {
		if f.Confidence > 0.8 {
			return true
		}
	}
	return false
}

// uniqueSorted deduplicates and sorts source lists so results are
// stable across runs.
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
