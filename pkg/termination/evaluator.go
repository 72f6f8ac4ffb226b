// Package termination decides when an instrument's loop should stop and
// with which outcome.
package termination

import (
	"fmt"
	"math"

	"github.com/loop-symphony/symphony/pkg/models"
)

// Severity grades a detected contradiction.
type Severity string

const (
	SeverityMinor       Severity = "minor"
	SeverityModerate    Severity = "moderate"
	SeveritySignificant Severity = "significant"
)

func (s Severity) rank() int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySignificant:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

// ParseSeverity normalizes a severity string, defaulting to moderate for
// anything unrecognized.
func ParseSeverity(raw string) Severity {
	switch Severity(raw) {
	case SeverityMinor, SeverityModerate, SeveritySignificant:
		return Severity(raw)
	default:
		return SeverityModerate
	}
}

// Contradiction is an unresolved conflict among findings.
type Contradiction struct {
	Description string
	Severity    Severity
}

// Snapshot is the loop state the evaluator inspects after an iteration.
// ConfidenceHistory holds one entry per completed iteration;
// SourceCounts holds the cumulative distinct source count at the same
// points.
type Snapshot struct {
	Iteration     int
	MaxIterations int

	ConfidenceHistory []float64
	SourceCounts      []int

	Contradiction *Contradiction
}

// Decision is the evaluator's verdict. Outcome is set only when Stop is
// true.
type Decision struct {
	Stop    bool
	Outcome models.Outcome
	Reason  string
}

// Config tunes the evaluator. Zero fields fall back to defaults.
type Config struct {
	// ConfidenceThreshold stops the loop as complete once reached.
	ConfidenceThreshold float64
	// DeltaThreshold is the per-iteration confidence movement below
	// which the loop counts as plateaued.
	DeltaThreshold float64
	// Window is how many consecutive plateaued transitions constitute
	// saturation.
	Window int
	// SeverityThreshold is the contradiction grade that forces an
	// inconclusive stop.
	SeverityThreshold Severity
}

const (
	defaultConfidenceThreshold = 0.85
	defaultDeltaThreshold      = 0.02
	defaultWindow              = 2
)

// Evaluator applies the stop rules in fixed order: threshold confidence
// wins over saturation, saturation wins over the iteration bound, and an
// over-threshold contradiction is checked last before continuing.
type Evaluator struct {
	confidenceThreshold float64
	deltaThreshold      float64
	window              int
	severityThreshold   Severity
}

// NewEvaluator creates an evaluator from config.
func NewEvaluator(cfg Config) *Evaluator {
	e := &Evaluator{
		confidenceThreshold: cfg.ConfidenceThreshold,
		deltaThreshold:      cfg.DeltaThreshold,
		window:              cfg.Window,
		severityThreshold:   cfg.SeverityThreshold,
	}
	if e.confidenceThreshold <= 0 {
		e.confidenceThreshold = defaultConfidenceThreshold
	}
	if e.deltaThreshold <= 0 {
		e.deltaThreshold = defaultDeltaThreshold
	}
	if e.window <= 0 {
		e.window = defaultWindow
	}
	if e.severityThreshold.rank() == 0 {
		e.severityThreshold = SeveritySignificant
	}
	return e
}

// ConfidenceThreshold returns the configured stop threshold.
func (e *Evaluator) ConfidenceThreshold() float64 { return e.confidenceThreshold }

// Evaluate returns the verdict for the iteration the snapshot describes.
func (e *Evaluator) Evaluate(snap Snapshot) Decision {
	history := snap.ConfidenceHistory

	// Rule 1: confidence reached the threshold.
	if len(history) > 0 {
		current := history[len(history)-1]
		if current >= e.confidenceThreshold {
			return Decision{
				Stop:    true,
				Outcome: models.OutcomeComplete,
				Reason:  fmt.Sprintf("Confidence %.2f reached threshold %.2f", current, e.confidenceThreshold),
			}
		}
	}

	// Rule 2: confidence plateaued across the window with no new
	// distinct sources over the same span.
	if e.plateaued(history) && !e.gainedSources(snap.SourceCounts) {
		return Decision{
			Stop:    true,
			Outcome: models.OutcomeSaturated,
			Reason:  fmt.Sprintf("Confidence plateaued over last %d iterations with no new sources", e.window),
		}
	}

	// Rule 3: iteration bound.
	if snap.Iteration >= snap.MaxIterations {
		return Decision{
			Stop:    true,
			Outcome: models.OutcomeBounded,
			Reason:  fmt.Sprintf("Reached maximum iterations (%d)", snap.MaxIterations),
		}
	}

	// Rule 4: contradiction beyond the severity threshold.
	if c := snap.Contradiction; c != nil && c.Severity.AtLeast(e.severityThreshold) {
		return Decision{
			Stop:    true,
			Outcome: models.OutcomeInconclusive,
			Reason:  fmt.Sprintf("Unresolved %s contradiction: %s", c.Severity, c.Description),
		}
	}

	return Decision{Reason: "Continue"}
}

// plateaued reports whether every transition across the last window
// moved confidence by less than the delta threshold. Requires window+1
// history entries.
func (e *Evaluator) plateaued(history []float64) bool {
	if len(history) < e.window+1 {
		return false
	}
	for i := len(history) - e.window; i < len(history); i++ {
		if math.Abs(history[i]-history[i-1]) >= e.deltaThreshold {
			return false
		}
	}
	return true
}

// gainedSources reports whether the distinct source count grew over the
// last window. Missing counts read as gained, which keeps rule 2 from
// firing on incomplete data.
func (e *Evaluator) gainedSources(counts []int) bool {
	if len(counts) < e.window+1 {
		return true
	}
	return counts[len(counts)-1] > counts[len(counts)-1-e.window]
}

// CalculateConfidence scores the research state from finding volume,
// source diversity, whether a direct answer surfaced, and the findings'
// own confidence.
func (e *Evaluator) CalculateConfidence(findings []models.Finding, sourcesCount int, hasAnswer bool) float64 {
	if len(findings) == 0 {
		return 0.0
	}

	base := 0.3
	findingBoost := math.Min(0.2, float64(len(findings))*0.05)
	sourceBoost := math.Min(0.2, float64(sourcesCount)*0.04)
	answerBoost := 0.0
	if hasAnswer {
		answerBoost = 0.2
	}

	var total float64
	for _, f := range findings {
		total += f.Confidence
	}
	avgFindingConfidence := total / float64(len(findings))

	return math.Min(1.0, base+findingBoost+sourceBoost+answerBoost+avgFindingConfidence*0.1)
}
