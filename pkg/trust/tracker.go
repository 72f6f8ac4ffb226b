// Package trust tracks per-user execution history and suggests trust
// level upgrades. Suggestions are advisory: the level itself only moves
// through an explicit update call, never automatically.
package trust

import (
	"context"
	"fmt"
	"sync"

	"github.com/loop-symphony/symphony/pkg/models"
)

// Upgrade thresholds. A user earns a suggestion to move up one level
// after a sustained success streak with a high lifetime success rate.
// Downgrades are never suggested.
const (
	autonomousStreak = 5
	autonomousRate   = 0.80
	minimalStreak    = 10
	minimalRate      = 0.90
)

// MetricsStore is the persistence surface the tracker drives.
// *services.ProfileService satisfies it.
type MetricsStore interface {
	TrustMetrics(ctx context.Context, appID, userID string) (*models.TrustMetrics, error)
	RecordTaskTerminal(ctx context.Context, appID, userID string, success bool) (*models.TrustMetrics, error)
	SetTrustLevel(ctx context.Context, appID, userID string, level int) (*models.TrustMetrics, error)
}

// Tracker serializes trust updates per (app, user) so concurrent task
// terminals never interleave a streak reset with a streak extension.
type Tracker struct {
	store MetricsStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a tracker over the given store.
func NewTracker(store MetricsStore) *Tracker {
	return &Tracker{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (t *Tracker) lockFor(appID, userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := appID + "/" + userID
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	return l
}

// Metrics returns the current trust metrics for (app, user), zero-valued
// at level 0 for users that never ran a task.
func (t *Tracker) Metrics(ctx context.Context, appID, userID string) (*models.TrustMetrics, error) {
	return t.store.TrustMetrics(ctx, appID, userID)
}

// RecordTerminal folds a finished task into the metrics. Complete and
// saturated outcomes extend the streak; bounded, inconclusive, and failed
// runs reset it. Cancelled tasks carry no outcome and are skipped: a user
// aborting a task says nothing about execution quality.
func (t *Tracker) RecordTerminal(ctx context.Context, appID, userID string, status models.TaskStatus, outcome models.Outcome) (*models.TrustMetrics, error) {
	if status == models.StatusCancelled {
		return t.store.TrustMetrics(ctx, appID, userID)
	}

	l := t.lockFor(appID, userID)
	l.Lock()
	defer l.Unlock()

	success := status == models.StatusComplete && outcome.IsSuccess()
	metrics, err := t.store.RecordTaskTerminal(ctx, appID, userID, success)
	if err != nil {
		return nil, fmt.Errorf("record task terminal: %w", err)
	}
	return metrics, nil
}

// SetLevel explicitly changes the trust level. This is the only mutation
// path for the level.
func (t *Tracker) SetLevel(ctx context.Context, appID, userID string, level int) (*models.TrustMetrics, error) {
	l := t.lockFor(appID, userID)
	l.Lock()
	defer l.Unlock()
	return t.store.SetTrustLevel(ctx, appID, userID, level)
}

// Suggestion evaluates the metrics against the upgrade thresholds. The
// returned suggestion carries Eligible=false when the user has not earned
// an upgrade yet.
func (t *Tracker) Suggestion(ctx context.Context, appID, userID string) (*models.TrustSuggestion, error) {
	metrics, err := t.store.TrustMetrics(ctx, appID, userID)
	if err != nil {
		return nil, err
	}
	return Evaluate(metrics), nil
}

// SuggestedLevel computes the level the metrics justify. It never returns
// less than the current level.
func SuggestedLevel(m *models.TrustMetrics) int {
	switch m.Level {
	case models.TrustSupervised:
		if m.ConsecutiveSuccess >= autonomousStreak && m.SuccessRate() >= autonomousRate {
			return models.TrustAutonomous
		}
	case models.TrustAutonomous:
		if m.ConsecutiveSuccess >= minimalStreak && m.SuccessRate() >= minimalRate {
			return models.TrustMinimal
		}
	}
	return m.Level
}

// Evaluate builds the suggestion record for a set of metrics.
func Evaluate(m *models.TrustMetrics) *models.TrustSuggestion {
	suggested := SuggestedLevel(m)
	s := &models.TrustSuggestion{
		CurrentLevel:   m.Level,
		SuggestedLevel: suggested,
		Eligible:       suggested > m.Level,
		SuccessRate:    m.SuccessRate(),
	}
	if !s.Eligible {
		s.Reason = "keep going: upgrade thresholds not reached yet"
		return s
	}
	switch suggested {
	case models.TrustAutonomous:
		s.Reason = fmt.Sprintf(
			"%d consecutive successful tasks at a %.0f%% overall success rate; consider enabling autonomous execution",
			m.ConsecutiveSuccess, s.SuccessRate*100)
	case models.TrustMinimal:
		s.Reason = fmt.Sprintf(
			"excellent track record with %d consecutive successes at a %.0f%% success rate; minimal-response mode is available",
			m.ConsecutiveSuccess, s.SuccessRate*100)
	}
	return s
}
