package trust

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

// memoryStore is an in-memory MetricsStore for tracker tests.
type memoryStore struct {
	mu      sync.Mutex
	metrics map[string]*models.TrustMetrics
}

func newMemoryStore() *memoryStore {
	return &memoryStore{metrics: make(map[string]*models.TrustMetrics)}
}

func (s *memoryStore) get(appID, userID string) *models.TrustMetrics {
	key := appID + "/" + userID
	m, ok := s.metrics[key]
	if !ok {
		m = &models.TrustMetrics{AppID: appID, UserID: userID}
		s.metrics[key] = m
	}
	return m
}

func (s *memoryStore) TrustMetrics(_ context.Context, appID, userID string) (*models.TrustMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := *s.get(appID, userID)
	return &m, nil
}

func (s *memoryStore) RecordTaskTerminal(_ context.Context, appID, userID string, success bool) (*models.TrustMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.get(appID, userID)
	m.TotalTasks++
	if success {
		m.SuccessfulTasks++
		m.ConsecutiveSuccess++
	} else {
		m.FailedTasks++
		m.ConsecutiveSuccess = 0
	}
	out := *m
	return &out, nil
}

func (s *memoryStore) SetTrustLevel(_ context.Context, appID, userID string, level int) (*models.TrustMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.get(appID, userID)
	m.Level = level
	out := *m
	return &out, nil
}

func TestRecordTerminal_SuccessExtendsStreak(t *testing.T) {
	tracker := NewTracker(newMemoryStore())
	ctx := context.Background()

	m, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeComplete)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalTasks)
	assert.Equal(t, 1, m.ConsecutiveSuccess)

	m, err = tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeSaturated)
	require.NoError(t, err)
	assert.Equal(t, 2, m.ConsecutiveSuccess)
	assert.Equal(t, 2, m.SuccessfulTasks)
}

func TestRecordTerminal_FailureResetsStreak(t *testing.T) {
	tracker := NewTracker(newMemoryStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeComplete)
		require.NoError(t, err)
	}

	m, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusFailed, "")
	require.NoError(t, err)
	assert.Equal(t, 0, m.ConsecutiveSuccess)
	assert.Equal(t, 1, m.FailedTasks)
	assert.Equal(t, 4, m.TotalTasks)
}

func TestRecordTerminal_BoundedCountsAsFailure(t *testing.T) {
	tracker := NewTracker(newMemoryStore())

	m, err := tracker.RecordTerminal(context.Background(), "app-1", "user-1", models.StatusComplete, models.OutcomeBounded)
	require.NoError(t, err)
	assert.Equal(t, 0, m.ConsecutiveSuccess)
	assert.Equal(t, 1, m.FailedTasks)
}

func TestRecordTerminal_CancelledLeavesMetricsUntouched(t *testing.T) {
	tracker := NewTracker(newMemoryStore())
	ctx := context.Background()

	_, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeComplete)
	require.NoError(t, err)

	m, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusCancelled, "")
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalTasks)
	assert.Equal(t, 1, m.ConsecutiveSuccess)
}

func TestSuggestedLevel(t *testing.T) {
	tests := []struct {
		name    string
		metrics models.TrustMetrics
		want    int
	}{
		{
			name:    "fresh user stays supervised",
			metrics: models.TrustMetrics{Level: models.TrustSupervised},
			want:    models.TrustSupervised,
		},
		{
			name: "five-streak at high rate earns autonomous",
			metrics: models.TrustMetrics{
				Level: models.TrustSupervised, TotalTasks: 5,
				SuccessfulTasks: 5, ConsecutiveSuccess: 5,
			},
			want: models.TrustAutonomous,
		},
		{
			name: "five-streak at low lifetime rate stays supervised",
			metrics: models.TrustMetrics{
				Level: models.TrustSupervised, TotalTasks: 10,
				SuccessfulTasks: 5, ConsecutiveSuccess: 5,
			},
			want: models.TrustSupervised,
		},
		{
			name: "ten-streak at very high rate earns minimal",
			metrics: models.TrustMetrics{
				Level: models.TrustAutonomous, TotalTasks: 20,
				SuccessfulTasks: 19, ConsecutiveSuccess: 10,
			},
			want: models.TrustMinimal,
		},
		{
			name: "nine-streak never earns minimal",
			metrics: models.TrustMetrics{
				Level: models.TrustAutonomous, TotalTasks: 9,
				SuccessfulTasks: 9, ConsecutiveSuccess: 9,
			},
			want: models.TrustAutonomous,
		},
		{
			name: "minimal never moves",
			metrics: models.TrustMetrics{
				Level: models.TrustMinimal, TotalTasks: 100,
				SuccessfulTasks: 100, ConsecutiveSuccess: 100,
			},
			want: models.TrustMinimal,
		},
		{
			name: "supervised cannot skip to minimal",
			metrics: models.TrustMetrics{
				Level: models.TrustSupervised, TotalTasks: 50,
				SuccessfulTasks: 50, ConsecutiveSuccess: 50,
			},
			want: models.TrustAutonomous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestedLevel(&tt.metrics))
		})
	}
}

func TestSuggestion_EligibleAfterStreak(t *testing.T) {
	tracker := NewTracker(newMemoryStore())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeComplete)
		require.NoError(t, err)
	}

	s, err := tracker.Suggestion(ctx, "app-1", "user-1")
	require.NoError(t, err)
	assert.True(t, s.Eligible)
	assert.Equal(t, models.TrustSupervised, s.CurrentLevel)
	assert.Equal(t, models.TrustAutonomous, s.SuggestedLevel)
	assert.NotEmpty(t, s.Reason)
	assert.InDelta(t, 1.0, s.SuccessRate, 1e-9)
}

func TestSuggestion_NotEligibleEarly(t *testing.T) {
	tracker := NewTracker(newMemoryStore())

	s, err := tracker.Suggestion(context.Background(), "app-1", "user-1")
	require.NoError(t, err)
	assert.False(t, s.Eligible)
	assert.Equal(t, s.CurrentLevel, s.SuggestedLevel)
}

func TestSetLevel_OnlyMutationPath(t *testing.T) {
	store := newMemoryStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	// A long streak alone never moves the level.
	for i := 0; i < 20; i++ {
		_, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeComplete)
		require.NoError(t, err)
	}
	m, err := tracker.Metrics(ctx, "app-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.TrustSupervised, m.Level)

	m, err = tracker.SetLevel(ctx, "app-1", "user-1", models.TrustAutonomous)
	require.NoError(t, err)
	assert.Equal(t, models.TrustAutonomous, m.Level)
}

func TestRecordTerminal_ConcurrentUpdatesAreSerialized(t *testing.T) {
	tracker := NewTracker(newMemoryStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tracker.RecordTerminal(ctx, "app-1", "user-1", models.StatusComplete, models.OutcomeComplete)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	m, err := tracker.Metrics(ctx, "app-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 50, m.TotalTasks)
	assert.Equal(t, 50, m.ConsecutiveSuccess)
}
