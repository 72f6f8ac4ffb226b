package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/models"
)

func TestTrustMetrics(t *testing.T) {
	env := newTestEnv(t)

	t.Run("new users start supervised with zeroed counters", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, env.authedAs("fresh"))
		require.Equal(t, http.StatusOK, rec.Code)

		var metrics models.TrustMetrics
		decodeJSON(t, rec, &metrics)
		assert.Equal(t, models.TrustSupervised, metrics.Level)
		assert.Equal(t, "fresh", metrics.UserID)
		assert.Zero(t, metrics.TotalTasks)
		assert.Zero(t, metrics.SuccessfulTasks)
		assert.Zero(t, metrics.ConsecutiveSuccess)
	})

	t.Run("counts terminal outcomes per user", func(t *testing.T) {
		headers := env.authedAs("maya")
		env.submitAndWait(t, models.TaskRequest{
			Query:       "summarize the release notes",
			Preferences: autonomous(),
		}, headers, env.app.ID, task.StatusComplete)
		env.submitAndWait(t, models.TaskRequest{
			Query:       "[fail] probe the broken integration",
			Preferences: autonomous(),
		}, headers, env.app.ID, task.StatusFailed)

		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var metrics models.TrustMetrics
		decodeJSON(t, rec, &metrics)
		assert.Equal(t, 2, metrics.TotalTasks)
		assert.Equal(t, 1, metrics.SuccessfulTasks)
		assert.Equal(t, 1, metrics.FailedTasks)
		assert.Zero(t, metrics.ConsecutiveSuccess, "a failure resets the streak")
		require.NotNil(t, metrics.LastTaskAt)
	})
}

func TestSetTrustLevel(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("rae")

	t.Run("updates the persisted level", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/trust/level", map[string]int{"trust_level": models.TrustMinimal}, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var metrics models.TrustMetrics
		decodeJSON(t, rec, &metrics)
		assert.Equal(t, models.TrustMinimal, metrics.Level)

		rec = env.do(t, http.MethodGet, "/trust/metrics", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeJSON(t, rec, &metrics)
		assert.Equal(t, models.TrustMinimal, metrics.Level)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		tests := []struct {
			name   string
			body   any
			detail string
		}{
			{"missing trust_level", map[string]string{}, "trust_level is required"},
			{"level out of range", map[string]int{"trust_level": 5}, "must be 0, 1 or 2"},
			{"level negative", map[string]int{"trust_level": -1}, "must be 0, 1 or 2"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := env.do(t, http.MethodPut, "/trust/level", tt.body, headers)
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, detailOf(t, rec), tt.detail)
			})
		}
	})
}

func TestTrustSuggestion(t *testing.T) {
	env := newTestEnv(t)

	t.Run("fresh users are not eligible", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/trust/suggestion", nil, env.authedAs("newcomer"))
		require.Equal(t, http.StatusOK, rec.Code)

		var suggestion models.TrustSuggestion
		decodeJSON(t, rec, &suggestion)
		assert.False(t, suggestion.Eligible)
		assert.Equal(t, models.TrustSupervised, suggestion.CurrentLevel)
		assert.Equal(t, models.TrustSupervised, suggestion.SuggestedLevel)
		assert.Contains(t, suggestion.Reason, "upgrade thresholds not reached")
	})

	t.Run("a sustained streak earns the autonomous suggestion", func(t *testing.T) {
		headers := env.authedAs("steady")
		for i := 0; i < 5; i++ {
			env.submitAndWait(t, models.TaskRequest{
				Query:       fmt.Sprintf("check deploy %d", i),
				Preferences: autonomous(),
			}, headers, env.app.ID, task.StatusComplete)
		}

		rec := env.do(t, http.MethodGet, "/trust/suggestion", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var suggestion models.TrustSuggestion
		decodeJSON(t, rec, &suggestion)
		assert.True(t, suggestion.Eligible)
		assert.Equal(t, models.TrustSupervised, suggestion.CurrentLevel)
		assert.Equal(t, models.TrustAutonomous, suggestion.SuggestedLevel)
		assert.Contains(t, suggestion.Reason, "consecutive successful")
		assert.InDelta(t, 1.0, suggestion.SuccessRate, 0.001)

		// Advisory only: the stored level did not move.
		rec = env.do(t, http.MethodGet, "/trust/metrics", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var metrics models.TrustMetrics
		decodeJSON(t, rec, &metrics)
		assert.Equal(t, models.TrustSupervised, metrics.Level)
		assert.Equal(t, 5, metrics.ConsecutiveSuccess)
	})
}
