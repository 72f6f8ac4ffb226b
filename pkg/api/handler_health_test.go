package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/autonomic"
	"github.com/loop-symphony/symphony/pkg/database"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	t.Run("reports ok with version and registered tools", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "ok", resp.Status)
		assert.NotEmpty(t, resp.Version)
		assert.Equal(t, []string{"reasoning", "web_search"}, resp.Tools)
	})

	t.Run("reports ok without optional dependencies", func(t *testing.T) {
		bare := NewServer(Deps{}, nil)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		bare.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "ok", resp.Status)
		assert.Empty(t, resp.Tools)
	})
}

func TestSystemHealth(t *testing.T) {
	env := newTestEnv(t)

	t.Run("sweeps inline before the first cached snapshot", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/health/system", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health autonomic.SystemHealth
		decodeJSON(t, rec, &health)
		assert.Equal(t, "healthy", health.Status)
		assert.False(t, health.CheckedAt.IsZero())

		require.NotNil(t, health.Database)
		assert.Equal(t, "healthy", health.Database.Status)

		assert.Equal(t, "ok", health.Tools["reasoning"])
		assert.Equal(t, "ok", health.Tools["web_search"])

		require.NotNil(t, health.Workers)
		assert.Positive(t, health.Workers.Workers)
	})

	t.Run("returns 503 when no monitor is wired", func(t *testing.T) {
		bare := NewServer(Deps{}, nil)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/system", nil)
		bare.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "health monitor not configured", detailOf(t, rec))
	})
}

func TestDatabaseHealth(t *testing.T) {
	env := newTestEnv(t)

	t.Run("reports the connection pool", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/health/database", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var status database.HealthStatus
		decodeJSON(t, rec, &status)
		assert.Equal(t, "healthy", status.Status)
		assert.Positive(t, status.MaxOpenConns)
	})

	t.Run("returns 503 when no database is wired", func(t *testing.T) {
		bare := NewServer(Deps{}, nil)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/database", nil)
		bare.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "database not configured", detailOf(t, rec))
	})
}
