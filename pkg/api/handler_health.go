package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/pkg/version"
)

// healthCheckTimeout bounds the database ping on the basic health
// endpoint.
const healthCheckTimeout = 5 * time.Second

// Health status values reported by the health endpoints.
const (
	statusOK        = "ok"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health: a fast liveness answer with the
// server version and the registered tool names. A failed database ping
// makes it unhealthy; a saturated task queue only degrades it.
func (s *Server) healthHandler(c *gin.Context) {
	resp := HealthResponse{Status: statusOK, Version: version.Full(), Tools: []string{}}

	if s.tools != nil {
		for _, t := range s.tools.All() {
			resp.Tools = append(resp.Tools, t.Name())
		}
		sort.Strings(resp.Tools)
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if _, err := s.db.Health(ctx); err != nil {
			resp.Status = statusUnhealthy
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	if s.manager != nil {
		h := s.manager.Health()
		if h.QueueCapacity > 0 && h.QueueDepth >= h.QueueCapacity {
			resp.Status = statusDegraded
		}
	}

	c.JSON(http.StatusOK, resp)
}

// systemHealthHandler handles GET /health/system, serving the health
// monitor's cached sweep. Without a cached snapshot yet it sweeps
// inline so the first caller is not told nothing.
func (s *Server) systemHealthHandler(c *gin.Context) {
	if s.monitor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "health monitor not configured"})
		return
	}

	health, ok := s.monitor.Snapshot()
	if !ok {
		health = s.monitor.Check(c.Request.Context())
	}

	code := http.StatusOK
	if health.Status == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, health)
}

// databaseHealthHandler handles GET /health/database with the pool
// snapshot behind the ping.
func (s *Server) databaseHealthHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "database not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
