package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

func heartbeatParams(req heartbeatRequest) services.HeartbeatParams {
	return services.HeartbeatParams{
		Name:            req.Name,
		QueryTemplate:   req.QueryTemplate,
		CronExpression:  req.CronExpression,
		Timezone:        req.Timezone,
		ContextTemplate: req.ContextTemplate,
		WebhookURL:      req.WebhookURL,
		IsActive:        req.IsActive,
	}
}

func heartbeatsFromRows(rows []*ent.Heartbeat) []*models.Heartbeat {
	out := make([]*models.Heartbeat, 0, len(rows))
	for _, row := range rows {
		out = append(out, services.HeartbeatFromRow(row))
	}
	return out
}

// createHeartbeatHandler handles POST /heartbeats.
func (s *Server) createHeartbeatHandler(c *gin.Context) {
	app := currentApp(c)

	var req heartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	row, err := s.heartbeats.CreateHeartbeat(c.Request.Context(), app.ID, currentUserID(c), heartbeatParams(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, services.HeartbeatFromRow(row))
}

// listHeartbeatsHandler handles GET /heartbeats.
func (s *Server) listHeartbeatsHandler(c *gin.Context) {
	app := currentApp(c)

	rows, err := s.heartbeats.ListHeartbeats(c.Request.Context(), app.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, HeartbeatListResponse{Heartbeats: heartbeatsFromRows(rows), Count: len(rows)})
}

// getHeartbeatHandler handles GET /heartbeats/:id.
func (s *Server) getHeartbeatHandler(c *gin.Context) {
	app := currentApp(c)

	row, err := s.heartbeats.GetHeartbeat(c.Request.Context(), app.ID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.HeartbeatFromRow(row))
}

// updateHeartbeatHandler handles PUT /heartbeats/:id. Zero-valued body
// fields keep the stored values.
func (s *Server) updateHeartbeatHandler(c *gin.Context) {
	app := currentApp(c)

	var req heartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	row, err := s.heartbeats.UpdateHeartbeat(c.Request.Context(), app.ID, c.Param("id"), heartbeatParams(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.HeartbeatFromRow(row))
}

// deleteHeartbeatHandler handles DELETE /heartbeats/:id.
func (s *Server) deleteHeartbeatHandler(c *gin.Context) {
	app := currentApp(c)

	if err := s.heartbeats.DeleteHeartbeat(c.Request.Context(), app.ID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// listHeartbeatRunsHandler handles GET /heartbeats/:id/runs?limit=n.
func (s *Server) listHeartbeatRunsHandler(c *gin.Context) {
	app := currentApp(c)

	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	rows, err := s.heartbeats.ListRuns(c.Request.Context(), app.ID, c.Param("id"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	runs := make([]*models.HeartbeatRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, services.HeartbeatRunFromRow(row))
	}
	c.JSON(http.StatusOK, HeartbeatRunListResponse{Runs: runs, Count: len(runs)})
}

// tickHeartbeatsHandler handles POST /heartbeats/tick, forcing one
// scheduler pass without waiting for the interval.
func (s *Server) tickHeartbeatsHandler(c *gin.Context) {
	if s.scheduler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "scheduler not configured"})
		return
	}

	summary, err := s.scheduler.Tick(c.Request.Context(), time.Now().UTC())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
