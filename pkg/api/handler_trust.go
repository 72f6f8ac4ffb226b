package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Trust state is keyed per (app, user), so every endpoint here needs
// both a valid API key and an X-User-Id header.

// trustMetricsHandler handles GET /trust/metrics.
func (s *Server) trustMetricsHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	metrics, err := s.trust.Metrics(c.Request.Context(), app.ID, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// trustSuggestionHandler handles GET /trust/suggestion. The answer is
// advisory; it never mutates the level.
func (s *Server) trustSuggestionHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	suggestion, err := s.trust.Suggestion(c.Request.Context(), app.ID, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// setTrustLevelHandler handles PUT /trust/level, the only mutation path
// for a user's trust level.
func (s *Server) setTrustLevelHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req setTrustLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if req.TrustLevel == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "trust_level is required"})
		return
	}

	metrics, err := s.trust.SetLevel(c.Request.Context(), app.ID, userID, *req.TrustLevel)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
