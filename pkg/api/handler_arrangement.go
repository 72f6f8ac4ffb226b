package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/pkg/models"
)

// createArrangementHandler handles POST /arrangements, saving a named
// composition for reuse by arrangement_id on later submissions.
func (s *Server) createArrangementHandler(c *gin.Context) {
	app := currentApp(c)

	var spec models.ArrangementSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	row, err := s.arrangements.CreateArrangement(c.Request.Context(), app.ID, &spec)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, arrangementFromRow(row))
}

// listArrangementsHandler handles GET /arrangements.
func (s *Server) listArrangementsHandler(c *gin.Context) {
	app := currentApp(c)

	rows, err := s.arrangements.ListArrangements(c.Request.Context(), app.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]ArrangementView, 0, len(rows))
	for _, row := range rows {
		views = append(views, arrangementFromRow(row))
	}
	c.JSON(http.StatusOK, ArrangementListResponse{Arrangements: views, Count: len(views)})
}

// getArrangementHandler handles GET /arrangements/:id.
func (s *Server) getArrangementHandler(c *gin.Context) {
	app := currentApp(c)

	row, err := s.arrangements.GetArrangement(c.Request.Context(), app.ID, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, arrangementFromRow(row))
}

// deleteArrangementHandler handles DELETE /arrangements/:id.
func (s *Server) deleteArrangementHandler(c *gin.Context) {
	app := currentApp(c)

	if err := s.arrangements.DeleteArrangement(c.Request.Context(), app.ID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
