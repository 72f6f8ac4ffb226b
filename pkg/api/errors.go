package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
)

// mapServiceError writes the HTTP error response for a service-layer
// error. Error bodies carry a single `detail` field.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "resource not found"})
		return
	}
	if errors.Is(err, rooms.ErrUnknownRoom) {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	if errors.Is(err, services.ErrAlreadyTerminal) {
		c.JSON(http.StatusConflict, gin.H{"detail": "task already reached a terminal status"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"detail": "resource already exists"})
		return
	}
	if errors.Is(err, taskmanager.ErrQueueFull) || errors.Is(err, taskmanager.ErrStopped) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
