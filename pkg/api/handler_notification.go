package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/pkg/services"
)

// Notification state is keyed per (app, user); every endpoint here
// needs an X-User-Id alongside the API key.

// getNotificationPreferencesHandler handles GET
// /notifications/preferences. Users that never set rules get the
// defaults back.
func (s *Server) getNotificationPreferencesHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	row, err := s.notifications.GetPreferences(c.Request.Context(), app.ID, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preferenceFromRow(row))
}

// putNotificationPreferencesHandler handles PUT
// /notifications/preferences. Nil body fields keep the stored values.
func (s *Server) putNotificationPreferencesHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	row, err := s.notifications.UpsertPreferences(c.Request.Context(), app.ID, userID, services.PreferenceParams{
		Enabled:         req.Enabled,
		QuietHoursStart: req.QuietHoursStart,
		QuietHoursEnd:   req.QuietHoursEnd,
		Outcomes:        req.Outcomes,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preferenceFromRow(row))
}

// createNotificationChannelHandler handles POST /notifications/channels.
func (s *Server) createNotificationChannelHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req channelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	kind := notificationchannel.Kind(req.Kind)
	if err := notificationchannel.KindValidator(kind); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "kind must be telegram, slack, or webhook"})
		return
	}

	row, err := s.notifications.CreateChannel(c.Request.Context(), app.ID, userID, kind, req.Target)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, channelFromRow(row))
}

// listNotificationChannelsHandler handles GET /notifications/channels.
func (s *Server) listNotificationChannelsHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	rows, err := s.notifications.ListActiveChannels(c.Request.Context(), app.ID, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]NotificationChannelView, 0, len(rows))
	for _, row := range rows {
		views = append(views, channelFromRow(row))
	}
	c.JSON(http.StatusOK, NotificationChannelListResponse{Channels: views, Count: len(views)})
}

// deleteNotificationChannelHandler handles DELETE
// /notifications/channels/:id. The channel is deactivated rather than
// erased so its delivery history survives.
func (s *Server) deleteNotificationChannelHandler(c *gin.Context) {
	app := currentApp(c)
	if _, ok := requireUser(c); !ok {
		return
	}

	if err := s.notifications.DeactivateChannel(c.Request.Context(), app.ID, c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": true})
}

// notificationHistoryHandler handles GET /notifications/history?limit=n.
func (s *Server) notificationHistoryHandler(c *gin.Context) {
	app := currentApp(c)
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be between 1 and 200"})
			return
		}
		limit = n
	}

	rows, err := s.notifications.ListHistory(c.Request.Context(), app.ID, userID, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]NotificationHistoryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, historyFromRow(row))
	}
	c.JSON(http.StatusOK, NotificationHistoryResponse{History: views, Count: len(views)})
}
