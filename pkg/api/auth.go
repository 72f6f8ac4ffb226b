package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/pkg/services"
)

// Gin context keys set by the auth middleware.
const (
	ctxKeyApp    = "auth.app"
	ctxKeyUserID = "auth.user_id"
)

// requireAuth validates the X-Api-Key header against the apps table and
// aborts with 401/403 when it is missing, unknown, or the app is
// deactivated. A non-empty X-User-Id header gets a profile row on first
// sight.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Api-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing API key"})
			return
		}

		app, err := s.apps.GetByAPIKey(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid API key"})
				return
			}
			mapServiceError(c, err)
			c.Abort()
			return
		}
		if !app.IsActive {
			slog.Warn("Deactivated app access attempted", "app_id", app.ID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "App is deactivated"})
			return
		}

		s.attachIdentity(c, app)
		c.Next()
	}
}

// optionalAuth resolves the same identity as requireAuth when a valid
// key is present, and falls back to the anonymous app otherwise. A
// missing, unknown, or deactivated key is not an error here; the caller
// simply gets the anonymous scope, and X-User-Id is honored only
// alongside a valid key.
func (s *Server) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Api-Key")
		if key != "" {
			app, err := s.apps.GetByAPIKey(c.Request.Context(), key)
			if err == nil && app.IsActive {
				s.attachIdentity(c, app)
				c.Next()
				return
			}
			if err != nil && !errors.Is(err, services.ErrNotFound) {
				mapServiceError(c, err)
				c.Abort()
				return
			}
		}

		c.Set(ctxKeyApp, s.anonymous)
		c.Set(ctxKeyUserID, "")
		c.Next()
	}
}

// attachIdentity stores the resolved app and user on the request
// context. Profile creation failures are logged, not fatal: identity
// still resolves, only trust bookkeeping lags.
func (s *Server) attachIdentity(c *gin.Context, app *ent.App) {
	userID := c.GetHeader("X-User-Id")
	if userID != "" && s.profiles != nil {
		if _, err := s.profiles.EnsureProfile(c.Request.Context(), app.ID, userID); err != nil {
			slog.Warn("Failed to ensure user profile", "app_id", app.ID, "user_id", userID, "error", err)
		}
	}
	c.Set(ctxKeyApp, app)
	c.Set(ctxKeyUserID, userID)
}

// currentApp returns the app resolved by the auth middleware.
func currentApp(c *gin.Context) *ent.App {
	if v, ok := c.Get(ctxKeyApp); ok {
		if app, ok := v.(*ent.App); ok {
			return app
		}
	}
	return nil
}

// currentUserID returns the external user id, empty for anonymous or
// app-only callers.
func currentUserID(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}

// requireUser extracts the user id and answers 400 when the endpoint
// needs one. Trust and notification state is keyed per (app, user), so
// app-only credentials are not enough there.
func requireUser(c *gin.Context) (string, bool) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "X-User-Id header is required"})
		return "", false
	}
	return userID, true
}
