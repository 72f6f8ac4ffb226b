package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/userprofile"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

func TestRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	// /trust/metrics sits behind the strict auth gate; a 400 for the
	// missing user header proves the credentials themselves passed.
	t.Run("missing key", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing API key", detailOf(t, rec))
	})

	t.Run("unknown key", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, map[string]string{"X-Api-Key": "sk-bogus"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid API key", detailOf(t, rec))
	})

	t.Run("valid key without user header", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, env.authed())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "X-User-Id header is required", detailOf(t, rec))
	})

	t.Run("deactivated app", func(t *testing.T) {
		deactivated := seedApp(t, env.client)
		_, err := env.client.App.UpdateOneID(deactivated.ID).SetIsActive(false).Save(context.Background())
		require.NoError(t, err)

		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, map[string]string{"X-Api-Key": deactivated.APIKey})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "App is deactivated", detailOf(t, rec))
	})

	t.Run("user header creates a profile", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/trust/metrics", nil, env.authedAs("profile-probe"))
		assert.Equal(t, http.StatusOK, rec.Code)

		exists, err := env.client.UserProfile.Query().
			Where(userprofile.AppID(env.app.ID), userprofile.ExternalUserID("profile-probe")).
			Exist(context.Background())
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestOptionalAuth(t *testing.T) {
	env := newTestEnv(t)

	submit := func(t *testing.T, headers map[string]string) string {
		t.Helper()
		rec := env.do(t, http.MethodPost, "/task", models.TaskRequest{Query: "list open review threads"}, headers)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var resp TaskSubmitResponse
		decodeJSON(t, rec, &resp)
		return resp.TaskID
	}

	ownedBy := func(t *testing.T, appID, taskID string) bool {
		t.Helper()
		_, err := env.tasks.GetTask(context.Background(), appID, taskID)
		return err == nil
	}

	t.Run("no key scopes to the anonymous app", func(t *testing.T) {
		taskID := submit(t, nil)
		assert.True(t, ownedBy(t, services.AnonymousAppID, taskID))
		assert.False(t, ownedBy(t, env.app.ID, taskID))
	})

	t.Run("unknown key falls back to anonymous", func(t *testing.T) {
		taskID := submit(t, map[string]string{"X-Api-Key": "sk-made-up"})
		assert.True(t, ownedBy(t, services.AnonymousAppID, taskID))
	})

	t.Run("deactivated key falls back to anonymous", func(t *testing.T) {
		deactivated := seedApp(t, env.client)
		_, err := env.client.App.UpdateOneID(deactivated.ID).SetIsActive(false).Save(context.Background())
		require.NoError(t, err)

		taskID := submit(t, map[string]string{"X-Api-Key": deactivated.APIKey})
		assert.True(t, ownedBy(t, services.AnonymousAppID, taskID))
		assert.False(t, ownedBy(t, deactivated.ID, taskID))
	})

	t.Run("valid key scopes to the app", func(t *testing.T) {
		taskID := submit(t, env.authed())
		assert.True(t, ownedBy(t, env.app.ID, taskID))
		assert.False(t, ownedBy(t, services.AnonymousAppID, taskID))

		// Other tenants, including anonymous callers, cannot see it.
		rec := env.do(t, http.MethodGet, "/task/"+taskID, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
