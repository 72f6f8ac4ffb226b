package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestAppService_CreateApp(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAppService(client.Client)
	ctx := context.Background()

	t.Run("creates app with generated api key", func(t *testing.T) {
		app, err := service.CreateApp(ctx, "telegram-bot")
		require.NoError(t, err)
		assert.Equal(t, "telegram-bot", app.Name)
		assert.True(t, app.IsActive)
		assert.True(t, strings.HasPrefix(app.APIKey, "sk-"))
		assert.Greater(t, len(app.APIKey), 20)
	})

	t.Run("keys are unique across apps", func(t *testing.T) {
		first, err := service.CreateApp(ctx, "app-one")
		require.NoError(t, err)
		second, err := service.CreateApp(ctx, "app-two")
		require.NoError(t, err)
		assert.NotEqual(t, first.APIKey, second.APIKey)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := service.CreateApp(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAppService_EnsureAnonymousApp(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAppService(client.Client)
	ctx := context.Background()

	t.Run("creates the anonymous app on first call", func(t *testing.T) {
		app, err := service.EnsureAnonymousApp(ctx)
		require.NoError(t, err)
		assert.Equal(t, AnonymousAppID, app.ID)
		assert.Equal(t, "anonymous", app.Name)
		assert.True(t, app.IsActive)
		assert.True(t, strings.HasPrefix(app.APIKey, "sk-"))
	})

	t.Run("returns the existing app on later calls", func(t *testing.T) {
		first, err := service.EnsureAnonymousApp(ctx)
		require.NoError(t, err)
		second, err := service.EnsureAnonymousApp(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.APIKey, second.APIKey)
	})
}

func TestAppService_GetByAPIKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAppService(client.Client)
	ctx := context.Background()

	t.Run("resolves a valid key", func(t *testing.T) {
		created, err := service.CreateApp(ctx, "ios-shortcut")
		require.NoError(t, err)

		app, err := service.GetByAPIKey(ctx, created.APIKey)
		require.NoError(t, err)
		assert.Equal(t, created.ID, app.ID)
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		_, err := service.GetByAPIKey(ctx, "sk-nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty key is not found", func(t *testing.T) {
		_, err := service.GetByAPIKey(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deactivated app still resolves", func(t *testing.T) {
		created, err := service.CreateApp(ctx, "retired-app")
		require.NoError(t, err)
		require.NoError(t, service.SetActive(ctx, created.ID, false))

		app, err := service.GetByAPIKey(ctx, created.APIKey)
		require.NoError(t, err)
		assert.False(t, app.IsActive)
	})
}

func TestAppService_SetActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAppService(client.Client)
	ctx := context.Background()

	t.Run("toggles activation", func(t *testing.T) {
		app, err := service.CreateApp(ctx, "toggle-app")
		require.NoError(t, err)

		require.NoError(t, service.SetActive(ctx, app.ID, false))
		got, err := service.GetApp(ctx, app.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		require.NoError(t, service.SetActive(ctx, app.ID, true))
		got, err = service.GetApp(ctx, app.ID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
	})

	t.Run("unknown app is not found", func(t *testing.T) {
		err := service.SetActive(ctx, "missing", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
