package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
)

// createTestApp seeds an app row for app-scoped service tests.
func createTestApp(t *testing.T, client *ent.Client) *ent.App {
	t.Helper()
	app, err := client.App.Create().
		SetID(uuid.New().String()).
		SetName("test-app-" + uuid.New().String()[:8]).
		SetAPIKey("sk-test-" + uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return app
}

// createTestTask seeds a pending task owned by the given app.
func createTestTask(t *testing.T, service *TaskService, appID string) *ent.Task {
	t.Helper()
	task, err := service.CreateTask(context.Background(), CreateTaskParams{
		AppID: appID,
		Query: "what changed in the build system this week",
	})
	require.NoError(t, err)
	return task
}
