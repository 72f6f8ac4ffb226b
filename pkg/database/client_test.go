package database

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/test/util"
)

// newTestClient creates a client on an isolated schema. CI uses the
// external PostgreSQL from CI_DATABASE_URL, local dev a testcontainer.
func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestDatabaseClient_EntityRoundtrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	app, err := client.App.Create().
		SetID("app-1").
		SetName("companion").
		SetAPIKey("key-1").
		Save(ctx)
	require.NoError(t, err)
	assert.True(t, app.IsActive)

	created, err := client.Task.Create().
		SetID("task-1").
		SetAppID(app.ID).
		SetUserID("user-1").
		SetQuery("what changed in the reactor telemetry this week").
		SetRequest(map[string]interface{}{"query": "what changed in the reactor telemetry this week"}).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, created.Status)

	_, err = client.TaskIteration.Create().
		SetID("chk-1").
		SetTaskID(created.ID).
		SetIterationNum(1).
		SetPhase("hypothesis").
		SetDurationMs(120).
		Save(ctx)
	require.NoError(t, err)

	// Same iteration number again must hit the unique constraint.
	_, err = client.TaskIteration.Create().
		SetID("chk-2").
		SetTaskID(created.ID).
		SetIterationNum(1).
		SetPhase("hypothesis").
		SetDurationMs(95).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// App-scoped listing sees the task, a foreign scope does not.
	got, err := client.Task.Query().Where(task.AppID(app.ID)).All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	none, err := client.Task.Query().Where(task.AppID("other-app")).All(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHealthStatus_ReportsMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, health)

	// Local pings are fast; a nanosecond value would blow this bound.
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000))

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))
	assert.Contains(t, jsonData, "response_time_ms")
	assert.Contains(t, jsonData, "open_connections")
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "url with database path",
			dsn:  "postgresql://symphony:pw@db.example.com:5432/symphony",
			want: "symphony",
		},
		{
			name: "url without path",
			dsn:  "postgresql://symphony:pw@db.example.com:5432",
			want: "postgres",
		},
		{
			name: "unparseable",
			dsn:  "://not-a-url",
			want: "postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, databaseName(tt.dsn))
		})
	}
}
