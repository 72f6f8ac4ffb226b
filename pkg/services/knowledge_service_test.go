package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/roomsyncstate"
	"github.com/loop-symphony/symphony/pkg/models"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestKnowledgeService_UpsertEntry(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("versions climb across topics", func(t *testing.T) {
		first, err := service.UpsertEntry(ctx, app.ID, "deploy-process", "deploys go out tuesdays")
		require.NoError(t, err)
		assert.Equal(t, 1, first.Version)

		second, err := service.UpsertEntry(ctx, app.ID, "oncall-rotation", "weekly, handoff mondays")
		require.NoError(t, err)
		assert.Equal(t, 2, second.Version)
	})

	t.Run("rewriting a topic keeps one row and bumps the version", func(t *testing.T) {
		updated, err := service.UpsertEntry(ctx, app.ID, "deploy-process", "deploys now go out daily")
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Version)
		assert.Equal(t, "deploys now go out daily", updated.Content)

		entries, _, err := service.Delta(ctx, app.ID, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("versions are scoped per app", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		entry, err := service.UpsertEntry(ctx, other.ID, "anything", "content")
		require.NoError(t, err)
		assert.Equal(t, 1, entry.Version)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.UpsertEntry(ctx, "", "topic", "content")
		assert.True(t, IsValidationError(err))
		_, err = service.UpsertEntry(ctx, app.ID, "", "content")
		assert.True(t, IsValidationError(err))
	})
}

func TestKnowledgeService_Delta(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	for _, topic := range []string{"a", "b", "c"} {
		_, err := service.UpsertEntry(ctx, app.ID, topic, "content of "+topic)
		require.NoError(t, err)
	}

	t.Run("returns everything past the cursor", func(t *testing.T) {
		entries, current, err := service.Delta(ctx, app.ID, 1)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 2, entries[0].Version)
		assert.Equal(t, 3, entries[1].Version)
		assert.Equal(t, 3, current)
	})

	t.Run("empty delta keeps the cursor", func(t *testing.T) {
		entries, current, err := service.Delta(ctx, app.ID, 3)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Equal(t, 3, current)
	})
}

func TestKnowledgeService_SyncCursor(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("unseen room starts at zero", func(t *testing.T) {
		version, err := service.LastSyncedVersion(ctx, "room-x", app.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, version)
	})

	t.Run("record then read round-trips", func(t *testing.T) {
		require.NoError(t, service.RecordSync(ctx, "room-x", app.ID, 7))
		version, err := service.LastSyncedVersion(ctx, "room-x", app.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, version)

		require.NoError(t, service.RecordSync(ctx, "room-x", app.ID, 9))
		version, err = service.LastSyncedVersion(ctx, "room-x", app.ID)
		require.NoError(t, err)
		assert.Equal(t, 9, version)
	})

	t.Run("cursors are per room and app", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		require.NoError(t, service.RecordSync(ctx, "room-y", app.ID, 4))

		version, err := service.LastSyncedVersion(ctx, "room-y", other.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, version)
	})
}

func TestKnowledgeService_RecordRoomHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	t.Run("first heartbeat creates the sync row", func(t *testing.T) {
		err := service.RecordRoomHeartbeat(ctx, "room-1", "workstation", 0.25, nil)
		require.NoError(t, err)

		state, err := client.RoomSyncState.Query().
			Where(roomsyncstate.RoomID("room-1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "workstation", state.RoomName)
		assert.Equal(t, 1, state.HeartbeatCount)
		assert.Equal(t, 0.25, state.LastLoad)
	})

	t.Run("repeat heartbeats accumulate", func(t *testing.T) {
		err := service.RecordRoomHeartbeat(ctx, "room-1", "workstation", 0.75, []models.Learning{
			{AppID: app.ID, Topic: "local-index", Content: "rebuilt nightly"},
			{Topic: "scratch", Content: "cleared on boot"},
		})
		require.NoError(t, err)

		state, err := client.RoomSyncState.Query().
			Where(roomsyncstate.RoomID("room-1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, state.HeartbeatCount)
		assert.Equal(t, 0.75, state.LastLoad)
		assert.Equal(t, 2, state.LearningsReceived)

		learnings, err := service.RoomLearnings(ctx, "room-1", 10)
		require.NoError(t, err)
		require.Len(t, learnings, 2)
	})

	t.Run("validates the room id", func(t *testing.T) {
		err := service.RecordRoomHeartbeat(ctx, "", "", 0, nil)
		assert.True(t, IsValidationError(err))
	})
}
