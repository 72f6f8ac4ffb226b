package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/roomlearning"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/rooms"
)

func registerRoom(t *testing.T, env *testEnv, id string) models.Room {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/rooms/register", rooms.Registration{
		ID:           id,
		Name:         id,
		Type:         models.RoomTypeLocal,
		URL:          "http://" + id + ".local:8080",
		Capabilities: []string{"reasoning"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var room models.Room
	decodeJSON(t, rec, &room)
	return room
}

func TestRegisterRoom(t *testing.T) {
	env := newTestEnv(t)

	t.Run("registers and reports online", func(t *testing.T) {
		room := registerRoom(t, env, "phone-den")
		assert.Equal(t, "phone-den", room.ID)
		assert.Equal(t, models.RoomOnline, room.Status)
		assert.Equal(t, []string{"reasoning"}, room.Capabilities)
	})

	t.Run("missing id", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/rooms/register", rooms.Registration{URL: "http://x:1"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, detailOf(t, rec), "room_id is required")
	})

	t.Run("missing url", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/rooms/register", rooms.Registration{ID: "laptop"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, detailOf(t, rec), "url is required")
	})
}

func TestRoomHeartbeat(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing room id", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "room_id is required", detailOf(t, rec))
	})

	t.Run("unknown room", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{RoomID: "never-seen"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, detailOf(t, rec), "unknown room")
	})

	t.Run("refreshes status and load", func(t *testing.T) {
		registerRoom(t, env, "tablet-kitchen")

		load := 0.75
		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{
			RoomID: "tablet-kitchen",
			Status: string(models.RoomDegraded),
			Load:   &load,
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp RoomHeartbeatResponse
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.Room)
		assert.Equal(t, models.RoomDegraded, resp.Room.Status)
		assert.Equal(t, 0.75, resp.Room.Load)
		assert.Nil(t, resp.KnowledgeVersion)
	})

	t.Run("stores piggybacked learnings", func(t *testing.T) {
		registerRoom(t, env, "desk-studio")

		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{
			RoomID: "desk-studio",
			Learnings: []models.Learning{
				{Topic: "wifi", Content: "the studio access point drops under load"},
			},
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		count, err := env.client.RoomLearning.Query().
			Where(roomlearning.RoomID("desk-studio")).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("returns the knowledge delta the room asked for", func(t *testing.T) {
		ctx := context.Background()
		_, err := env.knowledge.UpsertEntry(ctx, env.app.ID, "deploys", "deploys roll out at noon")
		require.NoError(t, err)
		_, err = env.knowledge.UpsertEntry(ctx, env.app.ID, "oncall", "pages go to the platform rotation")
		require.NoError(t, err)

		registerRoom(t, env, "laptop-train")

		since := 0
		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{
			RoomID:               "laptop-train",
			AppID:                env.app.ID,
			LastKnowledgeVersion: &since,
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp RoomHeartbeatResponse
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.KnowledgeVersion)
		assert.Equal(t, 2, *resp.KnowledgeVersion)
		require.Len(t, resp.KnowledgeDelta, 2)
		assert.Equal(t, "deploys", resp.KnowledgeDelta[0].Topic)
		assert.Equal(t, "oncall", resp.KnowledgeDelta[1].Topic)

		// A caught-up room gets the version back with no entries.
		caughtUp := 2
		rec = env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{
			RoomID:               "laptop-train",
			AppID:                env.app.ID,
			LastKnowledgeVersion: &caughtUp,
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.KnowledgeVersion)
		assert.Equal(t, 2, *resp.KnowledgeVersion)
		assert.Empty(t, resp.KnowledgeDelta)
	})

	t.Run("authed heartbeat resolves the app from the key", func(t *testing.T) {
		ctx := context.Background()
		_, err := env.knowledge.UpsertEntry(ctx, env.app.ID, "backups", "nightly snapshots at 02:00")
		require.NoError(t, err)

		registerRoom(t, env, "phone-travel")

		since := 0
		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{
			RoomID:               "phone-travel",
			LastKnowledgeVersion: &since,
		}, env.authed())
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RoomHeartbeatResponse
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.KnowledgeVersion)
		assert.NotEmpty(t, resp.KnowledgeDelta)
	})

	t.Run("anonymous heartbeat without app id skips the delta", func(t *testing.T) {
		registerRoom(t, env, "kiosk-lobby")

		since := 0
		rec := env.do(t, http.MethodPost, "/rooms/heartbeat", roomHeartbeatRequest{
			RoomID:               "kiosk-lobby",
			LastKnowledgeVersion: &since,
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RoomHeartbeatResponse
		decodeJSON(t, rec, &resp)
		assert.Nil(t, resp.KnowledgeVersion)
		assert.Empty(t, resp.KnowledgeDelta)
	})
}

func TestDeregisterRoom(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing room id", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/rooms/deregister", roomDeregisterRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown room", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/rooms/deregister", roomDeregisterRequest{RoomID: "nowhere"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Room nowhere not found", detailOf(t, rec))
	})

	t.Run("removes a registered room", func(t *testing.T) {
		registerRoom(t, env, "loaner-laptop")

		rec := env.do(t, http.MethodPost, "/rooms/deregister", roomDeregisterRequest{RoomID: "loaner-laptop"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]bool
		decodeJSON(t, rec, &body)
		assert.True(t, body["deregistered"])

		get := env.do(t, http.MethodGet, "/rooms/loaner-laptop", nil, nil)
		assert.Equal(t, http.StatusNotFound, get.Code)
	})

	t.Run("the server's own entry stays", func(t *testing.T) {
		env.registry.RegisterSelf("symphony-core", []string{"reasoning"})

		rec := env.do(t, http.MethodPost, "/rooms/deregister", roomDeregisterRequest{RoomID: "symphony-core"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListAndGetRooms(t *testing.T) {
	env := newTestEnv(t)
	registerRoom(t, env, "phone-den")
	registerRoom(t, env, "tablet-kitchen")

	t.Run("list", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/rooms", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list RoomListResponse
		decodeJSON(t, rec, &list)
		assert.Equal(t, 2, list.Count)
	})

	t.Run("get known room", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/rooms/phone-den", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var room models.Room
		decodeJSON(t, rec, &room)
		assert.Equal(t, "phone-den", room.ID)
	})

	t.Run("get unknown room", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/rooms/attic", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Room attic not found", detailOf(t, rec))
	})

	t.Run("status reports full operation", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/rooms/status", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var status rooms.Degradation
		decodeJSON(t, rec, &status)
		assert.True(t, status.FullyOperational)
		assert.Len(t, status.OnlineRooms, 2)
	})
}
