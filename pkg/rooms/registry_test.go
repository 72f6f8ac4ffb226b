package rooms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func register(t *testing.T, r *Registry, id string, roomType string, caps []string) *models.Room {
	t.Helper()
	room, err := r.Register(Registration{
		ID:           id,
		Name:         id,
		Type:         roomType,
		URL:          "http://" + id + ".example:9000",
		Capabilities: caps,
	})
	require.NoError(t, err)
	return room
}

func TestRegister_AndGet(t *testing.T) {
	r := NewRegistry(0)

	room := register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})
	assert.Equal(t, models.RoomOnline, room.Status)

	got, ok := r.Get("room-a")
	require.True(t, ok)
	assert.Equal(t, "room-a", got.ID)
	assert.Equal(t, []string{"reasoning"}, got.Capabilities)
}

func TestRegister_RequiresReachableURL(t *testing.T) {
	r := NewRegistry(0)

	_, err := r.Register(Registration{ID: "room-a"})
	assert.Error(t, err)

	_, err = r.Register(Registration{ID: "room-a", URL: models.LocalRoomURL})
	assert.Error(t, err)
}

func TestRegister_CannotShadowSelf(t *testing.T) {
	r := NewRegistry(0)
	r.RegisterSelf("symphony-local", []string{"reasoning"})

	_, err := r.Register(Registration{ID: "symphony-local", URL: "http://evil.example"})
	assert.Error(t, err)
}

func TestHeartbeat_RefreshesAndUpdates(t *testing.T) {
	r := NewRegistry(0)
	register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})

	load := 0.7
	room, err := r.Heartbeat("room-a", HeartbeatUpdate{
		Load:         &load,
		Capabilities: []string{"reasoning", "vision"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.7, room.Load)
	assert.Equal(t, []string{"reasoning", "vision"}, room.Capabilities)
	assert.Equal(t, models.RoomOnline, room.Status)
}

func TestHeartbeat_UnknownRoom(t *testing.T) {
	r := NewRegistry(0)

	_, err := r.Heartbeat("ghost", HeartbeatUpdate{})
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestDeregister(t *testing.T) {
	r := NewRegistry(0)
	r.RegisterSelf("symphony-local", nil)
	register(t, r, "room-a", models.RoomTypeLocal, nil)

	assert.True(t, r.Deregister("room-a"))
	assert.False(t, r.Deregister("room-a"))
	// The server's own entry is not removable.
	assert.False(t, r.Deregister("symphony-local"))
}

func TestSweepOffline_MarksStaleRooms(t *testing.T) {
	r := NewRegistry(50 * time.Millisecond)
	r.RegisterSelf("symphony-local", nil)
	register(t, r, "room-a", models.RoomTypeLocal, nil)

	time.Sleep(80 * time.Millisecond)
	marked := r.SweepOffline()
	assert.Equal(t, []string{"room-a"}, marked)

	got, ok := r.Get("room-a")
	require.True(t, ok)
	assert.Equal(t, models.RoomOffline, got.Status)

	// The self entry never expires.
	self, ok := r.Get("symphony-local")
	require.True(t, ok)
	assert.Equal(t, models.RoomOnline, self.Status)
}

func TestSweepOffline_HeartbeatKeepsRoomOnline(t *testing.T) {
	r := NewRegistry(100 * time.Millisecond)
	register(t, r, "room-a", models.RoomTypeLocal, nil)

	time.Sleep(60 * time.Millisecond)
	_, err := r.Heartbeat("room-a", HeartbeatUpdate{})
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, r.SweepOffline())
}

func TestBestRoom_FiltersByCapability(t *testing.T) {
	r := NewRegistry(0)
	register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})
	register(t, r, "room-b", models.RoomTypeLocal, []string{"reasoning", "web_search"})

	best, ok := r.BestRoom([]string{"web_search"}, false)
	require.True(t, ok)
	assert.Equal(t, "room-b", best.ID)

	_, ok = r.BestRoom([]string{"vision"}, false)
	assert.False(t, ok)
}

func TestBestRoom_ExcludesOfflineRooms(t *testing.T) {
	r := NewRegistry(30 * time.Millisecond)
	register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})

	time.Sleep(50 * time.Millisecond)
	_, ok := r.BestRoom([]string{"reasoning"}, false)
	assert.False(t, ok)
}

func TestBestRoom_PrefersLowerLoad(t *testing.T) {
	r := NewRegistry(0)
	register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})
	register(t, r, "room-b", models.RoomTypeLocal, []string{"reasoning"})

	heavy, light := 0.9, 0.1
	_, err := r.Heartbeat("room-a", HeartbeatUpdate{Load: &heavy})
	require.NoError(t, err)
	_, err = r.Heartbeat("room-b", HeartbeatUpdate{Load: &light})
	require.NoError(t, err)

	best, ok := r.BestRoom([]string{"reasoning"}, false)
	require.True(t, ok)
	assert.Equal(t, "room-b", best.ID)
}

func TestBestRoom_LexicographicTieBreak(t *testing.T) {
	r := NewRegistry(0)
	register(t, r, "room-b", models.RoomTypeLocal, []string{"reasoning"})
	register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})

	best, ok := r.BestRoom([]string{"reasoning"}, false)
	require.True(t, ok)
	assert.Equal(t, "room-a", best.ID)
}

func TestBestRoom_LocalityBeatsLoad(t *testing.T) {
	r := NewRegistry(0)
	register(t, r, "room-ios", models.RoomTypeIOS, []string{"reasoning"})
	register(t, r, "room-local", models.RoomTypeLocal, []string{"reasoning"})

	light, heavy := 0.1, 0.9
	_, err := r.Heartbeat("room-ios", HeartbeatUpdate{Load: &light})
	require.NoError(t, err)
	_, err = r.Heartbeat("room-local", HeartbeatUpdate{Load: &heavy})
	require.NoError(t, err)

	// Without a locality requirement the lighter room wins.
	best, ok := r.BestRoom([]string{"reasoning"}, false)
	require.True(t, ok)
	assert.Equal(t, "room-ios", best.ID)

	// With locality required the local-hardware room wins despite load.
	best, ok = r.BestRoom([]string{"reasoning"}, true)
	require.True(t, ok)
	assert.Equal(t, "room-local", best.ID)
}

func TestBestRoom_SelfIsCandidate(t *testing.T) {
	r := NewRegistry(0)
	r.RegisterSelf("symphony-local", []string{"reasoning", "web_search"})

	best, ok := r.BestRoom([]string{"reasoning"}, false)
	require.True(t, ok)
	assert.True(t, best.IsSelf())
}

func TestList_SortedByID(t *testing.T) {
	r := NewRegistry(0)
	register(t, r, "zeta", models.RoomTypeLocal, nil)
	register(t, r, "alpha", models.RoomTypeLocal, nil)

	rooms := r.List()
	require.Len(t, rooms, 2)
	assert.Equal(t, "alpha", rooms[0].ID)
	assert.Equal(t, "zeta", rooms[1].ID)
}

func TestStats(t *testing.T) {
	r := NewRegistry(30 * time.Millisecond)
	r.RegisterSelf("symphony-local", nil)
	register(t, r, "room-a", models.RoomTypeLocal, nil)
	register(t, r, "room-b", models.RoomTypeIOS, nil)

	time.Sleep(50 * time.Millisecond)
	stats := r.Stats()
	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 1, stats.OnlineRooms)
	assert.Equal(t, 2, stats.OfflineRooms)
	assert.Equal(t, 1, stats.RoomsByType[models.RoomTypeServer])
	assert.Equal(t, 1, stats.RoomsByType[models.RoomTypeIOS])
}

func TestDegradation(t *testing.T) {
	r := NewRegistry(30 * time.Millisecond)
	r.RegisterSelf("symphony-local", []string{"reasoning"})
	register(t, r, "room-a", models.RoomTypeLocal, []string{"vision"})

	d := r.Degradation()
	assert.True(t, d.FullyOperational)
	assert.ElementsMatch(t, []string{"reasoning", "vision"}, d.CapabilitiesAvailable)

	time.Sleep(50 * time.Millisecond)
	d = r.Degradation()
	assert.False(t, d.FullyOperational)
	assert.Equal(t, []string{"room-a"}, d.OfflineRooms)
	assert.Equal(t, []string{"reasoning"}, d.CapabilitiesAvailable)
}

func TestSnapshotIsolation(t *testing.T) {
	r := NewRegistry(0)
	room := register(t, r, "room-a", models.RoomTypeLocal, []string{"reasoning"})

	// Mutating the returned copy must not leak into the registry.
	room.Capabilities[0] = "corrupted"
	got, ok := r.Get("room-a")
	require.True(t, ok)
	assert.Equal(t, []string{"reasoning"}, got.Capabilities)
}
