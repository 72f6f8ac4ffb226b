package autonomic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
	"github.com/loop-symphony/symphony/pkg/tools"
	testdb "github.com/loop-symphony/symphony/test/database"
)

type fakeTool struct {
	name      string
	healthErr error
}

func (f *fakeTool) Name() string                        { return f.name }
func (f *fakeTool) Capabilities() []string              { return []string{f.name} }
func (f *fakeTool) Manifest() tools.Manifest            { return tools.Manifest{Name: f.name} }
func (f *fakeTool) HealthCheck(ctx context.Context) error { return f.healthErr }

func TestMonitorCheckAggregates(t *testing.T) {
	db := testdb.NewTestClient(t)
	bus := events.NewBus(events.BusConfig{})
	t.Cleanup(bus.Close)

	tasks := services.NewTaskService(db.Client)
	manager := taskmanager.NewManager(tasks, bus, config.WorkerConfig{Count: 3, QueueSize: 8})
	errs := services.NewErrorService(db.Client)

	registry := rooms.NewRegistry(0)
	registry.RegisterSelf("server-main", []string{"reasoning"})

	toolReg := tools.NewRegistry()
	require.NoError(t, toolReg.Register(&fakeTool{name: "web_search"}))

	app := seedApp(t, db)
	_, err := errs.RecordError(context.Background(), app.ID, nil,
		errorrecord.SourceTool, "timeout", "search timed out", nil)
	require.NoError(t, err)

	monitor := NewMonitor(MonitorDeps{
		DB:      db,
		Tools:   toolReg,
		Rooms:   registry,
		Bus:     bus,
		Manager: manager,
		Errors:  errs,
	}, time.Minute)

	health := monitor.Check(context.Background())
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.CheckedAt.IsZero())

	require.NotNil(t, health.Database)
	assert.Equal(t, "healthy", health.Database.Status)

	assert.Equal(t, map[string]string{"web_search": "ok"}, health.Tools)

	require.NotNil(t, health.Rooms)
	assert.Equal(t, 1, health.Rooms.TotalRooms)
	assert.Equal(t, 1, health.Rooms.OnlineRooms)

	require.NotNil(t, health.Workers)
	assert.Equal(t, 3, health.Workers.Workers)

	require.NotNil(t, health.Events)
	assert.Equal(t, 1, health.RecentErrors)

	snap, ok := monitor.Snapshot()
	require.True(t, ok)
	assert.Equal(t, health.CheckedAt, snap.CheckedAt)
}

func TestMonitorDegradedOnFailingTool(t *testing.T) {
	toolReg := tools.NewRegistry()
	require.NoError(t, toolReg.Register(&fakeTool{name: "local_llm", healthErr: errors.New("connection refused")}))
	require.NoError(t, toolReg.Register(&fakeTool{name: "web_search"}))

	monitor := NewMonitor(MonitorDeps{Tools: toolReg}, time.Minute)
	health := monitor.Check(context.Background())

	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "connection refused", health.Tools["local_llm"])
	assert.Equal(t, "ok", health.Tools["web_search"])
}

func TestMonitorSweepsStaleRooms(t *testing.T) {
	registry := rooms.NewRegistry(50 * time.Millisecond)
	_, err := registry.Register(rooms.Registration{
		ID:           "mac-studio",
		Name:         "mac studio",
		URL:          "http://mac-studio.local:9090",
		Capabilities: []string{"local_llm"},
	})
	require.NoError(t, err)
	time.Sleep(80 * time.Millisecond)

	monitor := NewMonitor(MonitorDeps{Rooms: registry}, time.Minute)
	health := monitor.Check(context.Background())

	assert.Equal(t, []string{"mac-studio"}, health.RoomsSwept)
	require.NotNil(t, health.Rooms)
	assert.Equal(t, 1, health.Rooms.OfflineRooms)
}

func TestMonitorSnapshotBeforeFirstCheck(t *testing.T) {
	monitor := NewMonitor(MonitorDeps{}, time.Minute)
	_, ok := monitor.Snapshot()
	assert.False(t, ok)
}

func TestMonitorStartStop(t *testing.T) {
	bus := events.NewBus(events.BusConfig{})
	t.Cleanup(bus.Close)

	monitor := NewMonitor(MonitorDeps{Bus: bus}, time.Minute)
	monitor.Start(context.Background())
	monitor.Start(context.Background()) // duplicate Start is a no-op

	require.Eventually(t, func() bool {
		_, ok := monitor.Snapshot()
		return ok
	}, 5*time.Second, 10*time.Millisecond, "the first sweep runs immediately")

	monitor.Stop()
}
