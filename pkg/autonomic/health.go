package autonomic

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/loop-symphony/symphony/pkg/database"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
	"github.com/loop-symphony/symphony/pkg/tools"
)

const (
	// checkTimeout bounds one full health sweep.
	checkTimeout = 10 * time.Second
	// errorWindow is how far back the recent-error count looks.
	errorWindow = time.Hour
)

// MonitorDeps are the surfaces the health loop inspects. Any nil entry
// is skipped, which keeps partial wiring (and tests) simple.
type MonitorDeps struct {
	DB      *database.Client
	Tools   *tools.Registry
	Rooms   *rooms.Registry
	Bus     *events.Bus
	Manager *taskmanager.Manager
	Errors  *services.ErrorService
}

// SystemHealth is one cached sweep over every subsystem, served by the
// system health endpoint.
type SystemHealth struct {
	Status       string                 `json:"status"`
	CheckedAt    time.Time              `json:"checked_at"`
	Database     *database.HealthStatus `json:"database,omitempty"`
	Tools        map[string]string      `json:"tools,omitempty"`
	Rooms        *rooms.Stats           `json:"rooms,omitempty"`
	RoomsSwept   []string               `json:"rooms_swept,omitempty"`
	Events       *events.Stats          `json:"events,omitempty"`
	Workers      *taskmanager.Health    `json:"workers,omitempty"`
	RecentErrors int                    `json:"recent_errors"`
}

// Monitor sweeps subsystem health on an interval and caches the result
// so the health endpoint answers from memory instead of fanning out on
// every request.
type Monitor struct {
	deps     MonitorDeps
	interval time.Duration

	mu   sync.RWMutex
	last *SystemHealth

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates the health monitor. An interval below one second
// falls back to five minutes.
func NewMonitor(deps MonitorDeps, interval time.Duration) *Monitor {
	if interval < time.Second {
		interval = 5 * time.Minute
	}
	return &Monitor{deps: deps, interval: interval}
}

// Start launches the sweep loop with an immediate first pass. Safe to
// call once; subsequent calls are no-ops.
func (m *Monitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.run(ctx)

	slog.Info("Health monitor started", "interval", m.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	slog.Info("Health monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Snapshot returns the last sweep, if one has run.
func (m *Monitor) Snapshot() (*SystemHealth, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return nil, false
	}
	copied := *m.last
	return &copied, true
}

// Check sweeps every wired subsystem now, caches the snapshot, and
// returns it.
func (m *Monitor) Check(ctx context.Context) *SystemHealth {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	health := &SystemHealth{
		Status:    "healthy",
		CheckedAt: time.Now().UTC(),
	}

	if m.deps.DB != nil {
		status, err := m.deps.DB.Health(ctx)
		health.Database = status
		if err != nil {
			health.Status = "unhealthy"
			slog.Error("Database health check failed", "error", err)
		}
	}

	if m.deps.Tools != nil {
		results := m.deps.Tools.HealthCheckAll(ctx)
		health.Tools = make(map[string]string, len(results))
		for name, err := range results {
			if err != nil {
				health.Tools[name] = err.Error()
				if health.Status == "healthy" {
					health.Status = "degraded"
				}
				slog.Warn("Tool health check failed", "tool", name, "error", err)
				continue
			}
			health.Tools[name] = "ok"
		}
	}

	if m.deps.Rooms != nil {
		if swept := m.deps.Rooms.SweepOffline(); len(swept) > 0 {
			health.RoomsSwept = swept
			slog.Info("Marked stale rooms offline", "room_ids", swept)
		}
		stats := m.deps.Rooms.Stats()
		health.Rooms = &stats
	}

	if m.deps.Bus != nil {
		stats := m.deps.Bus.Stats()
		health.Events = &stats
	}

	if m.deps.Manager != nil {
		workers := m.deps.Manager.Health()
		health.Workers = &workers
	}

	if m.deps.Errors != nil {
		n, err := m.deps.Errors.CountRecentAll(ctx, errorWindow)
		if err != nil {
			slog.Warn("Recent error count failed", "error", err)
		} else {
			health.RecentErrors = n
		}
	}

	m.mu.Lock()
	m.last = health
	m.mu.Unlock()

	return health
}
