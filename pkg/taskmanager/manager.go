// Package taskmanager supervises background task execution: a bounded
// worker pool drains submitted tasks, drives each one to exactly one
// terminal status, and publishes lifecycle events along the way.
package taskmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

// ErrQueueFull is returned by Submit when the admission queue is at
// capacity. The task row stays pending; the caller decides whether to
// retry or surface the saturation.
var ErrQueueFull = errors.New("task queue full")

// ErrStopped is returned by Submit after the manager has begun shutdown.
var ErrStopped = errors.New("task manager stopped")

// ExecFunc runs one task to its result. The manager owns the terminal
// transition and its event; the func only returns the response or the
// error. A context.Canceled error (or a cancelled ctx) classifies the
// task as cancelled rather than failed.
type ExecFunc func(ctx context.Context) (*models.TaskResponse, error)

// submission pairs a task with its executable body while it waits for a
// worker.
type submission struct {
	taskID string
	exec   ExecFunc
}

// CancelResult says how a cancel request was satisfied.
type CancelResult string

const (
	// CancelSignalled means a live worker holds the task and was told to
	// stop; it writes the terminal row when it observes the signal.
	CancelSignalled CancelResult = "cancelling"
	// CancelImmediate means no worker held the task; the row moved
	// straight to cancelled.
	CancelImmediate CancelResult = "cancelled"
)

// Manager owns all in-flight background tasks. Submissions queue onto a
// bounded channel; worker goroutines mark each task running, execute it,
// and record the terminal transition. Workers are panic-isolated: an
// escaping panic fails the task, never the process.
type Manager struct {
	tasks     *services.TaskService
	bus       *events.Bus
	approvals *ApprovalStore

	queue       chan submission
	workerCount int
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Task cancel registry: task_id → cancel function
	mu      sync.RWMutex
	active  map[string]context.CancelFunc
	started bool

	statsMu        sync.Mutex
	tasksProcessed int
}

// NewManager creates a task manager sized by the worker config.
func NewManager(tasks *services.TaskService, bus *events.Bus, cfg config.WorkerConfig) *Manager {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	size := cfg.QueueSize
	if size < 1 {
		size = 64
	}
	return &Manager{
		tasks:       tasks,
		bus:         bus,
		approvals:   NewApprovalStore(),
		queue:       make(chan submission, size),
		workerCount: count,
		stopCh:      make(chan struct{}),
		active:      make(map[string]context.CancelFunc),
	}
}

// Approvals exposes the held-plan store for trust-level-0 tasks.
func (m *Manager) Approvals() *ApprovalStore { return m.approvals }

// Start spawns the worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (m *Manager) Start(ctx context.Context) {
	if m.started {
		slog.Warn("Task manager already started, ignoring duplicate Start call")
		return
	}
	m.started = true

	slog.Info("Starting task manager", "worker_count", m.workerCount, "queue_size", cap(m.queue))
	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current tasks before exiting; queued tasks that never ran
// stay pending and are swept to failed on the next startup.
func (m *Manager) Stop() {
	if inFlight := m.ActiveIDs(); len(inFlight) > 0 {
		slog.Info("Waiting for in-flight tasks to finish", "count", len(inFlight), "task_ids", inFlight)
	}
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
	slog.Info("Task manager stopped")
}

// Submit queues a task for execution. The task row must already exist in
// pending status; a worker marks it running when it picks the task up.
// Returns immediately.
func (m *Manager) Submit(taskID string, exec ExecFunc) error {
	select {
	case <-m.stopCh:
		return ErrStopped
	default:
	}
	select {
	case m.queue <- submission{taskID: taskID, exec: exec}:
		return nil
	default:
		return fmt.Errorf("%w (capacity %d)", ErrQueueFull, cap(m.queue))
	}
}

// Cancel requests cooperative cancellation of a task owned by the app.
// A task with a live worker gets its context cancelled and transitions
// once the worker observes the signal; a task still waiting (pending or
// awaiting approval) transitions to cancelled immediately. Terminal
// tasks return ErrAlreadyTerminal.
func (m *Manager) Cancel(ctx context.Context, appID, taskID string) (CancelResult, error) {
	t, err := m.tasks.GetTask(ctx, appID, taskID)
	if err != nil {
		return "", err
	}
	switch t.Status {
	case task.StatusComplete, task.StatusFailed, task.StatusCancelled:
		return "", services.ErrAlreadyTerminal
	}

	if m.signalCancel(taskID) {
		slog.Info("Cancellation signalled to running task", "task_id", taskID)
		return CancelSignalled, nil
	}

	// No live worker: the task is pending in the queue or awaiting
	// approval. Transition directly; a worker that later dequeues it
	// finds the row terminal and skips.
	if _, err := m.tasks.CancelTask(ctx, taskID); err != nil {
		return "", err
	}
	m.approvals.Remove(taskID)
	m.bus.Publish(models.TaskEvent{TaskID: taskID, Type: models.EventCancelled})
	slog.Info("Queued task cancelled", "task_id", taskID)
	return CancelImmediate, nil
}

// Approve moves an awaiting-approval task to pending and queues the
// stored request for execution. build turns the original request back
// into an executable body. Approving a task that is no longer awaiting
// approval is a no-op that reports the current status.
func (m *Manager) Approve(ctx context.Context, appID, taskID string, build func(req *models.TaskRequest) ExecFunc) (*ent.Task, error) {
	t, approved, err := m.tasks.ApproveTask(ctx, appID, taskID)
	if err != nil {
		return nil, err
	}
	if !approved {
		slog.Debug("Approve was a no-op", "task_id", taskID, "status", t.Status)
		return t, nil
	}

	req := m.takeStoredRequest(t, taskID)
	if req == nil {
		failed, ferr := m.tasks.FailTask(ctx, taskID, "approved but the stored request could not be recovered")
		if ferr != nil {
			return nil, fmt.Errorf("failed to record missing request for task %s: %w", taskID, ferr)
		}
		m.bus.Publish(models.TaskEvent{
			TaskID:  taskID,
			Type:    models.EventError,
			Payload: map[string]any{"error": "approved but the stored request could not be recovered"},
		})
		return failed, nil
	}

	if err := m.Submit(taskID, build(req)); err != nil {
		return nil, err
	}
	slog.Info("Task approved and queued", "task_id", taskID)
	return t, nil
}

// takeStoredRequest prefers the in-memory approval entry, falling back
// to the request column persisted with the task row (the in-memory plan
// does not survive a restart; the row does).
func (m *Manager) takeStoredRequest(t *ent.Task, taskID string) *models.TaskRequest {
	if entry, ok := m.approvals.Take(taskID); ok && entry.Request != nil {
		return entry.Request
	}
	req, err := services.RequestFromTask(t)
	if err != nil {
		slog.Error("Failed to decode stored task request", "task_id", taskID, "error", err)
		return nil
	}
	return req
}

// Active returns the app's tasks still moving, newest first.
func (m *Manager) Active(ctx context.Context, appID string) ([]*ent.Task, error) {
	return m.tasks.ListActive(ctx, appID)
}

// Recent returns the app's newest tasks regardless of status.
func (m *Manager) Recent(ctx context.Context, appID string, limit int) ([]*ent.Task, error) {
	return m.tasks.ListRecent(ctx, appID, limit)
}

// Stats aggregates the app's task counts by status and outcome.
func (m *Manager) Stats(ctx context.Context, appID string) (*services.TaskStats, error) {
	return m.tasks.Stats(ctx, appID)
}

// ActiveIDs returns the task IDs currently held by workers.
func (m *Manager) ActiveIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.active))
	for id := range m.active {
		ids = append(ids, id)
	}
	return ids
}

// Health describes the manager's runtime state.
type Health struct {
	Workers          int `json:"workers"`
	InFlight         int `json:"in_flight"`
	QueueDepth       int `json:"queue_depth"`
	QueueCapacity    int `json:"queue_capacity"`
	PendingApprovals int `json:"pending_approvals"`
	TasksProcessed   int `json:"tasks_processed"`
}

// Health returns a snapshot of pool activity for the system health
// endpoint.
func (m *Manager) Health() Health {
	m.mu.RLock()
	inFlight := len(m.active)
	m.mu.RUnlock()

	m.statsMu.Lock()
	processed := m.tasksProcessed
	m.statsMu.Unlock()

	return Health{
		Workers:          m.workerCount,
		InFlight:         inFlight,
		QueueDepth:       len(m.queue),
		QueueCapacity:    cap(m.queue),
		PendingApprovals: m.approvals.Len(),
		TasksProcessed:   processed,
	}
}

// registerCancel stores a cancel function for cooperative cancellation.
func (m *Manager) registerCancel(taskID string, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[taskID] = cancel
}

// unregisterCancel removes the cancel function when processing ends.
func (m *Manager) unregisterCancel(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, taskID)
}

// signalCancel triggers context cancellation for a task held by a worker.
// Returns true if the task was found.
func (m *Manager) signalCancel(taskID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cancel, ok := m.active[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// runWorker is the main worker loop: drain the queue until stopped.
func (m *Manager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	log := slog.With("worker_id", id)
	log.Info("Task worker started")

	for {
		select {
		case <-m.stopCh:
			log.Info("Task worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, task worker shutting down")
			return
		case sub := <-m.queue:
			m.process(ctx, sub)
		}
	}
}

// process drives one task from pickup to its terminal transition.
func (m *Manager) process(ctx context.Context, sub submission) {
	log := slog.With("task_id", sub.taskID)

	if _, err := m.tasks.MarkRunning(ctx, sub.taskID); err != nil {
		// Cancelled (or otherwise finished) between submit and pickup.
		if errors.Is(err, services.ErrAlreadyTerminal) {
			log.Debug("Skipping task that went terminal before pickup")
			return
		}
		log.Error("Failed to mark task running", "error", err)
		return
	}
	m.bus.Publish(models.TaskEvent{TaskID: sub.taskID, Type: models.EventStarted})

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.registerCancel(sub.taskID, cancel)
	defer m.unregisterCancel(sub.taskID)

	resp, err := m.runExec(taskCtx, sub.exec)

	switch {
	case errors.Is(err, context.Canceled) || (err != nil && errors.Is(taskCtx.Err(), context.Canceled)):
		m.finishCancelled(sub.taskID)
	case err != nil:
		m.finishFailed(sub.taskID, err.Error())
	case resp == nil:
		m.finishFailed(sub.taskID, "executor returned no response")
	default:
		m.finishComplete(sub.taskID, resp)
	}

	m.statsMu.Lock()
	m.tasksProcessed++
	m.statsMu.Unlock()

	log.Info("Task processing finished")
}

// runExec invokes the task body with panic isolation. An escaping panic
// becomes an error so the task fails without taking the worker down.
func (m *Manager) runExec(ctx context.Context, exec ExecFunc) (resp *models.TaskResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task worker panic: %v", r)
			slog.Error("Recovered panic in task worker", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	return exec(ctx)
}

// Terminal writers. Each publishes its event only after the conditional
// DB transition succeeded, so a task that raced to terminal elsewhere
// emits nothing here: one transition, one terminal event.

func (m *Manager) finishComplete(taskID string, resp *models.TaskResponse) {
	if _, err := m.tasks.CompleteTask(context.Background(), taskID, resp.Outcome, resp); err != nil {
		slog.Error("Failed to record task completion", "task_id", taskID, "error", err)
		return
	}
	m.bus.Publish(models.TaskEvent{
		TaskID: taskID,
		Type:   models.EventComplete,
		Payload: map[string]any{
			"outcome":    string(resp.Outcome),
			"summary":    resp.Summary,
			"confidence": resp.Confidence,
		},
	})
}

func (m *Manager) finishFailed(taskID, errMsg string) {
	if _, err := m.tasks.FailTask(context.Background(), taskID, errMsg); err != nil {
		slog.Error("Failed to record task failure", "task_id", taskID, "error", err)
		return
	}
	m.bus.Publish(models.TaskEvent{
		TaskID:  taskID,
		Type:    models.EventError,
		Payload: map[string]any{"error": errMsg},
	})
}

func (m *Manager) finishCancelled(taskID string) {
	if _, err := m.tasks.CancelTask(context.Background(), taskID); err != nil {
		if !errors.Is(err, services.ErrAlreadyTerminal) {
			slog.Error("Failed to record task cancellation", "task_id", taskID, "error", err)
		}
		return
	}
	m.bus.Publish(models.TaskEvent{TaskID: taskID, Type: models.EventCancelled})
}
