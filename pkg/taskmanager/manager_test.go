package taskmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestManagerRegisterAndSignalCancel(t *testing.T) {
	m := &Manager{active: make(map[string]context.CancelFunc)}

	ctx, cancel := context.WithCancel(context.Background())
	m.registerCancel("task-1", cancel)

	assert.True(t, m.signalCancel("task-1"))
	assert.Error(t, ctx.Err())

	assert.False(t, m.signalCancel("unknown"))
}

func TestManagerUnregisterCancel(t *testing.T) {
	m := &Manager{active: make(map[string]context.CancelFunc)}

	_, cancel := context.WithCancel(context.Background())
	m.registerCancel("task-1", cancel)
	assert.True(t, m.signalCancel("task-1"))

	m.unregisterCancel("task-1")
	assert.False(t, m.signalCancel("task-1"))
}

func TestManagerActiveIDs(t *testing.T) {
	m := &Manager{active: make(map[string]context.CancelFunc)}
	assert.Empty(t, m.ActiveIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	m.registerCancel("task-a", cancel1)
	m.registerCancel("task-b", cancel2)

	ids := m.ActiveIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "task-a")
	assert.Contains(t, ids, "task-b")
}

func TestManagerSubmitQueueFull(t *testing.T) {
	m := &Manager{
		queue:  make(chan submission, 1),
		stopCh: make(chan struct{}),
	}

	noop := func(ctx context.Context) (*models.TaskResponse, error) { return nil, nil }

	require.NoError(t, m.Submit("task-1", noop))
	err := m.Submit("task-2", noop)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestManagerSubmitAfterStop(t *testing.T) {
	m := &Manager{
		queue:  make(chan submission, 4),
		stopCh: make(chan struct{}),
		active: make(map[string]context.CancelFunc),
	}
	m.Stop()

	err := m.Submit("task-1", func(ctx context.Context) (*models.TaskResponse, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrStopped)
}

func TestManagerStopTwiceDoesNotPanic(t *testing.T) {
	m := &Manager{
		queue:  make(chan submission, 4),
		stopCh: make(chan struct{}),
		active: make(map[string]context.CancelFunc),
	}

	m.Stop()
	assert.NotPanics(t, func() { m.Stop() })
}

func TestManagerRunExecRecoversPanic(t *testing.T) {
	m := &Manager{}

	resp, err := m.runExec(context.Background(), func(ctx context.Context) (*models.TaskResponse, error) {
		panic("instrument exploded")
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "instrument exploded")
}

func TestManagerRunExecPassthrough(t *testing.T) {
	m := &Manager{}

	want := &models.TaskResponse{Summary: "done", Outcome: models.OutcomeComplete}
	resp, err := m.runExec(context.Background(), func(ctx context.Context) (*models.TaskResponse, error) {
		return want, nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, resp)
}

func TestManagerHealthSnapshot(t *testing.T) {
	m := &Manager{
		queue:       make(chan submission, 8),
		stopCh:      make(chan struct{}),
		active:      make(map[string]context.CancelFunc),
		approvals:   NewApprovalStore(),
		workerCount: 3,
	}

	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.registerCancel("task-1", cancel)
	m.queue <- submission{taskID: "task-2"}
	m.approvals.Put("task-3", &models.TaskPlan{TaskID: "task-3"}, &models.TaskRequest{Query: "q"})

	h := m.Health()
	assert.Equal(t, 3, h.Workers)
	assert.Equal(t, 1, h.InFlight)
	assert.Equal(t, 1, h.QueueDepth)
	assert.Equal(t, 8, h.QueueCapacity)
	assert.Equal(t, 1, h.PendingApprovals)
}
