package taskmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestApprovalStorePutGetTake(t *testing.T) {
	store := NewApprovalStore()

	plan := &models.TaskPlan{
		TaskID:     "task-1",
		Query:      "investigate storage growth",
		Instrument: "research",
	}
	req := &models.TaskRequest{Query: "investigate storage growth"}
	store.Put("task-1", plan, req)
	assert.Equal(t, 1, store.Len())

	entry, ok := store.Get("task-1")
	require.True(t, ok)
	assert.Equal(t, plan, entry.Plan)
	assert.Equal(t, req, entry.Request)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, 1, store.Len(), "Get must not remove the entry")

	taken, ok := store.Take("task-1")
	require.True(t, ok)
	assert.Equal(t, plan, taken.Plan)
	assert.Equal(t, 0, store.Len())
}

func TestApprovalStoreTakeTwice(t *testing.T) {
	store := NewApprovalStore()
	store.Put("task-1", &models.TaskPlan{TaskID: "task-1"}, &models.TaskRequest{Query: "q"})

	_, ok := store.Take("task-1")
	require.True(t, ok)

	_, ok = store.Take("task-1")
	assert.False(t, ok, "second take must report missing")
}

func TestApprovalStoreRemove(t *testing.T) {
	store := NewApprovalStore()
	store.Put("task-1", &models.TaskPlan{TaskID: "task-1"}, &models.TaskRequest{Query: "q"})

	assert.True(t, store.Remove("task-1"))
	assert.False(t, store.Remove("task-1"))
	assert.Equal(t, 0, store.Len())
}

func TestApprovalStoreUnknownTask(t *testing.T) {
	store := NewApprovalStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	_, ok = store.Take("missing")
	assert.False(t, ok)
}

func TestApprovalStorePutReplaces(t *testing.T) {
	store := NewApprovalStore()
	store.Put("task-1", &models.TaskPlan{TaskID: "task-1", Instrument: "note"}, &models.TaskRequest{Query: "old"})
	store.Put("task-1", &models.TaskPlan{TaskID: "task-1", Instrument: "research"}, &models.TaskRequest{Query: "new"})

	entry, ok := store.Get("task-1")
	require.True(t, ok)
	assert.Equal(t, "research", entry.Plan.Instrument)
	assert.Equal(t, "new", entry.Request.Query)
	assert.Equal(t, 1, store.Len())
}
