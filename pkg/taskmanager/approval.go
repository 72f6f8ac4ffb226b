package taskmanager

import (
	"sync"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
)

// PendingApproval is one held trust-level-0 plan, kept alongside the
// original request so approval can queue it without rebuilding routing.
type PendingApproval struct {
	Plan      *models.TaskPlan
	Request   *models.TaskRequest
	CreatedAt time.Time
}

// ApprovalStore holds plans for tasks parked in awaiting_approval. The
// store is in-memory only; the request itself is also persisted on the
// task row, so a restart loses the plan but never the ability to run an
// approved task.
type ApprovalStore struct {
	mu      sync.Mutex
	pending map[string]*PendingApproval
}

// NewApprovalStore creates an empty approval store.
func NewApprovalStore() *ApprovalStore {
	return &ApprovalStore{pending: make(map[string]*PendingApproval)}
}

// Put parks a plan under its task ID, replacing any previous entry.
func (s *ApprovalStore) Put(taskID string, plan *models.TaskPlan, req *models.TaskRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[taskID] = &PendingApproval{
		Plan:      plan,
		Request:   req,
		CreatedAt: time.Now().UTC(),
	}
}

// Get returns the held entry without removing it.
func (s *ApprovalStore) Get(taskID string) (*PendingApproval, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.pending[taskID]
	return entry, ok
}

// Take removes and returns the held entry. The second Take for a task
// reports false, which makes double-approval a natural no-op.
func (s *ApprovalStore) Take(taskID string) (*PendingApproval, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.pending[taskID]
	if ok {
		delete(s.pending, taskID)
	}
	return entry, ok
}

// Remove drops the held entry, if any. Used when an awaiting task is
// cancelled instead of approved.
func (s *ApprovalStore) Remove(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[taskID]
	delete(s.pending, taskID)
	return ok
}

// Len reports how many plans are parked.
func (s *ApprovalStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
