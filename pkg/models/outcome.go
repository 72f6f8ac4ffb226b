// Package models defines the domain types shared across the orchestration
// engine: tasks, findings, outcomes, trust metrics, heartbeats, and rooms.
package models

// Outcome is the terminal classification of a loop.
type Outcome string

const (
	// OutcomeComplete means the loop reached a confident answer.
	OutcomeComplete Outcome = "complete"
	// OutcomeSaturated means further iterations stopped adding information.
	OutcomeSaturated Outcome = "saturated"
	// OutcomeBounded means the loop hit its iteration ceiling.
	OutcomeBounded Outcome = "bounded"
	// OutcomeInconclusive means findings contain an unresolved contradiction.
	OutcomeInconclusive Outcome = "inconclusive"
)

// IsSuccess reports whether the outcome counts as a success for trust
// accounting (complete and saturated do; bounded and inconclusive do not).
func (o Outcome) IsSuccess() bool {
	return o == OutcomeComplete || o == OutcomeSaturated
}

// ProcessType tags how visible a task's execution is to the user.
type ProcessType string

const (
	// ProcessAutonomic runs invisibly; only the final answer surfaces.
	ProcessAutonomic ProcessType = "autonomic"
	// ProcessSemiAutonomic runs in the background with summarized progress.
	ProcessSemiAutonomic ProcessType = "semi_autonomic"
	// ProcessConscious streams full progress to the user.
	ProcessConscious ProcessType = "conscious"
)

// TaskStatus is the lifecycle state of a persisted task.
type TaskStatus string

const (
	StatusPending          TaskStatus = "pending"
	StatusAwaitingApproval TaskStatus = "awaiting_approval"
	StatusRunning          TaskStatus = "running"
	StatusComplete         TaskStatus = "complete"
	StatusFailed           TaskStatus = "failed"
	StatusCancelled        TaskStatus = "cancelled"
)

// IsTerminal reports whether the status is final. Terminal tasks and their
// events are immutable.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusComplete || s == StatusFailed || s == StatusCancelled
}
