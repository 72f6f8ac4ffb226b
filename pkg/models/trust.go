package models

import "time"

// Trust levels gate what runs without a human in the loop.
//
//	0: every task requires approval before execution
//	1: tasks run immediately, full responses returned
//	2: tasks run immediately, minimal responses returned
const (
	TrustSupervised = 0
	TrustAutonomous = 1
	TrustMinimal    = 2
)

// TrustMetrics is the per-(app, user) trust record.
type TrustMetrics struct {
	AppID              string     `json:"app_id"`
	UserID             string     `json:"user_id"`
	Level              int        `json:"current_trust_level"`
	TotalTasks         int        `json:"total_tasks"`
	SuccessfulTasks    int        `json:"successful_tasks"`
	FailedTasks        int        `json:"failed_tasks"`
	ConsecutiveSuccess int        `json:"consecutive_successes"`
	LastTaskAt         *time.Time `json:"last_task_at,omitempty"`
}

// SuccessRate returns the lifetime success ratio, 0 when no tasks ran.
func (m *TrustMetrics) SuccessRate() float64 {
	if m.TotalTasks == 0 {
		return 0
	}
	return float64(m.SuccessfulTasks) / float64(m.TotalTasks)
}

// TrustSuggestion is advisory only. Level changes happen exclusively
// through an explicit update call.
type TrustSuggestion struct {
	CurrentLevel   int     `json:"current_level"`
	SuggestedLevel int     `json:"suggested_level"`
	Eligible       bool    `json:"eligible"`
	Reason         string  `json:"reason"`
	SuccessRate    float64 `json:"success_rate"`
}
