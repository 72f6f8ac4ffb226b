package models

import "time"

// Heartbeat is a recurring scheduled task owned by an app's user.
// QueryTemplate supports the {date}, {datetime}, {time}, {weekday},
// {heartbeat_name} and {user_name} placeholders, substituted at fire
// time; ContextTemplate seeds the task context.
type Heartbeat struct {
	ID              string         `json:"id"`
	AppID           string         `json:"app_id"`
	UserID          string         `json:"user_id,omitempty"`
	Name            string         `json:"name"`
	QueryTemplate   string         `json:"query_template"`
	CronExpression  string         `json:"cron_expression"`
	Timezone        string         `json:"timezone"`
	ContextTemplate map[string]any `json:"context_template,omitempty"`
	WebhookURL      string         `json:"webhook_url,omitempty"`
	IsActive        bool           `json:"is_active"`
	LastRunAt       *time.Time     `json:"last_run_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// HeartbeatRun records one firing of a heartbeat. The (heartbeat_id,
// scheduled_for) pair is unique so a tick can never double-fire.
type HeartbeatRun struct {
	ID           string     `json:"id"`
	HeartbeatID  string     `json:"heartbeat_id"`
	TaskID       string     `json:"task_id,omitempty"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	Status       string     `json:"status"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
