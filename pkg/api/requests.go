package api

import (
	"github.com/loop-symphony/symphony/pkg/models"
)

// setTrustLevelRequest is the PUT /trust/level body. The pointer keeps
// a missing field distinguishable from level 0.
type setTrustLevelRequest struct {
	TrustLevel *int `json:"trust_level"`
}

// heartbeatRequest is the create/update body for scheduled heartbeats.
// On update, zero-valued fields keep the stored values.
type heartbeatRequest struct {
	Name            string                 `json:"name"`
	QueryTemplate   string                 `json:"query_template"`
	CronExpression  string                 `json:"cron_expression"`
	Timezone        string                 `json:"timezone"`
	ContextTemplate map[string]interface{} `json:"context_template"`
	WebhookURL      *string                `json:"webhook_url"`
	IsActive        *bool                  `json:"is_active"`
}

// roomHeartbeatRequest refreshes a room's liveness. Optional fields
// keep the registry's current values. A non-nil last_knowledge_version
// asks for the knowledge delta since that version; learnings are the
// room's observations to fold into the shared knowledge base.
type roomHeartbeatRequest struct {
	RoomID               string            `json:"room_id"`
	RoomName             string            `json:"room_name"`
	Status               string            `json:"status"`
	Load                 *float64          `json:"load"`
	Capabilities         []string          `json:"capabilities"`
	AppID                string            `json:"app_id"`
	LastKnowledgeVersion *int              `json:"last_knowledge_version"`
	Learnings            []models.Learning `json:"learnings"`
}

// roomDeregisterRequest removes a room from the registry.
type roomDeregisterRequest struct {
	RoomID string `json:"room_id"`
}

// preferenceRequest is the PUT /notifications/preferences body. Nil
// fields keep the stored values.
type preferenceRequest struct {
	Enabled         *bool    `json:"enabled"`
	QuietHoursStart *int     `json:"quiet_hours_start"`
	QuietHoursEnd   *int     `json:"quiet_hours_end"`
	Outcomes        []string `json:"outcomes"`
}

// channelRequest registers a delivery channel.
type channelRequest struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
}
