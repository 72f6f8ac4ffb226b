package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationHistory holds the schema definition for the
// NotificationHistory entity. One row per delivery attempt, including
// suppressed ones, so delivery is auditable per task.
type NotificationHistory struct {
	ent.Schema
}

// Fields of the NotificationHistory.
func (NotificationHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("channel_kind").
			Comment("telegram, slack or webhook"),
		field.Enum("status").
			Values("sent", "failed", "suppressed"),
		field.Text("detail").
			Optional().
			Nillable().
			Comment("Failure reason or suppression cause (quiet hours, outcome filter)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the NotificationHistory.
func (NotificationHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("notification_history").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the NotificationHistory.
func (NotificationHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("app_id", "user_id", "created_at"),
		index.Fields("task_id"),
	}
}
