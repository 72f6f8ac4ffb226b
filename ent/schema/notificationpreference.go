package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationPreference holds the schema definition for the
// NotificationPreference entity. Per-user delivery rules consulted when
// a notify_on_complete task reaches a terminal status.
type NotificationPreference struct {
	ent.Schema
}

// Fields of the NotificationPreference.
func (NotificationPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("preference_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Bool("enabled").
			Default(true),
		field.Int("quiet_hours_start").
			Optional().
			Nillable().
			Comment("Local hour 0-23 in the user's timezone; delivery suppressed inside the window"),
		field.Int("quiet_hours_end").
			Optional().
			Nillable(),
		field.JSON("outcomes", []string{}).
			Optional().
			Comment("Notify only for these outcomes; empty means all"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the NotificationPreference.
func (NotificationPreference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("notification_preferences").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the NotificationPreference.
func (NotificationPreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("app_id", "user_id").
			Unique(),
	}
}
