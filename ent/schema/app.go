package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// App holds the schema definition for the App entity.
// An App is a registered API consumer; every other row in the database
// hangs off exactly one App and is invisible to the others.
type App struct {
	ent.Schema
}

// Mixin of the App.
func (App) Mixin() []ent.Mixin {
	return []ent.Mixin{}
}

// Fields of the App.
func (App) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("app_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Human-readable application name"),
		field.String("api_key").
			Unique().
			Comment("Bearer credential presented in X-Api-Key"),
		field.Bool("is_active").
			Default(true).
			Comment("Deactivated apps authenticate but are refused (403)"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the App.
func (App) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user_profiles", UserProfile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("heartbeats", Heartbeat.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("arrangements", SavedArrangement.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("error_records", ErrorRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("error_patterns", ErrorPattern.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge_entries", KnowledgeEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge_sync_states", KnowledgeSyncState.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("notification_preferences", NotificationPreference.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("notification_channels", NotificationChannel.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("notification_history", NotificationHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Annotations of the App.
func (App) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
