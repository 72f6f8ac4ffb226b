package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile holds the schema definition for the UserProfile entity.
// One row per (app, external user id), auto-created the first time the
// user id appears in X-User-Id. Trust metrics live here because they
// share exactly this key.
type UserProfile struct {
	ent.Schema
}

// Fields of the UserProfile.
func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("profile_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("external_user_id").
			Immutable().
			Comment("Caller-supplied identifier from X-User-Id"),
		field.String("display_name").
			Optional().
			Nillable(),
		field.String("timezone").
			Default("UTC"),
		field.JSON("preferences", map[string]interface{}{}).
			Optional().
			Comment("Default task preferences (thoroughness, notify_on_complete, ...)"),

		// Trust metrics
		field.Int("trust_level").
			Default(0).
			Comment("0 supervised, 1 autonomous, 2 minimal; changes only via PUT /trust/level"),
		field.Int("total_tasks").
			Default(0),
		field.Int("successful_tasks").
			Default(0).
			Comment("Terminal outcome in {complete, saturated}"),
		field.Int("failed_tasks").
			Default(0),
		field.Int("consecutive_successes").
			Default(0).
			Comment("Reset to 0 on any non-success terminal"),
		field.Time("last_task_at").
			Optional().
			Nillable(),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the UserProfile.
func (UserProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("user_profiles").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserProfile.
func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		// One profile per user within an app
		index.Fields("app_id", "external_user_id").
			Unique(),
	}
}
