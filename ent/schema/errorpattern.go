package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ErrorPattern holds the schema definition for the ErrorPattern entity.
// Aggregated view of the error store: recording an ErrorRecord upserts
// the matching pattern and bumps its occurrence count.
type ErrorPattern struct {
	ent.Schema
}

// Fields of the ErrorPattern.
func (ErrorPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("signature").
			Comment("Normalized source + kind + message prefix"),
		field.String("source"),
		field.String("kind"),
		field.Int("occurrences").
			Default(1),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now),
	}
}

// Edges of the ErrorPattern.
func (ErrorPattern) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("error_patterns").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ErrorPattern.
func (ErrorPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("app_id", "signature").
			Unique(),
		// Hot patterns first in health reporting
		index.Fields("app_id", "last_seen"),
	}
}
