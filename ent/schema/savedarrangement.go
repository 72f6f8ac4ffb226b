package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/loop-symphony/symphony/pkg/models"
)

// SavedArrangement holds the schema definition for the SavedArrangement
// entity. A reusable composition: a named list of instrument steps a
// task can reference by id instead of carrying the spec inline.
type SavedArrangement struct {
	ent.Schema
}

// Fields of the SavedArrangement.
func (SavedArrangement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("arrangement_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("kind").
			Values("sequential", "parallel", "cross_room"),
		field.JSON("steps", []models.ArrangementStep{}).
			Comment("Ordered for sequential, unordered branches otherwise"),
		field.String("merge").
			Default("synthesis").
			Comment("Merge strategy for parallel and cross-room results"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SavedArrangement.
func (SavedArrangement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("arrangements").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SavedArrangement.
func (SavedArrangement) Indexes() []ent.Index {
	return []ent.Index{
		// Names are unique per app so callers can address by name
		index.Fields("app_id", "name").
			Unique(),
	}
}
