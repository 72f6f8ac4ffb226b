package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ErrorRecord holds the schema definition for the ErrorRecord entity.
// The raw error-learning store: every classified failure from tools,
// instruments and room delegation lands here.
type ErrorRecord struct {
	ent.Schema
}

// Fields of the ErrorRecord.
func (ErrorRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("error_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Task in flight when the error happened, when known"),
		field.Enum("source").
			Values("tool", "instrument", "room"),
		field.String("kind").
			Comment("Classification, e.g. rate_limited, timeout, unreachable"),
		field.Text("message"),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ErrorRecord.
func (ErrorRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("error_records").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ErrorRecord.
func (ErrorRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Recent error pressure for health reporting
		index.Fields("app_id", "created_at"),
		index.Fields("app_id", "source"),
	}
}
