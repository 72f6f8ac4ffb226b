package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// The persisted record of one submitted unit of work, from submission
// through its single terminal transition.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("user_id").
			Optional().
			Immutable().
			Comment("External user id from the request context, for trust bookkeeping"),
		field.Text("query").
			Immutable(),
		field.JSON("request", map[string]interface{}{}).
			Immutable().
			Comment("Full TaskRequest as submitted"),

		// Lifecycle
		//
		// pending:           accepted, waiting for a worker
		// awaiting_approval: trust level 0, plan returned, not yet approved
		// running:           a worker owns it
		// complete|failed|cancelled: terminal; record and events frozen
		field.Enum("status").
			Values("pending", "awaiting_approval", "running", "complete", "failed", "cancelled").
			Default("pending"),
		field.Enum("outcome").
			Values("complete", "saturated", "bounded", "inconclusive").
			Optional().
			Nillable().
			Comment("Instrument outcome, set with the terminal status"),

		// Routing decision
		field.String("instrument").
			Optional().
			Comment("Instrument chosen by the conductor"),
		field.String("process_type").
			Optional().
			Comment("autonomic, semi_autonomic or conscious"),
		field.String("room_id").
			Optional().
			Nillable().
			Comment("Room that executed the task, when delegated"),

		// Result
		field.JSON("response", map[string]interface{}{}).
			Optional().
			Comment("Full TaskResponse for terminal successful tasks"),
		field.Text("error").
			Optional().
			Nillable(),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set once, on the terminal transition"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("tasks").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
		edge.To("iterations", TaskIteration.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Active/recent listings per app
		index.Fields("app_id", "status"),
		index.Fields("app_id", "created_at"),
		// Startup sweep scans running tasks across all apps
		index.Fields("status"),
	}
}
