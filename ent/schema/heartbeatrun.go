package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HeartbeatRun holds the schema definition for the HeartbeatRun entity.
// One row per heartbeat firing, keyed by the cron minute it fired for.
type HeartbeatRun struct {
	ent.Schema
}

// Fields of the HeartbeatRun.
func (HeartbeatRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("heartbeat_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable().
			Comment("Task the scheduler submitted for this run"),
		field.Time("scheduled_for").
			Immutable().
			Comment("Cron minute this run fired for, truncated to the minute"),
		field.Enum("status").
			Values("pending", "complete", "failed").
			Default("pending"),
		field.Text("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the HeartbeatRun.
func (HeartbeatRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("heartbeat", Heartbeat.Type).
			Ref("runs").
			Field("heartbeat_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HeartbeatRun.
func (HeartbeatRun) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate-fire suppression within a cron minute
		index.Fields("heartbeat_id", "scheduled_for").
			Unique(),
	}
}
