package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Heartbeat holds the schema definition for the Heartbeat entity.
// A user-owned recurring task: a cron expression plus a query template
// the scheduler materializes into a real task on every matching tick.
type Heartbeat struct {
	ent.Schema
}

// Fields of the Heartbeat.
func (Heartbeat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("heartbeat_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("user_id").
			Optional().
			Comment("External user id the materialized tasks run as"),
		field.String("name"),
		field.Text("query_template").
			Comment("Supports {date}, {time} and {user_name} placeholders"),
		field.String("cron_expression").
			Comment("Five-field cron expression, evaluated in the heartbeat's timezone"),
		field.String("timezone").
			Default("UTC"),
		field.JSON("context_template", map[string]interface{}{}).
			Optional().
			Comment("Merged into the materialized task's context"),
		field.String("webhook_url").
			Optional().
			Nillable().
			Comment("POST target for the finished TaskResponse, fire-and-forget"),
		field.Bool("is_active").
			Default(true),
		field.Time("last_run_at").
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

// Edges of the Heartbeat.
func (Heartbeat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("heartbeats").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", HeartbeatRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Heartbeat.
func (Heartbeat) Indexes() []ent.Index {
	return []ent.Index{
		// Per-app listings
		index.Fields("app_id"),
		// Scheduler tick scans active heartbeats across all apps
		index.Fields("is_active"),
	}
}
