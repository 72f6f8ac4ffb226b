package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskIteration holds the schema definition for the TaskIteration entity.
// One checkpoint per loop iteration, persisted through the conductor's
// checkpoint callback so a task's reasoning trail can be replayed.
type TaskIteration struct {
	ent.Schema
}

// Fields of the TaskIteration.
func (TaskIteration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("iteration_num").
			Immutable().
			Comment("Strictly increasing per task, no gaps"),
		field.String("phase").
			Immutable().
			Comment("hypothesis, experiment, analysis, reflection or a loop-spec phase name"),
		field.JSON("input", map[string]interface{}{}).
			Optional().
			Comment("What the iteration started from (queries, prompts)"),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("What the iteration produced (counts, confidence, decision)"),
		field.Int("duration_ms"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskIteration.
func (TaskIteration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("iterations").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskIteration.
func (TaskIteration) Indexes() []ent.Index {
	return []ent.Index{
		// Checkpoint ordering and the no-gaps invariant
		index.Fields("task_id", "iteration_num").
			Unique(),
	}
}
