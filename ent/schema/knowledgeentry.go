package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeEntry holds the schema definition for the KnowledgeEntry
// entity. One row per (app, topic); rewrites bump the app-monotonic
// version so room heartbeats can pull deltas.
type KnowledgeEntry struct {
	ent.Schema
}

// Fields of the KnowledgeEntry.
func (KnowledgeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("topic"),
		field.Text("content"),
		field.Int("version").
			Comment("Monotonic per app; assigned on every write"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the KnowledgeEntry.
func (KnowledgeEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("knowledge_entries").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeEntry.
func (KnowledgeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("app_id", "topic").
			Unique(),
		// Delta scans: entries with version greater than a cursor
		index.Fields("app_id", "version"),
	}
}
