package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeSyncState holds the schema definition for the
// KnowledgeSyncState entity. Per (room, app) cursor of the highest
// knowledge version delivered to that room.
type KnowledgeSyncState struct {
	ent.Schema
}

// Fields of the KnowledgeSyncState.
func (KnowledgeSyncState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sync_id").
			Unique().
			Immutable(),
		field.String("room_id").
			Immutable().
			Comment("Registry room id; rooms themselves live in memory"),
		field.String("app_id").
			Immutable(),
		field.Int("last_version").
			Default(0),
		field.Time("synced_at").
			Default(time.Now),
	}
}

// Edges of the KnowledgeSyncState.
func (KnowledgeSyncState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("knowledge_sync_states").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeSyncState.
func (KnowledgeSyncState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id", "app_id").
			Unique(),
	}
}
