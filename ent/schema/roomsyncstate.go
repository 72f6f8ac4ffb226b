package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoomSyncState holds the schema definition for the RoomSyncState
// entity. Per-room heartbeat bookkeeping that outlives the in-memory
// registry across restarts.
type RoomSyncState struct {
	ent.Schema
}

// Fields of the RoomSyncState.
func (RoomSyncState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_sync_id").
			Unique().
			Immutable(),
		field.String("room_id").
			Unique().
			Immutable(),
		field.String("room_name").
			Optional(),
		field.Time("last_heartbeat_at").
			Default(time.Now),
		field.Float("last_load").
			Default(0),
		field.Int("heartbeat_count").
			Default(0),
		field.Int("learnings_received").
			Default(0).
			Comment("Running total of learnings the room has reported"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RoomSyncState.
func (RoomSyncState) Indexes() []ent.Index {
	return []ent.Index{
		// Offline sweep scans by recency
		index.Fields("last_heartbeat_at"),
	}
}
