package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoomLearning holds the schema definition for the RoomLearning entity.
// A {topic, content} observation a room reported in its heartbeat.
type RoomLearning struct {
	ent.Schema
}

// Fields of the RoomLearning.
func (RoomLearning) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("learning_id").
			Unique().
			Immutable(),
		field.String("room_id").
			Immutable(),
		field.String("app_id").
			Optional().
			Immutable().
			Comment("Set when the room attributes the learning to an app"),
		field.String("topic"),
		field.Text("content"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RoomLearning.
func (RoomLearning) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id", "received_at"),
		index.Fields("app_id"),
	}
}
