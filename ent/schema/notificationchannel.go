package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationChannel holds the schema definition for the
// NotificationChannel entity. Where to reach a user: a telegram chat,
// a slack channel or a webhook URL.
type NotificationChannel struct {
	ent.Schema
}

// Fields of the NotificationChannel.
func (NotificationChannel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("app_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("kind").
			Values("telegram", "slack", "webhook"),
		field.String("target").
			Comment("Chat id for telegram, channel for slack, URL for webhook"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the NotificationChannel.
func (NotificationChannel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("app", App.Type).
			Ref("notification_channels").
			Field("app_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the NotificationChannel.
func (NotificationChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("app_id", "user_id", "is_active"),
	}
}
