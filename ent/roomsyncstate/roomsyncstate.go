// Code generated by ent, DO NOT EDIT.

package roomsyncstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the roomsyncstate type in the database.
	Label = "room_sync_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "room_sync_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldRoomName holds the string denoting the room_name field in the database.
	FieldRoomName = "room_name"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldLastLoad holds the string denoting the last_load field in the database.
	FieldLastLoad = "last_load"
	// FieldHeartbeatCount holds the string denoting the heartbeat_count field in the database.
	FieldHeartbeatCount = "heartbeat_count"
	// FieldLearningsReceived holds the string denoting the learnings_received field in the database.
	FieldLearningsReceived = "learnings_received"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the roomsyncstate in the database.
	Table = "room_sync_states"
)

// Columns holds all SQL columns for roomsyncstate fields.
var Columns = []string{
	FieldID,
	FieldRoomID,
	FieldRoomName,
	FieldLastHeartbeatAt,
	FieldLastLoad,
	FieldHeartbeatCount,
	FieldLearningsReceived,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastHeartbeatAt holds the default value on creation for the "last_heartbeat_at" field.
	DefaultLastHeartbeatAt func() time.Time
	// DefaultLastLoad holds the default value on creation for the "last_load" field.
	DefaultLastLoad float64
	// DefaultHeartbeatCount holds the default value on creation for the "heartbeat_count" field.
	DefaultHeartbeatCount int
	// DefaultLearningsReceived holds the default value on creation for the "learnings_received" field.
	DefaultLearningsReceived int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the RoomSyncState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByRoomName orders the results by the room_name field.
func ByRoomName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomName, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByLastLoad orders the results by the last_load field.
func ByLastLoad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoad, opts...).ToFunc()
}

// ByHeartbeatCount orders the results by the heartbeat_count field.
func ByHeartbeatCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatCount, opts...).ToFunc()
}

// ByLearningsReceived orders the results by the learnings_received field.
func ByLearningsReceived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningsReceived, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
