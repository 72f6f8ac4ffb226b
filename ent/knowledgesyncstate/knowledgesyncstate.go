// Code generated by ent, DO NOT EDIT.

package knowledgesyncstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the knowledgesyncstate type in the database.
	Label = "knowledge_sync_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sync_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldAppID holds the string denoting the app_id field in the database.
	FieldAppID = "app_id"
	// FieldLastVersion holds the string denoting the last_version field in the database.
	FieldLastVersion = "last_version"
	// FieldSyncedAt holds the string denoting the synced_at field in the database.
	FieldSyncedAt = "synced_at"
	// EdgeApp holds the string denoting the app edge name in mutations.
	EdgeApp = "app"
	// AppFieldID holds the string denoting the ID field of the App.
	AppFieldID = "app_id"
	// Table holds the table name of the knowledgesyncstate in the database.
	Table = "knowledge_sync_states"
	// AppTable is the table that holds the app relation/edge.
	AppTable = "knowledge_sync_states"
	// AppInverseTable is the table name for the App entity.
	// It exists in this package in order to avoid circular dependency with the "app" package.
	AppInverseTable = "apps"
	// AppColumn is the table column denoting the app relation/edge.
	AppColumn = "app_id"
)

// Columns holds all SQL columns for knowledgesyncstate fields.
var Columns = []string{
	FieldID,
	FieldRoomID,
	FieldAppID,
	FieldLastVersion,
	FieldSyncedAt,
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
	// DefaultLastVersion holds the default value on creation for the "last_version" field.
	DefaultLastVersion int
	// DefaultSyncedAt holds the default value on creation for the "synced_at" field.
	DefaultSyncedAt func() time.Time
)

// OrderOption defines the ordering options for the KnowledgeSyncState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByAppID orders the results by the app_id field.
func ByAppID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppID, opts...).ToFunc()
}

// ByLastVersion orders the results by the last_version field.
func ByLastVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastVersion, opts...).ToFunc()
}

// BySyncedAt orders the results by the synced_at field.
func BySyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncedAt, opts...).ToFunc()
}

// ByAppField orders the results by app field.
func ByAppField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppStep(), sql.OrderByField(field, opts...))
	}
}
func newAppStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppInverseTable, AppFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
	)
}
