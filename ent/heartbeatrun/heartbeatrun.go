// Code generated by ent, DO NOT EDIT.

package heartbeatrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the heartbeatrun type in the database.
	Label = "heartbeat_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldHeartbeatID holds the string denoting the heartbeat_id field in the database.
	FieldHeartbeatID = "heartbeat_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldScheduledFor holds the string denoting the scheduled_for field in the database.
	FieldScheduledFor = "scheduled_for"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeHeartbeat holds the string denoting the heartbeat edge name in mutations.
	EdgeHeartbeat = "heartbeat"
	// HeartbeatFieldID holds the string denoting the ID field of the Heartbeat.
	HeartbeatFieldID = "heartbeat_id"
	// Table holds the table name of the heartbeatrun in the database.
	Table = "heartbeat_runs"
	// HeartbeatTable is the table that holds the heartbeat relation/edge.
	HeartbeatTable = "heartbeat_runs"
	// HeartbeatInverseTable is the table name for the Heartbeat entity.
	// It exists in this package in order to avoid circular dependency with the "heartbeat" package.
	HeartbeatInverseTable = "heartbeats"
	// HeartbeatColumn is the table column denoting the heartbeat relation/edge.
	HeartbeatColumn = "heartbeat_id"
)

// Columns holds all SQL columns for heartbeatrun fields.
var Columns = []string{
	FieldID,
	FieldHeartbeatID,
	FieldTaskID,
	FieldScheduledFor,
	FieldStatus,
	FieldError,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusComplete, StatusFailed:
		return nil
	default:
		return fmt.Errorf("heartbeatrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the HeartbeatRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHeartbeatID orders the results by the heartbeat_id field.
func ByHeartbeatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByScheduledFor orders the results by the scheduled_for field.
func ByScheduledFor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledFor, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByHeartbeatField orders the results by heartbeat field.
func ByHeartbeatField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHeartbeatStep(), sql.OrderByField(field, opts...))
	}
}
func newHeartbeatStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HeartbeatInverseTable, HeartbeatFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HeartbeatTable, HeartbeatColumn),
	)
}
