// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
)

// HeartbeatRun is the model entity for the HeartbeatRun schema.
type HeartbeatRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// HeartbeatID holds the value of the "heartbeat_id" field.
	HeartbeatID string `json:"heartbeat_id,omitempty"`
	// Task the scheduler submitted for this run
	TaskID *string `json:"task_id,omitempty"`
	// Cron minute this run fired for, truncated to the minute
	ScheduledFor time.Time `json:"scheduled_for,omitempty"`
	// Status holds the value of the "status" field.
	Status heartbeatrun.Status `json:"status,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HeartbeatRunQuery when eager-loading is set.
	Edges        HeartbeatRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HeartbeatRunEdges holds the relations/edges for other nodes in the graph.
type HeartbeatRunEdges struct {
	// Heartbeat holds the value of the heartbeat edge.
	Heartbeat *Heartbeat `json:"heartbeat,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HeartbeatOrErr returns the Heartbeat value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HeartbeatRunEdges) HeartbeatOrErr() (*Heartbeat, error) {
	if e.Heartbeat != nil {
		return e.Heartbeat, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: heartbeat.Label}
	}
	return nil, &NotLoadedError{edge: "heartbeat"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HeartbeatRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case heartbeatrun.FieldID, heartbeatrun.FieldHeartbeatID, heartbeatrun.FieldTaskID, heartbeatrun.FieldStatus, heartbeatrun.FieldError:
			values[i] = new(sql.NullString)
		case heartbeatrun.FieldScheduledFor, heartbeatrun.FieldCreatedAt, heartbeatrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HeartbeatRun fields.
func (_m *HeartbeatRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case heartbeatrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case heartbeatrun.FieldHeartbeatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_id", values[i])
			} else if value.Valid {
				_m.HeartbeatID = value.String
			}
		case heartbeatrun.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case heartbeatrun.FieldScheduledFor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_for", values[i])
			} else if value.Valid {
				_m.ScheduledFor = value.Time
			}
		case heartbeatrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = heartbeatrun.Status(value.String)
			}
		case heartbeatrun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case heartbeatrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case heartbeatrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HeartbeatRun.
// This includes values selected through modifiers, order, etc.
func (_m *HeartbeatRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHeartbeat queries the "heartbeat" edge of the HeartbeatRun entity.
func (_m *HeartbeatRun) QueryHeartbeat() *HeartbeatQuery {
	return NewHeartbeatRunClient(_m.config).QueryHeartbeat(_m)
}

// Update returns a builder for updating this HeartbeatRun.
// Note that you need to call HeartbeatRun.Unwrap() before calling this method if this HeartbeatRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HeartbeatRun) Update() *HeartbeatRunUpdateOne {
	return NewHeartbeatRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HeartbeatRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HeartbeatRun) Unwrap() *HeartbeatRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HeartbeatRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HeartbeatRun) String() string {
	var builder strings.Builder
	builder.WriteString("HeartbeatRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("heartbeat_id=")
	builder.WriteString(_m.HeartbeatID)
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_for=")
	builder.WriteString(_m.ScheduledFor.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// HeartbeatRuns is a parsable slice of HeartbeatRun.
type HeartbeatRuns []*HeartbeatRun
