// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
)

// RoomSyncState is the model entity for the RoomSyncState schema.
type RoomSyncState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID string `json:"room_id,omitempty"`
	// RoomName holds the value of the "room_name" field.
	RoomName string `json:"room_name,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	// LastLoad holds the value of the "last_load" field.
	LastLoad float64 `json:"last_load,omitempty"`
	// HeartbeatCount holds the value of the "heartbeat_count" field.
	HeartbeatCount int `json:"heartbeat_count,omitempty"`
	// Running total of learnings the room has reported
	LearningsReceived int `json:"learnings_received,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoomSyncState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roomsyncstate.FieldLastLoad:
			values[i] = new(sql.NullFloat64)
		case roomsyncstate.FieldHeartbeatCount, roomsyncstate.FieldLearningsReceived:
			values[i] = new(sql.NullInt64)
		case roomsyncstate.FieldID, roomsyncstate.FieldRoomID, roomsyncstate.FieldRoomName:
			values[i] = new(sql.NullString)
		case roomsyncstate.FieldLastHeartbeatAt, roomsyncstate.FieldCreatedAt, roomsyncstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoomSyncState fields.
func (_m *RoomSyncState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roomsyncstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case roomsyncstate.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case roomsyncstate.FieldRoomName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_name", values[i])
			} else if value.Valid {
				_m.RoomName = value.String
			}
		case roomsyncstate.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = value.Time
			}
		case roomsyncstate.FieldLastLoad:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_load", values[i])
			} else if value.Valid {
				_m.LastLoad = value.Float64
			}
		case roomsyncstate.FieldHeartbeatCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_count", values[i])
			} else if value.Valid {
				_m.HeartbeatCount = int(value.Int64)
			}
		case roomsyncstate.FieldLearningsReceived:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learnings_received", values[i])
			} else if value.Valid {
				_m.LearningsReceived = int(value.Int64)
			}
		case roomsyncstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case roomsyncstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoomSyncState.
// This includes values selected through modifiers, order, etc.
func (_m *RoomSyncState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoomSyncState.
// Note that you need to call RoomSyncState.Unwrap() before calling this method if this RoomSyncState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoomSyncState) Update() *RoomSyncStateUpdateOne {
	return NewRoomSyncStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoomSyncState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoomSyncState) Unwrap() *RoomSyncState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoomSyncState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoomSyncState) String() string {
	var builder strings.Builder
	builder.WriteString("RoomSyncState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("room_name=")
	builder.WriteString(_m.RoomName)
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat_at=")
	builder.WriteString(_m.LastHeartbeatAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_load=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastLoad))
	builder.WriteString(", ")
	builder.WriteString("heartbeat_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeartbeatCount))
	builder.WriteString(", ")
	builder.WriteString("learnings_received=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningsReceived))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoomSyncStates is a parsable slice of RoomSyncState.
type RoomSyncStates []*RoomSyncState
