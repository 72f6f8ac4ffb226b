// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
)

// KnowledgeSyncState is the model entity for the KnowledgeSyncState schema.
type KnowledgeSyncState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Registry room id; rooms themselves live in memory
	RoomID string `json:"room_id,omitempty"`
	// AppID holds the value of the "app_id" field.
	AppID string `json:"app_id,omitempty"`
	// LastVersion holds the value of the "last_version" field.
	LastVersion int `json:"last_version,omitempty"`
	// SyncedAt holds the value of the "synced_at" field.
	SyncedAt time.Time `json:"synced_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeSyncStateQuery when eager-loading is set.
	Edges        KnowledgeSyncStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeSyncStateEdges holds the relations/edges for other nodes in the graph.
type KnowledgeSyncStateEdges struct {
	// App holds the value of the app edge.
	App *App `json:"app,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AppOrErr returns the App value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeSyncStateEdges) AppOrErr() (*App, error) {
	if e.App != nil {
		return e.App, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: app.Label}
	}
	return nil, &NotLoadedError{edge: "app"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeSyncState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgesyncstate.FieldLastVersion:
			values[i] = new(sql.NullInt64)
		case knowledgesyncstate.FieldID, knowledgesyncstate.FieldRoomID, knowledgesyncstate.FieldAppID:
			values[i] = new(sql.NullString)
		case knowledgesyncstate.FieldSyncedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeSyncState fields.
func (_m *KnowledgeSyncState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgesyncstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowledgesyncstate.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case knowledgesyncstate.FieldAppID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field app_id", values[i])
			} else if value.Valid {
				_m.AppID = value.String
			}
		case knowledgesyncstate.FieldLastVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_version", values[i])
			} else if value.Valid {
				_m.LastVersion = int(value.Int64)
			}
		case knowledgesyncstate.FieldSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field synced_at", values[i])
			} else if value.Valid {
				_m.SyncedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeSyncState.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeSyncState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApp queries the "app" edge of the KnowledgeSyncState entity.
func (_m *KnowledgeSyncState) QueryApp() *AppQuery {
	return NewKnowledgeSyncStateClient(_m.config).QueryApp(_m)
}

// Update returns a builder for updating this KnowledgeSyncState.
// Note that you need to call KnowledgeSyncState.Unwrap() before calling this method if this KnowledgeSyncState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeSyncState) Update() *KnowledgeSyncStateUpdateOne {
	return NewKnowledgeSyncStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeSyncState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeSyncState) Unwrap() *KnowledgeSyncState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeSyncState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeSyncState) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeSyncState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("app_id=")
	builder.WriteString(_m.AppID)
	builder.WriteString(", ")
	builder.WriteString("last_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastVersion))
	builder.WriteString(", ")
	builder.WriteString("synced_at=")
	builder.WriteString(_m.SyncedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeSyncStates is a parsable slice of KnowledgeSyncState.
type KnowledgeSyncStates []*KnowledgeSyncState
