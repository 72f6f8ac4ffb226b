// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/errorpattern"
)

// ErrorPattern is the model entity for the ErrorPattern schema.
type ErrorPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AppID holds the value of the "app_id" field.
	AppID string `json:"app_id,omitempty"`
	// Normalized source + kind + message prefix
	Signature string `json:"signature,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Occurrences holds the value of the "occurrences" field.
	Occurrences int `json:"occurrences,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ErrorPatternQuery when eager-loading is set.
	Edges        ErrorPatternEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ErrorPatternEdges holds the relations/edges for other nodes in the graph.
type ErrorPatternEdges struct {
	// App holds the value of the app edge.
	App *App `json:"app,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AppOrErr returns the App value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ErrorPatternEdges) AppOrErr() (*App, error) {
	if e.App != nil {
		return e.App, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: app.Label}
	}
	return nil, &NotLoadedError{edge: "app"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ErrorPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case errorpattern.FieldOccurrences:
			values[i] = new(sql.NullInt64)
		case errorpattern.FieldID, errorpattern.FieldAppID, errorpattern.FieldSignature, errorpattern.FieldSource, errorpattern.FieldKind:
			values[i] = new(sql.NullString)
		case errorpattern.FieldFirstSeen, errorpattern.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ErrorPattern fields.
func (_m *ErrorPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case errorpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case errorpattern.FieldAppID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field app_id", values[i])
			} else if value.Valid {
				_m.AppID = value.String
			}
		case errorpattern.FieldSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value.Valid {
				_m.Signature = value.String
			}
		case errorpattern.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case errorpattern.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case errorpattern.FieldOccurrences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrences", values[i])
			} else if value.Valid {
				_m.Occurrences = int(value.Int64)
			}
		case errorpattern.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case errorpattern.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ErrorPattern.
// This includes values selected through modifiers, order, etc.
func (_m *ErrorPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApp queries the "app" edge of the ErrorPattern entity.
func (_m *ErrorPattern) QueryApp() *AppQuery {
	return NewErrorPatternClient(_m.config).QueryApp(_m)
}

// Update returns a builder for updating this ErrorPattern.
// Note that you need to call ErrorPattern.Unwrap() before calling this method if this ErrorPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ErrorPattern) Update() *ErrorPatternUpdateOne {
	return NewErrorPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ErrorPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ErrorPattern) Unwrap() *ErrorPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ErrorPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ErrorPattern) String() string {
	var builder strings.Builder
	builder.WriteString("ErrorPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("app_id=")
	builder.WriteString(_m.AppID)
	builder.WriteString(", ")
	builder.WriteString("signature=")
	builder.WriteString(_m.Signature)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("occurrences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Occurrences))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ErrorPatterns is a parsable slice of ErrorPattern.
type ErrorPatterns []*ErrorPattern
