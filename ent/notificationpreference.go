// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/notificationpreference"
)

// NotificationPreference is the model entity for the NotificationPreference schema.
type NotificationPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AppID holds the value of the "app_id" field.
	AppID string `json:"app_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Local hour 0-23 in the user's timezone; delivery suppressed inside the window
	QuietHoursStart *int `json:"quiet_hours_start,omitempty"`
	// QuietHoursEnd holds the value of the "quiet_hours_end" field.
	QuietHoursEnd *int `json:"quiet_hours_end,omitempty"`
	// Notify only for these outcomes; empty means all
	Outcomes []string `json:"outcomes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NotificationPreferenceQuery when eager-loading is set.
	Edges        NotificationPreferenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NotificationPreferenceEdges holds the relations/edges for other nodes in the graph.
type NotificationPreferenceEdges struct {
	// App holds the value of the app edge.
	App *App `json:"app,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AppOrErr returns the App value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NotificationPreferenceEdges) AppOrErr() (*App, error) {
	if e.App != nil {
		return e.App, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: app.Label}
	}
	return nil, &NotLoadedError{edge: "app"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpreference.FieldOutcomes:
			values[i] = new([]byte)
		case notificationpreference.FieldEnabled:
			values[i] = new(sql.NullBool)
		case notificationpreference.FieldQuietHoursStart, notificationpreference.FieldQuietHoursEnd:
			values[i] = new(sql.NullInt64)
		case notificationpreference.FieldID, notificationpreference.FieldAppID, notificationpreference.FieldUserID:
			values[i] = new(sql.NullString)
		case notificationpreference.FieldCreatedAt, notificationpreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPreference fields.
func (_m *NotificationPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpreference.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationpreference.FieldAppID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field app_id", values[i])
			} else if value.Valid {
				_m.AppID = value.String
			}
		case notificationpreference.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case notificationpreference.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case notificationpreference.FieldQuietHoursStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiet_hours_start", values[i])
			} else if value.Valid {
				_m.QuietHoursStart = new(int)
				*_m.QuietHoursStart = int(value.Int64)
			}
		case notificationpreference.FieldQuietHoursEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiet_hours_end", values[i])
			} else if value.Valid {
				_m.QuietHoursEnd = new(int)
				*_m.QuietHoursEnd = int(value.Int64)
			}
		case notificationpreference.FieldOutcomes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outcomes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outcomes); err != nil {
					return fmt.Errorf("unmarshal field outcomes: %w", err)
				}
			}
		case notificationpreference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpreference.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPreference.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPreference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApp queries the "app" edge of the NotificationPreference entity.
func (_m *NotificationPreference) QueryApp() *AppQuery {
	return NewNotificationPreferenceClient(_m.config).QueryApp(_m)
}

// Update returns a builder for updating this NotificationPreference.
// Note that you need to call NotificationPreference.Unwrap() before calling this method if this NotificationPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPreference) Update() *NotificationPreferenceUpdateOne {
	return NewNotificationPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPreference) Unwrap() *NotificationPreference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationPreference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPreference) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("app_id=")
	builder.WriteString(_m.AppID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.QuietHoursStart; v != nil {
		builder.WriteString("quiet_hours_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QuietHoursEnd; v != nil {
		builder.WriteString("quiet_hours_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("outcomes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcomes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPreferences is a parsable slice of NotificationPreference.
type NotificationPreferences []*NotificationPreference
