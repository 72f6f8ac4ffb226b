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
	"github.com/loop-symphony/symphony/ent/heartbeat"
)

// Heartbeat is the model entity for the Heartbeat schema.
type Heartbeat struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AppID holds the value of the "app_id" field.
	AppID string `json:"app_id,omitempty"`
	// External user id the materialized tasks run as
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Supports {date}, {time} and {user_name} placeholders
	QueryTemplate string `json:"query_template,omitempty"`
	// Five-field cron expression, evaluated in the heartbeat's timezone
	CronExpression string `json:"cron_expression,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Merged into the materialized task's context
	ContextTemplate map[string]interface{} `json:"context_template,omitempty"`
	// POST target for the finished TaskResponse, fire-and-forget
	WebhookURL *string `json:"webhook_url,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HeartbeatQuery when eager-loading is set.
	Edges        HeartbeatEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HeartbeatEdges holds the relations/edges for other nodes in the graph.
type HeartbeatEdges struct {
	// App holds the value of the app edge.
	App *App `json:"app,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*HeartbeatRun `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AppOrErr returns the App value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HeartbeatEdges) AppOrErr() (*App, error) {
	if e.App != nil {
		return e.App, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: app.Label}
	}
	return nil, &NotLoadedError{edge: "app"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e HeartbeatEdges) RunsOrErr() ([]*HeartbeatRun, error) {
	if e.loadedTypes[1] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Heartbeat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case heartbeat.FieldContextTemplate:
			values[i] = new([]byte)
		case heartbeat.FieldIsActive:
			values[i] = new(sql.NullBool)
		case heartbeat.FieldID, heartbeat.FieldAppID, heartbeat.FieldUserID, heartbeat.FieldName, heartbeat.FieldQueryTemplate, heartbeat.FieldCronExpression, heartbeat.FieldTimezone, heartbeat.FieldWebhookURL:
			values[i] = new(sql.NullString)
		case heartbeat.FieldLastRunAt, heartbeat.FieldCreatedAt, heartbeat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Heartbeat fields.
func (_m *Heartbeat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case heartbeat.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case heartbeat.FieldAppID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field app_id", values[i])
			} else if value.Valid {
				_m.AppID = value.String
			}
		case heartbeat.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case heartbeat.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case heartbeat.FieldQueryTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_template", values[i])
			} else if value.Valid {
				_m.QueryTemplate = value.String
			}
		case heartbeat.FieldCronExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_expression", values[i])
			} else if value.Valid {
				_m.CronExpression = value.String
			}
		case heartbeat.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case heartbeat.FieldContextTemplate:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_template", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextTemplate); err != nil {
					return fmt.Errorf("unmarshal field context_template: %w", err)
				}
			}
		case heartbeat.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = new(string)
				*_m.WebhookURL = value.String
			}
		case heartbeat.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case heartbeat.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case heartbeat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case heartbeat.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Heartbeat.
// This includes values selected through modifiers, order, etc.
func (_m *Heartbeat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApp queries the "app" edge of the Heartbeat entity.
func (_m *Heartbeat) QueryApp() *AppQuery {
	return NewHeartbeatClient(_m.config).QueryApp(_m)
}

// QueryRuns queries the "runs" edge of the Heartbeat entity.
func (_m *Heartbeat) QueryRuns() *HeartbeatRunQuery {
	return NewHeartbeatClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this Heartbeat.
// Note that you need to call Heartbeat.Unwrap() before calling this method if this Heartbeat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Heartbeat) Update() *HeartbeatUpdateOne {
	return NewHeartbeatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Heartbeat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Heartbeat) Unwrap() *Heartbeat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Heartbeat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Heartbeat) String() string {
	var builder strings.Builder
	builder.WriteString("Heartbeat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("app_id=")
	builder.WriteString(_m.AppID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("query_template=")
	builder.WriteString(_m.QueryTemplate)
	builder.WriteString(", ")
	builder.WriteString("cron_expression=")
	builder.WriteString(_m.CronExpression)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("context_template=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextTemplate))
	builder.WriteString(", ")
	if v := _m.WebhookURL; v != nil {
		builder.WriteString("webhook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Heartbeats is a parsable slice of Heartbeat.
type Heartbeats []*Heartbeat
