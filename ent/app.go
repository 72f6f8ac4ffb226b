// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/app"
)

// App is the model entity for the App schema.
type App struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Human-readable application name
	Name string `json:"name,omitempty"`
	// Bearer credential presented in X-Api-Key
	APIKey string `json:"api_key,omitempty"`
	// Deactivated apps authenticate but are refused (403)
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppQuery when eager-loading is set.
	Edges        AppEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppEdges holds the relations/edges for other nodes in the graph.
type AppEdges struct {
	// UserProfiles holds the value of the user_profiles edge.
	UserProfiles []*UserProfile `json:"user_profiles,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Heartbeats holds the value of the heartbeats edge.
	Heartbeats []*Heartbeat `json:"heartbeats,omitempty"`
	// Arrangements holds the value of the arrangements edge.
	Arrangements []*SavedArrangement `json:"arrangements,omitempty"`
	// ErrorRecords holds the value of the error_records edge.
	ErrorRecords []*ErrorRecord `json:"error_records,omitempty"`
	// ErrorPatterns holds the value of the error_patterns edge.
	ErrorPatterns []*ErrorPattern `json:"error_patterns,omitempty"`
	// KnowledgeEntries holds the value of the knowledge_entries edge.
	KnowledgeEntries []*KnowledgeEntry `json:"knowledge_entries,omitempty"`
	// KnowledgeSyncStates holds the value of the knowledge_sync_states edge.
	KnowledgeSyncStates []*KnowledgeSyncState `json:"knowledge_sync_states,omitempty"`
	// NotificationPreferences holds the value of the notification_preferences edge.
	NotificationPreferences []*NotificationPreference `json:"notification_preferences,omitempty"`
	// NotificationChannels holds the value of the notification_channels edge.
	NotificationChannels []*NotificationChannel `json:"notification_channels,omitempty"`
	// NotificationHistory holds the value of the notification_history edge.
	NotificationHistory []*NotificationHistory `json:"notification_history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [11]bool
}

// UserProfilesOrErr returns the UserProfiles value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) UserProfilesOrErr() ([]*UserProfile, error) {
	if e.loadedTypes[0] {
		return e.UserProfiles, nil
	}
	return nil, &NotLoadedError{edge: "user_profiles"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// HeartbeatsOrErr returns the Heartbeats value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) HeartbeatsOrErr() ([]*Heartbeat, error) {
	if e.loadedTypes[2] {
		return e.Heartbeats, nil
	}
	return nil, &NotLoadedError{edge: "heartbeats"}
}

// ArrangementsOrErr returns the Arrangements value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) ArrangementsOrErr() ([]*SavedArrangement, error) {
	if e.loadedTypes[3] {
		return e.Arrangements, nil
	}
	return nil, &NotLoadedError{edge: "arrangements"}
}

// ErrorRecordsOrErr returns the ErrorRecords value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) ErrorRecordsOrErr() ([]*ErrorRecord, error) {
	if e.loadedTypes[4] {
		return e.ErrorRecords, nil
	}
	return nil, &NotLoadedError{edge: "error_records"}
}

// ErrorPatternsOrErr returns the ErrorPatterns value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) ErrorPatternsOrErr() ([]*ErrorPattern, error) {
	if e.loadedTypes[5] {
		return e.ErrorPatterns, nil
	}
	return nil, &NotLoadedError{edge: "error_patterns"}
}

// KnowledgeEntriesOrErr returns the KnowledgeEntries value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) KnowledgeEntriesOrErr() ([]*KnowledgeEntry, error) {
	if e.loadedTypes[6] {
		return e.KnowledgeEntries, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_entries"}
}

// KnowledgeSyncStatesOrErr returns the KnowledgeSyncStates value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) KnowledgeSyncStatesOrErr() ([]*KnowledgeSyncState, error) {
	if e.loadedTypes[7] {
		return e.KnowledgeSyncStates, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_sync_states"}
}

// NotificationPreferencesOrErr returns the NotificationPreferences value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) NotificationPreferencesOrErr() ([]*NotificationPreference, error) {
	if e.loadedTypes[8] {
		return e.NotificationPreferences, nil
	}
	return nil, &NotLoadedError{edge: "notification_preferences"}
}

// NotificationChannelsOrErr returns the NotificationChannels value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) NotificationChannelsOrErr() ([]*NotificationChannel, error) {
	if e.loadedTypes[9] {
		return e.NotificationChannels, nil
	}
	return nil, &NotLoadedError{edge: "notification_channels"}
}

// NotificationHistoryOrErr returns the NotificationHistory value or an error if the edge
// was not loaded in eager-loading.
func (e AppEdges) NotificationHistoryOrErr() ([]*NotificationHistory, error) {
	if e.loadedTypes[10] {
		return e.NotificationHistory, nil
	}
	return nil, &NotLoadedError{edge: "notification_history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*App) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case app.FieldIsActive:
			values[i] = new(sql.NullBool)
		case app.FieldID, app.FieldName, app.FieldAPIKey:
			values[i] = new(sql.NullString)
		case app.FieldCreatedAt, app.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the App fields.
func (_m *App) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case app.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case app.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case app.FieldAPIKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key", values[i])
			} else if value.Valid {
				_m.APIKey = value.String
			}
		case app.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case app.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case app.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the App.
// This includes values selected through modifiers, order, etc.
func (_m *App) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUserProfiles queries the "user_profiles" edge of the App entity.
func (_m *App) QueryUserProfiles() *UserProfileQuery {
	return NewAppClient(_m.config).QueryUserProfiles(_m)
}

// QueryTasks queries the "tasks" edge of the App entity.
func (_m *App) QueryTasks() *TaskQuery {
	return NewAppClient(_m.config).QueryTasks(_m)
}

// QueryHeartbeats queries the "heartbeats" edge of the App entity.
func (_m *App) QueryHeartbeats() *HeartbeatQuery {
	return NewAppClient(_m.config).QueryHeartbeats(_m)
}

// QueryArrangements queries the "arrangements" edge of the App entity.
func (_m *App) QueryArrangements() *SavedArrangementQuery {
	return NewAppClient(_m.config).QueryArrangements(_m)
}

// QueryErrorRecords queries the "error_records" edge of the App entity.
func (_m *App) QueryErrorRecords() *ErrorRecordQuery {
	return NewAppClient(_m.config).QueryErrorRecords(_m)
}

// QueryErrorPatterns queries the "error_patterns" edge of the App entity.
func (_m *App) QueryErrorPatterns() *ErrorPatternQuery {
	return NewAppClient(_m.config).QueryErrorPatterns(_m)
}

// QueryKnowledgeEntries queries the "knowledge_entries" edge of the App entity.
func (_m *App) QueryKnowledgeEntries() *KnowledgeEntryQuery {
	return NewAppClient(_m.config).QueryKnowledgeEntries(_m)
}

// QueryKnowledgeSyncStates queries the "knowledge_sync_states" edge of the App entity.
func (_m *App) QueryKnowledgeSyncStates() *KnowledgeSyncStateQuery {
	return NewAppClient(_m.config).QueryKnowledgeSyncStates(_m)
}

// QueryNotificationPreferences queries the "notification_preferences" edge of the App entity.
func (_m *App) QueryNotificationPreferences() *NotificationPreferenceQuery {
	return NewAppClient(_m.config).QueryNotificationPreferences(_m)
}

// QueryNotificationChannels queries the "notification_channels" edge of the App entity.
func (_m *App) QueryNotificationChannels() *NotificationChannelQuery {
	return NewAppClient(_m.config).QueryNotificationChannels(_m)
}

// QueryNotificationHistory queries the "notification_history" edge of the App entity.
func (_m *App) QueryNotificationHistory() *NotificationHistoryQuery {
	return NewAppClient(_m.config).QueryNotificationHistory(_m)
}

// Update returns a builder for updating this App.
// Note that you need to call App.Unwrap() before calling this method if this App
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *App) Update() *AppUpdateOne {
	return NewAppClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the App entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *App) Unwrap() *App {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: App is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *App) String() string {
	var builder strings.Builder
	builder.WriteString("App(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("api_key=")
	builder.WriteString(_m.APIKey)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Apps is a parsable slice of App.
type Apps []*App
