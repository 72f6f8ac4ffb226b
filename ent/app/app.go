// Code generated by ent, DO NOT EDIT.

package app

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the app type in the database.
	Label = "app"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "app_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAPIKey holds the string denoting the api_key field in the database.
	FieldAPIKey = "api_key"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUserProfiles holds the string denoting the user_profiles edge name in mutations.
	EdgeUserProfiles = "user_profiles"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeHeartbeats holds the string denoting the heartbeats edge name in mutations.
	EdgeHeartbeats = "heartbeats"
	// EdgeArrangements holds the string denoting the arrangements edge name in mutations.
	EdgeArrangements = "arrangements"
	// EdgeErrorRecords holds the string denoting the error_records edge name in mutations.
	EdgeErrorRecords = "error_records"
	// EdgeErrorPatterns holds the string denoting the error_patterns edge name in mutations.
	EdgeErrorPatterns = "error_patterns"
	// EdgeKnowledgeEntries holds the string denoting the knowledge_entries edge name in mutations.
	EdgeKnowledgeEntries = "knowledge_entries"
	// EdgeKnowledgeSyncStates holds the string denoting the knowledge_sync_states edge name in mutations.
	EdgeKnowledgeSyncStates = "knowledge_sync_states"
	// EdgeNotificationPreferences holds the string denoting the notification_preferences edge name in mutations.
	EdgeNotificationPreferences = "notification_preferences"
	// EdgeNotificationChannels holds the string denoting the notification_channels edge name in mutations.
	EdgeNotificationChannels = "notification_channels"
	// EdgeNotificationHistory holds the string denoting the notification_history edge name in mutations.
	EdgeNotificationHistory = "notification_history"
	// UserProfileFieldID holds the string denoting the ID field of the UserProfile.
	UserProfileFieldID = "profile_id"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// HeartbeatFieldID holds the string denoting the ID field of the Heartbeat.
	HeartbeatFieldID = "heartbeat_id"
	// SavedArrangementFieldID holds the string denoting the ID field of the SavedArrangement.
	SavedArrangementFieldID = "arrangement_id"
	// ErrorRecordFieldID holds the string denoting the ID field of the ErrorRecord.
	ErrorRecordFieldID = "error_id"
	// ErrorPatternFieldID holds the string denoting the ID field of the ErrorPattern.
	ErrorPatternFieldID = "pattern_id"
	// KnowledgeEntryFieldID holds the string denoting the ID field of the KnowledgeEntry.
	KnowledgeEntryFieldID = "entry_id"
	// KnowledgeSyncStateFieldID holds the string denoting the ID field of the KnowledgeSyncState.
	KnowledgeSyncStateFieldID = "sync_id"
	// NotificationPreferenceFieldID holds the string denoting the ID field of the NotificationPreference.
	NotificationPreferenceFieldID = "preference_id"
	// NotificationChannelFieldID holds the string denoting the ID field of the NotificationChannel.
	NotificationChannelFieldID = "channel_id"
	// NotificationHistoryFieldID holds the string denoting the ID field of the NotificationHistory.
	NotificationHistoryFieldID = "notification_id"
	// Table holds the table name of the app in the database.
	Table = "apps"
	// UserProfilesTable is the table that holds the user_profiles relation/edge.
	UserProfilesTable = "user_profiles"
	// UserProfilesInverseTable is the table name for the UserProfile entity.
	// It exists in this package in order to avoid circular dependency with the "userprofile" package.
	UserProfilesInverseTable = "user_profiles"
	// UserProfilesColumn is the table column denoting the user_profiles relation/edge.
	UserProfilesColumn = "app_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "app_id"
	// HeartbeatsTable is the table that holds the heartbeats relation/edge.
	HeartbeatsTable = "heartbeats"
	// HeartbeatsInverseTable is the table name for the Heartbeat entity.
	// It exists in this package in order to avoid circular dependency with the "heartbeat" package.
	HeartbeatsInverseTable = "heartbeats"
	// HeartbeatsColumn is the table column denoting the heartbeats relation/edge.
	HeartbeatsColumn = "app_id"
	// ArrangementsTable is the table that holds the arrangements relation/edge.
	ArrangementsTable = "saved_arrangements"
	// ArrangementsInverseTable is the table name for the SavedArrangement entity.
	// It exists in this package in order to avoid circular dependency with the "savedarrangement" package.
	ArrangementsInverseTable = "saved_arrangements"
	// ArrangementsColumn is the table column denoting the arrangements relation/edge.
	ArrangementsColumn = "app_id"
	// ErrorRecordsTable is the table that holds the error_records relation/edge.
	ErrorRecordsTable = "error_records"
	// ErrorRecordsInverseTable is the table name for the ErrorRecord entity.
	// It exists in this package in order to avoid circular dependency with the "errorrecord" package.
	ErrorRecordsInverseTable = "error_records"
	// ErrorRecordsColumn is the table column denoting the error_records relation/edge.
	ErrorRecordsColumn = "app_id"
	// ErrorPatternsTable is the table that holds the error_patterns relation/edge.
	ErrorPatternsTable = "error_patterns"
	// ErrorPatternsInverseTable is the table name for the ErrorPattern entity.
	// It exists in this package in order to avoid circular dependency with the "errorpattern" package.
	ErrorPatternsInverseTable = "error_patterns"
	// ErrorPatternsColumn is the table column denoting the error_patterns relation/edge.
	ErrorPatternsColumn = "app_id"
	// KnowledgeEntriesTable is the table that holds the knowledge_entries relation/edge.
	KnowledgeEntriesTable = "knowledge_entries"
	// KnowledgeEntriesInverseTable is the table name for the KnowledgeEntry entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgeentry" package.
	KnowledgeEntriesInverseTable = "knowledge_entries"
	// KnowledgeEntriesColumn is the table column denoting the knowledge_entries relation/edge.
	KnowledgeEntriesColumn = "app_id"
	// KnowledgeSyncStatesTable is the table that holds the knowledge_sync_states relation/edge.
	KnowledgeSyncStatesTable = "knowledge_sync_states"
	// KnowledgeSyncStatesInverseTable is the table name for the KnowledgeSyncState entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgesyncstate" package.
	KnowledgeSyncStatesInverseTable = "knowledge_sync_states"
	// KnowledgeSyncStatesColumn is the table column denoting the knowledge_sync_states relation/edge.
	KnowledgeSyncStatesColumn = "app_id"
	// NotificationPreferencesTable is the table that holds the notification_preferences relation/edge.
	NotificationPreferencesTable = "notification_preferences"
	// NotificationPreferencesInverseTable is the table name for the NotificationPreference entity.
	// It exists in this package in order to avoid circular dependency with the "notificationpreference" package.
	NotificationPreferencesInverseTable = "notification_preferences"
	// NotificationPreferencesColumn is the table column denoting the notification_preferences relation/edge.
	NotificationPreferencesColumn = "app_id"
	// NotificationChannelsTable is the table that holds the notification_channels relation/edge.
	NotificationChannelsTable = "notification_channels"
	// NotificationChannelsInverseTable is the table name for the NotificationChannel entity.
	// It exists in this package in order to avoid circular dependency with the "notificationchannel" package.
	NotificationChannelsInverseTable = "notification_channels"
	// NotificationChannelsColumn is the table column denoting the notification_channels relation/edge.
	NotificationChannelsColumn = "app_id"
	// NotificationHistoryTable is the table that holds the notification_history relation/edge.
	NotificationHistoryTable = "notification_histories"
	// NotificationHistoryInverseTable is the table name for the NotificationHistory entity.
	// It exists in this package in order to avoid circular dependency with the "notificationhistory" package.
	NotificationHistoryInverseTable = "notification_histories"
	// NotificationHistoryColumn is the table column denoting the notification_history relation/edge.
	NotificationHistoryColumn = "app_id"
)

// Columns holds all SQL columns for app fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAPIKey,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the App queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAPIKey orders the results by the api_key field.
func ByAPIKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKey, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserProfilesCount orders the results by user_profiles count.
func ByUserProfilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserProfilesStep(), opts...)
	}
}

// ByUserProfiles orders the results by user_profiles terms.
func ByUserProfiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserProfilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHeartbeatsCount orders the results by heartbeats count.
func ByHeartbeatsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHeartbeatsStep(), opts...)
	}
}

// ByHeartbeats orders the results by heartbeats terms.
func ByHeartbeats(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHeartbeatsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArrangementsCount orders the results by arrangements count.
func ByArrangementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArrangementsStep(), opts...)
	}
}

// ByArrangements orders the results by arrangements terms.
func ByArrangements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArrangementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByErrorRecordsCount orders the results by error_records count.
func ByErrorRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newErrorRecordsStep(), opts...)
	}
}

// ByErrorRecords orders the results by error_records terms.
func ByErrorRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newErrorRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByErrorPatternsCount orders the results by error_patterns count.
func ByErrorPatternsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newErrorPatternsStep(), opts...)
	}
}

// ByErrorPatterns orders the results by error_patterns terms.
func ByErrorPatterns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newErrorPatternsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeEntriesCount orders the results by knowledge_entries count.
func ByKnowledgeEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeEntriesStep(), opts...)
	}
}

// ByKnowledgeEntries orders the results by knowledge_entries terms.
func ByKnowledgeEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeSyncStatesCount orders the results by knowledge_sync_states count.
func ByKnowledgeSyncStatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeSyncStatesStep(), opts...)
	}
}

// ByKnowledgeSyncStates orders the results by knowledge_sync_states terms.
func ByKnowledgeSyncStates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeSyncStatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotificationPreferencesCount orders the results by notification_preferences count.
func ByNotificationPreferencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationPreferencesStep(), opts...)
	}
}

// ByNotificationPreferences orders the results by notification_preferences terms.
func ByNotificationPreferences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationPreferencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotificationChannelsCount orders the results by notification_channels count.
func ByNotificationChannelsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationChannelsStep(), opts...)
	}
}

// ByNotificationChannels orders the results by notification_channels terms.
func ByNotificationChannels(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationChannelsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotificationHistoryCount orders the results by notification_history count.
func ByNotificationHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationHistoryStep(), opts...)
	}
}

// ByNotificationHistory orders the results by notification_history terms.
func ByNotificationHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserProfilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserProfilesInverseTable, UserProfileFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserProfilesTable, UserProfilesColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newHeartbeatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HeartbeatsInverseTable, HeartbeatFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HeartbeatsTable, HeartbeatsColumn),
	)
}
func newArrangementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArrangementsInverseTable, SavedArrangementFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArrangementsTable, ArrangementsColumn),
	)
}
func newErrorRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ErrorRecordsInverseTable, ErrorRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ErrorRecordsTable, ErrorRecordsColumn),
	)
}
func newErrorPatternsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ErrorPatternsInverseTable, ErrorPatternFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ErrorPatternsTable, ErrorPatternsColumn),
	)
}
func newKnowledgeEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeEntriesInverseTable, KnowledgeEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeEntriesTable, KnowledgeEntriesColumn),
	)
}
func newKnowledgeSyncStatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeSyncStatesInverseTable, KnowledgeSyncStateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeSyncStatesTable, KnowledgeSyncStatesColumn),
	)
}
func newNotificationPreferencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationPreferencesInverseTable, NotificationPreferenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationPreferencesTable, NotificationPreferencesColumn),
	)
}
func newNotificationChannelsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationChannelsInverseTable, NotificationChannelFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationChannelsTable, NotificationChannelsColumn),
	)
}
func newNotificationHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationHistoryInverseTable, NotificationHistoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationHistoryTable, NotificationHistoryColumn),
	)
}
