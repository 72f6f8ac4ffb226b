// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the userprofile type in the database.
	Label = "user_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "profile_id"
	// FieldAppID holds the string denoting the app_id field in the database.
	FieldAppID = "app_id"
	// FieldExternalUserID holds the string denoting the external_user_id field in the database.
	FieldExternalUserID = "external_user_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldPreferences holds the string denoting the preferences field in the database.
	FieldPreferences = "preferences"
	// FieldTrustLevel holds the string denoting the trust_level field in the database.
	FieldTrustLevel = "trust_level"
	// FieldTotalTasks holds the string denoting the total_tasks field in the database.
	FieldTotalTasks = "total_tasks"
	// FieldSuccessfulTasks holds the string denoting the successful_tasks field in the database.
	FieldSuccessfulTasks = "successful_tasks"
	// FieldFailedTasks holds the string denoting the failed_tasks field in the database.
	FieldFailedTasks = "failed_tasks"
	// FieldConsecutiveSuccesses holds the string denoting the consecutive_successes field in the database.
	FieldConsecutiveSuccesses = "consecutive_successes"
	// FieldLastTaskAt holds the string denoting the last_task_at field in the database.
	FieldLastTaskAt = "last_task_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeApp holds the string denoting the app edge name in mutations.
	EdgeApp = "app"
	// AppFieldID holds the string denoting the ID field of the App.
	AppFieldID = "app_id"
	// Table holds the table name of the userprofile in the database.
	Table = "user_profiles"
	// AppTable is the table that holds the app relation/edge.
	AppTable = "user_profiles"
	// AppInverseTable is the table name for the App entity.
	// It exists in this package in order to avoid circular dependency with the "app" package.
	AppInverseTable = "apps"
	// AppColumn is the table column denoting the app relation/edge.
	AppColumn = "app_id"
)

// Columns holds all SQL columns for userprofile fields.
var Columns = []string{
	FieldID,
	FieldAppID,
	FieldExternalUserID,
	FieldDisplayName,
	FieldTimezone,
	FieldPreferences,
	FieldTrustLevel,
	FieldTotalTasks,
	FieldSuccessfulTasks,
	FieldFailedTasks,
	FieldConsecutiveSuccesses,
	FieldLastTaskAt,
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
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultTrustLevel holds the default value on creation for the "trust_level" field.
	DefaultTrustLevel int
	// DefaultTotalTasks holds the default value on creation for the "total_tasks" field.
	DefaultTotalTasks int
	// DefaultSuccessfulTasks holds the default value on creation for the "successful_tasks" field.
	DefaultSuccessfulTasks int
	// DefaultFailedTasks holds the default value on creation for the "failed_tasks" field.
	DefaultFailedTasks int
	// DefaultConsecutiveSuccesses holds the default value on creation for the "consecutive_successes" field.
	DefaultConsecutiveSuccesses int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAppID orders the results by the app_id field.
func ByAppID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppID, opts...).ToFunc()
}

// ByExternalUserID orders the results by the external_user_id field.
func ByExternalUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalUserID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByTrustLevel orders the results by the trust_level field.
func ByTrustLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrustLevel, opts...).ToFunc()
}

// ByTotalTasks orders the results by the total_tasks field.
func ByTotalTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTasks, opts...).ToFunc()
}

// BySuccessfulTasks orders the results by the successful_tasks field.
func BySuccessfulTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulTasks, opts...).ToFunc()
}

// ByFailedTasks orders the results by the failed_tasks field.
func ByFailedTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedTasks, opts...).ToFunc()
}

// ByConsecutiveSuccesses orders the results by the consecutive_successes field.
func ByConsecutiveSuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveSuccesses, opts...).ToFunc()
}

// ByLastTaskAt orders the results by the last_task_at field.
func ByLastTaskAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTaskAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
