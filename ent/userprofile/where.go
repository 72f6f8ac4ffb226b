// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAppID, v))
}

// ExternalUserID applies equality check predicate on the "external_user_id" field. It's identical to ExternalUserIDEQ.
func ExternalUserID(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldExternalUserID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldDisplayName, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTimezone, v))
}

// TrustLevel applies equality check predicate on the "trust_level" field. It's identical to TrustLevelEQ.
func TrustLevel(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTrustLevel, v))
}

// TotalTasks applies equality check predicate on the "total_tasks" field. It's identical to TotalTasksEQ.
func TotalTasks(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTotalTasks, v))
}

// SuccessfulTasks applies equality check predicate on the "successful_tasks" field. It's identical to SuccessfulTasksEQ.
func SuccessfulTasks(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldSuccessfulTasks, v))
}

// FailedTasks applies equality check predicate on the "failed_tasks" field. It's identical to FailedTasksEQ.
func FailedTasks(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldFailedTasks, v))
}

// ConsecutiveSuccesses applies equality check predicate on the "consecutive_successes" field. It's identical to ConsecutiveSuccessesEQ.
func ConsecutiveSuccesses(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldConsecutiveSuccesses, v))
}

// LastTaskAt applies equality check predicate on the "last_task_at" field. It's identical to LastTaskAtEQ.
func LastTaskAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldLastTaskAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldAppID, v))
}

// ExternalUserIDEQ applies the EQ predicate on the "external_user_id" field.
func ExternalUserIDEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldExternalUserID, v))
}

// ExternalUserIDNEQ applies the NEQ predicate on the "external_user_id" field.
func ExternalUserIDNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldExternalUserID, v))
}

// ExternalUserIDIn applies the In predicate on the "external_user_id" field.
func ExternalUserIDIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldExternalUserID, vs...))
}

// ExternalUserIDNotIn applies the NotIn predicate on the "external_user_id" field.
func ExternalUserIDNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldExternalUserID, vs...))
}

// ExternalUserIDGT applies the GT predicate on the "external_user_id" field.
func ExternalUserIDGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldExternalUserID, v))
}

// ExternalUserIDGTE applies the GTE predicate on the "external_user_id" field.
func ExternalUserIDGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldExternalUserID, v))
}

// ExternalUserIDLT applies the LT predicate on the "external_user_id" field.
func ExternalUserIDLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldExternalUserID, v))
}

// ExternalUserIDLTE applies the LTE predicate on the "external_user_id" field.
func ExternalUserIDLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldExternalUserID, v))
}

// ExternalUserIDContains applies the Contains predicate on the "external_user_id" field.
func ExternalUserIDContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldExternalUserID, v))
}

// ExternalUserIDHasPrefix applies the HasPrefix predicate on the "external_user_id" field.
func ExternalUserIDHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldExternalUserID, v))
}

// ExternalUserIDHasSuffix applies the HasSuffix predicate on the "external_user_id" field.
func ExternalUserIDHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldExternalUserID, v))
}

// ExternalUserIDEqualFold applies the EqualFold predicate on the "external_user_id" field.
func ExternalUserIDEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldExternalUserID, v))
}

// ExternalUserIDContainsFold applies the ContainsFold predicate on the "external_user_id" field.
func ExternalUserIDContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldExternalUserID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldDisplayName, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldTimezone, v))
}

// PreferencesIsNil applies the IsNil predicate on the "preferences" field.
func PreferencesIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldPreferences))
}

// PreferencesNotNil applies the NotNil predicate on the "preferences" field.
func PreferencesNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldPreferences))
}

// TrustLevelEQ applies the EQ predicate on the "trust_level" field.
func TrustLevelEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTrustLevel, v))
}

// TrustLevelNEQ applies the NEQ predicate on the "trust_level" field.
func TrustLevelNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldTrustLevel, v))
}

// TrustLevelIn applies the In predicate on the "trust_level" field.
func TrustLevelIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldTrustLevel, vs...))
}

// TrustLevelNotIn applies the NotIn predicate on the "trust_level" field.
func TrustLevelNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldTrustLevel, vs...))
}

// TrustLevelGT applies the GT predicate on the "trust_level" field.
func TrustLevelGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldTrustLevel, v))
}

// TrustLevelGTE applies the GTE predicate on the "trust_level" field.
func TrustLevelGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldTrustLevel, v))
}

// TrustLevelLT applies the LT predicate on the "trust_level" field.
func TrustLevelLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldTrustLevel, v))
}

// TrustLevelLTE applies the LTE predicate on the "trust_level" field.
func TrustLevelLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldTrustLevel, v))
}

// TotalTasksEQ applies the EQ predicate on the "total_tasks" field.
func TotalTasksEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldTotalTasks, v))
}

// TotalTasksNEQ applies the NEQ predicate on the "total_tasks" field.
func TotalTasksNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldTotalTasks, v))
}

// TotalTasksIn applies the In predicate on the "total_tasks" field.
func TotalTasksIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldTotalTasks, vs...))
}

// TotalTasksNotIn applies the NotIn predicate on the "total_tasks" field.
func TotalTasksNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldTotalTasks, vs...))
}

// TotalTasksGT applies the GT predicate on the "total_tasks" field.
func TotalTasksGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldTotalTasks, v))
}

// TotalTasksGTE applies the GTE predicate on the "total_tasks" field.
func TotalTasksGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldTotalTasks, v))
}

// TotalTasksLT applies the LT predicate on the "total_tasks" field.
func TotalTasksLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldTotalTasks, v))
}

// TotalTasksLTE applies the LTE predicate on the "total_tasks" field.
func TotalTasksLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldTotalTasks, v))
}

// SuccessfulTasksEQ applies the EQ predicate on the "successful_tasks" field.
func SuccessfulTasksEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldSuccessfulTasks, v))
}

// SuccessfulTasksNEQ applies the NEQ predicate on the "successful_tasks" field.
func SuccessfulTasksNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldSuccessfulTasks, v))
}

// SuccessfulTasksIn applies the In predicate on the "successful_tasks" field.
func SuccessfulTasksIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldSuccessfulTasks, vs...))
}

// SuccessfulTasksNotIn applies the NotIn predicate on the "successful_tasks" field.
func SuccessfulTasksNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldSuccessfulTasks, vs...))
}

// SuccessfulTasksGT applies the GT predicate on the "successful_tasks" field.
func SuccessfulTasksGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldSuccessfulTasks, v))
}

// SuccessfulTasksGTE applies the GTE predicate on the "successful_tasks" field.
func SuccessfulTasksGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldSuccessfulTasks, v))
}

// SuccessfulTasksLT applies the LT predicate on the "successful_tasks" field.
func SuccessfulTasksLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldSuccessfulTasks, v))
}

// SuccessfulTasksLTE applies the LTE predicate on the "successful_tasks" field.
func SuccessfulTasksLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldSuccessfulTasks, v))
}

// FailedTasksEQ applies the EQ predicate on the "failed_tasks" field.
func FailedTasksEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldFailedTasks, v))
}

// FailedTasksNEQ applies the NEQ predicate on the "failed_tasks" field.
func FailedTasksNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldFailedTasks, v))
}

// FailedTasksIn applies the In predicate on the "failed_tasks" field.
func FailedTasksIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldFailedTasks, vs...))
}

// FailedTasksNotIn applies the NotIn predicate on the "failed_tasks" field.
func FailedTasksNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldFailedTasks, vs...))
}

// FailedTasksGT applies the GT predicate on the "failed_tasks" field.
func FailedTasksGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldFailedTasks, v))
}

// FailedTasksGTE applies the GTE predicate on the "failed_tasks" field.
func FailedTasksGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldFailedTasks, v))
}

// FailedTasksLT applies the LT predicate on the "failed_tasks" field.
func FailedTasksLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldFailedTasks, v))
}

// FailedTasksLTE applies the LTE predicate on the "failed_tasks" field.
func FailedTasksLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldFailedTasks, v))
}

// ConsecutiveSuccessesEQ applies the EQ predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesNEQ applies the NEQ predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesIn applies the In predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldConsecutiveSuccesses, vs...))
}

// ConsecutiveSuccessesNotIn applies the NotIn predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldConsecutiveSuccesses, vs...))
}

// ConsecutiveSuccessesGT applies the GT predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesGTE applies the GTE predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesLT applies the LT predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldConsecutiveSuccesses, v))
}

// ConsecutiveSuccessesLTE applies the LTE predicate on the "consecutive_successes" field.
func ConsecutiveSuccessesLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldConsecutiveSuccesses, v))
}

// LastTaskAtEQ applies the EQ predicate on the "last_task_at" field.
func LastTaskAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldLastTaskAt, v))
}

// LastTaskAtNEQ applies the NEQ predicate on the "last_task_at" field.
func LastTaskAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldLastTaskAt, v))
}

// LastTaskAtIn applies the In predicate on the "last_task_at" field.
func LastTaskAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldLastTaskAt, vs...))
}

// LastTaskAtNotIn applies the NotIn predicate on the "last_task_at" field.
func LastTaskAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldLastTaskAt, vs...))
}

// LastTaskAtGT applies the GT predicate on the "last_task_at" field.
func LastTaskAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldLastTaskAt, v))
}

// LastTaskAtGTE applies the GTE predicate on the "last_task_at" field.
func LastTaskAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldLastTaskAt, v))
}

// LastTaskAtLT applies the LT predicate on the "last_task_at" field.
func LastTaskAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldLastTaskAt, v))
}

// LastTaskAtLTE applies the LTE predicate on the "last_task_at" field.
func LastTaskAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldLastTaskAt, v))
}

// LastTaskAtIsNil applies the IsNil predicate on the "last_task_at" field.
func LastTaskAtIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldLastTaskAt))
}

// LastTaskAtNotNil applies the NotNil predicate on the "last_task_at" field.
func LastTaskAtNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldLastTaskAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.UserProfile {
	return predicate.UserProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.UserProfile {
	return predicate.UserProfile(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.NotPredicates(p))
}
