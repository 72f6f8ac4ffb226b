// Code generated by ent, DO NOT EDIT.

package heartbeat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldAppID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldName, v))
}

// QueryTemplate applies equality check predicate on the "query_template" field. It's identical to QueryTemplateEQ.
func QueryTemplate(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldQueryTemplate, v))
}

// CronExpression applies equality check predicate on the "cron_expression" field. It's identical to CronExpressionEQ.
func CronExpression(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldCronExpression, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldTimezone, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldWebhookURL, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldIsActive, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldLastRunAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldAppID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldName, v))
}

// QueryTemplateEQ applies the EQ predicate on the "query_template" field.
func QueryTemplateEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldQueryTemplate, v))
}

// QueryTemplateNEQ applies the NEQ predicate on the "query_template" field.
func QueryTemplateNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldQueryTemplate, v))
}

// QueryTemplateIn applies the In predicate on the "query_template" field.
func QueryTemplateIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldQueryTemplate, vs...))
}

// QueryTemplateNotIn applies the NotIn predicate on the "query_template" field.
func QueryTemplateNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldQueryTemplate, vs...))
}

// QueryTemplateGT applies the GT predicate on the "query_template" field.
func QueryTemplateGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldQueryTemplate, v))
}

// QueryTemplateGTE applies the GTE predicate on the "query_template" field.
func QueryTemplateGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldQueryTemplate, v))
}

// QueryTemplateLT applies the LT predicate on the "query_template" field.
func QueryTemplateLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldQueryTemplate, v))
}

// QueryTemplateLTE applies the LTE predicate on the "query_template" field.
func QueryTemplateLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldQueryTemplate, v))
}

// QueryTemplateContains applies the Contains predicate on the "query_template" field.
func QueryTemplateContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldQueryTemplate, v))
}

// QueryTemplateHasPrefix applies the HasPrefix predicate on the "query_template" field.
func QueryTemplateHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldQueryTemplate, v))
}

// QueryTemplateHasSuffix applies the HasSuffix predicate on the "query_template" field.
func QueryTemplateHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldQueryTemplate, v))
}

// QueryTemplateEqualFold applies the EqualFold predicate on the "query_template" field.
func QueryTemplateEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldQueryTemplate, v))
}

// QueryTemplateContainsFold applies the ContainsFold predicate on the "query_template" field.
func QueryTemplateContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldQueryTemplate, v))
}

// CronExpressionEQ applies the EQ predicate on the "cron_expression" field.
func CronExpressionEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldCronExpression, v))
}

// CronExpressionNEQ applies the NEQ predicate on the "cron_expression" field.
func CronExpressionNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldCronExpression, v))
}

// CronExpressionIn applies the In predicate on the "cron_expression" field.
func CronExpressionIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldCronExpression, vs...))
}

// CronExpressionNotIn applies the NotIn predicate on the "cron_expression" field.
func CronExpressionNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldCronExpression, vs...))
}

// CronExpressionGT applies the GT predicate on the "cron_expression" field.
func CronExpressionGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldCronExpression, v))
}

// CronExpressionGTE applies the GTE predicate on the "cron_expression" field.
func CronExpressionGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldCronExpression, v))
}

// CronExpressionLT applies the LT predicate on the "cron_expression" field.
func CronExpressionLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldCronExpression, v))
}

// CronExpressionLTE applies the LTE predicate on the "cron_expression" field.
func CronExpressionLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldCronExpression, v))
}

// CronExpressionContains applies the Contains predicate on the "cron_expression" field.
func CronExpressionContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldCronExpression, v))
}

// CronExpressionHasPrefix applies the HasPrefix predicate on the "cron_expression" field.
func CronExpressionHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldCronExpression, v))
}

// CronExpressionHasSuffix applies the HasSuffix predicate on the "cron_expression" field.
func CronExpressionHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldCronExpression, v))
}

// CronExpressionEqualFold applies the EqualFold predicate on the "cron_expression" field.
func CronExpressionEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldCronExpression, v))
}

// CronExpressionContainsFold applies the ContainsFold predicate on the "cron_expression" field.
func CronExpressionContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldCronExpression, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldTimezone, v))
}

// ContextTemplateIsNil applies the IsNil predicate on the "context_template" field.
func ContextTemplateIsNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIsNull(FieldContextTemplate))
}

// ContextTemplateNotNil applies the NotNil predicate on the "context_template" field.
func ContextTemplateNotNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotNull(FieldContextTemplate))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldContainsFold(FieldWebhookURL, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldIsActive, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotNull(FieldLastRunAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Heartbeat {
	return predicate.Heartbeat(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.Heartbeat {
	return predicate.Heartbeat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.Heartbeat {
	return predicate.Heartbeat(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Heartbeat {
	return predicate.Heartbeat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.HeartbeatRun) predicate.Heartbeat {
	return predicate.Heartbeat(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Heartbeat) predicate.Heartbeat {
	return predicate.Heartbeat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Heartbeat) predicate.Heartbeat {
	return predicate.Heartbeat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Heartbeat) predicate.Heartbeat {
	return predicate.Heartbeat(sql.NotPredicates(p))
}
