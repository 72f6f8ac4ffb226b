// Code generated by ent, DO NOT EDIT.

package notificationpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldAppID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUserID, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEnabled, v))
}

// QuietHoursStart applies equality check predicate on the "quiet_hours_start" field. It's identical to QuietHoursStartEQ.
func QuietHoursStart(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldQuietHoursStart, v))
}

// QuietHoursEnd applies equality check predicate on the "quiet_hours_end" field. It's identical to QuietHoursEndEQ.
func QuietHoursEnd(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldQuietHoursEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldAppID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldUserID, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEnabled, v))
}

// QuietHoursStartEQ applies the EQ predicate on the "quiet_hours_start" field.
func QuietHoursStartEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldQuietHoursStart, v))
}

// QuietHoursStartNEQ applies the NEQ predicate on the "quiet_hours_start" field.
func QuietHoursStartNEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldQuietHoursStart, v))
}

// QuietHoursStartIn applies the In predicate on the "quiet_hours_start" field.
func QuietHoursStartIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldQuietHoursStart, vs...))
}

// QuietHoursStartNotIn applies the NotIn predicate on the "quiet_hours_start" field.
func QuietHoursStartNotIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldQuietHoursStart, vs...))
}

// QuietHoursStartGT applies the GT predicate on the "quiet_hours_start" field.
func QuietHoursStartGT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldQuietHoursStart, v))
}

// QuietHoursStartGTE applies the GTE predicate on the "quiet_hours_start" field.
func QuietHoursStartGTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldQuietHoursStart, v))
}

// QuietHoursStartLT applies the LT predicate on the "quiet_hours_start" field.
func QuietHoursStartLT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldQuietHoursStart, v))
}

// QuietHoursStartLTE applies the LTE predicate on the "quiet_hours_start" field.
func QuietHoursStartLTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldQuietHoursStart, v))
}

// QuietHoursStartIsNil applies the IsNil predicate on the "quiet_hours_start" field.
func QuietHoursStartIsNil() predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIsNull(FieldQuietHoursStart))
}

// QuietHoursStartNotNil applies the NotNil predicate on the "quiet_hours_start" field.
func QuietHoursStartNotNil() predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotNull(FieldQuietHoursStart))
}

// QuietHoursEndEQ applies the EQ predicate on the "quiet_hours_end" field.
func QuietHoursEndEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldQuietHoursEnd, v))
}

// QuietHoursEndNEQ applies the NEQ predicate on the "quiet_hours_end" field.
func QuietHoursEndNEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldQuietHoursEnd, v))
}

// QuietHoursEndIn applies the In predicate on the "quiet_hours_end" field.
func QuietHoursEndIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldQuietHoursEnd, vs...))
}

// QuietHoursEndNotIn applies the NotIn predicate on the "quiet_hours_end" field.
func QuietHoursEndNotIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldQuietHoursEnd, vs...))
}

// QuietHoursEndGT applies the GT predicate on the "quiet_hours_end" field.
func QuietHoursEndGT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldQuietHoursEnd, v))
}

// QuietHoursEndGTE applies the GTE predicate on the "quiet_hours_end" field.
func QuietHoursEndGTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldQuietHoursEnd, v))
}

// QuietHoursEndLT applies the LT predicate on the "quiet_hours_end" field.
func QuietHoursEndLT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldQuietHoursEnd, v))
}

// QuietHoursEndLTE applies the LTE predicate on the "quiet_hours_end" field.
func QuietHoursEndLTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldQuietHoursEnd, v))
}

// QuietHoursEndIsNil applies the IsNil predicate on the "quiet_hours_end" field.
func QuietHoursEndIsNil() predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIsNull(FieldQuietHoursEnd))
}

// QuietHoursEndNotNil applies the NotNil predicate on the "quiet_hours_end" field.
func QuietHoursEndNotNil() predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotNull(FieldQuietHoursEnd))
}

// OutcomesIsNil applies the IsNil predicate on the "outcomes" field.
func OutcomesIsNil() predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIsNull(FieldOutcomes))
}

// OutcomesNotNil applies the NotNil predicate on the "outcomes" field.
func OutcomesNotNil() predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotNull(FieldOutcomes))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.NotificationPreference {
	return predicate.NotificationPreference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.NotificationPreference {
	return predicate.NotificationPreference(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.NotPredicates(p))
}
