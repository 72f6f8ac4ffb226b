// Code generated by ent, DO NOT EDIT.

package notificationhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContainsFold(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldAppID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldUserID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldTaskID, v))
}

// ChannelKind applies equality check predicate on the "channel_kind" field. It's identical to ChannelKindEQ.
func ChannelKind(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldChannelKind, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContainsFold(FieldAppID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContainsFold(FieldUserID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContainsFold(FieldTaskID, v))
}

// ChannelKindEQ applies the EQ predicate on the "channel_kind" field.
func ChannelKindEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldChannelKind, v))
}

// ChannelKindNEQ applies the NEQ predicate on the "channel_kind" field.
func ChannelKindNEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldChannelKind, v))
}

// ChannelKindIn applies the In predicate on the "channel_kind" field.
func ChannelKindIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldChannelKind, vs...))
}

// ChannelKindNotIn applies the NotIn predicate on the "channel_kind" field.
func ChannelKindNotIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldChannelKind, vs...))
}

// ChannelKindGT applies the GT predicate on the "channel_kind" field.
func ChannelKindGT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldChannelKind, v))
}

// ChannelKindGTE applies the GTE predicate on the "channel_kind" field.
func ChannelKindGTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldChannelKind, v))
}

// ChannelKindLT applies the LT predicate on the "channel_kind" field.
func ChannelKindLT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldChannelKind, v))
}

// ChannelKindLTE applies the LTE predicate on the "channel_kind" field.
func ChannelKindLTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldChannelKind, v))
}

// ChannelKindContains applies the Contains predicate on the "channel_kind" field.
func ChannelKindContains(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContains(FieldChannelKind, v))
}

// ChannelKindHasPrefix applies the HasPrefix predicate on the "channel_kind" field.
func ChannelKindHasPrefix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasPrefix(FieldChannelKind, v))
}

// ChannelKindHasSuffix applies the HasSuffix predicate on the "channel_kind" field.
func ChannelKindHasSuffix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasSuffix(FieldChannelKind, v))
}

// ChannelKindEqualFold applies the EqualFold predicate on the "channel_kind" field.
func ChannelKindEqualFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEqualFold(FieldChannelKind, v))
}

// ChannelKindContainsFold applies the ContainsFold predicate on the "channel_kind" field.
func ChannelKindContainsFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContainsFold(FieldChannelKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldStatus, vs...))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.NotificationHistory {
	return predicate.NotificationHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.NotificationHistory {
	return predicate.NotificationHistory(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationHistory) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationHistory) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationHistory) predicate.NotificationHistory {
	return predicate.NotificationHistory(sql.NotPredicates(p))
}
