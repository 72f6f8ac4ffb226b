// Code generated by ent, DO NOT EDIT.

package heartbeatrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContainsFold(FieldID, id))
}

// HeartbeatID applies equality check predicate on the "heartbeat_id" field. It's identical to HeartbeatIDEQ.
func HeartbeatID(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldHeartbeatID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldTaskID, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldScheduledFor, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldCompletedAt, v))
}

// HeartbeatIDEQ applies the EQ predicate on the "heartbeat_id" field.
func HeartbeatIDEQ(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldHeartbeatID, v))
}

// HeartbeatIDNEQ applies the NEQ predicate on the "heartbeat_id" field.
func HeartbeatIDNEQ(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldHeartbeatID, v))
}

// HeartbeatIDIn applies the In predicate on the "heartbeat_id" field.
func HeartbeatIDIn(vs ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldHeartbeatID, vs...))
}

// HeartbeatIDNotIn applies the NotIn predicate on the "heartbeat_id" field.
func HeartbeatIDNotIn(vs ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldHeartbeatID, vs...))
}

// HeartbeatIDGT applies the GT predicate on the "heartbeat_id" field.
func HeartbeatIDGT(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldHeartbeatID, v))
}

// HeartbeatIDGTE applies the GTE predicate on the "heartbeat_id" field.
func HeartbeatIDGTE(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldHeartbeatID, v))
}

// HeartbeatIDLT applies the LT predicate on the "heartbeat_id" field.
func HeartbeatIDLT(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldHeartbeatID, v))
}

// HeartbeatIDLTE applies the LTE predicate on the "heartbeat_id" field.
func HeartbeatIDLTE(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldHeartbeatID, v))
}

// HeartbeatIDContains applies the Contains predicate on the "heartbeat_id" field.
func HeartbeatIDContains(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContains(FieldHeartbeatID, v))
}

// HeartbeatIDHasPrefix applies the HasPrefix predicate on the "heartbeat_id" field.
func HeartbeatIDHasPrefix(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldHasPrefix(FieldHeartbeatID, v))
}

// HeartbeatIDHasSuffix applies the HasSuffix predicate on the "heartbeat_id" field.
func HeartbeatIDHasSuffix(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldHasSuffix(FieldHeartbeatID, v))
}

// HeartbeatIDEqualFold applies the EqualFold predicate on the "heartbeat_id" field.
func HeartbeatIDEqualFold(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEqualFold(FieldHeartbeatID, v))
}

// HeartbeatIDContainsFold applies the ContainsFold predicate on the "heartbeat_id" field.
func HeartbeatIDContainsFold(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContainsFold(FieldHeartbeatID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContainsFold(FieldTaskID, v))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldScheduledFor, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasHeartbeat applies the HasEdge predicate on the "heartbeat" edge.
func HasHeartbeat() predicate.HeartbeatRun {
	return predicate.HeartbeatRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HeartbeatTable, HeartbeatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHeartbeatWith applies the HasEdge predicate on the "heartbeat" edge with a given conditions (other predicates).
func HasHeartbeatWith(preds ...predicate.Heartbeat) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(func(s *sql.Selector) {
		step := newHeartbeatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HeartbeatRun) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HeartbeatRun) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HeartbeatRun) predicate.HeartbeatRun {
	return predicate.HeartbeatRun(sql.NotPredicates(p))
}
