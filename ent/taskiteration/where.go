// Code generated by ent, DO NOT EDIT.

package taskiteration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldTaskID, v))
}

// IterationNum applies equality check predicate on the "iteration_num" field. It's identical to IterationNumEQ.
func IterationNum(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldIterationNum, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldPhase, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldContainsFold(FieldTaskID, v))
}

// IterationNumEQ applies the EQ predicate on the "iteration_num" field.
func IterationNumEQ(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldIterationNum, v))
}

// IterationNumNEQ applies the NEQ predicate on the "iteration_num" field.
func IterationNumNEQ(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNEQ(FieldIterationNum, v))
}

// IterationNumIn applies the In predicate on the "iteration_num" field.
func IterationNumIn(vs ...int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIn(FieldIterationNum, vs...))
}

// IterationNumNotIn applies the NotIn predicate on the "iteration_num" field.
func IterationNumNotIn(vs ...int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotIn(FieldIterationNum, vs...))
}

// IterationNumGT applies the GT predicate on the "iteration_num" field.
func IterationNumGT(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGT(FieldIterationNum, v))
}

// IterationNumGTE applies the GTE predicate on the "iteration_num" field.
func IterationNumGTE(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGTE(FieldIterationNum, v))
}

// IterationNumLT applies the LT predicate on the "iteration_num" field.
func IterationNumLT(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLT(FieldIterationNum, v))
}

// IterationNumLTE applies the LTE predicate on the "iteration_num" field.
func IterationNumLTE(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLTE(FieldIterationNum, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldContainsFold(FieldPhase, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotNull(FieldInput))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotNull(FieldOutput))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskIteration {
	return predicate.TaskIteration(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskIteration {
	return predicate.TaskIteration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskIteration {
	return predicate.TaskIteration(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskIteration) predicate.TaskIteration {
	return predicate.TaskIteration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskIteration) predicate.TaskIteration {
	return predicate.TaskIteration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskIteration) predicate.TaskIteration {
	return predicate.TaskIteration(sql.NotPredicates(p))
}
