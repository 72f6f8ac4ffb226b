// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/taskiteration"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TaskUpdate) SetOutcome(v task.Outcome) *TaskUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOutcome(v *task.Outcome) *TaskUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *TaskUpdate) ClearOutcome() *TaskUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *TaskUpdate) SetInstrument(v string) *TaskUpdate {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInstrument(v *string) *TaskUpdate {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// ClearInstrument clears the value of the "instrument" field.
func (_u *TaskUpdate) ClearInstrument() *TaskUpdate {
	_u.mutation.ClearInstrument()
	return _u
}

// SetProcessType sets the "process_type" field.
func (_u *TaskUpdate) SetProcessType(v string) *TaskUpdate {
	_u.mutation.SetProcessType(v)
	return _u
}

// SetNillableProcessType sets the "process_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProcessType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetProcessType(*v)
	}
	return _u
}

// ClearProcessType clears the value of the "process_type" field.
func (_u *TaskUpdate) ClearProcessType() *TaskUpdate {
	_u.mutation.ClearProcessType()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *TaskUpdate) SetRoomID(v string) *TaskUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRoomID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *TaskUpdate) ClearRoomID() *TaskUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetResponse sets the "response" field.
func (_u *TaskUpdate) SetResponse(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *TaskUpdate) ClearResponse() *TaskUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskUpdate) SetError(v string) *TaskUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskUpdate) ClearError() *TaskUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddIterationIDs adds the "iterations" edge to the TaskIteration entity by IDs.
func (_u *TaskUpdate) AddIterationIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddIterationIDs(ids...)
	return _u
}

// AddIterations adds the "iterations" edges to the TaskIteration entity.
func (_u *TaskUpdate) AddIterations(v ...*TaskIteration) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIterationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearIterations clears all "iterations" edges to the TaskIteration entity.
func (_u *TaskUpdate) ClearIterations() *TaskUpdate {
	_u.mutation.ClearIterations()
	return _u
}

// RemoveIterationIDs removes the "iterations" edge to TaskIteration entities by IDs.
func (_u *TaskUpdate) RemoveIterationIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveIterationIDs(ids...)
	return _u
}

// RemoveIterations removes "iterations" edges to TaskIteration entities.
func (_u *TaskUpdate) RemoveIterations(v ...*TaskIteration) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIterationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := task.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Task.outcome": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.app"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(task.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(task.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(task.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(task.FieldInstrument, field.TypeString, value)
	}
	if _u.mutation.InstrumentCleared() {
		_spec.ClearField(task.FieldInstrument, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessType(); ok {
		_spec.SetField(task.FieldProcessType, field.TypeString, value)
	}
	if _u.mutation.ProcessTypeCleared() {
		_spec.ClearField(task.FieldProcessType, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(task.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(task.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(task.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(task.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(task.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.IterationsTable,
			Columns: []string{task.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIterationsIDs(); len(nodes) > 0 && !_u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.IterationsTable,
			Columns: []string{task.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IterationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.IterationsTable,
			Columns: []string{task.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TaskUpdateOne) SetOutcome(v task.Outcome) *TaskUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOutcome(v *task.Outcome) *TaskUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *TaskUpdateOne) ClearOutcome() *TaskUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetInstrument sets the "instrument" field.
func (_u *TaskUpdateOne) SetInstrument(v string) *TaskUpdateOne {
	_u.mutation.SetInstrument(v)
	return _u
}

// SetNillableInstrument sets the "instrument" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInstrument(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetInstrument(*v)
	}
	return _u
}

// ClearInstrument clears the value of the "instrument" field.
func (_u *TaskUpdateOne) ClearInstrument() *TaskUpdateOne {
	_u.mutation.ClearInstrument()
	return _u
}

// SetProcessType sets the "process_type" field.
func (_u *TaskUpdateOne) SetProcessType(v string) *TaskUpdateOne {
	_u.mutation.SetProcessType(v)
	return _u
}

// SetNillableProcessType sets the "process_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProcessType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetProcessType(*v)
	}
	return _u
}

// ClearProcessType clears the value of the "process_type" field.
func (_u *TaskUpdateOne) ClearProcessType() *TaskUpdateOne {
	_u.mutation.ClearProcessType()
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *TaskUpdateOne) SetRoomID(v string) *TaskUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRoomID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *TaskUpdateOne) ClearRoomID() *TaskUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetResponse sets the "response" field.
func (_u *TaskUpdateOne) SetResponse(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *TaskUpdateOne) ClearResponse() *TaskUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskUpdateOne) SetError(v string) *TaskUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskUpdateOne) ClearError() *TaskUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddIterationIDs adds the "iterations" edge to the TaskIteration entity by IDs.
func (_u *TaskUpdateOne) AddIterationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddIterationIDs(ids...)
	return _u
}

// AddIterations adds the "iterations" edges to the TaskIteration entity.
func (_u *TaskUpdateOne) AddIterations(v ...*TaskIteration) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIterationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearIterations clears all "iterations" edges to the TaskIteration entity.
func (_u *TaskUpdateOne) ClearIterations() *TaskUpdateOne {
	_u.mutation.ClearIterations()
	return _u
}

// RemoveIterationIDs removes the "iterations" edge to TaskIteration entities by IDs.
func (_u *TaskUpdateOne) RemoveIterationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveIterationIDs(ids...)
	return _u
}

// RemoveIterations removes "iterations" edges to TaskIteration entities.
func (_u *TaskUpdateOne) RemoveIterations(v ...*TaskIteration) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIterationIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := task.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Task.outcome": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.app"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(task.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(task.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(task.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.Instrument(); ok {
		_spec.SetField(task.FieldInstrument, field.TypeString, value)
	}
	if _u.mutation.InstrumentCleared() {
		_spec.ClearField(task.FieldInstrument, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessType(); ok {
		_spec.SetField(task.FieldProcessType, field.TypeString, value)
	}
	if _u.mutation.ProcessTypeCleared() {
		_spec.ClearField(task.FieldProcessType, field.TypeString)
	}
	if value, ok := _u.mutation.RoomID(); ok {
		_spec.SetField(task.FieldRoomID, field.TypeString, value)
	}
	if _u.mutation.RoomIDCleared() {
		_spec.ClearField(task.FieldRoomID, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(task.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(task.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(task.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.IterationsTable,
			Columns: []string{task.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIterationsIDs(); len(nodes) > 0 && !_u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.IterationsTable,
			Columns: []string{task.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IterationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.IterationsTable,
			Columns: []string{task.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
