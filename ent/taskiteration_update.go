// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/taskiteration"
)

// TaskIterationUpdate is the builder for updating TaskIteration entities.
type TaskIterationUpdate struct {
	config
	hooks    []Hook
	mutation *TaskIterationMutation
}

// Where appends a list predicates to the TaskIterationUpdate builder.
func (_u *TaskIterationUpdate) Where(ps ...predicate.TaskIteration) *TaskIterationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInput sets the "input" field.
func (_u *TaskIterationUpdate) SetInput(v map[string]interface{}) *TaskIterationUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *TaskIterationUpdate) ClearInput() *TaskIterationUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskIterationUpdate) SetOutput(v map[string]interface{}) *TaskIterationUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskIterationUpdate) ClearOutput() *TaskIterationUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskIterationUpdate) SetDurationMs(v int) *TaskIterationUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskIterationUpdate) SetNillableDurationMs(v *int) *TaskIterationUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskIterationUpdate) AddDurationMs(v int) *TaskIterationUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TaskIterationMutation object of the builder.
func (_u *TaskIterationUpdate) Mutation() *TaskIterationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskIterationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskIterationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskIterationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskIterationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskIterationUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskIteration.task"`)
	}
	return nil
}

func (_u *TaskIterationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskiteration.Table, taskiteration.Columns, sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(taskiteration.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(taskiteration.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(taskiteration.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(taskiteration.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskiteration.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskiteration.FieldDurationMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskiteration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskIterationUpdateOne is the builder for updating a single TaskIteration entity.
type TaskIterationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskIterationMutation
}

// SetInput sets the "input" field.
func (_u *TaskIterationUpdateOne) SetInput(v map[string]interface{}) *TaskIterationUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *TaskIterationUpdateOne) ClearInput() *TaskIterationUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *TaskIterationUpdateOne) SetOutput(v map[string]interface{}) *TaskIterationUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TaskIterationUpdateOne) ClearOutput() *TaskIterationUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskIterationUpdateOne) SetDurationMs(v int) *TaskIterationUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskIterationUpdateOne) SetNillableDurationMs(v *int) *TaskIterationUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskIterationUpdateOne) AddDurationMs(v int) *TaskIterationUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TaskIterationMutation object of the builder.
func (_u *TaskIterationUpdateOne) Mutation() *TaskIterationMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskIterationUpdate builder.
func (_u *TaskIterationUpdateOne) Where(ps ...predicate.TaskIteration) *TaskIterationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskIterationUpdateOne) Select(field string, fields ...string) *TaskIterationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskIteration entity.
func (_u *TaskIterationUpdateOne) Save(ctx context.Context) (*TaskIteration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskIterationUpdateOne) SaveX(ctx context.Context) *TaskIteration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskIterationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskIterationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskIterationUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskIteration.task"`)
	}
	return nil
}

func (_u *TaskIterationUpdateOne) sqlSave(ctx context.Context) (_node *TaskIteration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskiteration.Table, taskiteration.Columns, sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskIteration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskiteration.FieldID)
		for _, f := range fields {
			if !taskiteration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskiteration.FieldID {
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
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(taskiteration.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(taskiteration.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(taskiteration.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(taskiteration.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskiteration.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskiteration.FieldDurationMs, field.TypeInt, value)
	}
	_node = &TaskIteration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskiteration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
