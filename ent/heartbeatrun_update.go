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
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// HeartbeatRunUpdate is the builder for updating HeartbeatRun entities.
type HeartbeatRunUpdate struct {
	config
	hooks    []Hook
	mutation *HeartbeatRunMutation
}

// Where appends a list predicates to the HeartbeatRunUpdate builder.
func (_u *HeartbeatRunUpdate) Where(ps ...predicate.HeartbeatRun) *HeartbeatRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *HeartbeatRunUpdate) SetTaskID(v string) *HeartbeatRunUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *HeartbeatRunUpdate) SetNillableTaskID(v *string) *HeartbeatRunUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *HeartbeatRunUpdate) ClearTaskID() *HeartbeatRunUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HeartbeatRunUpdate) SetStatus(v heartbeatrun.Status) *HeartbeatRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HeartbeatRunUpdate) SetNillableStatus(v *heartbeatrun.Status) *HeartbeatRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *HeartbeatRunUpdate) SetError(v string) *HeartbeatRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *HeartbeatRunUpdate) SetNillableError(v *string) *HeartbeatRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *HeartbeatRunUpdate) ClearError() *HeartbeatRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *HeartbeatRunUpdate) SetCompletedAt(v time.Time) *HeartbeatRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *HeartbeatRunUpdate) SetNillableCompletedAt(v *time.Time) *HeartbeatRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *HeartbeatRunUpdate) ClearCompletedAt() *HeartbeatRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the HeartbeatRunMutation object of the builder.
func (_u *HeartbeatRunUpdate) Mutation() *HeartbeatRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HeartbeatRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartbeatRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HeartbeatRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartbeatRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartbeatRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := heartbeatrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HeartbeatRun.status": %w`, err)}
		}
	}
	if _u.mutation.HeartbeatCleared() && len(_u.mutation.HeartbeatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HeartbeatRun.heartbeat"`)
	}
	return nil
}

func (_u *HeartbeatRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartbeatrun.Table, heartbeatrun.Columns, sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(heartbeatrun.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(heartbeatrun.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(heartbeatrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(heartbeatrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(heartbeatrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(heartbeatrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(heartbeatrun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartbeatrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HeartbeatRunUpdateOne is the builder for updating a single HeartbeatRun entity.
type HeartbeatRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HeartbeatRunMutation
}

// SetTaskID sets the "task_id" field.
func (_u *HeartbeatRunUpdateOne) SetTaskID(v string) *HeartbeatRunUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *HeartbeatRunUpdateOne) SetNillableTaskID(v *string) *HeartbeatRunUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *HeartbeatRunUpdateOne) ClearTaskID() *HeartbeatRunUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HeartbeatRunUpdateOne) SetStatus(v heartbeatrun.Status) *HeartbeatRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HeartbeatRunUpdateOne) SetNillableStatus(v *heartbeatrun.Status) *HeartbeatRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *HeartbeatRunUpdateOne) SetError(v string) *HeartbeatRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *HeartbeatRunUpdateOne) SetNillableError(v *string) *HeartbeatRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *HeartbeatRunUpdateOne) ClearError() *HeartbeatRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *HeartbeatRunUpdateOne) SetCompletedAt(v time.Time) *HeartbeatRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *HeartbeatRunUpdateOne) SetNillableCompletedAt(v *time.Time) *HeartbeatRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *HeartbeatRunUpdateOne) ClearCompletedAt() *HeartbeatRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the HeartbeatRunMutation object of the builder.
func (_u *HeartbeatRunUpdateOne) Mutation() *HeartbeatRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the HeartbeatRunUpdate builder.
func (_u *HeartbeatRunUpdateOne) Where(ps ...predicate.HeartbeatRun) *HeartbeatRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HeartbeatRunUpdateOne) Select(field string, fields ...string) *HeartbeatRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HeartbeatRun entity.
func (_u *HeartbeatRunUpdateOne) Save(ctx context.Context) (*HeartbeatRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartbeatRunUpdateOne) SaveX(ctx context.Context) *HeartbeatRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HeartbeatRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartbeatRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartbeatRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := heartbeatrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HeartbeatRun.status": %w`, err)}
		}
	}
	if _u.mutation.HeartbeatCleared() && len(_u.mutation.HeartbeatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HeartbeatRun.heartbeat"`)
	}
	return nil
}

func (_u *HeartbeatRunUpdateOne) sqlSave(ctx context.Context) (_node *HeartbeatRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartbeatrun.Table, heartbeatrun.Columns, sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HeartbeatRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, heartbeatrun.FieldID)
		for _, f := range fields {
			if !heartbeatrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != heartbeatrun.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(heartbeatrun.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(heartbeatrun.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(heartbeatrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(heartbeatrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(heartbeatrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(heartbeatrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(heartbeatrun.FieldCompletedAt, field.TypeTime)
	}
	_node = &HeartbeatRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartbeatrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
