// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ErrorRecordUpdate is the builder for updating ErrorRecord entities.
type ErrorRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ErrorRecordMutation
}

// Where appends a list predicates to the ErrorRecordUpdate builder.
func (_u *ErrorRecordUpdate) Where(ps ...predicate.ErrorRecord) *ErrorRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *ErrorRecordUpdate) SetSource(v errorrecord.Source) *ErrorRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableSource(v *errorrecord.Source) *ErrorRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ErrorRecordUpdate) SetKind(v string) *ErrorRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableKind(v *string) *ErrorRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ErrorRecordUpdate) SetMessage(v string) *ErrorRecordUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ErrorRecordUpdate) SetNillableMessage(v *string) *ErrorRecordUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ErrorRecordUpdate) SetContext(v map[string]interface{}) *ErrorRecordUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ErrorRecordUpdate) ClearContext() *ErrorRecordUpdate {
	_u.mutation.ClearContext()
	return _u
}

// Mutation returns the ErrorRecordMutation object of the builder.
func (_u *ErrorRecordUpdate) Mutation() *ErrorRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ErrorRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ErrorRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorRecordUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := errorrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.source": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ErrorRecord.app"`)
	}
	return nil
}

func (_u *ErrorRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorrecord.Table, errorrecord.Columns, sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(errorrecord.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(errorrecord.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(errorrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(errorrecord.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(errorrecord.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(errorrecord.FieldContext, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ErrorRecordUpdateOne is the builder for updating a single ErrorRecord entity.
type ErrorRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ErrorRecordMutation
}

// SetSource sets the "source" field.
func (_u *ErrorRecordUpdateOne) SetSource(v errorrecord.Source) *ErrorRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableSource(v *errorrecord.Source) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ErrorRecordUpdateOne) SetKind(v string) *ErrorRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableKind(v *string) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ErrorRecordUpdateOne) SetMessage(v string) *ErrorRecordUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ErrorRecordUpdateOne) SetNillableMessage(v *string) *ErrorRecordUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ErrorRecordUpdateOne) SetContext(v map[string]interface{}) *ErrorRecordUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ErrorRecordUpdateOne) ClearContext() *ErrorRecordUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// Mutation returns the ErrorRecordMutation object of the builder.
func (_u *ErrorRecordUpdateOne) Mutation() *ErrorRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ErrorRecordUpdate builder.
func (_u *ErrorRecordUpdateOne) Where(ps ...predicate.ErrorRecord) *ErrorRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ErrorRecordUpdateOne) Select(field string, fields ...string) *ErrorRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ErrorRecord entity.
func (_u *ErrorRecordUpdateOne) Save(ctx context.Context) (*ErrorRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorRecordUpdateOne) SaveX(ctx context.Context) *ErrorRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ErrorRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := errorrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.source": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ErrorRecord.app"`)
	}
	return nil
}

func (_u *ErrorRecordUpdateOne) sqlSave(ctx context.Context) (_node *ErrorRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorrecord.Table, errorrecord.Columns, sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ErrorRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, errorrecord.FieldID)
		for _, f := range fields {
			if !errorrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != errorrecord.FieldID {
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
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(errorrecord.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(errorrecord.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(errorrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(errorrecord.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(errorrecord.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(errorrecord.FieldContext, field.TypeJSON)
	}
	_node = &ErrorRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
