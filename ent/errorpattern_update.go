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
	"github.com/loop-symphony/symphony/ent/errorpattern"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ErrorPatternUpdate is the builder for updating ErrorPattern entities.
type ErrorPatternUpdate struct {
	config
	hooks    []Hook
	mutation *ErrorPatternMutation
}

// Where appends a list predicates to the ErrorPatternUpdate builder.
func (_u *ErrorPatternUpdate) Where(ps ...predicate.ErrorPattern) *ErrorPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSignature sets the "signature" field.
func (_u *ErrorPatternUpdate) SetSignature(v string) *ErrorPatternUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableSignature(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ErrorPatternUpdate) SetSource(v string) *ErrorPatternUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableSource(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ErrorPatternUpdate) SetKind(v string) *ErrorPatternUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableKind(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *ErrorPatternUpdate) SetOccurrences(v int) *ErrorPatternUpdate {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableOccurrences(v *int) *ErrorPatternUpdate {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *ErrorPatternUpdate) AddOccurrences(v int) *ErrorPatternUpdate {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ErrorPatternUpdate) SetLastSeen(v time.Time) *ErrorPatternUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableLastSeen(v *time.Time) *ErrorPatternUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_u *ErrorPatternUpdate) Mutation() *ErrorPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ErrorPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ErrorPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorPatternUpdate) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ErrorPattern.app"`)
	}
	return nil
}

func (_u *ErrorPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorpattern.Table, errorpattern.Columns, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(errorpattern.FieldSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(errorpattern.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(errorpattern.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(errorpattern.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ErrorPatternUpdateOne is the builder for updating a single ErrorPattern entity.
type ErrorPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ErrorPatternMutation
}

// SetSignature sets the "signature" field.
func (_u *ErrorPatternUpdateOne) SetSignature(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableSignature(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ErrorPatternUpdateOne) SetSource(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableSource(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ErrorPatternUpdateOne) SetKind(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableKind(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *ErrorPatternUpdateOne) SetOccurrences(v int) *ErrorPatternUpdateOne {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableOccurrences(v *int) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *ErrorPatternUpdateOne) AddOccurrences(v int) *ErrorPatternUpdateOne {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ErrorPatternUpdateOne) SetLastSeen(v time.Time) *ErrorPatternUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableLastSeen(v *time.Time) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_u *ErrorPatternUpdateOne) Mutation() *ErrorPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the ErrorPatternUpdate builder.
func (_u *ErrorPatternUpdateOne) Where(ps ...predicate.ErrorPattern) *ErrorPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ErrorPatternUpdateOne) Select(field string, fields ...string) *ErrorPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ErrorPattern entity.
func (_u *ErrorPatternUpdateOne) Save(ctx context.Context) (*ErrorPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorPatternUpdateOne) SaveX(ctx context.Context) *ErrorPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ErrorPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorPatternUpdateOne) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ErrorPattern.app"`)
	}
	return nil
}

func (_u *ErrorPatternUpdateOne) sqlSave(ctx context.Context) (_node *ErrorPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorpattern.Table, errorpattern.Columns, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ErrorPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, errorpattern.FieldID)
		for _, f := range fields {
			if !errorpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != errorpattern.FieldID {
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
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(errorpattern.FieldSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(errorpattern.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(errorpattern.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(errorpattern.FieldLastSeen, field.TypeTime, value)
	}
	_node = &ErrorPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
