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
	"github.com/loop-symphony/symphony/ent/roomlearning"
)

// RoomLearningUpdate is the builder for updating RoomLearning entities.
type RoomLearningUpdate struct {
	config
	hooks    []Hook
	mutation *RoomLearningMutation
}

// Where appends a list predicates to the RoomLearningUpdate builder.
func (_u *RoomLearningUpdate) Where(ps ...predicate.RoomLearning) *RoomLearningUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *RoomLearningUpdate) SetTopic(v string) *RoomLearningUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *RoomLearningUpdate) SetNillableTopic(v *string) *RoomLearningUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RoomLearningUpdate) SetContent(v string) *RoomLearningUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RoomLearningUpdate) SetNillableContent(v *string) *RoomLearningUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the RoomLearningMutation object of the builder.
func (_u *RoomLearningUpdate) Mutation() *RoomLearningMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoomLearningUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomLearningUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoomLearningUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomLearningUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RoomLearningUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(roomlearning.Table, roomlearning.Columns, sqlgraph.NewFieldSpec(roomlearning.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AppIDCleared() {
		_spec.ClearField(roomlearning.FieldAppID, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(roomlearning.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(roomlearning.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roomlearning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoomLearningUpdateOne is the builder for updating a single RoomLearning entity.
type RoomLearningUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoomLearningMutation
}

// SetTopic sets the "topic" field.
func (_u *RoomLearningUpdateOne) SetTopic(v string) *RoomLearningUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *RoomLearningUpdateOne) SetNillableTopic(v *string) *RoomLearningUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RoomLearningUpdateOne) SetContent(v string) *RoomLearningUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RoomLearningUpdateOne) SetNillableContent(v *string) *RoomLearningUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the RoomLearningMutation object of the builder.
func (_u *RoomLearningUpdateOne) Mutation() *RoomLearningMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoomLearningUpdate builder.
func (_u *RoomLearningUpdateOne) Where(ps ...predicate.RoomLearning) *RoomLearningUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoomLearningUpdateOne) Select(field string, fields ...string) *RoomLearningUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoomLearning entity.
func (_u *RoomLearningUpdateOne) Save(ctx context.Context) (*RoomLearning, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomLearningUpdateOne) SaveX(ctx context.Context) *RoomLearning {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoomLearningUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomLearningUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RoomLearningUpdateOne) sqlSave(ctx context.Context) (_node *RoomLearning, err error) {
	_spec := sqlgraph.NewUpdateSpec(roomlearning.Table, roomlearning.Columns, sqlgraph.NewFieldSpec(roomlearning.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoomLearning.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roomlearning.FieldID)
		for _, f := range fields {
			if !roomlearning.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roomlearning.FieldID {
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
	if _u.mutation.AppIDCleared() {
		_spec.ClearField(roomlearning.FieldAppID, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(roomlearning.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(roomlearning.FieldContent, field.TypeString, value)
	}
	_node = &RoomLearning{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roomlearning.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
