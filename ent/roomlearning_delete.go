// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/roomlearning"
)

// RoomLearningDelete is the builder for deleting a RoomLearning entity.
type RoomLearningDelete struct {
	config
	hooks    []Hook
	mutation *RoomLearningMutation
}

// Where appends a list predicates to the RoomLearningDelete builder.
func (_d *RoomLearningDelete) Where(ps ...predicate.RoomLearning) *RoomLearningDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RoomLearningDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RoomLearningDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RoomLearningDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(roomlearning.Table, sqlgraph.NewFieldSpec(roomlearning.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RoomLearningDeleteOne is the builder for deleting a single RoomLearning entity.
type RoomLearningDeleteOne struct {
	_d *RoomLearningDelete
}

// Where appends a list predicates to the RoomLearningDelete builder.
func (_d *RoomLearningDeleteOne) Where(ps ...predicate.RoomLearning) *RoomLearningDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RoomLearningDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{roomlearning.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RoomLearningDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
