// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// HeartbeatRunDelete is the builder for deleting a HeartbeatRun entity.
type HeartbeatRunDelete struct {
	config
	hooks    []Hook
	mutation *HeartbeatRunMutation
}

// Where appends a list predicates to the HeartbeatRunDelete builder.
func (_d *HeartbeatRunDelete) Where(ps ...predicate.HeartbeatRun) *HeartbeatRunDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HeartbeatRunDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HeartbeatRunDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HeartbeatRunDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(heartbeatrun.Table, sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString))
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

// HeartbeatRunDeleteOne is the builder for deleting a single HeartbeatRun entity.
type HeartbeatRunDeleteOne struct {
	_d *HeartbeatRunDelete
}

// Where appends a list predicates to the HeartbeatRunDelete builder.
func (_d *HeartbeatRunDeleteOne) Where(ps ...predicate.HeartbeatRun) *HeartbeatRunDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HeartbeatRunDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{heartbeatrun.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HeartbeatRunDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
