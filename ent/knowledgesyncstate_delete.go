// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// KnowledgeSyncStateDelete is the builder for deleting a KnowledgeSyncState entity.
type KnowledgeSyncStateDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeSyncStateMutation
}

// Where appends a list predicates to the KnowledgeSyncStateDelete builder.
func (_d *KnowledgeSyncStateDelete) Where(ps ...predicate.KnowledgeSyncState) *KnowledgeSyncStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeSyncStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeSyncStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeSyncStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgesyncstate.Table, sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString))
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

// KnowledgeSyncStateDeleteOne is the builder for deleting a single KnowledgeSyncState entity.
type KnowledgeSyncStateDeleteOne struct {
	_d *KnowledgeSyncStateDelete
}

// Where appends a list predicates to the KnowledgeSyncStateDelete builder.
func (_d *KnowledgeSyncStateDeleteOne) Where(ps ...predicate.KnowledgeSyncState) *KnowledgeSyncStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeSyncStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgesyncstate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeSyncStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
