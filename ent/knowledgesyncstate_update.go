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
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// KnowledgeSyncStateUpdate is the builder for updating KnowledgeSyncState entities.
type KnowledgeSyncStateUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeSyncStateMutation
}

// Where appends a list predicates to the KnowledgeSyncStateUpdate builder.
func (_u *KnowledgeSyncStateUpdate) Where(ps ...predicate.KnowledgeSyncState) *KnowledgeSyncStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastVersion sets the "last_version" field.
func (_u *KnowledgeSyncStateUpdate) SetLastVersion(v int) *KnowledgeSyncStateUpdate {
	_u.mutation.ResetLastVersion()
	_u.mutation.SetLastVersion(v)
	return _u
}

// SetNillableLastVersion sets the "last_version" field if the given value is not nil.
func (_u *KnowledgeSyncStateUpdate) SetNillableLastVersion(v *int) *KnowledgeSyncStateUpdate {
	if v != nil {
		_u.SetLastVersion(*v)
	}
	return _u
}

// AddLastVersion adds value to the "last_version" field.
func (_u *KnowledgeSyncStateUpdate) AddLastVersion(v int) *KnowledgeSyncStateUpdate {
	_u.mutation.AddLastVersion(v)
	return _u
}

// SetSyncedAt sets the "synced_at" field.
func (_u *KnowledgeSyncStateUpdate) SetSyncedAt(v time.Time) *KnowledgeSyncStateUpdate {
	_u.mutation.SetSyncedAt(v)
	return _u
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_u *KnowledgeSyncStateUpdate) SetNillableSyncedAt(v *time.Time) *KnowledgeSyncStateUpdate {
	if v != nil {
		_u.SetSyncedAt(*v)
	}
	return _u
}

// Mutation returns the KnowledgeSyncStateMutation object of the builder.
func (_u *KnowledgeSyncStateUpdate) Mutation() *KnowledgeSyncStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeSyncStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeSyncStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeSyncStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeSyncStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeSyncStateUpdate) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeSyncState.app"`)
	}
	return nil
}

func (_u *KnowledgeSyncStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgesyncstate.Table, knowledgesyncstate.Columns, sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastVersion(); ok {
		_spec.SetField(knowledgesyncstate.FieldLastVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastVersion(); ok {
		_spec.AddField(knowledgesyncstate.FieldLastVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SyncedAt(); ok {
		_spec.SetField(knowledgesyncstate.FieldSyncedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgesyncstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeSyncStateUpdateOne is the builder for updating a single KnowledgeSyncState entity.
type KnowledgeSyncStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeSyncStateMutation
}

// SetLastVersion sets the "last_version" field.
func (_u *KnowledgeSyncStateUpdateOne) SetLastVersion(v int) *KnowledgeSyncStateUpdateOne {
	_u.mutation.ResetLastVersion()
	_u.mutation.SetLastVersion(v)
	return _u
}

// SetNillableLastVersion sets the "last_version" field if the given value is not nil.
func (_u *KnowledgeSyncStateUpdateOne) SetNillableLastVersion(v *int) *KnowledgeSyncStateUpdateOne {
	if v != nil {
		_u.SetLastVersion(*v)
	}
	return _u
}

// AddLastVersion adds value to the "last_version" field.
func (_u *KnowledgeSyncStateUpdateOne) AddLastVersion(v int) *KnowledgeSyncStateUpdateOne {
	_u.mutation.AddLastVersion(v)
	return _u
}

// SetSyncedAt sets the "synced_at" field.
func (_u *KnowledgeSyncStateUpdateOne) SetSyncedAt(v time.Time) *KnowledgeSyncStateUpdateOne {
	_u.mutation.SetSyncedAt(v)
	return _u
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_u *KnowledgeSyncStateUpdateOne) SetNillableSyncedAt(v *time.Time) *KnowledgeSyncStateUpdateOne {
	if v != nil {
		_u.SetSyncedAt(*v)
	}
	return _u
}

// Mutation returns the KnowledgeSyncStateMutation object of the builder.
func (_u *KnowledgeSyncStateUpdateOne) Mutation() *KnowledgeSyncStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeSyncStateUpdate builder.
func (_u *KnowledgeSyncStateUpdateOne) Where(ps ...predicate.KnowledgeSyncState) *KnowledgeSyncStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeSyncStateUpdateOne) Select(field string, fields ...string) *KnowledgeSyncStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeSyncState entity.
func (_u *KnowledgeSyncStateUpdateOne) Save(ctx context.Context) (*KnowledgeSyncState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeSyncStateUpdateOne) SaveX(ctx context.Context) *KnowledgeSyncState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeSyncStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeSyncStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeSyncStateUpdateOne) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeSyncState.app"`)
	}
	return nil
}

func (_u *KnowledgeSyncStateUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeSyncState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgesyncstate.Table, knowledgesyncstate.Columns, sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeSyncState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgesyncstate.FieldID)
		for _, f := range fields {
			if !knowledgesyncstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgesyncstate.FieldID {
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
	if value, ok := _u.mutation.LastVersion(); ok {
		_spec.SetField(knowledgesyncstate.FieldLastVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastVersion(); ok {
		_spec.AddField(knowledgesyncstate.FieldLastVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SyncedAt(); ok {
		_spec.SetField(knowledgesyncstate.FieldSyncedAt, field.TypeTime, value)
	}
	_node = &KnowledgeSyncState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgesyncstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
