// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
)

// KnowledgeSyncStateCreate is the builder for creating a KnowledgeSyncState entity.
type KnowledgeSyncStateCreate struct {
	config
	mutation *KnowledgeSyncStateMutation
	hooks    []Hook
}

// SetRoomID sets the "room_id" field.
func (_c *KnowledgeSyncStateCreate) SetRoomID(v string) *KnowledgeSyncStateCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetAppID sets the "app_id" field.
func (_c *KnowledgeSyncStateCreate) SetAppID(v string) *KnowledgeSyncStateCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetLastVersion sets the "last_version" field.
func (_c *KnowledgeSyncStateCreate) SetLastVersion(v int) *KnowledgeSyncStateCreate {
	_c.mutation.SetLastVersion(v)
	return _c
}

// SetNillableLastVersion sets the "last_version" field if the given value is not nil.
func (_c *KnowledgeSyncStateCreate) SetNillableLastVersion(v *int) *KnowledgeSyncStateCreate {
	if v != nil {
		_c.SetLastVersion(*v)
	}
	return _c
}

// SetSyncedAt sets the "synced_at" field.
func (_c *KnowledgeSyncStateCreate) SetSyncedAt(v time.Time) *KnowledgeSyncStateCreate {
	_c.mutation.SetSyncedAt(v)
	return _c
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_c *KnowledgeSyncStateCreate) SetNillableSyncedAt(v *time.Time) *KnowledgeSyncStateCreate {
	if v != nil {
		_c.SetSyncedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeSyncStateCreate) SetID(v string) *KnowledgeSyncStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *KnowledgeSyncStateCreate) SetApp(v *App) *KnowledgeSyncStateCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the KnowledgeSyncStateMutation object of the builder.
func (_c *KnowledgeSyncStateCreate) Mutation() *KnowledgeSyncStateMutation {
	return _c.mutation
}

// Save creates the KnowledgeSyncState in the database.
func (_c *KnowledgeSyncStateCreate) Save(ctx context.Context) (*KnowledgeSyncState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeSyncStateCreate) SaveX(ctx context.Context) *KnowledgeSyncState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeSyncStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeSyncStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeSyncStateCreate) defaults() {
	if _, ok := _c.mutation.LastVersion(); !ok {
		v := knowledgesyncstate.DefaultLastVersion
		_c.mutation.SetLastVersion(v)
	}
	if _, ok := _c.mutation.SyncedAt(); !ok {
		v := knowledgesyncstate.DefaultSyncedAt()
		_c.mutation.SetSyncedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeSyncStateCreate) check() error {
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "KnowledgeSyncState.room_id"`)}
	}
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "KnowledgeSyncState.app_id"`)}
	}
	if _, ok := _c.mutation.LastVersion(); !ok {
		return &ValidationError{Name: "last_version", err: errors.New(`ent: missing required field "KnowledgeSyncState.last_version"`)}
	}
	if _, ok := _c.mutation.SyncedAt(); !ok {
		return &ValidationError{Name: "synced_at", err: errors.New(`ent: missing required field "KnowledgeSyncState.synced_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "KnowledgeSyncState.app"`)}
	}
	return nil
}

func (_c *KnowledgeSyncStateCreate) sqlSave(ctx context.Context) (*KnowledgeSyncState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected KnowledgeSyncState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeSyncStateCreate) createSpec() (*KnowledgeSyncState, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeSyncState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgesyncstate.Table, sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(knowledgesyncstate.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.LastVersion(); ok {
		_spec.SetField(knowledgesyncstate.FieldLastVersion, field.TypeInt, value)
		_node.LastVersion = value
	}
	if value, ok := _c.mutation.SyncedAt(); ok {
		_spec.SetField(knowledgesyncstate.FieldSyncedAt, field.TypeTime, value)
		_node.SyncedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgesyncstate.AppTable,
			Columns: []string{knowledgesyncstate.AppColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(app.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AppID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeSyncStateCreateBulk is the builder for creating many KnowledgeSyncState entities in bulk.
type KnowledgeSyncStateCreateBulk struct {
	config
	err      error
	builders []*KnowledgeSyncStateCreate
}

// Save creates the KnowledgeSyncState entities in the database.
func (_c *KnowledgeSyncStateCreateBulk) Save(ctx context.Context) ([]*KnowledgeSyncState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeSyncState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeSyncStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *KnowledgeSyncStateCreateBulk) SaveX(ctx context.Context) []*KnowledgeSyncState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeSyncStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeSyncStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
