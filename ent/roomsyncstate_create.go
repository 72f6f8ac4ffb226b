// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
)

// RoomSyncStateCreate is the builder for creating a RoomSyncState entity.
type RoomSyncStateCreate struct {
	config
	mutation *RoomSyncStateMutation
	hooks    []Hook
}

// SetRoomID sets the "room_id" field.
func (_c *RoomSyncStateCreate) SetRoomID(v string) *RoomSyncStateCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetRoomName sets the "room_name" field.
func (_c *RoomSyncStateCreate) SetRoomName(v string) *RoomSyncStateCreate {
	_c.mutation.SetRoomName(v)
	return _c
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableRoomName(v *string) *RoomSyncStateCreate {
	if v != nil {
		_c.SetRoomName(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RoomSyncStateCreate) SetLastHeartbeatAt(v time.Time) *RoomSyncStateCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableLastHeartbeatAt(v *time.Time) *RoomSyncStateCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetLastLoad sets the "last_load" field.
func (_c *RoomSyncStateCreate) SetLastLoad(v float64) *RoomSyncStateCreate {
	_c.mutation.SetLastLoad(v)
	return _c
}

// SetNillableLastLoad sets the "last_load" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableLastLoad(v *float64) *RoomSyncStateCreate {
	if v != nil {
		_c.SetLastLoad(*v)
	}
	return _c
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (_c *RoomSyncStateCreate) SetHeartbeatCount(v int) *RoomSyncStateCreate {
	_c.mutation.SetHeartbeatCount(v)
	return _c
}

// SetNillableHeartbeatCount sets the "heartbeat_count" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableHeartbeatCount(v *int) *RoomSyncStateCreate {
	if v != nil {
		_c.SetHeartbeatCount(*v)
	}
	return _c
}

// SetLearningsReceived sets the "learnings_received" field.
func (_c *RoomSyncStateCreate) SetLearningsReceived(v int) *RoomSyncStateCreate {
	_c.mutation.SetLearningsReceived(v)
	return _c
}

// SetNillableLearningsReceived sets the "learnings_received" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableLearningsReceived(v *int) *RoomSyncStateCreate {
	if v != nil {
		_c.SetLearningsReceived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoomSyncStateCreate) SetCreatedAt(v time.Time) *RoomSyncStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableCreatedAt(v *time.Time) *RoomSyncStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoomSyncStateCreate) SetUpdatedAt(v time.Time) *RoomSyncStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoomSyncStateCreate) SetNillableUpdatedAt(v *time.Time) *RoomSyncStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomSyncStateCreate) SetID(v string) *RoomSyncStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoomSyncStateMutation object of the builder.
func (_c *RoomSyncStateCreate) Mutation() *RoomSyncStateMutation {
	return _c.mutation
}

// Save creates the RoomSyncState in the database.
func (_c *RoomSyncStateCreate) Save(ctx context.Context) (*RoomSyncState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomSyncStateCreate) SaveX(ctx context.Context) *RoomSyncState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomSyncStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomSyncStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomSyncStateCreate) defaults() {
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		v := roomsyncstate.DefaultLastHeartbeatAt()
		_c.mutation.SetLastHeartbeatAt(v)
	}
	if _, ok := _c.mutation.LastLoad(); !ok {
		v := roomsyncstate.DefaultLastLoad
		_c.mutation.SetLastLoad(v)
	}
	if _, ok := _c.mutation.HeartbeatCount(); !ok {
		v := roomsyncstate.DefaultHeartbeatCount
		_c.mutation.SetHeartbeatCount(v)
	}
	if _, ok := _c.mutation.LearningsReceived(); !ok {
		v := roomsyncstate.DefaultLearningsReceived
		_c.mutation.SetLearningsReceived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roomsyncstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := roomsyncstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomSyncStateCreate) check() error {
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "RoomSyncState.room_id"`)}
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		return &ValidationError{Name: "last_heartbeat_at", err: errors.New(`ent: missing required field "RoomSyncState.last_heartbeat_at"`)}
	}
	if _, ok := _c.mutation.LastLoad(); !ok {
		return &ValidationError{Name: "last_load", err: errors.New(`ent: missing required field "RoomSyncState.last_load"`)}
	}
	if _, ok := _c.mutation.HeartbeatCount(); !ok {
		return &ValidationError{Name: "heartbeat_count", err: errors.New(`ent: missing required field "RoomSyncState.heartbeat_count"`)}
	}
	if _, ok := _c.mutation.LearningsReceived(); !ok {
		return &ValidationError{Name: "learnings_received", err: errors.New(`ent: missing required field "RoomSyncState.learnings_received"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoomSyncState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RoomSyncState.updated_at"`)}
	}
	return nil
}

func (_c *RoomSyncStateCreate) sqlSave(ctx context.Context) (*RoomSyncState, error) {
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
			return nil, fmt.Errorf("unexpected RoomSyncState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomSyncStateCreate) createSpec() (*RoomSyncState, *sqlgraph.CreateSpec) {
	var (
		_node = &RoomSyncState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roomsyncstate.Table, sqlgraph.NewFieldSpec(roomsyncstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(roomsyncstate.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.RoomName(); ok {
		_spec.SetField(roomsyncstate.FieldRoomName, field.TypeString, value)
		_node.RoomName = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(roomsyncstate.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	if value, ok := _c.mutation.LastLoad(); ok {
		_spec.SetField(roomsyncstate.FieldLastLoad, field.TypeFloat64, value)
		_node.LastLoad = value
	}
	if value, ok := _c.mutation.HeartbeatCount(); ok {
		_spec.SetField(roomsyncstate.FieldHeartbeatCount, field.TypeInt, value)
		_node.HeartbeatCount = value
	}
	if value, ok := _c.mutation.LearningsReceived(); ok {
		_spec.SetField(roomsyncstate.FieldLearningsReceived, field.TypeInt, value)
		_node.LearningsReceived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roomsyncstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(roomsyncstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RoomSyncStateCreateBulk is the builder for creating many RoomSyncState entities in bulk.
type RoomSyncStateCreateBulk struct {
	config
	err      error
	builders []*RoomSyncStateCreate
}

// Save creates the RoomSyncState entities in the database.
func (_c *RoomSyncStateCreateBulk) Save(ctx context.Context) ([]*RoomSyncState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoomSyncState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomSyncStateMutation)
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
func (_c *RoomSyncStateCreateBulk) SaveX(ctx context.Context) []*RoomSyncState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomSyncStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomSyncStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
