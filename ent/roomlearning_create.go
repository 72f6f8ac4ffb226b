// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/roomlearning"
)

// RoomLearningCreate is the builder for creating a RoomLearning entity.
type RoomLearningCreate struct {
	config
	mutation *RoomLearningMutation
	hooks    []Hook
}

// SetRoomID sets the "room_id" field.
func (_c *RoomLearningCreate) SetRoomID(v string) *RoomLearningCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetAppID sets the "app_id" field.
func (_c *RoomLearningCreate) SetAppID(v string) *RoomLearningCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetNillableAppID sets the "app_id" field if the given value is not nil.
func (_c *RoomLearningCreate) SetNillableAppID(v *string) *RoomLearningCreate {
	if v != nil {
		_c.SetAppID(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *RoomLearningCreate) SetTopic(v string) *RoomLearningCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *RoomLearningCreate) SetContent(v string) *RoomLearningCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *RoomLearningCreate) SetReceivedAt(v time.Time) *RoomLearningCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *RoomLearningCreate) SetNillableReceivedAt(v *time.Time) *RoomLearningCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomLearningCreate) SetID(v string) *RoomLearningCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoomLearningMutation object of the builder.
func (_c *RoomLearningCreate) Mutation() *RoomLearningMutation {
	return _c.mutation
}

// Save creates the RoomLearning in the database.
func (_c *RoomLearningCreate) Save(ctx context.Context) (*RoomLearning, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomLearningCreate) SaveX(ctx context.Context) *RoomLearning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomLearningCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomLearningCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomLearningCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := roomlearning.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomLearningCreate) check() error {
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "RoomLearning.room_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "RoomLearning.topic"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "RoomLearning.content"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "RoomLearning.received_at"`)}
	}
	return nil
}

func (_c *RoomLearningCreate) sqlSave(ctx context.Context) (*RoomLearning, error) {
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
			return nil, fmt.Errorf("unexpected RoomLearning.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomLearningCreate) createSpec() (*RoomLearning, *sqlgraph.CreateSpec) {
	var (
		_node = &RoomLearning{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roomlearning.Table, sqlgraph.NewFieldSpec(roomlearning.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(roomlearning.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.AppID(); ok {
		_spec.SetField(roomlearning.FieldAppID, field.TypeString, value)
		_node.AppID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(roomlearning.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(roomlearning.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(roomlearning.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// RoomLearningCreateBulk is the builder for creating many RoomLearning entities in bulk.
type RoomLearningCreateBulk struct {
	config
	err      error
	builders []*RoomLearningCreate
}

// Save creates the RoomLearning entities in the database.
func (_c *RoomLearningCreateBulk) Save(ctx context.Context) ([]*RoomLearning, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoomLearning, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomLearningMutation)
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
func (_c *RoomLearningCreateBulk) SaveX(ctx context.Context) []*RoomLearning {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomLearningCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomLearningCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
