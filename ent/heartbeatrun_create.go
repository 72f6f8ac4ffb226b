// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
)

// HeartbeatRunCreate is the builder for creating a HeartbeatRun entity.
type HeartbeatRunCreate struct {
	config
	mutation *HeartbeatRunMutation
	hooks    []Hook
}

// SetHeartbeatID sets the "heartbeat_id" field.
func (_c *HeartbeatRunCreate) SetHeartbeatID(v string) *HeartbeatRunCreate {
	_c.mutation.SetHeartbeatID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *HeartbeatRunCreate) SetTaskID(v string) *HeartbeatRunCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *HeartbeatRunCreate) SetNillableTaskID(v *string) *HeartbeatRunCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *HeartbeatRunCreate) SetScheduledFor(v time.Time) *HeartbeatRunCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *HeartbeatRunCreate) SetStatus(v heartbeatrun.Status) *HeartbeatRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HeartbeatRunCreate) SetNillableStatus(v *heartbeatrun.Status) *HeartbeatRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *HeartbeatRunCreate) SetError(v string) *HeartbeatRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *HeartbeatRunCreate) SetNillableError(v *string) *HeartbeatRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HeartbeatRunCreate) SetCreatedAt(v time.Time) *HeartbeatRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HeartbeatRunCreate) SetNillableCreatedAt(v *time.Time) *HeartbeatRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *HeartbeatRunCreate) SetCompletedAt(v time.Time) *HeartbeatRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *HeartbeatRunCreate) SetNillableCompletedAt(v *time.Time) *HeartbeatRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HeartbeatRunCreate) SetID(v string) *HeartbeatRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHeartbeat sets the "heartbeat" edge to the Heartbeat entity.
func (_c *HeartbeatRunCreate) SetHeartbeat(v *Heartbeat) *HeartbeatRunCreate {
	return _c.SetHeartbeatID(v.ID)
}

// Mutation returns the HeartbeatRunMutation object of the builder.
func (_c *HeartbeatRunCreate) Mutation() *HeartbeatRunMutation {
	return _c.mutation
}

// Save creates the HeartbeatRun in the database.
func (_c *HeartbeatRunCreate) Save(ctx context.Context) (*HeartbeatRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HeartbeatRunCreate) SaveX(ctx context.Context) *HeartbeatRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartbeatRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartbeatRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HeartbeatRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := heartbeatrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := heartbeatrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HeartbeatRunCreate) check() error {
	if _, ok := _c.mutation.HeartbeatID(); !ok {
		return &ValidationError{Name: "heartbeat_id", err: errors.New(`ent: missing required field "HeartbeatRun.heartbeat_id"`)}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`ent: missing required field "HeartbeatRun.scheduled_for"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "HeartbeatRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := heartbeatrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HeartbeatRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HeartbeatRun.created_at"`)}
	}
	if len(_c.mutation.HeartbeatIDs()) == 0 {
		return &ValidationError{Name: "heartbeat", err: errors.New(`ent: missing required edge "HeartbeatRun.heartbeat"`)}
	}
	return nil
}

func (_c *HeartbeatRunCreate) sqlSave(ctx context.Context) (*HeartbeatRun, error) {
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
			return nil, fmt.Errorf("unexpected HeartbeatRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HeartbeatRunCreate) createSpec() (*HeartbeatRun, *sqlgraph.CreateSpec) {
	var (
		_node = &HeartbeatRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(heartbeatrun.Table, sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(heartbeatrun.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(heartbeatrun.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(heartbeatrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(heartbeatrun.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(heartbeatrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(heartbeatrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.HeartbeatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   heartbeatrun.HeartbeatTable,
			Columns: []string{heartbeatrun.HeartbeatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HeartbeatID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HeartbeatRunCreateBulk is the builder for creating many HeartbeatRun entities in bulk.
type HeartbeatRunCreateBulk struct {
	config
	err      error
	builders []*HeartbeatRunCreate
}

// Save creates the HeartbeatRun entities in the database.
func (_c *HeartbeatRunCreateBulk) Save(ctx context.Context) ([]*HeartbeatRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HeartbeatRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HeartbeatRunMutation)
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
func (_c *HeartbeatRunCreateBulk) SaveX(ctx context.Context) []*HeartbeatRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartbeatRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartbeatRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
