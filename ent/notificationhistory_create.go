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
	"github.com/loop-symphony/symphony/ent/notificationhistory"
)

// NotificationHistoryCreate is the builder for creating a NotificationHistory entity.
type NotificationHistoryCreate struct {
	config
	mutation *NotificationHistoryMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *NotificationHistoryCreate) SetAppID(v string) *NotificationHistoryCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *NotificationHistoryCreate) SetUserID(v string) *NotificationHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *NotificationHistoryCreate) SetTaskID(v string) *NotificationHistoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *NotificationHistoryCreate) SetNillableTaskID(v *string) *NotificationHistoryCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetChannelKind sets the "channel_kind" field.
func (_c *NotificationHistoryCreate) SetChannelKind(v string) *NotificationHistoryCreate {
	_c.mutation.SetChannelKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NotificationHistoryCreate) SetStatus(v notificationhistory.Status) *NotificationHistoryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *NotificationHistoryCreate) SetDetail(v string) *NotificationHistoryCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *NotificationHistoryCreate) SetNillableDetail(v *string) *NotificationHistoryCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationHistoryCreate) SetCreatedAt(v time.Time) *NotificationHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationHistoryCreate) SetNillableCreatedAt(v *time.Time) *NotificationHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationHistoryCreate) SetID(v string) *NotificationHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *NotificationHistoryCreate) SetApp(v *App) *NotificationHistoryCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the NotificationHistoryMutation object of the builder.
func (_c *NotificationHistoryCreate) Mutation() *NotificationHistoryMutation {
	return _c.mutation
}

// Save creates the NotificationHistory in the database.
func (_c *NotificationHistoryCreate) Save(ctx context.Context) (*NotificationHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationHistoryCreate) SaveX(ctx context.Context) *NotificationHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationHistoryCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "NotificationHistory.app_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NotificationHistory.user_id"`)}
	}
	if _, ok := _c.mutation.ChannelKind(); !ok {
		return &ValidationError{Name: "channel_kind", err: errors.New(`ent: missing required field "NotificationHistory.channel_kind"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "NotificationHistory.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := notificationhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationHistory.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationHistory.created_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "NotificationHistory.app"`)}
	}
	return nil
}

func (_c *NotificationHistoryCreate) sqlSave(ctx context.Context) (*NotificationHistory, error) {
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
			return nil, fmt.Errorf("unexpected NotificationHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationHistoryCreate) createSpec() (*NotificationHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationhistory.Table, sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationhistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(notificationhistory.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.ChannelKind(); ok {
		_spec.SetField(notificationhistory.FieldChannelKind, field.TypeString, value)
		_node.ChannelKind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(notificationhistory.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(notificationhistory.FieldDetail, field.TypeString, value)
		_node.Detail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notificationhistory.AppTable,
			Columns: []string{notificationhistory.AppColumn},
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

// NotificationHistoryCreateBulk is the builder for creating many NotificationHistory entities in bulk.
type NotificationHistoryCreateBulk struct {
	config
	err      error
	builders []*NotificationHistoryCreate
}

// Save creates the NotificationHistory entities in the database.
func (_c *NotificationHistoryCreateBulk) Save(ctx context.Context) ([]*NotificationHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationHistoryMutation)
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
func (_c *NotificationHistoryCreateBulk) SaveX(ctx context.Context) []*NotificationHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
