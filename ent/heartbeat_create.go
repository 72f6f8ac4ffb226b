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
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
)

// HeartbeatCreate is the builder for creating a Heartbeat entity.
type HeartbeatCreate struct {
	config
	mutation *HeartbeatMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *HeartbeatCreate) SetAppID(v string) *HeartbeatCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *HeartbeatCreate) SetUserID(v string) *HeartbeatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableUserID(v *string) *HeartbeatCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *HeartbeatCreate) SetName(v string) *HeartbeatCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQueryTemplate sets the "query_template" field.
func (_c *HeartbeatCreate) SetQueryTemplate(v string) *HeartbeatCreate {
	_c.mutation.SetQueryTemplate(v)
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *HeartbeatCreate) SetCronExpression(v string) *HeartbeatCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *HeartbeatCreate) SetTimezone(v string) *HeartbeatCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableTimezone(v *string) *HeartbeatCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetContextTemplate sets the "context_template" field.
func (_c *HeartbeatCreate) SetContextTemplate(v map[string]interface{}) *HeartbeatCreate {
	_c.mutation.SetContextTemplate(v)
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *HeartbeatCreate) SetWebhookURL(v string) *HeartbeatCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableWebhookURL(v *string) *HeartbeatCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *HeartbeatCreate) SetIsActive(v bool) *HeartbeatCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableIsActive(v *bool) *HeartbeatCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *HeartbeatCreate) SetLastRunAt(v time.Time) *HeartbeatCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableLastRunAt(v *time.Time) *HeartbeatCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HeartbeatCreate) SetCreatedAt(v time.Time) *HeartbeatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableCreatedAt(v *time.Time) *HeartbeatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HeartbeatCreate) SetUpdatedAt(v time.Time) *HeartbeatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HeartbeatCreate) SetNillableUpdatedAt(v *time.Time) *HeartbeatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HeartbeatCreate) SetID(v string) *HeartbeatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *HeartbeatCreate) SetApp(v *App) *HeartbeatCreate {
	return _c.SetAppID(v.ID)
}

// AddRunIDs adds the "runs" edge to the HeartbeatRun entity by IDs.
func (_c *HeartbeatCreate) AddRunIDs(ids ...string) *HeartbeatCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the HeartbeatRun entity.
func (_c *HeartbeatCreate) AddRuns(v ...*HeartbeatRun) *HeartbeatCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the HeartbeatMutation object of the builder.
func (_c *HeartbeatCreate) Mutation() *HeartbeatMutation {
	return _c.mutation
}

// Save creates the Heartbeat in the database.
func (_c *HeartbeatCreate) Save(ctx context.Context) (*Heartbeat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HeartbeatCreate) SaveX(ctx context.Context) *Heartbeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartbeatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartbeatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HeartbeatCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := heartbeat.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := heartbeat.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := heartbeat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := heartbeat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HeartbeatCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "Heartbeat.app_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Heartbeat.name"`)}
	}
	if _, ok := _c.mutation.QueryTemplate(); !ok {
		return &ValidationError{Name: "query_template", err: errors.New(`ent: missing required field "Heartbeat.query_template"`)}
	}
	if _, ok := _c.mutation.CronExpression(); !ok {
		return &ValidationError{Name: "cron_expression", err: errors.New(`ent: missing required field "Heartbeat.cron_expression"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Heartbeat.timezone"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Heartbeat.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Heartbeat.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Heartbeat.updated_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "Heartbeat.app"`)}
	}
	return nil
}

func (_c *HeartbeatCreate) sqlSave(ctx context.Context) (*Heartbeat, error) {
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
			return nil, fmt.Errorf("unexpected Heartbeat.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HeartbeatCreate) createSpec() (*Heartbeat, *sqlgraph.CreateSpec) {
	var (
		_node = &Heartbeat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(heartbeat.Table, sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(heartbeat.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(heartbeat.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.QueryTemplate(); ok {
		_spec.SetField(heartbeat.FieldQueryTemplate, field.TypeString, value)
		_node.QueryTemplate = value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(heartbeat.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(heartbeat.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.ContextTemplate(); ok {
		_spec.SetField(heartbeat.FieldContextTemplate, field.TypeJSON, value)
		_node.ContextTemplate = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(heartbeat.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(heartbeat.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(heartbeat.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(heartbeat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(heartbeat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   heartbeat.AppTable,
			Columns: []string{heartbeat.AppColumn},
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
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HeartbeatCreateBulk is the builder for creating many Heartbeat entities in bulk.
type HeartbeatCreateBulk struct {
	config
	err      error
	builders []*HeartbeatCreate
}

// Save creates the Heartbeat entities in the database.
func (_c *HeartbeatCreateBulk) Save(ctx context.Context) ([]*Heartbeat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Heartbeat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HeartbeatMutation)
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
func (_c *HeartbeatCreateBulk) SaveX(ctx context.Context) []*Heartbeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartbeatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartbeatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
