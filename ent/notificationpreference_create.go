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
	"github.com/loop-symphony/symphony/ent/notificationpreference"
)

// NotificationPreferenceCreate is the builder for creating a NotificationPreference entity.
type NotificationPreferenceCreate struct {
	config
	mutation *NotificationPreferenceMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *NotificationPreferenceCreate) SetAppID(v string) *NotificationPreferenceCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *NotificationPreferenceCreate) SetUserID(v string) *NotificationPreferenceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *NotificationPreferenceCreate) SetEnabled(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEnabled(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (_c *NotificationPreferenceCreate) SetQuietHoursStart(v int) *NotificationPreferenceCreate {
	_c.mutation.SetQuietHoursStart(v)
	return _c
}

// SetNillableQuietHoursStart sets the "quiet_hours_start" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableQuietHoursStart(v *int) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetQuietHoursStart(*v)
	}
	return _c
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (_c *NotificationPreferenceCreate) SetQuietHoursEnd(v int) *NotificationPreferenceCreate {
	_c.mutation.SetQuietHoursEnd(v)
	return _c
}

// SetNillableQuietHoursEnd sets the "quiet_hours_end" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableQuietHoursEnd(v *int) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetQuietHoursEnd(*v)
	}
	return _c
}

// SetOutcomes sets the "outcomes" field.
func (_c *NotificationPreferenceCreate) SetOutcomes(v []string) *NotificationPreferenceCreate {
	_c.mutation.SetOutcomes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationPreferenceCreate) SetCreatedAt(v time.Time) *NotificationPreferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableCreatedAt(v *time.Time) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationPreferenceCreate) SetUpdatedAt(v time.Time) *NotificationPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationPreferenceCreate) SetID(v string) *NotificationPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *NotificationPreferenceCreate) SetApp(v *App) *NotificationPreferenceCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_c *NotificationPreferenceCreate) Mutation() *NotificationPreferenceMutation {
	return _c.mutation
}

// Save creates the NotificationPreference in the database.
func (_c *NotificationPreferenceCreate) Save(ctx context.Context) (*NotificationPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationPreferenceCreate) SaveX(ctx context.Context) *NotificationPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationPreferenceCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := notificationpreference.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationpreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationPreferenceCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "NotificationPreference.app_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NotificationPreference.user_id"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "NotificationPreference.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationPreference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NotificationPreference.updated_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "NotificationPreference.app"`)}
	}
	return nil
}

func (_c *NotificationPreferenceCreate) sqlSave(ctx context.Context) (*NotificationPreference, error) {
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
			return nil, fmt.Errorf("unexpected NotificationPreference.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationPreferenceCreate) createSpec() (*NotificationPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationpreference.Table, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationpreference.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(notificationpreference.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.QuietHoursStart(); ok {
		_spec.SetField(notificationpreference.FieldQuietHoursStart, field.TypeInt, value)
		_node.QuietHoursStart = &value
	}
	if value, ok := _c.mutation.QuietHoursEnd(); ok {
		_spec.SetField(notificationpreference.FieldQuietHoursEnd, field.TypeInt, value)
		_node.QuietHoursEnd = &value
	}
	if value, ok := _c.mutation.Outcomes(); ok {
		_spec.SetField(notificationpreference.FieldOutcomes, field.TypeJSON, value)
		_node.Outcomes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationpreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notificationpreference.AppTable,
			Columns: []string{notificationpreference.AppColumn},
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

// NotificationPreferenceCreateBulk is the builder for creating many NotificationPreference entities in bulk.
type NotificationPreferenceCreateBulk struct {
	config
	err      error
	builders []*NotificationPreferenceCreate
}

// Save creates the NotificationPreference entities in the database.
func (_c *NotificationPreferenceCreateBulk) Save(ctx context.Context) ([]*NotificationPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationPreferenceMutation)
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
func (_c *NotificationPreferenceCreateBulk) SaveX(ctx context.Context) []*NotificationPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
