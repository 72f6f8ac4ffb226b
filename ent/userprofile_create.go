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
	"github.com/loop-symphony/symphony/ent/userprofile"
)

// UserProfileCreate is the builder for creating a UserProfile entity.
type UserProfileCreate struct {
	config
	mutation *UserProfileMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *UserProfileCreate) SetAppID(v string) *UserProfileCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetExternalUserID sets the "external_user_id" field.
func (_c *UserProfileCreate) SetExternalUserID(v string) *UserProfileCreate {
	_c.mutation.SetExternalUserID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UserProfileCreate) SetDisplayName(v string) *UserProfileCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableDisplayName(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *UserProfileCreate) SetTimezone(v string) *UserProfileCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableTimezone(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetPreferences sets the "preferences" field.
func (_c *UserProfileCreate) SetPreferences(v map[string]interface{}) *UserProfileCreate {
	_c.mutation.SetPreferences(v)
	return _c
}

// SetTrustLevel sets the "trust_level" field.
func (_c *UserProfileCreate) SetTrustLevel(v int) *UserProfileCreate {
	_c.mutation.SetTrustLevel(v)
	return _c
}

// SetNillableTrustLevel sets the "trust_level" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableTrustLevel(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetTrustLevel(*v)
	}
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *UserProfileCreate) SetTotalTasks(v int) *UserProfileCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableTotalTasks(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetSuccessfulTasks sets the "successful_tasks" field.
func (_c *UserProfileCreate) SetSuccessfulTasks(v int) *UserProfileCreate {
	_c.mutation.SetSuccessfulTasks(v)
	return _c
}

// SetNillableSuccessfulTasks sets the "successful_tasks" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableSuccessfulTasks(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetSuccessfulTasks(*v)
	}
	return _c
}

// SetFailedTasks sets the "failed_tasks" field.
func (_c *UserProfileCreate) SetFailedTasks(v int) *UserProfileCreate {
	_c.mutation.SetFailedTasks(v)
	return _c
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableFailedTasks(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetFailedTasks(*v)
	}
	return _c
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (_c *UserProfileCreate) SetConsecutiveSuccesses(v int) *UserProfileCreate {
	_c.mutation.SetConsecutiveSuccesses(v)
	return _c
}

// SetNillableConsecutiveSuccesses sets the "consecutive_successes" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableConsecutiveSuccesses(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetConsecutiveSuccesses(*v)
	}
	return _c
}

// SetLastTaskAt sets the "last_task_at" field.
func (_c *UserProfileCreate) SetLastTaskAt(v time.Time) *UserProfileCreate {
	_c.mutation.SetLastTaskAt(v)
	return _c
}

// SetNillableLastTaskAt sets the "last_task_at" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableLastTaskAt(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetLastTaskAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserProfileCreate) SetCreatedAt(v time.Time) *UserProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableCreatedAt(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserProfileCreate) SetUpdatedAt(v time.Time) *UserProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableUpdatedAt(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserProfileCreate) SetID(v string) *UserProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *UserProfileCreate) SetApp(v *App) *UserProfileCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the UserProfileMutation object of the builder.
func (_c *UserProfileCreate) Mutation() *UserProfileMutation {
	return _c.mutation
}

// Save creates the UserProfile in the database.
func (_c *UserProfileCreate) Save(ctx context.Context) (*UserProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProfileCreate) SaveX(ctx context.Context) *UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProfileCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := userprofile.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.TrustLevel(); !ok {
		v := userprofile.DefaultTrustLevel
		_c.mutation.SetTrustLevel(v)
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := userprofile.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.SuccessfulTasks(); !ok {
		v := userprofile.DefaultSuccessfulTasks
		_c.mutation.SetSuccessfulTasks(v)
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		v := userprofile.DefaultFailedTasks
		_c.mutation.SetFailedTasks(v)
	}
	if _, ok := _c.mutation.ConsecutiveSuccesses(); !ok {
		v := userprofile.DefaultConsecutiveSuccesses
		_c.mutation.SetConsecutiveSuccesses(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProfileCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "UserProfile.app_id"`)}
	}
	if _, ok := _c.mutation.ExternalUserID(); !ok {
		return &ValidationError{Name: "external_user_id", err: errors.New(`ent: missing required field "UserProfile.external_user_id"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "UserProfile.timezone"`)}
	}
	if _, ok := _c.mutation.TrustLevel(); !ok {
		return &ValidationError{Name: "trust_level", err: errors.New(`ent: missing required field "UserProfile.trust_level"`)}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "UserProfile.total_tasks"`)}
	}
	if _, ok := _c.mutation.SuccessfulTasks(); !ok {
		return &ValidationError{Name: "successful_tasks", err: errors.New(`ent: missing required field "UserProfile.successful_tasks"`)}
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		return &ValidationError{Name: "failed_tasks", err: errors.New(`ent: missing required field "UserProfile.failed_tasks"`)}
	}
	if _, ok := _c.mutation.ConsecutiveSuccesses(); !ok {
		return &ValidationError{Name: "consecutive_successes", err: errors.New(`ent: missing required field "UserProfile.consecutive_successes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserProfile.updated_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "UserProfile.app"`)}
	}
	return nil
}

func (_c *UserProfileCreate) sqlSave(ctx context.Context) (*UserProfile, error) {
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
			return nil, fmt.Errorf("unexpected UserProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserProfileCreate) createSpec() (*UserProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprofile.Table, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalUserID(); ok {
		_spec.SetField(userprofile.FieldExternalUserID, field.TypeString, value)
		_node.ExternalUserID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(userprofile.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(userprofile.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Preferences(); ok {
		_spec.SetField(userprofile.FieldPreferences, field.TypeJSON, value)
		_node.Preferences = value
	}
	if value, ok := _c.mutation.TrustLevel(); ok {
		_spec.SetField(userprofile.FieldTrustLevel, field.TypeInt, value)
		_node.TrustLevel = value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(userprofile.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.SuccessfulTasks(); ok {
		_spec.SetField(userprofile.FieldSuccessfulTasks, field.TypeInt, value)
		_node.SuccessfulTasks = value
	}
	if value, ok := _c.mutation.FailedTasks(); ok {
		_spec.SetField(userprofile.FieldFailedTasks, field.TypeInt, value)
		_node.FailedTasks = value
	}
	if value, ok := _c.mutation.ConsecutiveSuccesses(); ok {
		_spec.SetField(userprofile.FieldConsecutiveSuccesses, field.TypeInt, value)
		_node.ConsecutiveSuccesses = value
	}
	if value, ok := _c.mutation.LastTaskAt(); ok {
		_spec.SetField(userprofile.FieldLastTaskAt, field.TypeTime, value)
		_node.LastTaskAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userprofile.AppTable,
			Columns: []string{userprofile.AppColumn},
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

// UserProfileCreateBulk is the builder for creating many UserProfile entities in bulk.
type UserProfileCreateBulk struct {
	config
	err      error
	builders []*UserProfileCreate
}

// Save creates the UserProfile entities in the database.
func (_c *UserProfileCreateBulk) Save(ctx context.Context) ([]*UserProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProfileMutation)
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
func (_c *UserProfileCreateBulk) SaveX(ctx context.Context) []*UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
