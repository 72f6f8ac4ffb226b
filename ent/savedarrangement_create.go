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
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/pkg/models"
)

// SavedArrangementCreate is the builder for creating a SavedArrangement entity.
type SavedArrangementCreate struct {
	config
	mutation *SavedArrangementMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *SavedArrangementCreate) SetAppID(v string) *SavedArrangementCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SavedArrangementCreate) SetName(v string) *SavedArrangementCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SavedArrangementCreate) SetDescription(v string) *SavedArrangementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SavedArrangementCreate) SetNillableDescription(v *string) *SavedArrangementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *SavedArrangementCreate) SetKind(v savedarrangement.Kind) *SavedArrangementCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *SavedArrangementCreate) SetSteps(v []models.ArrangementStep) *SavedArrangementCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetMerge sets the "merge" field.
func (_c *SavedArrangementCreate) SetMerge(v string) *SavedArrangementCreate {
	_c.mutation.SetMerge(v)
	return _c
}

// SetNillableMerge sets the "merge" field if the given value is not nil.
func (_c *SavedArrangementCreate) SetNillableMerge(v *string) *SavedArrangementCreate {
	if v != nil {
		_c.SetMerge(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SavedArrangementCreate) SetCreatedAt(v time.Time) *SavedArrangementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SavedArrangementCreate) SetNillableCreatedAt(v *time.Time) *SavedArrangementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SavedArrangementCreate) SetUpdatedAt(v time.Time) *SavedArrangementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SavedArrangementCreate) SetNillableUpdatedAt(v *time.Time) *SavedArrangementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SavedArrangementCreate) SetID(v string) *SavedArrangementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *SavedArrangementCreate) SetApp(v *App) *SavedArrangementCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the SavedArrangementMutation object of the builder.
func (_c *SavedArrangementCreate) Mutation() *SavedArrangementMutation {
	return _c.mutation
}

// Save creates the SavedArrangement in the database.
func (_c *SavedArrangementCreate) Save(ctx context.Context) (*SavedArrangement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SavedArrangementCreate) SaveX(ctx context.Context) *SavedArrangement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SavedArrangementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SavedArrangementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SavedArrangementCreate) defaults() {
	if _, ok := _c.mutation.Merge(); !ok {
		v := savedarrangement.DefaultMerge
		_c.mutation.SetMerge(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := savedarrangement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := savedarrangement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SavedArrangementCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "SavedArrangement.app_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SavedArrangement.name"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SavedArrangement.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := savedarrangement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SavedArrangement.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "SavedArrangement.steps"`)}
	}
	if _, ok := _c.mutation.Merge(); !ok {
		return &ValidationError{Name: "merge", err: errors.New(`ent: missing required field "SavedArrangement.merge"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SavedArrangement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SavedArrangement.updated_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "SavedArrangement.app"`)}
	}
	return nil
}

func (_c *SavedArrangementCreate) sqlSave(ctx context.Context) (*SavedArrangement, error) {
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
			return nil, fmt.Errorf("unexpected SavedArrangement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SavedArrangementCreate) createSpec() (*SavedArrangement, *sqlgraph.CreateSpec) {
	var (
		_node = &SavedArrangement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(savedarrangement.Table, sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(savedarrangement.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(savedarrangement.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(savedarrangement.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(savedarrangement.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Merge(); ok {
		_spec.SetField(savedarrangement.FieldMerge, field.TypeString, value)
		_node.Merge = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(savedarrangement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(savedarrangement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   savedarrangement.AppTable,
			Columns: []string{savedarrangement.AppColumn},
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

// SavedArrangementCreateBulk is the builder for creating many SavedArrangement entities in bulk.
type SavedArrangementCreateBulk struct {
	config
	err      error
	builders []*SavedArrangementCreate
}

// Save creates the SavedArrangement entities in the database.
func (_c *SavedArrangementCreateBulk) Save(ctx context.Context) ([]*SavedArrangement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SavedArrangement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SavedArrangementMutation)
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
func (_c *SavedArrangementCreateBulk) SaveX(ctx context.Context) []*SavedArrangement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SavedArrangementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SavedArrangementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
