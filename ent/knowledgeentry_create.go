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
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
)

// KnowledgeEntryCreate is the builder for creating a KnowledgeEntry entity.
type KnowledgeEntryCreate struct {
	config
	mutation *KnowledgeEntryMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *KnowledgeEntryCreate) SetAppID(v string) *KnowledgeEntryCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *KnowledgeEntryCreate) SetTopic(v string) *KnowledgeEntryCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeEntryCreate) SetContent(v string) *KnowledgeEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *KnowledgeEntryCreate) SetVersion(v int) *KnowledgeEntryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeEntryCreate) SetCreatedAt(v time.Time) *KnowledgeEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeEntryCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KnowledgeEntryCreate) SetUpdatedAt(v time.Time) *KnowledgeEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KnowledgeEntryCreate) SetNillableUpdatedAt(v *time.Time) *KnowledgeEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeEntryCreate) SetID(v string) *KnowledgeEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *KnowledgeEntryCreate) SetApp(v *App) *KnowledgeEntryCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_c *KnowledgeEntryCreate) Mutation() *KnowledgeEntryMutation {
	return _c.mutation
}

// Save creates the KnowledgeEntry in the database.
func (_c *KnowledgeEntryCreate) Save(ctx context.Context) (*KnowledgeEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeEntryCreate) SaveX(ctx context.Context) *KnowledgeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgeentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeEntryCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "KnowledgeEntry.app_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "KnowledgeEntry.topic"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeEntry.content"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "KnowledgeEntry.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "KnowledgeEntry.updated_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "KnowledgeEntry.app"`)}
	}
	return nil
}

func (_c *KnowledgeEntryCreate) sqlSave(ctx context.Context) (*KnowledgeEntry, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeEntryCreate) createSpec() (*KnowledgeEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeentry.Table, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(knowledgeentry.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgeentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(knowledgeentry.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeentry.AppTable,
			Columns: []string{knowledgeentry.AppColumn},
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

// KnowledgeEntryCreateBulk is the builder for creating many KnowledgeEntry entities in bulk.
type KnowledgeEntryCreateBulk struct {
	config
	err      error
	builders []*KnowledgeEntryCreate
}

// Save creates the KnowledgeEntry entities in the database.
func (_c *KnowledgeEntryCreateBulk) Save(ctx context.Context) ([]*KnowledgeEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeEntryMutation)
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
func (_c *KnowledgeEntryCreateBulk) SaveX(ctx context.Context) []*KnowledgeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
