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
	"github.com/loop-symphony/symphony/ent/errorpattern"
)

// ErrorPatternCreate is the builder for creating a ErrorPattern entity.
type ErrorPatternCreate struct {
	config
	mutation *ErrorPatternMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *ErrorPatternCreate) SetAppID(v string) *ErrorPatternCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetSignature sets the "signature" field.
func (_c *ErrorPatternCreate) SetSignature(v string) *ErrorPatternCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ErrorPatternCreate) SetSource(v string) *ErrorPatternCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ErrorPatternCreate) SetKind(v string) *ErrorPatternCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetOccurrences sets the "occurrences" field.
func (_c *ErrorPatternCreate) SetOccurrences(v int) *ErrorPatternCreate {
	_c.mutation.SetOccurrences(v)
	return _c
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableOccurrences(v *int) *ErrorPatternCreate {
	if v != nil {
		_c.SetOccurrences(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *ErrorPatternCreate) SetFirstSeen(v time.Time) *ErrorPatternCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableFirstSeen(v *time.Time) *ErrorPatternCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ErrorPatternCreate) SetLastSeen(v time.Time) *ErrorPatternCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableLastSeen(v *time.Time) *ErrorPatternCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ErrorPatternCreate) SetID(v string) *ErrorPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *ErrorPatternCreate) SetApp(v *App) *ErrorPatternCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_c *ErrorPatternCreate) Mutation() *ErrorPatternMutation {
	return _c.mutation
}

// Save creates the ErrorPattern in the database.
func (_c *ErrorPatternCreate) Save(ctx context.Context) (*ErrorPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorPatternCreate) SaveX(ctx context.Context) *ErrorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorPatternCreate) defaults() {
	if _, ok := _c.mutation.Occurrences(); !ok {
		v := errorpattern.DefaultOccurrences
		_c.mutation.SetOccurrences(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := errorpattern.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := errorpattern.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorPatternCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "ErrorPattern.app_id"`)}
	}
	if _, ok := _c.mutation.Signature(); !ok {
		return &ValidationError{Name: "signature", err: errors.New(`ent: missing required field "ErrorPattern.signature"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ErrorPattern.source"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ErrorPattern.kind"`)}
	}
	if _, ok := _c.mutation.Occurrences(); !ok {
		return &ValidationError{Name: "occurrences", err: errors.New(`ent: missing required field "ErrorPattern.occurrences"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "ErrorPattern.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "ErrorPattern.last_seen"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "ErrorPattern.app"`)}
	}
	return nil
}

func (_c *ErrorPatternCreate) sqlSave(ctx context.Context) (*ErrorPattern, error) {
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
			return nil, fmt.Errorf("unexpected ErrorPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ErrorPatternCreate) createSpec() (*ErrorPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorpattern.Table, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(errorpattern.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(errorpattern.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(errorpattern.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Occurrences(); ok {
		_spec.SetField(errorpattern.FieldOccurrences, field.TypeInt, value)
		_node.Occurrences = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(errorpattern.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(errorpattern.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   errorpattern.AppTable,
			Columns: []string{errorpattern.AppColumn},
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

// ErrorPatternCreateBulk is the builder for creating many ErrorPattern entities in bulk.
type ErrorPatternCreateBulk struct {
	config
	err      error
	builders []*ErrorPatternCreate
}

// Save creates the ErrorPattern entities in the database.
func (_c *ErrorPatternCreateBulk) Save(ctx context.Context) ([]*ErrorPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorPatternMutation)
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
func (_c *ErrorPatternCreateBulk) SaveX(ctx context.Context) []*ErrorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
