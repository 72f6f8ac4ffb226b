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
	"github.com/loop-symphony/symphony/ent/errorrecord"
)

// ErrorRecordCreate is the builder for creating a ErrorRecord entity.
type ErrorRecordCreate struct {
	config
	mutation *ErrorRecordMutation
	hooks    []Hook
}

// SetAppID sets the "app_id" field.
func (_c *ErrorRecordCreate) SetAppID(v string) *ErrorRecordCreate {
	_c.mutation.SetAppID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ErrorRecordCreate) SetTaskID(v string) *ErrorRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ErrorRecordCreate) SetNillableTaskID(v *string) *ErrorRecordCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ErrorRecordCreate) SetSource(v errorrecord.Source) *ErrorRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ErrorRecordCreate) SetKind(v string) *ErrorRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ErrorRecordCreate) SetMessage(v string) *ErrorRecordCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ErrorRecordCreate) SetContext(v map[string]interface{}) *ErrorRecordCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ErrorRecordCreate) SetCreatedAt(v time.Time) *ErrorRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ErrorRecordCreate) SetNillableCreatedAt(v *time.Time) *ErrorRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ErrorRecordCreate) SetID(v string) *ErrorRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApp sets the "app" edge to the App entity.
func (_c *ErrorRecordCreate) SetApp(v *App) *ErrorRecordCreate {
	return _c.SetAppID(v.ID)
}

// Mutation returns the ErrorRecordMutation object of the builder.
func (_c *ErrorRecordCreate) Mutation() *ErrorRecordMutation {
	return _c.mutation
}

// Save creates the ErrorRecord in the database.
func (_c *ErrorRecordCreate) Save(ctx context.Context) (*ErrorRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorRecordCreate) SaveX(ctx context.Context) *ErrorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := errorrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorRecordCreate) check() error {
	if _, ok := _c.mutation.AppID(); !ok {
		return &ValidationError{Name: "app_id", err: errors.New(`ent: missing required field "ErrorRecord.app_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ErrorRecord.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := errorrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ErrorRecord.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ErrorRecord.kind"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ErrorRecord.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ErrorRecord.created_at"`)}
	}
	if len(_c.mutation.AppIDs()) == 0 {
		return &ValidationError{Name: "app", err: errors.New(`ent: missing required edge "ErrorRecord.app"`)}
	}
	return nil
}

func (_c *ErrorRecordCreate) sqlSave(ctx context.Context) (*ErrorRecord, error) {
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
			return nil, fmt.Errorf("unexpected ErrorRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ErrorRecordCreate) createSpec() (*ErrorRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorrecord.Table, sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(errorrecord.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(errorrecord.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(errorrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(errorrecord.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(errorrecord.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(errorrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AppIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   errorrecord.AppTable,
			Columns: []string{errorrecord.AppColumn},
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

// ErrorRecordCreateBulk is the builder for creating many ErrorRecord entities in bulk.
type ErrorRecordCreateBulk struct {
	config
	err      error
	builders []*ErrorRecordCreate
}

// Save creates the ErrorRecord entities in the database.
func (_c *ErrorRecordCreateBulk) Save(ctx context.Context) ([]*ErrorRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorRecordMutation)
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
func (_c *ErrorRecordCreateBulk) SaveX(ctx context.Context) []*ErrorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
