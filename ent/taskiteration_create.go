// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/taskiteration"
)

// TaskIterationCreate is the builder for creating a TaskIteration entity.
type TaskIterationCreate struct {
	config
	mutation *TaskIterationMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskIterationCreate) SetTaskID(v string) *TaskIterationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetIterationNum sets the "iteration_num" field.
func (_c *TaskIterationCreate) SetIterationNum(v int) *TaskIterationCreate {
	_c.mutation.SetIterationNum(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *TaskIterationCreate) SetPhase(v string) *TaskIterationCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *TaskIterationCreate) SetInput(v map[string]interface{}) *TaskIterationCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *TaskIterationCreate) SetOutput(v map[string]interface{}) *TaskIterationCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TaskIterationCreate) SetDurationMs(v int) *TaskIterationCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskIterationCreate) SetCreatedAt(v time.Time) *TaskIterationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskIterationCreate) SetNillableCreatedAt(v *time.Time) *TaskIterationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskIterationCreate) SetID(v string) *TaskIterationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskIterationCreate) SetTask(v *Task) *TaskIterationCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskIterationMutation object of the builder.
func (_c *TaskIterationCreate) Mutation() *TaskIterationMutation {
	return _c.mutation
}

// Save creates the TaskIteration in the database.
func (_c *TaskIterationCreate) Save(ctx context.Context) (*TaskIteration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskIterationCreate) SaveX(ctx context.Context) *TaskIteration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskIterationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskIterationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskIterationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskiteration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskIterationCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskIteration.task_id"`)}
	}
	if _, ok := _c.mutation.IterationNum(); !ok {
		return &ValidationError{Name: "iteration_num", err: errors.New(`ent: missing required field "TaskIteration.iteration_num"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "TaskIteration.phase"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TaskIteration.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskIteration.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskIteration.task"`)}
	}
	return nil
}

func (_c *TaskIterationCreate) sqlSave(ctx context.Context) (*TaskIteration, error) {
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
			return nil, fmt.Errorf("unexpected TaskIteration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskIterationCreate) createSpec() (*TaskIteration, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskIteration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskiteration.Table, sqlgraph.NewFieldSpec(taskiteration.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IterationNum(); ok {
		_spec.SetField(taskiteration.FieldIterationNum, field.TypeInt, value)
		_node.IterationNum = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(taskiteration.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(taskiteration.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(taskiteration.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(taskiteration.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskiteration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskiteration.TaskTable,
			Columns: []string{taskiteration.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskIterationCreateBulk is the builder for creating many TaskIteration entities in bulk.
type TaskIterationCreateBulk struct {
	config
	err      error
	builders []*TaskIterationCreate
}

// Save creates the TaskIteration entities in the database.
func (_c *TaskIterationCreateBulk) Save(ctx context.Context) ([]*TaskIteration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskIteration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskIterationMutation)
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
func (_c *TaskIterationCreateBulk) SaveX(ctx context.Context) []*TaskIteration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskIterationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskIterationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
