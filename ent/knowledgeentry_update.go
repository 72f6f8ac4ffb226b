// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// KnowledgeEntryUpdate is the builder for updating KnowledgeEntry entities.
type KnowledgeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeEntryMutation
}

// Where appends a list predicates to the KnowledgeEntryUpdate builder.
func (_u *KnowledgeEntryUpdate) Where(ps ...predicate.KnowledgeEntry) *KnowledgeEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *KnowledgeEntryUpdate) SetTopic(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableTopic(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeEntryUpdate) SetContent(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableContent(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *KnowledgeEntryUpdate) SetVersion(v int) *KnowledgeEntryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableVersion(v *int) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *KnowledgeEntryUpdate) AddVersion(v int) *KnowledgeEntryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntryUpdate) SetUpdatedAt(v time.Time) *KnowledgeEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_u *KnowledgeEntryUpdate) Mutation() *KnowledgeEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEntryUpdate) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeEntry.app"`)
	}
	return nil
}

func (_u *KnowledgeEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeentry.Table, knowledgeentry.Columns, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(knowledgeentry.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(knowledgeentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(knowledgeentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeEntryUpdateOne is the builder for updating a single KnowledgeEntry entity.
type KnowledgeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeEntryMutation
}

// SetTopic sets the "topic" field.
func (_u *KnowledgeEntryUpdateOne) SetTopic(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableTopic(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeEntryUpdateOne) SetContent(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableContent(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *KnowledgeEntryUpdateOne) SetVersion(v int) *KnowledgeEntryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableVersion(v *int) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *KnowledgeEntryUpdateOne) AddVersion(v int) *KnowledgeEntryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntryUpdateOne) SetUpdatedAt(v time.Time) *KnowledgeEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_u *KnowledgeEntryUpdateOne) Mutation() *KnowledgeEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeEntryUpdate builder.
func (_u *KnowledgeEntryUpdateOne) Where(ps ...predicate.KnowledgeEntry) *KnowledgeEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeEntryUpdateOne) Select(field string, fields ...string) *KnowledgeEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeEntry entity.
func (_u *KnowledgeEntryUpdateOne) Save(ctx context.Context) (*KnowledgeEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntryUpdateOne) SaveX(ctx context.Context) *KnowledgeEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEntryUpdateOne) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeEntry.app"`)
	}
	return nil
}

func (_u *KnowledgeEntryUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeentry.Table, knowledgeentry.Columns, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeentry.FieldID)
		for _, f := range fields {
			if !knowledgeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(knowledgeentry.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgeentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(knowledgeentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(knowledgeentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &KnowledgeEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
