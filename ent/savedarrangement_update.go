// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/pkg/models"
)

// SavedArrangementUpdate is the builder for updating SavedArrangement entities.
type SavedArrangementUpdate struct {
	config
	hooks    []Hook
	mutation *SavedArrangementMutation
}

// Where appends a list predicates to the SavedArrangementUpdate builder.
func (_u *SavedArrangementUpdate) Where(ps ...predicate.SavedArrangement) *SavedArrangementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SavedArrangementUpdate) SetName(v string) *SavedArrangementUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SavedArrangementUpdate) SetNillableName(v *string) *SavedArrangementUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SavedArrangementUpdate) SetDescription(v string) *SavedArrangementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SavedArrangementUpdate) SetNillableDescription(v *string) *SavedArrangementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SavedArrangementUpdate) ClearDescription() *SavedArrangementUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetKind sets the "kind" field.
func (_u *SavedArrangementUpdate) SetKind(v savedarrangement.Kind) *SavedArrangementUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SavedArrangementUpdate) SetNillableKind(v *savedarrangement.Kind) *SavedArrangementUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *SavedArrangementUpdate) SetSteps(v []models.ArrangementStep) *SavedArrangementUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *SavedArrangementUpdate) AppendSteps(v []models.ArrangementStep) *SavedArrangementUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetMerge sets the "merge" field.
func (_u *SavedArrangementUpdate) SetMerge(v string) *SavedArrangementUpdate {
	_u.mutation.SetMerge(v)
	return _u
}

// SetNillableMerge sets the "merge" field if the given value is not nil.
func (_u *SavedArrangementUpdate) SetNillableMerge(v *string) *SavedArrangementUpdate {
	if v != nil {
		_u.SetMerge(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SavedArrangementUpdate) SetUpdatedAt(v time.Time) *SavedArrangementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SavedArrangementMutation object of the builder.
func (_u *SavedArrangementUpdate) Mutation() *SavedArrangementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SavedArrangementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SavedArrangementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SavedArrangementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SavedArrangementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SavedArrangementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := savedarrangement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SavedArrangementUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := savedarrangement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SavedArrangement.kind": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SavedArrangement.app"`)
	}
	return nil
}

func (_u *SavedArrangementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(savedarrangement.Table, savedarrangement.Columns, sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(savedarrangement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(savedarrangement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(savedarrangement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(savedarrangement.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(savedarrangement.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, savedarrangement.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Merge(); ok {
		_spec.SetField(savedarrangement.FieldMerge, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(savedarrangement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{savedarrangement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SavedArrangementUpdateOne is the builder for updating a single SavedArrangement entity.
type SavedArrangementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SavedArrangementMutation
}

// SetName sets the "name" field.
func (_u *SavedArrangementUpdateOne) SetName(v string) *SavedArrangementUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SavedArrangementUpdateOne) SetNillableName(v *string) *SavedArrangementUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SavedArrangementUpdateOne) SetDescription(v string) *SavedArrangementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SavedArrangementUpdateOne) SetNillableDescription(v *string) *SavedArrangementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SavedArrangementUpdateOne) ClearDescription() *SavedArrangementUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetKind sets the "kind" field.
func (_u *SavedArrangementUpdateOne) SetKind(v savedarrangement.Kind) *SavedArrangementUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SavedArrangementUpdateOne) SetNillableKind(v *savedarrangement.Kind) *SavedArrangementUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *SavedArrangementUpdateOne) SetSteps(v []models.ArrangementStep) *SavedArrangementUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *SavedArrangementUpdateOne) AppendSteps(v []models.ArrangementStep) *SavedArrangementUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetMerge sets the "merge" field.
func (_u *SavedArrangementUpdateOne) SetMerge(v string) *SavedArrangementUpdateOne {
	_u.mutation.SetMerge(v)
	return _u
}

// SetNillableMerge sets the "merge" field if the given value is not nil.
func (_u *SavedArrangementUpdateOne) SetNillableMerge(v *string) *SavedArrangementUpdateOne {
	if v != nil {
		_u.SetMerge(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SavedArrangementUpdateOne) SetUpdatedAt(v time.Time) *SavedArrangementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SavedArrangementMutation object of the builder.
func (_u *SavedArrangementUpdateOne) Mutation() *SavedArrangementMutation {
	return _u.mutation
}

// Where appends a list predicates to the SavedArrangementUpdate builder.
func (_u *SavedArrangementUpdateOne) Where(ps ...predicate.SavedArrangement) *SavedArrangementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SavedArrangementUpdateOne) Select(field string, fields ...string) *SavedArrangementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SavedArrangement entity.
func (_u *SavedArrangementUpdateOne) Save(ctx context.Context) (*SavedArrangement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SavedArrangementUpdateOne) SaveX(ctx context.Context) *SavedArrangement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SavedArrangementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SavedArrangementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SavedArrangementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := savedarrangement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SavedArrangementUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := savedarrangement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SavedArrangement.kind": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SavedArrangement.app"`)
	}
	return nil
}

func (_u *SavedArrangementUpdateOne) sqlSave(ctx context.Context) (_node *SavedArrangement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(savedarrangement.Table, savedarrangement.Columns, sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SavedArrangement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, savedarrangement.FieldID)
		for _, f := range fields {
			if !savedarrangement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != savedarrangement.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(savedarrangement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(savedarrangement.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(savedarrangement.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(savedarrangement.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(savedarrangement.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, savedarrangement.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Merge(); ok {
		_spec.SetField(savedarrangement.FieldMerge, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(savedarrangement.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SavedArrangement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{savedarrangement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
