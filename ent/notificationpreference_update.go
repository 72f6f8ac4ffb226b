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
	"github.com/loop-symphony/symphony/ent/notificationpreference"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// NotificationPreferenceUpdate is the builder for updating NotificationPreference entities.
type NotificationPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationPreferenceMutation
}

// Where appends a list predicates to the NotificationPreferenceUpdate builder.
func (_u *NotificationPreferenceUpdate) Where(ps ...predicate.NotificationPreference) *NotificationPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *NotificationPreferenceUpdate) SetEnabled(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEnabled(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (_u *NotificationPreferenceUpdate) SetQuietHoursStart(v int) *NotificationPreferenceUpdate {
	_u.mutation.ResetQuietHoursStart()
	_u.mutation.SetQuietHoursStart(v)
	return _u
}

// SetNillableQuietHoursStart sets the "quiet_hours_start" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableQuietHoursStart(v *int) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetQuietHoursStart(*v)
	}
	return _u
}

// AddQuietHoursStart adds value to the "quiet_hours_start" field.
func (_u *NotificationPreferenceUpdate) AddQuietHoursStart(v int) *NotificationPreferenceUpdate {
	_u.mutation.AddQuietHoursStart(v)
	return _u
}

// ClearQuietHoursStart clears the value of the "quiet_hours_start" field.
func (_u *NotificationPreferenceUpdate) ClearQuietHoursStart() *NotificationPreferenceUpdate {
	_u.mutation.ClearQuietHoursStart()
	return _u
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (_u *NotificationPreferenceUpdate) SetQuietHoursEnd(v int) *NotificationPreferenceUpdate {
	_u.mutation.ResetQuietHoursEnd()
	_u.mutation.SetQuietHoursEnd(v)
	return _u
}

// SetNillableQuietHoursEnd sets the "quiet_hours_end" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableQuietHoursEnd(v *int) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetQuietHoursEnd(*v)
	}
	return _u
}

// AddQuietHoursEnd adds value to the "quiet_hours_end" field.
func (_u *NotificationPreferenceUpdate) AddQuietHoursEnd(v int) *NotificationPreferenceUpdate {
	_u.mutation.AddQuietHoursEnd(v)
	return _u
}

// ClearQuietHoursEnd clears the value of the "quiet_hours_end" field.
func (_u *NotificationPreferenceUpdate) ClearQuietHoursEnd() *NotificationPreferenceUpdate {
	_u.mutation.ClearQuietHoursEnd()
	return _u
}

// SetOutcomes sets the "outcomes" field.
func (_u *NotificationPreferenceUpdate) SetOutcomes(v []string) *NotificationPreferenceUpdate {
	_u.mutation.SetOutcomes(v)
	return _u
}

// AppendOutcomes appends value to the "outcomes" field.
func (_u *NotificationPreferenceUpdate) AppendOutcomes(v []string) *NotificationPreferenceUpdate {
	_u.mutation.AppendOutcomes(v)
	return _u
}

// ClearOutcomes clears the value of the "outcomes" field.
func (_u *NotificationPreferenceUpdate) ClearOutcomes() *NotificationPreferenceUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPreferenceUpdate) SetUpdatedAt(v time.Time) *NotificationPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_u *NotificationPreferenceUpdate) Mutation() *NotificationPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationPreferenceUpdate) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationPreference.app"`)
	}
	return nil
}

func (_u *NotificationPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationpreference.Table, notificationpreference.Columns, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(notificationpreference.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuietHoursStart(); ok {
		_spec.SetField(notificationpreference.FieldQuietHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursStart(); ok {
		_spec.AddField(notificationpreference.FieldQuietHoursStart, field.TypeInt, value)
	}
	if _u.mutation.QuietHoursStartCleared() {
		_spec.ClearField(notificationpreference.FieldQuietHoursStart, field.TypeInt)
	}
	if value, ok := _u.mutation.QuietHoursEnd(); ok {
		_spec.SetField(notificationpreference.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursEnd(); ok {
		_spec.AddField(notificationpreference.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if _u.mutation.QuietHoursEndCleared() {
		_spec.ClearField(notificationpreference.FieldQuietHoursEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.Outcomes(); ok {
		_spec.SetField(notificationpreference.FieldOutcomes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutcomes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, notificationpreference.FieldOutcomes, value)
		})
	}
	if _u.mutation.OutcomesCleared() {
		_spec.ClearField(notificationpreference.FieldOutcomes, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationPreferenceUpdateOne is the builder for updating a single NotificationPreference entity.
type NotificationPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationPreferenceMutation
}

// SetEnabled sets the "enabled" field.
func (_u *NotificationPreferenceUpdateOne) SetEnabled(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEnabled(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (_u *NotificationPreferenceUpdateOne) SetQuietHoursStart(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.ResetQuietHoursStart()
	_u.mutation.SetQuietHoursStart(v)
	return _u
}

// SetNillableQuietHoursStart sets the "quiet_hours_start" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableQuietHoursStart(v *int) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetQuietHoursStart(*v)
	}
	return _u
}

// AddQuietHoursStart adds value to the "quiet_hours_start" field.
func (_u *NotificationPreferenceUpdateOne) AddQuietHoursStart(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.AddQuietHoursStart(v)
	return _u
}

// ClearQuietHoursStart clears the value of the "quiet_hours_start" field.
func (_u *NotificationPreferenceUpdateOne) ClearQuietHoursStart() *NotificationPreferenceUpdateOne {
	_u.mutation.ClearQuietHoursStart()
	return _u
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (_u *NotificationPreferenceUpdateOne) SetQuietHoursEnd(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.ResetQuietHoursEnd()
	_u.mutation.SetQuietHoursEnd(v)
	return _u
}

// SetNillableQuietHoursEnd sets the "quiet_hours_end" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableQuietHoursEnd(v *int) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetQuietHoursEnd(*v)
	}
	return _u
}

// AddQuietHoursEnd adds value to the "quiet_hours_end" field.
func (_u *NotificationPreferenceUpdateOne) AddQuietHoursEnd(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.AddQuietHoursEnd(v)
	return _u
}

// ClearQuietHoursEnd clears the value of the "quiet_hours_end" field.
func (_u *NotificationPreferenceUpdateOne) ClearQuietHoursEnd() *NotificationPreferenceUpdateOne {
	_u.mutation.ClearQuietHoursEnd()
	return _u
}

// SetOutcomes sets the "outcomes" field.
func (_u *NotificationPreferenceUpdateOne) SetOutcomes(v []string) *NotificationPreferenceUpdateOne {
	_u.mutation.SetOutcomes(v)
	return _u
}

// AppendOutcomes appends value to the "outcomes" field.
func (_u *NotificationPreferenceUpdateOne) AppendOutcomes(v []string) *NotificationPreferenceUpdateOne {
	_u.mutation.AppendOutcomes(v)
	return _u
}

// ClearOutcomes clears the value of the "outcomes" field.
func (_u *NotificationPreferenceUpdateOne) ClearOutcomes() *NotificationPreferenceUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPreferenceUpdateOne) SetUpdatedAt(v time.Time) *NotificationPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_u *NotificationPreferenceUpdateOne) Mutation() *NotificationPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationPreferenceUpdate builder.
func (_u *NotificationPreferenceUpdateOne) Where(ps ...predicate.NotificationPreference) *NotificationPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationPreferenceUpdateOne) Select(field string, fields ...string) *NotificationPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationPreference entity.
func (_u *NotificationPreferenceUpdateOne) Save(ctx context.Context) (*NotificationPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPreferenceUpdateOne) SaveX(ctx context.Context) *NotificationPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationPreferenceUpdateOne) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationPreference.app"`)
	}
	return nil
}

func (_u *NotificationPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *NotificationPreference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationpreference.Table, notificationpreference.Columns, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationpreference.FieldID)
		for _, f := range fields {
			if !notificationpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationpreference.FieldID {
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
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(notificationpreference.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuietHoursStart(); ok {
		_spec.SetField(notificationpreference.FieldQuietHoursStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursStart(); ok {
		_spec.AddField(notificationpreference.FieldQuietHoursStart, field.TypeInt, value)
	}
	if _u.mutation.QuietHoursStartCleared() {
		_spec.ClearField(notificationpreference.FieldQuietHoursStart, field.TypeInt)
	}
	if value, ok := _u.mutation.QuietHoursEnd(); ok {
		_spec.SetField(notificationpreference.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuietHoursEnd(); ok {
		_spec.AddField(notificationpreference.FieldQuietHoursEnd, field.TypeInt, value)
	}
	if _u.mutation.QuietHoursEndCleared() {
		_spec.ClearField(notificationpreference.FieldQuietHoursEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.Outcomes(); ok {
		_spec.SetField(notificationpreference.FieldOutcomes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutcomes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, notificationpreference.FieldOutcomes, value)
		})
	}
	if _u.mutation.OutcomesCleared() {
		_spec.ClearField(notificationpreference.FieldOutcomes, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &NotificationPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
