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
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserProfileUpdate) SetDisplayName(v string) *UserProfileUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableDisplayName(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserProfileUpdate) ClearDisplayName() *UserProfileUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserProfileUpdate) SetTimezone(v string) *UserProfileUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTimezone(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *UserProfileUpdate) SetPreferences(v map[string]interface{}) *UserProfileUpdate {
	_u.mutation.SetPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *UserProfileUpdate) ClearPreferences() *UserProfileUpdate {
	_u.mutation.ClearPreferences()
	return _u
}

// SetTrustLevel sets the "trust_level" field.
func (_u *UserProfileUpdate) SetTrustLevel(v int) *UserProfileUpdate {
	_u.mutation.ResetTrustLevel()
	_u.mutation.SetTrustLevel(v)
	return _u
}

// SetNillableTrustLevel sets the "trust_level" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTrustLevel(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetTrustLevel(*v)
	}
	return _u
}

// AddTrustLevel adds value to the "trust_level" field.
func (_u *UserProfileUpdate) AddTrustLevel(v int) *UserProfileUpdate {
	_u.mutation.AddTrustLevel(v)
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *UserProfileUpdate) SetTotalTasks(v int) *UserProfileUpdate {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTotalTasks(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *UserProfileUpdate) AddTotalTasks(v int) *UserProfileUpdate {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetSuccessfulTasks sets the "successful_tasks" field.
func (_u *UserProfileUpdate) SetSuccessfulTasks(v int) *UserProfileUpdate {
	_u.mutation.ResetSuccessfulTasks()
	_u.mutation.SetSuccessfulTasks(v)
	return _u
}

// SetNillableSuccessfulTasks sets the "successful_tasks" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableSuccessfulTasks(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetSuccessfulTasks(*v)
	}
	return _u
}

// AddSuccessfulTasks adds value to the "successful_tasks" field.
func (_u *UserProfileUpdate) AddSuccessfulTasks(v int) *UserProfileUpdate {
	_u.mutation.AddSuccessfulTasks(v)
	return _u
}

// SetFailedTasks sets the "failed_tasks" field.
func (_u *UserProfileUpdate) SetFailedTasks(v int) *UserProfileUpdate {
	_u.mutation.ResetFailedTasks()
	_u.mutation.SetFailedTasks(v)
	return _u
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableFailedTasks(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetFailedTasks(*v)
	}
	return _u
}

// AddFailedTasks adds value to the "failed_tasks" field.
func (_u *UserProfileUpdate) AddFailedTasks(v int) *UserProfileUpdate {
	_u.mutation.AddFailedTasks(v)
	return _u
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (_u *UserProfileUpdate) SetConsecutiveSuccesses(v int) *UserProfileUpdate {
	_u.mutation.ResetConsecutiveSuccesses()
	_u.mutation.SetConsecutiveSuccesses(v)
	return _u
}

// SetNillableConsecutiveSuccesses sets the "consecutive_successes" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableConsecutiveSuccesses(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetConsecutiveSuccesses(*v)
	}
	return _u
}

// AddConsecutiveSuccesses adds value to the "consecutive_successes" field.
func (_u *UserProfileUpdate) AddConsecutiveSuccesses(v int) *UserProfileUpdate {
	_u.mutation.AddConsecutiveSuccesses(v)
	return _u
}

// SetLastTaskAt sets the "last_task_at" field.
func (_u *UserProfileUpdate) SetLastTaskAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetLastTaskAt(v)
	return _u
}

// SetNillableLastTaskAt sets the "last_task_at" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLastTaskAt(v *time.Time) *UserProfileUpdate {
	if v != nil {
		_u.SetLastTaskAt(*v)
	}
	return _u
}

// ClearLastTaskAt clears the value of the "last_task_at" field.
func (_u *UserProfileUpdate) ClearLastTaskAt() *UserProfileUpdate {
	_u.mutation.ClearLastTaskAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdate) SetUpdatedAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProfileUpdate) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserProfile.app"`)
	}
	return nil
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(userprofile.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(userprofile.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(userprofile.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(userprofile.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(userprofile.FieldPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.TrustLevel(); ok {
		_spec.SetField(userprofile.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrustLevel(); ok {
		_spec.AddField(userprofile.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(userprofile.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(userprofile.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulTasks(); ok {
		_spec.SetField(userprofile.FieldSuccessfulTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulTasks(); ok {
		_spec.AddField(userprofile.FieldSuccessfulTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTasks(); ok {
		_spec.SetField(userprofile.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTasks(); ok {
		_spec.AddField(userprofile.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveSuccesses(); ok {
		_spec.SetField(userprofile.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveSuccesses(); ok {
		_spec.AddField(userprofile.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTaskAt(); ok {
		_spec.SetField(userprofile.FieldLastTaskAt, field.TypeTime, value)
	}
	if _u.mutation.LastTaskAtCleared() {
		_spec.ClearField(userprofile.FieldLastTaskAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *UserProfileUpdateOne) SetDisplayName(v string) *UserProfileUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableDisplayName(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserProfileUpdateOne) ClearDisplayName() *UserProfileUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserProfileUpdateOne) SetTimezone(v string) *UserProfileUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTimezone(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *UserProfileUpdateOne) SetPreferences(v map[string]interface{}) *UserProfileUpdateOne {
	_u.mutation.SetPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *UserProfileUpdateOne) ClearPreferences() *UserProfileUpdateOne {
	_u.mutation.ClearPreferences()
	return _u
}

// SetTrustLevel sets the "trust_level" field.
func (_u *UserProfileUpdateOne) SetTrustLevel(v int) *UserProfileUpdateOne {
	_u.mutation.ResetTrustLevel()
	_u.mutation.SetTrustLevel(v)
	return _u
}

// SetNillableTrustLevel sets the "trust_level" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTrustLevel(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTrustLevel(*v)
	}
	return _u
}

// AddTrustLevel adds value to the "trust_level" field.
func (_u *UserProfileUpdateOne) AddTrustLevel(v int) *UserProfileUpdateOne {
	_u.mutation.AddTrustLevel(v)
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *UserProfileUpdateOne) SetTotalTasks(v int) *UserProfileUpdateOne {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTotalTasks(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *UserProfileUpdateOne) AddTotalTasks(v int) *UserProfileUpdateOne {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetSuccessfulTasks sets the "successful_tasks" field.
func (_u *UserProfileUpdateOne) SetSuccessfulTasks(v int) *UserProfileUpdateOne {
	_u.mutation.ResetSuccessfulTasks()
	_u.mutation.SetSuccessfulTasks(v)
	return _u
}

// SetNillableSuccessfulTasks sets the "successful_tasks" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableSuccessfulTasks(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetSuccessfulTasks(*v)
	}
	return _u
}

// AddSuccessfulTasks adds value to the "successful_tasks" field.
func (_u *UserProfileUpdateOne) AddSuccessfulTasks(v int) *UserProfileUpdateOne {
	_u.mutation.AddSuccessfulTasks(v)
	return _u
}

// SetFailedTasks sets the "failed_tasks" field.
func (_u *UserProfileUpdateOne) SetFailedTasks(v int) *UserProfileUpdateOne {
	_u.mutation.ResetFailedTasks()
	_u.mutation.SetFailedTasks(v)
	return _u
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableFailedTasks(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetFailedTasks(*v)
	}
	return _u
}

// AddFailedTasks adds value to the "failed_tasks" field.
func (_u *UserProfileUpdateOne) AddFailedTasks(v int) *UserProfileUpdateOne {
	_u.mutation.AddFailedTasks(v)
	return _u
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (_u *UserProfileUpdateOne) SetConsecutiveSuccesses(v int) *UserProfileUpdateOne {
	_u.mutation.ResetConsecutiveSuccesses()
	_u.mutation.SetConsecutiveSuccesses(v)
	return _u
}

// SetNillableConsecutiveSuccesses sets the "consecutive_successes" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableConsecutiveSuccesses(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetConsecutiveSuccesses(*v)
	}
	return _u
}

// AddConsecutiveSuccesses adds value to the "consecutive_successes" field.
func (_u *UserProfileUpdateOne) AddConsecutiveSuccesses(v int) *UserProfileUpdateOne {
	_u.mutation.AddConsecutiveSuccesses(v)
	return _u
}

// SetLastTaskAt sets the "last_task_at" field.
func (_u *UserProfileUpdateOne) SetLastTaskAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetLastTaskAt(v)
	return _u
}

// SetNillableLastTaskAt sets the "last_task_at" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLastTaskAt(v *time.Time) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLastTaskAt(*v)
	}
	return _u
}

// ClearLastTaskAt clears the value of the "last_task_at" field.
func (_u *UserProfileUpdateOne) ClearLastTaskAt() *UserProfileUpdateOne {
	_u.mutation.ClearLastTaskAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdateOne) SetUpdatedAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProfileUpdateOne) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserProfile.app"`)
	}
	return nil
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(userprofile.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(userprofile.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(userprofile.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(userprofile.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(userprofile.FieldPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.TrustLevel(); ok {
		_spec.SetField(userprofile.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrustLevel(); ok {
		_spec.AddField(userprofile.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(userprofile.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(userprofile.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulTasks(); ok {
		_spec.SetField(userprofile.FieldSuccessfulTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulTasks(); ok {
		_spec.AddField(userprofile.FieldSuccessfulTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTasks(); ok {
		_spec.SetField(userprofile.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTasks(); ok {
		_spec.AddField(userprofile.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveSuccesses(); ok {
		_spec.SetField(userprofile.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveSuccesses(); ok {
		_spec.AddField(userprofile.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTaskAt(); ok {
		_spec.SetField(userprofile.FieldLastTaskAt, field.TypeTime, value)
	}
	if _u.mutation.LastTaskAtCleared() {
		_spec.ClearField(userprofile.FieldLastTaskAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
