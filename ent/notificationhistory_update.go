// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// NotificationHistoryUpdate is the builder for updating NotificationHistory entities.
type NotificationHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationHistoryMutation
}

// Where appends a list predicates to the NotificationHistoryUpdate builder.
func (_u *NotificationHistoryUpdate) Where(ps ...predicate.NotificationHistory) *NotificationHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *NotificationHistoryUpdate) SetChannelKind(v string) *NotificationHistoryUpdate {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *NotificationHistoryUpdate) SetNillableChannelKind(v *string) *NotificationHistoryUpdate {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationHistoryUpdate) SetStatus(v notificationhistory.Status) *NotificationHistoryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationHistoryUpdate) SetNillableStatus(v *notificationhistory.Status) *NotificationHistoryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *NotificationHistoryUpdate) SetDetail(v string) *NotificationHistoryUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *NotificationHistoryUpdate) SetNillableDetail(v *string) *NotificationHistoryUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *NotificationHistoryUpdate) ClearDetail() *NotificationHistoryUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the NotificationHistoryMutation object of the builder.
func (_u *NotificationHistoryUpdate) Mutation() *NotificationHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationHistoryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := notificationhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationHistory.status": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationHistory.app"`)
	}
	return nil
}

func (_u *NotificationHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationhistory.Table, notificationhistory.Columns, sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(notificationhistory.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(notificationhistory.FieldChannelKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notificationhistory.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(notificationhistory.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(notificationhistory.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationHistoryUpdateOne is the builder for updating a single NotificationHistory entity.
type NotificationHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationHistoryMutation
}

// SetChannelKind sets the "channel_kind" field.
func (_u *NotificationHistoryUpdateOne) SetChannelKind(v string) *NotificationHistoryUpdateOne {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *NotificationHistoryUpdateOne) SetNillableChannelKind(v *string) *NotificationHistoryUpdateOne {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationHistoryUpdateOne) SetStatus(v notificationhistory.Status) *NotificationHistoryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationHistoryUpdateOne) SetNillableStatus(v *notificationhistory.Status) *NotificationHistoryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *NotificationHistoryUpdateOne) SetDetail(v string) *NotificationHistoryUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *NotificationHistoryUpdateOne) SetNillableDetail(v *string) *NotificationHistoryUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *NotificationHistoryUpdateOne) ClearDetail() *NotificationHistoryUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the NotificationHistoryMutation object of the builder.
func (_u *NotificationHistoryUpdateOne) Mutation() *NotificationHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationHistoryUpdate builder.
func (_u *NotificationHistoryUpdateOne) Where(ps ...predicate.NotificationHistory) *NotificationHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationHistoryUpdateOne) Select(field string, fields ...string) *NotificationHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationHistory entity.
func (_u *NotificationHistoryUpdateOne) Save(ctx context.Context) (*NotificationHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationHistoryUpdateOne) SaveX(ctx context.Context) *NotificationHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := notificationhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationHistory.status": %w`, err)}
		}
	}
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationHistory.app"`)
	}
	return nil
}

func (_u *NotificationHistoryUpdateOne) sqlSave(ctx context.Context) (_node *NotificationHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationhistory.Table, notificationhistory.Columns, sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationhistory.FieldID)
		for _, f := range fields {
			if !notificationhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationhistory.FieldID {
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
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(notificationhistory.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(notificationhistory.FieldChannelKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notificationhistory.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(notificationhistory.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(notificationhistory.FieldDetail, field.TypeString)
	}
	_node = &NotificationHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
