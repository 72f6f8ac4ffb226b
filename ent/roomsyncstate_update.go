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
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
)

// RoomSyncStateUpdate is the builder for updating RoomSyncState entities.
type RoomSyncStateUpdate struct {
	config
	hooks    []Hook
	mutation *RoomSyncStateMutation
}

// Where appends a list predicates to the RoomSyncStateUpdate builder.
func (_u *RoomSyncStateUpdate) Where(ps ...predicate.RoomSyncState) *RoomSyncStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoomName sets the "room_name" field.
func (_u *RoomSyncStateUpdate) SetRoomName(v string) *RoomSyncStateUpdate {
	_u.mutation.SetRoomName(v)
	return _u
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_u *RoomSyncStateUpdate) SetNillableRoomName(v *string) *RoomSyncStateUpdate {
	if v != nil {
		_u.SetRoomName(*v)
	}
	return _u
}

// ClearRoomName clears the value of the "room_name" field.
func (_u *RoomSyncStateUpdate) ClearRoomName() *RoomSyncStateUpdate {
	_u.mutation.ClearRoomName()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RoomSyncStateUpdate) SetLastHeartbeatAt(v time.Time) *RoomSyncStateUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RoomSyncStateUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RoomSyncStateUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// SetLastLoad sets the "last_load" field.
func (_u *RoomSyncStateUpdate) SetLastLoad(v float64) *RoomSyncStateUpdate {
	_u.mutation.ResetLastLoad()
	_u.mutation.SetLastLoad(v)
	return _u
}

// SetNillableLastLoad sets the "last_load" field if the given value is not nil.
func (_u *RoomSyncStateUpdate) SetNillableLastLoad(v *float64) *RoomSyncStateUpdate {
	if v != nil {
		_u.SetLastLoad(*v)
	}
	return _u
}

// AddLastLoad adds value to the "last_load" field.
func (_u *RoomSyncStateUpdate) AddLastLoad(v float64) *RoomSyncStateUpdate {
	_u.mutation.AddLastLoad(v)
	return _u
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (_u *RoomSyncStateUpdate) SetHeartbeatCount(v int) *RoomSyncStateUpdate {
	_u.mutation.ResetHeartbeatCount()
	_u.mutation.SetHeartbeatCount(v)
	return _u
}

// SetNillableHeartbeatCount sets the "heartbeat_count" field if the given value is not nil.
func (_u *RoomSyncStateUpdate) SetNillableHeartbeatCount(v *int) *RoomSyncStateUpdate {
	if v != nil {
		_u.SetHeartbeatCount(*v)
	}
	return _u
}

// AddHeartbeatCount adds value to the "heartbeat_count" field.
func (_u *RoomSyncStateUpdate) AddHeartbeatCount(v int) *RoomSyncStateUpdate {
	_u.mutation.AddHeartbeatCount(v)
	return _u
}

// SetLearningsReceived sets the "learnings_received" field.
func (_u *RoomSyncStateUpdate) SetLearningsReceived(v int) *RoomSyncStateUpdate {
	_u.mutation.ResetLearningsReceived()
	_u.mutation.SetLearningsReceived(v)
	return _u
}

// SetNillableLearningsReceived sets the "learnings_received" field if the given value is not nil.
func (_u *RoomSyncStateUpdate) SetNillableLearningsReceived(v *int) *RoomSyncStateUpdate {
	if v != nil {
		_u.SetLearningsReceived(*v)
	}
	return _u
}

// AddLearningsReceived adds value to the "learnings_received" field.
func (_u *RoomSyncStateUpdate) AddLearningsReceived(v int) *RoomSyncStateUpdate {
	_u.mutation.AddLearningsReceived(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoomSyncStateUpdate) SetUpdatedAt(v time.Time) *RoomSyncStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RoomSyncStateMutation object of the builder.
func (_u *RoomSyncStateUpdate) Mutation() *RoomSyncStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoomSyncStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomSyncStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoomSyncStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomSyncStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoomSyncStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roomsyncstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RoomSyncStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(roomsyncstate.Table, roomsyncstate.Columns, sqlgraph.NewFieldSpec(roomsyncstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoomName(); ok {
		_spec.SetField(roomsyncstate.FieldRoomName, field.TypeString, value)
	}
	if _u.mutation.RoomNameCleared() {
		_spec.ClearField(roomsyncstate.FieldRoomName, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(roomsyncstate.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastLoad(); ok {
		_spec.SetField(roomsyncstate.FieldLastLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastLoad(); ok {
		_spec.AddField(roomsyncstate.FieldLastLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeartbeatCount(); ok {
		_spec.SetField(roomsyncstate.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatCount(); ok {
		_spec.AddField(roomsyncstate.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningsReceived(); ok {
		_spec.SetField(roomsyncstate.FieldLearningsReceived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearningsReceived(); ok {
		_spec.AddField(roomsyncstate.FieldLearningsReceived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roomsyncstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roomsyncstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoomSyncStateUpdateOne is the builder for updating a single RoomSyncState entity.
type RoomSyncStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoomSyncStateMutation
}

// SetRoomName sets the "room_name" field.
func (_u *RoomSyncStateUpdateOne) SetRoomName(v string) *RoomSyncStateUpdateOne {
	_u.mutation.SetRoomName(v)
	return _u
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_u *RoomSyncStateUpdateOne) SetNillableRoomName(v *string) *RoomSyncStateUpdateOne {
	if v != nil {
		_u.SetRoomName(*v)
	}
	return _u
}

// ClearRoomName clears the value of the "room_name" field.
func (_u *RoomSyncStateUpdateOne) ClearRoomName() *RoomSyncStateUpdateOne {
	_u.mutation.ClearRoomName()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RoomSyncStateUpdateOne) SetLastHeartbeatAt(v time.Time) *RoomSyncStateUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RoomSyncStateUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RoomSyncStateUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// SetLastLoad sets the "last_load" field.
func (_u *RoomSyncStateUpdateOne) SetLastLoad(v float64) *RoomSyncStateUpdateOne {
	_u.mutation.ResetLastLoad()
	_u.mutation.SetLastLoad(v)
	return _u
}

// SetNillableLastLoad sets the "last_load" field if the given value is not nil.
func (_u *RoomSyncStateUpdateOne) SetNillableLastLoad(v *float64) *RoomSyncStateUpdateOne {
	if v != nil {
		_u.SetLastLoad(*v)
	}
	return _u
}

// AddLastLoad adds value to the "last_load" field.
func (_u *RoomSyncStateUpdateOne) AddLastLoad(v float64) *RoomSyncStateUpdateOne {
	_u.mutation.AddLastLoad(v)
	return _u
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (_u *RoomSyncStateUpdateOne) SetHeartbeatCount(v int) *RoomSyncStateUpdateOne {
	_u.mutation.ResetHeartbeatCount()
	_u.mutation.SetHeartbeatCount(v)
	return _u
}

// SetNillableHeartbeatCount sets the "heartbeat_count" field if the given value is not nil.
func (_u *RoomSyncStateUpdateOne) SetNillableHeartbeatCount(v *int) *RoomSyncStateUpdateOne {
	if v != nil {
		_u.SetHeartbeatCount(*v)
	}
	return _u
}

// AddHeartbeatCount adds value to the "heartbeat_count" field.
func (_u *RoomSyncStateUpdateOne) AddHeartbeatCount(v int) *RoomSyncStateUpdateOne {
	_u.mutation.AddHeartbeatCount(v)
	return _u
}

// SetLearningsReceived sets the "learnings_received" field.
func (_u *RoomSyncStateUpdateOne) SetLearningsReceived(v int) *RoomSyncStateUpdateOne {
	_u.mutation.ResetLearningsReceived()
	_u.mutation.SetLearningsReceived(v)
	return _u
}

// SetNillableLearningsReceived sets the "learnings_received" field if the given value is not nil.
func (_u *RoomSyncStateUpdateOne) SetNillableLearningsReceived(v *int) *RoomSyncStateUpdateOne {
	if v != nil {
		_u.SetLearningsReceived(*v)
	}
	return _u
}

// AddLearningsReceived adds value to the "learnings_received" field.
func (_u *RoomSyncStateUpdateOne) AddLearningsReceived(v int) *RoomSyncStateUpdateOne {
	_u.mutation.AddLearningsReceived(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoomSyncStateUpdateOne) SetUpdatedAt(v time.Time) *RoomSyncStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RoomSyncStateMutation object of the builder.
func (_u *RoomSyncStateUpdateOne) Mutation() *RoomSyncStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoomSyncStateUpdate builder.
func (_u *RoomSyncStateUpdateOne) Where(ps ...predicate.RoomSyncState) *RoomSyncStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoomSyncStateUpdateOne) Select(field string, fields ...string) *RoomSyncStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoomSyncState entity.
func (_u *RoomSyncStateUpdateOne) Save(ctx context.Context) (*RoomSyncState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomSyncStateUpdateOne) SaveX(ctx context.Context) *RoomSyncState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoomSyncStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomSyncStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoomSyncStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roomsyncstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RoomSyncStateUpdateOne) sqlSave(ctx context.Context) (_node *RoomSyncState, err error) {
	_spec := sqlgraph.NewUpdateSpec(roomsyncstate.Table, roomsyncstate.Columns, sqlgraph.NewFieldSpec(roomsyncstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoomSyncState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roomsyncstate.FieldID)
		for _, f := range fields {
			if !roomsyncstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roomsyncstate.FieldID {
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
	if value, ok := _u.mutation.RoomName(); ok {
		_spec.SetField(roomsyncstate.FieldRoomName, field.TypeString, value)
	}
	if _u.mutation.RoomNameCleared() {
		_spec.ClearField(roomsyncstate.FieldRoomName, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(roomsyncstate.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastLoad(); ok {
		_spec.SetField(roomsyncstate.FieldLastLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastLoad(); ok {
		_spec.AddField(roomsyncstate.FieldLastLoad, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeartbeatCount(); ok {
		_spec.SetField(roomsyncstate.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatCount(); ok {
		_spec.AddField(roomsyncstate.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningsReceived(); ok {
		_spec.SetField(roomsyncstate.FieldLearningsReceived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearningsReceived(); ok {
		_spec.AddField(roomsyncstate.FieldLearningsReceived, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roomsyncstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RoomSyncState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roomsyncstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
