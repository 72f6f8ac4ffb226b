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
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// HeartbeatUpdate is the builder for updating Heartbeat entities.
type HeartbeatUpdate struct {
	config
	hooks    []Hook
	mutation *HeartbeatMutation
}

// Where appends a list predicates to the HeartbeatUpdate builder.
func (_u *HeartbeatUpdate) Where(ps ...predicate.Heartbeat) *HeartbeatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *HeartbeatUpdate) SetUserID(v string) *HeartbeatUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableUserID(v *string) *HeartbeatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *HeartbeatUpdate) ClearUserID() *HeartbeatUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *HeartbeatUpdate) SetName(v string) *HeartbeatUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableName(v *string) *HeartbeatUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQueryTemplate sets the "query_template" field.
func (_u *HeartbeatUpdate) SetQueryTemplate(v string) *HeartbeatUpdate {
	_u.mutation.SetQueryTemplate(v)
	return _u
}

// SetNillableQueryTemplate sets the "query_template" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableQueryTemplate(v *string) *HeartbeatUpdate {
	if v != nil {
		_u.SetQueryTemplate(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *HeartbeatUpdate) SetCronExpression(v string) *HeartbeatUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableCronExpression(v *string) *HeartbeatUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *HeartbeatUpdate) SetTimezone(v string) *HeartbeatUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableTimezone(v *string) *HeartbeatUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetContextTemplate sets the "context_template" field.
func (_u *HeartbeatUpdate) SetContextTemplate(v map[string]interface{}) *HeartbeatUpdate {
	_u.mutation.SetContextTemplate(v)
	return _u
}

// ClearContextTemplate clears the value of the "context_template" field.
func (_u *HeartbeatUpdate) ClearContextTemplate() *HeartbeatUpdate {
	_u.mutation.ClearContextTemplate()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *HeartbeatUpdate) SetWebhookURL(v string) *HeartbeatUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableWebhookURL(v *string) *HeartbeatUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *HeartbeatUpdate) ClearWebhookURL() *HeartbeatUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *HeartbeatUpdate) SetIsActive(v bool) *HeartbeatUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableIsActive(v *bool) *HeartbeatUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *HeartbeatUpdate) SetLastRunAt(v time.Time) *HeartbeatUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *HeartbeatUpdate) SetNillableLastRunAt(v *time.Time) *HeartbeatUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *HeartbeatUpdate) ClearLastRunAt() *HeartbeatUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HeartbeatUpdate) SetUpdatedAt(v time.Time) *HeartbeatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the HeartbeatRun entity by IDs.
func (_u *HeartbeatUpdate) AddRunIDs(ids ...string) *HeartbeatUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the HeartbeatRun entity.
func (_u *HeartbeatUpdate) AddRuns(v ...*HeartbeatRun) *HeartbeatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the HeartbeatMutation object of the builder.
func (_u *HeartbeatUpdate) Mutation() *HeartbeatMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the HeartbeatRun entity.
func (_u *HeartbeatUpdate) ClearRuns() *HeartbeatUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to HeartbeatRun entities by IDs.
func (_u *HeartbeatUpdate) RemoveRunIDs(ids ...string) *HeartbeatUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to HeartbeatRun entities.
func (_u *HeartbeatUpdate) RemoveRuns(v ...*HeartbeatRun) *HeartbeatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HeartbeatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartbeatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HeartbeatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartbeatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HeartbeatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := heartbeat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartbeatUpdate) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Heartbeat.app"`)
	}
	return nil
}

func (_u *HeartbeatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartbeat.Table, heartbeat.Columns, sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(heartbeat.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(heartbeat.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(heartbeat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryTemplate(); ok {
		_spec.SetField(heartbeat.FieldQueryTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(heartbeat.FieldCronExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(heartbeat.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextTemplate(); ok {
		_spec.SetField(heartbeat.FieldContextTemplate, field.TypeJSON, value)
	}
	if _u.mutation.ContextTemplateCleared() {
		_spec.ClearField(heartbeat.FieldContextTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(heartbeat.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(heartbeat.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(heartbeat.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(heartbeat.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(heartbeat.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(heartbeat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartbeat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HeartbeatUpdateOne is the builder for updating a single Heartbeat entity.
type HeartbeatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HeartbeatMutation
}

// SetUserID sets the "user_id" field.
func (_u *HeartbeatUpdateOne) SetUserID(v string) *HeartbeatUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableUserID(v *string) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *HeartbeatUpdateOne) ClearUserID() *HeartbeatUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetName sets the "name" field.
func (_u *HeartbeatUpdateOne) SetName(v string) *HeartbeatUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableName(v *string) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQueryTemplate sets the "query_template" field.
func (_u *HeartbeatUpdateOne) SetQueryTemplate(v string) *HeartbeatUpdateOne {
	_u.mutation.SetQueryTemplate(v)
	return _u
}

// SetNillableQueryTemplate sets the "query_template" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableQueryTemplate(v *string) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetQueryTemplate(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *HeartbeatUpdateOne) SetCronExpression(v string) *HeartbeatUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableCronExpression(v *string) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *HeartbeatUpdateOne) SetTimezone(v string) *HeartbeatUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableTimezone(v *string) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetContextTemplate sets the "context_template" field.
func (_u *HeartbeatUpdateOne) SetContextTemplate(v map[string]interface{}) *HeartbeatUpdateOne {
	_u.mutation.SetContextTemplate(v)
	return _u
}

// ClearContextTemplate clears the value of the "context_template" field.
func (_u *HeartbeatUpdateOne) ClearContextTemplate() *HeartbeatUpdateOne {
	_u.mutation.ClearContextTemplate()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *HeartbeatUpdateOne) SetWebhookURL(v string) *HeartbeatUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableWebhookURL(v *string) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *HeartbeatUpdateOne) ClearWebhookURL() *HeartbeatUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *HeartbeatUpdateOne) SetIsActive(v bool) *HeartbeatUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableIsActive(v *bool) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *HeartbeatUpdateOne) SetLastRunAt(v time.Time) *HeartbeatUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *HeartbeatUpdateOne) SetNillableLastRunAt(v *time.Time) *HeartbeatUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *HeartbeatUpdateOne) ClearLastRunAt() *HeartbeatUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HeartbeatUpdateOne) SetUpdatedAt(v time.Time) *HeartbeatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the HeartbeatRun entity by IDs.
func (_u *HeartbeatUpdateOne) AddRunIDs(ids ...string) *HeartbeatUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the HeartbeatRun entity.
func (_u *HeartbeatUpdateOne) AddRuns(v ...*HeartbeatRun) *HeartbeatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the HeartbeatMutation object of the builder.
func (_u *HeartbeatUpdateOne) Mutation() *HeartbeatMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the HeartbeatRun entity.
func (_u *HeartbeatUpdateOne) ClearRuns() *HeartbeatUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to HeartbeatRun entities by IDs.
func (_u *HeartbeatUpdateOne) RemoveRunIDs(ids ...string) *HeartbeatUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to HeartbeatRun entities.
func (_u *HeartbeatUpdateOne) RemoveRuns(v ...*HeartbeatRun) *HeartbeatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the HeartbeatUpdate builder.
func (_u *HeartbeatUpdateOne) Where(ps ...predicate.Heartbeat) *HeartbeatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HeartbeatUpdateOne) Select(field string, fields ...string) *HeartbeatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Heartbeat entity.
func (_u *HeartbeatUpdateOne) Save(ctx context.Context) (*Heartbeat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartbeatUpdateOne) SaveX(ctx context.Context) *Heartbeat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HeartbeatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartbeatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HeartbeatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := heartbeat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartbeatUpdateOne) check() error {
	if _u.mutation.AppCleared() && len(_u.mutation.AppIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Heartbeat.app"`)
	}
	return nil
}

func (_u *HeartbeatUpdateOne) sqlSave(ctx context.Context) (_node *Heartbeat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartbeat.Table, heartbeat.Columns, sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Heartbeat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, heartbeat.FieldID)
		for _, f := range fields {
			if !heartbeat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != heartbeat.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(heartbeat.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(heartbeat.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(heartbeat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryTemplate(); ok {
		_spec.SetField(heartbeat.FieldQueryTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(heartbeat.FieldCronExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(heartbeat.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextTemplate(); ok {
		_spec.SetField(heartbeat.FieldContextTemplate, field.TypeJSON, value)
	}
	if _u.mutation.ContextTemplateCleared() {
		_spec.ClearField(heartbeat.FieldContextTemplate, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(heartbeat.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(heartbeat.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(heartbeat.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(heartbeat.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(heartbeat.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(heartbeat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   heartbeat.RunsTable,
			Columns: []string{heartbeat.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeatrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Heartbeat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartbeat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
