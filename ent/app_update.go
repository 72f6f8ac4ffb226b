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
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/errorpattern"
	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/ent/notificationpreference"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/userprofile"
)

// AppUpdate is the builder for updating App entities.
type AppUpdate struct {
	config
	hooks    []Hook
	mutation *AppMutation
}

// Where appends a list predicates to the AppUpdate builder.
func (_u *AppUpdate) Where(ps ...predicate.App) *AppUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AppUpdate) SetName(v string) *AppUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppUpdate) SetNillableName(v *string) *AppUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *AppUpdate) SetAPIKey(v string) *AppUpdate {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *AppUpdate) SetNillableAPIKey(v *string) *AppUpdate {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppUpdate) SetIsActive(v bool) *AppUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppUpdate) SetNillableIsActive(v *bool) *AppUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppUpdate) SetUpdatedAt(v time.Time) *AppUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUserProfileIDs adds the "user_profiles" edge to the UserProfile entity by IDs.
func (_u *AppUpdate) AddUserProfileIDs(ids ...string) *AppUpdate {
	_u.mutation.AddUserProfileIDs(ids...)
	return _u
}

// AddUserProfiles adds the "user_profiles" edges to the UserProfile entity.
func (_u *AppUpdate) AddUserProfiles(v ...*UserProfile) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserProfileIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *AppUpdate) AddTaskIDs(ids ...string) *AppUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *AppUpdate) AddTasks(v ...*Task) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddHeartbeatIDs adds the "heartbeats" edge to the Heartbeat entity by IDs.
func (_u *AppUpdate) AddHeartbeatIDs(ids ...string) *AppUpdate {
	_u.mutation.AddHeartbeatIDs(ids...)
	return _u
}

// AddHeartbeats adds the "heartbeats" edges to the Heartbeat entity.
func (_u *AppUpdate) AddHeartbeats(v ...*Heartbeat) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHeartbeatIDs(ids...)
}

// AddArrangementIDs adds the "arrangements" edge to the SavedArrangement entity by IDs.
func (_u *AppUpdate) AddArrangementIDs(ids ...string) *AppUpdate {
	_u.mutation.AddArrangementIDs(ids...)
	return _u
}

// AddArrangements adds the "arrangements" edges to the SavedArrangement entity.
func (_u *AppUpdate) AddArrangements(v ...*SavedArrangement) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArrangementIDs(ids...)
}

// AddErrorRecordIDs adds the "error_records" edge to the ErrorRecord entity by IDs.
func (_u *AppUpdate) AddErrorRecordIDs(ids ...string) *AppUpdate {
	_u.mutation.AddErrorRecordIDs(ids...)
	return _u
}

// AddErrorRecords adds the "error_records" edges to the ErrorRecord entity.
func (_u *AppUpdate) AddErrorRecords(v ...*ErrorRecord) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorRecordIDs(ids...)
}

// AddErrorPatternIDs adds the "error_patterns" edge to the ErrorPattern entity by IDs.
func (_u *AppUpdate) AddErrorPatternIDs(ids ...string) *AppUpdate {
	_u.mutation.AddErrorPatternIDs(ids...)
	return _u
}

// AddErrorPatterns adds the "error_patterns" edges to the ErrorPattern entity.
func (_u *AppUpdate) AddErrorPatterns(v ...*ErrorPattern) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorPatternIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeEntry entity by IDs.
func (_u *AppUpdate) AddKnowledgeEntryIDs(ids ...string) *AppUpdate {
	_u.mutation.AddKnowledgeEntryIDs(ids...)
	return _u
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *AppUpdate) AddKnowledgeEntries(v ...*KnowledgeEntry) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeEntryIDs(ids...)
}

// AddKnowledgeSyncStateIDs adds the "knowledge_sync_states" edge to the KnowledgeSyncState entity by IDs.
func (_u *AppUpdate) AddKnowledgeSyncStateIDs(ids ...string) *AppUpdate {
	_u.mutation.AddKnowledgeSyncStateIDs(ids...)
	return _u
}

// AddKnowledgeSyncStates adds the "knowledge_sync_states" edges to the KnowledgeSyncState entity.
func (_u *AppUpdate) AddKnowledgeSyncStates(v ...*KnowledgeSyncState) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeSyncStateIDs(ids...)
}

// AddNotificationPreferenceIDs adds the "notification_preferences" edge to the NotificationPreference entity by IDs.
func (_u *AppUpdate) AddNotificationPreferenceIDs(ids ...string) *AppUpdate {
	_u.mutation.AddNotificationPreferenceIDs(ids...)
	return _u
}

// AddNotificationPreferences adds the "notification_preferences" edges to the NotificationPreference entity.
func (_u *AppUpdate) AddNotificationPreferences(v ...*NotificationPreference) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationPreferenceIDs(ids...)
}

// AddNotificationChannelIDs adds the "notification_channels" edge to the NotificationChannel entity by IDs.
func (_u *AppUpdate) AddNotificationChannelIDs(ids ...string) *AppUpdate {
	_u.mutation.AddNotificationChannelIDs(ids...)
	return _u
}

// AddNotificationChannels adds the "notification_channels" edges to the NotificationChannel entity.
func (_u *AppUpdate) AddNotificationChannels(v ...*NotificationChannel) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationChannelIDs(ids...)
}

// AddNotificationHistoryIDs adds the "notification_history" edge to the NotificationHistory entity by IDs.
func (_u *AppUpdate) AddNotificationHistoryIDs(ids ...string) *AppUpdate {
	_u.mutation.AddNotificationHistoryIDs(ids...)
	return _u
}

// AddNotificationHistory adds the "notification_history" edges to the NotificationHistory entity.
func (_u *AppUpdate) AddNotificationHistory(v ...*NotificationHistory) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationHistoryIDs(ids...)
}

// Mutation returns the AppMutation object of the builder.
func (_u *AppUpdate) Mutation() *AppMutation {
	return _u.mutation
}

// ClearUserProfiles clears all "user_profiles" edges to the UserProfile entity.
func (_u *AppUpdate) ClearUserProfiles() *AppUpdate {
	_u.mutation.ClearUserProfiles()
	return _u
}

// RemoveUserProfileIDs removes the "user_profiles" edge to UserProfile entities by IDs.
func (_u *AppUpdate) RemoveUserProfileIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveUserProfileIDs(ids...)
	return _u
}

// RemoveUserProfiles removes "user_profiles" edges to UserProfile entities.
func (_u *AppUpdate) RemoveUserProfiles(v ...*UserProfile) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserProfileIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *AppUpdate) ClearTasks() *AppUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *AppUpdate) RemoveTaskIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *AppUpdate) RemoveTasks(v ...*Task) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearHeartbeats clears all "heartbeats" edges to the Heartbeat entity.
func (_u *AppUpdate) ClearHeartbeats() *AppUpdate {
	_u.mutation.ClearHeartbeats()
	return _u
}

// RemoveHeartbeatIDs removes the "heartbeats" edge to Heartbeat entities by IDs.
func (_u *AppUpdate) RemoveHeartbeatIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveHeartbeatIDs(ids...)
	return _u
}

// RemoveHeartbeats removes "heartbeats" edges to Heartbeat entities.
func (_u *AppUpdate) RemoveHeartbeats(v ...*Heartbeat) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHeartbeatIDs(ids...)
}

// ClearArrangements clears all "arrangements" edges to the SavedArrangement entity.
func (_u *AppUpdate) ClearArrangements() *AppUpdate {
	_u.mutation.ClearArrangements()
	return _u
}

// RemoveArrangementIDs removes the "arrangements" edge to SavedArrangement entities by IDs.
func (_u *AppUpdate) RemoveArrangementIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveArrangementIDs(ids...)
	return _u
}

// RemoveArrangements removes "arrangements" edges to SavedArrangement entities.
func (_u *AppUpdate) RemoveArrangements(v ...*SavedArrangement) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArrangementIDs(ids...)
}

// ClearErrorRecords clears all "error_records" edges to the ErrorRecord entity.
func (_u *AppUpdate) ClearErrorRecords() *AppUpdate {
	_u.mutation.ClearErrorRecords()
	return _u
}

// RemoveErrorRecordIDs removes the "error_records" edge to ErrorRecord entities by IDs.
func (_u *AppUpdate) RemoveErrorRecordIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveErrorRecordIDs(ids...)
	return _u
}

// RemoveErrorRecords removes "error_records" edges to ErrorRecord entities.
func (_u *AppUpdate) RemoveErrorRecords(v ...*ErrorRecord) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorRecordIDs(ids...)
}

// ClearErrorPatterns clears all "error_patterns" edges to the ErrorPattern entity.
func (_u *AppUpdate) ClearErrorPatterns() *AppUpdate {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// RemoveErrorPatternIDs removes the "error_patterns" edge to ErrorPattern entities by IDs.
func (_u *AppUpdate) RemoveErrorPatternIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveErrorPatternIDs(ids...)
	return _u
}

// RemoveErrorPatterns removes "error_patterns" edges to ErrorPattern entities.
func (_u *AppUpdate) RemoveErrorPatterns(v ...*ErrorPattern) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorPatternIDs(ids...)
}

// ClearKnowledgeEntries clears all "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *AppUpdate) ClearKnowledgeEntries() *AppUpdate {
	_u.mutation.ClearKnowledgeEntries()
	return _u
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to KnowledgeEntry entities by IDs.
func (_u *AppUpdate) RemoveKnowledgeEntryIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveKnowledgeEntryIDs(ids...)
	return _u
}

// RemoveKnowledgeEntries removes "knowledge_entries" edges to KnowledgeEntry entities.
func (_u *AppUpdate) RemoveKnowledgeEntries(v ...*KnowledgeEntry) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeEntryIDs(ids...)
}

// ClearKnowledgeSyncStates clears all "knowledge_sync_states" edges to the KnowledgeSyncState entity.
func (_u *AppUpdate) ClearKnowledgeSyncStates() *AppUpdate {
	_u.mutation.ClearKnowledgeSyncStates()
	return _u
}

// RemoveKnowledgeSyncStateIDs removes the "knowledge_sync_states" edge to KnowledgeSyncState entities by IDs.
func (_u *AppUpdate) RemoveKnowledgeSyncStateIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveKnowledgeSyncStateIDs(ids...)
	return _u
}

// RemoveKnowledgeSyncStates removes "knowledge_sync_states" edges to KnowledgeSyncState entities.
func (_u *AppUpdate) RemoveKnowledgeSyncStates(v ...*KnowledgeSyncState) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeSyncStateIDs(ids...)
}

// ClearNotificationPreferences clears all "notification_preferences" edges to the NotificationPreference entity.
func (_u *AppUpdate) ClearNotificationPreferences() *AppUpdate {
	_u.mutation.ClearNotificationPreferences()
	return _u
}

// RemoveNotificationPreferenceIDs removes the "notification_preferences" edge to NotificationPreference entities by IDs.
func (_u *AppUpdate) RemoveNotificationPreferenceIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveNotificationPreferenceIDs(ids...)
	return _u
}

// RemoveNotificationPreferences removes "notification_preferences" edges to NotificationPreference entities.
func (_u *AppUpdate) RemoveNotificationPreferences(v ...*NotificationPreference) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationPreferenceIDs(ids...)
}

// ClearNotificationChannels clears all "notification_channels" edges to the NotificationChannel entity.
func (_u *AppUpdate) ClearNotificationChannels() *AppUpdate {
	_u.mutation.ClearNotificationChannels()
	return _u
}

// RemoveNotificationChannelIDs removes the "notification_channels" edge to NotificationChannel entities by IDs.
func (_u *AppUpdate) RemoveNotificationChannelIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveNotificationChannelIDs(ids...)
	return _u
}

// RemoveNotificationChannels removes "notification_channels" edges to NotificationChannel entities.
func (_u *AppUpdate) RemoveNotificationChannels(v ...*NotificationChannel) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationChannelIDs(ids...)
}

// ClearNotificationHistory clears all "notification_history" edges to the NotificationHistory entity.
func (_u *AppUpdate) ClearNotificationHistory() *AppUpdate {
	_u.mutation.ClearNotificationHistory()
	return _u
}

// RemoveNotificationHistoryIDs removes the "notification_history" edge to NotificationHistory entities by IDs.
func (_u *AppUpdate) RemoveNotificationHistoryIDs(ids ...string) *AppUpdate {
	_u.mutation.RemoveNotificationHistoryIDs(ids...)
	return _u
}

// RemoveNotificationHistory removes "notification_history" edges to NotificationHistory entities.
func (_u *AppUpdate) RemoveNotificationHistory(v ...*NotificationHistory) *AppUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := app.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AppUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(app.Table, app.Columns, sqlgraph.NewFieldSpec(app.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(app.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(app.FieldAPIKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(app.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(app.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserProfilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.UserProfilesTable,
			Columns: []string{app.UserProfilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserProfilesIDs(); len(nodes) > 0 && !_u.mutation.UserProfilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.UserProfilesTable,
			Columns: []string{app.UserProfilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserProfilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.UserProfilesTable,
			Columns: []string{app.UserProfilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.TasksTable,
			Columns: []string{app.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.TasksTable,
			Columns: []string{app.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.TasksTable,
			Columns: []string{app.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HeartbeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.HeartbeatsTable,
			Columns: []string{app.HeartbeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHeartbeatsIDs(); len(nodes) > 0 && !_u.mutation.HeartbeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.HeartbeatsTable,
			Columns: []string{app.HeartbeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HeartbeatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.HeartbeatsTable,
			Columns: []string{app.HeartbeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArrangementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ArrangementsTable,
			Columns: []string{app.ArrangementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArrangementsIDs(); len(nodes) > 0 && !_u.mutation.ArrangementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ArrangementsTable,
			Columns: []string{app.ArrangementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArrangementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ArrangementsTable,
			Columns: []string{app.ArrangementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorRecordsTable,
			Columns: []string{app.ErrorRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorRecordsIDs(); len(nodes) > 0 && !_u.mutation.ErrorRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorRecordsTable,
			Columns: []string{app.ErrorRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorRecordsTable,
			Columns: []string{app.ErrorRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorPatternsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorPatternsTable,
			Columns: []string{app.ErrorPatternsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorPatternsIDs(); len(nodes) > 0 && !_u.mutation.ErrorPatternsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorPatternsTable,
			Columns: []string{app.ErrorPatternsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorPatternsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorPatternsTable,
			Columns: []string{app.ErrorPatternsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeEntriesTable,
			Columns: []string{app.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeEntriesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeEntriesTable,
			Columns: []string{app.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeEntriesTable,
			Columns: []string{app.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeSyncStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeSyncStatesTable,
			Columns: []string{app.KnowledgeSyncStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeSyncStatesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeSyncStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeSyncStatesTable,
			Columns: []string{app.KnowledgeSyncStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeSyncStatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeSyncStatesTable,
			Columns: []string{app.KnowledgeSyncStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationPreferencesTable,
			Columns: []string{app.NotificationPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationPreferencesIDs(); len(nodes) > 0 && !_u.mutation.NotificationPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationPreferencesTable,
			Columns: []string{app.NotificationPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationPreferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationPreferencesTable,
			Columns: []string{app.NotificationPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationChannelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationChannelsTable,
			Columns: []string{app.NotificationChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationchannel.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationChannelsIDs(); len(nodes) > 0 && !_u.mutation.NotificationChannelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationChannelsTable,
			Columns: []string{app.NotificationChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationchannel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationChannelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationChannelsTable,
			Columns: []string{app.NotificationChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationchannel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationHistoryTable,
			Columns: []string{app.NotificationHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationHistoryIDs(); len(nodes) > 0 && !_u.mutation.NotificationHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationHistoryTable,
			Columns: []string{app.NotificationHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationHistoryTable,
			Columns: []string{app.NotificationHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{app.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppUpdateOne is the builder for updating a single App entity.
type AppUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppMutation
}

// SetName sets the "name" field.
func (_u *AppUpdateOne) SetName(v string) *AppUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AppUpdateOne) SetNillableName(v *string) *AppUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *AppUpdateOne) SetAPIKey(v string) *AppUpdateOne {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *AppUpdateOne) SetNillableAPIKey(v *string) *AppUpdateOne {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AppUpdateOne) SetIsActive(v bool) *AppUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AppUpdateOne) SetNillableIsActive(v *bool) *AppUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppUpdateOne) SetUpdatedAt(v time.Time) *AppUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUserProfileIDs adds the "user_profiles" edge to the UserProfile entity by IDs.
func (_u *AppUpdateOne) AddUserProfileIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddUserProfileIDs(ids...)
	return _u
}

// AddUserProfiles adds the "user_profiles" edges to the UserProfile entity.
func (_u *AppUpdateOne) AddUserProfiles(v ...*UserProfile) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserProfileIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *AppUpdateOne) AddTaskIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *AppUpdateOne) AddTasks(v ...*Task) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddHeartbeatIDs adds the "heartbeats" edge to the Heartbeat entity by IDs.
func (_u *AppUpdateOne) AddHeartbeatIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddHeartbeatIDs(ids...)
	return _u
}

// AddHeartbeats adds the "heartbeats" edges to the Heartbeat entity.
func (_u *AppUpdateOne) AddHeartbeats(v ...*Heartbeat) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHeartbeatIDs(ids...)
}

// AddArrangementIDs adds the "arrangements" edge to the SavedArrangement entity by IDs.
func (_u *AppUpdateOne) AddArrangementIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddArrangementIDs(ids...)
	return _u
}

// AddArrangements adds the "arrangements" edges to the SavedArrangement entity.
func (_u *AppUpdateOne) AddArrangements(v ...*SavedArrangement) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArrangementIDs(ids...)
}

// AddErrorRecordIDs adds the "error_records" edge to the ErrorRecord entity by IDs.
func (_u *AppUpdateOne) AddErrorRecordIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddErrorRecordIDs(ids...)
	return _u
}

// AddErrorRecords adds the "error_records" edges to the ErrorRecord entity.
func (_u *AppUpdateOne) AddErrorRecords(v ...*ErrorRecord) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorRecordIDs(ids...)
}

// AddErrorPatternIDs adds the "error_patterns" edge to the ErrorPattern entity by IDs.
func (_u *AppUpdateOne) AddErrorPatternIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddErrorPatternIDs(ids...)
	return _u
}

// AddErrorPatterns adds the "error_patterns" edges to the ErrorPattern entity.
func (_u *AppUpdateOne) AddErrorPatterns(v ...*ErrorPattern) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorPatternIDs(ids...)
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeEntry entity by IDs.
func (_u *AppUpdateOne) AddKnowledgeEntryIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddKnowledgeEntryIDs(ids...)
	return _u
}

// AddKnowledgeEntries adds the "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *AppUpdateOne) AddKnowledgeEntries(v ...*KnowledgeEntry) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeEntryIDs(ids...)
}

// AddKnowledgeSyncStateIDs adds the "knowledge_sync_states" edge to the KnowledgeSyncState entity by IDs.
func (_u *AppUpdateOne) AddKnowledgeSyncStateIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddKnowledgeSyncStateIDs(ids...)
	return _u
}

// AddKnowledgeSyncStates adds the "knowledge_sync_states" edges to the KnowledgeSyncState entity.
func (_u *AppUpdateOne) AddKnowledgeSyncStates(v ...*KnowledgeSyncState) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeSyncStateIDs(ids...)
}

// AddNotificationPreferenceIDs adds the "notification_preferences" edge to the NotificationPreference entity by IDs.
func (_u *AppUpdateOne) AddNotificationPreferenceIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddNotificationPreferenceIDs(ids...)
	return _u
}

// AddNotificationPreferences adds the "notification_preferences" edges to the NotificationPreference entity.
func (_u *AppUpdateOne) AddNotificationPreferences(v ...*NotificationPreference) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationPreferenceIDs(ids...)
}

// AddNotificationChannelIDs adds the "notification_channels" edge to the NotificationChannel entity by IDs.
func (_u *AppUpdateOne) AddNotificationChannelIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddNotificationChannelIDs(ids...)
	return _u
}

// AddNotificationChannels adds the "notification_channels" edges to the NotificationChannel entity.
func (_u *AppUpdateOne) AddNotificationChannels(v ...*NotificationChannel) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationChannelIDs(ids...)
}

// AddNotificationHistoryIDs adds the "notification_history" edge to the NotificationHistory entity by IDs.
func (_u *AppUpdateOne) AddNotificationHistoryIDs(ids ...string) *AppUpdateOne {
	_u.mutation.AddNotificationHistoryIDs(ids...)
	return _u
}

// AddNotificationHistory adds the "notification_history" edges to the NotificationHistory entity.
func (_u *AppUpdateOne) AddNotificationHistory(v ...*NotificationHistory) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationHistoryIDs(ids...)
}

// Mutation returns the AppMutation object of the builder.
func (_u *AppUpdateOne) Mutation() *AppMutation {
	return _u.mutation
}

// ClearUserProfiles clears all "user_profiles" edges to the UserProfile entity.
func (_u *AppUpdateOne) ClearUserProfiles() *AppUpdateOne {
	_u.mutation.ClearUserProfiles()
	return _u
}

// RemoveUserProfileIDs removes the "user_profiles" edge to UserProfile entities by IDs.
func (_u *AppUpdateOne) RemoveUserProfileIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveUserProfileIDs(ids...)
	return _u
}

// RemoveUserProfiles removes "user_profiles" edges to UserProfile entities.
func (_u *AppUpdateOne) RemoveUserProfiles(v ...*UserProfile) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserProfileIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *AppUpdateOne) ClearTasks() *AppUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *AppUpdateOne) RemoveTaskIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *AppUpdateOne) RemoveTasks(v ...*Task) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearHeartbeats clears all "heartbeats" edges to the Heartbeat entity.
func (_u *AppUpdateOne) ClearHeartbeats() *AppUpdateOne {
	_u.mutation.ClearHeartbeats()
	return _u
}

// RemoveHeartbeatIDs removes the "heartbeats" edge to Heartbeat entities by IDs.
func (_u *AppUpdateOne) RemoveHeartbeatIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveHeartbeatIDs(ids...)
	return _u
}

// RemoveHeartbeats removes "heartbeats" edges to Heartbeat entities.
func (_u *AppUpdateOne) RemoveHeartbeats(v ...*Heartbeat) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHeartbeatIDs(ids...)
}

// ClearArrangements clears all "arrangements" edges to the SavedArrangement entity.
func (_u *AppUpdateOne) ClearArrangements() *AppUpdateOne {
	_u.mutation.ClearArrangements()
	return _u
}

// RemoveArrangementIDs removes the "arrangements" edge to SavedArrangement entities by IDs.
func (_u *AppUpdateOne) RemoveArrangementIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveArrangementIDs(ids...)
	return _u
}

// RemoveArrangements removes "arrangements" edges to SavedArrangement entities.
func (_u *AppUpdateOne) RemoveArrangements(v ...*SavedArrangement) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArrangementIDs(ids...)
}

// ClearErrorRecords clears all "error_records" edges to the ErrorRecord entity.
func (_u *AppUpdateOne) ClearErrorRecords() *AppUpdateOne {
	_u.mutation.ClearErrorRecords()
	return _u
}

// RemoveErrorRecordIDs removes the "error_records" edge to ErrorRecord entities by IDs.
func (_u *AppUpdateOne) RemoveErrorRecordIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveErrorRecordIDs(ids...)
	return _u
}

// RemoveErrorRecords removes "error_records" edges to ErrorRecord entities.
func (_u *AppUpdateOne) RemoveErrorRecords(v ...*ErrorRecord) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorRecordIDs(ids...)
}

// ClearErrorPatterns clears all "error_patterns" edges to the ErrorPattern entity.
func (_u *AppUpdateOne) ClearErrorPatterns() *AppUpdateOne {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// RemoveErrorPatternIDs removes the "error_patterns" edge to ErrorPattern entities by IDs.
func (_u *AppUpdateOne) RemoveErrorPatternIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveErrorPatternIDs(ids...)
	return _u
}

// RemoveErrorPatterns removes "error_patterns" edges to ErrorPattern entities.
func (_u *AppUpdateOne) RemoveErrorPatterns(v ...*ErrorPattern) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorPatternIDs(ids...)
}

// ClearKnowledgeEntries clears all "knowledge_entries" edges to the KnowledgeEntry entity.
func (_u *AppUpdateOne) ClearKnowledgeEntries() *AppUpdateOne {
	_u.mutation.ClearKnowledgeEntries()
	return _u
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to KnowledgeEntry entities by IDs.
func (_u *AppUpdateOne) RemoveKnowledgeEntryIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveKnowledgeEntryIDs(ids...)
	return _u
}

// RemoveKnowledgeEntries removes "knowledge_entries" edges to KnowledgeEntry entities.
func (_u *AppUpdateOne) RemoveKnowledgeEntries(v ...*KnowledgeEntry) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeEntryIDs(ids...)
}

// ClearKnowledgeSyncStates clears all "knowledge_sync_states" edges to the KnowledgeSyncState entity.
func (_u *AppUpdateOne) ClearKnowledgeSyncStates() *AppUpdateOne {
	_u.mutation.ClearKnowledgeSyncStates()
	return _u
}

// RemoveKnowledgeSyncStateIDs removes the "knowledge_sync_states" edge to KnowledgeSyncState entities by IDs.
func (_u *AppUpdateOne) RemoveKnowledgeSyncStateIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveKnowledgeSyncStateIDs(ids...)
	return _u
}

// RemoveKnowledgeSyncStates removes "knowledge_sync_states" edges to KnowledgeSyncState entities.
func (_u *AppUpdateOne) RemoveKnowledgeSyncStates(v ...*KnowledgeSyncState) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeSyncStateIDs(ids...)
}

// ClearNotificationPreferences clears all "notification_preferences" edges to the NotificationPreference entity.
func (_u *AppUpdateOne) ClearNotificationPreferences() *AppUpdateOne {
	_u.mutation.ClearNotificationPreferences()
	return _u
}

// RemoveNotificationPreferenceIDs removes the "notification_preferences" edge to NotificationPreference entities by IDs.
func (_u *AppUpdateOne) RemoveNotificationPreferenceIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveNotificationPreferenceIDs(ids...)
	return _u
}

// RemoveNotificationPreferences removes "notification_preferences" edges to NotificationPreference entities.
func (_u *AppUpdateOne) RemoveNotificationPreferences(v ...*NotificationPreference) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationPreferenceIDs(ids...)
}

// ClearNotificationChannels clears all "notification_channels" edges to the NotificationChannel entity.
func (_u *AppUpdateOne) ClearNotificationChannels() *AppUpdateOne {
	_u.mutation.ClearNotificationChannels()
	return _u
}

// RemoveNotificationChannelIDs removes the "notification_channels" edge to NotificationChannel entities by IDs.
func (_u *AppUpdateOne) RemoveNotificationChannelIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveNotificationChannelIDs(ids...)
	return _u
}

// RemoveNotificationChannels removes "notification_channels" edges to NotificationChannel entities.
func (_u *AppUpdateOne) RemoveNotificationChannels(v ...*NotificationChannel) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationChannelIDs(ids...)
}

// ClearNotificationHistory clears all "notification_history" edges to the NotificationHistory entity.
func (_u *AppUpdateOne) ClearNotificationHistory() *AppUpdateOne {
	_u.mutation.ClearNotificationHistory()
	return _u
}

// RemoveNotificationHistoryIDs removes the "notification_history" edge to NotificationHistory entities by IDs.
func (_u *AppUpdateOne) RemoveNotificationHistoryIDs(ids ...string) *AppUpdateOne {
	_u.mutation.RemoveNotificationHistoryIDs(ids...)
	return _u
}

// RemoveNotificationHistory removes "notification_history" edges to NotificationHistory entities.
func (_u *AppUpdateOne) RemoveNotificationHistory(v ...*NotificationHistory) *AppUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationHistoryIDs(ids...)
}

// Where appends a list predicates to the AppUpdate builder.
func (_u *AppUpdateOne) Where(ps ...predicate.App) *AppUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppUpdateOne) Select(field string, fields ...string) *AppUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated App entity.
func (_u *AppUpdateOne) Save(ctx context.Context) (*App, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppUpdateOne) SaveX(ctx context.Context) *App {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := app.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AppUpdateOne) sqlSave(ctx context.Context) (_node *App, err error) {
	_spec := sqlgraph.NewUpdateSpec(app.Table, app.Columns, sqlgraph.NewFieldSpec(app.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "App.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, app.FieldID)
		for _, f := range fields {
			if !app.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != app.FieldID {
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
		_spec.SetField(app.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(app.FieldAPIKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(app.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(app.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserProfilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.UserProfilesTable,
			Columns: []string{app.UserProfilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserProfilesIDs(); len(nodes) > 0 && !_u.mutation.UserProfilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.UserProfilesTable,
			Columns: []string{app.UserProfilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserProfilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.UserProfilesTable,
			Columns: []string{app.UserProfilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.TasksTable,
			Columns: []string{app.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.TasksTable,
			Columns: []string{app.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.TasksTable,
			Columns: []string{app.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HeartbeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.HeartbeatsTable,
			Columns: []string{app.HeartbeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHeartbeatsIDs(); len(nodes) > 0 && !_u.mutation.HeartbeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.HeartbeatsTable,
			Columns: []string{app.HeartbeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HeartbeatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.HeartbeatsTable,
			Columns: []string{app.HeartbeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(heartbeat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArrangementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ArrangementsTable,
			Columns: []string{app.ArrangementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArrangementsIDs(); len(nodes) > 0 && !_u.mutation.ArrangementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ArrangementsTable,
			Columns: []string{app.ArrangementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArrangementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ArrangementsTable,
			Columns: []string{app.ArrangementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(savedarrangement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorRecordsTable,
			Columns: []string{app.ErrorRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorRecordsIDs(); len(nodes) > 0 && !_u.mutation.ErrorRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorRecordsTable,
			Columns: []string{app.ErrorRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorRecordsTable,
			Columns: []string{app.ErrorRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorPatternsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorPatternsTable,
			Columns: []string{app.ErrorPatternsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorPatternsIDs(); len(nodes) > 0 && !_u.mutation.ErrorPatternsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorPatternsTable,
			Columns: []string{app.ErrorPatternsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorPatternsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.ErrorPatternsTable,
			Columns: []string{app.ErrorPatternsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeEntriesTable,
			Columns: []string{app.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeEntriesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeEntriesTable,
			Columns: []string{app.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeEntriesTable,
			Columns: []string{app.KnowledgeEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeSyncStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeSyncStatesTable,
			Columns: []string{app.KnowledgeSyncStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeSyncStatesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeSyncStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeSyncStatesTable,
			Columns: []string{app.KnowledgeSyncStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeSyncStatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.KnowledgeSyncStatesTable,
			Columns: []string{app.KnowledgeSyncStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgesyncstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationPreferencesTable,
			Columns: []string{app.NotificationPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationPreferencesIDs(); len(nodes) > 0 && !_u.mutation.NotificationPreferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationPreferencesTable,
			Columns: []string{app.NotificationPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationPreferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationPreferencesTable,
			Columns: []string{app.NotificationPreferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationChannelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationChannelsTable,
			Columns: []string{app.NotificationChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationchannel.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationChannelsIDs(); len(nodes) > 0 && !_u.mutation.NotificationChannelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationChannelsTable,
			Columns: []string{app.NotificationChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationchannel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationChannelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationChannelsTable,
			Columns: []string{app.NotificationChannelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationchannel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationHistoryTable,
			Columns: []string{app.NotificationHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationHistoryIDs(); len(nodes) > 0 && !_u.mutation.NotificationHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationHistoryTable,
			Columns: []string{app.NotificationHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   app.NotificationHistoryTable,
			Columns: []string{app.NotificationHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notificationhistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &App{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{app.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
