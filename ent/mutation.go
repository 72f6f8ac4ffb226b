// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/errorpattern"
	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/ent/notificationpreference"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/roomlearning"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/taskiteration"
	"github.com/loop-symphony/symphony/ent/userprofile"
	"github.com/loop-symphony/symphony/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApp                    = "App"
	TypeErrorPattern           = "ErrorPattern"
	TypeErrorRecord            = "ErrorRecord"
	TypeHeartbeat              = "Heartbeat"
	TypeHeartbeatRun           = "HeartbeatRun"
	TypeKnowledgeEntry         = "KnowledgeEntry"
	TypeKnowledgeSyncState     = "KnowledgeSyncState"
	TypeNotificationChannel    = "NotificationChannel"
	TypeNotificationHistory    = "NotificationHistory"
	TypeNotificationPreference = "NotificationPreference"
	TypeRoomLearning           = "RoomLearning"
	TypeRoomSyncState          = "RoomSyncState"
	TypeSavedArrangement       = "SavedArrangement"
	TypeTask                   = "Task"
	TypeTaskIteration          = "TaskIteration"
	TypeUserProfile            = "UserProfile"
)

// AppMutation represents an operation that mutates the App nodes in the graph.
type AppMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	name                            *string
	api_key                         *string
	is_active                       *bool
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	user_profiles                   map[string]struct{}
	removeduser_profiles            map[string]struct{}
	cleareduser_profiles            bool
	tasks                           map[string]struct{}
	removedtasks                    map[string]struct{}
	clearedtasks                    bool
	heartbeats                      map[string]struct{}
	removedheartbeats               map[string]struct{}
	clearedheartbeats               bool
	arrangements                    map[string]struct{}
	removedarrangements             map[string]struct{}
	clearedarrangements             bool
	error_records                   map[string]struct{}
	removederror_records            map[string]struct{}
	clearederror_records            bool
	error_patterns                  map[string]struct{}
	removederror_patterns           map[string]struct{}
	clearederror_patterns           bool
	knowledge_entries               map[string]struct{}
	removedknowledge_entries        map[string]struct{}
	clearedknowledge_entries        bool
	knowledge_sync_states           map[string]struct{}
	removedknowledge_sync_states    map[string]struct{}
	clearedknowledge_sync_states    bool
	notification_preferences        map[string]struct{}
	removednotification_preferences map[string]struct{}
	clearednotification_preferences bool
	notification_channels           map[string]struct{}
	removednotification_channels    map[string]struct{}
	clearednotification_channels    bool
	notification_history            map[string]struct{}
	removednotification_history     map[string]struct{}
	clearednotification_history     bool
	done                            bool
	oldValue                        func(context.Context) (*App, error)
	predicates                      []predicate.App
}

var _ ent.Mutation = (*AppMutation)(nil)

// appOption allows management of the mutation configuration using functional options.
type appOption func(*AppMutation)

// newAppMutation creates new mutation for the App entity.
func newAppMutation(c config, op Op, opts ...appOption) *AppMutation {
	m := &AppMutation{
		config:        c,
		op:            op,
		typ:           TypeApp,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppID sets the ID field of the mutation.
func withAppID(id string) appOption {
	return func(m *AppMutation) {
		var (
			err   error
			once  sync.Once
			value *App
		)
		m.oldValue = func(ctx context.Context) (*App, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().App.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApp sets the old App of the mutation.
func withApp(node *App) appOption {
	return func(m *AppMutation) {
		m.oldValue = func(context.Context) (*App, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of App entities.
func (m *AppMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().App.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AppMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AppMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the App entity.
// If the App object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AppMutation) ResetName() {
	m.name = nil
}

// SetAPIKey sets the "api_key" field.
func (m *AppMutation) SetAPIKey(s string) {
	m.api_key = &s
}

// APIKey returns the value of the "api_key" field in the mutation.
func (m *AppMutation) APIKey() (r string, exists bool) {
	v := m.api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKey returns the old "api_key" field's value of the App entity.
// If the App object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppMutation) OldAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKey: %w", err)
	}
	return oldValue.APIKey, nil
}

// ResetAPIKey resets all changes to the "api_key" field.
func (m *AppMutation) ResetAPIKey() {
	m.api_key = nil
}

// SetIsActive sets the "is_active" field.
func (m *AppMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AppMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the App entity.
// If the App object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AppMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AppMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the App entity.
// If the App object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the App entity.
// If the App object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUserProfileIDs adds the "user_profiles" edge to the UserProfile entity by ids.
func (m *AppMutation) AddUserProfileIDs(ids ...string) {
	if m.user_profiles == nil {
		m.user_profiles = make(map[string]struct{})
	}
	for i := range ids {
		m.user_profiles[ids[i]] = struct{}{}
	}
}

// ClearUserProfiles clears the "user_profiles" edge to the UserProfile entity.
func (m *AppMutation) ClearUserProfiles() {
	m.cleareduser_profiles = true
}

// UserProfilesCleared reports if the "user_profiles" edge to the UserProfile entity was cleared.
func (m *AppMutation) UserProfilesCleared() bool {
	return m.cleareduser_profiles
}

// RemoveUserProfileIDs removes the "user_profiles" edge to the UserProfile entity by IDs.
func (m *AppMutation) RemoveUserProfileIDs(ids ...string) {
	if m.removeduser_profiles == nil {
		m.removeduser_profiles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.user_profiles, ids[i])
		m.removeduser_profiles[ids[i]] = struct{}{}
	}
}

// RemovedUserProfiles returns the removed IDs of the "user_profiles" edge to the UserProfile entity.
func (m *AppMutation) RemovedUserProfilesIDs() (ids []string) {
	for id := range m.removeduser_profiles {
		ids = append(ids, id)
	}
	return
}

// UserProfilesIDs returns the "user_profiles" edge IDs in the mutation.
func (m *AppMutation) UserProfilesIDs() (ids []string) {
	for id := range m.user_profiles {
		ids = append(ids, id)
	}
	return
}

// ResetUserProfiles resets all changes to the "user_profiles" edge.
func (m *AppMutation) ResetUserProfiles() {
	m.user_profiles = nil
	m.cleareduser_profiles = false
	m.removeduser_profiles = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *AppMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *AppMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *AppMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *AppMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *AppMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *AppMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *AppMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddHeartbeatIDs adds the "heartbeats" edge to the Heartbeat entity by ids.
func (m *AppMutation) AddHeartbeatIDs(ids ...string) {
	if m.heartbeats == nil {
		m.heartbeats = make(map[string]struct{})
	}
	for i := range ids {
		m.heartbeats[ids[i]] = struct{}{}
	}
}

// ClearHeartbeats clears the "heartbeats" edge to the Heartbeat entity.
func (m *AppMutation) ClearHeartbeats() {
	m.clearedheartbeats = true
}

// HeartbeatsCleared reports if the "heartbeats" edge to the Heartbeat entity was cleared.
func (m *AppMutation) HeartbeatsCleared() bool {
	return m.clearedheartbeats
}

// RemoveHeartbeatIDs removes the "heartbeats" edge to the Heartbeat entity by IDs.
func (m *AppMutation) RemoveHeartbeatIDs(ids ...string) {
	if m.removedheartbeats == nil {
		m.removedheartbeats = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.heartbeats, ids[i])
		m.removedheartbeats[ids[i]] = struct{}{}
	}
}

// RemovedHeartbeats returns the removed IDs of the "heartbeats" edge to the Heartbeat entity.
func (m *AppMutation) RemovedHeartbeatsIDs() (ids []string) {
	for id := range m.removedheartbeats {
		ids = append(ids, id)
	}
	return
}

// HeartbeatsIDs returns the "heartbeats" edge IDs in the mutation.
func (m *AppMutation) HeartbeatsIDs() (ids []string) {
	for id := range m.heartbeats {
		ids = append(ids, id)
	}
	return
}

// ResetHeartbeats resets all changes to the "heartbeats" edge.
func (m *AppMutation) ResetHeartbeats() {
	m.heartbeats = nil
	m.clearedheartbeats = false
	m.removedheartbeats = nil
}

// AddArrangementIDs adds the "arrangements" edge to the SavedArrangement entity by ids.
func (m *AppMutation) AddArrangementIDs(ids ...string) {
	if m.arrangements == nil {
		m.arrangements = make(map[string]struct{})
	}
	for i := range ids {
		m.arrangements[ids[i]] = struct{}{}
	}
}

// ClearArrangements clears the "arrangements" edge to the SavedArrangement entity.
func (m *AppMutation) ClearArrangements() {
	m.clearedarrangements = true
}

// ArrangementsCleared reports if the "arrangements" edge to the SavedArrangement entity was cleared.
func (m *AppMutation) ArrangementsCleared() bool {
	return m.clearedarrangements
}

// RemoveArrangementIDs removes the "arrangements" edge to the SavedArrangement entity by IDs.
func (m *AppMutation) RemoveArrangementIDs(ids ...string) {
	if m.removedarrangements == nil {
		m.removedarrangements = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.arrangements, ids[i])
		m.removedarrangements[ids[i]] = struct{}{}
	}
}

// RemovedArrangements returns the removed IDs of the "arrangements" edge to the SavedArrangement entity.
func (m *AppMutation) RemovedArrangementsIDs() (ids []string) {
	for id := range m.removedarrangements {
		ids = append(ids, id)
	}
	return
}

// ArrangementsIDs returns the "arrangements" edge IDs in the mutation.
func (m *AppMutation) ArrangementsIDs() (ids []string) {
	for id := range m.arrangements {
		ids = append(ids, id)
	}
	return
}

// ResetArrangements resets all changes to the "arrangements" edge.
func (m *AppMutation) ResetArrangements() {
	m.arrangements = nil
	m.clearedarrangements = false
	m.removedarrangements = nil
}

// AddErrorRecordIDs adds the "error_records" edge to the ErrorRecord entity by ids.
func (m *AppMutation) AddErrorRecordIDs(ids ...string) {
	if m.error_records == nil {
		m.error_records = make(map[string]struct{})
	}
	for i := range ids {
		m.error_records[ids[i]] = struct{}{}
	}
}

// ClearErrorRecords clears the "error_records" edge to the ErrorRecord entity.
func (m *AppMutation) ClearErrorRecords() {
	m.clearederror_records = true
}

// ErrorRecordsCleared reports if the "error_records" edge to the ErrorRecord entity was cleared.
func (m *AppMutation) ErrorRecordsCleared() bool {
	return m.clearederror_records
}

// RemoveErrorRecordIDs removes the "error_records" edge to the ErrorRecord entity by IDs.
func (m *AppMutation) RemoveErrorRecordIDs(ids ...string) {
	if m.removederror_records == nil {
		m.removederror_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.error_records, ids[i])
		m.removederror_records[ids[i]] = struct{}{}
	}
}

// RemovedErrorRecords returns the removed IDs of the "error_records" edge to the ErrorRecord entity.
func (m *AppMutation) RemovedErrorRecordsIDs() (ids []string) {
	for id := range m.removederror_records {
		ids = append(ids, id)
	}
	return
}

// ErrorRecordsIDs returns the "error_records" edge IDs in the mutation.
func (m *AppMutation) ErrorRecordsIDs() (ids []string) {
	for id := range m.error_records {
		ids = append(ids, id)
	}
	return
}

// ResetErrorRecords resets all changes to the "error_records" edge.
func (m *AppMutation) ResetErrorRecords() {
	m.error_records = nil
	m.clearederror_records = false
	m.removederror_records = nil
}

// AddErrorPatternIDs adds the "error_patterns" edge to the ErrorPattern entity by ids.
func (m *AppMutation) AddErrorPatternIDs(ids ...string) {
	if m.error_patterns == nil {
		m.error_patterns = make(map[string]struct{})
	}
	for i := range ids {
		m.error_patterns[ids[i]] = struct{}{}
	}
}

// ClearErrorPatterns clears the "error_patterns" edge to the ErrorPattern entity.
func (m *AppMutation) ClearErrorPatterns() {
	m.clearederror_patterns = true
}

// ErrorPatternsCleared reports if the "error_patterns" edge to the ErrorPattern entity was cleared.
func (m *AppMutation) ErrorPatternsCleared() bool {
	return m.clearederror_patterns
}

// RemoveErrorPatternIDs removes the "error_patterns" edge to the ErrorPattern entity by IDs.
func (m *AppMutation) RemoveErrorPatternIDs(ids ...string) {
	if m.removederror_patterns == nil {
		m.removederror_patterns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.error_patterns, ids[i])
		m.removederror_patterns[ids[i]] = struct{}{}
	}
}

// RemovedErrorPatterns returns the removed IDs of the "error_patterns" edge to the ErrorPattern entity.
func (m *AppMutation) RemovedErrorPatternsIDs() (ids []string) {
	for id := range m.removederror_patterns {
		ids = append(ids, id)
	}
	return
}

// ErrorPatternsIDs returns the "error_patterns" edge IDs in the mutation.
func (m *AppMutation) ErrorPatternsIDs() (ids []string) {
	for id := range m.error_patterns {
		ids = append(ids, id)
	}
	return
}

// ResetErrorPatterns resets all changes to the "error_patterns" edge.
func (m *AppMutation) ResetErrorPatterns() {
	m.error_patterns = nil
	m.clearederror_patterns = false
	m.removederror_patterns = nil
}

// AddKnowledgeEntryIDs adds the "knowledge_entries" edge to the KnowledgeEntry entity by ids.
func (m *AppMutation) AddKnowledgeEntryIDs(ids ...string) {
	if m.knowledge_entries == nil {
		m.knowledge_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge_entries[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeEntries clears the "knowledge_entries" edge to the KnowledgeEntry entity.
func (m *AppMutation) ClearKnowledgeEntries() {
	m.clearedknowledge_entries = true
}

// KnowledgeEntriesCleared reports if the "knowledge_entries" edge to the KnowledgeEntry entity was cleared.
func (m *AppMutation) KnowledgeEntriesCleared() bool {
	return m.clearedknowledge_entries
}

// RemoveKnowledgeEntryIDs removes the "knowledge_entries" edge to the KnowledgeEntry entity by IDs.
func (m *AppMutation) RemoveKnowledgeEntryIDs(ids ...string) {
	if m.removedknowledge_entries == nil {
		m.removedknowledge_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge_entries, ids[i])
		m.removedknowledge_entries[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeEntries returns the removed IDs of the "knowledge_entries" edge to the KnowledgeEntry entity.
func (m *AppMutation) RemovedKnowledgeEntriesIDs() (ids []string) {
	for id := range m.removedknowledge_entries {
		ids = append(ids, id)
	}
	return
}

// KnowledgeEntriesIDs returns the "knowledge_entries" edge IDs in the mutation.
func (m *AppMutation) KnowledgeEntriesIDs() (ids []string) {
	for id := range m.knowledge_entries {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeEntries resets all changes to the "knowledge_entries" edge.
func (m *AppMutation) ResetKnowledgeEntries() {
	m.knowledge_entries = nil
	m.clearedknowledge_entries = false
	m.removedknowledge_entries = nil
}

// AddKnowledgeSyncStateIDs adds the "knowledge_sync_states" edge to the KnowledgeSyncState entity by ids.
func (m *AppMutation) AddKnowledgeSyncStateIDs(ids ...string) {
	if m.knowledge_sync_states == nil {
		m.knowledge_sync_states = make(map[string]struct{})
	}
	for i := range ids {
		m.knowledge_sync_states[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeSyncStates clears the "knowledge_sync_states" edge to the KnowledgeSyncState entity.
func (m *AppMutation) ClearKnowledgeSyncStates() {
	m.clearedknowledge_sync_states = true
}

// KnowledgeSyncStatesCleared reports if the "knowledge_sync_states" edge to the KnowledgeSyncState entity was cleared.
func (m *AppMutation) KnowledgeSyncStatesCleared() bool {
	return m.clearedknowledge_sync_states
}

// RemoveKnowledgeSyncStateIDs removes the "knowledge_sync_states" edge to the KnowledgeSyncState entity by IDs.
func (m *AppMutation) RemoveKnowledgeSyncStateIDs(ids ...string) {
	if m.removedknowledge_sync_states == nil {
		m.removedknowledge_sync_states = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.knowledge_sync_states, ids[i])
		m.removedknowledge_sync_states[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeSyncStates returns the removed IDs of the "knowledge_sync_states" edge to the KnowledgeSyncState entity.
func (m *AppMutation) RemovedKnowledgeSyncStatesIDs() (ids []string) {
	for id := range m.removedknowledge_sync_states {
		ids = append(ids, id)
	}
	return
}

// KnowledgeSyncStatesIDs returns the "knowledge_sync_states" edge IDs in the mutation.
func (m *AppMutation) KnowledgeSyncStatesIDs() (ids []string) {
	for id := range m.knowledge_sync_states {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeSyncStates resets all changes to the "knowledge_sync_states" edge.
func (m *AppMutation) ResetKnowledgeSyncStates() {
	m.knowledge_sync_states = nil
	m.clearedknowledge_sync_states = false
	m.removedknowledge_sync_states = nil
}

// AddNotificationPreferenceIDs adds the "notification_preferences" edge to the NotificationPreference entity by ids.
func (m *AppMutation) AddNotificationPreferenceIDs(ids ...string) {
	if m.notification_preferences == nil {
		m.notification_preferences = make(map[string]struct{})
	}
	for i := range ids {
		m.notification_preferences[ids[i]] = struct{}{}
	}
}

// ClearNotificationPreferences clears the "notification_preferences" edge to the NotificationPreference entity.
func (m *AppMutation) ClearNotificationPreferences() {
	m.clearednotification_preferences = true
}

// NotificationPreferencesCleared reports if the "notification_preferences" edge to the NotificationPreference entity was cleared.
func (m *AppMutation) NotificationPreferencesCleared() bool {
	return m.clearednotification_preferences
}

// RemoveNotificationPreferenceIDs removes the "notification_preferences" edge to the NotificationPreference entity by IDs.
func (m *AppMutation) RemoveNotificationPreferenceIDs(ids ...string) {
	if m.removednotification_preferences == nil {
		m.removednotification_preferences = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notification_preferences, ids[i])
		m.removednotification_preferences[ids[i]] = struct{}{}
	}
}

// RemovedNotificationPreferences returns the removed IDs of the "notification_preferences" edge to the NotificationPreference entity.
func (m *AppMutation) RemovedNotificationPreferencesIDs() (ids []string) {
	for id := range m.removednotification_preferences {
		ids = append(ids, id)
	}
	return
}

// NotificationPreferencesIDs returns the "notification_preferences" edge IDs in the mutation.
func (m *AppMutation) NotificationPreferencesIDs() (ids []string) {
	for id := range m.notification_preferences {
		ids = append(ids, id)
	}
	return
}

// ResetNotificationPreferences resets all changes to the "notification_preferences" edge.
func (m *AppMutation) ResetNotificationPreferences() {
	m.notification_preferences = nil
	m.clearednotification_preferences = false
	m.removednotification_preferences = nil
}

// AddNotificationChannelIDs adds the "notification_channels" edge to the NotificationChannel entity by ids.
func (m *AppMutation) AddNotificationChannelIDs(ids ...string) {
	if m.notification_channels == nil {
		m.notification_channels = make(map[string]struct{})
	}
	for i := range ids {
		m.notification_channels[ids[i]] = struct{}{}
	}
}

// ClearNotificationChannels clears the "notification_channels" edge to the NotificationChannel entity.
func (m *AppMutation) ClearNotificationChannels() {
	m.clearednotification_channels = true
}

// NotificationChannelsCleared reports if the "notification_channels" edge to the NotificationChannel entity was cleared.
func (m *AppMutation) NotificationChannelsCleared() bool {
	return m.clearednotification_channels
}

// RemoveNotificationChannelIDs removes the "notification_channels" edge to the NotificationChannel entity by IDs.
func (m *AppMutation) RemoveNotificationChannelIDs(ids ...string) {
	if m.removednotification_channels == nil {
		m.removednotification_channels = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notification_channels, ids[i])
		m.removednotification_channels[ids[i]] = struct{}{}
	}
}

// RemovedNotificationChannels returns the removed IDs of the "notification_channels" edge to the NotificationChannel entity.
func (m *AppMutation) RemovedNotificationChannelsIDs() (ids []string) {
	for id := range m.removednotification_channels {
		ids = append(ids, id)
	}
	return
}

// NotificationChannelsIDs returns the "notification_channels" edge IDs in the mutation.
func (m *AppMutation) NotificationChannelsIDs() (ids []string) {
	for id := range m.notification_channels {
		ids = append(ids, id)
	}
	return
}

// ResetNotificationChannels resets all changes to the "notification_channels" edge.
func (m *AppMutation) ResetNotificationChannels() {
	m.notification_channels = nil
	m.clearednotification_channels = false
	m.removednotification_channels = nil
}

// AddNotificationHistoryIDs adds the "notification_history" edge to the NotificationHistory entity by ids.
func (m *AppMutation) AddNotificationHistoryIDs(ids ...string) {
	if m.notification_history == nil {
		m.notification_history = make(map[string]struct{})
	}
	for i := range ids {
		m.notification_history[ids[i]] = struct{}{}
	}
}

// ClearNotificationHistory clears the "notification_history" edge to the NotificationHistory entity.
func (m *AppMutation) ClearNotificationHistory() {
	m.clearednotification_history = true
}

// NotificationHistoryCleared reports if the "notification_history" edge to the NotificationHistory entity was cleared.
func (m *AppMutation) NotificationHistoryCleared() bool {
	return m.clearednotification_history
}

// RemoveNotificationHistoryIDs removes the "notification_history" edge to the NotificationHistory entity by IDs.
func (m *AppMutation) RemoveNotificationHistoryIDs(ids ...string) {
	if m.removednotification_history == nil {
		m.removednotification_history = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notification_history, ids[i])
		m.removednotification_history[ids[i]] = struct{}{}
	}
}

// RemovedNotificationHistory returns the removed IDs of the "notification_history" edge to the NotificationHistory entity.
func (m *AppMutation) RemovedNotificationHistoryIDs() (ids []string) {
	for id := range m.removednotification_history {
		ids = append(ids, id)
	}
	return
}

// NotificationHistoryIDs returns the "notification_history" edge IDs in the mutation.
func (m *AppMutation) NotificationHistoryIDs() (ids []string) {
	for id := range m.notification_history {
		ids = append(ids, id)
	}
	return
}

// ResetNotificationHistory resets all changes to the "notification_history" edge.
func (m *AppMutation) ResetNotificationHistory() {
	m.notification_history = nil
	m.clearednotification_history = false
	m.removednotification_history = nil
}

// Where appends a list predicates to the AppMutation builder.
func (m *AppMutation) Where(ps ...predicate.App) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.App, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (App).
func (m *AppMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, app.FieldName)
	}
	if m.api_key != nil {
		fields = append(fields, app.FieldAPIKey)
	}
	if m.is_active != nil {
		fields = append(fields, app.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, app.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, app.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case app.FieldName:
		return m.Name()
	case app.FieldAPIKey:
		return m.APIKey()
	case app.FieldIsActive:
		return m.IsActive()
	case app.FieldCreatedAt:
		return m.CreatedAt()
	case app.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case app.FieldName:
		return m.OldName(ctx)
	case app.FieldAPIKey:
		return m.OldAPIKey(ctx)
	case app.FieldIsActive:
		return m.OldIsActive(ctx)
	case app.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case app.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown App field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppMutation) SetField(name string, value ent.Value) error {
	switch name {
	case app.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case app.FieldAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKey(v)
		return nil
	case app.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case app.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case app.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown App field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown App numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppMutation) ClearField(name string) error {
	return fmt.Errorf("unknown App nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppMutation) ResetField(name string) error {
	switch name {
	case app.FieldName:
		m.ResetName()
		return nil
	case app.FieldAPIKey:
		m.ResetAPIKey()
		return nil
	case app.FieldIsActive:
		m.ResetIsActive()
		return nil
	case app.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case app.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown App field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppMutation) AddedEdges() []string {
	edges := make([]string, 0, 11)
	if m.user_profiles != nil {
		edges = append(edges, app.EdgeUserProfiles)
	}
	if m.tasks != nil {
		edges = append(edges, app.EdgeTasks)
	}
	if m.heartbeats != nil {
		edges = append(edges, app.EdgeHeartbeats)
	}
	if m.arrangements != nil {
		edges = append(edges, app.EdgeArrangements)
	}
	if m.error_records != nil {
		edges = append(edges, app.EdgeErrorRecords)
	}
	if m.error_patterns != nil {
		edges = append(edges, app.EdgeErrorPatterns)
	}
	if m.knowledge_entries != nil {
		edges = append(edges, app.EdgeKnowledgeEntries)
	}
	if m.knowledge_sync_states != nil {
		edges = append(edges, app.EdgeKnowledgeSyncStates)
	}
	if m.notification_preferences != nil {
		edges = append(edges, app.EdgeNotificationPreferences)
	}
	if m.notification_channels != nil {
		edges = append(edges, app.EdgeNotificationChannels)
	}
	if m.notification_history != nil {
		edges = append(edges, app.EdgeNotificationHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case app.EdgeUserProfiles:
		ids := make([]ent.Value, 0, len(m.user_profiles))
		for id := range m.user_profiles {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeHeartbeats:
		ids := make([]ent.Value, 0, len(m.heartbeats))
		for id := range m.heartbeats {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeArrangements:
		ids := make([]ent.Value, 0, len(m.arrangements))
		for id := range m.arrangements {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeErrorRecords:
		ids := make([]ent.Value, 0, len(m.error_records))
		for id := range m.error_records {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeErrorPatterns:
		ids := make([]ent.Value, 0, len(m.error_patterns))
		for id := range m.error_patterns {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeKnowledgeEntries:
		ids := make([]ent.Value, 0, len(m.knowledge_entries))
		for id := range m.knowledge_entries {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeKnowledgeSyncStates:
		ids := make([]ent.Value, 0, len(m.knowledge_sync_states))
		for id := range m.knowledge_sync_states {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeNotificationPreferences:
		ids := make([]ent.Value, 0, len(m.notification_preferences))
		for id := range m.notification_preferences {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeNotificationChannels:
		ids := make([]ent.Value, 0, len(m.notification_channels))
		for id := range m.notification_channels {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeNotificationHistory:
		ids := make([]ent.Value, 0, len(m.notification_history))
		for id := range m.notification_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppMutation) RemovedEdges() []string {
	edges := make([]string, 0, 11)
	if m.removeduser_profiles != nil {
		edges = append(edges, app.EdgeUserProfiles)
	}
	if m.removedtasks != nil {
		edges = append(edges, app.EdgeTasks)
	}
	if m.removedheartbeats != nil {
		edges = append(edges, app.EdgeHeartbeats)
	}
	if m.removedarrangements != nil {
		edges = append(edges, app.EdgeArrangements)
	}
	if m.removederror_records != nil {
		edges = append(edges, app.EdgeErrorRecords)
	}
	if m.removederror_patterns != nil {
		edges = append(edges, app.EdgeErrorPatterns)
	}
	if m.removedknowledge_entries != nil {
		edges = append(edges, app.EdgeKnowledgeEntries)
	}
	if m.removedknowledge_sync_states != nil {
		edges = append(edges, app.EdgeKnowledgeSyncStates)
	}
	if m.removednotification_preferences != nil {
		edges = append(edges, app.EdgeNotificationPreferences)
	}
	if m.removednotification_channels != nil {
		edges = append(edges, app.EdgeNotificationChannels)
	}
	if m.removednotification_history != nil {
		edges = append(edges, app.EdgeNotificationHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case app.EdgeUserProfiles:
		ids := make([]ent.Value, 0, len(m.removeduser_profiles))
		for id := range m.removeduser_profiles {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeHeartbeats:
		ids := make([]ent.Value, 0, len(m.removedheartbeats))
		for id := range m.removedheartbeats {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeArrangements:
		ids := make([]ent.Value, 0, len(m.removedarrangements))
		for id := range m.removedarrangements {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeErrorRecords:
		ids := make([]ent.Value, 0, len(m.removederror_records))
		for id := range m.removederror_records {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeErrorPatterns:
		ids := make([]ent.Value, 0, len(m.removederror_patterns))
		for id := range m.removederror_patterns {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeKnowledgeEntries:
		ids := make([]ent.Value, 0, len(m.removedknowledge_entries))
		for id := range m.removedknowledge_entries {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeKnowledgeSyncStates:
		ids := make([]ent.Value, 0, len(m.removedknowledge_sync_states))
		for id := range m.removedknowledge_sync_states {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeNotificationPreferences:
		ids := make([]ent.Value, 0, len(m.removednotification_preferences))
		for id := range m.removednotification_preferences {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeNotificationChannels:
		ids := make([]ent.Value, 0, len(m.removednotification_channels))
		for id := range m.removednotification_channels {
			ids = append(ids, id)
		}
		return ids
	case app.EdgeNotificationHistory:
		ids := make([]ent.Value, 0, len(m.removednotification_history))
		for id := range m.removednotification_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppMutation) ClearedEdges() []string {
	edges := make([]string, 0, 11)
	if m.cleareduser_profiles {
		edges = append(edges, app.EdgeUserProfiles)
	}
	if m.clearedtasks {
		edges = append(edges, app.EdgeTasks)
	}
	if m.clearedheartbeats {
		edges = append(edges, app.EdgeHeartbeats)
	}
	if m.clearedarrangements {
		edges = append(edges, app.EdgeArrangements)
	}
	if m.clearederror_records {
		edges = append(edges, app.EdgeErrorRecords)
	}
	if m.clearederror_patterns {
		edges = append(edges, app.EdgeErrorPatterns)
	}
	if m.clearedknowledge_entries {
		edges = append(edges, app.EdgeKnowledgeEntries)
	}
	if m.clearedknowledge_sync_states {
		edges = append(edges, app.EdgeKnowledgeSyncStates)
	}
	if m.clearednotification_preferences {
		edges = append(edges, app.EdgeNotificationPreferences)
	}
	if m.clearednotification_channels {
		edges = append(edges, app.EdgeNotificationChannels)
	}
	if m.clearednotification_history {
		edges = append(edges, app.EdgeNotificationHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppMutation) EdgeCleared(name string) bool {
	switch name {
	case app.EdgeUserProfiles:
		return m.cleareduser_profiles
	case app.EdgeTasks:
		return m.clearedtasks
	case app.EdgeHeartbeats:
		return m.clearedheartbeats
	case app.EdgeArrangements:
		return m.clearedarrangements
	case app.EdgeErrorRecords:
		return m.clearederror_records
	case app.EdgeErrorPatterns:
		return m.clearederror_patterns
	case app.EdgeKnowledgeEntries:
		return m.clearedknowledge_entries
	case app.EdgeKnowledgeSyncStates:
		return m.clearedknowledge_sync_states
	case app.EdgeNotificationPreferences:
		return m.clearednotification_preferences
	case app.EdgeNotificationChannels:
		return m.clearednotification_channels
	case app.EdgeNotificationHistory:
		return m.clearednotification_history
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown App unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppMutation) ResetEdge(name string) error {
	switch name {
	case app.EdgeUserProfiles:
		m.ResetUserProfiles()
		return nil
	case app.EdgeTasks:
		m.ResetTasks()
		return nil
	case app.EdgeHeartbeats:
		m.ResetHeartbeats()
		return nil
	case app.EdgeArrangements:
		m.ResetArrangements()
		return nil
	case app.EdgeErrorRecords:
		m.ResetErrorRecords()
		return nil
	case app.EdgeErrorPatterns:
		m.ResetErrorPatterns()
		return nil
	case app.EdgeKnowledgeEntries:
		m.ResetKnowledgeEntries()
		return nil
	case app.EdgeKnowledgeSyncStates:
		m.ResetKnowledgeSyncStates()
		return nil
	case app.EdgeNotificationPreferences:
		m.ResetNotificationPreferences()
		return nil
	case app.EdgeNotificationChannels:
		m.ResetNotificationChannels()
		return nil
	case app.EdgeNotificationHistory:
		m.ResetNotificationHistory()
		return nil
	}
	return fmt.Errorf("unknown App edge %s", name)
}

// ErrorPatternMutation represents an operation that mutates the ErrorPattern nodes in the graph.
type ErrorPatternMutation struct {
	config
	op             Op
	typ            string
	id             *string
	signature      *string
	source         *string
	kind           *string
	occurrences    *int
	addoccurrences *int
	first_seen     *time.Time
	last_seen      *time.Time
	clearedFields  map[string]struct{}
	app            *string
	clearedapp     bool
	done           bool
	oldValue       func(context.Context) (*ErrorPattern, error)
	predicates     []predicate.ErrorPattern
}

var _ ent.Mutation = (*ErrorPatternMutation)(nil)

// errorpatternOption allows management of the mutation configuration using functional options.
type errorpatternOption func(*ErrorPatternMutation)

// newErrorPatternMutation creates new mutation for the ErrorPattern entity.
func newErrorPatternMutation(c config, op Op, opts ...errorpatternOption) *ErrorPatternMutation {
	m := &ErrorPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeErrorPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withErrorPatternID sets the ID field of the mutation.
func withErrorPatternID(id string) errorpatternOption {
	return func(m *ErrorPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *ErrorPattern
		)
		m.oldValue = func(ctx context.Context) (*ErrorPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ErrorPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withErrorPattern sets the old ErrorPattern of the mutation.
func withErrorPattern(node *ErrorPattern) errorpatternOption {
	return func(m *ErrorPatternMutation) {
		m.oldValue = func(context.Context) (*ErrorPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ErrorPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ErrorPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ErrorPattern entities.
func (m *ErrorPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ErrorPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ErrorPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ErrorPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *ErrorPatternMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *ErrorPatternMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *ErrorPatternMutation) ResetAppID() {
	m.app = nil
}

// SetSignature sets the "signature" field.
func (m *ErrorPatternMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *ErrorPatternMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ResetSignature resets all changes to the "signature" field.
func (m *ErrorPatternMutation) ResetSignature() {
	m.signature = nil
}

// SetSource sets the "source" field.
func (m *ErrorPatternMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ErrorPatternMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ErrorPatternMutation) ResetSource() {
	m.source = nil
}

// SetKind sets the "kind" field.
func (m *ErrorPatternMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ErrorPatternMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ErrorPatternMutation) ResetKind() {
	m.kind = nil
}

// SetOccurrences sets the "occurrences" field.
func (m *ErrorPatternMutation) SetOccurrences(i int) {
	m.occurrences = &i
	m.addoccurrences = nil
}

// Occurrences returns the value of the "occurrences" field in the mutation.
func (m *ErrorPatternMutation) Occurrences() (r int, exists bool) {
	v := m.occurrences
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrences returns the old "occurrences" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldOccurrences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrences: %w", err)
	}
	return oldValue.Occurrences, nil
}

// AddOccurrences adds i to the "occurrences" field.
func (m *ErrorPatternMutation) AddOccurrences(i int) {
	if m.addoccurrences != nil {
		*m.addoccurrences += i
	} else {
		m.addoccurrences = &i
	}
}

// AddedOccurrences returns the value that was added to the "occurrences" field in this mutation.
func (m *ErrorPatternMutation) AddedOccurrences() (r int, exists bool) {
	v := m.addoccurrences
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrences resets all changes to the "occurrences" field.
func (m *ErrorPatternMutation) ResetOccurrences() {
	m.occurrences = nil
	m.addoccurrences = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *ErrorPatternMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *ErrorPatternMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *ErrorPatternMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ErrorPatternMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ErrorPatternMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ErrorPatternMutation) ResetLastSeen() {
	m.last_seen = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *ErrorPatternMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[errorpattern.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *ErrorPatternMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *ErrorPatternMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *ErrorPatternMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the ErrorPatternMutation builder.
func (m *ErrorPatternMutation) Where(ps ...predicate.ErrorPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ErrorPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ErrorPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ErrorPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ErrorPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ErrorPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ErrorPattern).
func (m *ErrorPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ErrorPatternMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.app != nil {
		fields = append(fields, errorpattern.FieldAppID)
	}
	if m.signature != nil {
		fields = append(fields, errorpattern.FieldSignature)
	}
	if m.source != nil {
		fields = append(fields, errorpattern.FieldSource)
	}
	if m.kind != nil {
		fields = append(fields, errorpattern.FieldKind)
	}
	if m.occurrences != nil {
		fields = append(fields, errorpattern.FieldOccurrences)
	}
	if m.first_seen != nil {
		fields = append(fields, errorpattern.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, errorpattern.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ErrorPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case errorpattern.FieldAppID:
		return m.AppID()
	case errorpattern.FieldSignature:
		return m.Signature()
	case errorpattern.FieldSource:
		return m.Source()
	case errorpattern.FieldKind:
		return m.Kind()
	case errorpattern.FieldOccurrences:
		return m.Occurrences()
	case errorpattern.FieldFirstSeen:
		return m.FirstSeen()
	case errorpattern.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ErrorPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case errorpattern.FieldAppID:
		return m.OldAppID(ctx)
	case errorpattern.FieldSignature:
		return m.OldSignature(ctx)
	case errorpattern.FieldSource:
		return m.OldSource(ctx)
	case errorpattern.FieldKind:
		return m.OldKind(ctx)
	case errorpattern.FieldOccurrences:
		return m.OldOccurrences(ctx)
	case errorpattern.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case errorpattern.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown ErrorPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case errorpattern.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case errorpattern.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case errorpattern.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case errorpattern.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case errorpattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrences(v)
		return nil
	case errorpattern.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case errorpattern.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ErrorPatternMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrences != nil {
		fields = append(fields, errorpattern.FieldOccurrences)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ErrorPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case errorpattern.FieldOccurrences:
		return m.AddedOccurrences()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case errorpattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrences(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ErrorPatternMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ErrorPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ErrorPatternMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ErrorPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ErrorPatternMutation) ResetField(name string) error {
	switch name {
	case errorpattern.FieldAppID:
		m.ResetAppID()
		return nil
	case errorpattern.FieldSignature:
		m.ResetSignature()
		return nil
	case errorpattern.FieldSource:
		m.ResetSource()
		return nil
	case errorpattern.FieldKind:
		m.ResetKind()
		return nil
	case errorpattern.FieldOccurrences:
		m.ResetOccurrences()
		return nil
	case errorpattern.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case errorpattern.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ErrorPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, errorpattern.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ErrorPatternMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case errorpattern.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ErrorPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ErrorPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ErrorPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, errorpattern.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ErrorPatternMutation) EdgeCleared(name string) bool {
	switch name {
	case errorpattern.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ErrorPatternMutation) ClearEdge(name string) error {
	switch name {
	case errorpattern.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ErrorPatternMutation) ResetEdge(name string) error {
	switch name {
	case errorpattern.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern edge %s", name)
}

// ErrorRecordMutation represents an operation that mutates the ErrorRecord nodes in the graph.
type ErrorRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	source        *errorrecord.Source
	kind          *string
	message       *string
	context       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	app           *string
	clearedapp    bool
	done          bool
	oldValue      func(context.Context) (*ErrorRecord, error)
	predicates    []predicate.ErrorRecord
}

var _ ent.Mutation = (*ErrorRecordMutation)(nil)

// errorrecordOption allows management of the mutation configuration using functional options.
type errorrecordOption func(*ErrorRecordMutation)

// newErrorRecordMutation creates new mutation for the ErrorRecord entity.
func newErrorRecordMutation(c config, op Op, opts ...errorrecordOption) *ErrorRecordMutation {
	m := &ErrorRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeErrorRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withErrorRecordID sets the ID field of the mutation.
func withErrorRecordID(id string) errorrecordOption {
	return func(m *ErrorRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ErrorRecord
		)
		m.oldValue = func(ctx context.Context) (*ErrorRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ErrorRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withErrorRecord sets the old ErrorRecord of the mutation.
func withErrorRecord(node *ErrorRecord) errorrecordOption {
	return func(m *ErrorRecordMutation) {
		m.oldValue = func(context.Context) (*ErrorRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ErrorRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ErrorRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ErrorRecord entities.
func (m *ErrorRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ErrorRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ErrorRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ErrorRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *ErrorRecordMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *ErrorRecordMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *ErrorRecordMutation) ResetAppID() {
	m.app = nil
}

// SetTaskID sets the "task_id" field.
func (m *ErrorRecordMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ErrorRecordMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ErrorRecordMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[errorrecord.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ErrorRecordMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[errorrecord.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ErrorRecordMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, errorrecord.FieldTaskID)
}

// SetSource sets the "source" field.
func (m *ErrorRecordMutation) SetSource(e errorrecord.Source) {
	m.source = &e
}

// Source returns the value of the "source" field in the mutation.
func (m *ErrorRecordMutation) Source() (r errorrecord.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldSource(ctx context.Context) (v errorrecord.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ErrorRecordMutation) ResetSource() {
	m.source = nil
}

// SetKind sets the "kind" field.
func (m *ErrorRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ErrorRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ErrorRecordMutation) ResetKind() {
	m.kind = nil
}

// SetMessage sets the "message" field.
func (m *ErrorRecordMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ErrorRecordMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ErrorRecordMutation) ResetMessage() {
	m.message = nil
}

// SetContext sets the "context" field.
func (m *ErrorRecordMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *ErrorRecordMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ErrorRecordMutation) ClearContext() {
	m.context = nil
	m.clearedFields[errorrecord.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ErrorRecordMutation) ContextCleared() bool {
	_, ok := m.clearedFields[errorrecord.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ErrorRecordMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, errorrecord.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *ErrorRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ErrorRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ErrorRecord entity.
// If the ErrorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ErrorRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *ErrorRecordMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[errorrecord.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *ErrorRecordMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *ErrorRecordMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *ErrorRecordMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the ErrorRecordMutation builder.
func (m *ErrorRecordMutation) Where(ps ...predicate.ErrorRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ErrorRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ErrorRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ErrorRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ErrorRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ErrorRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ErrorRecord).
func (m *ErrorRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ErrorRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.app != nil {
		fields = append(fields, errorrecord.FieldAppID)
	}
	if m.task_id != nil {
		fields = append(fields, errorrecord.FieldTaskID)
	}
	if m.source != nil {
		fields = append(fields, errorrecord.FieldSource)
	}
	if m.kind != nil {
		fields = append(fields, errorrecord.FieldKind)
	}
	if m.message != nil {
		fields = append(fields, errorrecord.FieldMessage)
	}
	if m.context != nil {
		fields = append(fields, errorrecord.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, errorrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ErrorRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case errorrecord.FieldAppID:
		return m.AppID()
	case errorrecord.FieldTaskID:
		return m.TaskID()
	case errorrecord.FieldSource:
		return m.Source()
	case errorrecord.FieldKind:
		return m.Kind()
	case errorrecord.FieldMessage:
		return m.Message()
	case errorrecord.FieldContext:
		return m.Context()
	case errorrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ErrorRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case errorrecord.FieldAppID:
		return m.OldAppID(ctx)
	case errorrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case errorrecord.FieldSource:
		return m.OldSource(ctx)
	case errorrecord.FieldKind:
		return m.OldKind(ctx)
	case errorrecord.FieldMessage:
		return m.OldMessage(ctx)
	case errorrecord.FieldContext:
		return m.OldContext(ctx)
	case errorrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ErrorRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case errorrecord.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case errorrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case errorrecord.FieldSource:
		v, ok := value.(errorrecord.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case errorrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case errorrecord.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case errorrecord.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case errorrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ErrorRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ErrorRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ErrorRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ErrorRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(errorrecord.FieldTaskID) {
		fields = append(fields, errorrecord.FieldTaskID)
	}
	if m.FieldCleared(errorrecord.FieldContext) {
		fields = append(fields, errorrecord.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ErrorRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ErrorRecordMutation) ClearField(name string) error {
	switch name {
	case errorrecord.FieldTaskID:
		m.ClearTaskID()
		return nil
	case errorrecord.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown ErrorRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ErrorRecordMutation) ResetField(name string) error {
	switch name {
	case errorrecord.FieldAppID:
		m.ResetAppID()
		return nil
	case errorrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case errorrecord.FieldSource:
		m.ResetSource()
		return nil
	case errorrecord.FieldKind:
		m.ResetKind()
		return nil
	case errorrecord.FieldMessage:
		m.ResetMessage()
		return nil
	case errorrecord.FieldContext:
		m.ResetContext()
		return nil
	case errorrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ErrorRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ErrorRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, errorrecord.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ErrorRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case errorrecord.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ErrorRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ErrorRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ErrorRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, errorrecord.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ErrorRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case errorrecord.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ErrorRecordMutation) ClearEdge(name string) error {
	switch name {
	case errorrecord.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown ErrorRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ErrorRecordMutation) ResetEdge(name string) error {
	switch name {
	case errorrecord.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown ErrorRecord edge %s", name)
}

// HeartbeatMutation represents an operation that mutates the Heartbeat nodes in the graph.
type HeartbeatMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	name             *string
	query_template   *string
	cron_expression  *string
	timezone         *string
	context_template *map[string]interface{}
	webhook_url      *string
	is_active        *bool
	last_run_at      *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	app              *string
	clearedapp       bool
	runs             map[string]struct{}
	removedruns      map[string]struct{}
	clearedruns      bool
	done             bool
	oldValue         func(context.Context) (*Heartbeat, error)
	predicates       []predicate.Heartbeat
}

var _ ent.Mutation = (*HeartbeatMutation)(nil)

// heartbeatOption allows management of the mutation configuration using functional options.
type heartbeatOption func(*HeartbeatMutation)

// newHeartbeatMutation creates new mutation for the Heartbeat entity.
func newHeartbeatMutation(c config, op Op, opts ...heartbeatOption) *HeartbeatMutation {
	m := &HeartbeatMutation{
		config:        c,
		op:            op,
		typ:           TypeHeartbeat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHeartbeatID sets the ID field of the mutation.
func withHeartbeatID(id string) heartbeatOption {
	return func(m *HeartbeatMutation) {
		var (
			err   error
			once  sync.Once
			value *Heartbeat
		)
		m.oldValue = func(ctx context.Context) (*Heartbeat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Heartbeat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHeartbeat sets the old Heartbeat of the mutation.
func withHeartbeat(node *Heartbeat) heartbeatOption {
	return func(m *HeartbeatMutation) {
		m.oldValue = func(context.Context) (*Heartbeat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HeartbeatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HeartbeatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Heartbeat entities.
func (m *HeartbeatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HeartbeatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HeartbeatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Heartbeat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *HeartbeatMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *HeartbeatMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *HeartbeatMutation) ResetAppID() {
	m.app = nil
}

// SetUserID sets the "user_id" field.
func (m *HeartbeatMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *HeartbeatMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *HeartbeatMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[heartbeat.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *HeartbeatMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[heartbeat.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *HeartbeatMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, heartbeat.FieldUserID)
}

// SetName sets the "name" field.
func (m *HeartbeatMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HeartbeatMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *HeartbeatMutation) ResetName() {
	m.name = nil
}

// SetQueryTemplate sets the "query_template" field.
func (m *HeartbeatMutation) SetQueryTemplate(s string) {
	m.query_template = &s
}

// QueryTemplate returns the value of the "query_template" field in the mutation.
func (m *HeartbeatMutation) QueryTemplate() (r string, exists bool) {
	v := m.query_template
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryTemplate returns the old "query_template" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldQueryTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryTemplate: %w", err)
	}
	return oldValue.QueryTemplate, nil
}

// ResetQueryTemplate resets all changes to the "query_template" field.
func (m *HeartbeatMutation) ResetQueryTemplate() {
	m.query_template = nil
}

// SetCronExpression sets the "cron_expression" field.
func (m *HeartbeatMutation) SetCronExpression(s string) {
	m.cron_expression = &s
}

// CronExpression returns the value of the "cron_expression" field in the mutation.
func (m *HeartbeatMutation) CronExpression() (r string, exists bool) {
	v := m.cron_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpression returns the old "cron_expression" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldCronExpression(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpression: %w", err)
	}
	return oldValue.CronExpression, nil
}

// ResetCronExpression resets all changes to the "cron_expression" field.
func (m *HeartbeatMutation) ResetCronExpression() {
	m.cron_expression = nil
}

// SetTimezone sets the "timezone" field.
func (m *HeartbeatMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *HeartbeatMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *HeartbeatMutation) ResetTimezone() {
	m.timezone = nil
}

// SetContextTemplate sets the "context_template" field.
func (m *HeartbeatMutation) SetContextTemplate(value map[string]interface{}) {
	m.context_template = &value
}

// ContextTemplate returns the value of the "context_template" field in the mutation.
func (m *HeartbeatMutation) ContextTemplate() (r map[string]interface{}, exists bool) {
	v := m.context_template
	if v == nil {
		return
	}
	return *v, true
}

// OldContextTemplate returns the old "context_template" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldContextTemplate(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextTemplate: %w", err)
	}
	return oldValue.ContextTemplate, nil
}

// ClearContextTemplate clears the value of the "context_template" field.
func (m *HeartbeatMutation) ClearContextTemplate() {
	m.context_template = nil
	m.clearedFields[heartbeat.FieldContextTemplate] = struct{}{}
}

// ContextTemplateCleared returns if the "context_template" field was cleared in this mutation.
func (m *HeartbeatMutation) ContextTemplateCleared() bool {
	_, ok := m.clearedFields[heartbeat.FieldContextTemplate]
	return ok
}

// ResetContextTemplate resets all changes to the "context_template" field.
func (m *HeartbeatMutation) ResetContextTemplate() {
	m.context_template = nil
	delete(m.clearedFields, heartbeat.FieldContextTemplate)
}

// SetWebhookURL sets the "webhook_url" field.
func (m *HeartbeatMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *HeartbeatMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldWebhookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *HeartbeatMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[heartbeat.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *HeartbeatMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[heartbeat.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *HeartbeatMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, heartbeat.FieldWebhookURL)
}

// SetIsActive sets the "is_active" field.
func (m *HeartbeatMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *HeartbeatMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *HeartbeatMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastRunAt sets the "last_run_at" field.
func (m *HeartbeatMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *HeartbeatMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *HeartbeatMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[heartbeat.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *HeartbeatMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[heartbeat.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *HeartbeatMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, heartbeat.FieldLastRunAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *HeartbeatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HeartbeatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HeartbeatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HeartbeatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HeartbeatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Heartbeat entity.
// If the Heartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HeartbeatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *HeartbeatMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[heartbeat.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *HeartbeatMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *HeartbeatMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *HeartbeatMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// AddRunIDs adds the "runs" edge to the HeartbeatRun entity by ids.
func (m *HeartbeatMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the HeartbeatRun entity.
func (m *HeartbeatMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the HeartbeatRun entity was cleared.
func (m *HeartbeatMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the HeartbeatRun entity by IDs.
func (m *HeartbeatMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the HeartbeatRun entity.
func (m *HeartbeatMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *HeartbeatMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *HeartbeatMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the HeartbeatMutation builder.
func (m *HeartbeatMutation) Where(ps ...predicate.Heartbeat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HeartbeatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HeartbeatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Heartbeat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HeartbeatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HeartbeatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Heartbeat).
func (m *HeartbeatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HeartbeatMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.app != nil {
		fields = append(fields, heartbeat.FieldAppID)
	}
	if m.user_id != nil {
		fields = append(fields, heartbeat.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, heartbeat.FieldName)
	}
	if m.query_template != nil {
		fields = append(fields, heartbeat.FieldQueryTemplate)
	}
	if m.cron_expression != nil {
		fields = append(fields, heartbeat.FieldCronExpression)
	}
	if m.timezone != nil {
		fields = append(fields, heartbeat.FieldTimezone)
	}
	if m.context_template != nil {
		fields = append(fields, heartbeat.FieldContextTemplate)
	}
	if m.webhook_url != nil {
		fields = append(fields, heartbeat.FieldWebhookURL)
	}
	if m.is_active != nil {
		fields = append(fields, heartbeat.FieldIsActive)
	}
	if m.last_run_at != nil {
		fields = append(fields, heartbeat.FieldLastRunAt)
	}
	if m.created_at != nil {
		fields = append(fields, heartbeat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, heartbeat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HeartbeatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case heartbeat.FieldAppID:
		return m.AppID()
	case heartbeat.FieldUserID:
		return m.UserID()
	case heartbeat.FieldName:
		return m.Name()
	case heartbeat.FieldQueryTemplate:
		return m.QueryTemplate()
	case heartbeat.FieldCronExpression:
		return m.CronExpression()
	case heartbeat.FieldTimezone:
		return m.Timezone()
	case heartbeat.FieldContextTemplate:
		return m.ContextTemplate()
	case heartbeat.FieldWebhookURL:
		return m.WebhookURL()
	case heartbeat.FieldIsActive:
		return m.IsActive()
	case heartbeat.FieldLastRunAt:
		return m.LastRunAt()
	case heartbeat.FieldCreatedAt:
		return m.CreatedAt()
	case heartbeat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HeartbeatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case heartbeat.FieldAppID:
		return m.OldAppID(ctx)
	case heartbeat.FieldUserID:
		return m.OldUserID(ctx)
	case heartbeat.FieldName:
		return m.OldName(ctx)
	case heartbeat.FieldQueryTemplate:
		return m.OldQueryTemplate(ctx)
	case heartbeat.FieldCronExpression:
		return m.OldCronExpression(ctx)
	case heartbeat.FieldTimezone:
		return m.OldTimezone(ctx)
	case heartbeat.FieldContextTemplate:
		return m.OldContextTemplate(ctx)
	case heartbeat.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case heartbeat.FieldIsActive:
		return m.OldIsActive(ctx)
	case heartbeat.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case heartbeat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case heartbeat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Heartbeat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HeartbeatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case heartbeat.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case heartbeat.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case heartbeat.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case heartbeat.FieldQueryTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryTemplate(v)
		return nil
	case heartbeat.FieldCronExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpression(v)
		return nil
	case heartbeat.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case heartbeat.FieldContextTemplate:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextTemplate(v)
		return nil
	case heartbeat.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case heartbeat.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case heartbeat.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case heartbeat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case heartbeat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Heartbeat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HeartbeatMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HeartbeatMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HeartbeatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Heartbeat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HeartbeatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(heartbeat.FieldUserID) {
		fields = append(fields, heartbeat.FieldUserID)
	}
	if m.FieldCleared(heartbeat.FieldContextTemplate) {
		fields = append(fields, heartbeat.FieldContextTemplate)
	}
	if m.FieldCleared(heartbeat.FieldWebhookURL) {
		fields = append(fields, heartbeat.FieldWebhookURL)
	}
	if m.FieldCleared(heartbeat.FieldLastRunAt) {
		fields = append(fields, heartbeat.FieldLastRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HeartbeatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HeartbeatMutation) ClearField(name string) error {
	switch name {
	case heartbeat.FieldUserID:
		m.ClearUserID()
		return nil
	case heartbeat.FieldContextTemplate:
		m.ClearContextTemplate()
		return nil
	case heartbeat.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case heartbeat.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	}
	return fmt.Errorf("unknown Heartbeat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HeartbeatMutation) ResetField(name string) error {
	switch name {
	case heartbeat.FieldAppID:
		m.ResetAppID()
		return nil
	case heartbeat.FieldUserID:
		m.ResetUserID()
		return nil
	case heartbeat.FieldName:
		m.ResetName()
		return nil
	case heartbeat.FieldQueryTemplate:
		m.ResetQueryTemplate()
		return nil
	case heartbeat.FieldCronExpression:
		m.ResetCronExpression()
		return nil
	case heartbeat.FieldTimezone:
		m.ResetTimezone()
		return nil
	case heartbeat.FieldContextTemplate:
		m.ResetContextTemplate()
		return nil
	case heartbeat.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case heartbeat.FieldIsActive:
		m.ResetIsActive()
		return nil
	case heartbeat.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case heartbeat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case heartbeat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Heartbeat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HeartbeatMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.app != nil {
		edges = append(edges, heartbeat.EdgeApp)
	}
	if m.runs != nil {
		edges = append(edges, heartbeat.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HeartbeatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case heartbeat.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	case heartbeat.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HeartbeatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, heartbeat.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HeartbeatMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case heartbeat.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HeartbeatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapp {
		edges = append(edges, heartbeat.EdgeApp)
	}
	if m.clearedruns {
		edges = append(edges, heartbeat.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HeartbeatMutation) EdgeCleared(name string) bool {
	switch name {
	case heartbeat.EdgeApp:
		return m.clearedapp
	case heartbeat.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HeartbeatMutation) ClearEdge(name string) error {
	switch name {
	case heartbeat.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown Heartbeat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HeartbeatMutation) ResetEdge(name string) error {
	switch name {
	case heartbeat.EdgeApp:
		m.ResetApp()
		return nil
	case heartbeat.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Heartbeat edge %s", name)
}

// HeartbeatRunMutation represents an operation that mutates the HeartbeatRun nodes in the graph.
type HeartbeatRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	task_id          *string
	scheduled_for    *time.Time
	status           *heartbeatrun.Status
	error            *string
	created_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	heartbeat        *string
	clearedheartbeat bool
	done             bool
	oldValue         func(context.Context) (*HeartbeatRun, error)
	predicates       []predicate.HeartbeatRun
}

var _ ent.Mutation = (*HeartbeatRunMutation)(nil)

// heartbeatrunOption allows management of the mutation configuration using functional options.
type heartbeatrunOption func(*HeartbeatRunMutation)

// newHeartbeatRunMutation creates new mutation for the HeartbeatRun entity.
func newHeartbeatRunMutation(c config, op Op, opts ...heartbeatrunOption) *HeartbeatRunMutation {
	m := &HeartbeatRunMutation{
		config:        c,
		op:            op,
		typ:           TypeHeartbeatRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHeartbeatRunID sets the ID field of the mutation.
func withHeartbeatRunID(id string) heartbeatrunOption {
	return func(m *HeartbeatRunMutation) {
		var (
			err   error
			once  sync.Once
			value *HeartbeatRun
		)
		m.oldValue = func(ctx context.Context) (*HeartbeatRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HeartbeatRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHeartbeatRun sets the old HeartbeatRun of the mutation.
func withHeartbeatRun(node *HeartbeatRun) heartbeatrunOption {
	return func(m *HeartbeatRunMutation) {
		m.oldValue = func(context.Context) (*HeartbeatRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HeartbeatRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HeartbeatRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HeartbeatRun entities.
func (m *HeartbeatRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HeartbeatRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HeartbeatRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HeartbeatRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHeartbeatID sets the "heartbeat_id" field.
func (m *HeartbeatRunMutation) SetHeartbeatID(s string) {
	m.heartbeat = &s
}

// HeartbeatID returns the value of the "heartbeat_id" field in the mutation.
func (m *HeartbeatRunMutation) HeartbeatID() (r string, exists bool) {
	v := m.heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatID returns the old "heartbeat_id" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldHeartbeatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatID: %w", err)
	}
	return oldValue.HeartbeatID, nil
}

// ResetHeartbeatID resets all changes to the "heartbeat_id" field.
func (m *HeartbeatRunMutation) ResetHeartbeatID() {
	m.heartbeat = nil
}

// SetTaskID sets the "task_id" field.
func (m *HeartbeatRunMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *HeartbeatRunMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *HeartbeatRunMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[heartbeatrun.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *HeartbeatRunMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[heartbeatrun.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *HeartbeatRunMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, heartbeatrun.FieldTaskID)
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *HeartbeatRunMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *HeartbeatRunMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldScheduledFor(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *HeartbeatRunMutation) ResetScheduledFor() {
	m.scheduled_for = nil
}

// SetStatus sets the "status" field.
func (m *HeartbeatRunMutation) SetStatus(h heartbeatrun.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HeartbeatRunMutation) Status() (r heartbeatrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldStatus(ctx context.Context) (v heartbeatrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HeartbeatRunMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *HeartbeatRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *HeartbeatRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *HeartbeatRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[heartbeatrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *HeartbeatRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[heartbeatrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *HeartbeatRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, heartbeatrun.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *HeartbeatRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HeartbeatRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HeartbeatRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *HeartbeatRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *HeartbeatRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the HeartbeatRun entity.
// If the HeartbeatRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeartbeatRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *HeartbeatRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[heartbeatrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *HeartbeatRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[heartbeatrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *HeartbeatRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, heartbeatrun.FieldCompletedAt)
}

// ClearHeartbeat clears the "heartbeat" edge to the Heartbeat entity.
func (m *HeartbeatRunMutation) ClearHeartbeat() {
	m.clearedheartbeat = true
	m.clearedFields[heartbeatrun.FieldHeartbeatID] = struct{}{}
}

// HeartbeatCleared reports if the "heartbeat" edge to the Heartbeat entity was cleared.
func (m *HeartbeatRunMutation) HeartbeatCleared() bool {
	return m.clearedheartbeat
}

// HeartbeatIDs returns the "heartbeat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HeartbeatID instead. It exists only for internal usage by the builders.
func (m *HeartbeatRunMutation) HeartbeatIDs() (ids []string) {
	if id := m.heartbeat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHeartbeat resets all changes to the "heartbeat" edge.
func (m *HeartbeatRunMutation) ResetHeartbeat() {
	m.heartbeat = nil
	m.clearedheartbeat = false
}

// Where appends a list predicates to the HeartbeatRunMutation builder.
func (m *HeartbeatRunMutation) Where(ps ...predicate.HeartbeatRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HeartbeatRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HeartbeatRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HeartbeatRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HeartbeatRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HeartbeatRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HeartbeatRun).
func (m *HeartbeatRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HeartbeatRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.heartbeat != nil {
		fields = append(fields, heartbeatrun.FieldHeartbeatID)
	}
	if m.task_id != nil {
		fields = append(fields, heartbeatrun.FieldTaskID)
	}
	if m.scheduled_for != nil {
		fields = append(fields, heartbeatrun.FieldScheduledFor)
	}
	if m.status != nil {
		fields = append(fields, heartbeatrun.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, heartbeatrun.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, heartbeatrun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, heartbeatrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HeartbeatRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case heartbeatrun.FieldHeartbeatID:
		return m.HeartbeatID()
	case heartbeatrun.FieldTaskID:
		return m.TaskID()
	case heartbeatrun.FieldScheduledFor:
		return m.ScheduledFor()
	case heartbeatrun.FieldStatus:
		return m.Status()
	case heartbeatrun.FieldError:
		return m.Error()
	case heartbeatrun.FieldCreatedAt:
		return m.CreatedAt()
	case heartbeatrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HeartbeatRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case heartbeatrun.FieldHeartbeatID:
		return m.OldHeartbeatID(ctx)
	case heartbeatrun.FieldTaskID:
		return m.OldTaskID(ctx)
	case heartbeatrun.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case heartbeatrun.FieldStatus:
		return m.OldStatus(ctx)
	case heartbeatrun.FieldError:
		return m.OldError(ctx)
	case heartbeatrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case heartbeatrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HeartbeatRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HeartbeatRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case heartbeatrun.FieldHeartbeatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatID(v)
		return nil
	case heartbeatrun.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case heartbeatrun.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case heartbeatrun.FieldStatus:
		v, ok := value.(heartbeatrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case heartbeatrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case heartbeatrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case heartbeatrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HeartbeatRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HeartbeatRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HeartbeatRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HeartbeatRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HeartbeatRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HeartbeatRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(heartbeatrun.FieldTaskID) {
		fields = append(fields, heartbeatrun.FieldTaskID)
	}
	if m.FieldCleared(heartbeatrun.FieldError) {
		fields = append(fields, heartbeatrun.FieldError)
	}
	if m.FieldCleared(heartbeatrun.FieldCompletedAt) {
		fields = append(fields, heartbeatrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HeartbeatRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HeartbeatRunMutation) ClearField(name string) error {
	switch name {
	case heartbeatrun.FieldTaskID:
		m.ClearTaskID()
		return nil
	case heartbeatrun.FieldError:
		m.ClearError()
		return nil
	case heartbeatrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown HeartbeatRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HeartbeatRunMutation) ResetField(name string) error {
	switch name {
	case heartbeatrun.FieldHeartbeatID:
		m.ResetHeartbeatID()
		return nil
	case heartbeatrun.FieldTaskID:
		m.ResetTaskID()
		return nil
	case heartbeatrun.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case heartbeatrun.FieldStatus:
		m.ResetStatus()
		return nil
	case heartbeatrun.FieldError:
		m.ResetError()
		return nil
	case heartbeatrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case heartbeatrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown HeartbeatRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HeartbeatRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.heartbeat != nil {
		edges = append(edges, heartbeatrun.EdgeHeartbeat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HeartbeatRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case heartbeatrun.EdgeHeartbeat:
		if id := m.heartbeat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HeartbeatRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HeartbeatRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HeartbeatRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedheartbeat {
		edges = append(edges, heartbeatrun.EdgeHeartbeat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HeartbeatRunMutation) EdgeCleared(name string) bool {
	switch name {
	case heartbeatrun.EdgeHeartbeat:
		return m.clearedheartbeat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HeartbeatRunMutation) ClearEdge(name string) error {
	switch name {
	case heartbeatrun.EdgeHeartbeat:
		m.ClearHeartbeat()
		return nil
	}
	return fmt.Errorf("unknown HeartbeatRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HeartbeatRunMutation) ResetEdge(name string) error {
	switch name {
	case heartbeatrun.EdgeHeartbeat:
		m.ResetHeartbeat()
		return nil
	}
	return fmt.Errorf("unknown HeartbeatRun edge %s", name)
}

// KnowledgeEntryMutation represents an operation that mutates the KnowledgeEntry nodes in the graph.
type KnowledgeEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	topic         *string
	content       *string
	version       *int
	addversion    *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	app           *string
	clearedapp    bool
	done          bool
	oldValue      func(context.Context) (*KnowledgeEntry, error)
	predicates    []predicate.KnowledgeEntry
}

var _ ent.Mutation = (*KnowledgeEntryMutation)(nil)

// knowledgeentryOption allows management of the mutation configuration using functional options.
type knowledgeentryOption func(*KnowledgeEntryMutation)

// newKnowledgeEntryMutation creates new mutation for the KnowledgeEntry entity.
func newKnowledgeEntryMutation(c config, op Op, opts ...knowledgeentryOption) *KnowledgeEntryMutation {
	m := &KnowledgeEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeEntryID sets the ID field of the mutation.
func withKnowledgeEntryID(id string) knowledgeentryOption {
	return func(m *KnowledgeEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeEntry
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeEntry sets the old KnowledgeEntry of the mutation.
func withKnowledgeEntry(node *KnowledgeEntry) knowledgeentryOption {
	return func(m *KnowledgeEntryMutation) {
		m.oldValue = func(context.Context) (*KnowledgeEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeEntry entities.
func (m *KnowledgeEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *KnowledgeEntryMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *KnowledgeEntryMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *KnowledgeEntryMutation) ResetAppID() {
	m.app = nil
}

// SetTopic sets the "topic" field.
func (m *KnowledgeEntryMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *KnowledgeEntryMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *KnowledgeEntryMutation) ResetTopic() {
	m.topic = nil
}

// SetContent sets the "content" field.
func (m *KnowledgeEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeEntryMutation) ResetContent() {
	m.content = nil
}

// SetVersion sets the "version" field.
func (m *KnowledgeEntryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *KnowledgeEntryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *KnowledgeEntryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *KnowledgeEntryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *KnowledgeEntryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnowledgeEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnowledgeEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnowledgeEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *KnowledgeEntryMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[knowledgeentry.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *KnowledgeEntryMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *KnowledgeEntryMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *KnowledgeEntryMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the KnowledgeEntryMutation builder.
func (m *KnowledgeEntryMutation) Where(ps ...predicate.KnowledgeEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeEntry).
func (m *KnowledgeEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.app != nil {
		fields = append(fields, knowledgeentry.FieldAppID)
	}
	if m.topic != nil {
		fields = append(fields, knowledgeentry.FieldTopic)
	}
	if m.content != nil {
		fields = append(fields, knowledgeentry.FieldContent)
	}
	if m.version != nil {
		fields = append(fields, knowledgeentry.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgeentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowledgeentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeentry.FieldAppID:
		return m.AppID()
	case knowledgeentry.FieldTopic:
		return m.Topic()
	case knowledgeentry.FieldContent:
		return m.Content()
	case knowledgeentry.FieldVersion:
		return m.Version()
	case knowledgeentry.FieldCreatedAt:
		return m.CreatedAt()
	case knowledgeentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeentry.FieldAppID:
		return m.OldAppID(ctx)
	case knowledgeentry.FieldTopic:
		return m.OldTopic(ctx)
	case knowledgeentry.FieldContent:
		return m.OldContent(ctx)
	case knowledgeentry.FieldVersion:
		return m.OldVersion(ctx)
	case knowledgeentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowledgeentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeentry.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case knowledgeentry.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case knowledgeentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgeentry.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case knowledgeentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowledgeentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeEntryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, knowledgeentry.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgeentry.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgeentry.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KnowledgeEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeEntryMutation) ResetField(name string) error {
	switch name {
	case knowledgeentry.FieldAppID:
		m.ResetAppID()
		return nil
	case knowledgeentry.FieldTopic:
		m.ResetTopic()
		return nil
	case knowledgeentry.FieldContent:
		m.ResetContent()
		return nil
	case knowledgeentry.FieldVersion:
		m.ResetVersion()
		return nil
	case knowledgeentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowledgeentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, knowledgeentry.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgeentry.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, knowledgeentry.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgeentry.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeEntryMutation) ClearEdge(name string) error {
	switch name {
	case knowledgeentry.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeEntryMutation) ResetEdge(name string) error {
	switch name {
	case knowledgeentry.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry edge %s", name)
}

// KnowledgeSyncStateMutation represents an operation that mutates the KnowledgeSyncState nodes in the graph.
type KnowledgeSyncStateMutation struct {
	config
	op              Op
	typ             string
	id              *string
	room_id         *string
	last_version    *int
	addlast_version *int
	synced_at       *time.Time
	clearedFields   map[string]struct{}
	app             *string
	clearedapp      bool
	done            bool
	oldValue        func(context.Context) (*KnowledgeSyncState, error)
	predicates      []predicate.KnowledgeSyncState
}

var _ ent.Mutation = (*KnowledgeSyncStateMutation)(nil)

// knowledgesyncstateOption allows management of the mutation configuration using functional options.
type knowledgesyncstateOption func(*KnowledgeSyncStateMutation)

// newKnowledgeSyncStateMutation creates new mutation for the KnowledgeSyncState entity.
func newKnowledgeSyncStateMutation(c config, op Op, opts ...knowledgesyncstateOption) *KnowledgeSyncStateMutation {
	m := &KnowledgeSyncStateMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeSyncState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeSyncStateID sets the ID field of the mutation.
func withKnowledgeSyncStateID(id string) knowledgesyncstateOption {
	return func(m *KnowledgeSyncStateMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeSyncState
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeSyncState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeSyncState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeSyncState sets the old KnowledgeSyncState of the mutation.
func withKnowledgeSyncState(node *KnowledgeSyncState) knowledgesyncstateOption {
	return func(m *KnowledgeSyncStateMutation) {
		m.oldValue = func(context.Context) (*KnowledgeSyncState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeSyncStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeSyncStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeSyncState entities.
func (m *KnowledgeSyncStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeSyncStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeSyncStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeSyncState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoomID sets the "room_id" field.
func (m *KnowledgeSyncStateMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *KnowledgeSyncStateMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the KnowledgeSyncState entity.
// If the KnowledgeSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeSyncStateMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *KnowledgeSyncStateMutation) ResetRoomID() {
	m.room_id = nil
}

// SetAppID sets the "app_id" field.
func (m *KnowledgeSyncStateMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *KnowledgeSyncStateMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the KnowledgeSyncState entity.
// If the KnowledgeSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeSyncStateMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *KnowledgeSyncStateMutation) ResetAppID() {
	m.app = nil
}

// SetLastVersion sets the "last_version" field.
func (m *KnowledgeSyncStateMutation) SetLastVersion(i int) {
	m.last_version = &i
	m.addlast_version = nil
}

// LastVersion returns the value of the "last_version" field in the mutation.
func (m *KnowledgeSyncStateMutation) LastVersion() (r int, exists bool) {
	v := m.last_version
	if v == nil {
		return
	}
	return *v, true
}

// OldLastVersion returns the old "last_version" field's value of the KnowledgeSyncState entity.
// If the KnowledgeSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeSyncStateMutation) OldLastVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastVersion: %w", err)
	}
	return oldValue.LastVersion, nil
}

// AddLastVersion adds i to the "last_version" field.
func (m *KnowledgeSyncStateMutation) AddLastVersion(i int) {
	if m.addlast_version != nil {
		*m.addlast_version += i
	} else {
		m.addlast_version = &i
	}
}

// AddedLastVersion returns the value that was added to the "last_version" field in this mutation.
func (m *KnowledgeSyncStateMutation) AddedLastVersion() (r int, exists bool) {
	v := m.addlast_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastVersion resets all changes to the "last_version" field.
func (m *KnowledgeSyncStateMutation) ResetLastVersion() {
	m.last_version = nil
	m.addlast_version = nil
}

// SetSyncedAt sets the "synced_at" field.
func (m *KnowledgeSyncStateMutation) SetSyncedAt(t time.Time) {
	m.synced_at = &t
}

// SyncedAt returns the value of the "synced_at" field in the mutation.
func (m *KnowledgeSyncStateMutation) SyncedAt() (r time.Time, exists bool) {
	v := m.synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncedAt returns the old "synced_at" field's value of the KnowledgeSyncState entity.
// If the KnowledgeSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeSyncStateMutation) OldSyncedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncedAt: %w", err)
	}
	return oldValue.SyncedAt, nil
}

// ResetSyncedAt resets all changes to the "synced_at" field.
func (m *KnowledgeSyncStateMutation) ResetSyncedAt() {
	m.synced_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *KnowledgeSyncStateMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[knowledgesyncstate.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *KnowledgeSyncStateMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *KnowledgeSyncStateMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *KnowledgeSyncStateMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the KnowledgeSyncStateMutation builder.
func (m *KnowledgeSyncStateMutation) Where(ps ...predicate.KnowledgeSyncState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeSyncStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeSyncStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeSyncState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeSyncStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeSyncStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeSyncState).
func (m *KnowledgeSyncStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeSyncStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.room_id != nil {
		fields = append(fields, knowledgesyncstate.FieldRoomID)
	}
	if m.app != nil {
		fields = append(fields, knowledgesyncstate.FieldAppID)
	}
	if m.last_version != nil {
		fields = append(fields, knowledgesyncstate.FieldLastVersion)
	}
	if m.synced_at != nil {
		fields = append(fields, knowledgesyncstate.FieldSyncedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeSyncStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgesyncstate.FieldRoomID:
		return m.RoomID()
	case knowledgesyncstate.FieldAppID:
		return m.AppID()
	case knowledgesyncstate.FieldLastVersion:
		return m.LastVersion()
	case knowledgesyncstate.FieldSyncedAt:
		return m.SyncedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeSyncStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgesyncstate.FieldRoomID:
		return m.OldRoomID(ctx)
	case knowledgesyncstate.FieldAppID:
		return m.OldAppID(ctx)
	case knowledgesyncstate.FieldLastVersion:
		return m.OldLastVersion(ctx)
	case knowledgesyncstate.FieldSyncedAt:
		return m.OldSyncedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeSyncState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeSyncStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgesyncstate.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case knowledgesyncstate.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case knowledgesyncstate.FieldLastVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastVersion(v)
		return nil
	case knowledgesyncstate.FieldSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeSyncState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeSyncStateMutation) AddedFields() []string {
	var fields []string
	if m.addlast_version != nil {
		fields = append(fields, knowledgesyncstate.FieldLastVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeSyncStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case knowledgesyncstate.FieldLastVersion:
		return m.AddedLastVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeSyncStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case knowledgesyncstate.FieldLastVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastVersion(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeSyncState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeSyncStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeSyncStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeSyncStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KnowledgeSyncState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeSyncStateMutation) ResetField(name string) error {
	switch name {
	case knowledgesyncstate.FieldRoomID:
		m.ResetRoomID()
		return nil
	case knowledgesyncstate.FieldAppID:
		m.ResetAppID()
		return nil
	case knowledgesyncstate.FieldLastVersion:
		m.ResetLastVersion()
		return nil
	case knowledgesyncstate.FieldSyncedAt:
		m.ResetSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeSyncState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeSyncStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, knowledgesyncstate.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeSyncStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgesyncstate.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeSyncStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeSyncStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeSyncStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, knowledgesyncstate.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeSyncStateMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgesyncstate.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeSyncStateMutation) ClearEdge(name string) error {
	switch name {
	case knowledgesyncstate.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeSyncState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeSyncStateMutation) ResetEdge(name string) error {
	switch name {
	case knowledgesyncstate.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeSyncState edge %s", name)
}

// NotificationChannelMutation represents an operation that mutates the NotificationChannel nodes in the graph.
type NotificationChannelMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	kind          *notificationchannel.Kind
	target        *string
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	app           *string
	clearedapp    bool
	done          bool
	oldValue      func(context.Context) (*NotificationChannel, error)
	predicates    []predicate.NotificationChannel
}

var _ ent.Mutation = (*NotificationChannelMutation)(nil)

// notificationchannelOption allows management of the mutation configuration using functional options.
type notificationchannelOption func(*NotificationChannelMutation)

// newNotificationChannelMutation creates new mutation for the NotificationChannel entity.
func newNotificationChannelMutation(c config, op Op, opts ...notificationchannelOption) *NotificationChannelMutation {
	m := &NotificationChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationChannelID sets the ID field of the mutation.
func withNotificationChannelID(id string) notificationchannelOption {
	return func(m *NotificationChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationChannel
		)
		m.oldValue = func(ctx context.Context) (*NotificationChannel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationChannel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationChannel sets the old NotificationChannel of the mutation.
func withNotificationChannel(node *NotificationChannel) notificationchannelOption {
	return func(m *NotificationChannelMutation) {
		m.oldValue = func(context.Context) (*NotificationChannel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationChannel entities.
func (m *NotificationChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationChannel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *NotificationChannelMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *NotificationChannelMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *NotificationChannelMutation) ResetAppID() {
	m.app = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationChannelMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationChannelMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationChannelMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *NotificationChannelMutation) SetKind(n notificationchannel.Kind) {
	m.kind = &n
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationChannelMutation) Kind() (r notificationchannel.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldKind(ctx context.Context) (v notificationchannel.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationChannelMutation) ResetKind() {
	m.kind = nil
}

// SetTarget sets the "target" field.
func (m *NotificationChannelMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *NotificationChannelMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *NotificationChannelMutation) ResetTarget() {
	m.target = nil
}

// SetIsActive sets the "is_active" field.
func (m *NotificationChannelMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *NotificationChannelMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *NotificationChannelMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *NotificationChannelMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[notificationchannel.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *NotificationChannelMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *NotificationChannelMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *NotificationChannelMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the NotificationChannelMutation builder.
func (m *NotificationChannelMutation) Where(ps ...predicate.NotificationChannel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationChannel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationChannel).
func (m *NotificationChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationChannelMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.app != nil {
		fields = append(fields, notificationchannel.FieldAppID)
	}
	if m.user_id != nil {
		fields = append(fields, notificationchannel.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, notificationchannel.FieldKind)
	}
	if m.target != nil {
		fields = append(fields, notificationchannel.FieldTarget)
	}
	if m.is_active != nil {
		fields = append(fields, notificationchannel.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, notificationchannel.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationchannel.FieldAppID:
		return m.AppID()
	case notificationchannel.FieldUserID:
		return m.UserID()
	case notificationchannel.FieldKind:
		return m.Kind()
	case notificationchannel.FieldTarget:
		return m.Target()
	case notificationchannel.FieldIsActive:
		return m.IsActive()
	case notificationchannel.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationchannel.FieldAppID:
		return m.OldAppID(ctx)
	case notificationchannel.FieldUserID:
		return m.OldUserID(ctx)
	case notificationchannel.FieldKind:
		return m.OldKind(ctx)
	case notificationchannel.FieldTarget:
		return m.OldTarget(ctx)
	case notificationchannel.FieldIsActive:
		return m.OldIsActive(ctx)
	case notificationchannel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationChannel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationchannel.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case notificationchannel.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationchannel.FieldKind:
		v, ok := value.(notificationchannel.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notificationchannel.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case notificationchannel.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case notificationchannel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationChannel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationChannelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationChannelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NotificationChannel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationChannelMutation) ResetField(name string) error {
	switch name {
	case notificationchannel.FieldAppID:
		m.ResetAppID()
		return nil
	case notificationchannel.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationchannel.FieldKind:
		m.ResetKind()
		return nil
	case notificationchannel.FieldTarget:
		m.ResetTarget()
		return nil
	case notificationchannel.FieldIsActive:
		m.ResetIsActive()
		return nil
	case notificationchannel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, notificationchannel.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notificationchannel.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationChannelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, notificationchannel.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case notificationchannel.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationChannelMutation) ClearEdge(name string) error {
	switch name {
	case notificationchannel.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationChannelMutation) ResetEdge(name string) error {
	switch name {
	case notificationchannel.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel edge %s", name)
}

// NotificationHistoryMutation represents an operation that mutates the NotificationHistory nodes in the graph.
type NotificationHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	task_id       *string
	channel_kind  *string
	status        *notificationhistory.Status
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	app           *string
	clearedapp    bool
	done          bool
	oldValue      func(context.Context) (*NotificationHistory, error)
	predicates    []predicate.NotificationHistory
}

var _ ent.Mutation = (*NotificationHistoryMutation)(nil)

// notificationhistoryOption allows management of the mutation configuration using functional options.
type notificationhistoryOption func(*NotificationHistoryMutation)

// newNotificationHistoryMutation creates new mutation for the NotificationHistory entity.
func newNotificationHistoryMutation(c config, op Op, opts ...notificationhistoryOption) *NotificationHistoryMutation {
	m := &NotificationHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationHistoryID sets the ID field of the mutation.
func withNotificationHistoryID(id string) notificationhistoryOption {
	return func(m *NotificationHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationHistory
		)
		m.oldValue = func(ctx context.Context) (*NotificationHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationHistory sets the old NotificationHistory of the mutation.
func withNotificationHistory(node *NotificationHistory) notificationhistoryOption {
	return func(m *NotificationHistoryMutation) {
		m.oldValue = func(context.Context) (*NotificationHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationHistory entities.
func (m *NotificationHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *NotificationHistoryMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *NotificationHistoryMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *NotificationHistoryMutation) ResetAppID() {
	m.app = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationHistoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationHistoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationHistoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *NotificationHistoryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *NotificationHistoryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *NotificationHistoryMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[notificationhistory.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *NotificationHistoryMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[notificationhistory.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *NotificationHistoryMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, notificationhistory.FieldTaskID)
}

// SetChannelKind sets the "channel_kind" field.
func (m *NotificationHistoryMutation) SetChannelKind(s string) {
	m.channel_kind = &s
}

// ChannelKind returns the value of the "channel_kind" field in the mutation.
func (m *NotificationHistoryMutation) ChannelKind() (r string, exists bool) {
	v := m.channel_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelKind returns the old "channel_kind" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldChannelKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelKind: %w", err)
	}
	return oldValue.ChannelKind, nil
}

// ResetChannelKind resets all changes to the "channel_kind" field.
func (m *NotificationHistoryMutation) ResetChannelKind() {
	m.channel_kind = nil
}

// SetStatus sets the "status" field.
func (m *NotificationHistoryMutation) SetStatus(n notificationhistory.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NotificationHistoryMutation) Status() (r notificationhistory.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldStatus(ctx context.Context) (v notificationhistory.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NotificationHistoryMutation) ResetStatus() {
	m.status = nil
}

// SetDetail sets the "detail" field.
func (m *NotificationHistoryMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *NotificationHistoryMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *NotificationHistoryMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[notificationhistory.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *NotificationHistoryMutation) DetailCleared() bool {
	_, ok := m.clearedFields[notificationhistory.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *NotificationHistoryMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, notificationhistory.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationHistory entity.
// If the NotificationHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *NotificationHistoryMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[notificationhistory.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *NotificationHistoryMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *NotificationHistoryMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *NotificationHistoryMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the NotificationHistoryMutation builder.
func (m *NotificationHistoryMutation) Where(ps ...predicate.NotificationHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationHistory).
func (m *NotificationHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationHistoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.app != nil {
		fields = append(fields, notificationhistory.FieldAppID)
	}
	if m.user_id != nil {
		fields = append(fields, notificationhistory.FieldUserID)
	}
	if m.task_id != nil {
		fields = append(fields, notificationhistory.FieldTaskID)
	}
	if m.channel_kind != nil {
		fields = append(fields, notificationhistory.FieldChannelKind)
	}
	if m.status != nil {
		fields = append(fields, notificationhistory.FieldStatus)
	}
	if m.detail != nil {
		fields = append(fields, notificationhistory.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, notificationhistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationhistory.FieldAppID:
		return m.AppID()
	case notificationhistory.FieldUserID:
		return m.UserID()
	case notificationhistory.FieldTaskID:
		return m.TaskID()
	case notificationhistory.FieldChannelKind:
		return m.ChannelKind()
	case notificationhistory.FieldStatus:
		return m.Status()
	case notificationhistory.FieldDetail:
		return m.Detail()
	case notificationhistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationhistory.FieldAppID:
		return m.OldAppID(ctx)
	case notificationhistory.FieldUserID:
		return m.OldUserID(ctx)
	case notificationhistory.FieldTaskID:
		return m.OldTaskID(ctx)
	case notificationhistory.FieldChannelKind:
		return m.OldChannelKind(ctx)
	case notificationhistory.FieldStatus:
		return m.OldStatus(ctx)
	case notificationhistory.FieldDetail:
		return m.OldDetail(ctx)
	case notificationhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationhistory.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case notificationhistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationhistory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case notificationhistory.FieldChannelKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelKind(v)
		return nil
	case notificationhistory.FieldStatus:
		v, ok := value.(notificationhistory.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case notificationhistory.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case notificationhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationhistory.FieldTaskID) {
		fields = append(fields, notificationhistory.FieldTaskID)
	}
	if m.FieldCleared(notificationhistory.FieldDetail) {
		fields = append(fields, notificationhistory.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationHistoryMutation) ClearField(name string) error {
	switch name {
	case notificationhistory.FieldTaskID:
		m.ClearTaskID()
		return nil
	case notificationhistory.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown NotificationHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationHistoryMutation) ResetField(name string) error {
	switch name {
	case notificationhistory.FieldAppID:
		m.ResetAppID()
		return nil
	case notificationhistory.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationhistory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case notificationhistory.FieldChannelKind:
		m.ResetChannelKind()
		return nil
	case notificationhistory.FieldStatus:
		m.ResetStatus()
		return nil
	case notificationhistory.FieldDetail:
		m.ResetDetail()
		return nil
	case notificationhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, notificationhistory.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notificationhistory.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, notificationhistory.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case notificationhistory.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationHistoryMutation) ClearEdge(name string) error {
	switch name {
	case notificationhistory.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown NotificationHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationHistoryMutation) ResetEdge(name string) error {
	switch name {
	case notificationhistory.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown NotificationHistory edge %s", name)
}

// NotificationPreferenceMutation represents an operation that mutates the NotificationPreference nodes in the graph.
type NotificationPreferenceMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	enabled              *bool
	quiet_hours_start    *int
	addquiet_hours_start *int
	quiet_hours_end      *int
	addquiet_hours_end   *int
	outcomes             *[]string
	appendoutcomes       []string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	app                  *string
	clearedapp           bool
	done                 bool
	oldValue             func(context.Context) (*NotificationPreference, error)
	predicates           []predicate.NotificationPreference
}

var _ ent.Mutation = (*NotificationPreferenceMutation)(nil)

// notificationpreferenceOption allows management of the mutation configuration using functional options.
type notificationpreferenceOption func(*NotificationPreferenceMutation)

// newNotificationPreferenceMutation creates new mutation for the NotificationPreference entity.
func newNotificationPreferenceMutation(c config, op Op, opts ...notificationpreferenceOption) *NotificationPreferenceMutation {
	m := &NotificationPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationPreferenceID sets the ID field of the mutation.
func withNotificationPreferenceID(id string) notificationpreferenceOption {
	return func(m *NotificationPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationPreference
		)
		m.oldValue = func(ctx context.Context) (*NotificationPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationPreference sets the old NotificationPreference of the mutation.
func withNotificationPreference(node *NotificationPreference) notificationpreferenceOption {
	return func(m *NotificationPreferenceMutation) {
		m.oldValue = func(context.Context) (*NotificationPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationPreference entities.
func (m *NotificationPreferenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationPreferenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationPreferenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *NotificationPreferenceMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *NotificationPreferenceMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *NotificationPreferenceMutation) ResetAppID() {
	m.app = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationPreferenceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationPreferenceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationPreferenceMutation) ResetUserID() {
	m.user_id = nil
}

// SetEnabled sets the "enabled" field.
func (m *NotificationPreferenceMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *NotificationPreferenceMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *NotificationPreferenceMutation) ResetEnabled() {
	m.enabled = nil
}

// SetQuietHoursStart sets the "quiet_hours_start" field.
func (m *NotificationPreferenceMutation) SetQuietHoursStart(i int) {
	m.quiet_hours_start = &i
	m.addquiet_hours_start = nil
}

// QuietHoursStart returns the value of the "quiet_hours_start" field in the mutation.
func (m *NotificationPreferenceMutation) QuietHoursStart() (r int, exists bool) {
	v := m.quiet_hours_start
	if v == nil {
		return
	}
	return *v, true
}

// OldQuietHoursStart returns the old "quiet_hours_start" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldQuietHoursStart(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuietHoursStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuietHoursStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuietHoursStart: %w", err)
	}
	return oldValue.QuietHoursStart, nil
}

// AddQuietHoursStart adds i to the "quiet_hours_start" field.
func (m *NotificationPreferenceMutation) AddQuietHoursStart(i int) {
	if m.addquiet_hours_start != nil {
		*m.addquiet_hours_start += i
	} else {
		m.addquiet_hours_start = &i
	}
}

// AddedQuietHoursStart returns the value that was added to the "quiet_hours_start" field in this mutation.
func (m *NotificationPreferenceMutation) AddedQuietHoursStart() (r int, exists bool) {
	v := m.addquiet_hours_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuietHoursStart clears the value of the "quiet_hours_start" field.
func (m *NotificationPreferenceMutation) ClearQuietHoursStart() {
	m.quiet_hours_start = nil
	m.addquiet_hours_start = nil
	m.clearedFields[notificationpreference.FieldQuietHoursStart] = struct{}{}
}

// QuietHoursStartCleared returns if the "quiet_hours_start" field was cleared in this mutation.
func (m *NotificationPreferenceMutation) QuietHoursStartCleared() bool {
	_, ok := m.clearedFields[notificationpreference.FieldQuietHoursStart]
	return ok
}

// ResetQuietHoursStart resets all changes to the "quiet_hours_start" field.
func (m *NotificationPreferenceMutation) ResetQuietHoursStart() {
	m.quiet_hours_start = nil
	m.addquiet_hours_start = nil
	delete(m.clearedFields, notificationpreference.FieldQuietHoursStart)
}

// SetQuietHoursEnd sets the "quiet_hours_end" field.
func (m *NotificationPreferenceMutation) SetQuietHoursEnd(i int) {
	m.quiet_hours_end = &i
	m.addquiet_hours_end = nil
}

// QuietHoursEnd returns the value of the "quiet_hours_end" field in the mutation.
func (m *NotificationPreferenceMutation) QuietHoursEnd() (r int, exists bool) {
	v := m.quiet_hours_end
	if v == nil {
		return
	}
	return *v, true
}

// OldQuietHoursEnd returns the old "quiet_hours_end" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldQuietHoursEnd(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuietHoursEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuietHoursEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuietHoursEnd: %w", err)
	}
	return oldValue.QuietHoursEnd, nil
}

// AddQuietHoursEnd adds i to the "quiet_hours_end" field.
func (m *NotificationPreferenceMutation) AddQuietHoursEnd(i int) {
	if m.addquiet_hours_end != nil {
		*m.addquiet_hours_end += i
	} else {
		m.addquiet_hours_end = &i
	}
}

// AddedQuietHoursEnd returns the value that was added to the "quiet_hours_end" field in this mutation.
func (m *NotificationPreferenceMutation) AddedQuietHoursEnd() (r int, exists bool) {
	v := m.addquiet_hours_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuietHoursEnd clears the value of the "quiet_hours_end" field.
func (m *NotificationPreferenceMutation) ClearQuietHoursEnd() {
	m.quiet_hours_end = nil
	m.addquiet_hours_end = nil
	m.clearedFields[notificationpreference.FieldQuietHoursEnd] = struct{}{}
}

// QuietHoursEndCleared returns if the "quiet_hours_end" field was cleared in this mutation.
func (m *NotificationPreferenceMutation) QuietHoursEndCleared() bool {
	_, ok := m.clearedFields[notificationpreference.FieldQuietHoursEnd]
	return ok
}

// ResetQuietHoursEnd resets all changes to the "quiet_hours_end" field.
func (m *NotificationPreferenceMutation) ResetQuietHoursEnd() {
	m.quiet_hours_end = nil
	m.addquiet_hours_end = nil
	delete(m.clearedFields, notificationpreference.FieldQuietHoursEnd)
}

// SetOutcomes sets the "outcomes" field.
func (m *NotificationPreferenceMutation) SetOutcomes(s []string) {
	m.outcomes = &s
	m.appendoutcomes = nil
}

// Outcomes returns the value of the "outcomes" field in the mutation.
func (m *NotificationPreferenceMutation) Outcomes() (r []string, exists bool) {
	v := m.outcomes
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomes returns the old "outcomes" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldOutcomes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomes: %w", err)
	}
	return oldValue.Outcomes, nil
}

// AppendOutcomes adds s to the "outcomes" field.
func (m *NotificationPreferenceMutation) AppendOutcomes(s []string) {
	m.appendoutcomes = append(m.appendoutcomes, s...)
}

// AppendedOutcomes returns the list of values that were appended to the "outcomes" field in this mutation.
func (m *NotificationPreferenceMutation) AppendedOutcomes() ([]string, bool) {
	if len(m.appendoutcomes) == 0 {
		return nil, false
	}
	return m.appendoutcomes, true
}

// ClearOutcomes clears the value of the "outcomes" field.
func (m *NotificationPreferenceMutation) ClearOutcomes() {
	m.outcomes = nil
	m.appendoutcomes = nil
	m.clearedFields[notificationpreference.FieldOutcomes] = struct{}{}
}

// OutcomesCleared returns if the "outcomes" field was cleared in this mutation.
func (m *NotificationPreferenceMutation) OutcomesCleared() bool {
	_, ok := m.clearedFields[notificationpreference.FieldOutcomes]
	return ok
}

// ResetOutcomes resets all changes to the "outcomes" field.
func (m *NotificationPreferenceMutation) ResetOutcomes() {
	m.outcomes = nil
	m.appendoutcomes = nil
	delete(m.clearedFields, notificationpreference.FieldOutcomes)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationPreferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationPreferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationPreferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationPreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationPreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationPreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *NotificationPreferenceMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[notificationpreference.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *NotificationPreferenceMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *NotificationPreferenceMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *NotificationPreferenceMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the NotificationPreferenceMutation builder.
func (m *NotificationPreferenceMutation) Where(ps ...predicate.NotificationPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationPreference).
func (m *NotificationPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.app != nil {
		fields = append(fields, notificationpreference.FieldAppID)
	}
	if m.user_id != nil {
		fields = append(fields, notificationpreference.FieldUserID)
	}
	if m.enabled != nil {
		fields = append(fields, notificationpreference.FieldEnabled)
	}
	if m.quiet_hours_start != nil {
		fields = append(fields, notificationpreference.FieldQuietHoursStart)
	}
	if m.quiet_hours_end != nil {
		fields = append(fields, notificationpreference.FieldQuietHoursEnd)
	}
	if m.outcomes != nil {
		fields = append(fields, notificationpreference.FieldOutcomes)
	}
	if m.created_at != nil {
		fields = append(fields, notificationpreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationpreference.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationpreference.FieldAppID:
		return m.AppID()
	case notificationpreference.FieldUserID:
		return m.UserID()
	case notificationpreference.FieldEnabled:
		return m.Enabled()
	case notificationpreference.FieldQuietHoursStart:
		return m.QuietHoursStart()
	case notificationpreference.FieldQuietHoursEnd:
		return m.QuietHoursEnd()
	case notificationpreference.FieldOutcomes:
		return m.Outcomes()
	case notificationpreference.FieldCreatedAt:
		return m.CreatedAt()
	case notificationpreference.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationpreference.FieldAppID:
		return m.OldAppID(ctx)
	case notificationpreference.FieldUserID:
		return m.OldUserID(ctx)
	case notificationpreference.FieldEnabled:
		return m.OldEnabled(ctx)
	case notificationpreference.FieldQuietHoursStart:
		return m.OldQuietHoursStart(ctx)
	case notificationpreference.FieldQuietHoursEnd:
		return m.OldQuietHoursEnd(ctx)
	case notificationpreference.FieldOutcomes:
		return m.OldOutcomes(ctx)
	case notificationpreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationpreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationpreference.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case notificationpreference.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationpreference.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case notificationpreference.FieldQuietHoursStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuietHoursStart(v)
		return nil
	case notificationpreference.FieldQuietHoursEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuietHoursEnd(v)
		return nil
	case notificationpreference.FieldOutcomes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomes(v)
		return nil
	case notificationpreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationpreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationPreferenceMutation) AddedFields() []string {
	var fields []string
	if m.addquiet_hours_start != nil {
		fields = append(fields, notificationpreference.FieldQuietHoursStart)
	}
	if m.addquiet_hours_end != nil {
		fields = append(fields, notificationpreference.FieldQuietHoursEnd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notificationpreference.FieldQuietHoursStart:
		return m.AddedQuietHoursStart()
	case notificationpreference.FieldQuietHoursEnd:
		return m.AddedQuietHoursEnd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notificationpreference.FieldQuietHoursStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuietHoursStart(v)
		return nil
	case notificationpreference.FieldQuietHoursEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuietHoursEnd(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationPreferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationpreference.FieldQuietHoursStart) {
		fields = append(fields, notificationpreference.FieldQuietHoursStart)
	}
	if m.FieldCleared(notificationpreference.FieldQuietHoursEnd) {
		fields = append(fields, notificationpreference.FieldQuietHoursEnd)
	}
	if m.FieldCleared(notificationpreference.FieldOutcomes) {
		fields = append(fields, notificationpreference.FieldOutcomes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationPreferenceMutation) ClearField(name string) error {
	switch name {
	case notificationpreference.FieldQuietHoursStart:
		m.ClearQuietHoursStart()
		return nil
	case notificationpreference.FieldQuietHoursEnd:
		m.ClearQuietHoursEnd()
		return nil
	case notificationpreference.FieldOutcomes:
		m.ClearOutcomes()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationPreferenceMutation) ResetField(name string) error {
	switch name {
	case notificationpreference.FieldAppID:
		m.ResetAppID()
		return nil
	case notificationpreference.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationpreference.FieldEnabled:
		m.ResetEnabled()
		return nil
	case notificationpreference.FieldQuietHoursStart:
		m.ResetQuietHoursStart()
		return nil
	case notificationpreference.FieldQuietHoursEnd:
		m.ResetQuietHoursEnd()
		return nil
	case notificationpreference.FieldOutcomes:
		m.ResetOutcomes()
		return nil
	case notificationpreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationpreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, notificationpreference.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationPreferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notificationpreference.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, notificationpreference.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationPreferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case notificationpreference.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationPreferenceMutation) ClearEdge(name string) error {
	switch name {
	case notificationpreference.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationPreferenceMutation) ResetEdge(name string) error {
	switch name {
	case notificationpreference.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference edge %s", name)
}

// RoomLearningMutation represents an operation that mutates the RoomLearning nodes in the graph.
type RoomLearningMutation struct {
	config
	op            Op
	typ           string
	id            *string
	room_id       *string
	app_id        *string
	topic         *string
	content       *string
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RoomLearning, error)
	predicates    []predicate.RoomLearning
}

var _ ent.Mutation = (*RoomLearningMutation)(nil)

// roomlearningOption allows management of the mutation configuration using functional options.
type roomlearningOption func(*RoomLearningMutation)

// newRoomLearningMutation creates new mutation for the RoomLearning entity.
func newRoomLearningMutation(c config, op Op, opts ...roomlearningOption) *RoomLearningMutation {
	m := &RoomLearningMutation{
		config:        c,
		op:            op,
		typ:           TypeRoomLearning,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomLearningID sets the ID field of the mutation.
func withRoomLearningID(id string) roomlearningOption {
	return func(m *RoomLearningMutation) {
		var (
			err   error
			once  sync.Once
			value *RoomLearning
		)
		m.oldValue = func(ctx context.Context) (*RoomLearning, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoomLearning.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoomLearning sets the old RoomLearning of the mutation.
func withRoomLearning(node *RoomLearning) roomlearningOption {
	return func(m *RoomLearningMutation) {
		m.oldValue = func(context.Context) (*RoomLearning, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomLearningMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomLearningMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoomLearning entities.
func (m *RoomLearningMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomLearningMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomLearningMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoomLearning.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoomID sets the "room_id" field.
func (m *RoomLearningMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *RoomLearningMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the RoomLearning entity.
// If the RoomLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomLearningMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *RoomLearningMutation) ResetRoomID() {
	m.room_id = nil
}

// SetAppID sets the "app_id" field.
func (m *RoomLearningMutation) SetAppID(s string) {
	m.app_id = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *RoomLearningMutation) AppID() (r string, exists bool) {
	v := m.app_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the RoomLearning entity.
// If the RoomLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomLearningMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ClearAppID clears the value of the "app_id" field.
func (m *RoomLearningMutation) ClearAppID() {
	m.app_id = nil
	m.clearedFields[roomlearning.FieldAppID] = struct{}{}
}

// AppIDCleared returns if the "app_id" field was cleared in this mutation.
func (m *RoomLearningMutation) AppIDCleared() bool {
	_, ok := m.clearedFields[roomlearning.FieldAppID]
	return ok
}

// ResetAppID resets all changes to the "app_id" field.
func (m *RoomLearningMutation) ResetAppID() {
	m.app_id = nil
	delete(m.clearedFields, roomlearning.FieldAppID)
}

// SetTopic sets the "topic" field.
func (m *RoomLearningMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *RoomLearningMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the RoomLearning entity.
// If the RoomLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomLearningMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *RoomLearningMutation) ResetTopic() {
	m.topic = nil
}

// SetContent sets the "content" field.
func (m *RoomLearningMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *RoomLearningMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the RoomLearning entity.
// If the RoomLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomLearningMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *RoomLearningMutation) ResetContent() {
	m.content = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *RoomLearningMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *RoomLearningMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the RoomLearning entity.
// If the RoomLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomLearningMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *RoomLearningMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the RoomLearningMutation builder.
func (m *RoomLearningMutation) Where(ps ...predicate.RoomLearning) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomLearningMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomLearningMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoomLearning, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomLearningMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomLearningMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoomLearning).
func (m *RoomLearningMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomLearningMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.room_id != nil {
		fields = append(fields, roomlearning.FieldRoomID)
	}
	if m.app_id != nil {
		fields = append(fields, roomlearning.FieldAppID)
	}
	if m.topic != nil {
		fields = append(fields, roomlearning.FieldTopic)
	}
	if m.content != nil {
		fields = append(fields, roomlearning.FieldContent)
	}
	if m.received_at != nil {
		fields = append(fields, roomlearning.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomLearningMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roomlearning.FieldRoomID:
		return m.RoomID()
	case roomlearning.FieldAppID:
		return m.AppID()
	case roomlearning.FieldTopic:
		return m.Topic()
	case roomlearning.FieldContent:
		return m.Content()
	case roomlearning.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomLearningMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roomlearning.FieldRoomID:
		return m.OldRoomID(ctx)
	case roomlearning.FieldAppID:
		return m.OldAppID(ctx)
	case roomlearning.FieldTopic:
		return m.OldTopic(ctx)
	case roomlearning.FieldContent:
		return m.OldContent(ctx)
	case roomlearning.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoomLearning field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomLearningMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roomlearning.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case roomlearning.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case roomlearning.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case roomlearning.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case roomlearning.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoomLearning field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomLearningMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomLearningMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomLearningMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RoomLearning numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomLearningMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(roomlearning.FieldAppID) {
		fields = append(fields, roomlearning.FieldAppID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomLearningMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomLearningMutation) ClearField(name string) error {
	switch name {
	case roomlearning.FieldAppID:
		m.ClearAppID()
		return nil
	}
	return fmt.Errorf("unknown RoomLearning nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomLearningMutation) ResetField(name string) error {
	switch name {
	case roomlearning.FieldRoomID:
		m.ResetRoomID()
		return nil
	case roomlearning.FieldAppID:
		m.ResetAppID()
		return nil
	case roomlearning.FieldTopic:
		m.ResetTopic()
		return nil
	case roomlearning.FieldContent:
		m.ResetContent()
		return nil
	case roomlearning.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown RoomLearning field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomLearningMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomLearningMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomLearningMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomLearningMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomLearningMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomLearningMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomLearningMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoomLearning unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomLearningMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoomLearning edge %s", name)
}

// RoomSyncStateMutation represents an operation that mutates the RoomSyncState nodes in the graph.
type RoomSyncStateMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	room_id               *string
	room_name             *string
	last_heartbeat_at     *time.Time
	last_load             *float64
	addlast_load          *float64
	heartbeat_count       *int
	addheartbeat_count    *int
	learnings_received    *int
	addlearnings_received *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*RoomSyncState, error)
	predicates            []predicate.RoomSyncState
}

var _ ent.Mutation = (*RoomSyncStateMutation)(nil)

// roomsyncstateOption allows management of the mutation configuration using functional options.
type roomsyncstateOption func(*RoomSyncStateMutation)

// newRoomSyncStateMutation creates new mutation for the RoomSyncState entity.
func newRoomSyncStateMutation(c config, op Op, opts ...roomsyncstateOption) *RoomSyncStateMutation {
	m := &RoomSyncStateMutation{
		config:        c,
		op:            op,
		typ:           TypeRoomSyncState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomSyncStateID sets the ID field of the mutation.
func withRoomSyncStateID(id string) roomsyncstateOption {
	return func(m *RoomSyncStateMutation) {
		var (
			err   error
			once  sync.Once
			value *RoomSyncState
		)
		m.oldValue = func(ctx context.Context) (*RoomSyncState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoomSyncState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoomSyncState sets the old RoomSyncState of the mutation.
func withRoomSyncState(node *RoomSyncState) roomsyncstateOption {
	return func(m *RoomSyncStateMutation) {
		m.oldValue = func(context.Context) (*RoomSyncState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomSyncStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomSyncStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoomSyncState entities.
func (m *RoomSyncStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomSyncStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomSyncStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoomSyncState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoomID sets the "room_id" field.
func (m *RoomSyncStateMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *RoomSyncStateMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *RoomSyncStateMutation) ResetRoomID() {
	m.room_id = nil
}

// SetRoomName sets the "room_name" field.
func (m *RoomSyncStateMutation) SetRoomName(s string) {
	m.room_name = &s
}

// RoomName returns the value of the "room_name" field in the mutation.
func (m *RoomSyncStateMutation) RoomName() (r string, exists bool) {
	v := m.room_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomName returns the old "room_name" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldRoomName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomName: %w", err)
	}
	return oldValue.RoomName, nil
}

// ClearRoomName clears the value of the "room_name" field.
func (m *RoomSyncStateMutation) ClearRoomName() {
	m.room_name = nil
	m.clearedFields[roomsyncstate.FieldRoomName] = struct{}{}
}

// RoomNameCleared returns if the "room_name" field was cleared in this mutation.
func (m *RoomSyncStateMutation) RoomNameCleared() bool {
	_, ok := m.clearedFields[roomsyncstate.FieldRoomName]
	return ok
}

// ResetRoomName resets all changes to the "room_name" field.
func (m *RoomSyncStateMutation) ResetRoomName() {
	m.room_name = nil
	delete(m.clearedFields, roomsyncstate.FieldRoomName)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RoomSyncStateMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RoomSyncStateMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RoomSyncStateMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
}

// SetLastLoad sets the "last_load" field.
func (m *RoomSyncStateMutation) SetLastLoad(f float64) {
	m.last_load = &f
	m.addlast_load = nil
}

// LastLoad returns the value of the "last_load" field in the mutation.
func (m *RoomSyncStateMutation) LastLoad() (r float64, exists bool) {
	v := m.last_load
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoad returns the old "last_load" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldLastLoad(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoad: %w", err)
	}
	return oldValue.LastLoad, nil
}

// AddLastLoad adds f to the "last_load" field.
func (m *RoomSyncStateMutation) AddLastLoad(f float64) {
	if m.addlast_load != nil {
		*m.addlast_load += f
	} else {
		m.addlast_load = &f
	}
}

// AddedLastLoad returns the value that was added to the "last_load" field in this mutation.
func (m *RoomSyncStateMutation) AddedLastLoad() (r float64, exists bool) {
	v := m.addlast_load
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastLoad resets all changes to the "last_load" field.
func (m *RoomSyncStateMutation) ResetLastLoad() {
	m.last_load = nil
	m.addlast_load = nil
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (m *RoomSyncStateMutation) SetHeartbeatCount(i int) {
	m.heartbeat_count = &i
	m.addheartbeat_count = nil
}

// HeartbeatCount returns the value of the "heartbeat_count" field in the mutation.
func (m *RoomSyncStateMutation) HeartbeatCount() (r int, exists bool) {
	v := m.heartbeat_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatCount returns the old "heartbeat_count" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldHeartbeatCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatCount: %w", err)
	}
	return oldValue.HeartbeatCount, nil
}

// AddHeartbeatCount adds i to the "heartbeat_count" field.
func (m *RoomSyncStateMutation) AddHeartbeatCount(i int) {
	if m.addheartbeat_count != nil {
		*m.addheartbeat_count += i
	} else {
		m.addheartbeat_count = &i
	}
}

// AddedHeartbeatCount returns the value that was added to the "heartbeat_count" field in this mutation.
func (m *RoomSyncStateMutation) AddedHeartbeatCount() (r int, exists bool) {
	v := m.addheartbeat_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeartbeatCount resets all changes to the "heartbeat_count" field.
func (m *RoomSyncStateMutation) ResetHeartbeatCount() {
	m.heartbeat_count = nil
	m.addheartbeat_count = nil
}

// SetLearningsReceived sets the "learnings_received" field.
func (m *RoomSyncStateMutation) SetLearningsReceived(i int) {
	m.learnings_received = &i
	m.addlearnings_received = nil
}

// LearningsReceived returns the value of the "learnings_received" field in the mutation.
func (m *RoomSyncStateMutation) LearningsReceived() (r int, exists bool) {
	v := m.learnings_received
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningsReceived returns the old "learnings_received" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldLearningsReceived(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningsReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningsReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningsReceived: %w", err)
	}
	return oldValue.LearningsReceived, nil
}

// AddLearningsReceived adds i to the "learnings_received" field.
func (m *RoomSyncStateMutation) AddLearningsReceived(i int) {
	if m.addlearnings_received != nil {
		*m.addlearnings_received += i
	} else {
		m.addlearnings_received = &i
	}
}

// AddedLearningsReceived returns the value that was added to the "learnings_received" field in this mutation.
func (m *RoomSyncStateMutation) AddedLearningsReceived() (r int, exists bool) {
	v := m.addlearnings_received
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearningsReceived resets all changes to the "learnings_received" field.
func (m *RoomSyncStateMutation) ResetLearningsReceived() {
	m.learnings_received = nil
	m.addlearnings_received = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomSyncStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomSyncStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoomSyncStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoomSyncStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoomSyncStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RoomSyncState entity.
// If the RoomSyncState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomSyncStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoomSyncStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RoomSyncStateMutation builder.
func (m *RoomSyncStateMutation) Where(ps ...predicate.RoomSyncState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomSyncStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomSyncStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoomSyncState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomSyncStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomSyncStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoomSyncState).
func (m *RoomSyncStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomSyncStateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.room_id != nil {
		fields = append(fields, roomsyncstate.FieldRoomID)
	}
	if m.room_name != nil {
		fields = append(fields, roomsyncstate.FieldRoomName)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, roomsyncstate.FieldLastHeartbeatAt)
	}
	if m.last_load != nil {
		fields = append(fields, roomsyncstate.FieldLastLoad)
	}
	if m.heartbeat_count != nil {
		fields = append(fields, roomsyncstate.FieldHeartbeatCount)
	}
	if m.learnings_received != nil {
		fields = append(fields, roomsyncstate.FieldLearningsReceived)
	}
	if m.created_at != nil {
		fields = append(fields, roomsyncstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, roomsyncstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomSyncStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roomsyncstate.FieldRoomID:
		return m.RoomID()
	case roomsyncstate.FieldRoomName:
		return m.RoomName()
	case roomsyncstate.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case roomsyncstate.FieldLastLoad:
		return m.LastLoad()
	case roomsyncstate.FieldHeartbeatCount:
		return m.HeartbeatCount()
	case roomsyncstate.FieldLearningsReceived:
		return m.LearningsReceived()
	case roomsyncstate.FieldCreatedAt:
		return m.CreatedAt()
	case roomsyncstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomSyncStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roomsyncstate.FieldRoomID:
		return m.OldRoomID(ctx)
	case roomsyncstate.FieldRoomName:
		return m.OldRoomName(ctx)
	case roomsyncstate.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case roomsyncstate.FieldLastLoad:
		return m.OldLastLoad(ctx)
	case roomsyncstate.FieldHeartbeatCount:
		return m.OldHeartbeatCount(ctx)
	case roomsyncstate.FieldLearningsReceived:
		return m.OldLearningsReceived(ctx)
	case roomsyncstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case roomsyncstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoomSyncState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomSyncStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roomsyncstate.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case roomsyncstate.FieldRoomName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomName(v)
		return nil
	case roomsyncstate.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case roomsyncstate.FieldLastLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoad(v)
		return nil
	case roomsyncstate.FieldHeartbeatCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatCount(v)
		return nil
	case roomsyncstate.FieldLearningsReceived:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningsReceived(v)
		return nil
	case roomsyncstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case roomsyncstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoomSyncState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomSyncStateMutation) AddedFields() []string {
	var fields []string
	if m.addlast_load != nil {
		fields = append(fields, roomsyncstate.FieldLastLoad)
	}
	if m.addheartbeat_count != nil {
		fields = append(fields, roomsyncstate.FieldHeartbeatCount)
	}
	if m.addlearnings_received != nil {
		fields = append(fields, roomsyncstate.FieldLearningsReceived)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomSyncStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roomsyncstate.FieldLastLoad:
		return m.AddedLastLoad()
	case roomsyncstate.FieldHeartbeatCount:
		return m.AddedHeartbeatCount()
	case roomsyncstate.FieldLearningsReceived:
		return m.AddedLearningsReceived()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomSyncStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roomsyncstate.FieldLastLoad:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastLoad(v)
		return nil
	case roomsyncstate.FieldHeartbeatCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeartbeatCount(v)
		return nil
	case roomsyncstate.FieldLearningsReceived:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearningsReceived(v)
		return nil
	}
	return fmt.Errorf("unknown RoomSyncState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomSyncStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(roomsyncstate.FieldRoomName) {
		fields = append(fields, roomsyncstate.FieldRoomName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomSyncStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomSyncStateMutation) ClearField(name string) error {
	switch name {
	case roomsyncstate.FieldRoomName:
		m.ClearRoomName()
		return nil
	}
	return fmt.Errorf("unknown RoomSyncState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomSyncStateMutation) ResetField(name string) error {
	switch name {
	case roomsyncstate.FieldRoomID:
		m.ResetRoomID()
		return nil
	case roomsyncstate.FieldRoomName:
		m.ResetRoomName()
		return nil
	case roomsyncstate.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case roomsyncstate.FieldLastLoad:
		m.ResetLastLoad()
		return nil
	case roomsyncstate.FieldHeartbeatCount:
		m.ResetHeartbeatCount()
		return nil
	case roomsyncstate.FieldLearningsReceived:
		m.ResetLearningsReceived()
		return nil
	case roomsyncstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case roomsyncstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoomSyncState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomSyncStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomSyncStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomSyncStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomSyncStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomSyncStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomSyncStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomSyncStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoomSyncState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomSyncStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoomSyncState edge %s", name)
}

// SavedArrangementMutation represents an operation that mutates the SavedArrangement nodes in the graph.
type SavedArrangementMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	kind          *savedarrangement.Kind
	steps         *[]models.ArrangementStep
	appendsteps   []models.ArrangementStep
	merge         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	app           *string
	clearedapp    bool
	done          bool
	oldValue      func(context.Context) (*SavedArrangement, error)
	predicates    []predicate.SavedArrangement
}

var _ ent.Mutation = (*SavedArrangementMutation)(nil)

// savedarrangementOption allows management of the mutation configuration using functional options.
type savedarrangementOption func(*SavedArrangementMutation)

// newSavedArrangementMutation creates new mutation for the SavedArrangement entity.
func newSavedArrangementMutation(c config, op Op, opts ...savedarrangementOption) *SavedArrangementMutation {
	m := &SavedArrangementMutation{
		config:        c,
		op:            op,
		typ:           TypeSavedArrangement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSavedArrangementID sets the ID field of the mutation.
func withSavedArrangementID(id string) savedarrangementOption {
	return func(m *SavedArrangementMutation) {
		var (
			err   error
			once  sync.Once
			value *SavedArrangement
		)
		m.oldValue = func(ctx context.Context) (*SavedArrangement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SavedArrangement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSavedArrangement sets the old SavedArrangement of the mutation.
func withSavedArrangement(node *SavedArrangement) savedarrangementOption {
	return func(m *SavedArrangementMutation) {
		m.oldValue = func(context.Context) (*SavedArrangement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SavedArrangementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SavedArrangementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SavedArrangement entities.
func (m *SavedArrangementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SavedArrangementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SavedArrangementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SavedArrangement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *SavedArrangementMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *SavedArrangementMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *SavedArrangementMutation) ResetAppID() {
	m.app = nil
}

// SetName sets the "name" field.
func (m *SavedArrangementMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SavedArrangementMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SavedArrangementMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SavedArrangementMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SavedArrangementMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SavedArrangementMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[savedarrangement.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SavedArrangementMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[savedarrangement.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SavedArrangementMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, savedarrangement.FieldDescription)
}

// SetKind sets the "kind" field.
func (m *SavedArrangementMutation) SetKind(s savedarrangement.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SavedArrangementMutation) Kind() (r savedarrangement.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldKind(ctx context.Context) (v savedarrangement.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SavedArrangementMutation) ResetKind() {
	m.kind = nil
}

// SetSteps sets the "steps" field.
func (m *SavedArrangementMutation) SetSteps(ms []models.ArrangementStep) {
	m.steps = &ms
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *SavedArrangementMutation) Steps() (r []models.ArrangementStep, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldSteps(ctx context.Context) (v []models.ArrangementStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds ms to the "steps" field.
func (m *SavedArrangementMutation) AppendSteps(ms []models.ArrangementStep) {
	m.appendsteps = append(m.appendsteps, ms...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *SavedArrangementMutation) AppendedSteps() ([]models.ArrangementStep, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *SavedArrangementMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetMerge sets the "merge" field.
func (m *SavedArrangementMutation) SetMerge(s string) {
	m.merge = &s
}

// Merge returns the value of the "merge" field in the mutation.
func (m *SavedArrangementMutation) Merge() (r string, exists bool) {
	v := m.merge
	if v == nil {
		return
	}
	return *v, true
}

// OldMerge returns the old "merge" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldMerge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerge: %w", err)
	}
	return oldValue.Merge, nil
}

// ResetMerge resets all changes to the "merge" field.
func (m *SavedArrangementMutation) ResetMerge() {
	m.merge = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SavedArrangementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SavedArrangementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SavedArrangementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SavedArrangementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SavedArrangementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SavedArrangement entity.
// If the SavedArrangement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SavedArrangementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SavedArrangementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *SavedArrangementMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[savedarrangement.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *SavedArrangementMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *SavedArrangementMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *SavedArrangementMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the SavedArrangementMutation builder.
func (m *SavedArrangementMutation) Where(ps ...predicate.SavedArrangement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SavedArrangementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SavedArrangementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SavedArrangement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SavedArrangementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SavedArrangementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SavedArrangement).
func (m *SavedArrangementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SavedArrangementMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.app != nil {
		fields = append(fields, savedarrangement.FieldAppID)
	}
	if m.name != nil {
		fields = append(fields, savedarrangement.FieldName)
	}
	if m.description != nil {
		fields = append(fields, savedarrangement.FieldDescription)
	}
	if m.kind != nil {
		fields = append(fields, savedarrangement.FieldKind)
	}
	if m.steps != nil {
		fields = append(fields, savedarrangement.FieldSteps)
	}
	if m.merge != nil {
		fields = append(fields, savedarrangement.FieldMerge)
	}
	if m.created_at != nil {
		fields = append(fields, savedarrangement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, savedarrangement.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SavedArrangementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case savedarrangement.FieldAppID:
		return m.AppID()
	case savedarrangement.FieldName:
		return m.Name()
	case savedarrangement.FieldDescription:
		return m.Description()
	case savedarrangement.FieldKind:
		return m.Kind()
	case savedarrangement.FieldSteps:
		return m.Steps()
	case savedarrangement.FieldMerge:
		return m.Merge()
	case savedarrangement.FieldCreatedAt:
		return m.CreatedAt()
	case savedarrangement.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SavedArrangementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case savedarrangement.FieldAppID:
		return m.OldAppID(ctx)
	case savedarrangement.FieldName:
		return m.OldName(ctx)
	case savedarrangement.FieldDescription:
		return m.OldDescription(ctx)
	case savedarrangement.FieldKind:
		return m.OldKind(ctx)
	case savedarrangement.FieldSteps:
		return m.OldSteps(ctx)
	case savedarrangement.FieldMerge:
		return m.OldMerge(ctx)
	case savedarrangement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case savedarrangement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SavedArrangement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SavedArrangementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case savedarrangement.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case savedarrangement.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case savedarrangement.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case savedarrangement.FieldKind:
		v, ok := value.(savedarrangement.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case savedarrangement.FieldSteps:
		v, ok := value.([]models.ArrangementStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case savedarrangement.FieldMerge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerge(v)
		return nil
	case savedarrangement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case savedarrangement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SavedArrangement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SavedArrangementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SavedArrangementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SavedArrangementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SavedArrangement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SavedArrangementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(savedarrangement.FieldDescription) {
		fields = append(fields, savedarrangement.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SavedArrangementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SavedArrangementMutation) ClearField(name string) error {
	switch name {
	case savedarrangement.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown SavedArrangement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SavedArrangementMutation) ResetField(name string) error {
	switch name {
	case savedarrangement.FieldAppID:
		m.ResetAppID()
		return nil
	case savedarrangement.FieldName:
		m.ResetName()
		return nil
	case savedarrangement.FieldDescription:
		m.ResetDescription()
		return nil
	case savedarrangement.FieldKind:
		m.ResetKind()
		return nil
	case savedarrangement.FieldSteps:
		m.ResetSteps()
		return nil
	case savedarrangement.FieldMerge:
		m.ResetMerge()
		return nil
	case savedarrangement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case savedarrangement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SavedArrangement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SavedArrangementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, savedarrangement.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SavedArrangementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case savedarrangement.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SavedArrangementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SavedArrangementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SavedArrangementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, savedarrangement.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SavedArrangementMutation) EdgeCleared(name string) bool {
	switch name {
	case savedarrangement.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SavedArrangementMutation) ClearEdge(name string) error {
	switch name {
	case savedarrangement.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown SavedArrangement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SavedArrangementMutation) ResetEdge(name string) error {
	switch name {
	case savedarrangement.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown SavedArrangement edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	query             *string
	request           *map[string]interface{}
	status            *task.Status
	outcome           *task.Outcome
	instrument        *string
	process_type      *string
	room_id           *string
	response          *map[string]interface{}
	error             *string
	created_at        *time.Time
	updated_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	app               *string
	clearedapp        bool
	iterations        map[string]struct{}
	removediterations map[string]struct{}
	clearediterations bool
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *TaskMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *TaskMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *TaskMutation) ResetAppID() {
	m.app = nil
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[task.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[task.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, task.FieldUserID)
}

// SetQuery sets the "query" field.
func (m *TaskMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *TaskMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *TaskMutation) ResetQuery() {
	m.query = nil
}

// SetRequest sets the "request" field.
func (m *TaskMutation) SetRequest(value map[string]interface{}) {
	m.request = &value
}

// Request returns the value of the "request" field in the mutation.
func (m *TaskMutation) Request() (r map[string]interface{}, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequest(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ResetRequest resets all changes to the "request" field.
func (m *TaskMutation) ResetRequest() {
	m.request = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetOutcome sets the "outcome" field.
func (m *TaskMutation) SetOutcome(t task.Outcome) {
	m.outcome = &t
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *TaskMutation) Outcome() (r task.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOutcome(ctx context.Context) (v *task.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *TaskMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[task.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *TaskMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[task.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *TaskMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, task.FieldOutcome)
}

// SetInstrument sets the "instrument" field.
func (m *TaskMutation) SetInstrument(s string) {
	m.instrument = &s
}

// Instrument returns the value of the "instrument" field in the mutation.
func (m *TaskMutation) Instrument() (r string, exists bool) {
	v := m.instrument
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrument returns the old "instrument" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInstrument(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrument: %w", err)
	}
	return oldValue.Instrument, nil
}

// ClearInstrument clears the value of the "instrument" field.
func (m *TaskMutation) ClearInstrument() {
	m.instrument = nil
	m.clearedFields[task.FieldInstrument] = struct{}{}
}

// InstrumentCleared returns if the "instrument" field was cleared in this mutation.
func (m *TaskMutation) InstrumentCleared() bool {
	_, ok := m.clearedFields[task.FieldInstrument]
	return ok
}

// ResetInstrument resets all changes to the "instrument" field.
func (m *TaskMutation) ResetInstrument() {
	m.instrument = nil
	delete(m.clearedFields, task.FieldInstrument)
}

// SetProcessType sets the "process_type" field.
func (m *TaskMutation) SetProcessType(s string) {
	m.process_type = &s
}

// ProcessType returns the value of the "process_type" field in the mutation.
func (m *TaskMutation) ProcessType() (r string, exists bool) {
	v := m.process_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessType returns the old "process_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProcessType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessType: %w", err)
	}
	return oldValue.ProcessType, nil
}

// ClearProcessType clears the value of the "process_type" field.
func (m *TaskMutation) ClearProcessType() {
	m.process_type = nil
	m.clearedFields[task.FieldProcessType] = struct{}{}
}

// ProcessTypeCleared returns if the "process_type" field was cleared in this mutation.
func (m *TaskMutation) ProcessTypeCleared() bool {
	_, ok := m.clearedFields[task.FieldProcessType]
	return ok
}

// ResetProcessType resets all changes to the "process_type" field.
func (m *TaskMutation) ResetProcessType() {
	m.process_type = nil
	delete(m.clearedFields, task.FieldProcessType)
}

// SetRoomID sets the "room_id" field.
func (m *TaskMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *TaskMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *TaskMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[task.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *TaskMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[task.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *TaskMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, task.FieldRoomID)
}

// SetResponse sets the "response" field.
func (m *TaskMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *TaskMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *TaskMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[task.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *TaskMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[task.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *TaskMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, task.FieldResponse)
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// ClearApp clears the "app" edge to the App entity.
func (m *TaskMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[task.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *TaskMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *TaskMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// AddIterationIDs adds the "iterations" edge to the TaskIteration entity by ids.
func (m *TaskMutation) AddIterationIDs(ids ...string) {
	if m.iterations == nil {
		m.iterations = make(map[string]struct{})
	}
	for i := range ids {
		m.iterations[ids[i]] = struct{}{}
	}
}

// ClearIterations clears the "iterations" edge to the TaskIteration entity.
func (m *TaskMutation) ClearIterations() {
	m.clearediterations = true
}

// IterationsCleared reports if the "iterations" edge to the TaskIteration entity was cleared.
func (m *TaskMutation) IterationsCleared() bool {
	return m.clearediterations
}

// RemoveIterationIDs removes the "iterations" edge to the TaskIteration entity by IDs.
func (m *TaskMutation) RemoveIterationIDs(ids ...string) {
	if m.removediterations == nil {
		m.removediterations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.iterations, ids[i])
		m.removediterations[ids[i]] = struct{}{}
	}
}

// RemovedIterations returns the removed IDs of the "iterations" edge to the TaskIteration entity.
func (m *TaskMutation) RemovedIterationsIDs() (ids []string) {
	for id := range m.removediterations {
		ids = append(ids, id)
	}
	return
}

// IterationsIDs returns the "iterations" edge IDs in the mutation.
func (m *TaskMutation) IterationsIDs() (ids []string) {
	for id := range m.iterations {
		ids = append(ids, id)
	}
	return
}

// ResetIterations resets all changes to the "iterations" edge.
func (m *TaskMutation) ResetIterations() {
	m.iterations = nil
	m.clearediterations = false
	m.removediterations = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.app != nil {
		fields = append(fields, task.FieldAppID)
	}
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.query != nil {
		fields = append(fields, task.FieldQuery)
	}
	if m.request != nil {
		fields = append(fields, task.FieldRequest)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.outcome != nil {
		fields = append(fields, task.FieldOutcome)
	}
	if m.instrument != nil {
		fields = append(fields, task.FieldInstrument)
	}
	if m.process_type != nil {
		fields = append(fields, task.FieldProcessType)
	}
	if m.room_id != nil {
		fields = append(fields, task.FieldRoomID)
	}
	if m.response != nil {
		fields = append(fields, task.FieldResponse)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAppID:
		return m.AppID()
	case task.FieldUserID:
		return m.UserID()
	case task.FieldQuery:
		return m.Query()
	case task.FieldRequest:
		return m.Request()
	case task.FieldStatus:
		return m.Status()
	case task.FieldOutcome:
		return m.Outcome()
	case task.FieldInstrument:
		return m.Instrument()
	case task.FieldProcessType:
		return m.ProcessType()
	case task.FieldRoomID:
		return m.RoomID()
	case task.FieldResponse:
		return m.Response()
	case task.FieldError:
		return m.Error()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldAppID:
		return m.OldAppID(ctx)
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldQuery:
		return m.OldQuery(ctx)
	case task.FieldRequest:
		return m.OldRequest(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldOutcome:
		return m.OldOutcome(ctx)
	case task.FieldInstrument:
		return m.OldInstrument(ctx)
	case task.FieldProcessType:
		return m.OldProcessType(ctx)
	case task.FieldRoomID:
		return m.OldRoomID(ctx)
	case task.FieldResponse:
		return m.OldResponse(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case task.FieldRequest:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldOutcome:
		v, ok := value.(task.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case task.FieldInstrument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrument(v)
		return nil
	case task.FieldProcessType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessType(v)
		return nil
	case task.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case task.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldUserID) {
		fields = append(fields, task.FieldUserID)
	}
	if m.FieldCleared(task.FieldOutcome) {
		fields = append(fields, task.FieldOutcome)
	}
	if m.FieldCleared(task.FieldInstrument) {
		fields = append(fields, task.FieldInstrument)
	}
	if m.FieldCleared(task.FieldProcessType) {
		fields = append(fields, task.FieldProcessType)
	}
	if m.FieldCleared(task.FieldRoomID) {
		fields = append(fields, task.FieldRoomID)
	}
	if m.FieldCleared(task.FieldResponse) {
		fields = append(fields, task.FieldResponse)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ClearUserID()
		return nil
	case task.FieldOutcome:
		m.ClearOutcome()
		return nil
	case task.FieldInstrument:
		m.ClearInstrument()
		return nil
	case task.FieldProcessType:
		m.ClearProcessType()
		return nil
	case task.FieldRoomID:
		m.ClearRoomID()
		return nil
	case task.FieldResponse:
		m.ClearResponse()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldAppID:
		m.ResetAppID()
		return nil
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldQuery:
		m.ResetQuery()
		return nil
	case task.FieldRequest:
		m.ResetRequest()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldOutcome:
		m.ResetOutcome()
		return nil
	case task.FieldInstrument:
		m.ResetInstrument()
		return nil
	case task.FieldProcessType:
		m.ResetProcessType()
		return nil
	case task.FieldRoomID:
		m.ResetRoomID()
		return nil
	case task.FieldResponse:
		m.ResetResponse()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.app != nil {
		edges = append(edges, task.EdgeApp)
	}
	if m.iterations != nil {
		edges = append(edges, task.EdgeIterations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeIterations:
		ids := make([]ent.Value, 0, len(m.iterations))
		for id := range m.iterations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removediterations != nil {
		edges = append(edges, task.EdgeIterations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeIterations:
		ids := make([]ent.Value, 0, len(m.removediterations))
		for id := range m.removediterations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapp {
		edges = append(edges, task.EdgeApp)
	}
	if m.clearediterations {
		edges = append(edges, task.EdgeIterations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeApp:
		return m.clearedapp
	case task.EdgeIterations:
		return m.clearediterations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeApp:
		m.ResetApp()
		return nil
	case task.EdgeIterations:
		m.ResetIterations()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskIterationMutation represents an operation that mutates the TaskIteration nodes in the graph.
type TaskIterationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	iteration_num    *int
	additeration_num *int
	phase            *string
	input            *map[string]interface{}
	output           *map[string]interface{}
	duration_ms      *int
	addduration_ms   *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*TaskIteration, error)
	predicates       []predicate.TaskIteration
}

var _ ent.Mutation = (*TaskIterationMutation)(nil)

// taskiterationOption allows management of the mutation configuration using functional options.
type taskiterationOption func(*TaskIterationMutation)

// newTaskIterationMutation creates new mutation for the TaskIteration entity.
func newTaskIterationMutation(c config, op Op, opts ...taskiterationOption) *TaskIterationMutation {
	m := &TaskIterationMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskIteration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskIterationID sets the ID field of the mutation.
func withTaskIterationID(id string) taskiterationOption {
	return func(m *TaskIterationMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskIteration
		)
		m.oldValue = func(ctx context.Context) (*TaskIteration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskIteration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskIteration sets the old TaskIteration of the mutation.
func withTaskIteration(node *TaskIteration) taskiterationOption {
	return func(m *TaskIterationMutation) {
		m.oldValue = func(context.Context) (*TaskIteration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskIterationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskIterationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskIteration entities.
func (m *TaskIterationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskIterationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskIterationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskIteration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskIterationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskIterationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskIterationMutation) ResetTaskID() {
	m.task = nil
}

// SetIterationNum sets the "iteration_num" field.
func (m *TaskIterationMutation) SetIterationNum(i int) {
	m.iteration_num = &i
	m.additeration_num = nil
}

// IterationNum returns the value of the "iteration_num" field in the mutation.
func (m *TaskIterationMutation) IterationNum() (r int, exists bool) {
	v := m.iteration_num
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationNum returns the old "iteration_num" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldIterationNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationNum: %w", err)
	}
	return oldValue.IterationNum, nil
}

// AddIterationNum adds i to the "iteration_num" field.
func (m *TaskIterationMutation) AddIterationNum(i int) {
	if m.additeration_num != nil {
		*m.additeration_num += i
	} else {
		m.additeration_num = &i
	}
}

// AddedIterationNum returns the value that was added to the "iteration_num" field in this mutation.
func (m *TaskIterationMutation) AddedIterationNum() (r int, exists bool) {
	v := m.additeration_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterationNum resets all changes to the "iteration_num" field.
func (m *TaskIterationMutation) ResetIterationNum() {
	m.iteration_num = nil
	m.additeration_num = nil
}

// SetPhase sets the "phase" field.
func (m *TaskIterationMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskIterationMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskIterationMutation) ResetPhase() {
	m.phase = nil
}

// SetInput sets the "input" field.
func (m *TaskIterationMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *TaskIterationMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *TaskIterationMutation) ClearInput() {
	m.input = nil
	m.clearedFields[taskiteration.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *TaskIterationMutation) InputCleared() bool {
	_, ok := m.clearedFields[taskiteration.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *TaskIterationMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, taskiteration.FieldInput)
}

// SetOutput sets the "output" field.
func (m *TaskIterationMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskIterationMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TaskIterationMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[taskiteration.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TaskIterationMutation) OutputCleared() bool {
	_, ok := m.clearedFields[taskiteration.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskIterationMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, taskiteration.FieldOutput)
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskIterationMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskIterationMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskIterationMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskIterationMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskIterationMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskIterationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskIterationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskIteration entity.
// If the TaskIteration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIterationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskIterationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskIterationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskiteration.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskIterationMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskIterationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskIterationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskIterationMutation builder.
func (m *TaskIterationMutation) Where(ps ...predicate.TaskIteration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskIterationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskIterationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskIteration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskIterationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskIterationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskIteration).
func (m *TaskIterationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskIterationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, taskiteration.FieldTaskID)
	}
	if m.iteration_num != nil {
		fields = append(fields, taskiteration.FieldIterationNum)
	}
	if m.phase != nil {
		fields = append(fields, taskiteration.FieldPhase)
	}
	if m.input != nil {
		fields = append(fields, taskiteration.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, taskiteration.FieldOutput)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskiteration.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, taskiteration.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskIterationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskiteration.FieldTaskID:
		return m.TaskID()
	case taskiteration.FieldIterationNum:
		return m.IterationNum()
	case taskiteration.FieldPhase:
		return m.Phase()
	case taskiteration.FieldInput:
		return m.Input()
	case taskiteration.FieldOutput:
		return m.Output()
	case taskiteration.FieldDurationMs:
		return m.DurationMs()
	case taskiteration.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskIterationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskiteration.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskiteration.FieldIterationNum:
		return m.OldIterationNum(ctx)
	case taskiteration.FieldPhase:
		return m.OldPhase(ctx)
	case taskiteration.FieldInput:
		return m.OldInput(ctx)
	case taskiteration.FieldOutput:
		return m.OldOutput(ctx)
	case taskiteration.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case taskiteration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskIteration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskIterationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskiteration.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskiteration.FieldIterationNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationNum(v)
		return nil
	case taskiteration.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case taskiteration.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case taskiteration.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case taskiteration.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case taskiteration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskIteration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskIterationMutation) AddedFields() []string {
	var fields []string
	if m.additeration_num != nil {
		fields = append(fields, taskiteration.FieldIterationNum)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskiteration.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskIterationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskiteration.FieldIterationNum:
		return m.AddedIterationNum()
	case taskiteration.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskIterationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskiteration.FieldIterationNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterationNum(v)
		return nil
	case taskiteration.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TaskIteration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskIterationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskiteration.FieldInput) {
		fields = append(fields, taskiteration.FieldInput)
	}
	if m.FieldCleared(taskiteration.FieldOutput) {
		fields = append(fields, taskiteration.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskIterationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskIterationMutation) ClearField(name string) error {
	switch name {
	case taskiteration.FieldInput:
		m.ClearInput()
		return nil
	case taskiteration.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown TaskIteration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskIterationMutation) ResetField(name string) error {
	switch name {
	case taskiteration.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskiteration.FieldIterationNum:
		m.ResetIterationNum()
		return nil
	case taskiteration.FieldPhase:
		m.ResetPhase()
		return nil
	case taskiteration.FieldInput:
		m.ResetInput()
		return nil
	case taskiteration.FieldOutput:
		m.ResetOutput()
		return nil
	case taskiteration.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case taskiteration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskIteration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskIterationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskiteration.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskIterationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskiteration.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskIterationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskIterationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskIterationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskiteration.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskIterationMutation) EdgeCleared(name string) bool {
	switch name {
	case taskiteration.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskIterationMutation) ClearEdge(name string) error {
	switch name {
	case taskiteration.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskIteration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskIterationMutation) ResetEdge(name string) error {
	switch name {
	case taskiteration.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskIteration edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	external_user_id         *string
	display_name             *string
	timezone                 *string
	preferences              *map[string]interface{}
	trust_level              *int
	addtrust_level           *int
	total_tasks              *int
	addtotal_tasks           *int
	successful_tasks         *int
	addsuccessful_tasks      *int
	failed_tasks             *int
	addfailed_tasks          *int
	consecutive_successes    *int
	addconsecutive_successes *int
	last_task_at             *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	app                      *string
	clearedapp               bool
	done                     bool
	oldValue                 func(context.Context) (*UserProfile, error)
	predicates               []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id string) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAppID sets the "app_id" field.
func (m *UserProfileMutation) SetAppID(s string) {
	m.app = &s
}

// AppID returns the value of the "app_id" field in the mutation.
func (m *UserProfileMutation) AppID() (r string, exists bool) {
	v := m.app
	if v == nil {
		return
	}
	return *v, true
}

// OldAppID returns the old "app_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAppID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppID: %w", err)
	}
	return oldValue.AppID, nil
}

// ResetAppID resets all changes to the "app_id" field.
func (m *UserProfileMutation) ResetAppID() {
	m.app = nil
}

// SetExternalUserID sets the "external_user_id" field.
func (m *UserProfileMutation) SetExternalUserID(s string) {
	m.external_user_id = &s
}

// ExternalUserID returns the value of the "external_user_id" field in the mutation.
func (m *UserProfileMutation) ExternalUserID() (r string, exists bool) {
	v := m.external_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalUserID returns the old "external_user_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldExternalUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalUserID: %w", err)
	}
	return oldValue.ExternalUserID, nil
}

// ResetExternalUserID resets all changes to the "external_user_id" field.
func (m *UserProfileMutation) ResetExternalUserID() {
	m.external_user_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserProfileMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserProfileMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldDisplayName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserProfileMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[userprofile.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserProfileMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserProfileMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, userprofile.FieldDisplayName)
}

// SetTimezone sets the "timezone" field.
func (m *UserProfileMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UserProfileMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UserProfileMutation) ResetTimezone() {
	m.timezone = nil
}

// SetPreferences sets the "preferences" field.
func (m *UserProfileMutation) SetPreferences(value map[string]interface{}) {
	m.preferences = &value
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *UserProfileMutation) Preferences() (r map[string]interface{}, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldPreferences(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// ClearPreferences clears the value of the "preferences" field.
func (m *UserProfileMutation) ClearPreferences() {
	m.preferences = nil
	m.clearedFields[userprofile.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *UserProfileMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *UserProfileMutation) ResetPreferences() {
	m.preferences = nil
	delete(m.clearedFields, userprofile.FieldPreferences)
}

// SetTrustLevel sets the "trust_level" field.
func (m *UserProfileMutation) SetTrustLevel(i int) {
	m.trust_level = &i
	m.addtrust_level = nil
}

// TrustLevel returns the value of the "trust_level" field in the mutation.
func (m *UserProfileMutation) TrustLevel() (r int, exists bool) {
	v := m.trust_level
	if v == nil {
		return
	}
	return *v, true
}

// OldTrustLevel returns the old "trust_level" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldTrustLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrustLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrustLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrustLevel: %w", err)
	}
	return oldValue.TrustLevel, nil
}

// AddTrustLevel adds i to the "trust_level" field.
func (m *UserProfileMutation) AddTrustLevel(i int) {
	if m.addtrust_level != nil {
		*m.addtrust_level += i
	} else {
		m.addtrust_level = &i
	}
}

// AddedTrustLevel returns the value that was added to the "trust_level" field in this mutation.
func (m *UserProfileMutation) AddedTrustLevel() (r int, exists bool) {
	v := m.addtrust_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrustLevel resets all changes to the "trust_level" field.
func (m *UserProfileMutation) ResetTrustLevel() {
	m.trust_level = nil
	m.addtrust_level = nil
}

// SetTotalTasks sets the "total_tasks" field.
func (m *UserProfileMutation) SetTotalTasks(i int) {
	m.total_tasks = &i
	m.addtotal_tasks = nil
}

// TotalTasks returns the value of the "total_tasks" field in the mutation.
func (m *UserProfileMutation) TotalTasks() (r int, exists bool) {
	v := m.total_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTasks returns the old "total_tasks" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldTotalTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTasks: %w", err)
	}
	return oldValue.TotalTasks, nil
}

// AddTotalTasks adds i to the "total_tasks" field.
func (m *UserProfileMutation) AddTotalTasks(i int) {
	if m.addtotal_tasks != nil {
		*m.addtotal_tasks += i
	} else {
		m.addtotal_tasks = &i
	}
}

// AddedTotalTasks returns the value that was added to the "total_tasks" field in this mutation.
func (m *UserProfileMutation) AddedTotalTasks() (r int, exists bool) {
	v := m.addtotal_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTasks resets all changes to the "total_tasks" field.
func (m *UserProfileMutation) ResetTotalTasks() {
	m.total_tasks = nil
	m.addtotal_tasks = nil
}

// SetSuccessfulTasks sets the "successful_tasks" field.
func (m *UserProfileMutation) SetSuccessfulTasks(i int) {
	m.successful_tasks = &i
	m.addsuccessful_tasks = nil
}

// SuccessfulTasks returns the value of the "successful_tasks" field in the mutation.
func (m *UserProfileMutation) SuccessfulTasks() (r int, exists bool) {
	v := m.successful_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessfulTasks returns the old "successful_tasks" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldSuccessfulTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessfulTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessfulTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessfulTasks: %w", err)
	}
	return oldValue.SuccessfulTasks, nil
}

// AddSuccessfulTasks adds i to the "successful_tasks" field.
func (m *UserProfileMutation) AddSuccessfulTasks(i int) {
	if m.addsuccessful_tasks != nil {
		*m.addsuccessful_tasks += i
	} else {
		m.addsuccessful_tasks = &i
	}
}

// AddedSuccessfulTasks returns the value that was added to the "successful_tasks" field in this mutation.
func (m *UserProfileMutation) AddedSuccessfulTasks() (r int, exists bool) {
	v := m.addsuccessful_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessfulTasks resets all changes to the "successful_tasks" field.
func (m *UserProfileMutation) ResetSuccessfulTasks() {
	m.successful_tasks = nil
	m.addsuccessful_tasks = nil
}

// SetFailedTasks sets the "failed_tasks" field.
func (m *UserProfileMutation) SetFailedTasks(i int) {
	m.failed_tasks = &i
	m.addfailed_tasks = nil
}

// FailedTasks returns the value of the "failed_tasks" field in the mutation.
func (m *UserProfileMutation) FailedTasks() (r int, exists bool) {
	v := m.failed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedTasks returns the old "failed_tasks" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldFailedTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedTasks: %w", err)
	}
	return oldValue.FailedTasks, nil
}

// AddFailedTasks adds i to the "failed_tasks" field.
func (m *UserProfileMutation) AddFailedTasks(i int) {
	if m.addfailed_tasks != nil {
		*m.addfailed_tasks += i
	} else {
		m.addfailed_tasks = &i
	}
}

// AddedFailedTasks returns the value that was added to the "failed_tasks" field in this mutation.
func (m *UserProfileMutation) AddedFailedTasks() (r int, exists bool) {
	v := m.addfailed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedTasks resets all changes to the "failed_tasks" field.
func (m *UserProfileMutation) ResetFailedTasks() {
	m.failed_tasks = nil
	m.addfailed_tasks = nil
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (m *UserProfileMutation) SetConsecutiveSuccesses(i int) {
	m.consecutive_successes = &i
	m.addconsecutive_successes = nil
}

// ConsecutiveSuccesses returns the value of the "consecutive_successes" field in the mutation.
func (m *UserProfileMutation) ConsecutiveSuccesses() (r int, exists bool) {
	v := m.consecutive_successes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveSuccesses returns the old "consecutive_successes" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldConsecutiveSuccesses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveSuccesses: %w", err)
	}
	return oldValue.ConsecutiveSuccesses, nil
}

// AddConsecutiveSuccesses adds i to the "consecutive_successes" field.
func (m *UserProfileMutation) AddConsecutiveSuccesses(i int) {
	if m.addconsecutive_successes != nil {
		*m.addconsecutive_successes += i
	} else {
		m.addconsecutive_successes = &i
	}
}

// AddedConsecutiveSuccesses returns the value that was added to the "consecutive_successes" field in this mutation.
func (m *UserProfileMutation) AddedConsecutiveSuccesses() (r int, exists bool) {
	v := m.addconsecutive_successes
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveSuccesses resets all changes to the "consecutive_successes" field.
func (m *UserProfileMutation) ResetConsecutiveSuccesses() {
	m.consecutive_successes = nil
	m.addconsecutive_successes = nil
}

// SetLastTaskAt sets the "last_task_at" field.
func (m *UserProfileMutation) SetLastTaskAt(t time.Time) {
	m.last_task_at = &t
}

// LastTaskAt returns the value of the "last_task_at" field in the mutation.
func (m *UserProfileMutation) LastTaskAt() (r time.Time, exists bool) {
	v := m.last_task_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTaskAt returns the old "last_task_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldLastTaskAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTaskAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTaskAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTaskAt: %w", err)
	}
	return oldValue.LastTaskAt, nil
}

// ClearLastTaskAt clears the value of the "last_task_at" field.
func (m *UserProfileMutation) ClearLastTaskAt() {
	m.last_task_at = nil
	m.clearedFields[userprofile.FieldLastTaskAt] = struct{}{}
}

// LastTaskAtCleared returns if the "last_task_at" field was cleared in this mutation.
func (m *UserProfileMutation) LastTaskAtCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldLastTaskAt]
	return ok
}

// ResetLastTaskAt resets all changes to the "last_task_at" field.
func (m *UserProfileMutation) ResetLastTaskAt() {
	m.last_task_at = nil
	delete(m.clearedFields, userprofile.FieldLastTaskAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApp clears the "app" edge to the App entity.
func (m *UserProfileMutation) ClearApp() {
	m.clearedapp = true
	m.clearedFields[userprofile.FieldAppID] = struct{}{}
}

// AppCleared reports if the "app" edge to the App entity was cleared.
func (m *UserProfileMutation) AppCleared() bool {
	return m.clearedapp
}

// AppIDs returns the "app" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppID instead. It exists only for internal usage by the builders.
func (m *UserProfileMutation) AppIDs() (ids []string) {
	if id := m.app; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApp resets all changes to the "app" edge.
func (m *UserProfileMutation) ResetApp() {
	m.app = nil
	m.clearedapp = false
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.app != nil {
		fields = append(fields, userprofile.FieldAppID)
	}
	if m.external_user_id != nil {
		fields = append(fields, userprofile.FieldExternalUserID)
	}
	if m.display_name != nil {
		fields = append(fields, userprofile.FieldDisplayName)
	}
	if m.timezone != nil {
		fields = append(fields, userprofile.FieldTimezone)
	}
	if m.preferences != nil {
		fields = append(fields, userprofile.FieldPreferences)
	}
	if m.trust_level != nil {
		fields = append(fields, userprofile.FieldTrustLevel)
	}
	if m.total_tasks != nil {
		fields = append(fields, userprofile.FieldTotalTasks)
	}
	if m.successful_tasks != nil {
		fields = append(fields, userprofile.FieldSuccessfulTasks)
	}
	if m.failed_tasks != nil {
		fields = append(fields, userprofile.FieldFailedTasks)
	}
	if m.consecutive_successes != nil {
		fields = append(fields, userprofile.FieldConsecutiveSuccesses)
	}
	if m.last_task_at != nil {
		fields = append(fields, userprofile.FieldLastTaskAt)
	}
	if m.created_at != nil {
		fields = append(fields, userprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldAppID:
		return m.AppID()
	case userprofile.FieldExternalUserID:
		return m.ExternalUserID()
	case userprofile.FieldDisplayName:
		return m.DisplayName()
	case userprofile.FieldTimezone:
		return m.Timezone()
	case userprofile.FieldPreferences:
		return m.Preferences()
	case userprofile.FieldTrustLevel:
		return m.TrustLevel()
	case userprofile.FieldTotalTasks:
		return m.TotalTasks()
	case userprofile.FieldSuccessfulTasks:
		return m.SuccessfulTasks()
	case userprofile.FieldFailedTasks:
		return m.FailedTasks()
	case userprofile.FieldConsecutiveSuccesses:
		return m.ConsecutiveSuccesses()
	case userprofile.FieldLastTaskAt:
		return m.LastTaskAt()
	case userprofile.FieldCreatedAt:
		return m.CreatedAt()
	case userprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldAppID:
		return m.OldAppID(ctx)
	case userprofile.FieldExternalUserID:
		return m.OldExternalUserID(ctx)
	case userprofile.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case userprofile.FieldTimezone:
		return m.OldTimezone(ctx)
	case userprofile.FieldPreferences:
		return m.OldPreferences(ctx)
	case userprofile.FieldTrustLevel:
		return m.OldTrustLevel(ctx)
	case userprofile.FieldTotalTasks:
		return m.OldTotalTasks(ctx)
	case userprofile.FieldSuccessfulTasks:
		return m.OldSuccessfulTasks(ctx)
	case userprofile.FieldFailedTasks:
		return m.OldFailedTasks(ctx)
	case userprofile.FieldConsecutiveSuccesses:
		return m.OldConsecutiveSuccesses(ctx)
	case userprofile.FieldLastTaskAt:
		return m.OldLastTaskAt(ctx)
	case userprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldAppID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppID(v)
		return nil
	case userprofile.FieldExternalUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalUserID(v)
		return nil
	case userprofile.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case userprofile.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case userprofile.FieldPreferences:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	case userprofile.FieldTrustLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrustLevel(v)
		return nil
	case userprofile.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTasks(v)
		return nil
	case userprofile.FieldSuccessfulTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessfulTasks(v)
		return nil
	case userprofile.FieldFailedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedTasks(v)
		return nil
	case userprofile.FieldConsecutiveSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveSuccesses(v)
		return nil
	case userprofile.FieldLastTaskAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTaskAt(v)
		return nil
	case userprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	var fields []string
	if m.addtrust_level != nil {
		fields = append(fields, userprofile.FieldTrustLevel)
	}
	if m.addtotal_tasks != nil {
		fields = append(fields, userprofile.FieldTotalTasks)
	}
	if m.addsuccessful_tasks != nil {
		fields = append(fields, userprofile.FieldSuccessfulTasks)
	}
	if m.addfailed_tasks != nil {
		fields = append(fields, userprofile.FieldFailedTasks)
	}
	if m.addconsecutive_successes != nil {
		fields = append(fields, userprofile.FieldConsecutiveSuccesses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldTrustLevel:
		return m.AddedTrustLevel()
	case userprofile.FieldTotalTasks:
		return m.AddedTotalTasks()
	case userprofile.FieldSuccessfulTasks:
		return m.AddedSuccessfulTasks()
	case userprofile.FieldFailedTasks:
		return m.AddedFailedTasks()
	case userprofile.FieldConsecutiveSuccesses:
		return m.AddedConsecutiveSuccesses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldTrustLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrustLevel(v)
		return nil
	case userprofile.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTasks(v)
		return nil
	case userprofile.FieldSuccessfulTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessfulTasks(v)
		return nil
	case userprofile.FieldFailedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedTasks(v)
		return nil
	case userprofile.FieldConsecutiveSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveSuccesses(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldDisplayName) {
		fields = append(fields, userprofile.FieldDisplayName)
	}
	if m.FieldCleared(userprofile.FieldPreferences) {
		fields = append(fields, userprofile.FieldPreferences)
	}
	if m.FieldCleared(userprofile.FieldLastTaskAt) {
		fields = append(fields, userprofile.FieldLastTaskAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case userprofile.FieldPreferences:
		m.ClearPreferences()
		return nil
	case userprofile.FieldLastTaskAt:
		m.ClearLastTaskAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldAppID:
		m.ResetAppID()
		return nil
	case userprofile.FieldExternalUserID:
		m.ResetExternalUserID()
		return nil
	case userprofile.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case userprofile.FieldTimezone:
		m.ResetTimezone()
		return nil
	case userprofile.FieldPreferences:
		m.ResetPreferences()
		return nil
	case userprofile.FieldTrustLevel:
		m.ResetTrustLevel()
		return nil
	case userprofile.FieldTotalTasks:
		m.ResetTotalTasks()
		return nil
	case userprofile.FieldSuccessfulTasks:
		m.ResetSuccessfulTasks()
		return nil
	case userprofile.FieldFailedTasks:
		m.ResetFailedTasks()
		return nil
	case userprofile.FieldConsecutiveSuccesses:
		m.ResetConsecutiveSuccesses()
		return nil
	case userprofile.FieldLastTaskAt:
		m.ResetLastTaskAt()
		return nil
	case userprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.app != nil {
		edges = append(edges, userprofile.EdgeApp)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userprofile.EdgeApp:
		if id := m.app; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapp {
		edges = append(edges, userprofile.EdgeApp)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case userprofile.EdgeApp:
		return m.clearedapp
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	switch name {
	case userprofile.EdgeApp:
		m.ClearApp()
		return nil
	}
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	switch name {
	case userprofile.EdgeApp:
		m.ResetApp()
		return nil
	}
	return fmt.Errorf("unknown UserProfile edge %s", name)
}
