// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// App is the predicate function for app builders.
type App func(*sql.Selector)

// ErrorPattern is the predicate function for errorpattern builders.
type ErrorPattern func(*sql.Selector)

// ErrorRecord is the predicate function for errorrecord builders.
type ErrorRecord func(*sql.Selector)

// Heartbeat is the predicate function for heartbeat builders.
type Heartbeat func(*sql.Selector)

// HeartbeatRun is the predicate function for heartbeatrun builders.
type HeartbeatRun func(*sql.Selector)

// KnowledgeEntry is the predicate function for knowledgeentry builders.
type KnowledgeEntry func(*sql.Selector)

// KnowledgeSyncState is the predicate function for knowledgesyncstate builders.
type KnowledgeSyncState func(*sql.Selector)

// NotificationChannel is the predicate function for notificationchannel builders.
type NotificationChannel func(*sql.Selector)

// NotificationHistory is the predicate function for notificationhistory builders.
type NotificationHistory func(*sql.Selector)

// NotificationPreference is the predicate function for notificationpreference builders.
type NotificationPreference func(*sql.Selector)

// RoomLearning is the predicate function for roomlearning builders.
type RoomLearning func(*sql.Selector)

// RoomSyncState is the predicate function for roomsyncstate builders.
type RoomSyncState func(*sql.Selector)

// SavedArrangement is the predicate function for savedarrangement builders.
type SavedArrangement func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskIteration is the predicate function for taskiteration builders.
type TaskIteration func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
