// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppsColumns holds the columns for the "apps" table.
	AppsColumns = []*schema.Column{
		{Name: "app_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "api_key", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AppsTable holds the schema information for the "apps" table.
	AppsTable = &schema.Table{
		Name:       "apps",
		Columns:    AppsColumns,
		PrimaryKey: []*schema.Column{AppsColumns[0]},
	}
	// ErrorPatternsColumns holds the columns for the "error_patterns" table.
	ErrorPatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "signature", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "occurrences", Type: field.TypeInt, Default: 1},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// ErrorPatternsTable holds the schema information for the "error_patterns" table.
	ErrorPatternsTable = &schema.Table{
		Name:       "error_patterns",
		Columns:    ErrorPatternsColumns,
		PrimaryKey: []*schema.Column{ErrorPatternsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "error_patterns_apps_error_patterns",
				Columns:    []*schema.Column{ErrorPatternsColumns[7]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "errorpattern_app_id_signature",
				Unique:  true,
				Columns: []*schema.Column{ErrorPatternsColumns[7], ErrorPatternsColumns[1]},
			},
			{
				Name:    "errorpattern_app_id_last_seen",
				Unique:  false,
				Columns: []*schema.Column{ErrorPatternsColumns[7], ErrorPatternsColumns[6]},
			},
		},
	}
	// ErrorRecordsColumns holds the columns for the "error_records" table.
	ErrorRecordsColumns = []*schema.Column{
		{Name: "error_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"tool", "instrument", "room"}},
		{Name: "kind", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// ErrorRecordsTable holds the schema information for the "error_records" table.
	ErrorRecordsTable = &schema.Table{
		Name:       "error_records",
		Columns:    ErrorRecordsColumns,
		PrimaryKey: []*schema.Column{ErrorRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "error_records_apps_error_records",
				Columns:    []*schema.Column{ErrorRecordsColumns[7]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "errorrecord_app_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ErrorRecordsColumns[7], ErrorRecordsColumns[6]},
			},
			{
				Name:    "errorrecord_app_id_source",
				Unique:  false,
				Columns: []*schema.Column{ErrorRecordsColumns[7], ErrorRecordsColumns[2]},
			},
		},
	}
	// HeartbeatsColumns holds the columns for the "heartbeats" table.
	HeartbeatsColumns = []*schema.Column{
		{Name: "heartbeat_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "query_template", Type: field.TypeString, Size: 2147483647},
		{Name: "cron_expression", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "context_template", Type: field.TypeJSON, Nullable: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// HeartbeatsTable holds the schema information for the "heartbeats" table.
	HeartbeatsTable = &schema.Table{
		Name:       "heartbeats",
		Columns:    HeartbeatsColumns,
		PrimaryKey: []*schema.Column{HeartbeatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "heartbeats_apps_heartbeats",
				Columns:    []*schema.Column{HeartbeatsColumns[12]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "heartbeat_app_id",
				Unique:  false,
				Columns: []*schema.Column{HeartbeatsColumns[12]},
			},
			{
				Name:    "heartbeat_is_active",
				Unique:  false,
				Columns: []*schema.Column{HeartbeatsColumns[8]},
			},
		},
	}
	// HeartbeatRunsColumns holds the columns for the "heartbeat_runs" table.
	HeartbeatRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "complete", "failed"}, Default: "pending"},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_id", Type: field.TypeString},
	}
	// HeartbeatRunsTable holds the schema information for the "heartbeat_runs" table.
	HeartbeatRunsTable = &schema.Table{
		Name:       "heartbeat_runs",
		Columns:    HeartbeatRunsColumns,
		PrimaryKey: []*schema.Column{HeartbeatRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "heartbeat_runs_heartbeats_runs",
				Columns:    []*schema.Column{HeartbeatRunsColumns[7]},
				RefColumns: []*schema.Column{HeartbeatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "heartbeatrun_heartbeat_id_scheduled_for",
				Unique:  true,
				Columns: []*schema.Column{HeartbeatRunsColumns[7], HeartbeatRunsColumns[2]},
			},
		},
	}
	// KnowledgeEntriesColumns holds the columns for the "knowledge_entries" table.
	KnowledgeEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "version", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// KnowledgeEntriesTable holds the schema information for the "knowledge_entries" table.
	KnowledgeEntriesTable = &schema.Table{
		Name:       "knowledge_entries",
		Columns:    KnowledgeEntriesColumns,
		PrimaryKey: []*schema.Column{KnowledgeEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_entries_apps_knowledge_entries",
				Columns:    []*schema.Column{KnowledgeEntriesColumns[6]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeentry_app_id_topic",
				Unique:  true,
				Columns: []*schema.Column{KnowledgeEntriesColumns[6], KnowledgeEntriesColumns[1]},
			},
			{
				Name:    "knowledgeentry_app_id_version",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeEntriesColumns[6], KnowledgeEntriesColumns[3]},
			},
		},
	}
	// KnowledgeSyncStatesColumns holds the columns for the "knowledge_sync_states" table.
	KnowledgeSyncStatesColumns = []*schema.Column{
		{Name: "sync_id", Type: field.TypeString, Unique: true},
		{Name: "room_id", Type: field.TypeString},
		{Name: "last_version", Type: field.TypeInt, Default: 0},
		{Name: "synced_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// KnowledgeSyncStatesTable holds the schema information for the "knowledge_sync_states" table.
	KnowledgeSyncStatesTable = &schema.Table{
		Name:       "knowledge_sync_states",
		Columns:    KnowledgeSyncStatesColumns,
		PrimaryKey: []*schema.Column{KnowledgeSyncStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_sync_states_apps_knowledge_sync_states",
				Columns:    []*schema.Column{KnowledgeSyncStatesColumns[4]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgesyncstate_room_id_app_id",
				Unique:  true,
				Columns: []*schema.Column{KnowledgeSyncStatesColumns[1], KnowledgeSyncStatesColumns[4]},
			},
		},
	}
	// NotificationChannelsColumns holds the columns for the "notification_channels" table.
	NotificationChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"telegram", "slack", "webhook"}},
		{Name: "target", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// NotificationChannelsTable holds the schema information for the "notification_channels" table.
	NotificationChannelsTable = &schema.Table{
		Name:       "notification_channels",
		Columns:    NotificationChannelsColumns,
		PrimaryKey: []*schema.Column{NotificationChannelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notification_channels_apps_notification_channels",
				Columns:    []*schema.Column{NotificationChannelsColumns[6]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notificationchannel_app_id_user_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{NotificationChannelsColumns[6], NotificationChannelsColumns[1], NotificationChannelsColumns[4]},
			},
		},
	}
	// NotificationHistoriesColumns holds the columns for the "notification_histories" table.
	NotificationHistoriesColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "channel_kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "failed", "suppressed"}},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// NotificationHistoriesTable holds the schema information for the "notification_histories" table.
	NotificationHistoriesTable = &schema.Table{
		Name:       "notification_histories",
		Columns:    NotificationHistoriesColumns,
		PrimaryKey: []*schema.Column{NotificationHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notification_histories_apps_notification_history",
				Columns:    []*schema.Column{NotificationHistoriesColumns[7]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notificationhistory_app_id_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationHistoriesColumns[7], NotificationHistoriesColumns[1], NotificationHistoriesColumns[6]},
			},
			{
				Name:    "notificationhistory_task_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationHistoriesColumns[2]},
			},
		},
	}
	// NotificationPreferencesColumns holds the columns for the "notification_preferences" table.
	NotificationPreferencesColumns = []*schema.Column{
		{Name: "preference_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "quiet_hours_start", Type: field.TypeInt, Nullable: true},
		{Name: "quiet_hours_end", Type: field.TypeInt, Nullable: true},
		{Name: "outcomes", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// NotificationPreferencesTable holds the schema information for the "notification_preferences" table.
	NotificationPreferencesTable = &schema.Table{
		Name:       "notification_preferences",
		Columns:    NotificationPreferencesColumns,
		PrimaryKey: []*schema.Column{NotificationPreferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notification_preferences_apps_notification_preferences",
				Columns:    []*schema.Column{NotificationPreferencesColumns[8]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notificationpreference_app_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{NotificationPreferencesColumns[8], NotificationPreferencesColumns[1]},
			},
		},
	}
	// RoomLearningsColumns holds the columns for the "room_learnings" table.
	RoomLearningsColumns = []*schema.Column{
		{Name: "learning_id", Type: field.TypeString, Unique: true},
		{Name: "room_id", Type: field.TypeString},
		{Name: "app_id", Type: field.TypeString, Nullable: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "received_at", Type: field.TypeTime},
	}
	// RoomLearningsTable holds the schema information for the "room_learnings" table.
	RoomLearningsTable = &schema.Table{
		Name:       "room_learnings",
		Columns:    RoomLearningsColumns,
		PrimaryKey: []*schema.Column{RoomLearningsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roomlearning_room_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{RoomLearningsColumns[1], RoomLearningsColumns[5]},
			},
			{
				Name:    "roomlearning_app_id",
				Unique:  false,
				Columns: []*schema.Column{RoomLearningsColumns[2]},
			},
		},
	}
	// RoomSyncStatesColumns holds the columns for the "room_sync_states" table.
	RoomSyncStatesColumns = []*schema.Column{
		{Name: "room_sync_id", Type: field.TypeString, Unique: true},
		{Name: "room_id", Type: field.TypeString, Unique: true},
		{Name: "room_name", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime},
		{Name: "last_load", Type: field.TypeFloat64, Default: 0},
		{Name: "heartbeat_count", Type: field.TypeInt, Default: 0},
		{Name: "learnings_received", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoomSyncStatesTable holds the schema information for the "room_sync_states" table.
	RoomSyncStatesTable = &schema.Table{
		Name:       "room_sync_states",
		Columns:    RoomSyncStatesColumns,
		PrimaryKey: []*schema.Column{RoomSyncStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roomsyncstate_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RoomSyncStatesColumns[3]},
			},
		},
	}
	// SavedArrangementsColumns holds the columns for the "saved_arrangements" table.
	SavedArrangementsColumns = []*schema.Column{
		{Name: "arrangement_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"sequential", "parallel", "cross_room"}},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "merge", Type: field.TypeString, Default: "synthesis"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// SavedArrangementsTable holds the schema information for the "saved_arrangements" table.
	SavedArrangementsTable = &schema.Table{
		Name:       "saved_arrangements",
		Columns:    SavedArrangementsColumns,
		PrimaryKey: []*schema.Column{SavedArrangementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "saved_arrangements_apps_arrangements",
				Columns:    []*schema.Column{SavedArrangementsColumns[8]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "savedarrangement_app_id_name",
				Unique:  true,
				Columns: []*schema.Column{SavedArrangementsColumns[8], SavedArrangementsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "request", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "awaiting_approval", "running", "complete", "failed", "cancelled"}, Default: "pending"},
		{Name: "outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"complete", "saturated", "bounded", "inconclusive"}},
		{Name: "instrument", Type: field.TypeString, Nullable: true},
		{Name: "process_type", Type: field.TypeString, Nullable: true},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "app_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_apps_tasks",
				Columns:    []*schema.Column{TasksColumns[14]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_app_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14], TasksColumns[4]},
			},
			{
				Name:    "task_app_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14], TasksColumns[11]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
		},
	}
	// TaskIterationsColumns holds the columns for the "task_iterations" table.
	TaskIterationsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "iteration_num", Type: field.TypeInt},
		{Name: "phase", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskIterationsTable holds the schema information for the "task_iterations" table.
	TaskIterationsTable = &schema.Table{
		Name:       "task_iterations",
		Columns:    TaskIterationsColumns,
		PrimaryKey: []*schema.Column{TaskIterationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_iterations_tasks_iterations",
				Columns:    []*schema.Column{TaskIterationsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskiteration_task_id_iteration_num",
				Unique:  true,
				Columns: []*schema.Column{TaskIterationsColumns[7], TaskIterationsColumns[1]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "external_user_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "trust_level", Type: field.TypeInt, Default: 0},
		{Name: "total_tasks", Type: field.TypeInt, Default: 0},
		{Name: "successful_tasks", Type: field.TypeInt, Default: 0},
		{Name: "failed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_successes", Type: field.TypeInt, Default: 0},
		{Name: "last_task_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "app_id", Type: field.TypeString},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_profiles_apps_user_profiles",
				Columns:    []*schema.Column{UserProfilesColumns[13]},
				RefColumns: []*schema.Column{AppsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_app_id_external_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserProfilesColumns[13], UserProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppsTable,
		ErrorPatternsTable,
		ErrorRecordsTable,
		HeartbeatsTable,
		HeartbeatRunsTable,
		KnowledgeEntriesTable,
		KnowledgeSyncStatesTable,
		NotificationChannelsTable,
		NotificationHistoriesTable,
		NotificationPreferencesTable,
		RoomLearningsTable,
		RoomSyncStatesTable,
		SavedArrangementsTable,
		TasksTable,
		TaskIterationsTable,
		UserProfilesTable,
	}
)

func init() {
	ErrorPatternsTable.ForeignKeys[0].RefTable = AppsTable
	ErrorRecordsTable.ForeignKeys[0].RefTable = AppsTable
	HeartbeatsTable.ForeignKeys[0].RefTable = AppsTable
	HeartbeatRunsTable.ForeignKeys[0].RefTable = HeartbeatsTable
	KnowledgeEntriesTable.ForeignKeys[0].RefTable = AppsTable
	KnowledgeSyncStatesTable.ForeignKeys[0].RefTable = AppsTable
	NotificationChannelsTable.ForeignKeys[0].RefTable = AppsTable
	NotificationHistoriesTable.ForeignKeys[0].RefTable = AppsTable
	NotificationPreferencesTable.ForeignKeys[0].RefTable = AppsTable
	SavedArrangementsTable.ForeignKeys[0].RefTable = AppsTable
	TasksTable.ForeignKeys[0].RefTable = AppsTable
	TaskIterationsTable.ForeignKeys[0].RefTable = TasksTable
	UserProfilesTable.ForeignKeys[0].RefTable = AppsTable
}
