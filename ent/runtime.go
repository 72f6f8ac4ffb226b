// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"github.com/loop-symphony/symphony/ent/roomlearning"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/ent/schema"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/taskiteration"
	"github.com/loop-symphony/symphony/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appFields := schema.App{}.Fields()
	_ = appFields
	// appDescIsActive is the schema descriptor for is_active field.
	appDescIsActive := appFields[3].Descriptor()
	// app.DefaultIsActive holds the default value on creation for the is_active field.
	app.DefaultIsActive = appDescIsActive.Default.(bool)
	// appDescCreatedAt is the schema descriptor for created_at field.
	appDescCreatedAt := appFields[4].Descriptor()
	// app.DefaultCreatedAt holds the default value on creation for the created_at field.
	app.DefaultCreatedAt = appDescCreatedAt.Default.(func() time.Time)
	// appDescUpdatedAt is the schema descriptor for updated_at field.
	appDescUpdatedAt := appFields[5].Descriptor()
	// app.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	app.DefaultUpdatedAt = appDescUpdatedAt.Default.(func() time.Time)
	// app.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	app.UpdateDefaultUpdatedAt = appDescUpdatedAt.UpdateDefault.(func() time.Time)
	errorpatternFields := schema.ErrorPattern{}.Fields()
	_ = errorpatternFields
	// errorpatternDescOccurrences is the schema descriptor for occurrences field.
	errorpatternDescOccurrences := errorpatternFields[5].Descriptor()
	// errorpattern.DefaultOccurrences holds the default value on creation for the occurrences field.
	errorpattern.DefaultOccurrences = errorpatternDescOccurrences.Default.(int)
	// errorpatternDescFirstSeen is the schema descriptor for first_seen field.
	errorpatternDescFirstSeen := errorpatternFields[6].Descriptor()
	// errorpattern.DefaultFirstSeen holds the default value on creation for the first_seen field.
	errorpattern.DefaultFirstSeen = errorpatternDescFirstSeen.Default.(func() time.Time)
	// errorpatternDescLastSeen is the schema descriptor for last_seen field.
	errorpatternDescLastSeen := errorpatternFields[7].Descriptor()
	// errorpattern.DefaultLastSeen holds the default value on creation for the last_seen field.
	errorpattern.DefaultLastSeen = errorpatternDescLastSeen.Default.(func() time.Time)
	errorrecordFields := schema.ErrorRecord{}.Fields()
	_ = errorrecordFields
	// errorrecordDescCreatedAt is the schema descriptor for created_at field.
	errorrecordDescCreatedAt := errorrecordFields[7].Descriptor()
	// errorrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	errorrecord.DefaultCreatedAt = errorrecordDescCreatedAt.Default.(func() time.Time)
	heartbeatFields := schema.Heartbeat{}.Fields()
	_ = heartbeatFields
	// heartbeatDescTimezone is the schema descriptor for timezone field.
	heartbeatDescTimezone := heartbeatFields[6].Descriptor()
	// heartbeat.DefaultTimezone holds the default value on creation for the timezone field.
	heartbeat.DefaultTimezone = heartbeatDescTimezone.Default.(string)
	// heartbeatDescIsActive is the schema descriptor for is_active field.
	heartbeatDescIsActive := heartbeatFields[9].Descriptor()
	// heartbeat.DefaultIsActive holds the default value on creation for the is_active field.
	heartbeat.DefaultIsActive = heartbeatDescIsActive.Default.(bool)
	// heartbeatDescCreatedAt is the schema descriptor for created_at field.
	heartbeatDescCreatedAt := heartbeatFields[11].Descriptor()
	// heartbeat.DefaultCreatedAt holds the default value on creation for the created_at field.
	heartbeat.DefaultCreatedAt = heartbeatDescCreatedAt.Default.(func() time.Time)
	// heartbeatDescUpdatedAt is the schema descriptor for updated_at field.
	heartbeatDescUpdatedAt := heartbeatFields[12].Descriptor()
	// heartbeat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	heartbeat.DefaultUpdatedAt = heartbeatDescUpdatedAt.Default.(func() time.Time)
	// heartbeat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	heartbeat.UpdateDefaultUpdatedAt = heartbeatDescUpdatedAt.UpdateDefault.(func() time.Time)
	heartbeatrunFields := schema.HeartbeatRun{}.Fields()
	_ = heartbeatrunFields
	// heartbeatrunDescCreatedAt is the schema descriptor for created_at field.
	heartbeatrunDescCreatedAt := heartbeatrunFields[6].Descriptor()
	// heartbeatrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	heartbeatrun.DefaultCreatedAt = heartbeatrunDescCreatedAt.Default.(func() time.Time)
	knowledgeentryFields := schema.KnowledgeEntry{}.Fields()
	_ = knowledgeentryFields
	// knowledgeentryDescCreatedAt is the schema descriptor for created_at field.
	knowledgeentryDescCreatedAt := knowledgeentryFields[5].Descriptor()
	// knowledgeentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeentry.DefaultCreatedAt = knowledgeentryDescCreatedAt.Default.(func() time.Time)
	// knowledgeentryDescUpdatedAt is the schema descriptor for updated_at field.
	knowledgeentryDescUpdatedAt := knowledgeentryFields[6].Descriptor()
	// knowledgeentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowledgeentry.DefaultUpdatedAt = knowledgeentryDescUpdatedAt.Default.(func() time.Time)
	// knowledgeentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowledgeentry.UpdateDefaultUpdatedAt = knowledgeentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	knowledgesyncstateFields := schema.KnowledgeSyncState{}.Fields()
	_ = knowledgesyncstateFields
	// knowledgesyncstateDescLastVersion is the schema descriptor for last_version field.
	knowledgesyncstateDescLastVersion := knowledgesyncstateFields[3].Descriptor()
	// knowledgesyncstate.DefaultLastVersion holds the default value on creation for the last_version field.
	knowledgesyncstate.DefaultLastVersion = knowledgesyncstateDescLastVersion.Default.(int)
	// knowledgesyncstateDescSyncedAt is the schema descriptor for synced_at field.
	knowledgesyncstateDescSyncedAt := knowledgesyncstateFields[4].Descriptor()
	// knowledgesyncstate.DefaultSyncedAt holds the default value on creation for the synced_at field.
	knowledgesyncstate.DefaultSyncedAt = knowledgesyncstateDescSyncedAt.Default.(func() time.Time)
	notificationchannelFields := schema.NotificationChannel{}.Fields()
	_ = notificationchannelFields
	// notificationchannelDescIsActive is the schema descriptor for is_active field.
	notificationchannelDescIsActive := notificationchannelFields[5].Descriptor()
	// notificationchannel.DefaultIsActive holds the default value on creation for the is_active field.
	notificationchannel.DefaultIsActive = notificationchannelDescIsActive.Default.(bool)
	// notificationchannelDescCreatedAt is the schema descriptor for created_at field.
	notificationchannelDescCreatedAt := notificationchannelFields[6].Descriptor()
	// notificationchannel.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationchannel.DefaultCreatedAt = notificationchannelDescCreatedAt.Default.(func() time.Time)
	notificationhistoryFields := schema.NotificationHistory{}.Fields()
	_ = notificationhistoryFields
	// notificationhistoryDescCreatedAt is the schema descriptor for created_at field.
	notificationhistoryDescCreatedAt := notificationhistoryFields[7].Descriptor()
	// notificationhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationhistory.DefaultCreatedAt = notificationhistoryDescCreatedAt.Default.(func() time.Time)
	notificationpreferenceFields := schema.NotificationPreference{}.Fields()
	_ = notificationpreferenceFields
	// notificationpreferenceDescEnabled is the schema descriptor for enabled field.
	notificationpreferenceDescEnabled := notificationpreferenceFields[3].Descriptor()
	// notificationpreference.DefaultEnabled holds the default value on creation for the enabled field.
	notificationpreference.DefaultEnabled = notificationpreferenceDescEnabled.Default.(bool)
	// notificationpreferenceDescCreatedAt is the schema descriptor for created_at field.
	notificationpreferenceDescCreatedAt := notificationpreferenceFields[7].Descriptor()
	// notificationpreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpreference.DefaultCreatedAt = notificationpreferenceDescCreatedAt.Default.(func() time.Time)
	// notificationpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	notificationpreferenceDescUpdatedAt := notificationpreferenceFields[8].Descriptor()
	// notificationpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpreference.DefaultUpdatedAt = notificationpreferenceDescUpdatedAt.Default.(func() time.Time)
	// notificationpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpreference.UpdateDefaultUpdatedAt = notificationpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	roomlearningFields := schema.RoomLearning{}.Fields()
	_ = roomlearningFields
	// roomlearningDescReceivedAt is the schema descriptor for received_at field.
	roomlearningDescReceivedAt := roomlearningFields[5].Descriptor()
	// roomlearning.DefaultReceivedAt holds the default value on creation for the received_at field.
	roomlearning.DefaultReceivedAt = roomlearningDescReceivedAt.Default.(func() time.Time)
	roomsyncstateFields := schema.RoomSyncState{}.Fields()
	_ = roomsyncstateFields
	// roomsyncstateDescLastHeartbeatAt is the schema descriptor for last_heartbeat_at field.
	roomsyncstateDescLastHeartbeatAt := roomsyncstateFields[3].Descriptor()
	// roomsyncstate.DefaultLastHeartbeatAt holds the default value on creation for the last_heartbeat_at field.
	roomsyncstate.DefaultLastHeartbeatAt = roomsyncstateDescLastHeartbeatAt.Default.(func() time.Time)
	// roomsyncstateDescLastLoad is the schema descriptor for last_load field.
	roomsyncstateDescLastLoad := roomsyncstateFields[4].Descriptor()
	// roomsyncstate.DefaultLastLoad holds the default value on creation for the last_load field.
	roomsyncstate.DefaultLastLoad = roomsyncstateDescLastLoad.Default.(float64)
	// roomsyncstateDescHeartbeatCount is the schema descriptor for heartbeat_count field.
	roomsyncstateDescHeartbeatCount := roomsyncstateFields[5].Descriptor()
	// roomsyncstate.DefaultHeartbeatCount holds the default value on creation for the heartbeat_count field.
	roomsyncstate.DefaultHeartbeatCount = roomsyncstateDescHeartbeatCount.Default.(int)
	// roomsyncstateDescLearningsReceived is the schema descriptor for learnings_received field.
	roomsyncstateDescLearningsReceived := roomsyncstateFields[6].Descriptor()
	// roomsyncstate.DefaultLearningsReceived holds the default value on creation for the learnings_received field.
	roomsyncstate.DefaultLearningsReceived = roomsyncstateDescLearningsReceived.Default.(int)
	// roomsyncstateDescCreatedAt is the schema descriptor for created_at field.
	roomsyncstateDescCreatedAt := roomsyncstateFields[7].Descriptor()
	// roomsyncstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	roomsyncstate.DefaultCreatedAt = roomsyncstateDescCreatedAt.Default.(func() time.Time)
	// roomsyncstateDescUpdatedAt is the schema descriptor for updated_at field.
	roomsyncstateDescUpdatedAt := roomsyncstateFields[8].Descriptor()
	// roomsyncstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	roomsyncstate.DefaultUpdatedAt = roomsyncstateDescUpdatedAt.Default.(func() time.Time)
	// roomsyncstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	roomsyncstate.UpdateDefaultUpdatedAt = roomsyncstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	savedarrangementFields := schema.SavedArrangement{}.Fields()
	_ = savedarrangementFields
	// savedarrangementDescMerge is the schema descriptor for merge field.
	savedarrangementDescMerge := savedarrangementFields[6].Descriptor()
	// savedarrangement.DefaultMerge holds the default value on creation for the merge field.
	savedarrangement.DefaultMerge = savedarrangementDescMerge.Default.(string)
	// savedarrangementDescCreatedAt is the schema descriptor for created_at field.
	savedarrangementDescCreatedAt := savedarrangementFields[7].Descriptor()
	// savedarrangement.DefaultCreatedAt holds the default value on creation for the created_at field.
	savedarrangement.DefaultCreatedAt = savedarrangementDescCreatedAt.Default.(func() time.Time)
	// savedarrangementDescUpdatedAt is the schema descriptor for updated_at field.
	savedarrangementDescUpdatedAt := savedarrangementFields[8].Descriptor()
	// savedarrangement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	savedarrangement.DefaultUpdatedAt = savedarrangementDescUpdatedAt.Default.(func() time.Time)
	// savedarrangement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	savedarrangement.UpdateDefaultUpdatedAt = savedarrangementDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[13].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskiterationFields := schema.TaskIteration{}.Fields()
	_ = taskiterationFields
	// taskiterationDescCreatedAt is the schema descriptor for created_at field.
	taskiterationDescCreatedAt := taskiterationFields[7].Descriptor()
	// taskiteration.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskiteration.DefaultCreatedAt = taskiterationDescCreatedAt.Default.(func() time.Time)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescTimezone is the schema descriptor for timezone field.
	userprofileDescTimezone := userprofileFields[4].Descriptor()
	// userprofile.DefaultTimezone holds the default value on creation for the timezone field.
	userprofile.DefaultTimezone = userprofileDescTimezone.Default.(string)
	// userprofileDescTrustLevel is the schema descriptor for trust_level field.
	userprofileDescTrustLevel := userprofileFields[6].Descriptor()
	// userprofile.DefaultTrustLevel holds the default value on creation for the trust_level field.
	userprofile.DefaultTrustLevel = userprofileDescTrustLevel.Default.(int)
	// userprofileDescTotalTasks is the schema descriptor for total_tasks field.
	userprofileDescTotalTasks := userprofileFields[7].Descriptor()
	// userprofile.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	userprofile.DefaultTotalTasks = userprofileDescTotalTasks.Default.(int)
	// userprofileDescSuccessfulTasks is the schema descriptor for successful_tasks field.
	userprofileDescSuccessfulTasks := userprofileFields[8].Descriptor()
	// userprofile.DefaultSuccessfulTasks holds the default value on creation for the successful_tasks field.
	userprofile.DefaultSuccessfulTasks = userprofileDescSuccessfulTasks.Default.(int)
	// userprofileDescFailedTasks is the schema descriptor for failed_tasks field.
	userprofileDescFailedTasks := userprofileFields[9].Descriptor()
	// userprofile.DefaultFailedTasks holds the default value on creation for the failed_tasks field.
	userprofile.DefaultFailedTasks = userprofileDescFailedTasks.Default.(int)
	// userprofileDescConsecutiveSuccesses is the schema descriptor for consecutive_successes field.
	userprofileDescConsecutiveSuccesses := userprofileFields[10].Descriptor()
	// userprofile.DefaultConsecutiveSuccesses holds the default value on creation for the consecutive_successes field.
	userprofile.DefaultConsecutiveSuccesses = userprofileDescConsecutiveSuccesses.Default.(int)
	// userprofileDescCreatedAt is the schema descriptor for created_at field.
	userprofileDescCreatedAt := userprofileFields[12].Descriptor()
	// userprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprofile.DefaultCreatedAt = userprofileDescCreatedAt.Default.(func() time.Time)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[13].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
