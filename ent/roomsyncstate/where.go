// Code generated by ent, DO NOT EDIT.

package roomsyncstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldContainsFold(FieldID, id))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldRoomID, v))
}

// RoomName applies equality check predicate on the "room_name" field. It's identical to RoomNameEQ.
func RoomName(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldRoomName, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastLoad applies equality check predicate on the "last_load" field. It's identical to LastLoadEQ.
func LastLoad(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldLastLoad, v))
}

// HeartbeatCount applies equality check predicate on the "heartbeat_count" field. It's identical to HeartbeatCountEQ.
func HeartbeatCount(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldHeartbeatCount, v))
}

// LearningsReceived applies equality check predicate on the "learnings_received" field. It's identical to LearningsReceivedEQ.
func LearningsReceived(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldLearningsReceived, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldContainsFold(FieldRoomID, v))
}

// RoomNameEQ applies the EQ predicate on the "room_name" field.
func RoomNameEQ(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldRoomName, v))
}

// RoomNameNEQ applies the NEQ predicate on the "room_name" field.
func RoomNameNEQ(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldRoomName, v))
}

// RoomNameIn applies the In predicate on the "room_name" field.
func RoomNameIn(vs ...string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldRoomName, vs...))
}

// RoomNameNotIn applies the NotIn predicate on the "room_name" field.
func RoomNameNotIn(vs ...string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldRoomName, vs...))
}

// RoomNameGT applies the GT predicate on the "room_name" field.
func RoomNameGT(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldRoomName, v))
}

// RoomNameGTE applies the GTE predicate on the "room_name" field.
func RoomNameGTE(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldRoomName, v))
}

// RoomNameLT applies the LT predicate on the "room_name" field.
func RoomNameLT(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldRoomName, v))
}

// RoomNameLTE applies the LTE predicate on the "room_name" field.
func RoomNameLTE(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldRoomName, v))
}

// RoomNameContains applies the Contains predicate on the "room_name" field.
func RoomNameContains(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldContains(FieldRoomName, v))
}

// RoomNameHasPrefix applies the HasPrefix predicate on the "room_name" field.
func RoomNameHasPrefix(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldHasPrefix(FieldRoomName, v))
}

// RoomNameHasSuffix applies the HasSuffix predicate on the "room_name" field.
func RoomNameHasSuffix(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldHasSuffix(FieldRoomName, v))
}

// RoomNameIsNil applies the IsNil predicate on the "room_name" field.
func RoomNameIsNil() predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIsNull(FieldRoomName))
}

// RoomNameNotNil applies the NotNil predicate on the "room_name" field.
func RoomNameNotNil() predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotNull(FieldRoomName))
}

// RoomNameEqualFold applies the EqualFold predicate on the "room_name" field.
func RoomNameEqualFold(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEqualFold(FieldRoomName, v))
}

// RoomNameContainsFold applies the ContainsFold predicate on the "room_name" field.
func RoomNameContainsFold(v string) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldContainsFold(FieldRoomName, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastLoadEQ applies the EQ predicate on the "last_load" field.
func LastLoadEQ(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldLastLoad, v))
}

// LastLoadNEQ applies the NEQ predicate on the "last_load" field.
func LastLoadNEQ(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldLastLoad, v))
}

// LastLoadIn applies the In predicate on the "last_load" field.
func LastLoadIn(vs ...float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldLastLoad, vs...))
}

// LastLoadNotIn applies the NotIn predicate on the "last_load" field.
func LastLoadNotIn(vs ...float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldLastLoad, vs...))
}

// LastLoadGT applies the GT predicate on the "last_load" field.
func LastLoadGT(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldLastLoad, v))
}

// LastLoadGTE applies the GTE predicate on the "last_load" field.
func LastLoadGTE(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldLastLoad, v))
}

// LastLoadLT applies the LT predicate on the "last_load" field.
func LastLoadLT(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldLastLoad, v))
}

// LastLoadLTE applies the LTE predicate on the "last_load" field.
func LastLoadLTE(v float64) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldLastLoad, v))
}

// HeartbeatCountEQ applies the EQ predicate on the "heartbeat_count" field.
func HeartbeatCountEQ(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldHeartbeatCount, v))
}

// HeartbeatCountNEQ applies the NEQ predicate on the "heartbeat_count" field.
func HeartbeatCountNEQ(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldHeartbeatCount, v))
}

// HeartbeatCountIn applies the In predicate on the "heartbeat_count" field.
func HeartbeatCountIn(vs ...int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldHeartbeatCount, vs...))
}

// HeartbeatCountNotIn applies the NotIn predicate on the "heartbeat_count" field.
func HeartbeatCountNotIn(vs ...int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldHeartbeatCount, vs...))
}

// HeartbeatCountGT applies the GT predicate on the "heartbeat_count" field.
func HeartbeatCountGT(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldHeartbeatCount, v))
}

// HeartbeatCountGTE applies the GTE predicate on the "heartbeat_count" field.
func HeartbeatCountGTE(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldHeartbeatCount, v))
}

// HeartbeatCountLT applies the LT predicate on the "heartbeat_count" field.
func HeartbeatCountLT(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldHeartbeatCount, v))
}

// HeartbeatCountLTE applies the LTE predicate on the "heartbeat_count" field.
func HeartbeatCountLTE(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldHeartbeatCount, v))
}

// LearningsReceivedEQ applies the EQ predicate on the "learnings_received" field.
func LearningsReceivedEQ(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldLearningsReceived, v))
}

// LearningsReceivedNEQ applies the NEQ predicate on the "learnings_received" field.
func LearningsReceivedNEQ(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldLearningsReceived, v))
}

// LearningsReceivedIn applies the In predicate on the "learnings_received" field.
func LearningsReceivedIn(vs ...int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldLearningsReceived, vs...))
}

// LearningsReceivedNotIn applies the NotIn predicate on the "learnings_received" field.
func LearningsReceivedNotIn(vs ...int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldLearningsReceived, vs...))
}

// LearningsReceivedGT applies the GT predicate on the "learnings_received" field.
func LearningsReceivedGT(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldLearningsReceived, v))
}

// LearningsReceivedGTE applies the GTE predicate on the "learnings_received" field.
func LearningsReceivedGTE(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldLearningsReceived, v))
}

// LearningsReceivedLT applies the LT predicate on the "learnings_received" field.
func LearningsReceivedLT(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldLearningsReceived, v))
}

// LearningsReceivedLTE applies the LTE predicate on the "learnings_received" field.
func LearningsReceivedLTE(v int) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldLearningsReceived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoomSyncState) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoomSyncState) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoomSyncState) predicate.RoomSyncState {
	return predicate.RoomSyncState(sql.NotPredicates(p))
}
