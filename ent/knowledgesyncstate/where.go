// Code generated by ent, DO NOT EDIT.

package knowledgesyncstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldContainsFold(FieldID, id))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldRoomID, v))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldAppID, v))
}

// LastVersion applies equality check predicate on the "last_version" field. It's identical to LastVersionEQ.
func LastVersion(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldLastVersion, v))
}

// SyncedAt applies equality check predicate on the "synced_at" field. It's identical to SyncedAtEQ.
func SyncedAt(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldSyncedAt, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldContainsFold(FieldRoomID, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldContainsFold(FieldAppID, v))
}

// LastVersionEQ applies the EQ predicate on the "last_version" field.
func LastVersionEQ(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldLastVersion, v))
}

// LastVersionNEQ applies the NEQ predicate on the "last_version" field.
func LastVersionNEQ(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNEQ(FieldLastVersion, v))
}

// LastVersionIn applies the In predicate on the "last_version" field.
func LastVersionIn(vs ...int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldIn(FieldLastVersion, vs...))
}

// LastVersionNotIn applies the NotIn predicate on the "last_version" field.
func LastVersionNotIn(vs ...int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNotIn(FieldLastVersion, vs...))
}

// LastVersionGT applies the GT predicate on the "last_version" field.
func LastVersionGT(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGT(FieldLastVersion, v))
}

// LastVersionGTE applies the GTE predicate on the "last_version" field.
func LastVersionGTE(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGTE(FieldLastVersion, v))
}

// LastVersionLT applies the LT predicate on the "last_version" field.
func LastVersionLT(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLT(FieldLastVersion, v))
}

// LastVersionLTE applies the LTE predicate on the "last_version" field.
func LastVersionLTE(v int) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLTE(FieldLastVersion, v))
}

// SyncedAtEQ applies the EQ predicate on the "synced_at" field.
func SyncedAtEQ(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldEQ(FieldSyncedAt, v))
}

// SyncedAtNEQ applies the NEQ predicate on the "synced_at" field.
func SyncedAtNEQ(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNEQ(FieldSyncedAt, v))
}

// SyncedAtIn applies the In predicate on the "synced_at" field.
func SyncedAtIn(vs ...time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldIn(FieldSyncedAt, vs...))
}

// SyncedAtNotIn applies the NotIn predicate on the "synced_at" field.
func SyncedAtNotIn(vs ...time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldNotIn(FieldSyncedAt, vs...))
}

// SyncedAtGT applies the GT predicate on the "synced_at" field.
func SyncedAtGT(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGT(FieldSyncedAt, v))
}

// SyncedAtGTE applies the GTE predicate on the "synced_at" field.
func SyncedAtGTE(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldGTE(FieldSyncedAt, v))
}

// SyncedAtLT applies the LT predicate on the "synced_at" field.
func SyncedAtLT(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLT(FieldSyncedAt, v))
}

// SyncedAtLTE applies the LTE predicate on the "synced_at" field.
func SyncedAtLTE(v time.Time) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.FieldLTE(FieldSyncedAt, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeSyncState) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeSyncState) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeSyncState) predicate.KnowledgeSyncState {
	return predicate.KnowledgeSyncState(sql.NotPredicates(p))
}
