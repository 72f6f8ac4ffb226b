package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/roomlearning"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
	"github.com/loop-symphony/symphony/pkg/models"
)

// KnowledgeService owns the per-app knowledge store and the sync
// bookkeeping behind room heartbeats: which version each room has seen,
// and what each room has reported back.
type KnowledgeService struct {
	client *ent.Client
}

// NewKnowledgeService creates a new KnowledgeService
func NewKnowledgeService(client *ent.Client) *KnowledgeService {
	return &KnowledgeService{client: client}
}

// UpsertEntry writes a knowledge topic and stamps it with the next
// app-wide version. The version read and the write share a transaction
// so two concurrent upserts cannot mint the same version.
func (s *KnowledgeService) UpsertEntry(ctx context.Context, appID, topic, content string) (*ent.KnowledgeEntry, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if topic == "" {
		return nil, NewValidationError("topic", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var maxVersion []struct {
		Max int `json:"max"`
	}
	err = tx.KnowledgeEntry.Query().
		Where(appScoped[predicate.KnowledgeEntry](appID)).
		Aggregate(ent.Max(knowledgeentry.FieldVersion)).
		Scan(writeCtx, &maxVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge version: %w", err)
	}
	next := 1
	if len(maxVersion) > 0 {
		next = maxVersion[0].Max + 1
	}

	existing, err := tx.KnowledgeEntry.Query().
		Where(appScoped[predicate.KnowledgeEntry](appID), knowledgeentry.Topic(topic)).
		Only(writeCtx)

	var entry *ent.KnowledgeEntry
	switch {
	case err == nil:
		entry, err = tx.KnowledgeEntry.UpdateOneID(existing.ID).
			SetContent(content).
			SetVersion(next).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update knowledge entry: %w", err)
		}
	case ent.IsNotFound(err):
		entry, err = tx.KnowledgeEntry.Create().
			SetID(uuid.New().String()).
			SetAppID(appID).
			SetTopic(topic).
			SetContent(content).
			SetVersion(next).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to create knowledge entry: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up knowledge entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit knowledge entry: %w", err)
	}

	return entry, nil
}

// Delta returns the entries newer than the caller's cursor plus the
// current version, so the caller can advance its cursor even when the
// delta is empty.
func (s *KnowledgeService) Delta(ctx context.Context, appID string, sinceVersion int) ([]*ent.KnowledgeEntry, int, error) {
	entries, err := s.client.KnowledgeEntry.Query().
		Where(
			appScoped[predicate.KnowledgeEntry](appID),
			knowledgeentry.VersionGT(sinceVersion),
		).
		Order(ent.Asc(knowledgeentry.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read knowledge delta: %w", err)
	}

	current := sinceVersion
	for _, e := range entries {
		if e.Version > current {
			current = e.Version
		}
	}
	return entries, current, nil
}

// LastSyncedVersion reads a room's knowledge cursor for one app. A room
// never seen before starts at zero.
func (s *KnowledgeService) LastSyncedVersion(ctx context.Context, roomID, appID string) (int, error) {
	state, err := s.client.KnowledgeSyncState.Query().
		Where(
			knowledgesyncstate.RoomID(roomID),
			appScoped[predicate.KnowledgeSyncState](appID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read sync state: %w", err)
	}
	return state.LastVersion, nil
}

// RecordSync advances a room's knowledge cursor after a delivery.
func (s *KnowledgeService) RecordSync(ctx context.Context, roomID, appID string, version int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state, err := s.client.KnowledgeSyncState.Query().
		Where(
			knowledgesyncstate.RoomID(roomID),
			appScoped[predicate.KnowledgeSyncState](appID),
		).
		Only(writeCtx)
	switch {
	case err == nil:
		err = s.client.KnowledgeSyncState.UpdateOneID(state.ID).
			SetLastVersion(version).
			SetSyncedAt(time.Now()).
			Exec(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to update sync state: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = s.client.KnowledgeSyncState.Create().
			SetID(uuid.New().String()).
			SetRoomID(roomID).
			SetAppID(appID).
			SetLastVersion(version).
			Save(writeCtx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to create sync state: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up sync state: %w", err)
	}
	return nil
}

// RecordRoomHeartbeat books one room heartbeat: refreshes the room's
// sync row and stores any learnings the room piggybacked on it.
func (s *KnowledgeService) RecordRoomHeartbeat(ctx context.Context, roomID, roomName string, load float64, learnings []models.Learning) error {
	if roomID == "" {
		return NewValidationError("room_id", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	state, err := s.client.RoomSyncState.Query().
		Where(roomsyncstate.RoomID(roomID)).
		Only(writeCtx)
	switch {
	case err == nil:
		update := s.client.RoomSyncState.UpdateOneID(state.ID).
			SetLastHeartbeatAt(now).
			SetLastLoad(load).
			AddHeartbeatCount(1).
			AddLearningsReceived(len(learnings))
		if roomName != "" {
			update = update.SetRoomName(roomName)
		}
		if err := update.Exec(writeCtx); err != nil {
			return fmt.Errorf("failed to update room sync state: %w", err)
		}
	case ent.IsNotFound(err):
		create := s.client.RoomSyncState.Create().
			SetID(uuid.New().String()).
			SetRoomID(roomID).
			SetLastHeartbeatAt(now).
			SetLastLoad(load).
			SetHeartbeatCount(1).
			SetLearningsReceived(len(learnings))
		if roomName != "" {
			create = create.SetRoomName(roomName)
		}
		if _, err := create.Save(writeCtx); err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to create room sync state: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up room sync state: %w", err)
	}

	for _, learning := range learnings {
		create := s.client.RoomLearning.Create().
			SetID(uuid.New().String()).
			SetRoomID(roomID).
			SetTopic(learning.Topic).
			SetContent(learning.Content).
			SetReceivedAt(now)
		if learning.AppID != "" {
			create = create.SetAppID(learning.AppID)
		}
		if _, err := create.Save(writeCtx); err != nil {
			return fmt.Errorf("failed to store room learning: %w", err)
		}
	}

	return nil
}

// RoomLearnings returns a room's reported learnings, newest first.
func (s *KnowledgeService) RoomLearnings(ctx context.Context, roomID string, limit int) ([]*ent.RoomLearning, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.RoomLearning.Query().
		Where(roomlearning.RoomID(roomID)).
		Order(ent.Desc(roomlearning.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list room learnings: %w", err)
	}
	return rows, nil
}
