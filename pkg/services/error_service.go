package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/errorpattern"
	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ErrorService journals tool, instrument and room failures and folds
// repeats into per-app patterns so noisy failures show up as one row
// with a count instead of a thousand rows.
type ErrorService struct {
	client *ent.Client
}

// NewErrorService creates a new ErrorService
func NewErrorService(client *ent.Client) *ErrorService {
	return &ErrorService{client: client}
}

// signatureFor collapses an error into its pattern key. Whitespace is
// normalized and the message truncated so ids and payload fragments in
// the tail do not split one pattern into many.
func signatureFor(source errorrecord.Source, kind, message string) string {
	msg := strings.ToLower(strings.Join(strings.Fields(message), " "))
	if len(msg) > 80 {
		msg = msg[:80]
	}
	return fmt.Sprintf("%s:%s:%s", source, kind, msg)
}

// RecordError journals one failure and bumps its pattern counter.
func (s *ErrorService) RecordError(ctx context.Context, appID string, taskID *string, source errorrecord.Source, kind, message string, errCtx map[string]interface{}) (*ent.ErrorRecord, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if message == "" {
		return nil, NewValidationError("message", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	create := tx.ErrorRecord.Create().
		SetID(uuid.New().String()).
		SetAppID(appID).
		SetSource(source).
		SetKind(kind).
		SetMessage(message)
	if taskID != nil {
		create = create.SetNillableTaskID(taskID)
	}
	if errCtx != nil {
		create = create.SetContext(errCtx)
	}

	record, err := create.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record error: %w", err)
	}

	now := time.Now()
	signature := signatureFor(source, kind, message)
	pattern, err := tx.ErrorPattern.Query().
		Where(appScoped[predicate.ErrorPattern](appID), errorpattern.Signature(signature)).
		Only(writeCtx)
	switch {
	case err == nil:
		_, err = tx.ErrorPattern.UpdateOneID(pattern.ID).
			AddOccurrences(1).
			SetLastSeen(now).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update error pattern: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = tx.ErrorPattern.Create().
			SetID(uuid.New().String()).
			SetAppID(appID).
			SetSignature(signature).
			SetSource(string(source)).
			SetKind(kind).
			SetFirstSeen(now).
			SetLastSeen(now).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to create error pattern: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up error pattern: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit error record: %w", err)
	}

	return record, nil
}

// RecentErrors returns an app's latest error records.
func (s *ErrorService) RecentErrors(ctx context.Context, appID string, limit int) ([]*ent.ErrorRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	records, err := s.client.ErrorRecord.Query().
		Where(appScoped[predicate.ErrorRecord](appID)).
		Order(ent.Desc(errorrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent errors: %w", err)
	}
	return records, nil
}

// TopPatterns returns the most frequent error patterns for an app.
func (s *ErrorService) TopPatterns(ctx context.Context, appID string, limit int) ([]*ent.ErrorPattern, error) {
	if limit <= 0 {
		limit = 10
	}
	patterns, err := s.client.ErrorPattern.Query().
		Where(appScoped[predicate.ErrorPattern](appID)).
		Order(ent.Desc(errorpattern.FieldOccurrences)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list error patterns: %w", err)
	}
	return patterns, nil
}

// CountRecent counts an app's errors inside the given window. The system
// health report uses this as its error-rate signal.
func (s *ErrorService) CountRecent(ctx context.Context, appID string, window time.Duration) (int, error) {
	n, err := s.client.ErrorRecord.Query().
		Where(
			appScoped[predicate.ErrorRecord](appID),
			errorrecord.CreatedAtGTE(time.Now().Add(-window)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent errors: %w", err)
	}
	return n, nil
}

// CountRecentAll counts errors across every app inside the window, for
// the server-wide health sweep.
func (s *ErrorService) CountRecentAll(ctx context.Context, window time.Duration) (int, error) {
	n, err := s.client.ErrorRecord.Query().
		Where(errorrecord.CreatedAtGTE(time.Now().Add(-window))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent errors: %w", err)
	}
	return n, nil
}
