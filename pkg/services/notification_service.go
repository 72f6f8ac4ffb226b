package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/ent/notificationpreference"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// NotificationService stores delivery rules, channels and the audit
// trail of attempts. The send path itself lives in pkg/notify; this
// layer only answers "where", "whether" and "what happened".
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// PreferenceParams carries the mutable delivery rules.
type PreferenceParams struct {
	Enabled         *bool
	QuietHoursStart *int
	QuietHoursEnd   *int
	Outcomes        []string
}

// GetPreferences returns the delivery rules for (app, user), or nil when
// the user never set any. Nil means "deliver everything".
func (s *NotificationService) GetPreferences(ctx context.Context, appID, userID string) (*ent.NotificationPreference, error) {
	pref, err := s.client.NotificationPreference.Query().
		Where(
			appScoped[predicate.NotificationPreference](appID),
			notificationpreference.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}
	return pref, nil
}

// UpsertPreferences creates or updates the delivery rules.
func (s *NotificationService) UpsertPreferences(ctx context.Context, appID, userID string, params PreferenceParams) (*ent.NotificationPreference, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	for _, hour := range []*int{params.QuietHoursStart, params.QuietHoursEnd} {
		if hour != nil && (*hour < 0 || *hour > 23) {
			return nil, NewValidationError("quiet_hours", "hours must be 0-23")
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.GetPreferences(writeCtx, appID, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		create := s.client.NotificationPreference.Create().
			SetID(uuid.New().String()).
			SetAppID(appID).
			SetUserID(userID)
		if params.Enabled != nil {
			create = create.SetEnabled(*params.Enabled)
		}
		if params.QuietHoursStart != nil {
			create = create.SetNillableQuietHoursStart(params.QuietHoursStart)
		}
		if params.QuietHoursEnd != nil {
			create = create.SetNillableQuietHoursEnd(params.QuietHoursEnd)
		}
		if params.Outcomes != nil {
			create = create.SetOutcomes(params.Outcomes)
		}
		pref, err := create.Save(writeCtx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return s.UpsertPreferences(ctx, appID, userID, params)
			}
			return nil, fmt.Errorf("failed to create notification preferences: %w", err)
		}
		return pref, nil
	}

	update := s.client.NotificationPreference.UpdateOneID(existing.ID)
	if params.Enabled != nil {
		update = update.SetEnabled(*params.Enabled)
	}
	if params.QuietHoursStart != nil {
		update = update.SetNillableQuietHoursStart(params.QuietHoursStart)
	}
	if params.QuietHoursEnd != nil {
		update = update.SetNillableQuietHoursEnd(params.QuietHoursEnd)
	}
	if params.Outcomes != nil {
		update = update.SetOutcomes(params.Outcomes)
	}
	pref, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update notification preferences: %w", err)
	}
	return pref, nil
}

// CreateChannel registers a delivery target for a user.
func (s *NotificationService) CreateChannel(ctx context.Context, appID, userID string, kind notificationchannel.Kind, target string) (*ent.NotificationChannel, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if target == "" {
		return nil, NewValidationError("target", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	channel, err := s.client.NotificationChannel.Create().
		SetID(uuid.New().String()).
		SetAppID(appID).
		SetUserID(userID).
		SetKind(kind).
		SetTarget(target).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create notification channel: %w", err)
	}
	return channel, nil
}

// ListActiveChannels returns a user's deliverable channels.
func (s *NotificationService) ListActiveChannels(ctx context.Context, appID, userID string) ([]*ent.NotificationChannel, error) {
	channels, err := s.client.NotificationChannel.Query().
		Where(
			appScoped[predicate.NotificationChannel](appID),
			notificationchannel.UserID(userID),
			notificationchannel.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification channels: %w", err)
	}
	return channels, nil
}

// DeactivateChannel turns a channel off without losing its history.
func (s *NotificationService) DeactivateChannel(ctx context.Context, appID, channelID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.NotificationChannel.Update().
		Where(
			notificationchannel.ID(channelID),
			appScoped[predicate.NotificationChannel](appID),
		).
		SetIsActive(false).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to deactivate notification channel: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordDelivery appends one attempt to the audit trail.
func (s *NotificationService) RecordDelivery(ctx context.Context, appID, userID string, taskID *string, channelKind string, status notificationhistory.Status, detail string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.NotificationHistory.Create().
		SetID(uuid.New().String()).
		SetAppID(appID).
		SetUserID(userID).
		SetChannelKind(channelKind).
		SetStatus(status)
	if taskID != nil {
		create = create.SetNillableTaskID(taskID)
	}
	if detail != "" {
		create = create.SetDetail(detail)
	}

	if _, err := create.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to record notification delivery: %w", err)
	}
	return nil
}

// ListHistory returns a user's delivery attempts, newest first.
func (s *NotificationService) ListHistory(ctx context.Context, appID, userID string, limit int) ([]*ent.NotificationHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.NotificationHistory.Query().
		Where(
			appScoped[predicate.NotificationHistory](appID),
			notificationhistory.UserID(userID),
		).
		Order(ent.Desc(notificationhistory.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification history: %w", err)
	}
	return rows, nil
}
