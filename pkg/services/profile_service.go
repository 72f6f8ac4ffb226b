package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/userprofile"
	"github.com/loop-symphony/symphony/pkg/models"
)

// ProfileService manages user profiles and the trust metrics stored on
// them. Profiles are keyed (app_id, external_user_id) and auto-created
// the first time a user id shows up.
type ProfileService struct {
	client *ent.Client
}

// NewProfileService creates a new ProfileService
func NewProfileService(client *ent.Client) *ProfileService {
	return &ProfileService{client: client}
}

// EnsureProfile returns the profile for (app, user), creating it when
// absent. A concurrent create racing on the unique index resolves by
// re-reading.
func (s *ProfileService) EnsureProfile(ctx context.Context, appID, userID string) (*ent.UserProfile, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	profile, err := s.get(ctx, appID, userID)
	if err == nil {
		return profile, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.UserProfile.Create().
		SetID(uuid.New().String()).
		SetAppID(appID).
		SetExternalUserID(userID).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.get(ctx, appID, userID)
		}
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	return created, nil
}

// GetProfile retrieves a profile by its (app, user) key.
func (s *ProfileService) GetProfile(ctx context.Context, appID, userID string) (*ent.UserProfile, error) {
	return s.get(ctx, appID, userID)
}

func (s *ProfileService) get(ctx context.Context, appID, userID string) (*ent.UserProfile, error) {
	profile, err := s.client.UserProfile.Query().
		Where(
			appScoped[predicate.UserProfile](appID),
			userprofile.ExternalUserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return profile, nil
}

// TrustMetrics reads the trust counters for (app, user). A user that has
// never run a task gets zero-valued metrics at level 0.
func (s *ProfileService) TrustMetrics(ctx context.Context, appID, userID string) (*models.TrustMetrics, error) {
	profile, err := s.EnsureProfile(ctx, appID, userID)
	if err != nil {
		return nil, err
	}
	return metricsFromProfile(profile), nil
}

// RecordTaskTerminal folds one terminal task into the trust counters:
// totals always move, success extends the streak, failure resets it.
func (s *ProfileService) RecordTaskTerminal(ctx context.Context, appID, userID string, success bool) (*models.TrustMetrics, error) {
	profile, err := s.EnsureProfile(ctx, appID, userID)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.UserProfile.UpdateOneID(profile.ID).
		AddTotalTasks(1).
		SetLastTaskAt(time.Now())
	if success {
		update = update.
			AddSuccessfulTasks(1).
			AddConsecutiveSuccesses(1)
	} else {
		update = update.
			AddFailedTasks(1).
			SetConsecutiveSuccesses(0)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record task terminal: %w", err)
	}

	return metricsFromProfile(updated), nil
}

// SetTrustLevel sets the trust level. This is the only path that changes
// it; nothing upgrades automatically.
func (s *ProfileService) SetTrustLevel(ctx context.Context, appID, userID string, level int) (*models.TrustMetrics, error) {
	if level < models.TrustSupervised || level > models.TrustMinimal {
		return nil, NewValidationError("trust_level", "must be 0, 1 or 2")
	}

	profile, err := s.EnsureProfile(ctx, appID, userID)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.UserProfile.UpdateOneID(profile.ID).
		SetTrustLevel(level).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set trust level: %w", err)
	}

	return metricsFromProfile(updated), nil
}

func metricsFromProfile(p *ent.UserProfile) *models.TrustMetrics {
	return &models.TrustMetrics{
		AppID:              p.AppID,
		UserID:             p.ExternalUserID,
		Level:              p.TrustLevel,
		TotalTasks:         p.TotalTasks,
		SuccessfulTasks:    p.SuccessfulTasks,
		FailedTasks:        p.FailedTasks,
		ConsecutiveSuccess: p.ConsecutiveSuccesses,
		LastTaskAt:         p.LastTaskAt,
	}
}
