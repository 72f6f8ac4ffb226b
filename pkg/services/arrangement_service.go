package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/pkg/models"
)

// ArrangementService stores reusable compositions. Validation happens
// here so a saved arrangement is always executable later.
type ArrangementService struct {
	client *ent.Client
}

// NewArrangementService creates a new ArrangementService
func NewArrangementService(client *ent.Client) *ArrangementService {
	return &ArrangementService{client: client}
}

// ValidateArrangement checks a spec the same way execution will read it.
func ValidateArrangement(spec *models.ArrangementSpec) error {
	if spec == nil {
		return NewValidationError("arrangement", "required")
	}
	if len(spec.Steps) == 0 {
		return NewValidationError("steps", "at least one step required")
	}
	switch spec.Kind {
	case models.ArrangementSequential, models.ArrangementParallel:
		for i, step := range spec.Steps {
			if step.Instrument == "" {
				return NewValidationError("steps", fmt.Sprintf("step %d: instrument required", i))
			}
		}
	case models.ArrangementCrossRoom:
		for i, step := range spec.Steps {
			if step.RoomID == "" {
				return NewValidationError("steps", fmt.Sprintf("step %d: room_id required", i))
			}
			if step.SubQuery == "" {
				return NewValidationError("steps", fmt.Sprintf("step %d: sub_query required", i))
			}
		}
	default:
		return NewValidationError("kind", fmt.Sprintf("unknown arrangement kind %q", spec.Kind))
	}
	return nil
}

// CreateArrangement saves a named composition for later reuse.
func (s *ArrangementService) CreateArrangement(ctx context.Context, appID string, spec *models.ArrangementSpec) (*ent.SavedArrangement, error) {
	if appID == "" {
		return nil, NewValidationError("app_id", "required")
	}
	if spec != nil && spec.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := ValidateArrangement(spec); err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.SavedArrangement.Create().
		SetID(uuid.New().String()).
		SetAppID(appID).
		SetName(spec.Name).
		SetKind(savedarrangement.Kind(spec.Kind)).
		SetSteps(spec.Steps)
	if spec.Description != "" {
		create = create.SetDescription(spec.Description)
	}
	if spec.Merge != "" {
		create = create.SetMerge(spec.Merge)
	}

	created, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create arrangement: %w", err)
	}

	return created, nil
}

// GetArrangement retrieves a saved arrangement scoped to its app.
func (s *ArrangementService) GetArrangement(ctx context.Context, appID, arrangementID string) (*ent.SavedArrangement, error) {
	row, err := s.client.SavedArrangement.Query().
		Where(savedarrangement.ID(arrangementID), appScoped[predicate.SavedArrangement](appID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get arrangement: %w", err)
	}
	return row, nil
}

// ListArrangements returns an app's saved arrangements, newest first.
func (s *ArrangementService) ListArrangements(ctx context.Context, appID string) ([]*ent.SavedArrangement, error) {
	rows, err := s.client.SavedArrangement.Query().
		Where(appScoped[predicate.SavedArrangement](appID)).
		Order(ent.Desc(savedarrangement.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list arrangements: %w", err)
	}
	return rows, nil
}

// DeleteArrangement removes a saved arrangement.
func (s *ArrangementService) DeleteArrangement(ctx context.Context, appID, arrangementID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.SavedArrangement.Delete().
		Where(savedarrangement.ID(arrangementID), appScoped[predicate.SavedArrangement](appID)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete arrangement: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SpecFromRow rebuilds the wire spec from a saved arrangement.
func SpecFromRow(row *ent.SavedArrangement) *models.ArrangementSpec {
	return &models.ArrangementSpec{
		Name:        row.Name,
		Description: row.Description,
		Kind:        models.ArrangementKind(row.Kind),
		Steps:       row.Steps,
		Merge:       row.Merge,
	}
}
