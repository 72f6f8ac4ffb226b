package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/taskiteration"
	"github.com/loop-symphony/symphony/pkg/models"
)

// IterationService persists per-iteration checkpoints. The unique
// (task_id, iteration_num) index is what keeps iteration numbers from
// being reused; a duplicate write surfaces as ErrAlreadyExists.
type IterationService struct {
	client *ent.Client
}

// NewIterationService creates a new IterationService
func NewIterationService(client *ent.Client) *IterationService {
	return &IterationService{client: client}
}

// RecordCheckpoint stores one iteration checkpoint for a task.
func (s *IterationService) RecordCheckpoint(ctx context.Context, taskID string, iteration int, phase string, input, output map[string]any, durationMS int64) (*ent.TaskIteration, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if iteration < 0 {
		return nil, NewValidationError("iteration_num", "must not be negative")
	}
	if phase == "" {
		return nil, NewValidationError("phase", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.TaskIteration.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetIterationNum(iteration).
		SetPhase(phase).
		SetDurationMs(int(durationMS))
	if input != nil {
		create = create.SetInput(input)
	}
	if output != nil {
		create = create.SetOutput(output)
	}

	created, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record checkpoint: %w", err)
	}

	return created, nil
}

// ListCheckpoints returns a task's checkpoints in iteration order. The
// task must belong to the app.
func (s *IterationService) ListCheckpoints(ctx context.Context, appID, taskID string) ([]*models.IterationCheckpoint, error) {
	exists, err := s.client.Task.Query().
		Where(task.ID(taskID), appScoped[predicate.Task](appID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := s.client.TaskIteration.Query().
		Where(taskiteration.TaskID(taskID)).
		Order(ent.Asc(taskiteration.FieldIterationNum)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	checkpoints := make([]*models.IterationCheckpoint, 0, len(rows))
	for _, row := range rows {
		checkpoints = append(checkpoints, checkpointFromRow(row))
	}
	return checkpoints, nil
}

func checkpointFromRow(row *ent.TaskIteration) *models.IterationCheckpoint {
	return &models.IterationCheckpoint{
		TaskID:       row.TaskID,
		IterationNum: row.IterationNum,
		Phase:        row.Phase,
		Input:        row.Input,
		Output:       row.Output,
		DurationMS:   int64(row.DurationMs),
		CreatedAt:    row.CreatedAt,
	}
}
