package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
	testdb "github.com/loop-symphony/symphony/test/database"
)

func TestValidateArrangement(t *testing.T) {
	tests := []struct {
		name    string
		spec    *models.ArrangementSpec
		wantErr bool
	}{
		{
			name: "valid sequential",
			spec: &models.ArrangementSpec{
				Kind: models.ArrangementSequential,
				Steps: []models.ArrangementStep{
					{Instrument: "research"},
					{Instrument: "synthesis"},
				},
			},
		},
		{
			name: "valid parallel",
			spec: &models.ArrangementSpec{
				Kind: models.ArrangementParallel,
				Steps: []models.ArrangementStep{
					{Instrument: "research"},
					{Instrument: "note"},
				},
			},
		},
		{
			name: "valid cross room",
			spec: &models.ArrangementSpec{
				Kind: models.ArrangementCrossRoom,
				Steps: []models.ArrangementStep{
					{RoomID: "room-a", SubQuery: "local context"},
				},
			},
		},
		{
			name:    "nil spec",
			spec:    nil,
			wantErr: true,
		},
		{
			name:    "no steps",
			spec:    &models.ArrangementSpec{Kind: models.ArrangementSequential},
			wantErr: true,
		},
		{
			name: "sequential step missing instrument",
			spec: &models.ArrangementSpec{
				Kind:  models.ArrangementSequential,
				Steps: []models.ArrangementStep{{}},
			},
			wantErr: true,
		},
		{
			name: "cross room step missing sub query",
			spec: &models.ArrangementSpec{
				Kind:  models.ArrangementCrossRoom,
				Steps: []models.ArrangementStep{{RoomID: "room-a"}},
			},
			wantErr: true,
		},
		{
			name: "unknown kind",
			spec: &models.ArrangementSpec{
				Kind:  "fanout",
				Steps: []models.ArrangementStep{{Instrument: "research"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArrangement(tt.spec)
			if tt.wantErr {
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArrangementService_CRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArrangementService(client.Client)
	ctx := context.Background()
	app := createTestApp(t, client.Client)

	spec := &models.ArrangementSpec{
		Name:        "deep-dive",
		Description: "research then synthesize",
		Kind:        models.ArrangementSequential,
		Steps: []models.ArrangementStep{
			{Instrument: "research", Config: &models.InstrumentOverrides{MaxIterations: intPtr(8)}},
			{Instrument: "synthesis"},
		},
	}

	t.Run("saves and restores the spec", func(t *testing.T) {
		created, err := service.CreateArrangement(ctx, app.ID, spec)
		require.NoError(t, err)

		got, err := service.GetArrangement(ctx, app.ID, created.ID)
		require.NoError(t, err)

		restored := SpecFromRow(got)
		assert.Equal(t, spec.Name, restored.Name)
		assert.Equal(t, models.ArrangementSequential, restored.Kind)
		assert.Equal(t, "synthesis", restored.Merge)
		require.Len(t, restored.Steps, 2)
		require.NotNil(t, restored.Steps[0].Config)
		require.NotNil(t, restored.Steps[0].Config.MaxIterations)
		assert.Equal(t, 8, *restored.Steps[0].Config.MaxIterations)
	})

	t.Run("names are unique per app", func(t *testing.T) {
		_, err := service.CreateArrangement(ctx, app.ID, spec)
		assert.ErrorIs(t, err, ErrAlreadyExists)

		other := createTestApp(t, client.Client)
		_, err = service.CreateArrangement(ctx, other.ID, spec)
		assert.NoError(t, err)
	})

	t.Run("lists only the app's arrangements", func(t *testing.T) {
		rows, err := service.ListArrangements(ctx, app.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("rejects unnamed specs", func(t *testing.T) {
		unnamed := *spec
		unnamed.Name = ""
		_, err := service.CreateArrangement(ctx, app.ID, &unnamed)
		assert.True(t, IsValidationError(err))
	})

	t.Run("deletes an arrangement", func(t *testing.T) {
		named := *spec
		named.Name = "short-lived"
		created, err := service.CreateArrangement(ctx, app.ID, &named)
		require.NoError(t, err)

		require.NoError(t, service.DeleteArrangement(ctx, app.ID, created.ID))
		_, err = service.GetArrangement(ctx, app.ID, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign app cannot delete", func(t *testing.T) {
		other := createTestApp(t, client.Client)
		rows, err := service.ListArrangements(ctx, app.ID)
		require.NoError(t, err)
		require.NotEmpty(t, rows)

		err = service.DeleteArrangement(ctx, other.ID, rows[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func intPtr(v int) *int { return &v }
