package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/models"
)

func TestArrangementCRUD(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("composer")

	t.Run("requires authentication", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/arrangements", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creates a sequential arrangement", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/arrangements", models.ArrangementSpec{
			Name:        "digest-pipeline",
			Description: "research then condense",
			Kind:        models.ArrangementSequential,
			Steps: []models.ArrangementStep{
				{Instrument: "research"},
				{Instrument: "note"},
			},
		}, headers)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var view ArrangementView
		decodeJSON(t, rec, &view)
		assert.NotEmpty(t, view.ArrangementID)
		assert.Equal(t, "digest-pipeline", view.Name)
		assert.Equal(t, string(models.ArrangementSequential), view.Kind)
		require.Len(t, view.Steps, 2)
		assert.Equal(t, "research", view.Steps[0].Instrument)
	})

	t.Run("rejects invalid specs", func(t *testing.T) {
		tests := []struct {
			name   string
			spec   models.ArrangementSpec
			detail string
		}{
			{
				"missing name",
				models.ArrangementSpec{
					Kind:  models.ArrangementSequential,
					Steps: []models.ArrangementStep{{Instrument: "note"}},
				},
				"name",
			},
			{
				"no steps",
				models.ArrangementSpec{Name: "empty", Kind: models.ArrangementParallel},
				"at least one step required",
			},
			{
				"sequential step without instrument",
				models.ArrangementSpec{
					Name:  "holey",
					Kind:  models.ArrangementSequential,
					Steps: []models.ArrangementStep{{Instrument: "note"}, {}},
				},
				"step 1: instrument required",
			},
			{
				"cross-room step without room",
				models.ArrangementSpec{
					Name:  "roomless",
					Kind:  models.ArrangementCrossRoom,
					Steps: []models.ArrangementStep{{SubQuery: "check the den"}},
				},
				"step 0: room_id required",
			},
			{
				"cross-room step without sub-query",
				models.ArrangementSpec{
					Name:  "queryless",
					Kind:  models.ArrangementCrossRoom,
					Steps: []models.ArrangementStep{{RoomID: "den"}},
				},
				"step 0: sub_query required",
			},
			{
				"unknown kind",
				models.ArrangementSpec{
					Name:  "odd",
					Kind:  models.ArrangementKind("spiral"),
					Steps: []models.ArrangementStep{{Instrument: "note"}},
				},
				"unknown arrangement kind",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := env.do(t, http.MethodPost, "/arrangements", tt.spec, headers)
				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, detailOf(t, rec), tt.detail)
			})
		}
	})

	t.Run("lists and gets by id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/arrangements", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var list ArrangementListResponse
		decodeJSON(t, rec, &list)
		require.Equal(t, 1, list.Count)

		id := list.Arrangements[0].ArrangementID
		rec = env.do(t, http.MethodGet, "/arrangements/"+id, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var view ArrangementView
		decodeJSON(t, rec, &view)
		assert.Equal(t, "digest-pipeline", view.Name)

		rec = env.do(t, http.MethodGet, "/arrangements/absent", nil, headers)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "resource not found", detailOf(t, rec))
	})

	t.Run("deletes an arrangement", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/arrangements", models.ArrangementSpec{
			Name:  "short-lived",
			Kind:  models.ArrangementParallel,
			Steps: []models.ArrangementStep{{Instrument: "note"}, {Instrument: "research"}},
		}, headers)
		require.Equal(t, http.StatusCreated, rec.Code)
		var view ArrangementView
		decodeJSON(t, rec, &view)

		rec = env.do(t, http.MethodDelete, "/arrangements/"+view.ArrangementID, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		decodeJSON(t, rec, &resp)
		assert.True(t, resp["deleted"])

		rec = env.do(t, http.MethodDelete, "/arrangements/"+view.ArrangementID, nil, headers)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubmitTaskByArrangementID(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("composer")

	rec := env.do(t, http.MethodPost, "/arrangements", models.ArrangementSpec{
		Name: "double-take",
		Kind: models.ArrangementSequential,
		Steps: []models.ArrangementStep{
			{Instrument: "note"},
			{Instrument: "note"},
		},
	}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	var view ArrangementView
	decodeJSON(t, rec, &view)

	t.Run("runs the saved composition to completion", func(t *testing.T) {
		taskID := env.submitAndWait(t, models.TaskRequest{
			Query:         "walk the incident timeline twice",
			ArrangementID: view.ArrangementID,
			Preferences:   autonomous(),
		}, headers, env.app.ID, task.StatusComplete)

		rec := env.do(t, http.MethodGet, "/task/"+taskID, nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TaskResponse
		decodeJSON(t, rec, &resp)
		assert.NotEmpty(t, resp.Summary)
		assert.Equal(t, models.OutcomeComplete, resp.Outcome)
	})

	t.Run("unknown arrangement id fails at submission", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/task", models.TaskRequest{
			Query:         "run something that is not saved",
			ArrangementID: "missing-arrangement",
			Preferences:   autonomous(),
		}, headers)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "resource not found", detailOf(t, rec))
	})
}
