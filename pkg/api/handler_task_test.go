package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/services"
)

func TestSubmitTask_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		body   any
		detail string
	}{
		{
			name:   "body is not a task request",
			body:   "free-form text",
			detail: "invalid request body",
		},
		{
			name:   "missing query",
			body:   models.TaskRequest{},
			detail: "query is required",
		},
		{
			name:   "whitespace query",
			body:   models.TaskRequest{Query: "   "},
			detail: "query is required",
		},
		{
			name: "trust level out of range",
			body: models.TaskRequest{
				Query:       "check the deploy queue",
				Preferences: &models.TaskPreferences{TrustLevel: 7},
			},
			detail: "trust_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/task", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, detailOf(t, rec), tt.detail)
		})
	}
}

func TestSubmitTask_SupervisedHoldsForApproval(t *testing.T) {
	env := newTestEnv(t)

	// No credentials and no preferences: the caller is supervised, so
	// the task is persisted with its plan and waits for approval.
	rec := env.do(t, http.MethodPost, "/task", models.TaskRequest{Query: "summarize the standup notes"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp TaskSubmitResponse
	decodeJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.TaskID)
	assert.Equal(t, string(models.StatusAwaitingApproval), resp.Status)
	assert.Equal(t, "Task requires approval before execution", resp.Message)

	require.NotNil(t, resp.Plan)
	assert.Equal(t, resp.TaskID, resp.Plan.TaskID)
	assert.Equal(t, "note", resp.Plan.Instrument)
	assert.Equal(t, models.ProcessSemiAutonomic, resp.Plan.ProcessType)
	assert.Equal(t, 3, resp.Plan.EstimatedIterations)
	assert.True(t, resp.Plan.RequiresApproval)
	assert.NotEmpty(t, resp.Plan.Description)

	row := env.waitForStatus(t, services.AnonymousAppID, resp.TaskID, task.StatusAwaitingApproval)
	assert.Equal(t, "note", row.Instrument)

	// Polling a held task reports its non-terminal status.
	poll := env.do(t, http.MethodGet, "/task/"+resp.TaskID, nil, nil)
	require.Equal(t, http.StatusOK, poll.Code)
	var pending TaskPendingResponse
	decodeJSON(t, poll, &pending)
	assert.Equal(t, string(models.StatusAwaitingApproval), pending.Status)
	assert.Equal(t, "Task is awaiting_approval", pending.Progress)
}

func TestSubmitTask_Routing(t *testing.T) {
	env := newTestEnv(t)

	// Supervised submissions return the plan, which exposes the route.
	planFor := func(t *testing.T, req models.TaskRequest) *models.TaskPlan {
		t.Helper()
		rec := env.do(t, http.MethodPost, "/task", req, nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var resp TaskSubmitResponse
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.Plan)
		return resp.Plan
	}

	t.Run("short query goes to note", func(t *testing.T) {
		plan := planFor(t, models.TaskRequest{Query: "when is the next release train"})
		assert.Equal(t, "note", plan.Instrument)
	})

	t.Run("research intent goes to research", func(t *testing.T) {
		plan := planFor(t, models.TaskRequest{
			Query:  "compare the two storage backends",
			Intent: &models.Intent{Type: models.IntentResearch},
		})
		assert.Equal(t, "research", plan.Instrument)
	})

	t.Run("long query goes to research", func(t *testing.T) {
		plan := planFor(t, models.TaskRequest{Query: strings.Repeat("why does the cache miss rate climb after deploys ", 6)})
		assert.Equal(t, "research", plan.Instrument)
	})

	t.Run("image attachment goes to vision", func(t *testing.T) {
		plan := planFor(t, models.TaskRequest{
			Query:   "what does this graph show",
			Context: &models.TaskContext{Attachments: []string{"https://cdn.example.com/latency.png"}},
		})
		assert.Equal(t, "vision", plan.Instrument)
	})
}

func TestSubmitTask_AutonomousRunsToCompletion(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/task", models.TaskRequest{
		Query:       "how many review threads are open",
		Preferences: autonomous(),
	}, env.authed())
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp TaskSubmitResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, string(models.StatusPending), resp.Status)
	assert.Equal(t, "Task submitted successfully", resp.Message)
	assert.Nil(t, resp.Plan)

	env.waitForStatus(t, env.app.ID, resp.TaskID, task.StatusComplete)

	poll := env.do(t, http.MethodGet, "/task/"+resp.TaskID, nil, env.authed())
	require.Equal(t, http.StatusOK, poll.Code)
	var result models.TaskResponse
	decodeJSON(t, poll, &result)
	assert.Equal(t, resp.TaskID, result.RequestID)
	assert.Equal(t, "answered: how many review threads are open", result.Summary)
	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Len(t, result.Findings, 1)
	assert.Equal(t, "note", result.Metadata.InstrumentUsed)
}

func TestSubmitTask_PersistedTrustLevelApplies(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authedAs("veteran")

	// Raise the stored level, then submit without explicit preferences:
	// the profile's level gates the submission.
	level := 1
	rec := env.do(t, http.MethodPut, "/trust/level", setTrustLevelRequest{TrustLevel: &level}, headers)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	rec = env.do(t, http.MethodPost, "/task", models.TaskRequest{Query: "list pending migrations"}, headers)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp TaskSubmitResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, string(models.StatusPending), resp.Status)

	env.waitForStatus(t, env.app.ID, resp.TaskID, task.StatusComplete)
}

func TestGetTask(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown task", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/task/nope", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task nope not found", detailOf(t, rec))
	})

	t.Run("failed task surfaces the error", func(t *testing.T) {
		taskID := env.submitAndWait(t, models.TaskRequest{
			Query:       "[fail] probe the broken path",
			Preferences: autonomous(),
		}, nil, services.AnonymousAppID, task.StatusFailed)

		rec := env.do(t, http.MethodGet, "/task/"+taskID, nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, detailOf(t, rec), "Task failed:")
		assert.Contains(t, detailOf(t, rec), "scripted instrument failure")
	})

	t.Run("cross-app isolation", func(t *testing.T) {
		taskID := env.submitAndWait(t, models.TaskRequest{
			Query:       "count active sessions",
			Preferences: autonomous(),
		}, env.authed(), env.app.ID, task.StatusComplete)

		rec := env.do(t, http.MethodGet, "/task/"+taskID, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("poll echoes the stored request", func(t *testing.T) {
		// A supervised submission holds at awaiting_approval, so the
		// poll is stable. The echoed request carries the submitted
		// fields plus the server-stamped id and identity.
		submitted := models.TaskRequest{
			Query:   "audit the billing exports",
			Context: &models.TaskContext{Location: "eu-west", Goal: "quarterly close"},
		}
		rec := env.do(t, http.MethodPost, "/task", submitted, nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var resp TaskSubmitResponse
		decodeJSON(t, rec, &resp)

		poll := env.do(t, http.MethodGet, "/task/"+resp.TaskID, nil, nil)
		require.Equal(t, http.StatusOK, poll.Code)
		var pending TaskPendingResponse
		decodeJSON(t, poll, &pending)
		require.NotNil(t, pending.Request)
		assert.Equal(t, resp.TaskID, pending.Request.ID)
		assert.Equal(t, submitted.Query, pending.Request.Query)
		require.NotNil(t, pending.Request.Context)
		assert.Equal(t, "eu-west", pending.Request.Context.Location)
		assert.Equal(t, "quarterly close", pending.Request.Context.Goal)
		assert.Equal(t, services.AnonymousAppID, pending.Request.Context.AppID)
	})
}

func TestGetTask_MinimalTrustElidesDetail(t *testing.T) {
	env := newTestEnv(t)

	taskID := env.submitAndWait(t, models.TaskRequest{
		Query:       "ship the weekly digest",
		Preferences: &models.TaskPreferences{TrustLevel: models.TrustMinimal},
	}, env.authed(), env.app.ID, task.StatusComplete)

	t.Run("default poll is minimal", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/task/"+taskID, nil, env.authed())
		require.Equal(t, http.StatusOK, rec.Code)
		var result models.TaskResponse
		decodeJSON(t, rec, &result)
		assert.Empty(t, result.Findings)
		assert.Equal(t, "answered: ship the weekly digest", result.Summary)
		assert.Equal(t, models.OutcomeComplete, result.Outcome)
	})

	t.Run("full=true returns everything", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/task/"+taskID+"?full=true", nil, env.authed())
		require.Equal(t, http.StatusOK, rec.Code)
		var result models.TaskResponse
		decodeJSON(t, rec, &result)
		assert.Len(t, result.Findings, 1)
	})
}

func TestApproveTask(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown task", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/task/missing/approve", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task missing not found", detailOf(t, rec))
	})

	t.Run("approval releases the held task", func(t *testing.T) {
		sub := env.do(t, http.MethodPost, "/task", models.TaskRequest{Query: "archive stale branches"}, nil)
		require.Equal(t, http.StatusOK, sub.Code)
		var submitted TaskSubmitResponse
		decodeJSON(t, sub, &submitted)
		require.Equal(t, string(models.StatusAwaitingApproval), submitted.Status)

		rec := env.do(t, http.MethodPost, "/task/"+submitted.TaskID+"/approve", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var approved TaskSubmitResponse
		decodeJSON(t, rec, &approved)
		assert.Equal(t, string(models.StatusPending), approved.Status)
		assert.Equal(t, "Task approved for execution", approved.Message)

		env.waitForStatus(t, services.AnonymousAppID, submitted.TaskID, task.StatusComplete)

		// A second approve is a no-op that reports where the task is now.
		again := env.do(t, http.MethodPost, "/task/"+submitted.TaskID+"/approve", nil, nil)
		require.Equal(t, http.StatusOK, again.Code)
		var repeat TaskSubmitResponse
		decodeJSON(t, again, &repeat)
		assert.Equal(t, string(models.StatusComplete), repeat.Status)
		assert.Equal(t, "Task is complete", repeat.Message)
	})
}

func TestCancelTask(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown task", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/task/missing/cancel", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cancel stops a slow task", func(t *testing.T) {
		sub := env.do(t, http.MethodPost, "/task", models.TaskRequest{
			Query:       "[hang] watch the long feed",
			Preferences: autonomous(),
		}, nil)
		require.Equal(t, http.StatusOK, sub.Code)
		var submitted TaskSubmitResponse
		decodeJSON(t, sub, &submitted)

		rec := env.do(t, http.MethodPost, "/task/"+submitted.TaskID+"/cancel", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var cancelled CancelTaskResponse
		decodeJSON(t, rec, &cancelled)
		assert.Contains(t, []string{"cancelling", "cancelled"}, cancelled.Status)

		env.waitForStatus(t, services.AnonymousAppID, submitted.TaskID, task.StatusCancelled)

		poll := env.do(t, http.MethodGet, "/task/"+submitted.TaskID, nil, nil)
		require.Equal(t, http.StatusOK, poll.Code)
		var pending TaskPendingResponse
		decodeJSON(t, poll, &pending)
		assert.Equal(t, string(models.StatusCancelled), pending.Status)
	})

	t.Run("cancel after terminal conflicts", func(t *testing.T) {
		taskID := env.submitAndWait(t, models.TaskRequest{
			Query:       "fetch the release checklist",
			Preferences: autonomous(),
		}, nil, services.AnonymousAppID, task.StatusComplete)

		rec := env.do(t, http.MethodPost, "/task/"+taskID+"/cancel", nil, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestTaskLists(t *testing.T) {
	env := newTestEnv(t)
	headers := env.authed()

	first := env.submitAndWait(t, models.TaskRequest{
		Query:       "inventory the dashboards",
		Preferences: autonomous(),
	}, headers, env.app.ID, task.StatusComplete)
	second := env.submitAndWait(t, models.TaskRequest{
		Query:       "[fail] check the dead letter queue",
		Preferences: autonomous(),
	}, headers, env.app.ID, task.StatusFailed)

	t.Run("recent lists both, newest first", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/tasks/recent", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var list TaskListResponse
		decodeJSON(t, rec, &list)
		require.Equal(t, 2, list.Count)
		assert.Equal(t, second, list.Tasks[0].TaskID)
		assert.Equal(t, first, list.Tasks[1].TaskID)
		assert.Equal(t, string(models.StatusFailed), list.Tasks[0].Status)
		assert.Contains(t, list.Tasks[0].Error, "scripted instrument failure")
	})

	t.Run("recent respects limit", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/tasks/recent?limit=1", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var list TaskListResponse
		decodeJSON(t, rec, &list)
		assert.Equal(t, 1, list.Count)
	})

	t.Run("recent rejects bad limits", func(t *testing.T) {
		for _, limit := range []string{"0", "101", "abc"} {
			rec := env.do(t, http.MethodGet, "/tasks/recent?limit="+limit, nil, headers)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
		}
	})

	t.Run("active tracks in-flight tasks", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/tasks/active", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var list TaskListResponse
		decodeJSON(t, rec, &list)
		assert.Equal(t, 0, list.Count)

		sub := env.do(t, http.MethodPost, "/task", models.TaskRequest{
			Query:       "[hang] tail the audit log",
			Preferences: autonomous(),
		}, headers)
		require.Equal(t, http.StatusOK, sub.Code)
		var submitted TaskSubmitResponse
		decodeJSON(t, sub, &submitted)

		rec = env.do(t, http.MethodGet, "/tasks/active", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeJSON(t, rec, &list)
		require.Equal(t, 1, list.Count)
		assert.Equal(t, submitted.TaskID, list.Tasks[0].TaskID)

		cancel := env.do(t, http.MethodPost, "/task/"+submitted.TaskID+"/cancel", nil, headers)
		require.Equal(t, http.StatusOK, cancel.Code)
		env.waitForStatus(t, env.app.ID, submitted.TaskID, task.StatusCancelled)
	})

	t.Run("stats group by status and outcome", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/tasks/stats", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		var stats services.TaskStats
		decodeJSON(t, rec, &stats)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 0, stats.Active)
		assert.Equal(t, 1, stats.ByStatus["complete"])
		assert.Equal(t, 1, stats.ByStatus["failed"])
		assert.Equal(t, 1, stats.ByStatus["cancelled"])
		assert.Equal(t, 1, stats.ByOutcome["complete"])
	})

	t.Run("anonymous callers see nothing of the app", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/tasks/recent", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list TaskListResponse
		decodeJSON(t, rec, &list)
		assert.Equal(t, 0, list.Count)
	})
}

func TestListCheckpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown task", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/task/ghost/checkpoints", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task ghost not found", detailOf(t, rec))
	})

	t.Run("task without checkpoints returns an empty list", func(t *testing.T) {
		taskID := env.submitAndWait(t, models.TaskRequest{
			Query:       "quick status ping",
			Preferences: autonomous(),
		}, nil, services.AnonymousAppID, task.StatusComplete)

		rec := env.do(t, http.MethodGet, "/task/"+taskID+"/checkpoints", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var checkpoints []models.IterationCheckpoint
		decodeJSON(t, rec, &checkpoints)
		assert.Empty(t, checkpoints)
	})

	t.Run("recorded checkpoints come back ordered", func(t *testing.T) {
		taskID := env.submitAndWait(t, models.TaskRequest{
			Query:       "[checkpoint] walk the release notes",
			Preferences: autonomous(),
		}, nil, services.AnonymousAppID, task.StatusComplete)

		rec := env.do(t, http.MethodGet, "/task/"+taskID+"/checkpoints", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var checkpoints []models.IterationCheckpoint
		decodeJSON(t, rec, &checkpoints)
		require.Len(t, checkpoints, 1)
		assert.Equal(t, taskID, checkpoints[0].TaskID)
		assert.Equal(t, 1, checkpoints[0].IterationNum)
		assert.Equal(t, "observe", checkpoints[0].Phase)
	})
}
