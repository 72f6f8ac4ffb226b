package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/notify"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
)

// terminalEffectsTimeout bounds the trust accounting and notification
// writes that run after a task finishes, on a detached context.
const terminalEffectsTimeout = 10 * time.Second

// submitTaskHandler handles POST /task. The trust gate decides the
// path: supervised submissions are persisted awaiting approval with
// their plan held; everything else queues for execution immediately.
func (s *Server) submitTaskHandler(c *gin.Context) {
	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "query is required"})
		return
	}

	app := currentApp(c)
	userID := currentUserID(c)

	// Identity on the request is server-authoritative; whatever the
	// body carried is overwritten from the validated headers.
	if req.Context == nil {
		req.Context = &models.TaskContext{}
	}
	req.Context.AppID = app.ID
	req.Context.UserID = userID
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	level, err := s.effectiveTrustLevel(c.Request.Context(), &req, app.ID, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	plan, err := s.conductor.Plan(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if level == models.TrustSupervised {
		_, err := s.tasks.CreateTask(c.Request.Context(), services.CreateTaskParams{
			ID:          req.ID,
			AppID:       app.ID,
			UserID:      userID,
			Query:       req.Query,
			Request:     &req,
			Status:      task.StatusAwaitingApproval,
			Instrument:  plan.Instrument,
			ProcessType: string(plan.ProcessType),
		})
		if err != nil {
			mapServiceError(c, err)
			return
		}
		s.manager.Approvals().Put(req.ID, plan, &req)
		slog.Info("Task held for approval", "task_id", req.ID, "app_id", app.ID)

		c.JSON(http.StatusOK, TaskSubmitResponse{
			TaskID:  req.ID,
			Status:  string(models.StatusAwaitingApproval),
			Message: "Task requires approval before execution",
			Plan:    plan,
		})
		return
	}

	if _, err := s.tasks.CreateTask(c.Request.Context(), services.CreateTaskParams{
		ID:          req.ID,
		AppID:       app.ID,
		UserID:      userID,
		Query:       req.Query,
		Request:     &req,
		Instrument:  plan.Instrument,
		ProcessType: string(plan.ProcessType),
	}); err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.manager.Submit(req.ID, s.taskExecutor(&req)); err != nil {
		mapServiceError(c, err)
		return
	}
	slog.Info("Task submitted", "task_id", req.ID, "app_id", app.ID, "instrument", plan.Instrument)

	c.JSON(http.StatusOK, TaskSubmitResponse{
		TaskID:  req.ID,
		Status:  string(models.StatusPending),
		Message: "Task submitted successfully",
	})
}

// effectiveTrustLevel resolves the level gating a submission: explicit
// request preferences win, then the persisted profile level, then
// supervised.
func (s *Server) effectiveTrustLevel(ctx context.Context, req *models.TaskRequest, appID, userID string) (int, error) {
	if req.Preferences != nil {
		level := req.Preferences.TrustLevel
		if level < models.TrustSupervised || level > models.TrustMinimal {
			return 0, services.NewValidationError("trust_level", "must be 0, 1, or 2")
		}
		return level, nil
	}
	if userID == "" || s.trust == nil {
		return models.TrustSupervised, nil
	}
	metrics, err := s.trust.Metrics(ctx, appID, userID)
	if err != nil {
		return 0, err
	}
	return metrics.Level, nil
}

// taskExecutor builds the executable body for a request. The conductor
// runs the loop; the terminal side effects (trust accounting and
// notification delivery) happen here because only this layer knows the
// submitting identity and its preferences.
func (s *Server) taskExecutor(req *models.TaskRequest) taskmanager.ExecFunc {
	return func(ctx context.Context) (*models.TaskResponse, error) {
		resp, err := s.conductor.Execute(ctx, req)
		s.recordTerminal(req, resp, err, ctx.Err())
		return resp, err
	}
}

// recordTerminal applies post-run side effects. Classification mirrors
// the worker's: a canceled context means the task ends cancelled, which
// never counts against trust and never notifies.
func (s *Server) recordTerminal(req *models.TaskRequest, resp *models.TaskResponse, execErr, ctxErr error) {
	status := models.StatusComplete
	outcome := models.OutcomeComplete
	errMsg := ""
	switch {
	case errors.Is(execErr, context.Canceled) || ctxErr != nil:
		status = models.StatusCancelled
	case execErr != nil:
		status = models.StatusFailed
		errMsg = execErr.Error()
	case resp == nil:
		status = models.StatusFailed
		errMsg = "executor returned no response"
	default:
		outcome = resp.Outcome
	}

	appID, userID := "", ""
	if req.Context != nil {
		appID, userID = req.Context.AppID, req.Context.UserID
	}

	// The worker's context may already be done; side effects get their
	// own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), terminalEffectsTimeout)
	defer cancel()

	if s.trust != nil && userID != "" {
		if _, err := s.trust.RecordTerminal(ctx, appID, userID, status, outcome); err != nil {
			slog.Warn("Trust accounting failed", "task_id", req.ID, "error", err)
		}
	}

	if status == models.StatusCancelled || !req.Preferences.NotifyRequested() {
		return
	}
	notice := notify.TaskNotice{TaskID: req.ID, Query: req.Query}
	if status == models.StatusFailed {
		notice.Outcome = string(models.StatusFailed)
		notice.Summary = errMsg
	} else {
		notice.Outcome = string(resp.Outcome)
		notice.Summary = resp.Summary
		notice.Confidence = resp.Confidence
	}
	s.notifier.NotifyTaskTerminal(ctx, appID, userID, notice)
}

// getTaskHandler handles GET /task/:id. Terminal complete tasks return
// the stored TaskResponse; failed tasks surface the error; everything
// else polls as pending.
func (s *Server) getTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	app := currentApp(c)

	row, err := s.tasks.GetTask(c.Request.Context(), app.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			taskNotFound(c, taskID)
			return
		}
		mapServiceError(c, err)
		return
	}

	if row.Status == task.StatusComplete {
		resp, err := services.ResponseFromTask(row)
		if err != nil {
			slog.Error("Stored task response is unreadable", "task_id", taskID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "stored response is unreadable"})
			return
		}
		if resp != nil {
			c.JSON(http.StatusOK, s.pollView(c, row, resp))
			return
		}
	}

	if row.Status == task.StatusFailed {
		msg := "Unknown error"
		if row.Error != nil && *row.Error != "" {
			msg = *row.Error
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Task failed: " + msg})
		return
	}

	pending := TaskPendingResponse{
		TaskID:    row.ID,
		Status:    string(row.Status),
		Progress:  fmt.Sprintf("Task is %s", row.Status),
		StartedAt: row.CreatedAt,
	}
	if req, err := services.RequestFromTask(row); err == nil {
		pending.Request = req
	}
	c.JSON(http.StatusOK, pending)
}

// pollView applies the trust-level-2 contract: the default poll of a
// minimal-trust task elides findings and metadata; ?full=true returns
// the whole record.
func (s *Server) pollView(c *gin.Context, row *ent.Task, resp *models.TaskResponse) *models.TaskResponse {
	if full, _ := strconv.ParseBool(c.Query("full")); full {
		return resp
	}
	req, err := services.RequestFromTask(row)
	if err != nil || req == nil || req.Preferences == nil {
		return resp
	}
	if req.Preferences.TrustLevel == models.TrustMinimal {
		return resp.Minimal()
	}
	return resp
}

// approveTaskHandler handles POST /task/:id/approve for supervised
// tasks. Approving a task that already moved on is a no-op reporting
// the current status.
func (s *Server) approveTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	app := currentApp(c)

	t, err := s.manager.Approve(c.Request.Context(), app.ID, taskID, func(req *models.TaskRequest) taskmanager.ExecFunc {
		return s.taskExecutor(req)
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			taskNotFound(c, taskID)
			return
		}
		mapServiceError(c, err)
		return
	}

	resp := TaskSubmitResponse{TaskID: taskID, Status: string(t.Status)}
	if t.Status == task.StatusPending {
		resp.Message = "Task approved for execution"
	} else {
		resp.Message = fmt.Sprintf("Task is %s", t.Status)
	}
	c.JSON(http.StatusOK, resp)
}

// cancelTaskHandler handles POST /task/:id/cancel. Running tasks get a
// cooperative signal; queued or awaiting ones transition immediately.
func (s *Server) cancelTaskHandler(c *gin.Context) {
	taskID := c.Param("id")
	app := currentApp(c)

	result, err := s.manager.Cancel(c.Request.Context(), app.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			taskNotFound(c, taskID)
			return
		}
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CancelTaskResponse{TaskID: taskID, Status: string(result)})
}

// listActiveTasksHandler handles GET /tasks/active.
func (s *Server) listActiveTasksHandler(c *gin.Context) {
	app := currentApp(c)
	rows, err := s.manager.Active(c.Request.Context(), app.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TaskListResponse{Tasks: taskSummariesFromRows(rows), Count: len(rows)})
}

// listRecentTasksHandler handles GET /tasks/recent?limit=n.
func (s *Server) listRecentTasksHandler(c *gin.Context) {
	app := currentApp(c)

	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	rows, err := s.manager.Recent(c.Request.Context(), app.ID, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TaskListResponse{Tasks: taskSummariesFromRows(rows), Count: len(rows)})
}

// taskStatsHandler handles GET /tasks/stats.
func (s *Server) taskStatsHandler(c *gin.Context) {
	app := currentApp(c)
	stats, err := s.manager.Stats(c.Request.Context(), app.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// listCheckpointsHandler handles GET /task/:id/checkpoints, returning
// the ordered iteration checkpoints as a bare list.
func (s *Server) listCheckpointsHandler(c *gin.Context) {
	taskID := c.Param("id")
	app := currentApp(c)

	checkpoints, err := s.iterations.ListCheckpoints(c.Request.Context(), app.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			taskNotFound(c, taskID)
			return
		}
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkpoints)
}

// taskNotFound writes the task-specific 404 body.
func taskNotFound(c *gin.Context, taskID string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Task %s not found", taskID)})
}
