// Package conductor is the core of the orchestration engine. It routes
// requests to instruments, builds execution plans for the approval
// gate, injects the checkpoint and spawn callbacks, classifies queries
// for privacy, and decides whether a task runs here or is delegated to
// a remote room.
package conductor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/pkg/composition"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/privacy"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/tools"
)

const (
	defaultMaxSpawnDepth = 3

	// longQueryThreshold is the query length past which routing assumes
	// the question needs multi-source research.
	longQueryThreshold = 200

	// errorRecordTimeout bounds best-effort writes to the error store.
	errorRecordTimeout = 5 * time.Second
)

// imageIndicators mark attachment references the router sends to the
// vision instrument. Bare https URLs count too: clients attach links to
// hosted images without file extensions.
var imageIndicators = []string{"data:image/", ".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Delegator hands a whole task to a remote room and normalizes the
// answer. *rooms.Client is the production implementation.
type Delegator interface {
	Delegate(ctx context.Context, room *models.Room, req *models.TaskRequest) (*models.InstrumentResult, error)
}

// Deps are the conductor's collaborators. Instruments is required;
// everything else degrades gracefully when absent (no checkpoint
// persistence, no arrangement store, no delegation).
type Deps struct {
	Instruments  composition.InstrumentProvider
	Arrangements *services.ArrangementService
	Iterations   *services.IterationService
	Errors       *services.ErrorService
	Bus          *events.Bus
	Registry     *rooms.Registry
	Delegator    Delegator
}

// Conductor analyzes tasks, routes them to instruments or compositions,
// and owns the callback and room-selection machinery around a run.
type Conductor struct {
	instruments  composition.InstrumentProvider
	classifier   *privacy.Classifier
	arrangements *services.ArrangementService
	iterations   *services.IterationService
	errorLog     *services.ErrorService
	bus          *events.Bus
	registry     *rooms.Registry
	delegator    Delegator

	maxSpawnDepth int
	branchTimeout time.Duration
}

// New creates a conductor. A max spawn depth below 1 takes the default.
func New(deps Deps, cfg config.ConductorConfig) *Conductor {
	maxDepth := cfg.MaxSpawnDepth
	if maxDepth < 1 {
		maxDepth = defaultMaxSpawnDepth
	}
	return &Conductor{
		instruments:   deps.Instruments,
		classifier:    privacy.NewClassifier(cfg.PrivacyStrict),
		arrangements:  deps.Arrangements,
		iterations:    deps.Iterations,
		errorLog:      deps.Errors,
		bus:           deps.Bus,
		registry:      deps.Registry,
		delegator:     deps.Delegator,
		maxSpawnDepth: maxDepth,
		branchTimeout: cfg.BranchTimeout,
	}
}

// Route picks the instrument for a request. First match wins: image
// attachments go to vision, research intent or a query over 200
// characters goes to research, everything else is a note.
func (c *Conductor) Route(req *models.TaskRequest) string {
	if hasImageAttachment(req.Context) {
		return instrument.NameVision
	}
	if intent := req.EffectiveIntent(); intent != nil && intent.Type == models.IntentResearch {
		return instrument.NameResearch
	}
	if len(req.Query) > longQueryThreshold {
		return instrument.NameResearch
	}
	return instrument.NameNote
}

// hasImageAttachment reports whether the context carries an image-like
// attachment reference. Query strings are stripped before matching.
func hasImageAttachment(taskCtx *models.TaskContext) bool {
	if taskCtx == nil || len(taskCtx.Attachments) == 0 {
		return false
	}
	for _, att := range taskCtx.Attachments {
		ref := strings.ToLower(att)
		if i := strings.IndexByte(ref, '?'); i >= 0 {
			ref = ref[:i]
		}
		for _, indicator := range imageIndicators {
			if strings.Contains(ref, indicator) {
				return true
			}
		}
		if strings.HasPrefix(att, "https://") {
			return true
		}
	}
	return false
}

// ResolveArrangement returns the arrangement a request asks for: the
// inline spec after validation, a saved one loaded by id, or nil when
// the request routes to a single instrument.
func (c *Conductor) ResolveArrangement(ctx context.Context, req *models.TaskRequest) (*models.ArrangementSpec, error) {
	if req.Arrangement != nil {
		if err := services.ValidateArrangement(req.Arrangement); err != nil {
			return nil, err
		}
		return req.Arrangement, nil
	}
	if req.ArrangementID == "" {
		return nil, nil
	}
	if c.arrangements == nil {
		return nil, fmt.Errorf("arrangement %s: no arrangement store configured", req.ArrangementID)
	}
	appID := ""
	if req.Context != nil {
		appID = req.Context.AppID
	}
	row, err := c.arrangements.GetArrangement(ctx, appID, req.ArrangementID)
	if err != nil {
		return nil, fmt.Errorf("resolve arrangement %s: %w", req.ArrangementID, err)
	}
	return services.SpecFromRow(row), nil
}

// Plan describes what a request will do without executing anything,
// for the trust-level-0 approval gate.
func (c *Conductor) Plan(ctx context.Context, req *models.TaskRequest) (*models.TaskPlan, error) {
	spec, err := c.ResolveArrangement(ctx, req)
	if err != nil {
		return nil, err
	}
	if spec != nil {
		comp, err := composition.FromSpec(spec, c.instruments, c.branchRunner(req, c.classifier.Classify(req.Query)), c.branchTimeout)
		if err != nil {
			return nil, err
		}
		return &models.TaskPlan{
			TaskID:              req.ID,
			Query:               req.Query,
			Instrument:          comp.Name(),
			ProcessType:         models.ProcessConscious,
			EstimatedIterations: estimatedSteps(spec),
			Description:         fmt.Sprintf("Run a %s arrangement with %d steps and merge the results.", spec.Kind, len(spec.Steps)),
			RequiresApproval:    true,
		}, nil
	}

	name := c.Route(req)
	inst, err := c.instruments.New(name, nil)
	if err != nil {
		return nil, fmt.Errorf("build instrument %q: %w", name, err)
	}
	return &models.TaskPlan{
		TaskID:              req.ID,
		Query:               req.Query,
		Instrument:          name,
		ProcessType:         inst.ProcessType(),
		EstimatedIterations: inst.MaxIterations(),
		Description:         planDescription(name),
		RequiresApproval:    true,
	}, nil
}

// planDescription explains a route in user-facing terms.
func planDescription(name string) string {
	switch name {
	case instrument.NameVision:
		return "Analyze the attached images and answer the question about them."
	case instrument.NameResearch:
		return "Research the question iteratively across web sources and synthesize an answer."
	case instrument.NameSynthesis:
		return "Synthesize the provided inputs into one reconciled answer."
	case instrument.NameNote:
		return "Answer directly from reasoning with a quick refinement pass."
	default:
		return fmt.Sprintf("Run the %q loop to completion.", name)
	}
}

// estimatedSteps counts the checkpoints an arrangement will emit:
// one per step, plus the merge for fan-out kinds.
func estimatedSteps(spec *models.ArrangementSpec) int {
	if spec.Kind == models.ArrangementSequential {
		return len(spec.Steps)
	}
	return len(spec.Steps) + 1
}

// Execute runs a task end-to-end: arrangement or routed instrument,
// locally or delegated, with callbacks injected and the privacy
// constraint enforced. Errors are reserved for failures that
// invalidate the whole run; degraded runs come back as results with a
// non-complete outcome.
func (c *Conductor) Execute(ctx context.Context, req *models.TaskRequest) (*models.TaskResponse, error) {
	start := time.Now()

	taskCtx := req.Context
	if taskCtx == nil {
		taskCtx = &models.TaskContext{}
	}
	depth := taskCtx.Depth
	maxDepth := spawnCeiling(req, taskCtx, c.maxSpawnDepth)

	enriched := taskCtx.Clone(taskCtx.InputResults)
	enriched.Depth = depth
	enriched.MaxDepth = maxDepth
	if enriched.CheckpointFn == nil && depth == 0 {
		enriched.CheckpointFn = c.checkpointFunc(req.ID)
	}
	enriched.SpawnFn = c.spawnFunc(req, enriched, depth, maxDepth)

	assessment := c.classifier.Classify(req.Query)

	spec, err := c.ResolveArrangement(ctx, req)
	if err != nil {
		return nil, err
	}
	if spec != nil {
		return c.executeComposition(ctx, req, spec, enriched, assessment, start)
	}

	name := c.Route(req)
	inst, err := c.instruments.New(name, nil)
	if err != nil {
		c.recordTaskError(req, errorrecord.SourceTool, "capability", err)
		return nil, fmt.Errorf("build instrument %q: %w", name, err)
	}

	slog.Info("Executing task",
		"task_id", req.ID,
		"instrument", name,
		"depth", depth,
		"max_depth", maxDepth,
		"privacy_level", string(assessment.Level))

	var failovers []models.FailoverEvent
	if room := c.delegationTarget(inst, assessment); room != nil {
		reqCopy := *req
		reqCopy.Context = enriched
		result, err := c.delegator.Delegate(ctx, room, &reqCopy)
		if err == nil {
			result.Metadata.DurationMS = time.Since(start).Milliseconds()
			c.finalize(enriched, result, assessment)
			return models.ResponseFromResult(req.ID, result), nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var delErr *rooms.DelegationError
		if !errors.As(err, &delErr) {
			return nil, err
		}
		slog.Warn("Delegation failed, retrying locally",
			"task_id", req.ID, "room_id", delErr.RoomID, "reason", delErr.Reason)
		c.recordTaskError(req, errorrecord.SourceRoom, "delegation", err)
		failovers = append(failovers, models.FailoverEvent{
			RoomID: delErr.RoomID,
			Reason: delErr.Reason,
			At:     time.Now().UTC(),
		})
	}

	result, err := inst.Execute(ctx, req.Query, enriched)
	if err != nil {
		if ctx.Err() == nil {
			source, kind := classifyExecError(err, "execution")
			c.recordTaskError(req, source, kind, err)
		}
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("instrument %q returned no result", name)
	}

	result.Metadata.DurationMS = time.Since(start).Milliseconds()
	if len(failovers) > 0 {
		result.Metadata.FailoverEvents = append(result.Metadata.FailoverEvents, failovers...)
		if self, ok := c.registry.Self(); ok {
			result.Metadata.RoomID = self.ID
		}
	}
	c.finalize(enriched, result, assessment)
	return models.ResponseFromResult(req.ID, result), nil
}

// executeComposition builds the arrangement's composition and runs it.
// The result carries the composition's descriptive name and process
// type conscious.
func (c *Conductor) executeComposition(ctx context.Context, req *models.TaskRequest, spec *models.ArrangementSpec, taskCtx *models.TaskContext, assessment privacy.Assessment, start time.Time) (*models.TaskResponse, error) {
	comp, err := composition.FromSpec(spec, c.instruments, c.branchRunner(req, assessment), c.branchTimeout)
	if err != nil {
		return nil, fmt.Errorf("build composition: %w", err)
	}

	slog.Info("Executing composition",
		"task_id", req.ID, "composition", comp.Name(), "kind", string(spec.Kind))

	result, err := comp.Execute(ctx, req.Query, taskCtx)
	if err != nil {
		if ctx.Err() == nil {
			source, kind := classifyExecError(err, "composition")
			c.recordTaskError(req, source, kind, err)
		}
		return nil, err
	}

	result.Metadata.DurationMS = time.Since(start).Milliseconds()
	c.finalize(taskCtx, result, assessment)
	return models.ResponseFromResult(req.ID, result), nil
}

// finalize stamps the cross-cutting result fields: outcome-derived
// followup suggestions on top-level tasks and the privacy constraint
// that governed room selection.
func (c *Conductor) finalize(taskCtx *models.TaskContext, result *models.InstrumentResult, assessment privacy.Assessment) {
	if taskCtx.Depth == 0 {
		result.SuggestedFollowups = appendFollowups(result)
	}
	if assessment.ShouldStayLocal {
		result.Metadata.Privacy = privacyConstraint(assessment)
	}
}

// spawnCeiling resolves the effective max depth: the request preference
// override wins, then the context's own ceiling, then the configured
// default.
func spawnCeiling(req *models.TaskRequest, taskCtx *models.TaskContext, configured int) int {
	maxDepth := configured
	if taskCtx.MaxDepth > 0 {
		maxDepth = taskCtx.MaxDepth
	}
	if req.Preferences != nil && req.Preferences.MaxSpawnDepth != nil {
		maxDepth = *req.Preferences.MaxSpawnDepth
	}
	return maxDepth
}

// checkpointFunc binds checkpoint persistence and iteration events to
// a task. Persistence failures surface to the instrument, which logs
// and continues; the event mirror is fire-and-forget.
func (c *Conductor) checkpointFunc(taskID string) models.CheckpointFunc {
	return func(ctx context.Context, iteration int, phase string, input, output map[string]any, durationMS int64) error {
		if c.bus != nil {
			c.bus.Publish(models.TaskEvent{
				TaskID:    taskID,
				Type:      models.EventIteration,
				Iteration: iteration,
				Phase:     phase,
				Payload: map[string]any{
					"data":        output,
					"duration_ms": durationMS,
				},
			})
		}
		if c.iterations == nil {
			return nil
		}
		if _, err := c.iterations.RecordCheckpoint(ctx, taskID, iteration, phase, input, output, durationMS); err != nil {
			return fmt.Errorf("record checkpoint: %w", err)
		}
		return nil
	}
}

// spawnFunc builds the spawn callback for one execution. Sub-tasks run
// at depth+1 through a fresh conductor pass; the checkpoint callback
// never flows into them, so iteration records stay unique to the
// spawning task.
func (c *Conductor) spawnFunc(req *models.TaskRequest, parent *models.TaskContext, depth, maxDepth int) models.SpawnFunc {
	return func(ctx context.Context, subQuery string, subContext *models.TaskContext) (*models.InstrumentResult, error) {
		newDepth := depth + 1
		if newDepth > maxDepth {
			return nil, &models.DepthExceededError{CurrentDepth: newDepth, MaxDepth: maxDepth}
		}

		base := parent.Clone(parent.InputResults)
		base.Depth = newDepth
		base.MaxDepth = maxDepth
		base.CheckpointFn = nil
		base.SpawnFn = nil
		if subContext != nil {
			if subContext.InputResults != nil {
				base.InputResults = subContext.InputResults
			}
			if subContext.ConversationSummary != "" {
				base.ConversationSummary = subContext.ConversationSummary
			}
			if len(subContext.Attachments) > 0 {
				base.Attachments = subContext.Attachments
			}
		}

		subReq := &models.TaskRequest{
			ID:          uuid.New().String(),
			Query:       subQuery,
			Context:     base,
			Preferences: req.Preferences,
		}

		slog.Info("Spawning sub-task",
			"parent_task_id", req.ID, "sub_task_id", subReq.ID, "depth", newDepth)

		subResp, err := c.Execute(ctx, subReq)
		if err != nil {
			return nil, err
		}
		return resultFromResponse(subResp), nil
	}
}

// resultFromResponse converts a sub-task response back into an
// instrument result so the spawning loop can embed it.
func resultFromResponse(resp *models.TaskResponse) *models.InstrumentResult {
	return &models.InstrumentResult{
		Findings:           resp.Findings,
		Summary:            resp.Summary,
		Confidence:         resp.Confidence,
		Outcome:            resp.Outcome,
		Discrepancy:        resp.Discrepancy,
		Metadata:           resp.Metadata,
		SuggestedFollowups: resp.SuggestedFollowups,
	}
}

// delegationTarget picks the remote room a task is handed to, or nil
// for local execution: no registry or delegation client, no qualifying
// room, the best room is this server, or a privacy constraint pins the
// task to rooms the user controls.
func (c *Conductor) delegationTarget(inst instrument.Instrument, assessment privacy.Assessment) *models.Room {
	if c.registry == nil || c.delegator == nil {
		return nil
	}
	room, ok := c.registry.BestRoom(inst.RequiredCapabilities(), assessment.ShouldStayLocal)
	if !ok || room.IsSelf() {
		return nil
	}
	if assessment.ShouldStayLocal && !room.SatisfiesLocality() {
		slog.Debug("Privacy constraint keeps task local",
			"level", string(assessment.Level), "rejected_room", room.ID)
		return nil
	}
	return room
}

// branchRunner builds the cross-room branch executor. Named rooms
// delegate directly, unnamed branches go to the best available room,
// and branches with no usable remote run on this server. A privacy
// constraint pins every branch local regardless of what it names.
func (c *Conductor) branchRunner(req *models.TaskRequest, assessment privacy.Assessment) composition.BranchRunner {
	return func(ctx context.Context, roomID, subQuery string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
		subReq := &models.TaskRequest{
			ID:          uuid.New().String(),
			Query:       subQuery,
			Context:     taskCtx,
			Preferences: req.Preferences,
		}

		room, skipReason := c.branchTarget(roomID, assessment)
		if room == nil {
			result, err := c.runLocalBranch(ctx, subReq)
			if err != nil {
				return nil, err
			}
			if skipReason != "" {
				result.Metadata.FailoverEvents = append(result.Metadata.FailoverEvents, models.FailoverEvent{
					RoomID: roomID,
					Reason: skipReason,
					At:     time.Now().UTC(),
				})
			}
			return result, nil
		}

		result, err := c.delegator.Delegate(ctx, room, subReq)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var delErr *rooms.DelegationError
		if !errors.As(err, &delErr) {
			return nil, err
		}
		slog.Warn("Branch delegation failed, retrying locally",
			"task_id", req.ID, "room_id", delErr.RoomID, "reason", delErr.Reason)
		c.recordTaskError(subReq, errorrecord.SourceRoom, "delegation", err)

		result, err = c.runLocalBranch(ctx, subReq)
		if err != nil {
			return nil, err
		}
		result.Metadata.FailoverEvents = append(result.Metadata.FailoverEvents, models.FailoverEvent{
			RoomID: delErr.RoomID,
			Reason: delErr.Reason,
			At:     time.Now().UTC(),
		})
		return result, nil
	}
}

// branchTarget resolves one branch's delegation room. A nil room means
// the branch runs locally; a non-empty reason marks a named room that
// could not be used, which the runner records as a failover.
func (c *Conductor) branchTarget(roomID string, assessment privacy.Assessment) (*models.Room, string) {
	if c.registry == nil || c.delegator == nil {
		return nil, ""
	}

	var room *models.Room
	if roomID != "" {
		r, ok := c.registry.Get(roomID)
		if !ok {
			return nil, "room not registered"
		}
		room = r
	} else {
		r, ok := c.registry.BestRoom(nil, assessment.ShouldStayLocal)
		if !ok {
			return nil, ""
		}
		room = r
	}

	if room.IsSelf() {
		return nil, ""
	}
	if room.Status != models.RoomOnline {
		return nil, "room offline"
	}
	if assessment.ShouldStayLocal && !room.SatisfiesLocality() {
		return nil, ""
	}
	return room, ""
}

// runLocalBranch executes a branch on this server with the instrument
// its sub-query routes to.
func (c *Conductor) runLocalBranch(ctx context.Context, subReq *models.TaskRequest) (*models.InstrumentResult, error) {
	name := c.Route(subReq)
	inst, err := c.instruments.New(name, nil)
	if err != nil {
		return nil, fmt.Errorf("build instrument %q: %w", name, err)
	}
	return inst.Execute(ctx, subReq.Query, subReq.Context)
}

// classifyExecError attributes a run failure for the error-learning
// store: a failure caused by an exhausted tool call is journaled
// against the tool, anything else against the instrument layer.
func classifyExecError(err error, kind string) (errorrecord.Source, string) {
	var toolErr *tools.ToolError
	if errors.As(err, &toolErr) {
		return errorrecord.SourceTool, "tool"
	}
	return errorrecord.SourceInstrument, kind
}

// recordTaskError journals a failure in the error-learning store.
// Best-effort with its own timeout; the store is app-scoped, so
// requests without an app are skipped.
func (c *Conductor) recordTaskError(req *models.TaskRequest, source errorrecord.Source, kind string, execErr error) {
	if c.errorLog == nil || req.Context == nil || req.Context.AppID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), errorRecordTimeout)
	defer cancel()

	var taskID *string
	if req.ID != "" {
		id := req.ID
		taskID = &id
	}
	if _, err := c.errorLog.RecordError(ctx, req.Context.AppID, taskID, source, kind, execErr.Error(), nil); err != nil {
		slog.Warn("Error record write failed", "task_id", req.ID, "error", err)
	}
}

// privacyConstraint converts an assessment into the metadata record
// surfaced on results whose room selection it constrained.
func privacyConstraint(assessment privacy.Assessment) *models.PrivacyConstraint {
	categories := make([]string, len(assessment.Categories))
	for i, cat := range assessment.Categories {
		categories[i] = string(cat)
	}
	return &models.PrivacyConstraint{
		Level:       string(assessment.Level),
		Categories:  categories,
		StayedLocal: true,
		Reason:      assessment.Reason,
	}
}
