package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/pkg/autonomic"
	"github.com/loop-symphony/symphony/pkg/conductor"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
	"github.com/loop-symphony/symphony/pkg/tools"
	"github.com/loop-symphony/symphony/pkg/trust"
	testdb "github.com/loop-symphony/symphony/test/database"
)

// scriptedInstrument keys its behavior off markers in the query so
// tests steer the outcome without mutating shared state: "[fail]" makes
// the run error, "[hang]" blocks until cancellation, "[checkpoint]"
// records one iteration checkpoint, anything else succeeds.
type scriptedInstrument struct {
	name string
}

func (i *scriptedInstrument) Name() string { return i.name }

func (i *scriptedInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }

func (i *scriptedInstrument) MaxIterations() int { return 3 }

func (i *scriptedInstrument) RequiredCapabilities() []string { return nil }

func (i *scriptedInstrument) OptionalCapabilities() []string { return nil }

func (i *scriptedInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	switch {
	case strings.Contains(query, "[fail]"):
		return nil, errors.New("scripted instrument failure")
	case strings.Contains(query, "[hang]"):
		<-ctx.Done()
		return nil, ctx.Err()
	case strings.Contains(query, "[checkpoint]"):
		if taskCtx != nil && taskCtx.CheckpointFn != nil {
			err := taskCtx.CheckpointFn(ctx, 1, "observe", nil, map[string]any{"note": "looked at the sources"}, 5)
			if err != nil {
				return nil, err
			}
		}
	}
	return &models.InstrumentResult{
		Findings:   []models.Finding{models.NewFinding("observation for "+i.name, i.name, 0.8)},
		Summary:    "answered: " + query,
		Confidence: 0.9,
		Outcome:    models.OutcomeComplete,
		Metadata:   models.ExecutionMetadata{InstrumentUsed: i.name, Iterations: 1},
	}, nil
}

// scriptedProvider hands out scripted instruments for the standard
// routes.
type scriptedProvider struct {
	instruments map[string]instrument.Instrument
}

func newScriptedProvider() *scriptedProvider {
	p := &scriptedProvider{instruments: make(map[string]instrument.Instrument)}
	for _, name := range []string{instrument.NameNote, instrument.NameResearch, instrument.NameVision} {
		p.instruments[name] = &scriptedInstrument{name: name}
	}
	return p
}

func (p *scriptedProvider) Has(name string) bool {
	_, ok := p.instruments[name]
	return ok
}

func (p *scriptedProvider) New(name string, _ *models.InstrumentOverrides) (instrument.Instrument, error) {
	inst, ok := p.instruments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", instrument.ErrUnknownInstrument, name)
	}
	return inst, nil
}

// stubTool satisfies the tool contract for registry-backed endpoints.
type stubTool struct {
	name string
	caps []string
}

func (t *stubTool) Name() string { return t.name }

func (t *stubTool) Capabilities() []string { return t.caps }

func (t *stubTool) Manifest() tools.Manifest {
	return tools.Manifest{Name: t.name, Version: "0.0.1", Capabilities: t.caps}
}

func (t *stubTool) HealthCheck(context.Context) error { return nil }

// testEnv wires the whole HTTP surface against an isolated test
// database, with scripted instruments behind the conductor and started
// workers so submitted tasks actually run.
type testEnv struct {
	router    http.Handler
	client    *ent.Client
	app       *ent.App
	anonymous *ent.App

	tasks     *services.TaskService
	profiles  *services.ProfileService
	knowledge *services.KnowledgeService
	bus       *events.Bus
	registry  *rooms.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	apps := services.NewAppService(dbClient.Client)
	profiles := services.NewProfileService(dbClient.Client)
	tasks := services.NewTaskService(dbClient.Client)
	iterations := services.NewIterationService(dbClient.Client)
	heartbeats := services.NewHeartbeatService(dbClient.Client)
	arrangements := services.NewArrangementService(dbClient.Client)
	notifications := services.NewNotificationService(dbClient.Client)
	knowledge := services.NewKnowledgeService(dbClient.Client)

	anonymous, err := apps.EnsureAnonymousApp(context.Background())
	require.NoError(t, err)

	bus := events.NewBus(events.BusConfig{})
	t.Cleanup(bus.Close)

	manager := taskmanager.NewManager(tasks, bus, config.WorkerConfig{Count: 2, QueueSize: 16})
	manager.Start(context.Background())
	t.Cleanup(manager.Stop)

	registry := rooms.NewRegistry(0)

	cond := conductor.New(conductor.Deps{
		Instruments:  newScriptedProvider(),
		Arrangements: arrangements,
		Iterations:   iterations,
		Bus:          bus,
		Registry:     registry,
	}, config.ConductorConfig{})

	toolRegistry := tools.NewRegistry()
	require.NoError(t, toolRegistry.Register(&stubTool{name: "reasoning", caps: []string{tools.CapabilityReasoning}}))
	require.NoError(t, toolRegistry.Register(&stubTool{name: "web_search", caps: []string{tools.CapabilityWebSearch}}))

	scheduler := autonomic.NewScheduler(autonomic.SchedulerDeps{
		Heartbeats: heartbeats,
		Tasks:      tasks,
		Profiles:   profiles,
		Manager:    manager,
		Executor:   cond,
	}, time.Minute)

	monitor := autonomic.NewMonitor(autonomic.MonitorDeps{
		DB:      dbClient,
		Tools:   toolRegistry,
		Rooms:   registry,
		Bus:     bus,
		Manager: manager,
	}, time.Minute)

	srv := NewServer(Deps{
		Apps:          apps,
		Profiles:      profiles,
		Tasks:         tasks,
		Iterations:    iterations,
		Heartbeats:    heartbeats,
		Arrangements:  arrangements,
		Notifications: notifications,
		Knowledge:     knowledge,
		Manager:       manager,
		Conductor:     cond,
		Bus:           bus,
		Trust:         trust.NewTracker(profiles),
		Rooms:         registry,
		Tools:         toolRegistry,
		Scheduler:     scheduler,
		Monitor:       monitor,
		DB:            dbClient,
		Anonymous:     anonymous,
	}, nil)

	return &testEnv{
		router:    srv.Router(),
		client:    dbClient.Client,
		app:       seedApp(t, dbClient.Client),
		anonymous: anonymous,
		tasks:     tasks,
		profiles:  profiles,
		knowledge: knowledge,
		bus:       bus,
		registry:  registry,
	}
}

func seedApp(t *testing.T, client *ent.Client) *ent.App {
	t.Helper()
	app, err := client.App.Create().
		SetID(uuid.New().String()).
		SetName("test-app-" + uuid.New().String()[:8]).
		SetAPIKey("sk-test-" + uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return app
}

// authed returns the headers of an app-only caller.
func (env *testEnv) authed() map[string]string {
	return map[string]string{"X-Api-Key": env.app.APIKey}
}

// authedAs returns the headers of a caller acting for a specific user.
func (env *testEnv) authedAs(userID string) map[string]string {
	return map[string]string{"X-Api-Key": env.app.APIKey, "X-User-Id": userID}
}

// do performs one request against the router and returns the recorder.
func (env *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

// detailOf extracts the `detail` field every error body carries.
func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, rec, &body)
	return body.Detail
}

// waitForStatus polls the store until the task reaches the wanted
// status and returns the row.
func (env *testEnv) waitForStatus(t *testing.T, appID, taskID string, want task.Status) *ent.Task {
	t.Helper()
	var row *ent.Task
	require.Eventually(t, func() bool {
		var err error
		row, err = env.tasks.GetTask(context.Background(), appID, taskID)
		return err == nil && row.Status == want
	}, 10*time.Second, 20*time.Millisecond, "task %s never reached %s", taskID, want)
	return row
}

// autonomous returns preferences that skip the approval gate so the
// submission executes immediately.
func autonomous() *models.TaskPreferences {
	return &models.TaskPreferences{TrustLevel: models.TrustAutonomous}
}

// submitAndWait pushes a request through the full pipeline and returns
// the task id once the row reaches the wanted status.
func (env *testEnv) submitAndWait(t *testing.T, req models.TaskRequest, headers map[string]string, appID string, want task.Status) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/task", req, headers)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp TaskSubmitResponse
	decodeJSON(t, rec, &resp)
	env.waitForStatus(t, appID, resp.TaskID, want)
	return resp.TaskID
}
