// Package e2e exercises the whole server over real HTTP: the production
// router behind a TCP listener, real instruments driven by scripted
// reasoning and search tools, a live worker pool, and an isolated
// database schema per test.
package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/pkg/api"
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

// pollTimeout bounds every wait helper. Scripted tools answer in
// microseconds, so anything slower than this is a real hang.
const pollTimeout = 15 * time.Second

// completionRule scripts one class of reasoner call. A rule applies when
// every non-empty marker appears in the prompt; the first applicable
// rule answers. hang blocks the call until its context ends, which is
// how tests exercise cancellation and branch timeouts.
type completionRule struct {
	marker string
	also   string
	reply  string
	err    error
	hang   bool
}

// stubReasoner answers prompts by marker rules rather than call order,
// so concurrent branches stay deterministic. It records every prompt it
// was given.
type stubReasoner struct {
	mu      sync.Mutex
	rules   []completionRule
	prompts []string
}

func (r *stubReasoner) Name() string { return "claude" }

func (r *stubReasoner) Complete(ctx context.Context, prompt, _ string) (string, error) {
	r.mu.Lock()
	r.prompts = append(r.prompts, prompt)
	rules := r.rules
	r.mu.Unlock()

	for _, rule := range rules {
		if !strings.Contains(prompt, rule.marker) || !strings.Contains(prompt, rule.also) {
			continue
		}
		if rule.hang {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return rule.reply, rule.err
	}
	return "", errors.New("no scripted reply matched the prompt")
}

func (r *stubReasoner) CompleteWithImages(ctx context.Context, prompt string, _ []tools.ImageInput, system string) (string, error) {
	return r.Complete(ctx, prompt, system)
}

// promptCount reports how many completions the server asked for.
func (r *stubReasoner) promptCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.prompts)
}

// stubSearcher returns one canned batch for every search and records the
// query batches it was given.
type stubSearcher struct {
	mu        sync.Mutex
	responses []*tools.SearchResponse
	err       error
	batches   [][]string
}

func (s *stubSearcher) Name() string { return "tavily" }

func (s *stubSearcher) Search(_ context.Context, query string, _ int) (*tools.SearchResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.responses) > 0 {
		return s.responses[0], nil
	}
	return &tools.SearchResponse{Query: query}, nil
}

func (s *stubSearcher) SearchMany(_ context.Context, queries []string, _ int) ([]*tools.SearchResponse, error) {
	s.mu.Lock()
	s.batches = append(s.batches, queries)
	responses, err := s.responses, s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// queryBatches reports the search batches the server issued.
func (s *stubSearcher) queryBatches() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string{}, s.batches...)
}

// reasonerTool registers the stub reasoner under the capabilities the
// builtin instruments resolve.
type reasonerTool struct{ *stubReasoner }

func (t reasonerTool) Capabilities() []string {
	return []string{tools.CapabilityReasoning, tools.CapabilitySynthesis, tools.CapabilityVision}
}

func (t reasonerTool) Manifest() tools.Manifest {
	return tools.Manifest{Name: t.Name(), Version: "0.0.1", Capabilities: t.Capabilities()}
}

func (t reasonerTool) HealthCheck(context.Context) error { return nil }

// searcherTool registers the stub searcher as the web-search capability.
type searcherTool struct{ *stubSearcher }

func (t searcherTool) Capabilities() []string { return []string{tools.CapabilityWebSearch} }

func (t searcherTool) Manifest() tools.Manifest {
	return tools.Manifest{Name: t.Name(), Version: "0.0.1", Capabilities: t.Capabilities()}
}

func (t searcherTool) HealthCheck(context.Context) error { return nil }

// baselineReplies script a clean research pass: problem definition, two
// hypotheses, a contradiction-free synthesis, and followups. The final
// catch-all rule answers note completions and loop prompt phases.
func baselineReplies() []completionRule {
	return []completionRule{
		{marker: "Define the research problem", reply: "Establish when the release shipped and what changed."},
		{marker: "Generate 2-3 search queries", reply: "release timeline\nheadline changes"},
		{marker: "Synthesize these findings", reply: `{"summary": "The release shipped in August with three headline changes.", "has_contradictions": false, "contradiction_hint": null}`},
		{marker: "Analyze this contradiction", reply: `{"description": "sources disagree on the date", "severity": "minor", "conflicting_claims": [], "suggested_refinements": []}`},
		{marker: "Suggest 2-3 follow-up questions", reply: "What changed in the defaults?\nWho owns the migration?"},
		{reply: "A direct and confident answer."},
	}
}

// strongSearchBatch clears the default confidence threshold in a single
// iteration: six distinct URLs plus a direct answer.
func strongSearchBatch() []*tools.SearchResponse {
	return []*tools.SearchResponse{
		{
			Query:  "release timeline",
			Answer: "The release shipped in August.",
			Results: []tools.SearchResult{
				{Title: "Announcement", URL: "https://example.org/announce", Content: "Shipped in August", Score: 0.9},
				{Title: "Changelog", URL: "https://example.org/changelog", Content: "Full change list", Score: 0.8},
				{Title: "Mirror", URL: "https://mirror.example.org/notes", Content: "Release notes", Score: 0.7},
			},
		},
		{
			Query: "headline changes",
			Results: []tools.SearchResult{
				{Title: "Overview", URL: "https://example.org/overview", Content: "Three headline changes", Score: 0.9},
				{Title: "Deep dive", URL: "https://example.org/deep-dive", Content: "Details", Score: 0.8},
				{Title: "Recap", URL: "https://example.org/recap", Content: "Summary", Score: 0.7},
			},
		},
	}
}

// settings collect the per-test knobs the options below adjust.
type settings struct {
	rules     []completionRule
	searches  []*tools.SearchResponse
	searchErr error
	conductor config.ConductorConfig
	factory   instrument.FactoryConfig
}

// Option adjusts the server a test boots.
type Option func(*settings)

// WithReasonerReplies prepends rules, so they win over the baseline
// script.
func WithReasonerReplies(rules ...completionRule) Option {
	return func(s *settings) {
		s.rules = append(append([]completionRule{}, rules...), s.rules...)
	}
}

// WithSearchBatch replaces the canned search responses.
func WithSearchBatch(responses ...*tools.SearchResponse) Option {
	return func(s *settings) { s.searches = responses }
}

// WithSearchError makes every search call fail.
func WithSearchError(err error) Option {
	return func(s *settings) { s.searchErr = err }
}

// WithConductorConfig sets spawn depth, branch timeout, and privacy
// strictness.
func WithConductorConfig(cfg config.ConductorConfig) Option {
	return func(s *settings) { s.conductor = cfg }
}

// WithLoopSpecs registers declared loops alongside the builtins.
func WithLoopSpecs(specs ...instrument.LoopSpec) Option {
	return func(s *settings) { s.factory.Loops = specs }
}

// TestApp is one booted server plus a client app registered against it.
// Reasoner and Searcher stay accessible so tests can assert on the
// traffic the instruments generated.
type TestApp struct {
	t       *testing.T
	baseURL string
	http    *http.Client
	stream  *http.Client
	db      *ent.Client
	row     *ent.App
	apiKey  string
	userID  string

	Reasoner *stubReasoner
	Searcher *stubSearcher
}

// StartApp boots the full stack on an ephemeral port: database, services,
// scripted tools behind the real instrument factory, event bus, worker
// pool, conductor, and the HTTP server. Teardown runs in reverse through
// t.Cleanup.
func StartApp(t *testing.T, opts ...Option) *TestApp {
	t.Helper()

	cfg := &settings{
		rules:    baselineReplies(),
		searches: strongSearchBatch(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

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

	reasoner := &stubReasoner{rules: cfg.rules}
	searcher := &stubSearcher{responses: cfg.searches, err: cfg.searchErr}

	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(reasonerTool{reasoner}))
	require.NoError(t, registry.Register(searcherTool{searcher}))

	factory, err := instrument.NewFactory(registry, cfg.factory)
	require.NoError(t, err)

	bus := events.NewBus(events.BusConfig{})
	t.Cleanup(bus.Close)

	manager := taskmanager.NewManager(tasks, bus, config.WorkerConfig{Count: 2, QueueSize: 32})
	manager.Start(context.Background())
	t.Cleanup(manager.Stop)

	roomRegistry := rooms.NewRegistry(0)

	cond := conductor.New(conductor.Deps{
		Instruments:  factory,
		Arrangements: arrangements,
		Iterations:   iterations,
		Bus:          bus,
		Registry:     roomRegistry,
	}, cfg.conductor)

	srv := api.NewServer(api.Deps{
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
		Rooms:         roomRegistry,
		Tools:         registry,
		DB:            dbClient,
		Anonymous:     anonymous,
	}, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		if serveErr := srv.StartWithListener(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			t.Logf("server exited: %v", serveErr)
		}
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	row := seedApp(t, dbClient.Client)

	return &TestApp{
		t:        t,
		baseURL:  "http://" + ln.Addr().String(),
		http:     &http.Client{Timeout: 10 * time.Second},
		stream:   &http.Client{},
		db:       dbClient.Client,
		row:      row,
		apiKey:   row.APIKey,
		userID:   "user-" + uuid.New().String()[:8],
		Reasoner: reasoner,
		Searcher: searcher,
	}
}

func seedApp(t *testing.T, client *ent.Client) *ent.App {
	t.Helper()
	row, err := client.App.Create().
		SetID(uuid.New().String()).
		SetName("e2e-" + uuid.New().String()[:8]).
		SetAPIKey("sk-e2e-" + uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

// Sibling registers a second client app against the same server, for
// cross-app isolation checks.
func (app *TestApp) Sibling() *TestApp {
	app.t.Helper()
	clone := *app
	row := seedApp(app.t, app.db)
	clone.row = row
	clone.apiKey = row.APIKey
	clone.userID = "user-" + uuid.New().String()[:8]
	return &clone
}

// do issues one request with the app's credentials and returns the
// status code and raw body.
func (app *TestApp) do(method, path string, body any) (int, []byte) {
	app.t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(app.t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, app.baseURL+path, reader)
	require.NoError(app.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Api-Key", app.apiKey)
	req.Header.Set("X-User-Id", app.userID)

	resp, err := app.http.Do(req)
	require.NoError(app.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(app.t, err)
	return resp.StatusCode, raw
}

// decode unmarshals a JSON body, failing the test with the body text on
// a mismatch.
func (app *TestApp) decode(raw []byte, out any) {
	app.t.Helper()
	require.NoError(app.t, json.Unmarshal(raw, out), "body: %s", raw)
}

// Submit posts a task and returns the acknowledgement.
func (app *TestApp) Submit(req models.TaskRequest) api.TaskSubmitResponse {
	app.t.Helper()
	code, raw := app.do(http.MethodPost, "/task", req)
	require.Equal(app.t, http.StatusOK, code, "body: %s", raw)
	var resp api.TaskSubmitResponse
	app.decode(raw, &resp)
	return resp
}

// WaitForResponse polls the task until it serves its stored response.
// A failed task ends the test immediately with the error detail.
func (app *TestApp) WaitForResponse(taskID string) *models.TaskResponse {
	app.t.Helper()
	deadline := time.Now().Add(pollTimeout)
	for {
		code, raw := app.do(http.MethodGet, "/task/"+taskID, nil)
		switch code {
		case http.StatusOK:
			var probe struct {
				RequestID string `json:"request_id"`
			}
			if json.Unmarshal(raw, &probe) == nil && probe.RequestID != "" {
				var resp models.TaskResponse
				app.decode(raw, &resp)
				return &resp
			}
		case http.StatusInternalServerError:
			app.t.Fatalf("task %s failed: %s", taskID, raw)
		default:
			app.t.Fatalf("poll for task %s answered %d: %s", taskID, code, raw)
		}
		if time.Now().After(deadline) {
			app.t.Fatalf("task %s never served a response", taskID)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitForStatus polls until the task reports the wanted non-terminal or
// cancelled status.
func (app *TestApp) WaitForStatus(taskID, want string) {
	app.t.Helper()
	deadline := time.Now().Add(pollTimeout)
	for {
		code, raw := app.do(http.MethodGet, "/task/"+taskID, nil)
		require.Equal(app.t, http.StatusOK, code, "body: %s", raw)
		var pending api.TaskPendingResponse
		app.decode(raw, &pending)
		if pending.Status == want {
			return
		}
		if time.Now().After(deadline) {
			app.t.Fatalf("task %s stuck at %q, want %q", taskID, pending.Status, want)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// StreamEvent is one parsed SSE frame.
type StreamEvent struct {
	ID   string
	Type string
	Data string
}

// StreamEvents reads the task's SSE stream until its terminal event and
// returns every stored event in arrival order, keepalives skipped. The
// bus replays history, so opening the stream after the task finished
// still yields the full sequence.
func (app *TestApp) StreamEvents(taskID string, timeout time.Duration) []StreamEvent {
	app.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, app.baseURL+"/task/"+taskID+"/stream", nil)
	require.NoError(app.t, err)
	req.Header.Set("X-Api-Key", app.apiKey)

	resp, err := app.stream.Do(req)
	require.NoError(app.t, err)
	defer resp.Body.Close()
	require.Equal(app.t, http.StatusOK, resp.StatusCode)

	var (
		collected []StreamEvent
		cur       StreamEvent
	)
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if cur.Type != "" && cur.Type != string(models.EventKeepalive) {
				collected = append(collected, cur)
				if models.EventType(cur.Type).IsTerminal() {
					return collected
				}
			}
			cur = StreamEvent{}
		case strings.HasPrefix(line, "id:"):
			cur.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		case strings.HasPrefix(line, "event:"):
			cur.Type = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			cur.Data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	app.t.Fatalf("stream for task %s ended without a terminal event", taskID)
	return nil
}

// eventTypes projects the frame types for order assertions.
func eventTypes(frames []StreamEvent) []string {
	out := make([]string, len(frames))
	for i, frame := range frames {
		out[i] = frame.Type
	}
	return out
}

// autonomous returns preferences that skip the approval gate.
func autonomous() *models.TaskPreferences {
	return &models.TaskPreferences{TrustLevel: models.TrustAutonomous}
}
