package conductor

import (
	"context"
	"fmt"
	"sync"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

// fakeInstrument returns a canned result (or error) and records every
// execution it receives. execFn, when set, replaces the canned behavior
// so tests can script instruments that call back into the injected
// checkpoint and spawn hooks.
type fakeInstrument struct {
	name          string
	result        *models.InstrumentResult
	err           error
	processType   models.ProcessType
	maxIterations int
	requiredCaps  []string
	execFn        func(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error)

	mu       sync.Mutex
	queries  []string
	contexts []*models.TaskContext
}

func (f *fakeInstrument) Name() string { return f.name }

func (f *fakeInstrument) ProcessType() models.ProcessType {
	if f.processType == "" {
		return models.ProcessSemiAutonomic
	}
	return f.processType
}

func (f *fakeInstrument) MaxIterations() int {
	if f.maxIterations == 0 {
		return 1
	}
	return f.maxIterations
}

func (f *fakeInstrument) RequiredCapabilities() []string { return f.requiredCaps }
func (f *fakeInstrument) OptionalCapabilities() []string { return nil }

func (f *fakeInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.contexts = append(f.contexts, taskCtx)
	f.mu.Unlock()
	if f.execFn != nil {
		return f.execFn(ctx, query, taskCtx)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return nil, nil
	}
	out := *f.result
	return &out, nil
}

func (f *fakeInstrument) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeInstrument) recordedContexts() []*models.TaskContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.TaskContext(nil), f.contexts...)
}

// fakeProvider hands out the registered fakes by name.
type fakeProvider struct {
	instruments map[string]*fakeInstrument
	buildErr    map[string]error
}

func newFakeProvider(instruments ...*fakeInstrument) *fakeProvider {
	p := &fakeProvider{
		instruments: make(map[string]*fakeInstrument),
		buildErr:    make(map[string]error),
	}
	for _, inst := range instruments {
		p.instruments[inst.name] = inst
	}
	return p
}

func (p *fakeProvider) Has(name string) bool {
	_, ok := p.instruments[name]
	return ok
}

func (p *fakeProvider) New(name string, _ *models.InstrumentOverrides) (instrument.Instrument, error) {
	if err := p.buildErr[name]; err != nil {
		return nil, err
	}
	inst, ok := p.instruments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", instrument.ErrUnknownInstrument, name)
	}
	return inst, nil
}

// canned builds an InstrumentResult for scripted instruments.
func canned(outcome models.Outcome, summary string, confidence float64, sources ...string) *models.InstrumentResult {
	return &models.InstrumentResult{
		Findings:   []models.Finding{models.NewFinding("finding: "+summary, "test", 0.8)},
		Summary:    summary,
		Confidence: confidence,
		Outcome:    outcome,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   "test",
			Iterations:       1,
			SourcesConsulted: sources,
		},
	}
}

// delegation records one remote hand-off the fake delegator received.
type delegation struct {
	room *models.Room
	req  *models.TaskRequest
}

// fakeDelegator resolves delegations from canned tables keyed by room id
// and stamps the room onto the result the way the HTTP client does.
type fakeDelegator struct {
	results map[string]*models.InstrumentResult
	errs    map[string]error

	mu    sync.Mutex
	calls []delegation
}

func newFakeDelegator() *fakeDelegator {
	return &fakeDelegator{
		results: make(map[string]*models.InstrumentResult),
		errs:    make(map[string]error),
	}
}

func (d *fakeDelegator) Delegate(_ context.Context, room *models.Room, req *models.TaskRequest) (*models.InstrumentResult, error) {
	d.mu.Lock()
	d.calls = append(d.calls, delegation{room: room, req: req})
	d.mu.Unlock()
	if err := d.errs[room.ID]; err != nil {
		return nil, err
	}
	if result, ok := d.results[room.ID]; ok {
		out := *result
		out.Metadata.RoomID = room.ID
		out.Metadata.InstrumentUsed = "room:" + room.ID + "/note"
		return &out, nil
	}
	return nil, fmt.Errorf("no scripted result for room %q", room.ID)
}

func (d *fakeDelegator) recorded() []delegation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]delegation(nil), d.calls...)
}
