package composition

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

// fakeInstrument returns a canned result (or error) and records every
// execution it receives.
type fakeInstrument struct {
	name   string
	result *models.InstrumentResult
	err    error
	delay  time.Duration

	mu       sync.Mutex
	queries  []string
	contexts []*models.TaskContext
}

func (f *fakeInstrument) Name() string                    { return f.name }
func (f *fakeInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }
func (f *fakeInstrument) MaxIterations() int              { return 1 }
func (f *fakeInstrument) RequiredCapabilities() []string  { return nil }
func (f *fakeInstrument) OptionalCapabilities() []string  { return nil }

func (f *fakeInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.contexts = append(f.contexts, taskCtx)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	out := *f.result
	return &out, nil
}

func (f *fakeInstrument) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

// fakeProvider hands out the registered fakes by name and records the
// overrides each build received.
type fakeProvider struct {
	instruments map[string]*fakeInstrument
	buildErr    map[string]error

	mu        sync.Mutex
	overrides map[string][]*models.InstrumentOverrides
}

func newFakeProvider(instruments ...*fakeInstrument) *fakeProvider {
	p := &fakeProvider{
		instruments: make(map[string]*fakeInstrument),
		buildErr:    make(map[string]error),
		overrides:   make(map[string][]*models.InstrumentOverrides),
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

func (p *fakeProvider) New(name string, overrides *models.InstrumentOverrides) (instrument.Instrument, error) {
	if err := p.buildErr[name]; err != nil {
		return nil, err
	}
	inst, ok := p.instruments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", instrument.ErrUnknownInstrument, name)
	}
	p.mu.Lock()
	p.overrides[name] = append(p.overrides[name], overrides)
	p.mu.Unlock()
	return inst, nil
}

// canned builds an InstrumentResult for scripted instruments.
func canned(outcome models.Outcome, summary string, confidence float64, iterations int, sources ...string) *models.InstrumentResult {
	return &models.InstrumentResult{
		Findings:   []models.Finding{models.NewFinding("finding: "+summary, "test", 0.8)},
		Summary:    summary,
		Confidence: confidence,
		Outcome:    outcome,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   "test",
			Iterations:       iterations,
			SourcesConsulted: sources,
		},
	}
}

// runnerCall records one cross-room branch handed to the runner.
type runnerCall struct {
	roomID   string
	subQuery string
	taskCtx  *models.TaskContext
}

// scriptedRunner resolves cross-room branches from canned tables keyed
// by room id.
type scriptedRunner struct {
	results map[string]*models.InstrumentResult
	errs    map[string]error
	delays  map[string]time.Duration

	mu    sync.Mutex
	calls []runnerCall
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{
		results: make(map[string]*models.InstrumentResult),
		errs:    make(map[string]error),
		delays:  make(map[string]time.Duration),
	}
}

func (r *scriptedRunner) run(ctx context.Context, roomID, subQuery string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	r.mu.Lock()
	r.calls = append(r.calls, runnerCall{roomID: roomID, subQuery: subQuery, taskCtx: taskCtx})
	r.mu.Unlock()
	if d := r.delays[roomID]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := r.errs[roomID]; err != nil {
		return nil, err
	}
	if result, ok := r.results[roomID]; ok {
		out := *result
		return &out, nil
	}
	return nil, fmt.Errorf("no scripted result for room %q", roomID)
}

func (r *scriptedRunner) recorded() []runnerCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runnerCall(nil), r.calls...)
}

// checkpointRecord captures one checkpoint callback invocation.
type checkpointRecord struct {
	step       int
	phase      string
	input      map[string]any
	output     map[string]any
	durationMS int64
}

func captureCheckpoints(records *[]checkpointRecord) models.CheckpointFunc {
	return func(_ context.Context, iteration int, phase string, input, output map[string]any, durationMS int64) error {
		*records = append(*records, checkpointRecord{
			step:       iteration,
			phase:      phase,
			input:      input,
			output:     output,
			durationMS: durationMS,
		})
		return nil
	}
}
