package instrument

import (
	"context"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/tools"
)

// scriptedReasoner replays canned script entries in call order: a string
// entry is returned as the response, an error entry fails that call. The
// last entry repeats once the script runs out.
type scriptedReasoner struct {
	script  []any
	calls   int
	prompts []string
	systems []string
	images  [][]tools.ImageInput
}

func (s *scriptedReasoner) Name() string { return "claude" }

func (s *scriptedReasoner) Complete(_ context.Context, prompt, system string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.systems = append(s.systems, system)
	return s.next()
}

func (s *scriptedReasoner) CompleteWithImages(_ context.Context, prompt string, images []tools.ImageInput, system string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.systems = append(s.systems, system)
	s.images = append(s.images, images)
	return s.next()
}

func (s *scriptedReasoner) next() (string, error) {
	if len(s.script) == 0 {
		return "", nil
	}
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++
	switch v := s.script[i].(type) {
	case error:
		return "", v
	case string:
		return v, nil
	default:
		return "", nil
	}
}

// scriptedSearcher returns the same canned batch for every call and
// records the query batches it was given.
type scriptedSearcher struct {
	responses []*tools.SearchResponse
	err       error
	batches   [][]string
}

func (s *scriptedSearcher) Name() string { return "tavily" }

func (s *scriptedSearcher) Search(_ context.Context, query string, _ int) (*tools.SearchResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) > 0 {
		return s.responses[0], nil
	}
	return &tools.SearchResponse{Query: query}, nil
}

func (s *scriptedSearcher) SearchMany(_ context.Context, queries []string, _ int) ([]*tools.SearchResponse, error) {
	s.batches = append(s.batches, queries)
	if s.err != nil {
		return nil, s.err
	}
	return s.responses, nil
}

// checkpointRecord captures one checkpoint emission.
type checkpointRecord struct {
	iteration  int
	phase      string
	input      map[string]any
	output     map[string]any
	durationMS int64
}

func captureCheckpoints(records *[]checkpointRecord) models.CheckpointFunc {
	return func(_ context.Context, iteration int, phase string, input, output map[string]any, durationMS int64) error {
		*records = append(*records, checkpointRecord{iteration, phase, input, output, durationMS})
		return nil
	}
}

// reasonerTool adapts a scripted reasoner into a registrable tool.
type reasonerTool struct {
	scriptedReasoner
	name string
	caps []string
}

func (t *reasonerTool) Name() string {
	if t.name != "" {
		return t.name
	}
	return "claude"
}
func (t *reasonerTool) Capabilities() []string { return t.caps }
func (t *reasonerTool) Manifest() tools.Manifest {
	return tools.Manifest{Name: t.Name(), Capabilities: t.caps}
}
func (t *reasonerTool) HealthCheck(context.Context) error { return nil }

// searcherTool adapts a scripted searcher into a registrable tool.
type searcherTool struct {
	scriptedSearcher
}

func (t *searcherTool) Name() string           { return "tavily" }
func (t *searcherTool) Capabilities() []string { return []string{tools.CapabilityWebSearch} }
func (t *searcherTool) Manifest() tools.Manifest {
	return tools.Manifest{Name: "tavily", Capabilities: t.Capabilities()}
}
func (t *searcherTool) HealthCheck(context.Context) error { return nil }

// bareTool claims capabilities without implementing any of the consumer
// surfaces.
type bareTool struct {
	name string
	caps []string
}

func (t *bareTool) Name() string           { return t.name }
func (t *bareTool) Capabilities() []string { return t.caps }
func (t *bareTool) Manifest() tools.Manifest {
	return tools.Manifest{Name: t.name, Capabilities: t.caps}
}
func (t *bareTool) HealthCheck(context.Context) error { return nil }

// fakeInstrument records its invocation and returns a preset result.
type fakeInstrument struct {
	name    string
	result  *models.InstrumentResult
	err     error
	queries []string
	taskCtx *models.TaskContext
}

func (f *fakeInstrument) Name() string                    { return f.name }
func (f *fakeInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }
func (f *fakeInstrument) MaxIterations() int              { return 1 }
func (f *fakeInstrument) RequiredCapabilities() []string  { return []string{tools.CapabilityReasoning} }
func (f *fakeInstrument) OptionalCapabilities() []string  { return nil }

func (f *fakeInstrument) Execute(_ context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	f.queries = append(f.queries, query)
	f.taskCtx = taskCtx
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
