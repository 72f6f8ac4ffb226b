package instrument

import (
	"fmt"
	"slices"

	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/tools"
)

// builtinNames lists the always-available instruments in routing order.
var builtinNames = []string{noteName, researchName, visionName, synthesisName}

// FactoryConfig carries per-instrument tuning plus the loop specs
// declared in configuration.
type FactoryConfig struct {
	Research  Tuning
	Vision    Tuning
	Synthesis Tuning
	Loops     []LoopSpec
}

// TuningFromConfig converts a config tuning block.
func TuningFromConfig(t config.InstrumentTuning) Tuning {
	return Tuning{
		MaxIterations:       t.MaxIterations,
		ConfidenceThreshold: t.ConfidenceThreshold,
	}
}

// withTermination folds the server-wide termination thresholds into a
// tuning. A per-instrument confidence threshold wins over the global
// one.
func (t Tuning) withTermination(term config.TerminationConfig) Tuning {
	if t.ConfidenceThreshold <= 0 {
		t.ConfidenceThreshold = term.ConfidenceThreshold
	}
	t.DeltaThreshold = term.DeltaThreshold
	t.Window = term.Window
	return t
}

// LoopSpecsFromConfig converts declared loop specs, preserving order.
func LoopSpecsFromConfig(specs []config.LoopSpecConfig) []LoopSpec {
	out := make([]LoopSpec, len(specs))
	for i, spec := range specs {
		phases := make([]LoopPhase, len(spec.Phases))
		for j, phase := range spec.Phases {
			phases[j] = LoopPhase{
				Name:        phase.Name,
				Description: phase.Description,
				Action:      PhaseAction(phase.Action),
				Instrument:  phase.Instrument,
				Prompt:      phase.Prompt,
			}
		}
		out[i] = LoopSpec{
			Name:                 spec.Name,
			Description:          spec.Description,
			Phases:               phases,
			MaxTotalIterations:   spec.MaxIterations,
			RequiredCapabilities: spec.RequiredCapabilities,
		}
	}
	return out
}

// FactoryConfigFromConfig converts the instruments configuration block,
// threading the server-wide termination thresholds into each tuning.
func FactoryConfigFromConfig(cfg config.InstrumentsConfig, term config.TerminationConfig) FactoryConfig {
	return FactoryConfig{
		Research:  TuningFromConfig(cfg.Research).withTermination(term),
		Vision:    TuningFromConfig(cfg.Vision).withTermination(term),
		Synthesis: TuningFromConfig(cfg.Synthesis).withTermination(term),
		Loops:     LoopSpecsFromConfig(cfg.Loops),
	}
}

// Factory builds instruments on demand. Each call produces a fresh
// instance so per-task overrides never leak between executions.
type Factory struct {
	registry  *tools.Registry
	cfg       FactoryConfig
	loops     map[string]LoopSpec
	loopOrder []string
}

// NewFactory validates the declared loops against the builtin names and
// each other.
func NewFactory(registry *tools.Registry, cfg FactoryConfig) (*Factory, error) {
	loops := make(map[string]LoopSpec, len(cfg.Loops))
	loopOrder := make([]string, 0, len(cfg.Loops))
	for _, spec := range cfg.Loops {
		if spec.Name == "" {
			return nil, fmt.Errorf("loop spec with %d phases has no name", len(spec.Phases))
		}
		if slices.Contains(builtinNames, spec.Name) {
			return nil, fmt.Errorf("loop %q collides with a builtin instrument", spec.Name)
		}
		if _, dup := loops[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate loop %q", spec.Name)
		}
		loops[spec.Name] = spec
		loopOrder = append(loopOrder, spec.Name)
	}
	return &Factory{registry: registry, cfg: cfg, loops: loops, loopOrder: loopOrder}, nil
}

// Names returns every instrument the factory can build: builtins first,
// then declared loops in configuration order.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(builtinNames)+len(f.loopOrder))
	names = append(names, builtinNames...)
	names = append(names, f.loopOrder...)
	return names
}

// Has reports whether the factory can build the named instrument.
func (f *Factory) Has(name string) bool {
	if slices.Contains(builtinNames, name) {
		return true
	}
	_, ok := f.loops[name]
	return ok
}

// New builds a fresh instance of the named instrument, resolving its
// capabilities against the tool registry and applying any per-task
// overrides on top of the configured tuning.
func (f *Factory) New(name string, overrides *models.InstrumentOverrides) (Instrument, error) {
	switch name {
	case noteName:
		resolved, err := f.registry.Resolve(noteRequiredCapabilities, nil)
		if err != nil {
			return nil, err
		}
		reasoner, err := asReasoner(resolved[tools.CapabilityReasoning])
		if err != nil {
			return nil, err
		}
		return NewNoteInstrument(reasoner), nil

	case researchName:
		resolved, err := f.registry.Resolve(researchRequiredCapabilities, researchOptionalCapabilities)
		if err != nil {
			return nil, err
		}
		reasoner, err := asReasoner(resolved[tools.CapabilityReasoning])
		if err != nil {
			return nil, err
		}
		searcher, err := asSearcher(resolved[tools.CapabilityWebSearch])
		if err != nil {
			return nil, err
		}
		return NewResearchInstrument(reasoner, searcher, applyOverrides(f.cfg.Research, overrides)), nil

	case visionName:
		resolved, err := f.registry.Resolve(visionRequiredCapabilities, nil)
		if err != nil {
			return nil, err
		}
		reasoner, err := asVisionReasoner(resolved[tools.CapabilityVision])
		if err != nil {
			return nil, err
		}
		return NewVisionInstrument(reasoner, applyOverrides(f.cfg.Vision, overrides)), nil

	case synthesisName:
		resolved, err := f.registry.Resolve(synthesisRequiredCapabilities, nil)
		if err != nil {
			return nil, err
		}
		reasoner, err := asReasoner(resolved[tools.CapabilityReasoning])
		if err != nil {
			return nil, err
		}
		return NewSynthesisInstrument(reasoner, applyOverrides(f.cfg.Synthesis, overrides)), nil
	}

	spec, ok := f.loops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, name)
	}
	return f.newLoop(spec, overrides)
}

func (f *Factory) newLoop(spec LoopSpec, overrides *models.InstrumentOverrides) (Instrument, error) {
	if overrides != nil && overrides.MaxIterations != nil {
		spec.MaxTotalIterations = *overrides.MaxIterations
	}

	required := spec.RequiredCapabilities
	if len(required) == 0 {
		required = []string{tools.CapabilityReasoning}
	}
	// Prompt phases always need the reasoning tool, even when the spec
	// only requires other capabilities.
	var optional []string
	if !slices.Contains(required, tools.CapabilityReasoning) {
		optional = []string{tools.CapabilityReasoning}
	}
	resolved, err := f.registry.Resolve(required, optional)
	if err != nil {
		return nil, err
	}

	var reasoner Reasoner
	if tool, ok := resolved[tools.CapabilityReasoning]; ok {
		reasoner, err = asReasoner(tool)
		if err != nil {
			return nil, err
		}
	}

	resolve := func(instrumentName string) (Instrument, error) {
		return f.New(instrumentName, nil)
	}
	return NewLoopInstrument(spec, reasoner, resolve), nil
}

// applyOverrides layers per-task overrides on the configured tuning.
func applyOverrides(tuning Tuning, overrides *models.InstrumentOverrides) Tuning {
	if overrides == nil {
		return tuning
	}
	if overrides.MaxIterations != nil {
		tuning.MaxIterations = *overrides.MaxIterations
	}
	if overrides.ConfidenceThreshold != nil {
		tuning.ConfidenceThreshold = *overrides.ConfidenceThreshold
	}
	return tuning
}

func asReasoner(tool tools.Tool) (Reasoner, error) {
	reasoner, ok := tool.(Reasoner)
	if !ok {
		return nil, fmt.Errorf("tool %q does not support text completion", tool.Name())
	}
	return reasoner, nil
}

func asVisionReasoner(tool tools.Tool) (VisionReasoner, error) {
	reasoner, ok := tool.(VisionReasoner)
	if !ok {
		return nil, fmt.Errorf("tool %q does not support image analysis", tool.Name())
	}
	return reasoner, nil
}

func asSearcher(tool tools.Tool) (Searcher, error) {
	searcher, ok := tool.(Searcher)
	if !ok {
		return nil, fmt.Errorf("tool %q does not support web search", tool.Name())
	}
	return searcher, nil
}
