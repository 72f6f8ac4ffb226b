package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Registry maps capability strings to tool instances. Resolution is
// first-registered-wins, so callers must register tools in a fixed order
// to get deterministic behavior across restarts.
type Registry struct {
	mu           sync.RWMutex
	byName       map[string]Tool
	byCapability map[string][]Tool
	order        []Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:       make(map[string]Tool),
		byCapability: make(map[string][]Tool),
	}
}

// Register adds a tool. Registering the same name twice is an error.
func (r *Registry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.byName[name] = t
	r.order = append(r.order, t)
	for _, cap := range t.Capabilities() {
		r.byCapability[cap] = append(r.byCapability[cap], t)
	}
	return nil
}

// GetByName returns the tool registered under name, or nil.
func (r *Registry) GetByName(name string) Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// GetByCapability returns all tools providing the capability, in
// registration order.
func (r *Registry) GetByCapability(capability string) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := r.byCapability[capability]
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// All returns every registered tool in registration order.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Resolve maps each capability to the first registered tool providing it.
// Every required capability must resolve; otherwise a *CapabilityError
// naming the missing set is returned. Optional capabilities resolve
// best-effort.
func (r *Registry) Resolve(required, optional []string) (map[string]Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Tool)
	var missing []string

	for _, cap := range sortedCopy(required) {
		if tools := r.byCapability[cap]; len(tools) > 0 {
			result[cap] = tools[0]
		} else {
			missing = append(missing, cap)
		}
	}
	if len(missing) > 0 {
		return nil, &CapabilityError{Missing: missing}
	}

	for _, cap := range sortedCopy(optional) {
		if tools := r.byCapability[cap]; len(tools) > 0 {
			result[cap] = tools[0]
		} else {
			slog.Warn("Optional capability not available", "capability", cap)
		}
	}
	return result, nil
}

// HealthCheckAll probes every registered tool concurrently and returns
// the per-tool result, nil meaning healthy.
func (r *Registry) HealthCheckAll(ctx context.Context) map[string]error {
	tools := r.All()

	var mu sync.Mutex
	results := make(map[string]error, len(tools))

	var wg sync.WaitGroup
	for _, t := range tools {
		wg.Add(1)
		go func(t Tool) {
			defer wg.Done()
			err := t.HealthCheck(ctx)
			mu.Lock()
			results[t.Name()] = err
			mu.Unlock()
		}(t)
	}
	wg.Wait()
	return results
}

func sortedCopy(caps []string) []string {
	out := make([]string, len(caps))
	copy(out, caps)
	sort.Strings(out)
	return out
}
