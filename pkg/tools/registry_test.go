package tools

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool is a minimal Tool for registry tests.
type fakeTool struct {
	name      string
	caps      []string
	healthErr error
}

func (f *fakeTool) Name() string            { return f.name }
func (f *fakeTool) Capabilities() []string  { return f.caps }
func (f *fakeTool) Manifest() Manifest {
	return Manifest{Name: f.name, Version: "0.0.0", Capabilities: f.caps}
}
func (f *fakeTool) HealthCheck(_ context.Context) error { return f.healthErr }

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()

	t.Run("registers and retrieves by name", func(t *testing.T) {
		require.NoError(t, registry.Register(&fakeTool{name: "alpha", caps: []string{CapabilityReasoning}}))
		assert.Equal(t, "alpha", registry.GetByName("alpha").Name())
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		err := registry.Register(&fakeTool{name: "alpha"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("unknown name returns nil", func(t *testing.T) {
		assert.Nil(t, registry.GetByName("nonexistent"))
	})
}

func TestRegistryGetByCapability(t *testing.T) {
	registry := NewRegistry()
	first := &fakeTool{name: "first", caps: []string{CapabilityReasoning, CapabilitySynthesis}}
	second := &fakeTool{name: "second", caps: []string{CapabilityReasoning}}
	require.NoError(t, registry.Register(first))
	require.NoError(t, registry.Register(second))

	t.Run("returns tools in registration order", func(t *testing.T) {
		tools := registry.GetByCapability(CapabilityReasoning)
		require.Len(t, tools, 2)
		assert.Equal(t, "first", tools[0].Name())
		assert.Equal(t, "second", tools[1].Name())
	})

	t.Run("unknown capability returns empty", func(t *testing.T) {
		assert.Empty(t, registry.GetByCapability("unknown"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		tools := registry.GetByCapability(CapabilitySynthesis)
		require.Len(t, tools, 1)
		tools[0] = second
		assert.Equal(t, "first", registry.GetByCapability(CapabilitySynthesis)[0].Name())
	})
}

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry()
	claude := &fakeTool{name: "claude", caps: []string{CapabilityReasoning, CapabilitySynthesis, CapabilityVision}}
	tavily := &fakeTool{name: "tavily", caps: []string{CapabilityWebSearch}}
	require.NoError(t, registry.Register(claude))
	require.NoError(t, registry.Register(tavily))

	t.Run("resolves required capabilities", func(t *testing.T) {
		resolved, err := registry.Resolve([]string{CapabilityReasoning, CapabilityWebSearch}, nil)
		require.NoError(t, err)
		assert.Equal(t, "claude", resolved[CapabilityReasoning].Name())
		assert.Equal(t, "tavily", resolved[CapabilityWebSearch].Name())
	})

	t.Run("first registered wins", func(t *testing.T) {
		later := &fakeTool{name: "later", caps: []string{CapabilityReasoning}}
		require.NoError(t, registry.Register(later))

		resolved, err := registry.Resolve([]string{CapabilityReasoning}, nil)
		require.NoError(t, err)
		assert.Equal(t, "claude", resolved[CapabilityReasoning].Name())
	})

	t.Run("missing required capability fails", func(t *testing.T) {
		_, err := registry.Resolve([]string{CapabilityReasoning, "teleportation"}, nil)
		require.Error(t, err)

		var capErr *CapabilityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, []string{"teleportation"}, capErr.Missing)
	})

	t.Run("optional capabilities are best-effort", func(t *testing.T) {
		resolved, err := registry.Resolve([]string{CapabilityReasoning}, []string{CapabilitySynthesis, "teleportation"})
		require.NoError(t, err)
		assert.Equal(t, "claude", resolved[CapabilitySynthesis].Name())
		assert.NotContains(t, resolved, "teleportation")
	})
}

func TestRegistryHealthCheckAll(t *testing.T) {
	registry := NewRegistry()
	healthErr := errors.New("connection refused")
	require.NoError(t, registry.Register(&fakeTool{name: "healthy", caps: []string{CapabilityReasoning}}))
	require.NoError(t, registry.Register(&fakeTool{name: "broken", caps: []string{CapabilityWebSearch}, healthErr: healthErr}))

	results := registry.HealthCheckAll(context.Background())
	require.Len(t, results, 2)
	assert.NoError(t, results["healthy"])
	assert.ErrorIs(t, results["broken"], healthErr)
}

func TestRegistryThreadSafety(_ *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(&fakeTool{name: "tool1", caps: []string{CapabilityReasoning}})

	const goroutines = 100
	var wg sync.WaitGroup

	// Launch multiple goroutines reading concurrently
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.GetByName("tool1")
			_ = registry.GetByCapability(CapabilityReasoning)
			_, _ = registry.Resolve([]string{CapabilityReasoning}, nil)
			_ = registry.All()
		}()
	}

	wg.Wait()
	// If no panic, thread safety is good
}
