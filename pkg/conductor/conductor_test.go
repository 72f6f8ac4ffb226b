package conductor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/rooms"
)

func testConfig() config.ConductorConfig {
	return config.ConductorConfig{MaxSpawnDepth: 3, BranchTimeout: 2 * time.Second}
}

func intPtr(v int) *int { return &v }

func TestRoute(t *testing.T) {
	c := New(Deps{Instruments: newFakeProvider()}, testConfig())

	longQuery := strings.Repeat("why does the northern hemisphere jet stream meander ", 5)
	require.Greater(t, len(longQuery), 200)

	tests := []struct {
		name string
		req  *models.TaskRequest
		want string
	}{
		{
			name: "plain query is a note",
			req:  &models.TaskRequest{Query: "capital of France?"},
			want: instrument.NameNote,
		},
		{
			name: "research intent routes to research",
			req: &models.TaskRequest{
				Query:  "compare heat pump brands",
				Intent: &models.Intent{Type: models.IntentResearch},
			},
			want: instrument.NameResearch,
		},
		{
			name: "context intent used when request intent absent",
			req: &models.TaskRequest{
				Query:   "compare heat pump brands",
				Context: &models.TaskContext{Intent: &models.Intent{Type: models.IntentResearch}},
			},
			want: instrument.NameResearch,
		},
		{
			name: "long query routes to research",
			req:  &models.TaskRequest{Query: longQuery},
			want: instrument.NameResearch,
		},
		{
			name: "png attachment routes to vision",
			req: &models.TaskRequest{
				Query:   "what is this",
				Context: &models.TaskContext{Attachments: []string{"scans/photo.png"}},
			},
			want: instrument.NameVision,
		},
		{
			name: "extension match is case-insensitive and ignores the query string",
			req: &models.TaskRequest{
				Query:   "what is this",
				Context: &models.TaskContext{Attachments: []string{"file:///scans/IMG.JPEG?token=abc"}},
			},
			want: instrument.NameVision,
		},
		{
			name: "image-like query string does not fool the router",
			req: &models.TaskRequest{
				Query:   "summarize this",
				Context: &models.TaskContext{Attachments: []string{"ftp://host/report.pdf?viewer=.png"}},
			},
			want: instrument.NameNote,
		},
		{
			name: "data uri routes to vision",
			req: &models.TaskRequest{
				Query:   "describe",
				Context: &models.TaskContext{Attachments: []string{"data:image/png;base64,iVBOR"}},
			},
			want: instrument.NameVision,
		},
		{
			name: "bare https link counts as an image",
			req: &models.TaskRequest{
				Query:   "describe",
				Context: &models.TaskContext{Attachments: []string{"https://photos.example.com/a8f3"}},
			},
			want: instrument.NameVision,
		},
		{
			name: "image wins over research intent",
			req: &models.TaskRequest{
				Query:   "compare these charts",
				Intent:  &models.Intent{Type: models.IntentResearch},
				Context: &models.TaskContext{Attachments: []string{"chart.webp"}},
			},
			want: instrument.NameVision,
		},
		{
			name: "non-image attachment stays a note",
			req: &models.TaskRequest{
				Query:   "summarize this",
				Context: &models.TaskContext{Attachments: []string{"ftp://host/report.pdf"}},
			},
			want: instrument.NameNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Route(tt.req))
		})
	}
}

func TestPlanForRoutedInstrument(t *testing.T) {
	research := &fakeInstrument{
		name:          instrument.NameResearch,
		maxIterations: 5,
		result:        canned(models.OutcomeComplete, "done", 0.9),
	}
	c := New(Deps{Instruments: newFakeProvider(research)}, testConfig())

	plan, err := c.Plan(context.Background(), &models.TaskRequest{
		ID:     "task-1",
		Query:  "compare heat pumps",
		Intent: &models.Intent{Type: models.IntentResearch},
	})
	require.NoError(t, err)

	assert.Equal(t, "task-1", plan.TaskID)
	assert.Equal(t, instrument.NameResearch, plan.Instrument)
	assert.Equal(t, models.ProcessSemiAutonomic, plan.ProcessType)
	assert.Equal(t, 5, plan.EstimatedIterations)
	assert.True(t, plan.RequiresApproval)
	assert.NotEmpty(t, plan.Description)
}

func TestPlanForInlineArrangement(t *testing.T) {
	provider := newFakeProvider(
		&fakeInstrument{name: instrument.NameNote, result: canned(models.OutcomeComplete, "note", 0.8)},
		&fakeInstrument{name: instrument.NameSynthesis, result: canned(models.OutcomeComplete, "merged", 0.85)},
	)
	c := New(Deps{Instruments: provider}, testConfig())

	plan, err := c.Plan(context.Background(), &models.TaskRequest{
		ID:    "task-2",
		Query: "pipeline it",
		Arrangement: &models.ArrangementSpec{
			Kind: models.ArrangementSequential,
			Steps: []models.ArrangementStep{
				{Instrument: instrument.NameNote},
				{Instrument: instrument.NameSynthesis},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "note -> synthesis", plan.Instrument)
	assert.Equal(t, models.ProcessConscious, plan.ProcessType)
	assert.Equal(t, 2, plan.EstimatedIterations)
	assert.True(t, plan.RequiresApproval)
}

func TestPlanRejectsUnknownArrangementInstrument(t *testing.T) {
	c := New(Deps{Instruments: newFakeProvider()}, testConfig())

	_, err := c.Plan(context.Background(), &models.TaskRequest{
		Query: "q",
		Arrangement: &models.ArrangementSpec{
			Kind:  models.ArrangementSequential,
			Steps: []models.ArrangementStep{{Instrument: "bogus"}},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, instrument.ErrUnknownInstrument)
}

func TestResolveArrangementRejectsInvalidInlineSpec(t *testing.T) {
	c := New(Deps{Instruments: newFakeProvider()}, testConfig())

	_, err := c.ResolveArrangement(context.Background(), &models.TaskRequest{
		Query:       "q",
		Arrangement: &models.ArrangementSpec{Kind: models.ArrangementSequential},
	})
	assert.Error(t, err)
}

func TestResolveArrangementByIDNeedsStore(t *testing.T) {
	c := New(Deps{Instruments: newFakeProvider()}, testConfig())

	_, err := c.ResolveArrangement(context.Background(), &models.TaskRequest{
		Query:         "q",
		ArrangementID: "saved-1",
	})
	assert.Error(t, err)
}

func TestExecuteRoutedNote(t *testing.T) {
	note := &fakeInstrument{
		name:   instrument.NameNote,
		result: canned(models.OutcomeComplete, "the answer", 0.9, "memory", "reasoning"),
	}
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-3", Query: "quick q"})
	require.NoError(t, err)

	assert.Equal(t, "task-3", resp.RequestID)
	assert.Equal(t, models.OutcomeComplete, resp.Outcome)
	assert.Equal(t, "the answer", resp.Summary)
	assert.Equal(t, 1, note.calls())
	assert.Empty(t, resp.SuggestedFollowups)
	assert.Nil(t, resp.Metadata.Privacy)
}

func TestExecuteInjectsCallbacksAtTopLevel(t *testing.T) {
	note := &fakeInstrument{name: instrument.NameNote, result: canned(models.OutcomeComplete, "ok", 0.9)}
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-4", Query: "quick q"})
	require.NoError(t, err)

	contexts := note.recordedContexts()
	require.Len(t, contexts, 1)
	assert.NotNil(t, contexts[0].CheckpointFn)
	assert.NotNil(t, contexts[0].SpawnFn)
	assert.Equal(t, 0, contexts[0].Depth)
	assert.Equal(t, 3, contexts[0].MaxDepth)
}

func TestExecuteCheckpointPublishesIterationEvent(t *testing.T) {
	bus := events.NewBus(events.BusConfig{})
	defer bus.Close()

	note := &fakeInstrument{
		name: instrument.NameNote,
		execFn: func(ctx context.Context, _ string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
			err := taskCtx.CheckpointFn(ctx, 1, "analysis",
				map[string]any{"question": "quick q"},
				map[string]any{"thought": "done"}, 12)
			if err != nil {
				return nil, err
			}
			return canned(models.OutcomeComplete, "ok", 0.9), nil
		},
	}
	c := New(Deps{Instruments: newFakeProvider(note), Bus: bus}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-ck", Query: "quick q"})
	require.NoError(t, err)

	history := bus.History("task-ck")
	require.Len(t, history, 1)
	assert.Equal(t, models.EventIteration, history[0].Type)
	assert.Equal(t, 1, history[0].Iteration)
	assert.Equal(t, "analysis", history[0].Phase)
	assert.Equal(t, int64(12), history[0].Payload["duration_ms"])
}

// spawningNote answers by spawning a sub-task until the depth ceiling
// stops it, recording every spawn error it observes.
func spawningNote(spawnErrs *[]error) *fakeInstrument {
	return &fakeInstrument{
		name: instrument.NameNote,
		execFn: func(ctx context.Context, _ string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
			sub, err := taskCtx.SpawnFn(ctx, "dig one level deeper", nil)
			if err != nil {
				*spawnErrs = append(*spawnErrs, err)
				out := canned(models.OutcomeBounded, "stopped digging", 0.5, "memory")
				out.Discrepancy = err.Error()
				return out, nil
			}
			return canned(models.OutcomeComplete, "embedded: "+sub.Summary, 0.9, "memory"), nil
		},
	}
}

func TestExecuteSpawnStopsAtConfiguredDepth(t *testing.T) {
	var spawnErrs []error
	note := spawningNote(&spawnErrs)
	c := New(Deps{Instruments: newFakeProvider(note)}, config.ConductorConfig{MaxSpawnDepth: 2, BranchTimeout: time.Second})

	resp, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-5", Query: "start digging"})
	require.NoError(t, err)

	// Executions at depth 0, 1, and 2; the spawn attempt at depth 2 fails.
	assert.Equal(t, 3, note.calls())
	require.Len(t, spawnErrs, 1)

	var depthErr *models.DepthExceededError
	require.ErrorAs(t, spawnErrs[0], &depthErr)
	assert.Equal(t, 3, depthErr.CurrentDepth)
	assert.Equal(t, 2, depthErr.MaxDepth)

	assert.Equal(t, models.OutcomeComplete, resp.Outcome)

	depths := make([]int, 0, 3)
	for _, taskCtx := range note.recordedContexts() {
		depths = append(depths, taskCtx.Depth)
	}
	assert.Equal(t, []int{0, 1, 2}, depths)

	// The checkpoint callback is bound to the top-level task only.
	contexts := note.recordedContexts()
	assert.NotNil(t, contexts[0].CheckpointFn)
	assert.Nil(t, contexts[1].CheckpointFn)
	assert.Nil(t, contexts[2].CheckpointFn)
}

func TestExecuteSpawnPreferenceOverridesDepth(t *testing.T) {
	var spawnErrs []error
	note := spawningNote(&spawnErrs)
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:          "task-6",
		Query:       "start digging",
		Preferences: &models.TaskPreferences{MaxSpawnDepth: intPtr(0)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, note.calls())
	require.Len(t, spawnErrs, 1)

	var depthErr *models.DepthExceededError
	require.ErrorAs(t, spawnErrs[0], &depthErr)
	assert.Equal(t, 1, depthErr.CurrentDepth)
	assert.Equal(t, 0, depthErr.MaxDepth)

	// Bounded at the top level earns a scoping followup.
	assert.Equal(t, models.OutcomeBounded, resp.Outcome)
	require.NotEmpty(t, resp.SuggestedFollowups)
	assert.True(t, strings.HasPrefix(resp.SuggestedFollowups[0], "[scoping]"))
}

func TestExecuteSpawnHonorsContextCeiling(t *testing.T) {
	var spawnErrs []error
	note := spawningNote(&spawnErrs)
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:      "task-7",
		Query:   "start digging",
		Context: &models.TaskContext{MaxDepth: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, note.calls())
	require.Len(t, spawnErrs, 1)

	var depthErr *models.DepthExceededError
	require.ErrorAs(t, spawnErrs[0], &depthErr)
	assert.Equal(t, 1, depthErr.MaxDepth)
}

func TestExecuteSpawnMergesSubContext(t *testing.T) {
	note := &fakeInstrument{name: instrument.NameNote}
	note.execFn = func(ctx context.Context, _ string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
		if taskCtx.Depth > 0 {
			return canned(models.OutcomeComplete, "sub answer", 0.8), nil
		}
		sub, err := taskCtx.SpawnFn(ctx, "narrow question", &models.TaskContext{
			ConversationSummary: "focus on the anomaly",
		})
		if err != nil {
			return nil, err
		}
		return canned(models.OutcomeComplete, sub.Summary, 0.9), nil
	}
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-8",
		Query: "broad question",
		Context: &models.TaskContext{
			AppID:               "app-7",
			ConversationSummary: "original thread",
		},
	})
	require.NoError(t, err)

	contexts := note.recordedContexts()
	require.Len(t, contexts, 2)

	assert.Equal(t, "original thread", contexts[0].ConversationSummary)
	assert.Equal(t, "focus on the anomaly", contexts[1].ConversationSummary)
	assert.Equal(t, "app-7", contexts[1].AppID)
	assert.Equal(t, 1, contexts[1].Depth)
	assert.Equal(t, "narrow question", note.queries[1])
}

func delegationRegistry(t *testing.T) *rooms.Registry {
	t.Helper()
	registry := rooms.NewRegistry(time.Minute)
	registry.RegisterSelf("server-main", []string{"reasoning", "web_search"})
	_, err := registry.Register(rooms.Registration{
		ID:           "mac-studio",
		Name:         "Mac Studio",
		Type:         models.RoomTypeLocal,
		URL:          "http://mac-studio.local:9090",
		Capabilities: []string{"reasoning", "web_search", "local_llm"},
	})
	require.NoError(t, err)
	return registry
}

func TestExecuteDelegatesToBestRoom(t *testing.T) {
	note := &fakeInstrument{
		name:         instrument.NameNote,
		requiredCaps: []string{"reasoning"},
		result:       canned(models.OutcomeComplete, "local answer", 0.9),
	}
	delegator := newFakeDelegator()
	delegator.results["mac-studio"] = canned(models.OutcomeComplete, "remote answer", 0.85, "mac-llm")

	c := New(Deps{
		Instruments: newFakeProvider(note),
		Registry:    delegationRegistry(t),
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-9", Query: "quick q"})
	require.NoError(t, err)

	calls := delegator.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "mac-studio", calls[0].room.ID)
	assert.Equal(t, "quick q", calls[0].req.Query)

	assert.Equal(t, 0, note.calls())
	assert.Equal(t, "remote answer", resp.Summary)
	assert.Equal(t, "mac-studio", resp.Metadata.RoomID)
	assert.Equal(t, "room:mac-studio/note", resp.Metadata.InstrumentUsed)
}

func TestExecuteDelegationFailureFallsBackLocally(t *testing.T) {
	note := &fakeInstrument{
		name:   instrument.NameNote,
		result: canned(models.OutcomeComplete, "local answer", 0.9),
	}
	delegator := newFakeDelegator()
	delegator.errs["mac-studio"] = &rooms.DelegationError{
		RoomID: "mac-studio",
		Reason: "request failed",
		Err:    errors.New("connection refused"),
	}

	c := New(Deps{
		Instruments: newFakeProvider(note),
		Registry:    delegationRegistry(t),
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-10", Query: "quick q"})
	require.NoError(t, err)

	assert.Equal(t, 1, note.calls())
	assert.Equal(t, "local answer", resp.Summary)
	assert.Equal(t, "server-main", resp.Metadata.RoomID)

	require.Len(t, resp.Metadata.FailoverEvents, 1)
	assert.Equal(t, "mac-studio", resp.Metadata.FailoverEvents[0].RoomID)
	assert.Equal(t, "request failed", resp.Metadata.FailoverEvents[0].Reason)
	assert.False(t, resp.Metadata.FailoverEvents[0].At.IsZero())
}

func TestExecuteNonDelegationErrorAborts(t *testing.T) {
	note := &fakeInstrument{
		name:   instrument.NameNote,
		result: canned(models.OutcomeComplete, "local answer", 0.9),
	}
	delegator := newFakeDelegator()
	boom := errors.New("delegator misconfigured")
	delegator.errs["mac-studio"] = boom

	c := New(Deps{
		Instruments: newFakeProvider(note),
		Registry:    delegationRegistry(t),
		Delegator:   delegator,
	}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-11", Query: "quick q"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, note.calls())
}

func TestExecutePrivacyPinsTaskLocal(t *testing.T) {
	note := &fakeInstrument{
		name:   instrument.NameNote,
		result: canned(models.OutcomeComplete, "kept at home", 0.9, "memory", "reasoning"),
	}
	delegator := newFakeDelegator()

	registry := rooms.NewRegistry(time.Minute)
	registry.RegisterSelf("server-main", []string{"reasoning"})
	_, err := registry.Register(rooms.Registration{
		ID:   "aaa-cloud",
		Name: "Cloud Worker",
		Type: models.RoomTypeIOS,
		URL:  "http://cloud.example.com",
	})
	require.NoError(t, err)

	c := New(Deps{
		Instruments: newFakeProvider(note),
		Registry:    registry,
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-12",
		Query: "what does my medication interact with",
	})
	require.NoError(t, err)

	assert.Empty(t, delegator.recorded())
	assert.Equal(t, 1, note.calls())

	require.NotNil(t, resp.Metadata.Privacy)
	assert.True(t, resp.Metadata.Privacy.StayedLocal)
	assert.Equal(t, "private", resp.Metadata.Privacy.Level)
	assert.Contains(t, resp.Metadata.Privacy.Categories, "health")
}

func TestExecutePrivacyRejectsNonLocalBestRoom(t *testing.T) {
	note := &fakeInstrument{
		name:   instrument.NameNote,
		result: canned(models.OutcomeComplete, "kept at home", 0.9),
	}
	delegator := newFakeDelegator()

	// No self entry: the best candidate is a room that cannot satisfy
	// the locality constraint, so the conductor must refuse it.
	registry := rooms.NewRegistry(time.Minute)
	_, err := registry.Register(rooms.Registration{
		ID:   "aaa-cloud",
		Name: "Cloud Worker",
		Type: models.RoomTypeIOS,
		URL:  "http://cloud.example.com",
	})
	require.NoError(t, err)

	c := New(Deps{
		Instruments: newFakeProvider(note),
		Registry:    registry,
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-13",
		Query: "summarize my bank account activity",
	})
	require.NoError(t, err)

	assert.Empty(t, delegator.recorded())
	assert.Equal(t, 1, note.calls())
	require.NotNil(t, resp.Metadata.Privacy)
	assert.True(t, resp.Metadata.Privacy.StayedLocal)
}

func TestExecuteInlineSequentialArrangement(t *testing.T) {
	note := &fakeInstrument{name: instrument.NameNote, result: canned(models.OutcomeComplete, "draft", 0.7, "memory")}
	synthesis := &fakeInstrument{name: instrument.NameSynthesis, result: canned(models.OutcomeComplete, "polished", 0.9, "reasoning")}
	c := New(Deps{Instruments: newFakeProvider(note, synthesis)}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-14",
		Query: "pipeline it",
		Arrangement: &models.ArrangementSpec{
			Kind: models.ArrangementSequential,
			Steps: []models.ArrangementStep{
				{Instrument: instrument.NameNote},
				{Instrument: instrument.NameSynthesis},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, note.calls())
	assert.Equal(t, 1, synthesis.calls())
	assert.Equal(t, "polished", resp.Summary)
	assert.Equal(t, models.ProcessConscious, resp.Metadata.ProcessType)
	assert.Equal(t, "note -> synthesis", resp.Metadata.InstrumentUsed)

	// The second step sees the first step's result as input.
	synthContexts := synthesis.recordedContexts()
	require.Len(t, synthContexts, 1)
	require.Len(t, synthContexts[0].InputResults, 1)
	assert.Equal(t, "draft", synthContexts[0].InputResults[0].Summary)
}

func TestExecuteCrossRoomBranchesThroughDelegator(t *testing.T) {
	synthesis := &fakeInstrument{name: instrument.NameSynthesis, result: canned(models.OutcomeComplete, "merged", 0.9)}
	delegator := newFakeDelegator()
	delegator.results["room-a"] = canned(models.OutcomeComplete, "from a", 0.8, "a-src")
	delegator.results["room-b"] = canned(models.OutcomeComplete, "from b", 0.8, "b-src")

	registry := rooms.NewRegistry(time.Minute)
	registry.RegisterSelf("server-main", []string{"reasoning"})
	for _, id := range []string{"room-a", "room-b"} {
		_, err := registry.Register(rooms.Registration{
			ID:   id,
			Name: id,
			Type: models.RoomTypeLocal,
			URL:  "http://" + id + ".local:9090",
		})
		require.NoError(t, err)
	}

	c := New(Deps{
		Instruments: newFakeProvider(synthesis),
		Registry:    registry,
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-15",
		Query: "both sides",
		Arrangement: &models.ArrangementSpec{
			Kind: models.ArrangementCrossRoom,
			Steps: []models.ArrangementStep{
				{RoomID: "room-a", SubQuery: "side a"},
				{RoomID: "room-b", SubQuery: "side b"},
			},
		},
	})
	require.NoError(t, err)

	assert.Len(t, delegator.recorded(), 2)
	assert.Equal(t, 1, synthesis.calls())
	assert.Equal(t, "merged", resp.Summary)

	synthContexts := synthesis.recordedContexts()
	require.Len(t, synthContexts[0].InputResults, 2)
}

func TestExecuteCrossRoomUnregisteredRoomRunsLocally(t *testing.T) {
	note := &fakeInstrument{name: instrument.NameNote, result: canned(models.OutcomeComplete, "local branch", 0.8)}
	synthesis := &fakeInstrument{name: instrument.NameSynthesis, result: canned(models.OutcomeComplete, "merged", 0.9)}
	delegator := newFakeDelegator()

	registry := rooms.NewRegistry(time.Minute)
	registry.RegisterSelf("server-main", []string{"reasoning"})

	c := New(Deps{
		Instruments: newFakeProvider(note, synthesis),
		Registry:    registry,
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-16",
		Query: "ask the ghost",
		Arrangement: &models.ArrangementSpec{
			Kind: models.ArrangementCrossRoom,
			Steps: []models.ArrangementStep{
				{RoomID: "ghost-room", SubQuery: "short branch question"},
			},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, delegator.recorded())
	assert.Equal(t, 1, note.calls())
	assert.Equal(t, "short branch question", note.queries[0])
	// A lone successful branch is returned without a merge pass.
	assert.Equal(t, 0, synthesis.calls())
	assert.Equal(t, "local branch", resp.Summary)
}

func TestExecuteCrossRoomDelegationFailureFallsBackLocally(t *testing.T) {
	note := &fakeInstrument{name: instrument.NameNote, result: canned(models.OutcomeComplete, "local branch", 0.8)}
	synthesis := &fakeInstrument{name: instrument.NameSynthesis, result: canned(models.OutcomeComplete, "merged", 0.9)}
	delegator := newFakeDelegator()
	delegator.errs["mac-studio"] = &rooms.DelegationError{RoomID: "mac-studio", Reason: "timeout"}

	c := New(Deps{
		Instruments: newFakeProvider(note, synthesis),
		Registry:    delegationRegistry(t),
		Delegator:   delegator,
	}, testConfig())

	resp, err := c.Execute(context.Background(), &models.TaskRequest{
		ID:    "task-17",
		Query: "resilient branch",
		Arrangement: &models.ArrangementSpec{
			Kind: models.ArrangementCrossRoom,
			Steps: []models.ArrangementStep{
				{RoomID: "mac-studio", SubQuery: "short branch question"},
			},
		},
	})
	require.NoError(t, err)

	assert.Len(t, delegator.recorded(), 1)
	assert.Equal(t, 1, note.calls())
	assert.Equal(t, "local branch", resp.Summary)
}

func TestExecuteInstrumentErrorPropagates(t *testing.T) {
	failure := errors.New("model unavailable")
	note := &fakeInstrument{name: instrument.NameNote, err: failure}
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-18", Query: "quick q"})
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
}

func TestExecuteRejectsNilInstrumentResult(t *testing.T) {
	note := &fakeInstrument{name: instrument.NameNote}
	c := New(Deps{Instruments: newFakeProvider(note)}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-19", Query: "quick q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned no result")
}

func TestExecuteUnknownInstrumentBuildFails(t *testing.T) {
	provider := newFakeProvider()
	provider.buildErr[instrument.NameNote] = errors.New("tool missing: memory")
	c := New(Deps{Instruments: provider}, testConfig())

	_, err := c.Execute(context.Background(), &models.TaskRequest{ID: "task-20", Query: "quick q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build instrument")
}
