package composition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/models"
)

func roomBranches() []models.ArrangementStep {
	return []models.ArrangementStep{
		{RoomID: "falcon", SubQuery: "check the roof sensors"},
		{RoomID: "study", SubQuery: "summarize the meeting notes"},
	}
}

func callByRoom(t *testing.T, calls []runnerCall, roomID string) runnerCall {
	t.Helper()
	for _, call := range calls {
		if call.roomID == roomID {
			return call
		}
	}
	t.Fatalf("no runner call for room %q", roomID)
	return runnerCall{}
}

func TestCrossRoomValidation(t *testing.T) {
	provider := newFakeProvider(&fakeInstrument{name: "synthesis"})
	runner := newScriptedRunner()

	t.Run("no branches", func(t *testing.T) {
		_, err := NewCrossRoom(provider, runner.run, nil, "", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one branch")
	})

	t.Run("nil runner", func(t *testing.T) {
		_, err := NewCrossRoom(provider, nil, roomBranches(), "", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "branch runner")
	})

	t.Run("missing sub-query", func(t *testing.T) {
		branches := []models.ArrangementStep{{RoomID: "falcon"}}
		_, err := NewCrossRoom(provider, runner.run, branches, "", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cross-room branch 1 has no sub-query")
	})

	t.Run("unknown merge", func(t *testing.T) {
		_, err := NewCrossRoom(provider, runner.run, roomBranches(), "missing", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, instrument.ErrUnknownInstrument)
		assert.Contains(t, err.Error(), `"missing" as cross-room merge instrument`)
	})
}

func TestCrossRoomName(t *testing.T) {
	branches := []models.ArrangementStep{
		{RoomID: "falcon", SubQuery: "check the roof sensors"},
		{SubQuery: "compare heat pump vendors around Lisbon"},
	}
	comp, err := NewCrossRoom(newFakeProvider(&fakeInstrument{name: "synthesis"}), newScriptedRunner().run, branches, "", 0)
	require.NoError(t, err)

	assert.Equal(t,
		"cross_room(falcon:check the roof sensors | auto:compare heat pump vendors arou) -> synthesis",
		comp.Name())
}

func TestCrossRoomDefaultTimeout(t *testing.T) {
	comp, err := NewCrossRoom(newFakeProvider(&fakeInstrument{name: "synthesis"}), newScriptedRunner().run, roomBranches(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, defaultCrossRoomTimeout, comp.timeout)
}

func TestCrossRoomMergesBranches(t *testing.T) {
	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "Sensors nominal", 0.8, 2, "falcon_local")
	runner.results["study"] = canned(models.OutcomeComplete, "Notes summarized", 0.75, 1, "claude")
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Combined report", 0.85, 1, "claude"),
	}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, roomBranches(), "synthesis", 0)
	require.NoError(t, err)

	base := &models.TaskContext{
		UserID:       "user-1",
		CheckpointFn: captureCheckpoints(&[]checkpointRecord{}),
	}
	result, err := comp.Execute(context.Background(), "house status", base)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, "Combined report", result.Summary)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, 4, result.Metadata.Iterations)
	assert.Equal(t, []string{"claude", "falcon_local"}, result.Metadata.SourcesConsulted)
	assert.Equal(t, models.ProcessConscious, result.Metadata.ProcessType)
	assert.Equal(t, comp.Name(), result.Metadata.InstrumentUsed)

	calls := runner.recorded()
	require.Len(t, calls, 2)
	falconCall := callByRoom(t, calls, "falcon")
	assert.Equal(t, "check the roof sensors", falconCall.subQuery)
	assert.Equal(t, "user-1", falconCall.taskCtx.UserID)
	assert.Nil(t, falconCall.taskCtx.InputResults)
	assert.Nil(t, falconCall.taskCtx.CheckpointFn)

	// Merge sees the branch results in declaration order.
	require.Len(t, synthesis.contexts, 1)
	mergeCtx := synthesis.contexts[0]
	require.Len(t, mergeCtx.InputResults, 2)
	assert.Equal(t, "Sensors nominal", mergeCtx.InputResults[0].Summary)
	assert.Equal(t, "Notes summarized", mergeCtx.InputResults[1].Summary)
	assert.Equal(t, []string{"house status"}, synthesis.queries)
}

func TestCrossRoomSingleSuccessSkipsMerge(t *testing.T) {
	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "Sensors nominal", 0.8, 2, "falcon_local")
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "never runs", 0.9, 1),
	}
	branches := []models.ArrangementStep{{RoomID: "falcon", SubQuery: "check the roof sensors"}}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, branches, "synthesis", 0)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "house status", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, synthesis.calls())
	assert.Equal(t, "Sensors nominal", result.Summary)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, comp.Name(), result.Metadata.InstrumentUsed)
	assert.Equal(t, models.ProcessConscious, result.Metadata.ProcessType)
	assert.Equal(t, 2, result.Metadata.Iterations)
	assert.Equal(t, []string{"falcon_local"}, result.Metadata.SourcesConsulted)
}

func TestCrossRoomPartialFailureStillMerges(t *testing.T) {
	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "Sensors nominal", 0.8, 2, "falcon_local")
	runner.errs["study"] = errors.New("room offline")
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Partial report", 0.7, 1),
	}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, roomBranches(), "synthesis", 0)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "house status", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, synthesis.calls())
	require.Len(t, synthesis.contexts, 1)
	assert.Len(t, synthesis.contexts[0].InputResults, 1)
	assert.Equal(t, "Partial report", result.Summary)
	assert.Equal(t, "Room failures: study: room offline", result.Discrepancy)
}

func TestCrossRoomAllFailInconclusive(t *testing.T) {
	runner := newScriptedRunner()
	runner.errs["falcon"] = errors.New("room offline")
	runner.errs[""] = errors.New("no rooms available")
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "never runs", 0.9, 1),
	}
	branches := []models.ArrangementStep{
		{RoomID: "falcon", SubQuery: "check the roof sensors"},
		{SubQuery: "summarize the meeting notes"},
	}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, branches, "synthesis", 0)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "house status", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeInconclusive, result.Outcome)
	assert.Equal(t, "All 2 cross-room branches failed", result.Summary)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Findings)
	assert.Equal(t, "falcon: room offline; branch-2: no rooms available", result.Discrepancy)
	assert.Equal(t, 0, synthesis.calls())
}

func TestCrossRoomBranchTimeout(t *testing.T) {
	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "never finishes", 0.8, 2)
	runner.delays["falcon"] = 2 * time.Second
	runner.results["study"] = canned(models.OutcomeComplete, "Notes summarized", 0.75, 1)
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Partial report", 0.7, 1),
	}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, roomBranches(), "synthesis", 50*time.Millisecond)
	require.NoError(t, err)

	result, err := comp.Execute(context.Background(), "house status", nil)
	require.NoError(t, err)

	assert.Contains(t, result.Discrepancy, "falcon: context deadline exceeded")
	assert.Equal(t, "Partial report", result.Summary)
}

func TestCrossRoomMergeErrorPropagates(t *testing.T) {
	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "Sensors nominal", 0.8, 2)
	runner.results["study"] = canned(models.OutcomeComplete, "Notes summarized", 0.75, 1)
	synthesis := &fakeInstrument{name: "synthesis", err: errors.New("merge exploded")}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, roomBranches(), "synthesis", 0)
	require.NoError(t, err)

	_, err = comp.Execute(context.Background(), "house status", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `merge cross-room branches via "synthesis"`)
	assert.Contains(t, err.Error(), "merge exploded")
}

func TestCrossRoomEmitsBranchCheckpoints(t *testing.T) {
	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "Sensors nominal", 0.8, 2)
	runner.errs["study"] = errors.New("room offline")
	synthesis := &fakeInstrument{
		name:   "synthesis",
		result: canned(models.OutcomeComplete, "Partial report", 0.7, 1),
	}
	comp, err := NewCrossRoom(newFakeProvider(synthesis), runner.run, roomBranches(), "synthesis", 0)
	require.NoError(t, err)

	var records []checkpointRecord
	taskCtx := &models.TaskContext{CheckpointFn: captureCheckpoints(&records)}
	_, err = comp.Execute(context.Background(), "house status", taskCtx)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].step)
	assert.Equal(t, "falcon", records[0].phase)
	assert.Equal(t, "check the roof sensors", records[0].input["sub_query"])
	assert.Equal(t, "complete", records[0].output["outcome"])
	assert.Equal(t, 2, records[1].step)
	assert.Equal(t, "study", records[1].phase)
	assert.Equal(t, "room offline", records[1].output["error"])
	assert.Equal(t, 3, records[2].step)
	assert.Equal(t, "synthesis", records[2].phase)
}

func TestCrossRoomObservesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := newScriptedRunner()
	runner.results["falcon"] = canned(models.OutcomeComplete, "Sensors nominal", 0.8, 2)
	runner.delays["falcon"] = time.Second
	comp, err := NewCrossRoom(newFakeProvider(&fakeInstrument{name: "synthesis"}), runner.run,
		[]models.ArrangementStep{{RoomID: "falcon", SubQuery: "check the roof sensors"}}, "synthesis", 0)
	require.NoError(t, err)

	_, err = comp.Execute(ctx, "house status", nil)

	assert.ErrorIs(t, err, context.Canceled)
}
