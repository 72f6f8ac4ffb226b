package composition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestFromSpecNil(t *testing.T) {
	_, err := FromSpec(nil, newFakeProvider(), nil, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "arrangement spec is nil")
}

func TestFromSpecBuildsEachKind(t *testing.T) {
	provider := newFakeProvider(
		&fakeInstrument{name: "research"},
		&fakeInstrument{name: "note"},
		&fakeInstrument{name: "synthesis"},
	)
	runner := newScriptedRunner()

	t.Run("sequential", func(t *testing.T) {
		comp, err := FromSpec(&models.ArrangementSpec{
			Kind:  models.ArrangementSequential,
			Steps: steps("research", "synthesis"),
		}, provider, nil, 0)
		require.NoError(t, err)
		require.IsType(t, &SequentialComposition{}, comp)
		assert.Equal(t, "research -> synthesis", comp.Name())
	})

	t.Run("parallel", func(t *testing.T) {
		comp, err := FromSpec(&models.ArrangementSpec{
			Kind:  models.ArrangementParallel,
			Steps: steps("research", "note"),
		}, provider, nil, 30*time.Second)
		require.NoError(t, err)
		require.IsType(t, &ParallelComposition{}, comp)
		assert.Equal(t, "parallel(research | note) -> synthesis", comp.Name())
	})

	t.Run("cross-room", func(t *testing.T) {
		comp, err := FromSpec(&models.ArrangementSpec{
			Kind:  models.ArrangementCrossRoom,
			Steps: roomBranches(),
			Merge: "synthesis",
		}, provider, runner.run, 0)
		require.NoError(t, err)
		require.IsType(t, &CrossRoomComposition{}, comp)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := FromSpec(&models.ArrangementSpec{
			Kind:  models.ArrangementKind("fanout"),
			Steps: steps("research"),
		}, provider, nil, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown arrangement kind "fanout"`)
	})
}

func TestCombineDiscrepancy(t *testing.T) {
	tests := []struct {
		name        string
		failureNote string
		merge       string
		want        string
	}{
		{"no failures keeps merge discrepancy", "", "totals disagree", "totals disagree"},
		{"no failures no discrepancy", "", "", ""},
		{"failures alone become the discrepancy", "note: offline", "", "Branch failures: note: offline"},
		{"failures prefix the merge discrepancy", "note: offline", "totals disagree", "Branch failures: note: offline; totals disagree"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := combineDiscrepancy("Branch failures", tt.failureNote, tt.merge)
			assert.Equal(t, tt.want, got)
		})
	}
}
