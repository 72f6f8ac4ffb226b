package conductor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestDeriveFollowups(t *testing.T) {
	tests := []struct {
		name       string
		result     *models.InstrumentResult
		wantPrefix string
	}{
		{
			name:       "bounded suggests scoping",
			result:     &models.InstrumentResult{Outcome: models.OutcomeBounded},
			wantPrefix: "[scoping]",
		},
		{
			name: "inconclusive with discrepancy pushes back on it",
			result: &models.InstrumentResult{
				Outcome:     models.OutcomeInconclusive,
				Discrepancy: "source A says 4%, source B says 7%",
			},
			wantPrefix: "[pushback]",
		},
		{
			name:       "inconclusive without discrepancy still pushes back",
			result:     &models.InstrumentResult{Outcome: models.OutcomeInconclusive},
			wantPrefix: "[pushback]",
		},
		{
			name:       "saturated suggests a new angle",
			result:     &models.InstrumentResult{Outcome: models.OutcomeSaturated},
			wantPrefix: "[proactive]",
		},
		{
			name: "complete on thin sourcing suggests research",
			result: &models.InstrumentResult{
				Outcome:  models.OutcomeComplete,
				Metadata: models.ExecutionMetadata{SourcesConsulted: []string{"memory"}},
			},
			wantPrefix: "[education]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived := deriveFollowups(tt.result)
			require.Len(t, derived, 1)
			assert.True(t, strings.HasPrefix(derived[0], tt.wantPrefix),
				"want prefix %s, got %q", tt.wantPrefix, derived[0])
		})
	}
}

func TestDeriveFollowupsQuietOnWellSourcedComplete(t *testing.T) {
	result := &models.InstrumentResult{
		Outcome:  models.OutcomeComplete,
		Metadata: models.ExecutionMetadata{SourcesConsulted: []string{"web", "memory"}},
	}
	assert.Empty(t, deriveFollowups(result))
}

func TestDeriveFollowupsNamesTheDiscrepancy(t *testing.T) {
	result := &models.InstrumentResult{
		Outcome:     models.OutcomeInconclusive,
		Discrepancy: "source A says 4%, source B says 7%",
	}
	derived := deriveFollowups(result)
	require.Len(t, derived, 1)
	assert.Contains(t, derived[0], "source A says 4%")
}

func TestAppendFollowupsKeepsInstrumentSuggestions(t *testing.T) {
	result := &models.InstrumentResult{
		Outcome:            models.OutcomeBounded,
		SuggestedFollowups: []string{"[custom] from the loop itself"},
	}
	followups := appendFollowups(result)
	require.Len(t, followups, 2)
	assert.Equal(t, "[custom] from the loop itself", followups[0])
	assert.True(t, strings.HasPrefix(followups[1], "[scoping]"))
}
