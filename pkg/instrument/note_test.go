package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
)

func TestNoteExecute(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"Paris is the capital of France."}}
	note := NewNoteInstrument(reasoner)

	result, err := note.Execute(context.Background(), "What is the capital of France?", nil)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, "Paris is the capital of France.", result.Summary)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "Paris is the capital of France.", result.Findings[0].Content)
	assert.Equal(t, "claude", result.Findings[0].Source)
	assert.False(t, result.Findings[0].Timestamp.IsZero())

	assert.Equal(t, "note", result.Metadata.InstrumentUsed)
	assert.Equal(t, 1, result.Metadata.Iterations)
	assert.Equal(t, models.ProcessAutonomic, result.Metadata.ProcessType)
	assert.Equal(t, []string{"claude"}, result.Metadata.SourcesConsulted)
}

func TestNotePromptIncludesContext(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"ok"}}
	note := NewNoteInstrument(reasoner)

	_, err := note.Execute(context.Background(), "any cafes nearby?", &models.TaskContext{
		ConversationSummary: "User is planning a trip",
		Location:            "Lisbon",
		Attachments:         []string{"https://example.com/map.png"},
	})
	require.NoError(t, err)

	require.Len(t, reasoner.prompts, 1)
	assert.Contains(t, reasoner.prompts[0], "any cafes nearby?")
	assert.Contains(t, reasoner.prompts[0], "[Context: User location: Lisbon; Attachments: 1 provided]")
	assert.Contains(t, reasoner.systems[0], "Conversation context: User is planning a trip")
}

func TestNotePromptWithoutContext(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{"ok"}}
	note := NewNoteInstrument(reasoner)

	_, err := note.Execute(context.Background(), "plain query", &models.TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, "plain query", reasoner.prompts[0])
	assert.NotContains(t, reasoner.systems[0], "Conversation context")
}

func TestNoteCompletionError(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{errors.New("api down")}}
	note := NewNoteInstrument(reasoner)

	_, err := note.Execute(context.Background(), "q", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "note completion")
}

func TestNoteOutcomeThreshold(t *testing.T) {
	assert.Equal(t, models.OutcomeComplete, noteOutcome(0.9))
	assert.Equal(t, models.OutcomeComplete, noteOutcome(0.7))
	assert.Equal(t, models.OutcomeBounded, noteOutcome(0.69))
}

func TestNoteDescribesItself(t *testing.T) {
	note := NewNoteInstrument(&scriptedReasoner{})
	assert.Equal(t, "note", note.Name())
	assert.Equal(t, models.ProcessAutonomic, note.ProcessType())
	assert.Equal(t, 1, note.MaxIterations())
	assert.Equal(t, []string{"reasoning"}, note.RequiredCapabilities())
	assert.Empty(t, note.OptionalCapabilities())
}
