package instrument

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/tools"
)

const (
	noteName = NameNote

	// noteConfidence is the confidence assigned to direct answers.
	noteConfidence = 0.9
	// noteCompleteThreshold divides complete from bounded outcomes.
	noteCompleteThreshold = 0.7
)

var noteRequiredCapabilities = []string{tools.CapabilityReasoning}

// NoteInstrument answers simple, atomic queries with a single reasoner
// call. No iteration, no web search.
type NoteInstrument struct {
	reasoner Reasoner
}

// NewNoteInstrument creates a note instrument around the reasoner.
func NewNoteInstrument(reasoner Reasoner) *NoteInstrument {
	return &NoteInstrument{reasoner: reasoner}
}

func (n *NoteInstrument) Name() string                    { return noteName }
func (n *NoteInstrument) ProcessType() models.ProcessType { return models.ProcessAutonomic }
func (n *NoteInstrument) MaxIterations() int              { return 1 }
func (n *NoteInstrument) RequiredCapabilities() []string  { return noteRequiredCapabilities }
func (n *NoteInstrument) OptionalCapabilities() []string  { return nil }

// Execute runs the single-shot query.
func (n *NoteInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Note instrument executing", "query", truncate(query, 50))

	system := n.buildSystemPrompt(taskCtx)
	prompt := n.buildPrompt(query, taskCtx)

	response, err := n.reasoner.Complete(ctx, prompt, system)
	if err != nil {
		return nil, fmt.Errorf("note completion: %w", err)
	}

	confidence := noteConfidence

	return &models.InstrumentResult{
		Findings:   []models.Finding{models.NewFinding(response, n.reasoner.Name(), confidence)},
		Summary:    response,
		Confidence: confidence,
		Outcome:    noteOutcome(confidence),
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   noteName,
			Iterations:       1,
			DurationMS:       time.Since(start).Milliseconds(),
			SourcesConsulted: []string{n.reasoner.Name()},
			ProcessType:      models.ProcessAutonomic,
		},
	}, nil
}

// noteOutcome applies the direct-answer rule: complete at or above the
// threshold, bounded below it.
func noteOutcome(confidence float64) models.Outcome {
	if confidence >= noteCompleteThreshold {
		return models.OutcomeComplete
	}
	return models.OutcomeBounded
}

func (n *NoteInstrument) buildSystemPrompt(taskCtx *models.TaskContext) string {
	base := "You are a helpful assistant that provides clear, accurate, and concise answers. " +
		"Be direct and informative. If you're unsure about something, say so."
	if taskCtx != nil && taskCtx.ConversationSummary != "" {
		base += fmt.Sprintf("\n\nConversation context: %s", taskCtx.ConversationSummary)
	}
	return base
}

func (n *NoteInstrument) buildPrompt(query string, taskCtx *models.TaskContext) string {
	if taskCtx == nil {
		return query
	}
	var additions []string
	if taskCtx.Location != "" {
		additions = append(additions, fmt.Sprintf("User location: %s", taskCtx.Location))
	}
	if len(taskCtx.Attachments) > 0 {
		additions = append(additions, fmt.Sprintf("Attachments: %d provided", len(taskCtx.Attachments)))
	}
	if len(additions) == 0 {
		return query
	}
	return fmt.Sprintf("%s\n\n[Context: %s]", query, strings.Join(additions, "; "))
}
