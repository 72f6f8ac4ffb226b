package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/tools"
)

func TestParseImageAttachments(t *testing.T) {
	t.Run("data URIs", func(t *testing.T) {
		images := ParseImageAttachments([]string{
			"data:image/png;base64,iVBORw0KGgo=",
			"data:image/jpeg;base64,/9j/4AAQSkZJRg==",
		})
		require.Len(t, images, 2)
		assert.Equal(t, "base64", images[0].SourceType)
		assert.Equal(t, "image/png", images[0].MediaType)
		assert.Equal(t, "iVBORw0KGgo=", images[0].Data)
		assert.Equal(t, "image/jpeg", images[1].MediaType)
	})

	t.Run("https URLs map extension to media type", func(t *testing.T) {
		images := ParseImageAttachments([]string{
			"https://example.com/photo.PNG",
			"https://example.com/pic.jpg?size=large",
			"https://example.com/animation.webp",
			"https://example.com/unknown",
		})
		require.Len(t, images, 4)
		assert.Equal(t, "url", images[0].SourceType)
		assert.Equal(t, "image/png", images[0].MediaType)
		assert.Equal(t, "https://example.com/photo.PNG", images[0].Data)
		assert.Equal(t, "image/jpeg", images[1].MediaType)
		assert.Equal(t, "image/webp", images[2].MediaType)
		assert.Equal(t, "image/jpeg", images[3].MediaType)
	})

	t.Run("non-image attachments are skipped", func(t *testing.T) {
		images := ParseImageAttachments([]string{
			"http://insecure.example.com/photo.png",
			"ftp://example.com/pic.jpg",
			"just some text",
			"data:text/plain;base64,aGVsbG8=",
		})
		assert.Empty(t, images)
	})
}

func TestVisionExecuteWithoutImages(t *testing.T) {
	vision := NewVisionInstrument(&scriptedReasoner{}, Tuning{})

	result, err := vision.Execute(context.Background(), "what is in the picture?", &models.TaskContext{})
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeBounded, result.Outcome)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Findings)
	assert.Equal(t, 0, result.Metadata.Iterations)
	assert.Equal(t, "No images provided for vision analysis.", result.Summary)
	assert.Equal(t, []string{"Please attach an image for visual analysis."}, result.SuggestedFollowups)
}

func TestVisionExecuteCompletes(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"observations": ["A red hatchback", "A parking meter", "Wet pavement", "A shop awning"], "analysis": "Street scene", "confidence": 0.9}`,
		"The image shows a red hatchback parked on a wet street.",
		"What model is the car?\nWhere was this taken?",
	}}
	vision := NewVisionInstrument(reasoner, Tuning{ConfidenceThreshold: 0.8})

	var checkpoints []checkpointRecord
	taskCtx := &models.TaskContext{
		Attachments:  []string{"data:image/jpeg;base64,/9j/4AAQ"},
		CheckpointFn: captureCheckpoints(&checkpoints),
	}

	result, err := vision.Execute(context.Background(), "describe the scene", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeComplete, result.Outcome)
	require.Len(t, result.Findings, 4)
	for _, f := range result.Findings {
		assert.Equal(t, "claude_vision", f.Source)
		assert.Equal(t, 0.9, f.Confidence)
	}
	// base 0.3 + findings 0.2 + one source 0.04 + answer 0.2 + avg 0.09
	assert.InDelta(t, 0.83, result.Confidence, 0.001)
	assert.Equal(t, "The image shows a red hatchback parked on a wet street.", result.Summary)
	assert.Equal(t, []string{"What model is the car?", "Where was this taken?"}, result.SuggestedFollowups)

	assert.Equal(t, "vision", result.Metadata.InstrumentUsed)
	assert.Equal(t, 1, result.Metadata.Iterations)
	assert.Equal(t, []string{"claude_vision"}, result.Metadata.SourcesConsulted)

	require.Len(t, reasoner.images, 1)
	require.Len(t, reasoner.images[0], 1)
	assert.Equal(t, "base64", reasoner.images[0][0].SourceType)

	require.Len(t, checkpoints, 1)
	assert.Equal(t, "vision_analysis", checkpoints[0].phase)
	assert.Equal(t, 1, checkpoints[0].input["image_count"])
	assert.Equal(t, true, checkpoints[0].output["should_terminate"])
}

func TestVisionSecondIterationRefines(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"observations": ["Blurry shape"], "analysis": "Unclear", "confidence": 0.4}`,
		`{"observations": ["A bird in flight"], "analysis": "Clearer now", "confidence": 0.6}`,
		"A bird photographed mid-flight.",
		"What species is it?",
	}}
	vision := NewVisionInstrument(reasoner, Tuning{MaxIterations: 2})

	taskCtx := &models.TaskContext{Attachments: []string{"https://example.com/bird.jpg"}}
	result, err := vision.Execute(context.Background(), "what is this?", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Metadata.Iterations)
	assert.Len(t, result.Findings, 2)

	require.GreaterOrEqual(t, len(reasoner.prompts), 2)
	assert.NotContains(t, reasoner.prompts[0], "Previous analysis")
	assert.Contains(t, reasoner.prompts[1], "Previous analysis (iteration 1):")
	assert.Contains(t, reasoner.systems[1], "You previously analyzed this image.")
}

func TestVisionUnparsableResponseBecomesFinding(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		"I see a dog playing in a park.",
		"A dog playing in a park.",
		"What breed is the dog?",
	}}
	vision := NewVisionInstrument(reasoner, Tuning{MaxIterations: 1})

	taskCtx := &models.TaskContext{Attachments: []string{"data:image/png;base64,abc"}}
	result, err := vision.Execute(context.Background(), "what is this?", taskCtx)
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "I see a dog playing in a park.", result.Findings[0].Content)
	assert.Equal(t, "claude_vision", result.Findings[0].Source)
	assert.Equal(t, 0.7, result.Findings[0].Confidence)
}

func TestVisionAnalysisFailureDegrades(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		errors.New("model overloaded"),
		"Could not analyze the image this time.",
		"Try re-uploading the image?",
	}}
	vision := NewVisionInstrument(reasoner, Tuning{MaxIterations: 1})

	taskCtx := &models.TaskContext{Attachments: []string{"data:image/png;base64,abc"}}
	result, err := vision.Execute(context.Background(), "what is this?", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeBounded, result.Outcome)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "tool_error", result.Findings[0].Source)
	assert.Contains(t, result.Findings[0].Content, "Image analysis failed")
	assert.Equal(t, 0.1, result.Findings[0].Confidence)
	assert.Equal(t, "Could not analyze the image this time.", result.Summary)
}

func TestVisionSynthesisFailureFallsBackToFirstFinding(t *testing.T) {
	reasoner := &scriptedReasoner{script: []any{
		`{"observations": ["A lighthouse on a cliff"], "analysis": "Coastal scene", "confidence": 0.8}`,
		errors.New("synthesis down"),
	}}
	vision := NewVisionInstrument(reasoner, Tuning{MaxIterations: 1})

	taskCtx := &models.TaskContext{Attachments: []string{"data:image/png;base64,abc"}}
	result, err := vision.Execute(context.Background(), "describe", taskCtx)
	require.NoError(t, err)

	assert.Equal(t, "A lighthouse on a cliff", result.Summary)
	assert.Empty(t, result.SuggestedFollowups)
}

func TestVisionDescribesItself(t *testing.T) {
	vision := NewVisionInstrument(&scriptedReasoner{}, Tuning{})
	assert.Equal(t, "vision", vision.Name())
	assert.Equal(t, models.ProcessSemiAutonomic, vision.ProcessType())
	assert.Equal(t, 3, vision.MaxIterations())
	assert.Equal(t, []string{tools.CapabilityReasoning, tools.CapabilityVision}, vision.RequiredCapabilities())
}
