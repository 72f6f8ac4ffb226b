package instrument

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/loop-symphony/symphony/pkg/models"
	"github.com/loop-symphony/symphony/pkg/termination"
	"github.com/loop-symphony/symphony/pkg/tools"
)

const (
	visionName              = NameVision
	defaultVisionIterations = 3

	// visionSource labels findings extracted from image analysis.
	visionSource = "claude_vision"
)

var visionRequiredCapabilities = []string{tools.CapabilityReasoning, tools.CapabilityVision}

// dataURIRe matches inline image attachments: data:image/jpeg;base64,<data>
var dataURIRe = regexp.MustCompile(`(?s)^data:(image/(?:jpeg|png|gif|webp));base64,(.+)$`)

// extMediaTypes maps recognized image extensions to MIME types. Ordered
// so attachment parsing is deterministic.
var extMediaTypes = []struct {
	ext       string
	mediaType string
}{
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".png", "image/png"},
	{".gif", "image/gif"},
	{".webp", "image/webp"},
}

// ParseImageAttachments extracts image inputs from attachment strings.
// Data URIs and https URLs are recognized; URLs without a recognized
// image extension default to image/jpeg; anything else is skipped.
func ParseImageAttachments(attachments []string) []tools.ImageInput {
	var images []tools.ImageInput
	for _, attachment := range attachments {
		if m := dataURIRe.FindStringSubmatch(attachment); m != nil {
			images = append(images, tools.ImageInput{
				SourceType: "base64",
				MediaType:  m[1],
				Data:       m[2],
			})
			continue
		}

		if strings.HasPrefix(attachment, "https://") {
			lower := strings.ToLower(attachment)
			if i := strings.Index(lower, "?"); i >= 0 {
				lower = lower[:i]
			}
			mediaType := "image/jpeg"
			for _, em := range extMediaTypes {
				if strings.HasSuffix(lower, em.ext) {
					mediaType = em.mediaType
					break
				}
			}
			images = append(images, tools.ImageInput{
				SourceType: "url",
				MediaType:  mediaType,
				Data:       attachment,
			})
			continue
		}

		slog.Debug("Skipping non-image attachment", "attachment", truncate(attachment, 50))
	}
	return images
}

// VisionInstrument analyzes image attachments iteratively: each pass
// re-examines the images with the previous analysis as refinement
// context until the termination evaluator is satisfied.
type VisionInstrument struct {
	reasoner      VisionReasoner
	evaluator     *termination.Evaluator
	maxIterations int
}

// NewVisionInstrument creates a vision instrument from the resolved
// reasoner and tuning.
func NewVisionInstrument(reasoner VisionReasoner, tuning Tuning) *VisionInstrument {
	maxIterations := tuning.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultVisionIterations
	}
	return &VisionInstrument{
		reasoner:      reasoner,
		evaluator: termination.NewEvaluator(termination.Config{
			ConfidenceThreshold: tuning.ConfidenceThreshold,
			DeltaThreshold:      tuning.DeltaThreshold,
			Window:              tuning.Window,
		}),
		maxIterations: maxIterations,
	}
}

func (v *VisionInstrument) Name() string                    { return visionName }
func (v *VisionInstrument) ProcessType() models.ProcessType { return models.ProcessSemiAutonomic }
func (v *VisionInstrument) MaxIterations() int              { return v.maxIterations }
func (v *VisionInstrument) RequiredCapabilities() []string  { return visionRequiredCapabilities }
func (v *VisionInstrument) OptionalCapabilities() []string  { return nil }

// Execute runs the iterative image analysis. Without a parsable image
// attachment it exits immediately with a bounded diagnostic result.
func (v *VisionInstrument) Execute(ctx context.Context, query string, taskCtx *models.TaskContext) (*models.InstrumentResult, error) {
	start := time.Now()
	slog.Info("Vision instrument executing", "query", truncate(query, 50))

	var images []tools.ImageInput
	if taskCtx != nil {
		images = ParseImageAttachments(taskCtx.Attachments)
	}
	if len(images) == 0 {
		return &models.InstrumentResult{
			Findings:   []models.Finding{},
			Summary:    "No images provided for vision analysis.",
			Confidence: 0.0,
			Outcome:    models.OutcomeBounded,
			Metadata: models.ExecutionMetadata{
				InstrumentUsed: visionName,
				Iterations:     0,
				DurationMS:     time.Since(start).Milliseconds(),
				ProcessType:    models.ProcessSemiAutonomic,
			},
			SuggestedFollowups: []string{"Please attach an image for visual analysis."},
		}, nil
	}

	var (
		findings         []models.Finding
		history          []float64
		sourceCounts     []int
		iteration        int
		previousAnalysis string
	)
	outcome := models.OutcomeBounded

	for iteration < v.maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iteration++
		iterStart := time.Now()
		slog.Info("Vision iteration", "iteration", iteration, "max", v.maxIterations)

		system := v.buildSystemPrompt(iteration, previousAnalysis)
		prompt := v.buildAnalysisPrompt(query, taskCtx, iteration, previousAnalysis)

		var newFindings []models.Finding
		response, err := v.reasoner.CompleteWithImages(ctx, prompt, images, system)
		if err != nil {
			slog.Warn("Vision analysis call failed", "iteration", iteration, "error", err)
			newFindings = []models.Finding{models.NewFinding(
				fmt.Sprintf("Image analysis failed: %v", err), syntheticSource, syntheticFindingConfidence)}
		} else {
			newFindings = v.extractFindings(response)
			previousAnalysis = response
		}
		findings = append(findings, newFindings...)

		// Single source: the vision channel of the reasoning tool.
		confidence := v.evaluator.CalculateConfidence(findings, 1, hasDirectAnswer(newFindings))
		history = append(history, confidence)
		sourceCounts = append(sourceCounts, 1)

		decision := v.evaluator.Evaluate(termination.Snapshot{
			Iteration:         iteration,
			MaxIterations:     v.maxIterations,
			ConfidenceHistory: history,
			SourceCounts:      sourceCounts,
		})

		emitCheckpoint(ctx, taskCtx, iteration, "vision_analysis",
			map[string]any{"query": query, "image_count": len(images)},
			map[string]any{
				"new_findings":     len(newFindings),
				"total_findings":   len(findings),
				"confidence":       confidence,
				"should_terminate": decision.Stop,
			},
			time.Since(iterStart).Milliseconds())

		if decision.Stop {
			outcome = decision.Outcome
			slog.Info("Vision loop terminating", "reason", decision.Reason)
			break
		}
	}

	summary := v.synthesizeAnalysis(ctx, query, findings)
	confidence := 0.0
	if len(history) > 0 {
		confidence = history[len(history)-1]
	}

	return &models.InstrumentResult{
		Findings:   findings,
		Summary:    summary,
		Confidence: confidence,
		Outcome:    outcome,
		Metadata: models.ExecutionMetadata{
			InstrumentUsed:   visionName,
			Iterations:       iteration,
			DurationMS:       time.Since(start).Milliseconds(),
			SourcesConsulted: []string{visionSource},
			ProcessType:      models.ProcessSemiAutonomic,
		},
		SuggestedFollowups: v.suggestFollowups(ctx, query, findings, outcome),
	}, nil
}

func (v *VisionInstrument) buildSystemPrompt(iteration int, previousAnalysis string) string {
	base := "You are a visual analysis expert. Examine the provided image(s) " +
		"carefully and extract all relevant information related to the " +
		"user's query.\n\n" +
		"Respond with a JSON object (no markdown wrapping) with these keys:\n" +
		"- \"observations\": list of specific things you see that are relevant\n" +
		"- \"analysis\": narrative interpretation addressing the query\n" +
		"- \"confidence\": 0.0-1.0 how confident you are in your analysis"

	if iteration > 1 && previousAnalysis != "" {
		base += "\n\nYou previously analyzed this image. Look again more " +
			"carefully, focusing on details you might have missed, " +
			"ambiguities, or areas where confidence was low. Add new " +
			"observations and correct any mistakes."
	}
	return base
}

func (v *VisionInstrument) buildAnalysisPrompt(query string, taskCtx *models.TaskContext, iteration int, previousAnalysis string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s", query)
	if taskCtx != nil && taskCtx.Location != "" {
		fmt.Fprintf(&b, "\nUser location: %s", taskCtx.Location)
	}
	if iteration > 1 && previousAnalysis != "" {
		fmt.Fprintf(&b, "\n\nPrevious analysis (iteration %d):\n%s", iteration-1, truncate(previousAnalysis, 2000))
	}
	b.WriteString("\n\nAnalyze the image(s) and respond with the JSON object.")
	return b.String()
}

// extractFindings parses the structured observation list out of the
// response, falling back to the raw text as a single finding.
func (v *VisionInstrument) extractFindings(response string) []models.Finding {
	if parsed, ok := tools.ExtractJSONObject(response); ok {
		if raw, ok := parsed["observations"].([]any); ok {
			confidence := 0.7
			if c, ok := parsed["confidence"].(float64); ok {
				confidence = c
			}
			var findings []models.Finding
			for _, item := range raw {
				if obs, ok := item.(string); ok && strings.TrimSpace(obs) != "" {
					findings = append(findings, models.NewFinding(obs, visionSource, confidence))
				}
			}
			if len(findings) > 0 {
				return findings
			}
		}
	}
	return []models.Finding{models.NewFinding(truncate(response, 1000), visionSource, 0.7)}
}

func (v *VisionInstrument) synthesizeAnalysis(ctx context.Context, query string, findings []models.Finding) string {
	if len(findings) == 0 {
		return "No visual information could be extracted."
	}

	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = fmt.Sprintf("- %s", f.Content)
	}

	prompt := fmt.Sprintf("Original query: %s\n\nVisual observations:\n%s\n\nSynthesize these observations into a clear, direct answer to the query.",
		query, strings.Join(lines, "\n"))
	system := "You are a visual analysis synthesizer. Combine the observations " +
		"into a coherent summary that directly addresses the user's query. " +
		"Be concise but comprehensive."

	summary, err := v.reasoner.Complete(ctx, prompt, system)
	if err != nil {
		slog.Warn("Vision synthesis failed", "error", err)
		return findings[0].Content
	}
	return summary
}

func (v *VisionInstrument) suggestFollowups(ctx context.Context, query string, findings []models.Finding, outcome models.Outcome) []string {
	if len(findings) == 0 {
		return nil
	}

	summaryFindings := findings
	if len(summaryFindings) > 5 {
		summaryFindings = summaryFindings[:5]
	}
	lines := make([]string, len(summaryFindings))
	for i, f := range summaryFindings {
		lines[i] = truncate(f.Content, 100)
	}

	system := "Based on the visual analysis, suggest 1-2 follow-up questions " +
		"the user might want to explore about the image(s)."
	prompt := fmt.Sprintf("Original query: %s\nAnalysis outcome: %s\n\nKey observations:\n%s\n\nSuggest 1-2 follow-up questions. Return ONLY the questions, one per line.",
		query, outcome, strings.Join(lines, "\n"))

	response, err := v.reasoner.Complete(ctx, prompt, system)
	if err != nil {
		return nil
	}
	return splitLines(response, 2)
}
