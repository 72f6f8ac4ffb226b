package instrument

import (
	"context"
	"fmt"
	"strings"

	"github.com/loop-symphony/symphony/pkg/termination"
	"github.com/loop-symphony/symphony/pkg/tools"
)

// SynthesisAnalysis is the structured result of a synthesis pass:
// a merged summary plus whether the findings contradict each other.
type SynthesisAnalysis struct {
	Summary           string
	HasContradictions bool
	ContradictionHint string
}

// DiscrepancyAnalysis characterizes a detected contradiction in depth.
type DiscrepancyAnalysis struct {
	Description          string
	Severity             termination.Severity
	ConflictingClaims    []string
	SuggestedRefinements []string
}

// Analyzer layers the structured synthesis and contradiction contracts
// over a plain text reasoner. Responses that fail to parse as JSON
// degrade to documented fallbacks rather than errors.
type Analyzer struct {
	reasoner Reasoner
}

// NewAnalyzer creates an analyzer around the reasoner.
func NewAnalyzer(r Reasoner) *Analyzer {
	return &Analyzer{reasoner: r}
}

const synthesizeSystem = "You are a research synthesizer. Your job is to combine multiple findings " +
	"into a coherent, accurate summary that directly addresses the user's query. " +
	"Be concise but comprehensive. Cite sources when available.\n\n" +
	"IMPORTANT: You must also check whether the findings contradict each other. " +
	"Respond with a JSON object (no markdown wrapping) with these exact keys:\n" +
	"- \"summary\": your synthesized summary text\n" +
	"- \"has_contradictions\": true or false\n" +
	"- \"contradiction_hint\": if has_contradictions is true, briefly describe " +
	"what the findings disagree about; otherwise null"

// SynthesizeWithAnalysis merges findings into a summary and checks for
// contradictions in one reasoner call. A response that is not the
// expected JSON object is treated as a plain summary with no
// contradictions.
func (a *Analyzer) SynthesizeWithAnalysis(ctx context.Context, findings []string, query string) (*SynthesisAnalysis, error) {
	prompt := fmt.Sprintf("Original Query: %s\n\nFindings:\n%s\n\nSynthesize these findings and check for contradictions. Respond with the JSON object only.",
		query, numberedFindings(findings))

	response, err := a.reasoner.Complete(ctx, prompt, synthesizeSystem)
	if err != nil {
		return nil, err
	}

	if parsed, ok := tools.ExtractJSONObject(response); ok {
		if summary, ok := parsed["summary"].(string); ok {
			return &SynthesisAnalysis{
				Summary:           summary,
				HasContradictions: boolValue(parsed, "has_contradictions"),
				ContradictionHint: stringValue(parsed, "contradiction_hint"),
			}, nil
		}
	}

	return &SynthesisAnalysis{Summary: response}, nil
}

const discrepancySystem = "You are a research analyst specializing in identifying and characterizing " +
	"conflicting information. Analyze the contradiction described below and " +
	"respond with a JSON object (no markdown wrapping) with these exact keys:\n" +
	"- \"description\": a clear description of the discrepancy\n" +
	"- \"severity\": one of \"minor\", \"moderate\", or \"significant\"\n" +
	"- \"conflicting_claims\": a list of the specific claims that conflict\n" +
	"- \"suggested_refinements\": a list of 2-3 follow-up queries that could " +
	"help resolve the contradiction"

// AnalyzeDiscrepancy examines a contradiction the synthesis pass
// flagged. A response that is not the expected JSON object falls back
// to the hint at moderate severity.
func (a *Analyzer) AnalyzeDiscrepancy(ctx context.Context, findings []string, query, hint string) (*DiscrepancyAnalysis, error) {
	prompt := fmt.Sprintf("Original Query: %s\n\nContradiction detected: %s\n\nFindings:\n%s\n\nAnalyze this contradiction in depth. Respond with the JSON object only.",
		query, hint, numberedFindings(findings))

	response, err := a.reasoner.Complete(ctx, prompt, discrepancySystem)
	if err != nil {
		return nil, err
	}

	if parsed, ok := tools.ExtractJSONObject(response); ok {
		if description, ok := parsed["description"].(string); ok {
			return &DiscrepancyAnalysis{
				Description:          description,
				Severity:             termination.ParseSeverity(stringValue(parsed, "severity")),
				ConflictingClaims:    stringSliceValue(parsed, "conflicting_claims"),
				SuggestedRefinements: stringSliceValue(parsed, "suggested_refinements"),
			}, nil
		}
	}

	return &DiscrepancyAnalysis{
		Description: hint,
		Severity:    termination.SeverityModerate,
	}, nil
}

func numberedFindings(findings []string) string {
	parts := make([]string, len(findings))
	for i, f := range findings {
		parts[i] = fmt.Sprintf("Finding %d:\n%s", i+1, f)
	}
	return strings.Join(parts, "\n\n")
}

func boolValue(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func stringValue(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func stringSliceValue(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
