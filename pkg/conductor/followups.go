package conductor

import (
	"fmt"

	"github.com/loop-symphony/symphony/pkg/models"
)

// followupLimit caps the conductor-added suggestions on one response.
const followupLimit = 3

// lowSourceCount marks complete answers that leaned on few sources and
// could benefit from a deeper instrument.
const lowSourceCount = 2

// appendFollowups derives outcome-driven suggestions and appends them to
// whatever the instrument already proposed. Suggestions follow the
// "[kind] message" convention: scoping for bounded runs, pushback for
// contradictions, education for thin complete answers, proactive
// deepening for saturated ones.
func appendFollowups(result *models.InstrumentResult) []string {
	derived := deriveFollowups(result)
	if len(derived) > followupLimit {
		derived = derived[:followupLimit]
	}
	return append(result.SuggestedFollowups, derived...)
}

// deriveFollowups maps a terminal outcome to at most a couple of
// prefixed suggestions.
func deriveFollowups(result *models.InstrumentResult) []string {
	switch result.Outcome {
	case models.OutcomeBounded:
		return []string{"[scoping] The loop hit its iteration ceiling before converging. Narrow the question or split it into separate tasks to get further."}
	case models.OutcomeInconclusive:
		if result.Discrepancy != "" {
			return []string{fmt.Sprintf("[pushback] The findings conflict: %s. A narrower question targeting the disagreement may resolve it.", result.Discrepancy)}
		}
		return []string{"[pushback] The findings did not converge. Consider rephrasing with more specific constraints."}
	case models.OutcomeSaturated:
		return []string{"[proactive] Further iterations stopped adding information. A differently angled follow-up may uncover more."}
	case models.OutcomeComplete:
		if len(result.Metadata.SourcesConsulted) < lowSourceCount {
			return []string{"[education] This answer leaned on few sources. The research instrument can consult several independent sources for a harder question."}
		}
	}
	return nil
}
