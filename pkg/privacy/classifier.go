// Package privacy classifies query text for sensitivity before room
// selection. Detection is pattern-based: no query text ever leaves the
// process just to decide whether it may leave the process.
package privacy

import (
	"fmt"
	"regexp"
	"strings"
)

// Category names the kind of sensitive content detected.
type Category string

const (
	CategoryHealth    Category = "health"
	CategoryFinancial Category = "financial"
	CategoryPersonal  Category = "personal"
	CategoryLocation  Category = "location"
	CategoryIdentity  Category = "identity"
	CategoryWork      Category = "work"
	CategoryLegal     Category = "legal"
	CategoryNone      Category = "none"
)

// Level grades how sensitive a query is.
type Level string

const (
	LevelPublic       Level = "public"
	LevelSensitive    Level = "sensitive"
	LevelPrivate      Level = "private"
	LevelConfidential Level = "confidential"
)

// rank orders levels for comparison. Unknown levels rank as public.
func (l Level) rank() int {
	switch l {
	case LevelSensitive:
		return 1
	case LevelPrivate:
		return 2
	case LevelConfidential:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether l is as sensitive as other.
func (l Level) AtLeast(other Level) bool {
	return l.rank() >= other.rank()
}

// Assessment is the classification verdict for one query.
type Assessment struct {
	Level           Level      `json:"level"`
	Categories      []Category `json:"categories"`
	Confidence      float64    `json:"confidence"`
	ShouldStayLocal bool       `json:"should_stay_local"`
	Reason          string     `json:"reason,omitempty"`
}

// categoryOrder fixes iteration order so repeated classifications of the
// same query produce identical assessments.
var categoryOrder = []Category{
	CategoryHealth,
	CategoryFinancial,
	CategoryPersonal,
	CategoryLocation,
	CategoryIdentity,
	CategoryWork,
	CategoryLegal,
}

var categoryLevels = map[Category]Level{
	CategoryHealth:    LevelPrivate,
	CategoryFinancial: LevelPrivate,
	CategoryPersonal:  LevelSensitive,
	CategoryLocation:  LevelSensitive,
	CategoryIdentity:  LevelConfidential,
	CategoryWork:      LevelSensitive,
	CategoryLegal:     LevelPrivate,
	CategoryNone:      LevelPublic,
}

var categoryPatterns = map[Category][]*regexp.Regexp{
	CategoryHealth: {
		regexp.MustCompile(`(?i)\b(symptom|diagnosis|medication|prescription|doctor|hospital|medical|health|illness|disease|pain|anxiety|depression|therapy|therapist|psychiatrist|mental health|blood pressure|heart rate|weight|bmi|pregnant|pregnancy|std|hiv|cancer|diabetes|allergy|vaccine|surgery)\b`),
		regexp.MustCompile(`(?i)\b(headache|fever|cough|nausea|insomnia|fatigue)\b`),
		regexp.MustCompile(`(?i)\b(my doctor|my therapist|my medication|my prescription)\b`),
	},
	CategoryFinancial: {
		regexp.MustCompile(`(?i)\b(salary|income|tax|bank|account|credit card|debit|loan|mortgage|debt|investment|portfolio|net worth|savings|budget|spending)\b`),
		regexp.MustCompile(`(?i)\b(how much (do i|i) (make|earn|owe|spend))\b`),
		regexp.MustCompile(`(?i)\b(my bank|my account|my credit|my salary)\b`),
		regexp.MustCompile(`\$\d+`),
	},
	CategoryPersonal: {
		regexp.MustCompile(`(?i)\b(relationship|boyfriend|girlfriend|spouse|husband|wife|partner|divorce|breakup|dating|marriage|family|argument|fight|feeling|emotion|sad|happy|angry|frustrated|lonely|love|hate)\b`),
		regexp.MustCompile(`(?i)\b(my (boyfriend|girlfriend|spouse|husband|wife|partner|ex))\b`),
		regexp.MustCompile(`(?i)\b(i feel|i'm feeling|i am feeling)\b`),
		regexp.MustCompile(`(?i)\b(diary|journal|secret|private|personal)\b`),
	},
	CategoryLocation: {
		regexp.MustCompile(`(?i)\b(my (home|house|apartment|address|location|whereabouts))\b`),
		regexp.MustCompile(`(?i)\b(where (do i|i) live)\b`),
		regexp.MustCompile(`(?i)\b(i('m| am) at|i was at|i went to)\b`),
		regexp.MustCompile(`(?i)\b(track|tracking|gps|geolocation)\b`),
	},
	CategoryIdentity: {
		regexp.MustCompile(`(?i)\b(ssn|social security|passport|driver'?s? license|id number|pin|password|credential|login)\b`),
		regexp.MustCompile(`(?i)\b(my (ssn|password|pin|username))\b`),
		regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	},
	CategoryWork: {
		regexp.MustCompile(`(?i)\b(confidential|proprietary|trade secret|nda|non-disclosure|classified|internal only)\b`),
		regexp.MustCompile(`(?i)\b(my (company|employer|boss|coworker|colleague))\b`),
		regexp.MustCompile(`(?i)\b(work (problem|issue|conflict))\b`),
	},
	CategoryLegal: {
		regexp.MustCompile(`(?i)\b(lawyer|attorney|lawsuit|sue|court|legal|arrest|police|crime|criminal)\b`),
		regexp.MustCompile(`(?i)\b(my lawyer|my attorney|my case)\b`),
	},
}

// Classifier grades queries by sensitivity. In strict mode even
// sensitive-level queries are pinned local.
type Classifier struct {
	strict bool
}

// NewClassifier creates a Classifier. strict widens the stay-local rule
// from private/confidential down to sensitive.
func NewClassifier(strict bool) *Classifier {
	return &Classifier{strict: strict}
}

// Classify grades one query.
func (c *Classifier) Classify(query string) Assessment {
	var detected []Category
	totalHits := 0

	for _, category := range categoryOrder {
		hits := 0
		for _, pattern := range categoryPatterns[category] {
			if pattern.MatchString(query) {
				hits++
			}
		}
		if hits > 0 {
			detected = append(detected, category)
			totalHits += hits
		}
	}

	if len(detected) == 0 {
		return Assessment{
			Level:      LevelPublic,
			Categories: []Category{CategoryNone},
			Confidence: 0.8,
			Reason:     "No privacy-sensitive content detected",
		}
	}

	highest := LevelPublic
	for _, category := range detected {
		if level := categoryLevels[category]; level.rank() > highest.rank() {
			highest = level
		}
	}

	confidence := 0.5 + float64(totalHits)*0.1
	if confidence > 0.95 {
		confidence = 0.95
	}

	stayLocal := highest == LevelPrivate || highest == LevelConfidential ||
		(c.strict && highest == LevelSensitive)

	names := make([]string, len(detected))
	for i, category := range detected {
		names[i] = string(category)
	}

	return Assessment{
		Level:           highest,
		Categories:      detected,
		Confidence:      confidence,
		ShouldStayLocal: stayLocal,
		Reason:          fmt.Sprintf("Detected privacy categories: %s", strings.Join(names, ", ")),
	}
}

// IsSensitive reports whether the query matched anything at all.
func (c *Classifier) IsSensitive(query string) bool {
	return c.Classify(query).Level != LevelPublic
}

// MustStayLocal reports whether delegation to remote rooms is forbidden.
func (c *Classifier) MustStayLocal(query string) bool {
	return c.Classify(query).ShouldStayLocal
}
