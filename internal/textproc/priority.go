package textproc

import (
	"strings"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// criticalKeywords force the Critical tier regardless of anything else.
var criticalKeywords = []string{"backup", "disaster", "recovery"}

// highKeywords raise a feature to High when no critical keyword matches.
var highKeywords = []string{"security", "authentication", "data", "pipeline"}

// scoreKeywords is the requirement-level High set used by the numeric
// scorer ("database" instead of "pipeline").
var scoreKeywords = []string{"security", "authentication", "data", "database"}

// ClassifyPriority maps a text fragment to a priority tier via strict
// keyword precedence: Critical keywords are checked before High
// keywords, the first match wins, and multiple hits never accumulate.
// Anything else is Medium.
func ClassifyPriority(text string) ado.Priority {
	lower := strings.ToLower(Normalize(text))
	if containsAny(lower, criticalKeywords) {
		return ado.PriorityCritical
	}
	if containsAny(lower, highKeywords) {
		return ado.PriorityHigh
	}
	return ado.PriorityMedium
}

// PriorityScore is the requirement-level scorer: 3 when a high-priority
// keyword is present, 2 otherwise. It feeds ScoreToPriority on the Task
// path, which is the only way to reach the Low tier.
func PriorityScore(text string) int {
	lower := strings.ToLower(Normalize(text))
	if containsAny(lower, scoreKeywords) {
		return 3
	}
	return 2
}

// ScoreToPriority applies the two-level threshold: High at 3 or above,
// Medium at 2, Low below.
func ScoreToPriority(score int) ado.Priority {
	switch {
	case score >= 3:
		return ado.PriorityHigh
	case score >= 2:
		return ado.PriorityMedium
	default:
		return ado.PriorityLow
	}
}
