package textproc

import (
	"fmt"
	"regexp"
	"strings"
)

// ChainResult is the outcome of dependency chain detection. When IsChain
// is true, RootConcept is the synthesized Epic label and Steps are the
// ordered task title seeds.
type ChainResult struct {
	IsChain     bool     `json:"is_chain"`
	RootConcept string   `json:"root_concept"`
	Steps       []string `json:"steps"`
}

// chainPatterns are the explicit three-node sequence connectives, in
// strict priority order: arrow glyph, ASCII arrow, "to", "then",
// "leads to". Each captures exactly three word-groups. The first
// pattern that matches wins and no further rules are evaluated.
var chainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([a-zA-Z][a-zA-Z\s]+?)\s*→\s*([a-zA-Z][a-zA-Z\s]+?)\s*→\s*([a-zA-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`([a-zA-Z][a-zA-Z\s]+?)\s*->\s*([a-zA-Z][a-zA-Z\s]+?)\s*->\s*([a-zA-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`([a-zA-Z][a-zA-Z\s]+?)\s+to\s+([a-zA-Z][a-zA-Z\s]+?)\s+to\s+([a-zA-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`([a-zA-Z][a-zA-Z\s]+?)\s+then\s+([a-zA-Z][a-zA-Z\s]+?)\s+then\s+([a-zA-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`([a-zA-Z][a-zA-Z\s]+?)\s+leads\s+to\s+([a-zA-Z][a-zA-Z\s]+?)\s+leads\s+to\s+([a-zA-Z][a-zA-Z\s]+)`),
}

// canonicalTermOrder is the co-occurrence vocabulary for the fallback
// rule, listed in the fixed build order it imposes (data layer →
// interface → delivery layer). Found terms keep this canonical relative
// order, not their order of appearance in the text. This is a
// best-effort heuristic, not a semantic inference: a text that states a
// different intentional sequence without an explicit connective will
// still be ordered canonically.
var canonicalTermOrder = []string{"database", "api", "server", "backend", "frontend", "website"}

// DetectChain inspects text for a sequential dependency chain.
//
// Rules, first match wins:
//  1. An explicit three-node connective pattern — the captured groups
//     become the steps and the root is "<first> to <last> Workflow".
//  2. Co-occurrence of at least two workflow terms anywhere in the
//     text — the found terms, reordered canonically, become the steps
//     and the root is "<first> to <last> System".
//  3. Otherwise no chain.
//
// Detection is deterministic: the same text always yields the same
// result, and the fallback ignores the appearance order of terms.
func DetectChain(text string) ChainResult {
	clean := strings.ToLower(Normalize(text))

	for _, pattern := range chainPatterns {
		match := pattern.FindStringSubmatch(clean)
		if match == nil {
			continue
		}
		steps := make([]string, 0, 3)
		for _, group := range match[1:] {
			steps = append(steps, TitleCase(strings.TrimSpace(group)))
		}
		return ChainResult{
			IsChain:     true,
			RootConcept: fmt.Sprintf("%s to %s Workflow", steps[0], steps[len(steps)-1]),
			Steps:       steps,
		}
	}

	var found []string
	for _, term := range canonicalTermOrder {
		if strings.Contains(clean, term) {
			found = append(found, TitleCase(term))
		}
	}
	if len(found) >= 2 {
		return ChainResult{
			IsChain:     true,
			RootConcept: fmt.Sprintf("%s to %s System", found[0], found[len(found)-1]),
			Steps:       found,
		}
	}

	return ChainResult{}
}
