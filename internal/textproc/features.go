package textproc

import (
	"regexp"
	"strings"
)

// vocabEntry maps a raw keyword to the canonical feature label it
// contributes when present anywhere in the text.
type vocabEntry struct {
	keyword string
	label   string
}

// featureVocabulary is the fixed keyword → canonical label table.
// Order matters: labels are contributed in table order, not in order
// of appearance in the text.
var featureVocabulary = []vocabEntry{
	{"chatbot", "Chatbot Development"},
	{"bot", "Bot Development"},
	{"chat", "Chat System"},
	{"dashboard", "Dashboard"},
	{"report", "Reporting"},
	{"analytics", "Analytics"},
	{"data pipeline", "Data Pipeline"},
	{"visualization", "Data Visualization"},
	{"api", "API Development"},
	{"integration", "System Integration"},
	{"authentication", "Authentication"},
	{"database", "Database"},
	{"etl", "ETL Pipeline"},
	{"website", "Website Development"},
	{"web app", "Web Application"},
	{"mobile app", "Mobile Application"},
	{"ai", "AI/ML System"},
	{"machine learning", "Machine Learning"},
	{"llm", "LLM Integration"},
}

// technicalTerms flags sentences worth keeping verbatim even when they
// carry no action verb.
var technicalTerms = []string{"database", "llm", "website", "api", "server", "frontend", "backend"}

// actionSplitKeywords is the ordered list of keywords the feature label
// is split on: the fragment after the first match becomes the remainder.
var actionSplitKeywords = []string{"build", "create", "develop", "implement", "need"}

// actionPatterns detect an action verb or need-phrase in a sentence.
// Checked in order; the first match wins.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(build|create|develop|implement|setup|configure)\b`),
	regexp.MustCompile(`\b(want to|need to|should|must)\s+(\w+)`),
	regexp.MustCompile(`\b(design|analyze|test|deploy|monitor)\b`),
}

// requirementKeywords mark a sentence as a requirement statement.
var requirementKeywords = []string{"must", "should", "require", "need to", "shall"}

var sentenceEndRe = regexp.MustCompile(`[.!?]`)

// ExtractFeatures pulls a deduplicated, ordered list of candidate
// feature labels out of free text. Three sources contribute, in order:
//
//  1. Vocabulary matches — every keyword present anywhere in the text
//     (case-insensitive) contributes its canonical label.
//  2. Action sentences — a sentence containing an action verb or
//     need-phrase yields "<Action> <Remainder>" in title case, where
//     remainder is the fragment after the first matching split keyword.
//  3. Technical sentences — sentences mentioning a technical term are
//     kept verbatim (trimmed) even without an action verb.
//
// Duplicates are removed preserving first-seen order. Empty or
// whitespace-only input yields nil.
func ExtractFeatures(text string) []string {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	var features []string
	lower := strings.ToLower(text)

	for _, entry := range featureVocabulary {
		if strings.Contains(lower, entry.keyword) {
			features = append(features, entry.label)
		}
	}

	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		if action := extractAction(sentence); action != "" {
			sentenceLower := strings.ToLower(sentence)
			for _, keyword := range actionSplitKeywords {
				idx := strings.Index(sentenceLower, keyword)
				if idx < 0 {
					continue
				}
				remainder := strings.TrimSpace(sentenceLower[idx+len(keyword):])
				if remainder != "" {
					features = append(features, TitleCase(action)+" "+TitleCase(remainder))
				}
				break
			}
		}

		if containsAny(strings.ToLower(sentence), technicalTerms) {
			features = append(features, sentence)
		}
	}

	return dedupe(features)
}

// ExtractRequirements returns the sentences that state a requirement —
// those containing a modal or requirement keyword. Sentences are split
// on "." only, trimmed, and returned in order. Duplicates are kept:
// a requirement stated twice is two requirement statements.
func ExtractRequirements(text string) []string {
	text = Normalize(text)
	var requirements []string
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if containsAny(strings.ToLower(sentence), requirementKeywords) {
			requirements = append(requirements, sentence)
		}
	}
	return requirements
}

// extractAction returns the action word found in the sentence, or ""
// if none of the action patterns match. For need-phrases ("want to",
// "need to", "should", "must") it returns the verb that follows.
func extractAction(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, pattern := range actionPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		if len(match) > 2 {
			return match[2]
		}
		return match[1]
	}
	return ""
}

// splitSentences splits on sentence-ending punctuation (., !, ?).
func splitSentences(text string) []string {
	return strings.Split(sentenceEndRe.ReplaceAllString(text, "|"), "|")
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
