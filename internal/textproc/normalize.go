// Package textproc implements the text analysis side of instruction
// generation: normalization, feature and requirement extraction,
// dependency chain detection, and priority classification.
//
// Every function here is a pure, deterministic function of its input.
// The heuristics are fixed keyword and pattern tables — there is no
// semantic inference, and the precedence of each rule cascade is
// explicit and tested independently.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize canonicalizes raw text: trims, collapses runs of whitespace
// into single spaces, and unifies line endings. Empty or whitespace-only
// input normalizes to "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// TitleCase capitalizes the first letter of each space-separated word
// and lowercases the rest ("build a website" → "Build A Website").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
