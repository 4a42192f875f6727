package scoring

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Tokenize lower-cases the text and extracts maximal alphanumeric/underscore
// runs. No stemming, no stop words.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// TextMatchScore scores query overlap against a title and optional
// description. Each distinct query token found in the title adds 2, each
// found in the description adds 1, so a token present in both contributes 3.
// Zero means no overlap.
func TextMatchScore(query, title, description string) float64 {
	titleTokens := tokenSet(title)
	descTokens := tokenSet(description)

	var score float64
	seen := make(map[string]bool)
	for _, tok := range Tokenize(query) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if titleTokens[tok] {
			score += 2
		}
		if descTokens[tok] {
			score += 1
		}
	}
	return score
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}
