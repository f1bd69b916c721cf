// Package search implements the trip catalog's fuzzy origin/destination
// matching and tag filtering.
//
// The matching policy, in order: exact case-insensitive substring match
// short-circuits; otherwise every query word must match some target word by
// containment, by Levenshtein edit distance ≤ 2, or through the place-name
// alias table ("nyc" ↔ "new york", "philly" ↔ "philadelphia", ...).
package search

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxEditDistance is the per-word-pair tolerance for typos.
const maxEditDistance = 2

// minFuzzyLen keeps the edit-distance rule away from very short tokens,
// where a distance of 2 would make almost any two abbreviations "match"
// ("la" vs "ca"). Short forms are handled by the alias table instead.
const minFuzzyLen = 3

// aliasPairs maps common short forms to the place names they stand for.
// Pairs are bidirectional: a query of either side matches targets
// containing the other.
var aliasPairs = [][2]string{
	{"nyc", "new york"},
	{"ny", "new york"},
	{"philly", "philadelphia"},
	{"la", "los angeles"},
	{"sf", "san francisco"},
	{"dc", "washington"},
	{"vegas", "las vegas"},
	{"atl", "atlanta"},
}

// Match reports whether the free-text query matches the target location
// string under the fuzzy policy. An empty or whitespace-only query matches
// everything.
func Match(query, target string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(target)
	if q == "" {
		return true
	}

	if strings.Contains(t, q) {
		return true
	}

	targetWords := tokenize(t)
	for _, qw := range tokenize(q) {
		if !matchesAny(qw, targetWords) {
			return false
		}
	}
	return true
}

// matchesAny reports whether the query word matches at least one target word.
func matchesAny(qw string, targetWords []string) bool {
	for _, tw := range targetWords {
		if wordsMatch(qw, tw) {
			return true
		}
	}
	return false
}

// wordsMatch compares a single query word against a single target word:
// containment, then edit distance, then alias expansion of both sides.
func wordsMatch(a, b string) bool {
	if a == b || containsWord(b, a) || containsWord(a, b) {
		return true
	}
	if withinEditDistance(a, b) {
		return true
	}
	for _, ea := range expand(a) {
		for _, eb := range expand(b) {
			if ea == eb || containsWord(eb, ea) || containsWord(ea, eb) || withinEditDistance(ea, eb) {
				return true
			}
		}
	}
	return false
}

// containsWord reports whether s contains sub as a substring. Very short
// substrings are rejected — "ca" sits inside "chicago" without the two
// places having anything to do with each other.
func containsWord(s, sub string) bool {
	return len(sub) >= minFuzzyLen && strings.Contains(s, sub)
}

func withinEditDistance(a, b string) bool {
	if len(a) < minFuzzyLen || len(b) < minFuzzyLen {
		return false
	}
	return levenshtein.ComputeDistance(a, b) <= maxEditDistance
}

// expand returns the word plus any alias partners it appears in.
func expand(word string) []string {
	out := []string{word}
	for _, pair := range aliasPairs {
		switch word {
		case pair[0]:
			out = append(out, pair[1])
		case pair[1]:
			out = append(out, pair[0])
		}
	}
	return out
}

// tokenize lowercases and splits a location string into words, stripping
// punctuation like the comma in "New York City, NY".
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r >= 'A' && r <= 'Z':
			return false
		default:
			return true
		}
	})
}
