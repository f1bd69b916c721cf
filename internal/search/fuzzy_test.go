package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LylesZhang/Protothon-2026/internal/search"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   bool
	}{
		{"exact substring", "Tahoe", "Lake Tahoe, CA", true},
		{"case insensitive", "lake tahoe", "Lake Tahoe, CA", true},
		{"abbreviation via alias", "NYC", "New York City, NY", true},
		{"typo within edit distance", "Phillyy", "Philadelphia", true},
		{"typo in full name", "Philadelpia", "Philadelphia, PA", true},
		{"unrelated cities", "Boston", "Seattle", false},
		{"empty query matches all", "", "Anywhere", true},
		{"whitespace query matches all", "   ", "Anywhere", true},
		{"alias the other way", "New York", "nyc", true},
		{"no partial nonsense", "Chicago", "Lake Tahoe, CA", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.Match(tt.query, tt.target))
		})
	}
}

func TestMatch_ShortTokensDoNotFuzz(t *testing.T) {
	// Two-letter state codes are one edit apart from each other all the
	// time; they must not fuzzy-match. The alias table handles the real
	// abbreviations instead.
	assert.False(t, search.Match("NJ", "Lake Tahoe, CA"))
}
