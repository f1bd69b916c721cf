package search

import (
	"github.com/LylesZhang/Protothon-2026/internal/domain"
)

// Criteria is one catalog search: optional origin and destination text plus
// an optional tag selection.
type Criteria struct {
	Origin      string
	Destination string
	Tags        []string
}

// Filter returns the trips matching all supplied criteria. Empty criteria
// fields impose no constraint. The tag criterion is satisfied when the
// trip's tag set intersects the selected set — OR semantics, not AND.
func Filter(trips []domain.Trip, c Criteria) []domain.Trip {
	var out []domain.Trip
	for _, trip := range trips {
		if !Match(c.Origin, trip.Origin) {
			continue
		}
		if !Match(c.Destination, trip.Destination) {
			continue
		}
		if len(c.Tags) > 0 && !intersects(trip.Tags, c.Tags) {
			continue
		}
		out = append(out, trip)
	}
	return out
}

// intersects reports whether the two tag lists share at least one tag.
func intersects(tripTags, selected []string) bool {
	set := make(map[string]struct{}, len(tripTags))
	for _, t := range tripTags {
		set[t] = struct{}{}
	}
	for _, s := range selected {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
