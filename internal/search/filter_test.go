package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/search"
)

func catalog() []domain.Trip {
	return []domain.Trip{
		{
			Title:       "Weekend NYC Trip",
			Origin:      "Haverford College",
			Destination: "New York City, NY",
			Tags:        []string{"weekend", "shopping"},
		},
		{
			Title:       "Philly Center City Shopping",
			Origin:      "Bryn Mawr",
			Destination: "Philadelphia, PA",
			Tags:        []string{"shopping"},
		},
		{
			Title:       "Forest Road Nature Escape",
			Origin:      "Haverford College",
			Destination: "Lake Tahoe, CA",
			Tags:        []string{"nature", "hiking"},
		},
	}
}

func titles(trips []domain.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, tr := range trips {
		out = append(out, tr.Title)
	}
	return out
}

func TestFilter_EmptyCriteriaKeepsAll(t *testing.T) {
	got := search.Filter(catalog(), search.Criteria{})
	assert.Len(t, got, 3)
}

func TestFilter_DestinationFuzzy(t *testing.T) {
	got := search.Filter(catalog(), search.Criteria{Destination: "NYC"})
	assert.Equal(t, []string{"Weekend NYC Trip"}, titles(got))

	// A typo within edit distance still finds the city.
	got = search.Filter(catalog(), search.Criteria{Destination: "Philadelpia"})
	assert.Equal(t, []string{"Philly Center City Shopping"}, titles(got))
}

func TestFilter_OriginAndDestinationCombine(t *testing.T) {
	got := search.Filter(catalog(), search.Criteria{
		Origin:      "Haverford",
		Destination: "Tahoe",
	})
	assert.Equal(t, []string{"Forest Road Nature Escape"}, titles(got))

	// Both must match; a wrong origin excludes the trip.
	got = search.Filter(catalog(), search.Criteria{
		Origin:      "Bryn Mawr",
		Destination: "Tahoe",
	})
	assert.Empty(t, got)
}

func TestFilter_TagsIntersect(t *testing.T) {
	// One shared tag is enough.
	got := search.Filter(catalog(), search.Criteria{Tags: []string{"shopping", "skiing"}})
	assert.Equal(t, []string{"Weekend NYC Trip", "Philly Center City Shopping"}, titles(got))

	got = search.Filter(catalog(), search.Criteria{Tags: []string{"skiing"}})
	assert.Empty(t, got)
}
