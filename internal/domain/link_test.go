package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
)

func TestTripLink_RoundTrip(t *testing.T) {
	id := uuid.New()
	link := domain.TripLink("carpal", id)

	assert.Equal(t, "carpal://trip/"+id.String(), link)

	parsed, err := domain.ParseTripLink(link)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseTripLink_LastSegmentWins(t *testing.T) {
	id := uuid.New()

	// Extra leading segments are ignored; only the trailing ID matters.
	parsed, err := domain.ParseTripLink("carpal://app/share/trip/" + id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseTripLink_Invalid(t *testing.T) {
	for _, raw := range []string{
		"carpal://trip/not-a-uuid",
		"carpal://trip/",
		"",
	} {
		_, err := domain.ParseTripLink(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}
