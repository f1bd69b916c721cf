package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// TripLink renders the deep link for a trip: scheme://trip/<trip-id>.
// Link messages carry this string as their payload URL.
func TripLink(scheme string, tripID uuid.UUID) string {
	return fmt.Sprintf("%s://trip/%s", scheme, tripID)
}

// ParseTripLink extracts the trip ID from a deep link by taking the last
// path segment. The scheme is not checked — the original convention only
// cares about the trailing identifier.
func ParseTripLink(raw string) (uuid.UUID, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("domain.ParseTripLink: %w", err)
	}

	// For scheme://trip/<id> the id lands in the path; for scheme relative
	// forms it can land in the opaque part. Take whichever is non-empty.
	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	last := segments[len(segments)-1]

	id, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, fmt.Errorf("domain.ParseTripLink: %q is not a trip link: %w", raw, err)
	}
	return id, nil
}
