package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
)

// AcceptedTripRepo tracks post-acceptance lifecycle records and the
// participant lists per trip.
//
// Advance and AdvanceByTrip implement the forward-only guard: a transition is
// applied only when the record currently sits at the expected `from` status,
// otherwise domain.ErrInvalidTransition is returned. This is what makes
// out-of-order or duplicated lifecycle calls a defined failure instead of a
// silent overwrite.
type AcceptedTripRepo interface {
	// Add stores a new accepted-trip record.
	Add(ctx context.Context, at domain.AcceptedTrip) error

	// List returns all accepted-trip records in creation order.
	List(ctx context.Context) ([]domain.AcceptedTrip, error)

	// Advance moves the record with the given ID from `from` to `to`.
	// Returns domain.ErrNotFound if the record does not exist and
	// domain.ErrInvalidTransition if its current status is not `from`.
	Advance(ctx context.Context, id uuid.UUID, from, to domain.TripStatus) (domain.AcceptedTrip, error)

	// AdvanceByTrip is Advance keyed by trip ID: it moves the first record
	// for that trip currently at `from`. Returns domain.ErrNotFound if no
	// record references the trip and domain.ErrInvalidTransition if none of
	// them sits at `from`.
	AdvanceByTrip(ctx context.Context, tripID uuid.UUID, from, to domain.TripStatus) (domain.AcceptedTrip, error)

	// AddParticipant appends a participant record for the given trip.
	AddParticipant(ctx context.Context, tripID uuid.UUID, p domain.TripParticipant) error

	// Participants returns the participant records for the given trip in
	// join order. An unknown trip yields an empty slice.
	Participants(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error)
}

// memAcceptedTripRepo is the in-memory implementation of AcceptedTripRepo.
type memAcceptedTripRepo struct {
	mu           sync.Mutex
	accepted     []domain.AcceptedTrip
	participants map[uuid.UUID][]domain.TripParticipant
}

// NewAcceptedTripRepo constructs an empty in-memory AcceptedTripRepo.
func NewAcceptedTripRepo() AcceptedTripRepo {
	return &memAcceptedTripRepo{participants: make(map[uuid.UUID][]domain.TripParticipant)}
}

func (r *memAcceptedTripRepo) Add(_ context.Context, at domain.AcceptedTrip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted = append(r.accepted, at)
	return nil
}

func (r *memAcceptedTripRepo) List(_ context.Context) ([]domain.AcceptedTrip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.AcceptedTrip, len(r.accepted))
	copy(out, r.accepted)
	return out, nil
}

func (r *memAcceptedTripRepo) Advance(_ context.Context, id uuid.UUID, from, to domain.TripStatus) (domain.AcceptedTrip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, at := range r.accepted {
		if at.ID != id {
			continue
		}
		if at.Status != from {
			return domain.AcceptedTrip{}, fmt.Errorf(
				"repo.AcceptedTripRepo.Advance: accepted trip %s is %s, want %s: %w",
				id, at.Status, from, domain.ErrInvalidTransition)
		}
		r.accepted[i].Status = to
		return r.accepted[i], nil
	}
	return domain.AcceptedTrip{}, fmt.Errorf("repo.AcceptedTripRepo.Advance: accepted trip %s: %w", id, domain.ErrNotFound)
}

func (r *memAcceptedTripRepo) AdvanceByTrip(_ context.Context, tripID uuid.UUID, from, to domain.TripStatus) (domain.AcceptedTrip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := false
	for i, at := range r.accepted {
		if at.TripID != tripID {
			continue
		}
		seen = true
		if at.Status == from {
			r.accepted[i].Status = to
			return r.accepted[i], nil
		}
	}
	if seen {
		return domain.AcceptedTrip{}, fmt.Errorf(
			"repo.AcceptedTripRepo.AdvanceByTrip: no record for trip %s at %s: %w",
			tripID, from, domain.ErrInvalidTransition)
	}
	return domain.AcceptedTrip{}, fmt.Errorf("repo.AcceptedTripRepo.AdvanceByTrip: trip %s: %w", tripID, domain.ErrNotFound)
}

func (r *memAcceptedTripRepo) AddParticipant(_ context.Context, tripID uuid.UUID, p domain.TripParticipant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now()
	}
	r.participants[tripID] = append(r.participants[tripID], p)
	return nil
}

func (r *memAcceptedTripRepo) Participants(_ context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.participants[tripID]
	out := make([]domain.TripParticipant, len(list))
	copy(out, list)
	return out, nil
}
