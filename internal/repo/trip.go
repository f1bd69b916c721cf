// Package repo contains the in-memory stores backing the CarPal services.
// Each resource has its own file with an interface and an implementation.
// No business logic lives here — only storage and lookup.
//
// All state is process-lifetime only and is re-seeded from sample data on
// every launch; there is deliberately no persistence layer behind these
// interfaces.
package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
)

// TripRepo defines the storage operations for Trips.
// It is the single source of truth for trip records: the "my posts" view and
// the browse-all view are both projections of the same store, so a
// participant-count update is visible everywhere at once.
type TripRepo interface {
	// Create stores a new trip and returns it with ID and timestamps populated.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip. Returns domain.ErrNotFound if no trip
	// with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips in insertion order.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByAuthor returns the trips posted by the given author, in insertion
	// order. This is the "my posts" view.
	ListByAuthor(ctx context.Context, author string) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if the trip does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementParticipants adds one to the trip's participant count and
	// returns the updated record. Returns domain.ErrNotFound if the trip does
	// not exist.
	IncrementParticipants(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// memTripRepo is the in-memory implementation of TripRepo.
// The map holds the records; order preserves insertion sequence for listing.
type memTripRepo struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]domain.Trip
	order []uuid.UUID
}

// NewTripRepo constructs an empty in-memory TripRepo. It is safe for
// concurrent use.
func NewTripRepo() TripRepo {
	return &memTripRepo{trips: make(map[uuid.UUID]domain.Trip)}
}

func (r *memTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	r.trips[trip.ID] = trip
	r.order = append(r.order, trip.ID)
	return trip, nil
}

func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: trip %s: %w", id, domain.ErrNotFound)
	}
	return trip, nil
}

func (r *memTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Trip, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.trips[id])
	}
	return out, nil
}

func (r *memTripRepo) ListByAuthor(_ context.Context, author string) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Trip
	for _, id := range r.order {
		if trip := r.trips[id]; trip.Author == author {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (r *memTripRepo) Update(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.trips[trip.ID]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: trip %s: %w", trip.ID, domain.ErrNotFound)
	}
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now()
	r.trips[trip.ID] = trip
	return trip, nil
}

func (r *memTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return fmt.Errorf("repo.TripRepo.Delete: trip %s: %w", id, domain.ErrNotFound)
	}
	delete(r.trips, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memTripRepo) IncrementParticipants(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.IncrementParticipants: trip %s: %w", id, domain.ErrNotFound)
	}
	trip.CurrentParticipants++
	trip.UpdatedAt = time.Now()
	r.trips[id] = trip
	return trip, nil
}
