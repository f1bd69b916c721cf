package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
)

// SavedTripsService tracks which trips the user has bookmarked.
// The saved set is plain in-process state; there is nothing to persist.
type SavedTripsService struct {
	trips repo.TripRepo

	mu    sync.RWMutex
	saved map[uuid.UUID]struct{}
}

// NewSavedTripsService constructs an empty SavedTripsService.
func NewSavedTripsService(trips repo.TripRepo) *SavedTripsService {
	return &SavedTripsService{
		trips: trips,
		saved: make(map[uuid.UUID]struct{}),
	}
}

// ToggleSave flips the saved state of the given trip and reports the new
// state.
func (s *SavedTripsService) ToggleSave(tripID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.saved[tripID]; ok {
		delete(s.saved, tripID)
		return false
	}
	s.saved[tripID] = struct{}{}
	return true
}

// IsSaved reports whether the given trip is bookmarked.
func (s *SavedTripsService) IsSaved(tripID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.saved[tripID]
	return ok
}

// SavedTrips returns the bookmarked trips in catalog order.
// Saved IDs whose trip has since been deleted are silently skipped.
func (s *SavedTripsService) SavedTrips(ctx context.Context) ([]domain.Trip, error) {
	all, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SavedTripsService.SavedTrips: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Trip
	for _, trip := range all {
		if _, ok := s.saved[trip.ID]; ok {
			out = append(out, trip)
		}
	}
	return out, nil
}
