package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
	"github.com/LylesZhang/Protothon-2026/internal/search"
)

// TripService implements business logic for the trip catalog.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create validates and stores a new trip posting.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.CurrentParticipants == 0 {
		trip.CurrentParticipants = 1 // the author is on board
	}
	if trip.CostType == "" {
		trip.CostType = domain.CostSplit
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns the full catalog in posting order.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	result, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return result, nil
}

// MyPosts returns the trips posted by the given author.
func (s *TripService) MyPosts(ctx context.Context, author string) ([]domain.Trip, error) {
	result, err := s.trips.ListByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.MyPosts: %w", err)
	}
	return result, nil
}

// History returns the author's trips whose scheduled departure has passed,
// judged against the supplied clock.
func (s *TripService) History(ctx context.Context, author string, now time.Time) ([]domain.Trip, error) {
	posts, err := s.trips.ListByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.History: %w", err)
	}
	var out []domain.Trip
	for _, trip := range posts {
		if trip.Finished(now) {
			out = append(out, trip)
		}
	}
	return out, nil
}

// Update validates and overwrites an existing trip posting.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip posting by ID.
//
// Deleting does not cascade to invitations or accepted-trip records that
// reference the trip; those keep their snapshot fields and their later
// participant-count updates are skipped.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Search filters the catalog by fuzzy origin/destination text and tag
// intersection.
func (s *TripService) Search(ctx context.Context, criteria search.Criteria) ([]domain.Trip, error) {
	all, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Search: %w", err)
	}
	return search.Filter(all, criteria), nil
}

// validateTrip enforces the posting rules shared by Create and Update.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("service: %w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Origin) == "" {
		return fmt.Errorf("service: %w: origin is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("service: %w: destination is required", domain.ErrValidation)
	}
	if trip.Capacity < 1 {
		return fmt.Errorf("service: %w: capacity must be at least 1", domain.ErrValidation)
	}
	switch trip.CostType {
	case "", domain.CostFree, domain.CostSplit, domain.CostPaid:
	default:
		return fmt.Errorf("service: %w: unknown cost type %q", domain.ErrValidation, trip.CostType)
	}
	return nil
}
