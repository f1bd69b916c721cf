package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
)

// FollowService tracks which trip authors the user follows. Following a user
// lazily creates the conversation with them so the chat thread is ready
// before the first message.
type FollowService struct {
	trips    repo.TripRepo
	messages *MessageService
	log      *zap.Logger

	mu       sync.RWMutex
	followed map[string]struct{}
}

// NewFollowService constructs a FollowService pre-populated with the given
// followed users.
func NewFollowService(trips repo.TripRepo, messages *MessageService, followed []string, log *zap.Logger) *FollowService {
	set := make(map[string]struct{}, len(followed))
	for _, name := range followed {
		set[name] = struct{}{}
	}
	return &FollowService{
		trips:    trips,
		messages: messages,
		log:      log,
		followed: set,
	}
}

// IsFollowing reports whether the named user is followed.
func (s *FollowService) IsFollowing(user string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.followed[user]
	return ok
}

// ToggleFollow flips the follow state for the named user and reports the new
// state. On follow, the conversation with that user is created if missing.
func (s *FollowService) ToggleFollow(ctx context.Context, user string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.followed[user]; ok {
		delete(s.followed, user)
		s.mu.Unlock()
		s.log.Info("unfollowed user", zap.String("user", user))
		return false, nil
	}
	s.followed[user] = struct{}{}
	s.mu.Unlock()

	if err := s.messages.CreateConversationIfNeeded(ctx, user); err != nil {
		return true, fmt.Errorf("service.FollowService.ToggleFollow: %w", err)
	}
	s.log.Info("followed user", zap.String("user", user))
	return true, nil
}

// Following returns the followed user names, sorted for stable output.
func (s *FollowService) Following() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.followed))
	for name := range s.followed {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FollowingTrips returns the catalog trips posted by followed authors, in
// catalog order.
func (s *FollowService) FollowingTrips(ctx context.Context) ([]domain.Trip, error) {
	all, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.FollowService.FollowingTrips: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Trip
	for _, trip := range all {
		if _, ok := s.followed[trip.Author]; ok {
			out = append(out, trip)
		}
	}
	return out, nil
}
