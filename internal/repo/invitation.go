package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
)

// InvitationRepo holds the active (pending) invitations and join requests.
// Accepting or declining removes the entry; Take is the atomic
// remove-and-return that makes a second accept of the same invitation fail
// with domain.ErrNotFound instead of double-processing it.
//
// Sending the same trip/user pair twice deliberately creates two pending
// entries — deduplication is not part of the handshake.
type InvitationRepo interface {
	// AddInvitation stores a pending invitation.
	AddInvitation(ctx context.Context, inv domain.TripInvitation) error

	// TakeInvitation removes the invitation with the given ID from the active
	// set and returns it. Returns domain.ErrNotFound if it is not active.
	TakeInvitation(ctx context.Context, id uuid.UUID) (domain.TripInvitation, error)

	// ListInvitations returns all pending invitations in send order.
	ListInvitations(ctx context.Context) ([]domain.TripInvitation, error)

	// AddJoinRequest stores a pending join request.
	AddJoinRequest(ctx context.Context, req domain.JoinRequest) error

	// TakeJoinRequest removes the join request with the given ID from the
	// active set and returns it. Returns domain.ErrNotFound if it is not active.
	TakeJoinRequest(ctx context.Context, id uuid.UUID) (domain.JoinRequest, error)

	// ListJoinRequests returns all pending join requests in send order.
	ListJoinRequests(ctx context.Context) ([]domain.JoinRequest, error)
}

// memInvitationRepo is the in-memory implementation of InvitationRepo.
// Slices keep send order; the active set is small enough that linear scans
// beat the bookkeeping of an index.
type memInvitationRepo struct {
	mu          sync.Mutex
	invitations []domain.TripInvitation
	requests    []domain.JoinRequest
}

// NewInvitationRepo constructs an empty in-memory InvitationRepo.
func NewInvitationRepo() InvitationRepo {
	return &memInvitationRepo{}
}

func (r *memInvitationRepo) AddInvitation(_ context.Context, inv domain.TripInvitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations = append(r.invitations, inv)
	return nil
}

func (r *memInvitationRepo) TakeInvitation(_ context.Context, id uuid.UUID) (domain.TripInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, inv := range r.invitations {
		if inv.ID == id {
			r.invitations = append(r.invitations[:i], r.invitations[i+1:]...)
			return inv, nil
		}
	}
	return domain.TripInvitation{}, fmt.Errorf("repo.InvitationRepo.TakeInvitation: invitation %s: %w", id, domain.ErrNotFound)
}

func (r *memInvitationRepo) ListInvitations(_ context.Context) ([]domain.TripInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.TripInvitation, len(r.invitations))
	copy(out, r.invitations)
	return out, nil
}

func (r *memInvitationRepo) AddJoinRequest(_ context.Context, req domain.JoinRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

func (r *memInvitationRepo) TakeJoinRequest(_ context.Context, id uuid.UUID) (domain.JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, req := range r.requests {
		if req.ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return req, nil
		}
	}
	return domain.JoinRequest{}, fmt.Errorf("repo.InvitationRepo.TakeJoinRequest: request %s: %w", id, domain.ErrNotFound)
}

func (r *memInvitationRepo) ListJoinRequests(_ context.Context) ([]domain.JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.JoinRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}
