package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
	"github.com/LylesZhang/Protothon-2026/internal/schedule"
)

// Senders used for system-generated chat traffic.
const (
	senderYou    = "You"
	senderSystem = "System"
)

// Canned message bodies for the handshake flow.
const (
	invitationContent   = "Partner Invitation"
	joinRequestContent  = "Join Request"
	joinAcceptedContent = "Great! Your request to join the trip has been accepted. See you there! 🚗"
	joinDeclinedContent = "Sorry, the trip is full or doesn't match your requirements at this time."
	finishPromptContent = "Did you finish the ride?"
)

// InvitationService mediates the trip-sharing handshake between two parties
// and drives the scripted post-acceptance sequence:
//
//	accept → (delay) finish prompt → confirm → rating prompt → rating
//
// The accepted trip's status advances strictly forward through
// accepted → waitingConfirmation → finished → rated; out-of-order calls
// fail with domain.ErrInvalidTransition.
type InvitationService struct {
	invitations repo.InvitationRepo
	accepted    repo.AcceptedTripRepo
	trips       repo.TripRepo
	messages    *MessageService
	sched       *schedule.Scheduler
	finishDelay time.Duration
	log         *zap.Logger
}

// NewInvitationService constructs an InvitationService. finishDelay is how
// long after acceptance the finish prompt is delivered.
func NewInvitationService(
	invitations repo.InvitationRepo,
	accepted repo.AcceptedTripRepo,
	trips repo.TripRepo,
	messages *MessageService,
	sched *schedule.Scheduler,
	finishDelay time.Duration,
	log *zap.Logger,
) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		accepted:    accepted,
		trips:       trips,
		messages:    messages,
		sched:       sched,
		finishDelay: finishDelay,
		log:         log,
	}
}

// SendInvitation snapshots the trip's summary fields into a new pending
// invitation and delivers the invitation card into the named conversation.
//
// Sending twice for the same trip/user pair creates two pending invitations;
// the handshake has no uniqueness rule.
func (s *InvitationService) SendInvitation(ctx context.Context, trip domain.Trip, toUser, conversationID string) (domain.TripInvitation, error) {
	inv := domain.TripInvitation{
		ID:             uuid.New(),
		TripID:         trip.ID,
		TripTitle:      trip.Title,
		Origin:         trip.Origin,
		Destination:    trip.Destination,
		DepartureTime:  trip.SetOff,
		InvitedUser:    toUser,
		ConversationID: conversationID,
		CreatedAt:      time.Now(),
	}
	if err := s.invitations.AddInvitation(ctx, inv); err != nil {
		return domain.TripInvitation{}, fmt.Errorf("service.InvitationService.SendInvitation: %w", err)
	}

	if _, err := s.messages.Send(ctx, conversationID, senderYou, invitationContent, domain.InvitationPayload{Invitation: inv}); err != nil {
		return domain.TripInvitation{}, fmt.Errorf("service.InvitationService.SendInvitation: %w", err)
	}

	s.log.Info("invitation sent",
		zap.String("trip", trip.Title),
		zap.String("to", toUser),
	)
	return inv, nil
}

// AcceptInvitation removes the invitation from the active set, creates the
// accepted-trip record, adds the counterpart as a participant, bumps the
// trip's participant count, and schedules the finish prompt.
//
// Accepting an invitation that is no longer active returns
// domain.ErrNotFound — a second accept of the same invitation can never
// double-increment the participant count.
func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID uuid.UUID) (domain.AcceptedTrip, error) {
	inv, err := s.invitations.TakeInvitation(ctx, invitationID)
	if err != nil {
		return domain.AcceptedTrip{}, fmt.Errorf("service.InvitationService.AcceptInvitation: %w", err)
	}

	at := domain.AcceptedTrip{
		ID:             uuid.New(),
		TripID:         inv.TripID,
		InvitationID:   inv.ID,
		ConversationID: inv.ConversationID,
		Status:         domain.StatusAccepted,
	}
	if err := s.accepted.Add(ctx, at); err != nil {
		return domain.AcceptedTrip{}, fmt.Errorf("service.InvitationService.AcceptInvitation: %w", err)
	}

	s.bumpParticipants(ctx, inv.TripID)

	// The original records the counterpart conversation as the participant
	// name; there is no richer identity to use.
	participant := domain.TripParticipant{Name: inv.ConversationID, JoinedAt: time.Now()}
	if err := s.accepted.AddParticipant(ctx, inv.TripID, participant); err != nil {
		return domain.AcceptedTrip{}, fmt.Errorf("service.InvitationService.AcceptInvitation: %w", err)
	}

	s.scheduleFinishPrompt(at)

	s.log.Info("invitation accepted",
		zap.String("trip_id", inv.TripID.String()),
		zap.String("conversation", inv.ConversationID),
	)
	return at, nil
}

// DeclineInvitation removes the invitation from the active set. No message
// is sent on decline.
func (s *InvitationService) DeclineInvitation(ctx context.Context, invitationID uuid.UUID) error {
	if _, err := s.invitations.TakeInvitation(ctx, invitationID); err != nil {
		return fmt.Errorf("service.InvitationService.DeclineInvitation: %w", err)
	}
	return nil
}

// SendJoinRequest creates a pending join request from requester to the
// trip's author and delivers the request card into the author's
// conversation.
func (s *InvitationService) SendJoinRequest(ctx context.Context, trip domain.Trip, requester, tripAuthor string) (domain.JoinRequest, error) {
	req := domain.JoinRequest{
		ID:             uuid.New(),
		TripID:         trip.ID,
		TripTitle:      trip.Title,
		Origin:         trip.Origin,
		Destination:    trip.Destination,
		RequesterName:  requester,
		ConversationID: tripAuthor,
		CreatedAt:      time.Now(),
	}
	if err := s.invitations.AddJoinRequest(ctx, req); err != nil {
		return domain.JoinRequest{}, fmt.Errorf("service.InvitationService.SendJoinRequest: %w", err)
	}

	if _, err := s.messages.Send(ctx, tripAuthor, requester, joinRequestContent, domain.JoinRequestPayload{Request: req}); err != nil {
		return domain.JoinRequest{}, fmt.Errorf("service.InvitationService.SendJoinRequest: %w", err)
	}

	s.log.Info("join request sent",
		zap.String("trip", trip.Title),
		zap.String("requester", requester),
	)
	return req, nil
}

// AcceptJoinRequest removes the request from the active set, adds the
// requester as a participant, bumps the trip's participant count, and sends
// the confirmation message to the requester.
func (s *InvitationService) AcceptJoinRequest(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.invitations.TakeJoinRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("service.InvitationService.AcceptJoinRequest: %w", err)
	}

	participant := domain.TripParticipant{Name: req.RequesterName, JoinedAt: time.Now()}
	if err := s.accepted.AddParticipant(ctx, req.TripID, participant); err != nil {
		return fmt.Errorf("service.InvitationService.AcceptJoinRequest: %w", err)
	}

	s.bumpParticipants(ctx, req.TripID)

	if _, err := s.messages.SendText(ctx, req.RequesterName, senderYou, joinAcceptedContent); err != nil {
		return fmt.Errorf("service.InvitationService.AcceptJoinRequest: %w", err)
	}
	return nil
}

// DeclineJoinRequest removes the request from the active set and sends the
// canned rejection message to the requester.
func (s *InvitationService) DeclineJoinRequest(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.invitations.TakeJoinRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("service.InvitationService.DeclineJoinRequest: %w", err)
	}
	if _, err := s.messages.SendText(ctx, req.RequesterName, senderYou, joinDeclinedContent); err != nil {
		return fmt.Errorf("service.InvitationService.DeclineJoinRequest: %w", err)
	}
	return nil
}

// ConfirmTripFinished advances the trip's accepted record from
// waitingConfirmation to finished and delivers the rating prompt.
func (s *InvitationService) ConfirmTripFinished(ctx context.Context, tripID uuid.UUID, conversationID string) error {
	if _, err := s.accepted.AdvanceByTrip(ctx, tripID, domain.StatusWaitingConfirmation, domain.StatusFinished); err != nil {
		return fmt.Errorf("service.InvitationService.ConfirmTripFinished: %w", err)
	}

	content := fmt.Sprintf("How was your trip with %s?", conversationID)
	if _, err := s.messages.Send(ctx, conversationID, senderSystem, content, domain.RatingPromptPayload{TripID: tripID}); err != nil {
		return fmt.Errorf("service.InvitationService.ConfirmTripFinished: %w", err)
	}
	return nil
}

// SubmitRating validates the star rating, advances the trip's accepted
// record from finished to rated, and sends the rating confirmation.
// Submitting before ConfirmTripFinished fails with
// domain.ErrInvalidTransition.
func (s *InvitationService) SubmitRating(ctx context.Context, rating int, tripID uuid.UUID, conversationID, partnerName string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("service.InvitationService.SubmitRating: %w: rating must be between 1 and 5", domain.ErrValidation)
	}

	if _, err := s.accepted.AdvanceByTrip(ctx, tripID, domain.StatusFinished, domain.StatusRated); err != nil {
		return fmt.Errorf("service.InvitationService.SubmitRating: %w", err)
	}

	content := fmt.Sprintf("Rated %d stars! Thanks for the great trip.", rating)
	if _, err := s.messages.SendText(ctx, conversationID, senderYou, content); err != nil {
		return fmt.Errorf("service.InvitationService.SubmitRating: %w", err)
	}

	// Ratings are not aggregated anywhere; the partner's profile score is
	// display-only sample data.
	s.log.Info("rating submitted",
		zap.Int("stars", rating),
		zap.String("partner", partnerName),
	)
	return nil
}

// Participants returns the participant records for the given trip.
func (s *InvitationService) Participants(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error) {
	out, err := s.accepted.Participants(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.InvitationService.Participants: %w", err)
	}
	return out, nil
}

// ActiveInvitations returns all pending invitations.
func (s *InvitationService) ActiveInvitations(ctx context.Context) ([]domain.TripInvitation, error) {
	out, err := s.invitations.ListInvitations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.InvitationService.ActiveInvitations: %w", err)
	}
	return out, nil
}

// ActiveJoinRequests returns all pending join requests.
func (s *InvitationService) ActiveJoinRequests(ctx context.Context) ([]domain.JoinRequest, error) {
	out, err := s.invitations.ListJoinRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.InvitationService.ActiveJoinRequests: %w", err)
	}
	return out, nil
}

// AcceptedTrips returns all accepted-trip lifecycle records.
func (s *InvitationService) AcceptedTrips(ctx context.Context) ([]domain.AcceptedTrip, error) {
	out, err := s.accepted.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.InvitationService.AcceptedTrips: %w", err)
	}
	return out, nil
}

// bumpParticipants increments the trip's participant count. A trip that has
// been deleted since the handshake started is logged and skipped — the
// count update simply has nowhere to land.
func (s *InvitationService) bumpParticipants(ctx context.Context, tripID uuid.UUID) {
	if _, err := s.trips.IncrementParticipants(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("participant count update skipped, trip missing",
				zap.String("trip_id", tripID.String()),
			)
			return
		}
		s.log.Error("participant count update failed",
			zap.String("trip_id", tripID.String()),
			zap.Error(err),
		)
	}
}

// scheduleFinishPrompt queues the delayed "did you finish the ride?" message
// and the accompanying advance to waitingConfirmation. If the scheduler is
// stopped before the delay elapses the transition never happens, matching
// the simulated nature of the flow.
func (s *InvitationService) scheduleFinishPrompt(at domain.AcceptedTrip) {
	s.sched.AfterFunc(s.finishDelay, func() {
		ctx := context.Background()

		if _, err := s.messages.Send(ctx, at.ConversationID, senderSystem, finishPromptContent, domain.FinishPromptPayload{TripID: at.TripID}); err != nil {
			s.log.Error("finish prompt delivery failed",
				zap.String("conversation", at.ConversationID),
				zap.Error(err),
			)
			return
		}
		if _, err := s.accepted.Advance(ctx, at.ID, domain.StatusAccepted, domain.StatusWaitingConfirmation); err != nil {
			s.log.Error("finish prompt status advance failed",
				zap.String("accepted_trip_id", at.ID.String()),
				zap.Error(err),
			)
		}
	})
}
