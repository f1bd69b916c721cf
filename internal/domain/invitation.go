package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripInvitation is an outbound offer from a trip author inviting a specific
// user to join. The trip's summary fields are snapshotted at send time so the
// card renders even if the trip is later edited.
//
// Conversations are keyed by the counterpart's display name, not a stable
// user ID. Two distinct users sharing a display name would collide; the
// upstream data model has no stable identity to key on, so this weakness is
// carried as-is rather than papered over.
type TripInvitation struct {
	ID             uuid.UUID
	TripID         uuid.UUID
	TripTitle      string
	Origin         string
	Destination    string
	DepartureTime  string
	InvitedUser    string
	ConversationID string
	CreatedAt      time.Time
}

// JoinRequest is the mirror image of TripInvitation: an inbound ask from a
// non-owner wanting to join an existing trip. ConversationID is the trip
// author's conversation, where the request card is delivered.
type JoinRequest struct {
	ID             uuid.UUID
	TripID         uuid.UUID
	TripTitle      string
	Origin         string
	Destination    string
	RequesterName  string
	ConversationID string
	CreatedAt      time.Time
}

// TripStatus is the lifecycle position of an AcceptedTrip.
// The machine is strictly forward with no cancellation path.
type TripStatus string

const (
	StatusAccepted            TripStatus = "accepted"
	StatusWaitingConfirmation TripStatus = "waiting_confirmation"
	StatusFinished            TripStatus = "finished"
	StatusRated               TripStatus = "rated"
)

// AcceptedTrip tracks a trip's post-acceptance lifecycle for one handshake:
// which invitation produced it, which conversation it plays out in, and how
// far along the accepted → waitingConfirmation → finished → rated sequence
// it has advanced.
type AcceptedTrip struct {
	ID             uuid.UUID
	TripID         uuid.UUID
	InvitationID   uuid.UUID
	ConversationID string
	Status         TripStatus
}

// TripParticipant records one person on board a trip and when they joined.
type TripParticipant struct {
	ID       uuid.UUID
	Name     string
	JoinedAt time.Time
}
