package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind identifies the payload variant carried by a Message.
type MessageKind string

const (
	KindText         MessageKind = "text"
	KindLink         MessageKind = "link"
	KindInvitation   MessageKind = "invitation"
	KindJoinRequest  MessageKind = "join_request"
	KindFinishPrompt MessageKind = "finish_prompt"
	KindRatingPrompt MessageKind = "rating_prompt"
)

// Payload is the tagged variant carried by a chat message. Exactly one
// concrete type exists per MessageKind; processing and rendering sites
// switch on the concrete type for exhaustive handling.
type Payload interface {
	Kind() MessageKind
}

// TextPayload marks a plain text message. The text itself lives in
// Message.Content.
type TextPayload struct{}

func (TextPayload) Kind() MessageKind { return KindText }

// LinkPayload carries a shared deep link (see TripLink / ParseTripLink).
type LinkPayload struct {
	URL string
}

func (LinkPayload) Kind() MessageKind { return KindLink }

// InvitationPayload embeds a partner invitation card in the conversation.
type InvitationPayload struct {
	Invitation TripInvitation
}

func (InvitationPayload) Kind() MessageKind { return KindInvitation }

// JoinRequestPayload embeds a join-request card in the conversation.
type JoinRequestPayload struct {
	Request JoinRequest
}

func (JoinRequestPayload) Kind() MessageKind { return KindJoinRequest }

// FinishPromptPayload asks the user to confirm a trip actually happened.
type FinishPromptPayload struct {
	TripID uuid.UUID
}

func (FinishPromptPayload) Kind() MessageKind { return KindFinishPrompt }

// RatingPromptPayload asks the user to rate a finished trip.
type RatingPromptPayload struct {
	TripID uuid.UUID
}

func (RatingPromptPayload) Kind() MessageKind { return KindRatingPrompt }

// Message is a single entry in a conversation log. Messages are append-only
// and ordered; the snowflake ID preserves send order even across
// conversations.
type Message struct {
	ID      int64
	Sender  string
	Content string
	SentAt  time.Time
	Payload Payload
}

// ConversationPreview is the list-view summary of one conversation:
// the counterpart's name and the (possibly truncated) last message body.
type ConversationPreview struct {
	Name        string
	LastMessage string
	LastAt      time.Time
}
