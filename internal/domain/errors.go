package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the store (trip, invitation, accepted trip).
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, rating out of range).
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition is returned when an accepted trip is asked to move
// through its lifecycle out of order, e.g. submitting a rating before the
// trip has been confirmed finished. The lifecycle is strictly forward:
// accepted → waitingConfirmation → finished → rated.
var ErrInvalidTransition = errors.New("invalid status transition")
