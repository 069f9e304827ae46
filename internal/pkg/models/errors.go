package models

import "errors"

// Domain errors shared across services. Repositories return them wrapped
// so callers can match with errors.Is and handlers can map them to HTTP
// status codes.
var (
	ErrRideNotFound         = errors.New("ride not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrSessionNotFound      = errors.New("sharing session not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrNotParticipant    = errors.New("user is not a participant")
	ErrNotOwner          = errors.New("user does not own this resource")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
