package models

import (
	"time"

	"github.com/google/uuid"
)

// SharerType identifies which side of a booking is broadcasting
type SharerType string

const (
	SharerTypeDriver    SharerType = "driver"
	SharerTypePassenger SharerType = "passenger"
)

// Location is a single position sample
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty" db:"accuracy"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationSharing is an ephemeral, booking-scoped position broadcast.
// At most one active session exists per (booking, sharing user) pair;
// sessions are deactivated on stop, never deleted.
type LocationSharing struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	BookingID       uuid.UUID  `json:"booking_id" db:"booking_id"`
	DriverID        uuid.UUID  `json:"driver_id" db:"driver_id"`
	PassengerID     uuid.UUID  `json:"passenger_id" db:"passenger_id"`
	SharingUserID   uuid.UUID  `json:"sharing_user_id" db:"sharing_user_id"`
	SharingUserType SharerType `json:"sharing_user_type" db:"sharing_user_type"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	LastLocation    Location   `json:"last_location" db:"-"`
	StartTime       time.Time  `json:"start_time" db:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty" db:"end_time"`
}

// LocationStartRequest begins (or refreshes) a sharing session
type LocationStartRequest struct {
	BookingID       string     `json:"booking_id"`
	SharingUserType SharerType `json:"sharing_user_type"`
	Location        Location   `json:"location"`
}

// LocationUpdateRequest overwrites the session's last position
type LocationUpdateRequest struct {
	Location Location `json:"location"`
}

// LocationUpdateEvent is published on each position sample so the
// websocket hub can push it to the booking's other party.
type LocationUpdateEvent struct {
	SessionID       string     `json:"session_id"`
	BookingID       string     `json:"booking_id"`
	SharingUserID   string     `json:"sharing_user_id"`
	SharingUserType SharerType `json:"sharing_user_type"`
	Recipients      []string   `json:"recipients"`
	Location        Location   `json:"location"`
}
