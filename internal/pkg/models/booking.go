package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusArchived  BookingStatus = "archived"
)

// Booking represents a passenger's request to occupy seats on a ride.
// SeatsBooked is fixed at creation; only the status and response note
// fields mutate afterwards.
type Booking struct {
	ID                 uuid.UUID     `json:"id" db:"id"`
	RideID             uuid.UUID     `json:"ride_id" db:"ride_id"`
	PassengerID        uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	BookingDate        time.Time     `json:"booking_date" db:"booking_date"`
	Status             BookingStatus `json:"status" db:"status"`
	SeatsBooked        int           `json:"seats_booked" db:"seats_booked"`
	SpecialNotes       *string       `json:"special_notes,omitempty" db:"special_notes"`
	DriverResponseNote *string       `json:"driver_response_note,omitempty" db:"driver_response_note"`
	RejectionReason    *string       `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingCreateRequest is the payload for reserving seats on a ride
type BookingCreateRequest struct {
	RideID       string  `json:"ride_id"`
	SeatsBooked  int     `json:"seats_booked"`
	SpecialNotes *string `json:"special_notes,omitempty"`
}

// BookingAcceptRequest carries the driver's optional response note
type BookingAcceptRequest struct {
	DriverResponseNote *string `json:"driver_response_note,omitempty"`
}

// BookingRejectRequest carries the mandatory rejection reason
type BookingRejectRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

// BookingEvent is published on every booking state transition
type BookingEvent struct {
	BookingID   string        `json:"booking_id"`
	RideID      string        `json:"ride_id"`
	DriverID    string        `json:"driver_id"`
	PassengerID string        `json:"passenger_id"`
	Status      BookingStatus `json:"status"`
	SeatsBooked int           `json:"seats_booked"`
	ActorID     string        `json:"actor_id"`
	ActorName   string        `json:"actor_name"`
	OccurredAt  time.Time     `json:"occurred_at"`
}
