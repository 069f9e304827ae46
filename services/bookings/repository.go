package bookings

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations.
// Seat accounting and status changes for a single booking always happen
// in one transaction so the ride's seat counter and the booking status
// cannot drift apart.
type BookingRepo interface {
	// CreateBooking reserves the requested seats with an atomic
	// conditional decrement and inserts the booking in the same
	// transaction. Returns models.ErrInsufficientSeats when the ride
	// cannot satisfy the request and models.ErrRideNotFound when the
	// ride does not exist or is not active.
	CreateBooking(ctx context.Context, booking *models.Booking) error

	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// AcceptBooking moves a booking to accepted from the given prior
	// status. When reserveSeats is true (re-acceptance after a
	// rejection) the seats are re-reserved with the same conditional
	// decrement used at creation.
	AcceptBooking(ctx context.Context, bookingID string, from models.BookingStatus, note *string, rideID string, seats int, reserveSeats bool) error

	// RejectBooking moves a booking to rejected and releases its seats
	// back to the ride in the same transaction.
	RejectBooking(ctx context.Context, bookingID string, from models.BookingStatus, reason string, rideID string, seats int) error

	// CancelBooking moves a pending booking to cancelled and releases
	// its seats back to the ride.
	CancelBooking(ctx context.Context, bookingID string, rideID string, seats int) error

	// ArchiveExpired moves pending bookings whose ride departure has
	// passed to archived. Idempotent; returns the number archived.
	ArchiveExpired(ctx context.Context) (int64, error)

	ListBookingsByPassenger(ctx context.Context, passengerID string) ([]*models.Booking, error)
	ListBookingsByRide(ctx context.Context, rideID string) ([]*models.Booking, error)
}

// RideReader gives the booking flow read access to rides
type RideReader interface {
	GetRideByID(ctx context.Context, rideID string) (*models.Ride, error)
}

// UserReader resolves actor names and notification addresses
type UserReader interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
