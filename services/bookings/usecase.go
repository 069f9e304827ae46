package bookings

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// BookingUC defines the interface for booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/churchpool/churchpool/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, passengerID uuid.UUID, req models.BookingCreateRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*models.Booking, error)
	AcceptBooking(ctx context.Context, driverID uuid.UUID, bookingID string, req models.BookingAcceptRequest) error
	RejectBooking(ctx context.Context, driverID uuid.UUID, bookingID string, req models.BookingRejectRequest) error
	CancelBooking(ctx context.Context, passengerID uuid.UUID, bookingID string) error
	ListMyBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)
	ListRideBookings(ctx context.Context, driverID uuid.UUID, rideID string) ([]*models.Booking, error)
}
