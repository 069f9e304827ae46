package bookings

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// BookingGW defines the interface for booking event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/churchpool/churchpool/services/bookings BookingGW,EmailGW
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event models.BookingEvent) error
	PublishBookingAccepted(ctx context.Context, event models.BookingEvent) error
	PublishBookingRejected(ctx context.Context, event models.BookingEvent) error
	PublishBookingCancelled(ctx context.Context, event models.BookingEvent) error
}

// EmailGW delivers notification mail through the configured provider
type EmailGW interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}
