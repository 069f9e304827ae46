package gateway

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
)

// BookingGW implements the booking event gateway
type BookingGW struct {
	producer *natspkg.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(client *natspkg.Client) *BookingGW {
	return &BookingGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishBookingCreated publishes a booking.created event
func (g *BookingGW) PublishBookingCreated(ctx context.Context, event models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingCreated, event)
}

// PublishBookingAccepted publishes a booking.accepted event
func (g *BookingGW) PublishBookingAccepted(ctx context.Context, event models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingAccepted, event)
}

// PublishBookingRejected publishes a booking.rejected event
func (g *BookingGW) PublishBookingRejected(ctx context.Context, event models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingRejected, event)
}

// PublishBookingCancelled publishes a booking.cancelled event
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, event models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingCancelled, event)
}
