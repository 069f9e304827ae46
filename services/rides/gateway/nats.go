package gateway

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
)

// RideGW implements the ride gateway
type RideGW struct {
	producer *natspkg.Producer
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) *RideGW {
	return &RideGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishRideCancelled publishes a ride.cancelled event
func (g *RideGW) PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent) error {
	return g.producer.Publish(constants.SubjectRideCancelled, event)
}
