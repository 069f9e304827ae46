package gateway

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
)

// LocationGW implements the location gateway
type LocationGW struct {
	producer *natspkg.Producer
}

// NewLocationGW creates a new location gateway
func NewLocationGW(client *natspkg.Client) *LocationGW {
	return &LocationGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishLocationUpdate publishes a location.update event
func (g *LocationGW) PublishLocationUpdate(ctx context.Context, event models.LocationUpdateEvent) error {
	return g.producer.Publish(constants.SubjectLocationUpdate, event)
}
