package location

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// LocationGW defines the interface for publishing location events
type LocationGW interface {
	PublishLocationUpdate(ctx context.Context, event models.LocationUpdateEvent) error
}
