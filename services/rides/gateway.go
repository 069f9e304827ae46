package rides

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/churchpool/churchpool/services/rides RideGW
type RideGW interface {
	PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent) error
}
