package rides

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// RideUC defines the interface for ride business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/churchpool/churchpool/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req models.RideCreateRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	CancelRide(ctx context.Context, driverID uuid.UUID, rideID string) error
	ReactivateRide(ctx context.Context, driverID uuid.UUID, rideID string) error
	UpdateSeats(ctx context.Context, driverID uuid.UUID, rideID string, seats int) error
	RepairNegativeSeats(ctx context.Context) (int64, error)
	ListByDriver(ctx context.Context, driverID string) ([]*models.Ride, error)
	SearchRides(ctx context.Context, req models.RideSearchRequest) ([]*models.Ride, error)
}
