package rides

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, rideID string) (*models.Ride, error)
	UpdateRideStatus(ctx context.Context, rideID string, status models.RideStatus) error
	CancelRideWithBookings(ctx context.Context, rideID string) error
	SetAvailableSeats(ctx context.Context, rideID string, seats int) error
	ClampNegativeSeats(ctx context.Context) (int64, error)
	ListRidesByDriver(ctx context.Context, driverID string) ([]*models.Ride, error)
	SearchRides(ctx context.Context, req models.RideSearchRequest, geohashPrefixes []string, maxResults int) ([]*models.Ride, error)
}

// VehicleRepo provides the driver's registered vehicle, which bounds
// the seat capacity of any ride the driver publishes.
type VehicleRepo interface {
	GetVehicle(ctx context.Context, userID string) (*models.Vehicle, error)
}
