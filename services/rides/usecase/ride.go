package usecase

import (
	"context"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/metrics"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/churchpool/churchpool/services/rides"
	"github.com/google/uuid"
)

// RideUC implements the ride business logic
type RideUC struct {
	cfg         *models.Config
	rideRepo    rides.RideRepo
	vehicleRepo rides.VehicleRepo
	rideGW      rides.RideGW
}

// NewRideUC creates a new ride usecase
func NewRideUC(cfg *models.Config, rideRepo rides.RideRepo, vehicleRepo rides.VehicleRepo, rideGW rides.RideGW) *RideUC {
	return &RideUC{
		cfg:         cfg,
		rideRepo:    rideRepo,
		vehicleRepo: vehicleRepo,
		rideGW:      rideGW,
	}
}

// CreateRide publishes a new ride for a driver. Seat count is bounded
// by the driver's registered vehicle capacity.
func (uc *RideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req models.RideCreateRequest) (*models.Ride, error) {
	if req.AvailableSeats < 1 {
		return nil, fmt.Errorf("available seats must be at least 1")
	}
	if req.DepartureTime.Before(models.Now()) {
		return nil, fmt.Errorf("departure time must be in the future")
	}

	vehicle, err := uc.vehicleRepo.GetVehicle(ctx, driverID.String())
	if err != nil {
		return nil, fmt.Errorf("driver has no registered vehicle: %w", err)
	}
	if req.AvailableSeats > vehicle.Seats {
		return nil, fmt.Errorf("available seats %d exceed vehicle capacity %d", req.AvailableSeats, vehicle.Seats)
	}

	churchID, err := uuid.Parse(req.ChurchID)
	if err != nil {
		return nil, fmt.Errorf("invalid church ID: %w", err)
	}

	now := models.Now()
	precision := uc.cfg.Search.GeohashPrecision
	ride := &models.Ride{
		ID:               uuid.New(),
		DriverID:         driverID,
		ChurchID:         churchID,
		DepartureAddress: req.DepartureAddress,
		DepartureLat:     req.DepartureLat,
		DepartureLng:     req.DepartureLng,
		DepartureGeohash: utils.EncodeLocation(req.DepartureLat, req.DepartureLng, precision),
		ArrivalAddress:   req.ArrivalAddress,
		ArrivalLat:       req.ArrivalLat,
		ArrivalLng:       req.ArrivalLng,
		ArrivalGeohash:   utils.EncodeLocation(req.ArrivalLat, req.ArrivalLng, precision),
		DepartureTime:    req.DepartureTime.UTC(),
		AvailableSeats:   req.AvailableSeats,
		Status:           models.RideStatusActive,
		Price:            req.Price,
		Recurrence:       req.Recurrence,
		Waypoints:        req.Waypoints,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	metrics.RidesCreated.Inc()
	logger.InfoCtx(ctx, "Ride published",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int("available_seats", ride.AvailableSeats))

	return ride, nil
}

// GetRide retrieves a ride by ID
func (uc *RideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.rideRepo.GetRideByID(ctx, rideID)
}

// CancelRide cancels a ride and cascades cancellation to every booking
// on it, then publishes a ride.cancelled event.
func (uc *RideUC) CancelRide(ctx context.Context, driverID uuid.UUID, rideID string) error {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return models.ErrNotOwner
	}
	if ride.Status == models.RideStatusCancelled {
		return nil
	}

	if err := uc.rideRepo.CancelRideWithBookings(ctx, rideID); err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}

	metrics.RidesCancelled.Inc()
	logger.InfoCtx(ctx, "Ride cancelled",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID.String()))

	event := models.RideCancelledEvent{
		RideID:      rideID,
		DriverID:    driverID.String(),
		CancelledAt: models.Now(),
	}
	if err := uc.rideGW.PublishRideCancelled(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish ride cancelled event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	return nil
}

// ReactivateRide puts a cancelled ride back on the market, provided its
// departure is still in the future. Bookings cancelled by the cascade
// stay cancelled; passengers must request again.
func (uc *RideUC) ReactivateRide(ctx context.Context, driverID uuid.UUID, rideID string) error {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return models.ErrNotOwner
	}
	if ride.Status == models.RideStatusActive {
		return nil
	}
	if ride.DepartureTime.Before(models.Now()) {
		return fmt.Errorf("cannot reactivate a ride whose departure has passed")
	}

	return uc.rideRepo.UpdateRideStatus(ctx, rideID, models.RideStatusActive)
}

// UpdateSeats overrides the available seat count on a ride. The new
// count is still bounded by the vehicle capacity.
func (uc *RideUC) UpdateSeats(ctx context.Context, driverID uuid.UUID, rideID string, seats int) error {
	if seats < 0 {
		return fmt.Errorf("available seats cannot be negative")
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return models.ErrNotOwner
	}

	vehicle, err := uc.vehicleRepo.GetVehicle(ctx, driverID.String())
	if err == nil && seats > vehicle.Seats {
		return fmt.Errorf("available seats %d exceed vehicle capacity %d", seats, vehicle.Seats)
	}

	return uc.rideRepo.SetAvailableSeats(ctx, rideID, seats)
}

// RepairNegativeSeats clamps any negative seat counters back to zero
func (uc *RideUC) RepairNegativeSeats(ctx context.Context) (int64, error) {
	repaired, err := uc.rideRepo.ClampNegativeSeats(ctx)
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		logger.WarnCtx(ctx, "Repaired negative seat counters",
			logger.Int64("rides", repaired))
	}
	return repaired, nil
}

// ListByDriver retrieves all rides published by a driver
func (uc *RideUC) ListByDriver(ctx context.Context, driverID string) ([]*models.Ride, error) {
	return uc.rideRepo.ListRidesByDriver(ctx, driverID)
}

// SearchRides retrieves active future rides matching the filter. When
// coordinates are given the candidate set is bounded by geohash cells
// and then refined by exact Haversine distance.
func (uc *RideUC) SearchRides(ctx context.Context, req models.RideSearchRequest) ([]*models.Ride, error) {
	var prefixes []string
	radius := req.RadiusKm
	if radius <= 0 {
		radius = uc.cfg.Search.DefaultRadiusKm
	}

	proximity := req.Latitude != nil && req.Longitude != nil
	if proximity {
		prefixes = utils.CoverageGeohashes(*req.Latitude, *req.Longitude, uc.cfg.Search.GeohashPrecision)
	}

	results, err := uc.rideRepo.SearchRides(ctx, req, prefixes, uc.cfg.Search.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}

	if !proximity {
		return results, nil
	}

	origin := utils.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	filtered := make([]*models.Ride, 0, len(results))
	for _, ride := range results {
		departure := utils.GeoPoint{Latitude: ride.DepartureLat, Longitude: ride.DepartureLng}
		if utils.CalculateDistance(origin, departure) <= radius {
			filtered = append(filtered, ride)
		}
	}

	return filtered, nil
}
