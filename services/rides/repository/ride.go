package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// RideRepo implements rides.RideRepo against PostgreSQL
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// rideRow carries the waypoints JSONB column alongside the ride fields
type rideRow struct {
	models.Ride
	WaypointsRaw []byte `db:"waypoints"`
}

func (r rideRow) toRide() (*models.Ride, error) {
	ride := r.Ride
	if len(r.WaypointsRaw) > 0 {
		if err := json.Unmarshal(r.WaypointsRaw, &ride.Waypoints); err != nil {
			return nil, fmt.Errorf("invalid waypoints payload: %w", err)
		}
	}
	return &ride, nil
}

const rideColumns = `
	id, driver_id, church_id,
	departure_address, departure_lat, departure_lng, departure_geohash,
	arrival_address, arrival_lat, arrival_lng, arrival_geohash,
	departure_time, available_seats, status, price, recurrence, waypoints,
	created_at, updated_at
`

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	waypoints := []byte("[]")
	if ride.Waypoints != nil {
		var err error
		waypoints, err = json.Marshal(ride.Waypoints)
		if err != nil {
			return fmt.Errorf("failed to marshal waypoints: %w", err)
		}
	}

	query := `
		INSERT INTO rides (
			id, driver_id, church_id,
			departure_address, departure_lat, departure_lng, departure_geohash,
			arrival_address, arrival_lat, arrival_lng, arrival_geohash,
			departure_time, available_seats, status, price, recurrence, waypoints,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.ID,
		ride.DriverID,
		ride.ChurchID,
		ride.DepartureAddress,
		ride.DepartureLat,
		ride.DepartureLng,
		ride.DepartureGeohash,
		ride.ArrivalAddress,
		ride.ArrivalLat,
		ride.ArrivalLng,
		ride.ArrivalGeohash,
		ride.DepartureTime,
		ride.AvailableSeats,
		ride.Status,
		ride.Price,
		ride.Recurrence,
		waypoints,
		ride.CreatedAt,
		ride.UpdatedAt,
	)

	return err
}

// GetRideByID retrieves a ride by ID
func (r *RideRepo) GetRideByID(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var row rideRow
	if err := r.db.GetContext(ctx, &row, query, rideID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ride %s: %w", rideID, models.ErrRideNotFound)
		}
		return nil, err
	}

	return row.toRide()
}

// UpdateRideStatus updates the status of a ride
func (r *RideRepo) UpdateRideStatus(ctx context.Context, rideID string, status models.RideStatus) error {
	query := `UPDATE rides SET status = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, rideID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("ride %s: %w", rideID, models.ErrRideNotFound)
	}

	return nil
}

// CancelRideWithBookings cancels a ride and force-sets every booking
// referencing it to cancelled in the same transaction. No seat
// reconciliation happens here: the ride is off the market.
func (r *RideRepo) CancelRideWithBookings(ctx context.Context, rideID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE rides SET status = $1, updated_at = now() WHERE id = $2`,
		models.RideStatusCancelled, rideID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("ride %s: %w", rideID, models.ErrRideNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = now() WHERE ride_id = $2 AND status != $1`,
		models.BookingStatusCancelled, rideID)
	if err != nil {
		return fmt.Errorf("failed to cascade cancellation to bookings: %w", err)
	}

	return tx.Commit()
}

// SetAvailableSeats overrides the seat count directly. This is the
// driver-edit path and deliberately bypasses the seat ledger.
func (r *RideRepo) SetAvailableSeats(ctx context.Context, rideID string, seats int) error {
	query := `UPDATE rides SET available_seats = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, seats, rideID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("ride %s: %w", rideID, models.ErrRideNotFound)
	}

	return nil
}

// ClampNegativeSeats repairs rides whose seat counter went negative,
// clamping them back to zero. Returns the number of rides repaired.
func (r *RideRepo) ClampNegativeSeats(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE rides SET available_seats = 0, updated_at = now() WHERE available_seats < 0`)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// ListRidesByDriver retrieves all rides published by a driver
func (r *RideRepo) ListRidesByDriver(ctx context.Context, driverID string) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY departure_time DESC`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, driverID); err != nil {
		return nil, err
	}

	rides := make([]*models.Ride, 0, len(rows))
	for _, row := range rows {
		ride, err := row.toRide()
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}

	return rides, nil
}

// SearchRides retrieves active future rides matching the filter. When
// geohash prefixes are given the scan is bounded to those cells; exact
// radius filtering happens in the use case with Haversine distances.
func (r *RideRepo) SearchRides(ctx context.Context, req models.RideSearchRequest, geohashPrefixes []string, maxResults int) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE status = ? AND departure_time > now()`
	args := []interface{}{models.RideStatusActive}

	if req.ChurchID != "" {
		query += ` AND church_id = ?`
		args = append(args, req.ChurchID)
	}
	if req.From != nil {
		query += ` AND departure_time >= ?`
		args = append(args, *req.From)
	}
	if req.To != nil {
		query += ` AND departure_time <= ?`
		args = append(args, *req.To)
	}
	if len(geohashPrefixes) > 0 {
		prefixLen := len(geohashPrefixes[0])
		query += fmt.Sprintf(` AND substr(departure_geohash, 1, %d) IN (?)`, prefixLen)
		args = append(args, geohashPrefixes)
	}
	query += ` ORDER BY departure_time ASC LIMIT ?`
	args = append(args, maxResults)

	expanded, expandedArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}
	expanded = r.db.Rebind(expanded)

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, expanded, expandedArgs...); err != nil {
		return nil, err
	}

	rides := make([]*models.Ride, 0, len(rows))
	for _, row := range rows {
		ride, err := row.toRide()
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}

	return rides, nil
}
