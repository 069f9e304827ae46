package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// BookingRepo implements bookings.BookingRepo against PostgreSQL
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	id, ride_id, passenger_id, booking_date, status, seats_booked,
	special_notes, driver_response_note, rejection_reason,
	created_at, updated_at
`

// reserveSeats performs the atomic conditional decrement on the ride's
// seat counter. The WHERE clause is the whole consistency story:
// concurrent reservations serialize on the row and the losing request
// sees zero rows affected instead of driving the counter negative.
func reserveSeats(ctx context.Context, tx *sqlx.Tx, rideID string, seats int) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE rides
		SET available_seats = available_seats - $1, updated_at = now()
		WHERE id = $2 AND status = $3 AND available_seats >= $1`,
		seats, rideID, models.RideStatusActive)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// Distinguish a missing or off-market ride from a full one
	var status models.RideStatus
	err = tx.GetContext(ctx, &status, `SELECT status FROM rides WHERE id = $1`, rideID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("ride %s: %w", rideID, models.ErrRideNotFound)
	}
	if err != nil {
		return err
	}
	if status != models.RideStatusActive {
		return fmt.Errorf("ride %s is %s: %w", rideID, status, models.ErrRideNotFound)
	}
	return fmt.Errorf("ride %s: %w", rideID, models.ErrInsufficientSeats)
}

// releaseSeats credits seats back to the ride. Callers invoke it exactly
// once per reservation being relinquished.
func releaseSeats(ctx context.Context, tx *sqlx.Tx, rideID string, seats int) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE rides
		SET available_seats = available_seats + $1, updated_at = now()
		WHERE id = $2`,
		seats, rideID)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}
	return nil
}

// transitionBooking applies a guarded status change. Zero rows affected
// means the booking vanished or its status changed underneath us.
func transitionBooking(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrInvalidTransition
	}
	return nil
}

// CreateBooking reserves seats and inserts the pending booking atomically
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := reserveSeats(ctx, tx, booking.RideID.String(), booking.SeatsBooked); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (
			id, ride_id, passenger_id, booking_date, status, seats_booked,
			special_notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		booking.ID,
		booking.RideID,
		booking.PassengerID,
		booking.BookingDate,
		booking.Status,
		booking.SeatsBooked,
		booking.SpecialNotes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return tx.Commit()
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, bookingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking %s: %w", bookingID, models.ErrBookingNotFound)
		}
		return nil, err
	}

	return &booking, nil
}

// AcceptBooking moves a booking to accepted. On re-acceptance after a
// rejection the seats are reserved again before the status flips, so a
// ride that filled up in the meantime refuses the transition.
func (r *BookingRepo) AcceptBooking(ctx context.Context, bookingID string, from models.BookingStatus, note *string, rideID string, seats int, reserveSeatsAgain bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if reserveSeatsAgain {
		if err := reserveSeats(ctx, tx, rideID, seats); err != nil {
			return err
		}
	}

	err = transitionBooking(ctx, tx, `
		UPDATE bookings
		SET status = $1, driver_response_note = $2, updated_at = now()
		WHERE id = $3 AND status = $4`,
		models.BookingStatusAccepted, note, bookingID, from)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RejectBooking moves a booking to rejected and restores its seats to
// the ride. Seats are released from both pending and accepted since a
// reservation is held from creation time either way.
func (r *BookingRepo) RejectBooking(ctx context.Context, bookingID string, from models.BookingStatus, reason string, rideID string, seats int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = transitionBooking(ctx, tx, `
		UPDATE bookings
		SET status = $1, rejection_reason = $2, updated_at = now()
		WHERE id = $3 AND status = $4`,
		models.BookingStatusRejected, reason, bookingID, from)
	if err != nil {
		return err
	}

	if err := releaseSeats(ctx, tx, rideID, seats); err != nil {
		return err
	}

	return tx.Commit()
}

// CancelBooking moves a pending booking to cancelled and restores its
// seats to the ride.
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID string, rideID string, seats int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = transitionBooking(ctx, tx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		models.BookingStatusCancelled, bookingID, models.BookingStatusPending)
	if err != nil {
		return err
	}

	if err := releaseSeats(ctx, tx, rideID, seats); err != nil {
		return err
	}

	return tx.Commit()
}

// ArchiveExpired moves pending bookings on departed rides to archived.
// No seat release happens; the ride is in the past either way.
func (r *BookingRepo) ArchiveExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		FROM rides
		WHERE bookings.ride_id = rides.id
		  AND bookings.status = $2
		  AND rides.departure_time < now()`,
		models.BookingStatusArchived, models.BookingStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to archive expired bookings: %w", err)
	}

	return result.RowsAffected()
}

// ListBookingsByPassenger retrieves all bookings made by a passenger
func (r *BookingRepo) ListBookingsByPassenger(ctx context.Context, passengerID string) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE passenger_id = $1 ORDER BY created_at DESC`

	var result []*models.Booking
	if err := r.db.SelectContext(ctx, &result, query, passengerID); err != nil {
		return nil, err
	}

	return result, nil
}

// ListBookingsByRide retrieves all bookings on a ride
func (r *BookingRepo) ListBookingsByRide(ctx context.Context, rideID string) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ride_id = $1 ORDER BY created_at ASC`

	var result []*models.Booking
	if err := r.db.SelectContext(ctx, &result, query, rideID); err != nil {
		return nil, err
	}

	return result, nil
}
