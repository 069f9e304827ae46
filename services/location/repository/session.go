package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionRepo implements location.SessionRepo against PostgreSQL
type SessionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSessionRepository creates a new sharing session repository
func NewSessionRepository(cfg *models.Config, db *sqlx.DB) *SessionRepo {
	return &SessionRepo{
		cfg: cfg,
		db:  db,
	}
}

const sessionColumns = `
	id, booking_id, driver_id, passenger_id, sharing_user_id, sharing_user_type,
	is_active, latitude, longitude, accuracy, location_timestamp, start_time, end_time
`

// sessionRow carries the flattened position columns alongside the model
type sessionRow struct {
	models.LocationSharing
	Latitude          float64   `db:"latitude"`
	Longitude         float64   `db:"longitude"`
	Accuracy          float64   `db:"accuracy"`
	LocationTimestamp time.Time `db:"location_timestamp"`
}

func (r *sessionRow) toSession() *models.LocationSharing {
	session := r.LocationSharing
	session.LastLocation = models.Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Accuracy:  r.Accuracy,
		Timestamp: r.LocationTimestamp,
	}
	return &session
}

// CreateSession inserts a new active sharing session
func (r *SessionRepo) CreateSession(ctx context.Context, session *models.LocationSharing) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO location_sharing (
			id, booking_id, driver_id, passenger_id, sharing_user_id, sharing_user_type,
			is_active, latitude, longitude, accuracy, location_timestamp, start_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		session.ID, session.BookingID, session.DriverID, session.PassengerID,
		session.SharingUserID, session.SharingUserType, session.IsActive,
		session.LastLocation.Latitude, session.LastLocation.Longitude,
		session.LastLocation.Accuracy, session.LastLocation.Timestamp, session.StartTime)
	if err != nil {
		return fmt.Errorf("failed to create sharing session: %w", err)
	}

	return nil
}

// GetActiveSession returns the active session for the (booking, sharing
// user) pair. The partial unique index guarantees at most one row.
func (r *SessionRepo) GetActiveSession(ctx context.Context, bookingID, sharingUserID uuid.UUID) (*models.LocationSharing, error) {
	query := `SELECT ` + sessionColumns + ` FROM location_sharing
		WHERE booking_id = $1 AND sharing_user_id = $2 AND is_active`

	var row sessionRow
	if err := r.db.GetContext(ctx, &row, query, bookingID, sharingUserID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking %s: %w", bookingID, models.ErrSessionNotFound)
		}
		return nil, err
	}

	return row.toSession(), nil
}

// GetSessionByID retrieves a sharing session by ID
func (r *SessionRepo) GetSessionByID(ctx context.Context, sessionID string) (*models.LocationSharing, error) {
	query := `SELECT ` + sessionColumns + ` FROM location_sharing WHERE id = $1`

	var row sessionRow
	if err := r.db.GetContext(ctx, &row, query, sessionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s: %w", sessionID, models.ErrSessionNotFound)
		}
		return nil, err
	}

	return row.toSession(), nil
}

// ListActiveSessionsByBooking returns every active session on a booking.
// At most one per party exists, so the result holds zero to two rows.
func (r *SessionRepo) ListActiveSessionsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*models.LocationSharing, error) {
	query := `SELECT ` + sessionColumns + ` FROM location_sharing
		WHERE booking_id = $1 AND is_active
		ORDER BY start_time ASC`

	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to list sharing sessions: %w", err)
	}

	sessions := make([]*models.LocationSharing, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, rows[i].toSession())
	}

	return sessions, nil
}

// RefreshSession restarts an active session in place with a fresh
// position and start time.
func (r *SessionRepo) RefreshSession(ctx context.Context, sessionID uuid.UUID, location models.Location, startTime time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE location_sharing
		SET latitude = $1, longitude = $2, accuracy = $3, location_timestamp = $4, start_time = $5
		WHERE id = $6 AND is_active`,
		location.Latitude, location.Longitude, location.Accuracy, location.Timestamp,
		startTime, sessionID)
	if err != nil {
		return fmt.Errorf("failed to refresh sharing session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("session %s: %w", sessionID, models.ErrSessionNotFound)
	}

	return nil
}

// UpdateSessionLocation overwrites the session's last position
func (r *SessionRepo) UpdateSessionLocation(ctx context.Context, sessionID uuid.UUID, location models.Location) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE location_sharing
		SET latitude = $1, longitude = $2, accuracy = $3, location_timestamp = $4
		WHERE id = $5 AND is_active`,
		location.Latitude, location.Longitude, location.Accuracy, location.Timestamp, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session location: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("session %s: %w", sessionID, models.ErrSessionNotFound)
	}

	return nil
}

// StopSession deactivates the session. Already stopped sessions are
// left untouched so repeated stops are safe.
func (r *SessionRepo) StopSession(ctx context.Context, sessionID uuid.UUID, endTime time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE location_sharing
		SET is_active = FALSE, end_time = $1
		WHERE id = $2 AND is_active`,
		endTime, sessionID)
	if err != nil {
		return fmt.Errorf("failed to stop sharing session: %w", err)
	}

	return nil
}
