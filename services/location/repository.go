package location

import (
	"context"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// SessionRepo defines the interface for sharing session persistence.
// Sessions are deactivated on stop, never deleted, so the partial
// unique index on (booking_id, sharing_user_id) only guards active rows.
type SessionRepo interface {
	CreateSession(ctx context.Context, session *models.LocationSharing) error

	// GetActiveSession returns the single active session for the
	// (booking, sharing user) pair, or models.ErrSessionNotFound.
	GetActiveSession(ctx context.Context, bookingID, sharingUserID uuid.UUID) (*models.LocationSharing, error)

	GetSessionByID(ctx context.Context, sessionID string) (*models.LocationSharing, error)

	// ListActiveSessionsByBooking returns the active sessions on a
	// booking, at most one per party.
	ListActiveSessionsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*models.LocationSharing, error)

	// RefreshSession restarts an existing active session in place with a
	// fresh position and start time.
	RefreshSession(ctx context.Context, sessionID uuid.UUID, location models.Location, startTime time.Time) error

	// UpdateSessionLocation overwrites the session's last position.
	// Returns models.ErrSessionNotFound when the session is missing or
	// no longer active.
	UpdateSessionLocation(ctx context.Context, sessionID uuid.UUID, location models.Location) error

	// StopSession deactivates the session and stamps its end time.
	// Stopping an already stopped session is a no-op.
	StopSession(ctx context.Context, sessionID uuid.UUID, endTime time.Time) error
}

// LiveLocationRepo keeps the hot copy of each active sharer's position
// in Redis so reads during a trip never hit PostgreSQL.
type LiveLocationRepo interface {
	StoreSample(ctx context.Context, sessionID string, location models.Location) error
	GetLastSample(ctx context.Context, sessionID string) (*models.Location, error)
	RemoveSharer(ctx context.Context, sessionID string) error
}

// BookingReader gives the sharing flow read access to bookings
type BookingReader interface {
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
}

// RideReader resolves the driver side of a booking
type RideReader interface {
	GetRideByID(ctx context.Context, rideID string) (*models.Ride, error)
}
