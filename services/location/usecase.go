package location

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/churchpool/churchpool/services/location LocationUC

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// LocationUC defines the location sharing business logic
type LocationUC interface {
	// StartSharing begins a sharing session for an accepted booking, or
	// refreshes the caller's existing active session for it.
	StartSharing(ctx context.Context, userID uuid.UUID, req models.LocationStartRequest) (*models.LocationSharing, error)

	// UpdateLocation overwrites the session's position with a new sample
	UpdateLocation(ctx context.Context, userID uuid.UUID, sessionID string, req models.LocationUpdateRequest) (*models.LocationSharing, error)

	// StopSharing deactivates the caller's session
	StopSharing(ctx context.Context, userID uuid.UUID, sessionID string) error

	// GetSession returns the session with its freshest known position
	GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*models.LocationSharing, error)

	// ListBookingSessions returns the booking's active sessions for
	// either party of the booking.
	ListBookingSessions(ctx context.Context, userID uuid.UUID, bookingID string) ([]*models.LocationSharing, error)
}
