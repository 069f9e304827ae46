package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/metrics"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/location"
	"github.com/google/uuid"
)

// LocationUC implements the location sharing business logic
type LocationUC struct {
	cfg           *models.Config
	sessionRepo   location.SessionRepo
	liveRepo      location.LiveLocationRepo
	bookingReader location.BookingReader
	rideReader    location.RideReader
	locationGW    location.LocationGW
}

// NewLocationUC creates a new location usecase
func NewLocationUC(
	cfg *models.Config,
	sessionRepo location.SessionRepo,
	liveRepo location.LiveLocationRepo,
	bookingReader location.BookingReader,
	rideReader location.RideReader,
	locationGW location.LocationGW,
) *LocationUC {
	return &LocationUC{
		cfg:           cfg,
		sessionRepo:   sessionRepo,
		liveRepo:      liveRepo,
		bookingReader: bookingReader,
		rideReader:    rideReader,
		locationGW:    locationGW,
	}
}

// StartSharing begins broadcasting the caller's position for an accepted
// booking. A second start for the same booking refreshes the existing
// session instead of creating a duplicate.
func (uc *LocationUC) StartSharing(ctx context.Context, userID uuid.UUID, req models.LocationStartRequest) (*models.LocationSharing, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := uc.bookingReader.GetBookingByID(ctx, bookingID.String())
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusAccepted {
		return nil, fmt.Errorf("location sharing requires an accepted booking")
	}

	ride, err := uc.rideReader.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		return nil, err
	}

	var sharerType models.SharerType
	switch userID {
	case ride.DriverID:
		sharerType = models.SharerTypeDriver
	case booking.PassengerID:
		sharerType = models.SharerTypePassenger
	default:
		return nil, models.ErrNotParticipant
	}

	now := models.Now()
	sample := req.Location
	if sample.Timestamp.IsZero() {
		sample.Timestamp = now
	}

	session, err := uc.sessionRepo.GetActiveSession(ctx, bookingID, userID)
	switch {
	case err == nil:
		if err := uc.sessionRepo.RefreshSession(ctx, session.ID, sample, now); err != nil {
			return nil, err
		}
		session.LastLocation = sample
		session.StartTime = now
	case errors.Is(err, models.ErrSessionNotFound):
		session = &models.LocationSharing{
			ID:              uuid.New(),
			BookingID:       bookingID,
			DriverID:        ride.DriverID,
			PassengerID:     booking.PassengerID,
			SharingUserID:   userID,
			SharingUserType: sharerType,
			IsActive:        true,
			LastLocation:    sample,
			StartTime:       now,
		}
		if err := uc.sessionRepo.CreateSession(ctx, session); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := uc.liveRepo.StoreSample(ctx, session.ID.String(), sample); err != nil {
		logger.WarnCtx(ctx, "Failed to store hot location sample",
			logger.String("session_id", session.ID.String()),
			logger.Err(err))
	}

	metrics.LocationUpdates.Inc()
	logger.InfoCtx(ctx, "Location sharing started",
		logger.String("session_id", session.ID.String()),
		logger.String("booking_id", bookingID.String()),
		logger.String("sharer_type", string(sharerType)))

	uc.publishLocationUpdate(ctx, session)

	return session, nil
}

// UpdateLocation overwrites the session's position with a new sample
func (uc *LocationUC) UpdateLocation(ctx context.Context, userID uuid.UUID, sessionID string, req models.LocationUpdateRequest) (*models.LocationSharing, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SharingUserID != userID {
		return nil, models.ErrNotOwner
	}
	if !session.IsActive {
		return nil, fmt.Errorf("sharing session is no longer active")
	}

	sample := req.Location
	if sample.Timestamp.IsZero() {
		sample.Timestamp = models.Now()
	}

	if err := uc.sessionRepo.UpdateSessionLocation(ctx, session.ID, sample); err != nil {
		return nil, err
	}
	session.LastLocation = sample

	if err := uc.liveRepo.StoreSample(ctx, session.ID.String(), sample); err != nil {
		logger.WarnCtx(ctx, "Failed to store hot location sample",
			logger.String("session_id", session.ID.String()),
			logger.Err(err))
	}

	metrics.LocationUpdates.Inc()

	uc.publishLocationUpdate(ctx, session)

	return session, nil
}

// StopSharing deactivates the caller's session. Stopping twice is safe.
func (uc *LocationUC) StopSharing(ctx context.Context, userID uuid.UUID, sessionID string) error {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.SharingUserID != userID {
		return models.ErrNotOwner
	}
	if !session.IsActive {
		return nil
	}

	if err := uc.sessionRepo.StopSession(ctx, session.ID, models.Now()); err != nil {
		return err
	}

	if err := uc.liveRepo.RemoveSharer(ctx, session.ID.String()); err != nil {
		logger.WarnCtx(ctx, "Failed to clear hot location sample",
			logger.String("session_id", session.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Location sharing stopped",
		logger.String("session_id", session.ID.String()))

	return nil
}

// GetSession returns the session for either party of the booking, with
// the freshest position Redis holds.
func (uc *LocationUC) GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*models.LocationSharing, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if userID != session.DriverID && userID != session.PassengerID {
		return nil, models.ErrNotParticipant
	}

	if session.IsActive {
		if sample, err := uc.liveRepo.GetLastSample(ctx, sessionID); err == nil {
			session.LastLocation = *sample
		}
	}

	return session, nil
}

// ListBookingSessions returns the booking's active sessions, each with
// the freshest position Redis holds.
func (uc *LocationUC) ListBookingSessions(ctx context.Context, userID uuid.UUID, bookingID string) ([]*models.LocationSharing, error) {
	parsedBookingID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := uc.bookingReader.GetBookingByID(ctx, parsedBookingID.String())
	if err != nil {
		return nil, err
	}

	ride, err := uc.rideReader.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		return nil, err
	}
	if userID != ride.DriverID && userID != booking.PassengerID {
		return nil, models.ErrNotParticipant
	}

	sessions, err := uc.sessionRepo.ListActiveSessionsByBooking(ctx, parsedBookingID)
	if err != nil {
		return nil, err
	}

	for _, session := range sessions {
		if sample, err := uc.liveRepo.GetLastSample(ctx, session.ID.String()); err == nil {
			session.LastLocation = *sample
		}
	}

	return sessions, nil
}

func (uc *LocationUC) publishLocationUpdate(ctx context.Context, session *models.LocationSharing) {
	recipient := session.PassengerID
	if session.SharingUserID == session.PassengerID {
		recipient = session.DriverID
	}

	event := models.LocationUpdateEvent{
		SessionID:       session.ID.String(),
		BookingID:       session.BookingID.String(),
		SharingUserID:   session.SharingUserID.String(),
		SharingUserType: session.SharingUserType,
		Recipients:      []string{recipient.String()},
		Location:        session.LastLocation,
	}

	if err := uc.locationGW.PublishLocationUpdate(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish location update event",
			logger.String("session_id", event.SessionID),
			logger.Err(err))
	}
}
