package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/metrics"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/bookings"
	"github.com/google/uuid"
)

// BookingUC implements the booking business logic
type BookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	rideReader  bookings.RideReader
	userReader  bookings.UserReader
	bookingGW   bookings.BookingGW
	emailGW     bookings.EmailGW
}

// NewBookingUC creates a new booking usecase
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	rideReader bookings.RideReader,
	userReader bookings.UserReader,
	bookingGW bookings.BookingGW,
	emailGW bookings.EmailGW,
) *BookingUC {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		rideReader:  rideReader,
		userReader:  userReader,
		bookingGW:   bookingGW,
		emailGW:     emailGW,
	}
}

// CreateBooking reserves seats on a ride for a passenger. The seat
// decrement and the booking insert are atomic, so concurrent passengers
// racing for the last seats cannot drive the counter negative.
func (uc *BookingUC) CreateBooking(ctx context.Context, passengerID uuid.UUID, req models.BookingCreateRequest) (*models.Booking, error) {
	if req.SeatsBooked < 1 {
		return nil, fmt.Errorf("seats booked must be at least 1")
	}

	ride, err := uc.rideReader.GetRideByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusActive {
		return nil, fmt.Errorf("ride %s is %s: %w", req.RideID, ride.Status, models.ErrRideNotFound)
	}
	if ride.DriverID == passengerID {
		return nil, fmt.Errorf("drivers cannot book their own ride")
	}
	if ride.DepartureTime.Before(models.Now()) {
		return nil, fmt.Errorf("ride has already departed")
	}

	now := models.Now()
	booking := &models.Booking{
		ID:           uuid.New(),
		RideID:       ride.ID,
		PassengerID:  passengerID,
		BookingDate:  now,
		Status:       models.BookingStatusPending,
		SeatsBooked:  req.SeatsBooked,
		SpecialNotes: req.SpecialNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		if isInsufficientSeats(err) {
			metrics.SeatReservationConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingTransitions.WithLabelValues(string(models.BookingStatusPending)).Inc()
	logger.InfoCtx(ctx, "Booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("ride_id", ride.ID.String()),
		logger.String("passenger_id", passengerID.String()),
		logger.Int("seats", booking.SeatsBooked))

	uc.publishEvent(ctx, uc.bookingGW.PublishBookingCreated, booking, ride, passengerID)

	return booking, nil
}

// GetBooking retrieves a booking, visible only to the passenger and the
// ride's driver.
func (uc *BookingUC) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID == userID {
		return booking, nil
	}

	ride, err := uc.rideReader.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		return nil, err
	}
	if ride.DriverID != userID {
		return nil, models.ErrNotParticipant
	}

	return booking, nil
}

// AcceptBooking confirms a passenger's booking. Accepting a previously
// rejected booking re-reserves the seats against the ride's current
// availability before the status flips.
func (uc *BookingUC) AcceptBooking(ctx context.Context, driverID uuid.UUID, bookingID string, req models.BookingAcceptRequest) error {
	booking, ride, err := uc.loadForDriver(ctx, driverID, bookingID)
	if err != nil {
		return err
	}

	switch booking.Status {
	case models.BookingStatusAccepted:
		return nil
	case models.BookingStatusPending, models.BookingStatusRejected:
	default:
		return fmt.Errorf("cannot accept a %s booking: %w", booking.Status, models.ErrInvalidTransition)
	}

	reserveAgain := booking.Status == models.BookingStatusRejected
	err = uc.bookingRepo.AcceptBooking(ctx, bookingID, booking.Status, req.DriverResponseNote, ride.ID.String(), booking.SeatsBooked, reserveAgain)
	if err != nil {
		if isInsufficientSeats(err) {
			metrics.SeatReservationConflicts.Inc()
		}
		return err
	}
	booking.Status = models.BookingStatusAccepted

	metrics.BookingTransitions.WithLabelValues(string(models.BookingStatusAccepted)).Inc()
	logger.InfoCtx(ctx, "Booking accepted",
		logger.String("booking_id", bookingID),
		logger.String("driver_id", driverID.String()))

	uc.publishEvent(ctx, uc.bookingGW.PublishBookingAccepted, booking, ride, driverID)
	uc.notifyPassenger(ctx, booking, ride, "Your booking was accepted",
		"<p>Good news! The driver accepted your booking for the ride to %s on %s.</p>")

	return nil
}

// RejectBooking declines a booking from pending or accepted. The seats
// held since reservation time are restored to the ride either way.
func (uc *BookingUC) RejectBooking(ctx context.Context, driverID uuid.UUID, bookingID string, req models.BookingRejectRequest) error {
	if req.RejectionReason == "" {
		return fmt.Errorf("rejection reason is required")
	}

	booking, ride, err := uc.loadForDriver(ctx, driverID, bookingID)
	if err != nil {
		return err
	}

	switch booking.Status {
	case models.BookingStatusRejected:
		return nil
	case models.BookingStatusPending, models.BookingStatusAccepted:
	default:
		return fmt.Errorf("cannot reject a %s booking: %w", booking.Status, models.ErrInvalidTransition)
	}

	err = uc.bookingRepo.RejectBooking(ctx, bookingID, booking.Status, req.RejectionReason, ride.ID.String(), booking.SeatsBooked)
	if err != nil {
		return err
	}
	booking.Status = models.BookingStatusRejected

	metrics.BookingTransitions.WithLabelValues(string(models.BookingStatusRejected)).Inc()
	logger.InfoCtx(ctx, "Booking rejected",
		logger.String("booking_id", bookingID),
		logger.String("driver_id", driverID.String()),
		logger.String("reason", req.RejectionReason))

	uc.publishEvent(ctx, uc.bookingGW.PublishBookingRejected, booking, ride, driverID)
	uc.notifyPassenger(ctx, booking, ride, "Your booking was declined",
		"<p>Unfortunately the driver declined your booking for the ride to %s on %s.</p>")

	return nil
}

// CancelBooking lets a passenger withdraw a pending booking. The seats
// reserved at creation time go back to the ride's pool.
func (uc *BookingUC) CancelBooking(ctx context.Context, passengerID uuid.UUID, bookingID string) error {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.PassengerID != passengerID {
		return models.ErrNotOwner
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return nil
	case models.BookingStatusPending:
	default:
		return fmt.Errorf("cannot cancel a %s booking: %w", booking.Status, models.ErrInvalidTransition)
	}

	err = uc.bookingRepo.CancelBooking(ctx, bookingID, booking.RideID.String(), booking.SeatsBooked)
	if err != nil {
		return err
	}
	booking.Status = models.BookingStatusCancelled

	metrics.BookingTransitions.WithLabelValues(string(models.BookingStatusCancelled)).Inc()
	logger.InfoCtx(ctx, "Booking cancelled by passenger",
		logger.String("booking_id", bookingID),
		logger.String("passenger_id", passengerID.String()))

	ride, err := uc.rideReader.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve ride for cancellation event",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	} else {
		uc.publishEvent(ctx, uc.bookingGW.PublishBookingCancelled, booking, ride, passengerID)
	}

	return nil
}

// ListMyBookings retrieves a passenger's bookings, archiving expired
// pending ones first.
func (uc *BookingUC) ListMyBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	uc.archiveExpired(ctx)
	return uc.bookingRepo.ListBookingsByPassenger(ctx, passengerID.String())
}

// ListRideBookings retrieves all bookings on a ride for its driver,
// archiving expired pending ones first.
func (uc *BookingUC) ListRideBookings(ctx context.Context, driverID uuid.UUID, rideID string) ([]*models.Booking, error) {
	ride, err := uc.rideReader.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, models.ErrNotOwner
	}

	uc.archiveExpired(ctx)
	return uc.bookingRepo.ListBookingsByRide(ctx, rideID)
}

// archiveExpired is opportunistic: failures are logged and the listing
// proceeds with stale statuses.
func (uc *BookingUC) archiveExpired(ctx context.Context) {
	archived, err := uc.bookingRepo.ArchiveExpired(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to archive expired bookings", logger.Err(err))
		return
	}
	if archived > 0 {
		metrics.BookingTransitions.WithLabelValues(string(models.BookingStatusArchived)).Add(float64(archived))
		logger.InfoCtx(ctx, "Archived expired bookings", logger.Int64("count", archived))
	}
}

func (uc *BookingUC) publishEvent(ctx context.Context, publish func(context.Context, models.BookingEvent) error, booking *models.Booking, ride *models.Ride, actorID uuid.UUID) {
	actorName := ""
	if actor, err := uc.userReader.GetUserByID(ctx, actorID.String()); err == nil {
		actorName = actor.FullName
	}

	event := models.BookingEvent{
		BookingID:   booking.ID.String(),
		RideID:      ride.ID.String(),
		DriverID:    ride.DriverID.String(),
		PassengerID: booking.PassengerID.String(),
		Status:      booking.Status,
		SeatsBooked: booking.SeatsBooked,
		ActorID:     actorID.String(),
		ActorName:   actorName,
		OccurredAt:  models.Now(),
	}

	if err := publish(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking event",
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
	}
}

// notifyPassenger sends a best-effort decision mail; delivery failures
// never fail the transition.
func (uc *BookingUC) notifyPassenger(ctx context.Context, booking *models.Booking, ride *models.Ride, subject, bodyFormat string) {
	if !uc.cfg.Email.Enabled {
		return
	}

	passenger, err := uc.userReader.GetUserByID(ctx, booking.PassengerID.String())
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve passenger for notification",
			logger.String("passenger_id", booking.PassengerID.String()),
			logger.Err(err))
		return
	}

	html := fmt.Sprintf(bodyFormat, ride.ArrivalAddress, models.FormatTime(ride.DepartureTime))
	if err := uc.emailGW.SendEmail(ctx, passenger.Email, subject, html); err != nil {
		logger.WarnCtx(ctx, "Failed to send booking notification email",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}
}

// loadForDriver fetches the booking and its ride, verifying the acting
// user is the ride's driver.
func (uc *BookingUC) loadForDriver(ctx context.Context, driverID uuid.UUID, bookingID string) (*models.Booking, *models.Ride, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}

	ride, err := uc.rideReader.GetRideByID(ctx, booking.RideID.String())
	if err != nil {
		return nil, nil, err
	}
	if ride.DriverID != driverID {
		return nil, nil, models.ErrNotOwner
	}

	return booking, ride, nil
}

func isInsufficientSeats(err error) bool {
	return errors.Is(err, models.ErrInsufficientSeats)
}
