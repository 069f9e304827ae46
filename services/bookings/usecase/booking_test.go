package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/bookings/mocks"
)

type bookingUCMocks struct {
	bookingRepo *mocks.MockBookingRepo
	rideReader  *mocks.MockRideReader
	userReader  *mocks.MockUserReader
	bookingGW   *mocks.MockBookingGW
	emailGW     *mocks.MockEmailGW
}

func setupBookingUCTest(t *testing.T, emailEnabled bool) (*BookingUC, bookingUCMocks, func()) {
	ctrl := gomock.NewController(t)

	m := bookingUCMocks{
		bookingRepo: mocks.NewMockBookingRepo(ctrl),
		rideReader:  mocks.NewMockRideReader(ctrl),
		userReader:  mocks.NewMockUserReader(ctrl),
		bookingGW:   mocks.NewMockBookingGW(ctrl),
		emailGW:     mocks.NewMockEmailGW(ctrl),
	}

	cfg := &models.Config{}
	cfg.Email.Enabled = emailEnabled

	uc := NewBookingUC(cfg, m.bookingRepo, m.rideReader, m.userReader, m.bookingGW, m.emailGW)

	return uc, m, ctrl.Finish
}

func activeRide(driverID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:             uuid.New(),
		DriverID:       driverID,
		Status:         models.RideStatusActive,
		AvailableSeats: 3,
		ArrivalAddress: "St. Mary's Church",
		DepartureTime:  time.Now().Add(48 * time.Hour),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	passengerID := uuid.New()
	ride := activeRide(uuid.New())

	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)
	m.bookingRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			assert.Equal(t, models.BookingStatusPending, booking.Status)
			assert.Equal(t, 2, booking.SeatsBooked)
			assert.Equal(t, passengerID, booking.PassengerID)
			return nil
		})
	m.userReader.EXPECT().
		GetUserByID(gomock.Any(), passengerID.String()).
		Return(&models.User{ID: passengerID, FullName: "Anna Passenger"}, nil)
	m.bookingGW.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.BookingEvent) error {
			assert.Equal(t, models.BookingStatusPending, event.Status)
			assert.Equal(t, "Anna Passenger", event.ActorName)
			return nil
		})

	booking, err := uc.CreateBooking(context.Background(), passengerID, models.BookingCreateRequest{
		RideID:      ride.ID.String(),
		SeatsBooked: 2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestCreateBooking_InsufficientSeats(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	passengerID := uuid.New()
	ride := activeRide(uuid.New())

	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)
	m.bookingRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Return(models.ErrInsufficientSeats)

	booking, err := uc.CreateBooking(context.Background(), passengerID, models.BookingCreateRequest{
		RideID:      ride.ID.String(),
		SeatsBooked: 2,
	})

	assert.ErrorIs(t, err, models.ErrInsufficientSeats)
	assert.Nil(t, booking)
}

func TestCreateBooking_OwnRide(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	driverID := uuid.New()
	ride := activeRide(driverID)

	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)

	booking, err := uc.CreateBooking(context.Background(), driverID, models.BookingCreateRequest{
		RideID:      ride.ID.String(),
		SeatsBooked: 1,
	})

	assert.Error(t, err)
	assert.Nil(t, booking)
}

func TestCreateBooking_CancelledRide(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	ride := activeRide(uuid.New())
	ride.Status = models.RideStatusCancelled

	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)

	booking, err := uc.CreateBooking(context.Background(), uuid.New(), models.BookingCreateRequest{
		RideID:      ride.ID.String(),
		SeatsBooked: 1,
	})

	assert.ErrorIs(t, err, models.ErrRideNotFound)
	assert.Nil(t, booking)
}

func TestAcceptBooking_FromPending(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
		SeatsBooked: 2,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)
	// Pending bookings already hold their seats, no re-reservation
	m.bookingRepo.EXPECT().
		AcceptBooking(gomock.Any(), booking.ID.String(), models.BookingStatusPending, gomock.Nil(), ride.ID.String(), 2, false).
		Return(nil)
	m.userReader.EXPECT().
		GetUserByID(gomock.Any(), driverID.String()).
		Return(&models.User{ID: driverID, FullName: "Dave Driver"}, nil)
	m.bookingGW.EXPECT().
		PublishBookingAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.BookingEvent) error {
			assert.Equal(t, models.BookingStatusAccepted, event.Status)
			assert.Equal(t, "Dave Driver", event.ActorName)
			return nil
		})

	err := uc.AcceptBooking(context.Background(), driverID, booking.ID.String(), models.BookingAcceptRequest{})

	assert.NoError(t, err)
}

func TestAcceptBooking_FromRejectedReservesSeatsAgain(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusRejected,
		SeatsBooked: 2,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)
	m.bookingRepo.EXPECT().
		AcceptBooking(gomock.Any(), booking.ID.String(), models.BookingStatusRejected, gomock.Nil(), ride.ID.String(), 2, true).
		Return(nil)
	m.userReader.EXPECT().
		GetUserByID(gomock.Any(), driverID.String()).
		Return(&models.User{ID: driverID, FullName: "Dave Driver"}, nil)
	m.bookingGW.EXPECT().
		PublishBookingAccepted(gomock.Any(), gomock.Any()).
		Return(nil)

	err := uc.AcceptBooking(context.Background(), driverID, booking.ID.String(), models.BookingAcceptRequest{})

	assert.NoError(t, err)
}

func TestAcceptBooking_NotDriver(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	ride := activeRide(uuid.New())
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
		SeatsBooked: 1,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)

	err := uc.AcceptBooking(context.Background(), uuid.New(), booking.ID.String(), models.BookingAcceptRequest{})

	assert.ErrorIs(t, err, models.ErrNotOwner)
}

func TestAcceptBooking_FromArchived(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusArchived,
		SeatsBooked: 1,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)

	err := uc.AcceptBooking(context.Background(), driverID, booking.ID.String(), models.BookingAcceptRequest{})

	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestAcceptBooking_AlreadyAcceptedIsNoop(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusAccepted,
		SeatsBooked: 1,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)

	err := uc.AcceptBooking(context.Background(), driverID, booking.ID.String(), models.BookingAcceptRequest{})

	assert.NoError(t, err)
}

func TestRejectBooking_FromAcceptedReleasesSeats(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, true)
	defer finish()

	driverID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(driverID)
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: passengerID,
		Status:      models.BookingStatusAccepted,
		SeatsBooked: 2,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)
	m.bookingRepo.EXPECT().
		RejectBooking(gomock.Any(), booking.ID.String(), models.BookingStatusAccepted, "Schedule changed", ride.ID.String(), 2).
		Return(nil)
	m.userReader.EXPECT().
		GetUserByID(gomock.Any(), driverID.String()).
		Return(&models.User{ID: driverID, FullName: "Dave Driver"}, nil)
	m.bookingGW.EXPECT().
		PublishBookingRejected(gomock.Any(), gomock.Any()).
		Return(nil)
	m.userReader.EXPECT().
		GetUserByID(gomock.Any(), passengerID.String()).
		Return(&models.User{ID: passengerID, Email: "anna@example.org"}, nil)
	m.emailGW.EXPECT().
		SendEmail(gomock.Any(), "anna@example.org", gomock.Any(), gomock.Any()).
		Return(nil)

	err := uc.RejectBooking(context.Background(), driverID, booking.ID.String(), models.BookingRejectRequest{
		RejectionReason: "Schedule changed",
	})

	assert.NoError(t, err)
}

func TestRejectBooking_MissingReason(t *testing.T) {
	uc, _, finish := setupBookingUCTest(t, false)
	defer finish()

	err := uc.RejectBooking(context.Background(), uuid.New(), uuid.New().String(), models.BookingRejectRequest{})

	assert.Error(t, err)
}

func TestCancelBooking_ReleasesSeats(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	passengerID := uuid.New()
	ride := activeRide(uuid.New())
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: passengerID,
		Status:      models.BookingStatusPending,
		SeatsBooked: 2,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.bookingRepo.EXPECT().
		CancelBooking(gomock.Any(), booking.ID.String(), ride.ID.String(), 2).
		Return(nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)
	m.userReader.EXPECT().
		GetUserByID(gomock.Any(), passengerID.String()).
		Return(&models.User{ID: passengerID, FullName: "Anna Passenger"}, nil)
	m.bookingGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), gomock.Any()).
		Return(nil)

	err := uc.CancelBooking(context.Background(), passengerID, booking.ID.String())

	assert.NoError(t, err)
}

func TestCancelBooking_SucceedsWhenRideLookupFails(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	passengerID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      uuid.New(),
		PassengerID: passengerID,
		Status:      models.BookingStatusPending,
		SeatsBooked: 1,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)
	m.bookingRepo.EXPECT().
		CancelBooking(gomock.Any(), booking.ID.String(), booking.RideID.String(), 1).
		Return(nil)
	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), booking.RideID.String()).
		Return(nil, errors.New("connection refused"))

	// The cancellation itself committed; the event publish is best effort
	err := uc.CancelBooking(context.Background(), passengerID, booking.ID.String())

	assert.NoError(t, err)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
		SeatsBooked: 1,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)

	err := uc.CancelBooking(context.Background(), uuid.New(), booking.ID.String())

	assert.ErrorIs(t, err, models.ErrNotOwner)
}

func TestCancelBooking_FromAccepted(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	passengerID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		RideID:      uuid.New(),
		PassengerID: passengerID,
		Status:      models.BookingStatusAccepted,
		SeatsBooked: 1,
	}

	m.bookingRepo.EXPECT().
		GetBookingByID(gomock.Any(), booking.ID.String()).
		Return(booking, nil)

	err := uc.CancelBooking(context.Background(), passengerID, booking.ID.String())

	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestListMyBookings_ArchivesFirst(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	passengerID := uuid.New()

	m.bookingRepo.EXPECT().
		ArchiveExpired(gomock.Any()).
		Return(int64(2), nil)
	m.bookingRepo.EXPECT().
		ListBookingsByPassenger(gomock.Any(), passengerID.String()).
		Return([]*models.Booking{{ID: uuid.New(), Status: models.BookingStatusArchived}}, nil)

	result, err := uc.ListMyBookings(context.Background(), passengerID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestListRideBookings_NotDriver(t *testing.T) {
	uc, m, finish := setupBookingUCTest(t, false)
	defer finish()

	ride := activeRide(uuid.New())

	m.rideReader.EXPECT().
		GetRideByID(gomock.Any(), ride.ID.String()).
		Return(ride, nil)

	result, err := uc.ListRideBookings(context.Background(), uuid.New(), ride.ID.String())

	assert.ErrorIs(t, err, models.ErrNotOwner)
	assert.Nil(t, result)
}
