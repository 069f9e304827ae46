package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BookingRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func pendingBooking() *models.Booking {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return &models.Booking{
		ID:          uuid.MustParse("660e8400-e29b-41d4-a716-446655440001"),
		RideID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		PassengerID: uuid.MustParse("770e8400-e29b-41d4-a716-446655440001"),
		BookingDate: now,
		Status:      models.BookingStatusPending,
		SeatsBooked: 2,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateBooking(t *testing.T) {
	booking := pendingBooking()
	rideID := booking.RideID.String()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^UPDATE rides").
					WithArgs(booking.SeatsBooked, rideID, models.RideStatusActive).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^INSERT INTO bookings").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Insufficient Seats",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^UPDATE rides").
					WithArgs(booking.SeatsBooked, rideID, models.RideStatusActive).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT status FROM rides").
					WithArgs(rideID).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.RideStatusActive))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrInsufficientSeats)
			},
		},
		{
			name: "Ride Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^UPDATE rides").
					WithArgs(booking.SeatsBooked, rideID, models.RideStatusActive).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT status FROM rides").
					WithArgs(rideID).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrRideNotFound)
			},
		},
		{
			name: "Ride Cancelled",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^UPDATE rides").
					WithArgs(booking.SeatsBooked, rideID, models.RideStatusActive).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("^SELECT status FROM rides").
					WithArgs(rideID).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.RideStatusCancelled))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrRideNotFound)
			},
		},
		{
			name: "Insert Fails After Reservation",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^UPDATE rides").
					WithArgs(booking.SeatsBooked, rideID, models.RideStatusActive).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^INSERT INTO bookings").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create booking")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.CreateBooking(context.Background(), pendingBooking())

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAcceptBooking(t *testing.T) {
	booking := pendingBooking()
	bookingID := booking.ID.String()
	rideID := booking.RideID.String()

	t.Run("From Pending", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE bookings").
			WithArgs(models.BookingStatusAccepted, nil, bookingID, models.BookingStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.AcceptBooking(context.Background(), bookingID, models.BookingStatusPending, nil, rideID, 2, false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("From Rejected Reserves Seats", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE rides").
			WithArgs(2, rideID, models.RideStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^UPDATE bookings").
			WithArgs(models.BookingStatusAccepted, nil, bookingID, models.BookingStatusRejected).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.AcceptBooking(context.Background(), bookingID, models.BookingStatusRejected, nil, rideID, 2, true)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("From Rejected But Ride Full", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE rides").
			WithArgs(2, rideID, models.RideStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("^SELECT status FROM rides").
			WithArgs(rideID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.RideStatusActive))
		mock.ExpectRollback()

		err := repo.AcceptBooking(context.Background(), bookingID, models.BookingStatusRejected, nil, rideID, 2, true)

		assert.ErrorIs(t, err, models.ErrInsufficientSeats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Status Changed Underneath", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE bookings").
			WithArgs(models.BookingStatusAccepted, nil, bookingID, models.BookingStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.AcceptBooking(context.Background(), bookingID, models.BookingStatusPending, nil, rideID, 2, false)

		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRejectBooking_ReleasesSeats(t *testing.T) {
	booking := pendingBooking()
	bookingID := booking.ID.String()
	rideID := booking.RideID.String()

	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE bookings").
		WithArgs(models.BookingStatusRejected, "Schedule changed", bookingID, models.BookingStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE rides").
		WithArgs(2, rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RejectBooking(context.Background(), bookingID, models.BookingStatusAccepted, "Schedule changed", rideID, 2)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_ReleasesSeats(t *testing.T) {
	booking := pendingBooking()
	bookingID := booking.ID.String()
	rideID := booking.RideID.String()

	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("^UPDATE bookings").
		WithArgs(models.BookingStatusCancelled, bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE rides").
		WithArgs(2, rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CancelBooking(context.Background(), bookingID, rideID, 2)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveExpired_Idempotent(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE bookings").
		WithArgs(models.BookingStatusArchived, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("^UPDATE bookings").
		WithArgs(models.BookingStatusArchived, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	archived, err := repo.ArchiveExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), archived)

	archived, err = repo.ArchiveExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), archived)

	assert.NoError(t, mock.ExpectationsWereMet())
}
