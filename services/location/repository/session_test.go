package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

func setupSessionRepoTest(t *testing.T) (*SessionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewSessionRepository(&models.Config{}, db)

	return repo, mock, func() {
		db.Close()
	}
}

func sessionRows(sessionID, bookingID, driverID, passengerID, sharerID uuid.UUID, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_id", "driver_id", "passenger_id", "sharing_user_id", "sharing_user_type",
		"is_active", "latitude", "longitude", "accuracy", "location_timestamp", "start_time", "end_time",
	}).AddRow(
		sessionID.String(), bookingID.String(), driverID.String(), passengerID.String(),
		sharerID.String(), "driver", active, -6.175392, 106.827153, 10.0, time.Now(), time.Now(), nil,
	)
}

func TestCreateSession(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	session := &models.LocationSharing{
		ID:              uuid.New(),
		BookingID:       uuid.New(),
		DriverID:        uuid.New(),
		PassengerID:     uuid.New(),
		SharingUserID:   uuid.New(),
		SharingUserType: models.SharerTypeDriver,
		IsActive:        true,
		LastLocation: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
			Accuracy:  10,
			Timestamp: time.Now(),
		},
		StartTime: time.Now(),
	}

	mock.ExpectExec(`INSERT INTO location_sharing`).
		WithArgs(session.ID, session.BookingID, session.DriverID, session.PassengerID,
			session.SharingUserID, session.SharingUserType, session.IsActive,
			session.LastLocation.Latitude, session.LastLocation.Longitude,
			session.LastLocation.Accuracy, session.LastLocation.Timestamp, session.StartTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateSession(context.Background(), session)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveSession(t *testing.T) {
	sessionID := uuid.New()
	bookingID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, session *models.LocationSharing, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM location_sharing\s+WHERE booking_id = \$1 AND sharing_user_id = \$2 AND is_active`).
					WithArgs(bookingID, driverID).
					WillReturnRows(sessionRows(sessionID, bookingID, driverID, passengerID, driverID, true))
			},
			assertFunc: func(t *testing.T, session *models.LocationSharing, err error) {
				assert.NoError(t, err)
				assert.Equal(t, sessionID, session.ID)
				assert.InDelta(t, -6.175392, session.LastLocation.Latitude, 1e-9)
			},
		},
		{
			name: "No Active Session",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM location_sharing`).
					WithArgs(bookingID, driverID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			assertFunc: func(t *testing.T, session *models.LocationSharing, err error) {
				assert.ErrorIs(t, err, models.ErrSessionNotFound)
				assert.Nil(t, session)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupSessionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			session, err := repo.GetActiveSession(context.Background(), bookingID, driverID)

			tc.assertFunc(t, session, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateSessionLocation(t *testing.T) {
	sessionID := uuid.New()
	sample := models.Location{
		Latitude:  52.520008,
		Longitude: 13.404954,
		Accuracy:  5,
		Timestamp: time.Now(),
	}

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE location_sharing\s+SET latitude = \$1, longitude = \$2, accuracy = \$3, location_timestamp = \$4\s+WHERE id = \$5 AND is_active`).
					WithArgs(sample.Latitude, sample.Longitude, sample.Accuracy, sample.Timestamp, sessionID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Session Stopped Underneath",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE location_sharing`).
					WithArgs(sample.Latitude, sample.Longitude, sample.Accuracy, sample.Timestamp, sessionID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: models.ErrSessionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupSessionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.UpdateSessionLocation(context.Background(), sessionID, sample)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStopSession_Idempotent(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	sessionID := uuid.New()
	endTime := time.Now()

	mock.ExpectExec(`UPDATE location_sharing\s+SET is_active = FALSE, end_time = \$1\s+WHERE id = \$2 AND is_active`).
		WithArgs(endTime, sessionID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE location_sharing`).
		WithArgs(endTime, sessionID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.StopSession(context.Background(), sessionID, endTime))
	assert.NoError(t, repo.StopSession(context.Background(), sessionID, endTime))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveSessionsByBooking(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	sessionID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM location_sharing\s+WHERE booking_id = \$1 AND is_active\s+ORDER BY start_time ASC`).
		WithArgs(bookingID).
		WillReturnRows(sessionRows(sessionID, bookingID, uuid.New(), uuid.New(), uuid.New(), true))

	sessions, err := repo.ListActiveSessionsByBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, sessionID, sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
