package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/rides/mocks"
)

func TestCreateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	e := echo.New()
	driverID := uuid.New()
	requestBody := `{
		"church_id": "550e8400-e29b-41d4-a716-446655440003",
		"departure_address": "12 Elm Street",
		"departure_lat": 52.52,
		"departure_lng": 13.405,
		"arrival_address": "St. Mary's Church",
		"arrival_lat": 52.53,
		"arrival_lng": 13.41,
		"departure_time": "2027-06-06T08:30:00Z",
		"available_seats": 3
	}`
	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", driverID)

	mockRideUC.EXPECT().
		CreateRide(gomock.Any(), driverID, gomock.Any()).
		Return(&models.Ride{
			ID:             uuid.New(),
			DriverID:       driverID,
			AvailableSeats: 3,
			Status:         models.RideStatusActive,
			DepartureTime:  time.Date(2027, 6, 6, 8, 30, 0, 0, time.UTC),
		}, nil)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Ride published successfully", response["message"])
}

func TestCreateRide_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	e := echo.New()
	rideID := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/rides/"+rideID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(rideID)

	mockRideUC.EXPECT().
		GetRide(gomock.Any(), rideID).
		Return(nil, models.ErrRideNotFound)

	err := handler.GetRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRide_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	e := echo.New()
	userID := uuid.New()
	rideID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/rides/"+rideID+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.SetParamNames("id")
	c.SetParamValues(rideID)

	mockRideUC.EXPECT().
		CancelRide(gomock.Any(), userID, rideID).
		Return(models.ErrNotOwner)

	err := handler.CancelRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSearchRides_MismatchedCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides?latitude=52.52", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SearchRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRides_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockRideUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides?church_id=550e8400-e29b-41d4-a716-446655440003", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockRideUC.EXPECT().
		SearchRides(gomock.Any(), gomock.Any()).
		Return([]*models.Ride{{ID: uuid.New()}}, nil)

	err := handler.SearchRides(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
