package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/bookings/mocks"
)

func setupBookingHandlerTest(t *testing.T) (*BookingHandler, *mocks.MockBookingUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockBookingUC(ctrl)
	return NewBookingHandler(mockUC), mockUC, ctrl.Finish
}

func TestCreateBooking_Created(t *testing.T) {
	handler, mockUC, finish := setupBookingHandlerTest(t)
	defer finish()

	e := echo.New()
	passengerID := uuid.New()
	rideID := uuid.New()
	requestBody := `{"ride_id": "` + rideID.String() + `", "seats_booked": 2}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", passengerID)

	mockUC.EXPECT().
		CreateBooking(gomock.Any(), passengerID, gomock.Any()).
		Return(&models.Booking{
			ID:          uuid.New(),
			RideID:      rideID,
			PassengerID: passengerID,
			Status:      models.BookingStatusPending,
			SeatsBooked: 2,
		}, nil)

	err := handler.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "pending", data["status"])
}

func TestCreateBooking_SeatsConflict(t *testing.T) {
	handler, mockUC, finish := setupBookingHandlerTest(t)
	defer finish()

	e := echo.New()
	passengerID := uuid.New()
	requestBody := `{"ride_id": "` + uuid.New().String() + `", "seats_booked": 2}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", passengerID)

	mockUC.EXPECT().
		CreateBooking(gomock.Any(), passengerID, gomock.Any()).
		Return(nil, models.ErrInsufficientSeats)

	err := handler.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptBooking_InvalidTransition(t *testing.T) {
	handler, mockUC, finish := setupBookingHandlerTest(t)
	defer finish()

	e := echo.New()
	driverID := uuid.New()
	bookingID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID+"/accept", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", driverID)
	c.SetParamNames("id")
	c.SetParamValues(bookingID)

	mockUC.EXPECT().
		AcceptBooking(gomock.Any(), driverID, bookingID, gomock.Any()).
		Return(models.ErrInvalidTransition)

	err := handler.AcceptBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRejectBooking_Success(t *testing.T) {
	handler, mockUC, finish := setupBookingHandlerTest(t)
	defer finish()

	e := echo.New()
	driverID := uuid.New()
	bookingID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID+"/reject",
		strings.NewReader(`{"rejection_reason": "Schedule changed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", driverID)
	c.SetParamNames("id")
	c.SetParamValues(bookingID)

	mockUC.EXPECT().
		RejectBooking(gomock.Any(), driverID, bookingID, models.BookingRejectRequest{RejectionReason: "Schedule changed"}).
		Return(nil)

	err := handler.RejectBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelBooking_Forbidden(t *testing.T) {
	handler, mockUC, finish := setupBookingHandlerTest(t)
	defer finish()

	e := echo.New()
	userID := uuid.New()
	bookingID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookingID)

	mockUC.EXPECT().
		CancelBooking(gomock.Any(), userID, bookingID).
		Return(models.ErrNotOwner)

	err := handler.CancelBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
