package http

import (
	"errors"
	"net/http"

	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/churchpool/churchpool/services/bookings"
	"github.com/labstack/echo/v4"
)

// BookingHandler handles HTTP requests for bookings
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), passengerID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, models.ErrInsufficientSeats):
			return utils.ConflictResponse(c, "Not enough seats available")
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, models.ErrNotParticipant):
			return utils.ForbiddenResponse(c, "You are not part of this booking")
		default:
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// AcceptBooking handles POST /bookings/:id/accept
func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingAcceptRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	err := h.bookingUC.AcceptBooking(c.Request().Context(), driverID, c.Param("id"), req)
	if err != nil {
		return h.transitionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking accepted successfully", nil)
}

// RejectBooking handles POST /bookings/:id/reject
func (h *BookingHandler) RejectBooking(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingRejectRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	err := h.bookingUC.RejectBooking(c.Request().Context(), driverID, c.Param("id"), req)
	if err != nil {
		return h.transitionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking rejected successfully", nil)
}

// CancelBooking handles POST /bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	err := h.bookingUC.CancelBooking(c.Request().Context(), passengerID, c.Param("id"))
	if err != nil {
		return h.transitionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", nil)
}

// ListMyBookings handles GET /bookings/mine
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.bookingUC.ListMyBookings(c.Request().Context(), passengerID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", result)
}

// ListRideBookings handles GET /bookings/ride/:ride_id
func (h *BookingHandler) ListRideBookings(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.bookingUC.ListRideBookings(c.Request().Context(), driverID, c.Param("ride_id"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, models.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Only the ride driver can list its bookings")
		default:
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", result)
}

func (h *BookingHandler) transitionErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrBookingNotFound), errors.Is(err, models.ErrRideNotFound):
		return utils.NotFoundResponse(c, "Booking not found")
	case errors.Is(err, models.ErrNotOwner):
		return utils.ForbiddenResponse(c, "You do not own this booking")
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.ConflictResponse(c, "Booking is not in a state that allows this action")
	case errors.Is(err, models.ErrInsufficientSeats):
		return utils.ConflictResponse(c, "Not enough seats available")
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}
