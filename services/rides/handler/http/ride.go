package http

import (
	"errors"
	"net/http"

	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/churchpool/churchpool/services/rides"
	"github.com/labstack/echo/v4"
)

// RideHandler handles HTTP requests for rides
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), driverID, req)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return utils.BadRequestResponse(c, "Driver has no registered vehicle")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride published successfully", ride)
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c echo.Context) error {
	rideID := c.Param("id")

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		if errors.Is(err, models.ErrRideNotFound) {
			return utils.NotFoundResponse(c, "Ride not found")
		}
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// CancelRide handles POST /rides/:id/cancel
func (h *RideHandler) CancelRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID := c.Param("id")

	if err := h.rideUC.CancelRide(c.Request().Context(), driverID, rideID); err != nil {
		switch {
		case errors.Is(err, models.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, models.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Only the ride driver can cancel it")
		default:
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", nil)
}

// ReactivateRide handles POST /rides/:id/reactivate
func (h *RideHandler) ReactivateRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID := c.Param("id")

	if err := h.rideUC.ReactivateRide(c.Request().Context(), driverID, rideID); err != nil {
		switch {
		case errors.Is(err, models.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, models.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Only the ride driver can reactivate it")
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride reactivated successfully", nil)
}

// UpdateSeats handles PUT /rides/:id/seats
func (h *RideHandler) UpdateSeats(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID := c.Param("id")

	var req models.RideSeatsUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.rideUC.UpdateSeats(c.Request().Context(), driverID, rideID, req.AvailableSeats); err != nil {
		switch {
		case errors.Is(err, models.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, models.ErrNotOwner):
			return utils.ForbiddenResponse(c, "Only the ride driver can edit it")
		default:
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seats updated successfully", nil)
}

// ListMyRides handles GET /rides/mine
func (h *RideHandler) ListMyRides(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.rideUC.ListByDriver(c.Request().Context(), driverID.String())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

// RepairSeats handles POST /rides/repair-seats. It clamps any negative
// seat counters left behind by historical data back to zero.
func (h *RideHandler) RepairSeats(c echo.Context) error {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	repaired, err := h.rideUC.RepairNegativeSeats(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat counters repaired", map[string]int64{
		"repaired": repaired,
	})
}

// SearchRides handles GET /rides
func (h *RideHandler) SearchRides(c echo.Context) error {
	var req models.RideSearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid search parameters")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return utils.BadRequestResponse(c, "Latitude and longitude must be provided together")
	}

	result, err := h.rideUC.SearchRides(c.Request().Context(), req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}
