package http

import (
	"errors"
	"net/http"

	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/churchpool/churchpool/services/location"
	"github.com/labstack/echo/v4"
)

// LocationHandler handles HTTP requests for location sharing
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// StartSharing handles POST /location/sessions
func (h *LocationHandler) StartSharing(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationStartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	session, err := h.locationUC.StartSharing(c.Request().Context(), userID, req)
	if err != nil {
		return h.sessionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Location sharing started", session)
}

// UpdateLocation handles PUT /location/sessions/:id
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	session, err := h.locationUC.UpdateLocation(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		return h.sessionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", session)
}

// StopSharing handles POST /location/sessions/:id/stop
func (h *LocationHandler) StopSharing(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.locationUC.StopSharing(c.Request().Context(), userID, c.Param("id")); err != nil {
		return h.sessionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location sharing stopped", nil)
}

// GetSession handles GET /location/sessions/:id
func (h *LocationHandler) GetSession(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	session, err := h.locationUC.GetSession(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return h.sessionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", session)
}

// ListBookingSessions handles GET /location/sessions?booking_id=...
func (h *LocationHandler) ListBookingSessions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID := c.QueryParam("booking_id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "booking_id is required")
	}

	sessions, err := h.locationUC.ListBookingSessions(c.Request().Context(), userID, bookingID)
	if err != nil {
		return h.sessionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved successfully", sessions)
}

func (h *LocationHandler) sessionErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		return utils.NotFoundResponse(c, "Sharing session not found")
	case errors.Is(err, models.ErrBookingNotFound):
		return utils.NotFoundResponse(c, "Booking not found")
	case errors.Is(err, models.ErrNotParticipant), errors.Is(err, models.ErrNotOwner):
		return utils.ForbiddenResponse(c, "You are not part of this sharing session")
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}
