package http

import (
	"errors"
	"net/http"

	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/churchpool/churchpool/services/users"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for profiles and vehicles
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// RegisterVehicle handles PUT /users/me/vehicle
func (h *UserHandler) RegisterVehicle(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.VehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	vehicle, err := h.userUC.RegisterVehicle(c.Request().Context(), userID, req)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle registered successfully", vehicle)
}

// ListChurches handles GET /churches
func (h *UserHandler) ListChurches(c echo.Context) error {
	result, err := h.userUC.ListChurches(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Churches retrieved successfully", result)
}
