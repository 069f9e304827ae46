package handler

import (
	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/location/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the location protocol handlers
type Handler struct {
	locationHandler *http.LocationHandler
	cfg             *models.Config
}

// NewHandler creates and initializes the location handlers
func NewHandler(locationHandler *http.LocationHandler, cfg *models.Config) *Handler {
	return &Handler{
		locationHandler: locationHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers location routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	sessionGroup := e.Group("/location/sessions", middleware.JWTAuthMiddleware(h.cfg.JWT))
	sessionGroup.POST("", h.locationHandler.StartSharing)
	sessionGroup.GET("", h.locationHandler.ListBookingSessions)
	sessionGroup.GET("/:id", h.locationHandler.GetSession)
	sessionGroup.PUT("/:id", h.locationHandler.UpdateLocation)
	sessionGroup.POST("/:id/stop", h.locationHandler.StopSharing)
}
