package handler

import (
	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/rides/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the ride protocol handlers
type Handler struct {
	rideHandler *http.RideHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the ride handlers
func NewHandler(rideHandler *http.RideHandler, cfg *models.Config) *Handler {
	return &Handler{
		rideHandler: rideHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers ride routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rideGroup := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))
	rideGroup.POST("", h.rideHandler.CreateRide)
	rideGroup.GET("", h.rideHandler.SearchRides)
	rideGroup.GET("/mine", h.rideHandler.ListMyRides)
	rideGroup.POST("/repair-seats", h.rideHandler.RepairSeats)
	rideGroup.GET("/:id", h.rideHandler.GetRide)
	rideGroup.POST("/:id/cancel", h.rideHandler.CancelRide)
	rideGroup.POST("/:id/reactivate", h.rideHandler.ReactivateRide)
	rideGroup.PUT("/:id/seats", h.rideHandler.UpdateSeats)
}
