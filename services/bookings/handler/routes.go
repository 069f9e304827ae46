package handler

import (
	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/bookings/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the booking protocol handlers
type Handler struct {
	bookingHandler *http.BookingHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the booking handlers
func NewHandler(bookingHandler *http.BookingHandler, cfg *models.Config) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers booking routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	bookingGroup := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))
	bookingGroup.POST("", h.bookingHandler.CreateBooking)
	bookingGroup.GET("/mine", h.bookingHandler.ListMyBookings)
	bookingGroup.GET("/ride/:ride_id", h.bookingHandler.ListRideBookings)
	bookingGroup.GET("/:id", h.bookingHandler.GetBooking)
	bookingGroup.POST("/:id/accept", h.bookingHandler.AcceptBooking)
	bookingGroup.POST("/:id/reject", h.bookingHandler.RejectBooking)
	bookingGroup.POST("/:id/cancel", h.bookingHandler.CancelBooking)
}
