package handler

import (
	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/users/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the user protocol handlers
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the user handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers user routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	e.GET("/churches", h.userHandler.ListChurches)

	userGroup := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	userGroup.GET("/me", h.userHandler.GetProfile)
	userGroup.PUT("/me/vehicle", h.userHandler.RegisterVehicle)
}
