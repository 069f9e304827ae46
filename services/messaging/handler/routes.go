package handler

import (
	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
	"github.com/churchpool/churchpool/services/messaging/handler/http"
	"github.com/churchpool/churchpool/services/messaging/handler/nats"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the messaging protocol handlers
type Handler struct {
	messagingHandler *http.MessagingHandler
	natsHandler      *nats.NatsHandler
	cfg              *models.Config
}

// NewHandler creates and initializes the messaging handlers
func NewHandler(messagingHandler *http.MessagingHandler, natsHandler *nats.NatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		messagingHandler: messagingHandler,
		natsHandler:      natsHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers messaging routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	conversationGroup := e.Group("/conversations", middleware.JWTAuthMiddleware(h.cfg.JWT))
	conversationGroup.POST("", h.messagingHandler.OpenConversation)
	conversationGroup.GET("", h.messagingHandler.ListConversations)
	conversationGroup.GET("/:id/messages", h.messagingHandler.ListMessages)
	conversationGroup.POST("/:id/messages", h.messagingHandler.SendMessage)
	conversationGroup.POST("/:id/read", h.messagingHandler.MarkMessagesAsRead)
}

// InitNATSConsumers subscribes the messaging service's event consumers
func (h *Handler) InitNATSConsumers(client *natspkg.Client) error {
	return h.natsHandler.InitConsumers(client)
}

// Stop shuts down the NATS consumers
func (h *Handler) Stop() {
	h.natsHandler.Stop()
}
