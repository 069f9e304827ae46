package handler

import (
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
	"github.com/churchpool/churchpool/services/realtime/handler/nats"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the realtime push handlers
type Handler struct {
	wsHandler   *WebSocketHandler
	natsHandler *nats.NatsHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the realtime handlers
func NewHandler(wsHandler *WebSocketHandler, natsHandler *nats.NatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		wsHandler:   wsHandler,
		natsHandler: natsHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the websocket endpoint on the Echo instance.
// Authentication happens inside the handshake, not via middleware,
// because browsers cannot set headers on websocket dials.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.wsHandler.HandleWS)
}

// InitNATSConsumers subscribes the realtime push consumers
func (h *Handler) InitNATSConsumers(client *natspkg.Client) error {
	return h.natsHandler.InitConsumers(client)
}

// Stop shuts down the NATS consumers
func (h *Handler) Stop() {
	h.natsHandler.Stop()
}
