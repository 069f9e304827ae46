package handler

import (
	"encoding/json"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/models"
	wspkg "github.com/churchpool/churchpool/internal/pkg/websocket"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WebSocketHandler owns the client-facing websocket endpoint
type WebSocketHandler struct {
	manager *wspkg.Manager
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
	}
}

// HandleWS handles GET /ws
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient registers the connection and runs its read loop. The
// connection only carries pings upstream; all domain traffic flows
// downstream through NotifyClient.
func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		var message models.WSMessage
		if err := json.Unmarshal(raw, &message); err != nil {
			h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		if message.Event == constants.EventPing {
			h.manager.SendMessage(client, constants.EventPong, nil)
		}
	}
}
