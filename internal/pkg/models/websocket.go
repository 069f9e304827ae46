package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message envelope
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient tracks an authenticated connection
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON writes a frame to the connection. gorilla/websocket allows
// only one concurrent writer, and pushes arrive from independent NATS
// consumer goroutines, so writes are serialized here.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// WebSocketClaims are the JWT claims expected on the websocket handshake
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
