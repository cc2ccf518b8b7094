package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents an inbound WebSocket message from a client
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WebSocketClient represents an authenticated WebSocket connection
type WebSocketClient struct {
	SubjectID string
	Role      string
	Conn      *websocket.Conn
}

// WebSocketClaims are the JWT claims expected on a WebSocket handshake
type WebSocketClaims struct {
	jwt.RegisteredClaims
	SubjectID string `json:"sub_id"`
	Role      string `json:"role"`
}
