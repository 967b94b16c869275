package handlers

import (
	"log"
	"net/http"

	"github.com/aidosk/courtscore/live"
	"github.com/aidosk/courtscore/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub      *live.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler builds the upgrade handler. An empty allowedOrigin
// admits any origin (local development); otherwise the Origin header must
// match exactly.
func NewWebSocketHandler(hub *live.Hub, allowedOrigin string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return allowedOrigin == "" || r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// ServeWs upgrades the connection and subscribes the client to the matchUp's
// live room at /ws/matchups/{id}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		log.Printf("failed to upgrade connection for matchUp %d: %v", id, err)
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: services.ScoreRoomID(id),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
