package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeHTTP upgrades the connection and subscribes it to the student id
// given in the query string. Without one the client sees every event.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.hub == nil {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("ws upgrade status=failed err=%v", err)
		}
		return
	}

	studentID := strings.TrimSpace(r.URL.Query().Get("student_id"))
	client := NewClient(h.hub, conn, studentID)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
