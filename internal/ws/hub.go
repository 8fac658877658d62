package ws

import (
	"log"
	"sync"
)

// Hub routes match events to connected students. A client subscribes with
// its student id; an empty id subscribes to every event (monitoring).
type Hub struct {
	clients    map[*Client]bool
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type delivery struct {
	studentID string
	payload   []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("ws connected student_id=%q total_clients=%d", client.studentID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("ws disconnected total_clients=%d", total)
			}

		case d := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if c.studentID == "" || c.studentID == d.studentID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- d.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Deliver queues one event for the given student. A full queue drops the
// event rather than blocking the subscriber loop.
func (h *Hub) Deliver(studentID string, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- delivery{studentID: studentID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("ws delivery dropped reason=buffer_full student_id=%s", studentID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
