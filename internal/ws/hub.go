package ws

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// conn is the slice of *websocket.Conn the hub needs; tests supply fakes.
type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub tracks subscribers of the single calendar room and fans mutation
// payloads out to them. Delivery is at-most-once: a failed write drops
// the client, and nothing is replayed on reconnect.
type Hub struct {
	mu   sync.Mutex
	room map[conn]struct{}
}

func NewHub() *Hub {
	return &Hub{room: make(map[conn]struct{})}
}

// Handle is the per-client read loop, mounted via websocket.New.
func (h *Hub) Handle(c *websocket.Conn) {
	h.serve(c)
}

func (h *Hub) serve(c conn) {
	defer func() {
		h.leave(c)
		c.Close()
	}()

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			return
		}
		switch strings.TrimSpace(string(msg)) {
		case "join:calendar":
			h.join(c)
		case "leave:calendar":
			h.leave(c)
		}
	}
}

func (h *Hub) join(c conn) {
	h.mu.Lock()
	h.room[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("client joined calendar room", "subscribers", h.Subscribers())
}

func (h *Hub) leave(c conn) {
	h.mu.Lock()
	delete(h.room, c)
	h.mu.Unlock()
}

// Subscribers returns the current room size.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.room)
}

// Broadcast delivers {event, data} to every room member. It returns
// before delivery completes so mutation paths never block on slow or
// dead clients.
func (h *Hub) Broadcast(event string, data any) {
	payload, err := json.Marshal(struct {
		Event string `json:"event"`
		Data  any    `json:"data"`
	}{event, data})
	if err != nil {
		slog.Error("marshal broadcast", "event", event, "error", err)
		return
	}
	go h.send(payload)
}

func (h *Hub) send(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.room {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			// client went away mid-write
			delete(h.room, c)
			c.Close()
		}
	}
}
