package ws

import (
	log "log/slog"
	"sync"

	"github.com/goccy/go-json"
)

// Hub tracks the live websocket connections per user and pushes
// notification payloads to them. A user may hold several connections
// (multiple tabs); a push goes to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint64]map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.clients[c.userID]
	if !ok {
		conns = make(map[*Client]struct{})
		h.clients[c.userID] = conns
	}
	conns[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, exists := conns[c]; exists {
			delete(conns, c)
			close(c.send)
			if len(conns) == 0 {
				delete(h.clients, c.userID)
			}
		}
	}
}

// Push serializes the payload and queues it on every connection the
// user currently holds. Slow clients get disconnected instead of
// blocking the caller.
func (h *Hub) Push(userID uint64, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error("marshal push payload error", "err", err)
		return
	}

	// Sends run under the read lock; unregister closes the send channel
	// under the write lock, so a send can never hit a closed channel.
	var slow []*Client
	h.mu.RLock()
	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.unregister(c)
	}
}

// Online reports whether the user has at least one live connection.
func (h *Hub) Online(userID uint64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}
