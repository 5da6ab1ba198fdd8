package server

import "sync"

// Update is the JSON envelope for one value notification.
type Update struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Hub is the server's observe.Listener. It caches the latest serialized
// value per path and fans each update out to connected WebSocket clients.
//
// Delivery to clients is best-effort: a client whose outbound queue is
// full is disconnected rather than allowed to stall the dispatcher.
type Hub struct {
	mu sync.RWMutex

	// order holds paths in first-seen dispatch order so snapshots are
	// stable across calls.
	order   []string
	latest  map[string]string
	clients map[*client]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		latest:  make(map[string]string),
		clients: make(map[*client]struct{}),
	}
}

// OnUpdate records the latest value for path and broadcasts the envelope
// to all connected clients.
func (h *Hub) OnUpdate(path, value string) {
	h.mu.Lock()
	if _, seen := h.latest[path]; !seen {
		h.order = append(h.order, path)
	}
	h.latest[path] = value
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	u := Update{Path: path, Value: value}
	for _, c := range clients {
		select {
		case c.send <- u:
		default:
			// Queue full: the client is too far behind to catch up.
			c.drop()
		}
	}
}

// Snapshot returns the latest value per path in first-seen order.
func (h *Hub) Snapshot() []Update {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Update, 0, len(h.order))
	for _, path := range h.order {
		out = append(out, Update{Path: path, Value: h.latest[path]})
	}
	return out
}

// ClientCount returns the number of connected WebSocket clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}
