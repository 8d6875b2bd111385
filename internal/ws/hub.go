package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// Hub fans field-of-view patches out to every connected viewer.
type Hub struct {
	mu      sync.Mutex
	viewers map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{viewers: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.viewers[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.viewers, conn)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Send writes one message to a single viewer.
func Send(ctx context.Context, conn *websocket.Conn, message []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, message)
}

// Broadcast writes message to every viewer and drops the ones that fail.
func (h *Hub) Broadcast(ctx context.Context, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.viewers {
		if err := Send(ctx, conn, message); err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.viewers, conn)
		}
	}
}
