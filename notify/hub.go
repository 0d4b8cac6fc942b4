package notify

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// DefaultWriteWait bounds a single websocket write
const DefaultWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// writeJSON writes v, giving up at the earlier of wait and the ctx deadline
func (c *client) writeJSON(ctx context.Context, v interface{}, wait time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if wait <= 0 {
		wait = DefaultWriteWait
	}
	deadline := time.Now().Add(wait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

// Hub keeps the open reminder websockets of each user and pushes reminder
// events to them
type Hub struct {
	// WriteWait is how long a peer that stopped reading may hold up a push
	WriteWait time.Duration

	mutex   sync.Mutex
	clients map[string]map[string]*client
}

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{WriteWait: DefaultWriteWait, clients: make(map[string]map[string]*client)}
}

// Name implements Channel
func (h *Hub) Name() string { return "websocket" }

// Serve upgrades the request and keeps the connection registered for userID
// until the peer goes away
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(zap.Error(err)).Error("failed to upgrade websocket")
		return
	}

	id := uuid.New().String()
	h.add(userID, id, &client{conn: conn})
	zap.S().Debugw("reminder websocket connected", "userId", userID, "connId", id)

	defer func() {
		h.remove(userID, id)
		conn.Close()
		zap.S().Debugw("reminder websocket disconnected", "userId", userID, "connId", id)
	}()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// Connections returns how many sockets are open for userID
func (h *Hub) Connections(userID string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients[userID])
}

// Notify implements Channel. A socket that misses the write deadline is
// dropped so it cannot stall the reminder run.
func (h *Hub) Notify(ctx context.Context, r models.Reminder) error {
	h.mutex.Lock()
	targets := make(map[string]*client, len(h.clients[r.UserID]))
	for id, c := range h.clients[r.UserID] {
		targets[id] = c
	}
	h.mutex.Unlock()

	event := map[string]interface{}{
		"event": "medication_reminder",
		"data":  r,
	}
	for id, c := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.writeJSON(ctx, event, h.WriteWait); err != nil {
			zap.S().Errorw("failed to push reminder to websocket", "error", err, "userId", r.UserID)
			h.remove(r.UserID, id)
			c.conn.Close()
		}
	}
	return nil
}

func (h *Hub) add(userID, id string, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[string]*client)
	}
	h.clients[userID][id] = c
}

func (h *Hub) remove(userID, id string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients[userID], id)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}
