package wshub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"

	"spyroom/internal/events"
)

// Client represents a single WebSocket connection in the hub. PlayerID is
// the connection identity used everywhere else in the system.
type Client struct {
	PlayerID string
	Conn     *websocket.Conn
	Send     chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket
// connection until the channel closes or the context ends.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks every live connection and routes outbound events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.PlayerID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[playerID]; ok {
		close(c.Send)
		delete(h.clients, playerID)
	}
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dispatch delivers one event: to every connection when it has no recipient
// list, otherwise to each listed identity still connected. Non-blocking:
// a client with a full send buffer misses the message.
func (h *Hub) Dispatch(ev events.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Hub] marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if ev.Recipients == nil {
		for _, c := range h.clients {
			h.send(c, data)
		}
		return
	}
	for _, id := range ev.Recipients {
		if c, ok := h.clients[id]; ok {
			h.send(c, data)
		}
	}
}

// Run drains the bus into Dispatch until the bus channel closes.
func (h *Hub) Run(bus *events.Bus) {
	for ev := range bus.Events {
		h.Dispatch(ev)
	}
}

func (h *Hub) send(c *Client, data []byte) {
	select {
	case c.Send <- data:
	default:
		// Drop message if channel full
	}
}
