package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/pubsub"
)

// ReloadMessage is sent to every connected browser after a content reload.
type ReloadMessage struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// Bridge forwards content reload events from the bus to connected browsers.
type Bridge struct {
	subscriber pubsub.Subscriber

	mu      sync.RWMutex
	clients map[*Client]struct{}
	cancel  context.CancelFunc
}

// NewBridge creates a bridge listening on sub.
func NewBridge(sub pubsub.Subscriber) *Bridge {
	return &Bridge{
		subscriber: sub,
		clients:    make(map[*Client]struct{}),
	}
}

// Start subscribes to reload events. The subscription ends with Shutdown.
func (b *Bridge) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	b.cancel = cancel
	b.mu.Unlock()

	err := pubsub.Subscribe(ctx, b.subscriber, content.ReloadedEvent, func(ctx context.Context, r content.Reloaded) error {
		payload, err := json.Marshal(ReloadMessage{Type: "reload", Version: r.Version})
		if err != nil {
			return fmt.Errorf("encode reload message: %w", err)
		}
		b.Broadcast(payload)
		return nil
	})
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to %s: %w", content.ReloadedEvent.Name(), err)
	}
	slog.Info("Live reload bridge started")
	return nil
}

// Handler upgrades the request and keeps the client registered until it
// disconnects.
func (b *Bridge) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := websocket.Accept(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("Failed to upgrade connection to WebSocket", "error", err)
			return err
		}

		client := newClient(uuid.NewString(), conn)
		b.register(client)
		defer b.unregister(client)

		go client.writePump()
		client.readPump(c.Request().Context())
		return nil
	}
}

// Broadcast queues msg for every connected client.
func (b *Bridge) Broadcast(msg []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	slog.Debug("Broadcasting live reload message", "clients", len(b.clients))
	for client := range b.clients {
		client.SendMessage(msg)
	}
}

// Clients returns the number of connected clients.
func (b *Bridge) Clients() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Shutdown stops the subscription and disconnects every client.
func (b *Bridge) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	for client := range b.clients {
		client.Close()
		delete(b.clients, client)
	}
	return nil
}

func (b *Bridge) register(c *Client) {
	b.mu.Lock()
	b.clients[c] = struct{}{}
	b.mu.Unlock()
	slog.Debug("Live reload client registered", "clientID", c.ID)
}

func (b *Bridge) unregister(c *Client) {
	b.mu.Lock()
	delete(b.clients, c)
	b.mu.Unlock()
	c.Close()
}
