package websocket

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeWait = 10 * time.Second

// Client represents a single connected browser tab.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	mu   sync.RWMutex
}

func newClient(id string, conn *websocket.Conn) *Client {
	return &Client{ID: id, conn: conn, send: make(chan []byte, 16)}
}

// SendMessage queues msg for the client. It never blocks; a full queue drops
// the message.
func (c *Client) SendMessage(msg []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// A nil channel means the client is disconnected.
	if c.send == nil {
		return
	}

	select {
	case c.send <- msg:
	default:
		slog.Warn("Client send channel full, dropping message", "clientID", c.ID)
	}
}

// Close closes the send channel. Calling it more than once is safe.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}

func (c *Client) queue() <-chan []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.send
}

// readPump discards incoming frames until the connection fails. It returns
// when the browser goes away.
func (c *Client) readPump(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || err == io.EOF || ctx.Err() != nil {
				slog.Debug("Live reload client disconnected", "clientID", c.ID)
			} else {
				slog.Debug("Live reload read error", "clientID", c.ID, "error", err)
			}
			return
		}
	}
}

// writePump sends queued messages until the send channel is closed.
func (c *Client) writePump() {
	defer c.conn.Close(websocket.StatusNormalClosure, "Server-side cleanup")

	for message := range c.queue() {
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		err := c.conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			slog.Debug("Live reload write error", "clientID", c.ID, "error", err)
			return
		}
	}
}
