package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const sendBufferSize = 64

// Conn is the transport surface the chat core needs from a websocket
// connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one live, authenticated connection. A user may hold several
// at once (multiple devices); each gets its own Client with its own id.
type Client struct {
	ID       string
	UserID   string
	Username string

	conn Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(conn Conn, userID, username string) *Client {
	return &Client{
		ID:       uuid.New().String(),
		UserID:   userID,
		Username: username,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
	}
}

// enqueue hands a frame to the write pump without blocking the caller.
// A full buffer means the client is too slow to keep up; the frame is
// dropped rather than stalling fan-out for everyone else.
func (c *Client) enqueue(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) writePump(log zerolog.Logger) {
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Warn().Err(err).Str("connId", c.ID).Msg("write failed, stopping pump")
			return
		}
	}
}

func (c *Client) close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	_ = c.conn.Close()
}
