package ws

import (
	"strings"
	"sync"
	"time"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

// Conn is a line transport over a WebSocket. Every text frame carries one or
// more lines and every write is sent as one text frame.
type Conn struct {
	conn *websocket.Conn
	peer domain.Peer

	// pending holds lines of a multi-line frame not yet returned.
	pending []string

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

var _ ports.Transport = (*Conn)(nil)

func NewConn(conn *websocket.Conn, peer domain.Peer) *Conn {
	return &Conn{conn: conn, peer: peer}
}

func (c *Conn) ReadLine() (string, error) {
	for len(c.pending) == 0 {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return "", err
		}
		c.pending = splitFrame(string(data))
	}

	line := c.pending[0]
	c.pending = c.pending[1:]
	return line, nil
}

func (c *Conn) Write(p []byte) (int, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := c.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(wsWriteTimeout),
		)
		c.writeMu.Unlock()
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

func (c *Conn) Peer() domain.Peer {
	return c.peer
}

// splitFrame returns the lines of a frame. A frame without a newline is one
// line, and an empty frame is an empty line.
func splitFrame(frame string) []string {
	frame = strings.TrimSuffix(frame, "\n")
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
