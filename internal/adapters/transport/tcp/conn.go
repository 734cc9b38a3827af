package tcp

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

// Conn adapts a stream connection to a line transport.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
	peer   domain.Peer

	// writes come from the session goroutine and from the output copiers of
	// spawned programs.
	writeMu sync.Mutex

	closeOnce sync.Once
	closeErr  error
}

var _ ports.Transport = (*Conn)(nil)

func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:   conn,
		reader: bufio.NewReader(conn),
		peer:   domain.ParsePeer(conn.RemoteAddr().String()),
	}
}

func (c *Conn) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLine(line), nil
		}
		return "", err
	}
	return trimLine(line), nil
}

func (c *Conn) Write(p []byte) (int, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.Write(p)
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

func (c *Conn) Peer() domain.Peer {
	return c.peer
}

func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
