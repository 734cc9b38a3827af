package ports

import (
	"context"

	"github.com/bnema/shellchat/internal/domain"
)

// Transport is the line-oriented connection of one session.
type Transport interface {
	// ReadLine blocks until a full line is available. The line terminator
	// (and a trailing carriage return) is stripped.
	ReadLine() (string, error)
	Write(p []byte) (int, error)
	Close() error
	Peer() domain.Peer
}

// SessionHandler serves one connected transport until the session ends.
type SessionHandler interface {
	Serve(ctx context.Context, transport Transport) error
}
