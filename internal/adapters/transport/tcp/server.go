package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

// Server accepts TCP connections and hands each one to the session handler
// on its own goroutine.
type Server struct {
	address  string
	sessions ports.SessionHandler
	logger   *slog.Logger

	// activeConnections lets Serve wait for every session to finish its
	// teardown before returning.
	activeConnections sync.WaitGroup
}

func NewServer(address string, sessions ports.SessionHandler, logger *slog.Logger) *Server {
	return &Server{
		address:  address,
		sessions: sessions,
		logger:   logger,
	}
}

// Serve listens on the configured address and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.address, err)
	}
	return s.ServeListener(ctx, listener)
}

func (s *Server) ServeListener(ctx context.Context, listener net.Listener) error {
	defer listener.Close()

	// Unblock Accept when the context is cancelled.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	s.logger.Info("tcp server listening", "address", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("accept failed", "error", err)
			continue
		}

		s.activeConnections.Add(1)
		go func() {
			defer s.activeConnections.Done()
			s.handleConnection(ctx, conn)
		}()
	}

	s.activeConnections.Wait()
	return nil
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	transport := NewConn(conn)
	defer transport.Close()

	if err := s.sessions.Serve(ctx, transport); err != nil {
		if errors.Is(err, domain.ErrDirectoryFull) {
			return
		}
		s.logger.Warn("session ended with error", "peer", transport.Peer().String(), "error", err)
	}
}
