package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
	"github.com/gorilla/websocket"
)

const (
	wsReadBufferSize  = 1024
	wsWriteBufferSize = 1024
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Handler upgrades HTTP requests and serves a chat session on each socket.
type Handler struct {
	sessions ports.SessionHandler
	logger   *slog.Logger
	upgrader websocket.Upgrader

	active sync.WaitGroup
}

func NewHandler(sessions ports.SessionHandler, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  wsReadBufferSize,
			WriteBufferSize: wsWriteBufferSize,
			// Any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	h.active.Add(1)
	defer h.active.Done()

	transport := NewConn(conn, domain.ParsePeer(r.RemoteAddr))
	defer transport.Close()

	if err := h.sessions.Serve(r.Context(), transport); err != nil && !errors.Is(err, domain.ErrDirectoryFull) {
		h.logger.Warn("websocket session ended with error", "peer", transport.Peer().String(), "error", err)
	}
}

// Wait blocks until every session started by the handler has finished.
func (h *Handler) Wait() {
	h.active.Wait()
}

// Serve listens on address and mounts the handler at path until ctx is
// cancelled. Request contexts derive from ctx so sessions end with it.
func Serve(ctx context.Context, address, path string, handler *Handler) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", address, err)
	}
	return ServeListener(ctx, listener, path, handler)
}

func ServeListener(ctx context.Context, listener net.Listener, path string, handler *Handler) error {
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	handler.logger.Info("websocket server listening", "address", listener.Addr().String(), "path", path)

	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving websocket: %w", err)
	}

	handler.Wait()
	return nil
}
