package tcp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoSessions greets the peer and echoes lines until the client leaves.
type echoSessions struct {
	served chan domain.Peer
}

func (e *echoSessions) Serve(ctx context.Context, transport ports.Transport) error {
	e.served <- transport.Peer()
	_, _ = fmt.Fprintf(transport, "hello %s\n", transport.Peer())

	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := transport.ReadLine()
			if err != nil {
				return
			}
			lines <- line
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return transport.Close()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			_, _ = io.WriteString(transport, "echo: "+line+"\n")
		}
	}
}

func TestServerServesConnectionsUntilCancelled(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	sessions := &echoSessions{served: make(chan domain.Peer, 1)}
	server := NewServer(listener.Addr().String(), sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ServeListener(ctx, listener) }()

	client, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer client.Close()
	reader := bufio.NewReader(client)

	peer := <-sessions.served
	assert.Equal(t, "127.0.0.1", peer.IP)
	assert.NotZero(t, peer.Port)

	greeting, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "hello "+peer.String()+"\n", greeting)

	_, err = io.WriteString(client, "who\r\n")
	require.NoError(t, err)
	reply, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "echo: who\n", reply)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = reader.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
}
