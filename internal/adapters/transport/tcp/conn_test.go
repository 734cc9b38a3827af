package tcp

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnReadLineStripsTerminators(t *testing.T) {
	t.Parallel()

	server, client := net.Pipe()
	conn := NewConn(server)
	defer conn.Close()

	go func() {
		_, _ = io.WriteString(client, "who\r\nname alice\ntrailing")
		_ = client.Close()
	}()

	for _, want := range []string{"who", "name alice", "trailing"} {
		line, err := conn.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := conn.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConnCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	server, client := net.Pipe()
	defer client.Close()
	conn := NewConn(server)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	_, err := conn.Write([]byte("late"))
	assert.Error(t, err)
}
