package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

const defaultDialTimeout = 10 * time.Second

// client is one connection to a shellchat server.
type client interface {
	// Send writes one input line.
	Send(line string) error
	// CloseSend tells the server no more input follows.
	CloseSend() error
	// Receive copies server output to w until the server closes.
	Receive(w io.Writer) error
	Close() error
}

func newConnectCmd() *cobra.Command {
	var timeout time.Duration
	var quiet bool

	cmd := &cobra.Command{
		Use:   "connect <address>",
		Short: "Open an interactive session on a server",
		Long:  "connect dials host:port over TCP, or a ws:// or wss:// URL over WebSocket, and forwards standard input line by line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			address := args[0]

			var conn client
			dial := func(ctx context.Context) error {
				dialCtx, cancel := context.WithTimeout(ctx, timeout)
				defer cancel()

				var err error
				conn, err = dialClient(dialCtx, address)
				return err
			}

			var err error
			if quiet {
				err = dial(ctx)
			} else {
				err = runDialSpinner(ctx, cmd.ErrOrStderr(), "Connecting to "+address+"...", dial)
			}
			if err != nil {
				return fmt.Errorf("connect to %s: %w", address, err)
			}
			defer conn.Close()

			return runClient(conn, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultDialTimeout, "dial timeout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show the connection spinner")

	return cmd
}

func dialClient(ctx context.Context, address string) (client, error) {
	if strings.HasPrefix(address, "ws://") || strings.HasPrefix(address, "wss://") {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, address, nil)
		if err != nil {
			return nil, err
		}
		return &wsClient{conn: conn}, nil
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}
	return &tcpClient{conn: conn}, nil
}

// runClient forwards input lines until input ends, then waits for the server
// to finish writing.
func runClient(conn client, input io.Reader, output io.Writer) error {
	received := make(chan error, 1)
	go func() {
		received <- conn.Receive(output)
	}()

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		if err := conn.Send(scanner.Text()); err != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	_ = conn.CloseSend()

	return <-received
}

type tcpClient struct {
	conn net.Conn
}

func (c *tcpClient) Send(line string) error {
	_, err := io.WriteString(c.conn, line+"\n")
	return err
}

func (c *tcpClient) CloseSend() error {
	if tcpConn, ok := c.conn.(*net.TCPConn); ok {
		return tcpConn.CloseWrite()
	}
	return nil
}

func (c *tcpClient) Receive(w io.Writer) error {
	_, err := io.Copy(w, c.conn)
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (c *tcpClient) Close() error {
	return c.conn.Close()
}

type wsClient struct {
	conn *websocket.Conn
}

func (c *wsClient) Send(line string) error {
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

func (c *wsClient) CloseSend() error {
	return c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
}

func (c *wsClient) Receive(w io.Writer) error {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
}

func (c *wsClient) Close() error {
	return c.conn.Close()
}
