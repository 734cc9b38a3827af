package application

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/shellchat/internal/adapters/memory"
	"github.com/bnema/shellchat/internal/adapters/shell"
	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports/mocks"
	"github.com/stretchr/testify/require"
)

const (
	testMOTD    = "welcome\n"
	waitFor     = 3 * time.Second
	pollEvery   = 10 * time.Millisecond
	testExePath = "/bin:/usr/bin"
)

// lineTransport feeds queued lines to the session and records its output.
type lineTransport struct {
	peer domain.Peer

	lines     chan string
	inputOnce sync.Once
	closed    chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	out bytes.Buffer
}

func newLineTransport(ip string, port uint16) *lineTransport {
	return &lineTransport{
		peer:   domain.Peer{IP: ip, Port: port},
		lines:  make(chan string, 16),
		closed: make(chan struct{}),
	}
}

func (t *lineTransport) ReadLine() (string, error) {
	select {
	case line, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-t.closed:
		return "", io.EOF
	}
}

func (t *lineTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.Write(p)
}

func (t *lineTransport) Close() error {
	t.closeOnce.Do(func() { close(t.closed) })
	return nil
}

func (t *lineTransport) Peer() domain.Peer {
	return t.peer
}

func (t *lineTransport) send(line string) {
	t.lines <- line
}

func (t *lineTransport) hangUp() {
	t.inputOnce.Do(func() { close(t.lines) })
}

func (t *lineTransport) output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.String()
}

func (t *lineTransport) isClosed() bool {
	select {
	case <-t.closed:
		return true
	default:
		return false
	}
}

type harness struct {
	svc       *Service
	directory *memory.Directory
	mailbox   *memory.Mailbox
	pipes     *memory.PipeRegistry
	bus       *memory.Bus
}

func newHarness(t *testing.T, maxSessions int) *harness {
	t.Helper()

	bus := memory.NewBus()
	directory := memory.NewDirectory(maxSessions, bus)
	mailbox := memory.NewMailbox(maxSessions, domain.DefaultMailboxCapacity, nil)
	pipes := memory.NewPipeRegistry(maxSessions)
	consoles := shell.NewFactory(directory, pipes, shell.WithDefaultPath(testExePath))

	motd := mocks.NewMockMOTDSource(t)
	motd.EXPECT().MOTD().Return(testMOTD).Maybe()

	svc := NewService(directory, mailbox, pipes, bus, consoles, motd)
	mailbox.SetWaker(svc.Wake)

	return &harness{
		svc:       svc,
		directory: directory,
		mailbox:   mailbox,
		pipes:     pipes,
		bus:       bus,
	}
}

// connect serves transport in the background and waits for the first prompt.
func (h *harness) connect(t *testing.T, ctx context.Context, transport *lineTransport) <-chan error {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- h.svc.Serve(ctx, transport)
	}()

	waitOutput(t, transport, domain.Prompt)
	return done
}

func waitOutput(t *testing.T, transport *lineTransport, want string) {
	t.Helper()

	require.Eventually(t, func() bool {
		return strings.Contains(transport.output(), want)
	}, waitFor, pollEvery, "output never contained %q, got %q", want, transport.output())
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()

	select {
	case err := <-done:
		return err
	case <-time.After(waitFor):
		t.Fatal("session did not terminate")
		return nil
	}
}
