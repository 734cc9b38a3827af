package application

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeChatScenario(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newLineTransport("10.0.0.1", 1001)
	aDone := h.connect(t, ctx, a)
	assert.True(t, strings.HasPrefix(a.output(), testMOTD+"*** User '(no name)' entered from 10.0.0.1/1001. ***\n"))

	b := newLineTransport("10.0.0.2", 1002)
	bDone := h.connect(t, ctx, b)
	waitOutput(t, a, "*** User '(no name)' entered from 10.0.0.2/1002. ***\n")

	b.send("name alice")
	renamed := "*** User from 10.0.0.2/1002 is named 'alice'. ***\n"
	waitOutput(t, b, renamed)
	waitOutput(t, a, renamed)

	a.send("name alice")
	waitOutput(t, a, "*** User 'alice' already exists. ***\n")
	assert.NotContains(t, b.output(), "already exists")

	a.send("tell 2 hi")
	waitOutput(t, b, "*** (no name) told you ***: hi\n")

	b.hangUp()
	require.NoError(t, waitServe(t, bDone))
	waitOutput(t, a, "*** User 'alice' left. ***\n")
	assert.True(t, b.isClosed())

	_, occupied := h.directory.Lookup(2)
	assert.False(t, occupied)

	c := newLineTransport("10.0.0.3", 1003)
	cDone := h.connect(t, ctx, c)
	id, ok := h.directory.LookupByTransport(c)
	require.True(t, ok)
	assert.Equal(t, domain.SessionID(2), id)

	cancel()
	require.NoError(t, waitServe(t, aDone))
	require.NoError(t, waitServe(t, cDone))
}

func TestServeExitBroadcastsDeparture(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newLineTransport("10.0.0.1", 1001)
	aDone := h.connect(t, ctx, a)
	b := newLineTransport("10.0.0.2", 1002)
	bDone := h.connect(t, ctx, b)

	b.send("exit")
	require.NoError(t, waitServe(t, bDone))
	waitOutput(t, a, "*** User '(no name)' left. ***\n")
	assert.True(t, b.isClosed())

	cancel()
	require.NoError(t, waitServe(t, aDone))
}

func TestServeReportsUnknownCommand(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newLineTransport("10.0.0.1", 1001)
	done := h.connect(t, ctx, a)

	a.send("no-such-program-here arg")
	waitOutput(t, a, "Unknown command: [no-such-program-here].\n% ")

	cancel()
	require.NoError(t, waitServe(t, done))
}

func TestServeRunsPipelinesAndBroadcastsUserPipeLogs(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newLineTransport("10.0.0.1", 1001)
	aDone := h.connect(t, ctx, a)
	b := newLineTransport("10.0.0.2", 1002)
	bDone := h.connect(t, ctx, b)

	a.send("echo hello | cat")
	waitOutput(t, a, "hello\n")

	a.send("echo secret >2")
	piped := "*** (no name) (#1) just piped 'echo secret >2' to (no name) (#2) ***\n"
	waitOutput(t, a, piped)
	waitOutput(t, b, piped)

	b.send("cat <1")
	waitOutput(t, b, "secret\n")
	waitOutput(t, a, "*** (no name) (#2) just received from (no name) (#1) by 'cat <1' ***\n")

	cancel()
	require.NoError(t, waitServe(t, aDone))
	require.NoError(t, waitServe(t, bDone))
}

func TestServeReclaimsPipesOfDepartedSession(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newLineTransport("10.0.0.1", 1001)
	aDone := h.connect(t, ctx, a)
	b := newLineTransport("10.0.0.2", 1002)
	bDone := h.connect(t, ctx, b)

	a.send("echo leak >2")
	waitOutput(t, a, "just piped")
	require.Equal(t, domain.PipeActive, h.pipes.State(domain.PipeKey{Writer: 1, Reader: 2}))

	a.hangUp()
	require.NoError(t, waitServe(t, aDone))
	assert.Equal(t, domain.PipeFree, h.pipes.State(domain.PipeKey{Writer: 1, Reader: 2}))

	cancel()
	require.NoError(t, waitServe(t, bDone))
}

func TestServeRejectsWhenDirectoryIsFull(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 1)
	_, _ = admitSession(t, h, "alice", 1001)

	transport := mocks.NewMockTransport(t)
	transport.EXPECT().Peer().Return(domain.Peer{IP: "10.0.0.9", Port: 4000})
	transport.EXPECT().Close().Return(nil)

	err := h.svc.Serve(context.Background(), transport)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDirectoryFull)
}
