package motd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBanner = "****************************************\n" +
	"** Welcome to the information server. **\n" +
	"****************************************\n"

func TestBannerDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultBanner, Banner(""))
	assert.Equal(t, defaultBanner, NewStatic(DefaultGreeting).MOTD())
}

func TestBannerCustomGreeting(t *testing.T) {
	t.Parallel()

	want := "**********\n" +
		"** hola **\n" +
		"**********\n"
	assert.Equal(t, want, Banner("hola"))
}

func TestFileSourceFallsBackToBanner(t *testing.T) {
	t.Parallel()

	source, err := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, defaultBanner, source.MOTD())
}

func TestFileSourceReloadsOnChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "motd.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

	source, err := NewFileSource(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "first\n", source.MOTD())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- source.Watch(ctx) }()

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("second\n"), 0o600); err != nil {
			return false
		}
		return source.MOTD() == "second\n"
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
