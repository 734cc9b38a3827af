package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tomlconfig "github.com/bnema/shellchat/internal/adapters/config/toml"
	"github.com/bnema/shellchat/internal/adapters/transport/tcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestConfigInitWritesDefaultsOnce(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	path := filepath.Join(home, ".config", "shellchat", "config.toml")
	assert.Equal(t, "wrote "+path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "listen = ")
	assert.Contains(t, string(data), ":7001")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, tomlconfig.ErrConfigExists)

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowMergesFileAndEnvironment(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sessions]\nmax = 8\n"), 0o600))
	t.Setenv("SHELLCHAT_SHELL_PATH", "/opt/bin")

	stdout, _, err := executeCLI(t, home, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "max = 8")
	assert.Contains(t, stdout, "/opt/bin")
}

func TestServeRejectsInvalidFlags(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "serve", "--log-format", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, tomlconfig.ErrInvalidConfig)
}

func TestConnectRunsSessionAgainstServer(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := tomlconfig.Default()
	cfg.Shell.Path = "/bin:/usr/bin"
	app, err := wireApp(cfg, io.Discard)
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() {
		served <- tcp.NewServer(listener.Addr().String(), app.service, app.logger).ServeListener(ctx, listener)
	}()

	stdout, _, err := executeCLIWithInput(t, home, "name alice\nwho\nsetenv GREETING hi\nprintenv GREETING\nexit\n",
		"connect", "--quiet", listener.Addr().String())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "****************************************\n** Welcome to the information server. **\n"))
	assert.Contains(t, stdout, "*** User '(no name)' entered from 127.0.0.1/")
	assert.Contains(t, stdout, "is named 'alice'. ***\n")
	assert.Contains(t, stdout, "1\talice\t127.0.0.1/")
	assert.Contains(t, stdout, "\t<-me\n")
	assert.Contains(t, stdout, "GREETING=hi\n")

	cancel()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestConnectReportsDialFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	require.NoError(t, listener.Close())

	_, _, err = executeCLI(t, t.TempDir(), "connect", "--quiet", "--timeout", "1s", address)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to "+address)
}

func TestRunDialSpinnerReturnsDialError(t *testing.T) {
	dialErr := errors.New("refused")
	output := &bytes.Buffer{}

	err := runDialSpinner(context.Background(), output, "Connecting...", func(context.Context) error {
		return dialErr
	})
	assert.ErrorIs(t, err, dialErr)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
