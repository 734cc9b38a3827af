package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/shellchat/internal/adapters/transport/tcp"
	"github.com/bnema/shellchat/internal/adapters/transport/ws"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the shell and chat server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			app, err := wireApp(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.serve(ctx)
		},
	}

	cmd.Flags().String("listen", "", "TCP listen address")
	cmd.Flags().String("ws-listen", "", "WebSocket listen address (disabled when empty)")
	cmd.Flags().String("ws-path", "", "WebSocket endpoint path")
	cmd.Flags().Int("max-sessions", 0, "maximum number of concurrent sessions")
	cmd.Flags().Int("mailbox-capacity", 0, "pending messages kept per session")
	cmd.Flags().String("shell-path", "", "initial PATH of every session")
	cmd.Flags().String("motd", "", "file served as message of the day")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "", "log format (text, json)")

	return cmd
}

// serve runs every configured listener until ctx is cancelled or one of them
// fails.
func (a *app) serve(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	if a.cfg.Listen != "" {
		server := tcp.NewServer(a.cfg.Listen, a.service, a.logger)
		group.Go(func() error {
			return server.Serve(ctx)
		})
	}

	if a.cfg.WebSocket.Listen != "" {
		handler := ws.NewHandler(a.service, a.logger)
		group.Go(func() error {
			return ws.Serve(ctx, a.cfg.WebSocket.Listen, a.cfg.WebSocket.Path, handler)
		})
	}

	if a.watchMOTD != nil {
		group.Go(func() error {
			return a.watchMOTD(ctx)
		})
	}

	return group.Wait()
}
