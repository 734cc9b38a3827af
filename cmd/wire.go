package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tomlconfig "github.com/bnema/shellchat/internal/adapters/config/toml"
	"github.com/bnema/shellchat/internal/adapters/memory"
	"github.com/bnema/shellchat/internal/adapters/render/motd"
	"github.com/bnema/shellchat/internal/adapters/shell"
	"github.com/bnema/shellchat/internal/application"
	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg     tomlconfig.Config
	logger  *slog.Logger
	service *application.Service
	// watchMOTD reloads the message of the day; nil for a static banner.
	watchMOTD func(context.Context) error
}

// flagKeys maps config keys to the flags that may override them.
var flagKeys = map[string]string{
	"listen":           "listen",
	"websocket.listen": "ws-listen",
	"websocket.path":   "ws-path",
	"sessions.max":     "max-sessions",
	"mailbox.capacity": "mailbox-capacity",
	"shell.path":       "shell-path",
	"motd.path":        "motd",
	"log.level":        "log-level",
	"log.format":       "log-format",
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (tomlconfig.Config, error) {
	v := viper.New()
	for key, name := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return tomlconfig.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := tomlconfig.Load(v, opts.configPath)
	if err != nil {
		return tomlconfig.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func wireApp(cfg tomlconfig.Config, logOutput io.Writer) (*app, error) {
	logger, err := newLogger(cfg.Log, logOutput)
	if err != nil {
		return nil, err
	}

	bus := memory.NewBus()
	directory := memory.NewDirectory(cfg.Sessions.Max, bus)
	pipes := memory.NewPipeRegistry(cfg.Sessions.Max)
	mailbox := memory.NewMailbox(cfg.Sessions.Max, cfg.Mailbox.Capacity, nil,
		memory.WithDropHook(func(target, sender domain.SessionID) {
			logger.Debug("mailbox full, message dropped", "target", int(target), "sender", int(sender))
		}),
	)

	consoles := shell.NewFactory(directory, pipes,
		shell.WithDefaultPath(cfg.Shell.Path),
		shell.WithLogger(logger),
	)

	var source ports.MOTDSource = motd.NewStatic(cfg.MOTD.Greeting)
	var watch func(context.Context) error
	if cfg.MOTD.Path != "" {
		fileSource, err := motd.NewFileSource(cfg.MOTD.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("wire motd source: %w", err)
		}
		source = fileSource
		watch = fileSource.Watch
	}

	service := application.NewService(directory, mailbox, pipes, bus, consoles, source,
		application.WithLogger(logger),
	)
	mailbox.SetWaker(service.Wake)

	return &app{
		cfg:       cfg,
		logger:    logger,
		service:   service,
		watchMOTD: watch,
	}, nil
}

func newLogger(cfg tomlconfig.LogConfig, output io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(output, handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(output, handlerOpts)), nil
}
