package toml

import (
	"fmt"
	"strings"

	"github.com/bnema/shellchat/internal/domain"
)

const currentSchemaVersion = 1

const (
	DefaultListen        = ":7001"
	DefaultWebSocketPath = "/ws"
	DefaultShellPath     = "bin:."
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

type Config struct {
	Version   int             `toml:"version" mapstructure:"version"`
	Listen    string          `toml:"listen" mapstructure:"listen"`
	WebSocket WebSocketConfig `toml:"websocket" mapstructure:"websocket"`
	Sessions  SessionsConfig  `toml:"sessions" mapstructure:"sessions"`
	Mailbox   MailboxConfig   `toml:"mailbox" mapstructure:"mailbox"`
	Shell     ShellConfig     `toml:"shell" mapstructure:"shell"`
	MOTD      MOTDConfig      `toml:"motd" mapstructure:"motd"`
	Log       LogConfig       `toml:"log" mapstructure:"log"`
}

// WebSocketConfig enables the WebSocket listener when Listen is set.
type WebSocketConfig struct {
	Listen string `toml:"listen" mapstructure:"listen"`
	Path   string `toml:"path" mapstructure:"path"`
}

type SessionsConfig struct {
	Max int `toml:"max" mapstructure:"max"`
}

type MailboxConfig struct {
	Capacity int `toml:"capacity" mapstructure:"capacity"`
}

type ShellConfig struct {
	Path string `toml:"path" mapstructure:"path"`
}

// MOTDConfig selects a file served as the message of the day. Without a path
// the greeting is rendered as a banner.
type MOTDConfig struct {
	Path     string `toml:"path,omitempty" mapstructure:"path"`
	Greeting string `toml:"greeting" mapstructure:"greeting"`
}

type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

func Default() Config {
	return Config{
		Version:   currentSchemaVersion,
		Listen:    DefaultListen,
		WebSocket: WebSocketConfig{Path: DefaultWebSocketPath},
		Sessions:  SessionsConfig{Max: domain.DefaultMaxSessions},
		Mailbox:   MailboxConfig{Capacity: domain.DefaultMailboxCapacity},
		Shell:     ShellConfig{Path: DefaultShellPath},
		MOTD:      MOTDConfig{Greeting: "Welcome to the information server."},
		Log:       LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Version == 0 {
		c.Version = currentSchemaVersion
	}
	if c.WebSocket.Path == "" {
		c.WebSocket.Path = defaults.WebSocket.Path
	}
	if c.Shell.Path == "" {
		c.Shell.Path = defaults.Shell.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
}

func (c Config) Validate() error {
	if c.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", c.Version, currentSchemaVersion)
	}
	if strings.TrimSpace(c.Listen) == "" && strings.TrimSpace(c.WebSocket.Listen) == "" {
		return fmt.Errorf("%w: no listen address configured", ErrInvalidConfig)
	}
	if c.Sessions.Max <= 0 {
		return fmt.Errorf("%w: sessions.max must be positive, got %d", ErrInvalidConfig, c.Sessions.Max)
	}
	if c.Mailbox.Capacity <= 0 {
		return fmt.Errorf("%w: mailbox.capacity must be positive, got %d", ErrInvalidConfig, c.Mailbox.Capacity)
	}
	if !strings.HasPrefix(c.WebSocket.Path, "/") {
		return fmt.Errorf("%w: websocket.path must start with /", ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
