package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/shellchat"
	envPrefix  = "SHELLCHAT"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultPath is ~/.config/shellchat/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir, configName+"."+configType), nil
}

// Load merges defaults, the config file, SHELLCHAT_* variables and any flags
// already bound to cfg. An explicit path must exist; the default one may not.
func Load(cfg *viper.Viper, path string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	setDefaults(cfg)
	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if _, err := os.Stat(path); err == nil || explicit {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var loaded Config
	if err := cfg.Unmarshal(&loaded); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	loaded.applyDefaults()
	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper) {
	defaults := Default()
	cfg.SetDefault("version", defaults.Version)
	cfg.SetDefault("listen", defaults.Listen)
	cfg.SetDefault("websocket.listen", defaults.WebSocket.Listen)
	cfg.SetDefault("websocket.path", defaults.WebSocket.Path)
	cfg.SetDefault("sessions.max", defaults.Sessions.Max)
	cfg.SetDefault("mailbox.capacity", defaults.Mailbox.Capacity)
	cfg.SetDefault("shell.path", defaults.Shell.Path)
	cfg.SetDefault("motd.path", defaults.MOTD.Path)
	cfg.SetDefault("motd.greeting", defaults.MOTD.Greeting)
	cfg.SetDefault("log.level", defaults.Log.Level)
	cfg.SetDefault("log.format", defaults.Log.Format)
}
