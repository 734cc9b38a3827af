package ports

import (
	"context"
	"io"

	"github.com/bnema/shellchat/internal/domain"
)

// Console is the pipeline executor bound to one session.
type Console interface {
	Parse(line string) []string
	// Commands strips shell syntax from tokens and returns one argv per program.
	Commands(tokens []string) []domain.Command
	Compile(line string) []domain.Stage
	// Execute runs one stage. The returned log is broadcast by the caller
	// when non-empty.
	Execute(ctx context.Context, stage domain.Stage) (string, error)
	Exited() bool
	Getenv(key string) string
	Setenv(key, value string)
}

type ConsoleConfig struct {
	ID     domain.SessionID
	Output io.Writer
}

type ConsoleFactory interface {
	NewConsole(cfg ConsoleConfig) Console
}

type MOTDSource interface {
	MOTD() string
}
