package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

const DefaultPath = "bin:."

const outFileMode = 0o644

type Factory struct {
	directory   ports.SessionDirectory
	pipes       ports.PipeRegistry
	defaultPath string
	logger      *slog.Logger
}

var _ ports.ConsoleFactory = (*Factory)(nil)

type Option func(*Factory)

func WithDefaultPath(path string) Option {
	return func(f *Factory) {
		if strings.TrimSpace(path) != "" {
			f.defaultPath = path
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func NewFactory(directory ports.SessionDirectory, pipes ports.PipeRegistry, opts ...Option) *Factory {
	f := &Factory{
		directory:   directory,
		pipes:       pipes,
		defaultPath: DefaultPath,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) NewConsole(cfg ports.ConsoleConfig) ports.Console {
	return &Console{
		id:        cfg.ID,
		out:       cfg.Output,
		directory: f.directory,
		pipes:     f.pipes,
		env:       map[string]string{"PATH": f.defaultPath},
		logger:    f.logger.With("session", int(cfg.ID)),
	}
}

// Console executes the pipelines of one session. It is used only by the
// goroutine serving that session.
type Console struct {
	id        domain.SessionID
	out       io.Writer
	directory ports.SessionDirectory
	pipes     ports.PipeRegistry
	env       map[string]string
	exited    bool
	logger    *slog.Logger

	// carry holds the output of the previous stage when it feeds the next one.
	carry *bytes.Buffer
}

var _ ports.Console = (*Console)(nil)

func (c *Console) Parse(line string) []string {
	return tokenize(line)
}

func (c *Console) Commands(tokens []string) []domain.Command {
	return commandsFromSegments(splitSegments(tokens))
}

func (c *Console) Compile(line string) []domain.Stage {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	if tokens[0] == exitCommand {
		c.exited = true
		return nil
	}

	segments := splitSegments(tokens)
	trimmed := strings.TrimSpace(line)
	stages := make([]domain.Stage, 0, len(segments))
	for i, seg := range segments {
		path, found := c.lookPath(seg.argv[0])
		stages = append(stages, domain.Stage{
			Argv:       seg.argv,
			Path:       path,
			Valid:      found,
			Line:       trimmed,
			PipeNext:   i < len(segments)-1,
			OutFile:    seg.outFile,
			ReadsUser:  seg.hasFrom,
			FromUser:   seg.fromUser,
			WritesUser: seg.hasTo,
			ToUser:     seg.toUser,
		})
	}

	c.carry = nil
	return stages
}

func (c *Console) Execute(ctx context.Context, stage domain.Stage) (string, error) {
	if !stage.Valid {
		return "", fmt.Errorf("execute %q: command not found", stage.Name())
	}

	var logs strings.Builder
	var stdin io.Reader = strings.NewReader("")
	if c.carry != nil {
		stdin = c.carry
		c.carry = nil
	}

	if stage.ReadsUser {
		reader, log, ok := c.openInbound(stage)
		if ok {
			defer reader.Close()
			stdin = reader
			logs.WriteString(log)
		} else {
			stdin = strings.NewReader("")
		}
	}

	var stdout io.Writer = c.out
	var next *bytes.Buffer
	var outbound *outboundPipe
	var file *os.File

	switch {
	case stage.WritesUser:
		pipe, ok := c.openOutbound(stage)
		if ok {
			outbound = pipe
			stdout = pipe.writer
		} else {
			stdout = io.Discard
		}
	case stage.OutFile != "":
		f, err := os.OpenFile(stage.OutFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outFileMode)
		if err != nil {
			return logs.String(), fmt.Errorf("open output file %q: %w", stage.OutFile, err)
		}
		file = f
		stdout = f
	case stage.PipeNext:
		next = &bytes.Buffer{}
		stdout = next
	}

	runErr := c.run(ctx, stage, stdin, stdout)

	if file != nil {
		if err := file.Close(); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("close output file %q: %w", stage.OutFile, err))
		}
	}
	if next != nil {
		c.carry = next
	}
	if outbound != nil {
		log, err := c.finishOutbound(outbound, stage.Line)
		if err != nil {
			runErr = errors.Join(runErr, err)
		} else {
			logs.WriteString(log)
		}
	}

	return logs.String(), runErr
}

func (c *Console) Exited() bool {
	return c.exited
}

func (c *Console) Getenv(key string) string {
	return c.env[key]
}

func (c *Console) Setenv(key, value string) {
	c.env[key] = value
}

func (c *Console) run(ctx context.Context, stage domain.Stage, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, stage.Path)
	cmd.Args = append([]string(nil), stage.Argv...)
	cmd.Env = c.environ()
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = c.out

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.logger.Debug("command exited with failure", "command", stage.Name(), "code", exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("run %q: %w", stage.Name(), err)
	}
	return nil
}

func (c *Console) openInbound(stage domain.Stage) (io.ReadCloser, string, bool) {
	writer, ok := c.directory.Lookup(stage.FromUser)
	if !ok {
		c.reply(domain.UnknownUserMessage(strconv.Itoa(int(stage.FromUser))))
		return nil, "", false
	}

	key := domain.PipeKey{Writer: stage.FromUser, Reader: c.id}
	endpoint, err := c.pipes.Consume(key)
	if err != nil {
		c.reply(domain.PipeMissingMessage(key))
		return nil, "", false
	}
	if endpoint.Writer != nil {
		_ = endpoint.Writer.Close()
	}

	me, _ := c.directory.Lookup(c.id)
	return endpoint.Reader, domain.ReceivedMessage(me, writer, stage.Line), true
}

type outboundPipe struct {
	key    domain.PipeKey
	target domain.Session
	reader io.ReadCloser
	writer io.WriteCloser
}

func (c *Console) openOutbound(stage domain.Stage) (*outboundPipe, bool) {
	target, ok := c.directory.Lookup(stage.ToUser)
	if !ok {
		c.reply(domain.UnknownUserMessage(strconv.Itoa(int(stage.ToUser))))
		return nil, false
	}

	key := domain.PipeKey{Writer: c.id, Reader: stage.ToUser}
	if err := c.pipes.Open(key); err != nil {
		c.reply(domain.PipeExistsMessage(key))
		return nil, false
	}

	reader, writer := newConduit()
	return &outboundPipe{key: key, target: target, reader: reader, writer: writer}, true
}

func (c *Console) finishOutbound(pipe *outboundPipe, line string) (string, error) {
	if err := pipe.writer.Close(); err != nil {
		c.pipes.Abort(pipe.key)
		return "", fmt.Errorf("close user pipe %s: %w", pipe.key, err)
	}

	if err := c.pipes.Attach(pipe.key, pipe.reader, pipe.writer); err != nil {
		_ = pipe.reader.Close()
		c.pipes.Abort(pipe.key)
		return "", fmt.Errorf("attach user pipe %s: %w", pipe.key, err)
	}

	me, _ := c.directory.Lookup(c.id)
	return domain.PipedMessage(me, line, pipe.target), nil
}

func (c *Console) reply(text string) {
	_, _ = io.WriteString(c.out, text)
}

func (c *Console) environ() []string {
	env := make([]string, 0, len(c.env))
	for key, value := range c.env {
		env = append(env, key+"="+value)
	}
	sort.Strings(env)
	return env
}

// lookPath resolves name against the session PATH rather than the server's.
func (c *Console) lookPath(name string) (string, bool) {
	if strings.Contains(name, "/") {
		return name, isExecutable(name)
	}

	for _, dir := range filepath.SplitList(c.env["PATH"]) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if !strings.ContainsRune(candidate, filepath.Separator) {
			candidate = "." + string(filepath.Separator) + candidate
		}
		if isExecutable(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
