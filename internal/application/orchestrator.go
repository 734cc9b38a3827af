package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

type session struct {
	id        domain.SessionID
	worker    domain.WorkerID
	transport ports.Transport
	console   ports.Console
	sub       ports.Subscription
	logger    *slog.Logger
}

// Serve runs one session on transport until the user exits, the transport
// fails or ctx is cancelled. The transport is closed when Serve returns.
func (s *Service) Serve(ctx context.Context, transport ports.Transport) error {
	peer := transport.Peer()
	worker := s.newWorker()
	logger := s.logger.With("worker", string(worker), "peer", peer.String())

	sub := s.bus.Register(worker)
	id, err := s.directory.Admit(domain.PlaceholderName, peer, transport, worker)
	if err != nil {
		sub.Close()
		_ = transport.Close()
		if errors.Is(err, domain.ErrDirectoryFull) {
			logger.Warn("rejecting connection", "error", err)
		}
		return fmt.Errorf("admit session from %s: %w", peer, err)
	}

	sess := &session{
		id:        id,
		worker:    worker,
		transport: transport,
		sub:       sub,
		logger:    logger.With("session", int(id)),
	}
	sess.console = s.consoles.NewConsole(ports.ConsoleConfig{ID: id, Output: transport})
	sess.logger.Info("session admitted")

	s.admit(sess)
	loopErr := s.loop(ctx, sess)
	s.teardown(sess)

	if loopErr != nil && !errors.Is(loopErr, io.EOF) && !errors.Is(loopErr, context.Canceled) {
		return fmt.Errorf("serve session %d: %w", id, loopErr)
	}
	return nil
}

func (s *Service) admit(sess *session) {
	// A reused slot may still carry queued messages of its previous owner.
	s.mailbox.Reset(sess.id)
	if err := s.bus.Raise(sess.worker, domain.SignalPipeGC); err != nil {
		sess.logger.Warn("schedule pipe reclaim", "error", err)
	}
	s.handlePending(sess)

	s.write(sess, s.motd.MOTD())
	s.Broadcast(sess.id, domain.EnteredMessage(sess.transport.Peer()))
	s.write(sess, domain.Prompt)
}

func (s *Service) loop(ctx context.Context, sess *session) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		for {
			line, err := sess.transport.ReadLine()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case signal := <-sess.sub.C():
			s.handleSignal(sess, signal)
		case line := <-lines:
			s.handleLine(ctx, sess, line)
			if sess.console.Exited() {
				return nil
			}
			s.write(sess, domain.Prompt)
		}
	}
}

func (s *Service) handleLine(ctx context.Context, sess *session, line string) {
	commands := sess.console.Commands(sess.console.Parse(line))
	if _, handled := s.dispatcher.Dispatch(sess.id, sess.console, commands); handled {
		return
	}

	for _, stage := range sess.console.Compile(line) {
		if !stage.Valid {
			s.write(sess, domain.UnknownCommandMessage(stage.Name()))
			return
		}

		log, err := sess.console.Execute(ctx, stage)
		if log != "" {
			s.Broadcast(sess.id, log)
		}
		if err != nil {
			sess.logger.Warn("execute stage", "command", stage.Name(), "error", err)
			return
		}
	}
}

// handlePending runs every notification already raised for sess.
func (s *Service) handlePending(sess *session) {
	for {
		select {
		case signal := <-sess.sub.C():
			s.handleSignal(sess, signal)
		default:
			return
		}
	}
}

func (s *Service) handleSignal(sess *session, signal domain.Signal) {
	sess.sub.Ack(signal)

	switch signal {
	case domain.SignalDrain:
		for _, envelope := range s.mailbox.Drain(sess.id) {
			s.write(sess, envelope.Text)
		}
	case domain.SignalPipeGC:
		if n := s.pipes.Collect(sess.id); n > 0 {
			sess.logger.Debug("reclaimed user pipes", "count", n)
		}
	}
}

func (s *Service) teardown(sess *session) {
	name := domain.PlaceholderName
	if current, ok := s.directory.Lookup(sess.id); ok {
		name = current.Name
	}

	s.Broadcast(sess.id, domain.LeftMessage(name))
	s.mailbox.Reset(sess.id)
	s.directory.Release(sess.id)
	if n := s.pipes.Collect(sess.id); n > 0 {
		sess.logger.Debug("reclaimed user pipes", "count", n)
	}
	sess.sub.Close()

	sess.logger.Info("session closed", "name", name)
}

func (s *Service) write(sess *session, text string) {
	if text == "" {
		return
	}
	if _, err := io.WriteString(sess.transport, text); err != nil {
		sess.logger.Debug("write to transport", "error", err)
	}
}
