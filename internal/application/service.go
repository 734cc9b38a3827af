package application

import (
	"errors"
	"io"
	"log/slog"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
	"github.com/google/uuid"
)

// Service is the context shared by every session goroutine. It is built once
// at startup and holds the shared structures of the server.
type Service struct {
	directory ports.SessionDirectory
	mailbox   ports.MailboxTable
	pipes     ports.PipeRegistry
	bus       ports.NotificationBus
	consoles  ports.ConsoleFactory
	motd      ports.MOTDSource

	logger     *slog.Logger
	newWorker  func() domain.WorkerID
	dispatcher *Dispatcher
}

var _ ports.SessionHandler = (*Service)(nil)

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWorkerIDs replaces the uuid based worker id generator.
func WithWorkerIDs(next func() domain.WorkerID) Option {
	return func(s *Service) {
		if next != nil {
			s.newWorker = next
		}
	}
}

func NewService(
	directory ports.SessionDirectory,
	mailbox ports.MailboxTable,
	pipes ports.PipeRegistry,
	bus ports.NotificationBus,
	consoles ports.ConsoleFactory,
	motd ports.MOTDSource,
	opts ...Option,
) *Service {
	s := &Service{
		directory: directory,
		mailbox:   mailbox,
		pipes:     pipes,
		bus:       bus,
		consoles:  consoles,
		motd:      motd,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newWorker: func() domain.WorkerID {
			return domain.WorkerID(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dispatcher = NewDispatcher(s)

	return s
}

// Wake asks the worker serving target to drain its mailbox. It is installed
// as the mailbox waker.
func (s *Service) Wake(target domain.SessionID) {
	session, ok := s.directory.Lookup(target)
	if !ok {
		return
	}

	if err := s.bus.Raise(session.Worker, domain.SignalDrain); err != nil && !errors.Is(err, domain.ErrWorkerNotFound) {
		s.logger.Warn("wake mailbox owner", "session", int(target), "error", err)
	}
}

func (s *Service) Dispatcher() *Dispatcher {
	return s.dispatcher
}
