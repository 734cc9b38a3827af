package memory

import (
	"fmt"
	"sync"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

// Bus routes signals to worker goroutines. Pending signals of the same kind
// coalesce until the worker acknowledges them.
type Bus struct {
	mu      sync.Mutex
	workers map[domain.WorkerID]*subscription
}

var _ ports.NotificationBus = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{workers: map[domain.WorkerID]*subscription{}}
}

type subscription struct {
	bus     *Bus
	worker  domain.WorkerID
	ch      chan domain.Signal
	pending map[domain.Signal]bool
}

func (b *Bus) Register(worker domain.WorkerID) ports.Subscription {
	sub := &subscription{
		bus:     b,
		worker:  worker,
		ch:      make(chan domain.Signal, len(domain.Signals)),
		pending: make(map[domain.Signal]bool, len(domain.Signals)),
	}

	b.mu.Lock()
	b.workers[worker] = sub
	b.mu.Unlock()

	return sub
}

func (b *Bus) Raise(worker domain.WorkerID, signal domain.Signal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.workers[worker]
	if !ok {
		return fmt.Errorf("raise %s for %s: %w", signal, worker, domain.ErrWorkerNotFound)
	}
	if sub.pending[signal] {
		return nil
	}

	// At most one signal per kind is in flight, so the channel never blocks.
	sub.pending[signal] = true
	sub.ch <- signal
	return nil
}

func (b *Bus) Registered(worker domain.WorkerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.workers[worker]
	return ok
}

func (s *subscription) C() <-chan domain.Signal {
	return s.ch
}

func (s *subscription) Ack(signal domain.Signal) {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	delete(s.pending, signal)
}

func (s *subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if current, ok := s.bus.workers[s.worker]; ok && current == s {
		delete(s.bus.workers, s.worker)
	}
}
