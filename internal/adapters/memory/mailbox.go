package memory

import (
	"sync"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

// Waker is asked to wake the worker of a session after a delivery.
type Waker func(target domain.SessionID)

// Mailbox holds one bounded FIFO queue per session slot.
type Mailbox struct {
	mu       sync.Mutex
	queues   [][]domain.Envelope
	capacity int
	wake     Waker
	dropped  func(target, sender domain.SessionID)
}

var _ ports.MailboxTable = (*Mailbox)(nil)

type MailboxOption func(*Mailbox)

// WithDropHook is called, outside the lock, for every message discarded
// because the recipient queue is full.
func WithDropHook(hook func(target, sender domain.SessionID)) MailboxOption {
	return func(m *Mailbox) {
		m.dropped = hook
	}
}

func NewMailbox(maxSessions, capacity int, wake Waker, opts ...MailboxOption) *Mailbox {
	if maxSessions <= 0 {
		maxSessions = domain.DefaultMaxSessions
	}
	if capacity <= 0 {
		capacity = domain.DefaultMailboxCapacity
	}

	m := &Mailbox{
		queues:   make([][]domain.Envelope, maxSessions+1),
		capacity: capacity,
		wake:     wake,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetWaker installs the wake-up hook. It must be called before the first
// delivery.
func (m *Mailbox) SetWaker(wake Waker) {
	m.mu.Lock()
	m.wake = wake
	m.mu.Unlock()
}

func (m *Mailbox) Deliver(target, sender domain.SessionID, text string) {
	if !m.enqueue(target, sender, text) {
		return
	}

	m.mu.Lock()
	wake := m.wake
	m.mu.Unlock()

	if wake != nil {
		wake(target)
	}
}

// Enqueue queues text like Deliver but leaves waking the target to the caller.
func (m *Mailbox) Enqueue(target, sender domain.SessionID, text string) {
	m.enqueue(target, sender, text)
}

// enqueue reports whether target names a slot; a full queue still counts.
func (m *Mailbox) enqueue(target, sender domain.SessionID, text string) bool {
	m.mu.Lock()
	if !target.Valid(len(m.queues) - 1) {
		m.mu.Unlock()
		return false
	}

	accepted := len(m.queues[target]) < m.capacity
	if accepted {
		m.queues[target] = append(m.queues[target], domain.Envelope{From: sender, Text: text})
	}
	m.mu.Unlock()

	if !accepted && m.dropped != nil {
		m.dropped(target, sender)
	}
	return true
}

func (m *Mailbox) Drain(id domain.SessionID) []domain.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !id.Valid(len(m.queues)-1) || len(m.queues[id]) == 0 {
		return nil
	}

	drained := m.queues[id]
	m.queues[id] = nil
	return drained
}

func (m *Mailbox) Reset(id domain.SessionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id.Valid(len(m.queues) - 1) {
		m.queues[id] = nil
	}
}

func (m *Mailbox) Pending(id domain.SessionID) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !id.Valid(len(m.queues) - 1) {
		return 0
	}
	return len(m.queues[id])
}
