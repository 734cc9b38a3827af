package memory

import (
	"sync"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

type slot struct {
	session   domain.Session
	transport ports.Transport
}

func (s slot) occupied() bool {
	return s.transport != nil
}

// Directory is the table of active sessions. Slot 0 is never handed out.
type Directory struct {
	mu    sync.Mutex
	slots []slot
	bus   ports.NotificationBus
}

var _ ports.SessionDirectory = (*Directory)(nil)

func NewDirectory(maxSessions int, bus ports.NotificationBus) *Directory {
	if maxSessions <= 0 {
		maxSessions = domain.DefaultMaxSessions
	}

	return &Directory{
		slots: make([]slot, maxSessions+1),
		bus:   bus,
	}
}

func (d *Directory) Capacity() int {
	return len(d.slots) - 1
}

func (d *Directory) Admit(name string, peer domain.Peer, transport ports.Transport, worker domain.WorkerID) (domain.SessionID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 1; i < len(d.slots); i++ {
		if d.slots[i].occupied() {
			continue
		}

		id := domain.SessionID(i)
		d.slots[i] = slot{
			session: domain.Session{
				ID:     id,
				Name:   name,
				Peer:   peer,
				Worker: worker,
			},
			transport: transport,
		}
		return id, nil
	}

	return 0, domain.ErrDirectoryFull
}

func (d *Directory) Release(id domain.SessionID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.inRange(id) || !d.slots[id].occupied() {
		return
	}

	_ = d.slots[id].transport.Close()
	d.slots[id] = slot{}
}

func (d *Directory) Lookup(id domain.SessionID) (domain.Session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.inRange(id) || !d.slots[id].occupied() {
		return domain.Session{}, false
	}

	return d.slots[id].session, true
}

func (d *Directory) LookupByTransport(transport ports.Transport) (domain.SessionID, bool) {
	if transport == nil {
		return 0, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 1; i < len(d.slots); i++ {
		if d.slots[i].occupied() && d.slots[i].transport == transport {
			return domain.SessionID(i), true
		}
	}

	return 0, false
}

func (d *Directory) Transport(id domain.SessionID) (ports.Transport, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.inRange(id) || !d.slots[id].occupied() {
		return nil, false
	}

	return d.slots[id].transport, true
}

func (d *Directory) Rename(id domain.SessionID, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.inRange(id) || !d.slots[id].occupied() {
		return domain.ErrSessionNotFound
	}

	for i := 1; i < len(d.slots); i++ {
		if domain.SessionID(i) == id || !d.slots[i].occupied() {
			continue
		}
		if d.slots[i].session.Name == name {
			return domain.ErrDuplicateName
		}
	}

	d.slots[id].session.Name = name
	return nil
}

func (d *Directory) ForEachOccupied(fn func(domain.Session)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 1; i < len(d.slots); i++ {
		if d.slots[i].occupied() {
			fn(d.slots[i].session)
		}
	}
}

func (d *Directory) Occupied() []domain.Session {
	sessions := make([]domain.Session, 0, len(d.slots))
	d.ForEachOccupied(func(session domain.Session) {
		sessions = append(sessions, session)
	})
	return sessions
}

// NotifyAll raises signal on every occupied session's worker. Raising
// happens after the directory lock is released.
func (d *Directory) NotifyAll(signal domain.Signal) {
	if d.bus == nil {
		return
	}

	for _, session := range d.Occupied() {
		_ = d.bus.Raise(session.Worker, signal)
	}
}

func (d *Directory) inRange(id domain.SessionID) bool {
	return id.Valid(len(d.slots) - 1)
}
