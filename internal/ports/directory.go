package ports

import "github.com/bnema/shellchat/internal/domain"

type SessionDirectory interface {
	Admit(name string, peer domain.Peer, transport Transport, worker domain.WorkerID) (domain.SessionID, error)
	Release(id domain.SessionID)
	Lookup(id domain.SessionID) (domain.Session, bool)
	LookupByTransport(transport Transport) (domain.SessionID, bool)
	Transport(id domain.SessionID) (Transport, bool)
	Rename(id domain.SessionID, name string) error
	// ForEachOccupied visits occupied slots in ascending order while holding
	// the directory lock. fn must not call into other shared structures.
	ForEachOccupied(fn func(domain.Session))
	Occupied() []domain.Session
	NotifyAll(signal domain.Signal)
	Capacity() int
}
