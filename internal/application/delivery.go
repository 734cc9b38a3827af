package application

import (
	"io"

	"github.com/bnema/shellchat/internal/domain"
)

// SendTo writes text straight to the sender's own transport when target is
// the sender, and queues it in target's mailbox otherwise.
func (s *Service) SendTo(from, target domain.SessionID, text string) {
	if target != from {
		s.mailbox.Deliver(target, from, text)
		return
	}

	transport, ok := s.directory.Transport(from)
	if !ok {
		return
	}
	if _, err := io.WriteString(transport, text); err != nil {
		s.logger.Debug("write to own transport", "session", int(from), "error", err)
	}
}

// Broadcast sends text to every occupied session in slot order, the sender
// included. Other sessions are woken together once every queue is filled.
func (s *Service) Broadcast(from domain.SessionID, text string) {
	for _, session := range s.directory.Occupied() {
		if session.ID == from {
			s.SendTo(from, from, text)
			continue
		}
		s.mailbox.Enqueue(session.ID, from, text)
	}
	s.directory.NotifyAll(domain.SignalDrain)
}
