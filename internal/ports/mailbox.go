package ports

import "github.com/bnema/shellchat/internal/domain"

type MailboxTable interface {
	// Deliver enqueues text for target and wakes its worker. A full queue
	// drops the message without reporting it.
	Deliver(target, sender domain.SessionID, text string)
	// Enqueue queues text without waking the target.
	Enqueue(target, sender domain.SessionID, text string)
	Drain(id domain.SessionID) []domain.Envelope
	Reset(id domain.SessionID)
	Pending(id domain.SessionID) int
}
