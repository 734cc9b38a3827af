package ports

import "github.com/bnema/shellchat/internal/domain"

type NotificationBus interface {
	Register(worker domain.WorkerID) Subscription
	Raise(worker domain.WorkerID, signal domain.Signal) error
}

// Subscription is consumed only by the goroutine that owns the worker.
type Subscription interface {
	C() <-chan domain.Signal
	// Ack re-arms signal so that a later Raise is delivered again.
	Ack(signal domain.Signal)
	Close()
}
