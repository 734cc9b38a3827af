package ports

import (
	"io"

	"github.com/bnema/shellchat/internal/domain"
)

type PipeRegistry interface {
	Open(key domain.PipeKey) error
	Attach(key domain.PipeKey, reader io.ReadCloser, writer io.WriteCloser) error
	Abort(key domain.PipeKey)
	Lookup(key domain.PipeKey) (domain.PipeEndpoint, bool)
	State(key domain.PipeKey) domain.PipeState
	Consume(key domain.PipeKey) (domain.PipeEndpoint, error)
	// Collect closes and frees every active pipe whose writer or reader is id.
	Collect(id domain.SessionID) int
}
