package memory

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

type pipeCell struct {
	state  domain.PipeState
	reader io.ReadCloser
	writer io.WriteCloser
}

// PipeRegistry is the square matrix of user pipes indexed by
// (writer, reader) session ids.
type PipeRegistry struct {
	mu    sync.Mutex
	size  int
	cells [][]pipeCell
}

var _ ports.PipeRegistry = (*PipeRegistry)(nil)

func NewPipeRegistry(maxSessions int) *PipeRegistry {
	if maxSessions <= 0 {
		maxSessions = domain.DefaultMaxSessions
	}

	cells := make([][]pipeCell, maxSessions+1)
	for i := range cells {
		cells[i] = make([]pipeCell, maxSessions+1)
	}

	return &PipeRegistry{size: maxSessions, cells: cells}
}

func (r *PipeRegistry) Open(key domain.PipeKey) error {
	if err := r.validate(key); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cell := &r.cells[key.Writer][key.Reader]
	if cell.state != domain.PipeFree {
		return fmt.Errorf("open pipe %s: %w", key, domain.ErrPipeExists)
	}

	cell.state = domain.PipePending
	return nil
}

func (r *PipeRegistry) Attach(key domain.PipeKey, reader io.ReadCloser, writer io.WriteCloser) error {
	if err := r.validate(key); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cell := &r.cells[key.Writer][key.Reader]
	if cell.state != domain.PipePending {
		return fmt.Errorf("attach pipe %s in state %s: %w", key, cell.state, domain.ErrPipeState)
	}

	*cell = pipeCell{state: domain.PipeActive, reader: reader, writer: writer}
	return nil
}

func (r *PipeRegistry) Abort(key domain.PipeKey) {
	if r.validate(key) != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cell := &r.cells[key.Writer][key.Reader]
	if cell.state == domain.PipePending {
		*cell = pipeCell{}
	}
}

func (r *PipeRegistry) Lookup(key domain.PipeKey) (domain.PipeEndpoint, bool) {
	if r.validate(key) != nil {
		return domain.PipeEndpoint{Key: key}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cell := r.cells[key.Writer][key.Reader]
	if cell.state != domain.PipeActive {
		return domain.PipeEndpoint{Key: key, State: cell.state}, false
	}

	return endpoint(key, cell), true
}

func (r *PipeRegistry) State(key domain.PipeKey) domain.PipeState {
	if r.validate(key) != nil {
		return domain.PipeFree
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cells[key.Writer][key.Reader].state
}

// Consume hands an active pipe to its reader and frees the cell. The caller
// owns both handles afterwards.
func (r *PipeRegistry) Consume(key domain.PipeKey) (domain.PipeEndpoint, error) {
	if err := r.validate(key); err != nil {
		return domain.PipeEndpoint{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cell := &r.cells[key.Writer][key.Reader]
	if cell.state != domain.PipeActive {
		return domain.PipeEndpoint{}, fmt.Errorf("consume pipe %s: %w", key, domain.ErrPipeNotFound)
	}

	taken := endpoint(key, *cell)
	*cell = pipeCell{}
	return taken, nil
}

func (r *PipeRegistry) Collect(id domain.SessionID) int {
	if !id.Valid(r.size) {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	collected := 0
	for other := 1; other <= r.size; other++ {
		peer := domain.SessionID(other)
		for _, key := range []domain.PipeKey{{Writer: id, Reader: peer}, {Writer: peer, Reader: id}} {
			cell := &r.cells[key.Writer][key.Reader]
			if cell.state != domain.PipeActive {
				continue
			}
			_ = closeEnds(cell.reader, cell.writer)
			*cell = pipeCell{}
			collected++
		}
	}

	return collected
}

func (r *PipeRegistry) validate(key domain.PipeKey) error {
	if !key.Writer.Valid(r.size) || !key.Reader.Valid(r.size) {
		return fmt.Errorf("pipe %s: %w", key, domain.ErrInvalidSession)
	}
	return nil
}

func endpoint(key domain.PipeKey, cell pipeCell) domain.PipeEndpoint {
	return domain.PipeEndpoint{
		Key:    key,
		State:  cell.state,
		Reader: cell.reader,
		Writer: cell.writer,
	}
}

func closeEnds(reader io.Closer, writer io.Closer) error {
	var errs []error
	if writer != nil {
		errs = append(errs, writer.Close())
	}
	if reader != nil {
		errs = append(errs, reader.Close())
	}
	return errors.Join(errs...)
}
