package shell

import (
	"bytes"
	"io"
	"sync"
)

// conduit is the in-process byte stream behind a user pipe. The writer always
// finishes before the reader attaches, so an empty buffer means end of stream.
type conduit struct {
	mu           sync.Mutex
	buf          bytes.Buffer
	writerClosed bool
	readerClosed bool
}

type conduitReader struct{ c *conduit }

type conduitWriter struct{ c *conduit }

func newConduit() (io.ReadCloser, io.WriteCloser) {
	c := &conduit{}
	return conduitReader{c: c}, conduitWriter{c: c}
}

func (w conduitWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()

	if w.c.writerClosed || w.c.readerClosed {
		return 0, io.ErrClosedPipe
	}
	return w.c.buf.Write(p)
}

func (w conduitWriter) Close() error {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()

	w.c.writerClosed = true
	return nil
}

func (r conduitReader) Read(p []byte) (int, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if r.c.readerClosed {
		return 0, io.ErrClosedPipe
	}
	if r.c.buf.Len() == 0 {
		return 0, io.EOF
	}
	return r.c.buf.Read(p)
}

func (r conduitReader) Close() error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.readerClosed = true
	r.c.buf.Reset()
	return nil
}
