package domain

import (
	"fmt"
	"io"
)

type PipeState int

const (
	PipeFree PipeState = iota
	PipePending
	PipeActive
)

func (s PipeState) String() string {
	switch s {
	case PipeFree:
		return "free"
	case PipePending:
		return "pending"
	case PipeActive:
		return "active"
	default:
		return fmt.Sprintf("PipeState(%d)", int(s))
	}
}

// PipeKey addresses one cell of the user pipe matrix.
type PipeKey struct {
	Writer SessionID
	Reader SessionID
}

func (k PipeKey) Touches(id SessionID) bool {
	return k.Writer == id || k.Reader == id
}

func (k PipeKey) String() string {
	return fmt.Sprintf("#%d->#%d", k.Writer, k.Reader)
}

// PipeEndpoint is a snapshot of a registry cell. Reader and Writer are only
// set while State is PipeActive.
type PipeEndpoint struct {
	Key    PipeKey
	State  PipeState
	Reader io.ReadCloser
	Writer io.WriteCloser
}
