package domain

// DefaultMailboxCapacity is the per-session queue depth.
const DefaultMailboxCapacity = 10

// DefaultMaxSessions is the number of usable slots (1..30).
const DefaultMaxSessions = 30

type Envelope struct {
	From SessionID
	Text string
}

type Signal int

const (
	// SignalDrain asks a worker to drain its mailbox onto its transport.
	SignalDrain Signal = iota
	// SignalPipeGC asks a worker to reclaim active user pipes touching its session.
	SignalPipeGC
)

func (s Signal) String() string {
	switch s {
	case SignalDrain:
		return "drain"
	case SignalPipeGC:
		return "pipe-gc"
	default:
		return "unknown"
	}
}

// Signals lists every kind a worker can receive.
var Signals = []Signal{SignalDrain, SignalPipeGC}
