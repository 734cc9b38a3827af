package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// PlaceholderName is the display name of a session that has not run `name` yet.
const PlaceholderName = "(no name)"

type SessionID int

// ParseSessionID accepts only positive decimal ids. Slot 0 is never valid.
func ParseSessionID(raw string) (SessionID, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil || value <= 0 {
		return 0, false
	}

	return SessionID(value), true
}

func (id SessionID) Valid(max int) bool {
	return id >= 1 && int(id) <= max
}

// WorkerID identifies the goroutine that owns a session and receives its
// notifications.
type WorkerID string

type Peer struct {
	IP   string
	Port uint16
}

func (p Peer) String() string {
	return fmt.Sprintf("%s/%d", p.IP, p.Port)
}

// ParsePeer splits a "host:port" remote address. An address without a usable
// port keeps the whole string as IP and port 0.
func ParsePeer(address string) Peer {
	host, rawPort, err := net.SplitHostPort(address)
	if err != nil {
		return Peer{IP: address}
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return Peer{IP: host}
	}
	return Peer{IP: host, Port: uint16(port)}
}

type Session struct {
	ID     SessionID
	Name   string
	Peer   Peer
	Worker WorkerID
}
