package domain

import "strings"

// Command is one program invocation of a parsed line, shell syntax removed.
type Command struct {
	Argv []string
}

func (c Command) Name() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

// Rest joins the arguments from index i with single spaces.
func (c Command) Rest(i int) string {
	if i >= len(c.Argv) {
		return ""
	}
	return strings.Join(c.Argv[i:], " ")
}

// Stage is one program of a compiled pipeline together with its wiring.
type Stage struct {
	Argv []string
	// Path is the resolved executable; empty when Valid is false.
	Path  string
	Valid bool
	// Line is the full command line the stage belongs to, used in pipe logs.
	Line string

	PipeNext bool
	OutFile  string

	// FromUser and ToUser are meaningful only when the matching flag is set;
	// the id itself may name a slot that does not exist.
	ReadsUser  bool
	FromUser   SessionID
	WritesUser bool
	ToUser     SessionID
}

func (s Stage) Name() string {
	if len(s.Argv) == 0 {
		return ""
	}
	return s.Argv[0]
}
