package shell

import (
	"strconv"
	"strings"

	"github.com/bnema/shellchat/internal/domain"
)

const (
	pipeToken     = "|"
	redirectToken = ">"
	exitCommand   = "exit"
)

// segment is one program of a line before path resolution.
type segment struct {
	argv     []string
	outFile  string
	fromUser domain.SessionID
	toUser   domain.SessionID
	hasFrom  bool
	hasTo    bool
}

func tokenize(line string) []string {
	return strings.Fields(line)
}

// splitSegments cuts tokens at "|" and extracts redirections. Tokens such as
// ">2" and "<3" address user pipes; a bare ">" takes the next token as a file.
func splitSegments(tokens []string) []segment {
	var segments []segment
	current := segment{}

	flush := func() {
		if len(current.argv) > 0 {
			segments = append(segments, current)
		}
		current = segment{}
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch {
		case token == pipeToken:
			flush()
		case token == redirectToken:
			if i+1 < len(tokens) {
				current.outFile = tokens[i+1]
				i++
			}
		case len(token) > 1 && token[0] == '>':
			if id, ok := userPipeTarget(token[1:]); ok {
				current.toUser = id
				current.hasTo = true
				continue
			}
			current.argv = append(current.argv, token)
		case len(token) > 1 && token[0] == '<':
			if id, ok := userPipeTarget(token[1:]); ok {
				current.fromUser = id
				current.hasFrom = true
				continue
			}
			current.argv = append(current.argv, token)
		default:
			current.argv = append(current.argv, token)
		}
	}
	flush()

	return segments
}

func commandsFromSegments(segments []segment) []domain.Command {
	commands := make([]domain.Command, 0, len(segments))
	for _, seg := range segments {
		commands = append(commands, domain.Command{Argv: seg.argv})
	}
	return commands
}

// userPipeTarget accepts any run of digits, including 0, so that a pipe to a
// slot that can never exist is reported instead of being run as an argument.
func userPipeTarget(raw string) (domain.SessionID, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return domain.SessionID(value), true
}
