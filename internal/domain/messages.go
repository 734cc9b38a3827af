package domain

import (
	"fmt"
	"strings"
)

const Prompt = "% "

const WhoHeader = "<ID>\t<nickname>\t<IP/port>\t<indicate me>\n"

func EnteredMessage(peer Peer) string {
	return fmt.Sprintf("*** User '%s' entered from %s. ***\n", PlaceholderName, peer)
}

func LeftMessage(name string) string {
	return fmt.Sprintf("*** User '%s' left. ***\n", name)
}

func ToldMessage(name, text string) string {
	return fmt.Sprintf("*** %s told you ***: %s\n", name, text)
}

func UnknownUserMessage(rawID string) string {
	return fmt.Sprintf("*** Error: user #%s does not exist yet. ***\n", rawID)
}

func YelledMessage(name, text string) string {
	return fmt.Sprintf("*** %s yelled ***: %s\n", name, text)
}

func NameTakenMessage(name string) string {
	return fmt.Sprintf("*** User '%s' already exists. ***\n", name)
}

func RenamedMessage(peer Peer, name string) string {
	return fmt.Sprintf("*** User from %s is named '%s'. ***\n", peer, name)
}

func UnknownCommandMessage(name string) string {
	return fmt.Sprintf("Unknown command: [%s].\n", name)
}

func PipeExistsMessage(key PipeKey) string {
	return fmt.Sprintf("*** Error: the pipe %s already exists. ***\n", key)
}

func PipeMissingMessage(key PipeKey) string {
	return fmt.Sprintf("*** Error: the pipe %s does not exist yet. ***\n", key)
}

func PipedMessage(writer Session, line string, reader Session) string {
	return fmt.Sprintf("*** %s (#%d) just piped '%s' to %s (#%d) ***\n", writer.Name, writer.ID, line, reader.Name, reader.ID)
}

func ReceivedMessage(reader Session, writer Session, line string) string {
	return fmt.Sprintf("*** %s (#%d) just received from %s (#%d) by '%s' ***\n", reader.Name, reader.ID, writer.Name, writer.ID, line)
}

// WhoRow formats one listing line; the caller's own row carries the marker.
func WhoRow(session Session, me bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%s\t%s", session.ID, session.Name, session.Peer)
	if me {
		b.WriteString("\t<-me")
	}
	b.WriteString("\n")
	return b.String()
}
