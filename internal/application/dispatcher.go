package application

import (
	"errors"
	"strings"

	"github.com/bnema/shellchat/internal/domain"
	"github.com/bnema/shellchat/internal/ports"
)

type builtinCall struct {
	caller  domain.Session
	console ports.Console
	command domain.Command
}

type builtin func(d *Dispatcher, call builtinCall)

// Dispatcher runs the chat built-ins. Every other command is left for the
// session console.
type Dispatcher struct {
	svc      *Service
	builtins map[string]builtin
}

func NewDispatcher(svc *Service) *Dispatcher {
	return &Dispatcher{
		svc: svc,
		builtins: map[string]builtin{
			"who":      (*Dispatcher).who,
			"tell":     (*Dispatcher).tell,
			"yell":     (*Dispatcher).yell,
			"name":     (*Dispatcher).name,
			"printenv": (*Dispatcher).printenv,
			"setenv":   (*Dispatcher).setenv,
		},
	}
}

func (d *Dispatcher) IsBuiltin(name string) bool {
	_, ok := d.builtins[name]
	return ok
}

// Dispatch consumes and runs the first built-in among commands. It returns
// the commands left over and whether a built-in was handled.
func (d *Dispatcher) Dispatch(caller domain.SessionID, console ports.Console, commands []domain.Command) ([]domain.Command, bool) {
	for i, command := range commands {
		run, ok := d.builtins[command.Name()]
		if !ok {
			continue
		}

		session, found := d.svc.directory.Lookup(caller)
		if !found {
			return commands, false
		}

		remaining := make([]domain.Command, 0, len(commands)-1)
		remaining = append(remaining, commands[:i]...)
		remaining = append(remaining, commands[i+1:]...)

		run(d, builtinCall{caller: session, console: console, command: command})
		return remaining, true
	}

	return commands, false
}

func (d *Dispatcher) reply(call builtinCall, text string) {
	d.svc.SendTo(call.caller.ID, call.caller.ID, text)
}

func (d *Dispatcher) who(call builtinCall) {
	var b strings.Builder
	b.WriteString(domain.WhoHeader)
	d.svc.directory.ForEachOccupied(func(session domain.Session) {
		b.WriteString(domain.WhoRow(session, session.ID == call.caller.ID))
	})

	d.reply(call, b.String())
}

func (d *Dispatcher) tell(call builtinCall) {
	argv := call.command.Argv
	if len(argv) < 2 {
		return
	}

	target, ok := domain.ParseSessionID(argv[1])
	if ok {
		_, ok = d.svc.directory.Lookup(target)
	}
	if !ok {
		d.reply(call, domain.UnknownUserMessage(argv[1]))
		return
	}

	d.svc.SendTo(call.caller.ID, target, domain.ToldMessage(call.caller.Name, call.command.Rest(2)))
}

func (d *Dispatcher) yell(call builtinCall) {
	d.svc.Broadcast(call.caller.ID, domain.YelledMessage(call.caller.Name, call.command.Rest(1)))
}

func (d *Dispatcher) name(call builtinCall) {
	argv := call.command.Argv
	if len(argv) < 2 {
		return
	}

	newName := argv[1]
	if err := d.svc.directory.Rename(call.caller.ID, newName); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			d.reply(call, domain.NameTakenMessage(newName))
			return
		}
		d.svc.logger.Warn("rename session", "session", int(call.caller.ID), "error", err)
		return
	}

	d.svc.Broadcast(call.caller.ID, domain.RenamedMessage(call.caller.Peer, newName))
}

func (d *Dispatcher) printenv(call builtinCall) {
	argv := call.command.Argv
	if len(argv) != 2 {
		return
	}

	d.reply(call, argv[1]+"="+call.console.Getenv(argv[1])+"\n")
}

func (d *Dispatcher) setenv(call builtinCall) {
	argv := call.command.Argv
	if len(argv) != 3 {
		return
	}

	call.console.Setenv(argv[1], argv[2])
}
