package parse

import "strings"

// Command is a recognized special keyword. Command parsing takes priority
// over option-selection and custom-reply parsing: a message exactly equal
// to "help" is never treated as a custom reply.
type Command int

const (
	CommandNone Command = iota
	CommandHelp
	CommandStatus
	CommandStop
	CommandStart
)

var commandWords = map[string]Command{
	"help":    CommandHelp,
	"?":       CommandHelp,
	"status":  CommandStatus,
	"info":    CommandStatus,
	"stop":    CommandStop,
	"pause":   CommandStop,
	"disable": CommandStop,
	"start":   CommandStart,
	"resume":  CommandStart,
	"enable":  CommandStart,
}

// ParseCommand matches trimmed input case-insensitively against the
// recognized command words. Anything else is CommandNone.
func ParseCommand(input string) Command {
	if cmd, ok := commandWords[strings.ToLower(strings.TrimSpace(input))]; ok {
		return cmd
	}
	return CommandNone
}
