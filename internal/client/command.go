package client

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a client subcommand.
type Command string

const (
	// CommandDaemon watches the clipboard and keeps the live channel open.
	CommandDaemon Command = "daemon"
	// CommandPush uploads the current clipboard once.
	CommandPush Command = "push"
	// CommandPull downloads the room's payload into the clipboard once.
	CommandPull Command = "pull"
	// CommandPullPaste is CommandPull followed by the paste keystroke.
	CommandPullPaste Command = "pull-paste"
	// CommandVersion prints build information.
	CommandVersion Command = "version"
)

var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand splits command line arguments (without the program name)
// into the subcommand and the remaining configuration flags. Without a
// subcommand, or when args start with a flag, the daemon runs.
func ParseCommand(args []string) (Command, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return CommandDaemon, args, nil
	}

	switch cmd := Command(args[0]); cmd {
	case CommandDaemon, CommandPush, CommandPull, CommandPullPaste, CommandVersion:
		return cmd, args[1:], nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}
