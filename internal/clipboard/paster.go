package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// commandPaster runs an external keystroke tool such as
// "xdotool key ctrl+v" or "wtype -M ctrl v".
type commandPaster struct {
	args []string
}

// NewCommandPaster returns a [Paster] running command. The command is split
// on white space; quoting is not supported. An empty command yields a
// Paster that always returns [ErrPasteUnavailable].
func NewCommandPaster(command string) Paster {
	return &commandPaster{args: strings.Fields(command)}
}

// Paste implements [Paster].
func (p *commandPaster) Paste(ctx context.Context) error {
	if len(p.args) == 0 {
		return ErrPasteUnavailable
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.args[0], p.args[1:]...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("paste %q: %w: %s", p.args[0], err, strings.TrimSpace(stderr.String()))
	}

	return nil
}
