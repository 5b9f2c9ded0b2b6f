package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  Command
		wantArgs []string
		wantErr  bool
	}{
		{name: "no args runs daemon", args: nil, wantCmd: CommandDaemon, wantArgs: nil},
		{name: "flags only runs daemon", args: []string{"-room", "r1"}, wantCmd: CommandDaemon, wantArgs: []string{"-room", "r1"}},
		{name: "push", args: []string{"push", "-s", "relay:8080"}, wantCmd: CommandPush, wantArgs: []string{"-s", "relay:8080"}},
		{name: "pull", args: []string{"pull"}, wantCmd: CommandPull, wantArgs: []string{}},
		{name: "pull-paste", args: []string{"pull-paste"}, wantCmd: CommandPullPaste, wantArgs: []string{}},
		{name: "version", args: []string{"version"}, wantCmd: CommandVersion, wantArgs: []string{}},
		{name: "unknown", args: []string{"sync-now"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := ParseCommand(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
