package command

import (
	"context"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Scharxi/mini-shell/core/vos/vostest"
)

func TestBuiltins_workingDirectory(t *testing.T) {
	tos := vostest.NewTestOS("/home/user/projects")
	env := &Env{OS: tos}
	ctx := context.Background()

	steps := []struct {
		line    []string
		wantOut string
		wantErr error
	}{
		{line: []string{"pwd"}, wantOut: "/\n"},
		{line: []string{"cd", "/home/user"}},
		{line: []string{"pwd"}, wantOut: "/home/user\n"},
		{line: []string{"cd", "projects"}},
		{line: []string{"pwd"}, wantOut: "/home/user/projects\n"},
		{line: []string{"cd", "missing"}, wantErr: syscall.ENOENT},
		{line: []string{"pwd"}, wantOut: "/home/user/projects\n"},
		{line: []string{"cd", ".."}},
		{line: []string{"pwd"}, wantOut: "/home/user\n"},
	}

	for _, step := range steps {
		tos.Out.Reset()

		cmd := New(step.line[0])
		for _, arg := range step.line[1:] {
			cmd.AppendArg(arg)
		}

		err := cmd.Execute(ctx, env)
		if step.wantErr != nil {
			assert.ErrorIs(t, err, step.wantErr, "%v", step.line)
		} else {
			require.NoError(t, err, "%v", step.line)
		}
		assert.Equal(t, step.wantOut, tos.Out.String(), "%v", step.line)
	}
}
