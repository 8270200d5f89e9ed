package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func external(name string, args ...string) *Command {
	cmd := New(name)
	for _, arg := range args {
		cmd.AppendArg(arg)
	}
	return cmd
}

var pipelineModes = []PipelineMode{StreamPipeline, BufferPipeline}

func TestPipeline_empty(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, NewPipeline().Execute(context.Background(), env.Env))
	assert.Empty(t, env.stdout.String())
}

func TestPipeline_singleStage(t *testing.T) {
	chdirForTest(t)
	env := newTestEnv(t)
	dir := t.TempDir()

	// Builtins are fine on their own, the pipeline is only a wrapper.
	require.NoError(t, NewPipeline(external("cd", dir)).Execute(context.Background(), env.Env))

	wd, err := os.Getwd()
	require.NoError(t, err)
	sameDir(t, dir, wd)
}

func TestPipeline_builtinsRejected(t *testing.T) {
	requireTools(t, "touch")

	for _, builtin := range []*Command{external("cd", "/tmp"), New("pwd"), New("history")} {
		for _, position := range []string{"first", "last"} {
			t.Run(builtin.Name+"-"+position, func(t *testing.T) {
				env := newTestEnv(t)
				marker := filepath.Join(t.TempDir(), "marker")

				stages := []*Command{external("touch", marker), builtin}
				if position == "first" {
					stages = []*Command{builtin, external("touch", marker)}
				}

				err := NewPipeline(stages...).Execute(context.Background(), env.Env)
				assert.ErrorIs(t, err, ErrBuiltinInPipe)
				assert.EqualError(t, err, "built-in commands cannot be used in pipes")

				// Nothing ran.
				assert.NoFileExists(t, marker)
			})
		}
	}
}

func TestPipeline_nested(t *testing.T) {
	env := newTestEnv(t)
	inner := NewPipeline(external("echo"), external("cat"))
	err := NewPipeline(external("echo"), inner).Execute(context.Background(), env.Env)
	assert.ErrorIs(t, err, ErrNestedPipeline)
}

func TestPipeline_modes(t *testing.T) {
	requireTools(t, "echo", "tr", "sh", "sort", "head", "cat", "false")

	cases := map[string]struct {
		stages   func() []*Command
		expected string
		// failedStage is the index of the stage expected to fail, or -1.
		failedStage int
		exitCode    int
	}{
		"two-stages": {
			stages: func() []*Command {
				return []*Command{external("echo", "hello"), external("tr", "a-z", "A-Z")}
			},
			expected:    "HELLO\n",
			failedStage: -1,
		},
		"three-stages": {
			stages: func() []*Command {
				return []*Command{
					external("sh", "-c", `printf "c\nb\na\n"`),
					external("sort"),
					external("head", "-n", "1"),
				}
			},
			expected:    "a\n",
			failedStage: -1,
		},
		"first-stage-fails": {
			stages: func() []*Command {
				return []*Command{external("false"), external("cat")}
			},
			expected:    "",
			failedStage: 0,
			exitCode:    1,
		},
		"last-stage-fails": {
			stages: func() []*Command {
				return []*Command{external("echo", "hi"), external("sh", "-c", "cat; exit 4")}
			},
			expected:    "hi\n",
			failedStage: 1,
			exitCode:    4,
		},
	}

	for _, mode := range pipelineModes {
		for tn, tc := range cases {
			t.Run(string(mode)+"/"+tn, func(t *testing.T) {
				env := newTestEnv(t)
				env.PipelineMode = mode

				err := NewPipeline(tc.stages()...).Execute(context.Background(), env.Env)
				assert.Equal(t, tc.expected, env.stdout.String())

				if tc.failedStage < 0 {
					assert.NoError(t, err)
					return
				}

				var stageErr *StageError
				require.ErrorAs(t, err, &stageErr)
				assert.Equal(t, tc.failedStage, stageErr.Index)
				assert.Equal(t, tc.exitCode, ExitCode(err))
			})
		}
	}
}

func TestPipeline_boundInput(t *testing.T) {
	requireTools(t, "cat", "tr")

	for _, mode := range pipelineModes {
		t.Run(string(mode), func(t *testing.T) {
			env := newTestEnv(t)
			env.PipelineMode = mode

			pipeline := NewPipeline(external("cat"), external("tr", "a-z", "A-Z"))
			pipeline.SetInput(strings.NewReader("piped"))
			require.NoError(t, pipeline.Execute(context.Background(), env.Env))
			assert.Equal(t, "PIPED", env.stdout.String())
		})
	}
}

func TestPipeline_stderrIsShared(t *testing.T) {
	requireTools(t, "sh")

	for _, mode := range pipelineModes {
		t.Run(string(mode), func(t *testing.T) {
			env := newTestEnv(t)
			env.PipelineMode = mode

			pipeline := NewPipeline(
				external("sh", "-c", "echo one >&2"),
				external("sh", "-c", "cat; echo two >&2"),
			)
			require.NoError(t, pipeline.Execute(context.Background(), env.Env))
			assert.Contains(t, env.stderr.String(), "one\n")
			assert.Contains(t, env.stderr.String(), "two\n")
		})
	}
}

func TestPipeline_streamingWriterStoppedEarly(t *testing.T) {
	requireTools(t, "yes", "head")
	env := newTestEnv(t)
	env.PipelineMode = StreamPipeline

	// yes never ends on its own, it's stopped by SIGPIPE once head exits.
	err := NewPipeline(external("yes"), external("head", "-n", "1")).Execute(context.Background(), env.Env)
	assert.NoError(t, err)
	assert.Equal(t, "y\n", env.stdout.String())
}

func TestPipeline_missingProgram(t *testing.T) {
	requireTools(t, "echo")

	for _, mode := range pipelineModes {
		t.Run(string(mode), func(t *testing.T) {
			env := newTestEnv(t)
			env.PipelineMode = mode

			err := NewPipeline(external("echo", "hi"), external("definitely-not-a-program")).Execute(context.Background(), env.Env)

			var stageErr *StageError
			require.ErrorAs(t, err, &stageErr)
			assert.Equal(t, 1, stageErr.Index)
		})
	}
}

func TestPipeline_stageHelp(t *testing.T) {
	requireTools(t, "touch")

	for _, mode := range pipelineModes {
		t.Run(string(mode), func(t *testing.T) {
			env := newTestEnv(t)
			env.PipelineMode = mode
			marker := filepath.Join(t.TempDir(), "marker")

			echo := external("echo", "x")
			echo.AppendFlag(NewFlag(ShortFlag("-h")))

			err := NewPipeline(external("touch", marker), echo).Execute(context.Background(), env.Env)
			require.NoError(t, err)

			assert.Contains(t, env.stdout.String(), "ECHO")
			assert.Contains(t, env.stdout.String(), "Run an external program.")
			assert.NoFileExists(t, marker)
		})
	}
}
