// Package command holds the executable form of a parsed input line and the
// engine that runs it.
//
// Command is a closed set of variants selected by Kind. Every operation
// (Execute, PrintHelp, String) is a single switch over the kind, variants that
// don't need special handling fall through to the default arm.
package command

import (
	"fmt"
	"io"
	"strings"
)

// Kind selects the variant of a Command.
type Kind int

const (
	// External runs a program found on the PATH.
	External Kind = iota
	// ChangeDirectory is the cd builtin.
	ChangeDirectory
	// PrintWorkingDirectory is the pwd builtin.
	PrintWorkingDirectory
	// History is the history builtin.
	History
	// Pipeline runs its stages with the output of each feeding the next.
	Pipeline
)

// PipelineName is the name given to every pipeline.
const PipelineName = "pipeline"

// builtins maps the names of builtin commands to their kind.
var builtins = map[string]Kind{
	"cd":      ChangeDirectory,
	"pwd":     PrintWorkingDirectory,
	"history": History,
}

// LookupKind returns the kind of command name dispatches to, names that aren't
// builtins are external programs.
func LookupKind(name string) Kind {
	if kind, ok := builtins[name]; ok {
		return kind
	}
	return External
}

// BuiltinNames returns the names of the builtin commands.
func BuiltinNames() []string {
	return []string{"cd", "history", "pwd"}
}

// IsBuiltin returns true for kinds executed inside the shell process.
func (k Kind) IsBuiltin() bool {
	switch k {
	case ChangeDirectory, PrintWorkingDirectory, History:
		return true
	default:
		return false
	}
}

// AcceptsArgs returns false for kinds whose positional arguments are fixed.
func (k Kind) AcceptsArgs() bool {
	return k != PrintWorkingDirectory
}

func (k Kind) String() string {
	switch k {
	case ChangeDirectory:
		return "ChangeDirectory"
	case PrintWorkingDirectory:
		return "PrintWorkingDirectory"
	case History:
		return "History"
	case Pipeline:
		return "Pipeline"
	default:
		return "External"
	}
}

// Command is a single executable command or a pipeline of them.
type Command struct {
	Kind  Kind
	Name  string
	Args  []string
	Flags Flags

	// Stages holds the commands of a Pipeline, it's empty for other kinds.
	Stages []*Command

	// Optional stream bindings, unbound streams use the Env's.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates the command that name dispatches to.
func New(name string) *Command {
	return &Command{Kind: LookupKind(name), Name: name}
}

// NewPipeline creates a pipeline that owns stages.
func NewPipeline(stages ...*Command) *Command {
	return &Command{Kind: Pipeline, Name: PipelineName, Stages: stages}
}

// AppendArg adds a positional argument. Calling it on a kind that doesn't
// accept arguments is a programming error.
func (c *Command) AppendArg(arg string) {
	if !c.Kind.AcceptsArgs() {
		panic(fmt.Sprintf("%s doesn't accept arguments", c.Name))
	}
	c.Args = append(c.Args, arg)
}

// AppendFlag adds a flag.
func (c *Command) AppendFlag(flag Flag) {
	c.Flags = append(c.Flags, flag)
}

// SetInput binds the command's standard input.
func (c *Command) SetInput(r io.Reader) {
	c.stdin = r
}

// SetOutput binds the command's standard output.
func (c *Command) SetOutput(w io.Writer) {
	c.stdout = w
}

// SetError binds the command's standard error.
func (c *Command) SetError(w io.Writer) {
	c.stderr = w
}

func (c *Command) input() io.Reader {
	return c.stdin
}

func (c *Command) output(env *Env) io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return env.OS.Stdout()
}

func (c *Command) errorOutput(env *Env) io.Writer {
	if c.stderr != nil {
		return c.stderr
	}
	return env.OS.Stderr()
}

// argv is the argument list passed to an external program: the positional
// arguments followed by the flags in their textual form.
func (c *Command) argv() []string {
	out := make([]string, 0, len(c.Args)+len(c.Flags))
	out = append(out, c.Args...)
	for _, f := range c.Flags {
		out = append(out, f.String())
	}
	return out
}

// String renders the command on a single line as it's stored in the history.
//
// The argument block and the flag block are joined without a separator, so
// "grep -r pattern" renders as "grep pattern-r".
func (c *Command) String() string {
	switch c.Kind {
	case Pipeline:
		stages := make([]string, len(c.Stages))
		for i, stage := range c.Stages {
			stages[i] = stage.String()
		}
		return strings.Join(stages, " | ")
	default:
		idents := make([]string, len(c.Flags))
		for i, f := range c.Flags {
			idents[i] = f.Identity.String()
		}
		return c.Name + " " + strings.Join(c.Args, " ") + strings.Join(idents, " ")
	}
}
