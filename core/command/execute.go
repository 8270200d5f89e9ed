package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Scharxi/mini-shell/core/history"
)

// Execute runs the command. If the help flag is present the help is printed
// instead and no other work is done.
func (c *Command) Execute(ctx context.Context, env *Env) error {
	if c.WantsHelp() {
		c.PrintHelp(c.output(env), env.Colors)
		return nil
	}

	switch c.Kind {
	case ChangeDirectory:
		return c.changeDirectory(env)
	case PrintWorkingDirectory:
		return c.printWorkingDirectory(env)
	case History:
		return c.history(env)
	case Pipeline:
		return c.runPipeline(ctx, env)
	default:
		return c.runExternal(ctx, env)
	}
}

func (c *Command) changeDirectory(env *Env) error {
	switch len(c.Args) {
	case 0:
		return ErrNoPath
	case 1:
		return env.OS.Chdir(c.Args[0])
	default:
		return ErrTooManyArgs
	}
}

func (c *Command) printWorkingDirectory(env *Env) error {
	wd, err := env.OS.Getwd()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.output(env), wd)
	return err
}

// history always reads the saved history rather than the running session's.
func (c *Command) history(env *Env) error {
	if env.History == nil {
		return ErrNoHistory
	}

	if c.Flags.Has("--clear", "-c") {
		return env.History.Save(history.New())
	}

	w := c.output(env)
	saved, err := env.History.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "No history file found at %s\n", env.History.Path())
		return nil
	case err != nil:
		return err
	}

	for entry, ok := saved.Pop(); ok; entry, ok = saved.Pop() {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return err
		}
	}
	return nil
}
