package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// runExternal runs the program to completion, then relays whatever it wrote.
func (c *Command) runExternal(ctx context.Context, env *Env) error {
	cmd := c.exec(ctx)
	cmd.Stdin = c.input()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if err := relay(c.output(env), &stdout); err != nil {
		return err
	}
	if err := relay(c.errorOutput(env), &stderr); err != nil {
		return err
	}

	return exitError(c.Name, runErr)
}

// exec builds the OS process for an external command.
func (c *Command) exec(ctx context.Context) *exec.Cmd {
	return exec.CommandContext(ctx, c.Name, c.argv()...)
}

func relay(w io.Writer, captured *bytes.Buffer) error {
	if captured.Len() == 0 {
		return nil
	}
	_, err := captured.WriteTo(w)
	return err
}

// exitError converts a non-zero exit into an ExitError, other errors such as
// a missing program are returned as they are.
func exitError(name string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Name: name, Code: exitErr.ExitCode()}
	}
	return err
}
