package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
)

func (c *Command) runPipeline(ctx context.Context, env *Env) error {
	switch len(c.Stages) {
	case 0:
		return nil
	case 1:
		return c.Stages[0].Execute(ctx, env)
	}

	if err := c.validateStages(); err != nil {
		return err
	}

	// Help for any stage replaces running the pipeline.
	for _, stage := range c.Stages {
		if stage.WantsHelp() {
			stage.PrintHelp(c.output(env), env.Colors)
			return nil
		}
	}

	if env.PipelineMode == BufferPipeline {
		return c.runBuffered(ctx, env)
	}
	return c.runStreaming(ctx, env)
}

// validateStages checks every stage can be spawned before anything runs.
func (c *Command) validateStages() error {
	for _, stage := range c.Stages {
		switch {
		case stage.Kind.IsBuiltin():
			return ErrBuiltinInPipe
		case stage.Kind == Pipeline:
			return ErrNestedPipeline
		}
	}
	return nil
}

// runBuffered runs each stage to completion before starting the next one.
// The full output of a stage is held in memory and becomes the input of the
// next stage.
func (c *Command) runBuffered(ctx context.Context, env *Env) error {
	last := len(c.Stages) - 1
	input := c.input()

	for i, stage := range c.Stages {
		cmd := stage.exec(ctx)
		cmd.Stdin = input
		cmd.Stderr = c.errorOutput(env)

		captured := &bytes.Buffer{}
		if i == last {
			cmd.Stdout = c.output(env)
		} else {
			cmd.Stdout = captured
		}

		if err := exitError(stage.Name, cmd.Run()); err != nil {
			return &StageError{Index: i, Name: stage.Name, Err: err}
		}
		input = captured
	}

	return nil
}

// runStreaming starts every stage at once with OS pipes between neighbors and
// waits for all of them. The first stage to fail, in pipeline order, is
// reported.
func (c *Command) runStreaming(ctx context.Context, env *Env) error {
	n := len(c.Stages)
	stderr := &syncWriter{w: c.errorOutput(env)}
	cmds := make([]*exec.Cmd, n)
	for i, stage := range c.Stages {
		cmds[i] = stage.exec(ctx)
		cmds[i].Stderr = stderr
	}
	cmds[0].Stdin = c.input()
	cmds[n-1].Stdout = c.output(env)

	// The parent's copies of the pipe ends are closed once the children have
	// them, otherwise readers never see EOF.
	var pipeEnds listCloser
	defer func() { pipeEnds.Close() }()

	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			return err
		}
		pipeEnds = append(pipeEnds, r, w)
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
	}

	started := 0
	var startErr error
	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			startErr = &StageError{Index: i, Name: c.Stages[i].Name, Err: err}
			break
		}
		started++
	}
	pipeEnds.Close()
	pipeEnds = nil

	errs := make([]error, started)
	for i := 0; i < started; i++ {
		if startErr != nil {
			// Don't leave the started stages blocked on a pipe nobody serves.
			_ = cmds[i].Process.Kill()
		}
		errs[i] = cmds[i].Wait()
	}

	if startErr != nil {
		return startErr
	}

	for i, err := range errs {
		if err == nil || (i < n-1 && brokenPipe(err)) {
			continue
		}
		return &StageError{Index: i, Name: c.Stages[i].Name, Err: exitError(c.Stages[i].Name, err)}
	}
	return nil
}

// brokenPipe returns true if the process was killed by SIGPIPE, which is how
// a writer normally ends when a later stage stops reading early.
func brokenPipe(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	return ok && status.Signaled() && status.Signal() == syscall.SIGPIPE
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// syncWriter serializes writes from stages sharing one stream.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(b)
}
