package command

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPath is returned by cd without a target.
	ErrNoPath = errors.New("no path provided")
	// ErrTooManyArgs is returned by cd with more than one target.
	ErrTooManyArgs = errors.New("too many arguments")
	// ErrBuiltinInPipe is returned for pipelines containing a builtin.
	ErrBuiltinInPipe = errors.New("built-in commands cannot be used in pipes")
	// ErrNestedPipeline is returned for pipelines containing a pipeline.
	ErrNestedPipeline = errors.New("pipelines cannot be nested")
	// ErrNoHistory is returned by history when the shell has no history store.
	ErrNoHistory = errors.New("history is not available")
)

// ExitError reports an external program that exited with a non-zero status.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Name, e.Code)
}

// StageError wraps the failure of a single pipeline stage.
type StageError struct {
	Index int
	Name  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %d: %v", e.Index, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ExitCode returns the status a failed command should report: the exit code
// of an ExitError, 0 for nil and 1 for anything else.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr) && exitErr.Code > 0:
		return exitErr.Code
	default:
		return 1
	}
}
