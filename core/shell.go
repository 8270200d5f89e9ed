package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"

	"github.com/Scharxi/mini-shell/core/command"
	"github.com/Scharxi/mini-shell/core/history"
	"github.com/Scharxi/mini-shell/core/logger"
	"github.com/Scharxi/mini-shell/core/parser"
	"github.com/Scharxi/mini-shell/core/vos"
)

const (
	DefaultPrompt = "shell> "
)

// Options configures a Shell.
type Options struct {
	Prompt       string
	ColorMode    string
	PipelineMode command.PipelineMode

	// History persists the entered commands, required.
	History history.Store
	// Events receives session events, nil discards them.
	Events *logger.SessionLogger
	// Log receives diagnostics, nil discards them.
	Log *log.Logger
}

// Shell is a read-eval loop over the command language.
type Shell struct {
	Readline *readline.Instance

	io      vos.VIO
	env     *command.Env
	history *history.Session
	events  *logger.SessionLogger
	log     *log.Logger
	prompt  string

	running atomic.Bool
	cancel  atomic.Value // context.CancelFunc
}

// NewShell creates a shell reading commands from stdin. Readline isn't set
// up until Run is called so a Shell can execute single lines without a
// terminal.
func NewShell(vio vos.VIO, opts Options) *Shell {
	events := opts.Events
	if events == nil {
		events = logger.NewNopLogger().NewSession()
	}
	diag := opts.Log
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Shell{
		io: vio,
		env: &command.Env{
			OS:           vos.NewHostOS(nil, vio.Stdout(), vio.Stderr()),
			History:      opts.History,
			Colors:       command.NewColorPrinter(opts.ColorMode, vio.Stdout()),
			PipelineMode: opts.PipelineMode,
		},
		history: history.NewSession(opts.History),
		events:  events,
		log:     diag,
		prompt:  prompt,
	}
}

// RunLine parses and executes a single line of input. Successfully parsed
// commands are added to the session history whether or not they succeed.
func (s *Shell) RunLine(ctx context.Context, line string) error {
	cmd, err := parser.Parse(line)
	if err != nil {
		s.record(logger.ParseError(line, err))
		return err
	}

	rendered := cmd.String()
	s.history.Append(rendered)
	if s.Readline != nil {
		if err := s.Readline.SaveHistory(rendered); err != nil {
			s.log.Printf("couldn't add to line history: %v", err)
		}
	}

	err = cmd.Execute(ctx, s.env)
	s.record(logger.RunCommand(rendered, command.ExitCode(err), err))
	var exitErr *command.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		s.record(logger.ExecError(rendered, err))
	}
	return err
}

// Run reads lines until the input is closed, the user exits or the shell
// is interrupted.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.cancel.Store(cancel)

	if err := s.initReadline(); err != nil {
		return err
	}
	defer s.Readline.Close()

	stop := s.notifyInterrupts()
	defer stop()

	fmt.Fprintf(s.io.Stdout(), "History will be saved to %s\n", s.history.Path())
	s.running.Store(true)
	for s.running.Load() {
		line, err := s.Readline.Readline()
		switch {
		case err == readline.ErrInterrupt:
			continue // Discard the line being edited.

		case err == io.EOF:
			s.running.Store(false)
			s.saveHistory()
			return nil

		case err != nil:
			if !s.running.Load() {
				return nil
			}
			return err
		}

		switch line = strings.TrimSpace(line); line {
		case "":
			continue
		case "exit", "quit":
			s.running.Store(false)
			fmt.Fprintln(s.io.Stdout(), "\nGoodbye!")
			s.saveHistory()
			return nil
		}

		if err := s.RunLine(ctx, line); err != nil && s.running.Load() {
			s.PrintError(err)
		}
		s.saveHistory()
	}

	return nil
}

// Interrupt saves the history and stops the shell, cancelling any running
// command.
func (s *Shell) Interrupt(reason string) {
	fmt.Fprintln(s.io.Stdout(), "\nReceived Ctrl+C! Saving history and exiting...")
	s.record(logger.Interrupt(reason))
	s.saveHistory()
	s.running.Store(false)

	if cancel, ok := s.cancel.Load().(context.CancelFunc); ok {
		cancel()
	}
	if s.Readline != nil {
		s.Readline.Close()
	}
}

// Running returns true while the read loop is active.
func (s *Shell) Running() bool {
	return s.running.Load()
}

// PrintError reports a failed line to the user.
func (s *Shell) PrintError(err error) {
	fmt.Fprintln(s.io.Stderr(), s.env.Colors.Sprintf(command.ColorBoldRed, "Error: %v", err))
}

// History returns the commands entered in this session, oldest first.
func (s *Shell) History() []string {
	return s.history.Entries()
}

// SaveHistory persists the session history.
func (s *Shell) SaveHistory() error {
	err := s.history.Save()
	s.record(logger.HistorySaved(s.history.Path(), err))
	return err
}

func (s *Shell) saveHistory() {
	if err := s.SaveHistory(); err != nil {
		fmt.Fprintf(s.io.Stderr(), "Failed to save history to %s\n", s.history.Path())
		s.log.Printf("saving history: %v", err)
	}
}

func (s *Shell) initReadline() error {
	stdin := s.io.Stdin()
	cfg := &readline.Config{
		Prompt:                 s.prompt,
		Stdin:                  readline.NewCancelableStdin(stdin),
		Stdout:                 s.io.Stdout(),
		Stderr:                 s.io.Stderr(),
		DisableAutoSaveHistory: true,

		FuncIsTerminal: func() bool {
			f, ok := stdin.(*os.File)
			return ok && isatty.IsTerminal(f.Fd())
		},
	}

	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	s.Readline = rl

	// Make previous sessions available for recall.
	previous, err := s.env.History.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(s.io.Stdout(), "No history file found at %s\n", s.history.Path())
	case err != nil:
		s.log.Printf("loading history: %v", err)
	}
	for _, entry := range previous.Entries() {
		rl.SaveHistory(entry)
	}

	return nil
}

func (s *Shell) notifyInterrupts() (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-signals:
			s.Interrupt(sig.String())
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}

func (s *Shell) record(e *logger.Event) {
	if err := s.events.Record(e); err != nil {
		s.log.Printf("recording event: %v", err)
	}
}
