package command

import (
	"fmt"
	"io"
	"strings"

	getopt "github.com/pborman/getopt/v2"
)

// Help describes how to use a command.
type Help struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// Long holds a longer description of the command.
	Long string
}

// Help returns the usage information for the command.
func (c *Command) Help() Help {
	switch c.Kind {
	case ChangeDirectory:
		return Help{
			Use:   "cd PATH",
			Short: "Change the working directory.",
			Long:  "Change the working directory of the shell to PATH, which may be absolute or relative to the current directory.",
		}
	case PrintWorkingDirectory:
		return Help{
			Use:   "pwd",
			Short: "Print the name of the current working directory.",
			Long:  "Print the absolute path of the working directory of the shell.",
		}
	case History:
		return Help{
			Use:   "history [-c]",
			Short: "Display or clear the command history.",
			Long:  "Print the saved command history, most recent command first. With --clear the saved history is deleted instead.",
		}
	case Pipeline:
		return Help{
			Use:   "COMMAND | COMMAND [| COMMAND...]",
			Short: "Run commands connected by pipes.",
			Long:  "Run each command with its standard input connected to the standard output of the command before it. Builtins can't be part of a pipeline.",
		}
	default:
		return Help{
			Use:   fmt.Sprintf("%s [ARG...] [FLAG...]", c.Name),
			Short: "Run an external program.",
			Long:  fmt.Sprintf("Run %s from the PATH with the given arguments followed by the given flags, relaying its standard output and standard error.", c.Name),
		}
	}
}

// Options returns the flags the command understands.
func (c *Command) Options() *getopt.Set {
	opts := getopt.New()
	opts.SetProgram(c.Name)

	switch c.Kind {
	case History:
		opts.BoolLong("clear", 'c', "clear the history by deleting all entries")
	}
	opts.BoolLong("help", 'h', "show this help and exit")

	return opts
}

// WantsHelp returns true if the help flag was given.
func (c *Command) WantsHelp() bool {
	return c.Flags.Has("--help", "-h")
}

// PrintHelp writes help for the command to w.
func (c *Command) PrintHelp(w io.Writer, colors *ColorPrinter) {
	help := c.Help()

	fmt.Fprintln(w, colors.Sprintf(ColorBold, "%s", strings.ToUpper(c.Name)))
	fmt.Fprintf(w, "    %s\n", help.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, help.Long)
	fmt.Fprintln(w)
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, help.Use)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	c.Options().PrintOptions(w)
}
