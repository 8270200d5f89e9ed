// Package parser resolves a token stream into an executable command.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Scharxi/mini-shell/core/command"
	"github.com/Scharxi/mini-shell/core/lexer"
)

// ErrNoCommand is returned when there's nothing to run.
var ErrNoCommand = errors.New("no command provided")

// ExpectedCommandError is returned when a stage doesn't start with a command
// name.
type ExpectedCommandError struct {
	Lexeme string
}

func (e *ExpectedCommandError) Error() string {
	return fmt.Sprintf("expected command, got: %s", e.Lexeme)
}

// Parse scans and resolves a line.
func Parse(line string) (*command.Command, error) {
	return Resolve(lexer.Scan(line))
}

// Resolve turns tokens into a single command, or a pipeline if the tokens
// contain pipes.
//
// Redirect and background tokens are recognized by the lexer but aren't
// acted on here.
func Resolve(tokens []lexer.Token) (*command.Command, error) {
	tokens = withoutEOF(tokens)
	if len(tokens) == 0 {
		return nil, ErrNoCommand
	}

	stages := splitStages(tokens)
	if len(stages) == 1 {
		return resolveStage(stages[0])
	}

	pipeline := command.NewPipeline()
	for _, stage := range stages {
		cmd, err := resolveStage(stage)
		if err != nil {
			return nil, err
		}
		pipeline.Stages = append(pipeline.Stages, cmd)
	}
	return pipeline, nil
}

func withoutEOF(tokens []lexer.Token) []lexer.Token {
	for i, tok := range tokens {
		if tok.Kind == lexer.EOF {
			return tokens[:i]
		}
	}
	return tokens
}

// splitStages splits tokens at every pipe, the pipes themselves are dropped.
func splitStages(tokens []lexer.Token) [][]lexer.Token {
	var stages [][]lexer.Token
	start := 0
	for i, tok := range tokens {
		if tok.Kind == lexer.Pipe {
			stages = append(stages, tokens[start:i])
			start = i + 1
		}
	}
	return append(stages, tokens[start:])
}

func resolveStage(tokens []lexer.Token) (*command.Command, error) {
	if len(tokens) == 0 {
		return nil, ErrNoCommand
	}
	if tokens[0].Kind != lexer.Command {
		return nil, &ExpectedCommandError{Lexeme: tokens[0].Lexeme}
	}

	cmd := command.New(tokens[0].Lexeme)
	for _, tok := range tokens[1:] {
		switch tok.Kind {
		case lexer.Argument:
			if cmd.Kind.AcceptsArgs() {
				cmd.AppendArg(tok.Lexeme)
			}

		case lexer.ShortFlag, lexer.LongFlag:
			ident, err := command.ParseFlagIdentity(tok.Lexeme)
			if err != nil {
				return nil, err
			}
			cmd.AppendFlag(command.NewFlag(ident))

		case lexer.LongFlagWithValue:
			name, value := splitFlagValue(tok.Lexeme)
			ident, err := command.ParseFlagIdentity(name)
			if err != nil {
				return nil, err
			}
			cmd.AppendFlag(command.NewFlagWithValue(ident, value))
		}
	}
	return cmd, nil
}

func splitFlagValue(lexeme string) (name, value string) {
	split := strings.SplitN(lexeme, "=", 2)
	name = split[0]
	if len(split) > 1 {
		value = split[1]
	}
	return name, value
}
