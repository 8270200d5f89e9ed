package lexer

import "fmt"

// Kind is the lexical category of a Token.
type Kind int

const (
	// Command is the first word of a pipeline stage.
	Command Kind = iota
	// Argument is any word after the stage's command.
	Argument
	// ShortFlag is a single dash flag like -l.
	ShortFlag
	// LongFlag is a double dash flag like --all.
	LongFlag
	// LongFlagWithValue is a double dash flag carrying a value like --format=json.
	LongFlagWithValue
	Pipe
	InputRedirect
	OutputRedirect
	Background
	// EOF terminates every token stream.
	EOF
)

var kindNames = map[Kind]string{
	Command:           "Command",
	Argument:          "Argument",
	ShortFlag:         "ShortFlag",
	LongFlag:          "LongFlag",
	LongFlagWithValue: "LongFlagWithValue",
	Pipe:              "Pipe",
	InputRedirect:     "InputRedirect",
	OutputRedirect:    "OutputRedirect",
	Background:        "Background",
	EOF:               "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit.
type Token struct {
	Kind   Kind
	Lexeme string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
