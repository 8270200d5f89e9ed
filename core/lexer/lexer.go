// Package lexer turns a raw input line into a typed token stream.
package lexer

import "strings"

// Scan tokenizes line. It never fails: malformed input degrades to best-effort
// tokens. The returned slice always ends with exactly one EOF token.
func Scan(line string) []Token {
	s := &scanner{source: []rune(line)}
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Kind: EOF})
	return s.tokens
}

type scanner struct {
	source []rune
	tokens []Token

	start   int
	current int

	// sawCommand is set once the current stage has a command name.
	sawCommand bool
}

func (s *scanner) scanToken() {
	switch c := s.advance(); c {
	case ' ', '\r', '\t', '\n':
		s.skipWhitespace()
	case '-':
		if s.match('-') {
			s.longFlag()
		} else {
			s.shortFlag()
		}
	case '|':
		s.emit(Pipe)
		s.sawCommand = false
	case '<':
		s.emit(InputRedirect)
	case '>':
		s.emit(OutputRedirect)
	case '&':
		s.emit(Background)
	default:
		s.word()
	}
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() && isSpace(s.peek()) {
		s.advance()
	}
}

func (s *scanner) longFlag() {
	for !s.atEnd() {
		c := s.peek()
		switch {
		case c == '=':
			s.advance()
			s.flagValue()
			return
		case isAlnum(c) || c == '-':
			s.advance()
		default:
			s.emit(LongFlag)
			return
		}
	}
	s.emit(LongFlag)
}

// flagValue captures everything up to the next unquoted space and emits the
// whole flag as a single LongFlagWithValue token.
func (s *scanner) flagValue() {
	valueStart := s.current
	inQuotes := false

scan:
	for !s.atEnd() {
		switch s.peek() {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				break scan
			}
		}
		s.advance()
	}

	name := strings.TrimSpace(string(s.source[s.start : valueStart-1]))
	value := strings.TrimSpace(strings.Trim(string(s.source[valueStart:s.current]), `"`))
	s.tokens = append(s.tokens, Token{Kind: LongFlagWithValue, Lexeme: name + "=" + value})
}

func (s *scanner) shortFlag() {
	for !s.atEnd() && isAlnum(s.peek()) {
		s.advance()
	}
	s.emit(ShortFlag)
}

func (s *scanner) word() {
	for !s.atEnd() && isWord(s.peek()) {
		s.advance()
	}

	if s.sawCommand {
		s.emit(Argument)
		return
	}
	s.emit(Command)
	s.sawCommand = true
}

func (s *scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) peek() rune {
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *scanner) match(expected rune) bool {
	if s.atEnd() || s.peek() != expected {
		return false
	}
	s.current++
	return true
}

// emit appends the current lexeme, empty lexemes are dropped.
func (s *scanner) emit(kind Kind) {
	text := strings.TrimSpace(string(s.source[s.start:s.current]))
	if text == "" {
		return
	}
	s.tokens = append(s.tokens, Token{Kind: kind, Lexeme: text})
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\r' || c == '\t' || c == '\n'
}

func isAlnum(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isWord(c rune) bool {
	return isAlnum(c) || c == '_' || c == '/' || c == '.'
}
