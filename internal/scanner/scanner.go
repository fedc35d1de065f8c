// Package scanner turns a pattern into a flat sequence of single-byte tokens.
package scanner

import "github.com/KromDaniel/bearpig/internal/token"

// Scanner walks a pattern one byte at a time.
type Scanner struct {
	input  string
	column int
}

// New creates a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Done reports whether every byte of the input has been scanned.
func (s *Scanner) Done() bool {
	return s.column >= len(s.input)
}

// Next returns the token for the current byte and advances.
// Past the end it returns an EOS token.
func (s *Scanner) Next() token.Token {
	if s.Done() {
		return token.EndOfStream(s.column)
	}
	c := s.input[s.column]
	tok := token.Token{Kind: Classify(c), Column: s.column, Char: c}
	s.column++
	return tok
}

// Tokenize scans the whole input. Every byte maps to exactly one token, so
// the returned error is currently always nil.
func Tokenize(input string) ([]token.Token, error) {
	s := New(input)
	tokens := make([]token.Token, 0, len(input))
	for !s.Done() {
		tokens = append(tokens, s.Next())
	}
	return tokens, nil
}

// Classify maps a pattern byte to its token kind.
func Classify(c byte) token.Kind {
	switch c {
	case '*':
		return token.Star
	case '(':
		return token.ParenOpen
	case ')':
		return token.ParenClose
	case '[':
		return token.SquareOpen
	case ']':
		return token.SquareClose
	case '?':
		return token.Optional
	case '.':
		return token.Any
	case '-':
		return token.Dash
	case '^':
		return token.Caret
	case '|':
		return token.Alternative
	case '+':
		return token.Plus
	case '\\':
		return token.Escape
	case ' ', '\n':
		return token.Whitespace
	default:
		return token.Character
	}
}
