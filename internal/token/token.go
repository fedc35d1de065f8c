// Package token defines the lexical tokens produced by the pattern scanner.
package token

import "strings"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Braces
	ParenOpen Kind = iota
	ParenClose
	CurlyOpen  // never produced by the scanner, reserved for {m,n}
	CurlyClose // never produced by the scanner, reserved for {m,n}
	SquareOpen
	SquareClose

	// Quantifiers
	Star     // a*
	Plus     // a+
	Optional // a?

	// Choice and set syntax
	Alternative // a|b
	Dash        // [a-b]
	Caret       // [^a-b]

	// Characters
	Any
	Whitespace
	Character
	Escape

	EOS
	Invalid
)

var kindNames = [...]string{
	ParenOpen:   "PAREN_OPEN",
	ParenClose:  "PAREN_CLOSE",
	CurlyOpen:   "CURLY_OPEN",
	CurlyClose:  "CURLY_CLOSE",
	SquareOpen:  "SQUARE_OPEN",
	SquareClose: "SQUARE_CLOSE",
	Star:        "STAR",
	Plus:        "PLUS",
	Optional:    "OPTIONAL",
	Alternative: "ALTERNATIVE",
	Dash:        "DASH",
	Caret:       "CARET",
	Any:         "ANY",
	Whitespace:  "WHITESPACE",
	Character:   "CHARACTER",
	Escape:      "ESCAPE",
	EOS:         "EOS",
	Invalid:     "INVALID",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var metacharacters = map[Kind]bool{
	Plus:        true,
	ParenOpen:   true,
	ParenClose:  true,
	CurlyOpen:   true,
	CurlyClose:  true,
	SquareOpen:  true,
	SquareClose: true,
	Star:        true,
	Optional:    true,
	Alternative: true,
	Any:         true,
	Escape:      true,
}

// IsMetacharacter reports whether tokens of kind k carry syntactic meaning
// outside of a set.
func IsMetacharacter(k Kind) bool {
	return metacharacters[k]
}

// Token is a single scanned byte together with its classification.
// Column is the 0-based byte offset into the pattern.
type Token struct {
	Kind   Kind
	Column int
	Char   byte
}

// EndOfStream returns the synthetic token the parser sees past the last
// real token.
func EndOfStream(column int) Token {
	return Token{Kind: EOS, Column: column}
}

func (t Token) String() string {
	if t.Kind == EOS {
		return "EOS"
	}
	return string(t.Char) + "(" + t.Kind.String() + ")"
}

// Text reconstructs the source text the tokens were scanned from.
func Text(tokens []Token) string {
	var b strings.Builder
	b.Grow(len(tokens))
	for _, t := range tokens {
		if t.Kind == EOS {
			continue
		}
		b.WriteByte(t.Char)
	}
	return b.String()
}

// Kinds joins kind names with a single space, used in error messages.
func Kinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}
