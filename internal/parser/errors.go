package parser

import (
	"fmt"

	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/internal/token"
)

// Error describes a token that does not fit the grammar. Parsing stops at
// the first error.
type Error struct {
	// Func names the grammar rule that failed, e.g. "parseGroup".
	Func string
	// Index is the position of the offending token in the stream.
	Index int
	// Len is the length of the token stream.
	Len int
	// Column is the source column of the offending token.
	Column int
	// Expected lists the kinds that would have been accepted.
	Expected []token.Kind
	// Found is the kind of the offending token.
	Found token.Kind
	// EndOfInput is set when the parser ran out of tokens.
	EndOfInput bool
	// Source is the pattern text reconstructed from the tokens.
	Source string
}

func (e *Error) Error() string {
	expected := "anything"
	if len(e.Expected) > 0 {
		expected = token.Kinds(e.Expected)
	}
	if e.EndOfInput {
		return fmt.Sprintf("unexpected end of input at %d in %s: expected: %s", e.Index, e.Func, expected)
	}
	return fmt.Sprintf("unexpected token at %d in %s: got %s, expected: %s", e.Index, e.Func, e.Found, expected)
}

// Done reports whether the cursor had consumed every token when the error
// occurred.
func (e *Error) Done() bool {
	return e.Index == e.Len
}

// Diagnostic converts the error into a diagnostic pointing at its column.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  e.Error(),
		Source:   e.Source,
		Start:    e.Column,
		Stop:     e.Column,
	}
}
