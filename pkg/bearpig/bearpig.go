// Package bearpig compiles a small regular expression language into a
// Thompson NFA and matches it against byte strings.
//
// The pipeline has four stages, each available on its own:
//
//	tokens, _ := bearpig.Tokenize(`[a-z]+@[a-z]+`)
//	root, err := bearpig.Parse(tokens)
//	n, warnings, err := bearpig.Generate(root)
//	m := bearpig.FindFirstMatch(n, "mail bob@example now")
//
// Most callers only need Compile, which runs all of them:
//
//	re := bearpig.MustCompile(`[a-z]+@[a-z]+`)
//	fmt.Println(re.FindFirst("mail bob@example now").Text) // bob@example
//
// The language supports literals, escapes with '\', the wildcard '.',
// sets such as [a-z] and [^0-9], groups, alternation with '|' and the
// quantifiers '*', '+' and '?'. Matching is byte based and greedy: the
// longest match reachable by stepping while some active state can consume
// the next byte wins. A pattern that matches the empty string returns an
// empty match at the first position that could start a match.
package bearpig

import (
	"fmt"

	"github.com/KromDaniel/bearpig/internal/ast"
	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/internal/nfa"
	"github.com/KromDaniel/bearpig/internal/nfagen"
	"github.com/KromDaniel/bearpig/internal/parser"
	"github.com/KromDaniel/bearpig/internal/scanner"
	"github.com/KromDaniel/bearpig/internal/token"
)

type (
	// Token is one scanned pattern byte.
	Token = token.Token
	// AST is the root of a parsed pattern.
	AST = ast.Alternative
	// NFA is a compiled automaton. It is read-only once generated and safe
	// for concurrent matching.
	NFA = nfa.NFA
	// Match is the result of a match attempt. A failed attempt is the zero
	// value.
	Match = nfa.Match
	// ParseError is returned, wrapped, when a pattern does not fit the grammar.
	ParseError = parser.Error
	// RangeDiagnostic reports a suspicious or invalid set range. Invalid
	// ranges are returned as errors; confusing ones as warnings.
	RangeDiagnostic = nfagen.Diagnostic
	// Diagnostic is a positioned message about a pattern.
	Diagnostic = diag.Diagnostic
	// Sink receives diagnostics as they are found.
	Sink = diag.Sink
	// Logger traces the pipeline and renders diagnostics with a caret marker.
	Logger = diag.Logger
)

// NewLogger returns a Logger writing to stderr; verbose enables traces.
func NewLogger(verbose bool) *Logger {
	return diag.NewLogger(verbose)
}

// Option configures Parse, Generate and Compile.
type Option func(*options)

type options struct {
	logger *diag.Logger
	sink   diag.Sink
	source string
}

// WithLogger traces parsing and generation through l.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSink reports range warnings to s while the automaton is built.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

func collect(opts []Option) options {
	o := options{logger: diag.Nop(), sink: diag.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = diag.Nop()
	}
	if o.sink == nil {
		o.sink = diag.Discard
	}
	return o
}

// withSource attaches the pattern text to range diagnostics.
func withSource(pattern string) Option {
	return func(o *options) {
		o.source = pattern
	}
}

// Tokenize splits pattern into one token per byte.
func Tokenize(pattern string) ([]Token, error) {
	tokens, err := scanner.Tokenize(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan pattern: %w", err)
	}
	return tokens, nil
}

// Parse builds the syntax tree for tokens. The returned error unwraps to
// *ParseError.
func Parse(tokens []Token, opts ...Option) (*AST, error) {
	o := collect(opts)
	root, err := parser.Parse(tokens, parser.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}
	return root, nil
}

// Generate builds the automaton for root. Warnings are returned alongside a
// successful result. An invalid range is returned as an error that unwraps
// to *RangeDiagnostic.
func Generate(root *AST, opts ...Option) (*NFA, []*RangeDiagnostic, error) {
	o := collect(opts)
	n, warnings, err := nfagen.Generate(root,
		nfagen.WithLogger(o.logger),
		nfagen.WithSink(o.sink),
		nfagen.WithSource(o.source),
	)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to generate automaton: %w", err)
	}
	return n, warnings, nil
}

// ExactMatch reports whether n accepts the whole of input.
func ExactMatch(n *NFA, input string) Match {
	return n.ExactMatch(input)
}

// FindFirstMatch returns the leftmost match of n in input.
func FindFirstMatch(n *NFA, input string) Match {
	return n.FindFirst(input)
}

// FindAllMatches returns every non-overlapping match of n in input, left to
// right.
func FindAllMatches(n *NFA, input string) []Match {
	return n.FindAll(input)
}
