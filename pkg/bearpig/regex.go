package bearpig

import (
	"context"
	"fmt"
	"io"

	"github.com/KromDaniel/bearpig/internal/codegen"
	"github.com/KromDaniel/bearpig/internal/export"
	"github.com/KromDaniel/bearpig/replace"
	"github.com/KromDaniel/bearpig/stream"
)

// Regex is a compiled pattern. It is safe for concurrent use.
type Regex struct {
	pattern  string
	tokens   []Token
	root     *AST
	nfa      *NFA
	warnings []*RangeDiagnostic
}

// Compile runs the whole pipeline on pattern.
func Compile(pattern string, opts ...Option) (*Regex, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	root, err := Parse(tokens, opts...)
	if err != nil {
		return nil, err
	}
	n, warnings, err := Generate(root, append(opts[:len(opts):len(opts)], withSource(pattern))...)
	if err != nil {
		return nil, err
	}
	return &Regex{
		pattern:  pattern,
		tokens:   tokens,
		root:     root,
		nfa:      n,
		warnings: warnings,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts ...Option) *Regex {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(fmt.Sprintf("bearpig: Compile(%q): %v", pattern, err))
	}
	return re
}

// String returns the source pattern.
func (re *Regex) String() string { return re.pattern }

// ExactMatch reports whether the pattern matches the whole of input.
func (re *Regex) ExactMatch(input string) Match { return re.nfa.ExactMatch(input) }

// MatchString is ExactMatch reduced to a bool.
func (re *Regex) MatchString(input string) bool { return re.nfa.ExactMatch(input).Success }

// FindFirst returns the leftmost match in input.
func (re *Regex) FindFirst(input string) Match { return re.nfa.FindFirst(input) }

// FindAll returns every non-overlapping match in input.
func (re *Regex) FindAll(input string) []Match { return re.nfa.FindAll(input) }

// Spans returns the positions of every match in line. Its signature fits
// stream.Finder.
func (re *Regex) Spans(line string) []stream.Span {
	matches := re.nfa.FindAll(line)
	if len(matches) == 0 {
		return nil
	}
	spans := make([]stream.Span, len(matches))
	for i, m := range matches {
		spans[i] = stream.Span{Start: m.Start, Length: m.Length}
	}
	return spans
}

// ReplaceAll replaces every match in input with template, where $0 stands
// for the matched text and $$ for a dollar sign.
func (re *Regex) ReplaceAll(input, template string) (string, error) {
	tmpl, err := replace.Parse(template)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}
	return re.replace(input, tmpl), nil
}

// Replacer parses template once and returns a function applying it to a
// line, for use with stream.LineTransform.
func (re *Regex) Replacer(template string) (func(string) string, error) {
	tmpl, err := replace.Parse(template)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return func(s string) string { return re.replace(s, tmpl) }, nil
}

func (re *Regex) replace(input string, tmpl *replace.Template) string {
	matches := re.nfa.FindAll(input)
	spans := make([]replace.Span, len(matches))
	for i, m := range matches {
		spans[i] = replace.Span{Start: m.Start, Length: m.Length}
	}
	return tmpl.Apply(input, spans)
}

// NFA returns the compiled automaton.
func (re *Regex) NFA() *NFA { return re.nfa }

// AST returns the parsed pattern.
func (re *Regex) AST() *AST { return re.root }

// Tokens returns a copy of the scanned tokens.
func (re *Regex) Tokens() []Token {
	return append([]Token(nil), re.tokens...)
}

// Warnings returns the confusing-range warnings found while compiling.
func (re *Regex) Warnings() []*RangeDiagnostic { return re.warnings }

// WriteDOT writes the automaton in Graphviz DOT syntax.
func (re *Regex) WriteDOT(w io.Writer) error {
	return re.WriteGraph(context.Background(), w, string(export.FormatDOT))
}

// WriteGraph renders the automaton as dot, svg or png.
func (re *Regex) WriteGraph(ctx context.Context, w io.Writer, format string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := export.Render(ctx, re.nfa, f, w); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	return nil
}

// GenerateGo writes a standalone Go file that matches the pattern without
// this package. name prefixes the generated identifiers.
func (re *Regex) GenerateGo(w io.Writer, name, pkg string) error {
	g := codegen.New(codegen.Config{
		Pattern: re.pattern,
		Name:    name,
		Package: pkg,
		NFA:     re.nfa,
	})
	if err := g.Render(w); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
