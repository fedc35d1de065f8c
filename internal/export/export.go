// Package export renders an NFA as a Graphviz graph.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/KromDaniel/bearpig/internal/nfa"
)

// Format is an output format for Render.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported graph format %q (want dot, svg or png)", s)
	}
}

const header = `digraph nfa {
	rankdir=LR;
	node [shape=circle];
`

// DOT returns the graph description of n. States are named by id, the
// accept state is drawn as a double circle and epsilon edges are unlabeled.
func DOT(n *nfa.NFA) (string, error) {
	if n == nil {
		return "", fmt.Errorf("export: nil automaton")
	}
	var b strings.Builder
	b.WriteString(header)
	for _, s := range n.States() {
		if s.Accept {
			fmt.Fprintf(&b, "\t%d [shape=doublecircle];\n", s.ID)
			continue
		}
		fmt.Fprintf(&b, "\t%d;\n", s.ID)
	}
	for _, t := range n.Transitions() {
		fmt.Fprintf(&b, "\t%d -> %d [label=\"%s\"];\n", t.From, t.To, Label(t.Edge))
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// Label returns the escaped edge label used in the DOT output.
func Label(e nfa.Edge) string {
	switch {
	case e == nfa.Epsilon:
		return ""
	case e == nfa.Wildcard:
		return "."
	case e == '"' || e == '\\':
		return `\` + string(rune(e))
	case e < ' ' || e > '~':
		return fmt.Sprintf("0x%02x", int(e))
	default:
		return string(rune(e))
	}
}

// Render writes n to w in the given format. DOT output is written as is;
// other formats are laid out by Graphviz.
func Render(ctx context.Context, n *nfa.NFA, format Format, w io.Writer) error {
	src, err := DOT(n)
	if err != nil {
		return err
	}
	if format == FormatDOT {
		_, err := io.WriteString(w, src)
		return err
	}

	graph, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return fmt.Errorf("failed to parse graph: %w", err)
	}
	defer graph.Close()

	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize graphviz: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, graphviz.Format(format), &buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// RenderFile writes n to path in the given format.
func RenderFile(ctx context.Context, n *nfa.NFA, format Format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Render(ctx, n, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
