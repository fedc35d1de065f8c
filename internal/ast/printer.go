package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes an indented dump of a tree, one line per node.
type Printer struct {
	out   io.Writer
	depth int
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Print dumps the tree rooted at node.
func Print(w io.Writer, node Node) {
	Walk(NewPrinter(w), node)
}

// Sprint returns the dump of the tree rooted at node.
func Sprint(node Node) string {
	var b strings.Builder
	Print(&b, node)
	return b.String()
}

func (p *Printer) Enter() { p.depth++ }
func (p *Printer) Leave() { p.depth-- }

func (p *Printer) line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s%s (depth: %d)\n", strings.Repeat(" ", p.depth), fmt.Sprintf(format, args...), p.depth)
}

func (p *Printer) VisitAlternative(n *Alternative) {
	p.line("Alternative: branches: %d", len(n.Branches))
}

func (p *Printer) VisitConcat(n *Concat) {
	p.line("Concat: items: %d", len(n.Items))
}

func (p *Printer) VisitQuantified(n *Quantified) {
	p.line("Quantified: quantifier: %s", n.Quantifier)
}

func (p *Printer) VisitGroup(*Group) {
	p.line("Group")
}

func (p *Printer) VisitSet(n *Set) {
	if n.Negative {
		p.line("Set (negative): items: %d", len(n.Items))
		return
	}
	p.line("Set: items: %d", len(n.Items))
}

func (p *Printer) VisitSetItem(n *SetItem) {
	if n.Range {
		p.line("SetItem: range %q-%q", n.Start.Value(), n.Stop.Value())
		return
	}
	p.line("SetItem: %q", n.Start.Value())
}

func (p *Printer) VisitChar(n *Char) {
	p.line("Char: %q", n.Value())
}

func (p *Printer) VisitAnyChar(*AnyChar) {
	p.line("Any")
}

func (p *Printer) VisitEscapeSeq(n *EscapeSeq) {
	p.line("Escape: %q", n.Value())
}
