// Package nfagen builds a Thompson NFA from a parsed pattern.
//
// The Generator is an ast.Visitor that keeps a single cursor: the state the
// next fragment attaches to. Every visit method starts from the cursor and
// leaves it on the exit state of the fragment it built, so concatenation
// needs no explicit joining.
package nfagen

import (
	"errors"

	"github.com/KromDaniel/bearpig/internal/ast"
	"github.com/KromDaniel/bearpig/internal/diag"
	"github.com/KromDaniel/bearpig/internal/nfa"
)

// Generator populates an NFA from an AST.
type Generator struct {
	nfa      *nfa.NFA
	cursor   nfa.StateID
	sink     diag.Sink
	logger   *diag.Logger
	source   string
	warnings []*Diagnostic
	err      error
}

// Option configures a Generator.
type Option func(*Generator)

// WithSink sends non-fatal diagnostics to s as they are found.
func WithSink(s diag.Sink) Option {
	return func(g *Generator) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithLogger traces every constructed fragment at debug level.
func WithLogger(l *diag.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSource attaches the pattern text to diagnostics.
func WithSource(pattern string) Option {
	return func(g *Generator) {
		g.source = pattern
	}
}

// New returns a generator that adds states to n.
func New(n *nfa.NFA, opts ...Option) *Generator {
	g := &Generator{
		nfa:    n,
		sink:   diag.Discard,
		logger: diag.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a fresh NFA for root. Warnings are returned alongside a
// successful result; a fatal diagnostic is returned as the error.
func Generate(root *ast.Alternative, opts ...Option) (*nfa.NFA, []*Diagnostic, error) {
	n := nfa.New()
	g := New(n, opts...)
	if err := g.Run(root); err != nil {
		return nil, g.Warnings(), err
	}
	return n, g.Warnings(), nil
}

// Run attaches root to the initial state.
func (g *Generator) Run(root *ast.Alternative) error {
	if root == nil {
		return errors.New("nfagen: nil pattern")
	}
	g.logger.Section("NFA Generation")
	g.cursor = 0
	root.Accept(g)
	if g.err != nil {
		return g.err
	}
	g.logger.Log("generated %d states, accept state %d", g.nfa.Len(), g.nfa.Accept())
	return nil
}

// Warnings returns the non-fatal diagnostics found so far.
func (g *Generator) Warnings() []*Diagnostic {
	return g.warnings
}

func (g *Generator) add() nfa.StateID {
	return g.nfa.AddState()
}

func (g *Generator) epsilon(from, to nfa.StateID) {
	g.nfa.AddTransition(from, to, nfa.Epsilon)
}

// consume adds a state reached from the cursor over edge and moves the
// cursor there. A NUL literal gets no edge, leaving a dead end.
func (g *Generator) consume(edge nfa.Edge) {
	s := g.add()
	if edge != nfa.Epsilon {
		g.nfa.AddTransition(g.cursor, s, edge)
	}
	g.cursor = s
}

func (g *Generator) VisitAlternative(a *ast.Alternative) {
	if g.err != nil {
		return
	}
	parent := g.cursor
	start, end := g.add(), g.add()
	g.epsilon(parent, start)
	if parent == g.nfa.Accept() {
		g.nfa.SetAccept(end)
	}
	g.logger.Log("VisitAlternative: %d branches, start %d, end %d", len(a.Branches), start, end)

	for _, branch := range a.Branches {
		entry := g.add()
		g.epsilon(start, entry)
		g.cursor = entry
		branch.Accept(g)
		if g.err != nil {
			return
		}
		g.epsilon(g.cursor, end)
	}
	g.cursor = end
}

func (g *Generator) VisitConcat(c *ast.Concat) {
	if g.err != nil {
		return
	}
	start := g.add()
	g.epsilon(g.cursor, start)
	g.cursor = start
	for _, item := range c.Items {
		item.Accept(g)
		if g.err != nil {
			return
		}
	}
}

func (g *Generator) VisitQuantified(q *ast.Quantified) {
	if g.err != nil {
		return
	}
	start := g.cursor
	end := g.add()
	q.Expr.Accept(g)
	if g.err != nil {
		return
	}

	switch q.Quantifier {
	case ast.Star:
		g.epsilon(g.cursor, start)
		g.epsilon(start, end)
		g.epsilon(g.cursor, end)
	case ast.Plus:
		g.epsilon(g.cursor, start)
		g.epsilon(g.cursor, end)
	case ast.Optional:
		g.epsilon(g.cursor, end)
		g.epsilon(start, end)
	default:
		g.epsilon(g.cursor, end)
	}
	g.logger.Log("VisitQuantified: %s from %d to %d", q.Quantifier, start, end)
	g.cursor = end
}

func (g *Generator) VisitGroup(gr *ast.Group) {
	if g.err != nil {
		return
	}
	gr.Expr.Accept(g)
}

func (g *Generator) VisitSet(s *ast.Set) {
	if g.err != nil {
		return
	}
	start := g.add()
	g.epsilon(g.cursor, start)
	end := g.add()

	if s.Negative {
		g.negatedSet(s, start, end)
		g.cursor = end
		return
	}

	g.logger.Log("VisitSet: %d items, start %d, end %d", len(s.Items), start, end)
	for _, item := range s.Items {
		entry := g.add()
		g.epsilon(start, entry)
		g.cursor = entry
		item.Accept(g)
		if g.err != nil {
			return
		}
		g.epsilon(g.cursor, end)
	}
	g.cursor = end
}

// negatedSet adds one branch per byte in 1..255 that no item covers.
func (g *Generator) negatedSet(s *ast.Set, start, end nfa.StateID) {
	var members nfa.ByteSet
	for _, item := range s.Items {
		lo, hi, ok := g.bounds(item)
		if !ok {
			return
		}
		for c := int(lo); c <= int(hi); c++ {
			members.Add(byte(c))
		}
	}
	g.logger.Log("VisitSet: negated, excluding %d bytes", members.Len())

	for c := 1; c < 256; c++ {
		if members.Contains(byte(c)) {
			continue
		}
		branch := g.add()
		g.nfa.AddTransition(start, branch, nfa.Literal(byte(c)))
		g.epsilon(branch, end)
	}
}

func (g *Generator) VisitSetItem(item *ast.SetItem) {
	if g.err != nil {
		return
	}
	subStart, end := g.add(), g.add()
	g.epsilon(g.cursor, subStart)

	if !item.Range {
		g.cursor = subStart
		item.Start.Accept(g)
		g.epsilon(g.cursor, end)
		g.cursor = end
		return
	}

	lo, hi, ok := g.bounds(item)
	if !ok {
		return
	}
	for c := int(lo); c <= int(hi); c++ {
		g.cursor = subStart
		g.consume(nfa.Literal(byte(c)))
		g.epsilon(g.cursor, end)
	}
	g.cursor = end
}

// bounds returns the inclusive byte range of item, validating ranges. A
// start after the stop is fatal; a range crossing from the upper case block
// into the lower case block is reported as a warning.
func (g *Generator) bounds(item *ast.SetItem) (lo, hi byte, ok bool) {
	if !item.Range {
		c := item.Start.Value()
		return c, c, true
	}
	lo, hi = item.Start.Value(), item.Stop.Value()
	d := &Diagnostic{
		Low:    lo,
		High:   hi,
		Start:  item.Start.Token.Column,
		Stop:   item.Stop.Token.Column,
		Source: g.source,
	}
	if lo > hi {
		d.Kind = InvalidRange
		g.err = d
		return 0, 0, false
	}
	if hi >= 91 && lo <= 96 {
		d.Kind = ConfusingRange
		g.warnings = append(g.warnings, d)
		g.sink.Report(d.Diagnostic())
	}
	return lo, hi, true
}

func (g *Generator) VisitChar(c *ast.Char) {
	if g.err != nil {
		return
	}
	g.consume(nfa.Literal(c.Value()))
}

func (g *Generator) VisitAnyChar(*ast.AnyChar) {
	if g.err != nil {
		return
	}
	g.consume(nfa.Wildcard)
}

func (g *Generator) VisitEscapeSeq(e *ast.EscapeSeq) {
	if g.err != nil {
		return
	}
	g.consume(nfa.Literal(e.Value()))
}
