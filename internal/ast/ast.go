// Package ast defines the syntax tree built by the parser.
//
// The root of every parsed pattern is an *Alternative. Each node owns its
// children exclusively.
package ast

import "github.com/KromDaniel/bearpig/internal/token"

// Node is implemented by every tree node.
type Node interface {
	// Accept dispatches to the Visitor method for the concrete node kind.
	Accept(v Visitor)
}

// Elementary is the operand of a quantifier: a group, set, literal,
// wildcard or escape sequence.
type Elementary interface {
	Node
	elementary()
}

// Quantifier is the repetition suffix applied to an elementary expression.
type Quantifier int

const (
	None Quantifier = iota
	Star
	Plus
	Optional
)

func (q Quantifier) String() string {
	switch q {
	case None:
		return "NONE"
	case Star:
		return "STAR"
	case Plus:
		return "PLUS"
	case Optional:
		return "OPTIONAL"
	default:
		return "UNKNOWN"
	}
}

// Alternative matches if any of its branches matches.
type Alternative struct {
	Branches []*Concat
}

// Concat matches the sequential concatenation of its items.
type Concat struct {
	Items []*Quantified
}

// Merge moves the items of other to the end of c, leaving other empty.
func (c *Concat) Merge(other *Concat) {
	c.Items = append(c.Items, other.Items...)
	other.Items = nil
}

// Quantified is an elementary expression with an optional quantifier.
type Quantified struct {
	Expr       Elementary
	Quantifier Quantifier
}

// Group is a parenthesized sub-pattern.
type Group struct {
	Expr *Alternative
}

// Set is a bracket expression. Negative is set for [^...].
type Set struct {
	Items    []*SetItem
	Negative bool
}

// SetItem is a single character or, when Range is set, the inclusive range
// Start-Stop.
type SetItem struct {
	Start *Char
	Stop  *Char
	Range bool
}

// Char is a literal character. Index is the position of its token in the
// token stream.
type Char struct {
	Token token.Token
	Index int
}

// Value returns the literal byte.
func (c *Char) Value() byte { return c.Token.Char }

// AnyChar is the '.' wildcard.
type AnyChar struct {
	Token token.Token
}

// EscapeSeq is the character following a backslash, taken literally.
type EscapeSeq struct {
	Char
}

func (*Group) elementary()     {}
func (*Set) elementary()       {}
func (*Char) elementary()      {}
func (*AnyChar) elementary()   {}
func (*EscapeSeq) elementary() {}

func (n *Alternative) Accept(v Visitor) { v.VisitAlternative(n) }
func (n *Concat) Accept(v Visitor)      { v.VisitConcat(n) }
func (n *Quantified) Accept(v Visitor)  { v.VisitQuantified(n) }
func (n *Group) Accept(v Visitor)       { v.VisitGroup(n) }
func (n *Set) Accept(v Visitor)         { v.VisitSet(n) }
func (n *SetItem) Accept(v Visitor)     { v.VisitSetItem(n) }
func (n *Char) Accept(v Visitor)        { v.VisitChar(n) }
func (n *AnyChar) Accept(v Visitor)     { v.VisitAnyChar(n) }
func (n *EscapeSeq) Accept(v Visitor)   { v.VisitEscapeSeq(n) }
