package ast

// Visitor has one method per node kind. Adding a node kind adds a method
// here, which forces every consumer to handle it.
type Visitor interface {
	VisitAlternative(*Alternative)
	VisitConcat(*Concat)
	VisitQuantified(*Quantified)
	VisitGroup(*Group)
	VisitSet(*Set)
	VisitSetItem(*SetItem)
	VisitChar(*Char)
	VisitAnyChar(*AnyChar)
	VisitEscapeSeq(*EscapeSeq)
}

// DepthVisitor is an optional extension of Visitor. Walk calls Enter before
// descending into the children of a node and Leave after them.
type DepthVisitor interface {
	Visitor
	Enter()
	Leave()
}

// Walk visits node in pre-order and then recurses depth-first into its
// children, left to right. Leaves (Char, AnyChar, EscapeSeq, SetItem) do
// not recurse.
func Walk(v Visitor, node Node) {
	node.Accept(v)

	children := Children(node)
	if len(children) == 0 {
		return
	}

	dv, hasDepth := v.(DepthVisitor)
	if hasDepth {
		dv.Enter()
	}
	for _, child := range children {
		Walk(v, child)
	}
	if hasDepth {
		dv.Leave()
	}
}

// Children returns the direct children of node in traversal order.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *Alternative:
		out := make([]Node, len(n.Branches))
		for i, b := range n.Branches {
			out[i] = b
		}
		return out
	case *Concat:
		out := make([]Node, len(n.Items))
		for i, q := range n.Items {
			out[i] = q
		}
		return out
	case *Quantified:
		return []Node{n.Expr}
	case *Group:
		return []Node{n.Expr}
	case *Set:
		out := make([]Node, len(n.Items))
		for i, item := range n.Items {
			out[i] = item
		}
		return out
	default:
		return nil
	}
}
