// Package nfa holds the automaton built from a pattern and simulates it
// over byte strings.
//
// An NFA is an append-only arena of states indexed by StateID. State 0 is
// always the initial state. Exactly one state is the accept state at any
// time; SetAccept moves the flag.
package nfa

import (
	"fmt"
	"math/bits"
)

// StateID indexes a state in the arena.
type StateID int

// Edge labels a transition. 0 is an epsilon move, 1..255 consume that exact
// byte and Wildcard consumes any byte except '\n'.
type Edge int

const (
	Epsilon  Edge = 0
	Wildcard Edge = 256
)

// Literal returns the edge consuming c. Byte 0 collides with Epsilon and
// therefore cannot be matched literally.
func Literal(c byte) Edge {
	return Edge(c)
}

// Matches reports whether the edge consumes c.
func (e Edge) Matches(c byte) bool {
	switch e {
	case Epsilon:
		return false
	case Wildcard:
		return c != '\n'
	default:
		return e == Edge(c)
	}
}

func (e Edge) String() string {
	switch e {
	case Epsilon:
		return "ε"
	case Wildcard:
		return "."
	default:
		return fmt.Sprintf("%q", byte(e))
	}
}

// Transition is a directed edge between two states.
type Transition struct {
	From StateID
	To   StateID
	Edge Edge
}

func (t Transition) String() string {
	if t.Edge == Epsilon {
		return fmt.Sprintf("(from %d to %d)", t.From, t.To)
	}
	return fmt.Sprintf("(from %d to %d over %s)", t.From, t.To, t.Edge)
}

// State is a node of the automaton with its outgoing transitions in
// insertion order.
type State struct {
	ID          StateID
	Transitions []Transition
	Accept      bool
}

// NFA is the automaton. It is mutated only while being generated and is
// safe for concurrent matching afterwards.
type NFA struct {
	states []*State
	accept StateID
}

// New returns an automaton with the single state 0, which is both initial
// and accepting.
func New() *NFA {
	n := &NFA{}
	n.AddState()
	n.states[0].Accept = true
	return n
}

// AddState appends a new state and returns its id.
func (n *NFA) AddState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, &State{ID: id})
	return id
}

// AddTransition adds an edge from one existing state to another.
func (n *NFA) AddTransition(from, to StateID, edge Edge) {
	if !n.valid(from) || !n.valid(to) {
		panic(fmt.Sprintf("nfa: transition %d->%d references an unknown state (have %d)", from, to, len(n.states)))
	}
	s := n.states[from]
	s.Transitions = append(s.Transitions, Transition{From: from, To: to, Edge: edge})
}

// Accept returns the current accept state.
func (n *NFA) Accept() StateID {
	return n.accept
}

// SetAccept makes id the accept state and clears the previous one.
func (n *NFA) SetAccept(id StateID) {
	if !n.valid(id) {
		panic(fmt.Sprintf("nfa: accept state %d does not exist (have %d)", id, len(n.states)))
	}
	n.states[n.accept].Accept = false
	n.accept = id
	n.states[id].Accept = true
}

// State returns the state with the given id, or nil.
func (n *NFA) State(id StateID) *State {
	if !n.valid(id) {
		return nil
	}
	return n.states[id]
}

// States returns every state ordered by id.
func (n *NFA) States() []*State {
	out := make([]*State, len(n.states))
	copy(out, n.states)
	return out
}

// Transitions returns every transition ordered by source state.
func (n *NFA) Transitions() []Transition {
	var out []Transition
	for _, s := range n.states {
		out = append(out, s.Transitions...)
	}
	return out
}

// Len returns the number of states.
func (n *NFA) Len() int {
	return len(n.states)
}

func (n *NFA) valid(id StateID) bool {
	return id >= 0 && int(id) < len(n.states)
}

// ByteSet is a set of bytes.
type ByteSet [4]uint64

// Add inserts c.
func (s *ByteSet) Add(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// Contains reports whether c is in the set.
func (s *ByteSet) Contains(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of bytes in the set.
func (s *ByteSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Bytes lists the members in ascending order.
func (s *ByteSet) Bytes() []byte {
	var out []byte
	for c := 0; c < 256; c++ {
		if s.Contains(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}
