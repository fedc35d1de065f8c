package nfa

import "sort"

// Match is the result of a match attempt. A failed attempt is the zero
// value.
type Match struct {
	Success bool
	Start   int
	Length  int
	Text    string
}

// End returns the offset just past the match.
func (m Match) End() int {
	return m.Start + m.Length
}

// stateSet is an insertion-ordered set of state ids with O(1) membership.
type stateSet struct {
	ids    []StateID
	member []bool
}

func newStateSet(size int) *stateSet {
	return &stateSet{member: make([]bool, size)}
}

func (s *stateSet) add(id StateID) bool {
	if s.member[id] {
		return false
	}
	s.member[id] = true
	s.ids = append(s.ids, id)
	return true
}

func (s *stateSet) has(id StateID) bool {
	return s.member[id]
}

func (s *stateSet) empty() bool {
	return len(s.ids) == 0
}

func (s *stateSet) reset() {
	for _, id := range s.ids {
		s.member[id] = false
	}
	s.ids = s.ids[:0]
}

// closure adds every state reachable from seeds through epsilon moves,
// seeds included, to set.
func (n *NFA) closure(set *stateSet, stack []StateID, seeds ...StateID) []StateID {
	stack = append(stack[:0], seeds...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !set.add(id) {
			continue
		}
		for _, t := range n.states[id].Transitions {
			if t.Edge == Epsilon && !set.has(t.To) {
				stack = append(stack, t.To)
			}
		}
	}
	return stack
}

// EpsilonClosure returns the states reachable from seeds using only epsilon
// transitions, seeds included, in ascending order.
func (n *NFA) EpsilonClosure(seeds ...StateID) []StateID {
	set := newStateSet(len(n.states))
	n.closure(set, nil, seeds...)
	out := append([]StateID(nil), set.ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FirstBytes returns every byte that can be consumed first from the initial
// state.
func (n *NFA) FirstBytes() ByteSet {
	var set ByteSet
	for _, id := range n.EpsilonClosure(0) {
		for _, t := range n.states[id].Transitions {
			switch t.Edge {
			case Epsilon:
			case Wildcard:
				for c := 0; c < 256; c++ {
					if c != '\n' {
						set.Add(byte(c))
					}
				}
			default:
				set.Add(byte(t.Edge))
			}
		}
	}
	return set
}

// Nullable reports whether the automaton accepts the empty string.
func (n *NFA) Nullable() bool {
	for _, id := range n.EpsilonClosure(0) {
		if id == n.accept {
			return true
		}
	}
	return false
}

// ExactMatch reports whether the whole input is accepted.
func (n *NFA) ExactMatch(input string) Match {
	return n.run(input, 0, true)
}

// FindFirst returns the first match found scanning input left to right.
// Start positions whose byte cannot begin a match are skipped; the end of
// the input is always tried.
func (n *NFA) FindFirst(input string) Match {
	first := n.FirstBytes()
	for pos := skip(first, input, 0); pos <= len(input); pos = skip(first, input, pos+1) {
		if m := n.run(input, pos, false); m.Success {
			return m
		}
	}
	return Match{}
}

// FindAll returns every non-overlapping match, left to right. After a match
// the scan resumes at its end; an empty match advances by one byte so the
// scan always terminates.
func (n *NFA) FindAll(input string) []Match {
	var matches []Match
	first := n.FirstBytes()
	for pos := skip(first, input, 0); pos <= len(input); {
		m := n.run(input, pos, false)
		if m.Success {
			matches = append(matches, m)
		}
		pos = skip(first, input, pos+max(m.Length, 1))
	}
	return matches
}

// skip returns the first position at or after pos whose byte is in first.
// With no such byte it returns len(input), or pos when already past it.
func skip(first ByteSet, input string, pos int) int {
	for ; pos < len(input); pos++ {
		if first.Contains(input[pos]) {
			return pos
		}
	}
	return pos
}

// run simulates the automaton on input[start:]. In exact mode the accept
// state only counts once the input is exhausted. Otherwise an accept before
// any byte is consumed returns the empty match at once; after that the
// simulation is greedy: reaching accept records a match, and stepping
// continues while some active state can consume the next byte. The last
// recorded match wins.
func (n *NFA) run(input string, start int, exact bool) Match {
	var result Match
	rest := input[start:]

	current := newStateSet(len(n.states))
	next := newStateSet(len(n.states))
	var stack, targets []StateID
	stack = n.closure(current, stack, 0)

	for pos := 0; ; pos++ {
		if current.has(n.accept) && (pos == len(rest) || !exact) {
			result = Match{Success: true, Start: start, Length: pos, Text: rest[:pos]}
			if pos == 0 {
				return result
			}
		}
		if pos == len(rest) {
			return result
		}

		c := rest[pos]
		targets = targets[:0]
		for _, id := range current.ids {
			for _, t := range n.states[id].Transitions {
				if t.Edge.Matches(c) {
					targets = append(targets, t.To)
				}
			}
		}
		if len(targets) == 0 {
			return result
		}

		next.reset()
		stack = n.closure(next, stack, targets...)
		if next.empty() {
			return result
		}
		current, next = next, current
	}
}
