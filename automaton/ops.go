package automaton

import "slices"

// Label tags an edge as either a symbol or epsilon.
type Label struct {
	Symbol  rune
	Epsilon bool
}

// Epsilon is the label of a non-consuming edge.
var Epsilon = Label{Epsilon: true}

func Sym(r rune) Label { return Label{Symbol: r} }

func (l Label) String() string {
	if l.Epsilon {
		return "ε"
	}
	return string(l.Symbol)
}

// Edge is one entry of the transition table.
type Edge struct {
	From  int
	Label Label
	To    int
}

// Edges lists the full transition table ordered by source state, then
// epsilon edges before symbols in rune order, then destination.
func (n *NFA) Edges() []Edge {
	var out []Edge
	for from := range n.numStates {
		for _, to := range n.eps[from] {
			out = append(out, Edge{From: from, Label: Epsilon, To: to})
		}
		syms := make([]rune, 0, len(n.trans[from]))
		for sym := range n.trans[from] {
			syms = append(syms, sym)
		}
		slices.Sort(syms)
		for _, sym := range syms {
			for _, to := range n.trans[from][sym] {
				out = append(out, Edge{From: from, Label: Sym(sym), To: to})
			}
		}
	}
	return out
}

// Union returns an automaton accepting L(n) ∪ L(other).
func (n *NFA) Union(other *NFA) *NFA {
	a, b := n.mustInitial(), other.mustInitial()
	k := n.numStates

	u := NewNFA()
	u.NewStates(k + other.numStates + 1)
	u.SetInitial(0)
	u.AddAccepting(shifted(n.Accepting(), 1)...)
	u.AddAccepting(shifted(other.Accepting(), k+1)...)
	u.AddEpsilon(0, a+1, b+k+1)
	u.copyTransitions(n, 1)
	u.copyTransitions(other, k+1)
	return u
}

// Concat returns an automaton accepting L(n)·L(other).
func (n *NFA) Concat(other *NFA) *NFA {
	a, b := n.mustInitial(), other.mustInitial()
	k := n.numStates

	c := NewNFA()
	c.NewStates(k + other.numStates)
	c.SetInitial(a)
	c.AddAccepting(shifted(other.Accepting(), k)...)
	for _, s := range n.Accepting() {
		c.AddEpsilon(s, b+k)
	}
	c.copyTransitions(n, 0)
	c.copyTransitions(other, k)
	return c
}

// Star returns an automaton accepting L(n)*.
func (n *NFA) Star() *NFA {
	a := n.mustInitial()

	s := NewNFA()
	s.NewStates(n.numStates + 1)
	s.SetInitial(0)
	s.AddAccepting(0)
	s.AddAccepting(shifted(n.Accepting(), 1)...)
	s.AddEpsilon(0, a+1)
	for _, acc := range n.Accepting() {
		s.AddEpsilon(acc+1, 0)
	}
	s.copyTransitions(n, 1)
	return s
}

// Reverse returns an automaton accepting the reversal of every string of
// L(n).
func (n *NFA) Reverse() *NFA {
	a := n.mustInitial()

	r := NewNFA()
	r.NewStates(n.numStates + 1)
	r.SetInitial(0)
	r.AddAccepting(a + 1)
	if acc := n.Accepting(); len(acc) > 0 {
		r.AddEpsilon(0, shifted(acc, 1)...)
	}
	for _, e := range n.Edges() {
		if e.Label.Epsilon {
			r.AddEpsilon(e.To+1, e.From+1)
		} else {
			r.AddTransition(e.To+1, e.Label.Symbol, e.From+1)
		}
	}
	return r
}

func mergeAlphabets(a, b []rune) []rune {
	out := slices.Concat(a, b)
	slices.Sort(out)
	return slices.Compact(out)
}
