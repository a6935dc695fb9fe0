package regex

import "reglang/automaton"

// Node is a parsed expression. Each node builds its own automaton by
// Thompson construction.
type Node interface {
	NFA() *automaton.NFA
	String() string
}

// EmptySet matches nothing.
type EmptySet struct{}

// Epsilon matches only the empty string.
type Epsilon struct{}

type Symbol struct{ Ch rune }

type Star struct{ Sub Node }

type Concat struct{ Left, Right Node }

type Union struct{ Left, Right Node }

func (EmptySet) NFA() *automaton.NFA {
	n := automaton.NewNFA()
	n.SetInitial(n.NewState())
	return n
}

func (Epsilon) NFA() *automaton.NFA { return EmptySet{}.NFA().Star() }

func (s Symbol) NFA() *automaton.NFA {
	n := automaton.NewNFA()
	q := n.NewStates(2)
	n.SetInitial(q[0])
	n.AddAccepting(q[1])
	n.AddTransition(q[0], s.Ch, q[1])
	return n
}

func (s Star) NFA() *automaton.NFA   { return s.Sub.NFA().Star() }
func (c Concat) NFA() *automaton.NFA { return c.Left.NFA().Concat(c.Right.NFA()) }
func (u Union) NFA() *automaton.NFA  { return u.Left.NFA().Union(u.Right.NFA()) }

// String renders nodes in prefix form, e.g. cat(a,star(b)).
func (EmptySet) String() string { return "∅" }
func (Epsilon) String() string  { return "ε" }
func (s Symbol) String() string { return string(s.Ch) }
func (s Star) String() string   { return "star(" + s.Sub.String() + ")" }
func (c Concat) String() string { return "cat(" + c.Left.String() + "," + c.Right.String() + ")" }
func (u Union) String() string  { return "alt(" + u.Left.String() + "," + u.Right.String() + ")" }
