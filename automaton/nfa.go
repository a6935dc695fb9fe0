// Package automaton implements finite automata over runes: a mutable NFA
// core with epsilon edges, a total DFA built on top of it, subset
// construction, minimization and the boolean operations that need
// determinism.
package automaton

import (
	"fmt"
	"slices"
)

// NFA is a nondeterministic automaton with a separate epsilon-edge table.
// States are dense indices in [0, NumStates()).
type NFA struct {
	numStates int
	initial   int
	accept    []bool
	trans     []map[rune][]int
	eps       [][]int

	finalized bool
	alphabet  []rune
	closure   [][]int
}

// NewNFA returns an automaton with no states.
func NewNFA() *NFA { return &NFA{initial: -1} }

func (n *NFA) NewState() int { return n.NewStates(1)[0] }

// NewStates allocates count fresh states and returns their indices.
func (n *NFA) NewStates(count int) []int {
	if count < 0 {
		panic(fmt.Sprintf("automaton: negative state count %d", count))
	}
	ids := make([]int, count)
	for i := range ids {
		ids[i] = n.numStates + i
		n.accept = append(n.accept, false)
		n.trans = append(n.trans, nil)
		n.eps = append(n.eps, nil)
	}
	n.numStates += count
	n.finalized = false
	return ids
}

func (n *NFA) NumStates() int { return n.numStates }

// SetInitial replaces the initial state.
func (n *NFA) SetInitial(s int) {
	n.check(s)
	n.initial = s
	n.finalized = false
}

// Initial returns the initial state, or -1 if none was set.
func (n *NFA) Initial() int { return n.initial }

// AddAccepting adds states to the accepting set.
func (n *NFA) AddAccepting(states ...int) {
	for _, s := range states {
		n.check(s)
	}
	for _, s := range states {
		n.accept[s] = true
	}
	n.finalized = false
}

func (n *NFA) IsAccepting(s int) bool {
	n.check(s)
	return n.accept[s]
}

// Accepting returns the accepting states in increasing order.
func (n *NFA) Accepting() []int {
	var out []int
	for s, ok := range n.accept {
		if ok {
			out = append(out, s)
		}
	}
	return out
}

// AddTransition adds edges from one state on sym to every state in to.
func (n *NFA) AddTransition(from int, sym rune, to ...int) {
	n.check(from)
	if len(to) == 0 {
		panic("automaton: transition needs at least one destination")
	}
	for _, t := range to {
		n.check(t)
	}
	if n.trans[from] == nil {
		n.trans[from] = make(map[rune][]int)
	}
	for _, t := range to {
		n.trans[from][sym] = insertSorted(n.trans[from][sym], t)
	}
	n.finalized = false
}

// AddEpsilon adds non-consuming edges from one state to every state in to.
func (n *NFA) AddEpsilon(from int, to ...int) {
	n.check(from)
	if len(to) == 0 {
		panic("automaton: transition needs at least one destination")
	}
	for _, t := range to {
		n.check(t)
	}
	for _, t := range to {
		n.eps[from] = insertSorted(n.eps[from], t)
	}
	n.finalized = false
}

// Transitions returns the destinations of from on sym. The slice must not be
// modified.
func (n *NFA) Transitions(from int, sym rune) []int {
	n.check(from)
	return n.trans[from][sym]
}

// Epsilons returns the epsilon successors of from. The slice must not be
// modified.
func (n *NFA) Epsilons(from int) []int {
	n.check(from)
	return n.eps[from]
}

// Alphabet returns every symbol used by a labeled transition, sorted.
func (n *NFA) Alphabet() []rune {
	n.finalize()
	return n.alphabet
}

// Closure returns the epsilon closure of s, sorted. It always contains s.
func (n *NFA) Closure(s int) []int {
	n.check(s)
	n.finalize()
	return n.closure[s]
}

func (n *NFA) finalize() {
	if n.finalized {
		return
	}
	seen := map[rune]struct{}{}
	n.alphabet = nil
	for _, m := range n.trans {
		for sym := range m {
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				n.alphabet = append(n.alphabet, sym)
			}
		}
	}
	slices.Sort(n.alphabet)

	n.closure = make([][]int, n.numStates)
	mark := make([]int, n.numStates)
	for s := range n.closure {
		// mark[x] == s+1 means x is already in the closure of s
		stack := []int{s}
		mark[s] = s + 1
		var set []int
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			set = append(set, cur)
			for _, t := range n.eps[cur] {
				if mark[t] != s+1 {
					mark[t] = s + 1
					stack = append(stack, t)
				}
			}
		}
		slices.Sort(set)
		n.closure[s] = set
	}
	n.finalized = true
}

// Clone returns a deep copy.
func (n *NFA) Clone() *NFA {
	c := NewNFA()
	c.NewStates(n.numStates)
	if n.initial >= 0 {
		c.SetInitial(n.initial)
	}
	c.AddAccepting(n.Accepting()...)
	c.copyTransitions(n, 0)
	return c
}

// Productive reports, per state, whether some accepting state is reachable
// from it.
func (n *NFA) Productive() []bool {
	rev := make([][]int, n.numStates)
	for from := range n.numStates {
		for _, to := range n.eps[from] {
			rev[to] = append(rev[to], from)
		}
		for _, dst := range n.trans[from] {
			for _, to := range dst {
				rev[to] = append(rev[to], from)
			}
		}
	}
	live := make([]bool, n.numStates)
	stack := n.Accepting()
	for _, s := range stack {
		live[s] = true
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[cur] {
			if !live[p] {
				live[p] = true
				stack = append(stack, p)
			}
		}
	}
	return live
}

func (n *NFA) check(s int) {
	if s < 0 || s >= n.numStates {
		panic(fmt.Sprintf("automaton: state %d out of range [0,%d)", s, n.numStates))
	}
}

func (n *NFA) mustInitial() int {
	if n.initial < 0 {
		panic("automaton: initial state not set")
	}
	return n.initial
}

// copyTransitions adds every edge of src to n with both ends shifted.
func (n *NFA) copyTransitions(src *NFA, shift int) {
	for from := range src.numStates {
		for sym, to := range src.trans[from] {
			n.AddTransition(from+shift, sym, shifted(to, shift)...)
		}
		if len(src.eps[from]) > 0 {
			n.AddEpsilon(from+shift, shifted(src.eps[from], shift)...)
		}
	}
}

func shifted(states []int, shift int) []int {
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = s + shift
	}
	return out
}

func insertSorted(set []int, v int) []int {
	i, found := slices.BinarySearch(set, v)
	if found {
		return set
	}
	return slices.Insert(set, i, v)
}
