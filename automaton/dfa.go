package automaton

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// DFA is a total deterministic automaton: every state has exactly one
// transition on every symbol of the alphabet, and there are no epsilon
// edges. It wraps an NFA core; every mutation clears the minimized flag.
type DFA struct {
	core      NFA
	minimized bool
}

func NewDFA() *DFA { return &DFA{core: NFA{initial: -1}} }

func (d *DFA) NewState() int {
	d.minimized = false
	return d.core.NewState()
}

func (d *DFA) NewStates(count int) []int {
	d.minimized = false
	return d.core.NewStates(count)
}

func (d *DFA) SetInitial(s int) {
	d.minimized = false
	d.core.SetInitial(s)
}

func (d *DFA) AddAccepting(states ...int) {
	d.minimized = false
	d.core.AddAccepting(states...)
}

// AddTransition sets the single destination of from on sym. Setting a
// different destination for a pair that already has one panics.
func (d *DFA) AddTransition(from int, sym rune, to int) {
	d.minimized = false
	d.core.check(from)
	if cur := d.core.trans[from][sym]; len(cur) > 0 && (len(cur) != 1 || cur[0] != to) {
		panic(fmt.Sprintf("automaton: state %d already moves to %v on %q", from, cur, sym))
	}
	d.core.AddTransition(from, sym, to)
}

// Transition returns the destination of from on sym. It panics unless the
// pair resolves to exactly one state.
func (d *DFA) Transition(from int, sym rune) int {
	to := d.core.Transitions(from, sym)
	if len(to) != 1 {
		panic(fmt.Sprintf("automaton: state %d has %d transitions on %q", from, len(to), sym))
	}
	return to[0]
}

// Step is Transition for input symbols: it reports false when r is not in
// the alphabet.
func (d *DFA) Step(from int, r rune) (int, bool) {
	if _, ok := slices.BinarySearch(d.core.Alphabet(), r); !ok {
		return 0, false
	}
	return d.Transition(from, r), true
}

func (d *DFA) NumStates() int         { return d.core.NumStates() }
func (d *DFA) Initial() int           { return d.core.Initial() }
func (d *DFA) Accepting() []int       { return d.core.Accepting() }
func (d *DFA) IsAccepting(s int) bool { return d.core.IsAccepting(s) }
func (d *DFA) Alphabet() []rune       { return d.core.Alphabet() }
func (d *DFA) Edges() []Edge          { return d.core.Edges() }
func (d *DFA) Productive() []bool     { return d.core.Productive() }

// Minimized reports whether the automaton has not changed since its last
// minimization.
func (d *DFA) Minimized() bool { return d.minimized }

// NFA returns a copy of the automaton as a nondeterministic one.
func (d *DFA) NFA() *NFA { return d.core.Clone() }

func (d *DFA) Clone() *DFA {
	return &DFA{core: *d.core.Clone(), minimized: d.minimized}
}

// IsTotal reports whether every state has exactly one transition on every
// symbol of the alphabet, and an initial state is set.
func (d *DFA) IsTotal() bool {
	if d.core.initial < 0 {
		return false
	}
	alpha := d.core.Alphabet()
	for from := range d.core.numStates {
		if len(d.core.trans[from]) != len(alpha) {
			return false
		}
		for _, to := range d.core.trans[from] {
			if len(to) != 1 {
				return false
			}
		}
	}
	return true
}

func (d *DFA) mustTotal() {
	if !d.IsTotal() {
		panic("automaton: operation needs a total DFA")
	}
}

// FromNFA determinizes n by subset construction. The empty subset, when
// reached, becomes an explicit dead state.
func FromNFA(n *NFA) *DFA {
	start := n.Closure(n.mustInitial())
	alpha := n.Alphabet()

	ids := map[string]int{subsetKey(start): 0}
	subsets := [][]int{start}
	type move struct {
		from, to int
		sym      rune
	}
	var moves []move

	mark := make([]bool, n.numStates)
	for i := 0; i < len(subsets); i++ {
		cur := subsets[i]
		for _, sym := range alpha {
			var next []int
			for _, s := range cur {
				for _, t := range n.trans[s][sym] {
					for _, c := range n.closure[t] {
						if !mark[c] {
							mark[c] = true
							next = append(next, c)
						}
					}
				}
			}
			for _, c := range next {
				mark[c] = false
			}
			slices.Sort(next)

			k := subsetKey(next)
			id, ok := ids[k]
			if !ok {
				id = len(subsets)
				ids[k] = id
				subsets = append(subsets, next)
			}
			moves = append(moves, move{from: i, to: id, sym: sym})
		}
	}

	d := NewDFA()
	d.NewStates(len(subsets))
	d.SetInitial(0)
	for id, set := range subsets {
		if slices.ContainsFunc(set, n.IsAccepting) {
			d.AddAccepting(id)
		}
	}
	for _, m := range moves {
		d.AddTransition(m.from, m.sym, m.to)
	}
	return d
}

// subsetKey encodes a sorted state list; equal sets get equal keys.
func subsetKey(set []int) string {
	buf := make([]byte, 0, len(set)*2)
	for _, s := range set {
		buf = binary.AppendUvarint(buf, uint64(s))
	}
	return string(buf)
}

// Complete returns a copy of d that is total over d's alphabet together with
// symbols. Missing transitions lead to one fresh dead state.
func (d *DFA) Complete(symbols []rune) *DFA {
	d.mustTotal()
	out := d.Clone()
	missing := slices.DeleteFunc(slices.Clone(symbols), func(r rune) bool {
		_, found := slices.BinarySearch(d.Alphabet(), r)
		return found
	})
	missing = mergeAlphabets(missing, nil)
	if len(missing) == 0 {
		return out
	}
	dead := out.NewState()
	all := mergeAlphabets(d.Alphabet(), missing)
	for _, sym := range all {
		out.AddTransition(dead, sym, dead)
	}
	for from := range d.NumStates() {
		for _, sym := range missing {
			out.AddTransition(from, sym, dead)
		}
	}
	return out
}

// Complement returns a DFA with the same states and transitions and the
// accepting set inverted. The complement is relative to d's own alphabet.
func (d *DFA) Complement() *DFA {
	d.mustTotal()
	c := NewDFA()
	c.NewStates(d.NumStates())
	c.SetInitial(d.Initial())
	for s := range d.NumStates() {
		if !d.IsAccepting(s) {
			c.AddAccepting(s)
		}
	}
	c.core.copyTransitions(&d.core, 0)
	return c
}

// Intersect returns a DFA for L(d) ∩ L(other), computed as the complement of
// the union of both complements. Both operands are completed over the union
// of their alphabets first.
func (d *DFA) Intersect(other *DFA) *DFA {
	sigma := mergeAlphabets(d.Alphabet(), other.Alphabet())
	a := d.Complete(sigma).Complement()
	b := other.Complete(sigma).Complement()
	return FromNFA(a.core.Union(&b.core)).Complement()
}
