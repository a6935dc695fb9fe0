// Package language provides an immutable view of regular languages with set
// operations and decision queries. Determinization is deferred until an
// operation needs it; the minimal DFA is then computed once and kept.
//
// A Language caches its minimal DFA without locking and is not safe for
// concurrent use.
package language

import (
	"slices"

	"reglang/automaton"
	"reglang/regex"
)

type Language struct {
	nfa *automaton.NFA
	dfa *automaton.DFA
}

// New wraps a copy of n.
func New(n *automaton.NFA) *Language { return &Language{nfa: n.Clone()} }

// FromDFA wraps a copy of d; d itself is never minimized in place. A partial
// d is redeterminized on first use.
func FromDFA(d *automaton.DFA) *Language {
	l := &Language{nfa: d.NFA()}
	if d.IsTotal() {
		l.dfa = d.Clone()
	}
	return l
}

func FromRegex(re *regex.Regex) *Language { return &Language{nfa: re.NFA()} }

// Compile parses pattern and wraps its automaton.
func Compile(pattern string) (*Language, error) {
	re, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return FromRegex(re), nil
}

func MustCompile(pattern string) *Language { return FromRegex(regex.MustParse(pattern)) }

// minimal returns the cached minimal DFA, building it on first use.
func (l *Language) minimal() *automaton.DFA {
	if l.dfa == nil {
		l.dfa = automaton.FromNFA(l.nfa)
	}
	l.dfa.Minimize()
	return l.dfa
}

// MinimalDFA returns a copy of the minimal DFA.
func (l *Language) MinimalDFA() *automaton.DFA { return l.minimal().Clone() }

// NFA returns a copy of the nondeterministic representation.
func (l *Language) NFA() *automaton.NFA { return l.nfa.Clone() }

// Alphabet returns the symbols the language is defined over.
func (l *Language) Alphabet() []rune { return slices.Clone(l.nfa.Alphabet()) }

func (l *Language) Union(other *Language) *Language {
	return &Language{nfa: l.nfa.Union(other.nfa)}
}

func (l *Language) Concat(other *Language) *Language {
	return &Language{nfa: l.nfa.Concat(other.nfa)}
}

func (l *Language) Star() *Language { return &Language{nfa: l.nfa.Star()} }

func (l *Language) Reverse() *Language { return &Language{nfa: l.nfa.Reverse()} }

func (l *Language) Intersect(other *Language) *Language {
	return FromDFA(l.minimal().Intersect(other.minimal()))
}

// Complement returns the strings over the language's own alphabet that are
// not in it.
func (l *Language) Complement() *Language { return FromDFA(l.minimal().Complement()) }

// complementOver is Complement relative to a wider alphabet.
func (l *Language) complementOver(symbols []rune) *Language {
	return FromDFA(l.minimal().Complete(symbols).Complement())
}

// Witness returns a shortest string of the language, or false when it is
// empty. Ties are broken by the rune order of the alphabet.
func (l *Language) Witness() (string, bool) {
	d := l.minimal()
	alpha := d.Alphabet()

	type via struct {
		prev int
		sym  rune
	}
	seen := make([]bool, d.NumStates())
	back := make([]via, d.NumStates())
	start := d.Initial()
	seen[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if d.IsAccepting(cur) {
			var rev []rune
			for s := cur; s != start; s = back[s].prev {
				rev = append(rev, back[s].sym)
			}
			slices.Reverse(rev)
			return string(rev), true
		}
		for _, sym := range alpha {
			next := d.Transition(cur, sym)
			if !seen[next] {
				seen[next] = true
				back[next] = via{prev: cur, sym: sym}
				queue = append(queue, next)
			}
		}
	}
	return "", false
}

// Accepts reports whether s is in the language. A rune outside the alphabet
// rejects immediately.
func (l *Language) Accepts(s string) bool {
	d := l.minimal()
	state := d.Initial()
	for _, r := range s {
		next, ok := d.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccepting(state)
}

// Contains reports whether every string of other is in l.
func (l *Language) Contains(other *Language) bool {
	sigma := mergeAlphabets(l.nfa.Alphabet(), other.nfa.Alphabet())
	return l.complementOver(sigma).Intersect(other).IsEmpty()
}

func (l *Language) IsEmpty() bool {
	_, ok := l.Witness()
	return !ok
}

// IsFull reports whether the language holds every string over its alphabet.
func (l *Language) IsFull() bool { return l.Complement().IsEmpty() }

// Equal reports whether both languages hold the same strings.
func (l *Language) Equal(other *Language) bool {
	return l.Contains(other) && other.Contains(l)
}

func mergeAlphabets(a, b []rune) []rune {
	out := slices.Concat(a, b)
	slices.Sort(out)
	return slices.Compact(out)
}
