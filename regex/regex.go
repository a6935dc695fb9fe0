// Package regex parses regular expressions over runes into expression trees
// and compiles them to automata.
//
// The syntax is
//
//	union  := concat ('|' concat)*
//	concat := star star*
//	star   := term ('*' | '+' | '?')?
//	term   := symbol | '(' union ')' | 'ε' | '∅'
//
// where ε matches the empty string and ∅ matches nothing. The characters
// ( ) * + | are reserved and there is no escape syntax.
package regex

import (
	"fmt"

	"reglang/automaton"
)

// ParseError reports malformed syntax. Char is 0 at the end of the pattern.
type ParseError struct {
	Pattern  string
	Pos      int
	Char     rune
	Expected string
}

func (e *ParseError) Error() string {
	got := "end of pattern"
	if e.Char != 0 {
		got = fmt.Sprintf("%q", e.Char)
	}
	if e.Expected != "" {
		return fmt.Sprintf("regex: expected %q at position %d of %q, got %s", e.Expected, e.Pos, e.Pattern, got)
	}
	return fmt.Sprintf("regex: unexpected %s at position %d of %q", got, e.Pos, e.Pattern)
}

type Regex struct {
	pattern string
	root    Node
}

// Parse parses pattern. It fails on the first syntax error and returns no
// partial tree.
func Parse(pattern string) (*Regex, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, fmt.Errorf("regex: %w", err)
	}
	p := &parser{pattern: pattern, toks: toks}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, root: root}, nil
}

func MustParse(pattern string) *Regex {
	r, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Regex) Root() Node { return r.root }

func (r *Regex) String() string { return r.pattern }

// NFA returns a fresh Thompson automaton for the expression.
func (r *Regex) NFA() *automaton.NFA { return r.root.NFA() }

// DFA returns the subset construction of NFA(), not minimized.
func (r *Regex) DFA() *automaton.DFA { return automaton.FromNFA(r.NFA()) }
