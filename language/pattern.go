package language

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrepresentable is returned by Pattern when a symbol has no literal
// form in the regex syntax.
var ErrUnrepresentable = errors.New("language: symbol cannot be written as a pattern")

type exprKind int

const (
	kAtom    exprKind = iota // symbol, ε, ∅ or a parenthesized group
	kPostfix                 // atom followed by *
	kConcat
	kUnion
)

type expr struct {
	s    string
	kind exprKind
}

var epsExpr = &expr{s: "ε", kind: kAtom}

func group(e *expr) string { return "(" + e.s + ")" }

// alt returns a|b. nil stands for the empty language.
func alt(a, b *expr) *expr {
	switch {
	case a == nil:
		return b
	case b == nil || a.s == b.s:
		return a
	}
	return &expr{s: a.s + "|" + b.s, kind: kUnion}
}

func cat(a, b *expr) *expr {
	switch {
	case a == nil || b == nil:
		return nil
	case a == epsExpr:
		return b
	case b == epsExpr:
		return a
	}
	left, right := a.s, b.s
	if a.kind == kUnion {
		left = group(a)
	}
	if b.kind == kUnion {
		right = group(b)
	}
	return &expr{s: left + right, kind: kConcat}
}

func star(a *expr) *expr {
	if a == nil || a == epsExpr {
		return epsExpr
	}
	if a.kind == kAtom {
		return &expr{s: a.s + "*", kind: kPostfix}
	}
	return &expr{s: group(a) + "*", kind: kPostfix}
}

// Pattern returns a regular expression for the language, obtained by state
// elimination over the minimal DFA. The empty language is "∅".
func (l *Language) Pattern() (string, error) {
	d := l.minimal()
	for _, r := range d.Alphabet() {
		if strings.ContainsRune("()*+?|ε∅", r) {
			return "", fmt.Errorf("%w: %q", ErrUnrepresentable, r)
		}
	}

	// only states that can still reach an accepting state take part
	live := d.Productive()
	var states []int
	for s, ok := range live {
		if ok {
			states = append(states, s)
		}
	}
	if !live[d.Initial()] {
		return "∅", nil
	}

	n := len(states)
	src, dst := n, n+1
	index := make(map[int]int, n)
	for i, s := range states {
		index[s] = i
	}
	R := make([][]*expr, n+2)
	for i := range R {
		R[i] = make([]*expr, n+2)
	}
	R[src][index[d.Initial()]] = epsExpr
	for _, s := range states {
		if d.IsAccepting(s) {
			R[index[s]][dst] = epsExpr
		}
		for _, sym := range d.Alphabet() {
			to := d.Transition(s, sym)
			if live[to] {
				i, j := index[s], index[to]
				R[i][j] = alt(R[i][j], &expr{s: string(sym), kind: kAtom})
			}
		}
	}

	// eliminate states one by one; src and dst stay
	remaining := make([]bool, n+2)
	for i := range remaining {
		remaining[i] = true
	}
	for k := range n {
		remaining[k] = false
		loop := star(R[k][k])
		for i := range n + 2 {
			if !remaining[i] || R[i][k] == nil {
				continue
			}
			for j := range n + 2 {
				if !remaining[j] || R[k][j] == nil {
					continue
				}
				R[i][j] = alt(R[i][j], cat(cat(R[i][k], loop), R[k][j]))
			}
		}
	}

	if R[src][dst] == nil {
		return "∅", nil
	}
	return R[src][dst].s, nil
}
