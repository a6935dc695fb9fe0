package language

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"reglang/automaton"
)

// ------------------------------------------------------------------- helpers

func lang(t *testing.T, pat string) *Language {
	t.Helper()
	l, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return l
}

func bin(v int) string { return strconv.FormatInt(int64(v), 2) }

// multipleOf accepts binary numerals divisible by x.
func multipleOf(x int) *Language {
	d := automaton.NewDFA()
	d.NewStates(x)
	d.SetInitial(0)
	d.AddAccepting(0)
	for r := range x {
		for s := range 2 {
			d.AddTransition(r, rune('0'+s), (2*r+s)%x)
		}
	}
	return FromDFA(d)
}

func accepts(t *testing.T, l *Language, in string, want bool) {
	t.Helper()
	if got := l.Accepts(in); got != want {
		t.Fatalf("Accepts(%q): want %v got %v", in, want, got)
	}
}

// ------------------------------------------------------------------- Membership

func TestWitness(t *testing.T) {
	l := lang(t, "ab*c?")
	w, ok := l.Witness()
	if !ok {
		t.Fatal("no witness for a non-empty language")
	}
	if w != "a" {
		t.Fatalf("want shortest witness a got %q", w)
	}
	accepts(t, l, "abbbbbbbbbc", true)
	accepts(t, l, "abbbbbbcb", false)
	if !lang(t, "a+b*c*").Contains(l) {
		t.Fatal("a+b*c* should contain ab*c?")
	}
}

func TestWitnessIsShortest(t *testing.T) {
	tests := []struct {
		pat  string
		want string
	}{
		{"(0|1)*(001)(0|1)*", "001"},
		{"ε", ""},
		{"a*", ""},
		{"bbb|aa", "aa"},
		{"(a|b)(a|b)c", "aac"},
	}
	for _, tt := range tests {
		w, ok := lang(t, tt.pat).Witness()
		if !ok || w != tt.want {
			t.Errorf("%q: want %q got %q (%v)", tt.pat, tt.want, w, ok)
		}
	}
}

func TestWitnessEmpty(t *testing.T) {
	for _, pat := range []string{"∅", "a∅", "(∅b)*∅"} {
		if _, ok := lang(t, pat).Witness(); ok {
			t.Errorf("%q: witness for an empty language", pat)
		}
		if !lang(t, pat).IsEmpty() {
			t.Errorf("%q: not empty", pat)
		}
	}
}

func TestAcceptsOutsideAlphabet(t *testing.T) {
	l := lang(t, "a*")
	accepts(t, l, "aaa", true)
	accepts(t, l, "aza", false)
	accepts(t, l, "", true)
}

// ------------------------------------------------------------------- Set-ops

func TestUnion(t *testing.T) {
	l5, l7 := multipleOf(5), multipleOf(7)
	either := l5.Union(l7)
	accepts(t, either, bin(5*123839), true)
	accepts(t, either, bin(7*824098), true)
	accepts(t, either, bin(5*7+3), false)
	if !either.Contains(l5) || !either.Contains(l7) {
		t.Fatal("union should contain both operands")
	}
}

func TestIntersect(t *testing.T) {
	l11, l13 := multipleOf(11), multipleOf(13)
	both := l11.Intersect(l13)
	accepts(t, both, bin(11), false)
	accepts(t, both, bin(13), false)
	accepts(t, both, bin(11*13*31829), true)
	if !l11.Contains(both) || !l13.Contains(both) {
		t.Fatal("operands should contain the intersection")
	}
}

func TestReverse(t *testing.T) {
	noCBA := lang(t, "(a|b|c)*cba(a|b|c)*").Complement().Reverse()
	accepts(t, noCBA, "cbacbacba", true)
	accepts(t, noCBA, "aaaaaaaaabbbbbbbbacbbbbbbaaaaa", true)
	accepts(t, noCBA, "aaaaaaaaabbbbbbbbabcbbbbbbaaaaa", false)
}

func TestConcat(t *testing.T) {
	l3, l5 := multipleOf(3), multipleOf(5)
	l35 := l3.Concat(l5)
	accepts(t, l35, bin(3*1345*(1<<30)+5*12389), true)
	accepts(t, l35, bin(3*(1<<30)+2), false)
	if !l35.Contains(l3) || !l35.Contains(l5) {
		t.Fatal("concatenation should contain both operands")
	}
}

func TestStar(t *testing.T) {
	noABC := lang(t, "(a|b|c)*(abc)(a|b|c)*").Complement()
	starred := noABC.Star()
	if !starred.Contains(noABC) {
		t.Fatal("star should contain its operand")
	}
	if !starred.Contains(noABC.Complement()) {
		t.Fatal("star of strings without abc should hold every string")
	}
}

func TestRelations(t *testing.T) {
	if !lang(t, "a+b").Intersect(lang(t, "b+a")).IsEmpty() {
		t.Fatal("a+b and b+a should be disjoint")
	}
	if !lang(t, "a*b").Union(lang(t, "b*a")).Star().IsFull() {
		t.Fatal("(a*b|b*a)* should be full")
	}
	if !lang(t, "(a*c|b)*a*").Equal(lang(t, "b*(cb*|a)*")) {
		t.Fatal("(a*c|b)*a* and b*(cb*|a)* should be equal")
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		pat  string
		want bool
	}{
		{"(a|b)*", true},
		{"a*", true},
		{"(a|b)*a", false},
		{"ε|a(a|b)*|b(a|b)*", true},
	}
	for _, tt := range tests {
		if got := lang(t, tt.pat).IsFull(); got != tt.want {
			t.Errorf("%q: want %v got %v", tt.pat, tt.want, got)
		}
	}
}

func TestContainsAcrossAlphabets(t *testing.T) {
	a := lang(t, "a*")
	ab := lang(t, "(a|b)*")
	if a.Contains(ab) {
		t.Fatal("a* does not contain (a|b)*")
	}
	if !ab.Contains(a) {
		t.Fatal("(a|b)* contains a*")
	}
	if lang(t, "a").Equal(lang(t, "b")) {
		t.Fatal("a and b are different")
	}
	if !lang(t, "a").Intersect(lang(t, "b")).IsEmpty() {
		t.Fatal("a ∩ b should be empty")
	}
}

func TestLanguageLeavesInputAlone(t *testing.T) {
	d := automaton.NewDFA()
	d.NewStates(3)
	d.SetInitial(0)
	d.AddAccepting(1, 2)
	for s := range 3 {
		d.AddTransition(s, 'a', 1+s%2)
	}
	l := FromDFA(d)
	accepts(t, l, "aa", true)
	if d.NumStates() != 3 || d.Minimized() {
		t.Fatal("FromDFA minimized the caller's automaton")
	}
	if l.MinimalDFA().NumStates() != 2 {
		t.Fatalf("want 2 minimal states got %d", l.MinimalDFA().NumStates())
	}
}

func TestFromPartialDFA(t *testing.T) {
	d := automaton.NewDFA()
	d.NewStates(2)
	d.SetInitial(0)
	d.AddAccepting(1)
	d.AddTransition(0, 'a', 1)
	d.AddTransition(1, 'b', 1)
	l := FromDFA(d)
	accepts(t, l, "abb", true)
	accepts(t, l, "ba", false)
	if !l.Equal(MustCompile("ab*")) {
		t.Fatal("partial DFA should denote ab*")
	}
}

// ------------------------------------------------------------------- Properties

var samples = []string{
	"a", "ab*", "(a|b)*abb", "b*(cb*|a)*", "(0|1)*(001)(0|1)*",
	"a?b+|c", "∅", "ε", "(ab|ba)*", "(a|b)*a(a|b)",
}

func TestDoubleComplement(t *testing.T) {
	for _, pat := range samples {
		l := lang(t, pat)
		if !l.Complement().Complement().Equal(l) {
			t.Errorf("%q: double complement differs", pat)
		}
	}
}

func TestCommutative(t *testing.T) {
	for i, p := range samples {
		q := samples[(i+3)%len(samples)]
		a, b := lang(t, p), lang(t, q)
		if !a.Union(b).Equal(b.Union(a)) {
			t.Errorf("%q ∪ %q not commutative", p, q)
		}
		if !a.Intersect(b).Equal(b.Intersect(a)) {
			t.Errorf("%q ∩ %q not commutative", p, q)
		}
	}
}

func TestStarLaws(t *testing.T) {
	for _, pat := range samples {
		l := lang(t, pat)
		if !l.Star().Contains(l) {
			t.Errorf("%q: not contained in its star", pat)
		}
		if !l.Star().Equal(l.Star().Star()) {
			t.Errorf("%q: star is not idempotent", pat)
		}
	}
}

func TestEqualIsEquivalence(t *testing.T) {
	a := lang(t, "(a|b)*")
	b := lang(t, "(a*b*)*")
	c := lang(t, "(b|a)*(a|b)*")
	if !a.Equal(a) {
		t.Fatal("not reflexive")
	}
	if a.Equal(b) != b.Equal(a) {
		t.Fatal("not symmetric")
	}
	if !(a.Equal(b) && b.Equal(c) && a.Equal(c)) {
		t.Fatal("not transitive on equal languages")
	}
}

func TestMinimalDFATotal(t *testing.T) {
	for _, pat := range samples {
		d := lang(t, pat).MinimalDFA()
		if !d.IsTotal() || !d.Minimized() {
			t.Errorf("%q: minimal DFA total=%v minimized=%v", pat, d.IsTotal(), d.Minimized())
		}
	}
}

// ------------------------------------------------------------------- Pattern

func TestPatternRoundTrip(t *testing.T) {
	for _, pat := range samples {
		l := lang(t, pat)
		out, err := l.Pattern()
		if err != nil {
			t.Fatalf("%q: %v", pat, err)
		}
		back, err := Compile(out)
		if err != nil {
			t.Fatalf("%q: pattern %q does not parse: %v", pat, out, err)
		}
		if !back.Equal(l) {
			t.Errorf("%q: pattern %q is a different language", pat, out)
		}
	}
}

func TestPatternSimple(t *testing.T) {
	tests := []struct {
		pat  string
		want string
	}{
		{"∅", "∅"},
		{"ε", "ε"},
		{"a", "a"},
		{"a∅", "∅"},
	}
	for _, tt := range tests {
		got, err := lang(t, tt.pat).Pattern()
		if err != nil || got != tt.want {
			t.Errorf("%q: want %q got %q (%v)", tt.pat, tt.want, got, err)
		}
	}
}

func TestPatternUnrepresentable(t *testing.T) {
	n := automaton.NewNFA()
	q := n.NewStates(2)
	n.SetInitial(q[0])
	n.AddAccepting(q[1])
	n.AddTransition(q[0], '*', q[1])
	_, err := New(n).Pattern()
	if !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("want ErrUnrepresentable got %v", err)
	}
	if !strings.Contains(err.Error(), "'*'") {
		t.Fatalf("error does not name the symbol: %v", err)
	}
}
