package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Graph is the read-only view of an automaton needed to draw it.
// Both *NFA and *DFA implement it.
type Graph interface {
	NumStates() int
	Initial() int
	IsAccepting(s int) bool
	Edges() []Edge
}

// WriteDOT prints a Graphviz description of g to w.
func WriteDOT(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for s := range g.NumStates() {
		shape := "circle"
		if g.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", s, shape)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", e.From, e.To, strconv.Quote(e.Label.String()))
	}
	if start := g.Initial(); start >= 0 {
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", start)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
