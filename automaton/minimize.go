package automaton

// Minimize replaces d with its minimal equivalent using table filling.
// States unreachable from the initial state are dropped. Calling it on an
// already minimized automaton is a no-op.
func (d *DFA) Minimize() {
	if d.minimized {
		return
	}
	d.mustTotal()

	n := d.core.numStates
	alpha := d.core.Alphabet()

	dist := newPairTable(n)
	for i := range n {
		for j := range i {
			if d.core.accept[i] != d.core.accept[j] {
				dist.set(i, j)
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for i := range n {
			for j := range i {
				if dist.get(i, j) {
					continue
				}
				for _, sym := range alpha {
					if dist.get(d.Transition(i, sym), d.Transition(j, sym)) {
						dist.set(i, j)
						changed = true
						break
					}
				}
			}
		}
	}

	classes := newPartition(n)
	for i := range n {
		for j := range i {
			if !dist.get(i, j) {
				classes.union(i, j)
			}
		}
	}

	// number the classes reachable from the initial one in BFS order
	id := make([]int, n)
	for i := range id {
		id[i] = -1
	}
	root := classes.find(d.core.initial)
	id[root] = 0
	order := []int{root}
	for i := 0; i < len(order); i++ {
		for _, sym := range alpha {
			q := classes.find(d.Transition(order[i], sym))
			if id[q] < 0 {
				id[q] = len(order)
				order = append(order, q)
			}
		}
	}

	core := NFA{initial: -1}
	core.NewStates(len(order))
	core.SetInitial(0)
	for newID, p := range order {
		if d.core.accept[p] {
			core.AddAccepting(newID)
		}
		for _, sym := range alpha {
			core.AddTransition(newID, sym, id[classes.find(d.Transition(p, sym))])
		}
	}
	d.core = core
	d.minimized = true
}

// pairTable is a symmetric boolean relation over unordered state pairs,
// stored as a lower triangle.
type pairTable struct {
	bits []bool
}

func newPairTable(n int) pairTable {
	return pairTable{bits: make([]bool, n*(n-1)/2+1)}
}

func (t pairTable) index(i, j int) int {
	if i < j {
		i, j = j, i
	}
	return i*(i-1)/2 + j
}

// get reports whether i and j are distinguishable. A state is never
// distinguishable from itself.
func (t pairTable) get(i, j int) bool {
	if i == j {
		return false
	}
	return t.bits[t.index(i, j)]
}

func (t pairTable) set(i, j int) { t.bits[t.index(i, j)] = true }

// partition is a union-find arena over state indices.
type partition struct {
	parent []int
	rank   []int
}

func newPartition(n int) *partition {
	p := &partition{parent: make([]int, n), rank: make([]int, n)}
	for i := range p.parent {
		p.parent[i] = i
	}
	return p
}

func (p *partition) find(x int) int {
	root := x
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[x] != root {
		p.parent[x], x = root, p.parent[x]
	}
	return root
}

func (p *partition) union(a, b int) {
	ra, rb := p.find(a), p.find(b)
	if ra == rb {
		return
	}
	switch {
	case p.rank[ra] < p.rank[rb]:
		p.parent[ra] = rb
	case p.rank[ra] > p.rank[rb]:
		p.parent[rb] = ra
	default:
		p.parent[rb] = ra
		p.rank[ra]++
	}
}
