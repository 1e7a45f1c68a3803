package embed

import "github.com/EmiliaRusso00/SAT-Chains/pkg/graph"

// chainRef identifies one candidate chain of one logical node.
type chainRef struct {
	Node  graph.Node
	Index int
}

// VarMap assigns a dense positive variable id to every (logical node,
// chain index) pair. The assignment happens in a single deterministic pass:
// logical nodes ascending, chain indices in generation order. Ids start at 1
// and are contiguous, so NumVars equals the total candidate count.
//
// Auxiliary variables (cardinality counters, clause selectors) always use
// ids strictly greater than NumVars; VarOf and Decode never collide with
// them.
type VarMap struct {
	ids map[chainRef]int
	rev []chainRef // ids[rev[id-1]] == id
}

// NewVarMap allocates variables for every candidate chain.
func NewVarMap(c *Candidates) *VarMap {
	m := &VarMap{
		ids: make(map[chainRef]int, c.Total()),
		rev: make([]chainRef, 0, c.Total()),
	}
	next := 1
	for _, ln := range c.Order() {
		for idx := range c.Chains(ln) {
			ref := chainRef{Node: ln, Index: idx}
			m.ids[ref] = next
			m.rev = append(m.rev, ref)
			next++
		}
	}
	return m
}

// NumVars returns the number of allocated chain variables.
func (m *VarMap) NumVars() int { return len(m.rev) }

// VarOf returns the variable id of the idx-th chain of n.
// Panics on unknown pairs: every pair handed out by Candidates is mapped.
func (m *VarMap) VarOf(n graph.Node, idx int) int {
	id, ok := m.ids[chainRef{Node: n, Index: idx}]
	if !ok {
		panic("embed: variable lookup for unknown (node, chain) pair")
	}
	return id
}

// Lookup resolves a variable id back to its (logical node, chain index)
// pair. Reports false for ids outside [1, NumVars], which includes every
// auxiliary variable.
func (m *VarMap) Lookup(id int) (graph.Node, int, bool) {
	if id < 1 || id > len(m.rev) {
		return 0, 0, false
	}
	ref := m.rev[id-1]
	return ref.Node, ref.Index, true
}
