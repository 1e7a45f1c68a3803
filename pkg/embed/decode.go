package embed

import (
	"fmt"
	"slices"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// Embedding maps every logical node to its chosen chain. Chains reference
// the candidate set; they are not copies.
type Embedding map[graph.Node]Chain

// TotalQubits returns the number of distinct physical nodes used. Chains of
// a valid embedding are pairwise disjoint, so this equals the sum of chain
// sizes.
func (e Embedding) TotalQubits() int {
	total := 0
	for _, chain := range e {
		total += len(chain)
	}
	return total
}

// ChainLengths returns the chain sizes keyed by logical node.
func (e Embedding) ChainLengths() map[graph.Node]int {
	out := make(map[graph.Node]int, len(e))
	for ln, chain := range e {
		out[ln] = len(chain)
	}
	return out
}

// Equal reports whether two embeddings choose the same chain for every
// logical node.
func (e Embedding) Equal(other Embedding) bool {
	if len(e) != len(other) {
		return false
	}
	for ln, chain := range e {
		if !slices.Equal(chain, other[ln]) {
			return false
		}
	}
	return true
}

// Decode maps a satisfying model back to an Embedding: every true chain
// variable selects its (logical node, chain) pair. Literals outside the
// chain-variable range (auxiliary counters, selectors) are ignored.
//
// Returns an error if the model selects zero or multiple chains for some
// logical node — that would mean the choice clauses were violated, i.e. a
// solver fault, not a user error.
func (enc *Encoding) Decode(model []int) (Embedding, error) {
	embedding := make(Embedding, len(enc.Candidates.Order()))
	for _, lit := range model {
		if lit <= 0 {
			continue
		}
		ln, idx, ok := enc.Vars.Lookup(lit)
		if !ok {
			continue
		}
		if prev, dup := embedding[ln]; dup {
			return nil, fmt.Errorf("model selects two chains for logical node %d (%v and %v)",
				ln, prev, enc.Candidates.Chain(ln, idx))
		}
		embedding[ln] = enc.Candidates.Chain(ln, idx)
	}
	for _, ln := range enc.Candidates.Order() {
		if _, ok := embedding[ln]; !ok {
			return nil, fmt.Errorf("model selects no chain for logical node %d", ln)
		}
	}
	return embedding, nil
}

// BlockingClause builds the clause forbidding exactly the joint chain
// assignment of the model: the disjunction of the negations of every true
// chain variable. Appending it and re-solving can only yield embeddings
// that differ in at least one logical node's chain.
func (enc *Encoding) BlockingClause(model []int) cnf.Clause {
	var clause cnf.Clause
	for _, lit := range model {
		if lit <= 0 {
			continue
		}
		if _, _, ok := enc.Vars.Lookup(lit); ok {
			clause = append(clause, -lit)
		}
	}
	return clause
}

// Validate checks every invariant a returned embedding must satisfy:
// pairwise disjoint chains, every logical edge realized by some physical
// edge, each chain connected, sized within the node's permitted set, and
// containing the node's required physical nodes.
func (e Embedding) Validate(p Problem) error {
	used := make(map[graph.Node]graph.Node) // physical -> logical owner

	for _, ln := range p.Logical.Nodes() {
		chain, ok := e[ln]
		if !ok || len(chain) == 0 {
			return fmt.Errorf("logical node %d has no chain", ln)
		}
		if !p.Physical.ConnectedSubset(chain) {
			return fmt.Errorf("chain %v of logical node %d is not connected", chain, ln)
		}
		if sizes := p.Spec.SizesFor(ln); !slices.Contains(sizes, len(chain)) {
			return fmt.Errorf("chain %v of logical node %d has size %d, permitted %v", chain, ln, len(chain), sizes)
		}
		for _, r := range p.Spec.RequiredFor(ln) {
			if !chain.Contains(r) {
				return fmt.Errorf("chain %v of logical node %d misses required physical node %d", chain, ln, r)
			}
		}
		for _, pn := range chain {
			if owner, taken := used[pn]; taken {
				return fmt.Errorf("physical node %d shared by logical nodes %d and %d", pn, owner, ln)
			}
			used[pn] = ln
		}
	}

	for _, le := range p.Logical.Edges() {
		if !chainsLinked(p.Physical, e[le.U], e[le.V]) {
			return fmt.Errorf("logical edge %d-%d has no realizing physical edge", le.U, le.V)
		}
	}

	if q := p.Spec.MaxTotalQubits; q > 0 && e.TotalQubits() > q {
		return fmt.Errorf("embedding uses %d qubits, budget is %d", e.TotalQubits(), q)
	}
	return nil
}
