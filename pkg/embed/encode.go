package embed

import (
	"fmt"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// Problem is an immutable embedding problem definition: the two graphs, the
// constraint spec and the candidate generation mode. The encoder never
// mutates any of it.
type Problem struct {
	Logical  *graph.Graph
	Physical *graph.Graph
	Spec     *Spec
	Mode     Mode
}

// Encoding is the compiled SAT instance for a Problem: the candidate
// chains, the variable mapping and the clause set. It is produced once by
// [Encode]; the enumeration loop only ever appends blocking clauses to the
// formula afterwards.
type Encoding struct {
	Problem    Problem
	Candidates *Candidates
	Vars       *VarMap
	Formula    *cnf.Formula

	nextAux int
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	dedup bool
}

// WithDedup toggles clause deduplication in the produced formula.
// On by default.
func WithDedup(on bool) EncodeOption {
	return func(c *encodeConfig) { c.dedup = on }
}

// Encode compiles a problem into a CNF instance: candidate generation,
// variable allocation, then the clause groups in a fixed order — choice,
// chain exclusivity, edge consistency and, when a qubit budget is set, the
// cardinality counter. Fixed-mapping constraints never appear as clauses;
// violating candidates were filtered before allocation.
//
// Returns *InfeasibleError when candidate generation (or the qubit budget
// against the smallest possible chains) already rules out every embedding.
func Encode(p Problem, opts ...EncodeOption) (*Encoding, error) {
	cfg := encodeConfig{dedup: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if p.Spec == nil {
		p.Spec = &Spec{}
	}
	if err := p.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("constraint spec: %w", err)
	}

	cands, err := Generate(p.Logical, p.Physical, p.Spec, p.Mode)
	if err != nil {
		return nil, err
	}
	vars := NewVarMap(cands)

	e := &Encoding{
		Problem:    p,
		Candidates: cands,
		Vars:       vars,
		Formula:    cnf.NewFormula(vars.NumVars(), cnf.WithDedup(cfg.dedup)),
		nextAux:    vars.NumVars() + 1,
	}

	if err := e.checkBudget(); err != nil {
		return nil, err
	}
	e.encodeChoice()
	e.encodeExclusivity()
	e.encodeEdgeConsistency()
	e.encodeCardinality()
	return e, nil
}

// add panics on malformed clauses: the encoders construct every literal
// from allocated variable ids, so a validation failure is a bug here, not
// bad input.
func (e *Encoding) add(lits ...int) {
	if _, err := e.Formula.Add(cnf.Clause(lits)); err != nil {
		panic(fmt.Sprintf("embed: encoder emitted malformed clause %v: %v", lits, err))
	}
}

// aux allocates a fresh auxiliary variable, strictly above every chain
// variable and every previously allocated auxiliary.
func (e *Encoding) aux() int {
	id := e.nextAux
	e.nextAux++
	return id
}

// encodeChoice emits, per logical node, one clause requiring at least one
// of its chain variables and pairwise exclusions between them. The pairwise
// at-most-one form is quadratic in the candidate count of the node.
func (e *Encoding) encodeChoice() {
	for _, ln := range e.Candidates.Order() {
		chains := e.Candidates.Chains(ln)

		atLeast := make([]int, len(chains))
		for idx := range chains {
			atLeast[idx] = e.Vars.VarOf(ln, idx)
		}
		e.add(atLeast...)

		for a := 0; a < len(chains); a++ {
			for b := a + 1; b < len(chains); b++ {
				e.add(-e.Vars.VarOf(ln, a), -e.Vars.VarOf(ln, b))
			}
		}
	}
}

// encodeExclusivity forbids simultaneous choice of overlapping chains
// belonging to distinct logical nodes.
func (e *Encoding) encodeExclusivity() {
	order := e.Candidates.Order()
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			a, b := order[i], order[j]
			for idxA, chainA := range e.Candidates.Chains(a) {
				for idxB, chainB := range e.Candidates.Chains(b) {
					if chainA.Overlaps(chainB) {
						e.add(-e.Vars.VarOf(a, idxA), -e.Vars.VarOf(b, idxB))
					}
				}
			}
		}
	}
}

// encodeEdgeConsistency forbids, for every logical edge, each pair of
// candidate chains with no physical edge between them. What remains is the
// necessary condition that realizes the logical edge.
func (e *Encoding) encodeEdgeConsistency() {
	for _, le := range e.Problem.Logical.Edges() {
		for idxU, chainU := range e.Candidates.Chains(le.U) {
			for idxV, chainV := range e.Candidates.Chains(le.V) {
				if !chainsLinked(e.Problem.Physical, chainU, chainV) {
					e.add(-e.Vars.VarOf(le.U, idxU), -e.Vars.VarOf(le.V, idxV))
				}
			}
		}
	}
}

// chainsLinked reports whether any physical edge joins the two chains.
func chainsLinked(physical *graph.Graph, a, b Chain) bool {
	for _, u := range a {
		for _, v := range b {
			if physical.HasEdge(u, v) {
				return true
			}
		}
	}
	return false
}

// checkBudget rejects a qubit budget below the sum of the smallest
// candidate sizes — no assignment could fit, so the problem is infeasible
// before solving.
func (e *Encoding) checkBudget() error {
	budget := e.Problem.Spec.MaxTotalQubits
	if budget <= 0 {
		return nil
	}
	minTotal := 0
	for _, ln := range e.Candidates.Order() {
		min := -1
		for _, chain := range e.Candidates.Chains(ln) {
			if min < 0 || len(chain) < min {
				min = len(chain)
			}
		}
		minTotal += min
	}
	if minTotal > budget {
		return &InfeasibleError{Reasons: []string{
			fmt.Sprintf("max_total_qubits %d is below the minimum feasible total %d", budget, minTotal),
		}}
	}
	return nil
}

// encodeCardinality bounds the sum of chosen chain sizes by the qubit
// budget with a sequential counter over unary prefix-sum registers: s(i,j)
// means "the chains chosen for the first i logical nodes use at least j
// qubits". Choosing a chain of weight w at node i is then incompatible with
// a prefix of Q-w+1 or more. This costs O(n·Q) auxiliary variables and
// clauses instead of enumerating chain-choice combinations.
func (e *Encoding) encodeCardinality() {
	budget := e.Problem.Spec.MaxTotalQubits
	if budget <= 0 {
		return
	}
	order := e.Candidates.Order()
	if len(order) == 0 {
		return
	}

	// Registers for prefixes 1..n-1; the last node only needs the overflow
	// clauses against the previous register.
	regs := make([][]int, len(order)-1)
	for i := range regs {
		regs[i] = make([]int, budget)
		for j := range regs[i] {
			regs[i][j] = e.aux()
		}
	}
	reg := func(i, j int) int { return regs[i][j-1] } // j is 1-based

	for i, ln := range order {
		for idx, chain := range e.Candidates.Chains(ln) {
			x := e.Vars.VarOf(ln, idx)
			w := len(chain)

			if w > budget {
				// The chain alone exceeds the budget.
				e.add(-x)
				continue
			}
			if i > 0 {
				// Prefix of Q-w+1 or more leaves no room for this chain.
				e.add(-x, -reg(i-1, budget-w+1))
			}
			if i < len(regs) {
				// Choosing the chain raises this prefix register by w.
				for j := 1; j <= w; j++ {
					e.add(-x, reg(i, j))
				}
				if i > 0 {
					for j := 1; j+w <= budget; j++ {
						e.add(-x, -reg(i-1, j), reg(i, j+w))
					}
				}
			}
		}
		// Register monotonicity between consecutive prefixes.
		if i > 0 && i < len(regs) {
			for j := 1; j <= budget; j++ {
				e.add(-reg(i-1, j), reg(i, j))
			}
		}
	}
}
