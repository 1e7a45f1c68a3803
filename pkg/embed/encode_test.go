package embed

import (
	"errors"
	"slices"
	"testing"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/cnf"
	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// edgeProblem is K2 embedded into P3 with singleton chains only. Variables:
// node 0 gets 1..3 for chains {0},{1},{2}; node 1 gets 4..6 for the same.
func edgeProblem() Problem {
	return Problem{
		Logical:  graph.Complete(2),
		Physical: graph.Path(3),
		Spec:     &Spec{DefaultSizes: []int{1}},
		Mode:     ModeSubset,
	}
}

func hasClause(t *testing.T, f *cnf.Formula, want cnf.Clause) {
	t.Helper()
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	for _, c := range f.Clauses() {
		got := slices.Clone(c)
		slices.Sort(got)
		if slices.Equal(got, sorted) {
			return
		}
	}
	t.Errorf("formula misses clause %v", want)
}

func TestEncode_ClauseGroups(t *testing.T) {
	enc, err := Encode(edgeProblem())
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	if got := enc.Formula.NumVars(); got != 6 {
		t.Errorf("NumVars() = %d, want 6", got)
	}
	// Choice: 2 at-least clauses and 2*3 pairwise exclusions. Exclusivity:
	// 3 identical-singleton pairs. Edge consistency: the two non-adjacent
	// cross pairs {0}/{2} and {2}/{0}; the identical-singleton pairs
	// deduplicate against exclusivity.
	if got := enc.Formula.Len(); got != 13 {
		t.Errorf("Len() = %d, want 13", got)
	}

	hasClause(t, enc.Formula, cnf.Clause{1, 2, 3})
	hasClause(t, enc.Formula, cnf.Clause{4, 5, 6})
	hasClause(t, enc.Formula, cnf.Clause{-1, -2})
	hasClause(t, enc.Formula, cnf.Clause{-1, -4})
	hasClause(t, enc.Formula, cnf.Clause{-1, -6})
	hasClause(t, enc.Formula, cnf.Clause{-3, -4})
}

func TestEncode_WithoutDedup(t *testing.T) {
	enc, err := Encode(edgeProblem(), WithDedup(false))
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	// The three identical-singleton exclusions reappear as edge-consistency
	// clauses when duplicates are kept.
	if got := enc.Formula.Len(); got != 16 {
		t.Errorf("Len() = %d, want 16", got)
	}
}

func TestEncode_NilSpecDefaultsToSingletons(t *testing.T) {
	enc, err := Encode(Problem{Logical: single(), Physical: graph.Path(3), Mode: ModeSubset})
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if got := enc.Formula.NumVars(); got != 3 {
		t.Errorf("NumVars() = %d, want 3", got)
	}
	for _, chain := range enc.Candidates.Chains(0) {
		if len(chain) != 1 {
			t.Errorf("default sizes produced chain %v, want singletons", chain)
		}
	}
}

func TestEncode_RejectsInvalidSpec(t *testing.T) {
	_, err := Encode(Problem{
		Logical:  single(),
		Physical: graph.Path(3),
		Spec:     &Spec{DefaultSizes: []int{0}},
		Mode:     ModeSubset,
	})
	if err == nil {
		t.Fatal("Encode() accepted a non-positive chain size")
	}
	var infeasible *InfeasibleError
	if errors.As(err, &infeasible) {
		t.Fatalf("Encode() = *InfeasibleError, want a plain validation error")
	}
}

func TestEncode_BudgetBelowMinimumIsInfeasible(t *testing.T) {
	// Three logical nodes need at least three physical nodes in total.
	_, err := Encode(Problem{
		Logical:  graph.Complete(3),
		Physical: graph.Cycle(4),
		Spec:     &Spec{DefaultSizes: []int{1, 2}, MaxTotalQubits: 2},
		Mode:     ModeSubset,
	})
	var infeasible *InfeasibleError
	if !errors.As(err, &infeasible) {
		t.Fatalf("Encode() = %v, want *InfeasibleError", err)
	}
	if len(infeasible.Reasons) == 0 {
		t.Error("InfeasibleError has no reasons")
	}
}

func TestEncode_CardinalityAuxAboveChainVars(t *testing.T) {
	enc, err := Encode(Problem{
		Logical:  graph.Complete(3),
		Physical: graph.Cycle(4),
		Spec:     &Spec{DefaultSizes: []int{1, 2}, MaxTotalQubits: 4},
		Mode:     ModeSubset,
	})
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	chainVars := enc.Vars.NumVars()
	if enc.Formula.NumVars() <= chainVars {
		t.Fatalf("no auxiliary counter variables allocated (NumVars %d, chain vars %d)",
			enc.Formula.NumVars(), chainVars)
	}
	// Auxiliary literals must never resolve to a chain.
	for id := chainVars + 1; id <= enc.Formula.NumVars(); id++ {
		if _, _, ok := enc.Vars.Lookup(id); ok {
			t.Errorf("auxiliary variable %d resolves to a chain", id)
		}
	}
}

func TestDecode_RejectsBrokenModels(t *testing.T) {
	enc, err := Encode(edgeProblem())
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	// Two chains for node 0.
	if _, err := enc.Decode([]int{1, 2, -3, 4, -5, -6}); err == nil {
		t.Error("Decode() accepted a model with two chains for one node")
	}
	// No chain for node 1.
	if _, err := enc.Decode([]int{1, -2, -3, -4, -5, -6}); err == nil {
		t.Error("Decode() accepted a model with no chain for a node")
	}
}

func TestBlockingClause_NegatesTrueChainVars(t *testing.T) {
	enc, err := Encode(edgeProblem())
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	// Auxiliary-range literal 7 must be ignored.
	clause := enc.BlockingClause([]int{1, -2, -3, -4, 5, -6, 7})
	slices.Sort(clause)
	if !slices.Equal(clause, cnf.Clause{-5, -1}) {
		t.Errorf("BlockingClause() = %v, want [-5 -1]", clause)
	}
}

func TestEmbeddingValidate(t *testing.T) {
	p := Problem{
		Logical:  graph.Complete(3),
		Physical: graph.Cycle(4),
		Spec:     &Spec{DefaultSizes: []int{1, 2}},
		Mode:     ModeSubset,
	}

	good := Embedding{0: Chain{0, 1}, 1: Chain{2}, 2: Chain{3}}
	if err := good.Validate(p); err != nil {
		t.Errorf("Validate() = %v for a correct embedding", err)
	}

	tests := []struct {
		name string
		e    Embedding
	}{
		{"MissingNode", Embedding{0: Chain{0, 1}, 1: Chain{2}}},
		{"Overlap", Embedding{0: Chain{0, 1}, 1: Chain{1}, 2: Chain{3}}},
		{"Disconnected", Embedding{0: Chain{0, 2}, 1: Chain{1}, 2: Chain{3}}},
		{"UnrealizedEdge", Embedding{0: Chain{0}, 1: Chain{1}, 2: Chain{2}}},
		{"OversizedChain", Embedding{0: Chain{0, 1, 2}, 1: Chain{3}, 2: Chain{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.e.Validate(p); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
