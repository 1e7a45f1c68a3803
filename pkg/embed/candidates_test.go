package embed

import (
	"errors"
	"slices"
	"testing"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// star returns K_{1,3}: center 0 with leaves 1..3.
func star() *graph.Graph {
	g := graph.New()
	for i := 0; i < 4; i++ {
		g.AddNode(graph.Node(i))
	}
	for i := 1; i < 4; i++ {
		g.AddEdge(0, graph.Node(i))
	}
	return g
}

// single returns a logical graph with one node and no edges.
func single() *graph.Graph {
	g := graph.New()
	g.AddNode(0)
	return g
}

func TestGenerate_ChainInvariants(t *testing.T) {
	tests := []struct {
		name     string
		physical *graph.Graph
		spec     *Spec
		mode     Mode
	}{
		{"SubsetP4", graph.Path(4), &Spec{DefaultSizes: []int{1, 2, 3}}, ModeSubset},
		{"PathP4", graph.Path(4), &Spec{DefaultSizes: []int{1, 2, 3}}, ModePath},
		{"SubsetGrid", graph.Grid(2, 3), &Spec{DefaultSizes: []int{2, 4}}, ModeSubset},
		{"SubsetFixed", graph.Cycle(5), &Spec{
			DefaultSizes: []int{2, 3},
			Fixed:        map[graph.Node][]graph.Node{0: {2}},
		}, ModeSubset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands, err := Generate(single(), tt.physical, tt.spec, tt.mode)
			if err != nil {
				t.Fatalf("Generate() = %v", err)
			}
			sizes := tt.spec.SizesFor(0)
			required := tt.spec.RequiredFor(0)
			for idx, chain := range cands.Chains(0) {
				if len(chain) == 0 {
					t.Fatalf("chain %d is empty", idx)
				}
				if !slices.IsSorted(chain) {
					t.Errorf("chain %d = %v is not sorted", idx, chain)
				}
				for i := 1; i < len(chain); i++ {
					if chain[i] == chain[i-1] {
						t.Errorf("chain %d = %v has duplicates", idx, chain)
					}
				}
				if !tt.physical.ConnectedSubset(chain) {
					t.Errorf("chain %d = %v is not connected", idx, chain)
				}
				if !slices.Contains(sizes, len(chain)) {
					t.Errorf("chain %d = %v has size %d, permitted %v", idx, chain, len(chain), sizes)
				}
				for _, r := range required {
					if !chain.Contains(r) {
						t.Errorf("chain %d = %v misses required node %d", idx, chain, r)
					}
				}
			}
		})
	}
}

func TestGenerate_SubsetCounts(t *testing.T) {
	// Connected subsets of P4: four singletons, three adjacent pairs,
	// two triples.
	p4 := graph.Path(4)

	tests := []struct {
		sizes []int
		want  int
	}{
		{[]int{1}, 4},
		{[]int{2}, 3},
		{[]int{3}, 2},
		{[]int{1, 2}, 7},
		{[]int{1, 2, 3}, 9},
	}

	for _, tt := range tests {
		cands, err := Generate(single(), p4, &Spec{DefaultSizes: tt.sizes}, ModeSubset)
		if err != nil {
			t.Fatalf("Generate(%v) = %v", tt.sizes, err)
		}
		if got := len(cands.Chains(0)); got != tt.want {
			t.Errorf("sizes %v: %d chains, want %d", tt.sizes, got, tt.want)
		}
	}
}

func TestGenerate_PathModeMatchesSubsetOnPaths(t *testing.T) {
	// On a path host every connected subset is itself a simple path, so the
	// two modes agree after dedup.
	p5 := graph.Path(5)
	spec := &Spec{DefaultSizes: []int{1, 2, 3}}

	subset, err := Generate(single(), p5, spec, ModeSubset)
	if err != nil {
		t.Fatalf("Generate(subset) = %v", err)
	}
	path, err := Generate(single(), p5, spec, ModePath)
	if err != nil {
		t.Fatalf("Generate(path) = %v", err)
	}

	if got, want := len(path.Chains(0)), len(subset.Chains(0)); got != want {
		t.Fatalf("path mode produced %d chains, subset mode %d", got, want)
	}
	for idx, chain := range subset.Chains(0) {
		if !slices.Equal(chain, path.Chain(0, idx)) {
			t.Errorf("chain %d: path mode %v, subset mode %v", idx, path.Chain(0, idx), chain)
		}
	}
}

func TestGenerate_PathModeMissesStars(t *testing.T) {
	// The whole star K_{1,3} is a connected 4-node subset but no simple
	// path visits all four nodes.
	spec := &Spec{DefaultSizes: []int{4}}

	subset, err := Generate(single(), star(), spec, ModeSubset)
	if err != nil {
		t.Fatalf("Generate(subset) = %v", err)
	}
	if got := len(subset.Chains(0)); got != 1 {
		t.Fatalf("subset mode found %d chains, want 1", got)
	}

	_, err = Generate(single(), star(), spec, ModePath)
	var infeasible *InfeasibleError
	if !errors.As(err, &infeasible) {
		t.Fatalf("Generate(path) = %v, want *InfeasibleError", err)
	}
	if len(infeasible.Reasons) == 0 {
		t.Error("InfeasibleError has no reasons")
	}
}

func TestGenerate_InfeasibleSize(t *testing.T) {
	// No connected 5-node subset exists in a 4-node host.
	_, err := Generate(single(), graph.Path(4), &Spec{DefaultSizes: []int{5}}, ModeSubset)
	var infeasible *InfeasibleError
	if !errors.As(err, &infeasible) {
		t.Fatalf("Generate() = %v, want *InfeasibleError", err)
	}
}

func TestGenerate_InfeasibleFixedMapping(t *testing.T) {
	// Requiring two non-adjacent nodes in a size-2 chain leaves nothing.
	spec := &Spec{
		DefaultSizes: []int{2},
		Fixed:        map[graph.Node][]graph.Node{0: {0, 3}},
	}
	_, err := Generate(single(), graph.Path(4), spec, ModeSubset)
	var infeasible *InfeasibleError
	if !errors.As(err, &infeasible) {
		t.Fatalf("Generate() = %v, want *InfeasibleError", err)
	}
}

func TestChain_Overlaps(t *testing.T) {
	tests := []struct {
		a, b Chain
		want bool
	}{
		{Chain{0, 1}, Chain{1, 2}, true},
		{Chain{0, 1}, Chain{2, 3}, false},
		{Chain{5}, Chain{5}, true},
		{Chain{1, 3, 5}, Chain{0, 2, 4}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVarMap_Injectivity(t *testing.T) {
	cands, err := Generate(graph.Complete(3), graph.Cycle(4), &Spec{DefaultSizes: []int{1, 2}}, ModeSubset)
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	vars := NewVarMap(cands)

	if vars.NumVars() != cands.Total() {
		t.Errorf("NumVars() = %d, want %d", vars.NumVars(), cands.Total())
	}

	seen := make(map[int]bool)
	for _, ln := range cands.Order() {
		for idx := range cands.Chains(ln) {
			id := vars.VarOf(ln, idx)
			if id < 1 || id > vars.NumVars() {
				t.Errorf("VarOf(%d, %d) = %d outside [1, %d]", ln, idx, id, vars.NumVars())
			}
			if seen[id] {
				t.Errorf("variable id %d assigned twice", id)
			}
			seen[id] = true

			gotNode, gotIdx, ok := vars.Lookup(id)
			if !ok || gotNode != ln || gotIdx != idx {
				t.Errorf("Lookup(%d) = (%d, %d, %v), want (%d, %d, true)", id, gotNode, gotIdx, ok, ln, idx)
			}
		}
	}

	if _, _, ok := vars.Lookup(0); ok {
		t.Error("Lookup(0) = true, want false")
	}
	if _, _, ok := vars.Lookup(vars.NumVars() + 1); ok {
		t.Error("Lookup(NumVars+1) = true, want false")
	}
}
