package embed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/EmiliaRusso00/SAT-Chains/pkg/graph"
)

// Mode selects how candidate chains are generated.
type Mode string

const (
	// ModeSubset enumerates every size-k subset of physical nodes whose
	// induced subgraph is connected. Exhaustive but combinatorial in
	// C(|physical|, k); this enumeration dominates the cost of a run.
	ModeSubset Mode = "subset"

	// ModePath enumerates every simple path of exactly k physical nodes by
	// depth-first extension, then deduplicates by sorted node-set. Misses
	// connected subsets that are not traceable as a simple path (e.g. stars
	// of four or more nodes) but is much cheaper on sparse hosts.
	ModePath Mode = "path"
)

// ParseMode validates a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSubset, ModePath:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown generation mode %q (supported: %s, %s)", s, ModeSubset, ModePath)
	}
}

// Chain is an ordered, duplicate-free set of physical nodes, connected in
// the physical graph, realizing one logical node. Chains are created once
// by candidate generation, kept sorted, and never mutated.
type Chain []graph.Node

// Contains reports whether the chain includes the physical node p.
func (c Chain) Contains(p graph.Node) bool {
	_, found := slices.BinarySearch(c, p)
	return found
}

// Overlaps reports whether two chains share at least one physical node.
// Both chains are sorted, so this is a linear merge scan.
func (c Chain) Overlaps(d Chain) bool {
	i, j := 0, 0
	for i < len(c) && j < len(d) {
		switch {
		case c[i] == d[j]:
			return true
		case c[i] < d[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// InfeasibleError certifies at generation time that no embedding can exist:
// some logical node has no admissible chain under its size and fixed-mapping
// constraints. This is detected before any SAT call and is distinct from a
// solver-certified UNSAT.
type InfeasibleError struct {
	Reasons []string
}

// Error implements the error interface.
func (e *InfeasibleError) Error() string {
	return "problem is not embeddable: " + strings.Join(e.Reasons, "; ")
}

// Candidates holds the admissible chains of every logical node. Chain
// indices are stable for the lifetime of a run; decoding depends on them.
type Candidates struct {
	byNode map[graph.Node][]Chain
	order  []graph.Node // sorted logical nodes
}

// Order returns the logical nodes in the canonical (ascending) order used
// for variable allocation.
func (c *Candidates) Order() []graph.Node { return c.order }

// Chains returns the candidate chains of n in index order.
func (c *Candidates) Chains(n graph.Node) []Chain { return c.byNode[n] }

// Chain returns the idx-th candidate of n.
func (c *Candidates) Chain(n graph.Node, idx int) Chain { return c.byNode[n][idx] }

// Total returns the candidate count summed over all logical nodes. This is
// exactly the number of chain variables the allocator will hand out.
func (c *Candidates) Total() int {
	total := 0
	for _, chains := range c.byNode {
		total += len(chains)
	}
	return total
}

// Generate enumerates the admissible chains of every logical node: for each
// permitted size, all connected chains in the chosen mode, filtered to those
// containing the node's required physical nodes. Filtering happens here,
// before variable allocation, so pinned-away candidates never become
// variables.
//
// If any logical node ends with zero candidates, Generate stops early and
// returns an *InfeasibleError naming the node; no encoding is attempted.
func Generate(logical, physical *graph.Graph, spec *Spec, mode Mode) (*Candidates, error) {
	cands := &Candidates{
		byNode: make(map[graph.Node][]Chain),
		order:  logical.Nodes(),
	}
	physNodes := physical.Nodes()

	for _, ln := range cands.order {
		sizes := spec.SizesFor(ln)
		required := spec.RequiredFor(ln)

		var chains []Chain
		for _, size := range sizes {
			switch mode {
			case ModePath:
				chains = append(chains, pathChains(physical, physNodes, size, required)...)
			default:
				chains = append(chains, subsetChains(physical, physNodes, size, required)...)
			}
		}

		if len(chains) == 0 {
			return nil, &InfeasibleError{Reasons: []string{
				fmt.Sprintf("no admissible chain for logical node %d (sizes %v, required %v)", ln, sizes, required),
			}}
		}
		cands.byNode[ln] = chains
	}
	return cands, nil
}

// subsetChains yields each size-k subset of physical nodes, in lexicographic
// order, that contains required and induces a connected subgraph.
func subsetChains(physical *graph.Graph, nodes []graph.Node, k int, required []graph.Node) []Chain {
	var out []Chain
	subset := make([]graph.Node, 0, k)

	var recurse func(start int)
	recurse = func(start int) {
		if len(subset) == k {
			chain := Chain(slices.Clone(subset))
			if containsAll(chain, required) && physical.ConnectedSubset(chain) {
				out = append(out, chain)
			}
			return
		}
		// Not enough nodes left to complete the subset.
		for i := start; len(nodes)-i >= k-len(subset); i++ {
			subset = append(subset, nodes[i])
			recurse(i + 1)
			subset = subset[:len(subset)-1]
		}
	}
	recurse(0)
	return out
}

// pathChains yields every simple path of exactly k nodes, deduplicated by
// sorted node-set and filtered by required, in lexicographic order.
func pathChains(physical *graph.Graph, nodes []graph.Node, k int, required []graph.Node) []Chain {
	type frame struct {
		node graph.Node
		path []graph.Node
	}
	seen := make(map[string]Chain)

	for _, start := range nodes {
		stack := []frame{{node: start, path: []graph.Node{start}}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(top.path) == k {
				chain := Chain(slices.Clone(top.path))
				slices.Sort(chain)
				if containsAll(chain, required) {
					seen[chainKey(chain)] = chain
				}
				continue
			}
			for _, nb := range physical.Neighbors(top.node) {
				if slices.Contains(top.path, nb) {
					continue
				}
				next := slices.Clone(top.path)
				stack = append(stack, frame{node: nb, path: append(next, nb)})
			}
		}
	}

	out := make([]Chain, 0, len(seen))
	for _, chain := range seen {
		out = append(out, chain)
	}
	slices.SortFunc(out, slices.Compare)
	return out
}

func containsAll(chain Chain, required []graph.Node) bool {
	for _, r := range required {
		if !chain.Contains(r) {
			return false
		}
	}
	return true
}

func chainKey(c Chain) string {
	var sb strings.Builder
	for i, n := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	return sb.String()
}
