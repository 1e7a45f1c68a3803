// Package embed implements SAT-based graph minor-embedding: assigning each
// node of a small logical graph to a connected, pairwise-disjoint chain of
// nodes in a larger physical graph so that every logical edge is realized
// by at least one physical edge between the endpoint chains.
//
// # Pipeline
//
// [Encode] compiles an immutable [Problem] into an [Encoding]:
//
//  1. [Generate] enumerates admissible candidate chains per logical node
//     (subset or path mode), filtered by the [Spec]'s size and
//     fixed-mapping constraints. A node without candidates certifies the
//     problem infeasible before any solving.
//  2. [NewVarMap] assigns each (logical node, chain) pair a dense variable
//     id starting at 1.
//  3. The clause groups are emitted: exactly-one-chain per node, chain
//     exclusivity, edge consistency and, when a qubit budget is set, a
//     sequential-counter cardinality encoding.
//
// [Enumerator] then drives the solve → decode → block → re-solve loop,
// appending a blocking clause per accepted embedding so every returned
// solution is structurally distinct, and classifying the run as
// INFEASIBLE, EXHAUSTED, STOPPED_EARLY or INCONCLUSIVE.
//
// # Example
//
//	en := &embed.Enumerator{Engine: &sat.Gophersat{}, MaxSolutions: 10}
//	result, err := en.Run(ctx, embed.Problem{
//		Logical:  graph.Complete(3),
//		Physical: graph.Cycle(4),
//		Spec:     &embed.Spec{DefaultSizes: []int{1, 2}},
//		Mode:     embed.ModeSubset,
//	})
package embed
