// Package graph provides the undirected graph type shared by the logical
// (guest) and physical (host) sides of a minor-embedding problem.
//
// The embedding core only reads graphs: it enumerates nodes and edges in a
// deterministic sorted order, tests adjacency, and checks connectivity of
// induced subgraphs via [Graph.ConnectedSubset]. Construction happens up
// front, either programmatically or by decoding the JSON node-link format
// with [ReadFile].
//
// # Wire Format
//
// Graphs are exchanged as node-link JSON:
//
//	{
//	  "nodes": [0, 1, 2, 3],
//	  "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}, {"u": 2, "v": 3}]
//	}
//
// # Concurrency
//
// A fully built Graph is safe for concurrent reads. Mutation requires
// external synchronization.
package graph
