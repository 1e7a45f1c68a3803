// Package pkg provides the core libraries for SAT-based minor-embedding.
//
// # Overview
//
// satchains maps each node of a logical graph onto a disjoint connected chain
// of nodes in a larger physical graph, with every logical edge realized by a
// physical edge between the endpoint chains. The pkg directory is organized
// along the pipeline:
//
//  1. [graph] - undirected graphs, node-link JSON, standard topologies
//  2. [embed] - candidate chains, CNF encoding, decoding, enumeration
//  3. [cnf] - clause sets and DIMACS persistence with incremental append
//  4. [sat] - solver engine adapters (gophersat, gini)
//  5. [report] - JSON experiment records for offline comparison
//
// # Architecture
//
// The typical data flow:
//
//	logical + physical graph (JSON)
//	         |
//	    [embed] candidate chains per logical node
//	         |
//	    [embed] clause groups over chain variables
//	         |
//	    [cnf] DIMACS instance (optional persistence)
//	         |
//	    [sat] solve / block / re-solve
//	         |
//	    [report] experiment record
//
// # Quick Start
//
//	p := embed.Problem{
//		Logical:  graph.Complete(3),
//		Physical: graph.Grid(4, 4),
//		Spec:     &embed.Spec{DefaultSizes: []int{1, 2}},
//		Mode:     embed.ModeSubset,
//	}
//	en := &embed.Enumerator{Engine: &sat.Gophersat{}, MaxSolutions: 40}
//	result, err := en.Run(ctx, p)
package pkg
