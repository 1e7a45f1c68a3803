package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// negative. Node IDs are small non-negative integers.
	ErrInvalidNodeID = errors.New("node ID must not be negative")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either endpoint
	// does not exist in the graph.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrSelfLoop is returned by [Graph.AddEdge] for edges whose endpoints
	// coincide. Self loops carry no information for embedding.
	ErrSelfLoop = errors.New("self loops are not allowed")
)

// Node identifies a vertex. Logical and physical graphs use the same
// identifier space but are always kept in separate Graph values.
type Node int

// Edge is an undirected connection between two nodes. The stored order of
// U and V is not significant.
type Edge struct {
	U, V Node
}

// Graph is a simple undirected graph. It backs both the logical graph to be
// embedded and the physical host graph. Once handed to the embedding core it
// is treated as immutable: the core only enumerates nodes and edges, tests
// adjacency and checks connectivity of induced subgraphs.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes map[Node]struct{}
	adj   map[Node]map[Node]struct{}
	edges []Edge
}

// New creates an empty undirected graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[Node]struct{}),
		adj:   make(map[Node]map[Node]struct{}),
	}
}

// AddNode adds a vertex to the graph.
// Returns ErrInvalidNodeID for negative IDs or ErrDuplicateNodeID if the
// node already exists.
func (g *Graph) AddNode(n Node) error {
	if n < 0 {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n] = struct{}{}
	g.adj[n] = make(map[Node]struct{})
	return nil
}

// AddEdge adds an undirected edge between two existing nodes.
// Returns ErrUnknownEndpoint if either node is missing and ErrSelfLoop if
// u == v. Adding an edge twice is a no-op.
func (g *Graph) AddEdge(u, v Node) error {
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.nodes[u]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrUnknownEndpoint
	}
	if _, dup := g.adj[u][v]; dup {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges = append(g.edges, Edge{U: u, V: v})
	return nil
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether n is a vertex of the graph.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v Node) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Nodes returns all vertices in ascending order. The slice is a copy and
// safe to retain; the order is the canonical iteration order used by the
// embedding core, so results are deterministic across runs.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Edges returns all edges with endpoints normalized so that U < V, sorted,
// again for deterministic iteration.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		out[i] = e
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.U != b.U {
			return int(a.U - b.U)
		}
		return int(a.V - b.V)
	})
	return out
}

// Neighbors returns the vertices adjacent to n, in ascending order.
func (g *Graph) Neighbors(n Node) []Node {
	out := make([]Node, 0, len(g.adj[n]))
	for m := range g.adj[n] {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// ConnectedSubset reports whether the subgraph induced by the given nodes is
// connected. An empty set is not connected; a singleton is. Nodes not present
// in the graph make the result false.
func (g *Graph) ConnectedSubset(nodes []Node) bool {
	if len(nodes) == 0 {
		return false
	}
	in := make(map[Node]struct{}, len(nodes))
	for _, n := range nodes {
		if !g.HasNode(n) {
			return false
		}
		in[n] = struct{}{}
	}

	// BFS restricted to the induced subgraph.
	seen := map[Node]struct{}{nodes[0]: {}}
	queue := []Node{nodes[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for nb := range g.adj[cur] {
			if _, member := in[nb]; !member {
				continue
			}
			if _, done := seen[nb]; done {
				continue
			}
			seen[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}
	return len(seen) == len(in)
}
