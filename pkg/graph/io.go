package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Node-Link Serialization
// =============================================================================

// NodeLink is the JSON wire format for graphs:
//
//	{
//	  "nodes": [0, 1, 2, 3],
//	  "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}]
//	}
//
// Nodes and edges are emitted sorted so the output is deterministic and
// round-trips byte for byte.
type NodeLink struct {
	Nodes []Node     `json:"nodes"`
	Edges []EdgeLink `json:"edges"`
}

// EdgeLink is a single undirected edge in the wire format.
type EdgeLink struct {
	U Node `json:"u"`
	V Node `json:"v"`
}

// Marshal converts a graph to its node-link form.
func Marshal(g *Graph) NodeLink {
	edges := g.Edges()
	out := NodeLink{
		Nodes: g.Nodes(),
		Edges: make([]EdgeLink, len(edges)),
	}
	for i, e := range edges {
		out.Edges[i] = EdgeLink{U: e.U, V: e.V}
	}
	return out
}

// Unmarshal builds a graph from its node-link form.
// Returns an error for duplicate nodes, unknown endpoints or self loops.
func Unmarshal(nl NodeLink) (*Graph, error) {
	g := New()
	for _, n := range nl.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("add node %d: %w", n, err)
		}
	}
	for _, e := range nl.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("add edge %d-%d: %w", e.U, e.V, err)
		}
	}
	return g, nil
}

// Write writes a graph as indented JSON to w.
func Write(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Marshal(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON node-link graph from r.
func Read(r io.Reader) (*Graph, error) {
	var nl NodeLink
	if err := json.NewDecoder(r).Decode(&nl); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Unmarshal(nl)
}

// ReadFile reads a JSON node-link graph from path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes a graph to a JSON file with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}
