package graph

// Constructors for the standard topologies used in fixtures and tests.

// Path returns the path graph P_n with nodes 0..n-1 and edges i-(i+1).
func Path(n int) *Graph {
	g := New()
	for i := 0; i < n; i++ {
		g.AddNode(Node(i))
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(Node(i), Node(i+1))
	}
	return g
}

// Cycle returns the cycle graph C_n. For n < 3 it degenerates to Path(n).
func Cycle(n int) *Graph {
	g := Path(n)
	if n >= 3 {
		g.AddEdge(Node(n-1), Node(0))
	}
	return g
}

// Complete returns the complete graph K_n.
func Complete(n int) *Graph {
	g := New()
	for i := 0; i < n; i++ {
		g.AddNode(Node(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(Node(i), Node(j))
		}
	}
	return g
}

// Grid returns the rows×cols grid graph. Node IDs are assigned row-major.
func Grid(rows, cols int) *Graph {
	g := New()
	id := func(r, c int) Node { return Node(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(id(r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				g.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}
	return g
}
