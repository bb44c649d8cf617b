package graph

import "fmt"

// NumNodes returns the number of nodes in the Graph.
//
// Complexity: O(1).
func (g *Graph) NumNodes() int {
	return g.nodeCount
}

// NumEdges returns the number of edges in the Graph.
//
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// AddNode appends a new node to the Graph and returns its ID. Most Graphs
// are pre-sized once by NewGraph and never grow; AddNode exists for the
// skeleton graph, which is assembled one node at a time as TEASAR segments
// are traced.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() Node {
	id := g.nodeCount
	g.nodeCount++
	g.adjacency = append(g.adjacency, nil)
	return Node(id)
}

// validNode reports whether u is within 0..NumNodes()-1.
func (g *Graph) validNode(u Node) bool {
	return int(u) >= 0 && int(u) < g.nodeCount
}

// AddEdge adds an undirected edge between u and v with the given cost and
// returns its ID. Returns ErrNodeNotFound if either endpoint is out of
// range, ErrLoopNotAllowed if u == v and loops are disabled, and
// ErrMultiEdgeNotAllowed if an edge between u and v already exists and
// multi-edges are disabled.
//
// Complexity: O(degree(u)) when multi-edges are disabled (duplicate check),
// O(1) otherwise.
func (g *Graph) AddEdge(u, v Node, cost float64) (int, error) {
	if !g.validNode(u) || !g.validNode(v) {
		return -1, fmt.Errorf("%w: AddEdge(%d, %d)", ErrNodeNotFound, u, v)
	}
	if u == v && !g.allowLoops {
		return -1, fmt.Errorf("%w: AddEdge(%d, %d)", ErrLoopNotAllowed, u, v)
	}
	if !g.allowMulti {
		for _, eid := range g.adjacency[u] {
			e := g.edges[eid]
			if e.Other(u) == v {
				return -1, fmt.Errorf("%w: AddEdge(%d, %d)", ErrMultiEdgeNotAllowed, u, v)
			}
		}
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Cost: cost})
	g.adjacency[u] = append(g.adjacency[u], id)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], id)
	}
	return id, nil
}

// Other returns the endpoint of e that is not from. If e is a self-loop,
// Other returns from.
func (e Edge) Other(from Node) Node {
	if e.U == from {
		return e.V
	}
	return e.U
}

// Edge returns the edge with the given ID. Returns ErrEdgeNotFound if id is
// out of range.
//
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: Edge(%d)", ErrEdgeNotFound, id)
	}
	return g.edges[id], nil
}

// SetCost updates the cost of the edge with the given ID in place. Returns
// ErrEdgeNotFound if id is out of range.
//
// Complexity: O(1).
func (g *Graph) SetCost(id int, cost float64) error {
	if id < 0 || id >= len(g.edges) {
		return fmt.Errorf("%w: SetCost(%d)", ErrEdgeNotFound, id)
	}
	g.edges[id].Cost = cost
	return nil
}

// Neighbors returns the IDs of the edges incident to u, in the order they
// were added. Returns ErrNodeNotFound if u is out of range.
//
// Complexity: O(degree(u)).
func (g *Graph) Neighbors(u Node) ([]int, error) {
	if !g.validNode(u) {
		return nil, fmt.Errorf("%w: Neighbors(%d)", ErrNodeNotFound, u)
	}
	return g.adjacency[u], nil
}

// Degree returns the number of edges incident to u (a self-loop counts
// once). Returns ErrNodeNotFound if u is out of range.
//
// Complexity: O(1).
func (g *Graph) Degree(u Node) (int, error) {
	if !g.validNode(u) {
		return 0, fmt.Errorf("%w: Degree(%d)", ErrNodeNotFound, u)
	}
	return len(g.adjacency[u]), nil
}
