package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/funkey/imageprocessing/graph"
)

// NoEdge marks a node with no incoming edge on its shortest-path tree: the
// source itself, or a node never reached.
const NoEdge = -1

// ShortestPath computes shortest distances from opts.Source to every other
// reachable node in g. Alongside distances it returns, for each node, the ID
// of the edge used to reach it on some shortest path (NoEdge for the source
// and for unreached nodes) so that a caller can walk a path backward edge by
// edge without a separate lookup from predecessor node to connecting edge.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. opts.Source must be within 0..g.NumNodes()-1 (ErrInvalidSource).
//  3. No edge in g may have a negative cost (ErrNegativeWeight).
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func ShortestPath(g *graph.Graph, opts ...Option) (dist []float64, prevEdge []int, err error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if int(cfg.Source) < 0 || int(cfg.Source) >= g.NumNodes() {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSource, cfg.Source)
	}
	for id := 0; id < g.NumEdges(); id++ {
		e, _ := g.Edge(id)
		if e.Cost < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d (%d-%d) cost=%g", ErrNegativeWeight, id, e.U, e.V, e.Cost)
		}
	}

	n := g.NumNodes()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make([]float64, n),
		prevEdge: make([]int, n),
		visited:  make([]bool, n),
		pq:       make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prevEdge, nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g        *graph.Graph
	options  Options
	dist     []float64
	prevEdge []int
	visited  []bool
	pq       nodePQ
}

// init sets distances to +Inf, prevEdge to NoEdge, and seeds the heap with
// the source at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prevEdge[i] = NoEdge
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: r.options.Source, dist: 0})
}

// process repeatedly extracts the node with minimum distance from the
// source and relaxes its incident edges, stopping once the heap is empty or
// the minimum distance exceeds MaxDistance.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node
		d := item.dist

		if r.visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and attempts to improve the
// distance to its other endpoint. Assumes r.dist[u] is already finalized.
func (r *runner) relax(u graph.Node) error {
	edgeIDs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of node %d: %w", u, err)
	}

	for _, eid := range edgeIDs {
		e, err := r.g.Edge(eid)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get edge %d: %w", eid, err)
		}
		v := e.Other(u)
		w := e.Cost

		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d (%d-%d) cost=%g", ErrNegativeWeight, eid, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prevEdge[v] = eid
		heap.Push(&r.pq, &nodeItem{node: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its current distance from the source,
// ordered in the priority queue by distance ascending.
type nodeItem struct {
	node graph.Node
	dist float64
}

// nodePQ is a min-heap of *nodeItem. ShortestPath uses the "lazy
// decrease-key" pattern: a shorter distance to an already-queued node is
// pushed as a new entry rather than updating the old one in place; the
// stale entry is discarded on pop via the visited check in process.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
