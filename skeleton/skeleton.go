package skeleton

import (
	"errors"

	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/graph"
	"github.com/funkey/imageprocessing/volume"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUsage is returned by CloseSegment when it is called without a
// matching prior OpenSegment.
var ErrUsage = errors.New("skeleton: closeSegment called without a matching openSegment")

// Skeleton is a graph of traced points, with a world-space position and a
// diameter at every node, and edges recording the traced path between
// them.
//
// A Skeleton is built incrementally: OpenSegment adds a node linked to the
// previously added one and pushes it onto the path stack, ExtendSegment
// appends a linked position without touching the stack, and CloseSegment
// pops the stack and backtracks to the node now on top of it, ready for
// the next sibling branch to open.
type Skeleton struct {
	volume.Volume

	graph     *graph.Graph
	positions []r3.Vec
	diameters []float64

	currentPath []graph.Node
	prevNode    graph.Node
	hasPrev     bool
}

// New returns an empty skeleton.
func New() *Skeleton {
	return &Skeleton{graph: graph.NewGraph(0)}
}

// Graph returns the underlying node/edge graph.
func (s *Skeleton) Graph() *graph.Graph { return s.graph }

// NumNodes returns the number of traced positions.
func (s *Skeleton) NumNodes() int { return len(s.positions) }

// Position returns the world-space position of node n.
func (s *Skeleton) Position(n graph.Node) r3.Vec { return s.positions[n] }

// Diameter returns the estimated local diameter at node n.
func (s *Skeleton) Diameter(n graph.Node) float64 { return s.diameters[n] }

// OpenSegment adds a node at pos, connected by an edge to the previously
// added node or to the node the last CloseSegment backtracked to (no edge
// if there is none), and pushes the new node onto the path stack.
func (s *Skeleton) OpenSegment(pos r3.Vec, diameter float64) graph.Node {
	node := s.ExtendSegment(pos, diameter)
	s.currentPath = append(s.currentPath, node)
	return node
}

// ExtendSegment appends pos as the next position of the currently open
// segment, connecting it by an edge to the previously added node.
func (s *Skeleton) ExtendSegment(pos r3.Vec, diameter float64) graph.Node {
	node := s.graph.AddNode()
	s.positions = append(s.positions, pos)
	s.diameters = append(s.diameters, diameter)

	if s.hasPrev {
		if _, err := s.graph.AddEdge(s.prevNode, node, 1); err != nil {
			panic(err) // unreachable: node is freshly added and always distinct from prevNode
		}
	}
	s.prevNode = node
	s.hasPrev = true
	s.MarkDirty()

	return node
}

// CloseSegment pops the path stack and backtracks: the next ExtendSegment
// or OpenSegment call will connect from the node now on top of the stack,
// or to nothing if the stack is empty. Returns ErrUsage if no segment is
// open.
func (s *Skeleton) CloseSegment() error {
	if len(s.currentPath) == 0 {
		return ErrUsage
	}
	s.currentPath = s.currentPath[:len(s.currentPath)-1]
	if len(s.currentPath) > 0 {
		s.prevNode = s.currentPath[len(s.currentPath)-1]
		s.hasPrev = true
	} else {
		s.hasPrev = false
	}
	return nil
}

// BoundingBox returns the cached world-space bounding box of every traced
// node position.
func (s *Skeleton) BoundingBox() geom.FBox3 {
	return s.Volume.BoundingBox(func() geom.FBox3 {
		var bb geom.FBox3
		for _, p := range s.positions {
			bb = bb.Fit(p)
		}
		return bb
	})
}
