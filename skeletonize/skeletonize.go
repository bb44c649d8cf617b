package skeletonize

import (
	"math"

	"github.com/funkey/imageprocessing/dijkstra"
	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/graph"
	"github.com/funkey/imageprocessing/graphvolume"
	"github.com/funkey/imageprocessing/skeleton"
)

// Skeletonizer extracts a skeleton.Skeleton from a graphvolume.GraphVolume
// via the TEASAR algorithm: find the most interior node, root a tree there,
// then repeatedly extract the shortest path to the furthest unclaimed
// boundary node until no more segments qualify.
type Skeletonizer struct {
	gv     *graphvolume.GraphVolume
	params Parameters

	labels   []NodeLabel
	boundary []graph.Node

	field      *distanceField
	fieldMin   geom.Point3 // discrete bounding box min; translates a node position into a field index
	maxBD      float64     // max squared boundary distance over all nodes
	center     graph.Node
	root       graph.Node
}

// New returns a Skeletonizer for gv configured with params.
func New(gv *graphvolume.GraphVolume, params Parameters) *Skeletonizer {
	return &Skeletonizer{
		gv:     gv,
		params: params,
		labels: make([]NodeLabel, gv.NumNodes()),
	}
}

// GetSkeleton runs the full TEASAR pipeline and returns the extracted
// skeleton. Returns ErrNoNodeFound if gv has no nodes, or if no boundary
// node is reachable from the most interior node.
func (s *Skeletonizer) GetSkeleton() (*skeleton.Skeleton, error) {
	if s.gv.NumNodes() == 0 {
		return nil, ErrNoNodeFound
	}

	s.findBoundaryNodes()
	s.buildBoundaryDistanceField()
	s.assignEdgeCosts()

	if err := s.findRoot(); err != nil {
		return nil, err
	}

	for i := 0; i < s.params.MaxNumSegments; i++ {
		if !s.extractLongestSegment() {
			break
		}
	}

	return s.parseSkeleton(), nil
}

// findBoundaryNodes labels every node with at least one missing
// 26-neighbor as Boundary.
func (s *Skeletonizer) findBoundaryNodes() {
	g := s.gv.Graph()
	for i := 0; i < g.NumNodes(); i++ {
		n := graph.Node(i)
		if s.gv.IsBoundary(n) {
			s.labels[n] = Boundary
			s.boundary = append(s.boundary, n)
		}
	}
}

// buildBoundaryDistanceField marks every node's voxel 1 in a background
// field padded one voxel deep on every side, runs the squared Euclidean
// distance transform over it, and records the node (and its squared
// distance) furthest from any background voxel as the center.
//
// A single-slice volume (depth 1) is transformed in 2D only: running the
// z axis pass too would measure every node's distance through the
// all-background padding planes above and below it, which does not
// correspond to anything in a 2D shape.
func (s *Skeletonizer) buildBoundaryDistanceField() {
	bb := s.gv.DiscreteBoundingBox()
	s.fieldMin = bb.Min
	s.field = newDistanceField(bb.Width()+2, bb.Height()+2, bb.Depth()+2)

	for i := 0; i < s.gv.NumNodes(); i++ {
		p := s.gv.Position(graph.Node(i))
		s.field.set(p.X-s.fieldMin.X+1, p.Y-s.fieldMin.Y+1, p.Z-s.fieldMin.Z+1, 1)
	}

	res := s.gv.Resolution()
	spacing := [3]float64{res.X, res.Y, res.Z}
	if bb.Depth() == 1 {
		z := 1
		plane := make([]float64, s.field.width*s.field.height)
		copy(plane, s.field.data[z*s.field.width*s.field.height:(z+1)*s.field.width*s.field.height])
		squaredDistanceTransformInPlace(plane, s.field.width, s.field.height, 1, spacing, 0, 1)
		copy(s.field.data[z*s.field.width*s.field.height:(z+1)*s.field.width*s.field.height], plane)
	} else {
		squaredDistanceTransformInPlace(s.field.data, s.field.width, s.field.height, s.field.depth, spacing, 0, 1, 2)
	}

	s.maxBD = 0
	for i := 0; i < s.gv.NumNodes(); i++ {
		n := graph.Node(i)
		bd := s.fieldAt(s.gv.Position(n))
		if bd > s.maxBD {
			s.maxBD = bd
			s.center = n
		}
	}
}

// fieldAt returns the squared boundary distance recorded at discrete
// position p, translating it into the padded field's index space.
func (s *Skeletonizer) fieldAt(p geom.Point3) float64 {
	return s.field.at(p.X-s.fieldMin.X+1, p.Y-s.fieldMin.Y+1, p.Z-s.fieldMin.Z+1)
}

// assignEdgeCosts sets every edge's cost to the anisotropic Euclidean
// distance between its endpoints, scaled up the closer either endpoint
// lies to the object's surface.
func (s *Skeletonizer) assignEdgeCosts() {
	g := s.gv.Graph()
	res := s.gv.Resolution()

	for id := 0; id < g.NumEdges(); id++ {
		e, err := g.Edge(id)
		if err != nil {
			panic(err) // unreachable: id is in 0..NumEdges()-1 by construction
		}
		up, vp := s.gv.Position(e.U), s.gv.Position(e.V)

		var d2 float64
		if up.X != vp.X {
			d2 += res.X * res.X
		}
		if up.Y != vp.Y {
			d2 += res.Y * res.Y
		}
		if up.Z != vp.Z {
			d2 += res.Z * res.Z
		}
		stepDistance := math.Sqrt(d2)

		avgBD := 0.5 * (s.fieldAt(up) + s.fieldAt(vp))
		penalty := s.params.BoundaryWeight * (1 - math.Sqrt(avgBD/s.maxBD))

		if err := g.SetCost(id, stepDistance*(1+penalty)); err != nil {
			panic(err) // unreachable: id is in 0..NumEdges()-1 by construction
		}
	}
}

// findRoot runs Dijkstra from the center node and roots the skeleton at
// whichever reachable boundary node is furthest away.
func (s *Skeletonizer) findRoot() error {
	dist, _, err := dijkstra.ShortestPath(s.gv.Graph(), dijkstra.WithSource(s.center))
	if err != nil {
		panic(err) // unreachable: edge costs are always non-negative
	}

	root := graph.Node(-1)
	maxDist := -1.0
	for _, n := range s.boundary {
		if !math.IsInf(dist[n], 1) && dist[n] > maxDist {
			root, maxDist = n, dist[n]
		}
	}
	if root < 0 {
		return ErrNoNodeFound
	}

	s.root = root
	s.labels[root] = OnSkeleton
	return nil
}

// extractLongestSegment runs Dijkstra from the current root, finds the
// furthest eligible boundary node, and — if it qualifies — walks the
// shortest path back toward the root, labeling every node it passes
// OnSkeleton and zeroing every edge it crosses so later segments can
// travel through already-extracted skeleton for free. Returns false if no
// segment qualifies, ending the extraction loop.
func (s *Skeletonizer) extractLongestSegment() bool {
	dist, prevEdge, err := dijkstra.ShortestPath(s.gv.Graph(), dijkstra.WithSource(s.root))
	if err != nil {
		panic(err) // unreachable: edge costs are always non-negative
	}

	furthest := graph.Node(-1)
	maxDist := -1.0
	for _, n := range s.boundary {
		if s.params.SkipExplainedNodes && s.labels[n] == Explained {
			continue
		}
		if !math.IsInf(dist[n], 1) && dist[n] > maxDist {
			furthest, maxDist = n, dist[n]
		}
	}

	if furthest < 0 || maxDist < s.params.MinSegmentLength {
		return false
	}

	g := s.gv.Graph()
	n := furthest
	for s.labels[n] != OnSkeleton {
		s.labels[n] = OnSkeleton
		if s.params.SkipExplainedNodes {
			s.drawExplanationSphere(s.gv.Position(n))
		}

		eid := prevEdge[n]
		e, err := g.Edge(eid)
		if err != nil {
			panic(err) // unreachable: n is reachable, so it has an incoming tree edge
		}
		if err := g.SetCost(eid, 0); err != nil {
			panic(err) // unreachable: eid came from this graph
		}
		n = e.Other(n)
	}

	if n == s.root {
		s.params.MinSegmentLength = math.Max(s.params.MinSegmentLength, s.params.MinSegmentLengthRatio*maxDist)
	}

	return true
}

// drawExplanationSphere marks every not-yet-skeletonized Boundary node
// within the anisotropic sphere of squared radius bd(center)*ExplanationWeight^2
// as Explained, so it is no longer picked as a future segment target.
func (s *Skeletonizer) drawExplanationSphere(center geom.Point3) {
	radius2 := s.fieldAt(center) * s.params.ExplanationWeight * s.params.ExplanationWeight
	res := s.gv.Resolution()

	for _, n := range s.boundary {
		if s.labels[n] == OnSkeleton {
			continue
		}
		p := s.gv.Position(n)
		dx := float64(p.X-center.X) * res.X
		dy := float64(p.Y-center.Y) * res.Y
		dz := float64(p.Z-center.Z) * res.Z
		if dx*dx+dy*dy+dz*dz <= radius2 {
			s.labels[n] = Explained
		}
	}
}

// parseSkeleton serializes the zero-cost edges left behind by the
// extraction loop — exactly the claimed skeleton tree — into a
// skeleton.Skeleton, via an iterative depth-first traversal from the root.
// The explicit stack (rather than a recursive walk) is deliberate: skeleton
// trees can run thousands of nodes deep along a single branch, which would
// exhaust the call stack with a recursive implementation.
func (s *Skeletonizer) parseSkeleton() *skeleton.Skeleton {
	sk := skeleton.New()
	g := s.gv.Graph()

	type frame struct {
		node    graph.Node
		opener  bool
		visited bool
	}

	visited := make([]bool, g.NumNodes())
	stack := []frame{{node: s.root, opener: true}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := top.node

		if top.visited {
			if top.opener {
				if err := sk.CloseSegment(); err != nil {
					panic(err) // unreachable: every opener pushed a matching open
				}
			}
			stack = stack[:len(stack)-1]
			continue
		}
		top.visited = true
		visited[n] = true

		zeroDegree := s.numZeroCostEdges(n)
		isOpener := n == s.root || zeroDegree != 2
		top.opener = isOpener

		pos := s.gv.Position(n)
		diameter := 2 * math.Sqrt(s.fieldAt(pos))
		worldPos := s.gv.WorldPosition(n)
		if isOpener {
			sk.OpenSegment(worldPos, diameter)
		} else {
			sk.ExtendSegment(worldPos, diameter)
		}

		ids, err := g.Neighbors(n)
		if err != nil {
			panic(err) // unreachable: n came from this graph
		}
		pushed := 0
		for _, id := range ids {
			if pushed >= zeroDegree {
				break
			}
			e, err := g.Edge(id)
			if err != nil {
				panic(err) // unreachable: id came from Neighbors(n)
			}
			if e.Cost != 0 {
				continue
			}
			pushed++
			neighbor := e.Other(n)
			if !visited[neighbor] {
				stack = append(stack, frame{node: neighbor})
			}
		}
	}

	return sk
}

// numZeroCostEdges counts the edges incident to n whose cost has been
// zeroed by extractLongestSegment, i.e. the edges that belong to the
// extracted skeleton tree.
func (s *Skeletonizer) numZeroCostEdges(n graph.Node) int {
	g := s.gv.Graph()
	ids, err := g.Neighbors(n)
	if err != nil {
		panic(err) // unreachable: n came from this graph
	}
	count := 0
	for _, id := range ids {
		e, err := g.Edge(id)
		if err != nil {
			panic(err) // unreachable: id came from Neighbors(n)
		}
		if e.Cost == 0 {
			count++
		}
	}
	return count
}
