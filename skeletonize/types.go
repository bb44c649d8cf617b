package skeletonize

import "errors"

// ErrNoNodeFound is returned by Skeletonizer.GetSkeleton when no boundary
// node is reachable from the volume's most interior node: either the graph
// has no nodes at all, or the object has no boundary at all to root a
// skeleton from.
var ErrNoNodeFound = errors.New("skeletonize: no node found to root the skeleton on")

// NodeLabel tracks a graph node's role in the TEASAR extraction as it
// progresses. Every node starts Inside; findBoundaryNodes promotes the
// surface nodes to Boundary.
type NodeLabel int

const (
	// Inside marks a node with a full 26-neighborhood, i.e. not on the
	// object's surface.
	Inside NodeLabel = iota

	// Boundary marks a node with at least one empty or out-of-volume
	// neighbor.
	Boundary

	// Explained marks a Boundary node that lies within the explanation
	// sphere of an already-extracted segment, and is therefore skipped as
	// a future segment target when Parameters.SkipExplainedNodes is set.
	Explained

	// OnSkeleton marks a node that has been claimed by an extracted
	// segment.
	OnSkeleton
)

// Parameters configures the TEASAR extraction. The zero value is not
// usable directly; start from DefaultParameters.
type Parameters struct {
	// BoundaryWeight scales the edge-cost penalty for travelling close to
	// the object's surface; 0 disables the penalty entirely.
	BoundaryWeight float64

	// MaxNumSegments bounds the number of segment-extraction iterations.
	MaxNumSegments int

	// MinSegmentLength rejects segments shorter than this path length.
	// Raised automatically after the first segment if
	// MinSegmentLengthRatio > 0 (see MinSegmentLengthRatio).
	MinSegmentLength float64

	// MinSegmentLengthRatio sets MinSegmentLength to
	// MinSegmentLengthRatio*firstSegmentLength once the first (longest)
	// segment has been extracted, if that is larger than the current
	// MinSegmentLength.
	MinSegmentLengthRatio float64

	// SkipExplainedNodes, when set, excludes Explained boundary nodes from
	// consideration as future segment endpoints and marks nodes within
	// the explanation sphere of each newly labeled node as Explained.
	SkipExplainedNodes bool

	// ExplanationWeight scales the radius of the explanation sphere drawn
	// around each node added to the skeleton.
	ExplanationWeight float64
}

// DefaultParameters returns the TEASAR defaults.
func DefaultParameters() Parameters {
	return Parameters{
		BoundaryWeight:        1,
		MaxNumSegments:        10,
		MinSegmentLength:      0,
		MinSegmentLengthRatio: 1,
		SkipExplainedNodes:    false,
		ExplanationWeight:     1,
	}
}
