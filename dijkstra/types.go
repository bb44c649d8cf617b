package dijkstra

import (
	"errors"
	"math"

	"github.com/funkey/imageprocessing/graph"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source node is outside the graph's
	// node range.
	ErrInvalidSource = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates that a negative edge cost was detected in
	// the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat all edges (including zero-cost edges) as
	// impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of ShortestPath.
//
// Source           – starting node (must be within 0..NumNodes()-1).
// MaxDistance      – optional cap on distances to explore (nodes beyond are
//
//	skipped). Must be >= 0. Default is math.MaxFloat64 (no cap).
//
// InfEdgeThreshold – treat edges with cost >= this threshold as impassable.
//
//	Must be > 0. Default is math.MaxFloat64 (no obstacles).
type Options struct {
	Source           graph.Node
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithSource sets the starting node. Required.
func WithSource(n graph.Node) Option {
	return func(o *Options) { o.Source = n }
}

// WithMaxDistance sets a maximum distance threshold: nodes whose shortest
// distance would exceed this value are not explored. Panics with
// ErrBadMaxDistance if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance)
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with cost >= threshold as impassable.
// Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold)
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given source node.
func DefaultOptions(source graph.Node) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxFloat64,
		InfEdgeThreshold: math.MaxFloat64,
	}
}
