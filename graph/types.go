// Package graph defines the central Graph, Node, and Edge types used by
// graphvolume, skeleton, and skeletonize.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor. A Graph is pre-sized for a known number of nodes
// (typically one per voxel) and never shrinks: there is no RemoveNode.
// After construction it grows through AddNode and AddEdge, and SetCost
// changes an edge's cost in place (the skeletonizer uses it to mark a
// claimed edge's cost as zero).
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an out-of-range node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an out-of-range edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Node is a dense, zero-based node handle. Node IDs are handed out in order
// (first by NewGraph, then by AddNode) and are never reused, so a Node doubles as a slice index into
// any caller-owned per-node data (voxel coordinates, labels, ...).
type Node int

// Edge is an undirected connection between two nodes with a mutable cost.
//
// Edge is addressed by its ID (its index into the Graph's internal edge
// slice) rather than recreated on every query, because the skeletonizer
// zeroes a segment's edge costs in place once a segment has been claimed
// (see skeletonize.Skeletonizer.extractLongestSegment).
type Edge struct {
	ID   int
	U, V Node
	Cost float64
}

// GraphOption configures behavior of a Graph before construction.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a dense, integer-node-ID undirected weighted graph.
//
// Nodes are identified 0..NumNodes()-1. Edges are stored in a flat slice and
// referenced from each endpoint's adjacency list by edge ID, so Neighbors
// and Degree are O(degree) and SetCost is O(1).
type Graph struct {
	allowLoops bool
	allowMulti bool

	nodeCount int
	edges     []Edge
	adjacency [][]int // adjacency[node] = edge IDs incident to node
}

// NewGraph creates a Graph pre-sized for numNodes nodes (0..numNodes-1),
// with no edges yet. AddNode appends further nodes after numNodes-1.
//
// Complexity: O(numNodes).
func NewGraph(numNodes int, opts ...GraphOption) *Graph {
	g := &Graph{
		nodeCount: numNodes,
		adjacency: make([][]int, numNodes),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
