// Package graph provides a dense, integer-node-ID undirected weighted graph.
//
// This package is built for the one shape of graph the rest of this module
// needs: a grid/volume graph with a node per voxel, where node identity is
// a small dense integer (0..N-1) handed out at construction time or by
// AddNode. Edge
// costs are float64 and mutable in place (the skeletonizer zeroes a
// segment's edge costs once it has been claimed), which is why an Edge is
// addressed by an integer ID rather than recreated on every query.
//
// The whole package is single-threaded and synchronous: there are no
// internal locks here.
package graph
