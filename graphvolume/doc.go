// Package graphvolume turns a binary ExplicitVolume into a graph: one node
// per non-zero voxel, one edge per pair of 26-neighboring non-zero voxels.
// It is the representation skeleton extraction operates on, since the
// skeletonizer needs a node/edge structure to run Dijkstra over, not a
// dense voxel grid.
//
// Neighbor offsets are precomputed once and reused for both construction
// and per-node queries.
package graphvolume
