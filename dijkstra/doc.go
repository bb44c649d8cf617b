// Package dijkstra provides a single-source shortest-path search over a
// graph.Graph with non-negative edge costs.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost distance from a single source
//     node to every other reachable node in O((V + E) log V) time, using a
//     min-heap priority queue with a lazy decrease-key strategy: a shorter
//     distance is pushed as a new heap entry rather than mutating the old
//     one, and stale entries are discarded by a visited check on pop.
//   - Alongside distances, ShortestPath returns the edge ID used to reach
//     each node on its shortest path (rather than a predecessor node ID).
//     The skeletonizer needs the edge, not just the node, because it walks
//     a shortest path backward and zeroes each edge's cost in place as it
//     claims the path (see skeletonize.Skeletonizer.extractLongestSegment).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: g is nil.
//   - ErrInvalidSource: the source node is outside 0..g.NumNodes()-1.
//   - ErrNegativeWeight: an edge with a negative cost was found during the
//     upfront O(E) pre-scan.
//   - ErrBadMaxDistance / ErrBadInfThreshold: returned via panic from the
//     corresponding option constructor when given an invalid bound, since
//     these are caller-supplied constants validated at construction time.
package dijkstra
