// Package skeleton represents an extracted skeleton as a graph of
// traced points, built incrementally while the skeletonizer
// traces segments one position at a time: every traced point becomes its
// own graph node, with its own diameter.
package skeleton
