// Package skeletons collects multiple named skeleton.Skeleton values under
// stable IDs, each with an associated display color, and exposes their
// combined world-space bounding box.
package skeletons
