// Package skeletonize implements TEASAR-style skeleton extraction over a
// graphvolume.GraphVolume: boundary identification, an anisotropic squared
// Euclidean distance transform used to penalize paths near the object's
// surface, and a bounded loop of shortest-path segment extractions that
// together trace a tree-structured skeleton.Skeleton.
package skeletonize
