// Package volume provides the 3D volume hierarchy Volume, DiscreteVolume,
// and ExplicitVolume[T], plus ImageStack and the package-level Intersect
// function.
//
// Volume's lazy bounding-box cache takes the compute step as a closure
// argument supplied by the embedding type's own BoundingBox method (see
// ExplicitVolume's and ImageStack's BoundingBox), which gets a "compute
// once, cache, invalidate on mutation" cache without needing an
// interface-typed field or virtual method.
package volume
