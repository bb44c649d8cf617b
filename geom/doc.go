// Package geom provides the 2D and 3D geometry primitives shared by
// pixellist, component, componenttree, volume, graphvolume, and skeleton:
// integer points and half-open bounding boxes for pixel/voxel coordinates,
// and a float64 bounding box for world-space volumes.
//
// All boxes are half-open: Box [Min, Max) contains a coordinate c iff
// Min <= c < Max on every axis. An empty Box (the Box2{}/Box3{}/FBox3{}
// zero value) is not Valid and acts as the identity element under
// Fit/Union: fitting any point or box into an empty one yields exactly
// that point or box.
package geom
