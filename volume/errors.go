package volume

import "errors"

// ErrResolutionMismatch is returned by Intersect when the two input
// volumes do not share a voxel resolution, since there is then no single
// discrete grid the intersection could be expressed on.
var ErrResolutionMismatch = errors.New("volume: resolution mismatch")
