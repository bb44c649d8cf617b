package volume

import "github.com/funkey/imageprocessing/geom"

// Numeric is the set of voxel value types ExplicitVolume supports: the
// integer precisions used by binary masks and label volumes, plus floating
// point for distance transforms and normalized intensities.
type Numeric interface {
	~uint8 | ~uint16 | ~int | ~int32 | ~float32 | ~float64
}

// Volume is the common lazily-cached world-space bounding box shared by
// every volume type. BoundingBox takes the actual computation as a
// closure, supplied by the embedding type, since Go has no virtual method
// for subclasses to override.
type Volume struct {
	bbox      geom.FBox3
	bboxValid bool
}

// BoundingBox returns the cached bounding box, invoking and caching compute
// the first time it is needed after construction or after MarkDirty.
func (v *Volume) BoundingBox(compute func() geom.FBox3) geom.FBox3 {
	if !v.bboxValid {
		v.bbox = compute()
		v.bboxValid = true
	}
	return v.bbox
}

// MarkDirty invalidates the cached bounding box, forcing the next
// BoundingBox call to recompute it.
func (v *Volume) MarkDirty() {
	v.bboxValid = false
}
