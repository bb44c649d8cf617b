package component

import (
	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/pixellist"
)

// Center is the mean pixel position of a ConnectedComponent, Sigma(p)/|range|.
type Center struct {
	X, Y float64
}

// ConnectedComponent is an immutable view of a contiguous pixel range
// inside a shared pixellist.PixelList, tagged with the original (i.e.
// pre-discretization) threshold intensity at which it was finalized.
//
// A ConnectedComponent never mutates after construction: its bounding box,
// center, and bitmap are computed once by New and cached for the
// component's lifetime.
type ConnectedComponent struct {
	pixels *pixellist.PixelList
	rng    pixellist.Range
	value  float32

	bbox   geom.Box2
	center Center
	bitmap []bool // row-major over bbox, true at occupied pixels
}

// Value returns the original-domain intensity at which this component was
// finalized.
func (c *ConnectedComponent) Value() float32 {
	return c.value
}

// Range returns the component's pixel range within its owning PixelList.
func (c *ConnectedComponent) Range() pixellist.Range {
	return c.rng
}

// Size returns the number of pixels in the component.
func (c *ConnectedComponent) Size() int {
	return c.rng.Len()
}

// BoundingBox returns the component's integer bounding box.
func (c *ConnectedComponent) BoundingBox() geom.Box2 {
	return c.bbox
}

// Center returns the mean pixel position.
func (c *ConnectedComponent) Center() Center {
	return c.center
}

// Pixels returns the component's pixel coordinates as a slice view into the
// shared PixelList. The caller must not mutate it.
func (c *ConnectedComponent) Pixels() []geom.Point2 {
	return c.pixels.Slice(c.rng)
}
