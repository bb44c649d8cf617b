package pixellist

import (
	"errors"

	"github.com/funkey/imageprocessing/geom"
)

// ErrFull indicates an Add call on a PixelList already at capacity.
// PixelList is sized once, at construction, to the pixel count of the
// image being parsed, so this should never trigger in normal operation —
// it is a defensive check against a parser bug, not an expected runtime
// condition.
var ErrFull = errors.New("pixellist: list is at capacity")

// Range is a half-open index range [Begin, End) into a PixelList,
// identifying the pixels belonging to one ConnectedComponent. A Range
// stays valid across later Add calls on the same PixelList: append never
// reallocates while the list is below its preallocated capacity.
type Range struct {
	Begin, End int
}

// Len returns End - Begin.
func (r Range) Len() int {
	return r.End - r.Begin
}

// PixelList is an append-only buffer of pixel coordinates shared by every
// ConnectedComponent extracted from one image. It is pre-allocated to a
// fixed capacity (the image's pixel count) at construction.
type PixelList struct {
	pixels []geom.Point2
}

// New returns an empty PixelList pre-allocated to hold capacity pixels.
func New(capacity int) *PixelList {
	return &PixelList{pixels: make([]geom.Point2, 0, capacity)}
}
