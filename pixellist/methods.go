package pixellist

import "github.com/funkey/imageprocessing/geom"

// Len returns the number of pixels currently appended.
func (l *PixelList) Len() int {
	return len(l.pixels)
}

// Cap returns the list's preallocated capacity.
func (l *PixelList) Cap() int {
	return cap(l.pixels)
}

// Add appends p and returns its index. Returns ErrFull if the list is
// already at capacity.
func (l *PixelList) Add(p geom.Point2) (int, error) {
	if len(l.pixels) >= cap(l.pixels) {
		return -1, ErrFull
	}
	idx := len(l.pixels)
	l.pixels = append(l.pixels, p)
	return idx, nil
}

// At returns the pixel at index i.
func (l *PixelList) At(i int) geom.Point2 {
	return l.pixels[i]
}

// OpenRange returns the range [from, Len()), i.e. every pixel appended
// since index from. Callers snapshot from = Len() before appending a
// component's pixels, then call OpenRange(from) once the component is
// finalized.
func (l *PixelList) OpenRange(from int) Range {
	return Range{Begin: from, End: len(l.pixels)}
}

// Slice returns the pixels in r as a slice view. The view aliases the
// list's backing array and must not be mutated by the caller.
func (l *PixelList) Slice(r Range) []geom.Point2 {
	return l.pixels[r.Begin:r.End]
}
