package volume

import "gonum.org/v1/gonum/spatial/r3"

// Slice is a single 2D section of a volume, as produced by
// ExplicitVolume.Slice or held by an ImageStack. It carries its own
// resolution and world offset so a slice pulled out of a volume remains
// independently placeable in world space.
type Slice struct {
	Width, Height int
	Pixels        []float64
	Resolution    r3.Vec
	Offset        r3.Vec
}

// NewSlice allocates a zero-filled slice of the given size.
func NewSlice(width, height int) *Slice {
	return &Slice{
		Width:      width,
		Height:     height,
		Pixels:     make([]float64, width*height),
		Resolution: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// At returns the pixel value at (x, y).
func (s *Slice) At(x, y int) float64 { return s.Pixels[y*s.Width+x] }

// Set assigns the pixel value at (x, y).
func (s *Slice) Set(x, y int, v float64) { s.Pixels[y*s.Width+x] = v }
