package levelparser

import (
	"errors"

	"github.com/funkey/imageprocessing/pixellist"
)

// ErrInvalidInput is returned for argument errors detected before any
// parsing work begins: a zero-size image, explicit min/max intensity
// bounds with min > max, or an intensity range that does not fit in the
// precision P.
var ErrInvalidInput = errors.New("levelparser: invalid input")

// Precision is the discretization type a Parser quantizes image
// intensities to. The number of distinct threshold levels a Parser
// considers is one more than the maximum value representable by P (256
// for uint8, 65536 for uint16).
type Precision interface {
	~uint8 | ~uint16
}

// Image is a 2D grayscale image of float64 intensities, flattened
// row-major into a single slice (index = y*Width + x).
type Image struct {
	Width, Height int
	Pixels        []float64
}

// NewImage returns a zero-valued image of the given shape.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]float64, width*height)}
}

// At returns the intensity at (x,y).
func (img *Image) At(x, y int) float64 {
	return img.Pixels[y*img.Width+x]
}

// Set assigns the intensity at (x,y).
func (img *Image) Set(x, y int, v float64) {
	img.Pixels[y*img.Width+x] = v
}

// Parameters configures a Parser.
type Parameters struct {
	// DarkToBright processes dark regions first (ascending intensity).
	// When false, the image is inverted on the fly and bright regions
	// are processed first.
	DarkToBright bool

	// MinIntensity and MaxIntensity bound the discretization range. If
	// both are zero, the image is scanned for its actual extrema.
	MinIntensity float64
	MaxIntensity float64

	// SpacedEdgeImage indicates the image is scaled 2x in each
	// dimension, with the original content at even coordinates and odd
	// locations reserved for edge markers between touching components.
	// When set, emitted pixel ranges index into a second, condensed
	// pixel list holding only the even-coordinate pixels, halved.
	SpacedEdgeImage bool
}

// DefaultParameters returns the defaults: dark-to-bright,
// auto-scanned intensity range, no spaced-edge handling.
func DefaultParameters() Parameters {
	return Parameters{DarkToBright: true}
}

// Visitor receives callbacks during a Parse sweep, in an order
// consistent with the component-containment relation.
type Visitor interface {
	// SetPixelList is called once, before any other callback, with the
	// pixel list whose indices every later Range refers to.
	SetPixelList(list *pixellist.PixelList)

	// NewChildComponent is called when the sweep descends one level,
	// opening a new component as a child of the currently open one.
	NewChildComponent(value float64)

	// FinalizeComponent is called when the currently open component has
	// been entirely swept. rng indexes into the list passed to
	// SetPixelList.
	FinalizeComponent(value float64, rng pixellist.Range)
}
