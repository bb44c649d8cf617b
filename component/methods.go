package component

import (
	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/pixellist"
)

// New builds a ConnectedComponent over list's pixels in rng, tagged with
// value. The bounding box, center, and bitmap are all computed in one pass
// over rng.
func New(list *pixellist.PixelList, rng pixellist.Range, value float32) *ConnectedComponent {
	pixels := list.Slice(rng)

	var bbox geom.Box2
	var sumX, sumY float64
	for _, p := range pixels {
		bbox = bbox.Fit(p)
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}

	n := float64(len(pixels))
	center := Center{}
	if n > 0 {
		center = Center{X: sumX / n, Y: sumY / n}
	}

	bitmap := make([]bool, bbox.Width()*bbox.Height())
	for _, p := range pixels {
		idx := (p.Y-bbox.Min.Y)*bbox.Width() + (p.X - bbox.Min.X)
		bitmap[idx] = true
	}

	return &ConnectedComponent{
		pixels: list,
		rng:    rng,
		value:  value,
		bbox:   bbox,
		center: center,
		bitmap: bitmap,
	}
}

// Bitmap reports whether p is an occupied pixel of the component. p outside
// the bounding box is always false.
func (c *ConnectedComponent) Bitmap(p geom.Point2) bool {
	if !c.bbox.Contains(p) {
		return false
	}
	idx := (p.Y-c.bbox.Min.Y)*c.bbox.Width() + (p.X - c.bbox.Min.X)
	return c.bitmap[idx]
}

// Translate returns a new ConnectedComponent with every pixel shifted by d,
// backed by a fresh PixelList of exactly its own size (it no longer shares
// storage with c, since a shared list's ranges are only stable for pixels
// already placed by the parser).
func (c *ConnectedComponent) Translate(d geom.Point2) *ConnectedComponent {
	shifted := pixellist.New(c.Size())
	for _, p := range c.Pixels() {
		if _, err := shifted.Add(p.Add(d)); err != nil {
			panic(err) // unreachable: shifted is sized exactly to c.Size()
		}
	}
	return New(shifted, shifted.OpenRange(0), c.value)
}

// Intersects reports whether c and o share at least one pixel.
func (c *ConnectedComponent) Intersects(o *ConnectedComponent) bool {
	if !c.bbox.Intersect(o.bbox).Valid() {
		return false
	}
	small, big := c, o
	if small.Size() > big.Size() {
		small, big = big, small
	}
	for _, p := range small.Pixels() {
		if big.Bitmap(p) {
			return true
		}
	}
	return false
}

// Intersect returns the set of pixels present in both c and o, as plain
// points (not itself a ConnectedComponent, since the intersection need not
// be connected).
func (c *ConnectedComponent) Intersect(o *ConnectedComponent) []geom.Point2 {
	small, big := c, o
	if small.Size() > big.Size() {
		small, big = big, small
	}
	var out []geom.Point2
	for _, p := range small.Pixels() {
		if big.Bitmap(p) {
			out = append(out, p)
		}
	}
	return out
}

// Equal reports whether a and b describe the same set of pixels: their
// bounding boxes coincide and each contains all of the other's pixels.
func (c *ConnectedComponent) Equal(o *ConnectedComponent) bool {
	if c.bbox != o.bbox {
		return false
	}
	if c.Size() != o.Size() {
		return false
	}
	for _, p := range c.Pixels() {
		if !o.Bitmap(p) {
			return false
		}
	}
	return true
}
