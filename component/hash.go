package component

import (
	"encoding/binary"
	"hash/fnv"
)

// Hash returns a content hash stable across isomorphic components: two
// components with the same bounding box and the same occupied pixels hash
// equally, regardless of pixel insertion order or which PixelList backs
// them, since it hashes the bounding-box-relative bitmap rather than the
// raw pixel range.
func (c *ConnectedComponent) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	write(c.bbox.Min.X)
	write(c.bbox.Min.Y)
	write(c.bbox.Width())
	write(c.bbox.Height())

	w := c.bbox.Width()
	for y := 0; y < c.bbox.Height(); y++ {
		for x := 0; x < w; x++ {
			if c.bitmap[y*w+x] {
				write(x + c.bbox.Min.X)
				write(y + c.bbox.Min.Y)
			}
		}
	}

	return h.Sum64()
}
