package volume

import (
	"math"

	"github.com/funkey/imageprocessing/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExplicitVolume is a dense, explicitly stored 3D voxel grid. It is the
// representation the rest of the package works on: binary masks
// (ExplicitVolume[uint8]), distance transforms and other scalar fields
// (ExplicitVolume[float64]).
type ExplicitVolume[T Numeric] struct {
	DiscreteVolume
	width, height, depth int
	data                 []T
}

// NewExplicitVolume allocates a zero-filled volume of the given voxel
// dimensions, unit resolution, and zero offset.
func NewExplicitVolume[T Numeric](width, height, depth int) *ExplicitVolume[T] {
	return &ExplicitVolume[T]{
		DiscreteVolume: NewDiscreteVolume(),
		width:          width,
		height:         height,
		depth:          depth,
		data:           make([]T, width*height*depth),
	}
}

func (v *ExplicitVolume[T]) Width() int  { return v.width }
func (v *ExplicitVolume[T]) Height() int { return v.height }
func (v *ExplicitVolume[T]) Depth() int  { return v.depth }

// IsEmpty reports whether the volume has zero size along any axis, the
// shape Intersect and Cut produce for an empty intersection.
func (v *ExplicitVolume[T]) IsEmpty() bool {
	return v.width == 0 || v.height == 0 || v.depth == 0
}

func (v *ExplicitVolume[T]) index(x, y, z int) int {
	return z*v.width*v.height + y*v.width + x
}

// At returns the voxel value at (x, y, z).
func (v *ExplicitVolume[T]) At(x, y, z int) T { return v.data[v.index(x, y, z)] }

// Set assigns the voxel value at (x, y, z).
func (v *ExplicitVolume[T]) Set(x, y, z int, val T) { v.data[v.index(x, y, z)] = val }

// DiscreteBoundingBox returns [0,0,0) to (width,height,depth), this
// volume's bounding box in its own voxel coordinates.
func (v *ExplicitVolume[T]) DiscreteBoundingBox() geom.Box3 {
	return geom.NewBox3(geom.Point3{}, geom.Point3{X: v.width, Y: v.height, Z: v.depth})
}

// BoundingBox returns the cached world-space bounding box, computing it
// from the voxel grid and this volume's resolution/offset on first use.
func (v *ExplicitVolume[T]) BoundingBox() geom.FBox3 {
	return v.Volume.BoundingBox(func() geom.FBox3 {
		return v.WorldBoundingBox(v.DiscreteBoundingBox())
	})
}

// Resize reallocates the volume to the given shape, zero-filled.
func (v *ExplicitVolume[T]) Resize(width, height, depth int) {
	v.width, v.height, v.depth = width, height, depth
	v.data = make([]T, width*height*depth)
	v.MarkDirty()
}

// Slice returns a 2D view of the z-th section, with this volume's XY
// resolution and that plane's world offset applied.
func (v *ExplicitVolume[T]) Slice(z int) *Slice {
	s := NewSlice(v.width, v.height)
	s.Resolution = v.Resolution()
	s.Offset = v.DiscreteToWorld(geom.Point3{Z: z})
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			s.Set(x, y, float64(v.At(x, y, z)))
		}
	}
	return s
}

// Normalize rescales voxel values in place to [0, 1]: values are first
// shifted so the minimum is non-negative, then divided by the (shifted)
// maximum, except that a maximum already in (1, 255] is treated as an
// 8-bit range and divided by 255 rather than by itself.
func (v *ExplicitVolume[T]) Normalize() {
	if len(v.data) == 0 {
		return
	}
	vals := make([]float64, len(v.data))
	for i, d := range v.data {
		vals[i] = float64(d)
	}
	min, max := floats.Min(vals), floats.Max(vals)

	shift := 0.0
	if min < 0 {
		shift = -min
		max += shift
	}
	if max == 0 {
		return
	}
	if max > 1.0 && max <= 255.0 {
		max = 255.0
	} else if shift == 0 && max == 1.0 {
		return
	}

	for i, d := range vals {
		v.data[i] = T((d + shift) / max)
	}
}

// Transpose reverses the volume's axis order in place: width and depth
// swap (height is unchanged), and resolution/offset are permuted to
// match.
func (v *ExplicitVolume[T]) Transpose() {
	newWidth, newDepth := v.depth, v.width
	newData := make([]T, len(v.data))
	newIdx := func(x, y, z int) int { return z*newWidth*v.height + y*newWidth + x }
	for z := 0; z < v.depth; z++ {
		for y := 0; y < v.height; y++ {
			for x := 0; x < v.width; x++ {
				newData[newIdx(z, y, x)] = v.data[v.index(x, y, z)]
			}
		}
	}
	res, off := v.Resolution(), v.Offset()
	v.width, v.depth = newWidth, newDepth
	v.data = newData
	v.SetResolution(r3Swap(res))
	v.SetOffset(r3Swap(off))
}

// Cut extracts the sub-volume covered by the intersection of box with this
// volume's world bounding box. If the boxes do not overlap, Cut returns a
// zero-size volume rather than an error, matching the convention that an
// empty intersection is a normal result to be inspected via IsEmpty, not a
// failure.
func (v *ExplicitVolume[T]) Cut(box geom.FBox3) *ExplicitVolume[T] {
	overlap := box.Intersect(v.BoundingBox())
	if !overlap.Valid() {
		return NewExplicitVolume[T](0, 0, 0)
	}

	res := v.Resolution()
	discreteOffset := v.WorldToDiscrete(overlap.Min)
	sizeX := int(math.Ceil(overlap.Width() / res.X))
	sizeY := int(math.Ceil(overlap.Height() / res.Y))
	sizeZ := int(math.Ceil(overlap.Depth() / res.Z))

	out := NewExplicitVolume[T](sizeX, sizeY, sizeZ)
	out.SetResolution(res)
	out.SetOffset(v.DiscreteToWorld(discreteOffset))

	for z := 0; z < sizeZ; z++ {
		sz := discreteOffset.Z + z
		if sz < 0 || sz >= v.depth {
			continue
		}
		for y := 0; y < sizeY; y++ {
			sy := discreteOffset.Y + y
			if sy < 0 || sy >= v.height {
				continue
			}
			for x := 0; x < sizeX; x++ {
				sx := discreteOffset.X + x
				if sx < 0 || sx >= v.width {
					continue
				}
				out.Set(x, y, z, v.At(sx, sy, sz))
			}
		}
	}
	return out
}

func r3Swap(v r3.Vec) r3.Vec { return r3.Vec{X: v.Z, Y: v.Y, Z: v.X} }
