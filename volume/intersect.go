package volume

import (
	"fmt"
	"math"

	"github.com/funkey/imageprocessing/geom"
)

// Intersect computes the voxel-wise intersection of two volumes sharing a
// resolution: the result covers the bounding box of voxels that are
// non-zero in both a and b (after accounting for their relative offset),
// with each such voxel set to the smaller of the two input values.
//
// An empty overlap is not an error: Intersect returns a zero-size volume
// (IsEmpty reports true) that the caller is expected to check for.
func Intersect[T Numeric](a, b *ExplicitVolume[T]) (*ExplicitVolume[T], error) {
	resA, resB := a.Resolution(), b.Resolution()
	if resA != resB {
		return nil, fmt.Errorf("%w: %v vs %v", ErrResolutionMismatch, resA, resB)
	}

	offsetAtoB := geom.Point3{
		X: int(math.Round((a.Offset().X - b.Offset().X) / resA.X)),
		Y: int(math.Round((a.Offset().Y - b.Offset().Y) / resA.Y)),
		Z: int(math.Round((a.Offset().Z - b.Offset().Z) / resA.Z)),
	}
	bbb := b.DiscreteBoundingBox()

	var discreteBB geom.Box3
	for z := 0; z < a.Depth(); z++ {
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				if a.At(x, y, z) == 0 {
					continue
				}
				bp := geom.Point3{X: x + offsetAtoB.X, Y: y + offsetAtoB.Y, Z: z + offsetAtoB.Z}
				if !bbb.Contains(bp) || b.At(bp.X, bp.Y, bp.Z) == 0 {
					continue
				}
				discreteBB = discreteBB.Fit(geom.Point3{X: x, Y: y, Z: z})
			}
		}
	}

	if !discreteBB.Valid() {
		return NewExplicitVolume[T](0, 0, 0), nil
	}

	out := NewExplicitVolume[T](discreteBB.Width(), discreteBB.Height(), discreteBB.Depth())
	out.SetResolution(resA)
	out.SetOffset(a.DiscreteToWorld(discreteBB.Min))

	for z := 0; z < out.Depth(); z++ {
		az := z + discreteBB.Min.Z
		for y := 0; y < out.Height(); y++ {
			ay := y + discreteBB.Min.Y
			for x := 0; x < out.Width(); x++ {
				ax := x + discreteBB.Min.X
				valueA := a.At(ax, ay, az)
				if valueA == 0 {
					continue
				}
				bp := geom.Point3{X: ax + offsetAtoB.X, Y: ay + offsetAtoB.Y, Z: az + offsetAtoB.Z}
				valueB := b.At(bp.X, bp.Y, bp.Z)
				if valueB < valueA {
					out.Set(x, y, z, valueB)
				} else {
					out.Set(x, y, z, valueA)
				}
			}
		}
	}
	return out, nil
}
