package volume

import (
	"math"

	"github.com/funkey/imageprocessing/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// DiscreteVolume relates a volume's discrete voxel grid to world space via
// a per-axis resolution (voxel size) and an offset (world position of
// voxel (0,0,0)'s minimum corner).
type DiscreteVolume struct {
	Volume
	resolution r3.Vec
	offset     r3.Vec
}

// NewDiscreteVolume returns a DiscreteVolume with unit resolution and zero
// offset.
func NewDiscreteVolume() DiscreteVolume {
	return DiscreteVolume{resolution: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Resolution returns the world-space size of one voxel along each axis.
func (d *DiscreteVolume) Resolution() r3.Vec { return d.resolution }

// Offset returns the world-space position of voxel (0,0,0)'s min corner.
func (d *DiscreteVolume) Offset() r3.Vec { return d.offset }

// SetResolution changes the voxel size, invalidating the cached bounding
// box.
func (d *DiscreteVolume) SetResolution(r r3.Vec) {
	d.resolution = r
	d.MarkDirty()
}

// SetOffset changes the world position of voxel (0,0,0), invalidating the
// cached bounding box.
func (d *DiscreteVolume) SetOffset(o r3.Vec) {
	d.offset = o
	d.MarkDirty()
}

// WorldToDiscrete maps a world-space position to the discrete voxel
// coordinate containing it.
func (d *DiscreteVolume) WorldToDiscrete(p r3.Vec) geom.Point3 {
	return geom.Point3{
		X: int(math.Floor((p.X - d.offset.X) / d.resolution.X)),
		Y: int(math.Floor((p.Y - d.offset.Y) / d.resolution.Y)),
		Z: int(math.Floor((p.Z - d.offset.Z) / d.resolution.Z)),
	}
}

// DiscreteToWorld maps a discrete voxel coordinate to the world-space
// position of its minimum corner.
func (d *DiscreteVolume) DiscreteToWorld(p geom.Point3) r3.Vec {
	return r3.Vec{
		X: float64(p.X)*d.resolution.X + d.offset.X,
		Y: float64(p.Y)*d.resolution.Y + d.offset.Y,
		Z: float64(p.Z)*d.resolution.Z + d.offset.Z,
	}
}

// WorldBoundingBox converts a discrete bounding box into this volume's
// world-space bounding box: discreteBB*resolution + offset.
func (d *DiscreteVolume) WorldBoundingBox(discreteBB geom.Box3) geom.FBox3 {
	if !discreteBB.Valid() {
		return geom.FBox3{}
	}
	return geom.NewFBox3(d.DiscreteToWorld(discreteBB.Min), d.DiscreteToWorld(discreteBB.Max))
}
