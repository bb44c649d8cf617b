package geom

import "gonum.org/v1/gonum/spatial/r3"

// FBox3 is a float64, world-space 3D bounding box [Min, Max), the float
// analogue of Box3. It backs Volume's lazily-cached bounding box.
type FBox3 struct {
	Min, Max r3.Vec
	valid    bool
}

// NewFBox3 returns the box [min, max), valid only if it has positive
// extent on every axis.
func NewFBox3(min, max r3.Vec) FBox3 {
	if max.X <= min.X || max.Y <= min.Y || max.Z <= min.Z {
		return FBox3{}
	}
	return FBox3{Min: min, Max: max, valid: true}
}

// Valid reports whether the box has positive extent on every axis.
func (b FBox3) Valid() bool {
	return b.valid && b.Max.X > b.Min.X && b.Max.Y > b.Min.Y && b.Max.Z > b.Min.Z
}

// Width, Height, Depth return the box's extent along X, Y, Z.
func (b FBox3) Width() float64  { return b.Max.X - b.Min.X }
func (b FBox3) Height() float64 { return b.Max.Y - b.Min.Y }
func (b FBox3) Depth() float64  { return b.Max.Z - b.Min.Z }

// Volume returns the product of Width, Height and Depth, or 0 for a box
// that is not Valid.
func (b FBox3) Volume() float64 {
	if !b.Valid() {
		return 0
	}
	return b.Width() * b.Height() * b.Depth()
}

// Contains reports whether v lies within the half-open box.
func (b FBox3) Contains(v r3.Vec) bool {
	if !b.valid {
		return false
	}
	return v.X >= b.Min.X && v.X < b.Max.X &&
		v.Y >= b.Min.Y && v.Y < b.Max.Y &&
		v.Z >= b.Min.Z && v.Z < b.Max.Z
}

// Fit grows b to the smallest box containing both b and v, and returns the
// result. Fitting a point into an empty box yields a degenerate box at v;
// it becomes Valid once it has been fit or unioned to a non-zero extent.
func (b FBox3) Fit(v r3.Vec) FBox3 {
	if !b.valid {
		return FBox3{Min: v, Max: v, valid: true}
	}
	out := b
	out.Min.X = fmin(out.Min.X, v.X)
	out.Min.Y = fmin(out.Min.Y, v.Y)
	out.Min.Z = fmin(out.Min.Z, v.Z)
	out.Max.X = fmax(out.Max.X, v.X)
	out.Max.Y = fmax(out.Max.Y, v.Y)
	out.Max.Z = fmax(out.Max.Z, v.Z)
	return out
}

// Union returns the smallest box containing both b and o.
func (b FBox3) Union(o FBox3) FBox3 {
	if !b.valid {
		return o
	}
	if !o.valid {
		return b
	}
	out := b
	out.Min.X = fmin(out.Min.X, o.Min.X)
	out.Min.Y = fmin(out.Min.Y, o.Min.Y)
	out.Min.Z = fmin(out.Min.Z, o.Min.Z)
	out.Max.X = fmax(out.Max.X, o.Max.X)
	out.Max.Y = fmax(out.Max.Y, o.Max.Y)
	out.Max.Z = fmax(out.Max.Z, o.Max.Z)
	return out
}

// Intersect returns the overlap of b and o. The result is not Valid if the
// boxes do not overlap.
func (b FBox3) Intersect(o FBox3) FBox3 {
	if !b.valid || !o.valid {
		return FBox3{}
	}
	lo := r3.Vec{X: fmax(b.Min.X, o.Min.X), Y: fmax(b.Min.Y, o.Min.Y), Z: fmax(b.Min.Z, o.Min.Z)}
	hi := r3.Vec{X: fmin(b.Max.X, o.Max.X), Y: fmin(b.Max.Y, o.Max.Y), Z: fmin(b.Max.Z, o.Max.Z)}
	if hi.X <= lo.X || hi.Y <= lo.Y || hi.Z <= lo.Z {
		return FBox3{}
	}
	return FBox3{Min: lo, Max: hi, valid: true}
}

// Scale multiplies both Min and Max componentwise by s.
func (b FBox3) Scale(s r3.Vec) FBox3 {
	return FBox3{
		Min:   r3.Vec{X: b.Min.X * s.X, Y: b.Min.Y * s.Y, Z: b.Min.Z * s.Z},
		Max:   r3.Vec{X: b.Max.X * s.X, Y: b.Max.Y * s.Y, Z: b.Max.Z * s.Z},
		valid: b.valid,
	}
}

// Translate shifts both Min and Max by d.
func (b FBox3) Translate(d r3.Vec) FBox3 {
	return FBox3{
		Min:   r3.Add(b.Min, d),
		Max:   r3.Add(b.Max, d),
		valid: b.valid,
	}
}

func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
