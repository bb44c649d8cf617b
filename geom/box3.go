package geom

// Box3 is a half-open integer 3D box [Min, Max), used for discrete volume
// bounding boxes. The zero value is empty (not Valid).
type Box3 struct {
	Min, Max Point3
	valid    bool
}

// NewBox3 returns the box [min, max), valid only if it has positive
// extent on every axis.
func NewBox3(min, max Point3) Box3 {
	if max.X <= min.X || max.Y <= min.Y || max.Z <= min.Z {
		return Box3{}
	}
	return Box3{Min: min, Max: max, valid: true}
}

// Valid reports whether the box contains any coordinates.
func (b Box3) Valid() bool {
	return b.valid
}

// Width, Height, Depth return the box's extent along X, Y, Z respectively,
// or 0 if the box is empty.
func (b Box3) Width() int {
	if !b.valid {
		return 0
	}
	return b.Max.X - b.Min.X
}

func (b Box3) Height() int {
	if !b.valid {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

func (b Box3) Depth() int {
	if !b.valid {
		return 0
	}
	return b.Max.Z - b.Min.Z
}

// Contains reports whether p lies within the half-open box.
func (b Box3) Contains(p Point3) bool {
	if !b.valid {
		return false
	}
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// Fit grows b to the smallest box containing both b and p, and returns the
// result.
func (b Box3) Fit(p Point3) Box3 {
	if !b.valid {
		return Box3{Min: p, Max: Point3{p.X + 1, p.Y + 1, p.Z + 1}, valid: true}
	}
	out := b
	if p.X < out.Min.X {
		out.Min.X = p.X
	}
	if p.Y < out.Min.Y {
		out.Min.Y = p.Y
	}
	if p.Z < out.Min.Z {
		out.Min.Z = p.Z
	}
	if p.X+1 > out.Max.X {
		out.Max.X = p.X + 1
	}
	if p.Y+1 > out.Max.Y {
		out.Max.Y = p.Y + 1
	}
	if p.Z+1 > out.Max.Z {
		out.Max.Z = p.Z + 1
	}
	return out
}

// Union returns the smallest box containing both b and o.
func (b Box3) Union(o Box3) Box3 {
	if !b.valid {
		return o
	}
	if !o.valid {
		return b
	}
	out := b
	if o.Min.X < out.Min.X {
		out.Min.X = o.Min.X
	}
	if o.Min.Y < out.Min.Y {
		out.Min.Y = o.Min.Y
	}
	if o.Min.Z < out.Min.Z {
		out.Min.Z = o.Min.Z
	}
	if o.Max.X > out.Max.X {
		out.Max.X = o.Max.X
	}
	if o.Max.Y > out.Max.Y {
		out.Max.Y = o.Max.Y
	}
	if o.Max.Z > out.Max.Z {
		out.Max.Z = o.Max.Z
	}
	return out
}

// Intersect returns the overlap of b and o. The result is not Valid if the
// boxes do not overlap on some axis.
func (b Box3) Intersect(o Box3) Box3 {
	if !b.valid || !o.valid {
		return Box3{}
	}
	lo := Point3{max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y), max(b.Min.Z, o.Min.Z)}
	hi := Point3{min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y), min(b.Max.Z, o.Max.Z)}
	if hi.X <= lo.X || hi.Y <= lo.Y || hi.Z <= lo.Z {
		return Box3{}
	}
	return Box3{Min: lo, Max: hi, valid: true}
}
