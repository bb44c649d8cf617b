package geom

// Box2 is a half-open integer 2D box [Min, Max). The zero value is empty
// (not Valid) and acts as the identity element for Fit.
type Box2 struct {
	Min, Max Point2
	valid    bool
}

// Valid reports whether the box contains any coordinates.
func (b Box2) Valid() bool {
	return b.valid
}

// Width returns Max.X - Min.X, or 0 if the box is empty.
func (b Box2) Width() int {
	if !b.valid {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns Max.Y - Min.Y, or 0 if the box is empty.
func (b Box2) Height() int {
	if !b.valid {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Contains reports whether p lies within the half-open box.
func (b Box2) Contains(p Point2) bool {
	if !b.valid {
		return false
	}
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Fit grows b to the smallest box containing both b and p, and returns the
// result. Fitting a point into an empty box yields the unit box [p, p+1).
func (b Box2) Fit(p Point2) Box2 {
	if !b.valid {
		return Box2{Min: p, Max: Point2{p.X + 1, p.Y + 1}, valid: true}
	}
	out := b
	if p.X < out.Min.X {
		out.Min.X = p.X
	}
	if p.Y < out.Min.Y {
		out.Min.Y = p.Y
	}
	if p.X+1 > out.Max.X {
		out.Max.X = p.X + 1
	}
	if p.Y+1 > out.Max.Y {
		out.Max.Y = p.Y + 1
	}
	return out
}

// Intersect returns the overlap of b and o. The result is not Valid if the
// boxes do not overlap on some axis.
func (b Box2) Intersect(o Box2) Box2 {
	if !b.valid || !o.valid {
		return Box2{}
	}
	lo := Point2{max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y)}
	hi := Point2{min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y)}
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return Box2{}
	}
	return Box2{Min: lo, Max: hi, valid: true}
}

// Union returns the smallest box containing both b and o.
func (b Box2) Union(o Box2) Box2 {
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
	if o.Max.X > out.Max.X {
		out.Max.X = o.Max.X
	}
	if o.Max.Y > out.Max.Y {
		out.Max.Y = o.Max.Y
	}
	return out
}
