package geom

// Point2 is an integer 2D pixel coordinate.
type Point2 struct {
	X, Y int
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{p.X + q.X, p.Y + q.Y}
}

// Point3 is an integer 3D discrete voxel coordinate.
type Point3 struct {
	X, Y, Z int
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}
