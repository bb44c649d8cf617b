package skeletonize

import "math"

// inf stands in for +Infinity in the distance field's seed values. It is
// kept well below math.MaxFloat64 so that adding two of them (as the
// lower-envelope construction briefly does) never overflows to +Inf.
const inf = math.MaxFloat64 / 4

// distanceField is a flat, row-major (x fastest, then y, then z) grid of
// squared distances, padded by one voxel of background on every side so
// every object voxel has a background neighbor to measure against.
type distanceField struct {
	width, height, depth int
	data                 []float64
}

func newDistanceField(width, height, depth int) *distanceField {
	return &distanceField{width: width, height: height, depth: depth, data: make([]float64, width*height*depth)}
}

func (f *distanceField) index(x, y, z int) int {
	return z*f.width*f.height + y*f.width + x
}

func (f *distanceField) at(x, y, z int) float64 {
	return f.data[f.index(x, y, z)]
}

func (f *distanceField) set(x, y, z int, v float64) {
	f.data[f.index(x, y, z)] = v
}

// squaredDistanceTransformInPlace replaces every zero entry in data with 0
// (a background seed) and every non-zero entry with the squared Euclidean
// distance, measured with per-axis spacing, to the nearest seed. Only the
// given axes are transformed, which is what lets the 2D case (a
// single-slice volume) skip the z axis instead of measuring distance
// through all-background padding planes above and below it.
//
// This is the Felzenszwalt-Huttenlocher lower-envelope algorithm for
// distance transforms of sampled functions, generalized with anisotropic
// spacing, applied one axis at a time (a standard separable extension to
// higher dimensions). No library in the example pack implements an
// anisotropic squared Euclidean distance transform (the one distance
// transform present, a Fast Marching Method implementation, solves a
// different problem and does not expose a per-axis spacing knob), so this
// is hand-written rather than grounded on a pack dependency.
func squaredDistanceTransformInPlace(data []float64, width, height, depth int, spacing [3]float64, axes ...int) {
	for i, v := range data {
		if v == 0 {
			data[i] = 0
		} else {
			data[i] = inf
		}
	}
	for _, axis := range axes {
		transformAxis(data, width, height, depth, axis, spacing[axis])
	}
}

// transformAxis applies distanceTransform1D to every line of data parallel
// to the given axis (0 = x, 1 = y, 2 = z), in place.
func transformAxis(data []float64, width, height, depth int, axis int, spacing float64) {
	switch axis {
	case 0:
		line := make([]float64, width)
		for z := 0; z < depth; z++ {
			for y := 0; y < height; y++ {
				base := z*width*height + y*width
				copy(line, data[base:base+width])
				copy(data[base:base+width], distanceTransform1D(line, spacing))
			}
		}
	case 1:
		line := make([]float64, height)
		for z := 0; z < depth; z++ {
			for x := 0; x < width; x++ {
				for y := 0; y < height; y++ {
					line[y] = data[z*width*height+y*width+x]
				}
				out := distanceTransform1D(line, spacing)
				for y := 0; y < height; y++ {
					data[z*width*height+y*width+x] = out[y]
				}
			}
		}
	case 2:
		line := make([]float64, depth)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				for z := 0; z < depth; z++ {
					line[z] = data[z*width*height+y*width+x]
				}
				out := distanceTransform1D(line, spacing)
				for z := 0; z < depth; z++ {
					data[z*width*height+y*width+x] = out[z]
				}
			}
		}
	}
}

// distanceTransform1D computes, for each index q, min over j of
// f[j] + (spacing*(q-j))^2 — the squared distance transform of the sampled
// function f along a line with the given sample spacing.
func distanceTransform1D(f []float64, spacing float64) []float64 {
	n := len(f)
	d := make([]float64, n)
	if n == 0 {
		return d
	}

	pos := func(i int) float64 { return spacing * float64(i) }

	v := make([]int, n)     // v[k]: index of the k-th parabola in the lower envelope
	z := make([]float64, n+1) // z[k]: position where parabola k takes over from k-1
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		var s float64
		for {
			s = ((f[q] + sq(pos(q))) - (f[v[k]] + sq(pos(v[k])))) / (2*pos(q) - 2*pos(v[k]))
			if s <= z[k] {
				k--
				continue
			}
			break
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < pos(q) {
			k++
		}
		d[q] = sq(pos(q)-pos(v[k])) + f[v[k]]
	}
	return d
}

func sq(x float64) float64 { return x * x }
