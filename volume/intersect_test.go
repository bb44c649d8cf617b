package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func cube(size int, val uint8) *ExplicitVolume[uint8] {
	v := NewExplicitVolume[uint8](size, size, size)
	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				v.Set(x, y, z, val)
			}
		}
	}
	return v
}

func TestIntersectOverlappingCubesTakesMinAndBoundsToOverlap(t *testing.T) {
	a := cube(4, 5)
	b := cube(4, 3)
	b.SetOffset(r3.Vec{X: 2, Y: 0, Z: 0})

	out, err := Intersect(a, b)
	require.NoError(t, err)
	require.False(t, out.IsEmpty())

	assert.Equal(t, 2, out.Width())
	assert.Equal(t, 4, out.Height())
	assert.Equal(t, 4, out.Depth())
	for z := 0; z < out.Depth(); z++ {
		for y := 0; y < out.Height(); y++ {
			for x := 0; x < out.Width(); x++ {
				assert.Equal(t, uint8(3), out.At(x, y, z))
			}
		}
	}
}

func TestIntersectDisjointVolumesIsEmptyNotError(t *testing.T) {
	a := cube(2, 1)
	b := cube(2, 1)
	b.SetOffset(r3.Vec{X: 100, Y: 100, Z: 100})

	out, err := Intersect(a, b)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

func TestIntersectRejectsMismatchedResolution(t *testing.T) {
	a := cube(2, 1)
	b := cube(2, 1)
	b.SetResolution(r3.Vec{X: 2, Y: 1, Z: 1})

	_, err := Intersect(a, b)
	assert.ErrorIs(t, err, ErrResolutionMismatch)
}

func TestIntersectZeroValuedVoxelsNeverContribute(t *testing.T) {
	a := NewExplicitVolume[uint8](3, 1, 1)
	a.Set(0, 0, 0, 9)
	b := NewExplicitVolume[uint8](3, 1, 1)
	b.Set(2, 0, 0, 9)

	out, err := Intersect(a, b)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}
