package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/pixellist"
)

func buildComponent(t *testing.T, pts []geom.Point2, value float32) *ConnectedComponent {
	t.Helper()
	list := pixellist.New(len(pts))
	from := list.Len()
	for _, p := range pts {
		_, err := list.Add(p)
		require.NoError(t, err)
	}
	return New(list, list.OpenRange(from), value)
}

func TestNewComputesBoxCenterBitmap(t *testing.T) {
	c := buildComponent(t, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 0.5)

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, float32(0.5), c.Value())
	assert.Equal(t, geom.Point2{X: 0, Y: 0}, c.BoundingBox().Min)
	assert.Equal(t, geom.Point2{X: 2, Y: 2}, c.BoundingBox().Max)

	center := c.Center()
	assert.InDelta(t, 1.0/3.0, center.X, 1e-9)
	assert.InDelta(t, 1.0/3.0, center.Y, 1e-9)

	assert.True(t, c.Bitmap(geom.Point2{X: 0, Y: 0}))
	assert.False(t, c.Bitmap(geom.Point2{X: 1, Y: 1}), "missing corner of the L-shape")
}

func TestTranslate(t *testing.T) {
	c := buildComponent(t, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1.0)
	moved := c.Translate(geom.Point2{X: 5, Y: 5})

	assert.Equal(t, geom.Point2{X: 5, Y: 5}, moved.BoundingBox().Min)
	assert.True(t, moved.Bitmap(geom.Point2{X: 5, Y: 5}))
	assert.True(t, moved.Bitmap(geom.Point2{X: 6, Y: 6}))
}

func TestIntersectsAndIntersect(t *testing.T) {
	a := buildComponent(t, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	b := buildComponent(t, []geom.Point2{{X: 1, Y: 0}, {X: 2, Y: 0}}, 1)
	c := buildComponent(t, []geom.Point2{{X: 10, Y: 10}}, 1)

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))

	overlap := a.Intersect(b)
	require.Len(t, overlap, 1)
	assert.Equal(t, geom.Point2{X: 1, Y: 0}, overlap[0])
}

func TestEqual(t *testing.T) {
	a := buildComponent(t, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1)
	b := buildComponent(t, []geom.Point2{{X: 1, Y: 1}, {X: 0, Y: 0}}, 1)
	c := buildComponent(t, []geom.Point2{{X: 0, Y: 0}}, 1)

	assert.True(t, a.Equal(b), "order of pixel insertion must not affect equality")
	assert.False(t, a.Equal(c))
}

func TestHashStableAcrossIsomorphicComponents(t *testing.T) {
	a := buildComponent(t, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1)
	b := buildComponent(t, []geom.Point2{{X: 1, Y: 1}, {X: 0, Y: 0}}, 1)
	c := buildComponent(t, []geom.Point2{{X: 0, Y: 0}}, 1)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}
