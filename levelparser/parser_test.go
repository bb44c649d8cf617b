package levelparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkey/imageprocessing/geom"
	"github.com/funkey/imageprocessing/pixellist"
)

type recordedComponent struct {
	value float64
	rng   pixellist.Range
}

type recordingVisitor struct {
	list       *pixellist.PixelList
	components []recordedComponent
}

func (v *recordingVisitor) SetPixelList(list *pixellist.PixelList) {
	v.list = list
}

func (v *recordingVisitor) NewChildComponent(value float64) {}

func (v *recordingVisitor) FinalizeComponent(value float64, rng pixellist.Range) {
	v.components = append(v.components, recordedComponent{value: value, rng: rng})
}

func (v *recordingVisitor) pixelsOf(c recordedComponent) []geom.Point2 {
	return v.list.Slice(c.rng)
}

func pointSet(pts []geom.Point2) map[geom.Point2]bool {
	set := make(map[geom.Point2]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

// A trivial 1x1 image reports its single pixel once per threshold level,
// from the pixel's own level (127 for 0.5 in uint8) up to 255: 129
// components, each covering the single pixel.
func TestParseTrivialImage(t *testing.T) {
	img := NewImage(1, 1)
	img.Set(0, 0, 0.5)

	p, err := New[uint8](img, DefaultParameters())
	require.NoError(t, err)

	v := &recordingVisitor{}
	require.NoError(t, p.Parse(v))

	require.Len(t, v.components, 129)
	assert.InDelta(t, 0.5, v.components[0].value, 0.01)
	assert.Equal(t, []geom.Point2{{X: 0, Y: 0}}, v.pixelsOf(v.components[0]))
}

// A two-level ramp reports one component per threshold level (256 for
// uint8), nested in ascending order of value: levels 0..126 cover only the
// 0.0 pixel, levels 127..254 add the two 0.5 pixels, and level 255 covers
// the whole image.
func TestParseTwoLevelRamp(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, 0.0)
	img.Set(1, 0, 0.5)
	img.Set(0, 1, 0.5)
	img.Set(1, 1, 1.0)

	p, err := New[uint8](img, DefaultParameters())
	require.NoError(t, err)

	v := &recordingVisitor{}
	require.NoError(t, p.Parse(v))

	require.Len(t, v.components, 256)

	assert.InDelta(t, 0.0, v.components[0].value, 0.01)
	assert.Equal(t, pointSet([]geom.Point2{{X: 0, Y: 0}}), pointSet(v.pixelsOf(v.components[0])))

	assert.InDelta(t, 0.5, v.components[127].value, 0.01)
	assert.Equal(t,
		pointSet([]geom.Point2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}),
		pointSet(v.pixelsOf(v.components[127])))

	assert.InDelta(t, 1.0, v.components[255].value, 0.01)
	assert.Equal(t, 4, len(v.pixelsOf(v.components[255])))
	assert.Equal(t,
		pointSet([]geom.Point2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}),
		pointSet(v.pixelsOf(v.components[255])))
}

func TestParseRejectsZeroSizeImage(t *testing.T) {
	img := &Image{Width: 0, Height: 0}
	_, err := New[uint8](img, DefaultParameters())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseRejectsMinGreaterThanMax(t *testing.T) {
	img := NewImage(2, 2)
	_, err := New[uint8](img, Parameters{DarkToBright: true, MinIntensity: 1, MaxIntensity: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseUniformImageCollapsesToUnitRange(t *testing.T) {
	img := NewImage(2, 2)
	for i := range img.Pixels {
		img.Pixels[i] = 3.0
	}

	p, err := New[uint8](img, DefaultParameters())
	require.NoError(t, err)

	v := &recordingVisitor{}
	require.NoError(t, p.Parse(v))

	require.Len(t, v.components, 1)
	assert.Equal(t, 4, len(v.pixelsOf(v.components[0])))
}

func TestParseEveryPixelAppearsExactlyOnceInFinalComponent(t *testing.T) {
	img := NewImage(3, 3)
	vals := []float64{0.1, 0.9, 0.3, 0.7, 0.5, 0.2, 0.4, 0.8, 0.6}
	for i, v := range vals {
		img.Pixels[i] = v
	}

	p, err := New[uint8](img, DefaultParameters())
	require.NoError(t, err)

	v := &recordingVisitor{}
	require.NoError(t, p.Parse(v))

	require.NotEmpty(t, v.components)
	last := v.components[len(v.components)-1]
	assert.Equal(t, 9, last.rng.Len())
	assert.Equal(t, 9, v.list.Len())
}
