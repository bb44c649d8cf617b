package skeletons

import (
	"testing"

	"github.com/funkey/imageprocessing/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func line(from, to r3.Vec) *skeleton.Skeleton {
	sk := skeleton.New()
	sk.OpenSegment(from, 1)
	sk.ExtendSegment(to, 1)
	return sk
}

func TestAddDefaultsColorToID(t *testing.T) {
	s := New()
	s.Add(7, line(r3.Vec{}, r3.Vec{X: 1}), -1)

	color, ok := s.Color(7)
	require.True(t, ok)
	assert.Equal(t, 7, color)
}

func TestAddPreservesExplicitColor(t *testing.T) {
	s := New()
	s.Add(7, line(r3.Vec{}, r3.Vec{X: 1}), 3)

	color, ok := s.Color(7)
	require.True(t, ok)
	assert.Equal(t, 3, color)
}

func TestIdsPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Add(5, line(r3.Vec{}, r3.Vec{X: 1}), -1)
	s.Add(2, line(r3.Vec{}, r3.Vec{X: 1}), -1)
	s.Add(9, line(r3.Vec{}, r3.Vec{X: 1}), -1)

	assert.Equal(t, []uint64{5, 2, 9}, s.Ids())
}

func TestReplacingAnIDDoesNotChangeItsInsertionPosition(t *testing.T) {
	s := New()
	s.Add(1, line(r3.Vec{}, r3.Vec{X: 1}), -1)
	s.Add(2, line(r3.Vec{}, r3.Vec{X: 1}), -1)
	s.Add(1, line(r3.Vec{}, r3.Vec{X: 5}), -1)

	assert.Equal(t, []uint64{1, 2}, s.Ids())
	assert.Equal(t, 2, s.Size())
}

func TestRemoveDropsIDColorAndOrderEntry(t *testing.T) {
	s := New()
	s.Add(1, line(r3.Vec{}, r3.Vec{X: 1}), -1)
	s.Add(2, line(r3.Vec{}, r3.Vec{X: 1}), -1)

	s.Remove(1)

	assert.False(t, s.Contains(1))
	assert.Equal(t, []uint64{2}, s.Ids())
	_, ok := s.Color(1)
	assert.False(t, ok)
}

func TestBoundingBoxUnionsAllStoredSkeletons(t *testing.T) {
	s := New()
	s.Add(1, line(r3.Vec{X: -5}, r3.Vec{X: 0}), -1)
	s.Add(2, line(r3.Vec{X: 0}, r3.Vec{X: 10, Y: 3, Z: 2}), -1)

	bb := s.BoundingBox()
	require.True(t, bb.Valid())
	assert.Equal(t, r3.Vec{X: -5, Y: 0, Z: 0}, bb.Min)
	assert.Equal(t, r3.Vec{X: 10, Y: 3, Z: 2}, bb.Max)
}

func TestClearEmptiesTheCollection(t *testing.T) {
	s := New()
	s.Add(1, line(r3.Vec{}, r3.Vec{X: 1}), -1)

	s.Clear()

	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Ids())
	assert.False(t, s.Contains(1))
}
