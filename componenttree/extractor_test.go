package componenttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkey/imageprocessing/levelparser"
)

func extractTree(t *testing.T, img *levelparser.Image, params ExtractorParams) *Tree {
	t.Helper()

	p, err := levelparser.New[uint8](img, levelparser.DefaultParameters())
	require.NoError(t, err)

	ext := NewExtractor(img.Width*img.Height, params)
	require.NoError(t, p.Parse(ext))

	return ext.Tree()
}

// A trivial 1x1 image produces a tree with exactly one node.
func TestExtractorTrivialImage(t *testing.T) {
	img := levelparser.NewImage(1, 1)
	img.Set(0, 0, 0.5)

	tree := extractTree(t, img, DefaultExtractorParams())

	require.NotNil(t, tree.Root())
	assert.Equal(t, 1, tree.Count())
	assert.InDelta(t, 0.5, float64(tree.Root().Component.Value()), 0.01)
}

// A two-level ramp produces a tree whose root covers all four pixels, with
// two components nested beneath it.
func TestExtractorTwoLevelRamp(t *testing.T) {
	img := levelparser.NewImage(2, 2)
	img.Set(0, 0, 0.0)
	img.Set(1, 0, 0.5)
	img.Set(0, 1, 0.5)
	img.Set(1, 1, 1.0)

	tree := extractTree(t, img, DefaultExtractorParams())

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 4, root.Component.Size())
	assert.InDelta(t, 1.0, float64(root.Component.Value()), 0.01)
	assert.Equal(t, 3, tree.Count())

	require.Len(t, root.Children(), 1)
	mid := root.Children()[0]
	assert.Equal(t, 3, mid.Component.Size())
	assert.InDelta(t, 0.5, float64(mid.Component.Value()), 0.01)

	require.Len(t, mid.Children(), 1)
	leaf := mid.Children()[0]
	assert.Equal(t, 1, leaf.Component.Size())
	assert.InDelta(t, 0.0, float64(leaf.Component.Value()), 0.01)
	assert.Empty(t, leaf.Children())
}

func TestExtractorSizeFilterStillKeepsWholeImageRoot(t *testing.T) {
	img := levelparser.NewImage(2, 2)
	img.Set(0, 0, 0.0)
	img.Set(1, 0, 0.5)
	img.Set(0, 1, 0.5)
	img.Set(1, 1, 1.0)

	// A min size larger than every sub-component would normally reject
	// everything; the whole-image root must still survive.
	tree := extractTree(t, img, ExtractorParams{MinSize: 100})

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 4, root.Component.Size())
}

func TestPreprocessSameIntensityZeroesMixedBoundaries(t *testing.T) {
	img := levelparser.NewImage(2, 1)
	img.Set(0, 0, 1.0)
	img.Set(1, 0, 2.0)

	PreprocessSameIntensity(img)

	assert.Equal(t, 0.0, img.At(0, 0))
	assert.Equal(t, 2.0, img.At(1, 0))
}
