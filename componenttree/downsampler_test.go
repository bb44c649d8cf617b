package componenttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A chain r -> a -> b -> c with no branching collapses to r -> c; the root
// is always preserved even though it is itself unary, only chains strictly
// below it collapse.
func TestDownSampleCollapsesUnaryChain(t *testing.T) {
	r := singlePixelNode(0)
	a := singlePixelNode(1)
	b := singlePixelNode(2)
	c := singlePixelNode(3)

	r.addChild(a)
	a.addChild(b)
	b.addChild(c)

	tree := NewTree()
	tree.SetRoot(r)

	down := DownSample(tree)

	root := down.Root()
	require.NotNil(t, root)
	assert.Same(t, r.Component, root.Component)

	require.Len(t, root.Children(), 1)
	assert.Same(t, c.Component, root.Children()[0].Component)
	assert.Empty(t, root.Children()[0].Children())
}

func TestDownSampleCollapsesBranchesIndependently(t *testing.T) {
	r := singlePixelNode(0)
	left := singlePixelNode(1)
	leftLeaf := singlePixelNode(2)
	right := singlePixelNode(3)

	r.addChild(left)
	left.addChild(leftLeaf)
	r.addChild(right)

	tree := NewTree()
	tree.SetRoot(r)

	down := DownSample(tree)

	root := down.Root()
	require.Len(t, root.Children(), 2)

	var sawLeaf, sawRight bool
	for _, c := range root.Children() {
		switch c.Component {
		case leftLeaf.Component:
			sawLeaf = true
			assert.Empty(t, c.Children())
		case right.Component:
			sawRight = true
			assert.Empty(t, c.Children())
		}
	}
	assert.True(t, sawLeaf)
	assert.True(t, sawRight)
}

func TestDownSampleEmptyTree(t *testing.T) {
	down := DownSample(NewTree())
	assert.Nil(t, down.Root())
}

// The root itself is never collapsed away even though it is unary: only
// chains strictly below the root collapse, so a root with a single,
// otherwise-unremarkable child is left as a two-node tree.
func TestDownSamplePreservesUnaryRoot(t *testing.T) {
	r := singlePixelNode(0)
	onlyChild := singlePixelNode(1)
	r.addChild(onlyChild)

	tree := NewTree()
	tree.SetRoot(r)

	down := DownSample(tree)
	root := down.Root()
	require.NotNil(t, root)
	assert.Same(t, r.Component, root.Component)
	require.Len(t, root.Children(), 1)
	assert.Same(t, onlyChild.Component, root.Children()[0].Component)
}
