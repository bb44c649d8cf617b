package skeletonize

import (
	"testing"

	"github.com/funkey/imageprocessing/graph"
	"github.com/funkey/imageprocessing/graphvolume"
	"github.com/funkey/imageprocessing/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetSkeletonStraightLineIsASingleChain is scenario D: a 1x1x10 binary
// stick skeletonizes to a single chain of 10 nodes and 9 edges, with a
// uniform diameter of 2 (the object is exactly one voxel thick in X and Y
// everywhere along its length, so the squared boundary distance is 1 at
// every node, including both ends).
func TestGetSkeletonStraightLineIsASingleChain(t *testing.T) {
	v := volume.NewExplicitVolume[uint8](1, 1, 10)
	for z := 0; z < 10; z++ {
		v.Set(0, 0, z, 1)
	}

	gv := graphvolume.FromExplicitVolume(v)
	sk, err := New(gv, DefaultParameters()).GetSkeleton()
	require.NoError(t, err)

	assert.Equal(t, 10, sk.NumNodes())
	assert.Equal(t, 9, sk.Graph().NumEdges())

	degreeSum := 0
	leafCount := 0
	for i := 0; i < sk.NumNodes(); i++ {
		deg, err := sk.Graph().Degree(graph.Node(i))
		require.NoError(t, err)
		degreeSum += deg
		if deg == 1 {
			leafCount++
		}
		assert.InDelta(t, 2.0, sk.Diameter(graph.Node(i)), 1e-9)
	}
	assert.Equal(t, 2*9, degreeSum) // 9 edges, each counted from both ends
	assert.Equal(t, 2, leafCount)   // exactly the two chain ends
}

// TestGetSkeletonPlusSignHasOneBranchAndFourLeaves is scenario E: a 2D
// cross of five voxels (a center and its four orthogonal neighbors)
// skeletonizes to one degree-4 branch node and four degree-1 leaves.
//
// MinSegmentLengthRatio is set to 0 here rather than left at its default
// of 1: with the default, extracting the first (diametrically opposite)
// segment sets MinSegmentLength to that segment's own length, which for a
// shape this small and symmetric exceeds the length of the two remaining
// arms, and the extraction loop would stop after the first segment
// instead of finding all four.
func TestGetSkeletonPlusSignHasOneBranchAndFourLeaves(t *testing.T) {
	v := volume.NewExplicitVolume[uint8](3, 3, 1)
	for _, p := range [][2]int{{1, 1}, {0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		v.Set(p[0], p[1], 0, 1)
	}

	gv := graphvolume.FromExplicitVolume(v)
	params := DefaultParameters()
	params.MinSegmentLengthRatio = 0

	sk, err := New(gv, params).GetSkeleton()
	require.NoError(t, err)

	require.Equal(t, 5, sk.NumNodes())
	assert.Equal(t, 4, sk.Graph().NumEdges())

	degreeCounts := map[int]int{}
	for i := 0; i < sk.NumNodes(); i++ {
		deg, err := sk.Graph().Degree(graph.Node(i))
		require.NoError(t, err)
		degreeCounts[deg]++
	}
	assert.Equal(t, 1, degreeCounts[4])
	assert.Equal(t, 4, degreeCounts[1])
}

// TestGetSkeletonEmptyGraphIsNoNodeFound covers the degenerate case: a
// graphvolume with no nodes at all has nothing to root a skeleton on.
func TestGetSkeletonEmptyGraphIsNoNodeFound(t *testing.T) {
	v := volume.NewExplicitVolume[uint8](3, 3, 3)
	gv := graphvolume.FromExplicitVolume(v)

	_, err := New(gv, DefaultParameters()).GetSkeleton()
	assert.ErrorIs(t, err, ErrNoNodeFound)
}

// TestGetSkeletonTreeIsAcyclicAndConnected covers invariant 7: the
// extracted skeleton, for a straight 1x1x6 stick, has exactly NumNodes()-1
// edges (a tree, not a graph with cycles) and every node is reachable from
// the root by construction of the DFS traversal.
func TestGetSkeletonTreeIsAcyclicAndConnected(t *testing.T) {
	v := volume.NewExplicitVolume[uint8](1, 1, 6)
	for z := 0; z < 6; z++ {
		v.Set(0, 0, z, 1)
	}

	gv := graphvolume.FromExplicitVolume(v)
	sk, err := New(gv, DefaultParameters()).GetSkeleton()
	require.NoError(t, err)

	assert.Equal(t, sk.NumNodes()-1, sk.Graph().NumEdges())
}

// TestGetSkeletonRespectsMaxNumSegments covers invariant 9: the extraction
// loop never runs more than MaxNumSegments times, regardless of how many
// qualifying segments remain.
func TestGetSkeletonRespectsMaxNumSegments(t *testing.T) {
	v := volume.NewExplicitVolume[uint8](3, 3, 1)
	for _, p := range [][2]int{{1, 1}, {0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		v.Set(p[0], p[1], 0, 1)
	}

	gv := graphvolume.FromExplicitVolume(v)
	params := DefaultParameters()
	params.MinSegmentLengthRatio = 0
	params.MaxNumSegments = 1

	sk, err := New(gv, params).GetSkeleton()
	require.NoError(t, err)

	// Only the first (longest) segment is allowed to be extracted: a
	// three-node chain, not the full five-node cross.
	assert.Equal(t, 3, sk.NumNodes())
	assert.Equal(t, 2, sk.Graph().NumEdges())
}
