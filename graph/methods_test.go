package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph(t *testing.T) {
	g := NewGraph(5)
	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
}

func TestAddEdge(t *testing.T) {
	g := NewGraph(3)

	id, err := g.AddEdge(0, 1, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 1, g.NumEdges())

	e, err := g.Edge(id)
	require.NoError(t, err)
	assert.Equal(t, Node(0), e.U)
	assert.Equal(t, Node(1), e.V)
	assert.Equal(t, 1.5, e.Cost)

	deg0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, deg0)

	deg1, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, deg1)
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g := NewGraph(2)
	_, err := g.AddEdge(0, 5, 1)
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestAddEdgeLoopRejectedByDefault(t *testing.T) {
	g := NewGraph(1)
	_, err := g.AddEdge(0, 0, 1)
	require.ErrorIs(t, err, ErrLoopNotAllowed)
}

func TestAddEdgeLoopAllowed(t *testing.T) {
	g := NewGraph(1, WithLoops())
	id, err := g.AddEdge(0, 0, 2)
	require.NoError(t, err)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, deg, "a self-loop counts once toward degree")

	neighbors, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{id}, neighbors)
}

func TestAddEdgeMultiRejectedByDefault(t *testing.T) {
	g := NewGraph(2)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 2)
	require.ErrorIs(t, err, ErrMultiEdgeNotAllowed)
}

func TestAddEdgeMultiAllowed(t *testing.T) {
	g := NewGraph(2, WithMultiEdges())
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumEdges())
}

func TestSetCost(t *testing.T) {
	g := NewGraph(2)
	id, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	require.NoError(t, g.SetCost(id, 0))

	e, err := g.Edge(id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Cost)

	err = g.SetCost(42, 1)
	require.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestEdgeOther(t *testing.T) {
	g := NewGraph(2)
	id, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	e, err := g.Edge(id)
	require.NoError(t, err)

	assert.Equal(t, Node(1), e.Other(0))
	assert.Equal(t, Node(0), e.Other(1))
}

func TestAddNodeGrowsGraphAndIsImmediatelyUsable(t *testing.T) {
	g := NewGraph(1)
	n := g.AddNode()
	assert.Equal(t, Node(1), n)
	assert.Equal(t, 2, g.NumNodes())

	id, err := g.AddEdge(0, n, 1)
	require.NoError(t, err)
	deg, err := g.Degree(n)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	assert.Equal(t, 0, id)
}

func TestNeighborsOutOfRange(t *testing.T) {
	g := NewGraph(1)
	_, err := g.Neighbors(9)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}
