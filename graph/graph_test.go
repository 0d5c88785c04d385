package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphward/graphward"
	"github.com/graphward/graphward/graph"
)

// TestNew_Validation verifies construction bounds and the fresh state of
// a newly built graph: correct vertex count, zero neighbors everywhere.
func TestNew_Validation(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := graph.New(n)
		assert.ErrorIs(t, err, graphward.ErrInvalidArgument, "New(%d)", n)
	}

	g, err := graph.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	for v := 0; v < 4; v++ {
		nbs, err := g.Neighbors(v)
		require.NoError(t, err)
		assert.Empty(t, nbs, "vertex %d should start with no neighbors", v)
	}
}

// TestAddEdge_Symmetry checks that a single AddEdge populates both
// directions and a subsequent RemoveEdge clears both.
func TestAddEdge_Symmetry(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 7))

	nbs0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []graph.Neighbor{{Vertex: 2, Weight: 7}}, nbs0)

	nbs2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []graph.Neighbor{{Vertex: 0, Weight: 7}}, nbs2)

	require.NoError(t, g.RemoveEdge(0, 2))
	nbs0, err = g.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, nbs0)
	nbs2, err = g.Neighbors(2)
	require.NoError(t, err)
	assert.Empty(t, nbs2)
}

// TestAddEdge_ParallelEdges checks that repeated insertion accumulates
// independent entries instead of updating weights, and that RemoveEdge
// removes exactly one copy per direction.
func TestAddEdge_ParallelEdges(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 9))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	// Head insertion: the later edge comes first.
	assert.Equal(t, []graph.Neighbor{{Vertex: 1, Weight: 9}, {Vertex: 1, Weight: 3}}, nbs)
	assert.Equal(t, 2, g.EdgeCount())

	// Removing once keeps the second parallel copy on both sides.
	require.NoError(t, g.RemoveEdge(0, 1))
	nbs, err = g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	nbs1, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, nbs1, 1)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_OutOfRange verifies the error and that a failed call
// leaves the graph unchanged.
func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	before := g.String()

	cases := [][2]int{{-1, 1}, {3, 1}, {0, -1}, {0, 3}}
	for _, c := range cases {
		err = g.AddEdge(c[0], c[1], 1)
		assert.ErrorIs(t, err, graphward.ErrOutOfRange, "AddEdge(%d, %d)", c[0], c[1])
	}
	assert.Equal(t, before, g.String(), "failed AddEdge must not mutate the graph")
}

// TestRemoveEdge_Absent verifies the silent no-op contract.
func TestRemoveEdge_Absent(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	before := g.String()

	require.NoError(t, g.RemoveEdge(0, 2))
	assert.Equal(t, before, g.String())

	err = g.RemoveEdge(0, 5)
	assert.ErrorIs(t, err, graphward.ErrOutOfRange)
}

// TestNeighbors_Snapshot ensures a snapshot is an owned copy: later
// mutations must not reach into it.
func TestNeighbors_Snapshot(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	snap, err := g.Neighbors(0)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(0, 1))

	assert.Equal(t, []graph.Neighbor{{Vertex: 1, Weight: 5}}, snap,
		"snapshot must survive later mutation")

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, graphward.ErrOutOfRange)
}

// TestNeighbors_Order pins the deterministic most-recently-added-first
// ordering that the traversal algorithms rely on.
func TestNeighbors_Order(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.NoError(t, g.AddEdge(0, 3, 3))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []graph.Neighbor{
		{Vertex: 3, Weight: 3},
		{Vertex: 2, Weight: 2},
		{Vertex: 1, Weight: 1},
	}, nbs)
}

// TestSelfLoop checks the two-entry representation of a self-loop and
// that RemoveEdge clears both entries.
func TestSelfLoop(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 1, 6))

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Len(t, nbs, 2, "a self-loop occupies two entries in its own list")
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.RemoveEdge(1, 1))
	nbs, err = g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, nbs)
	assert.Zero(t, g.EdgeCount())
}
