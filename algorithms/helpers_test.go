package algorithms_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphward/graphward/graph"
)

// edge is a normalized undirected edge (U < V) used for expectations.
type edge struct {
	U, V int
	W    int64
}

// buildDemoGraph assembles the demonstration 5-vertex, 6-edge sample:
//
//	0—1:4, 0—2:1, 1—2:2, 1—3:5, 2—3:8, 3—4:3
//
// Connected, with vertex 4 hanging off vertex 3 only.
func buildDemoGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(5)
	require.NoError(t, err)
	for _, e := range []edge{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5}, {2, 3, 8}, {3, 4, 3},
	} {
		require.NoError(t, g.AddEdge(e.U, e.V, e.W))
	}

	return g
}

// buildTriangle assembles the classic triangle: 0—1:1, 1—2:2, 0—2:5.
// Its unique MST keeps the first two edges and drops 0—2.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	return g
}

// undirectedEdges extracts g's edges as a sorted normalized list. The
// symmetric adjacency mentions each edge from both endpoints, so keeping
// the u < v orientation counts each exactly once (the results under test
// never contain self-loops).
func undirectedEdges(t *testing.T, g *graph.Graph) []edge {
	t.Helper()
	var out []edge
	for u := 0; u < g.VertexCount(); u++ {
		nbs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, nb := range nbs {
			if u < nb.Vertex {
				out = append(out, edge{U: u, V: nb.Vertex, W: nb.Weight})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.U != b.U {
			return a.U < b.U
		}
		if a.V != b.V {
			return a.V < b.V
		}
		return a.W < b.W
	})

	return out
}

// entryCount sums the adjacency entries over all vertices (each
// undirected edge counts twice).
func entryCount(t *testing.T, g *graph.Graph) int {
	t.Helper()
	var total int
	for v := 0; v < g.VertexCount(); v++ {
		nbs, err := g.Neighbors(v)
		require.NoError(t, err)
		total += len(nbs)
	}

	return total
}

// degreeOf returns the number of adjacency entries of v.
func degreeOf(t *testing.T, g *graph.Graph, v int) int {
	t.Helper()
	nbs, err := g.Neighbors(v)
	require.NoError(t, err)

	return len(nbs)
}

// buildSplitGraph returns a 6-vertex graph with two components and one
// isolated vertex: {0,1,2} chained, {3,4} paired, 5 alone.
func buildSplitGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(3, 4, 7))

	return g
}
