package algorithms

import (
	"github.com/graphward/graphward/graph"
)

// dfsWalker carries the mutable state of one DFS run.
type dfsWalker struct {
	src     *graph.Graph
	tree    *graph.Graph
	visited []bool
}

// DFS runs a recursive depth-first traversal of g from start and returns
// the spanning tree of start's component: a tree edge is recorded for
// every transition into a newly discovered vertex, before descending
// into it. Vertices outside start's component remain edge-less, so on a
// disconnected graph the result is a spanning forest with exactly one
// populated tree.
//
// Returns ErrNilGraph or a wrapped graphward.ErrOutOfRange for invalid
// input. Complexity: O(V + E); recursion depth is bounded by the longest
// simple path from start.
func DFS(g *graph.Graph, start int) (*graph.Graph, error) {
	if err := validateStart(g, start); err != nil {
		return nil, err
	}

	tree, err := graph.New(g.VertexCount())
	if err != nil {
		return nil, err
	}
	w := &dfsWalker{
		src:     g,
		tree:    tree,
		visited: make([]bool, g.VertexCount()),
	}
	if err = w.visit(start); err != nil {
		return nil, err
	}

	return tree, nil
}

// visit marks u on entry, then explores its snapshot in order, recursing
// into each first-discovered neighbor.
func (w *dfsWalker) visit(u int) error {
	w.visited[u] = true
	neighbors, err := w.src.Neighbors(u)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if w.visited[nb.Vertex] {
			continue
		}
		if err = w.tree.AddEdge(u, nb.Vertex, nb.Weight); err != nil {
			return err
		}
		if err = w.visit(nb.Vertex); err != nil {
			return err
		}
	}

	return nil
}
