package algorithms

import (
	"github.com/graphward/graphward/graph"
	"github.com/graphward/graphward/queue"
)

// BFS runs a breadth-first traversal of g from start and returns the
// tree of discovery edges, each carrying its original weight. Vertices
// are marked visited on enqueue, never on dequeue, so no vertex enters
// the queue twice and the queue never outgrows the vertex count.
// Vertices unreachable from start keep no edges in the result.
//
// Returns ErrNilGraph or a wrapped graphward.ErrOutOfRange for invalid
// input. Complexity: O(V + E).
func BFS(g *graph.Graph, start int) (*graph.Graph, error) {
	if err := validateStart(g, start); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	tree, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	visited := make([]bool, n)
	q, err := queue.New(n)
	if err != nil {
		return nil, err
	}

	visited[start] = true
	if err = q.Enqueue(start); err != nil {
		return nil, err
	}

	for !q.Empty() {
		u, err := q.Dequeue()
		if err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if visited[nb.Vertex] {
				continue
			}
			visited[nb.Vertex] = true
			if err = tree.AddEdge(u, nb.Vertex, nb.Weight); err != nil {
				return nil, err
			}
			if err = q.Enqueue(nb.Vertex); err != nil {
				return nil, err
			}
		}
	}

	return tree, nil
}
