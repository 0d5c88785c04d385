package algorithms

import (
	"github.com/graphward/graphward/graph"
	"github.com/graphward/graphward/pqueue"
)

// Dijkstra computes the shortest-path tree of g from start and returns
// it as a new Graph: for every reached vertex v the tree holds the edge
// (predecessor(v), v) weighted by dist[v]−dist[predecessor(v)], which
// reconstructs the original edge weight. Unreached vertices keep no
// edges.
//
// Relaxation follows the lazy decrease-key pattern: improving dist[v]
// reinserts v into the min-heap with its new distance; stale entries
// popped later simply re-relax against already-final distances and push
// nothing. The heap is sized so that reinsertion can never exhaust it.
//
// Weights must be non-negative; a negative edge is not detected and
// leaves the result unspecified. Returns ErrNilGraph or a wrapped
// graphward.ErrOutOfRange for invalid input.
// Complexity: O((V + E) log V).
func Dijkstra(g *graph.Graph, start int) (*graph.Graph, error) {
	if err := validateStart(g, start); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	dist := make([]int64, n)
	prev := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = infinity
		prev[i] = noParent
	}
	dist[start] = 0

	pq, err := pqueue.New(heapCapacity(g))
	if err != nil {
		return nil, err
	}
	if err = pq.Insert(start, 0); err != nil {
		return nil, err
	}

	for !pq.Empty() {
		u, err := pq.ExtractMin()
		if err != nil {
			return nil, err
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		// dist[u] is finite here: only vertices with a finite distance
		// are ever inserted, so the sum below cannot start from the
		// infinity sentinel.
		for _, nb := range neighbors {
			v, w := nb.Vertex, nb.Weight
			if dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
				prev[v] = u
				if err = pq.Insert(v, dist[v]); err != nil {
					return nil, err
				}
			}
		}
	}

	tree, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if prev[v] == noParent {
			continue
		}
		if err = tree.AddEdge(prev[v], v, dist[v]-dist[prev[v]]); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
