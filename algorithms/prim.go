package algorithms

import (
	"github.com/graphward/graphward/graph"
	"github.com/graphward/graphward/pqueue"
)

// Prim computes a minimum spanning tree of g, always growing from
// vertex 0 (a documented limitation of this API, unlike the
// start-parametrized traversals). The result holds, for every vertex
// v >= 1 with a recorded parent, the edge (parent(v), v) weighted by
// v's final key. On a disconnected graph only vertex 0's component is
// spanned; the rest stay edge-less.
//
// Like Dijkstra, relaxation reinserts into the min-heap instead of
// decreasing keys in place, so stale pops occur and are harmless: a
// vertex already settled into the tree is skipped as a relax target via
// the inMST check. Returns ErrNilGraph for a nil graph.
// Complexity: O((V + E) log V).
func Prim(g *graph.Graph) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	inMST := make([]bool, n)
	key := make([]int64, n)
	parent := make([]int, n)
	for i := 0; i < n; i++ {
		key[i] = infinity
		parent[i] = noParent
	}
	key[0] = 0

	pq, err := pqueue.New(heapCapacity(g))
	if err != nil {
		return nil, err
	}
	if err = pq.Insert(0, 0); err != nil {
		return nil, err
	}

	for !pq.Empty() {
		u, err := pq.ExtractMin()
		if err != nil {
			return nil, err
		}
		inMST[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			v, w := nb.Vertex, nb.Weight
			if !inMST[v] && w < key[v] {
				key[v] = w
				parent[v] = u
				if err = pq.Insert(v, key[v]); err != nil {
					return nil, err
				}
			}
		}
	}

	tree, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for v := 1; v < n; v++ {
		if parent[v] == noParent {
			continue
		}
		if err = tree.AddEdge(parent[v], v, key[v]); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
