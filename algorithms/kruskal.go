package algorithms

import (
	"sort"

	"github.com/graphward/graphward/graph"
	"github.com/graphward/graphward/unionfind"
)

// undirectedEdge is Kruskal's working record of one undirected edge.
type undirectedEdge struct {
	u, v int
	w    int64
}

// Kruskal computes a minimum spanning forest of g: edges are considered
// in ascending weight order and accepted whenever their endpoints are
// not yet connected, tracked by a union-find. On a connected graph the
// result is a minimum spanning tree; otherwise each component gets its
// own tree. Returns ErrNilGraph for a nil graph.
// Complexity: O(E log E) for the sort, near-O(E) for the union-find.
func Kruskal(g *graph.Graph) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	edges, err := collectUndirected(g)
	if err != nil {
		return nil, err
	}
	// Stable sort keeps equal-weight edges in collection order, making
	// the chosen forest reproducible.
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].w < edges[j].w })

	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}
	tree, err := graph.New(n)
	if err != nil {
		return nil, err
	}

	accepted := 0
	for _, e := range edges {
		rootU, err := uf.Find(e.u)
		if err != nil {
			return nil, err
		}
		rootV, err := uf.Find(e.v)
		if err != nil {
			return nil, err
		}
		if rootU == rootV {
			continue
		}
		if err = tree.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, err
		}
		if err = uf.Union(e.u, e.v); err != nil {
			return nil, err
		}
		accepted++
		if accepted == n-1 {
			break // a spanning tree is complete
		}
	}

	return tree, nil
}

// collectUndirected gathers every undirected edge of g exactly once.
// The adjacency stores both directions of each edge, so keeping only the
// u < v orientation de-duplicates the scan; this filter is the single
// place that knowledge lives. Self-loops (u == v) are dropped, since a
// spanning tree can never use one. The slice grows as needed; there is
// no fixed edge cap.
func collectUndirected(g *graph.Graph) ([]undirectedEdge, error) {
	edges := make([]undirectedEdge, 0, g.EdgeCount())
	for u := 0; u < g.VertexCount(); u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if u < nb.Vertex {
				edges = append(edges, undirectedEdge{u: u, v: nb.Vertex, w: nb.Weight})
			}
		}
	}

	return edges, nil
}
