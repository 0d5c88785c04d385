package graph

import (
	"fmt"

	"github.com/graphward/graphward"
)

// Neighbor is one entry of a Neighbors snapshot: an adjacent vertex and
// the weight of the connecting edge. It is a copy, not a live view.
type Neighbor struct {
	// Vertex is the adjacent vertex index.
	Vertex int

	// Weight is the weight of the edge leading to Vertex.
	Weight int64
}

// halfEdge is one direction of a stored undirected edge.
type halfEdge struct {
	to     int
	weight int64
}

// Graph is an undirected weighted multigraph over vertices [0, n).
// The vertex count is fixed at construction; edges are the only mutable
// state. Graph is not safe for concurrent use; each instance assumes a
// single exclusive owner per call, matching the algorithms in
// package algorithms which never share or mutate their inputs.
type Graph struct {
	n   int
	adj [][]halfEdge
}

// New constructs a Graph with vertexCount vertices and no edges.
// Returns graphward.ErrInvalidArgument if vertexCount <= 0.
// Complexity: O(n).
func New(vertexCount int) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, fmt.Errorf("%w: vertex count must be positive, got %d",
			graphward.ErrInvalidArgument, vertexCount)
	}

	return &Graph{
		n:   vertexCount,
		adj: make([][]halfEdge, vertexCount),
	}, nil
}

// VertexCount reports the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount reports the number of undirected edges currently stored,
// counting each parallel edge separately. Self-loops count once.
// Complexity: O(n).
func (g *Graph) EdgeCount() int {
	var entries int
	for _, list := range g.adj {
		entries += len(list)
	}
	// Every undirected edge occupies exactly two adjacency entries
	// (a self-loop occupies two entries in the same list).
	return entries / 2
}

// AddEdge inserts an undirected edge {src, dest} with the given weight.
// Both endpoints are validated before either adjacency side is touched,
// so a failing call leaves the graph unchanged. Each direction is a new
// independent entry inserted at the head of its list: adding the same
// pair again creates a parallel edge, never a weight update.
// Returns graphward.ErrOutOfRange if either endpoint is invalid.
// Complexity: O(deg) per direction (head insertion into a slice).
func (g *Graph) AddEdge(src, dest int, weight int64) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dest); err != nil {
		return err
	}

	g.adj[src] = prepend(g.adj[src], halfEdge{to: dest, weight: weight})
	g.adj[dest] = prepend(g.adj[dest], halfEdge{to: src, weight: weight})

	return nil
}

// RemoveEdge deletes at most one {src, dest} entry from each direction,
// taking the first match in neighbor-list order. Removing an absent edge
// is a silent no-op: since AddEdge always populates both sides together,
// a one-sided removal cannot arise.
// Returns graphward.ErrOutOfRange if either endpoint is invalid.
// Complexity: O(deg(src) + deg(dest)).
func (g *Graph) RemoveEdge(src, dest int) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dest); err != nil {
		return err
	}

	g.adj[src] = removeFirst(g.adj[src], dest)
	// For a self-loop both scans hit the same list, removing both entries.
	g.adj[dest] = removeFirst(g.adj[dest], src)

	return nil
}

// Neighbors returns a freshly allocated snapshot of v's adjacency in
// most-recently-added-first order. Ownership transfers to the caller;
// later graph mutations never affect a snapshot already returned.
// Returns graphward.ErrOutOfRange if v is invalid.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	out := make([]Neighbor, len(g.adj[v]))
	for i, e := range g.adj[v] {
		out[i] = Neighbor{Vertex: e.to, Weight: e.weight}
	}

	return out, nil
}

// checkVertex validates v against [0, n).
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: vertex %d not in [0, %d)",
			graphward.ErrOutOfRange, v, g.n)
	}

	return nil
}

// prepend inserts e at the head of list, preserving the rest in order.
func prepend(list []halfEdge, e halfEdge) []halfEdge {
	list = append(list, halfEdge{})
	copy(list[1:], list)
	list[0] = e

	return list
}

// removeFirst drops the first entry pointing at to, if any.
func removeFirst(list []halfEdge, to int) []halfEdge {
	for i := range list {
		if list[i].to == to {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
