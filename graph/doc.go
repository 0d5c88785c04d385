// Package graph implements an undirected weighted graph over a fixed
// vertex set [0, n), stored as per-vertex adjacency lists.
//
// What
//
//   - New(n) fixes the vertex count forever; only edges mutate afterwards.
//   - AddEdge inserts both directions atomically at the heads of the two
//     adjacency lists; repeated calls accumulate parallel edges.
//   - RemoveEdge deletes at most one matching entry per direction and is a
//     silent no-op when the edge is absent.
//   - Neighbors returns an owned snapshot in most-recently-added-first
//     order; later mutations never reach into a snapshot already handed out.
//   - Render / Parse round-trip the textual "Vertex i: -> (v, weight: w)"
//     form, preserving the multiset of undirected edges.
//
// Invariants
//
//   - Every stored edge {u,v,w} exists in both u's and v's list, so the
//     symmetric representation can never go lopsided.
//   - A failed operation leaves the graph untouched: both endpoints are
//     validated before either adjacency side is modified.
//
// Determinism
//
//	Neighbor order is fully determined by insertion history (head
//	insertion), so every traversal built on Neighbors is reproducible.
//
// Errors wrap the shared kinds in the root graphward package
// (ErrInvalidArgument, ErrOutOfRange); match them with errors.Is.
package graph
