// Package algorithms provides the five classic graph algorithms over a
// graph.Graph: breadth-first search, depth-first search, Dijkstra's
// shortest-path tree, and the Prim and Kruskal minimum spanning trees.
//
// Contract shared by all five:
//
//   - The input graph is read-only; no function ever mutates it.
//   - Each function returns a freshly constructed Graph with the same
//     vertex count, containing the tree (or forest) edges it discovered.
//   - A nil graph yields ErrNilGraph; an invalid start vertex yields a
//     wrapped graphward.ErrOutOfRange before any working structure is
//     allocated.
//   - Each call is single-shot and self-contained: all working state
//     (visited flags, distance/key/parent arrays, queues, heaps, the
//     union-find) is local to the call.
//
// BFS, DFS and Dijkstra take an explicit start vertex. Prim always grows
// from vertex 0 (a documented limitation of its API, not an oversight),
// and Kruskal needs no start at all.
//
// Dijkstra assumes non-negative weights and does not check for negative
// edges; feeding it one gives an unspecified result.
//
// Determinism: graph.Neighbors returns snapshots in a fixed
// (most-recently-added-first) order, so every function here is fully
// deterministic for a given construction history.
package algorithms
