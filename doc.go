// Package graphward is a compact teaching library for undirected weighted
// graphs: an adjacency-list Graph container, five classic algorithms, and
// the three bounded data structures that power them.
//
// What's inside:
//
//	graph/      — adjacency-list Graph over a fixed vertex set [0, n)
//	queue/      — fixed-capacity FIFO ring buffer
//	pqueue/     — fixed-capacity binary min-heap with lazy decrease-key
//	unionfind/  — disjoint-set with path compression and union by rank
//	algorithms/ — BFS, DFS, Dijkstra, Prim, Kruskal
//
// Every algorithm reads its input graph without mutating it and returns a
// freshly built tree (or forest) as a new Graph of the same vertex count.
// Quick sketch:
//
//	g, _ := graph.New(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 5)
//	mst, _ := algorithms.Kruskal(g) // keeps 0—1 and 1—2, drops 0—2
//
// This package itself holds only the shared error kinds (see errors.go);
// all behavior lives in the subpackages above.
package graphward
