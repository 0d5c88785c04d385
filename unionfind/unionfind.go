// Package unionfind implements a disjoint-set structure over a fixed
// universe [0, n), with full path compression on Find and union by rank
// on Union. Kruskal's algorithm uses it for cycle detection.
package unionfind

import (
	"fmt"

	"github.com/graphward/graphward"
)

// UnionFind tracks a partition of [0, size) into disjoint sets. Every
// element starts as its own singleton root with rank 0. The rank of a
// root is an upper bound on the height of its tree, used only to pick
// the union direction.
type UnionFind struct {
	parent []int
	rank   []int
}

// New constructs a UnionFind over the universe [0, size).
// Returns graphward.ErrInvalidArgument if size <= 0.
func New(size int) (*UnionFind, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: union-find size must be positive, got %d",
			graphward.ErrInvalidArgument, size)
	}
	uf := &UnionFind{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf, nil
}

// Find resolves a to its set representative, repointing every node on
// the walked chain directly at the root (full path compression).
// Returns graphward.ErrOutOfRange if a is invalid.
// Complexity: near-O(1) amortized.
func (uf *UnionFind) Find(a int) (int, error) {
	if err := uf.check(a); err != nil {
		return 0, err
	}

	return uf.find(a), nil
}

// find is the compression recursion; a is already validated.
func (uf *UnionFind) find(a int) int {
	if uf.parent[a] != a {
		uf.parent[a] = uf.find(uf.parent[a])
	}

	return uf.parent[a]
}

// Union merges the sets containing a and b. A no-op when they already
// share a root. The lower-rank root is attached under the higher-rank
// one; on equal ranks a's root survives and its rank grows by one.
// Returns graphward.ErrOutOfRange if either element is invalid.
func (uf *UnionFind) Union(a, b int) error {
	if err := uf.check(a); err != nil {
		return err
	}
	if err := uf.check(b); err != nil {
		return err
	}

	rootA, rootB := uf.find(a), uf.find(b)
	if rootA == rootB {
		return nil
	}
	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}

	return nil
}

// check validates a against [0, len(parent)).
func (uf *UnionFind) check(a int) error {
	if a < 0 || a >= len(uf.parent) {
		return fmt.Errorf("%w: element %d not in [0, %d)",
			graphward.ErrOutOfRange, a, len(uf.parent))
	}

	return nil
}
