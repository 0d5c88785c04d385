package algorithms

import (
	"errors"
	"fmt"
	"math"

	"github.com/graphward/graphward"
	"github.com/graphward/graphward/graph"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("algorithms: graph is nil")

// infinity is the "no known finite distance yet" sentinel for Dijkstra
// distances and Prim keys.
const infinity = math.MaxInt64

// noParent marks a vertex with no recorded predecessor.
const noParent = -1

// validateStart rejects a nil graph or a start vertex outside [0, n).
// Every start-parametrized algorithm calls this before allocating any
// working structures.
func validateStart(g *graph.Graph, start int) error {
	if g == nil {
		return ErrNilGraph
	}
	if start < 0 || start >= g.VertexCount() {
		return fmt.Errorf("%w: start vertex %d not in [0, %d)",
			graphward.ErrOutOfRange, start, g.VertexCount())
	}

	return nil
}

// heapCapacity bounds the insertions a lazy-reinsertion run can issue:
// one seed plus at most one push per directed adjacency entry. Sizing
// the heap to this bound makes capacity exhaustion unreachable for any
// legal input graph.
func heapCapacity(g *graph.Graph) int {
	return g.VertexCount() + 2*g.EdgeCount() + 1
}
