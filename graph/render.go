package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedText is returned by Parse when the input does not follow
// the Render format, or describes an asymmetric (impossible) edge set.
var ErrMalformedText = errors.New("graph: malformed rendering")

// Render writes the textual adjacency dump to w, one line per vertex in
// increasing index order:
//
//	Vertex 0: -> (2, weight: 1) -> (1, weight: 4)
//	Vertex 1: -> (0, weight: 4)
//	...
//
// Neighbors appear in internal list order (most recently added first).
// Complexity: O(n + entries).
func (g *Graph) Render(w io.Writer) error {
	for i, list := range g.adj {
		if _, err := fmt.Fprintf(w, "Vertex %d:", i); err != nil {
			return err
		}
		for _, e := range list {
			if _, err := fmt.Fprintf(w, " -> (%d, weight: %d)", e.to, e.weight); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// String renders the graph into a string. Convenience wrapper over Render.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Render(&sb) // strings.Builder never fails

	return sb.String()
}

// Parse reconstructs a Graph from text previously produced by Render.
// The result carries the same vertex count and the same multiset of
// undirected edges (parallel edges and self-loops included); neighbor
// order within each list is not preserved.
// Returns ErrMalformedText for any structural violation.
func Parse(r io.Reader) (*Graph, error) {
	lines, err := readVertexLines(r)
	if err != nil {
		return nil, err
	}
	n := len(lines)
	if n == 0 {
		return nil, fmt.Errorf("%w: no vertex lines", ErrMalformedText)
	}

	// Tally each undirected edge under a normalized (min, max, weight)
	// key. A symmetric rendering mentions every edge exactly twice: once
	// from each endpoint (a self-loop twice within its own line).
	type edgeKey struct {
		u, v int
		w    int64
	}
	counts := make(map[edgeKey]int)
	var order []edgeKey // first-seen order, for a deterministic result
	for u, list := range lines {
		for _, nb := range list {
			if nb.Vertex < 0 || nb.Vertex >= n {
				return nil, fmt.Errorf("%w: vertex %d references %d outside [0, %d)",
					ErrMalformedText, u, nb.Vertex, n)
			}
			k := edgeKey{u: u, v: nb.Vertex, w: nb.Weight}
			if k.u > k.v {
				k.u, k.v = k.v, k.u
			}
			if counts[k] == 0 {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, k := range order {
		c := counts[k]
		if c%2 != 0 {
			return nil, fmt.Errorf("%w: edge {%d, %d, weight %d} mentioned %d times, want an even count",
				ErrMalformedText, k.u, k.v, k.w, c)
		}
		for i := 0; i < c/2; i++ {
			if err = g.AddEdge(k.u, k.v, k.w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// readVertexLines scans r and returns the neighbor entries of each
// "Vertex i:" line, indexed by vertex. Lines must appear in increasing
// index order starting at 0; blank lines are ignored.
func readVertexLines(r io.Reader) ([][]Neighbor, error) {
	var lines [][]Neighbor
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if line == "" {
			continue
		}
		rest, ok := strings.CutPrefix(line, "Vertex ")
		if !ok {
			return nil, fmt.Errorf("%w: line %q", ErrMalformedText, line)
		}
		head, tail, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %q misses ':'", ErrMalformedText, line)
		}
		idx, err := strconv.Atoi(head)
		if err != nil || idx != len(lines) {
			return nil, fmt.Errorf("%w: want vertex %d, line %q", ErrMalformedText, len(lines), line)
		}
		entries, err := parseEntries(tail)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entries)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// parseEntries decodes zero or more " -> (v, weight: w)" segments.
func parseEntries(s string) ([]Neighbor, error) {
	if s == "" {
		return nil, nil
	}
	var out []Neighbor
	for _, seg := range strings.Split(s, " -> ") {
		if seg == "" {
			continue // empty fragment before the first arrow
		}
		body, ok := strings.CutPrefix(seg, "(")
		if !ok {
			return nil, fmt.Errorf("%w: segment %q", ErrMalformedText, seg)
		}
		body, ok = strings.CutSuffix(body, ")")
		if !ok {
			return nil, fmt.Errorf("%w: segment %q", ErrMalformedText, seg)
		}
		vs, ws, ok := strings.Cut(body, ", weight: ")
		if !ok {
			return nil, fmt.Errorf("%w: segment %q", ErrMalformedText, seg)
		}
		v, err := strconv.Atoi(vs)
		if err != nil {
			return nil, fmt.Errorf("%w: bad vertex in %q", ErrMalformedText, seg)
		}
		w, err := strconv.ParseInt(ws, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad weight in %q", ErrMalformedText, seg)
		}
		out = append(out, Neighbor{Vertex: v, Weight: w})
	}

	return out, nil
}
