// Command graphdemo builds the fixed five-vertex sample graph, runs all
// five algorithms against it, and renders every result to stdout.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/graphward/graphward/algorithms"
	"github.com/graphward/graphward/graph"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "graphdemo: logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	g, err := buildSample()
	if err != nil {
		log.Fatalw("building sample graph", "error", err)
	}
	log.Infow("sample graph built",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	fmt.Println("Original Graph:")
	if err = g.Render(os.Stdout); err != nil {
		log.Fatalw("rendering sample graph", "error", err)
	}

	runs := []struct {
		name string
		run  func() (*graph.Graph, error)
	}{
		{"BFS Tree (starting from vertex 0)", func() (*graph.Graph, error) { return algorithms.BFS(g, 0) }},
		{"DFS Tree (starting from vertex 0)", func() (*graph.Graph, error) { return algorithms.DFS(g, 0) }},
		{"Dijkstra Tree (starting from vertex 0)", func() (*graph.Graph, error) { return algorithms.Dijkstra(g, 0) }},
		{"Prim MST", func() (*graph.Graph, error) { return algorithms.Prim(g) }},
		{"Kruskal MST", func() (*graph.Graph, error) { return algorithms.Kruskal(g) }},
	}
	for _, r := range runs {
		tree, err := r.run()
		if err != nil {
			log.Fatalw("running algorithm", "algorithm", r.name, "error", err)
		}
		fmt.Printf("\n%s:\n", r.name)
		if err = tree.Render(os.Stdout); err != nil {
			log.Fatalw("rendering result", "algorithm", r.name, "error", err)
		}
	}

	log.Infow("demonstration completed", "algorithms", len(runs))
}

// buildSample assembles the demonstration graph: five vertices,
// six weighted edges, connected, with one pendant vertex (4).
func buildSample() (*graph.Graph, error) {
	g, err := graph.New(5)
	if err != nil {
		return nil, err
	}
	edges := []struct {
		src, dest int
		weight    int64
	}{
		{0, 1, 4},
		{0, 2, 1},
		{1, 2, 2},
		{1, 3, 5},
		{2, 3, 8},
		{3, 4, 3},
	}
	for _, e := range edges {
		if err = g.AddEdge(e.src, e.dest, e.weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
