// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unionfind/connectivity"
	"github.com/katalvlaran/unionfind/core"
	"github.com/katalvlaran/unionfind/dsu"
	"github.com/katalvlaran/unionfind/gridgraph"
	"github.com/katalvlaran/unionfind/internal/problem"
	"github.com/katalvlaran/unionfind/prim_kruskal"
)

func solveUnion(p *problem.Problem) ([]string, error) {
	f, err := dsu.New(p.Size)
	if err != nil {
		return nil, err
	}
	for i, e := range p.Edges {
		if _, err := f.Union(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	lines := []string{
		fmt.Sprintf("components: %d", f.Count()),
		"groups: " + f.String(),
	}
	for _, q := range p.Queries {
		ok, err := f.Connected(q[0], q[1])
		if err != nil {
			return nil, fmt.Errorf("query (%d, %d): %w", q[0], q[1], err)
		}
		lines = append(lines, fmt.Sprintf("connected(%d, %d): %t", q[0], q[1], ok))
	}

	return lines, nil
}

func solveCycle(p *problem.Problem) ([]string, error) {
	edge, found, err := connectivity.RedundantEdge(p.Size, indexEdges(p))
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{"acyclic"}, nil
	}

	return []string{fmt.Sprintf("redundant edge: (%d, %d)", edge[0], edge[1])}, nil
}

func solveTree(p *problem.Problem) ([]string, error) {
	ok, err := connectivity.IsValidTree(p.Size, indexEdges(p))
	if err != nil {
		return nil, err
	}

	return []string{fmt.Sprintf("valid tree: %t", ok)}, nil
}

func solveProvinces(p *problem.Problem) ([]string, error) {
	if err := p.Require("matrix"); err != nil {
		return nil, err
	}
	n, err := connectivity.CountProvinces(p.Matrix)
	if err != nil {
		return nil, err
	}

	return []string{fmt.Sprintf("provinces: %d", n)}, nil
}

func solveComponents(p *problem.Problem) ([]string, error) {
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}
	comps, err := connectivity.Components(g)
	if err != nil {
		return nil, err
	}
	cyclic, err := connectivity.HasCycle(g)
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf("components: %d", len(comps))}
	for _, c := range comps {
		lines = append(lines, "{"+strings.Join(c, " ")+"}")
	}
	lines = append(lines, fmt.Sprintf("cycle: %t", cyclic))

	return lines, nil
}

func solveMST(method, root string) solver {
	return func(p *problem.Problem) ([]string, error) {
		if err := p.Require("links"); err != nil {
			return nil, err
		}
		g, err := p.Graph()
		if err != nil {
			return nil, err
		}

		start := root
		if start == "" {
			start = g.Vertices()[0]
		}
		edges, total, err := prim_kruskal.Compute(g,
			prim_kruskal.WithMethod(method),
			prim_kruskal.WithRoot(start),
		)
		if err != nil {
			return nil, err
		}

		return []string{
			fmt.Sprintf("total: %d", total),
			"edges: " + formatEdges(edges),
		}, nil
	}
}

func solveIslands(bridge bool) solver {
	return func(p *problem.Problem) ([]string, error) {
		if err := p.Require("grid"); err != nil {
			return nil, err
		}
		gg, err := gridgraph.NewGridGraph(p.Grid, p.GridOptions())
		if err != nil {
			return nil, err
		}

		comps := gg.ConnectedComponents()
		lines := []string{fmt.Sprintf("islands: %d", len(comps))}
		for i, comp := range comps {
			lines = append(lines, fmt.Sprintf("island %d: %s", i, formatCells(gg, comp)))
		}
		if bridge && len(comps) >= 2 {
			path, cost, err := gg.ExpandIsland(0, 1)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fmt.Sprintf("bridge 0-1: cost %d via %s", cost, formatCells(gg, path)))
		}

		return lines, nil
	}
}

// indexEdges converts the decoded pairs for the index-based connectivity calls.
func indexEdges(p *problem.Problem) []connectivity.Edge {
	out := make([]connectivity.Edge, len(p.Edges))
	for i, e := range p.Edges {
		out[i] = connectivity.Edge(e)
	}

	return out
}

// formatEdges renders "A-B(2) B-C(1)".
func formatEdges(edges []core.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("%s-%s(%d)", e.From, e.To, e.Weight)
	}

	return strings.Join(parts, " ")
}

// formatCells renders row-major indices as "(x,y) (x,y)".
func formatCells(gg *gridgraph.GridGraph, cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		x, y := gg.Coordinate(c)
		parts[i] = fmt.Sprintf("(%d,%d)", x, y)
	}

	return strings.Join(parts, " ")
}
