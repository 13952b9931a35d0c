// SPDX-License-Identifier: MIT

package problem_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/core"
	"github.com/katalvlaran/unionfind/gridgraph"
	"github.com/katalvlaran/unionfind/internal/problem"
)

const full = `
name: demo
size: 10
edges:
  - [1, 2]
  - [2, 5]
queries:
  - [1, 5]
links:
  - {from: A, to: B, weight: 3}
  - {from: B, to: C, weight: 1}
vertices: [Z]
matrix:
  - [1, 0]
  - [0, 1]
grid:
  - [0, 2]
  - [2, 0]
diagonal: true
threshold: 2
match_values: true
`

func TestDecode_Full(t *testing.T) {
	p, err := problem.Decode([]byte(full))
	require.NoError(t, err)

	two := 2
	want := &problem.Problem{
		Name:    "demo",
		Size:    10,
		Edges:   [][2]int{{1, 2}, {2, 5}},
		Queries: [][2]int{{1, 5}},
		Links: []problem.Link{
			{From: "A", To: "B", Weight: 3},
			{From: "B", To: "C", Weight: 1},
		},
		Vertices:  []string{"Z"},
		Matrix:    [][]int{{1, 0}, {0, 1}},
		Grid:      [][]int{{0, 2}, {2, 0}},
		Diagonal:  true,
		Threshold: &two,
		Match:     true,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Empty", "", problem.ErrEmptyFile},
		{"Blank", "  \n\t\n", problem.ErrEmptyFile},
		{"CommentOnly", "# nothing here\n", problem.ErrEmptyFile},
		{"TwoDocuments", "size: 1\n---\nsize: 2\n", problem.ErrMultipleDocuments},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := problem.Decode([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, p)
		})
	}
}

func TestDecode_Strict(t *testing.T) {
	_, err := problem.Decode([]byte("size: 3\nedge:\n  - [0, 1]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edge")

	_, err = problem.Decode([]byte("size: 3\nedges:\n  - [0, 1, 2]\n"))
	assert.Error(t, err, "edges are pairs")

	_, err = problem.Decode([]byte("size: three\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 5\nedges:\n  - [0, 1]\n"), 0o644))

	p, err := problem.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Path)
	assert.Equal(t, "ring", p.Name, "name defaults to the file name")
	assert.Equal(t, 5, p.Size)
	assert.Equal(t, [][2]int{{0, 1}}, p.Edges)
}

func TestLoad_ErrorsCarryPath(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.yaml")
	_, err := problem.Load(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = problem.Load(empty)
	assert.ErrorIs(t, err, problem.ErrEmptyFile)
	assert.Contains(t, err.Error(), empty)
}

func TestRequire(t *testing.T) {
	p := &problem.Problem{Edges: [][2]int{{0, 1}}, Matrix: [][]int{{1}}}

	assert.NoError(t, p.Require())
	assert.NoError(t, p.Require("edges", "matrix"))
	assert.ErrorIs(t, p.Require("edges", "links"), problem.ErrMissingSection)
	assert.ErrorIs(t, p.Require("grid"), problem.ErrMissingSection)
	assert.ErrorIs(t, p.Require("nodes"), problem.ErrUnknownSection)
}

func TestGraph(t *testing.T) {
	p, err := problem.Decode([]byte(full))
	require.NoError(t, err)

	g, err := p.Graph()
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.False(t, g.Directed())
	assert.Equal(t, []string{"A", "B", "C", "Z"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("C", "B"))
}

func TestGraph_DuplicateLink(t *testing.T) {
	p := &problem.Problem{Links: []problem.Link{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "A", Weight: 2},
	}}

	_, err := p.Graph()
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Contains(t, err.Error(), "link #1")
}

func TestGridOptions(t *testing.T) {
	assert.Equal(t, gridgraph.DefaultGridOptions(), (&problem.Problem{}).GridOptions())

	zero := 0
	p := &problem.Problem{Diagonal: true, Threshold: &zero, Match: true}
	assert.Equal(t, gridgraph.GridOptions{
		LandThreshold: 0,
		Conn:          gridgraph.Conn8,
		MatchValues:   true,
	}, p.GridOptions())
}

// TestFromGraph_EncodeDecode writes a graph out and loads it back.
func TestFromGraph_EncodeDecode(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	p := problem.FromGraph("triangle-ish", g)
	assert.Equal(t, []string{"Z"}, p.Vertices)

	var buf bytes.Buffer
	require.NoError(t, problem.Encode(&buf, p))
	assert.NotContains(t, buf.String(), "size:", "empty sections are omitted")

	back, err := problem.Decode(buf.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(p, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	g2, err := back.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), g2.Vertices())
	assert.Equal(t, g.EdgeCount(), g2.EdgeCount())
}
