// SPDX-License-Identifier: MIT

// Package problem loads the YAML problem files consumed by the unionfind CLI.
//
// A problem file is a single YAML document decoded in strict mode: unknown
// fields are errors.
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/unionfind/core"
	"github.com/katalvlaran/unionfind/gridgraph"
)

var (
	// ErrEmptyFile indicates the file holds no YAML document.
	ErrEmptyFile = errors.New("problem: empty file")
	// ErrMultipleDocuments indicates more than one YAML document in a file.
	ErrMultipleDocuments = errors.New("problem: multiple YAML documents are not supported")
	// ErrMissingSection indicates a command needs a section the file does not have.
	ErrMissingSection = errors.New("problem: missing section")
	// ErrUnknownSection indicates Require was asked about a section that does not exist.
	ErrUnknownSection = errors.New("problem: unknown section")
)

// Link is a weighted, string-keyed edge.
type Link struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Problem is one decoded problem file. Sections are optional; each command
// checks for the ones it needs with Require.
type Problem struct {
	// Path is the file the problem was loaded from; empty for Decode.
	Path string `yaml:"-"`

	Name     string   `yaml:"name,omitempty"`
	Size     int      `yaml:"size,omitempty"`
	Edges    [][2]int `yaml:"edges,omitempty"`
	Queries  [][2]int `yaml:"queries,omitempty"`
	Links    []Link   `yaml:"links,omitempty"`
	Vertices []string `yaml:"vertices,omitempty"`
	Matrix   [][]int  `yaml:"matrix,omitempty"`

	Grid      [][]int `yaml:"grid,omitempty"`
	Diagonal  bool    `yaml:"diagonal,omitempty"`
	Threshold *int    `yaml:"threshold,omitempty"`
	Match     bool    `yaml:"match_values,omitempty"`
}

// FromGraph captures g as a problem: every edge becomes a link and vertices
// without edges are listed under Vertices, so Graph rebuilds the same graph.
func FromGraph(name string, g *core.Graph) *Problem {
	p := &Problem{Name: name}
	for _, e := range g.Edges() {
		p.Links = append(p.Links, Link{From: e.From, To: e.To, Weight: e.Weight})
	}
	for _, v := range g.Vertices() {
		if nbrs, err := g.Neighbors(v); err == nil && len(nbrs) == 0 {
			p.Vertices = append(p.Vertices, v)
		}
	}

	return p
}

// Encode writes p as a YAML document with two-space indentation.
func Encode(w io.Writer, p *Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return enc.Close()
}

// Load reads and decodes the problem file at path. Errors carry the path.
// When the file has no name, the base file name without extension is used.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return p, nil
}

// Decode parses a single YAML document in strict mode.
func Decode(data []byte) (*Problem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	var extra interface{}
	if err := dec.Decode(&extra); err == nil {
		return nil, ErrMultipleDocuments
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("after first document: %w", err)
	}

	return &p, nil
}

// Require reports ErrMissingSection if any named section is empty.
// Valid names are "edges", "queries", "links", "matrix" and "grid".
func (p *Problem) Require(sections ...string) error {
	for _, s := range sections {
		var present bool
		switch s {
		case "edges":
			present = len(p.Edges) > 0
		case "queries":
			present = len(p.Queries) > 0
		case "links":
			present = len(p.Links) > 0
		case "matrix":
			present = len(p.Matrix) > 0
		case "grid":
			present = len(p.Grid) > 0
		default:
			return fmt.Errorf("%w: %q", ErrUnknownSection, s)
		}
		if !present {
			return fmt.Errorf("%w: %q", ErrMissingSection, s)
		}
	}

	return nil
}

// Graph builds a weighted, undirected core.Graph from Vertices and Links.
// A repeated pair is reported with the offending link's position.
func (p *Problem) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range p.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v, err)
		}
	}
	for i, l := range p.Links {
		if _, err := g.AddEdge(l.From, l.To, l.Weight); err != nil {
			return nil, fmt.Errorf("link #%d: %w", i, err)
		}
	}

	return g, nil
}

// GridOptions maps the grid settings of the file onto gridgraph options.
func (p *Problem) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if p.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	if p.Threshold != nil {
		opts.LandThreshold = *p.Threshold
	}
	opts.MatchValues = p.Match

	return opts
}
