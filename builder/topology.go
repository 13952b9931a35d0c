// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/unionfind/core"
)

// Center is the fixed ID of the hub vertex added by Star.
const Center = "Center"

// Path builds P_n: edges i→i+1 for i = 0..n-2 (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Path"
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", method, n, ErrTooFewVertices)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(method, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: edges i→(i+1)%n for i = 0..n-1 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Cycle"
		if n < 3 {
			return fmt.Errorf("%s: n=%d < min=3: %w", method, n, ErrTooFewVertices)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(method, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub "Center" joined to n-1 leaves 0..n-2 (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Star"
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", method, n, ErrTooFewVertices)
		}
		if err := g.AddVertex(Center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, Center, err)
		}
		if err := addVertices(method, g, cfg, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(method, g, cfg, Center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n: edges i→j for all i < j (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Complete"
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(method, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice with IDs "r,c" (rows, cols ≥ 1).
// Edges go right then down from each cell in row-major order.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Grid"
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d cols=%d < min=1: %w", method, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", method, id(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(method, g, cfg, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(method, g, cfg, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse adds vertices 0..n-1 and includes each pair i<j independently
// with probability p (n ≥ 1, 0 ≤ p ≤ 1). On directed graphs both orders are tried.
// Pairs that already have an edge are skipped unless g is a multigraph, so
// RandomSparse can densify a graph built by an earlier constructor.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "RandomSparse"
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}

		// p ∈ {0,1} needs no RNG; the outcome is fixed.
		keep := func() bool {
			if p == 0 || p == 1 {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		try := func(u, v string) error {
			if !keep() {
				return nil
			}
			if !g.Multigraph() && g.HasEdge(u, v) {
				return nil
			}
			return addEdge(method, g, cfg, u, v)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := try(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
				if g.Directed() {
					if err := try(cfg.idFn(j), cfg.idFn(i)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
