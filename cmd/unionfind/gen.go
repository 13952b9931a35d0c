// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/unionfind/builder"
	"github.com/katalvlaran/unionfind/core"
	"github.com/katalvlaran/unionfind/internal/problem"
)

var errUnknownTopology = errors.New("unknown topology")

func newGenCmd() *cobra.Command {
	var (
		topology   string
		name       string
		n          int
		rows, cols int
		p          float64
		seed       int64
		maxWeight  int64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a link-graph problem file on stdout",
		Long: `Generates a weighted graph and prints it as a problem file usable by
"components" and "mst". Topologies: path, cycle, star, complete, grid, random.
Weights are drawn uniformly from [1, --max-weight] with --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxWeight < 1 {
				return fmt.Errorf("--max-weight must be at least 1, got %d", maxWeight)
			}
			con, err := topologyConstructor(topology, n, rows, cols, p)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithWeighted()},
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithWeightFn(builder.UniformWeightFn(1, maxWeight)),
				},
				con,
			)
			if err != nil {
				return err
			}
			logger.Debug("Generated graph",
				zap.String("topology", topology),
				zap.Int("vertices", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()))

			if name == "" {
				name = topology
			}
			return problem.Encode(cmd.OutOrStdout(), problem.FromGraph(name, g))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&topology, "topology", "random", "path, cycle, star, complete, grid or random")
	flags.StringVar(&name, "name", "", "problem name (defaults to the topology)")
	flags.IntVarP(&n, "vertices", "n", 10, "number of vertices")
	flags.IntVar(&rows, "rows", 3, "grid rows")
	flags.IntVar(&cols, "cols", 3, "grid columns")
	flags.Float64VarP(&p, "probability", "p", 0.3, "edge probability for random")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.Int64Var(&maxWeight, "max-weight", 10, "largest edge weight")

	return cmd
}

func topologyConstructor(topology string, n, rows, cols int, p float64) (builder.Constructor, error) {
	switch topology {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		return builder.Grid(rows, cols), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownTopology, topology)
	}
}
