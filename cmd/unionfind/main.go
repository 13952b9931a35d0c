// SPDX-License-Identifier: MIT

// Command unionfind runs the disjoint-set algorithms over YAML problem files.
//
// Usage:
//
//	unionfind union FILE...       partition, component count and queries
//	unionfind cycle FILE...       first redundant (cycle-closing) edge
//	unionfind tree FILE...        valid-tree check
//	unionfind provinces FILE...   connected groups of an adjacency matrix
//	unionfind components FILE...  components and cycle check of a link graph
//	unionfind mst FILE...         minimum spanning tree of a link graph
//	unionfind islands FILE...     island labelling of a grid
//	unionfind gen                 generate a link-graph problem file
//
// Files are solved concurrently; reports are printed in argument order.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	jobs    int

	// Logger
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Flags bind to the package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "unionfind",
		Short:        "Disjoint-set forest toolkit",
		Long:         "unionfind answers connectivity questions (components, cycles, trees, MSTs, islands)\nover YAML problem files using a union-by-rank, path-compressing forest.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}

			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&jobs, "jobs", "j", 4, "maximum number of files solved at once")

	root.AddCommand(
		newUnionCmd(),
		newCycleCmd(),
		newTreeCmd(),
		newProvincesCmd(),
		newComponentsCmd(),
		newMSTCmd(),
		newIslandsCmd(),
		newGenCmd(),
	)

	return root
}
