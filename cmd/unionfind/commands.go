// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/unionfind/prim_kruskal"
)

func newUnionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union FILE...",
		Short: "Union the edges of each file and report the partition",
		Long: `Builds a forest over 0..size-1, unions every pair under "edges",
then prints the component count, the groups and the answer to each "queries" pair.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveUnion)
		},
	}
}

func newCycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle FILE...",
		Short: "Report the first edge that closes a cycle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveCycle)
		},
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE...",
		Short: "Check whether the edges form a tree over 0..size-1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveTree)
		},
	}
}

func newProvincesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provinces FILE...",
		Short: "Count the connected groups of an adjacency matrix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveProvinces)
		},
	}
}

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components FILE...",
		Short: "List the connected components of the link graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveComponents)
		},
	}
}

func newMSTCmd() *cobra.Command {
	var method, root string
	cmd := &cobra.Command{
		Use:   "mst FILE...",
		Short: "Compute a minimum spanning tree of the link graph",
		Long: `Computes a minimum spanning tree over "links" with Kruskal (default) or Prim.
Prim starts at --root, or at the smallest vertex ID when --root is empty.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveMST(method, root))
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "MST algorithm: kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "start vertex for prim")

	return cmd
}

func newIslandsCmd() *cobra.Command {
	var bridge bool
	cmd := &cobra.Command{
		Use:   "islands FILE...",
		Short: "Label the islands of a grid",
		Long: `Labels the land cells of "grid" (value >= threshold, default 1) into islands.
"diagonal: true" selects 8-connectivity; "match_values: true" keeps differently valued
regions apart. With --bridge, the cheapest water crossing between islands 0 and 1 is shown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, solveIslands(bridge))
		},
	}
	cmd.Flags().BoolVar(&bridge, "bridge", false, "show the cheapest bridge between the first two islands")

	return cmd
}
