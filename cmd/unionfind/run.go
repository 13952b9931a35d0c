// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unionfind/internal/problem"
)

// solver turns one problem into the lines of its report.
type solver func(p *problem.Problem) ([]string, error)

// runFiles loads and solves every path with at most jobs files in flight.
// The first failure cancels files not yet started and is returned with its path.
// Reports are written to the command's output in argument order, only when
// every file succeeded.
func runFiles(cmd *cobra.Command, paths []string, solve solver) error {
	reports := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("Solving problem", zap.String("command", cmd.Name()), zap.String("file", path))

			p, err := problem.Load(path)
			if err != nil {
				logger.Error("Problem file rejected", zap.String("file", path), zap.Error(err))
				return err
			}
			lines, err := solve(p)
			if err != nil {
				logger.Error("Problem failed", zap.String("file", path), zap.Error(err))
				return fmt.Errorf("%s: %w", path, err)
			}

			reports[i] = append([]string{"[" + p.Name + "]"}, lines...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, report := range reports {
		for _, line := range report {
			fmt.Fprintln(out, line)
		}
	}
	logger.Debug("All problems solved", zap.Int("files", len(paths)))

	return nil
}
