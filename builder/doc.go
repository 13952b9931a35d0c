// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.Graph fixtures: paths, cycles,
// stars, complete graphs, grids and random sparse graphs.
//
// Constructors compose. BuildGraph creates one graph and applies them in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
//		builder.Path(500),               // spanning backbone
//		builder.RandomSparse(500, 0.01), // extra random edges
//	)
//
// Determinism: equal options, seed and constructor order yield identical graphs,
// including edge creation order (and therefore core edge IDs).
//
// Errors:
//   - ErrTooFewVertices: a size parameter is below its minimum.
//   - ErrInvalidProbability: RandomSparse p outside [0,1].
//   - ErrNeedRandSource: RandomSparse with 0<p<1 and no WithSeed / WithRand.
//   - ErrConstructFailed: a nil constructor was passed to BuildGraph.
package builder
