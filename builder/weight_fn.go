// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn says otherwise.
const DefaultEdgeWeight int64 = 1

// WeightFn draws an edge weight. rng may be nil when no RNG was configured.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Without an RNG it returns min.
// The full range [0, math.MaxInt64] is drawn with rng.Int63.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		if max-min == math.MaxInt64 {
			return rng.Int63()
		}

		return min + rng.Int63n(max-min+1)
	}
}
