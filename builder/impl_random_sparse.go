// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - p ∈ (0,1) requires an rng (WithSeed/WithRand); p = 0 and p = 1 are
//     deterministic and work without one.
//   - Undirected: each pair i<j is tested once. Directed: each ordered pair
//     i≠j is tested once. No self-loops.
//   - Pairs are visited in ascending (i, j) order, so a fixed seed always
//     yields the same graph.
//
// Complexity: O(n²) time.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds a random graph where each candidate edge is kept
// with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, n)
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if keep() {
					link(g, cfg, i, j)
				}
			}
		}

		return nil
	}
}
