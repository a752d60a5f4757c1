// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices 0..n-1; edges i → (i+1)%n for i = 0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		addVertices(g, n)
		for i := 0; i < n; i++ {
			link(g, cfg, i, (i+1)%n)
		}

		return nil
	}
}
