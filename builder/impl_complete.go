// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected graphs get one edge per pair i<j; directed graphs get both
//     arcs i→j and j→i, each with its own weight draw.
//   - No self-loops.
//
// Complexity: O(n²) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, i, j)
				if g.Directed() {
					link(g, cfg, j, i)
				}
			}
		}

		return nil
	}
}
