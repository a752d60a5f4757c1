// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) has label r*cols + c (row-major).
//   - 4-neighborhood: right and down edges; directed graphs also get the
//     reverse arcs so every cell can reach every other.
//
// Complexity: O(rows*cols) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		addVertices(g, rows*cols)
		id := func(r, c int) int { return r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					link(g, cfg, u, id(r, c+1))
					if g.Directed() {
						link(g, cfg, id(r, c+1), u)
					}
				}
				if r+1 < rows {
					link(g, cfg, u, id(r+1, c))
					if g.Directed() {
						link(g, cfg, id(r+1, c), u)
					}
				}
			}
		}

		return nil
	}
}
