// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_path.go - Path(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the simple path P_n: 0 → 1 → … → n-1 (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		addVertices(g, n)
		for i := 1; i < n; i++ {
			link(g, cfg, i-1, i)
		}

		return nil
	}
}
