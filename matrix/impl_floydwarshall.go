// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall), in place, with a
//     fixed k → i → j loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path". The diagonal is used as given:
//     callers that want dist(v,v) = 0 must write it before calling.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace closes d over every intermediate vertex.
// Time: O(n³); extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Errors:
//   - ErrBadShape for a nil matrix.
//   - ErrDimensionMismatch for a non-square matrix.
//   - ErrNegativeCycle when a diagonal entry ends below zero. d still holds
//     the relaxed values in that case, but they are not shortest distances.
//
// Complexity: O(n³) time, O(1) extra space.
func FloydWarshall(d *Dense) error {
	if d == nil {
		return fmt.Errorf("%s: nil matrix: %w", opFloydWarshall, ErrBadShape)
	}
	if d.r != d.c {
		return fmt.Errorf("%s: non-square %dx%d: %w", opFloydWarshall, d.r, d.c, ErrDimensionMismatch)
	}

	floydWarshallInPlace(d)

	for i := 0; i < d.r; i++ {
		if v := d.data[i*d.c+i]; v < 0 {
			return fmt.Errorf("%s: dist(%d,%d)=%g: %w", opFloydWarshall, i, i, v, ErrNegativeCycle)
		}
	}

	return nil
}
