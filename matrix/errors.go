// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go - sentinel errors. Callers branch with errors.Is; call sites
// attach the operation name and indices with %w.

package matrix

import "errors"

var (
	// ErrBadShape indicates negative dimensions or a nil matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates a non-square matrix where n×n is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfBounds indicates a row or column outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilGraph indicates AllPairs was given a nil graph.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrNegativeCycle indicates a diagonal entry became negative during
	// the closure, i.e. some vertex lies on a negative-cost cycle.
	ErrNegativeCycle = errors.New("matrix: negative cycle detected")
)
