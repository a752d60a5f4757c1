// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go - functional options for AllPairs.

package matrix

import "go.uber.org/zap"

// Options configures AllPairs.
//
// ZeroDiagonal – seed dist(v,v) with min(0, cost(v,v)) before the closure.
// Logger       – debug tracing; never nil after DefaultOptions.
type Options struct {
	ZeroDiagonal bool
	Logger       *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions leaves the diagonal as the graph defines it and logs nothing.
func DefaultOptions() Options {
	return Options{
		ZeroDiagonal: false,
		Logger:       zap.NewNop(),
	}
}

// WithZeroDiagonal makes every vertex reach itself at cost 0.
// Without it dist(v,v) is the cheapest cycle through v (+Inf if none).
func WithZeroDiagonal() Option {
	return func(o *Options) {
		o.ZeroDiagonal = true
	}
}

// WithLogger sets the zap logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
