// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– WithReturnPath:   record predecessors for path reconstruction.
//	– WithMaxDistance:  stop once the closest unfinalized vertex is farther.
//	– WithTarget:       stop once a vertex accepted by the predicate is finalized.
//	– WithLogger:       zap logger for debug tracing (default no-op).
package dijkstra

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that the source set is empty.
	ErrNoSource = errors.New("dijkstra: no source vertex given")

	// ErrVertexNotFound indicates a source label that is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative arc cost was detected.
	// Negative costs are unsupported; the scan fails before any relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNaNWeight indicates an arc whose cost is NaN.
	ErrNaNWeight = errors.New("dijkstra: NaN edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested vertex was not reached.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrPathNotRecorded indicates PathTo was called on a result computed
	// without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors were not recorded")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, Result.Prev is populated.
// MaxDistance – vertices farther than this stay at +Inf. Default +Inf.
// Logger      – debug tracing; never nil after DefaultOptions.
type Options struct {
	ReturnPath  bool
	MaxDistance float64
	Logger      *zap.Logger

	// target is type-erased so Option stays non-generic; it holds a
	// func(L) bool for the label type of the current run.
	target any
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no path recording, no distance cap
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
		Logger:      zap.NewNop(),
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops the search once the smallest tentative distance
// exceeds max. Vertices beyond the cap remain at +Inf in the result.
// Panics on a negative or NaN max, as invalid literal configuration.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithTarget stops the search as soon as a vertex satisfying accept is
// finalized. Distances of vertices not yet finalized are upper bounds.
func WithTarget[L comparable](accept func(L) bool) Option {
	return func(o *Options) {
		if accept != nil {
			o.target = accept
		}
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
