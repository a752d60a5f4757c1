package bfs

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrStartVertexNotFound is returned when the start label is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned when the graph pointer is nil.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an Option received an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the traversal never reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the hooks and limits of one traversal. Hooks receive the
// label type as any so Option stays non-generic; BFS asserts them back.
//
// MaxDepth – 0 means unlimited.
// Logger   – debug tracing; never nil after DefaultOptions.
type Options struct {
	MaxDepth int
	Logger   *zap.Logger

	onVisit any // func(L, int) error
	filter  any // func(cur, nbr L) bool
	err     error
}

// DefaultOptions returns unlimited depth, no hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		Logger:   zap.NewNop(),
	}
}

// WithMaxDepth stops exploring beyond depth d. d == 0 means no limit;
// d < 0 makes BFS fail with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips arcs cur→nbr for which fn returns false.
func WithFilterNeighbor[L comparable](fn func(cur, nbr L) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WithOnVisit calls fn when a vertex is dequeued; a non-nil error aborts
// the traversal and is returned wrapped.
func WithOnVisit[L comparable](fn func(v L, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
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

// Result holds the BFS tree.
//
// Order  – vertices in dequeue order.
// Depth  – hop count from the start for every reached vertex.
// Parent – BFS-tree predecessor; the start has no entry.
type Result[L comparable] struct {
	Order  []L
	Depth  map[L]int
	Parent map[L]L
	Start  L
}

// Visited reports whether v was reached.
func (r *Result[L]) Visited(v L) bool {
	_, ok := r.Depth[v]
	return ok
}

// Reachable returns the set of reached vertices, start included.
func (r *Result[L]) Reachable() map[L]struct{} {
	out := make(map[L]struct{}, len(r.Depth))
	for v := range r.Depth {
		out[v] = struct{}{}
	}
	return out
}

// PathTo returns the hop-minimal path start → … → dest.
func (r *Result[L]) PathTo(dest L) ([]L, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := make([]L, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
