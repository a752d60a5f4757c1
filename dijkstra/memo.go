package dijkstra

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/lvlpath/core"
)

var (
	// ErrBadMemoSize indicates a non-positive memo capacity.
	ErrBadMemoSize = errors.New("dijkstra: memo size must be positive")

	// ErrMemoTarget indicates WithTarget was passed to NewMemo. A run that
	// stops at a target leaves upper bounds, not distances, in its Result.
	ErrMemoTarget = errors.New("dijkstra: memo runs cannot stop at a target")
)

// Memo caches single-source results per source label for one graph.
// It replaces ad-hoc module-level caches: the caller owns the Memo and
// scopes it to a query session (e.g. all pairwise distances of a set).
//
// Entries are evicted with a 2Q policy once size sources are cached.
// The graph must not change while the Memo is in use.
type Memo[L comparable] struct {
	g     *core.Graph[L]
	opts  []Option
	cache *lru.TwoQueueCache
	runs  int
}

// NewMemo returns a Memo over g holding at most size source results.
// opts are applied to every underlying Dijkstra run; WithTarget is
// rejected with ErrMemoTarget. With WithMaxDistance, vertices beyond the
// cap read as +Inf.
func NewMemo[L comparable](g *core.Graph[L], size int, opts ...Option) (*Memo[L], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMemoSize, size)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.target != nil {
		return nil, ErrMemoTarget
	}
	c, err := lru.New2Q(size)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: memo cache: %w", err)
	}

	return &Memo[L]{g: g, opts: opts, cache: c}, nil
}

// Distances returns the single-source result for src, computing it on
// first use.
func (m *Memo[L]) Distances(src L) (*Result[L], error) {
	if v, ok := m.cache.Get(src); ok {
		return v.(*Result[L]), nil
	}
	res, err := Dijkstra(m.g, []L{src}, m.opts...)
	if err != nil {
		return nil, err
	}
	m.runs++
	m.cache.Add(src, res)

	return res, nil
}

// Distance returns the shortest distance a→b (+Inf when unreachable).
func (m *Memo[L]) Distance(a, b L) (float64, error) {
	res, err := m.Distances(a)
	if err != nil {
		return 0, err
	}
	return res.Distance(b), nil
}

// Runs returns how many Dijkstra executions the Memo performed.
func (m *Memo[L]) Runs() int { return m.runs }

// Len returns the number of cached sources.
func (m *Memo[L]) Len() int { return m.cache.Len() }

// Purge drops every cached result.
func (m *Memo[L]) Purge() { m.cache.Purge() }
