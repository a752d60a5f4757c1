package bfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlpath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[L comparable] struct {
	id    L
	depth int
}

// walker encapsulates mutable BFS state.
type walker[L comparable] struct {
	graph   *core.Graph[L]
	opts    Options
	onVisit func(L, int) error
	filter  func(L, L) bool
	queue   []queueItem[L]
	res     *Result[L]
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, or the
// wrapped error of an OnVisit hook. Arc costs are ignored.
func BFS[L comparable](g *core.Graph[L], start L, opts ...Option) (*Result[L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[L]{
		graph:   g,
		opts:    o,
		onVisit: func(L, int) error { return nil },
		filter:  func(L, L) bool { return true },
		res: &Result[L]{
			Depth:  make(map[L]int),
			Parent: make(map[L]L),
			Start:  start,
		},
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(L, int) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit label type %T", ErrOptionViolation, o.onVisit)
		}
		w.onVisit = fn
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(L, L) bool)
		if !ok {
			return nil, fmt.Errorf("%w: FilterNeighbor label type %T", ErrOptionViolation, o.filter)
		}
		w.filter = fn
	}

	w.enqueue(start, 0)
	err := w.loop()
	o.Logger.Debug("bfs: done",
		zap.Int("visited", len(w.res.Order)),
		zap.Int("max_depth", o.MaxDepth),
		zap.Error(err))

	return w.res, err
}

func (w *walker[L]) enqueue(id L, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[L]{id: id, depth: d})
}

func (w *walker[L]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.onVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if _, seen := w.res.Depth[nbr]; seen || !w.filter(item.id, nbr) {
				continue
			}
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, next)
		}
	}
	return nil
}

// Reachable returns every vertex reachable from source by following arcs,
// source included. It never fails: an unknown source yields {source}.
func Reachable[L comparable](g *core.Graph[L], source L) map[L]struct{} {
	seen := map[L]struct{}{source: {}}
	if g == nil {
		return seen
	}
	queue := []L{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	return seen
}
