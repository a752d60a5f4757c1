// SPDX-License-Identifier: MIT
// Package: lvlpath/heap
//
// indexed.go: binary heap over (key, priority) pairs with a key→index map.
//
// Invariants:
//   - For every i > 0: !less(items[i].Priority, items[parent(i)].Priority).
//   - pos[items[i].Key] == i for every i, and len(pos) == len(items).
//
// Both invariants are restored by swap(), which is the only place that moves
// items inside the backing slice.

package heap

import (
	"cmp"
	"fmt"
)

// Indexed is a binary heap keyed by unique K values with priorities P.
// It supports O(log n) Insert, ExtractTop, UpdatePriority and Remove; the
// key→index map gives O(1) lookup of a key's slot.
//
// Indexed is not safe for concurrent use.
type Indexed[K comparable, P any] struct {
	items []Item[K, P]
	pos   map[K]int
	less  Less[P]
}

// New builds a heap from the initial items in O(n) (bottom-up sift-down).
// less(a, b) must return true iff a has strictly higher priority than b.
// The items slice is copied; the caller keeps ownership of it.
func New[K comparable, P any](items []Item[K, P], less Less[P]) (*Indexed[K, P], error) {
	if less == nil {
		return nil, ErrNilComparator
	}
	h := &Indexed[K, P]{
		items: make([]Item[K, P], len(items)),
		pos:   make(map[K]int, len(items)),
		less:  less,
	}
	copy(h.items, items)
	for i, it := range h.items {
		if _, dup := h.pos[it.Key]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, it.Key)
		}
		h.pos[it.Key] = i
	}
	h.init()

	return h, nil
}

// NewMin returns an empty heap that extracts the smallest priority first.
func NewMin[K comparable, P cmp.Ordered]() *Indexed[K, P] {
	h, _ := New[K, P](nil, func(a, b P) bool { return a < b })
	return h
}

// NewMax returns an empty heap that extracts the greatest priority first.
func NewMax[K comparable, P cmp.Ordered]() *Indexed[K, P] {
	h, _ := New[K, P](nil, func(a, b P) bool { return a > b })
	return h
}

// Len returns the number of items in the heap.
func (h *Indexed[K, P]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Indexed[K, P]) IsEmpty() bool { return len(h.items) == 0 }

// Contains reports whether key is present.
func (h *Indexed[K, P]) Contains(key K) bool {
	_, ok := h.pos[key]
	return ok
}

// Priority returns the current priority of key.
func (h *Indexed[K, P]) Priority(key K) (P, bool) {
	i, ok := h.pos[key]
	if !ok {
		var zero P
		return zero, false
	}
	return h.items[i].Priority, true
}

// Peek returns the top item without removing it.
func (h *Indexed[K, P]) Peek() (K, P, error) {
	if len(h.items) == 0 {
		var (
			k K
			p P
		)
		return k, p, ErrEmptyHeap
	}
	return h.items[0].Key, h.items[0].Priority, nil
}

// Insert adds key with priority p. Inserting a present key fails with
// ErrDuplicateKey and leaves the heap unchanged.
// Complexity: O(log n).
func (h *Indexed[K, P]) Insert(key K, p P) error {
	if _, ok := h.pos[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	h.items = append(h.items, Item[K, P]{Key: key, Priority: p})
	last := len(h.items) - 1
	h.pos[key] = last
	h.up(last)

	return nil
}

// ExtractTop removes and returns the item with the highest priority.
// Complexity: O(log n).
func (h *Indexed[K, P]) ExtractTop() (K, P, error) {
	n := len(h.items) - 1
	if n < 0 {
		var (
			k K
			p P
		)
		return k, p, ErrEmptyHeap
	}
	h.swap(0, n)
	top := h.items[n]
	h.items[n] = Item[K, P]{}
	h.items = h.items[:n]
	delete(h.pos, top.Key)
	h.down(0)

	return top.Key, top.Priority, nil
}

// UpdatePriority changes the priority of key and restores heap order:
// sift-up when p ranks better than the old priority, sift-down otherwise.
// This is the decrease-key (or increase-key) operation used by Dijkstra.
// Complexity: O(log n).
func (h *Indexed[K, P]) UpdatePriority(key K, p P) error {
	i, ok := h.pos[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	old := h.items[i].Priority
	h.items[i].Priority = p
	if h.less(p, old) {
		h.up(i)
	} else {
		h.down(i)
	}

	return nil
}

// Remove deletes key from the heap and returns its priority.
// Complexity: O(log n).
func (h *Indexed[K, P]) Remove(key K) (P, error) {
	i, ok := h.pos[key]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	n := len(h.items) - 1
	p := h.items[i].Priority
	if i != n {
		h.swap(i, n)
	}
	h.items[n] = Item[K, P]{}
	h.items = h.items[:n]
	delete(h.pos, key)
	if i < n && !h.down(i) {
		h.up(i)
	}

	return p, nil
}

// Snapshot returns a copy of the items in heap order (not sorted order).
func (h *Indexed[K, P]) Snapshot() []Item[K, P] {
	out := make([]Item[K, P], len(h.items))
	copy(out, h.items)
	return out
}

// Valid reports whether both the heap order and the key→index map are
// consistent. It is O(n) and meant for tests and debugging.
func (h *Indexed[K, P]) Valid() bool {
	if len(h.pos) != len(h.items) {
		return false
	}
	for i, it := range h.items {
		if j, ok := h.pos[it.Key]; !ok || j != i {
			return false
		}
		if i > 0 && h.less(it.Priority, h.items[(i-1)/2].Priority) {
			return false
		}
	}
	return true
}

func (h *Indexed[K, P]) init() {
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// swap exchanges two slots and their index entries together.
func (h *Indexed[K, P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].Key] = i
	h.pos[h.items[j].Key] = j
}

func (h *Indexed[K, P]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.items[j].Priority, h.items[i].Priority) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the item at i0 towards the leaves and reports whether it moved.
func (h *Indexed[K, P]) down(i0 int) bool {
	n := len(h.items)
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.items[j2].Priority, h.items[j1].Priority) {
			j = j2 // right child
		}
		if !h.less(h.items[j].Priority, h.items[i].Priority) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
