// SPDX-License-Identifier: MIT
// Package: lvlpath/heap
//
// types.go: Item, comparator type and sentinel errors for the indexed heap.

package heap

import "errors"

// Sentinel errors for heap operations. Every one of them signals a caller
// contract violation; the heap is left untouched when they are returned.
var (
	// ErrEmptyHeap is returned by ExtractTop and Peek on an empty heap.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrDuplicateKey is returned when a key is inserted twice.
	// Use UpdatePriority to change the priority of a present key.
	ErrDuplicateKey = errors.New("heap: key already present")

	// ErrKeyNotFound is returned by UpdatePriority and Remove for absent keys.
	ErrKeyNotFound = errors.New("heap: key not found")

	// ErrNilComparator is returned by New when less is nil.
	ErrNilComparator = errors.New("heap: comparator is nil")
)

// Item is a (key, priority) pair stored in the heap.
type Item[K comparable, P any] struct {
	Key      K
	Priority P
}

// Less reports whether priority a must be extracted strictly before b.
// It decides between a min-heap and a max-heap.
type Less[P any] func(a, b P) bool
