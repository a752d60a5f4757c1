package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/heap"
)

// ExampleIndexed shows decrease-key on a min-heap of vertex labels.
func ExampleIndexed() {
	h := heap.NewMin[string, int]()
	_ = h.Insert("A", 7)
	_ = h.Insert("B", 3)
	_ = h.Insert("C", 5)

	// C was discovered via a cheaper path.
	_ = h.UpdatePriority("C", 1)

	for !h.IsEmpty() {
		k, p, _ := h.ExtractTop()
		fmt.Println(k, p)
	}

	// Output:
	// C 1
	// B 3
	// A 7
}
