package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
)

// ExampleNewMinTupleHeap shows a uniform-cost frontier: (cost, row, col)
// entries leave in increasing cost order regardless of their payload.
func ExampleNewMinTupleHeap() {
	h, _ := frontier.NewMinTupleHeap(3)
	_ = h.Push(frontier.Tuple{7, 0, 1})
	_ = h.Push(frontier.Tuple{2, 1, 0})
	_ = h.Push(frontier.Tuple{4, 1, 1})

	for !h.IsEmpty() {
		e, _ := h.Pop()
		fmt.Printf("cost=%d cell=(%d,%d)\n", e[0], e[1], e[2])
	}
	// Output:
	// cost=2 cell=(1,0)
	// cost=4 cell=(1,1)
	// cost=7 cell=(0,1)
}
