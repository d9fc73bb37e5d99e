package frontier

import (
	"cmp"
	"fmt"
)

// Heap is a binary heap stored in a 0-indexed slice.
// For index i: parent = (i-1)/2, children = 2i+1 and 2i+2.
//
// Order is defined by before(a, b): true when a must leave the heap ahead
// of b. A min-heap uses a < b, a max-heap a > b. The optional validate hook
// rejects elements the comparator cannot order (see tuple heaps).
type Heap[T any] struct {
	items    []T
	before   func(a, b T) bool
	validate func(T) error
	kind     Kind
}

// NewHeap returns an empty heap ordered by before.
// A nil before is a programmer error and panics here, never later.
func NewHeap[T any](before func(a, b T) bool) *Heap[T] {
	if before == nil {
		panic("frontier: NewHeap requires a comparator")
	}
	return &Heap[T]{before: before, kind: -1}
}

// NewMinHeap returns a numeric heap that pops the smallest value first.
func NewMinHeap[T cmp.Ordered]() *Heap[T] {
	h := NewHeap(func(a, b T) bool { return a < b })
	h.kind = KindMinNumericHeap
	return h
}

// NewMaxHeap returns a numeric heap that pops the largest value first.
func NewMaxHeap[T cmp.Ordered]() *Heap[T] {
	h := NewHeap(func(a, b T) bool { return a > b })
	h.kind = KindMaxNumericHeap
	return h
}

// Push inserts item and sifts it toward the root while it must precede
// its parent.
// Returns ErrInvalidElement if the heap's validator rejects item.
// Complexity: O(log n).
func (h *Heap[T]) Push(item T) error {
	if h.validate != nil {
		if err := h.validate(item); err != nil {
			return err
		}
	}
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)

	return nil
}

// Pop removes the root: the last item replaces it and is sifted down,
// at each level towards the child that must come first.
// Returns ErrEmptyContainer when the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, fmt.Errorf("%w: pop on empty %s", ErrEmptyContainer, h.name())
	}
	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}

	return top, nil
}

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty %s", ErrEmptyContainer, h.name())
	}
	return h.items[0], nil
}

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of held items.
func (h *Heap[T]) Len() int { return len(h.items) }

// Clear drops all items.
func (h *Heap[T]) Clear() { h.items = nil }

// String renders the backing array in heap layout.
func (h *Heap[T]) String() string {
	return fmt.Sprint(h.items)
}

func (h *Heap[T]) up(child int) {
	for child > 0 {
		parent := (child - 1) / 2
		if !h.before(h.items[child], h.items[parent]) {
			break
		}
		h.items[child], h.items[parent] = h.items[parent], h.items[child]
		child = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		c := 2*i + 1
		if c >= n {
			return
		}
		if r := c + 1; r < n && h.before(h.items[r], h.items[c]) {
			c = r
		}
		if !h.before(h.items[c], h.items[i]) {
			return
		}
		h.items[i], h.items[c] = h.items[c], h.items[i]
		i = c
	}
}

func (h *Heap[T]) name() string {
	if h.kind < 0 {
		return "heap"
	}
	return h.kind.String()
}
