package frontier

import "fmt"

// compactThreshold is the minimum dead prefix before Pop considers
// shifting live items to the front of the backing slice.
const compactThreshold = 64

// Queue is a FIFO container backed by a slice with a moving head index,
// so Pop does not shift the remaining items. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item to the rear. Never fails.
// Complexity: amortized O(1).
func (q *Queue[T]) Push(item T) error {
	q.items = append(q.items, item)
	return nil
}

// Pop removes the oldest item.
// Returns ErrEmptyContainer when the queue is empty.
// Complexity: amortized O(1); the dead prefix is reclaimed once it
// outweighs the live part.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.head >= len(q.items) {
		return zero, fmt.Errorf("%w: pop on empty %s", ErrEmptyContainer, KindQueue)
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, nil
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.head >= len(q.items) {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty %s", ErrEmptyContainer, KindQueue)
	}
	return q.items[q.head], nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.head >= len(q.items) }

// Len returns the number of held items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Clear drops all items.
func (q *Queue[T]) Clear() {
	q.items = nil
	q.head = 0
}

// String renders the items front to rear.
func (q *Queue[T]) String() string {
	return fmt.Sprint(q.items[q.head:])
}
