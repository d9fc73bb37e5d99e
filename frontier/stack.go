package frontier

import "fmt"

// Stack is a LIFO container backed by a slice. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends item to the top. Never fails.
// Complexity: amortized O(1).
func (s *Stack[T]) Push(item T) error {
	s.items = append(s.items, item)
	return nil
}

// Pop removes the most recently pushed item.
// Returns ErrEmptyContainer when the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, fmt.Errorf("%w: pop on empty %s", ErrEmptyContainer, KindStack)
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]

	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty %s", ErrEmptyContainer, KindStack)
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of held items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Clear drops all items.
func (s *Stack[T]) Clear() { s.items = nil }

// String renders the items bottom to top.
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.items)
}
