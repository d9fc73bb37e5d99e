package frontier

import "fmt"

// NewMinTupleHeap returns a heap of arity-length tuples that pops the
// smallest slot 0 first. Slots beyond 0 never affect ordering.
// Returns ErrInvalidElement if arity < 1.
func NewMinTupleHeap(arity int) (*Heap[Tuple], error) {
	return newTupleHeap(KindMinTupleHeap, arity, func(a, b Tuple) bool { return a[0] < b[0] })
}

// NewMaxTupleHeap returns a heap of arity-length tuples that pops the
// largest slot 0 first.
// Returns ErrInvalidElement if arity < 1.
func NewMaxTupleHeap(arity int) (*Heap[Tuple], error) {
	return newTupleHeap(KindMaxTupleHeap, arity, func(a, b Tuple) bool { return a[0] > b[0] })
}

func newTupleHeap(kind Kind, arity int, before func(a, b Tuple) bool) (*Heap[Tuple], error) {
	if arity < 1 {
		return nil, fmt.Errorf("%w: %s arity must be ≥ 1, got %d", ErrInvalidElement, kind, arity)
	}
	h := NewHeap(before)
	h.kind = kind
	h.validate = func(t Tuple) error {
		if len(t) != arity {
			return fmt.Errorf("%w: %s expects %d-tuples, got %v", ErrInvalidElement, kind, arity, t)
		}
		return nil
	}

	return h, nil
}
