package frontier

import (
	"cmp"
	"fmt"
)

// NewTuples builds the container of the given kind for arity-length tuples.
// Numeric heap kinds cannot hold tuples and yield ErrUnknownKind.
func NewTuples(kind Kind, arity int) (Container[Tuple], error) {
	switch kind {
	case KindStack:
		return NewStack[Tuple](), nil
	case KindQueue:
		return NewQueue[Tuple](), nil
	case KindMinTupleHeap, KindMaxTupleHeap:
		newHeap := NewMinTupleHeap
		if kind == KindMaxTupleHeap {
			newHeap = NewMaxTupleHeap
		}
		h, err := newHeap(arity)
		if err != nil {
			return nil, err // plain nil, not a nil *Heap inside the interface
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %s cannot hold tuples", ErrUnknownKind, kind)
	}
}

// NewNumeric builds the container of the given kind for ordered values.
// Tuple heap kinds yield ErrUnknownKind.
func NewNumeric[T cmp.Ordered](kind Kind) (Container[T], error) {
	switch kind {
	case KindStack:
		return NewStack[T](), nil
	case KindQueue:
		return NewQueue[T](), nil
	case KindMinNumericHeap:
		return NewMinHeap[T](), nil
	case KindMaxNumericHeap:
		return NewMaxHeap[T](), nil
	default:
		return nil, fmt.Errorf("%w: %s cannot hold numeric values", ErrUnknownKind, kind)
	}
}
