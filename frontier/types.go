// Package frontier defines the Container contract, the Tuple element shape,
// container kinds and sentinel errors.
package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyContainer indicates Pop or Peek was called on an empty container.
	ErrEmptyContainer = errors.New("frontier: container is empty")

	// ErrInvalidElement indicates an element the container's comparator cannot order,
	// e.g. a tuple whose arity differs from the heap's.
	ErrInvalidElement = errors.New("frontier: invalid element")

	// ErrUnknownKind indicates a container kind that the factory does not know
	// or cannot build for the requested element shape.
	ErrUnknownKind = errors.New("frontier: unknown container kind")
)

// Container is the capability set shared by every frontier.
type Container[T any] interface {
	// Push inserts item. Only validating containers (tuple heaps) can fail.
	Push(item T) error
	// Pop removes and returns the next item in container order.
	Pop() (T, error)
	// Peek returns the next item without removing it.
	Peek() (T, error)
	// IsEmpty reports whether the container holds no items.
	IsEmpty() bool
	// Len returns the number of held items.
	Len() int
	// Clear drops all items.
	Clear()
}

// Tuple is a fixed-arity entry whose first slot is its priority.
// Search frontiers use (priority, row, col) triples.
type Tuple []int

// Priority returns slot 0 of t.
func (t Tuple) Priority() int {
	return t[0]
}

// Kind selects a container variant.
type Kind int

const (
	// KindStack is a LIFO container.
	KindStack Kind = iota
	// KindQueue is a FIFO container.
	KindQueue
	// KindMinNumericHeap pops the smallest ordered value first.
	KindMinNumericHeap
	// KindMaxNumericHeap pops the largest ordered value first.
	KindMaxNumericHeap
	// KindMinTupleHeap pops the tuple with the smallest slot 0 first.
	KindMinTupleHeap
	// KindMaxTupleHeap pops the tuple with the largest slot 0 first.
	KindMaxTupleHeap
)

var kindNames = [...]string{
	KindStack:          "stack",
	KindQueue:          "queue",
	KindMinNumericHeap: "minNumericHeap",
	KindMaxNumericHeap: "maxNumericHeap",
	KindMinTupleHeap:   "minTupleHeap",
	KindMaxTupleHeap:   "maxTupleHeap",
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a canonical (case-insensitive) name to its Kind.
// Unknown names yield ErrUnknownKind rather than a silent fallback.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
