// Package frontier provides the containers that hold the discovered-but-not-
// yet-expanded cells of a grid search.
//
// What:
//
//   - Stack: LIFO slice; DFS frontier.
//   - Queue: FIFO slice with a moving head; BFS frontier.
//   - Heap:  0-indexed binary heap ordered by a "before" comparator; the
//     uniform-cost and best-first frontiers.
//
// Every container satisfies Container[T]: Push, Pop, Peek, IsEmpty, Len and
// Clear. Heaps come in two element shapes:
//
//   - Numeric: any cmp.Ordered value (NewMinHeap, NewMaxHeap).
//   - Tuple:   fixed-arity []int whose slot 0 is the priority
//     (NewMinTupleHeap, NewMaxTupleHeap). Only slot 0 takes part in
//     ordering; the remaining slots are payload (row, col).
//
// Complexity:
//
//   - Stack/Queue Push and Pop: amortized O(1).
//   - Heap Push and Pop:        O(log n).
//   - Clear:                    O(1) amortized (elements are dropped).
//
// Ties:
//
//	Heaps make no promise about the relative order of equal priorities
//	beyond what falls out of the sift operations.
//
// Errors:
//
//   - ErrEmptyContainer: Pop or Peek on an empty container.
//   - ErrInvalidElement: a tuple of the wrong arity reached a tuple heap.
//   - ErrUnknownKind:    factory asked for a kind it cannot build.
package frontier
