// Package grid models the 2-D board every search runs over: a fixed
// rows×cols mapping of Cells carrying a traversal cost, a blocked flag
// and the visited/parent bookkeeping a traversal writes in place.
//
// What:
//
//   - Grid stores cells in row-major order; Cell(p).Point == p always.
//   - Fill policies: RegularFill (cost 1) and WeightedFill (uniform [1,10]).
//   - Neighbors follow a fixed order: up, down, left, right.
//   - Components finds 4-connected regions of traversable cells.
//
// Ownership:
//
//	A Grid belongs to its caller. A search engine borrows it for one
//	traversal and writes Visited/Parent; two engines must never traverse
//	the same Grid at once. Reset clears that bookkeeping.
//
// Complexity:
//
//   - New, FromCosts, Reset, Clone: O(rows×cols) time and memory.
//   - Cell, InBounds, IsTraversable, Neighbors: O(1).
//   - Components: O(rows×cols).
//
// Errors:
//
//   - ErrBadDimensions:  rows or cols < 1.
//   - ErrNonRectangular: FromCosts rows of differing lengths.
//   - ErrOutOfBounds:    a point outside [0,rows)×[0,cols).
package grid
