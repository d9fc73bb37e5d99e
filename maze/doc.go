// Package maze carves perfect mazes into a grid.Grid.
//
// What:
//
//	Rooms sit two cells apart. Carving starts from one room and runs an
//	iterative randomized depth-first search with an explicit stack: at the
//	top room the four room steps {(-2,0),(2,0),(0,-2),(0,2)} are shuffled,
//	and the first in-bounds, still-blocked target room is carved together
//	with the wall cell halfway to it. A room with no such target is popped.
//	Carving ends when the stack is empty.
//
//	Carved cells have cost 0 and are unblocked; everything else stays a
//	wall. The carved cells form a spanning tree over the reachable rooms,
//	so exactly one path joins any two of them.
//
// Entry points:
//
//   - New(rows, cols, opts...): blocked base grid, carved from a random
//     row of column 0.
//   - Carve(g, start, opts...): carve an existing grid to completion.
//   - NewCarver(g, start, opts...): resumable carver, one stack frame per
//     Step, for hosts that draw between steps.
//   - Verify(g): spanning-tree check (single component, no cycles).
//
// Complexity:
//
//	O(rows×cols) time; the explicit stack holds at most one entry per room,
//	so there is no call-stack recursion proportional to grid size.
//
// Errors:
//
//   - ErrBadStart:      start point outside the grid or not a wall.
//   - ErrNoPassages:    Verify found no carved cell.
//   - ErrCycle:         Verify found a loop among carved cells.
//   - ErrDisconnected:  Verify found more than one carved component.
package maze
