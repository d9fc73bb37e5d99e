// Package session holds the interactive state a presentation layer drives:
// the current grid, the chosen algorithm and the source/destination
// selection.
//
// A Session replaces a process-wide singleton; callers create one per board
// and pass it explicitly. It is not safe for concurrent use.
//
// Selection follows the click cycle of a board UI:
//
//	click 1 on an open cell  → source
//	click 2 on an open cell  → destination (caller then traverses)
//	click 3 on an open cell  → both cleared
//
// Clicks on walls or outside the grid are ignored.
//
// Each Traverse/Solve resets the grid's Visited and Parent state and uses a
// fresh search.Engine, so the same endpoints can be searched repeatedly
// with different algorithms.
package session
