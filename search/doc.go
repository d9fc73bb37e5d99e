// Package search runs step-driven path searches over a grid.Grid.
//
// What
//
//   - One Engine per traversal. The Algorithm picks the frontier container
//     and the priority function f pushed with each neighbor:
//
//     bfs      Queue           level order
//     dfs      Stack           most recent first
//     ucs-min  min tuple-heap  f = running + cellCost
//     ucs-max  max tuple-heap  f = running + cellCost (highest first, non-optimal)
//     a*       min tuple-heap  f = running + cellCost + Manhattan(next, dst)
//
//     running is the priority of the entry being expanded.
//
//   - States: Idle → Running → {Found, Exhausted}.
//
//   - Step pops exactly one frontier entry. Entries for cells already
//     visited are discarded (lazy deletion). A newly visited cell that is the
//     destination ends the search with Found; otherwise its in-bounds,
//     unvisited, unblocked neighbors (up, down, left, right) are pushed.
//
//   - Parents are first-touch: a cell keeps the parent of whichever
//     expansion pushed it first and is never re-opened. Under ucs-max and
//     a* the returned path is valid but not necessarily the cheapest.
//
// Driving a search
//
//	e, _ := search.New(search.AStar)
//	if err := e.Start(g, src, dst); err != nil { ... }
//	for {
//	    res, err := e.Step()       // one frontier pop per call
//	    ...                        // draw res.Events
//	    if res.Status.Terminal() { break }
//	}
//
//	// or let the engine loop:
//	res, err := e.Run(ctx)
//
//	// or consume events lazily:
//	events, err := e.Traverse(g, src, dst)
//	for ev, err := range events { ... }
//
// Concurrency
//
//	An Engine writes Visited and Parent on the cells of the grid it was
//	started on. Never run two engines over one grid at once. A search may be
//	abandoned between steps; the grid then keeps its partial state until
//	grid.Reset or regeneration.
//
// Errors
//
//   - ErrUnknownAlgorithm: unsupported algorithm value or name.
//   - ErrPrecondition:     nil grid, endpoint out of bounds, blocked source,
//     or blocked destination under WithStrictEndpoints.
//   - ErrAlreadyStarted:   Start on an engine that left Idle.
//   - ErrNotStarted:       Step or Run before Start.
//   - ErrBrokenPath:       parent links do not lead back to the source
//     (the grid carried state from an earlier traversal).
package search
