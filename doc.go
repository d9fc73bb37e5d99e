// Package gridpath is a step-driven path-search toolkit for 2-D grids:
// interchangeable traversal algorithms, the frontier containers they run
// on, and a randomized perfect-maze generator.
//
// What is in the box?
//
//	frontier/    Stack, Queue, numeric and tuple heaps behind one Container[T]
//	grid/        Point, Cell, Grid, regular and weighted cost fills
//	maze/        iterative depth-first maze carver + spanning-tree Verify
//	generator/   Create(kind, rows, cols): regular, weighted or maze grids
//	search/      Engine: bfs, dfs, ucs-min, ucs-max, a* with resumable Step
//	session/     board state for a UI: click selection, regenerate, traverse
//
// Quick example:
//
//	g, _ := generator.Create(generator.Maze, 21, 41, generator.WithSeed(1))
//	open := g.Components()[0]
//	res, _ := search.Search(g, search.AStar, open[0], open[len(open)-1])
//	fmt.Println(res.Status, len(res.Path))
//
// Every search is single-threaded and advances one frontier pop per Step,
// so a renderer can animate it frame by frame or drop it between frames.
// Runnable walkthroughs live under examples/.
package gridpath
