// Package generator builds the grids a session searches over.
//
// Kinds:
//
//   - Regular:  every cell costs 1.
//   - Weighted: every cell costs a uniform random integer in [1,10].
//   - Maze:     every cell starts as a cost-1 wall; a perfect maze is then
//     carved (cost 0 passages) by package maze.
//
// Determinism:
//
//	Same kind, dimensions and seed ⇒ identical grid. Without WithSeed or
//	WithRand the RNG is seeded from the clock.
//
// Errors:
//
//   - ErrUnknownKind: unknown kind value or name.
//   - grid.ErrBadDimensions: rows or cols < 1 (wrapped).
package generator
